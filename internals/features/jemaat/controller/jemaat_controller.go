package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"gerejaku_backend/internals/features/jemaat/dto"
	"gerejaku_backend/internals/features/jemaat/model"
	helper "gerejaku_backend/internals/helpers"
)

var validate = validator.New()

type JemaatController struct {
	DB *gorm.DB
}

func NewJemaatController(db *gorm.DB) *JemaatController {
	return &JemaatController{DB: db}
}

// GET /api/u/jemaat — roster penuh, terurut, TANPA paginasi.
// Paginasi adalah urusan layer presentasi (aggregator laporan).
func (jc *JemaatController) GetAll(c *fiber.Ctx) error {
	var list []model.JemaatModel
	if err := jc.DB.Order("jemaat_nama ASC").Find(&list).Error; err != nil {
		log.Println("[ERROR] Gagal ambil daftar jemaat:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data jemaat")
	}

	log.Printf("[SUCCESS] Retrieved %d jemaat\n", len(list))
	return helper.Success(c, "Data jemaat berhasil diambil", fiber.Map{
		"total":  len(list),
		"jemaat": list,
	})
}

// GET /api/u/jemaat/:id
func (jc *JemaatController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format ID tidak valid")
	}

	var m model.JemaatModel
	if err := jc.DB.First(&m, "jemaat_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Jemaat tidak ditemukan")
		}
		log.Println("[ERROR] Gagal ambil jemaat:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data jemaat")
	}

	return helper.Success(c, "Data jemaat berhasil diambil", m)
}

// POST /api/a/jemaat
func (jc *JemaatController) Create(c *fiber.Ctx) error {
	var req dto.CreateJemaatRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	m := req.ToModel()
	if err := jc.DB.Create(m).Error; err != nil {
		log.Println("[ERROR] Gagal membuat jemaat:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan data jemaat")
	}

	log.Printf("[SUCCESS] Jemaat %s dibuat (id=%s)\n", m.JemaatNama, m.JemaatID)
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Jemaat berhasil dibuat", m)
}

// PUT /api/a/jemaat/:id
func (jc *JemaatController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format ID tidak valid")
	}

	var req dto.UpdateJemaatRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var m model.JemaatModel
	if err := jc.DB.First(&m, "jemaat_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Jemaat tidak ditemukan")
		}
		log.Println("[ERROR] Gagal ambil jemaat:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data jemaat")
	}

	req.ApplyTo(&m)
	if err := jc.DB.Save(&m).Error; err != nil {
		log.Println("[ERROR] Gagal update jemaat:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui data jemaat")
	}

	return helper.Success(c, "Jemaat berhasil diperbarui", m)
}

// DELETE /api/a/jemaat/:id — soft delete
func (jc *JemaatController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format ID tidak valid")
	}

	res := jc.DB.Delete(&model.JemaatModel{}, "jemaat_id = ?", id)
	if res.Error != nil {
		log.Println("[ERROR] Gagal hapus jemaat:", res.Error)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menghapus jemaat")
	}
	if res.RowsAffected == 0 {
		return helper.Error(c, fiber.StatusNotFound, "Jemaat tidak ditemukan")
	}

	return helper.Success(c, "Jemaat berhasil dihapus", nil)
}

// POST /api/a/jemaat/:id/foto — upload foto (multipart), dikonversi webp
func (jc *JemaatController) UploadFoto(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format ID tidak valid")
	}

	fileHeader, err := c.FormFile("foto")
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "File foto wajib diunggah")
	}

	var m model.JemaatModel
	if err := jc.DB.First(&m, "jemaat_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "Jemaat tidak ditemukan")
		}
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data jemaat")
	}

	url, err := helper.UploadFotoJemaat(fileHeader)
	if err != nil {
		log.Println("[ERROR] Upload foto jemaat gagal:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengunggah foto")
	}

	// foto lama dibersihkan dari storage, gagal hapus tidak memblokir
	if m.JemaatFotoURL != nil {
		if err := helper.DeleteFotoJemaat(*m.JemaatFotoURL); err != nil {
			log.Println("[WARNING] Gagal hapus foto lama:", err)
		}
	}

	m.JemaatFotoURL = &url
	if err := jc.DB.Save(&m).Error; err != nil {
		log.Println("[ERROR] Gagal simpan URL foto:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan foto")
	}

	log.Printf("[SUCCESS] Foto jemaat %s diperbarui\n", m.JemaatID)
	return helper.Success(c, "Foto berhasil diunggah", fiber.Map{"foto_url": url})
}
