package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gerejaku_backend/internals/features/ibadah/dto"
	"gerejaku_backend/internals/features/ibadah/model"
	"gerejaku_backend/internals/features/ibadah/service"
	helper "gerejaku_backend/internals/helpers"
	"gerejaku_backend/internals/helpers/dbtime"
)

var validate = validator.New()

type IbadahController struct {
	DB *gorm.DB
}

func NewIbadahController(db *gorm.DB) *IbadahController {
	return &IbadahController{DB: db}
}

// POST /api/a/ibadah
// Once  → satu record ibadah TANPA induk.
// Weekly/Monthly → satu record induk weekly_events + N anak ibadah, satu
// transaksi: tidak pernah tergenerate sebagian.
func (ic *IbadahController) Create(c *fiber.Ctx) error {
	var req dto.CreateIbadahRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	start, end, err := req.Dates()
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format tanggal tidak valid (YYYY-MM-DD)")
	}
	if end != nil && end.Before(start) {
		return helper.Error(c, fiber.StatusBadRequest, "end_date tidak boleh sebelum start_date")
	}

	dates, err := service.ExpandRecurrence(start, end, req.Kind())
	if err != nil {
		return helper.FromAppError(c, err)
	}

	resp := dto.CreateIbadahResponse{Dates: make([]string, 0, len(dates))}
	for _, d := range dates {
		resp.Dates = append(resp.Dates, dbtime.DateKey(d))
	}

	if req.Kind() == model.RecurrenceOnce {
		one := model.IbadahModel{
			IbadahTitle:          req.Title,
			IbadahJenisKebaktian: req.JenisKebaktian,
			IbadahSesi:           req.SesiIbadah,
			IbadahTanggal:        dates[0],
		}
		if err := ic.DB.Create(&one).Error; err != nil {
			log.Println("[ERROR] Gagal membuat ibadah:", err)
			return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan jadwal ibadah")
		}
		resp.GeneratedCount = 1
		log.Printf("[SUCCESS] Ibadah sekali jalan dibuat: %s (%s)\n", req.Title, resp.Dates[0])
		return helper.SuccessWithCode(c, fiber.StatusCreated, "Jadwal ibadah berhasil dibuat", resp)
	}

	parent := model.WeeklyEventModel{
		WeeklyEventTitle:          req.Title,
		WeeklyEventJenisKebaktian: req.JenisKebaktian,
		WeeklyEventSesiIbadah:     req.SesiIbadah,
		WeeklyEventRepetition:     req.Kind(),
		WeeklyEventStartDate:      start,
		WeeklyEventEndDate:        end,
		WeeklyEventGeneratedCount: len(dates),
	}

	err = ic.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&parent).Error; err != nil {
			return err
		}
		children := make([]model.IbadahModel, 0, len(dates))
		for _, d := range dates {
			children = append(children, model.IbadahModel{
				IbadahWeeklyEventID:  &parent.WeeklyEventID,
				IbadahTitle:          req.Title,
				IbadahJenisKebaktian: req.JenisKebaktian,
				IbadahSesi:           req.SesiIbadah,
				IbadahTanggal:        d,
			})
		}
		return tx.CreateInBatches(&children, 100).Error
	})
	if err != nil {
		log.Println("[ERROR] Gagal membuat jadwal berulang:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan jadwal ibadah")
	}

	idStr := parent.WeeklyEventID.String()
	resp.WeeklyEventID = &idStr
	resp.GeneratedCount = len(dates)

	log.Printf("[SUCCESS] Jadwal %s dibuat: %d ibadah tergenerate\n", req.RepetitionType, len(dates))
	return helper.SuccessWithCode(c, fiber.StatusCreated, "Jadwal ibadah berhasil dibuat", resp)
}

// GET /api/u/ibadah?from=YYYY-MM-DD&to=YYYY-MM-DD&page=&per_page=
// Jadwal berulang bisa ratusan baris (weekly max 520), jadi dipaginasi.
func (ic *IbadahController) List(c *fiber.Ctx) error {
	q := ic.DB.Model(&model.IbadahModel{})

	if from := c.Query("from"); from != "" {
		d, err := dbtime.ParseDateKey(from)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Format from tidak valid (YYYY-MM-DD)")
		}
		q = q.Where("ibadah_tanggal >= ?", d)
	}
	if to := c.Query("to"); to != "" {
		d, err := dbtime.ParseDateKey(to)
		if err != nil {
			return helper.Error(c, fiber.StatusBadRequest, "Format to tidak valid (YYYY-MM-DD)")
		}
		q = q.Where("ibadah_tanggal <= ?", d)
	}

	var total int64
	if err := q.Count(&total).Error; err != nil {
		log.Println("[ERROR] Gagal hitung daftar ibadah:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil jadwal ibadah")
	}

	p := helper.ParsePageWith(c, helper.DefaultPageOpts)
	var list []model.IbadahModel
	if err := q.Order("ibadah_tanggal ASC").Limit(p.Limit()).Offset(p.Offset()).Find(&list).Error; err != nil {
		log.Println("[ERROR] Gagal ambil daftar ibadah:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil jadwal ibadah")
	}

	return helper.Success(c, "Jadwal ibadah berhasil diambil", fiber.Map{
		"pagination": helper.BuildPageMeta(total, p),
		"ibadah":     list,
	})
}
