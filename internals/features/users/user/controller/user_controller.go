package controller

import (
	"errors"
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"gerejaku_backend/internals/constants"
	"gerejaku_backend/internals/features/users/user/dto"
	"gerejaku_backend/internals/features/users/user/model"
	helper "gerejaku_backend/internals/helpers"
)

var validate = validator.New()

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

// GET /api/a/users?page=&per_page= — seluruh user portal.
// per_page=all diizinkan untuk kebutuhan audit admin.
func (uc *UserController) GetUsers(c *fiber.Ctx) error {
	var total int64
	if err := uc.DB.Model(&model.UserModel{}).Count(&total).Error; err != nil {
		log.Println("[ERROR] Failed to count users:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to retrieve users")
	}

	p := helper.ParsePageWith(c, helper.ExportPageOpts)
	var users []model.UserModel
	if err := uc.DB.
		Order("user_created_at DESC").
		Limit(p.Limit()).
		Offset(p.Offset()).
		Find(&users).Error; err != nil {
		log.Println("[ERROR] Failed to fetch users:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Failed to retrieve users")
	}

	log.Printf("[SUCCESS] Retrieved %d users\n", len(users))
	return helper.Success(c, "Users fetched successfully", fiber.Map{
		"pagination": helper.BuildPageMeta(total, p),
		"users":      users,
	})
}

// GET /api/a/users/pending — user yang belum di-approve
func (uc *UserController) GetPendingUsers(c *fiber.Ctx) error {
	var users []model.UserModel
	if err := uc.DB.
		Where("user_status = ?", constants.UserStatusJemaat).
		Order("user_created_at ASC").
		Find(&users).Error; err != nil {
		log.Println("[ERROR] Gagal ambil user pending:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil daftar user")
	}

	return helper.Success(c, "Daftar user menunggu approval", fiber.Map{
		"total": len(users),
		"users": users,
	})
}

// PATCH /api/a/users/:id/status — approval workflow.
// Body selain accepted/rejected → 400. Target tidak ada → 404
// (bukan 500 generic dari ORM).
func (uc *UserController) UpdateStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format ID tidak valid")
	}

	var req dto.UpdateUserStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	var user model.UserModel
	if err := uc.DB.First(&user, "user_id = ?", id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helper.Error(c, fiber.StatusNotFound, "User tidak ditemukan")
		}
		log.Println("[ERROR] Gagal ambil user:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal mengambil data user")
	}

	user.UserStatus = req.Status
	if err := uc.DB.Save(&user).Error; err != nil {
		log.Println("[ERROR] Gagal update status user:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memperbarui status user")
	}

	log.Printf("[SUCCESS] Status user %s → %s\n", user.UserID, req.Status)
	return helper.Success(c, "Status user berhasil diperbarui", user)
}
