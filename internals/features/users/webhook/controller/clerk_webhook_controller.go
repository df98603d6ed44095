package controller

import (
	"log"
	"net/http"

	"github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	svix "github.com/svix/svix-webhooks/go"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"gerejaku_backend/internals/configs"
	"gerejaku_backend/internals/constants"
	"gerejaku_backend/internals/features/users/webhook/dto"
	userModel "gerejaku_backend/internals/features/users/user/model"
	helper "gerejaku_backend/internals/helpers"
)

var validate = validator.New()

type ClerkWebhookController struct {
	DB *gorm.DB
}

func NewClerkWebhookController(db *gorm.DB) *ClerkWebhookController {
	return &ClerkWebhookController{DB: db}
}

// POST /api/public/webhooks/clerk
//
// Delivery provider minimal at-least-once: create/update di-treat sebagai
// upsert idempoten ber-kunci clerk_id, jadi redelivery aman tanpa retry
// logic di sisi kita. Signature HMAC (svix-id/timestamp/signature) WAJIB
// lolos sebelum payload dipercaya; header hilang atau verifikasi gagal →
// 401 tanpa satu pun write ke DB.
func (wc *ClerkWebhookController) Handle(c *fiber.Ctx) error {
	secret := configs.ClerkWebhookSecret
	if secret == "" {
		log.Println("[ERROR] CLERK_WEBHOOK_SECRET kosong, webhook ditolak")
		return helper.Error(c, fiber.StatusInternalServerError, "Webhook belum dikonfigurasi")
	}

	svixID := c.Get("svix-id")
	svixTimestamp := c.Get("svix-timestamp")
	svixSignature := c.Get("svix-signature")
	if svixID == "" || svixTimestamp == "" || svixSignature == "" {
		return helper.Error(c, fiber.StatusUnauthorized, "Header signature tidak lengkap")
	}

	wh, err := svix.NewWebhook(secret)
	if err != nil {
		log.Println("[ERROR] Init verifier webhook gagal:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Webhook belum dikonfigurasi")
	}

	headers := http.Header{}
	headers.Set("svix-id", svixID)
	headers.Set("svix-timestamp", svixTimestamp)
	headers.Set("svix-signature", svixSignature)

	payload := c.Body()
	if err := wh.Verify(payload, headers); err != nil {
		log.Println("[WARNING] Signature webhook tidak valid:", err)
		return helper.Error(c, fiber.StatusUnauthorized, "Signature tidak valid")
	}

	var event dto.ClerkEvent
	if err := sonic.Unmarshal(payload, &event); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Payload webhook tidak valid")
	}
	if err := validate.Struct(&event); err != nil {
		return helper.ValidationError(c, err)
	}

	switch event.Type {
	case "user.created", "user.updated":
		return wc.upsertUser(c, &event)
	default: // user.deleted
		return wc.deleteUser(c, &event)
	}
}

func (wc *ClerkWebhookController) upsertUser(c *fiber.Ctx, event *dto.ClerkEvent) error {
	clerkID := event.Data.ID

	name := event.Data.FullName()
	if name == "" {
		name = "Jemaat Baru"
	}
	email := event.Data.PrimaryEmail()

	user := userModel.UserModel{
		UserClerkID: &clerkID,
		UserName:    name,
		UserEmail:   email,
		UserGender:  event.Data.Gender,
		UserRole:    constants.RoleUser,
		UserStatus:  constants.UserStatusJemaat,
	}

	// Upsert idempoten: konflik di clerk_id → update field profil saja,
	// role/status yang sudah di-set admin tidak tersentuh redelivery.
	err := wc.DB.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_clerk_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"user_name", "user_email", "user_gender", "user_updated_at"}),
	}).Create(&user).Error
	if err != nil {
		log.Printf("[ERROR] Upsert webhook gagal (type=%s clerk_id=%s): %v\n", event.Type, clerkID, err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memproses webhook")
	}

	log.Printf("[SUCCESS] Webhook %s diproses (clerk_id=%s)\n", event.Type, clerkID)
	return helper.Success(c, "Webhook diproses", fiber.Map{"clerk_id": clerkID})
}

func (wc *ClerkWebhookController) deleteUser(c *fiber.Ctx, event *dto.ClerkEvent) error {
	clerkID := event.Data.ID

	res := wc.DB.Where("user_clerk_id = ?", clerkID).Delete(&userModel.UserModel{})
	if res.Error != nil {
		log.Printf("[ERROR] Delete webhook gagal (clerk_id=%s): %v\n", clerkID, res.Error)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memproses webhook")
	}
	// Redelivery delete pada user yang sudah hilang tetap 200 (idempoten)
	log.Printf("[SUCCESS] Webhook user.deleted diproses (clerk_id=%s, rows=%d)\n", clerkID, res.RowsAffected)
	return helper.Success(c, "Webhook diproses", fiber.Map{"clerk_id": clerkID})
}
