package route

import (
	webhookController "gerejaku_backend/internals/features/users/webhook/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// WebhookRoutes — endpoint webhook identity provider (tanpa JWT; diamankan
// signature HMAC svix)
func WebhookRoutes(app fiber.Router, db *gorm.DB) {
	ctrl := webhookController.NewClerkWebhookController(db)

	app.Post("/webhooks/clerk", ctrl.Handle)
}
