package route

import (
	jemaatController "gerejaku_backend/internals/features/jemaat/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// JemaatUserRoutes — roster read-only untuk user ber-JWT
func JemaatUserRoutes(app fiber.Router, db *gorm.DB) {
	ctrl := jemaatController.NewJemaatController(db)

	app.Get("/jemaat", ctrl.GetAll)
	app.Get("/jemaat/:id", ctrl.GetByID)
}
