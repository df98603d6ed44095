package route

import (
	jemaatController "gerejaku_backend/internals/features/jemaat/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// JemaatAdminRoutes — CRUD jemaat untuk admin
func JemaatAdminRoutes(app fiber.Router, db *gorm.DB) {
	ctrl := jemaatController.NewJemaatController(db)

	app.Post("/jemaat", ctrl.Create)
	app.Put("/jemaat/:id", ctrl.Update)
	app.Delete("/jemaat/:id", ctrl.Delete)
	app.Post("/jemaat/:id/foto", ctrl.UploadFoto)
}
