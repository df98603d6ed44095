package route

import (
	ibadahController "gerejaku_backend/internals/features/ibadah/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// IbadahAdminRoutes — pembuatan jadwal ibadah (admin)
func IbadahAdminRoutes(app fiber.Router, db *gorm.DB) {
	ctrl := ibadahController.NewIbadahController(db)

	app.Post("/ibadah", ctrl.Create)
}

// IbadahUserRoutes — baca jadwal (user ber-JWT)
func IbadahUserRoutes(app fiber.Router, db *gorm.DB) {
	ctrl := ibadahController.NewIbadahController(db)

	app.Get("/ibadah", ctrl.List)
}
