package route

import (
	userController "gerejaku_backend/internals/features/users/user/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// UserAdminRoutes — manajemen user portal + approval workflow (admin)
func UserAdminRoutes(app fiber.Router, db *gorm.DB) {
	ctrl := userController.NewUserController(db)

	app.Get("/users", ctrl.GetUsers)
	app.Get("/users/pending", ctrl.GetPendingUsers)
	app.Patch("/users/:id/status", ctrl.UpdateStatus)
}
