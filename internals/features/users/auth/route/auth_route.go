package route

import (
	authController "gerejaku_backend/internals/features/users/auth/controller"
	"gerejaku_backend/internals/middlewares"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// AuthRoutes — login/register publik dengan rate limit ketat
func AuthRoutes(app fiber.Router, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	app.Post("/auth/register", middlewares.RegisterRateLimiter(), ctrl.Register)
	app.Post("/auth/login", middlewares.LoginRateLimiter(), ctrl.Login)
}
