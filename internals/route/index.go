// file: internals/route/index.go
package routes

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gerejaku_backend/internals/constants"
	ibadahRoute "gerejaku_backend/internals/features/ibadah/route"
	jemaatRoute "gerejaku_backend/internals/features/jemaat/route"
	kehadiranRoute "gerejaku_backend/internals/features/kehadiran/route"
	authRoute "gerejaku_backend/internals/features/users/auth/route"
	userRoute "gerejaku_backend/internals/features/users/user/route"
	webhookRoute "gerejaku_backend/internals/features/users/webhook/route"
	authMiddleware "gerejaku_backend/internals/middlewares/auth"
)

func SetupRoutes(app *fiber.App, db *gorm.DB) {
	// ===================== PUBLIC =====================
	log.Println("[INFO] Setting up PUBLIC group...")
	public := app.Group("/api/public")
	authRoute.AuthRoutes(public, db)
	webhookRoute.WebhookRoutes(public, db)

	// ===================== PRIVATE (USER) =====================
	log.Println("[INFO] Setting up PRIVATE group (JWT)...")
	private := app.Group("/api/u", authMiddleware.AuthMiddleware())
	jemaatRoute.JemaatUserRoutes(private, db)
	ibadahRoute.IbadahUserRoutes(private, db)
	kehadiranRoute.KehadiranUserRoutes(private, db)

	// ===================== ADMIN =====================
	log.Println("[INFO] Setting up ADMIN group (JWT + RoleCheck)...")
	admin := app.Group("/api/a",
		authMiddleware.AuthMiddleware(),
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("manajemen gereja"), constants.AdminAndAbove...),
	)
	jemaatRoute.JemaatAdminRoutes(admin, db)
	ibadahRoute.IbadahAdminRoutes(admin, db)
	userRoute.UserAdminRoutes(admin, db)
}
