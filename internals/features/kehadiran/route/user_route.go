package route

import (
	kehadiranController "gerejaku_backend/internals/features/kehadiran/controller"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// KehadiranUserRoutes — seleksi kalender + laporan + export (user ber-JWT)
func KehadiranUserRoutes(app fiber.Router, db *gorm.DB) {
	selCtrl := kehadiranController.NewSelectionController(db)
	repCtrl := kehadiranController.NewReportController(db)

	// Seleksi kalender
	app.Get("/kehadiran/selection", selCtrl.Get)
	app.Delete("/kehadiran/selection", selCtrl.Clear)
	app.Post("/kehadiran/selection/toggle-date", selCtrl.ToggleDate)
	app.Post("/kehadiran/selection/toggle-session", selCtrl.ToggleSession)
	app.Post("/kehadiran/selection/month", selCtrl.ToggleMonth)
	app.Post("/kehadiran/selection/navigate", selCtrl.NavigateMonth)

	// Chip sesi per tanggal
	app.Get("/kehadiran/sessions", selCtrl.SessionsForDate)

	// Sesi custom (katalog & pseudo-sesi dilindungi)
	app.Post("/kehadiran/custom-sessions", selCtrl.AddCustomSession)
	app.Put("/kehadiran/custom-sessions", selCtrl.RenameCustomSession)
	app.Delete("/kehadiran/custom-sessions", selCtrl.RemoveCustomSession)

	// Laporan & export
	app.Get("/kehadiran/report", repCtrl.Report)
	app.Get("/kehadiran/export/csv", repCtrl.ExportCSV)
	app.Get("/kehadiran/export/pdf", repCtrl.ExportPDF)
}
