package controller

import (
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	jemaatModel "gerejaku_backend/internals/features/jemaat/model"
	"gerejaku_backend/internals/features/kehadiran/service"
	helper "gerejaku_backend/internals/helpers"
	"gerejaku_backend/internals/helpers/apperr"
)

type ReportController struct {
	DB *gorm.DB
}

func NewReportController(db *gorm.DB) *ReportController {
	return &ReportController{DB: db}
}

// roster: snapshot read-mostly seluruh jemaat, urut nama, sekali per render.
func (rc *ReportController) roster() ([]jemaatModel.JemaatModel, error) {
	var members []jemaatModel.JemaatModel
	if err := rc.DB.Order("jemaat_nama ASC").Find(&members).Error; err != nil {
		return nil, err
	}
	return members, nil
}

func (rc *ReportController) renderTables(c *fiber.Ctx, pg service.Paging) ([]service.Table, error) {
	userID, err := currentUserID(c)
	if err != nil {
		return nil, apperr.New(apperr.Auth, "Unauthorized")
	}

	sel, err := loadSelection(rc.DB, userID)
	if err != nil {
		log.Println("[ERROR] Gagal load seleksi:", err)
		return nil, apperr.Wrap(apperr.Upstream, "gagal memuat seleksi", err)
	}

	members, err := rc.roster()
	if err != nil {
		log.Println("[ERROR] Gagal ambil roster jemaat:", err)
		return nil, apperr.Wrap(apperr.Upstream, "gagal memuat roster", err)
	}

	f := service.Filters{
		Status:   c.Query("status"),
		Jabatan:  c.Query("jabatan"),
		SesiType: c.Query("sesi"),
	}
	return service.Aggregate(members, sel, f, pg), nil
}

// GET /api/u/kehadiran/report?status=&jabatan=&sesi=&page=&per_page=
func (rc *ReportController) Report(c *fiber.Ctx) error {
	p := helper.ParsePageWith(c, helper.ReportPageOpts)
	tables, err := rc.renderTables(c, service.Paging{Page: p.Page, PerPage: p.PerPage})
	if err != nil {
		return helper.FromAppError(c, err)
	}

	return helper.Success(c, "Laporan kehadiran", fiber.Map{
		"total_tables": len(tables),
		"tables":       tables,
	})
}

// GET /api/u/kehadiran/export/csv
// Seleksi kosong → 400 dengan pesan untuk user, tidak ada file tertulis.
func (rc *ReportController) ExportCSV(c *fiber.Ctx) error {
	// export selalu tanpa paginasi: semua baris ikut
	tables, err := rc.renderTables(c, service.Paging{})
	if err != nil {
		return helper.FromAppError(c, err)
	}

	data, err := service.ExportCSV(tables)
	if err != nil {
		return helper.FromAppError(c, err)
	}

	filename := service.ExportFilename("csv")
	c.Set(fiber.HeaderContentType, "text/csv; charset=utf-8")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	log.Printf("[SUCCESS] Export CSV %s (%d tabel)\n", filename, len(tables))
	return c.Send(data)
}

// GET /api/u/kehadiran/export/pdf
func (rc *ReportController) ExportPDF(c *fiber.Ctx) error {
	tables, err := rc.renderTables(c, service.Paging{})
	if err != nil {
		return helper.FromAppError(c, err)
	}

	data, err := service.ExportPDF(tables)
	if err != nil {
		return helper.FromAppError(c, err)
	}

	filename := service.ExportFilename("pdf")
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	log.Printf("[SUCCESS] Export PDF %s (%d tabel)\n", filename, len(tables))
	return c.Send(data)
}
