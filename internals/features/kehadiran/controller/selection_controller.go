package controller

import (
	"log"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lib/pq"
	"gorm.io/gorm"

	"gerejaku_backend/internals/features/kehadiran/dto"
	"gerejaku_backend/internals/features/kehadiran/model"
	"gerejaku_backend/internals/features/kehadiran/service"
	helper "gerejaku_backend/internals/helpers"
	"gerejaku_backend/internals/helpers/dbtime"
)

var validate = validator.New()

type SelectionController struct {
	DB *gorm.DB
}

func NewSelectionController(db *gorm.DB) *SelectionController {
	return &SelectionController{DB: db}
}

/* =======================================================
   Save/load kontrak eksplisit seleksi ↔ selection_snapshots
   ======================================================= */

func currentUserID(c *fiber.Ctx) (uuid.UUID, error) {
	raw, _ := c.Locals("user_id").(string)
	return uuid.Parse(raw)
}

func loadSelection(db *gorm.DB, userID uuid.UUID) (*service.Selection, error) {
	var rows []model.SelectionSnapshotModel
	if err := db.
		Where("snapshot_user_id = ?", userID).
		Order("snapshot_position ASC").
		Find(&rows).Error; err != nil {
		return nil, err
	}

	mode := service.ModeEventPerTable
	items := make([]service.DateSelection, 0, len(rows))
	for _, r := range rows {
		mode = service.ViewMode(r.SnapshotViewMode)
		items = append(items, service.DateSelection{
			DateKey:  r.SnapshotDateKey,
			Sessions: []string(r.SnapshotSessions),
			Custom:   []string(r.SnapshotCustomSessions),
		})
	}
	return service.ImportSelection(items, mode, dbtime.TodayWIB()), nil
}

func saveSelection(db *gorm.DB, userID uuid.UUID, sel *service.Selection) error {
	items := sel.Export()
	return db.Transaction(func(tx *gorm.DB) error {
		if err := tx.
			Where("snapshot_user_id = ?", userID).
			Delete(&model.SelectionSnapshotModel{}).Error; err != nil {
			return err
		}
		if len(items) == 0 {
			return nil
		}
		rows := make([]model.SelectionSnapshotModel, 0, len(items))
		for i, it := range items {
			rows = append(rows, model.SelectionSnapshotModel{
				SnapshotUserID:         userID,
				SnapshotDateKey:        it.DateKey,
				SnapshotSessions:       pq.StringArray(it.Sessions),
				SnapshotCustomSessions: pq.StringArray(it.Custom),
				SnapshotViewMode:       string(sel.Mode()),
				SnapshotPosition:       i,
			})
		}
		return tx.CreateInBatches(&rows, 100).Error
	})
}

// mutateSelection: load → apply → save, lalu kirim state terbaru.
func (sc *SelectionController) mutateSelection(c *fiber.Ctx, apply func(*service.Selection) error) error {
	userID, err := currentUserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	sel, err := loadSelection(sc.DB, userID)
	if err != nil {
		log.Println("[ERROR] Gagal load seleksi:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memuat seleksi")
	}

	if err := apply(sel); err != nil {
		return err
	}

	if err := saveSelection(sc.DB, userID, sel); err != nil {
		log.Println("[ERROR] Gagal simpan seleksi:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal menyimpan seleksi")
	}

	return helper.Success(c, "Seleksi diperbarui", dto.NewSelectionResponse(sel))
}

/* =======================================================
   Endpoint seleksi
   ======================================================= */

// GET /api/u/kehadiran/selection
func (sc *SelectionController) Get(c *fiber.Ctx) error {
	userID, err := currentUserID(c)
	if err != nil {
		return helper.Error(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	sel, err := loadSelection(sc.DB, userID)
	if err != nil {
		log.Println("[ERROR] Gagal load seleksi:", err)
		return helper.Error(c, fiber.StatusInternalServerError, "Gagal memuat seleksi")
	}
	return helper.Success(c, "Seleksi saat ini", dto.NewSelectionResponse(sel))
}

// GET /api/u/kehadiran/sessions?date=YYYY-MM-DD — chip sesi untuk tanggal
func (sc *SelectionController) SessionsForDate(c *fiber.Ctx) error {
	date, err := dbtime.ParseDateKey(c.Query("date"))
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format date tidak valid (YYYY-MM-DD)")
	}
	return helper.Success(c, "Daftar sesi", dto.SessionsForDateResponse{
		Date:     dbtime.DateKey(date),
		Sessions: service.SessionsFor(date, dbtime.TodayWIB()),
	})
}

// POST /api/u/kehadiran/selection/toggle-date
func (sc *SelectionController) ToggleDate(c *fiber.Ctx) error {
	var req dto.ToggleDateRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	date, err := dbtime.ParseDateKey(req.Date)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format date tidak valid (YYYY-MM-DD)")
	}
	// Tanggal masa depan tidak bisa dipilih — kebijakan layer pemanggil.
	if date.After(dbtime.TodayWIB()) {
		return helper.Error(c, fiber.StatusBadRequest, "Tanggal di masa depan tidak dapat dipilih")
	}

	return sc.mutateSelection(c, func(sel *service.Selection) error {
		sel.ToggleDate(date)
		return nil
	})
}

// POST /api/u/kehadiran/selection/toggle-session
func (sc *SelectionController) ToggleSession(c *fiber.Ctx) error {
	var req dto.ToggleSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	date, err := dbtime.ParseDateKey(req.Date)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format date tidak valid (YYYY-MM-DD)")
	}

	return sc.mutateSelection(c, func(sel *service.Selection) error {
		sel.ToggleSession(date, req.Session)
		return nil
	})
}

// POST /api/u/kehadiran/selection/month — klik header bulan (toggle)
func (sc *SelectionController) ToggleMonth(c *fiber.Ctx) error {
	var req dto.MonthRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	year, month := req.AsMonth()
	return sc.mutateSelection(c, func(sel *service.Selection) error {
		sel.ToggleMonth(year, month)
		return nil
	})
}

// POST /api/u/kehadiran/selection/navigate — pindah bulan aktif
func (sc *SelectionController) NavigateMonth(c *fiber.Ctx) error {
	var req dto.MonthRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}

	year, month := req.AsMonth()
	return sc.mutateSelection(c, func(sel *service.Selection) error {
		sel.NavigateMonth(year, month)
		return nil
	})
}

// DELETE /api/u/kehadiran/selection — bersihkan seluruh seleksi
func (sc *SelectionController) Clear(c *fiber.Ctx) error {
	return sc.mutateSelection(c, func(sel *service.Selection) error {
		sel.Clear()
		return nil
	})
}

/* =======================================================
   Sesi custom: katalog & pseudo-sesi dilindungi (no-op)
   ======================================================= */

// POST /api/u/kehadiran/custom-sessions
func (sc *SelectionController) AddCustomSession(c *fiber.Ctx) error {
	var req dto.CustomSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	date, err := dbtime.ParseDateKey(req.Date)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format date tidak valid (YYYY-MM-DD)")
	}

	return sc.mutateSelection(c, func(sel *service.Selection) error {
		if !sel.AddCustomSession(date, req.Name) {
			log.Printf("[INFO] Sesi custom %q ditolak untuk %s (katalog/duplikat/no-op)\n", req.Name, req.Date)
		}
		return nil
	})
}

// PUT /api/u/kehadiran/custom-sessions
func (sc *SelectionController) RenameCustomSession(c *fiber.Ctx) error {
	var req dto.RenameCustomSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	date, err := dbtime.ParseDateKey(req.Date)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format date tidak valid (YYYY-MM-DD)")
	}

	return sc.mutateSelection(c, func(sel *service.Selection) error {
		if !sel.RenameCustomSession(date, req.OldName, req.NewName) {
			log.Printf("[INFO] Edit sesi %q ditolak untuk %s (bukan sesi custom)\n", req.OldName, req.Date)
		}
		return nil
	})
}

// DELETE /api/u/kehadiran/custom-sessions
func (sc *SelectionController) RemoveCustomSession(c *fiber.Ctx) error {
	var req dto.CustomSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Body request tidak valid")
	}
	req.Normalize()
	if err := validate.Struct(&req); err != nil {
		return helper.ValidationError(c, err)
	}
	date, err := dbtime.ParseDateKey(req.Date)
	if err != nil {
		return helper.Error(c, fiber.StatusBadRequest, "Format date tidak valid (YYYY-MM-DD)")
	}

	return sc.mutateSelection(c, func(sel *service.Selection) error {
		if !sel.RemoveCustomSession(date, req.Name) {
			log.Printf("[INFO] Hapus sesi %q ditolak untuk %s (bukan sesi custom)\n", req.Name, req.Date)
		}
		return nil
	})
}
