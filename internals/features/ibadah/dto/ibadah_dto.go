package dto

import (
	"strings"
	"time"

	"gerejaku_backend/internals/features/ibadah/model"
	"gerejaku_backend/internals/helpers/dbtime"
)

/* =======================================================
   REQUEST DTOs
   ======================================================= */

// CreateIbadahRequest — buat jadwal ibadah (sekali jalan atau berulang)
type CreateIbadahRequest struct {
	Title          string `json:"title" validate:"required,min=3,max=150"`
	JenisKebaktian string `json:"jenis_kebaktian" validate:"required,max=100"`
	SesiIbadah     string `json:"sesi_ibadah" validate:"required,max=100"`
	StartDate      string `json:"start_date" validate:"required,datetime=2006-01-02"`
	RepetitionType string `json:"repetition_type" validate:"required,oneof=Once Weekly Monthly"`
	EndDate        string `json:"end_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
}

func (r *CreateIbadahRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.JenisKebaktian = strings.TrimSpace(r.JenisKebaktian)
	r.SesiIbadah = strings.TrimSpace(r.SesiIbadah)
	r.StartDate = strings.TrimSpace(r.StartDate)
	r.RepetitionType = strings.TrimSpace(r.RepetitionType)
	r.EndDate = strings.TrimSpace(r.EndDate)
}

func (r *CreateIbadahRequest) Kind() model.RecurrenceKind {
	return model.RecurrenceKind(r.RepetitionType)
}

// Dates mem-parse start/end ke midnight WIB. end nil bila kosong.
func (r *CreateIbadahRequest) Dates() (start time.Time, end *time.Time, err error) {
	start, err = dbtime.ParseDateKey(r.StartDate)
	if err != nil {
		return time.Time{}, nil, err
	}
	if r.EndDate != "" {
		e, perr := dbtime.ParseDateKey(r.EndDate)
		if perr != nil {
			return time.Time{}, nil, perr
		}
		end = &e
	}
	return start, end, nil
}

/* =======================================================
   RESPONSE DTOs
   ======================================================= */

type CreateIbadahResponse struct {
	WeeklyEventID  *string  `json:"weekly_event_id,omitempty"`
	GeneratedCount int      `json:"generated_count"`
	Dates          []string `json:"dates"`
}
