package dto

import (
	"strings"
	"time"

	kehadiranService "gerejaku_backend/internals/features/kehadiran/service"
)

/* =======================================================
   REQUEST DTOs — seleksi kalender
   ======================================================= */

type ToggleDateRequest struct {
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
}

type ToggleSessionRequest struct {
	Date    string `json:"date" validate:"required,datetime=2006-01-02"`
	Session string `json:"session" validate:"required,min=1,max=100"`
}

func (r *ToggleSessionRequest) Normalize() {
	r.Session = strings.TrimSpace(r.Session)
}

type MonthRequest struct {
	Year  int `json:"year" validate:"required,min=2000,max=2100"`
	Month int `json:"month" validate:"required,min=1,max=12"`
}

func (r *MonthRequest) AsMonth() (int, time.Month) {
	return r.Year, time.Month(r.Month)
}

type CustomSessionRequest struct {
	Date string `json:"date" validate:"required,datetime=2006-01-02"`
	Name string `json:"name" validate:"required,min=1,max=100"`
}

func (r *CustomSessionRequest) Normalize() {
	r.Name = strings.TrimSpace(r.Name)
}

type RenameCustomSessionRequest struct {
	Date    string `json:"date" validate:"required,datetime=2006-01-02"`
	OldName string `json:"old_name" validate:"required,min=1,max=100"`
	NewName string `json:"new_name" validate:"required,min=1,max=100"`
}

func (r *RenameCustomSessionRequest) Normalize() {
	r.OldName = strings.TrimSpace(r.OldName)
	r.NewName = strings.TrimSpace(r.NewName)
}

/* =======================================================
   RESPONSE DTOs
   ======================================================= */

type SelectionResponse struct {
	State      string                          `json:"state"`
	Mode       string                          `json:"mode"`
	Dates      []kehadiranService.DateSelection `json:"dates"`
	Incomplete []string                        `json:"incomplete_dates,omitempty"`
}

func NewSelectionResponse(sel *kehadiranService.Selection) SelectionResponse {
	return SelectionResponse{
		State:      string(sel.State()),
		Mode:       string(sel.Mode()),
		Dates:      sel.Export(),
		Incomplete: sel.IncompleteDates(),
	}
}

// SessionsForDateResponse — chip sesi yang bisa dipilih untuk satu tanggal
type SessionsForDateResponse struct {
	Date     string   `json:"date"`
	Sessions []string `json:"sessions"`
}
