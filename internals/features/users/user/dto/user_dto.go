package dto

import (
	"strings"
)

/* =======================================================
   REQUEST DTOs
   ======================================================= */

// UpdateUserStatusRequest — PATCH /api/a/users/:id/status
// Hanya dua nilai yang sah; selain itu 400.
type UpdateUserStatusRequest struct {
	Status string `json:"status" validate:"required,oneof=accepted rejected"`
}

func (r *UpdateUserStatusRequest) Normalize() {
	r.Status = strings.TrimSpace(r.Status)
}
