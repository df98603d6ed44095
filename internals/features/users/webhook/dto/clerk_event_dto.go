package dto

import "strings"

// ClerkEvent — payload webhook identity provider.
// Satu skema terdeklarasi per tipe payload eksternal; cek bentuk ad hoc
// per-route tidak dipakai.
type ClerkEvent struct {
	Type string        `json:"type" validate:"required,oneof=user.created user.updated user.deleted"`
	Data ClerkUserData `json:"data" validate:"required"`
}

type ClerkUserData struct {
	ID             string       `json:"id" validate:"required"`
	FirstName      *string      `json:"first_name,omitempty"`
	LastName       *string      `json:"last_name,omitempty"`
	Gender         *string      `json:"gender,omitempty"`
	EmailAddresses []ClerkEmail `json:"email_addresses,omitempty"`
}

type ClerkEmail struct {
	EmailAddress string `json:"email_address"`
}

// FullName menggabungkan first/last name; kosong bila dua-duanya absen.
func (d *ClerkUserData) FullName() string {
	var parts []string
	if d.FirstName != nil && strings.TrimSpace(*d.FirstName) != "" {
		parts = append(parts, strings.TrimSpace(*d.FirstName))
	}
	if d.LastName != nil && strings.TrimSpace(*d.LastName) != "" {
		parts = append(parts, strings.TrimSpace(*d.LastName))
	}
	return strings.Join(parts, " ")
}

// PrimaryEmail mengambil email pertama; string kosong bila tidak ada.
func (d *ClerkUserData) PrimaryEmail() string {
	if len(d.EmailAddresses) == 0 {
		return ""
	}
	return strings.TrimSpace(strings.ToLower(d.EmailAddresses[0].EmailAddress))
}
