package dto

import (
	"strings"

	"gorm.io/datatypes"

	jemaatModel "gerejaku_backend/internals/features/jemaat/model"
)

/* =======================================================
   REQUEST DTOs
   ======================================================= */

// CreateJemaatRequest — create oleh admin
type CreateJemaatRequest struct {
	Nama            string                 `json:"nama" validate:"required,min=2,max=100"`
	Jabatan         string                 `json:"jabatan" validate:"omitempty,max=50"`
	StatusKehadiran string                 `json:"status_kehadiran" validate:"omitempty,oneof='Aktif' 'Jarang Hadir' 'Tidak Aktif'"`
	KehadiranSesi   string                 `json:"kehadiran_sesi" validate:"omitempty,max=50"`
	Email           *string                `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Telepon         *string                `json:"telepon,omitempty" validate:"omitempty,max=30"`
	Demografi       map[string]interface{} `json:"demografi,omitempty"`
}

// Normalize — trim & normalisasi dasar
func (r *CreateJemaatRequest) Normalize() {
	r.Nama = strings.TrimSpace(r.Nama)
	r.Jabatan = strings.TrimSpace(r.Jabatan)
	r.StatusKehadiran = strings.TrimSpace(r.StatusKehadiran)
	r.KehadiranSesi = strings.TrimSpace(r.KehadiranSesi)
	if r.Email != nil {
		v := strings.TrimSpace(strings.ToLower(*r.Email))
		r.Email = &v
	}
	if r.Telepon != nil {
		v := strings.TrimSpace(*r.Telepon)
		r.Telepon = &v
	}
}

func (r *CreateJemaatRequest) ToModel() *jemaatModel.JemaatModel {
	m := &jemaatModel.JemaatModel{
		JemaatNama:          r.Nama,
		JemaatKehadiranSesi: r.KehadiranSesi,
		JemaatEmail:         r.Email,
		JemaatTelepon:       r.Telepon,
	}
	if r.Jabatan != "" {
		m.JemaatJabatan = r.Jabatan
	}
	if r.StatusKehadiran != "" {
		m.JemaatStatusKehadiran = r.StatusKehadiran
	}
	if r.Demografi != nil {
		m.JemaatDemografi = datatypes.JSONMap(r.Demografi)
	}
	return m
}

// UpdateJemaatRequest — partial update (pointer agar bisa bedakan omit vs null)
type UpdateJemaatRequest struct {
	Nama            *string                `json:"nama,omitempty" validate:"omitempty,min=2,max=100"`
	Jabatan         *string                `json:"jabatan,omitempty" validate:"omitempty,max=50"`
	StatusKehadiran *string                `json:"status_kehadiran,omitempty" validate:"omitempty,oneof='Aktif' 'Jarang Hadir' 'Tidak Aktif'"`
	KehadiranSesi   *string                `json:"kehadiran_sesi,omitempty" validate:"omitempty,max=50"`
	Email           *string                `json:"email,omitempty" validate:"omitempty,email,max=255"`
	Telepon         *string                `json:"telepon,omitempty" validate:"omitempty,max=30"`
	Demografi       map[string]interface{} `json:"demografi,omitempty"`
}

func (r *UpdateJemaatRequest) Normalize() {
	trim := func(p **string) {
		if *p != nil {
			v := strings.TrimSpace(**p)
			*p = &v
		}
	}
	trim(&r.Nama)
	trim(&r.Jabatan)
	trim(&r.StatusKehadiran)
	trim(&r.KehadiranSesi)
	if r.Email != nil {
		v := strings.TrimSpace(strings.ToLower(*r.Email))
		r.Email = &v
	}
	trim(&r.Telepon)
}

// ApplyTo menerapkan field yang terisi ke model
func (r *UpdateJemaatRequest) ApplyTo(m *jemaatModel.JemaatModel) {
	if r.Nama != nil {
		m.JemaatNama = *r.Nama
	}
	if r.Jabatan != nil {
		m.JemaatJabatan = *r.Jabatan
	}
	if r.StatusKehadiran != nil {
		m.JemaatStatusKehadiran = *r.StatusKehadiran
	}
	if r.KehadiranSesi != nil {
		m.JemaatKehadiranSesi = *r.KehadiranSesi
	}
	if r.Email != nil {
		m.JemaatEmail = r.Email
	}
	if r.Telepon != nil {
		m.JemaatTelepon = r.Telepon
	}
	if r.Demografi != nil {
		m.JemaatDemografi = datatypes.JSONMap(r.Demografi)
	}
}
