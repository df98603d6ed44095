package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// JemaatModel merepresentasikan tabel jemaat (anggota jemaat gereja).
// Status kehadiran & sesi terikat dipakai aggregator laporan; selama satu
// pass pelaporan record dianggap snapshot read-only.
type JemaatModel struct {
	JemaatID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:jemaat_id" json:"jemaat_id"`

	JemaatNama    string  `gorm:"size:100;not null;column:jemaat_nama" json:"jemaat_nama"`
	JemaatFotoURL *string `gorm:"size:255;column:jemaat_foto_url" json:"jemaat_foto_url,omitempty"`

	// Jabatan pelayanan (pendeta, majelis, anggota, dst)
	JemaatJabatan string `gorm:"size:50;not null;default:'Anggota';column:jemaat_jabatan" json:"jemaat_jabatan"`

	// Klasifikasi kehadiran: Aktif / Jarang Hadir / Tidak Aktif
	JemaatStatusKehadiran string `gorm:"size:20;not null;default:'Aktif';column:jemaat_status_kehadiran" json:"jemaat_status_kehadiran"`

	// Sesi kebaktian tempat jemaat terdaftar hadir
	JemaatKehadiranSesi string `gorm:"size:50;column:jemaat_kehadiran_sesi" json:"jemaat_kehadiran_sesi"`

	JemaatEmail   *string `gorm:"size:255;column:jemaat_email" json:"jemaat_email,omitempty"`
	JemaatTelepon *string `gorm:"size:30;column:jemaat_telepon" json:"jemaat_telepon,omitempty"`

	// Data demografis opsional (tempat lahir, alamat, baptis, dll)
	JemaatDemografi datatypes.JSONMap `gorm:"type:jsonb;column:jemaat_demografi" json:"jemaat_demografi,omitempty"`

	JemaatCreatedAt time.Time      `gorm:"column:jemaat_created_at;autoCreateTime" json:"jemaat_created_at"`
	JemaatUpdatedAt time.Time      `gorm:"column:jemaat_updated_at;autoUpdateTime" json:"jemaat_updated_at"`
	JemaatDeletedAt gorm.DeletedAt `gorm:"column:jemaat_deleted_at;index" json:"jemaat_deleted_at,omitempty"`
}

func (JemaatModel) TableName() string {
	return "jemaat"
}
