package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Jenis pengulangan jadwal ibadah
type RecurrenceKind string

const (
	RecurrenceOnce    RecurrenceKind = "Once"
	RecurrenceWeekly  RecurrenceKind = "Weekly"
	RecurrenceMonthly RecurrenceKind = "Monthly"
)

func (k RecurrenceKind) Valid() bool {
	switch k {
	case RecurrenceOnce, RecurrenceWeekly, RecurrenceMonthly:
		return true
	}
	return false
}

// WeeklyEventModel = record induk jadwal berulang (Weekly/Monthly).
// Ibadah sekali jalan (Once) TIDAK punya induk — satu ibadah lepas dan
// ibadah berulang 1 kejadian adalah entitas yang berbeda.
type WeeklyEventModel struct {
	WeeklyEventID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:weekly_event_id" json:"weekly_event_id"`

	WeeklyEventTitle          string         `gorm:"size:150;not null;column:weekly_event_title" json:"weekly_event_title"`
	WeeklyEventJenisKebaktian string         `gorm:"size:100;not null;column:weekly_event_jenis_kebaktian" json:"weekly_event_jenis_kebaktian"`
	WeeklyEventSesiIbadah     string         `gorm:"size:100;not null;column:weekly_event_sesi_ibadah" json:"weekly_event_sesi_ibadah"`
	WeeklyEventRepetition     RecurrenceKind `gorm:"size:10;not null;column:weekly_event_repetition" json:"weekly_event_repetition"`

	WeeklyEventStartDate time.Time  `gorm:"type:date;not null;column:weekly_event_start_date" json:"weekly_event_start_date"`
	WeeklyEventEndDate   *time.Time `gorm:"type:date;column:weekly_event_end_date" json:"weekly_event_end_date,omitempty"`

	// Jumlah ibadah anak yang digenerate saat pembuatan
	WeeklyEventGeneratedCount int `gorm:"not null;default:0;column:weekly_event_generated_count" json:"weekly_event_generated_count"`

	WeeklyEventCreatedAt time.Time      `gorm:"column:weekly_event_created_at;autoCreateTime" json:"weekly_event_created_at"`
	WeeklyEventUpdatedAt time.Time      `gorm:"column:weekly_event_updated_at;autoUpdateTime" json:"weekly_event_updated_at"`
	WeeklyEventDeletedAt gorm.DeletedAt `gorm:"column:weekly_event_deleted_at;index" json:"weekly_event_deleted_at,omitempty"`
}

func (WeeklyEventModel) TableName() string {
	return "weekly_events"
}

// IbadahModel = satu kejadian ibadah konkret pada satu tanggal.
// Tanggal digenerate deterministik dari rule-nya dan tidak pernah dimutasi.
type IbadahModel struct {
	IbadahID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:ibadah_id" json:"ibadah_id"`

	// NULL untuk ibadah Once (tanpa induk)
	IbadahWeeklyEventID *uuid.UUID `gorm:"type:uuid;column:ibadah_weekly_event_id;index" json:"ibadah_weekly_event_id,omitempty"`

	IbadahTitle          string    `gorm:"size:150;not null;column:ibadah_title" json:"ibadah_title"`
	IbadahJenisKebaktian string    `gorm:"size:100;not null;column:ibadah_jenis_kebaktian" json:"ibadah_jenis_kebaktian"`
	IbadahSesi           string    `gorm:"size:100;not null;column:ibadah_sesi" json:"ibadah_sesi"`
	IbadahTanggal        time.Time `gorm:"type:date;not null;column:ibadah_tanggal;index" json:"ibadah_tanggal"`

	IbadahCreatedAt time.Time      `gorm:"column:ibadah_created_at;autoCreateTime" json:"ibadah_created_at"`
	IbadahUpdatedAt time.Time      `gorm:"column:ibadah_updated_at;autoUpdateTime" json:"ibadah_updated_at"`
	IbadahDeletedAt gorm.DeletedAt `gorm:"column:ibadah_deleted_at;index" json:"ibadah_deleted_at,omitempty"`

	// Optional relation ke induk
	WeeklyEvent *WeeklyEventModel `json:"-" gorm:"foreignKey:IbadahWeeklyEventID;references:WeeklyEventID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
}

func (IbadahModel) TableName() string {
	return "ibadah"
}
