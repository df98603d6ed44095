package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

// SelectionSnapshotModel menyimpan state seleksi kalender per user:
// satu baris per tanggal terpilih, urut kolom position. Ini kontrak
// save/load eksplisit pengganti "memoryStorage" global.
type SelectionSnapshotModel struct {
	SnapshotID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:snapshot_id" json:"snapshot_id"`

	SnapshotUserID  uuid.UUID `gorm:"type:uuid;not null;column:snapshot_user_id;index:idx_selection_snapshot_user" json:"snapshot_user_id"`
	SnapshotDateKey string    `gorm:"size:10;not null;column:snapshot_date_key" json:"snapshot_date_key"`

	SnapshotSessions       pq.StringArray `gorm:"type:text[];column:snapshot_sessions" json:"snapshot_sessions"`
	SnapshotCustomSessions pq.StringArray `gorm:"type:text[];column:snapshot_custom_sessions" json:"snapshot_custom_sessions,omitempty"`

	SnapshotViewMode string `gorm:"size:20;not null;column:snapshot_view_mode" json:"snapshot_view_mode"`
	SnapshotPosition int    `gorm:"not null;default:0;column:snapshot_position" json:"snapshot_position"`

	SnapshotCreatedAt time.Time `gorm:"column:snapshot_created_at;autoCreateTime" json:"snapshot_created_at"`
}

func (SelectionSnapshotModel) TableName() string {
	return "selection_snapshots"
}
