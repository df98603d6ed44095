package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// UserModel merepresentasikan tabel users (akun portal, bukan entitas
// jemaat). Akun bisa lahir dari register lokal atau dari webhook identity
// provider (clerk_id terisi, password kosong).
type UserModel struct {
	UserID uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:user_id" json:"user_id"`

	// Identitas eksternal dari provider; kunci upsert idempoten webhook
	UserClerkID *string `gorm:"size:64;unique;column:user_clerk_id" json:"user_clerk_id,omitempty"`

	UserName   string  `gorm:"size:100;not null;column:user_name" json:"user_name"`
	UserEmail  string  `gorm:"size:255;unique;not null;column:user_email" json:"user_email"`
	UserGender *string `gorm:"size:20;column:user_gender" json:"user_gender,omitempty"`

	// NULL untuk akun yang diprovision webhook
	UserPassword *string `gorm:"size:255;column:user_password" json:"-"`

	UserRole string `gorm:"size:20;not null;default:'user';column:user_role" json:"user_role"`

	// Workflow approval: Jemaat (default masuk) → accepted / rejected
	UserStatus string `gorm:"size:20;not null;default:'Jemaat';column:user_status" json:"user_status"`

	UserCreatedAt time.Time      `gorm:"column:user_created_at;autoCreateTime" json:"user_created_at"`
	UserUpdatedAt time.Time      `gorm:"column:user_updated_at;autoUpdateTime" json:"user_updated_at"`
	UserDeletedAt gorm.DeletedAt `gorm:"column:user_deleted_at;index" json:"user_deleted_at,omitempty"`
}

func (UserModel) TableName() string {
	return "users"
}
