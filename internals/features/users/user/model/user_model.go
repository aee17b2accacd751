package model

import (
	"time"

	"github.com/google/uuid"
)

// UserModel is a console account. Email is unique across all schools so a
// login needs no tenant context; the school claim comes from the row.
type UserModel struct {
	UserID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:user_id" json:"user_id"`
	UserSchoolID uuid.UUID `gorm:"type:uuid;not null;index;column:user_school_id" json:"user_school_id"`

	UserName  string `gorm:"size:100;not null;column:user_name" json:"user_name"`
	UserEmail string `gorm:"size:255;not null;uniqueIndex:uq_users_email;column:user_email" json:"user_email"`

	// bcrypt hash, never serialized
	UserPassword string `gorm:"size:100;not null;column:user_password" json:"-"`

	UserRole     string `gorm:"size:20;not null;default:'admin';column:user_role" json:"user_role"`
	UserIsActive bool   `gorm:"not null;default:true;column:user_is_active" json:"user_is_active"`

	UserCreatedAt time.Time  `gorm:"column:user_created_at;autoCreateTime" json:"user_created_at"`
	UserUpdatedAt *time.Time `gorm:"column:user_updated_at;autoUpdateTime" json:"user_updated_at,omitempty"`
}

func (UserModel) TableName() string {
	return "users"
}
