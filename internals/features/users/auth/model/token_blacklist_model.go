package model

import (
	"time"
)

// TokenBlacklistModel holds revoked JWTs until they would have expired
// anyway; the sweeper prunes rows past their expiry.
type TokenBlacklistModel struct {
	BlacklistID        uint      `gorm:"primaryKey;column:blacklist_id" json:"blacklist_id"`
	BlacklistToken     string    `gorm:"type:text;not null;uniqueIndex:uq_token_blacklist_token;column:blacklist_token" json:"-"`
	BlacklistExpiresAt time.Time `gorm:"not null;index;column:blacklist_expires_at" json:"blacklist_expires_at"`
	BlacklistCreatedAt time.Time `gorm:"column:blacklist_created_at;autoCreateTime" json:"blacklist_created_at"`
}

func (TokenBlacklistModel) TableName() string {
	return "token_blacklist"
}
