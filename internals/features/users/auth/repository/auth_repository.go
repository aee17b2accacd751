package repository

import (
	"context"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"vidyalaya_backend/internals/features/users/auth/model"
	userModel "vidyalaya_backend/internals/features/users/user/model"
	"vidyalaya_backend/internals/helpers/dberr"
)

type AuthRepository struct {
	db *gorm.DB
}

func NewAuthRepository(db *gorm.DB) *AuthRepository {
	return &AuthRepository{db: db}
}

func (r *AuthRepository) FindUserByEmail(ctx context.Context, email string) (*userModel.UserModel, error) {
	var m userModel.UserModel
	err := r.db.WithContext(ctx).First(&m, "user_email = ?", email).Error
	if err != nil {
		return nil, dberr.Translate(err)
	}
	return &m, nil
}

func (r *AuthRepository) FindUserByID(ctx context.Context, id uuid.UUID) (*userModel.UserModel, error) {
	var m userModel.UserModel
	err := r.db.WithContext(ctx).First(&m, "user_id = ?", id).Error
	if err != nil {
		return nil, dberr.Translate(err)
	}
	return &m, nil
}

func (r *AuthRepository) BlacklistToken(ctx context.Context, token string, expiresAt time.Time) error {
	return dberr.Translate(r.db.WithContext(ctx).Create(&model.TokenBlacklistModel{
		BlacklistToken:     token,
		BlacklistExpiresAt: expiresAt,
	}).Error)
}

func (r *AuthRepository) IsBlacklisted(ctx context.Context, token string) (bool, error) {
	var n int64
	err := r.db.WithContext(ctx).
		Model(&model.TokenBlacklistModel{}).
		Where("blacklist_token = ?", token).
		Count(&n).Error
	if err != nil {
		return false, dberr.Translate(err)
	}
	return n > 0, nil
}

// DeleteExpired prunes rows whose token already expired; batched so the
// sweeper never holds a long-running delete.
func (r *AuthRepository) DeleteExpired(ctx context.Context, before time.Time, limit int) (int64, error) {
	res := r.db.WithContext(ctx).
		Where("blacklist_id IN (?)",
			r.db.Model(&model.TokenBlacklistModel{}).
				Select("blacklist_id").
				Where("blacklist_expires_at < ?", before).
				Limit(limit),
		).
		Delete(&model.TokenBlacklistModel{})
	if res.Error != nil {
		return 0, dberr.Translate(res.Error)
	}
	return res.RowsAffected, nil
}
