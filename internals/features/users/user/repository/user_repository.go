package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"vidyalaya_backend/internals/features/users/user/model"
	"vidyalaya_backend/internals/helpers/dberr"
)

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

func (r *UserRepository) Insert(ctx context.Context, m *model.UserModel) error {
	return dberr.Translate(r.db.WithContext(ctx).Create(m).Error)
}

func (r *UserRepository) FindByID(ctx context.Context, schoolID, id uuid.UUID) (*model.UserModel, error) {
	var m model.UserModel
	err := r.db.WithContext(ctx).
		First(&m, "user_school_id = ? AND user_id = ?", schoolID, id).Error
	if err != nil {
		return nil, dberr.Translate(err)
	}
	return &m, nil
}

func (r *UserRepository) FindByEmail(ctx context.Context, email string) (*model.UserModel, error) {
	var m model.UserModel
	err := r.db.WithContext(ctx).
		First(&m, "user_email = ?", email).Error
	if err != nil {
		return nil, dberr.Translate(err)
	}
	return &m, nil
}

func (r *UserRepository) List(ctx context.Context, schoolID uuid.UUID) ([]model.UserModel, error) {
	var ms []model.UserModel
	err := r.db.WithContext(ctx).
		Where("user_school_id = ?", schoolID).
		Order("user_name ASC").
		Find(&ms).Error
	if err != nil {
		return nil, dberr.Translate(err)
	}
	return ms, nil
}

func (r *UserRepository) Save(ctx context.Context, m *model.UserModel) error {
	res := r.db.WithContext(ctx).
		Model(&model.UserModel{}).
		Where("user_school_id = ? AND user_id = ?", m.UserSchoolID, m.UserID).
		Updates(map[string]interface{}{
			"user_name":      m.UserName,
			"user_password":  m.UserPassword,
			"user_role":      m.UserRole,
			"user_is_active": m.UserIsActive,
		})
	if res.Error != nil {
		return dberr.Translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, schoolID, id uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Where("user_school_id = ? AND user_id = ?", schoolID, id).
		Delete(&model.UserModel{})
	if res.Error != nil {
		return dberr.Translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
