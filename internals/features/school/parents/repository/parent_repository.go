package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"vidyalaya_backend/internals/features/school/parents/model"
	"vidyalaya_backend/internals/helpers/dberr"
)

type ParentRepository struct {
	db *gorm.DB
}

func NewParentRepository(db *gorm.DB) *ParentRepository {
	return &ParentRepository{db: db}
}

func (r *ParentRepository) Insert(ctx context.Context, m *model.ParentModel) error {
	return dberr.Translate(r.db.WithContext(ctx).Create(m).Error)
}

func (r *ParentRepository) FindByID(ctx context.Context, schoolID, id uuid.UUID) (*model.ParentModel, error) {
	var m model.ParentModel
	err := r.db.WithContext(ctx).
		First(&m, "parent_school_id = ? AND parent_id = ?", schoolID, id).Error
	if err != nil {
		return nil, dberr.Translate(err)
	}
	return &m, nil
}

func (r *ParentRepository) List(ctx context.Context, schoolID uuid.UUID) ([]model.ParentModel, error) {
	var ms []model.ParentModel
	err := r.db.WithContext(ctx).
		Where("parent_school_id = ?", schoolID).
		Order("parent_full_name_en ASC").
		Find(&ms).Error
	if err != nil {
		return nil, dberr.Translate(err)
	}
	return ms, nil
}

func (r *ParentRepository) Save(ctx context.Context, m *model.ParentModel) error {
	res := r.db.WithContext(ctx).
		Model(&model.ParentModel{}).
		Where("parent_school_id = ? AND parent_id = ?", m.ParentSchoolID, m.ParentID).
		Updates(m)
	if res.Error != nil {
		return dberr.Translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (r *ParentRepository) Delete(ctx context.Context, schoolID, id uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Where("parent_school_id = ? AND parent_id = ?", schoolID, id).
		Delete(&model.ParentModel{})
	if res.Error != nil {
		return dberr.Translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
