package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"vidyalaya_backend/internals/features/school/sections/model"
	"vidyalaya_backend/internals/helpers/dberr"
)

type SectionRepository struct {
	db *gorm.DB
}

func NewSectionRepository(db *gorm.DB) *SectionRepository {
	return &SectionRepository{db: db}
}

func (r *SectionRepository) Insert(ctx context.Context, m *model.SectionModel) error {
	return dberr.Translate(r.db.WithContext(ctx).Create(m).Error)
}

func (r *SectionRepository) FindByID(ctx context.Context, schoolID, id uuid.UUID) (*model.SectionModel, error) {
	var m model.SectionModel
	err := r.db.WithContext(ctx).
		First(&m, "section_school_id = ? AND section_id = ?", schoolID, id).Error
	if err != nil {
		return nil, dberr.Translate(err)
	}
	return &m, nil
}

func (r *SectionRepository) List(ctx context.Context, schoolID uuid.UUID) ([]model.SectionModel, error) {
	var ms []model.SectionModel
	err := r.db.WithContext(ctx).
		Where("section_school_id = ?", schoolID).
		Order("section_name_en ASC").
		Find(&ms).Error
	if err != nil {
		return nil, dberr.Translate(err)
	}
	return ms, nil
}

func (r *SectionRepository) Save(ctx context.Context, m *model.SectionModel) error {
	res := r.db.WithContext(ctx).
		Model(&model.SectionModel{}).
		Where("section_school_id = ? AND section_id = ?", m.SectionSchoolID, m.SectionID).
		Updates(m)
	if res.Error != nil {
		return dberr.Translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (r *SectionRepository) Delete(ctx context.Context, schoolID, id uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Where("section_school_id = ? AND section_id = ?", schoolID, id).
		Delete(&model.SectionModel{})
	if res.Error != nil {
		return dberr.Translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
