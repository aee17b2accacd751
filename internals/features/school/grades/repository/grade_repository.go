package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"vidyalaya_backend/internals/features/school/grades/model"
	"vidyalaya_backend/internals/helpers/dberr"
)

type GradeRepository struct {
	db *gorm.DB
}

func NewGradeRepository(db *gorm.DB) *GradeRepository {
	return &GradeRepository{db: db}
}

func (r *GradeRepository) Insert(ctx context.Context, m *model.GradeModel) error {
	return dberr.Translate(r.db.WithContext(ctx).Create(m).Error)
}

func (r *GradeRepository) FindByID(ctx context.Context, schoolID, id uuid.UUID) (*model.GradeModel, error) {
	var m model.GradeModel
	err := r.db.WithContext(ctx).
		First(&m, "grade_school_id = ? AND grade_id = ?", schoolID, id).Error
	if err != nil {
		return nil, dberr.Translate(err)
	}
	return &m, nil
}

func (r *GradeRepository) List(ctx context.Context, schoolID uuid.UUID) ([]model.GradeModel, error) {
	var ms []model.GradeModel
	err := r.db.WithContext(ctx).
		Where("grade_school_id = ?", schoolID).
		Order("grade_level ASC, grade_name ASC").
		Find(&ms).Error
	if err != nil {
		return nil, dberr.Translate(err)
	}
	return ms, nil
}

func (r *GradeRepository) Save(ctx context.Context, m *model.GradeModel) error {
	res := r.db.WithContext(ctx).
		Model(&model.GradeModel{}).
		Where("grade_school_id = ? AND grade_id = ?", m.GradeSchoolID, m.GradeID).
		Updates(m)
	if res.Error != nil {
		return dberr.Translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (r *GradeRepository) Delete(ctx context.Context, schoolID, id uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Where("grade_school_id = ? AND grade_id = ?", schoolID, id).
		Delete(&model.GradeModel{})
	if res.Error != nil {
		return dberr.Translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
