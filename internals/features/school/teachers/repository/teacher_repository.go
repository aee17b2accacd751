package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"vidyalaya_backend/internals/features/school/teachers/model"
	"vidyalaya_backend/internals/helpers/dberr"
)

type TeacherRepository struct {
	db *gorm.DB
}

func NewTeacherRepository(db *gorm.DB) *TeacherRepository {
	return &TeacherRepository{db: db}
}

func (r *TeacherRepository) Insert(ctx context.Context, m *model.TeacherModel) error {
	return dberr.Translate(r.db.WithContext(ctx).Create(m).Error)
}

func (r *TeacherRepository) FindByID(ctx context.Context, schoolID, id uuid.UUID) (*model.TeacherModel, error) {
	var m model.TeacherModel
	err := r.db.WithContext(ctx).
		First(&m, "teacher_school_id = ? AND teacher_id = ?", schoolID, id).Error
	if err != nil {
		return nil, dberr.Translate(err)
	}
	return &m, nil
}

func (r *TeacherRepository) List(ctx context.Context, schoolID uuid.UUID) ([]model.TeacherModel, error) {
	var ms []model.TeacherModel
	err := r.db.WithContext(ctx).
		Where("teacher_school_id = ?", schoolID).
		Order("teacher_name_en ASC").
		Find(&ms).Error
	if err != nil {
		return nil, dberr.Translate(err)
	}
	return ms, nil
}

func (r *TeacherRepository) Save(ctx context.Context, m *model.TeacherModel) error {
	res := r.db.WithContext(ctx).
		Model(&model.TeacherModel{}).
		Where("teacher_school_id = ? AND teacher_id = ?", m.TeacherSchoolID, m.TeacherID).
		Updates(m)
	if res.Error != nil {
		return dberr.Translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (r *TeacherRepository) Delete(ctx context.Context, schoolID, id uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Where("teacher_school_id = ? AND teacher_id = ?", schoolID, id).
		Delete(&model.TeacherModel{})
	if res.Error != nil {
		return dberr.Translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
