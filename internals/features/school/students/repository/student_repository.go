package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"vidyalaya_backend/internals/features/school/students/dto"
	"vidyalaya_backend/internals/features/school/students/model"
	"vidyalaya_backend/internals/helpers/dberr"
)

type StudentRepository struct {
	db *gorm.DB
}

func NewStudentRepository(db *gorm.DB) *StudentRepository {
	return &StudentRepository{db: db}
}

func (r *StudentRepository) Insert(ctx context.Context, m *model.StudentModel) error {
	return dberr.Translate(r.db.WithContext(ctx).Create(m).Error)
}

func (r *StudentRepository) FindByID(ctx context.Context, schoolID, id uuid.UUID) (*model.StudentModel, error) {
	var m model.StudentModel
	err := r.db.WithContext(ctx).
		First(&m, "student_school_id = ? AND student_id = ?", schoolID, id).Error
	if err != nil {
		return nil, dberr.Translate(err)
	}
	return &m, nil
}

func (r *StudentRepository) List(ctx context.Context, schoolID uuid.UUID, f dto.ListStudentFilter) ([]model.StudentModel, error) {
	q := r.db.WithContext(ctx).
		Where("student_school_id = ?", schoolID)
	if f.GradeID != nil {
		q = q.Where("student_grade_id = ?", *f.GradeID)
	}
	if f.SectionID != nil {
		q = q.Where("student_section_id = ?", *f.SectionID)
	}
	if f.Status != nil {
		q = q.Where("student_status = ?", *f.Status)
	}
	if f.Limit > 0 {
		q = q.Limit(f.Limit).Offset(f.Offset)
	}

	var ms []model.StudentModel
	if err := q.Order("student_admission_no ASC").Find(&ms).Error; err != nil {
		return nil, dberr.Translate(err)
	}
	return ms, nil
}

func (r *StudentRepository) Save(ctx context.Context, m *model.StudentModel) error {
	res := r.db.WithContext(ctx).
		Model(&model.StudentModel{}).
		Where("student_school_id = ? AND student_id = ?", m.StudentSchoolID, m.StudentID).
		Updates(m)
	if res.Error != nil {
		return dberr.Translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (r *StudentRepository) Delete(ctx context.Context, schoolID, id uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Where("student_school_id = ? AND student_id = ?", schoolID, id).
		Delete(&model.StudentModel{})
	if res.Error != nil {
		return dberr.Translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
