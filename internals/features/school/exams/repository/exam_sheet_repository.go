package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"vidyalaya_backend/internals/features/school/exams/dto"
	"vidyalaya_backend/internals/features/school/exams/model"
	"vidyalaya_backend/internals/helpers/dberr"
)

type ExamSheetRepository struct {
	db *gorm.DB
}

func NewExamSheetRepository(db *gorm.DB) *ExamSheetRepository {
	return &ExamSheetRepository{db: db}
}

func (r *ExamSheetRepository) Upsert(ctx context.Context, m *model.ExamSheetModel) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "exam_sheet_school_id"},
				{Name: "exam_sheet_year"},
				{Name: "exam_sheet_term"},
				{Name: "exam_sheet_grade_id"},
			},
			DoUpdates: clause.AssignmentColumns([]string{
				"exam_sheet_rows",
				"exam_sheet_updated_at",
			}),
		}).
		Create(m).Error
	return dberr.Translate(err)
}

func (r *ExamSheetRepository) FindByKey(ctx context.Context, schoolID uuid.UUID, year, term int, gradeID uuid.UUID) (*model.ExamSheetModel, error) {
	var m model.ExamSheetModel
	err := r.db.WithContext(ctx).
		Where("exam_sheet_school_id = ? AND exam_sheet_year = ? AND exam_sheet_term = ? AND exam_sheet_grade_id = ?",
			schoolID, year, term, gradeID).
		First(&m).Error
	if err != nil {
		return nil, dberr.Translate(err)
	}
	return &m, nil
}

func (r *ExamSheetRepository) List(ctx context.Context, schoolID uuid.UUID, f dto.ListExamSheetFilter) ([]model.ExamSheetModel, error) {
	q := r.db.WithContext(ctx).Where("exam_sheet_school_id = ?", schoolID)
	if f.Year != nil {
		q = q.Where("exam_sheet_year = ?", *f.Year)
	}
	if f.Term != nil {
		q = q.Where("exam_sheet_term = ?", *f.Term)
	}
	if f.GradeID != nil {
		q = q.Where("exam_sheet_grade_id = ?", *f.GradeID)
	}
	var ms []model.ExamSheetModel
	err := q.Order("exam_sheet_year DESC, exam_sheet_term ASC").Find(&ms).Error
	if err != nil {
		return nil, dberr.Translate(err)
	}
	return ms, nil
}

func (r *ExamSheetRepository) Delete(ctx context.Context, schoolID, id uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Where("exam_sheet_school_id = ? AND exam_sheet_id = ?", schoolID, id).
		Delete(&model.ExamSheetModel{})
	if res.Error != nil {
		return dberr.Translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
