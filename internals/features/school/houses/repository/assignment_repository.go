package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"vidyalaya_backend/internals/features/school/houses/dto"
	"vidyalaya_backend/internals/features/school/houses/model"
	"vidyalaya_backend/internals/helpers/dberr"
)

type AssignmentRepository struct {
	db *gorm.DB
}

func NewAssignmentRepository(db *gorm.DB) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

// Upsert relies on the store's single-row atomicity on the composite key;
// concurrent writes to the same (school, student, year) resolve last-write-wins.
func (r *AssignmentRepository) Upsert(ctx context.Context, m *model.StudentHouseAssignmentModel) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "assignment_school_id"},
				{Name: "assignment_student_id"},
				{Name: "assignment_year"},
			},
			DoUpdates: clause.AssignmentColumns([]string{
				"assignment_house_id",
				"assignment_grade_id",
				"assignment_assigned_date",
				"assignment_assigned_by",
				"assignment_updated_at",
			}),
		}).
		Create(m).Error
	return dberr.Translate(err)
}

func (r *AssignmentRepository) DeleteByKey(ctx context.Context, schoolID, studentID uuid.UUID, year int) error {
	res := r.db.WithContext(ctx).
		Where("assignment_school_id = ? AND assignment_student_id = ? AND assignment_year = ?",
			schoolID, studentID, year).
		Delete(&model.StudentHouseAssignmentModel{})
	if res.Error != nil {
		return dberr.Translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return dberr.ErrNotFound
	}
	return nil
}

func (r *AssignmentRepository) List(ctx context.Context, schoolID uuid.UUID, f dto.ListAssignmentFilter) ([]model.StudentHouseAssignmentModel, error) {
	q := r.db.WithContext(ctx).Where("assignment_school_id = ?", schoolID)
	if f.Year != nil {
		q = q.Where("assignment_year = ?", *f.Year)
	}
	if f.HouseID != nil {
		q = q.Where("assignment_house_id = ?", *f.HouseID)
	}
	if f.GradeID != nil {
		q = q.Where("assignment_grade_id = ?", *f.GradeID)
	}
	var ms []model.StudentHouseAssignmentModel
	err := q.Order("assignment_year DESC, assignment_student_id ASC").Find(&ms).Error
	if err != nil {
		return nil, dberr.Translate(err)
	}
	return ms, nil
}
