package repository

import (
	"context"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"vidyalaya_backend/internals/features/school/attendance/dto"
	"vidyalaya_backend/internals/features/school/attendance/model"
	"vidyalaya_backend/internals/helpers/dberr"
)

type AttendanceRepository struct {
	db *gorm.DB
}

func NewAttendanceRepository(db *gorm.DB) *AttendanceRepository {
	return &AttendanceRepository{db: db}
}

func (r *AttendanceRepository) Upsert(ctx context.Context, m *model.AttendanceModel) error {
	err := r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns: []clause.Column{
				{Name: "attendance_school_id"},
				{Name: "attendance_student_id"},
				{Name: "attendance_date"},
			},
			DoUpdates: clause.AssignmentColumns([]string{
				"attendance_status",
				"attendance_note",
				"attendance_marked_by",
				"attendance_updated_at",
			}),
		}).
		Create(m).Error
	return dberr.Translate(err)
}

func (r *AttendanceRepository) List(ctx context.Context, schoolID uuid.UUID, f dto.ListAttendanceFilter) ([]model.AttendanceModel, error) {
	q := r.db.WithContext(ctx).Where("attendance_school_id = ?", schoolID)
	if f.StudentID != nil {
		q = q.Where("attendance_student_id = ?", *f.StudentID)
	}
	if f.Date != nil {
		q = q.Where("attendance_date = ?", *f.Date)
	}
	if f.Status != nil {
		q = q.Where("attendance_status = ?", *f.Status)
	}
	var ms []model.AttendanceModel
	err := q.Order("attendance_date DESC, attendance_student_id ASC").Find(&ms).Error
	if err != nil {
		return nil, dberr.Translate(err)
	}
	return ms, nil
}

func (r *AttendanceRepository) Delete(ctx context.Context, schoolID, id uuid.UUID) error {
	res := r.db.WithContext(ctx).
		Where("attendance_school_id = ? AND attendance_id = ?", schoolID, id).
		Delete(&model.AttendanceModel{})
	if res.Error != nil {
		return dberr.Translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return dberr.ErrNotFound
	}
	return nil
}
