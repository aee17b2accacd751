package model

import (
	"time"

	"github.com/google/uuid"
)

// StudentHouseAssignmentModel holds the current house of a student for a
// year. One row per (school, student, year); reassignment overwrites in
// place, no history is retained.
type StudentHouseAssignmentModel struct {
	AssignmentID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:assignment_id" json:"assignment_id"`
	AssignmentSchoolID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_house_assignments_key,priority:1;column:assignment_school_id" json:"assignment_school_id"`

	AssignmentStudentID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_house_assignments_key,priority:2;column:assignment_student_id" json:"assignment_student_id"`
	AssignmentYear      int       `gorm:"not null;uniqueIndex:uq_house_assignments_key,priority:3;column:assignment_year" json:"assignment_year"`

	AssignmentHouseID uuid.UUID  `gorm:"type:uuid;not null;column:assignment_house_id" json:"assignment_house_id"`
	AssignmentGradeID *uuid.UUID `gorm:"type:uuid;column:assignment_grade_id" json:"assignment_grade_id,omitempty"`

	AssignmentAssignedDate time.Time `gorm:"not null;column:assignment_assigned_date" json:"assignment_assigned_date"`
	AssignmentAssignedBy   uuid.UUID `gorm:"type:uuid;not null;column:assignment_assigned_by" json:"assignment_assigned_by"`

	AssignmentCreatedAt time.Time  `gorm:"column:assignment_created_at;autoCreateTime" json:"assignment_created_at"`
	AssignmentUpdatedAt *time.Time `gorm:"column:assignment_updated_at;autoUpdateTime" json:"assignment_updated_at,omitempty"`
}

func (StudentHouseAssignmentModel) TableName() string {
	return "student_house_assignments"
}
