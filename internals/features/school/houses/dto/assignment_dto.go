package dto

import (
	"time"

	"github.com/google/uuid"

	"vidyalaya_backend/internals/features/school/houses/model"
)

/* ===================== Requests ===================== */

// AssignStudentHouseRequest assigns (or with a nil house id, unassigns) a
// student's house for a year.
type AssignStudentHouseRequest struct {
	AssignmentStudentID    uuid.UUID  `json:"assignment_student_id" validate:"required"`
	AssignmentHouseID      *uuid.UUID `json:"assignment_house_id" validate:"omitempty"`
	AssignmentGradeID      *uuid.UUID `json:"assignment_grade_id" validate:"omitempty"`
	AssignmentYear         int        `json:"assignment_year" validate:"required,gte=1900,lte=2200"`
	AssignmentAssignedDate *time.Time `json:"assignment_assigned_date" validate:"omitempty"`
}

type BulkAssignTuple struct {
	AssignmentStudentID uuid.UUID  `json:"assignment_student_id" validate:"required"`
	AssignmentHouseID   *uuid.UUID `json:"assignment_house_id" validate:"omitempty"`
	AssignmentGradeID   *uuid.UUID `json:"assignment_grade_id" validate:"omitempty"`
}

type BulkAssignStudentHouseRequest struct {
	AssignmentYear         int               `json:"assignment_year" validate:"required,gte=1900,lte=2200"`
	AssignmentAssignedDate *time.Time        `json:"assignment_assigned_date" validate:"omitempty"`
	Assignments            []BulkAssignTuple `json:"assignments" validate:"required,min=1,dive"`
}

type ListAssignmentFilter struct {
	Year    *int
	HouseID *uuid.UUID
	GradeID *uuid.UUID
}

/* ===================== Responses ===================== */

type AssignmentResponse struct {
	AssignmentID           string     `json:"assignment_id"`
	AssignmentSchoolID     string     `json:"assignment_school_id"`
	AssignmentStudentID    string     `json:"assignment_student_id"`
	AssignmentYear         int        `json:"assignment_year"`
	AssignmentHouseID      string     `json:"assignment_house_id"`
	AssignmentGradeID      *uuid.UUID `json:"assignment_grade_id,omitempty"`
	AssignmentAssignedDate time.Time  `json:"assignment_assigned_date"`
	AssignmentAssignedBy   string     `json:"assignment_assigned_by"`
}

func NewAssignmentResponse(m *model.StudentHouseAssignmentModel) *AssignmentResponse {
	return &AssignmentResponse{
		AssignmentID:           m.AssignmentID.String(),
		AssignmentSchoolID:     m.AssignmentSchoolID.String(),
		AssignmentStudentID:    m.AssignmentStudentID.String(),
		AssignmentYear:         m.AssignmentYear,
		AssignmentHouseID:      m.AssignmentHouseID.String(),
		AssignmentGradeID:      m.AssignmentGradeID,
		AssignmentAssignedDate: m.AssignmentAssignedDate,
		AssignmentAssignedBy:   m.AssignmentAssignedBy.String(),
	}
}

func NewAssignmentResponses(ms []model.StudentHouseAssignmentModel) []*AssignmentResponse {
	out := make([]*AssignmentResponse, 0, len(ms))
	for i := range ms {
		out = append(out, NewAssignmentResponse(&ms[i]))
	}
	return out
}

// BulkAssignOutcome is the per-tuple result of a bulk call. Assignment is nil
// when the tuple unassigned the student (or when Error is set).
type BulkAssignOutcome struct {
	StudentID  string              `json:"student_id"`
	Assignment *AssignmentResponse `json:"assignment"`
	Error      string              `json:"error,omitempty"`
}
