package dto

import (
	"time"

	"github.com/google/uuid"

	"vidyalaya_backend/internals/features/school/attendance/model"
)

/* ===================== Requests ===================== */

// MarkAttendanceRequest records one student's status for one day; re-marking
// the same day overwrites status and note.
type MarkAttendanceRequest struct {
	AttendanceStudentID uuid.UUID `json:"attendance_student_id" validate:"required"`
	AttendanceDate      string    `json:"attendance_date" validate:"required,datetime=2006-01-02"`
	AttendanceStatus    string    `json:"attendance_status" validate:"required,oneof=present absent late"`
	AttendanceNote      *string   `json:"attendance_note" validate:"omitempty,max=300"`
}

func (r *MarkAttendanceRequest) ToModel(schoolID, actorID uuid.UUID) *model.AttendanceModel {
	date, _ := time.Parse("2006-01-02", r.AttendanceDate)
	return &model.AttendanceModel{
		AttendanceSchoolID:  schoolID,
		AttendanceStudentID: r.AttendanceStudentID,
		AttendanceDate:      date,
		AttendanceStatus:    r.AttendanceStatus,
		AttendanceNote:      r.AttendanceNote,
		AttendanceMarkedBy:  actorID,
	}
}

// ListAttendanceFilter narrows the listing; every field optional.
type ListAttendanceFilter struct {
	StudentID *uuid.UUID
	Date      *time.Time
	Status    *string
}

/* ===================== Responses ===================== */

type AttendanceResponse struct {
	AttendanceID        string     `json:"attendance_id"`
	AttendanceSchoolID  string     `json:"attendance_school_id"`
	AttendanceStudentID string     `json:"attendance_student_id"`
	AttendanceDate      string     `json:"attendance_date"`
	AttendanceStatus    string     `json:"attendance_status"`
	AttendanceNote      *string    `json:"attendance_note,omitempty"`
	AttendanceCreatedAt time.Time  `json:"attendance_created_at"`
	AttendanceUpdatedAt *time.Time `json:"attendance_updated_at,omitempty"`
}

func NewAttendanceResponse(m *model.AttendanceModel) *AttendanceResponse {
	return &AttendanceResponse{
		AttendanceID:        m.AttendanceID.String(),
		AttendanceSchoolID:  m.AttendanceSchoolID.String(),
		AttendanceStudentID: m.AttendanceStudentID.String(),
		AttendanceDate:      m.AttendanceDate.Format("2006-01-02"),
		AttendanceStatus:    m.AttendanceStatus,
		AttendanceNote:      m.AttendanceNote,
		AttendanceCreatedAt: m.AttendanceCreatedAt,
		AttendanceUpdatedAt: m.AttendanceUpdatedAt,
	}
}

func NewAttendanceResponses(ms []model.AttendanceModel) []*AttendanceResponse {
	out := make([]*AttendanceResponse, 0, len(ms))
	for i := range ms {
		out = append(out, NewAttendanceResponse(&ms[i]))
	}
	return out
}
