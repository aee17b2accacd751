package dto

import (
	"time"

	"github.com/google/uuid"

	"vidyalaya_backend/internals/features/school/students/model"
)

/* ===================== Requests ===================== */

type CreateStudentRequest struct {
	StudentAdmissionNo string     `json:"student_admission_no" validate:"required,min=1,max=50"`
	StudentFirstNameEn string     `json:"student_first_name_en" validate:"required,min=1,max=100"`
	StudentLastNameEn  string     `json:"student_last_name_en" validate:"required,min=1,max=100"`
	StudentFirstNameSi string     `json:"student_first_name_si" validate:"omitempty,max=100"`
	StudentLastNameSi  string     `json:"student_last_name_si" validate:"omitempty,max=100"`
	StudentGradeID     *uuid.UUID `json:"student_grade_id" validate:"omitempty"`
	StudentSectionID   *uuid.UUID `json:"student_section_id" validate:"omitempty"`
	StudentParentID    *uuid.UUID `json:"student_parent_id" validate:"omitempty"`
	StudentDateOfBirth *time.Time `json:"student_date_of_birth" validate:"omitempty"`
	StudentStatus      *string    `json:"student_status" validate:"omitempty,oneof=active left graduated"`
}

func (r *CreateStudentRequest) ToModel(schoolID, actorID uuid.UUID) *model.StudentModel {
	m := &model.StudentModel{
		StudentSchoolID:    schoolID,
		StudentAdmissionNo: r.StudentAdmissionNo,
		StudentFirstNameEn: r.StudentFirstNameEn,
		StudentLastNameEn:  r.StudentLastNameEn,
		StudentFirstNameSi: r.StudentFirstNameSi,
		StudentLastNameSi:  r.StudentLastNameSi,
		StudentGradeID:     r.StudentGradeID,
		StudentSectionID:   r.StudentSectionID,
		StudentParentID:    r.StudentParentID,
		StudentDateOfBirth: r.StudentDateOfBirth,
		StudentStatus:      model.StudentStatusActive,
		StudentCreatedBy:   actorID,
	}
	if r.StudentStatus != nil {
		m.StudentStatus = *r.StudentStatus
	}
	return m
}

type UpdateStudentRequest struct {
	StudentAdmissionNo *string    `json:"student_admission_no" validate:"omitempty,min=1,max=50"`
	StudentFirstNameEn *string    `json:"student_first_name_en" validate:"omitempty,min=1,max=100"`
	StudentLastNameEn  *string    `json:"student_last_name_en" validate:"omitempty,min=1,max=100"`
	StudentFirstNameSi *string    `json:"student_first_name_si" validate:"omitempty,max=100"`
	StudentLastNameSi  *string    `json:"student_last_name_si" validate:"omitempty,max=100"`
	StudentGradeID     *uuid.UUID `json:"student_grade_id" validate:"omitempty"`
	StudentSectionID   *uuid.UUID `json:"student_section_id" validate:"omitempty"`
	StudentParentID    *uuid.UUID `json:"student_parent_id" validate:"omitempty"`
	StudentDateOfBirth *time.Time `json:"student_date_of_birth" validate:"omitempty"`
	StudentStatus      *string    `json:"student_status" validate:"omitempty,oneof=active left graduated"`
}

func (r *UpdateStudentRequest) ApplyToModel(m *model.StudentModel) {
	if r.StudentAdmissionNo != nil {
		m.StudentAdmissionNo = *r.StudentAdmissionNo
	}
	if r.StudentFirstNameEn != nil {
		m.StudentFirstNameEn = *r.StudentFirstNameEn
	}
	if r.StudentLastNameEn != nil {
		m.StudentLastNameEn = *r.StudentLastNameEn
	}
	if r.StudentFirstNameSi != nil {
		m.StudentFirstNameSi = *r.StudentFirstNameSi
	}
	if r.StudentLastNameSi != nil {
		m.StudentLastNameSi = *r.StudentLastNameSi
	}
	if r.StudentGradeID != nil {
		m.StudentGradeID = r.StudentGradeID
	}
	if r.StudentSectionID != nil {
		m.StudentSectionID = r.StudentSectionID
	}
	if r.StudentParentID != nil {
		m.StudentParentID = r.StudentParentID
	}
	if r.StudentDateOfBirth != nil {
		m.StudentDateOfBirth = r.StudentDateOfBirth
	}
	if r.StudentStatus != nil {
		m.StudentStatus = *r.StudentStatus
	}
}

/* ===================== Queries ===================== */

// ListStudentFilter holds the whitelisted query filters; anything else in the
// query string is ignored.
type ListStudentFilter struct {
	GradeID   *uuid.UUID
	SectionID *uuid.UUID
	Status    *string
	Limit     int
	Offset    int
}

/* ===================== Responses ===================== */

type StudentResponse struct {
	StudentID          string     `json:"student_id"`
	StudentSchoolID    string     `json:"student_school_id"`
	StudentAdmissionNo string     `json:"student_admission_no"`
	StudentFirstNameEn string     `json:"student_first_name_en"`
	StudentLastNameEn  string     `json:"student_last_name_en"`
	StudentFirstNameSi string     `json:"student_first_name_si,omitempty"`
	StudentLastNameSi  string     `json:"student_last_name_si,omitempty"`
	StudentGradeID     *uuid.UUID `json:"student_grade_id,omitempty"`
	StudentSectionID   *uuid.UUID `json:"student_section_id,omitempty"`
	StudentParentID    *uuid.UUID `json:"student_parent_id,omitempty"`
	StudentDateOfBirth *time.Time `json:"student_date_of_birth,omitempty"`
	StudentStatus      string     `json:"student_status"`
	StudentCreatedAt   time.Time  `json:"student_created_at"`
	StudentUpdatedAt   *time.Time `json:"student_updated_at,omitempty"`
}

func NewStudentResponse(m *model.StudentModel) *StudentResponse {
	return &StudentResponse{
		StudentID:          m.StudentID.String(),
		StudentSchoolID:    m.StudentSchoolID.String(),
		StudentAdmissionNo: m.StudentAdmissionNo,
		StudentFirstNameEn: m.StudentFirstNameEn,
		StudentLastNameEn:  m.StudentLastNameEn,
		StudentFirstNameSi: m.StudentFirstNameSi,
		StudentLastNameSi:  m.StudentLastNameSi,
		StudentGradeID:     m.StudentGradeID,
		StudentSectionID:   m.StudentSectionID,
		StudentParentID:    m.StudentParentID,
		StudentDateOfBirth: m.StudentDateOfBirth,
		StudentStatus:      m.StudentStatus,
		StudentCreatedAt:   m.StudentCreatedAt,
		StudentUpdatedAt:   m.StudentUpdatedAt,
	}
}

func NewStudentResponses(ms []model.StudentModel) []*StudentResponse {
	out := make([]*StudentResponse, 0, len(ms))
	for i := range ms {
		out = append(out, NewStudentResponse(&ms[i]))
	}
	return out
}
