package dto

import (
	"time"

	"github.com/google/uuid"

	"vidyalaya_backend/internals/features/school/teachers/model"
)

type CreateTeacherRequest struct {
	TeacherEmployeeNo string `json:"teacher_employee_no" validate:"required,min=1,max=50"`
	TeacherNameEn     string `json:"teacher_name_en" validate:"required,min=1,max=200"`
	TeacherNameSi     string `json:"teacher_name_si" validate:"omitempty,max=200"`
	TeacherEmail      string `json:"teacher_email" validate:"omitempty,email,max=200"`
	TeacherPhone      string `json:"teacher_phone" validate:"omitempty,max=30"`
}

func (r *CreateTeacherRequest) ToModel(schoolID, actorID uuid.UUID) *model.TeacherModel {
	return &model.TeacherModel{
		TeacherSchoolID:   schoolID,
		TeacherEmployeeNo: r.TeacherEmployeeNo,
		TeacherNameEn:     r.TeacherNameEn,
		TeacherNameSi:     r.TeacherNameSi,
		TeacherEmail:      r.TeacherEmail,
		TeacherPhone:      r.TeacherPhone,
		TeacherCreatedBy:  actorID,
	}
}

type UpdateTeacherRequest struct {
	TeacherEmployeeNo *string `json:"teacher_employee_no" validate:"omitempty,min=1,max=50"`
	TeacherNameEn     *string `json:"teacher_name_en" validate:"omitempty,min=1,max=200"`
	TeacherNameSi     *string `json:"teacher_name_si" validate:"omitempty,max=200"`
	TeacherEmail      *string `json:"teacher_email" validate:"omitempty,email,max=200"`
	TeacherPhone      *string `json:"teacher_phone" validate:"omitempty,max=30"`
}

func (r *UpdateTeacherRequest) ApplyToModel(m *model.TeacherModel) {
	if r.TeacherEmployeeNo != nil {
		m.TeacherEmployeeNo = *r.TeacherEmployeeNo
	}
	if r.TeacherNameEn != nil {
		m.TeacherNameEn = *r.TeacherNameEn
	}
	if r.TeacherNameSi != nil {
		m.TeacherNameSi = *r.TeacherNameSi
	}
	if r.TeacherEmail != nil {
		m.TeacherEmail = *r.TeacherEmail
	}
	if r.TeacherPhone != nil {
		m.TeacherPhone = *r.TeacherPhone
	}
}

type TeacherResponse struct {
	TeacherID         string     `json:"teacher_id"`
	TeacherSchoolID   string     `json:"teacher_school_id"`
	TeacherEmployeeNo string     `json:"teacher_employee_no"`
	TeacherNameEn     string     `json:"teacher_name_en"`
	TeacherNameSi     string     `json:"teacher_name_si,omitempty"`
	TeacherEmail      string     `json:"teacher_email,omitempty"`
	TeacherPhone      string     `json:"teacher_phone,omitempty"`
	TeacherCreatedAt  time.Time  `json:"teacher_created_at"`
	TeacherUpdatedAt  *time.Time `json:"teacher_updated_at,omitempty"`
}

func NewTeacherResponse(m *model.TeacherModel) *TeacherResponse {
	return &TeacherResponse{
		TeacherID:         m.TeacherID.String(),
		TeacherSchoolID:   m.TeacherSchoolID.String(),
		TeacherEmployeeNo: m.TeacherEmployeeNo,
		TeacherNameEn:     m.TeacherNameEn,
		TeacherNameSi:     m.TeacherNameSi,
		TeacherEmail:      m.TeacherEmail,
		TeacherPhone:      m.TeacherPhone,
		TeacherCreatedAt:  m.TeacherCreatedAt,
		TeacherUpdatedAt:  m.TeacherUpdatedAt,
	}
}

func NewTeacherResponses(ms []model.TeacherModel) []*TeacherResponse {
	out := make([]*TeacherResponse, 0, len(ms))
	for i := range ms {
		out = append(out, NewTeacherResponse(&ms[i]))
	}
	return out
}
