package dto

import (
	"time"

	"github.com/google/uuid"

	"vidyalaya_backend/internals/features/school/parents/model"
)

type CreateParentRequest struct {
	ParentFirstNameEn string `json:"parent_first_name_en" validate:"required,min=1,max=100"`
	ParentLastNameEn  string `json:"parent_last_name_en" validate:"required,min=1,max=100"`
	ParentFirstNameSi string `json:"parent_first_name_si" validate:"omitempty,max=100"`
	ParentLastNameSi  string `json:"parent_last_name_si" validate:"omitempty,max=100"`
	ParentPhone       string `json:"parent_phone" validate:"omitempty,max=30"`
	ParentEmail       string `json:"parent_email" validate:"omitempty,email,max=200"`
}

func (r *CreateParentRequest) ToModel(schoolID, actorID uuid.UUID) *model.ParentModel {
	return &model.ParentModel{
		ParentSchoolID:    schoolID,
		ParentFirstNameEn: r.ParentFirstNameEn,
		ParentLastNameEn:  r.ParentLastNameEn,
		ParentFirstNameSi: r.ParentFirstNameSi,
		ParentLastNameSi:  r.ParentLastNameSi,
		ParentPhone:       r.ParentPhone,
		ParentEmail:       r.ParentEmail,
		ParentCreatedBy:   actorID,
	}
}

type UpdateParentRequest struct {
	ParentFirstNameEn *string `json:"parent_first_name_en" validate:"omitempty,min=1,max=100"`
	ParentLastNameEn  *string `json:"parent_last_name_en" validate:"omitempty,min=1,max=100"`
	ParentFirstNameSi *string `json:"parent_first_name_si" validate:"omitempty,max=100"`
	ParentLastNameSi  *string `json:"parent_last_name_si" validate:"omitempty,max=100"`
	ParentPhone       *string `json:"parent_phone" validate:"omitempty,max=30"`
	ParentEmail       *string `json:"parent_email" validate:"omitempty,email,max=200"`
}

func (r *UpdateParentRequest) ApplyToModel(m *model.ParentModel) {
	if r.ParentFirstNameEn != nil {
		m.ParentFirstNameEn = *r.ParentFirstNameEn
	}
	if r.ParentLastNameEn != nil {
		m.ParentLastNameEn = *r.ParentLastNameEn
	}
	if r.ParentFirstNameSi != nil {
		m.ParentFirstNameSi = *r.ParentFirstNameSi
	}
	if r.ParentLastNameSi != nil {
		m.ParentLastNameSi = *r.ParentLastNameSi
	}
	if r.ParentPhone != nil {
		m.ParentPhone = *r.ParentPhone
	}
	if r.ParentEmail != nil {
		m.ParentEmail = *r.ParentEmail
	}
}

type ParentResponse struct {
	ParentID          string     `json:"parent_id"`
	ParentSchoolID    string     `json:"parent_school_id"`
	ParentFirstNameEn string     `json:"parent_first_name_en"`
	ParentLastNameEn  string     `json:"parent_last_name_en"`
	ParentFirstNameSi string     `json:"parent_first_name_si,omitempty"`
	ParentLastNameSi  string     `json:"parent_last_name_si,omitempty"`
	ParentFullNameEn  string     `json:"parent_full_name_en"`
	ParentFullNameSi  string     `json:"parent_full_name_si,omitempty"`
	ParentPhone       string     `json:"parent_phone,omitempty"`
	ParentEmail       string     `json:"parent_email,omitempty"`
	ParentCreatedAt   time.Time  `json:"parent_created_at"`
	ParentUpdatedAt   *time.Time `json:"parent_updated_at,omitempty"`
}

func NewParentResponse(m *model.ParentModel) *ParentResponse {
	return &ParentResponse{
		ParentID:          m.ParentID.String(),
		ParentSchoolID:    m.ParentSchoolID.String(),
		ParentFirstNameEn: m.ParentFirstNameEn,
		ParentLastNameEn:  m.ParentLastNameEn,
		ParentFirstNameSi: m.ParentFirstNameSi,
		ParentLastNameSi:  m.ParentLastNameSi,
		ParentFullNameEn:  m.ParentFullNameEn,
		ParentFullNameSi:  m.ParentFullNameSi,
		ParentPhone:       m.ParentPhone,
		ParentEmail:       m.ParentEmail,
		ParentCreatedAt:   m.ParentCreatedAt,
		ParentUpdatedAt:   m.ParentUpdatedAt,
	}
}

func NewParentResponses(ms []model.ParentModel) []*ParentResponse {
	out := make([]*ParentResponse, 0, len(ms))
	for i := range ms {
		out = append(out, NewParentResponse(&ms[i]))
	}
	return out
}
