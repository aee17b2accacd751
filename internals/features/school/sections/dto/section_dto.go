package dto

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"vidyalaya_backend/internals/features/school/sections/model"
)

type CreateSectionRequest struct {
	SectionNameEn           string      `json:"section_name_en" validate:"required,min=1,max=100"`
	SectionNameSi           string      `json:"section_name_si" validate:"omitempty,max=100"`
	SectionAssignedGradeIDs []uuid.UUID `json:"section_assigned_grade_ids" validate:"omitempty,dive,required"`
}

func (r *CreateSectionRequest) ToModel(schoolID, actorID uuid.UUID) *model.SectionModel {
	return &model.SectionModel{
		SectionSchoolID:         schoolID,
		SectionNameEn:           r.SectionNameEn,
		SectionNameSi:           r.SectionNameSi,
		SectionAssignedGradeIDs: uuidsToPQ(r.SectionAssignedGradeIDs),
		SectionCreatedBy:        actorID,
	}
}

type UpdateSectionRequest struct {
	SectionNameEn           *string      `json:"section_name_en" validate:"omitempty,min=1,max=100"`
	SectionNameSi           *string      `json:"section_name_si" validate:"omitempty,max=100"`
	SectionAssignedGradeIDs *[]uuid.UUID `json:"section_assigned_grade_ids" validate:"omitempty,dive,required"`
}

func (r *UpdateSectionRequest) ApplyToModel(m *model.SectionModel) {
	if r.SectionNameEn != nil {
		m.SectionNameEn = *r.SectionNameEn
	}
	if r.SectionNameSi != nil {
		m.SectionNameSi = *r.SectionNameSi
	}
	if r.SectionAssignedGradeIDs != nil {
		m.SectionAssignedGradeIDs = uuidsToPQ(*r.SectionAssignedGradeIDs)
	}
}

func uuidsToPQ(in []uuid.UUID) pq.StringArray {
	out := make(pq.StringArray, 0, len(in))
	for _, id := range in {
		out = append(out, id.String())
	}
	return out
}

type SectionResponse struct {
	SectionID               string     `json:"section_id"`
	SectionSchoolID         string     `json:"section_school_id"`
	SectionNameEn           string     `json:"section_name_en"`
	SectionNameSi           string     `json:"section_name_si,omitempty"`
	SectionAssignedGradeIDs []string   `json:"section_assigned_grade_ids"`
	SectionCreatedAt        time.Time  `json:"section_created_at"`
	SectionUpdatedAt        *time.Time `json:"section_updated_at,omitempty"`
}

func NewSectionResponse(m *model.SectionModel) *SectionResponse {
	return &SectionResponse{
		SectionID:               m.SectionID.String(),
		SectionSchoolID:         m.SectionSchoolID.String(),
		SectionNameEn:           m.SectionNameEn,
		SectionNameSi:           m.SectionNameSi,
		SectionAssignedGradeIDs: m.SectionAssignedGradeIDs,
		SectionCreatedAt:        m.SectionCreatedAt,
		SectionUpdatedAt:        m.SectionUpdatedAt,
	}
}

func NewSectionResponses(ms []model.SectionModel) []*SectionResponse {
	out := make([]*SectionResponse, 0, len(ms))
	for i := range ms {
		out = append(out, NewSectionResponse(&ms[i]))
	}
	return out
}
