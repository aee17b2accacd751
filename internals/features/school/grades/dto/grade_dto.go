package dto

import (
	"time"

	"github.com/google/uuid"

	"vidyalaya_backend/internals/features/school/grades/model"
)

type CreateGradeRequest struct {
	GradeName  string `json:"grade_name" validate:"required,min=1,max=50"`
	GradeLevel int    `json:"grade_level" validate:"required,gte=1,lte=13"`
}

func (r *CreateGradeRequest) ToModel(schoolID, actorID uuid.UUID) *model.GradeModel {
	return &model.GradeModel{
		GradeSchoolID:  schoolID,
		GradeName:      r.GradeName,
		GradeLevel:     r.GradeLevel,
		GradeCreatedBy: actorID,
	}
}

type UpdateGradeRequest struct {
	GradeName  *string `json:"grade_name" validate:"omitempty,min=1,max=50"`
	GradeLevel *int    `json:"grade_level" validate:"omitempty,gte=1,lte=13"`
}

func (r *UpdateGradeRequest) ApplyToModel(m *model.GradeModel) {
	if r.GradeName != nil {
		m.GradeName = *r.GradeName
	}
	if r.GradeLevel != nil {
		m.GradeLevel = *r.GradeLevel
	}
}

type GradeResponse struct {
	GradeID       string     `json:"grade_id"`
	GradeSchoolID string     `json:"grade_school_id"`
	GradeName     string     `json:"grade_name"`
	GradeLevel    int        `json:"grade_level"`
	GradeCreatedAt time.Time `json:"grade_created_at"`
	GradeUpdatedAt *time.Time `json:"grade_updated_at,omitempty"`
}

func NewGradeResponse(m *model.GradeModel) *GradeResponse {
	return &GradeResponse{
		GradeID:        m.GradeID.String(),
		GradeSchoolID:  m.GradeSchoolID.String(),
		GradeName:      m.GradeName,
		GradeLevel:     m.GradeLevel,
		GradeCreatedAt: m.GradeCreatedAt,
		GradeUpdatedAt: m.GradeUpdatedAt,
	}
}

func NewGradeResponses(ms []model.GradeModel) []*GradeResponse {
	out := make([]*GradeResponse, 0, len(ms))
	for i := range ms {
		out = append(out, NewGradeResponse(&ms[i]))
	}
	return out
}
