package dto

import (
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/lib/pq"

	"vidyalaya_backend/internals/features/school/competitions/model"
)

/* ===================== Requests ===================== */

type CreateCompetitionRequest struct {
	CompetitionNameEn     string      `json:"competition_name_en" validate:"required,min=1,max=200"`
	CompetitionNameSi     string      `json:"competition_name_si" validate:"omitempty,max=200"`
	CompetitionScope      string      `json:"competition_scope" validate:"required,oneof=open grade section"`
	CompetitionGradeIDs   []uuid.UUID `json:"competition_grade_ids" validate:"omitempty,dive,required"`
	CompetitionSectionIDs []uuid.UUID `json:"competition_section_ids" validate:"omitempty,dive,required"`
}

// CompetitionScopeValidation enforces the scope cross-field rules; every
// violated field is reported, not just the first.
//   - scope=grade: grade ids required, section ids forbidden
//   - scope=section: section ids required, grade ids forbidden
//   - scope=open: both forbidden
func CompetitionScopeValidation(sl validator.StructLevel) {
	req := sl.Current().Interface().(CreateCompetitionRequest)
	switch req.CompetitionScope {
	case model.CompetitionScopeGrade:
		if len(req.CompetitionGradeIDs) == 0 {
			sl.ReportError(req.CompetitionGradeIDs, "CompetitionGradeIDs", "competition_grade_ids", "required_for_grade_scope", "")
		}
		if len(req.CompetitionSectionIDs) > 0 {
			sl.ReportError(req.CompetitionSectionIDs, "CompetitionSectionIDs", "competition_section_ids", "forbidden_for_grade_scope", "")
		}
	case model.CompetitionScopeSection:
		if len(req.CompetitionSectionIDs) == 0 {
			sl.ReportError(req.CompetitionSectionIDs, "CompetitionSectionIDs", "competition_section_ids", "required_for_section_scope", "")
		}
		if len(req.CompetitionGradeIDs) > 0 {
			sl.ReportError(req.CompetitionGradeIDs, "CompetitionGradeIDs", "competition_grade_ids", "forbidden_for_section_scope", "")
		}
	case model.CompetitionScopeOpen:
		if len(req.CompetitionGradeIDs) > 0 {
			sl.ReportError(req.CompetitionGradeIDs, "CompetitionGradeIDs", "competition_grade_ids", "forbidden_for_open_scope", "")
		}
		if len(req.CompetitionSectionIDs) > 0 {
			sl.ReportError(req.CompetitionSectionIDs, "CompetitionSectionIDs", "competition_section_ids", "forbidden_for_open_scope", "")
		}
	}
}

func (r *CreateCompetitionRequest) ToModel(schoolID, actorID uuid.UUID) *model.CompetitionModel {
	return &model.CompetitionModel{
		CompetitionSchoolID:   schoolID,
		CompetitionNameEn:     r.CompetitionNameEn,
		CompetitionNameSi:     r.CompetitionNameSi,
		CompetitionScope:      r.CompetitionScope,
		CompetitionGradeIDs:   uuidsToPQ(r.CompetitionGradeIDs),
		CompetitionSectionIDs: uuidsToPQ(r.CompetitionSectionIDs),
		CompetitionCreatedBy:  actorID,
	}
}

type UpdateCompetitionRequest struct {
	CompetitionNameEn     *string      `json:"competition_name_en" validate:"omitempty,min=1,max=200"`
	CompetitionNameSi     *string      `json:"competition_name_si" validate:"omitempty,max=200"`
	CompetitionScope      *string      `json:"competition_scope" validate:"omitempty,oneof=open grade section"`
	CompetitionGradeIDs   *[]uuid.UUID `json:"competition_grade_ids" validate:"omitempty,dive,required"`
	CompetitionSectionIDs *[]uuid.UUID `json:"competition_section_ids" validate:"omitempty,dive,required"`
}

func (r *UpdateCompetitionRequest) ApplyToModel(m *model.CompetitionModel) {
	if r.CompetitionNameEn != nil {
		m.CompetitionNameEn = *r.CompetitionNameEn
	}
	if r.CompetitionNameSi != nil {
		m.CompetitionNameSi = *r.CompetitionNameSi
	}
	if r.CompetitionScope != nil {
		m.CompetitionScope = *r.CompetitionScope
	}
	if r.CompetitionGradeIDs != nil {
		m.CompetitionGradeIDs = uuidsToPQ(*r.CompetitionGradeIDs)
	}
	if r.CompetitionSectionIDs != nil {
		m.CompetitionSectionIDs = uuidsToPQ(*r.CompetitionSectionIDs)
	}
}

// MergedScopeRequest rebuilds a create-shaped request from a patched model so
// the scope cross-field rules can be re-checked after an update.
func MergedScopeRequest(m *model.CompetitionModel) CreateCompetitionRequest {
	return CreateCompetitionRequest{
		CompetitionNameEn:     m.CompetitionNameEn,
		CompetitionNameSi:     m.CompetitionNameSi,
		CompetitionScope:      m.CompetitionScope,
		CompetitionGradeIDs:   pqToUUIDs(m.CompetitionGradeIDs),
		CompetitionSectionIDs: pqToUUIDs(m.CompetitionSectionIDs),
	}
}

func uuidsToPQ(in []uuid.UUID) pq.StringArray {
	out := make(pq.StringArray, 0, len(in))
	for _, id := range in {
		out = append(out, id.String())
	}
	return out
}

func pqToUUIDs(in pq.StringArray) []uuid.UUID {
	out := make([]uuid.UUID, 0, len(in))
	for _, s := range in {
		if id, err := uuid.Parse(s); err == nil {
			out = append(out, id)
		}
	}
	return out
}

/* ===================== Responses ===================== */

type CompetitionResponse struct {
	CompetitionID         string     `json:"competition_id"`
	CompetitionSchoolID   string     `json:"competition_school_id"`
	CompetitionNameEn     string     `json:"competition_name_en"`
	CompetitionNameSi     string     `json:"competition_name_si,omitempty"`
	CompetitionScope      string     `json:"competition_scope"`
	CompetitionGradeIDs   []string   `json:"competition_grade_ids"`
	CompetitionSectionIDs []string   `json:"competition_section_ids"`
	CompetitionCreatedAt  time.Time  `json:"competition_created_at"`
	CompetitionUpdatedAt  *time.Time `json:"competition_updated_at,omitempty"`
}

func NewCompetitionResponse(m *model.CompetitionModel) *CompetitionResponse {
	return &CompetitionResponse{
		CompetitionID:         m.CompetitionID.String(),
		CompetitionSchoolID:   m.CompetitionSchoolID.String(),
		CompetitionNameEn:     m.CompetitionNameEn,
		CompetitionNameSi:     m.CompetitionNameSi,
		CompetitionScope:      m.CompetitionScope,
		CompetitionGradeIDs:   m.CompetitionGradeIDs,
		CompetitionSectionIDs: m.CompetitionSectionIDs,
		CompetitionCreatedAt:  m.CompetitionCreatedAt,
		CompetitionUpdatedAt:  m.CompetitionUpdatedAt,
	}
}

func NewCompetitionResponses(ms []model.CompetitionModel) []*CompetitionResponse {
	out := make([]*CompetitionResponse, 0, len(ms))
	for i := range ms {
		out = append(out, NewCompetitionResponse(&ms[i]))
	}
	return out
}
