package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"

	"vidyalaya_backend/internals/features/school/exams/model"
)

/* ===================== Requests ===================== */

// ExamSheetRow is one student's mark inside a sheet.
type ExamSheetRow struct {
	StudentID       uuid.UUID  `json:"student_id" validate:"required"`
	Mark            float64    `json:"mark" validate:"gte=0"`
	GradingSchemaID *uuid.UUID `json:"grading_schema_id" validate:"omitempty"`
}

// SaveExamSheetRequest creates the sheet for its (year, term, grade) key, or
// replaces the rows of the existing one.
type SaveExamSheetRequest struct {
	ExamSheetYear    int            `json:"exam_sheet_year" validate:"required,gte=1900,lte=2200"`
	ExamSheetTerm    int            `json:"exam_sheet_term" validate:"required,gte=1,lte=3"`
	ExamSheetGradeID uuid.UUID      `json:"exam_sheet_grade_id" validate:"required"`
	ExamSheetRows    []ExamSheetRow `json:"exam_sheet_rows" validate:"required,min=1,dive"`
}

func (r *SaveExamSheetRequest) ToModel(schoolID, actorID uuid.UUID) (*model.ExamSheetModel, error) {
	rows, err := json.Marshal(r.ExamSheetRows)
	if err != nil {
		return nil, err
	}
	return &model.ExamSheetModel{
		ExamSheetSchoolID:  schoolID,
		ExamSheetYear:      r.ExamSheetYear,
		ExamSheetTerm:      r.ExamSheetTerm,
		ExamSheetGradeID:   r.ExamSheetGradeID,
		ExamSheetRows:      datatypes.JSON(rows),
		ExamSheetCreatedBy: actorID,
	}, nil
}

// ListExamSheetFilter narrows the sheet list; every field optional.
type ListExamSheetFilter struct {
	Year    *int
	Term    *int
	GradeID *uuid.UUID
}

/* ===================== Responses ===================== */

type ExamSheetResponse struct {
	ExamSheetID       string          `json:"exam_sheet_id"`
	ExamSheetSchoolID string          `json:"exam_sheet_school_id"`
	ExamSheetYear     int             `json:"exam_sheet_year"`
	ExamSheetTerm     int             `json:"exam_sheet_term"`
	ExamSheetGradeID  string          `json:"exam_sheet_grade_id"`
	ExamSheetRows     json.RawMessage `json:"exam_sheet_rows"`
	ExamSheetCreatedAt time.Time      `json:"exam_sheet_created_at"`
	ExamSheetUpdatedAt *time.Time     `json:"exam_sheet_updated_at,omitempty"`
}

func NewExamSheetResponse(m *model.ExamSheetModel) *ExamSheetResponse {
	return &ExamSheetResponse{
		ExamSheetID:        m.ExamSheetID.String(),
		ExamSheetSchoolID:  m.ExamSheetSchoolID.String(),
		ExamSheetYear:      m.ExamSheetYear,
		ExamSheetTerm:      m.ExamSheetTerm,
		ExamSheetGradeID:   m.ExamSheetGradeID.String(),
		ExamSheetRows:      json.RawMessage(m.ExamSheetRows),
		ExamSheetCreatedAt: m.ExamSheetCreatedAt,
		ExamSheetUpdatedAt: m.ExamSheetUpdatedAt,
	}
}

func NewExamSheetResponses(ms []model.ExamSheetModel) []*ExamSheetResponse {
	out := make([]*ExamSheetResponse, 0, len(ms))
	for i := range ms {
		out = append(out, NewExamSheetResponse(&ms[i]))
	}
	return out
}
