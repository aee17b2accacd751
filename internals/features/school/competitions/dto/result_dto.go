package dto

import (
	"encoding/json"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"gorm.io/datatypes"

	"vidyalaya_backend/internals/features/school/competitions/model"
)

const (
	RecordModeMerge   = "merge"
	RecordModeReplace = "replace"
)

/* ===================== Requests ===================== */

// ResultEntry is one placement inside a recording payload.
type ResultEntry struct {
	ResultPlace        int             `json:"result_place" validate:"required,gte=1"`
	ResultType         string          `json:"result_type" validate:"required,oneof=house team student grade independent"`
	ResultHouseID      *uuid.UUID      `json:"result_house_id" validate:"omitempty"`
	ResultStudentID    *uuid.UUID      `json:"result_student_id" validate:"omitempty"`
	ResultTeamID       *uuid.UUID      `json:"result_team_id" validate:"omitempty"`
	ResultGradeID      *uuid.UUID      `json:"result_grade_id" validate:"omitempty"`
	ResultAwardWinners json.RawMessage `json:"result_award_winners" validate:"omitempty"`
}

// ResultEntryValidation enforces the winner-reference cross-field rules.
//   - type=house: house id required; type=independent: house id forbidden
//   - type=student/team/grade: the matching reference id is required
func ResultEntryValidation(sl validator.StructLevel) {
	e := sl.Current().Interface().(ResultEntry)
	switch e.ResultType {
	case model.ResultTypeHouse:
		if e.ResultHouseID == nil {
			sl.ReportError(e.ResultHouseID, "ResultHouseID", "result_house_id", "required_for_house_type", "")
		}
	case model.ResultTypeIndependent:
		if e.ResultHouseID != nil {
			sl.ReportError(e.ResultHouseID, "ResultHouseID", "result_house_id", "forbidden_for_independent_type", "")
		}
	case model.ResultTypeStudent:
		if e.ResultStudentID == nil {
			sl.ReportError(e.ResultStudentID, "ResultStudentID", "result_student_id", "required_for_student_type", "")
		}
	case model.ResultTypeTeam:
		if e.ResultTeamID == nil {
			sl.ReportError(e.ResultTeamID, "ResultTeamID", "result_team_id", "required_for_team_type", "")
		}
	case model.ResultTypeGrade:
		if e.ResultGradeID == nil {
			sl.ReportError(e.ResultGradeID, "ResultGradeID", "result_grade_id", "required_for_grade_type", "")
		}
	}
}

// RecordResultsRequest records one competition year's placements in a single
// call. Mode "merge" (default) leaves previously recorded places that are
// absent from the payload untouched; "replace" clears them first.
type RecordResultsRequest struct {
	ResultYear int           `json:"result_year" validate:"required,gte=1900,lte=2200"`
	ResultMode string        `json:"result_mode" validate:"omitempty,oneof=merge replace"`
	Results    []ResultEntry `json:"results" validate:"required,min=1,dive"`
}

func (e *ResultEntry) ToModel(schoolID, competitionID uuid.UUID, year int, actorID uuid.UUID) *model.CompetitionResultModel {
	m := &model.CompetitionResultModel{
		ResultSchoolID:      schoolID,
		ResultCompetitionID: competitionID,
		ResultYear:          year,
		ResultPlace:         e.ResultPlace,
		ResultType:          e.ResultType,
		ResultHouseID:       e.ResultHouseID,
		ResultStudentID:     e.ResultStudentID,
		ResultTeamID:        e.ResultTeamID,
		ResultGradeID:       e.ResultGradeID,
		ResultCreatedBy:     actorID,
	}
	if len(e.ResultAwardWinners) > 0 {
		m.ResultAwardWinners = datatypes.JSON(e.ResultAwardWinners)
	}
	return m
}

/* ===================== Responses ===================== */

type ResultResponse struct {
	ResultID            string          `json:"result_id"`
	ResultSchoolID      string          `json:"result_school_id"`
	ResultCompetitionID string          `json:"result_competition_id"`
	ResultYear          int             `json:"result_year"`
	ResultPlace         int             `json:"result_place"`
	ResultType          string          `json:"result_type"`
	ResultHouseID       *uuid.UUID      `json:"result_house_id,omitempty"`
	ResultStudentID     *uuid.UUID      `json:"result_student_id,omitempty"`
	ResultTeamID        *uuid.UUID      `json:"result_team_id,omitempty"`
	ResultGradeID       *uuid.UUID      `json:"result_grade_id,omitempty"`
	ResultAwardWinners  json.RawMessage `json:"result_award_winners,omitempty"`
	ResultCreatedAt     time.Time       `json:"result_created_at"`
	ResultUpdatedAt     *time.Time      `json:"result_updated_at,omitempty"`
}

func NewResultResponse(m *model.CompetitionResultModel) *ResultResponse {
	return &ResultResponse{
		ResultID:            m.ResultID.String(),
		ResultSchoolID:      m.ResultSchoolID.String(),
		ResultCompetitionID: m.ResultCompetitionID.String(),
		ResultYear:          m.ResultYear,
		ResultPlace:         m.ResultPlace,
		ResultType:          m.ResultType,
		ResultHouseID:       m.ResultHouseID,
		ResultStudentID:     m.ResultStudentID,
		ResultTeamID:        m.ResultTeamID,
		ResultGradeID:       m.ResultGradeID,
		ResultAwardWinners:  json.RawMessage(m.ResultAwardWinners),
		ResultCreatedAt:     m.ResultCreatedAt,
		ResultUpdatedAt:     m.ResultUpdatedAt,
	}
}

func NewResultResponses(ms []model.CompetitionResultModel) []*ResultResponse {
	out := make([]*ResultResponse, 0, len(ms))
	for i := range ms {
		out = append(out, NewResultResponse(&ms[i]))
	}
	return out
}

// HousePointsEntry is one row of the per-year leaderboard.
type HousePointsEntry struct {
	HouseID string `json:"house_id"`
	Points  int    `json:"points"`
}
