package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

const (
	ResultTypeHouse       = "house"
	ResultTypeTeam        = "team"
	ResultTypeStudent     = "student"
	ResultTypeGrade       = "grade"
	ResultTypeIndependent = "independent"
)

// CompetitionResultModel records one placement of one competition year.
// At most one row per (school, competition, year, place).
type CompetitionResultModel struct {
	ResultID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:result_id" json:"result_id"`
	ResultSchoolID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_competition_results_key,priority:1;column:result_school_id" json:"result_school_id"`

	ResultCompetitionID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_competition_results_key,priority:2;column:result_competition_id" json:"result_competition_id"`
	ResultYear          int       `gorm:"not null;uniqueIndex:uq_competition_results_key,priority:3;column:result_year" json:"result_year"`
	ResultPlace         int       `gorm:"not null;uniqueIndex:uq_competition_results_key,priority:4;column:result_place" json:"result_place"`

	ResultType      string     `gorm:"size:20;not null;column:result_type" json:"result_type"`
	ResultHouseID   *uuid.UUID `gorm:"type:uuid;column:result_house_id" json:"result_house_id,omitempty"`
	ResultStudentID *uuid.UUID `gorm:"type:uuid;column:result_student_id" json:"result_student_id,omitempty"`
	ResultTeamID    *uuid.UUID `gorm:"type:uuid;column:result_team_id" json:"result_team_id,omitempty"`
	ResultGradeID   *uuid.UUID `gorm:"type:uuid;column:result_grade_id" json:"result_grade_id,omitempty"`

	// [{student_id, award}] free-form list of personal award winners
	ResultAwardWinners datatypes.JSON `gorm:"type:jsonb;column:result_award_winners" json:"result_award_winners,omitempty"`

	ResultCreatedBy uuid.UUID  `gorm:"type:uuid;not null;column:result_created_by" json:"result_created_by"`
	ResultUpdatedBy *uuid.UUID `gorm:"type:uuid;column:result_updated_by" json:"result_updated_by,omitempty"`
	ResultCreatedAt time.Time  `gorm:"column:result_created_at;autoCreateTime" json:"result_created_at"`
	ResultUpdatedAt *time.Time `gorm:"column:result_updated_at;autoUpdateTime" json:"result_updated_at,omitempty"`
}

func (CompetitionResultModel) TableName() string {
	return "competition_results"
}
