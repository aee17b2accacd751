package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

const (
	CompetitionScopeOpen    = "open"
	CompetitionScopeGrade   = "grade"
	CompetitionScopeSection = "section"
)

type CompetitionModel struct {
	CompetitionID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:competition_id" json:"competition_id"`
	CompetitionSchoolID uuid.UUID `gorm:"type:uuid;not null;index;column:competition_school_id" json:"competition_school_id"`

	CompetitionNameEn string `gorm:"size:200;not null;column:competition_name_en" json:"competition_name_en"`
	CompetitionNameSi string `gorm:"size:200;column:competition_name_si" json:"competition_name_si"`

	// who may enter: open to all, or restricted to grades/sections
	CompetitionScope      string         `gorm:"size:20;not null;column:competition_scope" json:"competition_scope"`
	CompetitionGradeIDs   pq.StringArray `gorm:"type:uuid[];column:competition_grade_ids" json:"competition_grade_ids"`
	CompetitionSectionIDs pq.StringArray `gorm:"type:uuid[];column:competition_section_ids" json:"competition_section_ids"`

	CompetitionCreatedBy uuid.UUID  `gorm:"type:uuid;not null;column:competition_created_by" json:"competition_created_by"`
	CompetitionUpdatedBy *uuid.UUID `gorm:"type:uuid;column:competition_updated_by" json:"competition_updated_by,omitempty"`
	CompetitionCreatedAt time.Time  `gorm:"column:competition_created_at;autoCreateTime" json:"competition_created_at"`
	CompetitionUpdatedAt *time.Time `gorm:"column:competition_updated_at;autoUpdateTime" json:"competition_updated_at,omitempty"`
}

func (CompetitionModel) TableName() string {
	return "competitions"
}
