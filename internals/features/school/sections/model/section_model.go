package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
)

type SectionModel struct {
	SectionID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:section_id" json:"section_id"`
	SectionSchoolID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_sections_school_name_en,priority:1;column:section_school_id" json:"section_school_id"`

	SectionNameEn string `gorm:"size:100;not null;uniqueIndex:uq_sections_school_name_en,priority:2;column:section_name_en" json:"section_name_en"`
	SectionNameSi string `gorm:"size:100;column:section_name_si" json:"section_name_si"`

	// grades this section spans, references by id only
	SectionAssignedGradeIDs pq.StringArray `gorm:"type:uuid[];column:section_assigned_grade_ids" json:"section_assigned_grade_ids"`

	SectionCreatedBy uuid.UUID  `gorm:"type:uuid;not null;column:section_created_by" json:"section_created_by"`
	SectionUpdatedBy *uuid.UUID `gorm:"type:uuid;column:section_updated_by" json:"section_updated_by,omitempty"`
	SectionCreatedAt time.Time  `gorm:"column:section_created_at;autoCreateTime" json:"section_created_at"`
	SectionUpdatedAt *time.Time `gorm:"column:section_updated_at;autoUpdateTime" json:"section_updated_at,omitempty"`
}

func (SectionModel) TableName() string {
	return "sections"
}
