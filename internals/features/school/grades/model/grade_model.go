package model

import (
	"time"

	"github.com/google/uuid"
)

type GradeModel struct {
	GradeID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:grade_id" json:"grade_id"`
	GradeSchoolID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_grades_school_name,priority:1;column:grade_school_id" json:"grade_school_id"`

	GradeName  string `gorm:"size:50;not null;uniqueIndex:uq_grades_school_name,priority:2;column:grade_name" json:"grade_name"`
	GradeLevel int    `gorm:"not null;column:grade_level" json:"grade_level"`

	GradeCreatedBy uuid.UUID  `gorm:"type:uuid;not null;column:grade_created_by" json:"grade_created_by"`
	GradeUpdatedBy *uuid.UUID `gorm:"type:uuid;column:grade_updated_by" json:"grade_updated_by,omitempty"`
	GradeCreatedAt time.Time  `gorm:"column:grade_created_at;autoCreateTime" json:"grade_created_at"`
	GradeUpdatedAt *time.Time `gorm:"column:grade_updated_at;autoUpdateTime" json:"grade_updated_at,omitempty"`
}

func (GradeModel) TableName() string {
	return "grades"
}
