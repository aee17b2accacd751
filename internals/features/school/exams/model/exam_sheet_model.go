package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ExamSheetModel holds one grade's marks for one exam term.
// At most one row per (school, year, term, grade).
type ExamSheetModel struct {
	ExamSheetID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:exam_sheet_id" json:"exam_sheet_id"`
	ExamSheetSchoolID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_exam_sheets_key,priority:1;column:exam_sheet_school_id" json:"exam_sheet_school_id"`

	ExamSheetYear    int       `gorm:"not null;uniqueIndex:uq_exam_sheets_key,priority:2;column:exam_sheet_year" json:"exam_sheet_year"`
	ExamSheetTerm    int       `gorm:"not null;uniqueIndex:uq_exam_sheets_key,priority:3;column:exam_sheet_term" json:"exam_sheet_term"`
	ExamSheetGradeID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_exam_sheets_key,priority:4;column:exam_sheet_grade_id" json:"exam_sheet_grade_id"`

	// [{student_id, mark, grading_schema_id}]
	ExamSheetRows datatypes.JSON `gorm:"type:jsonb;not null;column:exam_sheet_rows" json:"exam_sheet_rows"`

	ExamSheetCreatedBy uuid.UUID  `gorm:"type:uuid;not null;column:exam_sheet_created_by" json:"exam_sheet_created_by"`
	ExamSheetUpdatedBy *uuid.UUID `gorm:"type:uuid;column:exam_sheet_updated_by" json:"exam_sheet_updated_by,omitempty"`
	ExamSheetCreatedAt time.Time  `gorm:"column:exam_sheet_created_at;autoCreateTime" json:"exam_sheet_created_at"`
	ExamSheetUpdatedAt *time.Time `gorm:"column:exam_sheet_updated_at;autoUpdateTime" json:"exam_sheet_updated_at,omitempty"`
}

func (ExamSheetModel) TableName() string {
	return "exam_result_sheets"
}
