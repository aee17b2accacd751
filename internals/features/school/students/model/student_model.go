package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	StudentStatusActive    = "active"
	StudentStatusLeft      = "left"
	StudentStatusGraduated = "graduated"
)

type StudentModel struct {
	StudentID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:student_id" json:"student_id"`
	StudentSchoolID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_students_school_admission,priority:1;column:student_school_id" json:"student_school_id"`

	StudentAdmissionNo string `gorm:"size:50;not null;uniqueIndex:uq_students_school_admission,priority:2;column:student_admission_no" json:"student_admission_no"`

	StudentFirstNameEn string `gorm:"size:100;not null;column:student_first_name_en" json:"student_first_name_en"`
	StudentLastNameEn  string `gorm:"size:100;not null;column:student_last_name_en" json:"student_last_name_en"`
	StudentFirstNameSi string `gorm:"size:100;column:student_first_name_si" json:"student_first_name_si"`
	StudentLastNameSi  string `gorm:"size:100;column:student_last_name_si" json:"student_last_name_si"`

	StudentGradeID   *uuid.UUID `gorm:"type:uuid;column:student_grade_id" json:"student_grade_id,omitempty"`
	StudentSectionID *uuid.UUID `gorm:"type:uuid;column:student_section_id" json:"student_section_id,omitempty"`
	StudentParentID  *uuid.UUID `gorm:"type:uuid;column:student_parent_id" json:"student_parent_id,omitempty"`

	StudentDateOfBirth *time.Time `gorm:"column:student_date_of_birth" json:"student_date_of_birth,omitempty"`
	StudentStatus      string     `gorm:"size:20;not null;default:active;column:student_status" json:"student_status"`

	StudentCreatedBy uuid.UUID  `gorm:"type:uuid;not null;column:student_created_by" json:"student_created_by"`
	StudentUpdatedBy *uuid.UUID `gorm:"type:uuid;column:student_updated_by" json:"student_updated_by,omitempty"`
	StudentCreatedAt time.Time  `gorm:"column:student_created_at;autoCreateTime" json:"student_created_at"`
	StudentUpdatedAt *time.Time `gorm:"column:student_updated_at;autoUpdateTime" json:"student_updated_at,omitempty"`
}

func (StudentModel) TableName() string {
	return "students"
}
