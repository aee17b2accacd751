package model

import (
	"time"

	"github.com/google/uuid"
)

type TeacherModel struct {
	TeacherID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:teacher_id" json:"teacher_id"`
	TeacherSchoolID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_teachers_school_employee_no,priority:1;column:teacher_school_id" json:"teacher_school_id"`

	TeacherEmployeeNo string `gorm:"size:50;not null;uniqueIndex:uq_teachers_school_employee_no,priority:2;column:teacher_employee_no" json:"teacher_employee_no"`
	TeacherNameEn     string `gorm:"size:200;not null;column:teacher_name_en" json:"teacher_name_en"`
	TeacherNameSi     string `gorm:"size:200;column:teacher_name_si" json:"teacher_name_si"`
	TeacherEmail      string `gorm:"size:200;column:teacher_email" json:"teacher_email"`
	TeacherPhone      string `gorm:"size:30;column:teacher_phone" json:"teacher_phone"`

	TeacherCreatedBy uuid.UUID  `gorm:"type:uuid;not null;column:teacher_created_by" json:"teacher_created_by"`
	TeacherUpdatedBy *uuid.UUID `gorm:"type:uuid;column:teacher_updated_by" json:"teacher_updated_by,omitempty"`
	TeacherCreatedAt time.Time  `gorm:"column:teacher_created_at;autoCreateTime" json:"teacher_created_at"`
	TeacherUpdatedAt *time.Time `gorm:"column:teacher_updated_at;autoUpdateTime" json:"teacher_updated_at,omitempty"`
}

func (TeacherModel) TableName() string {
	return "teachers"
}
