package model

import (
	"time"

	"github.com/google/uuid"
)

const (
	AttendanceStatusPresent = "present"
	AttendanceStatusAbsent  = "absent"
	AttendanceStatusLate    = "late"
)

// AttendanceModel is one student's record for one day.
// At most one row per (school, student, date).
type AttendanceModel struct {
	AttendanceID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:attendance_id" json:"attendance_id"`
	AttendanceSchoolID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_attendance_key,priority:1;column:attendance_school_id" json:"attendance_school_id"`

	AttendanceStudentID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_attendance_key,priority:2;column:attendance_student_id" json:"attendance_student_id"`
	AttendanceDate      time.Time `gorm:"type:date;not null;uniqueIndex:uq_attendance_key,priority:3;column:attendance_date" json:"attendance_date"`

	AttendanceStatus string  `gorm:"size:10;not null;column:attendance_status" json:"attendance_status"`
	AttendanceNote   *string `gorm:"size:300;column:attendance_note" json:"attendance_note,omitempty"`

	AttendanceMarkedBy  uuid.UUID  `gorm:"type:uuid;not null;column:attendance_marked_by" json:"attendance_marked_by"`
	AttendanceCreatedAt time.Time  `gorm:"column:attendance_created_at;autoCreateTime" json:"attendance_created_at"`
	AttendanceUpdatedAt *time.Time `gorm:"column:attendance_updated_at;autoUpdateTime" json:"attendance_updated_at,omitempty"`
}

func (AttendanceModel) TableName() string {
	return "attendance_records"
}
