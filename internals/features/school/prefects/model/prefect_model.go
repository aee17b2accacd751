package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// PrefectPositionModel is the per-school catalog of prefect ranks
// (head prefect, deputy, ...). Name unique per school.
type PrefectPositionModel struct {
	PrefectPositionID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:prefect_position_id" json:"prefect_position_id"`
	PrefectPositionSchoolID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_prefect_positions_school_name,priority:1;column:prefect_position_school_id" json:"prefect_position_school_id"`

	PrefectPositionName string `gorm:"size:100;not null;uniqueIndex:uq_prefect_positions_school_name,priority:2;column:prefect_position_name" json:"prefect_position_name"`

	PrefectPositionCreatedBy uuid.UUID  `gorm:"type:uuid;not null;column:prefect_position_created_by" json:"prefect_position_created_by"`
	PrefectPositionCreatedAt time.Time  `gorm:"column:prefect_position_created_at;autoCreateTime" json:"prefect_position_created_at"`
	PrefectPositionUpdatedAt *time.Time `gorm:"column:prefect_position_updated_at;autoUpdateTime" json:"prefect_position_updated_at,omitempty"`
}

func (PrefectPositionModel) TableName() string {
	return "prefect_positions"
}

// PrefectYearModel holds one year's board as jsonb:
// [{student_id, position_id, rank}], at most one entry per student.
// At most one row per (school, year).
type PrefectYearModel struct {
	PrefectYearID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:prefect_year_id" json:"prefect_year_id"`
	PrefectYearSchoolID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_prefect_years_school_year,priority:1;column:prefect_year_school_id" json:"prefect_year_school_id"`

	PrefectYearYear         int            `gorm:"not null;uniqueIndex:uq_prefect_years_school_year,priority:2;column:prefect_year_year" json:"prefect_year_year"`
	PrefectYearAppointments datatypes.JSON `gorm:"type:jsonb;not null;default:'[]';column:prefect_year_appointments" json:"prefect_year_appointments"`

	PrefectYearCreatedBy uuid.UUID  `gorm:"type:uuid;not null;column:prefect_year_created_by" json:"prefect_year_created_by"`
	PrefectYearUpdatedBy *uuid.UUID `gorm:"type:uuid;column:prefect_year_updated_by" json:"prefect_year_updated_by,omitempty"`
	PrefectYearCreatedAt time.Time  `gorm:"column:prefect_year_created_at;autoCreateTime" json:"prefect_year_created_at"`
	PrefectYearUpdatedAt *time.Time `gorm:"column:prefect_year_updated_at;autoUpdateTime" json:"prefect_year_updated_at,omitempty"`
}

func (PrefectYearModel) TableName() string {
	return "prefect_years"
}
