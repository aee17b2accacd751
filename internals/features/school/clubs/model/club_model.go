package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

// ClubModel carries its member roster inline as jsonb:
// [{student_id, position_id|null}], at most one entry per student.
type ClubModel struct {
	ClubID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:club_id" json:"club_id"`
	ClubSchoolID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_clubs_school_name_en,priority:1;column:club_school_id" json:"club_school_id"`

	ClubNameEn      string  `gorm:"size:150;not null;uniqueIndex:uq_clubs_school_name_en,priority:2;column:club_name_en" json:"club_name_en"`
	ClubNameSi      string  `gorm:"size:150;column:club_name_si" json:"club_name_si"`
	ClubDescription *string `gorm:"size:500;column:club_description" json:"club_description,omitempty"`

	ClubMembers datatypes.JSON `gorm:"type:jsonb;not null;default:'[]';column:club_members" json:"club_members"`

	ClubCreatedBy uuid.UUID  `gorm:"type:uuid;not null;column:club_created_by" json:"club_created_by"`
	ClubUpdatedBy *uuid.UUID `gorm:"type:uuid;column:club_updated_by" json:"club_updated_by,omitempty"`
	ClubCreatedAt time.Time  `gorm:"column:club_created_at;autoCreateTime" json:"club_created_at"`
	ClubUpdatedAt *time.Time `gorm:"column:club_updated_at;autoUpdateTime" json:"club_updated_at,omitempty"`
}

func (ClubModel) TableName() string {
	return "clubs"
}
