package model

import (
	"time"

	"github.com/google/uuid"
)

// ClubPositionModel is the per-school catalog of roster positions
// (president, secretary, ...). Name unique per school.
type ClubPositionModel struct {
	ClubPositionID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:club_position_id" json:"club_position_id"`
	ClubPositionSchoolID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_club_positions_school_name,priority:1;column:club_position_school_id" json:"club_position_school_id"`

	ClubPositionName string `gorm:"size:100;not null;uniqueIndex:uq_club_positions_school_name,priority:2;column:club_position_name" json:"club_position_name"`

	ClubPositionCreatedBy uuid.UUID  `gorm:"type:uuid;not null;column:club_position_created_by" json:"club_position_created_by"`
	ClubPositionCreatedAt time.Time  `gorm:"column:club_position_created_at;autoCreateTime" json:"club_position_created_at"`
	ClubPositionUpdatedAt *time.Time `gorm:"column:club_position_updated_at;autoUpdateTime" json:"club_position_updated_at,omitempty"`
}

func (ClubPositionModel) TableName() string {
	return "club_positions"
}
