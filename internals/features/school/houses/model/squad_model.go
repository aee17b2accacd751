package model

import (
	"time"

	"github.com/google/uuid"
)

// SquadModel is a named sub-group of a house (junior/senior squads etc).
type SquadModel struct {
	SquadID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:squad_id" json:"squad_id"`
	SquadSchoolID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_squads_school_house_name,priority:1;column:squad_school_id" json:"squad_school_id"`
	SquadHouseID  uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_squads_school_house_name,priority:2;column:squad_house_id" json:"squad_house_id"`

	SquadName string `gorm:"size:100;not null;uniqueIndex:uq_squads_school_house_name,priority:3;column:squad_name" json:"squad_name"`

	SquadCreatedBy uuid.UUID  `gorm:"type:uuid;not null;column:squad_created_by" json:"squad_created_by"`
	SquadUpdatedBy *uuid.UUID `gorm:"type:uuid;column:squad_updated_by" json:"squad_updated_by,omitempty"`
	SquadCreatedAt time.Time  `gorm:"column:squad_created_at;autoCreateTime" json:"squad_created_at"`
	SquadUpdatedAt *time.Time `gorm:"column:squad_updated_at;autoUpdateTime" json:"squad_updated_at,omitempty"`
}

func (SquadModel) TableName() string {
	return "squads"
}
