package model

import (
	"time"

	"github.com/google/uuid"
)

type HouseModel struct {
	HouseID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:house_id" json:"house_id"`
	HouseSchoolID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_houses_school_name_en,priority:1;column:house_school_id" json:"house_school_id"`

	HouseNameEn string `gorm:"size:100;not null;uniqueIndex:uq_houses_school_name_en,priority:2;column:house_name_en" json:"house_name_en"`
	HouseNameSi string `gorm:"size:100;column:house_name_si" json:"house_name_si"`
	HouseColor  string `gorm:"size:20;column:house_color" json:"house_color"`

	HouseCreatedBy uuid.UUID  `gorm:"type:uuid;not null;column:house_created_by" json:"house_created_by"`
	HouseUpdatedBy *uuid.UUID `gorm:"type:uuid;column:house_updated_by" json:"house_updated_by,omitempty"`
	HouseCreatedAt time.Time  `gorm:"column:house_created_at;autoCreateTime" json:"house_created_at"`
	HouseUpdatedAt *time.Time `gorm:"column:house_updated_at;autoUpdateTime" json:"house_updated_at,omitempty"`
}

func (HouseModel) TableName() string {
	return "houses"
}
