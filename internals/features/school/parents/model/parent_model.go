package model

import (
	"strings"
	"time"

	"github.com/google/uuid"
)

type ParentModel struct {
	ParentID       uuid.UUID `gorm:"type:uuid;default:gen_random_uuid();primaryKey;column:parent_id" json:"parent_id"`
	ParentSchoolID uuid.UUID `gorm:"type:uuid;not null;index;column:parent_school_id" json:"parent_school_id"`

	ParentFirstNameEn string `gorm:"size:100;not null;column:parent_first_name_en" json:"parent_first_name_en"`
	ParentLastNameEn  string `gorm:"size:100;not null;column:parent_last_name_en" json:"parent_last_name_en"`
	ParentFirstNameSi string `gorm:"size:100;column:parent_first_name_si" json:"parent_first_name_si"`
	ParentLastNameSi  string `gorm:"size:100;column:parent_last_name_si" json:"parent_last_name_si"`

	// derived, recomputed on every save so they never drift from the parts
	ParentFullNameEn string `gorm:"size:200;not null;column:parent_full_name_en" json:"parent_full_name_en"`
	ParentFullNameSi string `gorm:"size:200;column:parent_full_name_si" json:"parent_full_name_si"`

	ParentPhone string `gorm:"size:30;column:parent_phone" json:"parent_phone"`
	ParentEmail string `gorm:"size:200;column:parent_email" json:"parent_email"`

	ParentCreatedBy uuid.UUID  `gorm:"type:uuid;not null;column:parent_created_by" json:"parent_created_by"`
	ParentUpdatedBy *uuid.UUID `gorm:"type:uuid;column:parent_updated_by" json:"parent_updated_by,omitempty"`
	ParentCreatedAt time.Time  `gorm:"column:parent_created_at;autoCreateTime" json:"parent_created_at"`
	ParentUpdatedAt *time.Time `gorm:"column:parent_updated_at;autoUpdateTime" json:"parent_updated_at,omitempty"`
}

func (ParentModel) TableName() string {
	return "parents"
}

// RecomputeFullNames rebuilds the derived full-name columns from their parts.
// Callers must invoke this before any write.
func (m *ParentModel) RecomputeFullNames() {
	m.ParentFullNameEn = joinNonEmpty(m.ParentFirstNameEn, m.ParentLastNameEn)
	m.ParentFullNameSi = joinNonEmpty(m.ParentFirstNameSi, m.ParentLastNameSi)
}

func joinNonEmpty(parts ...string) string {
	kept := parts[:0:0]
	for _, p := range parts {
		if s := strings.TrimSpace(p); s != "" {
			kept = append(kept, s)
		}
	}
	return strings.Join(kept, " ")
}
