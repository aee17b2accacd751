package dto

import (
	"time"

	"github.com/google/uuid"

	"vidyalaya_backend/internals/features/school/houses/model"
)

/* ===================== Houses ===================== */

type CreateHouseRequest struct {
	HouseNameEn string `json:"house_name_en" validate:"required,min=1,max=100"`
	HouseNameSi string `json:"house_name_si" validate:"omitempty,max=100"`
	HouseColor  string `json:"house_color" validate:"omitempty,max=20"`
}

func (r *CreateHouseRequest) ToModel(schoolID, actorID uuid.UUID) *model.HouseModel {
	return &model.HouseModel{
		HouseSchoolID:  schoolID,
		HouseNameEn:    r.HouseNameEn,
		HouseNameSi:    r.HouseNameSi,
		HouseColor:     r.HouseColor,
		HouseCreatedBy: actorID,
	}
}

type UpdateHouseRequest struct {
	HouseNameEn *string `json:"house_name_en" validate:"omitempty,min=1,max=100"`
	HouseNameSi *string `json:"house_name_si" validate:"omitempty,max=100"`
	HouseColor  *string `json:"house_color" validate:"omitempty,max=20"`
}

func (r *UpdateHouseRequest) ApplyToModel(m *model.HouseModel) {
	if r.HouseNameEn != nil {
		m.HouseNameEn = *r.HouseNameEn
	}
	if r.HouseNameSi != nil {
		m.HouseNameSi = *r.HouseNameSi
	}
	if r.HouseColor != nil {
		m.HouseColor = *r.HouseColor
	}
}

type HouseResponse struct {
	HouseID        string     `json:"house_id"`
	HouseSchoolID  string     `json:"house_school_id"`
	HouseNameEn    string     `json:"house_name_en"`
	HouseNameSi    string     `json:"house_name_si,omitempty"`
	HouseColor     string     `json:"house_color,omitempty"`
	HouseCreatedAt time.Time  `json:"house_created_at"`
	HouseUpdatedAt *time.Time `json:"house_updated_at,omitempty"`
}

func NewHouseResponse(m *model.HouseModel) *HouseResponse {
	return &HouseResponse{
		HouseID:        m.HouseID.String(),
		HouseSchoolID:  m.HouseSchoolID.String(),
		HouseNameEn:    m.HouseNameEn,
		HouseNameSi:    m.HouseNameSi,
		HouseColor:     m.HouseColor,
		HouseCreatedAt: m.HouseCreatedAt,
		HouseUpdatedAt: m.HouseUpdatedAt,
	}
}

func NewHouseResponses(ms []model.HouseModel) []*HouseResponse {
	out := make([]*HouseResponse, 0, len(ms))
	for i := range ms {
		out = append(out, NewHouseResponse(&ms[i]))
	}
	return out
}

/* ===================== Squads ===================== */

type CreateSquadRequest struct {
	SquadHouseID uuid.UUID `json:"squad_house_id" validate:"required"`
	SquadName    string    `json:"squad_name" validate:"required,min=1,max=100"`
}

func (r *CreateSquadRequest) ToModel(schoolID, actorID uuid.UUID) *model.SquadModel {
	return &model.SquadModel{
		SquadSchoolID:  schoolID,
		SquadHouseID:   r.SquadHouseID,
		SquadName:      r.SquadName,
		SquadCreatedBy: actorID,
	}
}

type SquadResponse struct {
	SquadID       string    `json:"squad_id"`
	SquadSchoolID string    `json:"squad_school_id"`
	SquadHouseID  string    `json:"squad_house_id"`
	SquadName     string    `json:"squad_name"`
	SquadCreatedAt time.Time `json:"squad_created_at"`
}

func NewSquadResponse(m *model.SquadModel) *SquadResponse {
	return &SquadResponse{
		SquadID:        m.SquadID.String(),
		SquadSchoolID:  m.SquadSchoolID.String(),
		SquadHouseID:   m.SquadHouseID.String(),
		SquadName:      m.SquadName,
		SquadCreatedAt: m.SquadCreatedAt,
	}
}

func NewSquadResponses(ms []model.SquadModel) []*SquadResponse {
	out := make([]*SquadResponse, 0, len(ms))
	for i := range ms {
		out = append(out, NewSquadResponse(&ms[i]))
	}
	return out
}
