package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"vidyalaya_backend/internals/features/school/clubs/model"
)

/* ===================== Roster ===================== */

// ClubMember is one roster entry inside the club's jsonb members list.
type ClubMember struct {
	StudentID  uuid.UUID  `json:"student_id"`
	PositionID *uuid.UUID `json:"position_id"`
}

func DecodeMembers(raw []byte) ([]ClubMember, error) {
	if len(raw) == 0 {
		return []ClubMember{}, nil
	}
	var out []ClubMember
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func EncodeMembers(members []ClubMember) ([]byte, error) {
	if members == nil {
		members = []ClubMember{}
	}
	return json.Marshal(members)
}

/* ===================== Requests ===================== */

type CreateClubRequest struct {
	ClubNameEn      string  `json:"club_name_en" validate:"required,min=1,max=150"`
	ClubNameSi      string  `json:"club_name_si" validate:"omitempty,max=150"`
	ClubDescription *string `json:"club_description" validate:"omitempty,max=500"`
}

func (r *CreateClubRequest) ToModel(schoolID, actorID uuid.UUID) *model.ClubModel {
	return &model.ClubModel{
		ClubSchoolID:    schoolID,
		ClubNameEn:      r.ClubNameEn,
		ClubNameSi:      r.ClubNameSi,
		ClubDescription: r.ClubDescription,
		ClubMembers:     []byte("[]"),
		ClubCreatedBy:   actorID,
	}
}

type UpdateClubRequest struct {
	ClubNameEn      *string `json:"club_name_en" validate:"omitempty,min=1,max=150"`
	ClubNameSi      *string `json:"club_name_si" validate:"omitempty,max=150"`
	ClubDescription *string `json:"club_description" validate:"omitempty,max=500"`
}

func (r *UpdateClubRequest) ApplyToModel(m *model.ClubModel) {
	if r.ClubNameEn != nil {
		m.ClubNameEn = *r.ClubNameEn
	}
	if r.ClubNameSi != nil {
		m.ClubNameSi = *r.ClubNameSi
	}
	if r.ClubDescription != nil {
		m.ClubDescription = r.ClubDescription
	}
}

// AssignClubMemberRequest puts a student on the roster; if already present the
// old entry is replaced.
type AssignClubMemberRequest struct {
	StudentID  uuid.UUID  `json:"student_id" validate:"required"`
	PositionID *uuid.UUID `json:"position_id" validate:"omitempty"`
}

type CreateClubPositionRequest struct {
	ClubPositionName string `json:"club_position_name" validate:"required,min=1,max=100"`
}

func (r *CreateClubPositionRequest) ToModel(schoolID, actorID uuid.UUID) *model.ClubPositionModel {
	return &model.ClubPositionModel{
		ClubPositionSchoolID:  schoolID,
		ClubPositionName:      r.ClubPositionName,
		ClubPositionCreatedBy: actorID,
	}
}

/* ===================== Responses ===================== */

type ClubResponse struct {
	ClubID          string       `json:"club_id"`
	ClubSchoolID    string       `json:"club_school_id"`
	ClubNameEn      string       `json:"club_name_en"`
	ClubNameSi      string       `json:"club_name_si,omitempty"`
	ClubDescription *string      `json:"club_description,omitempty"`
	ClubMembers     []ClubMember `json:"club_members"`
	ClubCreatedAt   time.Time    `json:"club_created_at"`
	ClubUpdatedAt   *time.Time   `json:"club_updated_at,omitempty"`
}

func NewClubResponse(m *model.ClubModel) (*ClubResponse, error) {
	members, err := DecodeMembers(m.ClubMembers)
	if err != nil {
		return nil, err
	}
	return &ClubResponse{
		ClubID:          m.ClubID.String(),
		ClubSchoolID:    m.ClubSchoolID.String(),
		ClubNameEn:      m.ClubNameEn,
		ClubNameSi:      m.ClubNameSi,
		ClubDescription: m.ClubDescription,
		ClubMembers:     members,
		ClubCreatedAt:   m.ClubCreatedAt,
		ClubUpdatedAt:   m.ClubUpdatedAt,
	}, nil
}

func NewClubResponses(ms []model.ClubModel) ([]*ClubResponse, error) {
	out := make([]*ClubResponse, 0, len(ms))
	for i := range ms {
		r, err := NewClubResponse(&ms[i])
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

type ClubPositionResponse struct {
	ClubPositionID       string    `json:"club_position_id"`
	ClubPositionSchoolID string    `json:"club_position_school_id"`
	ClubPositionName     string    `json:"club_position_name"`
	ClubPositionCreatedAt time.Time `json:"club_position_created_at"`
}

func NewClubPositionResponse(m *model.ClubPositionModel) *ClubPositionResponse {
	return &ClubPositionResponse{
		ClubPositionID:        m.ClubPositionID.String(),
		ClubPositionSchoolID:  m.ClubPositionSchoolID.String(),
		ClubPositionName:      m.ClubPositionName,
		ClubPositionCreatedAt: m.ClubPositionCreatedAt,
	}
}

func NewClubPositionResponses(ms []model.ClubPositionModel) []*ClubPositionResponse {
	out := make([]*ClubPositionResponse, 0, len(ms))
	for i := range ms {
		out = append(out, NewClubPositionResponse(&ms[i]))
	}
	return out
}
