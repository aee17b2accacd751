package dto

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"

	"vidyalaya_backend/internals/features/school/prefects/model"
)

/* ===================== Appointments ===================== */

// PrefectAppointment is one entry inside a year's jsonb board.
type PrefectAppointment struct {
	StudentID  uuid.UUID `json:"student_id"`
	PositionID uuid.UUID `json:"position_id"`
	Rank       int       `json:"rank"`
}

func DecodeAppointments(raw []byte) ([]PrefectAppointment, error) {
	if len(raw) == 0 {
		return []PrefectAppointment{}, nil
	}
	var out []PrefectAppointment
	if err := json.Unmarshal(raw, &out); err != nil {
		return nil, err
	}
	return out, nil
}

func EncodeAppointments(apps []PrefectAppointment) ([]byte, error) {
	if apps == nil {
		apps = []PrefectAppointment{}
	}
	return json.Marshal(apps)
}

/* ===================== Requests ===================== */

type CreatePrefectPositionRequest struct {
	PrefectPositionName string `json:"prefect_position_name" validate:"required,min=1,max=100"`
}

func (r *CreatePrefectPositionRequest) ToModel(schoolID, actorID uuid.UUID) *model.PrefectPositionModel {
	return &model.PrefectPositionModel{
		PrefectPositionSchoolID:  schoolID,
		PrefectPositionName:      r.PrefectPositionName,
		PrefectPositionCreatedBy: actorID,
	}
}

// AppointPrefectRequest puts a student on the year's board; if already listed
// the old entry is replaced.
type AppointPrefectRequest struct {
	StudentID  uuid.UUID `json:"student_id" validate:"required"`
	PositionID uuid.UUID `json:"position_id" validate:"required"`
	Rank       int       `json:"rank" validate:"gte=0"`
}

/* ===================== Responses ===================== */

type PrefectPositionResponse struct {
	PrefectPositionID        string    `json:"prefect_position_id"`
	PrefectPositionSchoolID  string    `json:"prefect_position_school_id"`
	PrefectPositionName      string    `json:"prefect_position_name"`
	PrefectPositionCreatedAt time.Time `json:"prefect_position_created_at"`
}

func NewPrefectPositionResponse(m *model.PrefectPositionModel) *PrefectPositionResponse {
	return &PrefectPositionResponse{
		PrefectPositionID:        m.PrefectPositionID.String(),
		PrefectPositionSchoolID:  m.PrefectPositionSchoolID.String(),
		PrefectPositionName:      m.PrefectPositionName,
		PrefectPositionCreatedAt: m.PrefectPositionCreatedAt,
	}
}

func NewPrefectPositionResponses(ms []model.PrefectPositionModel) []*PrefectPositionResponse {
	out := make([]*PrefectPositionResponse, 0, len(ms))
	for i := range ms {
		out = append(out, NewPrefectPositionResponse(&ms[i]))
	}
	return out
}

type PrefectYearResponse struct {
	PrefectYearID           string               `json:"prefect_year_id"`
	PrefectYearSchoolID     string               `json:"prefect_year_school_id"`
	PrefectYearYear         int                  `json:"prefect_year_year"`
	PrefectYearAppointments []PrefectAppointment `json:"prefect_year_appointments"`
	PrefectYearCreatedAt    time.Time            `json:"prefect_year_created_at"`
	PrefectYearUpdatedAt    *time.Time           `json:"prefect_year_updated_at,omitempty"`
}

func NewPrefectYearResponse(m *model.PrefectYearModel) (*PrefectYearResponse, error) {
	apps, err := DecodeAppointments(m.PrefectYearAppointments)
	if err != nil {
		return nil, err
	}
	return &PrefectYearResponse{
		PrefectYearID:           m.PrefectYearID.String(),
		PrefectYearSchoolID:     m.PrefectYearSchoolID.String(),
		PrefectYearYear:         m.PrefectYearYear,
		PrefectYearAppointments: apps,
		PrefectYearCreatedAt:    m.PrefectYearCreatedAt,
		PrefectYearUpdatedAt:    m.PrefectYearUpdatedAt,
	}, nil
}

func NewPrefectYearResponses(ms []model.PrefectYearModel) ([]*PrefectYearResponse, error) {
	out := make([]*PrefectYearResponse, 0, len(ms))
	for i := range ms {
		r, err := NewPrefectYearResponse(&ms[i])
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}
