package service

import (
	"context"
	"errors"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"vidyalaya_backend/internals/features/school/prefects/dto"
	"vidyalaya_backend/internals/features/school/prefects/model"
	"vidyalaya_backend/internals/helpers/dberr"
)

type PrefectStore interface {
	InsertPosition(ctx context.Context, m *model.PrefectPositionModel) error
	ListPositions(ctx context.Context, schoolID uuid.UUID) ([]model.PrefectPositionModel, error)
	DeletePosition(ctx context.Context, schoolID, id uuid.UUID) error

	FindYear(ctx context.Context, schoolID uuid.UUID, year int) (*model.PrefectYearModel, error)
	InsertYear(ctx context.Context, m *model.PrefectYearModel) error
	ListYears(ctx context.Context, schoolID uuid.UUID) ([]model.PrefectYearModel, error)
	SaveAppointments(ctx context.Context, schoolID uuid.UUID, year int, apps []byte, actorID uuid.UUID) error
}

type PrefectService struct {
	store    PrefectStore
	validate *validator.Validate
}

func NewPrefectService(store PrefectStore) *PrefectService {
	return &PrefectService{store: store, validate: validator.New()}
}

/* ===================== Positions ===================== */

func (s *PrefectService) CreatePosition(ctx context.Context, schoolID uuid.UUID, req *dto.CreatePrefectPositionRequest, actorID uuid.UUID) (*dto.PrefectPositionResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}
	m := req.ToModel(schoolID, actorID)
	if err := s.store.InsertPosition(ctx, m); err != nil {
		return nil, err
	}
	return dto.NewPrefectPositionResponse(m), nil
}

// ListPositions returns the catalog ordered by name ascending.
func (s *PrefectService) ListPositions(ctx context.Context, schoolID uuid.UUID) ([]*dto.PrefectPositionResponse, error) {
	ms, err := s.store.ListPositions(ctx, schoolID)
	if err != nil {
		return nil, err
	}
	return dto.NewPrefectPositionResponses(ms), nil
}

func (s *PrefectService) DeletePosition(ctx context.Context, schoolID, id uuid.UUID) error {
	return s.store.DeletePosition(ctx, schoolID, id)
}

/* ===================== Years ===================== */

// Appoint puts a student on the year's board, creating the year row on first
// use. A student holds at most one entry per year: any prior entry is dropped
// before the new one is appended.
func (s *PrefectService) Appoint(ctx context.Context, schoolID uuid.UUID, year int, req *dto.AppointPrefectRequest, actorID uuid.UUID) (*dto.PrefectYearResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}

	m, err := s.store.FindYear(ctx, schoolID, year)
	if errors.Is(err, dberr.ErrNotFound) {
		m = &model.PrefectYearModel{
			PrefectYearSchoolID:     schoolID,
			PrefectYearYear:         year,
			PrefectYearAppointments: []byte("[]"),
			PrefectYearCreatedBy:    actorID,
		}
		if err := s.store.InsertYear(ctx, m); err != nil && !errors.Is(err, dberr.ErrDuplicateKey) {
			return nil, err
		}
		// duplicate key means a concurrent create won, reload
		if m, err = s.store.FindYear(ctx, schoolID, year); err != nil {
			return nil, err
		}
	} else if err != nil {
		return nil, err
	}

	apps, err := dto.DecodeAppointments(m.PrefectYearAppointments)
	if err != nil {
		return nil, err
	}

	kept := make([]dto.PrefectAppointment, 0, len(apps)+1)
	for _, a := range apps {
		if a.StudentID != req.StudentID {
			kept = append(kept, a)
		}
	}
	kept = append(kept, dto.PrefectAppointment{
		StudentID:  req.StudentID,
		PositionID: req.PositionID,
		Rank:       req.Rank,
	})

	raw, err := dto.EncodeAppointments(kept)
	if err != nil {
		return nil, err
	}
	if err := s.store.SaveAppointments(ctx, schoolID, year, raw, actorID); err != nil {
		return nil, err
	}
	m.PrefectYearAppointments = raw
	return dto.NewPrefectYearResponse(m)
}

// Dismiss drops the student's entry from the year's board.
func (s *PrefectService) Dismiss(ctx context.Context, schoolID uuid.UUID, year int, studentID, actorID uuid.UUID) (*dto.PrefectYearResponse, error) {
	m, err := s.store.FindYear(ctx, schoolID, year)
	if err != nil {
		return nil, err
	}
	apps, err := dto.DecodeAppointments(m.PrefectYearAppointments)
	if err != nil {
		return nil, err
	}

	kept := make([]dto.PrefectAppointment, 0, len(apps))
	removed := false
	for _, a := range apps {
		if a.StudentID == studentID {
			removed = true
			continue
		}
		kept = append(kept, a)
	}
	if !removed {
		return nil, dberr.ErrNotFound
	}

	raw, err := dto.EncodeAppointments(kept)
	if err != nil {
		return nil, err
	}
	if err := s.store.SaveAppointments(ctx, schoolID, year, raw, actorID); err != nil {
		return nil, err
	}
	m.PrefectYearAppointments = raw
	return dto.NewPrefectYearResponse(m)
}

func (s *PrefectService) GetYear(ctx context.Context, schoolID uuid.UUID, year int) (*dto.PrefectYearResponse, error) {
	m, err := s.store.FindYear(ctx, schoolID, year)
	if err != nil {
		return nil, err
	}
	return dto.NewPrefectYearResponse(m)
}

// ListYears returns boards ordered by year descending.
func (s *PrefectService) ListYears(ctx context.Context, schoolID uuid.UUID) ([]*dto.PrefectYearResponse, error) {
	ms, err := s.store.ListYears(ctx, schoolID)
	if err != nil {
		return nil, err
	}
	return dto.NewPrefectYearResponses(ms)
}
