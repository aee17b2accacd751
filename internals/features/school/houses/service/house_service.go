package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"vidyalaya_backend/internals/features/school/houses/dto"
	"vidyalaya_backend/internals/features/school/houses/model"
)

type HouseStore interface {
	Insert(ctx context.Context, m *model.HouseModel) error
	FindByID(ctx context.Context, schoolID, id uuid.UUID) (*model.HouseModel, error)
	List(ctx context.Context, schoolID uuid.UUID) ([]model.HouseModel, error)
	Save(ctx context.Context, m *model.HouseModel) error
	Delete(ctx context.Context, schoolID, id uuid.UUID) error

	InsertSquad(ctx context.Context, m *model.SquadModel) error
	ListSquads(ctx context.Context, schoolID uuid.UUID, houseID *uuid.UUID) ([]model.SquadModel, error)
	DeleteSquad(ctx context.Context, schoolID, id uuid.UUID) error
}

type HouseService struct {
	store    HouseStore
	validate *validator.Validate
}

func NewHouseService(store HouseStore) *HouseService {
	return &HouseService{store: store, validate: validator.New()}
}

func (s *HouseService) Create(ctx context.Context, schoolID uuid.UUID, req *dto.CreateHouseRequest, actorID uuid.UUID) (*dto.HouseResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}
	m := req.ToModel(schoolID, actorID)
	if err := s.store.Insert(ctx, m); err != nil {
		return nil, err
	}
	return dto.NewHouseResponse(m), nil
}

// List returns houses ordered by English name ascending.
func (s *HouseService) List(ctx context.Context, schoolID uuid.UUID) ([]*dto.HouseResponse, error) {
	ms, err := s.store.List(ctx, schoolID)
	if err != nil {
		return nil, err
	}
	return dto.NewHouseResponses(ms), nil
}

func (s *HouseService) Update(ctx context.Context, schoolID, id uuid.UUID, req *dto.UpdateHouseRequest, actorID uuid.UUID) (*dto.HouseResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}
	m, err := s.store.FindByID(ctx, schoolID, id)
	if err != nil {
		return nil, err
	}
	req.ApplyToModel(m)
	m.HouseUpdatedBy = &actorID
	if err := s.store.Save(ctx, m); err != nil {
		return nil, err
	}
	return dto.NewHouseResponse(m), nil
}

func (s *HouseService) Delete(ctx context.Context, schoolID, id uuid.UUID) error {
	return s.store.Delete(ctx, schoolID, id)
}

/* ===================== Squads ===================== */

func (s *HouseService) CreateSquad(ctx context.Context, schoolID uuid.UUID, req *dto.CreateSquadRequest, actorID uuid.UUID) (*dto.SquadResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}
	// squads hang off an existing house of the same school
	if _, err := s.store.FindByID(ctx, schoolID, req.SquadHouseID); err != nil {
		return nil, err
	}
	m := req.ToModel(schoolID, actorID)
	if err := s.store.InsertSquad(ctx, m); err != nil {
		return nil, err
	}
	return dto.NewSquadResponse(m), nil
}

// ListSquads returns squads ordered by name ascending, optionally filtered
// by house.
func (s *HouseService) ListSquads(ctx context.Context, schoolID uuid.UUID, houseID *uuid.UUID) ([]*dto.SquadResponse, error) {
	ms, err := s.store.ListSquads(ctx, schoolID, houseID)
	if err != nil {
		return nil, err
	}
	return dto.NewSquadResponses(ms), nil
}

func (s *HouseService) DeleteSquad(ctx context.Context, schoolID, id uuid.UUID) error {
	return s.store.DeleteSquad(ctx, schoolID, id)
}
