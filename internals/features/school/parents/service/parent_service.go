package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"vidyalaya_backend/internals/features/school/parents/dto"
	"vidyalaya_backend/internals/features/school/parents/model"
)

type ParentStore interface {
	Insert(ctx context.Context, m *model.ParentModel) error
	FindByID(ctx context.Context, schoolID, id uuid.UUID) (*model.ParentModel, error)
	List(ctx context.Context, schoolID uuid.UUID) ([]model.ParentModel, error)
	Save(ctx context.Context, m *model.ParentModel) error
	Delete(ctx context.Context, schoolID, id uuid.UUID) error
}

type ParentService struct {
	store    ParentStore
	validate *validator.Validate
}

func NewParentService(store ParentStore) *ParentService {
	return &ParentService{store: store, validate: validator.New()}
}

func (s *ParentService) Create(ctx context.Context, schoolID uuid.UUID, req *dto.CreateParentRequest, actorID uuid.UUID) (*dto.ParentResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}
	m := req.ToModel(schoolID, actorID)
	m.RecomputeFullNames()
	if err := s.store.Insert(ctx, m); err != nil {
		return nil, err
	}
	return dto.NewParentResponse(m), nil
}

// List returns parents ordered by English full name ascending.
func (s *ParentService) List(ctx context.Context, schoolID uuid.UUID) ([]*dto.ParentResponse, error) {
	ms, err := s.store.List(ctx, schoolID)
	if err != nil {
		return nil, err
	}
	return dto.NewParentResponses(ms), nil
}

func (s *ParentService) GetByID(ctx context.Context, schoolID, id uuid.UUID) (*dto.ParentResponse, error) {
	m, err := s.store.FindByID(ctx, schoolID, id)
	if err != nil {
		return nil, err
	}
	return dto.NewParentResponse(m), nil
}

// Update re-derives the full-name columns after applying the patch, so they
// stay consistent with their parts no matter which parts changed.
func (s *ParentService) Update(ctx context.Context, schoolID, id uuid.UUID, req *dto.UpdateParentRequest, actorID uuid.UUID) (*dto.ParentResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}
	m, err := s.store.FindByID(ctx, schoolID, id)
	if err != nil {
		return nil, err
	}
	req.ApplyToModel(m)
	m.RecomputeFullNames()
	m.ParentUpdatedBy = &actorID
	if err := s.store.Save(ctx, m); err != nil {
		return nil, err
	}
	return dto.NewParentResponse(m), nil
}

func (s *ParentService) Delete(ctx context.Context, schoolID, id uuid.UUID) error {
	return s.store.Delete(ctx, schoolID, id)
}
