package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"vidyalaya_backend/internals/features/school/sections/dto"
	"vidyalaya_backend/internals/features/school/sections/model"
)

type SectionStore interface {
	Insert(ctx context.Context, m *model.SectionModel) error
	FindByID(ctx context.Context, schoolID, id uuid.UUID) (*model.SectionModel, error)
	List(ctx context.Context, schoolID uuid.UUID) ([]model.SectionModel, error)
	Save(ctx context.Context, m *model.SectionModel) error
	Delete(ctx context.Context, schoolID, id uuid.UUID) error
}

type SectionService struct {
	store    SectionStore
	validate *validator.Validate
}

func NewSectionService(store SectionStore) *SectionService {
	return &SectionService{store: store, validate: validator.New()}
}

// Create persists a new section; a second section with the same English name
// in the same school surfaces as ErrDuplicateKey from the store.
func (s *SectionService) Create(ctx context.Context, schoolID uuid.UUID, req *dto.CreateSectionRequest, actorID uuid.UUID) (*dto.SectionResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}
	m := req.ToModel(schoolID, actorID)
	if err := s.store.Insert(ctx, m); err != nil {
		return nil, err
	}
	return dto.NewSectionResponse(m), nil
}

func (s *SectionService) GetByID(ctx context.Context, schoolID, id uuid.UUID) (*dto.SectionResponse, error) {
	m, err := s.store.FindByID(ctx, schoolID, id)
	if err != nil {
		return nil, err
	}
	return dto.NewSectionResponse(m), nil
}

// List returns sections ordered by English name ascending.
func (s *SectionService) List(ctx context.Context, schoolID uuid.UUID) ([]*dto.SectionResponse, error) {
	ms, err := s.store.List(ctx, schoolID)
	if err != nil {
		return nil, err
	}
	return dto.NewSectionResponses(ms), nil
}

func (s *SectionService) Update(ctx context.Context, schoolID, id uuid.UUID, req *dto.UpdateSectionRequest, actorID uuid.UUID) (*dto.SectionResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}
	m, err := s.store.FindByID(ctx, schoolID, id)
	if err != nil {
		return nil, err
	}
	req.ApplyToModel(m)
	m.SectionUpdatedBy = &actorID
	if err := s.store.Save(ctx, m); err != nil {
		return nil, err
	}
	return dto.NewSectionResponse(m), nil
}

func (s *SectionService) Delete(ctx context.Context, schoolID, id uuid.UUID) error {
	return s.store.Delete(ctx, schoolID, id)
}
