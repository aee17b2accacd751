package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"vidyalaya_backend/internals/features/school/competitions/dto"
	"vidyalaya_backend/internals/features/school/competitions/model"
)

type CompetitionStore interface {
	Insert(ctx context.Context, m *model.CompetitionModel) error
	FindByID(ctx context.Context, schoolID, id uuid.UUID) (*model.CompetitionModel, error)
	List(ctx context.Context, schoolID uuid.UUID) ([]model.CompetitionModel, error)
	Save(ctx context.Context, m *model.CompetitionModel) error
	Delete(ctx context.Context, schoolID, id uuid.UUID) error
}

type CompetitionService struct {
	store    CompetitionStore
	validate *validator.Validate
}

func NewCompetitionService(store CompetitionStore) *CompetitionService {
	v := validator.New()
	v.RegisterStructValidation(dto.CompetitionScopeValidation, dto.CreateCompetitionRequest{})
	return &CompetitionService{store: store, validate: v}
}

func (s *CompetitionService) Create(ctx context.Context, schoolID uuid.UUID, req *dto.CreateCompetitionRequest, actorID uuid.UUID) (*dto.CompetitionResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}
	m := req.ToModel(schoolID, actorID)
	if err := s.store.Insert(ctx, m); err != nil {
		return nil, err
	}
	return dto.NewCompetitionResponse(m), nil
}

// List returns competitions ordered by English name ascending.
func (s *CompetitionService) List(ctx context.Context, schoolID uuid.UUID) ([]*dto.CompetitionResponse, error) {
	ms, err := s.store.List(ctx, schoolID)
	if err != nil {
		return nil, err
	}
	return dto.NewCompetitionResponses(ms), nil
}

func (s *CompetitionService) GetByID(ctx context.Context, schoolID, id uuid.UUID) (*dto.CompetitionResponse, error) {
	m, err := s.store.FindByID(ctx, schoolID, id)
	if err != nil {
		return nil, err
	}
	return dto.NewCompetitionResponse(m), nil
}

// Update re-runs the scope cross-field rules against the merged record, so a
// patch cannot leave a grade-scoped competition without grade ids.
func (s *CompetitionService) Update(ctx context.Context, schoolID, id uuid.UUID, req *dto.UpdateCompetitionRequest, actorID uuid.UUID) (*dto.CompetitionResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}
	m, err := s.store.FindByID(ctx, schoolID, id)
	if err != nil {
		return nil, err
	}
	req.ApplyToModel(m)

	merged := dto.MergedScopeRequest(m)
	if err := s.validate.Struct(&merged); err != nil {
		return nil, err
	}

	m.CompetitionUpdatedBy = &actorID
	if err := s.store.Save(ctx, m); err != nil {
		return nil, err
	}
	return dto.NewCompetitionResponse(m), nil
}

func (s *CompetitionService) Delete(ctx context.Context, schoolID, id uuid.UUID) error {
	return s.store.Delete(ctx, schoolID, id)
}
