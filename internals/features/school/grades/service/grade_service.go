package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"vidyalaya_backend/internals/features/school/grades/dto"
	"vidyalaya_backend/internals/features/school/grades/model"
)

type GradeStore interface {
	Insert(ctx context.Context, m *model.GradeModel) error
	FindByID(ctx context.Context, schoolID, id uuid.UUID) (*model.GradeModel, error)
	List(ctx context.Context, schoolID uuid.UUID) ([]model.GradeModel, error)
	Save(ctx context.Context, m *model.GradeModel) error
	Delete(ctx context.Context, schoolID, id uuid.UUID) error
}

type GradeService struct {
	store    GradeStore
	validate *validator.Validate
}

func NewGradeService(store GradeStore) *GradeService {
	return &GradeService{store: store, validate: validator.New()}
}

func (s *GradeService) Create(ctx context.Context, schoolID uuid.UUID, req *dto.CreateGradeRequest, actorID uuid.UUID) (*dto.GradeResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}
	m := req.ToModel(schoolID, actorID)
	if err := s.store.Insert(ctx, m); err != nil {
		return nil, err
	}
	return dto.NewGradeResponse(m), nil
}

func (s *GradeService) GetByID(ctx context.Context, schoolID, id uuid.UUID) (*dto.GradeResponse, error) {
	m, err := s.store.FindByID(ctx, schoolID, id)
	if err != nil {
		return nil, err
	}
	return dto.NewGradeResponse(m), nil
}

// List returns grades ordered by level ascending then name ascending.
func (s *GradeService) List(ctx context.Context, schoolID uuid.UUID) ([]*dto.GradeResponse, error) {
	ms, err := s.store.List(ctx, schoolID)
	if err != nil {
		return nil, err
	}
	return dto.NewGradeResponses(ms), nil
}

func (s *GradeService) Update(ctx context.Context, schoolID, id uuid.UUID, req *dto.UpdateGradeRequest, actorID uuid.UUID) (*dto.GradeResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}
	m, err := s.store.FindByID(ctx, schoolID, id)
	if err != nil {
		return nil, err
	}
	req.ApplyToModel(m)
	m.GradeUpdatedBy = &actorID
	if err := s.store.Save(ctx, m); err != nil {
		return nil, err
	}
	return dto.NewGradeResponse(m), nil
}

func (s *GradeService) Delete(ctx context.Context, schoolID, id uuid.UUID) error {
	return s.store.Delete(ctx, schoolID, id)
}
