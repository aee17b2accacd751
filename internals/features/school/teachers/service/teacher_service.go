package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"vidyalaya_backend/internals/features/school/teachers/dto"
	"vidyalaya_backend/internals/features/school/teachers/model"
)

type TeacherStore interface {
	Insert(ctx context.Context, m *model.TeacherModel) error
	FindByID(ctx context.Context, schoolID, id uuid.UUID) (*model.TeacherModel, error)
	List(ctx context.Context, schoolID uuid.UUID) ([]model.TeacherModel, error)
	Save(ctx context.Context, m *model.TeacherModel) error
	Delete(ctx context.Context, schoolID, id uuid.UUID) error
}

type TeacherService struct {
	store    TeacherStore
	validate *validator.Validate
}

func NewTeacherService(store TeacherStore) *TeacherService {
	return &TeacherService{store: store, validate: validator.New()}
}

func (s *TeacherService) Create(ctx context.Context, schoolID uuid.UUID, req *dto.CreateTeacherRequest, actorID uuid.UUID) (*dto.TeacherResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}
	m := req.ToModel(schoolID, actorID)
	if err := s.store.Insert(ctx, m); err != nil {
		return nil, err
	}
	return dto.NewTeacherResponse(m), nil
}

// List returns staff ordered by English name ascending.
func (s *TeacherService) List(ctx context.Context, schoolID uuid.UUID) ([]*dto.TeacherResponse, error) {
	ms, err := s.store.List(ctx, schoolID)
	if err != nil {
		return nil, err
	}
	return dto.NewTeacherResponses(ms), nil
}

func (s *TeacherService) GetByID(ctx context.Context, schoolID, id uuid.UUID) (*dto.TeacherResponse, error) {
	m, err := s.store.FindByID(ctx, schoolID, id)
	if err != nil {
		return nil, err
	}
	return dto.NewTeacherResponse(m), nil
}

func (s *TeacherService) Update(ctx context.Context, schoolID, id uuid.UUID, req *dto.UpdateTeacherRequest, actorID uuid.UUID) (*dto.TeacherResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}
	m, err := s.store.FindByID(ctx, schoolID, id)
	if err != nil {
		return nil, err
	}
	req.ApplyToModel(m)
	m.TeacherUpdatedBy = &actorID
	if err := s.store.Save(ctx, m); err != nil {
		return nil, err
	}
	return dto.NewTeacherResponse(m), nil
}

func (s *TeacherService) Delete(ctx context.Context, schoolID, id uuid.UUID) error {
	return s.store.Delete(ctx, schoolID, id)
}
