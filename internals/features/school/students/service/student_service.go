package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"vidyalaya_backend/internals/features/school/students/dto"
	"vidyalaya_backend/internals/features/school/students/model"
)

// StudentStore is the persistence adapter; implementations return dberr
// sentinels, never raw driver errors.
type StudentStore interface {
	Insert(ctx context.Context, m *model.StudentModel) error
	FindByID(ctx context.Context, schoolID, id uuid.UUID) (*model.StudentModel, error)
	List(ctx context.Context, schoolID uuid.UUID, f dto.ListStudentFilter) ([]model.StudentModel, error)
	Save(ctx context.Context, m *model.StudentModel) error
	Delete(ctx context.Context, schoolID, id uuid.UUID) error
}

type StudentService struct {
	store    StudentStore
	validate *validator.Validate
}

func NewStudentService(store StudentStore) *StudentService {
	return &StudentService{store: store, validate: validator.New()}
}

func (s *StudentService) Create(ctx context.Context, schoolID uuid.UUID, req *dto.CreateStudentRequest, actorID uuid.UUID) (*dto.StudentResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}
	m := req.ToModel(schoolID, actorID)
	if err := s.store.Insert(ctx, m); err != nil {
		return nil, err
	}
	return dto.NewStudentResponse(m), nil
}

func (s *StudentService) GetByID(ctx context.Context, schoolID, id uuid.UUID) (*dto.StudentResponse, error) {
	m, err := s.store.FindByID(ctx, schoolID, id)
	if err != nil {
		return nil, err
	}
	return dto.NewStudentResponse(m), nil
}

// List returns students ordered by admission number ascending.
func (s *StudentService) List(ctx context.Context, schoolID uuid.UUID, f dto.ListStudentFilter) ([]*dto.StudentResponse, error) {
	ms, err := s.store.List(ctx, schoolID, f)
	if err != nil {
		return nil, err
	}
	return dto.NewStudentResponses(ms), nil
}

func (s *StudentService) Update(ctx context.Context, schoolID, id uuid.UUID, req *dto.UpdateStudentRequest, actorID uuid.UUID) (*dto.StudentResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}
	// scoped lookup doubles as the tenant-isolation check
	m, err := s.store.FindByID(ctx, schoolID, id)
	if err != nil {
		return nil, err
	}
	req.ApplyToModel(m)
	m.StudentUpdatedBy = &actorID
	if err := s.store.Save(ctx, m); err != nil {
		return nil, err
	}
	return dto.NewStudentResponse(m), nil
}

func (s *StudentService) Delete(ctx context.Context, schoolID, id uuid.UUID) error {
	return s.store.Delete(ctx, schoolID, id)
}
