package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"vidyalaya_backend/internals/features/school/exams/dto"
	"vidyalaya_backend/internals/features/school/exams/model"
)

type ExamSheetStore interface {
	Upsert(ctx context.Context, m *model.ExamSheetModel) error
	FindByKey(ctx context.Context, schoolID uuid.UUID, year, term int, gradeID uuid.UUID) (*model.ExamSheetModel, error)
	List(ctx context.Context, schoolID uuid.UUID, f dto.ListExamSheetFilter) ([]model.ExamSheetModel, error)
	Delete(ctx context.Context, schoolID, id uuid.UUID) error
}

type ExamSheetService struct {
	store    ExamSheetStore
	validate *validator.Validate
}

func NewExamSheetService(store ExamSheetStore) *ExamSheetService {
	return &ExamSheetService{store: store, validate: validator.New()}
}

// Save creates the sheet for its (year, term, grade) key or replaces the rows
// of the existing one; repeated saves of the same payload are idempotent.
func (s *ExamSheetService) Save(ctx context.Context, schoolID uuid.UUID, req *dto.SaveExamSheetRequest, actorID uuid.UUID) (*dto.ExamSheetResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}
	m, err := req.ToModel(schoolID, actorID)
	if err != nil {
		return nil, err
	}
	if err := s.store.Upsert(ctx, m); err != nil {
		return nil, err
	}
	saved, err := s.store.FindByKey(ctx, schoolID, req.ExamSheetYear, req.ExamSheetTerm, req.ExamSheetGradeID)
	if err != nil {
		return nil, err
	}
	return dto.NewExamSheetResponse(saved), nil
}

// List returns sheets ordered by year descending then term ascending.
func (s *ExamSheetService) List(ctx context.Context, schoolID uuid.UUID, f dto.ListExamSheetFilter) ([]*dto.ExamSheetResponse, error) {
	ms, err := s.store.List(ctx, schoolID, f)
	if err != nil {
		return nil, err
	}
	return dto.NewExamSheetResponses(ms), nil
}

func (s *ExamSheetService) Delete(ctx context.Context, schoolID, id uuid.UUID) error {
	return s.store.Delete(ctx, schoolID, id)
}
