package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"vidyalaya_backend/internals/features/school/attendance/dto"
	"vidyalaya_backend/internals/features/school/attendance/model"
)

type AttendanceStore interface {
	Upsert(ctx context.Context, m *model.AttendanceModel) error
	List(ctx context.Context, schoolID uuid.UUID, f dto.ListAttendanceFilter) ([]model.AttendanceModel, error)
	Delete(ctx context.Context, schoolID, id uuid.UUID) error
}

type AttendanceService struct {
	store    AttendanceStore
	validate *validator.Validate
}

func NewAttendanceService(store AttendanceStore) *AttendanceService {
	return &AttendanceService{store: store, validate: validator.New()}
}

// Mark records one status for one (student, date); marking the same day again
// overwrites the previous status.
func (s *AttendanceService) Mark(ctx context.Context, schoolID uuid.UUID, req *dto.MarkAttendanceRequest, actorID uuid.UUID) (*dto.AttendanceResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}
	m := req.ToModel(schoolID, actorID)
	if err := s.store.Upsert(ctx, m); err != nil {
		return nil, err
	}
	return dto.NewAttendanceResponse(m), nil
}

// List returns records ordered by date descending then student id ascending.
func (s *AttendanceService) List(ctx context.Context, schoolID uuid.UUID, f dto.ListAttendanceFilter) ([]*dto.AttendanceResponse, error) {
	ms, err := s.store.List(ctx, schoolID, f)
	if err != nil {
		return nil, err
	}
	return dto.NewAttendanceResponses(ms), nil
}

func (s *AttendanceService) Delete(ctx context.Context, schoolID, id uuid.UUID) error {
	return s.store.Delete(ctx, schoolID, id)
}
