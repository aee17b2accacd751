package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"vidyalaya_backend/internals/features/school/houses/dto"
	"vidyalaya_backend/internals/features/school/houses/model"
	"vidyalaya_backend/internals/helpers/dberr"
)

// AssignmentStore persists house assignments keyed by
// (school, student, year). Upsert must be atomic on that key.
type AssignmentStore interface {
	Upsert(ctx context.Context, m *model.StudentHouseAssignmentModel) error
	DeleteByKey(ctx context.Context, schoolID, studentID uuid.UUID, year int) error
	List(ctx context.Context, schoolID uuid.UUID, f dto.ListAssignmentFilter) ([]model.StudentHouseAssignmentModel, error)
}

type AssignmentService struct {
	store    AssignmentStore
	validate *validator.Validate
}

func NewAssignmentService(store AssignmentStore) *AssignmentService {
	return &AssignmentService{store: store, validate: validator.New()}
}

// Assign upserts the student's house for the year; last write wins, no
// history. A nil house id unassigns instead (the row is deleted, never
// written with a null house). Returns nil when the call unassigned.
func (s *AssignmentService) Assign(ctx context.Context, schoolID uuid.UUID, req *dto.AssignStudentHouseRequest, actorID uuid.UUID) (*dto.AssignmentResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}
	return s.assign(ctx, schoolID, req, actorID)
}

func (s *AssignmentService) assign(ctx context.Context, schoolID uuid.UUID, req *dto.AssignStudentHouseRequest, actorID uuid.UUID) (*dto.AssignmentResponse, error) {
	if req.AssignmentHouseID == nil {
		// unassign; already-absent rows are fine, the outcome is the same
		if err := s.store.DeleteByKey(ctx, schoolID, req.AssignmentStudentID, req.AssignmentYear); err != nil && !errors.Is(err, dberr.ErrNotFound) {
			return nil, err
		}
		return nil, nil
	}

	assignedDate := time.Now()
	if req.AssignmentAssignedDate != nil {
		assignedDate = *req.AssignmentAssignedDate
	}

	m := &model.StudentHouseAssignmentModel{
		AssignmentSchoolID:     schoolID,
		AssignmentStudentID:    req.AssignmentStudentID,
		AssignmentYear:         req.AssignmentYear,
		AssignmentHouseID:      *req.AssignmentHouseID,
		AssignmentGradeID:      req.AssignmentGradeID,
		AssignmentAssignedDate: assignedDate,
		AssignmentAssignedBy:   actorID,
	}
	if err := s.store.Upsert(ctx, m); err != nil {
		return nil, err
	}
	return dto.NewAssignmentResponse(m), nil
}

// BulkAssign applies one year's worth of tuples as independent upserts
// (fan-out, no shared transaction); each tuple's outcome is reported on its
// own. Duplicate student ids within one batch collapse to the last tuple
// before fan-out, so the upserts cannot race against each other on the same
// composite key.
func (s *AssignmentService) BulkAssign(ctx context.Context, schoolID uuid.UUID, req *dto.BulkAssignStudentHouseRequest, actorID uuid.UUID) ([]dto.BulkAssignOutcome, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}

	tuples := dedupeByStudent(req.Assignments)

	outcomes := make([]dto.BulkAssignOutcome, len(tuples))
	var wg sync.WaitGroup
	for i, t := range tuples {
		wg.Add(1)
		go func(i int, t dto.BulkAssignTuple) {
			defer wg.Done()
			res, err := s.assign(ctx, schoolID, &dto.AssignStudentHouseRequest{
				AssignmentStudentID:    t.AssignmentStudentID,
				AssignmentHouseID:      t.AssignmentHouseID,
				AssignmentGradeID:      t.AssignmentGradeID,
				AssignmentYear:         req.AssignmentYear,
				AssignmentAssignedDate: req.AssignmentAssignedDate,
			}, actorID)
			out := dto.BulkAssignOutcome{StudentID: t.AssignmentStudentID.String()}
			if err != nil {
				out.Error = err.Error()
			} else {
				out.Assignment = res
			}
			outcomes[i] = out
		}(i, t)
	}
	wg.Wait()

	return outcomes, nil
}

// dedupeByStudent keeps only the last tuple per student, preserving the
// relative order of the surviving tuples.
func dedupeByStudent(in []dto.BulkAssignTuple) []dto.BulkAssignTuple {
	last := make(map[uuid.UUID]int, len(in))
	for i, t := range in {
		last[t.AssignmentStudentID] = i
	}
	out := make([]dto.BulkAssignTuple, 0, len(last))
	for i, t := range in {
		if last[t.AssignmentStudentID] == i {
			out = append(out, t)
		}
	}
	return out
}

// List returns assignments ordered by year descending then student id
// ascending.
func (s *AssignmentService) List(ctx context.Context, schoolID uuid.UUID, f dto.ListAssignmentFilter) ([]*dto.AssignmentResponse, error) {
	ms, err := s.store.List(ctx, schoolID, f)
	if err != nil {
		return nil, err
	}
	return dto.NewAssignmentResponses(ms), nil
}
