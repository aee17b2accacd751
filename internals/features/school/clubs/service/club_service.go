package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"vidyalaya_backend/internals/features/school/clubs/dto"
	"vidyalaya_backend/internals/features/school/clubs/model"
	"vidyalaya_backend/internals/helpers/dberr"
)

type ClubStore interface {
	Insert(ctx context.Context, m *model.ClubModel) error
	FindByID(ctx context.Context, schoolID, id uuid.UUID) (*model.ClubModel, error)
	List(ctx context.Context, schoolID uuid.UUID) ([]model.ClubModel, error)
	Save(ctx context.Context, m *model.ClubModel) error
	SaveMembers(ctx context.Context, schoolID, id uuid.UUID, members []byte, actorID uuid.UUID) error
	Delete(ctx context.Context, schoolID, id uuid.UUID) error

	InsertPosition(ctx context.Context, m *model.ClubPositionModel) error
	ListPositions(ctx context.Context, schoolID uuid.UUID) ([]model.ClubPositionModel, error)
	DeletePosition(ctx context.Context, schoolID, id uuid.UUID) error
}

type ClubService struct {
	store    ClubStore
	validate *validator.Validate
}

func NewClubService(store ClubStore) *ClubService {
	return &ClubService{store: store, validate: validator.New()}
}

/* ===================== Clubs ===================== */

func (s *ClubService) Create(ctx context.Context, schoolID uuid.UUID, req *dto.CreateClubRequest, actorID uuid.UUID) (*dto.ClubResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}
	m := req.ToModel(schoolID, actorID)
	if err := s.store.Insert(ctx, m); err != nil {
		return nil, err
	}
	return dto.NewClubResponse(m)
}

// List returns clubs ordered by English name ascending.
func (s *ClubService) List(ctx context.Context, schoolID uuid.UUID) ([]*dto.ClubResponse, error) {
	ms, err := s.store.List(ctx, schoolID)
	if err != nil {
		return nil, err
	}
	return dto.NewClubResponses(ms)
}

func (s *ClubService) GetByID(ctx context.Context, schoolID, id uuid.UUID) (*dto.ClubResponse, error) {
	m, err := s.store.FindByID(ctx, schoolID, id)
	if err != nil {
		return nil, err
	}
	return dto.NewClubResponse(m)
}

func (s *ClubService) Update(ctx context.Context, schoolID, id uuid.UUID, req *dto.UpdateClubRequest, actorID uuid.UUID) (*dto.ClubResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}
	m, err := s.store.FindByID(ctx, schoolID, id)
	if err != nil {
		return nil, err
	}
	req.ApplyToModel(m)
	m.ClubUpdatedBy = &actorID
	if err := s.store.Save(ctx, m); err != nil {
		return nil, err
	}
	return dto.NewClubResponse(m)
}

func (s *ClubService) Delete(ctx context.Context, schoolID, id uuid.UUID) error {
	return s.store.Delete(ctx, schoolID, id)
}

/* ===================== Roster ===================== */

// AssignMember puts a student on the roster. A student holds at most one
// entry per club: any prior entry is dropped before the new one is appended.
func (s *ClubService) AssignMember(ctx context.Context, schoolID, clubID uuid.UUID, req *dto.AssignClubMemberRequest, actorID uuid.UUID) (*dto.ClubResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}
	m, err := s.store.FindByID(ctx, schoolID, clubID)
	if err != nil {
		return nil, err
	}
	members, err := dto.DecodeMembers(m.ClubMembers)
	if err != nil {
		return nil, err
	}

	kept := make([]dto.ClubMember, 0, len(members)+1)
	for _, mem := range members {
		if mem.StudentID != req.StudentID {
			kept = append(kept, mem)
		}
	}
	kept = append(kept, dto.ClubMember{StudentID: req.StudentID, PositionID: req.PositionID})

	raw, err := dto.EncodeMembers(kept)
	if err != nil {
		return nil, err
	}
	if err := s.store.SaveMembers(ctx, schoolID, clubID, raw, actorID); err != nil {
		return nil, err
	}
	m.ClubMembers = raw
	return dto.NewClubResponse(m)
}

// RemoveMember drops the student's roster entry; absent student is NotFound.
func (s *ClubService) RemoveMember(ctx context.Context, schoolID, clubID, studentID uuid.UUID, actorID uuid.UUID) (*dto.ClubResponse, error) {
	m, err := s.store.FindByID(ctx, schoolID, clubID)
	if err != nil {
		return nil, err
	}
	members, err := dto.DecodeMembers(m.ClubMembers)
	if err != nil {
		return nil, err
	}

	kept := make([]dto.ClubMember, 0, len(members))
	removed := false
	for _, mem := range members {
		if mem.StudentID == studentID {
			removed = true
			continue
		}
		kept = append(kept, mem)
	}
	if !removed {
		return nil, dberr.ErrNotFound
	}

	raw, err := dto.EncodeMembers(kept)
	if err != nil {
		return nil, err
	}
	if err := s.store.SaveMembers(ctx, schoolID, clubID, raw, actorID); err != nil {
		return nil, err
	}
	m.ClubMembers = raw
	return dto.NewClubResponse(m)
}

/* ===================== Positions ===================== */

func (s *ClubService) CreatePosition(ctx context.Context, schoolID uuid.UUID, req *dto.CreateClubPositionRequest, actorID uuid.UUID) (*dto.ClubPositionResponse, error) {
	if err := s.validate.Struct(req); err != nil {
		return nil, err
	}
	m := req.ToModel(schoolID, actorID)
	if err := s.store.InsertPosition(ctx, m); err != nil {
		return nil, err
	}
	return dto.NewClubPositionResponse(m), nil
}

// ListPositions returns the catalog ordered by name ascending.
func (s *ClubService) ListPositions(ctx context.Context, schoolID uuid.UUID) ([]*dto.ClubPositionResponse, error) {
	ms, err := s.store.ListPositions(ctx, schoolID)
	if err != nil {
		return nil, err
	}
	return dto.NewClubPositionResponses(ms), nil
}

func (s *ClubService) DeletePosition(ctx context.Context, schoolID, id uuid.UUID) error {
	return s.store.DeletePosition(ctx, schoolID, id)
}
