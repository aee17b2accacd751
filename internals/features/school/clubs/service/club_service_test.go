package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vidyalaya_backend/internals/features/school/clubs/dto"
	"vidyalaya_backend/internals/features/school/clubs/model"
	"vidyalaya_backend/internals/helpers/dberr"
)

type fakeClubStore struct {
	clubs     map[uuid.UUID]model.ClubModel
	positions map[uuid.UUID]model.ClubPositionModel
}

func newFakeClubStore() *fakeClubStore {
	return &fakeClubStore{
		clubs:     map[uuid.UUID]model.ClubModel{},
		positions: map[uuid.UUID]model.ClubPositionModel{},
	}
}

func (f *fakeClubStore) Insert(_ context.Context, m *model.ClubModel) error {
	for _, old := range f.clubs {
		if old.ClubSchoolID == m.ClubSchoolID && old.ClubNameEn == m.ClubNameEn {
			return dberr.ErrDuplicateKey
		}
	}
	if m.ClubID == uuid.Nil {
		m.ClubID = uuid.New()
	}
	f.clubs[m.ClubID] = *m
	return nil
}

func (f *fakeClubStore) FindByID(_ context.Context, schoolID, id uuid.UUID) (*model.ClubModel, error) {
	m, ok := f.clubs[id]
	if !ok || m.ClubSchoolID != schoolID {
		return nil, dberr.ErrNotFound
	}
	out := m
	return &out, nil
}

func (f *fakeClubStore) List(_ context.Context, schoolID uuid.UUID) ([]model.ClubModel, error) {
	var out []model.ClubModel
	for _, m := range f.clubs {
		if m.ClubSchoolID == schoolID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeClubStore) Save(_ context.Context, m *model.ClubModel) error {
	old, ok := f.clubs[m.ClubID]
	if !ok || old.ClubSchoolID != m.ClubSchoolID {
		return dberr.ErrNotFound
	}
	f.clubs[m.ClubID] = *m
	return nil
}

func (f *fakeClubStore) SaveMembers(_ context.Context, schoolID, id uuid.UUID, members []byte, actorID uuid.UUID) error {
	m, ok := f.clubs[id]
	if !ok || m.ClubSchoolID != schoolID {
		return dberr.ErrNotFound
	}
	m.ClubMembers = members
	m.ClubUpdatedBy = &actorID
	now := time.Now()
	m.ClubUpdatedAt = &now
	f.clubs[id] = m
	return nil
}

func (f *fakeClubStore) Delete(_ context.Context, schoolID, id uuid.UUID) error {
	m, ok := f.clubs[id]
	if !ok || m.ClubSchoolID != schoolID {
		return dberr.ErrNotFound
	}
	delete(f.clubs, id)
	return nil
}

func (f *fakeClubStore) InsertPosition(_ context.Context, m *model.ClubPositionModel) error {
	for _, old := range f.positions {
		if old.ClubPositionSchoolID == m.ClubPositionSchoolID && old.ClubPositionName == m.ClubPositionName {
			return dberr.ErrDuplicateKey
		}
	}
	if m.ClubPositionID == uuid.Nil {
		m.ClubPositionID = uuid.New()
	}
	f.positions[m.ClubPositionID] = *m
	return nil
}

func (f *fakeClubStore) ListPositions(_ context.Context, schoolID uuid.UUID) ([]model.ClubPositionModel, error) {
	var out []model.ClubPositionModel
	for _, m := range f.positions {
		if m.ClubPositionSchoolID == schoolID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeClubStore) DeletePosition(_ context.Context, schoolID, id uuid.UUID) error {
	m, ok := f.positions[id]
	if !ok || m.ClubPositionSchoolID != schoolID {
		return dberr.ErrNotFound
	}
	delete(f.positions, id)
	return nil
}

func createClub(t *testing.T, svc *ClubService, schoolID uuid.UUID, name string) uuid.UUID {
	t.Helper()
	res, err := svc.Create(context.Background(), schoolID, &dto.CreateClubRequest{
		ClubNameEn: name,
	}, uuid.New())
	require.NoError(t, err)
	return uuid.MustParse(res.ClubID)
}

func TestAssignMemberReplacesPriorEntry(t *testing.T) {
	svc := NewClubService(newFakeClubStore())
	schoolID := uuid.New()
	actorID := uuid.New()
	clubID := createClub(t, svc, schoolID, "Chess Club")
	studentID := uuid.New()
	posA := uuid.New()
	posB := uuid.New()

	_, err := svc.AssignMember(context.Background(), schoolID, clubID, &dto.AssignClubMemberRequest{
		StudentID:  studentID,
		PositionID: &posA,
	}, actorID)
	require.NoError(t, err)

	res, err := svc.AssignMember(context.Background(), schoolID, clubID, &dto.AssignClubMemberRequest{
		StudentID:  studentID,
		PositionID: &posB,
	}, actorID)
	require.NoError(t, err)

	// still one entry, now with the new position
	require.Len(t, res.ClubMembers, 1)
	assert.Equal(t, studentID, res.ClubMembers[0].StudentID)
	assert.Equal(t, &posB, res.ClubMembers[0].PositionID)
}

func TestAssignMemberWithoutPosition(t *testing.T) {
	svc := NewClubService(newFakeClubStore())
	schoolID := uuid.New()
	clubID := createClub(t, svc, schoolID, "Chess Club")
	studentID := uuid.New()

	res, err := svc.AssignMember(context.Background(), schoolID, clubID, &dto.AssignClubMemberRequest{
		StudentID: studentID,
	}, uuid.New())
	require.NoError(t, err)
	require.Len(t, res.ClubMembers, 1)
	assert.Nil(t, res.ClubMembers[0].PositionID)
}

func TestRemoveMember(t *testing.T) {
	svc := NewClubService(newFakeClubStore())
	schoolID := uuid.New()
	actorID := uuid.New()
	clubID := createClub(t, svc, schoolID, "Chess Club")
	stay := uuid.New()
	leave := uuid.New()

	for _, id := range []uuid.UUID{stay, leave} {
		_, err := svc.AssignMember(context.Background(), schoolID, clubID, &dto.AssignClubMemberRequest{
			StudentID: id,
		}, actorID)
		require.NoError(t, err)
	}

	res, err := svc.RemoveMember(context.Background(), schoolID, clubID, leave, actorID)
	require.NoError(t, err)
	require.Len(t, res.ClubMembers, 1)
	assert.Equal(t, stay, res.ClubMembers[0].StudentID)

	// removing again is NotFound
	_, err = svc.RemoveMember(context.Background(), schoolID, clubID, leave, actorID)
	assert.ErrorIs(t, err, dberr.ErrNotFound)
}

func TestCreateClubDuplicateNameConflicts(t *testing.T) {
	svc := NewClubService(newFakeClubStore())
	schoolID := uuid.New()

	createClub(t, svc, schoolID, "Chess Club")
	_, err := svc.Create(context.Background(), schoolID, &dto.CreateClubRequest{
		ClubNameEn: "Chess Club",
	}, uuid.New())
	assert.ErrorIs(t, err, dberr.ErrDuplicateKey)
}
