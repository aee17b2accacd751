package service

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vidyalaya_backend/internals/features/school/houses/dto"
	"vidyalaya_backend/internals/features/school/houses/model"
	"vidyalaya_backend/internals/helpers/dberr"
)

type assignKey struct {
	schoolID  uuid.UUID
	studentID uuid.UUID
	year      int
}

type fakeAssignmentStore struct {
	mu   sync.Mutex
	rows map[assignKey]model.StudentHouseAssignmentModel
}

func newFakeAssignmentStore() *fakeAssignmentStore {
	return &fakeAssignmentStore{rows: map[assignKey]model.StudentHouseAssignmentModel{}}
}

func (f *fakeAssignmentStore) Upsert(_ context.Context, m *model.StudentHouseAssignmentModel) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	k := assignKey{m.AssignmentSchoolID, m.AssignmentStudentID, m.AssignmentYear}
	if old, ok := f.rows[k]; ok {
		m.AssignmentID = old.AssignmentID
	} else if m.AssignmentID == uuid.Nil {
		m.AssignmentID = uuid.New()
	}
	f.rows[k] = *m
	return nil
}

func (f *fakeAssignmentStore) DeleteByKey(_ context.Context, schoolID, studentID uuid.UUID, year int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	k := assignKey{schoolID, studentID, year}
	if _, ok := f.rows[k]; !ok {
		return dberr.ErrNotFound
	}
	delete(f.rows, k)
	return nil
}

func (f *fakeAssignmentStore) List(_ context.Context, schoolID uuid.UUID, _ dto.ListAssignmentFilter) ([]model.StudentHouseAssignmentModel, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.StudentHouseAssignmentModel
	for _, m := range f.rows {
		if m.AssignmentSchoolID == schoolID {
			out = append(out, m)
		}
	}
	return out, nil
}

func TestAssignUpsertsSingleRowPerStudentYear(t *testing.T) {
	store := newFakeAssignmentStore()
	svc := NewAssignmentService(store)

	schoolID := uuid.New()
	actorID := uuid.New()
	studentID := uuid.New()
	houseA := uuid.New()
	houseB := uuid.New()

	_, err := svc.Assign(context.Background(), schoolID, &dto.AssignStudentHouseRequest{
		AssignmentStudentID: studentID,
		AssignmentHouseID:   &houseA,
		AssignmentYear:      2026,
	}, actorID)
	require.NoError(t, err)

	res, err := svc.Assign(context.Background(), schoolID, &dto.AssignStudentHouseRequest{
		AssignmentStudentID: studentID,
		AssignmentHouseID:   &houseB,
		AssignmentYear:      2026,
	}, actorID)
	require.NoError(t, err)
	require.NotNil(t, res)

	assert.Len(t, store.rows, 1)
	assert.Equal(t, houseB.String(), res.AssignmentHouseID)
}

func TestAssignNilHouseUnassigns(t *testing.T) {
	store := newFakeAssignmentStore()
	svc := NewAssignmentService(store)

	schoolID := uuid.New()
	actorID := uuid.New()
	studentID := uuid.New()
	houseID := uuid.New()

	_, err := svc.Assign(context.Background(), schoolID, &dto.AssignStudentHouseRequest{
		AssignmentStudentID: studentID,
		AssignmentHouseID:   &houseID,
		AssignmentYear:      2026,
	}, actorID)
	require.NoError(t, err)

	res, err := svc.Assign(context.Background(), schoolID, &dto.AssignStudentHouseRequest{
		AssignmentStudentID: studentID,
		AssignmentHouseID:   nil,
		AssignmentYear:      2026,
	}, actorID)
	require.NoError(t, err)
	assert.Nil(t, res)
	assert.Empty(t, store.rows)
}

func TestAssignNilHouseOnAbsentRowIsNoError(t *testing.T) {
	store := newFakeAssignmentStore()
	svc := NewAssignmentService(store)

	res, err := svc.Assign(context.Background(), uuid.New(), &dto.AssignStudentHouseRequest{
		AssignmentStudentID: uuid.New(),
		AssignmentHouseID:   nil,
		AssignmentYear:      2026,
	}, uuid.New())
	require.NoError(t, err)
	assert.Nil(t, res)
}

func TestBulkAssignDuplicateStudentLastTupleWins(t *testing.T) {
	store := newFakeAssignmentStore()
	svc := NewAssignmentService(store)

	schoolID := uuid.New()
	actorID := uuid.New()
	studentID := uuid.New()
	houseA := uuid.New()
	houseB := uuid.New()

	outcomes, err := svc.BulkAssign(context.Background(), schoolID, &dto.BulkAssignStudentHouseRequest{
		AssignmentYear: 2026,
		Assignments: []dto.BulkAssignTuple{
			{AssignmentStudentID: studentID, AssignmentHouseID: &houseA},
			{AssignmentStudentID: studentID, AssignmentHouseID: &houseB},
		},
	}, actorID)
	require.NoError(t, err)

	// duplicates collapse to the last tuple before fan-out
	require.Len(t, outcomes, 1)
	require.NotNil(t, outcomes[0].Assignment)
	assert.Equal(t, houseB.String(), outcomes[0].Assignment.AssignmentHouseID)
	assert.Len(t, store.rows, 1)
}

func TestBulkAssignMixedAssignAndUnassign(t *testing.T) {
	store := newFakeAssignmentStore()
	svc := NewAssignmentService(store)

	schoolID := uuid.New()
	actorID := uuid.New()
	stayStudent := uuid.New()
	leaveStudent := uuid.New()
	houseID := uuid.New()

	_, err := svc.Assign(context.Background(), schoolID, &dto.AssignStudentHouseRequest{
		AssignmentStudentID: leaveStudent,
		AssignmentHouseID:   &houseID,
		AssignmentYear:      2026,
	}, actorID)
	require.NoError(t, err)

	outcomes, err := svc.BulkAssign(context.Background(), schoolID, &dto.BulkAssignStudentHouseRequest{
		AssignmentYear: 2026,
		Assignments: []dto.BulkAssignTuple{
			{AssignmentStudentID: stayStudent, AssignmentHouseID: &houseID},
			{AssignmentStudentID: leaveStudent, AssignmentHouseID: nil},
		},
	}, actorID)
	require.NoError(t, err)
	require.Len(t, outcomes, 2)

	byStudent := map[string]dto.BulkAssignOutcome{}
	for _, o := range outcomes {
		byStudent[o.StudentID] = o
	}
	assert.NotNil(t, byStudent[stayStudent.String()].Assignment)
	assert.Nil(t, byStudent[leaveStudent.String()].Assignment)
	assert.Empty(t, byStudent[leaveStudent.String()].Error)
	assert.Len(t, store.rows, 1)
}

func TestDedupeByStudentKeepsLast(t *testing.T) {
	s1 := uuid.New()
	s2 := uuid.New()
	h1 := uuid.New()
	h2 := uuid.New()

	out := dedupeByStudent([]dto.BulkAssignTuple{
		{AssignmentStudentID: s1, AssignmentHouseID: &h1},
		{AssignmentStudentID: s2, AssignmentHouseID: &h1},
		{AssignmentStudentID: s1, AssignmentHouseID: &h2},
	})
	require.Len(t, out, 2)
	assert.Equal(t, s2, out[0].AssignmentStudentID)
	assert.Equal(t, s1, out[1].AssignmentStudentID)
	assert.Equal(t, &h2, out[1].AssignmentHouseID)
}
