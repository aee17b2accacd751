package service

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vidyalaya_backend/internals/features/school/prefects/dto"
	"vidyalaya_backend/internals/features/school/prefects/model"
	"vidyalaya_backend/internals/helpers/dberr"
)

type prefectYearKey struct {
	schoolID uuid.UUID
	year     int
}

type fakePrefectStore struct {
	positions map[uuid.UUID]model.PrefectPositionModel
	years     map[prefectYearKey]model.PrefectYearModel
}

func newFakePrefectStore() *fakePrefectStore {
	return &fakePrefectStore{
		positions: map[uuid.UUID]model.PrefectPositionModel{},
		years:     map[prefectYearKey]model.PrefectYearModel{},
	}
}

func (f *fakePrefectStore) InsertPosition(_ context.Context, m *model.PrefectPositionModel) error {
	for _, old := range f.positions {
		if old.PrefectPositionSchoolID == m.PrefectPositionSchoolID && old.PrefectPositionName == m.PrefectPositionName {
			return dberr.ErrDuplicateKey
		}
	}
	if m.PrefectPositionID == uuid.Nil {
		m.PrefectPositionID = uuid.New()
	}
	f.positions[m.PrefectPositionID] = *m
	return nil
}

func (f *fakePrefectStore) ListPositions(_ context.Context, schoolID uuid.UUID) ([]model.PrefectPositionModel, error) {
	var out []model.PrefectPositionModel
	for _, m := range f.positions {
		if m.PrefectPositionSchoolID == schoolID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakePrefectStore) DeletePosition(_ context.Context, schoolID, id uuid.UUID) error {
	m, ok := f.positions[id]
	if !ok || m.PrefectPositionSchoolID != schoolID {
		return dberr.ErrNotFound
	}
	delete(f.positions, id)
	return nil
}

func (f *fakePrefectStore) FindYear(_ context.Context, schoolID uuid.UUID, year int) (*model.PrefectYearModel, error) {
	m, ok := f.years[prefectYearKey{schoolID, year}]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	out := m
	return &out, nil
}

func (f *fakePrefectStore) InsertYear(_ context.Context, m *model.PrefectYearModel) error {
	k := prefectYearKey{m.PrefectYearSchoolID, m.PrefectYearYear}
	if _, ok := f.years[k]; ok {
		return dberr.ErrDuplicateKey
	}
	if m.PrefectYearID == uuid.Nil {
		m.PrefectYearID = uuid.New()
	}
	f.years[k] = *m
	return nil
}

func (f *fakePrefectStore) ListYears(_ context.Context, schoolID uuid.UUID) ([]model.PrefectYearModel, error) {
	var out []model.PrefectYearModel
	for k, m := range f.years {
		if k.schoolID == schoolID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakePrefectStore) SaveAppointments(_ context.Context, schoolID uuid.UUID, year int, apps []byte, actorID uuid.UUID) error {
	k := prefectYearKey{schoolID, year}
	m, ok := f.years[k]
	if !ok {
		return dberr.ErrNotFound
	}
	m.PrefectYearAppointments = apps
	m.PrefectYearUpdatedBy = &actorID
	now := time.Now()
	m.PrefectYearUpdatedAt = &now
	f.years[k] = m
	return nil
}

func TestAppointCreatesYearOnFirstUse(t *testing.T) {
	store := newFakePrefectStore()
	svc := NewPrefectService(store)
	schoolID := uuid.New()

	res, err := svc.Appoint(context.Background(), schoolID, 2026, &dto.AppointPrefectRequest{
		StudentID:  uuid.New(),
		PositionID: uuid.New(),
		Rank:       1,
	}, uuid.New())
	require.NoError(t, err)

	assert.Equal(t, 2026, res.PrefectYearYear)
	assert.Len(t, res.PrefectYearAppointments, 1)
	assert.Len(t, store.years, 1)
}

func TestAppointSameStudentReplacesEntry(t *testing.T) {
	svc := NewPrefectService(newFakePrefectStore())
	schoolID := uuid.New()
	actorID := uuid.New()
	studentID := uuid.New()
	headPrefect := uuid.New()
	deputy := uuid.New()

	_, err := svc.Appoint(context.Background(), schoolID, 2026, &dto.AppointPrefectRequest{
		StudentID:  studentID,
		PositionID: deputy,
		Rank:       2,
	}, actorID)
	require.NoError(t, err)

	res, err := svc.Appoint(context.Background(), schoolID, 2026, &dto.AppointPrefectRequest{
		StudentID:  studentID,
		PositionID: headPrefect,
		Rank:       1,
	}, actorID)
	require.NoError(t, err)

	require.Len(t, res.PrefectYearAppointments, 1)
	assert.Equal(t, headPrefect, res.PrefectYearAppointments[0].PositionID)
	assert.Equal(t, 1, res.PrefectYearAppointments[0].Rank)
}

func TestAppointKeepsOtherStudents(t *testing.T) {
	svc := NewPrefectService(newFakePrefectStore())
	schoolID := uuid.New()
	actorID := uuid.New()
	first := uuid.New()
	second := uuid.New()

	_, err := svc.Appoint(context.Background(), schoolID, 2026, &dto.AppointPrefectRequest{
		StudentID:  first,
		PositionID: uuid.New(),
		Rank:       1,
	}, actorID)
	require.NoError(t, err)

	res, err := svc.Appoint(context.Background(), schoolID, 2026, &dto.AppointPrefectRequest{
		StudentID:  second,
		PositionID: uuid.New(),
		Rank:       2,
	}, actorID)
	require.NoError(t, err)
	assert.Len(t, res.PrefectYearAppointments, 2)
}

func TestDismissRemovesEntry(t *testing.T) {
	svc := NewPrefectService(newFakePrefectStore())
	schoolID := uuid.New()
	actorID := uuid.New()
	studentID := uuid.New()

	_, err := svc.Appoint(context.Background(), schoolID, 2026, &dto.AppointPrefectRequest{
		StudentID:  studentID,
		PositionID: uuid.New(),
		Rank:       1,
	}, actorID)
	require.NoError(t, err)

	res, err := svc.Dismiss(context.Background(), schoolID, 2026, studentID, actorID)
	require.NoError(t, err)
	assert.Empty(t, res.PrefectYearAppointments)

	_, err = svc.Dismiss(context.Background(), schoolID, 2026, studentID, actorID)
	assert.ErrorIs(t, err, dberr.ErrNotFound)
}

func TestCreatePrefectPositionDuplicateNameConflicts(t *testing.T) {
	svc := NewPrefectService(newFakePrefectStore())
	schoolID := uuid.New()

	_, err := svc.CreatePosition(context.Background(), schoolID, &dto.CreatePrefectPositionRequest{
		PrefectPositionName: "Head Prefect",
	}, uuid.New())
	require.NoError(t, err)

	_, err = svc.CreatePosition(context.Background(), schoolID, &dto.CreatePrefectPositionRequest{
		PrefectPositionName: "Head Prefect",
	}, uuid.New())
	assert.ErrorIs(t, err, dberr.ErrDuplicateKey)
}
