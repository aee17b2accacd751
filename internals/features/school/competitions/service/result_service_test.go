package service

import (
	"context"
	"sort"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vidyalaya_backend/internals/features/school/competitions/dto"
	"vidyalaya_backend/internals/features/school/competitions/model"
	"vidyalaya_backend/internals/helpers/dberr"
)

type resultKey struct {
	schoolID      uuid.UUID
	competitionID uuid.UUID
	year          int
	place         int
}

type fakeResultStore struct {
	mu           sync.Mutex
	rows         map[resultKey]model.CompetitionResultModel
	competitions map[uuid.UUID]uuid.UUID // competition id -> school id
}

func newFakeResultStore() *fakeResultStore {
	return &fakeResultStore{
		rows:         map[resultKey]model.CompetitionResultModel{},
		competitions: map[uuid.UUID]uuid.UUID{},
	}
}

func (f *fakeResultStore) addCompetition(schoolID uuid.UUID) uuid.UUID {
	id := uuid.New()
	f.competitions[id] = schoolID
	return id
}

func (f *fakeResultStore) Upsert(_ context.Context, m *model.CompetitionResultModel) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	k := resultKey{m.ResultSchoolID, m.ResultCompetitionID, m.ResultYear, m.ResultPlace}
	if old, ok := f.rows[k]; ok {
		m.ResultID = old.ResultID
	} else if m.ResultID == uuid.Nil {
		m.ResultID = uuid.New()
	}
	f.rows[k] = *m
	return nil
}

func (f *fakeResultStore) DeletePlacesNotIn(_ context.Context, schoolID, competitionID uuid.UUID, year int, keep []int) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	keepSet := map[int]struct{}{}
	for _, p := range keep {
		keepSet[p] = struct{}{}
	}
	for k := range f.rows {
		if k.schoolID == schoolID && k.competitionID == competitionID && k.year == year {
			if _, ok := keepSet[k.place]; !ok {
				delete(f.rows, k)
			}
		}
	}
	return nil
}

func (f *fakeResultStore) ListByCompetitionYear(_ context.Context, schoolID, competitionID uuid.UUID, year int) ([]model.CompetitionResultModel, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.CompetitionResultModel
	for k, m := range f.rows {
		if k.schoolID == schoolID && k.competitionID == competitionID && k.year == year {
			out = append(out, m)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ResultPlace < out[j].ResultPlace })
	return out, nil
}

func (f *fakeResultStore) ListScoring(_ context.Context, schoolID uuid.UUID, year int) ([]model.CompetitionResultModel, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.CompetitionResultModel
	for k, m := range f.rows {
		if k.schoolID == schoolID && k.year == year && k.place <= 3 && m.ResultHouseID != nil {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeResultStore) CompetitionExists(_ context.Context, schoolID, competitionID uuid.UUID) error {
	if owner, ok := f.competitions[competitionID]; ok && owner == schoolID {
		return nil
	}
	return dberr.ErrNotFound
}

func houseEntry(place int, houseID uuid.UUID) dto.ResultEntry {
	return dto.ResultEntry{
		ResultPlace:   place,
		ResultType:    model.ResultTypeHouse,
		ResultHouseID: &houseID,
	}
}

func TestRecordDuplicatePlaceRejectedBeforeAnyWrite(t *testing.T) {
	store := newFakeResultStore()
	svc := NewResultService(store, nil)

	schoolID := uuid.New()
	compID := store.addCompetition(schoolID)
	houseID := uuid.New()

	_, err := svc.Record(context.Background(), schoolID, compID, &dto.RecordResultsRequest{
		ResultYear: 2026,
		Results: []dto.ResultEntry{
			houseEntry(1, houseID),
			houseEntry(1, houseID),
		},
	}, uuid.New())

	require.ErrorIs(t, err, ErrDuplicatePlace)
	assert.Empty(t, store.rows)
}

func TestRecordReturnsFullSetSortedByPlace(t *testing.T) {
	store := newFakeResultStore()
	svc := NewResultService(store, nil)

	schoolID := uuid.New()
	compID := store.addCompetition(schoolID)
	houseID := uuid.New()

	res, err := svc.Record(context.Background(), schoolID, compID, &dto.RecordResultsRequest{
		ResultYear: 2026,
		Results: []dto.ResultEntry{
			houseEntry(3, houseID),
			houseEntry(1, houseID),
			houseEntry(2, houseID),
		},
	}, uuid.New())
	require.NoError(t, err)
	require.Len(t, res, 3)
	assert.Equal(t, 1, res[0].ResultPlace)
	assert.Equal(t, 2, res[1].ResultPlace)
	assert.Equal(t, 3, res[2].ResultPlace)
}

func TestRecordMergeKeepsAbsentPlaces(t *testing.T) {
	store := newFakeResultStore()
	svc := NewResultService(store, nil)

	schoolID := uuid.New()
	compID := store.addCompetition(schoolID)
	houseID := uuid.New()

	_, err := svc.Record(context.Background(), schoolID, compID, &dto.RecordResultsRequest{
		ResultYear: 2026,
		Results:    []dto.ResultEntry{houseEntry(1, houseID), houseEntry(2, houseID)},
	}, uuid.New())
	require.NoError(t, err)

	res, err := svc.Record(context.Background(), schoolID, compID, &dto.RecordResultsRequest{
		ResultYear: 2026,
		Results:    []dto.ResultEntry{houseEntry(1, houseID)},
	}, uuid.New())
	require.NoError(t, err)
	assert.Len(t, res, 2)
}

func TestRecordReplaceClearsAbsentPlaces(t *testing.T) {
	store := newFakeResultStore()
	svc := NewResultService(store, nil)

	schoolID := uuid.New()
	compID := store.addCompetition(schoolID)
	houseID := uuid.New()

	_, err := svc.Record(context.Background(), schoolID, compID, &dto.RecordResultsRequest{
		ResultYear: 2026,
		Results:    []dto.ResultEntry{houseEntry(1, houseID), houseEntry(2, houseID)},
	}, uuid.New())
	require.NoError(t, err)

	res, err := svc.Record(context.Background(), schoolID, compID, &dto.RecordResultsRequest{
		ResultYear: 2026,
		ResultMode: dto.RecordModeReplace,
		Results:    []dto.ResultEntry{houseEntry(1, houseID)},
	}, uuid.New())
	require.NoError(t, err)
	require.Len(t, res, 1)
	assert.Equal(t, 1, res[0].ResultPlace)
}

func TestRecordUnknownCompetitionIsNotFound(t *testing.T) {
	store := newFakeResultStore()
	svc := NewResultService(store, nil)

	schoolID := uuid.New()
	otherSchoolComp := store.addCompetition(uuid.New())

	_, err := svc.Record(context.Background(), schoolID, otherSchoolComp, &dto.RecordResultsRequest{
		ResultYear: 2026,
		Results:    []dto.ResultEntry{houseEntry(1, uuid.New())},
	}, uuid.New())
	require.ErrorIs(t, err, dberr.ErrNotFound)
}

func TestRecordEntryCrossFieldRules(t *testing.T) {
	store := newFakeResultStore()
	svc := NewResultService(store, nil)

	schoolID := uuid.New()
	compID := store.addCompetition(schoolID)
	houseID := uuid.New()

	// house type without house id
	_, err := svc.Record(context.Background(), schoolID, compID, &dto.RecordResultsRequest{
		ResultYear: 2026,
		Results:    []dto.ResultEntry{{ResultPlace: 1, ResultType: model.ResultTypeHouse}},
	}, uuid.New())
	assert.Error(t, err)

	// independent type with house id
	_, err = svc.Record(context.Background(), schoolID, compID, &dto.RecordResultsRequest{
		ResultYear: 2026,
		Results: []dto.ResultEntry{{
			ResultPlace:   1,
			ResultType:    model.ResultTypeIndependent,
			ResultHouseID: &houseID,
		}},
	}, uuid.New())
	assert.Error(t, err)

	// student type needs the student reference
	_, err = svc.Record(context.Background(), schoolID, compID, &dto.RecordResultsRequest{
		ResultYear: 2026,
		Results:    []dto.ResultEntry{{ResultPlace: 1, ResultType: model.ResultTypeStudent}},
	}, uuid.New())
	assert.Error(t, err)

	assert.Empty(t, store.rows)
}

func TestHousePointsAwards15_10_5(t *testing.T) {
	store := newFakeResultStore()
	svc := NewResultService(store, nil)

	schoolID := uuid.New()
	compA := store.addCompetition(schoolID)
	compB := store.addCompetition(schoolID)
	houseA := uuid.New()
	houseB := uuid.New()

	// comp A: house A first, house B second
	_, err := svc.Record(context.Background(), schoolID, compA, &dto.RecordResultsRequest{
		ResultYear: 2026,
		Results:    []dto.ResultEntry{houseEntry(1, houseA), houseEntry(2, houseB)},
	}, uuid.New())
	require.NoError(t, err)

	// comp B: house A third only
	_, err = svc.Record(context.Background(), schoolID, compB, &dto.RecordResultsRequest{
		ResultYear: 2026,
		Results:    []dto.ResultEntry{houseEntry(3, houseA)},
	}, uuid.New())
	require.NoError(t, err)

	got, err := svc.HousePoints(context.Background(), schoolID, 2026)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, dto.HousePointsEntry{HouseID: houseA.String(), Points: 20}, got[0])
	assert.Equal(t, dto.HousePointsEntry{HouseID: houseB.String(), Points: 10}, got[1])

	// pure read: a second call over unchanged results is identical
	again, err := svc.HousePoints(context.Background(), schoolID, 2026)
	require.NoError(t, err)
	assert.Equal(t, got, again)
}

func TestHousePointsExcludesHouselessAndDeepPlaces(t *testing.T) {
	store := newFakeResultStore()
	svc := NewResultService(store, nil)

	schoolID := uuid.New()
	compID := store.addCompetition(schoolID)
	houseID := uuid.New()
	studentID := uuid.New()

	_, err := svc.Record(context.Background(), schoolID, compID, &dto.RecordResultsRequest{
		ResultYear: 2026,
		Results: []dto.ResultEntry{
			{ResultPlace: 1, ResultType: model.ResultTypeStudent, ResultStudentID: &studentID},
			houseEntry(4, houseID),
		},
	}, uuid.New())
	require.NoError(t, err)

	got, err := svc.HousePoints(context.Background(), schoolID, 2026)
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestHousePointsTieBreaksOnHouseID(t *testing.T) {
	store := newFakeResultStore()
	svc := NewResultService(store, nil)

	schoolID := uuid.New()
	compA := store.addCompetition(schoolID)
	compB := store.addCompetition(schoolID)
	houseA := uuid.MustParse("00000000-0000-0000-0000-00000000000a")
	houseB := uuid.MustParse("00000000-0000-0000-0000-00000000000b")

	_, err := svc.Record(context.Background(), schoolID, compA, &dto.RecordResultsRequest{
		ResultYear: 2026,
		Results:    []dto.ResultEntry{houseEntry(1, houseB)},
	}, uuid.New())
	require.NoError(t, err)
	_, err = svc.Record(context.Background(), schoolID, compB, &dto.RecordResultsRequest{
		ResultYear: 2026,
		Results:    []dto.ResultEntry{houseEntry(1, houseA)},
	}, uuid.New())
	require.NoError(t, err)

	got, err := svc.HousePoints(context.Background(), schoolID, 2026)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, houseA.String(), got[0].HouseID)
	assert.Equal(t, houseB.String(), got[1].HouseID)
}
