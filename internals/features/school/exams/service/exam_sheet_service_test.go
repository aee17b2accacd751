package service

import (
	"context"
	"encoding/json"
	"sort"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vidyalaya_backend/internals/features/school/exams/dto"
	"vidyalaya_backend/internals/features/school/exams/model"
	"vidyalaya_backend/internals/helpers/dberr"
)

type sheetKey struct {
	schoolID uuid.UUID
	year     int
	term     int
	gradeID  uuid.UUID
}

type fakeExamSheetStore struct {
	rows map[sheetKey]model.ExamSheetModel
}

func newFakeExamSheetStore() *fakeExamSheetStore {
	return &fakeExamSheetStore{rows: map[sheetKey]model.ExamSheetModel{}}
}

func (f *fakeExamSheetStore) Upsert(_ context.Context, m *model.ExamSheetModel) error {
	k := sheetKey{m.ExamSheetSchoolID, m.ExamSheetYear, m.ExamSheetTerm, m.ExamSheetGradeID}
	if old, ok := f.rows[k]; ok {
		m.ExamSheetID = old.ExamSheetID
	} else if m.ExamSheetID == uuid.Nil {
		m.ExamSheetID = uuid.New()
	}
	f.rows[k] = *m
	return nil
}

func (f *fakeExamSheetStore) FindByKey(_ context.Context, schoolID uuid.UUID, year, term int, gradeID uuid.UUID) (*model.ExamSheetModel, error) {
	m, ok := f.rows[sheetKey{schoolID, year, term, gradeID}]
	if !ok {
		return nil, dberr.ErrNotFound
	}
	out := m
	return &out, nil
}

func (f *fakeExamSheetStore) List(_ context.Context, schoolID uuid.UUID, filter dto.ListExamSheetFilter) ([]model.ExamSheetModel, error) {
	var out []model.ExamSheetModel
	for k, m := range f.rows {
		if k.schoolID != schoolID {
			continue
		}
		if filter.Year != nil && k.year != *filter.Year {
			continue
		}
		if filter.Term != nil && k.term != *filter.Term {
			continue
		}
		out = append(out, m)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].ExamSheetYear != out[j].ExamSheetYear {
			return out[i].ExamSheetYear > out[j].ExamSheetYear
		}
		return out[i].ExamSheetTerm < out[j].ExamSheetTerm
	})
	return out, nil
}

func (f *fakeExamSheetStore) Delete(_ context.Context, schoolID, id uuid.UUID) error {
	for k, m := range f.rows {
		if k.schoolID == schoolID && m.ExamSheetID == id {
			delete(f.rows, k)
			return nil
		}
	}
	return dberr.ErrNotFound
}

func TestSaveExamSheetCreatesThenReplacesRows(t *testing.T) {
	store := newFakeExamSheetStore()
	svc := NewExamSheetService(store)
	schoolID := uuid.New()
	actorID := uuid.New()
	gradeID := uuid.New()
	studentA := uuid.New()
	studentB := uuid.New()

	first, err := svc.Save(context.Background(), schoolID, &dto.SaveExamSheetRequest{
		ExamSheetYear:    2026,
		ExamSheetTerm:    1,
		ExamSheetGradeID: gradeID,
		ExamSheetRows:    []dto.ExamSheetRow{{StudentID: studentA, Mark: 72}},
	}, actorID)
	require.NoError(t, err)

	second, err := svc.Save(context.Background(), schoolID, &dto.SaveExamSheetRequest{
		ExamSheetYear:    2026,
		ExamSheetTerm:    1,
		ExamSheetGradeID: gradeID,
		ExamSheetRows: []dto.ExamSheetRow{
			{StudentID: studentA, Mark: 72},
			{StudentID: studentB, Mark: 88},
		},
	}, actorID)
	require.NoError(t, err)

	// same composite key, one stored sheet
	assert.Equal(t, first.ExamSheetID, second.ExamSheetID)
	assert.Len(t, store.rows, 1)

	var rows []dto.ExamSheetRow
	require.NoError(t, json.Unmarshal(second.ExamSheetRows, &rows))
	assert.Len(t, rows, 2)
}

func TestSaveExamSheetRejectsEmptyRows(t *testing.T) {
	svc := NewExamSheetService(newFakeExamSheetStore())

	_, err := svc.Save(context.Background(), uuid.New(), &dto.SaveExamSheetRequest{
		ExamSheetYear:    2026,
		ExamSheetTerm:    1,
		ExamSheetGradeID: uuid.New(),
	}, uuid.New())
	assert.Error(t, err)
}

func TestListExamSheetsFiltersAndOrders(t *testing.T) {
	store := newFakeExamSheetStore()
	svc := NewExamSheetService(store)
	schoolID := uuid.New()
	actorID := uuid.New()
	gradeID := uuid.New()

	for _, yt := range [][2]int{{2025, 2}, {2026, 1}, {2026, 2}} {
		_, err := svc.Save(context.Background(), schoolID, &dto.SaveExamSheetRequest{
			ExamSheetYear:    yt[0],
			ExamSheetTerm:    yt[1],
			ExamSheetGradeID: gradeID,
			ExamSheetRows:    []dto.ExamSheetRow{{StudentID: uuid.New(), Mark: 50}},
		}, actorID)
		require.NoError(t, err)
	}

	all, err := svc.List(context.Background(), schoolID, dto.ListExamSheetFilter{})
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, 2026, all[0].ExamSheetYear)
	assert.Equal(t, 1, all[0].ExamSheetTerm)
	assert.Equal(t, 2025, all[2].ExamSheetYear)

	year := 2026
	filtered, err := svc.List(context.Background(), schoolID, dto.ListExamSheetFilter{Year: &year})
	require.NoError(t, err)
	assert.Len(t, filtered, 2)
}
