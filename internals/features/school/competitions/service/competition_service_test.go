package service

import (
	"context"
	"sync"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vidyalaya_backend/internals/features/school/competitions/dto"
	"vidyalaya_backend/internals/features/school/competitions/model"
	"vidyalaya_backend/internals/helpers/dberr"
)

type fakeCompetitionStore struct {
	mu   sync.Mutex
	rows map[uuid.UUID]model.CompetitionModel
}

func newFakeCompetitionStore() *fakeCompetitionStore {
	return &fakeCompetitionStore{rows: map[uuid.UUID]model.CompetitionModel{}}
}

func (f *fakeCompetitionStore) Insert(_ context.Context, m *model.CompetitionModel) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if m.CompetitionID == uuid.Nil {
		m.CompetitionID = uuid.New()
	}
	f.rows[m.CompetitionID] = *m
	return nil
}

func (f *fakeCompetitionStore) FindByID(_ context.Context, schoolID, id uuid.UUID) (*model.CompetitionModel, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	m, ok := f.rows[id]
	if !ok || m.CompetitionSchoolID != schoolID {
		return nil, dberr.ErrNotFound
	}
	out := m
	return &out, nil
}

func (f *fakeCompetitionStore) List(_ context.Context, schoolID uuid.UUID) ([]model.CompetitionModel, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []model.CompetitionModel
	for _, m := range f.rows {
		if m.CompetitionSchoolID == schoolID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeCompetitionStore) Save(_ context.Context, m *model.CompetitionModel) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	old, ok := f.rows[m.CompetitionID]
	if !ok || old.CompetitionSchoolID != m.CompetitionSchoolID {
		return dberr.ErrNotFound
	}
	f.rows[m.CompetitionID] = *m
	return nil
}

func (f *fakeCompetitionStore) Delete(_ context.Context, schoolID, id uuid.UUID) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	m, ok := f.rows[id]
	if !ok || m.CompetitionSchoolID != schoolID {
		return dberr.ErrNotFound
	}
	delete(f.rows, id)
	return nil
}

func TestCreateCompetitionScopeRules(t *testing.T) {
	svc := NewCompetitionService(newFakeCompetitionStore())
	schoolID := uuid.New()
	actorID := uuid.New()
	gradeID := uuid.New()
	sectionID := uuid.New()

	cases := []struct {
		name    string
		req     dto.CreateCompetitionRequest
		wantErr bool
	}{
		{
			name: "open with no restrictions",
			req: dto.CreateCompetitionRequest{
				CompetitionNameEn: "Chess",
				CompetitionScope:  model.CompetitionScopeOpen,
			},
		},
		{
			name: "grade scope with grade ids",
			req: dto.CreateCompetitionRequest{
				CompetitionNameEn:   "Sports Meet",
				CompetitionScope:    model.CompetitionScopeGrade,
				CompetitionGradeIDs: []uuid.UUID{gradeID},
			},
		},
		{
			name: "grade scope without grade ids",
			req: dto.CreateCompetitionRequest{
				CompetitionNameEn: "Sports Meet",
				CompetitionScope:  model.CompetitionScopeGrade,
			},
			wantErr: true,
		},
		{
			name: "grade scope with section ids",
			req: dto.CreateCompetitionRequest{
				CompetitionNameEn:     "Sports Meet",
				CompetitionScope:      model.CompetitionScopeGrade,
				CompetitionGradeIDs:   []uuid.UUID{gradeID},
				CompetitionSectionIDs: []uuid.UUID{sectionID},
			},
			wantErr: true,
		},
		{
			name: "section scope without section ids",
			req: dto.CreateCompetitionRequest{
				CompetitionNameEn: "Debate",
				CompetitionScope:  model.CompetitionScopeSection,
			},
			wantErr: true,
		},
		{
			name: "open scope with grade ids",
			req: dto.CreateCompetitionRequest{
				CompetitionNameEn:   "Chess",
				CompetitionScope:    model.CompetitionScopeOpen,
				CompetitionGradeIDs: []uuid.UUID{gradeID},
			},
			wantErr: true,
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), schoolID, &tc.req, actorID)
			if tc.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestUpdateCompetitionRevalidatesMergedScope(t *testing.T) {
	store := newFakeCompetitionStore()
	svc := NewCompetitionService(store)
	schoolID := uuid.New()
	actorID := uuid.New()
	gradeID := uuid.New()

	created, err := svc.Create(context.Background(), schoolID, &dto.CreateCompetitionRequest{
		CompetitionNameEn:   "Sports Meet",
		CompetitionScope:    model.CompetitionScopeGrade,
		CompetitionGradeIDs: []uuid.UUID{gradeID},
	}, actorID)
	require.NoError(t, err)
	id := uuid.MustParse(created.CompetitionID)

	// switching to open while grade ids remain must fail
	open := model.CompetitionScopeOpen
	_, err = svc.Update(context.Background(), schoolID, id, &dto.UpdateCompetitionRequest{
		CompetitionScope: &open,
	}, actorID)
	assert.Error(t, err)

	// clearing the grade ids in the same patch succeeds
	empty := []uuid.UUID{}
	res, err := svc.Update(context.Background(), schoolID, id, &dto.UpdateCompetitionRequest{
		CompetitionScope:    &open,
		CompetitionGradeIDs: &empty,
	}, actorID)
	require.NoError(t, err)
	assert.Equal(t, model.CompetitionScopeOpen, res.CompetitionScope)
}

func TestGetCompetitionWrongSchoolIsNotFound(t *testing.T) {
	store := newFakeCompetitionStore()
	svc := NewCompetitionService(store)
	schoolID := uuid.New()

	created, err := svc.Create(context.Background(), schoolID, &dto.CreateCompetitionRequest{
		CompetitionNameEn: "Chess",
		CompetitionScope:  model.CompetitionScopeOpen,
	}, uuid.New())
	require.NoError(t, err)

	_, err = svc.GetByID(context.Background(), uuid.New(), uuid.MustParse(created.CompetitionID))
	assert.ErrorIs(t, err, dberr.ErrNotFound)
}
