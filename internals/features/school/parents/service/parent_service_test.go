package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vidyalaya_backend/internals/features/school/parents/dto"
	"vidyalaya_backend/internals/features/school/parents/model"
	"vidyalaya_backend/internals/helpers/dberr"
)

type fakeParentStore struct {
	rows map[uuid.UUID]model.ParentModel
}

func newFakeParentStore() *fakeParentStore {
	return &fakeParentStore{rows: map[uuid.UUID]model.ParentModel{}}
}

func (f *fakeParentStore) Insert(_ context.Context, m *model.ParentModel) error {
	if m.ParentID == uuid.Nil {
		m.ParentID = uuid.New()
	}
	f.rows[m.ParentID] = *m
	return nil
}

func (f *fakeParentStore) FindByID(_ context.Context, schoolID, id uuid.UUID) (*model.ParentModel, error) {
	m, ok := f.rows[id]
	if !ok || m.ParentSchoolID != schoolID {
		return nil, dberr.ErrNotFound
	}
	out := m
	return &out, nil
}

func (f *fakeParentStore) List(_ context.Context, schoolID uuid.UUID) ([]model.ParentModel, error) {
	var out []model.ParentModel
	for _, m := range f.rows {
		if m.ParentSchoolID == schoolID {
			out = append(out, m)
		}
	}
	return out, nil
}

func (f *fakeParentStore) Save(_ context.Context, m *model.ParentModel) error {
	old, ok := f.rows[m.ParentID]
	if !ok || old.ParentSchoolID != m.ParentSchoolID {
		return dberr.ErrNotFound
	}
	f.rows[m.ParentID] = *m
	return nil
}

func (f *fakeParentStore) Delete(_ context.Context, schoolID, id uuid.UUID) error {
	m, ok := f.rows[id]
	if !ok || m.ParentSchoolID != schoolID {
		return dberr.ErrNotFound
	}
	delete(f.rows, id)
	return nil
}

func TestCreateParentDerivesFullNames(t *testing.T) {
	svc := NewParentService(newFakeParentStore())

	res, err := svc.Create(context.Background(), uuid.New(), &dto.CreateParentRequest{
		ParentFirstNameEn: "Nimal",
		ParentLastNameEn:  "Perera",
		ParentFirstNameSi: "නිමල්",
	}, uuid.New())
	require.NoError(t, err)

	assert.Equal(t, "Nimal Perera", res.ParentFullNameEn)
	assert.Equal(t, "නිමල්", res.ParentFullNameSi)
}

func TestUpdateParentRecomputesFullNames(t *testing.T) {
	store := newFakeParentStore()
	svc := NewParentService(store)
	schoolID := uuid.New()
	actorID := uuid.New()

	created, err := svc.Create(context.Background(), schoolID, &dto.CreateParentRequest{
		ParentFirstNameEn: "Nimal",
		ParentLastNameEn:  "Perera",
	}, actorID)
	require.NoError(t, err)
	id := uuid.MustParse(created.ParentID)

	newLast := "Fernando"
	res, err := svc.Update(context.Background(), schoolID, id, &dto.UpdateParentRequest{
		ParentLastNameEn: &newLast,
	}, actorID)
	require.NoError(t, err)

	// an untouched first name still contributes to the derived column
	assert.Equal(t, "Nimal Fernando", res.ParentFullNameEn)
	assert.Equal(t, "Nimal Fernando", store.rows[id].ParentFullNameEn)
}

func TestUpdateParentWrongSchoolIsNotFound(t *testing.T) {
	store := newFakeParentStore()
	svc := NewParentService(store)

	created, err := svc.Create(context.Background(), uuid.New(), &dto.CreateParentRequest{
		ParentFirstNameEn: "Nimal",
		ParentLastNameEn:  "Perera",
	}, uuid.New())
	require.NoError(t, err)

	newLast := "Fernando"
	_, err = svc.Update(context.Background(), uuid.New(), uuid.MustParse(created.ParentID), &dto.UpdateParentRequest{
		ParentLastNameEn: &newLast,
	}, uuid.New())
	assert.ErrorIs(t, err, dberr.ErrNotFound)
}
