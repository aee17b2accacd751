package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"vidyalaya_backend/internals/features/school/students/dto"
	"vidyalaya_backend/internals/features/school/students/model"
	"vidyalaya_backend/internals/helpers/dberr"
)

type fakeStudentStore struct {
	rows map[uuid.UUID]model.StudentModel
}

func newFakeStudentStore() *fakeStudentStore {
	return &fakeStudentStore{rows: map[uuid.UUID]model.StudentModel{}}
}

func (f *fakeStudentStore) Insert(_ context.Context, m *model.StudentModel) error {
	for _, old := range f.rows {
		if old.StudentSchoolID == m.StudentSchoolID && old.StudentAdmissionNo == m.StudentAdmissionNo {
			return dberr.ErrDuplicateKey
		}
	}
	if m.StudentID == uuid.Nil {
		m.StudentID = uuid.New()
	}
	f.rows[m.StudentID] = *m
	return nil
}

func (f *fakeStudentStore) FindByID(_ context.Context, schoolID, id uuid.UUID) (*model.StudentModel, error) {
	m, ok := f.rows[id]
	if !ok || m.StudentSchoolID != schoolID {
		return nil, dberr.ErrNotFound
	}
	out := m
	return &out, nil
}

func (f *fakeStudentStore) List(_ context.Context, schoolID uuid.UUID, filter dto.ListStudentFilter) ([]model.StudentModel, error) {
	var out []model.StudentModel
	for _, m := range f.rows {
		if m.StudentSchoolID != schoolID {
			continue
		}
		if filter.GradeID != nil && (m.StudentGradeID == nil || *m.StudentGradeID != *filter.GradeID) {
			continue
		}
		if filter.Status != nil && m.StudentStatus != *filter.Status {
			continue
		}
		out = append(out, m)
	}
	return out, nil
}

func (f *fakeStudentStore) Save(_ context.Context, m *model.StudentModel) error {
	old, ok := f.rows[m.StudentID]
	if !ok || old.StudentSchoolID != m.StudentSchoolID {
		return dberr.ErrNotFound
	}
	f.rows[m.StudentID] = *m
	return nil
}

func (f *fakeStudentStore) Delete(_ context.Context, schoolID, id uuid.UUID) error {
	m, ok := f.rows[id]
	if !ok || m.StudentSchoolID != schoolID {
		return dberr.ErrNotFound
	}
	delete(f.rows, id)
	return nil
}

func createStudent(t *testing.T, svc *StudentService, schoolID uuid.UUID, admissionNo string) *dto.StudentResponse {
	t.Helper()
	res, err := svc.Create(context.Background(), schoolID, &dto.CreateStudentRequest{
		StudentAdmissionNo: admissionNo,
		StudentFirstNameEn: "Kasun",
		StudentLastNameEn:  "Silva",
	}, uuid.New())
	require.NoError(t, err)
	return res
}

func TestCreateStudentDuplicateAdmissionSameSchoolConflicts(t *testing.T) {
	svc := NewStudentService(newFakeStudentStore())
	schoolID := uuid.New()

	createStudent(t, svc, schoolID, "A-100")

	_, err := svc.Create(context.Background(), schoolID, &dto.CreateStudentRequest{
		StudentAdmissionNo: "A-100",
		StudentFirstNameEn: "Other",
		StudentLastNameEn:  "Student",
	}, uuid.New())
	assert.ErrorIs(t, err, dberr.ErrDuplicateKey)
}

func TestCreateStudentSameAdmissionDifferentSchoolsOK(t *testing.T) {
	svc := NewStudentService(newFakeStudentStore())

	createStudent(t, svc, uuid.New(), "A-100")
	createStudent(t, svc, uuid.New(), "A-100")
}

func TestGetStudentWrongSchoolIsNotFound(t *testing.T) {
	svc := NewStudentService(newFakeStudentStore())
	schoolID := uuid.New()

	created := createStudent(t, svc, schoolID, "A-100")

	_, err := svc.GetByID(context.Background(), uuid.New(), uuid.MustParse(created.StudentID))
	assert.ErrorIs(t, err, dberr.ErrNotFound)

	_, err = svc.GetByID(context.Background(), schoolID, uuid.MustParse(created.StudentID))
	assert.NoError(t, err)
}

func TestListStudentsScopedToSchool(t *testing.T) {
	svc := NewStudentService(newFakeStudentStore())
	schoolA := uuid.New()
	schoolB := uuid.New()

	createStudent(t, svc, schoolA, "A-1")
	createStudent(t, svc, schoolA, "A-2")
	createStudent(t, svc, schoolB, "B-1")

	listA, err := svc.List(context.Background(), schoolA, dto.ListStudentFilter{})
	require.NoError(t, err)
	assert.Len(t, listA, 2)

	listB, err := svc.List(context.Background(), schoolB, dto.ListStudentFilter{})
	require.NoError(t, err)
	assert.Len(t, listB, 1)
}

func TestUpdateStudentStatus(t *testing.T) {
	store := newFakeStudentStore()
	svc := NewStudentService(store)
	schoolID := uuid.New()

	created := createStudent(t, svc, schoolID, "A-100")
	id := uuid.MustParse(created.StudentID)

	left := model.StudentStatusLeft
	res, err := svc.Update(context.Background(), schoolID, id, &dto.UpdateStudentRequest{
		StudentStatus: &left,
	}, uuid.New())
	require.NoError(t, err)
	assert.Equal(t, model.StudentStatusLeft, res.StudentStatus)
	assert.Equal(t, "A-100", res.StudentAdmissionNo)
}
