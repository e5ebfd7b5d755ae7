package service

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/elitedriving/institute-api/internal/models"
	"github.com/elitedriving/institute-api/internal/store"
	appErrors "github.com/elitedriving/institute-api/pkg/errors"
)

type mockStudentStore struct {
	createFn    func(ctx context.Context, in store.NewStudent) (models.Student, error)
	byEmailFn   func(ctx context.Context, email string) (models.Student, error)
	detailFn    func(ctx context.Context, id string) (models.StudentDetail, error)
	updateFn    func(ctx context.Context, id string, patch store.StudentPatch) (models.Student, error)
	createdWith *store.NewStudent
}

func (m *mockStudentStore) CreateStudent(ctx context.Context, in store.NewStudent) (models.Student, error) {
	m.createdWith = &in
	if m.createFn != nil {
		return m.createFn(ctx, in)
	}
	return models.Student{ID: "student-1", Email: in.Email}, nil
}

func (m *mockStudentStore) GetStudentByEmail(ctx context.Context, email string) (models.Student, error) {
	if m.byEmailFn != nil {
		return m.byEmailFn(ctx, email)
	}
	return models.Student{}, store.ErrNotFound
}

func (m *mockStudentStore) GetStudentDetail(ctx context.Context, id string) (models.StudentDetail, error) {
	if m.detailFn != nil {
		return m.detailFn(ctx, id)
	}
	return models.StudentDetail{}, store.ErrNotFound
}

func (m *mockStudentStore) UpdateStudent(ctx context.Context, id string, patch store.StudentPatch) (models.Student, error) {
	if m.updateFn != nil {
		return m.updateFn(ctx, id, patch)
	}
	return models.Student{}, store.ErrNotFound
}

func validCreateStudentRequest() CreateStudentRequest {
	return CreateStudentRequest{
		FirstName:   "Jane",
		LastName:    "Doe",
		Email:       "jane@example.com",
		Phone:       "555-0100",
		DateOfBirth: "1995-04-12",
	}
}

func TestStudentServiceCreate(t *testing.T) {
	st := &mockStudentStore{}
	svc := NewStudentService(st, nil, nil)

	student, err := svc.Create(context.Background(), validCreateStudentRequest())
	require.NoError(t, err)
	assert.Equal(t, "student-1", student.ID)
	require.NotNil(t, st.createdWith)
	assert.Equal(t, "jane@example.com", st.createdWith.Email)
}

func TestStudentServiceCreateDuplicateEmail(t *testing.T) {
	st := &mockStudentStore{
		byEmailFn: func(ctx context.Context, email string) (models.Student, error) {
			return models.Student{ID: "existing", Email: email}, nil
		},
	}
	svc := NewStudentService(st, nil, nil)

	_, err := svc.Create(context.Background(), validCreateStudentRequest())
	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusConflict, appErr.Status)
	assert.Equal(t, "EMAIL_EXISTS", appErr.Code)
	assert.Equal(t, "Student with this email already exists", appErr.Message)
	assert.Nil(t, st.createdWith)
}

func TestStudentServiceCreateValidation(t *testing.T) {
	svc := NewStudentService(&mockStudentStore{}, nil, nil)

	req := validCreateStudentRequest()
	req.Email = "not-an-email"
	bogus := "expert"
	req.DrivingExperience = &bogus

	_, err := svc.Create(context.Background(), req)
	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusBadRequest, appErr.Status)
	assert.Equal(t, "Invalid student data", appErr.Message)
	assert.Contains(t, appErr.Details, "email: email")
	assert.Contains(t, appErr.Details, "drivingExperience: oneof=none beginner intermediate experienced")
}

func TestStudentServiceGetNotFound(t *testing.T) {
	svc := NewStudentService(&mockStudentStore{}, nil, nil)

	_, err := svc.Get(context.Background(), "missing")
	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusNotFound, appErr.Status)
	assert.Equal(t, "Student not found", appErr.Message)
	assert.Empty(t, appErr.Code)
}

func TestStudentServiceGetByEmailMasksInternalError(t *testing.T) {
	st := &mockStudentStore{
		byEmailFn: func(ctx context.Context, email string) (models.Student, error) {
			return models.Student{}, errors.New("boom")
		},
	}
	svc := NewStudentService(st, nil, nil)

	_, err := svc.GetByEmail(context.Background(), "jane@example.com")
	var appErr *appErrors.Error
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, http.StatusInternalServerError, appErr.Status)
	assert.Equal(t, "Failed to fetch student", appErr.Message)
}

func TestStudentServiceUpdate(t *testing.T) {
	st := &mockStudentStore{
		updateFn: func(ctx context.Context, id string, patch store.StudentPatch) (models.Student, error) {
			require.NotNil(t, patch.Phone)
			return models.Student{ID: id, Phone: *patch.Phone}, nil
		},
	}
	svc := NewStudentService(st, nil, nil)

	phone := "555-0199"
	student, err := svc.Update(context.Background(), "student-1", UpdateStudentRequest{Phone: &phone})
	require.NoError(t, err)
	assert.Equal(t, "555-0199", student.Phone)
}
