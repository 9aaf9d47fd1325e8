package patient_test

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ecnhealth/clinical-api/internal/model"
	"github.com/ecnhealth/clinical-api/internal/repository/memory"
	patientsvc "github.com/ecnhealth/clinical-api/internal/service/patient"
	apperrors "github.com/ecnhealth/clinical-api/pkg/errors"
)

func newService() patientsvc.Service {
	return patientsvc.NewService(memory.NewPatientRepository())
}

func validCreateRequest(email string) *model.CreatePatientRequest {
	return &model.CreatePatientRequest{
		FirstName:   "John",
		LastName:    "Doe",
		DateOfBirth: model.NewDate(1990, time.January, 1),
		Email:       email,
	}
}

func TestCreatePatient(t *testing.T) {
	svc := newService()

	p, err := svc.CreatePatient(context.Background(), validCreateRequest("john.doe@example.com"))
	require.NoError(t, err)

	assert.NotZero(t, p.ID)
	assert.Equal(t, "John", p.FirstName)
	assert.Equal(t, "Doe", p.LastName)
	assert.Equal(t, "john.doe@example.com", p.Email)
	assert.False(t, p.EcnDysfunctionConfirmed)
	assert.Nil(t, p.Phone)
	assert.Equal(t, p.CreatedAt, p.UpdatedAt)
}

func TestCreatePatientMissingFields(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*model.CreatePatientRequest)
	}{
		{"missing first_name", func(r *model.CreatePatientRequest) { r.FirstName = "" }},
		{"missing last_name", func(r *model.CreatePatientRequest) { r.LastName = "" }},
		{"missing date_of_birth", func(r *model.CreatePatientRequest) { r.DateOfBirth = model.Date{} }},
		{"missing email", func(r *model.CreatePatientRequest) { r.Email = "" }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := newService()
			req := validCreateRequest("jane@example.com")
			tt.mutate(req)

			_, err := svc.CreatePatient(context.Background(), req)
			assert.True(t, apperrors.IsValidation(err))
		})
	}
}

func TestCreatePatientDuplicateEmail(t *testing.T) {
	svc := newService()

	_, err := svc.CreatePatient(context.Background(), validCreateRequest("dup@example.com"))
	require.NoError(t, err)

	_, err = svc.CreatePatient(context.Background(), validCreateRequest("dup@example.com"))
	assert.True(t, apperrors.IsConflict(err))
}

func TestGetPatientNotFound(t *testing.T) {
	svc := newService()

	_, err := svc.GetPatient(context.Background(), 42)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestUpdatePatientPartialFields(t *testing.T) {
	svc := newService()

	created, err := svc.CreatePatient(context.Background(), validCreateRequest("partial@example.com"))
	require.NoError(t, err)

	phone := "555-0101"
	updated, err := svc.UpdatePatient(context.Background(), created.ID, &model.UpdatePatientRequest{
		Phone: &phone,
	})
	require.NoError(t, err)

	require.NotNil(t, updated.Phone)
	assert.Equal(t, phone, *updated.Phone)

	// All other fields stay put.
	assert.Equal(t, created.FirstName, updated.FirstName)
	assert.Equal(t, created.LastName, updated.LastName)
	assert.Equal(t, created.Email, updated.Email)
	assert.Equal(t, created.DateOfBirth, updated.DateOfBirth)
	assert.Equal(t, created.CreatedAt, updated.CreatedAt)
	assert.False(t, updated.UpdatedAt.Before(created.UpdatedAt))
}

func TestUpdatePatientExplicitFalse(t *testing.T) {
	svc := newService()

	confirmed := true
	req := validCreateRequest("flag@example.com")
	req.EcnDysfunctionConfirmed = &confirmed

	created, err := svc.CreatePatient(context.Background(), req)
	require.NoError(t, err)
	require.True(t, created.EcnDysfunctionConfirmed)

	// Explicit false is a real write, distinct from "not provided".
	unconfirmed := false
	updated, err := svc.UpdatePatient(context.Background(), created.ID, &model.UpdatePatientRequest{
		EcnDysfunctionConfirmed: &unconfirmed,
	})
	require.NoError(t, err)
	assert.False(t, updated.EcnDysfunctionConfirmed)
}

func TestUpdatePatientEmptyPatch(t *testing.T) {
	svc := newService()

	created, err := svc.CreatePatient(context.Background(), validCreateRequest("empty@example.com"))
	require.NoError(t, err)

	got, err := svc.UpdatePatient(context.Background(), created.ID, &model.UpdatePatientRequest{})
	require.NoError(t, err)

	// Behaves as a read, updated_at does not advance.
	assert.Equal(t, created.UpdatedAt, got.UpdatedAt)
	assert.Equal(t, created.Email, got.Email)
}

func TestUpdatePatientIdempotent(t *testing.T) {
	svc := newService()

	created, err := svc.CreatePatient(context.Background(), validCreateRequest("idem@example.com"))
	require.NoError(t, err)

	first := "Johnny"
	once, err := svc.UpdatePatient(context.Background(), created.ID, &model.UpdatePatientRequest{FirstName: &first})
	require.NoError(t, err)

	twice, err := svc.UpdatePatient(context.Background(), created.ID, &model.UpdatePatientRequest{FirstName: &first})
	require.NoError(t, err)

	assert.Equal(t, once.FirstName, twice.FirstName)
	assert.Equal(t, once.Email, twice.Email)
	assert.False(t, twice.UpdatedAt.Before(once.UpdatedAt))
}

func TestUpdatePatientNotFound(t *testing.T) {
	svc := newService()

	name := "Nobody"
	_, err := svc.UpdatePatient(context.Background(), 99, &model.UpdatePatientRequest{FirstName: &name})
	assert.True(t, apperrors.IsNotFound(err))
}

func TestDeletePatient(t *testing.T) {
	svc := newService()

	created, err := svc.CreatePatient(context.Background(), validCreateRequest("gone@example.com"))
	require.NoError(t, err)

	require.NoError(t, svc.DeletePatient(context.Background(), created.ID))

	_, err = svc.GetPatient(context.Background(), created.ID)
	assert.True(t, apperrors.IsNotFound(err))

	err = svc.DeletePatient(context.Background(), created.ID)
	assert.True(t, apperrors.IsNotFound(err))
}

func TestListPatientsPagination(t *testing.T) {
	svc := newService()

	emails := []string{"a@example.com", "b@example.com", "c@example.com"}
	for _, email := range emails {
		_, err := svc.CreatePatient(context.Background(), validCreateRequest(email))
		require.NoError(t, err)
	}

	all, err := svc.ListPatients(context.Background(), 0, 0)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, "a@example.com", all[0].Email)

	page, err := svc.ListPatients(context.Background(), 1, 1)
	require.NoError(t, err)
	require.Len(t, page, 1)
	assert.Equal(t, "b@example.com", page[0].Email)
}
