package patient_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	patienthandler "github.com/ecnhealth/clinical-api/internal/handler/patient"
	"github.com/ecnhealth/clinical-api/internal/model"
	"github.com/ecnhealth/clinical-api/internal/repository/memory"
	patientsvc "github.com/ecnhealth/clinical-api/internal/service/patient"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/api")

	h := patienthandler.NewHandler(patientsvc.NewService(memory.NewPatientRepository()))
	h.RegisterRoutes(api)
	return r
}

func doRequest(t *testing.T, r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func createPatient(t *testing.T, r *gin.Engine, email string) model.Patient {
	t.Helper()

	w := doRequest(t, r, http.MethodPost, "/api/patients/", gin.H{
		"first_name":    "John",
		"last_name":     "Doe",
		"date_of_birth": "1990-01-01",
		"email":         email,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var p model.Patient
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &p))
	return p
}

func TestCreatePatientEndpoint(t *testing.T) {
	r := newTestRouter()

	p := createPatient(t, r, "john.doe@example.com")

	assert.NotZero(t, p.ID)
	assert.Equal(t, "John", p.FirstName)
	assert.Equal(t, "Doe", p.LastName)
	assert.Equal(t, "john.doe@example.com", p.Email)
	assert.Equal(t, "1990-01-01", p.DateOfBirth.String())
	assert.False(t, p.EcnDysfunctionConfirmed)
	assert.Equal(t, p.CreatedAt, p.UpdatedAt)
}

func TestCreatePatientDuplicateEmail(t *testing.T) {
	r := newTestRouter()

	createPatient(t, r, "dup@example.com")

	w := doRequest(t, r, http.MethodPost, "/api/patients/", gin.H{
		"first_name":    "Jane",
		"last_name":     "Doe",
		"date_of_birth": "1991-02-02",
		"email":         "dup@example.com",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "detail")
}

func TestCreatePatientMissingEmail(t *testing.T) {
	r := newTestRouter()

	w := doRequest(t, r, http.MethodPost, "/api/patients/", gin.H{
		"first_name":    "John",
		"last_name":     "Doe",
		"date_of_birth": "1990-01-01",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "email")
}

func TestGetPatientNotFound(t *testing.T) {
	r := newTestRouter()

	w := doRequest(t, r, http.MethodGet, "/api/patients/42", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"detail": "Patient not found"}`, w.Body.String())
}

func TestGetPatientInvalidID(t *testing.T) {
	r := newTestRouter()

	w := doRequest(t, r, http.MethodGet, "/api/patients/abc", nil)
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
}

func TestListPatientsEndpoint(t *testing.T) {
	r := newTestRouter()

	createPatient(t, r, "a@example.com")
	createPatient(t, r, "b@example.com")

	w := doRequest(t, r, http.MethodGet, "/api/patients/?skip=0&limit=1", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var patients []model.Patient
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &patients))
	require.Len(t, patients, 1)
	assert.Equal(t, "a@example.com", patients[0].Email)
}

func TestPatchPatientEndpoint(t *testing.T) {
	r := newTestRouter()

	p := createPatient(t, r, "patch@example.com")

	w := doRequest(t, r, http.MethodPatch, "/api/patients/"+itoa(p.ID), gin.H{
		"phone": "555-0102",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var updated model.Patient
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	require.NotNil(t, updated.Phone)
	assert.Equal(t, "555-0102", *updated.Phone)
	assert.Equal(t, p.Email, updated.Email)
	assert.Equal(t, p.FirstName, updated.FirstName)
}

func TestDeletePatientEndpoint(t *testing.T) {
	r := newTestRouter()

	p := createPatient(t, r, "gone@example.com")

	w := doRequest(t, r, http.MethodDelete, "/api/patients/"+itoa(p.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"detail": "Patient deleted successfully"}`, w.Body.String())

	w = doRequest(t, r, http.MethodGet, "/api/patients/"+itoa(p.ID), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func itoa(id int64) string {
	return strconv.FormatInt(id, 10)
}
