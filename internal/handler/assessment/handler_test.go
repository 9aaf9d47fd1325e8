package assessment_test

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

	assessmenthandler "github.com/ecnhealth/clinical-api/internal/handler/assessment"
	patienthandler "github.com/ecnhealth/clinical-api/internal/handler/patient"
	"github.com/ecnhealth/clinical-api/internal/model"
	"github.com/ecnhealth/clinical-api/internal/repository/memory"
	assessmentsvc "github.com/ecnhealth/clinical-api/internal/service/assessment"
	patientsvc "github.com/ecnhealth/clinical-api/internal/service/patient"
)

func newTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/api")

	patientRepo := memory.NewPatientRepository()
	ph := patienthandler.NewHandler(patientsvc.NewService(patientRepo))
	ph.RegisterRoutes(api)

	ah := assessmenthandler.NewHandler(assessmentsvc.NewService(memory.NewAssessmentRepository(), patientRepo))
	ah.RegisterRoutes(api)
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

func createPatient(t *testing.T, r *gin.Engine) model.Patient {
	t.Helper()

	w := doRequest(t, r, http.MethodPost, "/api/patients/", gin.H{
		"first_name":    "Dana",
		"last_name":     "Reeve",
		"date_of_birth": "1985-06-14",
		"email":         "dana@example.com",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var p model.Patient
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &p))
	return p
}

func TestCreateAssessmentEndpoint(t *testing.T) {
	r := newTestRouter()
	p := createPatient(t, r)

	w := doRequest(t, r, http.MethodPost, "/api/assessments/", gin.H{
		"patient_id":      p.ID,
		"assessment_date": "2024-03-15",
		"assessment_type": "fmri",
		"fmri_data":       gin.H{"dlpfc_activation": 0.73},
		"wpai_score":      41.5,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var a model.Assessment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &a))
	assert.NotZero(t, a.ID)
	assert.Equal(t, p.ID, a.PatientID)
	assert.Equal(t, "2024-03-15", a.AssessmentDate.String())
	assert.Equal(t, 0.73, a.FmriData["dlpfc_activation"])
	require.NotNil(t, a.WpaiScore)
	assert.Equal(t, 41.5, *a.WpaiScore)
	assert.Nil(t, a.CrpLevel)
}

func TestCreateAssessmentUnknownPatient(t *testing.T) {
	r := newTestRouter()

	w := doRequest(t, r, http.MethodPost, "/api/assessments/", gin.H{
		"patient_id":      42,
		"assessment_date": "2024-03-15",
		"assessment_type": "fmri",
	})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Contains(t, w.Body.String(), "patient 42 does not exist")
}

func TestUpdateAssessmentEndpoint(t *testing.T) {
	r := newTestRouter()
	p := createPatient(t, r)

	w := doRequest(t, r, http.MethodPost, "/api/assessments/", gin.H{
		"patient_id":      p.ID,
		"assessment_date": "2024-03-15",
		"assessment_type": "cognitive",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var created model.Assessment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))

	w = doRequest(t, r, http.MethodPatch, "/api/assessments/"+strconv.FormatInt(created.ID, 10), gin.H{
		"n_back_task_score": 88.0,
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var updated model.Assessment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	require.NotNil(t, updated.NBackTaskScore)
	assert.Equal(t, 88.0, *updated.NBackTaskScore)
	// Untouched fields survive the patch.
	assert.Equal(t, "cognitive", updated.AssessmentType)
	assert.Equal(t, created.AssessmentDate, updated.AssessmentDate)
}

func TestAssessmentNotFoundEndpoint(t *testing.T) {
	r := newTestRouter()

	w := doRequest(t, r, http.MethodGet, "/api/assessments/12", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"detail": "Assessment not found"}`, w.Body.String())
}

func TestDeleteAssessmentEndpoint(t *testing.T) {
	r := newTestRouter()
	p := createPatient(t, r)

	w := doRequest(t, r, http.MethodPost, "/api/assessments/", gin.H{
		"patient_id":      p.ID,
		"assessment_date": "2024-03-15",
		"assessment_type": "biomarker",
	})
	require.Equal(t, http.StatusOK, w.Code)

	var created model.Assessment
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	path := "/api/assessments/" + strconv.FormatInt(created.ID, 10)

	w = doRequest(t, r, http.MethodDelete, path, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"detail": "Assessment deleted successfully"}`, w.Body.String())

	w = doRequest(t, r, http.MethodGet, path, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
