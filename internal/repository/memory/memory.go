// Package memory provides in-memory repository implementations backing the
// service and handler tests.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/ecnhealth/clinical-api/internal/model"
	apperrors "github.com/ecnhealth/clinical-api/pkg/errors"
)

type PatientRepository struct {
	mu       sync.Mutex
	nextID   int64
	patients map[int64]model.Patient
}

func NewPatientRepository() *PatientRepository {
	return &PatientRepository{patients: make(map[int64]model.Patient)}
}

func (r *PatientRepository) Create(_ context.Context, patient *model.Patient) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, p := range r.patients {
		if p.Email == patient.Email {
			return apperrors.NewConflict("patient with this email already exists", nil)
		}
	}

	r.nextID++
	patient.ID = r.nextID
	r.patients[patient.ID] = *patient
	return nil
}

func (r *PatientRepository) Get(_ context.Context, id int64) (*model.Patient, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.patients[id]
	if !ok {
		return nil, apperrors.NewNotFound("Patient", nil)
	}
	return &p, nil
}

func (r *PatientRepository) List(_ context.Context, skip, limit int) ([]*model.Patient, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids := make([]int64, 0, len(r.patients))
	for id := range r.patients {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var out []*model.Patient
	for i, id := range ids {
		if i < skip {
			continue
		}
		if len(out) >= limit {
			break
		}
		p := r.patients[id]
		out = append(out, &p)
	}
	return out, nil
}

func (r *PatientRepository) Update(_ context.Context, patient *model.Patient) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.patients[patient.ID]; !ok {
		return apperrors.NewNotFound("Patient", nil)
	}
	for id, p := range r.patients {
		if id != patient.ID && p.Email == patient.Email {
			return apperrors.NewConflict("patient with this email already exists", nil)
		}
	}
	r.patients[patient.ID] = *patient
	return nil
}

func (r *PatientRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.patients[id]; !ok {
		return apperrors.NewNotFound("Patient", nil)
	}
	delete(r.patients, id)
	return nil
}

type AssessmentRepository struct {
	mu          sync.Mutex
	nextID      int64
	assessments map[int64]model.Assessment
}

func NewAssessmentRepository() *AssessmentRepository {
	return &AssessmentRepository{assessments: make(map[int64]model.Assessment)}
}

func (r *AssessmentRepository) Create(_ context.Context, assessment *model.Assessment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	assessment.ID = r.nextID
	r.assessments[assessment.ID] = *assessment
	return nil
}

func (r *AssessmentRepository) Get(_ context.Context, id int64) (*model.Assessment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	a, ok := r.assessments[id]
	if !ok {
		return nil, apperrors.NewNotFound("Assessment", nil)
	}
	return &a, nil
}

func (r *AssessmentRepository) List(_ context.Context, skip, limit int) ([]*model.Assessment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids := make([]int64, 0, len(r.assessments))
	for id := range r.assessments {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var out []*model.Assessment
	for i, id := range ids {
		if i < skip {
			continue
		}
		if len(out) >= limit {
			break
		}
		a := r.assessments[id]
		out = append(out, &a)
	}
	return out, nil
}

func (r *AssessmentRepository) ListByPatient(_ context.Context, patientID int64) ([]*model.Assessment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*model.Assessment
	for _, a := range r.assessments {
		if a.PatientID == patientID {
			a := a
			out = append(out, &a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *AssessmentRepository) Update(_ context.Context, assessment *model.Assessment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.assessments[assessment.ID]; !ok {
		return apperrors.NewNotFound("Assessment", nil)
	}
	r.assessments[assessment.ID] = *assessment
	return nil
}

func (r *AssessmentRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.assessments[id]; !ok {
		return apperrors.NewNotFound("Assessment", nil)
	}
	delete(r.assessments, id)
	return nil
}

type TreatmentRepository struct {
	mu         sync.Mutex
	nextID     int64
	treatments map[int64]model.Treatment
}

func NewTreatmentRepository() *TreatmentRepository {
	return &TreatmentRepository{treatments: make(map[int64]model.Treatment)}
}

func (r *TreatmentRepository) Create(_ context.Context, treatment *model.Treatment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.nextID++
	treatment.ID = r.nextID
	r.treatments[treatment.ID] = *treatment
	return nil
}

func (r *TreatmentRepository) Get(_ context.Context, id int64) (*model.Treatment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	t, ok := r.treatments[id]
	if !ok {
		return nil, apperrors.NewNotFound("Treatment", nil)
	}
	return &t, nil
}

func (r *TreatmentRepository) List(_ context.Context, skip, limit int) ([]*model.Treatment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ids := make([]int64, 0, len(r.treatments))
	for id := range r.treatments {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	var out []*model.Treatment
	for i, id := range ids {
		if i < skip {
			continue
		}
		if len(out) >= limit {
			break
		}
		t := r.treatments[id]
		out = append(out, &t)
	}
	return out, nil
}

func (r *TreatmentRepository) ListByPatient(_ context.Context, patientID int64) ([]*model.Treatment, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var out []*model.Treatment
	for _, t := range r.treatments {
		if t.PatientID == patientID {
			t := t
			out = append(out, &t)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *TreatmentRepository) Update(_ context.Context, treatment *model.Treatment) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.treatments[treatment.ID]; !ok {
		return apperrors.NewNotFound("Treatment", nil)
	}
	r.treatments[treatment.ID] = *treatment
	return nil
}

func (r *TreatmentRepository) Delete(_ context.Context, id int64) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.treatments[id]; !ok {
		return apperrors.NewNotFound("Treatment", nil)
	}
	delete(r.treatments, id)
	return nil
}
