package treatment

import (
	"context"
	"fmt"
	"time"

	"github.com/ecnhealth/clinical-api/internal/model"
	"github.com/ecnhealth/clinical-api/internal/repository"
	apperrors "github.com/ecnhealth/clinical-api/pkg/errors"
)

const defaultListLimit = 100

type Service interface {
	CreateTreatment(ctx context.Context, req *model.CreateTreatmentRequest) (*model.Treatment, error)
	GetTreatment(ctx context.Context, id int64) (*model.Treatment, error)
	ListTreatments(ctx context.Context, skip, limit int) ([]*model.Treatment, error)
	ListPatientTreatments(ctx context.Context, patientID int64) ([]*model.Treatment, error)
	UpdateTreatment(ctx context.Context, id int64, req *model.UpdateTreatmentRequest) (*model.Treatment, error)
	DeleteTreatment(ctx context.Context, id int64) error
}

type service struct {
	repo     repository.TreatmentRepository
	patients repository.PatientRepository
}

func NewService(repo repository.TreatmentRepository, patients repository.PatientRepository) Service {
	return &service{repo: repo, patients: patients}
}

func (s *service) CreateTreatment(ctx context.Context, req *model.CreateTreatmentRequest) (*model.Treatment, error) {
	if err := validateCreate(req); err != nil {
		return nil, err
	}

	// The referenced patient must exist at creation time. This check is not
	// transactional against a concurrent delete.
	if _, err := s.patients.Get(ctx, req.PatientID); err != nil {
		if apperrors.IsNotFound(err) {
			return nil, apperrors.NewValidation(fmt.Sprintf("patient %d does not exist", req.PatientID), err)
		}
		return nil, err
	}

	now := time.Now().UTC()
	treatment := &model.Treatment{
		PatientID:      req.PatientID,
		StartDate:      req.StartDate,
		EndDate:        req.EndDate,
		MedicationName: req.MedicationName,
		Dosage:         req.Dosage,
		Frequency:      req.Frequency,
		IsActive:       true,
		IsResponder:    req.IsResponder,
		EfficacyRating: req.EfficacyRating,
		Notes:          req.Notes,
		CreatedAt:      now,
		UpdatedAt:      now,
	}
	if req.IsActive != nil {
		treatment.IsActive = *req.IsActive
	}

	if err := s.repo.Create(ctx, treatment); err != nil {
		return nil, err
	}
	return treatment, nil
}

func (s *service) GetTreatment(ctx context.Context, id int64) (*model.Treatment, error) {
	return s.repo.Get(ctx, id)
}

func (s *service) ListTreatments(ctx context.Context, skip, limit int) ([]*model.Treatment, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = defaultListLimit
	}

	treatments, err := s.repo.List(ctx, skip, limit)
	if err != nil {
		return nil, err
	}
	if treatments == nil {
		treatments = []*model.Treatment{}
	}
	return treatments, nil
}

func (s *service) ListPatientTreatments(ctx context.Context, patientID int64) ([]*model.Treatment, error) {
	treatments, err := s.repo.ListByPatient(ctx, patientID)
	if err != nil {
		return nil, err
	}
	// An unknown patient yields an empty list, not an error.
	if treatments == nil {
		treatments = []*model.Treatment{}
	}
	return treatments, nil
}

func (s *service) UpdateTreatment(ctx context.Context, id int64, req *model.UpdateTreatmentRequest) (*model.Treatment, error) {
	treatment, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if !applyPatch(treatment, req) {
		return treatment, nil
	}

	treatment.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, treatment); err != nil {
		return nil, err
	}
	return treatment, nil
}

func (s *service) DeleteTreatment(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func validateCreate(req *model.CreateTreatmentRequest) error {
	switch {
	case req.PatientID == 0:
		return apperrors.NewValidation("patient_id is required", nil)
	case req.StartDate.IsZero():
		return apperrors.NewValidation("start_date is required", nil)
	case req.MedicationName == "":
		return apperrors.NewValidation("medication_name is required", nil)
	case req.Dosage == "":
		return apperrors.NewValidation("dosage is required", nil)
	case req.Frequency == "":
		return apperrors.NewValidation("frequency is required", nil)
	}
	return nil
}

func applyPatch(treatment *model.Treatment, req *model.UpdateTreatmentRequest) bool {
	changed := false
	if req.StartDate != nil {
		treatment.StartDate = *req.StartDate
		changed = true
	}
	if req.EndDate != nil {
		treatment.EndDate = req.EndDate
		changed = true
	}
	if req.MedicationName != nil {
		treatment.MedicationName = *req.MedicationName
		changed = true
	}
	if req.Dosage != nil {
		treatment.Dosage = *req.Dosage
		changed = true
	}
	if req.Frequency != nil {
		treatment.Frequency = *req.Frequency
		changed = true
	}
	if req.IsActive != nil {
		treatment.IsActive = *req.IsActive
		changed = true
	}
	if req.IsResponder != nil {
		treatment.IsResponder = req.IsResponder
		changed = true
	}
	if req.EfficacyRating != nil {
		treatment.EfficacyRating = req.EfficacyRating
		changed = true
	}
	if req.Notes != nil {
		treatment.Notes = req.Notes
		changed = true
	}
	return changed
}
