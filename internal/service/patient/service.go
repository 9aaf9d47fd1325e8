package patient

import (
	"context"
	"time"

	"github.com/ecnhealth/clinical-api/internal/model"
	"github.com/ecnhealth/clinical-api/internal/repository"
	apperrors "github.com/ecnhealth/clinical-api/pkg/errors"
)

const defaultListLimit = 100

type Service interface {
	CreatePatient(ctx context.Context, req *model.CreatePatientRequest) (*model.Patient, error)
	GetPatient(ctx context.Context, id int64) (*model.Patient, error)
	ListPatients(ctx context.Context, skip, limit int) ([]*model.Patient, error)
	UpdatePatient(ctx context.Context, id int64, req *model.UpdatePatientRequest) (*model.Patient, error)
	DeletePatient(ctx context.Context, id int64) error
}

type service struct {
	repo repository.PatientRepository
}

func NewService(repo repository.PatientRepository) Service {
	return &service{repo: repo}
}

func (s *service) CreatePatient(ctx context.Context, req *model.CreatePatientRequest) (*model.Patient, error) {
	if err := validateCreate(req); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	patient := &model.Patient{
		FirstName:                req.FirstName,
		LastName:                 req.LastName,
		DateOfBirth:              req.DateOfBirth,
		Email:                    req.Email,
		Phone:                    req.Phone,
		InflammatoryMarkersLevel: req.InflammatoryMarkersLevel,
		CreatedAt:                now,
		UpdatedAt:                now,
	}
	if req.EcnDysfunctionConfirmed != nil {
		patient.EcnDysfunctionConfirmed = *req.EcnDysfunctionConfirmed
	}

	if err := s.repo.Create(ctx, patient); err != nil {
		return nil, err
	}
	return patient, nil
}

func (s *service) GetPatient(ctx context.Context, id int64) (*model.Patient, error) {
	return s.repo.Get(ctx, id)
}

func (s *service) ListPatients(ctx context.Context, skip, limit int) ([]*model.Patient, error) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = defaultListLimit
	}

	patients, err := s.repo.List(ctx, skip, limit)
	if err != nil {
		return nil, err
	}
	if patients == nil {
		patients = []*model.Patient{}
	}
	return patients, nil
}

func (s *service) UpdatePatient(ctx context.Context, id int64, req *model.UpdatePatientRequest) (*model.Patient, error) {
	patient, err := s.repo.Get(ctx, id)
	if err != nil {
		return nil, err
	}

	if !applyPatch(patient, req) {
		// Nothing to write, behaves as a read.
		return patient, nil
	}

	patient.UpdatedAt = time.Now().UTC()
	if err := s.repo.Update(ctx, patient); err != nil {
		return nil, err
	}
	return patient, nil
}

func (s *service) DeletePatient(ctx context.Context, id int64) error {
	return s.repo.Delete(ctx, id)
}

func validateCreate(req *model.CreatePatientRequest) error {
	switch {
	case req.FirstName == "":
		return apperrors.NewValidation("first_name is required", nil)
	case req.LastName == "":
		return apperrors.NewValidation("last_name is required", nil)
	case req.DateOfBirth.IsZero():
		return apperrors.NewValidation("date_of_birth is required", nil)
	case req.Email == "":
		return apperrors.NewValidation("email is required", nil)
	}
	return nil
}

// applyPatch copies the provided fields onto the patient and reports whether
// anything was provided. Absent and explicitly-null fields are skipped alike,
// so an optional field cannot be reset to null here.
func applyPatch(patient *model.Patient, req *model.UpdatePatientRequest) bool {
	changed := false
	if req.FirstName != nil {
		patient.FirstName = *req.FirstName
		changed = true
	}
	if req.LastName != nil {
		patient.LastName = *req.LastName
		changed = true
	}
	if req.DateOfBirth != nil {
		patient.DateOfBirth = *req.DateOfBirth
		changed = true
	}
	if req.Email != nil {
		patient.Email = *req.Email
		changed = true
	}
	if req.Phone != nil {
		patient.Phone = req.Phone
		changed = true
	}
	if req.EcnDysfunctionConfirmed != nil {
		patient.EcnDysfunctionConfirmed = *req.EcnDysfunctionConfirmed
		changed = true
	}
	if req.InflammatoryMarkersLevel != nil {
		patient.InflammatoryMarkersLevel = req.InflammatoryMarkersLevel
		changed = true
	}
	return changed
}
