package repository

import (
	"context"

	"github.com/ecnhealth/clinical-api/internal/model"
)

type PatientRepository interface {
	Create(ctx context.Context, patient *model.Patient) error
	Get(ctx context.Context, id int64) (*model.Patient, error)
	List(ctx context.Context, skip, limit int) ([]*model.Patient, error)
	Update(ctx context.Context, patient *model.Patient) error
	Delete(ctx context.Context, id int64) error
}

type AssessmentRepository interface {
	Create(ctx context.Context, assessment *model.Assessment) error
	Get(ctx context.Context, id int64) (*model.Assessment, error)
	List(ctx context.Context, skip, limit int) ([]*model.Assessment, error)
	ListByPatient(ctx context.Context, patientID int64) ([]*model.Assessment, error)
	Update(ctx context.Context, assessment *model.Assessment) error
	Delete(ctx context.Context, id int64) error
}

type TreatmentRepository interface {
	Create(ctx context.Context, treatment *model.Treatment) error
	Get(ctx context.Context, id int64) (*model.Treatment, error)
	List(ctx context.Context, skip, limit int) ([]*model.Treatment, error)
	ListByPatient(ctx context.Context, patientID int64) ([]*model.Treatment, error)
	Update(ctx context.Context, treatment *model.Treatment) error
	Delete(ctx context.Context, id int64) error
}
