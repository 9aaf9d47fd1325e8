package postgres

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/ecnhealth/clinical-api/internal/model"
	"github.com/ecnhealth/clinical-api/internal/repository"
)

type treatmentRepository struct {
	db *sqlx.DB
}

func NewTreatmentRepository(db *sqlx.DB) repository.TreatmentRepository {
	return &treatmentRepository{db: db}
}

func (r *treatmentRepository) Create(ctx context.Context, treatment *model.Treatment) error {
	query := `
		INSERT INTO treatments (
			patient_id, start_date, end_date, medication_name, dosage,
			frequency, is_active, is_responder, efficacy_rating, notes,
			created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id
	`
	err := r.db.QueryRowxContext(ctx, query,
		treatment.PatientID,
		treatment.StartDate,
		treatment.EndDate,
		treatment.MedicationName,
		treatment.Dosage,
		treatment.Frequency,
		treatment.IsActive,
		treatment.IsResponder,
		treatment.EfficacyRating,
		treatment.Notes,
		treatment.CreatedAt,
		treatment.UpdatedAt,
	).Scan(&treatment.ID)
	return translateError(entityTreatment, err)
}

func (r *treatmentRepository) Get(ctx context.Context, id int64) (*model.Treatment, error) {
	query := `SELECT * FROM treatments WHERE id = $1`
	var treatment model.Treatment
	if err := r.db.GetContext(ctx, &treatment, query, id); err != nil {
		return nil, translateError(entityTreatment, err)
	}
	return &treatment, nil
}

func (r *treatmentRepository) List(ctx context.Context, skip, limit int) ([]*model.Treatment, error) {
	query := `SELECT * FROM treatments ORDER BY id ASC OFFSET $1 LIMIT $2`
	var treatments []*model.Treatment
	if err := r.db.SelectContext(ctx, &treatments, query, skip, limit); err != nil {
		return nil, translateError(entityTreatment, err)
	}
	return treatments, nil
}

func (r *treatmentRepository) ListByPatient(ctx context.Context, patientID int64) ([]*model.Treatment, error) {
	query := `SELECT * FROM treatments WHERE patient_id = $1 ORDER BY id ASC`
	var treatments []*model.Treatment
	if err := r.db.SelectContext(ctx, &treatments, query, patientID); err != nil {
		return nil, translateError(entityTreatment, err)
	}
	return treatments, nil
}

func (r *treatmentRepository) Update(ctx context.Context, treatment *model.Treatment) error {
	query := `
		UPDATE treatments SET
			start_date = $1, end_date = $2, medication_name = $3,
			dosage = $4, frequency = $5, is_active = $6, is_responder = $7,
			efficacy_rating = $8, notes = $9, updated_at = $10
		WHERE id = $11
	`
	res, err := r.db.ExecContext(ctx, query,
		treatment.StartDate,
		treatment.EndDate,
		treatment.MedicationName,
		treatment.Dosage,
		treatment.Frequency,
		treatment.IsActive,
		treatment.IsResponder,
		treatment.EfficacyRating,
		treatment.Notes,
		treatment.UpdatedAt,
		treatment.ID,
	)
	if err != nil {
		return translateError(entityTreatment, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return translateError(entityTreatment, sql.ErrNoRows)
	}
	return nil
}

func (r *treatmentRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM treatments WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return translateError(entityTreatment, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return translateError(entityTreatment, sql.ErrNoRows)
	}
	return nil
}
