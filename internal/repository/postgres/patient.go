package postgres

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/ecnhealth/clinical-api/internal/model"
	"github.com/ecnhealth/clinical-api/internal/repository"
)

type patientRepository struct {
	db *sqlx.DB
}

func NewPatientRepository(db *sqlx.DB) repository.PatientRepository {
	return &patientRepository{db: db}
}

func (r *patientRepository) Create(ctx context.Context, patient *model.Patient) error {
	query := `
		INSERT INTO patients (
			first_name, last_name, date_of_birth, email, phone,
			ecn_dysfunction_confirmed, inflammatory_markers_level,
			created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id
	`
	err := r.db.QueryRowxContext(ctx, query,
		patient.FirstName,
		patient.LastName,
		patient.DateOfBirth,
		patient.Email,
		patient.Phone,
		patient.EcnDysfunctionConfirmed,
		patient.InflammatoryMarkersLevel,
		patient.CreatedAt,
		patient.UpdatedAt,
	).Scan(&patient.ID)
	return translateError(entityPatient, err)
}

func (r *patientRepository) Get(ctx context.Context, id int64) (*model.Patient, error) {
	query := `SELECT * FROM patients WHERE id = $1`
	var patient model.Patient
	if err := r.db.GetContext(ctx, &patient, query, id); err != nil {
		return nil, translateError(entityPatient, err)
	}
	return &patient, nil
}

func (r *patientRepository) List(ctx context.Context, skip, limit int) ([]*model.Patient, error) {
	query := `SELECT * FROM patients ORDER BY id ASC OFFSET $1 LIMIT $2`
	var patients []*model.Patient
	if err := r.db.SelectContext(ctx, &patients, query, skip, limit); err != nil {
		return nil, translateError(entityPatient, err)
	}
	return patients, nil
}

func (r *patientRepository) Update(ctx context.Context, patient *model.Patient) error {
	query := `
		UPDATE patients SET
			first_name = $1, last_name = $2, date_of_birth = $3, email = $4,
			phone = $5, ecn_dysfunction_confirmed = $6,
			inflammatory_markers_level = $7, updated_at = $8
		WHERE id = $9
	`
	res, err := r.db.ExecContext(ctx, query,
		patient.FirstName,
		patient.LastName,
		patient.DateOfBirth,
		patient.Email,
		patient.Phone,
		patient.EcnDysfunctionConfirmed,
		patient.InflammatoryMarkersLevel,
		patient.UpdatedAt,
		patient.ID,
	)
	if err != nil {
		return translateError(entityPatient, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return translateError(entityPatient, sql.ErrNoRows)
	}
	return nil
}

func (r *patientRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM patients WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return translateError(entityPatient, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return translateError(entityPatient, sql.ErrNoRows)
	}
	return nil
}
