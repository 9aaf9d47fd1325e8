package postgres

import (
	"context"
	"database/sql"

	"github.com/jmoiron/sqlx"

	"github.com/ecnhealth/clinical-api/internal/model"
	"github.com/ecnhealth/clinical-api/internal/repository"
)

type assessmentRepository struct {
	db *sqlx.DB
}

func NewAssessmentRepository(db *sqlx.DB) repository.AssessmentRepository {
	return &assessmentRepository{db: db}
}

func (r *assessmentRepository) Create(ctx context.Context, assessment *model.Assessment) error {
	query := `
		INSERT INTO assessments (
			patient_id, assessment_date, assessment_type, fmri_data,
			n_back_task_score, wpai_score, crp_level, il6_level,
			tnf_alpha_level, notes, created_at, updated_at
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
		RETURNING id
	`
	err := r.db.QueryRowxContext(ctx, query,
		assessment.PatientID,
		assessment.AssessmentDate,
		assessment.AssessmentType,
		assessment.FmriData,
		assessment.NBackTaskScore,
		assessment.WpaiScore,
		assessment.CrpLevel,
		assessment.Il6Level,
		assessment.TnfAlphaLevel,
		assessment.Notes,
		assessment.CreatedAt,
		assessment.UpdatedAt,
	).Scan(&assessment.ID)
	return translateError(entityAssessment, err)
}

func (r *assessmentRepository) Get(ctx context.Context, id int64) (*model.Assessment, error) {
	query := `SELECT * FROM assessments WHERE id = $1`
	var assessment model.Assessment
	if err := r.db.GetContext(ctx, &assessment, query, id); err != nil {
		return nil, translateError(entityAssessment, err)
	}
	return &assessment, nil
}

func (r *assessmentRepository) List(ctx context.Context, skip, limit int) ([]*model.Assessment, error) {
	query := `SELECT * FROM assessments ORDER BY id ASC OFFSET $1 LIMIT $2`
	var assessments []*model.Assessment
	if err := r.db.SelectContext(ctx, &assessments, query, skip, limit); err != nil {
		return nil, translateError(entityAssessment, err)
	}
	return assessments, nil
}

func (r *assessmentRepository) ListByPatient(ctx context.Context, patientID int64) ([]*model.Assessment, error) {
	query := `SELECT * FROM assessments WHERE patient_id = $1 ORDER BY id ASC`
	var assessments []*model.Assessment
	if err := r.db.SelectContext(ctx, &assessments, query, patientID); err != nil {
		return nil, translateError(entityAssessment, err)
	}
	return assessments, nil
}

func (r *assessmentRepository) Update(ctx context.Context, assessment *model.Assessment) error {
	query := `
		UPDATE assessments SET
			assessment_date = $1, assessment_type = $2, fmri_data = $3,
			n_back_task_score = $4, wpai_score = $5, crp_level = $6,
			il6_level = $7, tnf_alpha_level = $8, notes = $9, updated_at = $10
		WHERE id = $11
	`
	res, err := r.db.ExecContext(ctx, query,
		assessment.AssessmentDate,
		assessment.AssessmentType,
		assessment.FmriData,
		assessment.NBackTaskScore,
		assessment.WpaiScore,
		assessment.CrpLevel,
		assessment.Il6Level,
		assessment.TnfAlphaLevel,
		assessment.Notes,
		assessment.UpdatedAt,
		assessment.ID,
	)
	if err != nil {
		return translateError(entityAssessment, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return translateError(entityAssessment, sql.ErrNoRows)
	}
	return nil
}

func (r *assessmentRepository) Delete(ctx context.Context, id int64) error {
	query := `DELETE FROM assessments WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return translateError(entityAssessment, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return translateError(entityAssessment, sql.ErrNoRows)
	}
	return nil
}
