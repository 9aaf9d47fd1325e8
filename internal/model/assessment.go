package model

import "time"

type Assessment struct {
	ID             int64  `db:"id" json:"id"`
	PatientID      int64  `db:"patient_id" json:"patient_id"`
	AssessmentDate Date   `db:"assessment_date" json:"assessment_date"`
	AssessmentType string `db:"assessment_type" json:"assessment_type"`

	// fMRI results are stored schemaless, the scanner pipeline decides the shape.
	FmriData       JSONMap  `db:"fmri_data" json:"fmri_data"`
	NBackTaskScore *float64 `db:"n_back_task_score" json:"n_back_task_score"`
	WpaiScore      *float64 `db:"wpai_score" json:"wpai_score"`

	// Inflammatory biomarkers
	CrpLevel      *float64 `db:"crp_level" json:"crp_level"`
	Il6Level      *float64 `db:"il6_level" json:"il6_level"`
	TnfAlphaLevel *float64 `db:"tnf_alpha_level" json:"tnf_alpha_level"`

	Notes *string `db:"notes" json:"notes"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

type CreateAssessmentRequest struct {
	PatientID      int64    `json:"patient_id" binding:"required"`
	AssessmentDate Date     `json:"assessment_date"`
	AssessmentType string   `json:"assessment_type" binding:"required"`
	FmriData       JSONMap  `json:"fmri_data"`
	NBackTaskScore *float64 `json:"n_back_task_score"`
	WpaiScore      *float64 `json:"wpai_score"`
	CrpLevel       *float64 `json:"crp_level"`
	Il6Level       *float64 `json:"il6_level"`
	TnfAlphaLevel  *float64 `json:"tnf_alpha_level"`
	Notes          *string  `json:"notes"`
}

type UpdateAssessmentRequest struct {
	AssessmentDate *Date    `json:"assessment_date"`
	AssessmentType *string  `json:"assessment_type"`
	FmriData       JSONMap  `json:"fmri_data"`
	NBackTaskScore *float64 `json:"n_back_task_score"`
	WpaiScore      *float64 `json:"wpai_score"`
	CrpLevel       *float64 `json:"crp_level"`
	Il6Level       *float64 `json:"il6_level"`
	TnfAlphaLevel  *float64 `json:"tnf_alpha_level"`
	Notes          *string  `json:"notes"`
}
