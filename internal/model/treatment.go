package model

import "time"

type Treatment struct {
	ID        int64 `db:"id" json:"id"`
	PatientID int64 `db:"patient_id" json:"patient_id"`
	StartDate Date  `db:"start_date" json:"start_date"`
	EndDate   *Date `db:"end_date" json:"end_date"`

	MedicationName string `db:"medication_name" json:"medication_name"`
	Dosage         string `db:"dosage" json:"dosage"`
	Frequency      string `db:"frequency" json:"frequency"`

	IsActive       bool     `db:"is_active" json:"is_active"`
	IsResponder    *bool    `db:"is_responder" json:"is_responder"`
	EfficacyRating *float64 `db:"efficacy_rating" json:"efficacy_rating"`

	Notes *string `db:"notes" json:"notes"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

type CreateTreatmentRequest struct {
	PatientID      int64    `json:"patient_id" binding:"required"`
	StartDate      Date     `json:"start_date"`
	EndDate        *Date    `json:"end_date"`
	MedicationName string   `json:"medication_name" binding:"required"`
	Dosage         string   `json:"dosage" binding:"required"`
	Frequency      string   `json:"frequency" binding:"required"`
	IsActive       *bool    `json:"is_active"`
	IsResponder    *bool    `json:"is_responder"`
	EfficacyRating *float64 `json:"efficacy_rating"`
	Notes          *string  `json:"notes"`
}

type UpdateTreatmentRequest struct {
	StartDate      *Date    `json:"start_date"`
	EndDate        *Date    `json:"end_date"`
	MedicationName *string  `json:"medication_name"`
	Dosage         *string  `json:"dosage"`
	Frequency      *string  `json:"frequency"`
	IsActive       *bool    `json:"is_active"`
	IsResponder    *bool    `json:"is_responder"`
	EfficacyRating *float64 `json:"efficacy_rating"`
	Notes          *string  `json:"notes"`
}
