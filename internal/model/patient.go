package model

import "time"

type Patient struct {
	ID                       int64    `db:"id" json:"id"`
	FirstName                string   `db:"first_name" json:"first_name"`
	LastName                 string   `db:"last_name" json:"last_name"`
	DateOfBirth              Date     `db:"date_of_birth" json:"date_of_birth"`
	Email                    string   `db:"email" json:"email"`
	Phone                    *string  `db:"phone" json:"phone"`
	EcnDysfunctionConfirmed  bool     `db:"ecn_dysfunction_confirmed" json:"ecn_dysfunction_confirmed"`
	InflammatoryMarkersLevel *float64 `db:"inflammatory_markers_level" json:"inflammatory_markers_level"`

	CreatedAt time.Time `db:"created_at" json:"created_at"`
	UpdatedAt time.Time `db:"updated_at" json:"updated_at"`
}

type CreatePatientRequest struct {
	FirstName                string   `json:"first_name" binding:"required"`
	LastName                 string   `json:"last_name" binding:"required"`
	DateOfBirth              Date     `json:"date_of_birth"`
	Email                    string   `json:"email" binding:"required,email"`
	Phone                    *string  `json:"phone"`
	EcnDysfunctionConfirmed  *bool    `json:"ecn_dysfunction_confirmed"`
	InflammatoryMarkersLevel *float64 `json:"inflammatory_markers_level"`
}

// UpdatePatientRequest carries a partial update. A nil field is left
// untouched; a non-nil field overwrites the stored value. A nullable field
// cannot be reset to null through this request.
type UpdatePatientRequest struct {
	FirstName                *string  `json:"first_name"`
	LastName                 *string  `json:"last_name"`
	DateOfBirth              *Date    `json:"date_of_birth"`
	Email                    *string  `json:"email" binding:"omitempty,email"`
	Phone                    *string  `json:"phone"`
	EcnDysfunctionConfirmed  *bool    `json:"ecn_dysfunction_confirmed"`
	InflammatoryMarkersLevel *float64 `json:"inflammatory_markers_level"`
}
