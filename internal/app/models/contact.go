package models

import (
	"time"

	"github.com/google/uuid"
)

// DisciplineUndecided is the form value for "Ich bin noch unentschlossen".
const DisciplineUndecided = "undecided"

// TrialRequestInput is what the contact form submits.
type TrialRequestInput struct {
	FirstName  string `form:"first_name" json:"first_name" validate:"required,max=100"`
	LastName   string `form:"last_name" json:"last_name" validate:"required,max=100"`
	Email      string `form:"email" json:"email" validate:"required,email,max=254"`
	Phone      string `form:"phone" json:"phone" validate:"omitempty,max=40"`
	Discipline string `form:"discipline" json:"discipline"`
	Message    string `form:"message" json:"message" validate:"max=2000"`
}

// TrialRequest is a stored "Probetraining" enquiry.
type TrialRequest struct {
	ID         uuid.UUID `json:"id" db:"id"`
	FirstName  string    `json:"first_name" db:"first_name"`
	LastName   string    `json:"last_name" db:"last_name"`
	Email      string    `json:"email" db:"email"`
	Phone      string    `json:"phone,omitempty" db:"phone"`
	Discipline string    `json:"discipline,omitempty" db:"discipline"`
	Message    string    `json:"message,omitempty" db:"message"`
	CreatedAt  time.Time `json:"created_at" db:"created_at"`
}

// FullName joins first and last name for display.
func (r TrialRequest) FullName() string {
	return r.FirstName + " " + r.LastName
}

// FieldError describes one rejected form field.
type FieldError struct {
	Field   string
	Message string
}
