package domain

import (
	"time"

	"github.com/google/uuid"
)

type ApplicationStatus string

const (
	ApplicationReceived  ApplicationStatus = "received"
	ApplicationReviewing ApplicationStatus = "reviewing"
	ApplicationAccepted  ApplicationStatus = "accepted"
	ApplicationRejected  ApplicationStatus = "rejected"
)

func (s ApplicationStatus) IsValid() bool {
	switch s {
	case ApplicationReceived, ApplicationReviewing, ApplicationAccepted, ApplicationRejected:
		return true
	default:
		return false
	}
}

// Application is a recruitment form submission. The spreadsheet the union's
// recruiters work from is fed from these rows via the sheet webhook.
type Application struct {
	ID         uuid.UUID         `json:"id" db:"application_id"`
	FullName   string            `json:"full_name" db:"full_name"`
	Email      string            `json:"email" db:"email"`
	StudentID  string            `json:"student_id" db:"student_id"`
	Department string            `json:"department" db:"department"`
	Motivation string            `json:"motivation" db:"motivation"`
	Status     ApplicationStatus `json:"status" db:"status"`
	CreatedAt  time.Time         `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time         `json:"updated_at" db:"updated_at"`
}

type CreateApplicationInput struct {
	FullName   string `json:"full_name"`
	Email      string `json:"email"`
	StudentID  string `json:"student_id"`
	Department string `json:"department"`
	Motivation string `json:"motivation"`
}

type UpdateApplicationStatusInput struct {
	Status ApplicationStatus `json:"status"`
}
