package types

import (
	"time"

	"github.com/google/uuid"
)

// ApplicationStatus tracks where a job application is in its lifecycle.
type ApplicationStatus string

// ApplicationStatus values
const (
	StatusSaved        ApplicationStatus = "SAVED"
	StatusApplied      ApplicationStatus = "APPLIED"
	StatusInterviewing ApplicationStatus = "INTERVIEWING"
	StatusOffer        ApplicationStatus = "OFFER"
	StatusRejected     ApplicationStatus = "REJECTED"
)

// MapToApplicationStatus coerces an externally supplied value to a valid
// ApplicationStatus, defaulting to SAVED.
func MapToApplicationStatus(value string) (ApplicationStatus, bool) {
	switch ApplicationStatus(normalizeEnum(value)) {
	case StatusSaved, StatusApplied, StatusInterviewing, StatusOffer, StatusRejected:
		return ApplicationStatus(normalizeEnum(value)), true
	}
	return StatusSaved, false
}

// JobApplication records a tracked job application: the company, posting,
// status, and optionally the resume tailored for it.
type JobApplication struct {
	ID             uuid.UUID         `json:"id"`
	UserID         uuid.UUID         `json:"user_id"`
	Company        string            `json:"company"`
	JobTitle       string            `json:"job_title"`
	JobURL         string            `json:"job_url,omitempty"`
	JobDescription string            `json:"job_description,omitempty"`
	Status         ApplicationStatus `json:"status"`
	ResumeID       *uuid.UUID        `json:"resume_id,omitempty"`
	Notes          string            `json:"notes,omitempty"`
	AppliedAt      *time.Time        `json:"applied_at,omitempty"`
	CreatedAt      time.Time         `json:"created_at"`
	UpdatedAt      time.Time         `json:"updated_at"`
}

// CreateApplicationRequest is the payload for creating a job application.
type CreateApplicationRequest struct {
	Company        string `json:"company" validate:"required,min=1"`
	JobTitle       string `json:"job_title" validate:"required,min=1"`
	JobURL         string `json:"job_url,omitempty" validate:"omitempty,url"`
	JobDescription string `json:"job_description,omitempty"`
	Status         string `json:"status,omitempty"`
	Notes          string `json:"notes,omitempty"`
}

// UpdateApplicationRequest is the payload for updating a job application.
// Pointer fields distinguish "not provided" from "set to empty".
type UpdateApplicationRequest struct {
	Company        *string `json:"company,omitempty"`
	JobTitle       *string `json:"job_title,omitempty"`
	JobURL         *string `json:"job_url,omitempty"`
	JobDescription *string `json:"job_description,omitempty"`
	Status         *string `json:"status,omitempty"`
	ResumeID       *string `json:"resume_id,omitempty"`
	Notes          *string `json:"notes,omitempty"`
}
