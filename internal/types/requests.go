// Package types provides request payload definitions for the JobPilot backend.
// Response shapes are owned by the backend and are passed through as raw JSON;
// only outgoing payloads are typed and validated locally.
package types

import (
	"github.com/go-playground/validator/v10"
)

// LoginRequest represents the credential exchange request.
type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// RegisterRequest represents the user registration request.
type RegisterRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	FullName string `json:"full_name,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Resume   string `json:"resume,omitempty"`
}

// SearchRequest represents the job search criteria.
type SearchRequest struct {
	Query    string   `json:"query" validate:"required,min=1"`
	Location string   `json:"location,omitempty"`
	Remote   *bool    `json:"remote,omitempty"`
	Sources  []string `json:"sources,omitempty"`
	Limit    int      `json:"limit,omitempty" validate:"min=0"`
}

// BatchApplyRequest carries the job identifiers for a single batch-apply call.
// The backend returns one aggregate result; partial failures are its contract.
type BatchApplyRequest struct {
	JobIDs []string `json:"job_ids" validate:"required,min=1,dive,required"`
}

// UpdateApplicationRequest represents a partial update to an application.
type UpdateApplicationRequest struct {
	Status string `json:"status,omitempty" validate:"omitempty,oneof=pending submitted interviewing offered rejected withdrawn"`
	Notes  string `json:"notes,omitempty"`
}

// Validate validates the LoginRequest using the validator.
func (r *LoginRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the RegisterRequest using the validator.
func (r *RegisterRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the SearchRequest using the validator.
func (r *SearchRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the BatchApplyRequest using the validator.
func (r *BatchApplyRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}

// Validate validates the UpdateApplicationRequest using the validator.
func (r *UpdateApplicationRequest) Validate() error {
	validate := validator.New()
	return validate.Struct(r)
}
