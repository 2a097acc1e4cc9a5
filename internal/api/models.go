// Package api provides HTTP handlers for the API.
package api

import "github.com/google/uuid"

// Common request/response structures

// RegisterRequest defines the payload for the user registration endpoint.
type RegisterRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=6,max=72"`
}

// RegisterResponse defines the successful response for registration.
type RegisterResponse struct {
	UserID  uuid.UUID `json:"user_id"`
	Message string    `json:"message"`
}

// LoginRequest defines the payload for the user login endpoint.
type LoginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=1"`
}

// AuthResponse defines the successful response for the login endpoint.
type AuthResponse struct {
	// Token is the JWT used for API authorization.
	Token string `json:"token"`

	// UserID is the unique identifier for the authenticated user.
	UserID uuid.UUID `json:"user_id"`
}

// CreateTaskRequest defines the payload for creating a task. Status and
// priority default server-side when omitted; DueDate is an RFC 3339
// timestamp when present.
type CreateTaskRequest struct {
	Title       string `json:"title"       validate:"required,min=3"`
	Description string `json:"description" validate:"omitempty"`
	Status      string `json:"status"      validate:"omitempty,oneof=pending in-progress done"`
	Priority    string `json:"priority"    validate:"omitempty,oneof=low medium high"`
	DueDate     string `json:"due_date"    validate:"omitempty"`
}

// UpdateTaskRequest defines the payload for a partial task update. Absent
// fields keep their prior value; at least one field must be present.
// Sending an empty string for due_date clears it.
type UpdateTaskRequest struct {
	Title       *string `json:"title"       validate:"omitempty,min=3"`
	Description *string `json:"description" validate:"omitempty"`
	Status      *string `json:"status"      validate:"omitempty,oneof=pending in-progress done"`
	Priority    *string `json:"priority"    validate:"omitempty,oneof=low medium high"`
	DueDate     *string `json:"due_date"    validate:"omitempty"`
}
