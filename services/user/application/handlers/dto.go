package handlers

import (
	"time"

	"github.com/google/uuid"

	"github.com/ghuser/blogs/services/user/domain/models"
)

// SignUpRequest is the request body for POST /users.
type SignUpRequest struct {
	Email    string `json:"email"    validate:"required,email,max=255" example:"ada@example.com"`
	Password string `json:"password" validate:"required,min=8,max=72"  example:"correct horse"`
} // @name SignUpRequest

// SignInRequest is the request body for POST /users/sign_in.
type SignInRequest struct {
	Email    string `json:"email"    validate:"required" example:"ada@example.com"`
	Password string `json:"password" validate:"required" example:"correct horse"`
} // @name SignInRequest

// UserResponse is the public view of a user. The password hash never leaves
// the service.
type UserResponse struct {
	ID        uuid.UUID `json:"id"         example:"550e8400-e29b-41d4-a716-446655440000"`
	Email     string    `json:"email"      example:"ada@example.com"`
	CreatedAt time.Time `json:"created_at" example:"2024-01-15T10:30:00Z"`
} // @name UserResponse

// ErrorResponse is the standard error envelope.
type ErrorResponse struct {
	Error string `json:"error" example:"invalid email or password"`
} // @name UserErrorResponse

func toUserResponse(u *models.User) UserResponse {
	return UserResponse{ID: u.ID, Email: u.Email.String(), CreatedAt: u.CreatedAt}
}
