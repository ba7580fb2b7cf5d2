package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/team-manager/internal/models"
)

// Registerer defines the interface that the service must implement.
type Registerer interface {
	Register(ctx context.Context, in models.NewUser) (*models.User, error)
}

// RegisterRequest represents the JSON body for user registration
// swagger:model RegisterRequest
type RegisterRequest struct {
	// Username
	// required: true
	// default: john_doe
	Username string `json:"username" validate:"required,min=3,max=50"`

	// Password
	// required: true
	// default: secret123
	Password string `json:"password" validate:"required,min=6"`

	// Email
	// required: true
	// default: john@example.com
	Email string `json:"email" validate:"required,email"`

	// Full name
	// required: true
	// default: John Doe
	FullName string `json:"fullName" validate:"required"`

	// Role, athlete when omitted
	// default: athlete
	Role models.Role `json:"role" validate:"omitempty,oneof=athlete admin"`

	// Court position
	// default: Point Guard
	Position *string `json:"position"`

	// Profile picture URL
	ProfilePicture *string `json:"profilePicture" validate:"omitempty,url"`
}

// RegisterResponse represents a successful registration response
// swagger:model RegisterResponse
type RegisterResponse struct {
	// Success message
	// default: User registered successfully
	Message string `json:"message"`

	// Created account
	User *models.User `json:"user"`
}

// NewRegisterHandler returns an HTTP handler for user registration.
// @Summary Register a new user
// @Description Creates a new user account. Ensures unique username and email. Password is hashed before storing. Athletes also get a performance profile.
// @Tags auth
// @Accept json
// @Produce json
// @Param registerRequest body handlers.RegisterRequest true "User registration request"
// @Success 201 {object} handlers.RegisterResponse "User successfully registered"
// @Failure 400 {object} handlers.ErrorResponse "Username or email already exists / invalid request"
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /auth/register [post]
func NewRegisterHandler(svc Registerer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req RegisterRequest
		if err := decodeBody(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		role := req.Role
		if role == "" {
			role = models.RoleAthlete
		}

		user, err := svc.Register(r.Context(), models.NewUser{
			Username:       req.Username,
			Email:          req.Email,
			Password:       req.Password,
			Role:           role,
			FullName:       req.FullName,
			ProfilePicture: req.ProfilePicture,
			Position:       req.Position,
		})
		if err != nil {
			writeServiceError(w, r, err, "User")
			return
		}

		writeJSON(w, http.StatusCreated, RegisterResponse{
			Message: "User registered successfully",
			User:    user,
		})
	}
}
