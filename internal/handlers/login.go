package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/team-manager/internal/middlewares"
	"github.com/sbilibin2017/team-manager/internal/models"
)

// Loginer defines the interface that the login service must implement.
type Loginer interface {
	Login(ctx context.Context, username, password string) (string, *models.User, error)
}

// CurrentUserGetter resolves the account behind a token.
type CurrentUserGetter interface {
	Me(ctx context.Context, userID string) (*models.User, error)
}

// LoginRequest represents the JSON body for user login
// swagger:model LoginRequest
type LoginRequest struct {
	// Username
	// required: true
	// default: admin
	Username string `json:"username" validate:"required"`

	// Password
	// required: true
	// default: admin123
	Password string `json:"password" validate:"required"`
}

// LoginResponse represents a successful login response
// swagger:model LoginResponse
type LoginResponse struct {
	// JWT token
	// default: JWT_TOKEN
	Token string `json:"token"`

	// Authenticated account
	User *models.User `json:"user"`
}

// NewLoginHandler returns an HTTP handler for user login.
// @Summary User login
// @Description Authenticate user and return JWT token
// @Tags auth
// @Accept json
// @Produce json
// @Param loginRequest body handlers.LoginRequest true "Login Request"
// @Success 200 {object} handlers.LoginResponse "JWT token returned"
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 401 {object} handlers.ErrorResponse "Invalid username or password"
// @Router /auth/login [post]
func NewLoginHandler(svc Loginer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req LoginRequest
		if err := decodeBody(r, &req); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}

		token, user, err := svc.Login(r.Context(), req.Username, req.Password)
		if err != nil {
			writeServiceError(w, r, err, "User")
			return
		}

		writeJSON(w, http.StatusOK, LoginResponse{
			Token: token,
			User:  user,
		})
	}
}

// NewMeHandler returns the account of the bearer token. It expects AuthMiddleware in front.
// @Summary Current user
// @Description Returns the account the bearer token was issued to
// @Tags auth
// @Produce json
// @Success 200 {object} models.User "Current user"
// @Failure 401 {object} handlers.ErrorResponse "Unauthorized"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /auth/me [get]
// @Security BearerAuth
func NewMeHandler(svc CurrentUserGetter) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		claims := middlewares.ClaimsFromContext(r.Context())
		if claims == nil {
			writeError(w, http.StatusUnauthorized, "Unauthorized")
			return
		}

		user, err := svc.Me(r.Context(), claims.UserID)
		if err != nil {
			writeServiceError(w, r, err, "User")
			return
		}
		writeJSON(w, http.StatusOK, user)
	}
}
