package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/team-manager/internal/models"
)

// UserManager defines the account operations used by the user routes.
type UserManager interface {
	Get(ctx context.Context, id string) (*models.User, error)
	Update(ctx context.Context, id string, patch models.UserPatch) (*models.User, error)
	Delete(ctx context.Context, id string) error
}

// NewGetUserHandler returns an HTTP handler that fetches one user.
// @Summary Get user
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} models.User
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /users/{id} [get]
func NewGetUserHandler(svc UserManager) http.HandlerFunc {
	return getByID("User", svc.Get)
}

// NewUpdateUserHandler returns an HTTP handler that partially updates a user.
// @Summary Update user
// @Description Merges the supplied fields. Username and email must stay unique.
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User ID"
// @Param patch body models.UserPatch true "Fields to change"
// @Success 200 {object} models.User
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body / username or email already exists"
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /users/{id} [patch]
func NewUpdateUserHandler(svc UserManager) http.HandlerFunc {
	return update("User", svc.Update)
}

// NewDeleteUserHandler returns an HTTP handler that deletes a user. Owned records are kept.
// @Summary Delete user
// @Tags users
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {object} handlers.MessageResponse
// @Failure 404 {object} handlers.ErrorResponse "User not found"
// @Router /users/{id} [delete]
func NewDeleteUserHandler(svc UserManager) http.HandlerFunc {
	return deleteByID("User", svc.Delete)
}
