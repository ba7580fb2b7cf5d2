package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/team-manager/internal/models"
)

// SessionManager defines the operations used by the training session routes.
type SessionManager interface {
	Get(ctx context.Context, id string) (*models.TrainingSession, error)
	Create(ctx context.Context, in models.NewTrainingSession) (*models.TrainingSession, error)
	Update(ctx context.Context, id string, patch models.TrainingSessionPatch) (*models.TrainingSession, error)
	Delete(ctx context.Context, id string) error
}

// NewGetSessionHandler returns an HTTP handler that fetches one session.
// @Summary Get training session
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} models.TrainingSession
// @Failure 404 {object} handlers.ErrorResponse "Training session not found"
// @Router /sessions/{id} [get]
func NewGetSessionHandler(svc SessionManager) http.HandlerFunc {
	return getByID("Training session", svc.Get)
}

// NewCreateSessionHandler returns an HTTP handler that records a session.
// @Summary Record training session
// @Description The athlete's last training time is set to the completion time
// @Tags sessions
// @Accept json
// @Produce json
// @Param session body models.NewTrainingSession true "Session"
// @Success 201 {object} models.TrainingSession
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body / unknown athlete or exercise"
// @Router /sessions [post]
func NewCreateSessionHandler(svc SessionManager) http.HandlerFunc {
	return create("Training session", svc.Create)
}

// NewUpdateSessionHandler returns an HTTP handler that partially updates a session.
// @Summary Update training session
// @Tags sessions
// @Accept json
// @Produce json
// @Param id path string true "Session ID"
// @Param patch body models.TrainingSessionPatch true "Fields to change"
// @Success 200 {object} models.TrainingSession
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 404 {object} handlers.ErrorResponse "Training session not found"
// @Router /sessions/{id} [patch]
func NewUpdateSessionHandler(svc SessionManager) http.HandlerFunc {
	return update("Training session", svc.Update)
}

// NewDeleteSessionHandler returns an HTTP handler that deletes a session.
// @Summary Delete training session
// @Tags sessions
// @Produce json
// @Param id path string true "Session ID"
// @Success 200 {object} handlers.MessageResponse
// @Failure 404 {object} handlers.ErrorResponse "Training session not found"
// @Router /sessions/{id} [delete]
func NewDeleteSessionHandler(svc SessionManager) http.HandlerFunc {
	return deleteByID("Training session", svc.Delete)
}
