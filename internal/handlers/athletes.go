package handlers

import (
	"context"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/sbilibin2017/team-manager/internal/models"
)

// AthleteManager defines the profile operations used by the athlete routes.
type AthleteManager interface {
	Get(ctx context.Context, id string) (*models.Athlete, error)
	GetByUser(ctx context.Context, userID string) (*models.Athlete, error)
	ListWithUsers(ctx context.Context) ([]models.AthleteWithUser, error)
	Sessions(ctx context.Context, athleteID string) ([]models.TrainingSession, error)
	Create(ctx context.Context, in models.NewAthlete) (*models.Athlete, error)
	Update(ctx context.Context, id string, patch models.AthletePatch) (*models.Athlete, error)
	Delete(ctx context.Context, id string) error
}

// NewListAthletesHandler returns an HTTP handler listing athletes with their accounts.
// @Summary List athletes
// @Description Every athlete profile with its owning user attached (null when the account was deleted)
// @Tags athletes
// @Produce json
// @Success 200 {array} models.AthleteWithUser
// @Failure 500 {object} handlers.ErrorResponse "Internal server error"
// @Router /athletes [get]
func NewListAthletesHandler(svc AthleteManager) http.HandlerFunc {
	return listAll("Athlete", svc.ListWithUsers)
}

// NewGetAthleteHandler returns an HTTP handler that fetches one athlete.
// @Summary Get athlete
// @Tags athletes
// @Produce json
// @Param id path string true "Athlete ID"
// @Success 200 {object} models.Athlete
// @Failure 404 {object} handlers.ErrorResponse "Athlete not found"
// @Router /athletes/{id} [get]
func NewGetAthleteHandler(svc AthleteManager) http.HandlerFunc {
	return getByID("Athlete", svc.Get)
}

// NewGetAthleteByUserHandler returns an HTTP handler that fetches the profile of a user.
// @Summary Get athlete by user
// @Tags athletes
// @Produce json
// @Param userId path string true "User ID"
// @Success 200 {object} models.Athlete
// @Failure 404 {object} handlers.ErrorResponse "Athlete not found"
// @Router /athletes/user/{userId} [get]
func NewGetAthleteByUserHandler(svc AthleteManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		a, err := svc.GetByUser(r.Context(), chi.URLParam(r, "userId"))
		if err != nil {
			writeServiceError(w, r, err, "Athlete")
			return
		}
		writeJSON(w, http.StatusOK, a)
	}
}

// NewListAthleteSessionsHandler returns an HTTP handler listing the sessions of an athlete.
// @Summary List athlete sessions
// @Tags athletes
// @Produce json
// @Param id path string true "Athlete ID"
// @Success 200 {array} models.TrainingSession
// @Failure 404 {object} handlers.ErrorResponse "Athlete not found"
// @Router /athletes/{id}/sessions [get]
func NewListAthleteSessionsHandler(svc AthleteManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		list, err := svc.Sessions(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeServiceError(w, r, err, "Athlete")
			return
		}
		writeJSON(w, http.StatusOK, list)
	}
}

// NewCreateAthleteHandler returns an HTTP handler that creates a profile.
// @Summary Create athlete
// @Tags athletes
// @Accept json
// @Produce json
// @Param athlete body models.NewAthlete true "Athlete profile"
// @Success 201 {object} models.Athlete
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body / unknown user / profile exists"
// @Router /athletes [post]
func NewCreateAthleteHandler(svc AthleteManager) http.HandlerFunc {
	return create("Athlete", svc.Create)
}

// NewUpdateAthleteHandler returns an HTTP handler that partially updates a profile.
// @Summary Update athlete
// @Tags athletes
// @Accept json
// @Produce json
// @Param id path string true "Athlete ID"
// @Param patch body models.AthletePatch true "Fields to change"
// @Success 200 {object} models.Athlete
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 404 {object} handlers.ErrorResponse "Athlete not found"
// @Router /athletes/{id} [patch]
func NewUpdateAthleteHandler(svc AthleteManager) http.HandlerFunc {
	return update("Athlete", svc.Update)
}

// NewDeleteAthleteHandler returns an HTTP handler that deletes a profile.
// @Summary Delete athlete
// @Tags athletes
// @Produce json
// @Param id path string true "Athlete ID"
// @Success 200 {object} handlers.MessageResponse
// @Failure 404 {object} handlers.ErrorResponse "Athlete not found"
// @Router /athletes/{id} [delete]
func NewDeleteAthleteHandler(svc AthleteManager) http.HandlerFunc {
	return deleteByID("Athlete", svc.Delete)
}
