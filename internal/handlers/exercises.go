package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/team-manager/internal/models"
)

// ExerciseManager defines the library operations used by the exercise routes.
type ExerciseManager interface {
	Get(ctx context.Context, id string) (*models.Exercise, error)
	List(ctx context.Context, category models.ExerciseCategory) ([]models.Exercise, error)
	Create(ctx context.Context, in models.NewExercise) (*models.Exercise, error)
	Update(ctx context.Context, id string, patch models.ExercisePatch) (*models.Exercise, error)
	Delete(ctx context.Context, id string) error
}

// NewListExercisesHandler returns an HTTP handler listing exercises.
// @Summary List exercises
// @Tags exercises
// @Produce json
// @Param category query string false "Category filter" Enums(basketball, aerobic, strength)
// @Success 200 {array} models.Exercise
// @Failure 400 {object} handlers.ErrorResponse "Unknown category"
// @Router /exercises [get]
func NewListExercisesHandler(svc ExerciseManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		category := models.ExerciseCategory(r.URL.Query().Get("category"))
		list, err := svc.List(r.Context(), category)
		if err != nil {
			writeServiceError(w, r, err, "Exercise")
			return
		}
		writeJSON(w, http.StatusOK, list)
	}
}

// NewGetExerciseHandler returns an HTTP handler that fetches one exercise.
// @Summary Get exercise
// @Tags exercises
// @Produce json
// @Param id path string true "Exercise ID"
// @Success 200 {object} models.Exercise
// @Failure 404 {object} handlers.ErrorResponse "Exercise not found"
// @Router /exercises/{id} [get]
func NewGetExerciseHandler(svc ExerciseManager) http.HandlerFunc {
	return getByID("Exercise", svc.Get)
}

// NewCreateExerciseHandler returns an HTTP handler that adds an exercise.
// @Summary Create exercise
// @Tags exercises
// @Accept json
// @Produce json
// @Param exercise body models.NewExercise true "Exercise"
// @Success 201 {object} models.Exercise
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Router /exercises [post]
func NewCreateExerciseHandler(svc ExerciseManager) http.HandlerFunc {
	return create("Exercise", svc.Create)
}

// NewUpdateExerciseHandler returns an HTTP handler that partially updates an exercise.
// @Summary Update exercise
// @Tags exercises
// @Accept json
// @Produce json
// @Param id path string true "Exercise ID"
// @Param patch body models.ExercisePatch true "Fields to change"
// @Success 200 {object} models.Exercise
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body"
// @Failure 404 {object} handlers.ErrorResponse "Exercise not found"
// @Router /exercises/{id} [patch]
func NewUpdateExerciseHandler(svc ExerciseManager) http.HandlerFunc {
	return update("Exercise", svc.Update)
}

// NewDeleteExerciseHandler returns an HTTP handler that deletes an exercise.
// @Summary Delete exercise
// @Tags exercises
// @Produce json
// @Param id path string true "Exercise ID"
// @Success 200 {object} handlers.MessageResponse
// @Failure 404 {object} handlers.ErrorResponse "Exercise not found"
// @Router /exercises/{id} [delete]
func NewDeleteExerciseHandler(svc ExerciseManager) http.HandlerFunc {
	return deleteByID("Exercise", svc.Delete)
}
