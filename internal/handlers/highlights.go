package handlers

import (
	"context"
	"net/http"

	"github.com/sbilibin2017/team-manager/internal/models"
)

// HighlightManager defines the best-of-week operations.
type HighlightManager interface {
	Current(ctx context.Context) (*models.FeaturedAthlete, error)
	Set(ctx context.Context, in models.NewBestOfWeek) (*models.BestOfWeek, error)
}

// NewCurrentBestOfWeekHandler returns an HTTP handler for this week's featured athlete.
// @Summary Current best of week
// @Description The record whose week start is the start of the current week, with athlete and user attached
// @Tags best-of-week
// @Produce json
// @Success 200 {object} models.FeaturedAthlete
// @Failure 404 {object} handlers.ErrorResponse "Best of week not found"
// @Router /best-of-week/current [get]
func NewCurrentBestOfWeekHandler(svc HighlightManager) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		fa, err := svc.Current(r.Context())
		if err != nil {
			writeServiceError(w, r, err, "Best of week")
			return
		}
		writeJSON(w, http.StatusOK, fa)
	}
}

// NewSetBestOfWeekHandler returns an HTTP handler that features an athlete.
// @Summary Set best of week
// @Description Adds a record. The week start defaults to the start of the current week.
// @Tags best-of-week
// @Accept json
// @Produce json
// @Param record body models.NewBestOfWeek true "Best of week"
// @Success 201 {object} models.BestOfWeek
// @Failure 400 {object} handlers.ErrorResponse "Invalid request body / unknown athlete"
// @Router /best-of-week [post]
func NewSetBestOfWeekHandler(svc HighlightManager) http.HandlerFunc {
	return create("Best of week", svc.Set)
}
