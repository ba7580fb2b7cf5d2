package handlers

//go:generate mockgen -destination=mock_handlers.go -package=handlers github.com/sbilibin2017/team-manager/internal/handlers Registerer,Loginer,CurrentUserGetter,AthleteManager,EventManager,ExerciseManager,HighlightManager

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/sbilibin2017/team-manager/internal/logger"
	"github.com/sbilibin2017/team-manager/internal/middlewares"
	"github.com/sbilibin2017/team-manager/internal/services"
)

var validate = validator.New(validator.WithRequiredStructEnabled())

var errInvalidBody = errors.New("invalid request body")

// ErrorResponse is the body of every failed request
// swagger:model ErrorResponse
type ErrorResponse struct {
	// Error message
	// default: Internal server error
	Error string `json:"error"`
}

// MessageResponse is the body of a request that returns no record
// swagger:model MessageResponse
type MessageResponse struct {
	// Message
	// default: Deleted
	Message string `json:"message"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, ErrorResponse{Error: msg})
}

// decodeBody decodes a JSON body into dst and runs its validation tags.
func decodeBody(r *http.Request, dst any) error {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		return errInvalidBody
	}
	if err := validate.Struct(dst); err != nil {
		return err
	}
	return nil
}

// writeServiceError maps a service error onto a status code and a generic message.
func writeServiceError(w http.ResponseWriter, r *http.Request, err error, entity string) {
	switch {
	case errors.Is(err, services.ErrNotFound):
		writeError(w, http.StatusNotFound, entity+" not found")
	case errors.Is(err, services.ErrUserAlreadyExists):
		writeError(w, http.StatusBadRequest, "Username or email already exists")
	case errors.Is(err, services.ErrReferenceNotFound):
		writeError(w, http.StatusBadRequest, "Referenced record does not exist")
	case errors.Is(err, services.ErrInvalidInput):
		writeError(w, http.StatusBadRequest, "Invalid input")
	case errors.Is(err, services.ErrInvalidCredentials),
		errors.Is(err, services.ErrUserDoesNotExist):
		writeError(w, http.StatusUnauthorized, "Invalid username or password")
	default:
		logger.Log.Errorw("internal server error",
			"request_id", middlewares.RequestIDFromContext(r.Context()),
			"entity", entity,
			"err", err,
		)
		writeError(w, http.StatusInternalServerError, "Internal server error")
	}
}

func getByID[T any](entity string, get func(context.Context, string) (*T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v, err := get(r.Context(), chi.URLParam(r, "id"))
		if err != nil {
			writeServiceError(w, r, err, entity)
			return
		}
		writeJSON(w, http.StatusOK, v)
	}
}

func listAll[T any](entity string, list func(context.Context) ([]T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		v, err := list(r.Context())
		if err != nil {
			writeServiceError(w, r, err, entity)
			return
		}
		writeJSON(w, http.StatusOK, v)
	}
}

func create[In, T any](entity string, fn func(context.Context, In) (*T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var in In
		if err := decodeBody(r, &in); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		v, err := fn(r.Context(), in)
		if err != nil {
			writeServiceError(w, r, err, entity)
			return
		}
		writeJSON(w, http.StatusCreated, v)
	}
}

func update[P, T any](entity string, fn func(context.Context, string, P) (*T, error)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var patch P
		if err := decodeBody(r, &patch); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request body")
			return
		}
		v, err := fn(r.Context(), chi.URLParam(r, "id"), patch)
		if err != nil {
			writeServiceError(w, r, err, entity)
			return
		}
		writeJSON(w, http.StatusOK, v)
	}
}

func deleteByID(entity string, del func(context.Context, string) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if err := del(r.Context(), chi.URLParam(r, "id")); err != nil {
			writeServiceError(w, r, err, entity)
			return
		}
		writeJSON(w, http.StatusOK, MessageResponse{Message: entity + " deleted"})
	}
}
