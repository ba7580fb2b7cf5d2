package main

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/jmoiron/sqlx"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/sbilibin2017/team-manager/internal/handlers"
	"github.com/sbilibin2017/team-manager/internal/jwt"
	"github.com/sbilibin2017/team-manager/internal/logger"
	"github.com/sbilibin2017/team-manager/internal/middlewares"
	"github.com/sbilibin2017/team-manager/internal/services"
	"github.com/sbilibin2017/team-manager/internal/storage"
)

// routerDeps are the collaborators the HTTP layer is built from.
// db is set only for the Postgres backend; cache and pub may be nil.
type routerDeps struct {
	store      storage.Storage
	db         *sqlx.DB
	cache      services.HighlightCache
	pub        *services.Publisher
	tokens     *jwt.JWT
	swaggerURL string
}

// newRouter builds services and handlers over the store and mounts every route.
func newRouter(d routerDeps) http.Handler {
	authService := services.NewAuthService(d.store, d.store, d.tokens, d.pub)
	userService := services.NewUserService(d.store, d.pub)
	athleteService := services.NewAthleteService(d.store, d.store, d.store, d.pub)
	exerciseService := services.NewExerciseService(d.store, d.pub)
	trainingService := services.NewTrainingService(d.store, d.store, d.store, d.pub)
	eventService := services.NewEventService(d.store, d.pub)
	galleryService := services.NewGalleryService(d.store, d.pub)
	highlightService := services.NewHighlightService(d.store, d.store, d.store, d.cache, d.pub, nil)
	streamService := services.NewStreamService(d.store, d.pub)

	// Writes share one transaction per request on Postgres.
	write := func(h http.HandlerFunc) http.Handler {
		if d.db == nil {
			return h
		}
		return middlewares.TxMiddleware(d.db)(h)
	}

	r := chi.NewRouter()
	r.Use(chimiddleware.Recoverer)
	r.Use(middlewares.LoggingMiddleware(logger.Log))

	r.Get("/health", handlers.NewHealthHandler())

	r.Route("/api", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Method(http.MethodPost, "/register", write(handlers.NewRegisterHandler(authService)))
			r.Post("/login", handlers.NewLoginHandler(authService))
			r.With(middlewares.AuthMiddleware(d.tokens)).Get("/me", handlers.NewMeHandler(authService))
		})

		r.Route("/users/{id}", func(r chi.Router) {
			r.Get("/", handlers.NewGetUserHandler(userService))
			r.Method(http.MethodPatch, "/", write(handlers.NewUpdateUserHandler(userService)))
			r.Method(http.MethodDelete, "/", write(handlers.NewDeleteUserHandler(userService)))
		})

		r.Route("/athletes", func(r chi.Router) {
			r.Get("/", handlers.NewListAthletesHandler(athleteService))
			r.Method(http.MethodPost, "/", write(handlers.NewCreateAthleteHandler(athleteService)))
			r.Get("/user/{userId}", handlers.NewGetAthleteByUserHandler(athleteService))
			r.Get("/{id}", handlers.NewGetAthleteHandler(athleteService))
			r.Method(http.MethodPatch, "/{id}", write(handlers.NewUpdateAthleteHandler(athleteService)))
			r.Method(http.MethodDelete, "/{id}", write(handlers.NewDeleteAthleteHandler(athleteService)))
			r.Get("/{id}/sessions", handlers.NewListAthleteSessionsHandler(athleteService))
		})

		r.Route("/exercises", func(r chi.Router) {
			r.Get("/", handlers.NewListExercisesHandler(exerciseService))
			r.Method(http.MethodPost, "/", write(handlers.NewCreateExerciseHandler(exerciseService)))
			r.Get("/{id}", handlers.NewGetExerciseHandler(exerciseService))
			r.Method(http.MethodPatch, "/{id}", write(handlers.NewUpdateExerciseHandler(exerciseService)))
			r.Method(http.MethodDelete, "/{id}", write(handlers.NewDeleteExerciseHandler(exerciseService)))
		})

		r.Route("/sessions", func(r chi.Router) {
			r.Method(http.MethodPost, "/", write(handlers.NewCreateSessionHandler(trainingService)))
			r.Get("/{id}", handlers.NewGetSessionHandler(trainingService))
			r.Method(http.MethodPatch, "/{id}", write(handlers.NewUpdateSessionHandler(trainingService)))
			r.Method(http.MethodDelete, "/{id}", write(handlers.NewDeleteSessionHandler(trainingService)))
		})

		r.Route("/events", func(r chi.Router) {
			r.Get("/", handlers.NewListEventsHandler(eventService))
			r.Get("/upcoming", handlers.NewUpcomingEventsHandler(eventService))
			r.Method(http.MethodPost, "/", write(handlers.NewCreateEventHandler(eventService)))
			r.Get("/{id}", handlers.NewGetEventHandler(eventService))
			r.Method(http.MethodPatch, "/{id}", write(handlers.NewUpdateEventHandler(eventService)))
			r.Method(http.MethodDelete, "/{id}", write(handlers.NewDeleteEventHandler(eventService)))
		})

		r.Route("/gallery", func(r chi.Router) {
			r.Get("/", handlers.NewListGalleryHandler(galleryService))
			r.Method(http.MethodPost, "/", write(handlers.NewCreateGalleryItemHandler(galleryService)))
			r.Get("/{id}", handlers.NewGetGalleryItemHandler(galleryService))
			r.Method(http.MethodPatch, "/{id}", write(handlers.NewUpdateGalleryItemHandler(galleryService)))
			r.Method(http.MethodDelete, "/{id}", write(handlers.NewDeleteGalleryItemHandler(galleryService)))
		})

		r.Route("/best-of-week", func(r chi.Router) {
			r.Get("/current", handlers.NewCurrentBestOfWeekHandler(highlightService))
			r.Method(http.MethodPost, "/", write(handlers.NewSetBestOfWeekHandler(highlightService)))
		})

		r.Route("/live-streams", func(r chi.Router) {
			r.Get("/", handlers.NewListStreamsHandler(streamService))
			r.Get("/active", handlers.NewActiveStreamsHandler(streamService))
			r.Method(http.MethodPost, "/", write(handlers.NewCreateStreamHandler(streamService)))
			r.Get("/{id}", handlers.NewGetStreamHandler(streamService))
			r.Method(http.MethodPatch, "/{id}", write(handlers.NewUpdateStreamHandler(streamService)))
			r.Method(http.MethodDelete, "/{id}", write(handlers.NewDeleteStreamHandler(streamService)))
		})
	})

	r.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL(d.swaggerURL)))

	return r
}
