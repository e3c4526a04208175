package server

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/plonkout/plonkout/internal/storage"
)

// Server holds dependencies for HTTP handlers. The UI layer is the consumer:
// it sends and receives plain workout/exercise/setting/template records.
type Server struct {
	store  *storage.Store
	log    *slog.Logger
	router chi.Router
}

// New creates a new Server with all routes configured.
func New(store *storage.Store, log *slog.Logger) *Server {
	s := &Server{
		store:  store,
		log:    log,
		router: chi.NewRouter(),
	}
	s.routes()
	return s
}

// ServeHTTP implements http.Handler.
func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

func (s *Server) routes() {
	s.router.Use(RequestID)
	s.router.Use(RequestLogging(s.log))
	s.router.Use(CORS)

	s.router.Route("/api/v1", func(r chi.Router) {
		r.Get("/workouts", s.handleListWorkouts)
		r.Post("/workouts", s.handleSaveWorkout)
		r.Get("/workouts/recent", s.handleMostRecentWorkout)
		r.Get("/workouts/{id}", s.handleGetWorkout)
		r.Delete("/workouts/{id}", s.handleDeleteWorkout)

		r.Get("/log", s.handleWorkoutLog)
		r.Get("/records", s.handleRecords)

		r.Get("/exercises", s.handleListExercises)
		r.Post("/exercises", s.handleSaveExercise)

		r.Get("/settings/{key}", s.handleGetSetting)
		r.Put("/settings/{key}", s.handleSaveSetting)

		r.Get("/templates", s.handleListTemplates)
		r.Post("/templates", s.handleSaveTemplate)
		r.Get("/templates/{id}", s.handleGetTemplate)
		r.Delete("/templates/{id}", s.handleDeleteTemplate)

		r.Get("/export", s.handleExport)
		r.Post("/reset", s.handleReset)
		r.Get("/stats", s.handleStats)
	})
}

// MountMCP attaches the MCP transport handler under /mcp.
func (s *Server) MountMCP(h http.Handler) {
	s.router.Mount("/mcp", h)
}
