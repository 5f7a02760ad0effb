package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/iammorganparry/clive/apps/todo/internal/sessions"
	"github.com/iammorganparry/clive/apps/todo/internal/store"
)

// NewRouter creates the Chi router with all routes and middleware.
func NewRouter(db *store.DB, sessMgr *sessions.Manager, logger *slog.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Global middleware (runs on ALL routes including /health)
	r.Use(RequestID)
	r.Use(Logger(logger))
	r.Use(Recovery(logger))
	r.Use(SecurityHeaders)

	// Handlers
	healthH := NewHealthHandler(db)
	listH := NewListHandler(logger)
	todoH := NewTodoHandler(logger)

	// Sessionless routes
	r.Get("/health", healthH.Health)

	r.Group(func(r chi.Router) {
		r.Use(sessMgr.Middleware)

		r.Get("/", func(w http.ResponseWriter, r *http.Request) {
			redirect(w, r, "/lists")
		})

		r.Route("/lists", func(r chi.Router) {
			r.Get("/", listH.Index)
			r.Post("/", listH.Create)
			r.Get("/new", listH.New)
			r.Get("/export", listH.Export)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", listH.Show)
				r.Post("/", listH.Update)
				r.Get("/edit", listH.Edit)
				r.Post("/destroy", listH.Destroy)
				r.Post("/complete_all", todoH.CompleteAll)
				r.Post("/todos", todoH.Create)
				r.Post("/todos/{todoID}", todoH.Update)
				r.Post("/todos/{todoID}/destroy", todoH.Destroy)
			})
		})
	})

	return r
}
