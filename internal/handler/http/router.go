package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/helloakshay27/hi-society-backend-go/internal/handler/http/middleware"
	"github.com/helloakshay27/hi-society-backend-go/internal/pkg/jwt"
)

func NewRouter(
	JWTService jwt.Service,
	patrolHandler PatrolHandler,
	locationHandler LocationHandler,
	directoryHandler DirectoryHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hi-society-patrol"),
		slog.String("version", "v1.0.0"),
		slog.String("env", "development"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	r.Route("/api/v1", func(r chi.Router) {

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(JWTService.JWTAuth()))
			r.Use(middleware.AuthRequired(JWTService.JWTAuth()))

			r.Route("/locations", func(r chi.Router) {
				r.Get("/buildings", locationHandler.Buildings)
				r.Get("/buildings/{id}/wings", locationHandler.Wings)
				r.Get("/wings/{id}/areas", locationHandler.Areas)
				r.Get("/areas/{id}/floors", locationHandler.Floors)
				r.Get("/floors/{id}/rooms", locationHandler.Rooms)
			})

			r.Route("/checklists", func(r chi.Router) {
				r.Get("/", directoryHandler.ListChecklists)
				r.Get("/{id}", directoryHandler.GetChecklist)
			})

			r.Get("/users", directoryHandler.ListUsers)

			r.Route("/patrollings/drafts", func(r chi.Router) {
				r.Post("/", patrolHandler.CreateDraft)

				r.Route("/{draftID}", func(r chi.Router) {
					r.Get("/", patrolHandler.GetDraft)
					r.Put("/details", patrolHandler.UpdateDetails)
					r.Put("/checklist", patrolHandler.SelectChecklist)

					r.Route("/questions", func(r chi.Router) {
						r.Post("/", patrolHandler.AddQuestion)
						r.Put("/{questionID}", patrolHandler.UpdateQuestion)
						r.Delete("/{questionID}", patrolHandler.RemoveQuestion)
					})

					r.Route("/schedules", func(r chi.Router) {
						r.Post("/", patrolHandler.AddSchedule)
						r.Put("/{scheduleID}", patrolHandler.UpdateSchedule)
						r.Delete("/{scheduleID}", patrolHandler.RemoveSchedule)
					})

					r.Route("/checkpoints", func(r chi.Router) {
						r.Post("/", patrolHandler.AddCheckpoint)
						r.Put("/{checkpointID}", patrolHandler.UpdateCheckpoint)
						r.Put("/{checkpointID}/location", patrolHandler.SetCheckpointLocation)
						r.Delete("/{checkpointID}", patrolHandler.RemoveCheckpoint)
					})

					r.Post("/submit", patrolHandler.Submit)
				})
			})
		})
	})
	return r
}
