package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

func NewRouter(
	env string,
	frontendURL string,
	attendanceHandler AttendanceHandler,
	gradeHandler GradeHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hr-admin-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{frontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
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

		r.Route("/attendance", func(r chi.Router) {
			r.Post("/", attendanceHandler.Record)
			r.Get("/", attendanceHandler.List)
			r.Get("/grid", attendanceHandler.MonthlyGrid)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", attendanceHandler.Get)
				r.Patch("/", attendanceHandler.Update)
				r.Delete("/", attendanceHandler.Delete)
				r.Post("/approve", attendanceHandler.Approve)
				r.Post("/reject", attendanceHandler.Reject)
			})
		})

		r.Route("/salary-grades", func(r chi.Router) {
			r.Post("/", gradeHandler.Create)
			r.Get("/", gradeHandler.List)
			r.Post("/preview", gradeHandler.Preview)
			r.Post("/validate", gradeHandler.CheckForm)

			r.Route("/{id}", func(r chi.Router) {
				r.Get("/", gradeHandler.Get)
				r.Put("/", gradeHandler.Update)
				r.Delete("/", gradeHandler.Delete)
				r.Get("/totals", gradeHandler.Resolve)
			})
		})
	})

	return r
}
