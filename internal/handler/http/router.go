package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

func NewRouter(env string, allowedOrigins []string, attendanceHandler AttendanceHandler, workLocationHandler WorkLocationHandler) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hr-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
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

		r.Route("/attendance", func(r chi.Router) {
			r.Post("/", attendanceHandler.Upsert)
			r.Get("/{employeeID}/{year}/{month}", attendanceHandler.GetMonth)
			r.Get("/summary/{employeeID}/{year}/{month}", attendanceHandler.MonthlySummary)
			r.Post("/{employeeID}/{date}/approve", attendanceHandler.Approve)
			r.Delete("/{employeeID}/{date}", attendanceHandler.Delete)
		})

		r.Route("/work-locations", func(r chi.Router) {
			r.Get("/", workLocationHandler.List)
			r.Post("/", workLocationHandler.Create)
			r.Get("/{id}", workLocationHandler.Get)
			r.Put("/{id}", workLocationHandler.Update)
			r.Delete("/{id}", workLocationHandler.Delete)
		})

		r.Post("/validate-location", workLocationHandler.ValidateLocation)
	})

	return r
}
