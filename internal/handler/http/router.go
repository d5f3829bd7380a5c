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
	employeeHandler EmployeeHandler,
	attendanceHandler AttendanceHandler,
	reportHandler ReportHandler,
	toolHandler ToolHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "attendly-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
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

		r.Route("/tools", func(r chi.Router) {
			r.Get("/", toolHandler.List)
			r.Post("/{name}", toolHandler.Invoke)
		})

		r.Route("/employees", func(r chi.Router) {
			r.Get("/search", employeeHandler.Search)
			r.Get("/{id}", employeeHandler.Get)
		})

		r.Route("/attendances", func(r chi.Router) {
			r.Post("/", attendanceHandler.Mark)
		})

		r.Route("/reports", func(r chi.Router) {
			r.Get("/employees/{id}", reportHandler.EmployeeSummary)
			r.Get("/designations/{designation}", reportHandler.DepartmentReport)
			r.Get("/late-arrivals", reportHandler.LateArrivals)
			r.Get("/overview", reportHandler.Overview)
		})
	})

	return r
}
