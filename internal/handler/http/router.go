package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/prodtrack/timecore-backend-go/internal/handler/http/middleware"
	"github.com/prodtrack/timecore-backend-go/internal/pkg/jwt"
)

func NewRouter(
	JWTService jwt.Service,
	timesheetHandler TimesheetHandler,
	timeclockHandler TimeclockHandler,
	worklogHandler WorklogHandler,
	breakRuleHandler BreakRuleHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "timecore"),
		slog.String("version", "v1.0.0"),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"http://localhost:3000"},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
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

			r.Route("/timeclock", func(r chi.Router) {
				r.Post("/clock-in", timeclockHandler.ClockIn)
				r.Post("/clock-out", timeclockHandler.ClockOut)
				r.Get("/{userID}/{date}", timeclockHandler.GetDay)
				r.With(middleware.SupervisorOnly).Put("/{userID}/{date}", timeclockHandler.UpdateDay)
			})

			r.Route("/work-segments", func(r chi.Router) {
				r.Post("/", worklogHandler.Create)
				r.Get("/", worklogHandler.ListDay)
				r.Put("/{id}/finish", worklogHandler.Finish)
				r.Put("/{id}", worklogHandler.Update)
				r.Delete("/{id}", worklogHandler.Delete)
			})

			r.Get("/summaries/{userID}/{date}", timesheetHandler.GetDailySummary)

			// Supervisor only
			r.Group(func(r chi.Router) {
				r.Use(middleware.SupervisorOnly)
				r.Get("/issues", timesheetHandler.ListPendingIssues)
				r.Post("/issues/{userID}/{date}/clear", timesheetHandler.ClearIssue)
			})

			r.Route("/break-rules", func(r chi.Router) {
				r.Get("/", breakRuleHandler.List)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", breakRuleHandler.Create)
					r.Put("/{id}", breakRuleHandler.Update)
				})
			})
		})
	})
	return r
}
