package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/shiftwise/shiftwise-backend-go/internal/handler/http/middleware"
	"github.com/shiftwise/shiftwise-backend-go/internal/pkg/jwt"
)

type RouterConfig struct {
	AllowedOrigins []string
	Environment    string
}

func NewRouter(
	cfg RouterConfig,
	jwtService jwt.Service,
	authHandler AuthHandler,
	employeeHandler EmployeeHandler,
	shiftHandler ShiftHandler,
	leaveHandler LeaveHandler,
	reportHandler ReportHandler,
) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "shiftwise"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.Environment),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
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

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.Refresh)
			r.Post("/logout", authHandler.Logout)
			r.Route("/oauth", func(r chi.Router) {
				r.Get("/google", authHandler.GoogleLogin)
				r.Get("/callback/google", authHandler.GoogleCallback)
			})
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Get("/auth/me", authHandler.Me)

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", employeeHandler.List)
				r.Get("/{id}", employeeHandler.Get)
				r.Get("/{employeeId}/leave-requests", leaveHandler.ListByEmployee)

				// Manager only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Post("/", employeeHandler.Create)
					r.Put("/{id}", employeeHandler.Update)
					r.Delete("/{id}", employeeHandler.Deactivate)
				})
			})

			r.Route("/shifts", func(r chi.Router) {
				r.Get("/", shiftHandler.List)
				r.Get("/{id}", shiftHandler.Get)

				// Manager only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Post("/", shiftHandler.Create)
					r.Put("/{id}", shiftHandler.Update)
					r.Delete("/{id}", shiftHandler.Delete)
					r.Post("/{id}/assign", shiftHandler.Assign)
					r.Post("/{id}/unassign", shiftHandler.Unassign)
					r.Post("/{id}/validate-assignment", shiftHandler.ValidateAssignment)
					r.Patch("/{id}/status", shiftHandler.UpdateStatus)
				})
			})

			r.Route("/leave-requests", func(r chi.Router) {
				r.Post("/", leaveHandler.CreateRequest)
				r.Get("/{id}", leaveHandler.GetRequest)

				// Manager only
				r.Group(func(r chi.Router) {
					r.Use(middleware.RequireManager)
					r.Patch("/{id}/status", leaveHandler.DecideRequest)
				})
			})

			// Manager only
			r.Route("/reports", func(r chi.Router) {
				r.Use(middleware.RequireManager)
				r.Get("/coverage", reportHandler.Coverage)
				r.Get("/conflicts", reportHandler.Conflicts)
				r.Get("/workload", reportHandler.Workload)
				r.Get("/utilization", reportHandler.Utilization)
				r.Get("/capacity", reportHandler.Capacity)
			})
		})
	})
	return r
}
