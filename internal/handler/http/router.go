package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/workpulse/workpulse-backend-go/internal/config"
	"github.com/workpulse/workpulse-backend-go/internal/handler/http/middleware"
	"github.com/workpulse/workpulse-backend-go/internal/pkg/jwt"
)

func NewRouter(
	cfg *config.Config,
	jwtService jwt.Service,
	authHandler AuthHandler,
	userHandler UserHandler,
	attendanceHandler AttendanceHandler,
	leaveHandler LeaveHandler,
	teamHandler TeamHandler,
	timesheetHandler TimesheetHandler,
) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "workpulse"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/healthz"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", authHandler.Login)
			r.Post("/refresh", authHandler.Refresh)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Get("/auth/me", userHandler.Me)

			r.Route("/users", func(r chi.Router) {
				r.Get("/me", userHandler.Me)
				r.Put("/me", userHandler.UpdateProfile)
				r.Post("/me/profile-picture", userHandler.UploadProfilePicture)
				r.Get("/", userHandler.List)
				r.Get("/{id}", userHandler.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", userHandler.Create)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/start-day", attendanceHandler.StartDay)
				r.Post("/start-break", attendanceHandler.StartBreak)
				r.Post("/end-break", attendanceHandler.EndBreak)
				r.Post("/end-day", attendanceHandler.EndDay)
				r.Get("/status", attendanceHandler.Status)
				r.Get("/team-status", attendanceHandler.TeamStatus)
				r.Get("/", attendanceHandler.List)
				r.Get("/{id}", attendanceHandler.Get)
			})

			r.Route("/leaves", func(r chi.Router) {
				r.Post("/", leaveHandler.Apply)
				r.Get("/", leaveHandler.List)
				r.Get("/{id}", leaveHandler.Get)
				r.Patch("/{id}", leaveHandler.Edit)

				r.Group(func(r chi.Router) {
					r.Use(middleware.LeadOrAdmin)
					r.Post("/{id}/approve", leaveHandler.Approve)
					r.Post("/{id}/reject", leaveHandler.Reject)
				})
			})

			r.Route("/teams", func(r chi.Router) {
				r.Get("/", teamHandler.ListTeams)
				r.Get("/{id}", teamHandler.GetTeam)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", teamHandler.CreateTeam)
					r.Put("/{id}", teamHandler.UpdateTeam)
					r.Delete("/{id}", teamHandler.DeleteTeam)
				})
			})

			r.Route("/projects", func(r chi.Router) {
				r.Get("/", teamHandler.ListProjects)
				r.Get("/{id}", teamHandler.GetProject)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", teamHandler.CreateProject)
					r.Put("/{id}", teamHandler.UpdateProject)
					r.Delete("/{id}", teamHandler.DeleteProject)
				})
			})

			r.Route("/tasks", func(r chi.Router) {
				r.Post("/", teamHandler.CreateTask)
				r.Get("/", teamHandler.ListTasks)
				r.Get("/{id}", teamHandler.GetTask)
				r.Put("/{id}", teamHandler.UpdateTask)
				r.Delete("/{id}", teamHandler.DeleteTask)
			})

			r.Route("/timesheet", func(r chi.Router) {
				r.Post("/start", timesheetHandler.StartTimer)
				r.Post("/stop", timesheetHandler.StopTimer)
				r.Get("/current", timesheetHandler.CurrentTimer)
				r.Get("/", timesheetHandler.List)
				r.Delete("/{id}", timesheetHandler.Delete)
			})
		})
	})

	return r
}
