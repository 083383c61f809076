package http

import (
	"log/slog"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/peoplecore-hq/peoplecore-backend-go/internal/config"
	"github.com/peoplecore-hq/peoplecore-backend-go/internal/handler/http/middleware"
	"github.com/peoplecore-hq/peoplecore-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth       AuthHandler
	Superadmin SuperadminHandler
	Employee   EmployeeHandler
	Attendance AttendanceHandler
	Leave      LeaveHandler
	Task       TaskHandler
	Message    MessageHandler
	Payroll    PayrollHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "peoplecore"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
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
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/request-reset", h.Auth.RequestReset)
			r.Post("/confirm-reset", h.Auth.ConfirmReset)
			r.Get("/login/oauth/google", h.Auth.LoginWithGoogle)
			r.Get("/oauth/callback/google", h.Auth.OAuthCallbackGoogle)
		})

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Route("/superadmin", func(r chi.Router) {
				r.Use(middleware.RequireSuperadmin)

				r.Route("/admins", func(r chi.Router) {
					r.Post("/", h.Superadmin.CreateAdmin)
					r.Get("/", h.Superadmin.ListAdmins)
					r.Put("/{id}", h.Superadmin.UpdateAdmin)
					r.Delete("/{id}", h.Superadmin.DeleteAdmin)
					r.Patch("/{id}/status", h.Superadmin.SetAdminStatus)
				})

				r.Get("/employees", h.Superadmin.ListAllEmployees)
				r.Get("/overview", h.Superadmin.Overview)
				r.Get("/attendance", h.Attendance.History)
				r.Get("/leaves", h.Leave.List)
				r.Get("/messages", h.Message.List)
			})

			r.Route("/admin", func(r chi.Router) {
				r.Use(middleware.RequireAdmin)

				r.Route("/employees", func(r chi.Router) {
					r.Post("/", h.Employee.Create)
					r.Get("/", h.Employee.List)
					r.Get("/search", h.Employee.Search)
					r.Put("/{id}", h.Employee.Update)
					r.Delete("/{id}", h.Employee.Delete)
					r.Get("/{id}/salary-slip", h.Payroll.SalarySlip)
				})

				r.Get("/leaves", h.Leave.List)
				r.Put("/leaves/{id}", h.Leave.Decide)
				r.Get("/attendance", h.Attendance.History)
				r.Get("/dashboard", h.Employee.Dashboard)

				r.Route("/tasks", func(r chi.Router) {
					r.Post("/", h.Task.Create)
					r.Get("/", h.Task.AdminTasks)
				})

				r.Route("/messages", func(r chi.Router) {
					r.Get("/", h.Message.List)
					r.Patch("/{id}/status", h.Message.UpdateStatus)
					r.Delete("/{id}", h.Message.Delete)
				})
			})

			r.Route("/employee", func(r chi.Router) {
				r.Use(middleware.RequireEmployee)

				r.Post("/attendance/punch-in", h.Attendance.PunchIn)
				r.Post("/attendance/punch-out", h.Attendance.PunchOut)
				r.Get("/attendance", h.Attendance.History)

				r.Post("/leaves", h.Leave.Request)
				r.Get("/leaves", h.Leave.MyLeaves)

				r.Get("/tasks", h.Task.MyTasks)
				r.Patch("/tasks/{id}/status", h.Task.UpdateStatus)

				r.Post("/messages", h.Message.Send)
				r.Get("/profile", h.Employee.Profile)
			})
		})
	})

	return r
}
