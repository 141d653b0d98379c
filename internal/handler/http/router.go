package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"

	"github.com/workline-hr/workline-backend-go/internal/handler/http/middleware"
	"github.com/workline-hr/workline-backend-go/internal/pkg/jwt"
)

type Handlers struct {
	Auth         AuthHandler
	Calendar     CalendarHandler
	Attendance   AttendanceHandler
	Leave        LeaveHandler
	Holiday      HolidayHandler
	Helpdesk     HelpdeskHandler
	Recognition  RecognitionHandler
	Announcement AnnouncementHandler
	Notification NotificationHandler
}

func NewRouter(jwtService jwt.Service, logger *slog.Logger, allowedOrigins []string, h Handlers) *chi.Mux {
	r := chi.NewRouter()

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelInfo,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/healthz"))

	r.Route("/api/v1", func(r chi.Router) {
		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
			r.Get("/login/oauth/google", h.Auth.LoginWithGoogle)
			r.Post("/refresh", h.Auth.Refresh)
			r.Post("/logout", h.Auth.Logout)
		})

		// SSE stream authenticates via its own short-lived token.
		r.Get("/notifications/stream", h.Notification.Stream)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			// Admin provisions accounts.
			r.With(middleware.AdminOnly).Post("/auth/register", h.Auth.Register)

			r.Route("/calendar", func(r chi.Router) {
				r.Get("/month-stats", h.Calendar.MonthStats)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/days/{date}", h.Calendar.DayDetail)
					r.Post("/days/{date}/overrides", h.Calendar.OverrideDay)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/clock-in", h.Attendance.ClockIn)
				r.Post("/clock-out", h.Attendance.ClockOut)
				r.Get("/my", h.Attendance.MyAttendance)

				r.Group(func(r chi.Router) {
					r.Use(middleware.HROnly)
					r.Get("/", h.Attendance.List)
					r.Post("/{id}/approve", h.Attendance.Approve)
					r.Post("/{id}/reject", h.Attendance.Reject)
				})
			})

			r.Route("/leaves", func(r chi.Router) {
				r.Post("/", h.Leave.Submit)
				r.Get("/my", h.Leave.MyRequests)

				r.Group(func(r chi.Router) {
					r.Use(middleware.HROnly)
					r.Get("/", h.Leave.List)
					r.Post("/{id}/approve", h.Leave.Approve)
					r.Post("/{id}/reject", h.Leave.Reject)
				})
			})

			r.Route("/holidays", func(r chi.Router) {
				r.Get("/", h.Holiday.List)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Holiday.Create)
					r.Delete("/{id}", h.Holiday.Delete)
				})
			})

			r.Route("/tickets", func(r chi.Router) {
				r.Post("/", h.Helpdesk.Create)
				r.Get("/my", h.Helpdesk.MyTickets)
				r.Get("/", h.Helpdesk.List)
				r.Get("/{id}", h.Helpdesk.Get)
				r.Post("/{id}/comments", h.Helpdesk.Comment)

				r.Group(func(r chi.Router) {
					r.Use(middleware.HROnly)
					r.Post("/{id}/assign", h.Helpdesk.Assign)
					r.Post("/{id}/transition", h.Helpdesk.Transition)
				})
			})

			r.Route("/recognitions", func(r chi.Router) {
				r.Post("/", h.Recognition.Give)
				r.Get("/", h.Recognition.Feed)
				r.Get("/balance/my", h.Recognition.MyBalance)
				r.Get("/balance/{id}", h.Recognition.Balance)
				r.Get("/leaderboard", h.Recognition.Leaderboard)
			})

			r.Route("/announcements", func(r chi.Router) {
				r.Get("/", h.Announcement.List)
				r.Get("/{id}", h.Announcement.Get)

				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Announcement.Create)
					r.Put("/{id}", h.Announcement.Update)
					r.Delete("/{id}", h.Announcement.Delete)
				})
			})

			r.Route("/notifications", func(r chi.Router) {
				r.Get("/", h.Notification.List)
				r.Get("/unread-count", h.Notification.UnreadCount)
				r.Post("/mark-read", h.Notification.MarkAsRead)
				r.Post("/mark-all-read", h.Notification.MarkAllAsRead)
				r.Delete("/{id}", h.Notification.Delete)
				r.Post("/sse-token", h.Notification.GetSSEToken)
			})
		})
	})

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok\n"))
	})

	return r
}
