package main

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/httplog/v3"

	"github.com/workline-hr/workline-backend-go/internal/config"
	appHTTP "github.com/workline-hr/workline-backend-go/internal/handler/http"
	"github.com/workline-hr/workline-backend-go/internal/pkg/cron"
	"github.com/workline-hr/workline-backend-go/internal/pkg/database"
	"github.com/workline-hr/workline-backend-go/internal/pkg/jwt"
	"github.com/workline-hr/workline-backend-go/internal/pkg/oauth"
	"github.com/workline-hr/workline-backend-go/internal/pkg/sse"
	"github.com/workline-hr/workline-backend-go/internal/repository/postgresql"
	announcementService "github.com/workline-hr/workline-backend-go/internal/service/announcement"
	attendanceService "github.com/workline-hr/workline-backend-go/internal/service/attendance"
	authService "github.com/workline-hr/workline-backend-go/internal/service/auth"
	calendarService "github.com/workline-hr/workline-backend-go/internal/service/calendar"
	helpdeskService "github.com/workline-hr/workline-backend-go/internal/service/helpdesk"
	holidayService "github.com/workline-hr/workline-backend-go/internal/service/holiday"
	leaveService "github.com/workline-hr/workline-backend-go/internal/service/leave"
	notificationService "github.com/workline-hr/workline-backend-go/internal/service/notification"
	recognitionService "github.com/workline-hr/workline-backend-go/internal/service/recognition"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintln(os.Stderr, "Error loading config:", err)
		os.Exit(1)
	}

	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "workline-backend"),
		slog.String("env", cfg.App.Env),
	)
	slog.SetDefault(logger)

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		logger.Error("failed to connect to database", slog.Any("error", err))
		os.Exit(1)
	}
	defer db.Close()

	loc := cfg.Location()

	userRepo := postgresql.NewUserRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRepo := postgresql.NewLeaveRequestRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	maintenanceRepo := postgresql.NewMaintenanceRepository(db, leaveRepo)
	helpdeskRepo := postgresql.NewHelpdeskRepository(db)
	recognitionRepo := postgresql.NewRecognitionRepository(db)
	announcementRepo := postgresql.NewAnnouncementRepository(db)
	notificationRepo := postgresql.NewNotificationRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	googleService := oauth.NewGoogleService(
		cfg.OAuth2Google.ClientID,
		cfg.OAuth2Google.ClientSecret,
		cfg.OAuth2Google.RedirectURL,
		cfg.OAuth2Google.Scopes,
	)

	hub := sse.NewHub()
	notifySvc := notificationService.NewNotificationService(notificationRepo, hub, notificationService.Config{}, logger)

	authSvc := authService.NewAuthService(userRepo, jwtService, googleService)
	calendarSvc := calendarService.NewCalendarService(attendanceRepo, leaveRepo, userRepo, holidayRepo, maintenanceRepo, notifySvc, loc, logger)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, notifySvc, loc, logger)
	leaveSvc := leaveService.NewLeaveService(leaveRepo, notifySvc, loc, logger)
	holidaySvc := holidayService.NewHolidayService(holidayRepo, loc)
	helpdeskSvc := helpdeskService.NewHelpdeskService(helpdeskRepo, notifySvc, logger)
	recognitionSvc := recognitionService.NewRecognitionService(recognitionRepo, userRepo, notifySvc, logger)
	announcementSvc := announcementService.NewAnnouncementService(announcementRepo, userRepo, notifySvc, logger)

	scheduler := cron.NewScheduler()
	cron.NewAbsenceJobs(calendarSvc, cfg.Maintenance.AbsenceInterval, loc).RegisterJobs(scheduler)
	scheduler.Start()

	router := appHTTP.NewRouter(jwtService, logger, []string{cfg.App.FrontendURL}, appHTTP.Handlers{
		Auth:         appHTTP.NewAuthHandler(authSvc, jwtService),
		Calendar:     appHTTP.NewCalendarHandler(calendarSvc),
		Attendance:   appHTTP.NewAttendanceHandler(attendanceSvc, loc),
		Leave:        appHTTP.NewLeaveHandler(leaveSvc),
		Holiday:      appHTTP.NewHolidayHandler(holidaySvc),
		Helpdesk:     appHTTP.NewHelpdeskHandler(helpdeskSvc),
		Recognition:  appHTTP.NewRecognitionHandler(recognitionSvc),
		Announcement: appHTTP.NewAnnouncementHandler(announcementSvc),
		Notification: appHTTP.NewNotificationHandler(notifySvc, jwtService),
	})

	server := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.App.Port),
		Handler: router,
	}

	go func() {
		logger.Info("server started", slog.Int("port", cfg.App.Port), slog.String("timezone", cfg.App.Timezone))
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server error", slog.Any("error", err))
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Error("server shutdown failed", slog.Any("error", err))
	}

	scheduler.Stop()
	notifySvc.Stop()
}
