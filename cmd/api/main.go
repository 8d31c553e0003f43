package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/workpulse/workpulse-backend-go/internal/config"
	appHTTP "github.com/workpulse/workpulse-backend-go/internal/handler/http"
	"github.com/workpulse/workpulse-backend-go/internal/pkg/database"
	"github.com/workpulse/workpulse-backend-go/internal/pkg/email"
	"github.com/workpulse/workpulse-backend-go/internal/pkg/jwt"
	"github.com/workpulse/workpulse-backend-go/internal/pkg/storage"
	"github.com/workpulse/workpulse-backend-go/internal/repository/postgresql"
	attendanceService "github.com/workpulse/workpulse-backend-go/internal/service/attendance"
	authService "github.com/workpulse/workpulse-backend-go/internal/service/auth"
	leaveService "github.com/workpulse/workpulse-backend-go/internal/service/leave"
	teamService "github.com/workpulse/workpulse-backend-go/internal/service/team"
	timesheetService "github.com/workpulse/workpulse-backend-go/internal/service/timesheet"
	userService "github.com/workpulse/workpulse-backend-go/internal/service/user"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Error loading config: ", err)
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		log.Fatal("Error connecting to database: ", err)
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	teamRepo := postgresql.NewTeamRepository(db)
	timeEntryRepo := postgresql.NewTimeEntryRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	fileStorage, err := storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
	if err != nil {
		log.Fatal("Failed to initialize storage: ", err)
	}

	emailSvc, err := email.NewEmailService(cfg.SMTP)
	if err != nil {
		log.Fatal("Failed to initialize email service: ", err)
	}

	authSvc := authService.NewAuthService(db, userRepo, jwtService)
	userSvc := userService.NewUserService(db, userRepo, fileStorage)
	attendanceSvc := attendanceService.NewAttendanceService(db, attendanceRepo, teamRepo, userRepo, cfg)
	leaveSvc := leaveService.NewLeaveService(db, leaveRepo, userRepo, attendanceSvc, emailSvc)
	teamSvc := teamService.NewTeamService(db, teamRepo, userRepo)
	timesheetSvc := timesheetService.NewTimesheetService(db, timeEntryRepo, cfg.Location())

	router := appHTTP.NewRouter(
		cfg,
		jwtService,
		appHTTP.NewAuthHandler(authSvc),
		appHTTP.NewUserHandler(userSvc),
		appHTTP.NewAttendanceHandler(attendanceSvc),
		appHTTP.NewLeaveHandler(leaveSvc),
		appHTTP.NewTeamHandler(teamSvc),
		appHTTP.NewTimesheetHandler(timesheetSvc),
	)

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	log.Println("Server listening on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal("Server error: ", err)
	}
}
