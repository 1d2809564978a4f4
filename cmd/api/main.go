package main

import (
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/talentia-hr/attendance-engine/internal/config"
	appHTTP "github.com/talentia-hr/attendance-engine/internal/handler/http"
	"github.com/talentia-hr/attendance-engine/internal/pkg/clock"
	"github.com/talentia-hr/attendance-engine/internal/pkg/cron"
	"github.com/talentia-hr/attendance-engine/internal/pkg/database"
	"github.com/talentia-hr/attendance-engine/internal/pkg/jwt"
	"github.com/talentia-hr/attendance-engine/internal/repository/postgresql"
	attendanceService "github.com/talentia-hr/attendance-engine/internal/service/attendance"
	scheduleService "github.com/talentia-hr/attendance-engine/internal/service/schedule"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	attendanceRepo := postgresql.NewAttendanceRepository(db)
	exemptionRepo := postgresql.NewExemptionRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)
	userRepo := postgresql.NewUserRepository(db)
	scheduleRepo := postgresql.NewScheduleRepository(db)

	jwtService := jwt.NewVerifier(cfg.JWT.Secret)
	systemClock := clock.System()

	attendanceSvc := attendanceService.NewService(
		attendanceRepo,
		exemptionRepo,
		holidayRepo,
		userRepo,
		systemClock,
		cfg.Engine.TrackedRoles,
	)
	scheduleSvc := scheduleService.NewService(
		scheduleRepo,
		exemptionRepo,
		holidayRepo,
		systemClock,
	)

	scheduler := cron.NewScheduler()
	cron.NewAttendanceJobs(attendanceSvc).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	scheduleHandler := appHTTP.NewScheduleHandler(scheduleSvc)

	router := appHTTP.NewRouter(
		jwtService,
		attendanceHandler,
		scheduleHandler,
		cfg.App.FrontendURL,
		cfg.App.Env,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	server := &http.Server{Addr: port, Handler: router}

	go func() {
		fmt.Printf("Server running at http://localhost%s\n", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fmt.Println("Server error:", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	fmt.Println("Shutting down")
	_ = server.Close()
}
