package main

import (
	"fmt"
	"net/http"

	"github.com/hrportal/hr-backend-go/internal/config"
	appHTTP "github.com/hrportal/hr-backend-go/internal/handler/http"
	"github.com/hrportal/hr-backend-go/internal/pkg/cron"
	"github.com/hrportal/hr-backend-go/internal/pkg/database"
	"github.com/hrportal/hr-backend-go/internal/repository/postgresql"
	attendanceService "github.com/hrportal/hr-backend-go/internal/service/attendance"
	workLocationService "github.com/hrportal/hr-backend-go/internal/service/worklocation"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	dsn := cfg.DatabaseURL()
	db, err := database.NewPostgreSQLDB(dsn, cfg.Database.MaxConns, cfg.Database.MinConns)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	attendanceRepo := postgresql.NewAttendanceRepository(db)
	workLocationRepo := postgresql.NewWorkLocationRepository(db)

	attendanceSvc := attendanceService.NewAttendanceService(
		db,
		attendanceRepo,
		workLocationRepo,
		cfg.Attendance.AccuracyThresholdMeters,
	)
	workLocationSvc := workLocationService.NewWorkLocationService(
		db,
		workLocationRepo,
		cfg.Attendance.AccuracyThresholdMeters,
	)

	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	workLocationHandler := appHTTP.NewWorkLocationHandler(workLocationSvc)

	scheduler := cron.NewScheduler()
	cron.NewAttendanceJobs(attendanceRepo).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	router := appHTTP.NewRouter(
		cfg.App.Env,
		cfg.App.AllowedOrigins,
		attendanceHandler,
		workLocationHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
