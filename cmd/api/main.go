package main

import (
	"fmt"
	"log/slog"
	"net/http"
	"os"

	"github.com/presensia/hris-backend-go/internal/config"
	appHTTP "github.com/presensia/hris-backend-go/internal/handler/http"
	"github.com/presensia/hris-backend-go/internal/pkg/database"
	"github.com/presensia/hris-backend-go/internal/pkg/jwt"
	"github.com/presensia/hris-backend-go/internal/repository/postgresql"
	attendanceService "github.com/presensia/hris-backend-go/internal/service/attendance"
	leaveService "github.com/presensia/hris-backend-go/internal/service/leave"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	leaveSvc := leaveService.NewLeaveService(leaveRequestRepo, attendanceRepo, logger)
	attendanceSvc, err := attendanceService.NewAttendanceService(attendanceRepo, cfg.Attendance, logger)
	if err != nil {
		fmt.Println("Error initializing attendance service:", err)
		return
	}

	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)

	router := appHTTP.NewRouter(cfg.App, JWTService, leaveHandler, attendanceHandler)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
