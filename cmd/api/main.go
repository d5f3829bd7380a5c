package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"github.com/attendly/attendly-backend-go/internal/config"
	appHTTP "github.com/attendly/attendly-backend-go/internal/handler/http"
	"github.com/attendly/attendly-backend-go/internal/pkg/database"
	"github.com/attendly/attendly-backend-go/internal/repository/mongodb"
	attendanceService "github.com/attendly/attendly-backend-go/internal/service/attendance"
	employeeService "github.com/attendly/attendly-backend-go/internal/service/employee"
	reportService "github.com/attendly/attendly-backend-go/internal/service/report"
	"github.com/attendly/attendly-backend-go/internal/tools"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewMongoDB(cfg.Database.URI, cfg.Database.Name, cfg.Database.QueryTimeout)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer func() {
		if err := db.Close(context.Background()); err != nil {
			log.Println("Error closing database:", err)
		}
	}()

	if err := db.EnsureIndexes(context.Background()); err != nil {
		log.Fatal("Failed to ensure indexes:", err)
	}

	employeeRepo := mongodb.NewEmployeeRepository(db)
	attendanceRepo := mongodb.NewAttendanceRepository(db)

	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo)
	reportSvc := reportService.NewReportService(attendanceRepo, employeeRepo)

	registry := tools.NewRegistry(employeeSvc, attendanceSvc, reportSvc)

	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	reportHandler := appHTTP.NewReportHandler(reportSvc)
	toolHandler := appHTTP.NewToolHandler(registry)

	router := appHTTP.NewRouter(
		cfg.App.Env,
		employeeHandler,
		attendanceHandler,
		reportHandler,
		toolHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
