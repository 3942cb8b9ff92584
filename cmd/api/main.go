package main

import (
	"fmt"
	"net/http"

	"github.com/cmlabs-hris/hr-admin-backend-go/internal/config"
	appHTTP "github.com/cmlabs-hris/hr-admin-backend-go/internal/handler/http"
	"github.com/cmlabs-hris/hr-admin-backend-go/internal/repository/memory"
	attendanceService "github.com/cmlabs-hris/hr-admin-backend-go/internal/service/attendance"
	gradeService "github.com/cmlabs-hris/hr-admin-backend-go/internal/service/grade"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	attendanceRepo := memory.NewAttendanceRepository()
	gradeRepo := memory.NewGradeRepository()

	classifier := attendanceService.NewClassifier(
		cfg.Attendance.HalfDayBelowHour*60,
		cfg.Attendance.GraceMinutes,
	)
	resolver := gradeService.NewResolver()

	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, classifier)
	gradeSvc := gradeService.NewGradeService(gradeRepo, resolver)

	attendanceHandler := appHTTP.NewAttendanceHandler(attendanceSvc)
	gradeHandler := appHTTP.NewGradeHandler(gradeSvc)

	router := appHTTP.NewRouter(
		cfg.App.Env,
		cfg.App.FrontendURL,
		attendanceHandler,
		gradeHandler,
	)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
