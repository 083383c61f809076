package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/peoplecore-hq/peoplecore-backend-go/internal/config"
	appHTTP "github.com/peoplecore-hq/peoplecore-backend-go/internal/handler/http"
	"github.com/peoplecore-hq/peoplecore-backend-go/internal/pkg/database"
	"github.com/peoplecore-hq/peoplecore-backend-go/internal/pkg/email"
	"github.com/peoplecore-hq/peoplecore-backend-go/internal/pkg/jwt"
	"github.com/peoplecore-hq/peoplecore-backend-go/internal/pkg/oauth"
	"github.com/peoplecore-hq/peoplecore-backend-go/internal/pkg/storage"
	"github.com/peoplecore-hq/peoplecore-backend-go/internal/repository/postgresql"
	adminService "github.com/peoplecore-hq/peoplecore-backend-go/internal/service/admin"
	attendanceService "github.com/peoplecore-hq/peoplecore-backend-go/internal/service/attendance"
	authService "github.com/peoplecore-hq/peoplecore-backend-go/internal/service/auth"
	dashboardService "github.com/peoplecore-hq/peoplecore-backend-go/internal/service/dashboard"
	employeeService "github.com/peoplecore-hq/peoplecore-backend-go/internal/service/employee"
	"github.com/peoplecore-hq/peoplecore-backend-go/internal/service/file"
	leaveService "github.com/peoplecore-hq/peoplecore-backend-go/internal/service/leave"
	messageService "github.com/peoplecore-hq/peoplecore-backend-go/internal/service/message"
	payrollService "github.com/peoplecore-hq/peoplecore-backend-go/internal/service/payroll"
	taskService "github.com/peoplecore-hq/peoplecore-backend-go/internal/service/task"
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

	userRepo := postgresql.NewUserRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRepo := postgresql.NewLeaveRepository(db)
	taskRepo := postgresql.NewTaskRepository(db)
	messageRepo := postgresql.NewMessageRepository(db)

	jwtSvc := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	googleSvc := oauth.NewGoogleService(cfg.OAuth2Google.ClientID, cfg.OAuth2Google.ClientSecret, cfg.OAuth2Google.RedirectURL, cfg.OAuth2Google.Scopes)

	var fileStorage storage.FileStorage
	switch cfg.Storage.Type {
	case "local":
		fileStorage, err = storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
		if err != nil {
			log.Fatal("Failed to initialize local storage:", err)
		}
	default:
		log.Fatal("Unsupported storage type: ", cfg.Storage.Type)
	}

	fileSvc := file.NewFileService(fileStorage)
	emailSvc, err := email.NewEmailService(cfg.SMTP)
	if err != nil {
		log.Fatal("Failed to initialize email service:", err)
	}

	authSvc := authService.NewAuthService(db, userRepo, jwtSvc, emailSvc, googleSvc)
	adminSvc := adminService.NewAdminService(db, userRepo, emailSvc)
	employeeSvc := employeeService.NewEmployeeService(db, userRepo, emailSvc, fileSvc)
	attendanceSvc := attendanceService.NewAttendanceService(db, attendanceRepo)
	leaveSvc := leaveService.NewLeaveService(db, leaveRepo, userRepo)
	taskSvc := taskService.NewTaskService(db, taskRepo, userRepo)
	messageSvc := messageService.NewMessageService(db, messageRepo)
	payrollSvc := payrollService.NewPayrollService(db, userRepo, attendanceRepo)
	dashboardSvc := dashboardService.NewDashboardService(userRepo, attendanceRepo, leaveRepo, taskRepo)

	handlers := appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(authSvc),
		Superadmin: appHTTP.NewSuperadminHandler(adminSvc, dashboardSvc),
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc, dashboardSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Leave:      appHTTP.NewLeaveHandler(leaveSvc),
		Task:       appHTTP.NewTaskHandler(taskSvc),
		Message:    appHTTP.NewMessageHandler(messageSvc),
		Payroll:    appHTTP.NewPayrollHandler(payrollSvc),
	}

	router := appHTTP.NewRouter(cfg, jwtSvc, handlers)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	fmt.Printf("Server running at http://localhost%s\n", port)
	if err := http.ListenAndServe(port, router); err != nil {
		fmt.Println("Server error:", err)
	}
}
