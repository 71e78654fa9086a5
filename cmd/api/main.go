package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/shiftwise/shiftwise-backend-go/internal/config"
	appHTTP "github.com/shiftwise/shiftwise-backend-go/internal/handler/http"
	"github.com/shiftwise/shiftwise-backend-go/internal/pkg/cron"
	"github.com/shiftwise/shiftwise-backend-go/internal/pkg/database"
	"github.com/shiftwise/shiftwise-backend-go/internal/pkg/jwt"
	"github.com/shiftwise/shiftwise-backend-go/internal/pkg/oauth"
	"github.com/shiftwise/shiftwise-backend-go/internal/repository/postgresql"
	analyticsService "github.com/shiftwise/shiftwise-backend-go/internal/service/analytics"
	authService "github.com/shiftwise/shiftwise-backend-go/internal/service/auth"
	employeeService "github.com/shiftwise/shiftwise-backend-go/internal/service/employee"
	leaveService "github.com/shiftwise/shiftwise-backend-go/internal/service/leave"
	shiftService "github.com/shiftwise/shiftwise-backend-go/internal/service/shift"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL(), cfg.Database.MaxConns, cfg.Database.MinConns)
	if err != nil {
		fmt.Println("Error connecting to database:", err)
		return
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	refreshTokenRepo := postgresql.NewRefreshTokenRepository(db)
	employeeRepo := postgresql.NewEmployeeRepository(db)
	shiftRepo := postgresql.NewShiftRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)
	googleService := oauth.NewGoogleService(
		cfg.OAuth2Google.ClientID,
		cfg.OAuth2Google.ClientSecret,
		cfg.OAuth2Google.RedirectURL,
		cfg.OAuth2Google.Scopes,
	)

	authSvc := authService.NewAuthService(db, userRepo, refreshTokenRepo, jwtService, googleService)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo)
	shiftSvc := shiftService.NewShiftService(shiftRepo, employeeRepo, leaveRequestRepo)
	leaveSvc := leaveService.NewLeaveService(leaveRequestRepo, employeeRepo)
	analyticsSvc := analyticsService.NewAnalyticsService(shiftRepo, employeeRepo, leaveRequestRepo)

	authHandler := appHTTP.NewAuthHandler(authSvc, jwtService)
	employeeHandler := appHTTP.NewEmployeeHandler(employeeSvc)
	shiftHandler := appHTTP.NewShiftHandler(shiftSvc)
	leaveHandler := appHTTP.NewLeaveHandler(leaveSvc)
	reportHandler := appHTTP.NewReportHandler(analyticsSvc)

	router := appHTTP.NewRouter(
		appHTTP.RouterConfig{
			AllowedOrigins: cfg.App.AllowedOrigins,
			Environment:    cfg.App.Env,
		},
		jwtService,
		authHandler,
		employeeHandler,
		shiftHandler,
		leaveHandler,
		reportHandler,
	)

	scheduler := cron.NewScheduler()
	cron.NewShiftJobs(shiftRepo).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	port := fmt.Sprintf(":%d", cfg.App.Port)
	server := &http.Server{Addr: port, Handler: router}
	go func() {
		fmt.Printf("Server running at http://localhost%s\n", port)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			fmt.Println("Server error:", err)
		}
	}()

	<-stop
	fmt.Println("Shutting down...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		fmt.Println("Shutdown error:", err)
	}
}
