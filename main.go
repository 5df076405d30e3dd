// File: medibook/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"medibook/config"
	"medibook/cron"
	"medibook/database"
	appointmentRepoPkg "medibook/database/repository/appointment"
	doctorRepoPkg "medibook/database/repository/doctor"
	patientRepoPkg "medibook/database/repository/patient"
	"medibook/handlers"
	"medibook/middleware"
	"medibook/routes"
	doctorSvc "medibook/services/doctor"
	"medibook/services/notification"
	"medibook/services/scheduling"
	"medibook/utils"

	"github.com/gin-gonic/gin"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitCache()
	utils.FirebaseInit()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	doctorRepo := doctorRepoPkg.NewMongoDoctorRepo()
	patientRepo := patientRepoPkg.NewMongoPatientRepo()
	apptRepo := appointmentRepoPkg.NewMongoAppointmentRepo()

	if err := doctorRepo.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure doctor indexes: %v", err)
	}
	if err := apptRepo.EnsureIndexes(); err != nil {
		logger.Sugar().Fatalf("main: failed to ensure appointment indexes: %v", err)
	}

	// services.
	notificationService, err := notification.NewDefaultNotificationService(doctorRepo, patientRepo)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize notification service: %v", err)
	}

	reminderClient := cron.NewReminderClient()
	cron.InitReminderWorker(apptRepo, notificationService)

	listingCache := scheduling.NewRedisListingCache(
		utils.GetCacheClient(),
		time.Duration(config.AppConfig.ListingCacheTTL)*time.Second,
	)

	schedulingService := &scheduling.DefaultSchedulingService{
		DoctorRepo:  doctorRepo,
		PatientRepo: patientRepo,
		ApptRepo:    apptRepo,
		Notifier:    notificationService,
		Reminders:   reminderClient,
		Cache:       listingCache,
		Clock:       scheduling.RealClock{},
		WindowDays:  config.AppConfig.DefaultWindowDays,
		LeadTime:    time.Duration(config.AppConfig.LeadTimeMinutes) * time.Minute,
	}

	doctorService := &doctorSvc.DefaultDoctorService{
		Repo: doctorRepo,
	}

	schedulingHandler := handlers.NewSchedulingHandler(schedulingService)
	doctorHandler := handlers.NewDoctorHandler(doctorService)

	// Register routes.
	routes.RegisterRoutes(router, schedulingHandler, doctorHandler)

	utils.StartHealthMonitor(utils.GetCacheClient(), database.MongoClient)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
