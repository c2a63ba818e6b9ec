// File: beacon/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"beacon/config"
	"beacon/cron"
	devicesRepoPkg "beacon/database/repository/devices"
	eventsRepoPkg "beacon/database/repository/events"
	notificationsRepoPkg "beacon/database/repository/notifications"
	"beacon/handlers"
	"beacon/routes"
	"beacon/services/notification"
	"beacon/services/reminder"
	"beacon/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	store, fcm := utils.FirebaseInit()
	utils.InitTokenCache()

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())

	// repositories.
	notifRepo := notificationsRepoPkg.NewFirestoreNotificationRepo(store)
	eventRepo := eventsRepoPkg.NewFirestoreEventRepo(store)
	deviceRepo := devicesRepoPkg.NewFirestoreDeviceRepo(store, utils.GetTokenCacheClient())

	// services.
	pusher := notification.NewFCMPusher(fcm, config.AppConfig.PushSendRate)
	notificationService, err := notification.NewDefaultNotificationService(notifRepo, deviceRepo, pusher)
	if err != nil {
		logger.Sugar().Fatalf("main: failed to initialize notification service: %v", err)
	}

	generator := &reminder.DefaultGenerator{
		Events:        eventRepo,
		Notifications: notifRepo,
	}

	cron.InitReminderWorker(generator)
	utils.StartHealthMonitor([]*redis.Client{utils.GetTokenCacheClient()}, store)

	triggerHandler := handlers.NewTriggerHandler(notificationService, generator)
	routes.RegisterRoutes(router, triggerHandler)

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
