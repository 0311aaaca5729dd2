package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"campusride/internal/config"
	"campusride/internal/handlers"
	"campusride/internal/middleware"
	"campusride/internal/repositories/mongodb"
	"campusride/internal/services"
	"campusride/pkg/cache"
	"campusride/pkg/database"
	"campusride/pkg/logger"
	"campusride/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger, err := logger.NewLogger(&logger.Config{
		Level:  cfg.Logger.Level,
		Format: cfg.Logger.Format,
		Output: cfg.Logger.Output,
	})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	db, err := database.NewMongoDB(&database.Config{
		URI:            cfg.Database.URI,
		Database:       cfg.Database.Database,
		MaxPoolSize:    cfg.Database.MaxPoolSize,
		MinPoolSize:    cfg.Database.MinPoolSize,
		ConnectTimeout: cfg.Database.ConnectTimeout,
		SocketTimeout:  cfg.Database.SocketTimeout,
	})
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to connect to MongoDB")
	}
	defer db.Close()

	if err := database.NewMigrator(db.Database).Up(); err != nil {
		appLogger.WithError(err).Fatal("Failed to run migrations")
	}

	// Stats caching is optional; the API works without Redis.
	var statsCache cache.Cache
	if cfg.Redis.Enabled {
		redisCache, err := cache.NewRedisCache(&cache.Config{
			Host:     cfg.Redis.Host,
			Port:     cfg.Redis.Port,
			Password: cfg.Redis.Password,
			DB:       cfg.Redis.DB,
		})
		if err != nil {
			appLogger.WithError(err).Warn("Redis unavailable, continuing without stats cache")
		} else {
			statsCache = redisCache
			defer redisCache.Close()
		}
	}

	bookingRepo := mongodb.NewBookingRepository(db.Database)
	historyRepo := mongodb.NewRideHistoryRepository(db.Database)
	studentRepo := mongodb.NewStudentRepository(db.Database)
	userRepo := mongodb.NewUserRepository(db.Database)

	bookingService := services.NewBookingService(bookingRepo, historyRepo, statsCache, appLogger)
	historyService := services.NewRideHistoryService(historyRepo, bookingRepo, statsCache, cfg.Redis.StatsTTL, appLogger)
	authService := services.NewAuthService(userRepo, studentRepo, cfg.Security.JWTSecret, cfg.Security.JWTTokenTTL, cfg.Security.ResetTokenTTL, appLogger)
	adminService := services.NewAdminService(userRepo, bookingRepo, appLogger)
	studentService := services.NewStudentService(studentRepo)

	bookingHandler := handlers.NewBookingHandler(bookingService)
	historyHandler := handlers.NewRideHistoryHandler(historyService)
	authHandler := handlers.NewAuthHandler(authService)
	adminHandler := handlers.NewAdminHandler(adminService)
	studentHandler := handlers.NewStudentHandler(studentService)

	if !cfg.App.Debug {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware(cfg.Security.CORSAllowedOrigins))
	router.Use(middleware.RequestIDMiddleware())
	router.Use(middleware.RequestLogger(appLogger))

	api := router.Group("/api")
	{
		routes.SetupAuthRoutes(api, authHandler)
		routes.SetupBookingRoutes(api, bookingHandler)
		routes.SetupRideHistoryRoutes(api, historyHandler)
		routes.SetupAdminRoutes(api, adminHandler, cfg.Security.JWTSecret)
		routes.SetupStudentRoutes(api, studentHandler)
	}

	router.GET("/health", func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	srv := &http.Server{
		Addr:    fmt.Sprintf("%s:%d", cfg.App.Host, cfg.App.Port),
		Handler: router,
	}

	go func() {
		appLogger.Infof("Starting %s on %s", cfg.App.Name, srv.Addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.WithError(err).Fatal("Server failed")
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	appLogger.Info("Shutting down server")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.WithError(err).Error("Forced shutdown")
	}
}
