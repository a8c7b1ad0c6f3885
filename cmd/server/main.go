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

	"tripcraft/internal/authz"
	"tripcraft/internal/cache"
	"tripcraft/internal/config"
	"tripcraft/internal/database"
	"tripcraft/internal/handler"
	"tripcraft/internal/mailer"
	"tripcraft/internal/queue"
	"tripcraft/internal/repository"
	"tripcraft/internal/router"
	"tripcraft/internal/service"
	"tripcraft/internal/storage"
	"tripcraft/internal/validator"
	"tripcraft/pkg/auth"

	"github.com/gin-gonic/gin"
)

// @title           TripCraft API
// @version         1.0
// @description     A REST API for collaborative trip planning: plan templates, trips, and share invitations.

// @contact.name    API Support
// @contact.email   support@example.com

// @host            localhost:8080
// @BasePath        /api/v1

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Enter your bearer token in the format: Bearer {token}

func main() {
	// Load configuration
	cfg := config.Load()
	log.Println("Configuration loaded")

	// Register custom validators
	validator.RegisterCustomValidators()

	// Set Gin mode
	gin.SetMode(cfg.GinMode)

	// Database
	mongoDB := database.NewMongoDB(cfg.MongoURI, cfg.MongoDatabase)
	defer mongoDB.Close()

	// Redis Cache
	redisCache := cache.NewRedis(cfg.RedisURI)
	defer redisCache.Close()

	// S3 Storage
	s3Client := storage.NewS3Client(cfg.S3Endpoint, cfg.S3AccessKey, cfg.S3SecretKey, cfg.S3Bucket, cfg.S3UseSSL)

	// JWT Manager
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTExpiry)

	// Repository layer
	planRepo := repository.NewPlanTemplateRepository(mongoDB.Database)
	tripRepo := repository.NewTripRepository(mongoDB.Database)
	invitationRepo := repository.NewShareInvitationRepository(mongoDB.Database)

	// Authorization
	authorizer := authz.NewLocalAuthorizer(tripRepo)

	// Invitation mail queue and mailer
	mailQueue := queue.NewMemoryQueue(cfg.QueueCapacity)
	mailService := mailer.NewMockService()

	// Service layer
	planService := service.NewPlanTemplateService(planRepo, tripRepo, redisCache, s3Client)
	tripService := service.NewTripService(tripRepo, planRepo)
	invitationService := service.NewShareInvitationService(invitationRepo, tripRepo, mailQueue)

	// Mail processor marks invitations notified after delivery
	mailProcessor := queue.NewProcessor(mailQueue, mailService, invitationService, cfg.MailWorkers)

	// Handler layer
	planHandler := handler.NewPlanTemplateHandler(planService)
	tripHandler := handler.NewTripHandler(tripService)
	invitationHandler := handler.NewShareInvitationHandler(invitationService)

	// Router
	r := router.Setup(&router.Config{
		PlanHandler:       planHandler,
		TripHandler:       tripHandler,
		InvitationHandler: invitationHandler,
		JWTManager:        jwtManager,
		Authorizer:        authorizer,
	})

	// Create context for graceful shutdown
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Start mail processor
	mailProcessor.Start(ctx)

	// Create HTTP server for graceful shutdown support
	addr := fmt.Sprintf(":%s", cfg.ServerPort)
	srv := &http.Server{
		Addr:    addr,
		Handler: r,
	}

	// Start server in goroutine
	go func() {
		log.Printf("Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for shutdown signal
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	<-sigCh
	log.Println("Shutdown signal received")

	// Graceful shutdown with timeout
	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	// Shutdown HTTP server first (drain connections)
	log.Println("Shutting down HTTP server...")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("HTTP server shutdown error: %v", err)
	}

	// Cancel context to signal processor shutdown
	cancel()

	// Stop mail processor (waits for workers)
	log.Println("Stopping mail processor...")
	mailProcessor.Stop()

	log.Println("Server shutdown complete")
}
