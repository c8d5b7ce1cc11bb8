package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"looncamp-backend/config"
	"looncamp-backend/controllers"
	"looncamp-backend/routes"
	"looncamp-backend/services"
	"looncamp-backend/utils"
)

func main() {
	cfg := config.Load()

	db, err := config.ConnectDatabase(cfg)
	if err != nil {
		log.Fatalf("❌ Database connect failed: %v", err)
	}
	log.Println("✅ Database connection established and migrations applied.")

	redisClient := config.ConnectRedis(cfg)

	var revocations services.RevocationStore
	if redisClient != nil {
		revocations = services.NewRedisRevocationStore(redisClient)
	}

	var uploader services.ImageUploader = services.LocalImageStore{Dir: cfg.UploadDir, BaseURL: "/uploads"}
	serveUploads := cfg.UploadDir
	if cfg.CloudinaryEnabled() {
		cld, err := services.NewCloudinaryUploader(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret, "looncamp")
		if err != nil {
			log.Fatalf("❌ Cloudinary config invalid: %v", err)
		}
		uploader = cld
		serveUploads = ""
		log.Println("✅ Cloudinary image hosting enabled.")
	} else {
		log.Printf("⚠️  Cloudinary credentials missing; images are stored under %s", cfg.UploadDir)
	}

	// Initialize services
	tokens := utils.NewTokenManager(cfg.JWTSecret, cfg.JWTExpiry)
	authService := services.NewAuthService(db, tokens, revocations)
	categoryService := services.NewCategoryService(db)
	propertyService := services.NewPropertyService(db, categoryService)
	imageService := services.NewImageService(uploader, cfg.UploadMaxBytes)

	router := routes.SetupRouter(routes.Options{
		Auth:          controllers.NewAuthController(authService),
		Properties:    controllers.NewPropertyController(propertyService),
		Settings:      controllers.NewSettingsController(categoryService),
		Uploads:       controllers.NewUploadController(imageService),
		Authenticator: authService,
		Redis:         redisClient,
		LoginLimit:    cfg.LoginRateLimit,
		CORSOrigins:   cfg.CORSOrigins,
		UploadDir:     serveUploads,
	})

	addr := ":" + cfg.Port
	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       60 * time.Second, // image uploads
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("🚀 LoonCamp API starting on %s (API base /api)", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("❌ ListenAndServe(): %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("⚠️  Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("❌ Server forced to shutdown: %v", err)
	}

	if sqlDB, err := db.DB(); err == nil {
		_ = sqlDB.Close()
	}
	if redisClient != nil {
		_ = redisClient.Close()
	}
	log.Println("✅ Server stopped gracefully")
}
