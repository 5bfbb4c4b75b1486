package main

import (
	"context"
	"errors"
	"log"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/phillip/youth-portal/auth"
	"github.com/phillip/youth-portal/config"
	"github.com/phillip/youth-portal/database"
	_ "github.com/phillip/youth-portal/docs"
	"github.com/phillip/youth-portal/middleware"
	"github.com/phillip/youth-portal/repository"
	"github.com/phillip/youth-portal/routes"
	"github.com/phillip/youth-portal/services"
	"github.com/phillip/youth-portal/storage"
	"github.com/phillip/youth-portal/utils"
)

//go:generate swag init -g main.go -o docs

// @title                       Youth Portal API
// @version                     1.0
// @description                 Membership, events, announcements and donations for a youth organization.
// @BasePath                    /api
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatalf("Invalid configuration: %v", err)
	}
	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// --- Database ---
	store, err := database.Connect(ctx, cfg)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer func() {
		closeCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := store.Close(closeCtx); err != nil {
			log.Printf("Failed to close database: %v", err)
		}
	}()

	if err := store.EnsureIndexes(ctx); err != nil {
		log.Fatalf("Failed to create indexes: %v", err)
	}

	// --- Uploads ---
	var images storage.ImageStore
	if cfg.CloudinaryEnabled() {
		cld, err := storage.NewCloudinaryStore(cfg.CloudinaryCloudName, cfg.CloudinaryAPIKey, cfg.CloudinaryAPISecret)
		if err != nil {
			log.Fatalf("Failed to initialise Cloudinary: %v", err)
		}
		images = cld
		log.Println("Image uploads go to Cloudinary")
	} else {
		images = storage.NewLocalStore(cfg.UploadDir)
		log.Printf("Image uploads go to %s", cfg.UploadDir)
	}

	// --- Services ---
	userRepo := repository.NewUserRepository(store)
	eventRepo := repository.NewEventRepository(store)
	announcementRepo := repository.NewAnnouncementRepository(store)
	donationRepo := repository.NewDonationRepository(store)

	mailer := utils.NewZeptoMailer(cfg.ZeptoAPIURL, cfg.ZeptoAPIKey, cfg.EmailFrom, cfg.EmailFromName)
	emailSvc := services.NewEmailService(mailer, userRepo, cfg.ContactInbox)
	tokens := auth.NewTokenManager(cfg.JWTSecret, cfg.JWTExpiresIn)

	svc := &routes.Services{
		Auth:          services.NewAuthService(userRepo, tokens),
		Users:         services.NewUserService(userRepo, emailSvc),
		Events:        services.NewEventService(eventRepo, userRepo, images, cfg.RegistrationTimeout),
		Announcements: services.NewAnnouncementService(announcementRepo, images),
		Donations:     services.NewDonationService(donationRepo),
		Admin:         services.NewAdminService(userRepo, eventRepo, announcementRepo, donationRepo),
		Email:         emailSvc,
	}

	// --- Router ---
	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery(), middleware.RequestID(), cors.New(corsConfig(cfg)))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})
	r.GET("/swagger/*any", gin.WrapH(httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json"))))
	if !cfg.CloudinaryEnabled() {
		r.Static(storage.URLPrefix, cfg.UploadDir)
	}

	routes.SetupRoutes(r, cfg, svc)

	// --- Serve ---
	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		log.Printf("Server starting on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			log.Fatalf("Server failed to start: %v", err)
		}
	}()

	<-ctx.Done()
	log.Println("Shutting down server...")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Printf("Server forced to shut down: %v", err)
	}
}

func corsConfig(cfg *config.Config) cors.Config {
	c := cors.DefaultConfig()
	if cfg.AllowAllOrigins() {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = cfg.CORSOrigins
	}
	c.AddAllowHeaders("Authorization", middleware.RequestIDHeader)
	c.AddExposeHeaders("Content-Disposition", "ETag", middleware.RequestIDHeader)
	return c
}
