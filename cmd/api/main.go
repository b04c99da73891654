package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/devlinks/api/internal/api"
	"github.com/devlinks/api/internal/api/handlers"
	"github.com/devlinks/api/internal/repository"
	"github.com/devlinks/api/internal/services"
	s3store "github.com/devlinks/api/internal/storage/s3"
	"github.com/devlinks/api/pkg/config"
	"github.com/devlinks/api/pkg/database"
	"github.com/devlinks/api/pkg/logger"
	"github.com/devlinks/api/pkg/token"
)

func main() {
	// Load configuration
	cfg := config.MustLoad()

	// Initialize logger
	log, err := logger.Init(cfg.LogLevel, cfg.LogFormat)
	if err != nil {
		panic(err)
	}
	defer logger.Sync()

	log.Info("Starting devLinks API",
		zap.String("env", cfg.AppEnv),
		zap.String("addr", cfg.HTTPAddr),
	)

	// Connect to database
	ctx := context.Background()
	db, err := database.OpenPostgres(ctx, cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database", zap.Error(err))
	}
	log.Info("Database connected successfully")

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	linkRepo := repository.NewLinkRepository(db)

	issuer := token.NewIssuer([]byte(cfg.JWTSecret), token.DefaultTTL)

	// Object storage for profile images; optional outside production.
	var images services.ImageStore
	if cfg.S3Bucket != "" {
		s3Client, err := s3store.NewClient(ctx, cfg)
		if err != nil {
			log.Fatal("Failed to init object storage", zap.Error(err))
		}
		images = s3Client
	} else {
		log.Warn("S3_BUCKET not set, profile image uploads disabled")
	}

	// Initialize services and handlers
	authService := services.NewAuthService(userRepo, issuer)
	linkService := services.NewLinkService(linkRepo)
	profileService := services.NewProfileService(userRepo, linkRepo, images)

	router := api.NewRouter(api.Dependencies{
		TokenIssuer:    issuer,
		CORSOrigin:     cfg.CORSOrigin,
		AuthHandler:    handlers.NewAuthHandler(authService, cfg.Production()),
		LinksHandler:   handlers.NewLinksHandler(linkService),
		ProfileHandler: handlers.NewProfileHandler(profileService),
		ReadyCheck: func(ctx context.Context) error {
			sqlDB, err := db.DB()
			if err != nil {
				return err
			}
			return sqlDB.PingContext(ctx)
		},
	})

	// Create HTTP server
	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       90 * time.Second,
	}

	// Start server in goroutine
	errCh := make(chan error, 1)
	go func() {
		log.Info("HTTP server starting", zap.String("addr", cfg.HTTPAddr))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	// Graceful shutdown
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)

	select {
	case sig := <-sigCh:
		log.Info("shutdown signal received", zap.String("signal", sig.String()))
	case err := <-errCh:
		log.Error("server error", zap.Error(err))
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("server shutdown error", zap.Error(err))
	} else {
		log.Info("server exited gracefully")
	}

	if err := database.Close(db); err != nil {
		log.Error("database close error", zap.Error(err))
	}
}
