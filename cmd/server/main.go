package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"dad-circles-backend/internal/api/routes"
	"dad-circles-backend/internal/app"
	"dad-circles-backend/internal/auth"
	"dad-circles-backend/internal/config"
	"dad-circles-backend/internal/database"
	"dad-circles-backend/internal/logger"
	"dad-circles-backend/internal/scheduler"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"

	_ "dad-circles-backend/docs" // This is needed for swag
)

//	@title			Dad Circles Backend API
//	@version		1.0
//	@description	Matching and group lifecycle API for Dad Circles: member intake, matching passes, group approval with introductions.

//	@host		localhost:8080
//	@BasePath	/api/v1

//	@securityDefinitions.apikey	BearerAuth
//	@in							header
//	@name						Authorization
//	@description				Type "Bearer" followed by a space and JWT token.

const shutdownTimeout = 15 * time.Second

func main() {
	// Load environment variables from .env file in development
	if err := godotenv.Load(); err != nil {
		logrus.Info("No .env file found, using system environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		logrus.Fatal("Failed to load configuration: ", err)
	}

	logger.Setup(cfg.LogLevel, os.Stdout)
	log := logger.New()

	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		log.Fatal("Failed to initialize database: ", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	a, err := app.New(ctx, cfg, db)
	if err != nil {
		log.Fatal("Failed to wire services: ", err)
	}
	defer a.Close()

	tokens, err := auth.NewTokenService(cfg.JWTSecret, 0)
	if err != nil {
		log.Fatal("Failed to initialize token service: ", err)
	}

	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := routes.SetupRoutes(db, cfg, a, tokens)

	every, err := cfg.MatchEvery()
	if err != nil {
		log.Fatal("Invalid matching interval: ", err)
	}
	matcher := scheduler.NewMatchScheduler(a.Matching, every)
	matcher.Start(ctx)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Infof("Starting server on port %s", cfg.Port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			serveErr <- err
		}
		close(serveErr)
	}()

	select {
	case err := <-serveErr:
		if err != nil {
			matcher.Stop()
			log.Fatal("Failed to start server: ", err)
		}
	case <-ctx.Done():
		log.Info("Shutdown signal received")
	}

	// In-flight passes and approvals finish before the process exits.
	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.WithError(err).Error("Server shutdown failed")
	}
	matcher.Stop()
	log.Info("Server stopped")
}
