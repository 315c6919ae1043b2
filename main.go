package main

import (
	"context"
	"errors"
	"io"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/budget-planner/backend/internal/config"
	"github.com/budget-planner/backend/internal/controllers"
	"github.com/budget-planner/backend/internal/models"
	"github.com/budget-planner/backend/internal/password"
	"github.com/budget-planner/backend/internal/router"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"golang.org/x/sync/errgroup"
)

//	@title			Budget Planner
//	@description	The backend for Budget Planner. Track expenses in your wallet and share budgets with others.
//	@license.name	MIT
//	@securityDefinitions.basic	BasicAuth
func main() {
	// A .env file is optional, the environment always takes precedence
	if err := godotenv.Load(); err != nil && !errors.Is(err, os.ErrNotExist) {
		log.Fatal().Err(err).Msg("Loading .env file")
	}

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		log.Fatal().Err(err).Msg("Configuration")
	}

	// gin uses debug as the default mode, we use release for
	// security reasons
	if cfg.GinMode == "" {
		cfg.GinMode = gin.ReleaseMode
	}
	gin.SetMode(cfg.GinMode)

	// Log format can be explicitly set.
	// If it is not set, it defaults to human readable for development
	// and JSON for release
	output := io.Writer(os.Stdout)
	if (cfg.LogFormat == "" && gin.IsDebugging()) || cfg.LogFormat == "human" {
		output = zerolog.ConsoleWriter{Out: os.Stdout}
	}

	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if gin.IsDebugging() {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
	log.Logger = log.Output(output).With().Timestamp().Logger()

	url, err := cfg.BaseURL()
	if err != nil {
		log.Fatal().Err(err).Msg("Configuration")
	}

	// Create the directory for the SQLite database
	if !models.IsPostgres(cfg.DatabaseURL) {
		err = os.MkdirAll(filepath.Dir(cfg.DatabaseURL), os.ModePerm)
		if err != nil {
			log.Fatal().Err(err).Msg("Creating data directory")
		}
	}

	db, err := models.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatal().Err(err).Msg("Database")
	}

	co := controllers.Controller{
		DB:                  db,
		Passwords:           password.Hasher{Rounds: cfg.PasswordHashRounds},
		ProtectBudgetRoutes: cfg.ProtectBudgetRoutes,
	}

	r, teardown, err := router.Config(cfg)
	defer teardown()
	if err != nil {
		log.Fatal().Err(err).Msg("Router")
	}
	router.AttachRoutes(co, r.Group(url.Path), cfg)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		log.Info().Str("addr", srv.Addr).Msg("Starting server")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		log.Info().Msg("Shutting down server")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	})

	if err := g.Wait(); err != nil {
		log.Error().Err(err).Msg("Server")
	}

	if sqlDB, err := db.DB(); err == nil {
		sqlDB.Close()
	}

	log.Info().Msg("Server stopped")
}
