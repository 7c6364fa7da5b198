// Command server runs the content and enquiry backend for the Advaithaa
// marketing site. It wires configuration, logging, tracing, the SQLite
// store, the admin session table, the enquiry mail dispatcher, and the HTTP
// router, then serves until interrupted.
package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/advaithaa/realty-backend/internal/config"
	httpapi "github.com/advaithaa/realty-backend/internal/http"
	"github.com/advaithaa/realty-backend/internal/notify"
	"github.com/advaithaa/realty-backend/internal/observability"
	"github.com/advaithaa/realty-backend/internal/repo"
	"github.com/advaithaa/realty-backend/internal/session"
	"github.com/advaithaa/realty-backend/internal/storage"
	"github.com/advaithaa/realty-backend/internal/sysutil"
)

const version = "1.0.0"

func main() {
	if err := run(); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

func run() error {
	// .env is optional; real deployments set the environment directly.
	_ = godotenv.Load()

	cfg := config.MustLoad()

	sysutil.SetLogLevel(cfg.LogLevel)
	if cfg.LogPretty {
		log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339})
	}
	gin.SetMode(cfg.GinMode)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	shutdownOTel, err := observability.SetupOTel(ctx, cfg.OTEL, version)
	if err != nil {
		return err
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownOTel(shutdownCtx); err != nil {
			log.Warn().Err(err).Msg("otel shutdown")
		}
	}()

	db, err := repo.OpenSQLite(cfg.DBPath)
	if err != nil {
		return err
	}
	defer func() {
		if sqlDB, err := db.DB(); err == nil {
			_ = sqlDB.Close()
		}
	}()
	if cfg.OTEL.Enabled {
		if err := repo.EnableTracing(db); err != nil {
			return err
		}
	}
	if err := repo.AutoMigrate(db); err != nil {
		return err
	}
	if cfg.SeedOnBoot {
		seeded, err := repo.Seed(ctx, db)
		if err != nil {
			return err
		}
		if seeded {
			log.Info().Msg("demo content seeded")
		}
	}

	sessions := session.NewManager(cfg.SessionTTL)

	dispatcher := notify.NewDispatcher(notify.NewSMTPMailer(cfg.SMTP), cfg.SMTP.To, cfg.SMTP.Timeout)
	if cfg.SMTP.To == "" {
		log.Warn().Msg("ENQUIRY_RECIPIENT unset; enquiry notifications will fail silently")
	}

	uploads, err := storage.NewStore(cfg.Upload.Dir, cfg.Upload.MaxBytes)
	if err != nil {
		return err
	}

	r := gin.New()
	httpapi.RegisterRoutes(r, db, sessions, dispatcher, uploads, cfg)

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadTimeout:       cfg.ReadTimeout,
		ReadHeaderTimeout: cfg.ReadHeaderTimeout,
		WriteTimeout:      cfg.WriteTimeout,
		IdleTimeout:       cfg.IdleTimeout,
		MaxHeaderBytes:    cfg.MaxHeaderBytes,
	}

	serveErr := make(chan error, 1)
	go func() {
		log.Info().
			Str("addr", srv.Addr).
			Str("base_path", cfg.APIBasePath).
			Str("version", version).
			Msg("server listening")
		serveErr <- srv.ListenAndServe()
	}()

	select {
	case err := <-serveErr:
		if err != nil && !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	case <-ctx.Done():
		log.Info().Msg("shutdown signal received")
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Warn().Err(err).Msg("http shutdown")
	}

	// Let in-flight enquiry notifications finish before the process exits.
	dispatcher.Wait()

	log.Info().Msg("server stopped")
	return nil
}
