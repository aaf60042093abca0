// Package main provides the bookpress server executable with HTTP API and
// background publish workers.
package main

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/coregx/bookpress"
	"github.com/coregx/bookpress/adapters/relica"
	"github.com/coregx/bookpress/cmd/bookpress-server/internal/api"
	"github.com/coregx/bookpress/cmd/bookpress-server/internal/config"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	_ "github.com/go-sql-driver/mysql"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
)

// ZerologLogger implements bookpress.Logger on top of zerolog.
type ZerologLogger struct {
	logger zerolog.Logger
}

func (l *ZerologLogger) Debugf(format string, args ...interface{}) {
	l.logger.Debug().Msgf(format, args...)
}
func (l *ZerologLogger) Infof(format string, args ...interface{}) {
	l.logger.Info().Msgf(format, args...)
}
func (l *ZerologLogger) Warnf(format string, args ...interface{}) {
	l.logger.Warn().Msgf(format, args...)
}
func (l *ZerologLogger) Errorf(format string, args ...interface{}) {
	l.logger.Error().Msgf(format, args...)
}
func (l *ZerologLogger) Info(message string) {
	l.logger.Info().Msg(message)
}

func main() {
	zl := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		With().Timestamp().Logger()
	log.Logger = zl
	logger := &ZerologLogger{logger: zl}

	logger.Info("Starting bookpress server...")

	cfg, err := config.Load()
	if err != nil {
		zl.Fatal().Err(err).Msg("Failed to load configuration")
	}
	logger.Infof("Configuration loaded: server=%s:%d db=%s workers=%d interval=%dms",
		cfg.Server.Host, cfg.Server.Port, cfg.Database.Driver,
		cfg.Publishing.WorkerCount, cfg.Publishing.WorkerInterval)

	db, err := sql.Open(cfg.Database.Driver, cfg.Database.GetDSN())
	if err != nil {
		zl.Fatal().Err(err).Msg("Failed to open database")
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			logger.Errorf("Failed to close database: %v", closeErr)
		}
	}()

	if err := db.Ping(); err != nil {
		zl.Fatal().Err(err).Msg("Failed to connect to database")
	}
	logger.Info("Database connection established")

	repos := relica.NewRepositoriesWithPrefix(db, cfg.Database.Driver, cfg.Database.Prefix)

	catalog, err := bookpress.NewCatalog(repos.Catalog, logger)
	if err != nil {
		zl.Fatal().Err(err).Msg("Failed to create catalog")
	}
	ledger, err := bookpress.NewStatusLedger(repos.Status, logger)
	if err != nil {
		zl.Fatal().Err(err).Msg("Failed to create status ledger")
	}
	queue := bookpress.NewSubmissionQueue()

	var notificationService bookpress.NotificationService
	if cfg.Publishing.EnableNotifications {
		notificationService = bookpress.NewLoggingNotificationService(logger)
	} else {
		notificationService = &bookpress.NoOpNotificationService{}
	}

	submitter, err := bookpress.NewSubmitter(
		bookpress.WithSubmitterQueue(queue),
		bookpress.WithSubmitterCatalog(catalog),
		bookpress.WithSubmitterLedger(ledger),
		bookpress.WithSubmitterLogger(logger),
	)
	if err != nil {
		zl.Fatal().Err(err).Msg("Failed to create submitter")
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	interval := time.Duration(cfg.Publishing.WorkerInterval) * time.Millisecond
	for i := 0; i < cfg.Publishing.WorkerCount; i++ {
		worker, err := bookpress.NewPublishWorker(
			bookpress.WithQueue(queue),
			bookpress.WithCatalog(catalog),
			bookpress.WithLedger(ledger),
			bookpress.WithLogger(logger),
			bookpress.WithNotifications(notificationService),
		)
		if err != nil {
			zl.Fatal().Err(err).Msg("Failed to create publish worker")
		}
		go worker.Run(ctx, interval)
	}
	logger.Infof("Started %d publish workers", cfg.Publishing.WorkerCount)

	handler := api.NewHandler(submitter, catalog, ledger, logger)

	router := chi.NewRouter()
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)
	router.Use(requestLogger(logger))
	router.Mount("/api/v1", handler.Routes())

	addr := fmt.Sprintf("%s:%d", cfg.Server.Host, cfg.Server.Port)
	server := &http.Server{
		Addr:         addr,
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		logger.Infof("HTTP server listening on %s", addr)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			zl.Fatal().Err(err).Msg("Failed to start server")
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	logger.Info("Shutting down server...")

	shutdownCtx, shutdownCancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer shutdownCancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		logger.Errorf("Server forced to shutdown: %v", err)
	}

	cancel() // Stop workers
	logger.Info("Server stopped gracefully")
}

// requestLogger logs HTTP requests.
func requestLogger(logger bookpress.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			logger.Infof("%s %s", r.Method, r.URL.Path)
			next.ServeHTTP(w, r)
			logger.Debugf("%s %s - %v", r.Method, r.URL.Path, time.Since(start))
		})
	}
}
