package main

import (
	"context"
	"database/sql"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/joho/godotenv"
	"github.com/passgen/passgen-go/internal/config"
	"github.com/passgen/passgen-go/internal/handler"
	"github.com/passgen/passgen-go/internal/middleware"
	"github.com/passgen/passgen-go/internal/repository"
	"github.com/passgen/passgen-go/internal/service"
	"github.com/passgen/passgen-go/internal/wordlist"
)

var version = "dev" // set by the linker

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Warn("no .env file found, using environment variables")
	}

	cfg, err := config.Load()
	if err != nil {
		slog.Error("invalid configuration", "error", err)
		os.Exit(1)
	}

	vocabulary, err := wordlist.Load(cfg.WordlistPath)
	if err != nil {
		slog.Error("failed to load word list", "path", cfg.WordlistPath, "error", err)
		os.Exit(1)
	}
	slog.Info("word list loaded", "words", len(vocabulary))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	var (
		recorder  service.StatsRecorder
		statsRepo *repository.StatsRepository
		db        *sql.DB
	)
	if cfg.StatsEnabled {
		db, statsRepo = openStats(ctx, cfg)
		if statsRepo != nil {
			recorder = statsRepo
			defer db.Close()
		}
	}

	genHandler := handler.NewGeneratorHandler(service.NewGeneratorService(vocabulary, recorder))
	strengthHandler := handler.NewStrengthHandler(service.NewStrengthService())
	exportHandler := handler.NewExportHandler(service.NewExportService("passgen-go " + version))

	r := chi.NewRouter()
	r.Use(middleware.Logger)

	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("ok"))
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RateLimit(ctx, cfg.RateLimitRPS, cfg.RateLimitBurst))
		r.Post("/api/v1/generate", genHandler.HandleGenerate)
	})
	r.Post("/api/v1/strength", strengthHandler.HandleStrength)
	r.Post("/api/v1/export", exportHandler.HandleExport)

	if statsRepo != nil {
		statsHandler := handler.NewStatsHandler(service.NewStatsService(statsRepo))
		r.Get("/api/v1/stats", statsHandler.HandleStats)
	}

	srv := &http.Server{
		Addr:              ":" + cfg.Port,
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
	}

	go func() {
		slog.Info("server starting", "port", cfg.Port, "env", cfg.Env, "version", version)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()

	slog.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		slog.Error("server forced shutdown", "error", err)
		os.Exit(1)
	}

	slog.Info("server stopped")
}

// openStats connects the statistics database. Failures disable statistics
// rather than stopping the server.
func openStats(ctx context.Context, cfg config.Config) (*sql.DB, *repository.StatsRepository) {
	db, err := repository.NewDB(cfg.DatabaseDriver, cfg.DatabaseDSN)
	if err != nil {
		slog.Warn("database connection failed, stats disabled", "driver", cfg.DatabaseDriver, "error", err)
		return nil, nil
	}

	repo := repository.NewStatsRepository(db, cfg.DatabaseDriver)
	if err := repo.EnsureSchema(ctx); err != nil {
		slog.Warn("stats schema setup failed, stats disabled", "driver", cfg.DatabaseDriver, "error", err)
		db.Close()
		return nil, nil
	}

	slog.Info("stats enabled", "driver", cfg.DatabaseDriver)
	return db, repo
}
