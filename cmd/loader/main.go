package main

import (
	"log/slog"
	"os"

	"analytics-assessment/internal/config"
	"analytics-assessment/internal/database"
	apperrors "analytics-assessment/internal/errors"
	"analytics-assessment/internal/ingest"
	"analytics-assessment/internal/repositories"
	"analytics-assessment/internal/services"

	"github.com/joho/godotenv"
)

func main() {
	_ = godotenv.Load()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", "code", apperrors.CodeOf(err), "error", err)
		os.Exit(1)
	}

	db, err := database.Initialize(cfg)
	if err != nil {
		slog.Error("failed to initialize database", "code", apperrors.CodeOf(err), "error", err)
		os.Exit(1)
	}

	loader := services.NewLoaderService(
		cfg.Loader,
		ingest.NewReader(),
		repositories.NewUserRepository(db.DB),
		repositories.NewTransactionRepository(db.DB),
		services.NewPrometheusMetrics(),
	)

	results, err := loader.LoadAll()
	if err != nil {
		slog.Error("load failed", "code", apperrors.CodeOf(err), "error", err)
		os.Exit(1)
	}

	for _, result := range results {
		slog.Info("load complete",
			"path", result.Path,
			"rows", result.RowsLoaded,
			"duration_ms", result.Duration.Milliseconds())
	}
}
