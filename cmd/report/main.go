package main

import (
	"flag"
	"log/slog"
	"os"

	"analytics-assessment/internal/config"
	"analytics-assessment/internal/database"
	apperrors "analytics-assessment/internal/errors"
	"analytics-assessment/internal/models"
	"analytics-assessment/internal/repositories"
	"analytics-assessment/internal/services"

	"github.com/joho/godotenv"
)

const (
	reportCategory = "category"
	reportWindowed = "windowed"

	engineSQL    = "sql"
	engineMemory = "memory"
)

func main() {
	_ = godotenv.Load()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	report := flag.String("report", reportCategory, "report to produce: category or windowed")
	engine := flag.String("engine", engineSQL, "computation engine: sql or memory")
	flag.Parse()

	if *report != reportCategory && *report != reportWindowed {
		slog.Error("unknown report", "report", *report)
		os.Exit(2)
	}
	if *engine != engineSQL && *engine != engineMemory {
		slog.Error("unknown engine", "engine", *engine)
		os.Exit(2)
	}

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

	userRepo := repositories.NewUserRepository(db.DB)
	transactionRepo := repositories.NewTransactionRepository(db.DB)
	metrics := services.NewPrometheusMetrics()
	writer := services.NewReportWriter(metrics)

	switch *report {
	case reportCategory:
		err = runCategoryReport(*engine, transactionRepo, userRepo, writer)
	case reportWindowed:
		err = runWindowedReport(*engine, transactionRepo, writer)
	}
	if err != nil {
		slog.Error("report failed", "report", *report, "code", apperrors.CodeOf(err), "error", err)
		os.Exit(1)
	}
}

func runCategoryReport(
	engine string,
	transactionRepo repositories.TransactionRepositoryInterface,
	userRepo repositories.UserRepositoryInterface,
	writer services.ReportWriterInterface,
) error {
	service := services.NewAggregationService(transactionRepo, userRepo)

	var aggregates []models.CategoryAggregate
	if engine == engineMemory {
		transactions, err := transactionRepo.GetAllOrdered()
		if err != nil {
			return err
		}
		users, err := userRepo.GetAll()
		if err != nil {
			return err
		}
		aggregates = service.AggregateFromData(transactions, users)
	} else {
		var err error
		aggregates, err = service.Aggregate()
		if err != nil {
			return err
		}
	}

	return writer.WriteCategoryReport(os.Stdout, aggregates)
}

func runWindowedReport(
	engine string,
	transactionRepo repositories.TransactionRepositoryInterface,
	writer services.ReportWriterInterface,
) error {
	service := services.NewWindowCountService(transactionRepo)

	var counts []models.WindowedCount
	if engine == engineMemory {
		transactions, err := transactionRepo.GetAllOrdered()
		if err != nil {
			return err
		}
		counts = service.ComputeFromTransactions(transactions)
	} else {
		var err error
		counts, err = service.Compute()
		if err != nil {
			return err
		}
	}

	return writer.WriteWindowedCounts(os.Stdout, counts)
}
