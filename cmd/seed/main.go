package main

import (
	"flag"
	"log/slog"
	"os"

	"analytics-assessment/internal/config"
	apperrors "analytics-assessment/internal/errors"
	"analytics-assessment/internal/services"

	"github.com/joho/godotenv"
)

// seed writes randomized users.csv and transactions.csv fixtures to the
// configured loader paths so the loader can be exercised without real data.
func main() {
	_ = godotenv.Load()

	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, nil)))

	userCount := flag.Int("users", 100, "number of users to generate")
	transactionCount := flag.Int("transactions", 1000, "number of transactions to generate")
	seed := flag.Uint64("seed", 0, "random seed, 0 for non-deterministic output")
	flag.Parse()

	if *userCount < 1 || *transactionCount < 1 {
		slog.Error("user and transaction counts must be positive",
			"users", *userCount,
			"transactions", *transactionCount)
		os.Exit(2)
	}

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		slog.Error("invalid configuration", "code", apperrors.CodeOf(err), "error", err)
		os.Exit(1)
	}

	generator := services.NewFixtureGenerator(*seed)

	users := generator.GenerateUsers(*userCount)
	transactions := generator.GenerateTransactions(users, *transactionCount)

	if err := generator.WriteUsersCSV(cfg.Loader.UsersPath, users); err != nil {
		slog.Error("failed to write users fixture", "path", cfg.Loader.UsersPath, "error", err)
		os.Exit(1)
	}
	slog.Info("users fixture written", "path", cfg.Loader.UsersPath, "rows", len(users))

	if err := generator.WriteTransactionsCSV(cfg.Loader.TransactionsPath, transactions); err != nil {
		slog.Error("failed to write transactions fixture", "path", cfg.Loader.TransactionsPath, "error", err)
		os.Exit(1)
	}
	slog.Info("transactions fixture written", "path", cfg.Loader.TransactionsPath, "rows", len(transactions))
}
