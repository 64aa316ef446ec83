package services

import (
	"fmt"
	"log/slog"
	"time"

	"analytics-assessment/internal/config"
	"analytics-assessment/internal/ingest"
	"analytics-assessment/internal/repositories"
)

const (
	entityUsers        = "users"
	entityTransactions = "transactions"
)

type loaderService struct {
	cfg             config.LoaderConfig
	reader          *ingest.Reader
	userRepo        repositories.UserRepositoryInterface
	transactionRepo repositories.TransactionRepositoryInterface
	metrics         MetricsRecorderInterface
}

func NewLoaderService(
	cfg config.LoaderConfig,
	reader *ingest.Reader,
	userRepo repositories.UserRepositoryInterface,
	transactionRepo repositories.TransactionRepositoryInterface,
	metrics MetricsRecorderInterface,
) LoaderServiceInterface {
	return &loaderService{
		cfg:             cfg,
		reader:          reader,
		userRepo:        userRepo,
		transactionRepo: transactionRepo,
		metrics:         metrics,
	}
}

func (s *loaderService) LoadUsers(path string) (*LoadResult, error) {
	start := time.Now()

	users, err := s.reader.ReadUsers(path)
	if err != nil {
		s.metrics.IncrementCounter("loader.failed", map[string]string{"entity": entityUsers, "stage": "parse"})
		slog.Error("failed to parse users csv", "path", path, "error", err)
		return nil, fmt.Errorf("failed to parse users csv: %w", err)
	}

	if err := s.userRepo.CreateBatch(users, s.cfg.BatchSize); err != nil {
		s.metrics.IncrementCounter("loader.failed", map[string]string{"entity": entityUsers, "stage": "insert"})
		slog.Error("failed to insert users", "path", path, "rows", len(users), "error", err)
		return nil, fmt.Errorf("failed to insert users: %w", err)
	}

	s.recordLoad(entityUsers, len(users), time.Since(start))

	result := &LoadResult{Path: path, RowsLoaded: len(users), Duration: time.Since(start)}
	slog.Info("users loaded",
		"path", path,
		"rows", result.RowsLoaded,
		"batch_size", s.cfg.BatchSize,
		"duration_ms", result.Duration.Milliseconds())
	return result, nil
}

func (s *loaderService) LoadTransactions(path string) (*LoadResult, error) {
	start := time.Now()

	transactions, err := s.reader.ReadTransactions(path)
	if err != nil {
		s.metrics.IncrementCounter("loader.failed", map[string]string{"entity": entityTransactions, "stage": "parse"})
		slog.Error("failed to parse transactions csv", "path", path, "error", err)
		return nil, fmt.Errorf("failed to parse transactions csv: %w", err)
	}

	if err := s.transactionRepo.CreateBatch(transactions, s.cfg.BatchSize); err != nil {
		s.metrics.IncrementCounter("loader.failed", map[string]string{"entity": entityTransactions, "stage": "insert"})
		slog.Error("failed to insert transactions", "path", path, "rows", len(transactions), "error", err)
		return nil, fmt.Errorf("failed to insert transactions: %w", err)
	}

	s.recordLoad(entityTransactions, len(transactions), time.Since(start))

	result := &LoadResult{Path: path, RowsLoaded: len(transactions), Duration: time.Since(start)}
	slog.Info("transactions loaded",
		"path", path,
		"rows", result.RowsLoaded,
		"batch_size", s.cfg.BatchSize,
		"duration_ms", result.Duration.Milliseconds())
	return result, nil
}

// LoadAll loads users before transactions so every transaction row can join
// against a users row that is already present.
func (s *loaderService) LoadAll() ([]*LoadResult, error) {
	userResult, err := s.LoadUsers(s.cfg.UsersPath)
	if err != nil {
		return nil, err
	}

	transactionResult, err := s.LoadTransactions(s.cfg.TransactionsPath)
	if err != nil {
		return nil, err
	}

	return []*LoadResult{userResult, transactionResult}, nil
}

func (s *loaderService) recordLoad(entity string, rows int, duration time.Duration) {
	batchSize := s.cfg.BatchSize
	if batchSize < 1 {
		batchSize = 1
	}
	for i := 0; i < rows; i += batchSize {
		s.metrics.IncrementCounter("loader.batch.written", map[string]string{"entity": entity})
	}
	s.metrics.RecordGauge("loader.rows.loaded", float64(rows), map[string]string{"entity": entity})
	s.metrics.RecordGauge("dataset.rows", float64(rows), map[string]string{"entity": entity})
	s.metrics.RecordProcessingTime("loader."+entity, duration)
}
