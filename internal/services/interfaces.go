package services

import (
	"io"
	"time"

	"analytics-assessment/internal/models"
)

// LoadResult reports one CSV file load.
type LoadResult struct {
	Path       string
	RowsLoaded int
	Duration   time.Duration
}

// LoaderServiceInterface loads the assessment CSV files into the database
type LoaderServiceInterface interface {
	// LoadUsers parses users.csv and inserts the rows in batches
	LoadUsers(path string) (*LoadResult, error)

	// LoadTransactions parses transactions.csv and inserts the rows in batches
	LoadTransactions(path string) (*LoadResult, error)

	// LoadAll loads users first, then transactions, using the configured paths
	LoadAll() ([]*LoadResult, error)
}

// WindowCountServiceInterface computes, per transaction, how many of the same
// user's seven immediately preceding transactions exist
type WindowCountServiceInterface interface {
	// Compute runs the window query against the database
	Compute() ([]models.WindowedCount, error)

	// ComputeFromTransactions computes the same counts in memory from an
	// unordered transaction slice
	ComputeFromTransactions(transactions []models.Transaction) []models.WindowedCount
}

// AggregationServiceInterface produces the per-category sum and distinct user count
type AggregationServiceInterface interface {
	// Aggregate runs the grouping query against the database
	Aggregate() ([]models.CategoryAggregate, error)

	// AggregateFromData computes the same aggregates in memory
	AggregateFromData(transactions []models.Transaction, users []models.User) []models.CategoryAggregate
}

// ReportWriterInterface renders computation results as line-oriented text
type ReportWriterInterface interface {
	WriteCategoryReport(w io.Writer, aggregates []models.CategoryAggregate) error
	WriteWindowedCounts(w io.Writer, counts []models.WindowedCount) error
}

// FixtureGeneratorInterface generates realistic CSV fixtures for local runs
type FixtureGeneratorInterface interface {
	GenerateUsers(count int) []models.User
	GenerateTransactions(users []models.User, count int) []models.Transaction
	WriteUsersCSV(path string, users []models.User) error
	WriteTransactionsCSV(path string, transactions []models.Transaction) error
}

type MetricsRecorderInterface interface {
	IncrementCounter(name string, tags map[string]string)
	RecordProcessingTime(name string, duration time.Duration)
	RecordGauge(name string, value float64, tags map[string]string)
}
