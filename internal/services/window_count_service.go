package services

import (
	"bytes"
	"fmt"
	"log/slog"
	"sort"

	"analytics-assessment/internal/models"
	"analytics-assessment/internal/repositories"
)

// windowSize is the number of preceding rows inspected per transaction.
const windowSize = 7

type windowCountService struct {
	transactionRepo repositories.TransactionRepositoryInterface
}

func NewWindowCountService(transactionRepo repositories.TransactionRepositoryInterface) WindowCountServiceInterface {
	return &windowCountService{transactionRepo: transactionRepo}
}

func (s *windowCountService) Compute() ([]models.WindowedCount, error) {
	counts, err := s.transactionRepo.GetWindowedCounts()
	if err != nil {
		slog.Error("failed to compute windowed counts", "error", err)
		return nil, fmt.Errorf("failed to compute windowed counts: %w", err)
	}

	slog.Info("windowed counts computed", "rows", len(counts))
	return counts, nil
}

// ComputeFromTransactions mirrors the window query without a database. Rows
// are ordered per user by date, with transaction_id breaking date ties, and
// each row's count is its zero-based position capped at the window size.
func (s *windowCountService) ComputeFromTransactions(transactions []models.Transaction) []models.WindowedCount {
	ordered := make([]models.Transaction, len(transactions))
	copy(ordered, transactions)

	sort.Slice(ordered, func(i, j int) bool {
		a, b := ordered[i], ordered[j]
		if c := bytes.Compare(a.UserID[:], b.UserID[:]); c != 0 {
			return c < 0
		}
		if !a.Date.Equal(b.Date) {
			return a.Date.Before(b.Date)
		}
		return bytes.Compare(a.TransactionID[:], b.TransactionID[:]) < 0
	})

	counts := make([]models.WindowedCount, 0, len(ordered))
	position := 0
	for i, txn := range ordered {
		if i > 0 && ordered[i-1].UserID == txn.UserID {
			position++
		} else {
			position = 0
		}

		count := position
		if count > windowSize {
			count = windowSize
		}

		counts = append(counts, models.WindowedCount{
			TransactionID:  txn.TransactionID,
			UserID:         txn.UserID,
			Date:           txn.Date,
			NoTxnLast7Days: count,
		})
	}

	return counts
}
