package services

import (
	"fmt"
	"log/slog"
	"sort"

	"analytics-assessment/internal/models"
	"analytics-assessment/internal/repositories"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type aggregationService struct {
	transactionRepo repositories.TransactionRepositoryInterface
	userRepo        repositories.UserRepositoryInterface
}

func NewAggregationService(
	transactionRepo repositories.TransactionRepositoryInterface,
	userRepo repositories.UserRepositoryInterface,
) AggregationServiceInterface {
	return &aggregationService{
		transactionRepo: transactionRepo,
		userRepo:        userRepo,
	}
}

func (s *aggregationService) Aggregate() ([]models.CategoryAggregate, error) {
	aggregates, err := s.transactionRepo.GetCategoryAggregates()
	if err != nil {
		slog.Error("failed to compute category aggregates", "error", err)
		return nil, fmt.Errorf("failed to compute category aggregates: %w", err)
	}

	slog.Info("category aggregates computed", "categories", len(aggregates))
	return aggregates, nil
}

// AggregateFromData mirrors the grouping query without a database. A
// transaction contributes only when it is not blocked and its user exists
// and is active; everything else is dropped, never zero-filled.
func (s *aggregationService) AggregateFromData(transactions []models.Transaction, users []models.User) []models.CategoryAggregate {
	activeUsers := make(map[uuid.UUID]bool, len(users))
	for _, user := range users {
		if user.IsActive {
			activeUsers[user.UserID] = true
		}
	}

	type bucket struct {
		sum   decimal.Decimal
		users map[uuid.UUID]struct{}
	}

	buckets := make(map[int]*bucket)
	for _, txn := range transactions {
		if txn.IsBlocked || !activeUsers[txn.UserID] {
			continue
		}

		b, ok := buckets[txn.TransactionCategoryID]
		if !ok {
			b = &bucket{sum: decimal.Zero, users: make(map[uuid.UUID]struct{})}
			buckets[txn.TransactionCategoryID] = b
		}
		b.sum = b.sum.Add(txn.TransactionAmount)
		b.users[txn.UserID] = struct{}{}
	}

	aggregates := make([]models.CategoryAggregate, 0, len(buckets))
	for categoryID, b := range buckets {
		aggregates = append(aggregates, models.CategoryAggregate{
			TransactionCategoryID: categoryID,
			SumAmount:             b.sum,
			NumUsers:              len(b.users),
		})
	}

	sort.Slice(aggregates, func(i, j int) bool {
		return aggregates[i].TransactionCategoryID < aggregates[j].TransactionCategoryID
	})

	return aggregates
}
