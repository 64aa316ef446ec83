package repositories

import (
	"analytics-assessment/internal/models"

	"github.com/google/uuid"
)

// UserRepositoryInterface defines the contract for user repository operations
type UserRepositoryInterface interface {
	Create(user *models.User) error
	CreateBatch(users []models.User, batchSize int) error
	GetByID(id uuid.UUID) (*models.User, error)
	GetAll() ([]models.User, error)
	Count() (int64, error)
}

// TransactionRepositoryInterface defines the contract for transaction repository operations
type TransactionRepositoryInterface interface {
	Create(transaction *models.Transaction) error
	CreateBatch(transactions []models.Transaction, batchSize int) error
	GetByID(id uuid.UUID) (*models.Transaction, error)
	GetAllOrdered() ([]models.Transaction, error)
	Count() (int64, error)

	// Analytical queries
	GetWindowedCounts() ([]models.WindowedCount, error)
	GetCategoryAggregates() ([]models.CategoryAggregate, error)
}
