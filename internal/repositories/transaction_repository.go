package repositories

import (
	"errors"
	"fmt"

	apperrors "analytics-assessment/internal/errors"
	"analytics-assessment/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var (
	ErrTransactionNotFound = errors.New("transaction not found")
)

// transactionRepository implements TransactionRepositoryInterface
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *gorm.DB) TransactionRepositoryInterface {
	return &transactionRepository{
		db: db,
	}
}

// Create creates a new transaction
func (r *transactionRepository) Create(transaction *models.Transaction) error {
	if err := r.db.Create(transaction).Error; err != nil {
		return fmt.Errorf("failed to create transaction: %w", err)
	}
	return nil
}

// CreateBatch inserts transactions in fixed-size chunks inside one database
// transaction. Chunking bounds the size of each insert round trip; it has no
// effect on what ends up in the table.
func (r *transactionRepository) CreateBatch(transactions []models.Transaction, batchSize int) error {
	if len(transactions) == 0 {
		return nil
	}

	if batchSize < 1 {
		batchSize = 1
	}

	return r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.CreateInBatches(&transactions, batchSize).Error; err != nil {
			return apperrors.Wrap(apperrors.DatabaseInsertFailed,
				fmt.Errorf("failed to create batch transactions: %w", err))
		}
		return nil
	})
}

// GetByID retrieves a transaction by ID
func (r *transactionRepository) GetByID(id uuid.UUID) (*models.Transaction, error) {
	transaction := &models.Transaction{TransactionID: id}
	if err := r.db.First(transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrTransactionNotFound
		}
		return nil, fmt.Errorf("failed to get transaction: %w", err)
	}
	return transaction, nil
}

// GetAllOrdered retrieves every transaction ordered by (user_id, date,
// transaction_id), the ordering the window computation expects.
// transaction_id breaks ties between same-day transactions so the result is
// deterministic regardless of insert order.
func (r *transactionRepository) GetAllOrdered() ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := r.db.Order("user_id ASC, date ASC, transaction_id ASC").
		Find(&transactions).Error; err != nil {
		return nil, fmt.Errorf("failed to get transactions: %w", err)
	}
	return transactions, nil
}

// Count returns the number of loaded transactions
func (r *transactionRepository) Count() (int64, error) {
	var total int64
	if err := r.db.Model(&models.Transaction{}).Count(&total).Error; err != nil {
		return 0, fmt.Errorf("failed to count transactions: %w", err)
	}
	return total, nil
}

// GetWindowedCounts computes, per transaction, the number of the same user's
// transactions within the 7 rows immediately preceding it in date order,
// excluding the current row. The frame counts preceding rows, not a 7-day
// calendar interval.
func (r *transactionRepository) GetWindowedCounts() ([]models.WindowedCount, error) {
	var counts []models.WindowedCount

	query := `
		SELECT
			transaction_id,
			user_id,
			date,
			COUNT(*) OVER (
				PARTITION BY user_id
				ORDER BY date, transaction_id
				ROWS BETWEEN 7 PRECEDING AND 1 PRECEDING
			) AS no_txn_last_7days
		FROM transactions
		ORDER BY user_id, date, transaction_id
	`

	if err := r.db.Raw(query).Scan(&counts).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.DatabaseQueryFailed,
			fmt.Errorf("failed to get windowed counts: %w", err))
	}

	return counts, nil
}

// GetCategoryAggregates computes the per-category sum of amounts and distinct
// user count over unblocked transactions whose owning user is active.
// Transactions referencing unknown users drop out of the inner join.
func (r *transactionRepository) GetCategoryAggregates() ([]models.CategoryAggregate, error) {
	var aggregates []models.CategoryAggregate

	query := `
		SELECT
			t.transaction_category_id,
			SUM(t.transaction_amount) AS sum_amount,
			COUNT(DISTINCT t.user_id) AS num_users
		FROM transactions t
		JOIN users u ON u.user_id = t.user_id
		WHERE t.is_blocked = ? AND u.is_active = ?
		GROUP BY t.transaction_category_id
		ORDER BY t.transaction_category_id ASC
	`

	if err := r.db.Raw(query, false, true).Scan(&aggregates).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.DatabaseQueryFailed,
			fmt.Errorf("failed to get category aggregates: %w", err))
	}

	return aggregates, nil
}
