package models

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var (
	ErrMissingTransactionID = errors.New("transaction ID is required")
	ErrMissingUserID        = errors.New("user ID is required")
	ErrMissingDate          = errors.New("transaction date is required")
	ErrNegativeCategoryID   = errors.New("transaction category ID must not be negative")
)

// Transaction represents a single row of transactions.csv once loaded.
// Rows are immutable after loading; there are no update paths.
type Transaction struct {
	TransactionID         uuid.UUID       `gorm:"type:uuid;primary_key;column:transaction_id" json:"transaction_id"`
	Date                  time.Time       `gorm:"type:date;not null;index" json:"date"`
	UserID                uuid.UUID       `gorm:"type:uuid;not null;index" json:"user_id"`
	IsBlocked             bool            `gorm:"not null" json:"is_blocked"`
	TransactionAmount     decimal.Decimal `gorm:"type:decimal(15,2);not null" json:"transaction_amount"`
	TransactionCategoryID int             `gorm:"not null;index" json:"transaction_category_id"`
}

// BeforeCreate hook for Transaction
func (t *Transaction) BeforeCreate(tx *gorm.DB) error {
	return t.Validate()
}

// Validate validates the transaction fields
func (t *Transaction) Validate() error {
	if t.TransactionID == uuid.Nil {
		return ErrMissingTransactionID
	}

	if t.UserID == uuid.Nil {
		return ErrMissingUserID
	}

	if t.Date.IsZero() {
		return ErrMissingDate
	}

	if t.TransactionCategoryID < 0 {
		return ErrNegativeCategoryID
	}

	return nil
}

// TableName returns the table name for Transaction
func (t *Transaction) TableName() string {
	return "transactions"
}
