package models

import (
	"time"

	"github.com/google/uuid"
)

// WindowedCount is the derived per-transaction result of the trailing
// window computation: how many of the same user's transactions fall in
// the 7 rows immediately preceding this one in date order, the current
// row excluded. It is computed fresh per run and never persisted.
type WindowedCount struct {
	TransactionID  uuid.UUID `gorm:"column:transaction_id" json:"transaction_id"`
	UserID         uuid.UUID `gorm:"column:user_id" json:"user_id"`
	Date           time.Time `gorm:"column:date" json:"date"`
	NoTxnLast7Days int       `gorm:"column:no_txn_last_7days" json:"no_txn_last_7days"`
}
