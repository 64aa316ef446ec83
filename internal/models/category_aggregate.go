package models

import "github.com/shopspring/decimal"

// CategoryAggregate contains aggregated transaction data per category:
// the sum of amounts and the count of distinct users, restricted to
// unblocked transactions owned by active users.
type CategoryAggregate struct {
	TransactionCategoryID int             `gorm:"column:transaction_category_id" json:"transaction_category_id"`
	SumAmount             decimal.Decimal `gorm:"column:sum_amount" json:"sum_amount"`
	NumUsers              int             `gorm:"column:num_users" json:"num_users"`
}
