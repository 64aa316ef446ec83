package services

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"time"

	"analytics-assessment/internal/models"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	fixtureCategoryCount = 10
	fixtureBlockedRatio  = 15 // percent
	fixtureInactiveRatio = 20 // percent
)

type fixtureGenerator struct {
	faker     *gofakeit.Faker
	startDate time.Time
	endDate   time.Time
}

// NewFixtureGenerator creates a generator seeded for reproducible fixtures.
// Pass seed 0 for a random seed.
func NewFixtureGenerator(seed uint64) FixtureGeneratorInterface {
	return &fixtureGenerator{
		faker:     gofakeit.New(seed),
		startDate: time.Date(2020, 1, 1, 0, 0, 0, 0, time.UTC),
		endDate:   time.Date(2020, 12, 31, 0, 0, 0, 0, time.UTC),
	}
}

func (g *fixtureGenerator) GenerateUsers(count int) []models.User {
	users := make([]models.User, 0, count)
	for i := 0; i < count; i++ {
		users = append(users, models.User{
			UserID:   uuid.New(),
			IsActive: g.faker.IntRange(1, 100) > fixtureInactiveRatio,
		})
	}
	return users
}

func (g *fixtureGenerator) GenerateTransactions(users []models.User, count int) []models.Transaction {
	transactions := make([]models.Transaction, 0, count)
	for i := 0; i < count; i++ {
		user := users[g.faker.IntRange(0, len(users)-1)]
		day := g.faker.DateRange(g.startDate, g.endDate)

		transactions = append(transactions, models.Transaction{
			TransactionID:         uuid.New(),
			Date:                  time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, time.UTC),
			UserID:                user.UserID,
			IsBlocked:             g.faker.IntRange(1, 100) <= fixtureBlockedRatio,
			TransactionAmount:     decimal.NewFromFloat(g.faker.Price(1, 1000)),
			TransactionCategoryID: g.faker.IntRange(0, fixtureCategoryCount-1),
		})
	}
	return transactions
}

func (g *fixtureGenerator) WriteUsersCSV(path string, users []models.User) error {
	rows := make([][]string, 0, len(users)+1)
	rows = append(rows, []string{"user_id", "is_active"})
	for _, user := range users {
		rows = append(rows, []string{
			user.UserID.String(),
			strconv.FormatBool(user.IsActive),
		})
	}
	return writeCSV(path, rows)
}

func (g *fixtureGenerator) WriteTransactionsCSV(path string, transactions []models.Transaction) error {
	rows := make([][]string, 0, len(transactions)+1)
	rows = append(rows, []string{"transaction_id", "date", "user_id", "is_blocked", "transaction_amount", "transaction_category_id"})
	for _, txn := range transactions {
		rows = append(rows, []string{
			txn.TransactionID.String(),
			txn.Date.Format("2006-01-02"),
			txn.UserID.String(),
			strconv.FormatBool(txn.IsBlocked),
			txn.TransactionAmount.StringFixed(2),
			strconv.Itoa(txn.TransactionCategoryID),
		})
	}
	return writeCSV(path, rows)
}

func writeCSV(path string, rows [][]string) error {
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	writer.Flush()
	return writer.Error()
}
