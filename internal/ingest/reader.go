package ingest

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	apperrors "analytics-assessment/internal/errors"
	"analytics-assessment/internal/models"
	"analytics-assessment/internal/validation"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var (
	transactionHeader = []string{"transaction_id", "date", "user_id", "is_blocked", "transaction_amount", "transaction_category_id"}
	userHeader        = []string{"user_id", "is_active"}
)

// transactionRow holds the raw column text of one transactions.csv record.
// Validation runs on the text before any type coercion, so a malformed field
// is reported with its column name instead of a coercion panic.
type transactionRow struct {
	TransactionID         string `csv:"transaction_id" validate:"csv_uuid"`
	Date                  string `csv:"date" validate:"csv_date"`
	UserID                string `csv:"user_id" validate:"csv_uuid"`
	IsBlocked             string `csv:"is_blocked" validate:"csv_bool"`
	TransactionAmount     string `csv:"transaction_amount" validate:"csv_amount"`
	TransactionCategoryID string `csv:"transaction_category_id" validate:"required,number"`
}

type userRow struct {
	UserID   string `csv:"user_id" validate:"csv_uuid"`
	IsActive string `csv:"is_active" validate:"csv_bool"`
}

// Reader parses the two assessment CSV files into model rows.
type Reader struct {
	validator *validation.Validator
}

func NewReader() *Reader {
	return &Reader{validator: validation.GetValidator()}
}

// ReadTransactions parses transactions.csv. Any malformed row aborts the read.
func (r *Reader) ReadTransactions(path string) ([]models.Transaction, error) {
	records, err := r.readRecords(path, transactionHeader)
	if err != nil {
		return nil, err
	}

	transactions := make([]models.Transaction, 0, len(records))
	for i, record := range records {
		txn, err := r.parseTransaction(record)
		if err != nil {
			// Header is line 1, first data row is line 2
			return nil, apperrors.Wrap(apperrors.IngestMalformedRow,
				fmt.Errorf("%s line %d: %w", path, i+2, err))
		}
		transactions = append(transactions, txn)
	}

	return transactions, nil
}

// ReadUsers parses users.csv. Any malformed row aborts the read.
func (r *Reader) ReadUsers(path string) ([]models.User, error) {
	records, err := r.readRecords(path, userHeader)
	if err != nil {
		return nil, err
	}

	users := make([]models.User, 0, len(records))
	for i, record := range records {
		user, err := r.parseUser(record)
		if err != nil {
			return nil, apperrors.Wrap(apperrors.IngestMalformedRow,
				fmt.Errorf("%s line %d: %w", path, i+2, err))
		}
		users = append(users, user)
	}

	return users, nil
}

func (r *Reader) readRecords(path string, expectedHeader []string) ([][]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, apperrors.Wrap(apperrors.IngestFileNotFound, err)
	}
	defer file.Close()

	reader := csv.NewReader(file)
	reader.FieldsPerRecord = len(expectedHeader)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return nil, apperrors.Wrap(apperrors.IngestEmptyFile, fmt.Errorf("%s has no header row", path))
	}
	if err != nil {
		return nil, apperrors.Wrap(apperrors.IngestMalformedRow, err)
	}

	if err := checkHeader(header, expectedHeader); err != nil {
		return nil, apperrors.Wrap(apperrors.IngestInvalidHeader, fmt.Errorf("%s: %w", path, err))
	}

	records, err := reader.ReadAll()
	if err != nil {
		return nil, apperrors.Wrap(apperrors.IngestMalformedRow, err)
	}

	return records, nil
}

func checkHeader(got, want []string) error {
	if len(got) != len(want) {
		return fmt.Errorf("expected %d columns, got %d", len(want), len(got))
	}
	for i := range want {
		if strings.TrimSpace(strings.ToLower(got[i])) != want[i] {
			return fmt.Errorf("expected column %q at position %d, got %q", want[i], i, got[i])
		}
	}
	return nil
}

func (r *Reader) parseTransaction(record []string) (models.Transaction, error) {
	row := transactionRow{
		TransactionID:         record[0],
		Date:                  record[1],
		UserID:                record[2],
		IsBlocked:             record[3],
		TransactionAmount:     record[4],
		TransactionCategoryID: record[5],
	}

	if err := r.validator.Struct(row); err != nil {
		return models.Transaction{}, err
	}

	transactionID, err := uuid.Parse(strings.TrimSpace(row.TransactionID))
	if err != nil {
		return models.Transaction{}, fmt.Errorf("transaction_id: %w", err)
	}

	date, err := time.Parse("2006-01-02", strings.TrimSpace(row.Date))
	if err != nil {
		return models.Transaction{}, fmt.Errorf("date: %w", err)
	}

	userID, err := uuid.Parse(strings.TrimSpace(row.UserID))
	if err != nil {
		return models.Transaction{}, fmt.Errorf("user_id: %w", err)
	}

	isBlocked, err := parseCSVBool(row.IsBlocked)
	if err != nil {
		return models.Transaction{}, fmt.Errorf("is_blocked: %w", err)
	}

	amount, err := decimal.NewFromString(strings.TrimSpace(row.TransactionAmount))
	if err != nil {
		return models.Transaction{}, fmt.Errorf("transaction_amount: %w", err)
	}

	categoryID, err := strconv.Atoi(strings.TrimSpace(row.TransactionCategoryID))
	if err != nil {
		return models.Transaction{}, fmt.Errorf("transaction_category_id: %w", err)
	}

	return models.Transaction{
		TransactionID:         transactionID,
		Date:                  date,
		UserID:                userID,
		IsBlocked:             isBlocked,
		TransactionAmount:     amount,
		TransactionCategoryID: categoryID,
	}, nil
}

func (r *Reader) parseUser(record []string) (models.User, error) {
	row := userRow{
		UserID:   record[0],
		IsActive: record[1],
	}

	if err := r.validator.Struct(row); err != nil {
		return models.User{}, err
	}

	userID, err := uuid.Parse(strings.TrimSpace(row.UserID))
	if err != nil {
		return models.User{}, fmt.Errorf("user_id: %w", err)
	}

	isActive, err := parseCSVBool(row.IsActive)
	if err != nil {
		return models.User{}, fmt.Errorf("is_active: %w", err)
	}

	return models.User{
		UserID:   userID,
		IsActive: isActive,
	}, nil
}

// parseCSVBool accepts "true"/"false" in any letter case
func parseCSVBool(value string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "true":
		return true, nil
	case "false":
		return false, nil
	default:
		return false, fmt.Errorf("invalid boolean %q", value)
	}
}
