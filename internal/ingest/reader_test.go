package ingest

import (
	"os"
	"path/filepath"
	"testing"

	apperrors "analytics-assessment/internal/errors"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempCSV(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestReadTransactions_WellFormedFile(t *testing.T) {
	path := writeTempCSV(t, "transactions.csv",
		"transaction_id,date,user_id,is_blocked,transaction_amount,transaction_category_id\n"+
			"9f709688-326d-4834-8075-1a477d8af232,2022-01-05,999eb541-c1a0-4888-aeb6-92773fc60e69,false,4050,3\n"+
			"3a022e18-7a43-4a51-963a-4c5cd613fac9,2022-01-05,999eb541-c1a0-4888-aeb6-92773fc60e69,TRUE,19.99,0\n")

	txns, err := NewReader().ReadTransactions(path)

	require.NoError(t, err)
	require.Len(t, txns, 2)
	assert.Equal(t, "9f709688-326d-4834-8075-1a477d8af232", txns[0].TransactionID.String())
	assert.False(t, txns[0].IsBlocked)
	assert.True(t, txns[0].TransactionAmount.Equal(decimal.NewFromInt(4050)))
	assert.Equal(t, 3, txns[0].TransactionCategoryID)
	assert.True(t, txns[1].IsBlocked)
	assert.True(t, txns[1].TransactionAmount.Equal(decimal.RequireFromString("19.99")))
	assert.Equal(t, "2022-01-05", txns[1].Date.Format("2006-01-02"))
}

func TestReadTransactions_MalformedRowAbortsWithLineNumber(t *testing.T) {
	path := writeTempCSV(t, "transactions.csv",
		"transaction_id,date,user_id,is_blocked,transaction_amount,transaction_category_id\n"+
			"9f709688-326d-4834-8075-1a477d8af232,2022-01-05,999eb541-c1a0-4888-aeb6-92773fc60e69,false,4050,3\n"+
			"3a022e18-7a43-4a51-963a-4c5cd613fac9,2022-01-05,999eb541-c1a0-4888-aeb6-92773fc60e69,maybe,100,1\n")

	_, err := NewReader().ReadTransactions(path)

	require.Error(t, err)
	assert.Equal(t, apperrors.IngestMalformedRow, apperrors.CodeOf(err))
	assert.Contains(t, err.Error(), "line 3")
}

func TestReadTransactions_HeaderMismatch(t *testing.T) {
	path := writeTempCSV(t, "transactions.csv",
		"id,date,user,blocked,amount,category\n")

	_, err := NewReader().ReadTransactions(path)

	require.Error(t, err)
	assert.Equal(t, apperrors.IngestInvalidHeader, apperrors.CodeOf(err))
}

func TestReadTransactions_MissingFile(t *testing.T) {
	_, err := NewReader().ReadTransactions(filepath.Join(t.TempDir(), "absent.csv"))

	require.Error(t, err)
	assert.Equal(t, apperrors.IngestFileNotFound, apperrors.CodeOf(err))
}

func TestReadTransactions_EmptyFile(t *testing.T) {
	path := writeTempCSV(t, "transactions.csv", "")

	_, err := NewReader().ReadTransactions(path)

	require.Error(t, err)
	assert.Equal(t, apperrors.IngestEmptyFile, apperrors.CodeOf(err))
}

func TestReadTransactions_HeaderOnlyYieldsNoRows(t *testing.T) {
	path := writeTempCSV(t, "transactions.csv",
		"transaction_id,date,user_id,is_blocked,transaction_amount,transaction_category_id\n")

	txns, err := NewReader().ReadTransactions(path)

	require.NoError(t, err)
	assert.Empty(t, txns)
}

func TestReadUsers_WellFormedFile(t *testing.T) {
	path := writeTempCSV(t, "users.csv",
		"user_id,is_active\n"+
			"999eb541-c1a0-4888-aeb6-92773fc60e69,True\n"+
			"48b52e30-9534-47ec-a302-ff8a8b02d668,false\n")

	users, err := NewReader().ReadUsers(path)

	require.NoError(t, err)
	require.Len(t, users, 2)
	assert.True(t, users[0].IsActive)
	assert.False(t, users[1].IsActive)
}

func TestReadUsers_WrongColumnCount(t *testing.T) {
	path := writeTempCSV(t, "users.csv",
		"user_id,is_active\n"+
			"999eb541-c1a0-4888-aeb6-92773fc60e69\n")

	_, err := NewReader().ReadUsers(path)

	require.Error(t, err)
	assert.Equal(t, apperrors.IngestMalformedRow, apperrors.CodeOf(err))
}
