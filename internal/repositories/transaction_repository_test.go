package repositories

import (
	"fmt"
	"testing"
	"time"

	"analytics-assessment/internal/database"
	apperrors "analytics-assessment/internal/errors"
	"analytics-assessment/internal/models"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

func TestTransactionRepository(t *testing.T) {
	suite.Run(t, new(TransactionRepositorySuite))
}

type TransactionRepositorySuite struct {
	suite.Suite
	db       *database.DB
	repo     TransactionRepositoryInterface
	userRepo UserRepositoryInterface
}

func (s *TransactionRepositorySuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.repo = NewTransactionRepository(s.db.DB)
	s.userRepo = NewUserRepository(s.db.DB)
}

func (s *TransactionRepositorySuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *TransactionRepositorySuite) date(day int) time.Time {
	return time.Date(2022, 1, day, 0, 0, 0, 0, time.UTC)
}

func (s *TransactionRepositorySuite) TestTransactionRepository_CreateAndGetByID() {
	user := database.CreateTestUser(s.T(), s.db, true)

	txn := &models.Transaction{
		TransactionID:         uuid.New(),
		Date:                  s.date(5),
		UserID:                user.UserID,
		TransactionAmount:     decimal.RequireFromString("120.50"),
		TransactionCategoryID: 2,
	}

	s.NoError(s.repo.Create(txn))

	found, err := s.repo.GetByID(txn.TransactionID)
	s.NoError(err)
	s.Equal(txn.UserID, found.UserID)
	s.True(found.TransactionAmount.Equal(decimal.RequireFromString("120.50")))
}

func (s *TransactionRepositorySuite) TestTransactionRepository_GetByID_NotFound() {
	_, err := s.repo.GetByID(uuid.New())
	s.Equal(ErrTransactionNotFound, err)
}

func (s *TransactionRepositorySuite) TestTransactionRepository_CreateBatch_ChunkSizeDoesNotChangeContent() {
	user := database.CreateTestUser(s.T(), s.db, true)

	transactions := make([]models.Transaction, 0, 7)
	for i := 0; i < 7; i++ {
		transactions = append(transactions, models.Transaction{
			TransactionID:         uuid.New(),
			Date:                  s.date(i + 1),
			UserID:                user.UserID,
			TransactionAmount:     decimal.NewFromInt(int64(i + 1)),
			TransactionCategoryID: i % 2,
		})
	}

	s.NoError(s.repo.CreateBatch(transactions, 3))

	total, err := s.repo.Count()
	s.NoError(err)
	s.Equal(int64(7), total)
}

func (s *TransactionRepositorySuite) TestTransactionRepository_GetAllOrdered() {
	user := database.CreateTestUser(s.T(), s.db, true)

	// Insert out of date order
	database.CreateTestTransaction(s.T(), s.db, user.UserID, s.date(9), "30", false, 1)
	database.CreateTestTransaction(s.T(), s.db, user.UserID, s.date(2), "10", false, 1)
	database.CreateTestTransaction(s.T(), s.db, user.UserID, s.date(5), "20", false, 1)

	transactions, err := s.repo.GetAllOrdered()
	s.NoError(err)
	s.Require().Len(transactions, 3)

	for i := 1; i < len(transactions); i++ {
		s.False(transactions[i].Date.Before(transactions[i-1].Date))
	}
}

func (s *TransactionRepositorySuite) TestGetWindowedCounts_SaturatesAtSeven() {
	user := database.CreateTestUser(s.T(), s.db, true)

	// 10 transactions on consecutive days for a single user
	for day := 1; day <= 10; day++ {
		database.CreateTestTransaction(s.T(), s.db, user.UserID, s.date(day), "100", false, 1)
	}

	counts, err := s.repo.GetWindowedCounts()
	s.NoError(err)
	s.Require().Len(counts, 10)

	expected := []int{0, 1, 2, 3, 4, 5, 6, 7, 7, 7}
	for i, c := range counts {
		s.Equalf(expected[i], c.NoTxnLast7Days, "row %d", i)
	}
}

func (s *TransactionRepositorySuite) TestGetWindowedCounts_PartitionsByUser() {
	alice := database.CreateTestUser(s.T(), s.db, true)
	bob := database.CreateTestUser(s.T(), s.db, true)

	for day := 1; day <= 3; day++ {
		database.CreateTestTransaction(s.T(), s.db, alice.UserID, s.date(day), "100", false, 1)
		database.CreateTestTransaction(s.T(), s.db, bob.UserID, s.date(day), "100", false, 1)
	}

	counts, err := s.repo.GetWindowedCounts()
	s.NoError(err)
	s.Require().Len(counts, 6)

	perUser := make(map[uuid.UUID][]int)
	for _, c := range counts {
		perUser[c.UserID] = append(perUser[c.UserID], c.NoTxnLast7Days)
	}

	s.Equal([]int{0, 1, 2}, perUser[alice.UserID])
	s.Equal([]int{0, 1, 2}, perUser[bob.UserID])
}

func (s *TransactionRepositorySuite) TestGetCategoryAggregates_FiltersAndGroups() {
	active := database.CreateTestUser(s.T(), s.db, true)
	inactive := database.CreateTestUser(s.T(), s.db, false)

	database.CreateTestTransaction(s.T(), s.db, active.UserID, s.date(1), "100", false, 0)
	// Blocked: excluded even though the user is active
	database.CreateTestTransaction(s.T(), s.db, active.UserID, s.date(2), "50", true, 0)
	// Inactive user: excluded even though unblocked
	database.CreateTestTransaction(s.T(), s.db, inactive.UserID, s.date(3), "70", false, 0)
	// Unknown user: dropped by the join
	database.CreateTestTransaction(s.T(), s.db, uuid.New(), s.date(4), "999", false, 0)
	// Second category
	database.CreateTestTransaction(s.T(), s.db, active.UserID, s.date(5), "19.99", false, 4)

	aggregates, err := s.repo.GetCategoryAggregates()
	s.NoError(err)
	s.Require().Len(aggregates, 2)

	s.Equal(0, aggregates[0].TransactionCategoryID)
	s.True(aggregates[0].SumAmount.Equal(decimal.NewFromInt(100)),
		fmt.Sprintf("got %s", aggregates[0].SumAmount))
	s.Equal(1, aggregates[0].NumUsers)

	s.Equal(4, aggregates[1].TransactionCategoryID)
	s.True(aggregates[1].SumAmount.Equal(decimal.RequireFromString("19.99")))
	s.Equal(1, aggregates[1].NumUsers)
}

func (s *TransactionRepositorySuite) TestGetCategoryAggregates_CountsDistinctUsers() {
	alice := database.CreateTestUser(s.T(), s.db, true)
	bob := database.CreateTestUser(s.T(), s.db, true)

	database.CreateTestTransaction(s.T(), s.db, alice.UserID, s.date(1), "10", false, 7)
	database.CreateTestTransaction(s.T(), s.db, alice.UserID, s.date(2), "10", false, 7)
	database.CreateTestTransaction(s.T(), s.db, bob.UserID, s.date(3), "10", false, 7)

	aggregates, err := s.repo.GetCategoryAggregates()
	s.NoError(err)
	s.Require().Len(aggregates, 1)
	s.Equal(2, aggregates[0].NumUsers)
	s.True(aggregates[0].SumAmount.Equal(decimal.NewFromInt(30)))
}

func (s *TransactionRepositorySuite) TestGetCategoryAggregates_EmptyFilteredSet() {
	inactive := database.CreateTestUser(s.T(), s.db, false)
	database.CreateTestTransaction(s.T(), s.db, inactive.UserID, s.date(1), "10", false, 1)

	aggregates, err := s.repo.GetCategoryAggregates()
	s.NoError(err)
	s.Empty(aggregates)
}

func (s *TransactionRepositorySuite) TestCreateBatch_DuplicateKeyCarriesInsertCode() {
	user := database.CreateTestUser(s.T(), s.db, true)
	txn := models.Transaction{
		TransactionID:         uuid.New(),
		Date:                  s.date(1),
		UserID:                user.UserID,
		TransactionAmount:     decimal.NewFromInt(10),
		TransactionCategoryID: 1,
	}

	s.NoError(s.repo.CreateBatch([]models.Transaction{txn}, 10))

	err := s.repo.CreateBatch([]models.Transaction{txn}, 10)
	s.Error(err)
	s.Equal(apperrors.DatabaseInsertFailed, apperrors.CodeOf(err))
}

func (s *TransactionRepositorySuite) TestGetWindowedCounts_QueryFailureCarriesQueryCode() {
	s.Require().NoError(s.db.Exec("DROP TABLE transactions").Error)

	_, err := s.repo.GetWindowedCounts()
	s.Error(err)
	s.Equal(apperrors.DatabaseQueryFailed, apperrors.CodeOf(err))
}

func (s *TransactionRepositorySuite) TestGetCategoryAggregates_QueryFailureCarriesQueryCode() {
	s.Require().NoError(s.db.Exec("DROP TABLE users").Error)

	_, err := s.repo.GetCategoryAggregates()
	s.Error(err)
	s.Equal(apperrors.DatabaseQueryFailed, apperrors.CodeOf(err))
}
