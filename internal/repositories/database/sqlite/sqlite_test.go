package sqlite_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/finance_dashboard/internal/apperrors"
	"github.com/SscSPs/finance_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_dashboard/internal/core/ports/repositories"
	"github.com/SscSPs/finance_dashboard/internal/repositories/database/sqlite"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type SQLiteRepositoryTestSuite struct {
	suite.Suite
	repos portsrepo.RepositoryProvider
	ctx   context.Context
	base  time.Time
}

func (suite *SQLiteRepositoryTestSuite) SetupTest() {
	db, err := sqlite.Open(":memory:")
	suite.Require().NoError(err)
	suite.T().Cleanup(func() { _ = sqlite.Close(db) })

	suite.repos = sqlite.NewRepositoryProvider(db, nil)
	suite.ctx = context.Background()
	suite.base = time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
}

func (suite *SQLiteRepositoryTestSuite) saveUser(id, email string, accountType domain.AccountType) domain.User {
	user := domain.User{
		UserID:       id,
		Name:         "User " + id,
		Email:        email,
		PasswordHash: "hash",
		AccountType:  accountType,
		AuthProvider: domain.ProviderLocal,
		IsActive:     true,
		CreatedAt:    suite.base,
	}
	suite.Require().NoError(suite.repos.UserRepo.SaveUser(suite.ctx, user))
	return user
}

func (suite *SQLiteRepositoryTestSuite) TestUserLookups() {
	saved := suite.saveUser("u1", "Farmer@Example.com", domain.AccountFarmer)

	byID, err := suite.repos.UserRepo.FindUserByID(suite.ctx, "u1")
	suite.Require().NoError(err)
	suite.Equal(saved.Email, byID.Email)
	suite.Equal(domain.AccountFarmer, byID.AccountType)
	suite.Nil(byID.LastLoginAt)

	byEmail, err := suite.repos.UserRepo.FindUserByEmail(suite.ctx, "farmer@example.com")
	suite.Require().NoError(err)
	suite.Equal("u1", byEmail.UserID)

	_, err = suite.repos.UserRepo.FindUserByEmailAndType(suite.ctx, "farmer@example.com", domain.AccountCompany)
	suite.ErrorIs(err, apperrors.ErrNotFound)

	_, err = suite.repos.UserRepo.FindUserByID(suite.ctx, "missing")
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *SQLiteRepositoryTestSuite) TestDuplicateEmail() {
	suite.saveUser("u1", "dup@example.com", domain.AccountFarmer)

	err := suite.repos.UserRepo.SaveUser(suite.ctx, domain.User{
		UserID: "u2", Name: "Other", Email: "dup@example.com", AccountType: domain.AccountCompany, IsActive: true, CreatedAt: suite.base,
	})
	suite.ErrorIs(err, apperrors.ErrDuplicate)
}

func (suite *SQLiteRepositoryTestSuite) TestDuplicateEmailIgnoresCase() {
	suite.saveUser("u1", "Dup@Example.com", domain.AccountFarmer)

	err := suite.repos.UserRepo.SaveUser(suite.ctx, domain.User{
		UserID: "u2", Name: "Other", Email: "dup@example.com", AccountType: domain.AccountCompany, IsActive: true, CreatedAt: suite.base,
	})
	suite.ErrorIs(err, apperrors.ErrDuplicate)

	_, err = suite.repos.UserRepo.FindUserByID(suite.ctx, "u2")
	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *SQLiteRepositoryTestSuite) TestProviderLookupAndLastLogin() {
	pid := "google-123"
	suite.Require().NoError(suite.repos.UserRepo.SaveUser(suite.ctx, domain.User{
		UserID: "g1", Name: "G", Email: "g@example.com", AccountType: domain.AccountIndividual,
		AuthProvider: domain.ProviderGoogle, ProviderUserID: &pid, IsActive: true, CreatedAt: suite.base,
	}))

	user, err := suite.repos.UserRepo.FindUserByProviderDetails(suite.ctx, domain.ProviderGoogle, "google-123")
	suite.Require().NoError(err)
	suite.Equal("g1", user.UserID)
	suite.Empty(user.PasswordHash)

	login := suite.base.Add(time.Hour)
	suite.Require().NoError(suite.repos.UserRepo.UpdateLastLogin(suite.ctx, "g1", login))
	user, err = suite.repos.UserRepo.FindUserByID(suite.ctx, "g1")
	suite.Require().NoError(err)
	suite.Require().NotNil(user.LastLoginAt)
	suite.True(login.Equal(*user.LastLoginAt))

	suite.ErrorIs(suite.repos.UserRepo.UpdateLastLogin(suite.ctx, "nobody", login), apperrors.ErrNotFound)
}

func (suite *SQLiteRepositoryTestSuite) TestTransactionsNewestFirstWithKeysetPaging() {
	suite.saveUser("u1", "u1@example.com", domain.AccountIndividual)
	suite.saveUser("u2", "u2@example.com", domain.AccountIndividual)

	add := func(id, user string, day int) {
		suite.Require().NoError(suite.repos.TransactionRepo.SaveTransaction(suite.ctx, domain.Transaction{
			TransactionID: id,
			UserID:        user,
			Amount:        decimal.RequireFromString("10.25"),
			Category:      "Grocery",
			Date:          suite.base.AddDate(0, 0, day),
			Kind:          domain.Expense,
			CreatedAt:     suite.base,
		}))
	}
	add("a", "u1", 0)
	add("b", "u1", 2)
	add("c", "u1", 2) // same date as b
	add("d", "u1", 1)
	add("x", "u2", 5)

	all, err := suite.repos.TransactionRepo.FindTransactionsByUser(suite.ctx, "u1")
	suite.Require().NoError(err)
	suite.Equal([]string{"c", "b", "d", "a"}, ids(all))
	suite.True(all[0].Amount.Equal(decimal.RequireFromString("10.25")))

	page, err := suite.repos.TransactionRepo.ListTransactionsByUser(suite.ctx, "u1", 2, nil)
	suite.Require().NoError(err)
	suite.Equal([]string{"c", "b"}, ids(page))

	last := page[len(page)-1]
	page, err = suite.repos.TransactionRepo.ListTransactionsByUser(suite.ctx, "u1", 2,
		&portsrepo.TransactionCursor{Date: last.Date, TransactionID: last.TransactionID})
	suite.Require().NoError(err)
	suite.Equal([]string{"d", "a"}, ids(page))

	empty, err := suite.repos.TransactionRepo.FindTransactionsByUser(suite.ctx, "nobody")
	suite.Require().NoError(err)
	suite.Empty(empty)
}

func ids(txns []domain.Transaction) []string {
	out := make([]string, len(txns))
	for i, t := range txns {
		out[i] = t.TransactionID
	}
	return out
}

func TestSQLiteRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(SQLiteRepositoryTestSuite))
}
