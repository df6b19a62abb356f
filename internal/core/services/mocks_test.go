package services_test

import (
	"context"
	"time"

	"github.com/SscSPs/finance_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_dashboard/internal/core/ports/repositories"
	"github.com/stretchr/testify/mock"
)

// --- Mock UserRepository ---
type MockUserRepository struct {
	mock.Mock
}

func (m *MockUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

func (m *MockUserRepository) UpdateLastLogin(ctx context.Context, userID string, at time.Time) error {
	args := m.Called(ctx, userID, at)
	return args.Error(0)
}

func (m *MockUserRepository) findOne(args mock.Arguments) (*domain.User, error) {
	var user *domain.User
	if args.Get(0) != nil {
		user = args.Get(0).(*domain.User)
	}
	return user, args.Error(1)
}

func (m *MockUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return m.findOne(m.Called(ctx, userID))
}

func (m *MockUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return m.findOne(m.Called(ctx, email))
}

func (m *MockUserRepository) FindUserByEmailAndType(ctx context.Context, email string, accountType domain.AccountType) (*domain.User, error) {
	return m.findOne(m.Called(ctx, email, accountType))
}

func (m *MockUserRepository) FindUserByProviderDetails(ctx context.Context, provider domain.AuthProvider, providerUserID string) (*domain.User, error) {
	return m.findOne(m.Called(ctx, provider, providerUserID))
}

// --- Mock TransactionRepository ---
type MockTransactionRepository struct {
	mock.Mock
}

func (m *MockTransactionRepository) SaveTransaction(ctx context.Context, txn domain.Transaction) error {
	args := m.Called(ctx, txn)
	return args.Error(0)
}

func (m *MockTransactionRepository) FindTransactionsByUser(ctx context.Context, userID string) ([]domain.Transaction, error) {
	args := m.Called(ctx, userID)
	var txns []domain.Transaction
	if args.Get(0) != nil {
		txns = args.Get(0).([]domain.Transaction)
	}
	return txns, args.Error(1)
}

func (m *MockTransactionRepository) ListTransactionsByUser(ctx context.Context, userID string, limit int, after *portsrepo.TransactionCursor) ([]domain.Transaction, error) {
	args := m.Called(ctx, userID, limit, after)
	var txns []domain.Transaction
	if args.Get(0) != nil {
		txns = args.Get(0).([]domain.Transaction)
	}
	return txns, args.Error(1)
}

// --- Mock ReferenceDataReader ---
type MockReferenceDataReader struct {
	mock.Mock
}

func (m *MockReferenceDataReader) LoadAgricultural(ctx context.Context) ([]domain.AgriculturalRecord, error) {
	args := m.Called(ctx)
	var rows []domain.AgriculturalRecord
	if args.Get(0) != nil {
		rows = args.Get(0).([]domain.AgriculturalRecord)
	}
	return rows, args.Error(1)
}

func (m *MockReferenceDataReader) LoadCompany(ctx context.Context) ([]domain.CompanyRecord, error) {
	args := m.Called(ctx)
	var rows []domain.CompanyRecord
	if args.Get(0) != nil {
		rows = args.Get(0).([]domain.CompanyRecord)
	}
	return rows, args.Error(1)
}

func (m *MockReferenceDataReader) LoadIndividual(ctx context.Context) ([]domain.IndividualRecord, error) {
	args := m.Called(ctx)
	var rows []domain.IndividualRecord
	if args.Get(0) != nil {
		rows = args.Get(0).([]domain.IndividualRecord)
	}
	return rows, args.Error(1)
}
