package repositories

import (
	"context"
	"time"

	"github.com/SscSPs/finance_dashboard/internal/core/domain"
)

// UserReader defines read operations for user data
type UserReader interface {
	// FindUserByID retrieves a specific user by their ID.
	FindUserByID(ctx context.Context, userID string) (*domain.User, error)

	// FindUserByEmail retrieves a user by email regardless of account type.
	FindUserByEmail(ctx context.Context, email string) (*domain.User, error)

	// FindUserByEmailAndType retrieves the user registered with email under accountType.
	FindUserByEmailAndType(ctx context.Context, email string, accountType domain.AccountType) (*domain.User, error)

	// FindUserByProviderDetails retrieves a user by external identity provider and the provider's user ID.
	FindUserByProviderDetails(ctx context.Context, provider domain.AuthProvider, providerUserID string) (*domain.User, error)
}

// UserWriter defines write operations for user data
type UserWriter interface {
	// SaveUser persists a new user. A taken email yields apperrors.ErrDuplicate.
	SaveUser(ctx context.Context, user domain.User) error

	// UpdateLastLogin records a successful authentication.
	UpdateLastLogin(ctx context.Context, userID string, at time.Time) error
}

// UserRepositoryFacade combines all user-related repository interfaces
type UserRepositoryFacade interface {
	UserReader
	UserWriter
}
