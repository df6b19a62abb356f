package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/finance_dashboard/internal/apperrors"
	"github.com/SscSPs/finance_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_dashboard/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/finance_dashboard/internal/core/ports/services"
	"github.com/SscSPs/finance_dashboard/internal/dto"
	"github.com/SscSPs/finance_dashboard/internal/utils"
	"github.com/google/uuid"
)

// userService implements portssvc.UserSvcFacade
type userService struct {
	BaseService
	userRepo portsrepo.UserRepositoryFacade
	now      func() time.Time
}

// UserServiceOption is a functional option for configuring the user service
type UserServiceOption func(*userService)

// WithUserClock replaces the clock used for CreatedAt and LastLoginAt.
func WithUserClock(now func() time.Time) UserServiceOption {
	return func(s *userService) {
		s.now = now
	}
}

// NewUserService creates a new user service with the given repository and options
func NewUserService(repo portsrepo.UserRepositoryFacade, options ...UserServiceOption) portssvc.UserSvcFacade {
	svc := &userService{
		userRepo: repo,
		now:      time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.UserSvcFacade = (*userService)(nil)

// RegisterUser validates the registration form and creates a local account.
func (s *userService) RegisterUser(ctx context.Context, req dto.RegisterRequest) (*domain.User, error) {
	name := strings.TrimSpace(req.Name)
	email := strings.TrimSpace(req.Email)
	accountType := domain.AccountType(req.AccountType)

	if name == "" || email == "" || req.Password == "" {
		return nil, fmt.Errorf("%w: all fields are required", apperrors.ErrValidation)
	}
	if !utils.IsValidEmail(email) {
		return nil, fmt.Errorf("%w: invalid email format", apperrors.ErrValidation)
	}
	if err := utils.ValidatePasswordStrength(req.Password); err != nil {
		return nil, fmt.Errorf("%w: %s", apperrors.ErrValidation, err.Error())
	}
	if !accountType.IsValid() {
		return nil, fmt.Errorf("%w: invalid account type %q", apperrors.ErrValidation, req.AccountType)
	}

	existing, err := s.userRepo.FindUserByEmail(ctx, email)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to check email availability")
		return nil, fmt.Errorf("failed to check email availability: %w", err)
	}
	if existing != nil {
		return nil, fmt.Errorf("%w: email already registered", apperrors.ErrDuplicate)
	}

	hash, err := utils.HashPassword(req.Password)
	if err != nil {
		s.LogError(ctx, err, "Failed to hash password")
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := domain.User{
		UserID:       uuid.NewString(),
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		AccountType:  accountType,
		AuthProvider: domain.ProviderLocal,
		IsActive:     true,
		CreatedAt:    s.now().UTC(),
	}
	if err := s.userRepo.SaveUser(ctx, user); err != nil {
		if !errors.Is(err, apperrors.ErrDuplicate) {
			s.LogError(ctx, err, "Failed to save user in repository")
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	s.LogInfo(ctx, "User registered", slog.String("user_id", user.UserID), slog.String("account_type", string(accountType)))
	return &user, nil
}

// AuthenticateUser checks the credentials of a local account and records the login.
// Every credential failure is reported as apperrors.ErrUnauthorized.
func (s *userService) AuthenticateUser(ctx context.Context, email, password string, accountType domain.AccountType) (*domain.User, error) {
	user, err := s.userRepo.FindUserByEmailAndType(ctx, strings.TrimSpace(email), accountType)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, apperrors.ErrUnauthorized
		}
		s.LogError(ctx, err, "Failed to look up user for login")
		return nil, fmt.Errorf("failed to authenticate user: %w", err)
	}
	if user.PasswordHash == "" || !utils.CheckPasswordHash(password, user.PasswordHash) {
		s.LogWarn(ctx, "Password mismatch", slog.String("user_id", user.UserID))
		return nil, apperrors.ErrUnauthorized
	}
	if !user.IsActive {
		s.LogWarn(ctx, "Inactive user attempted login", slog.String("user_id", user.UserID))
		return nil, apperrors.ErrUnauthorized
	}

	s.recordLogin(ctx, user)
	return user, nil
}

// CreateOAuthUser finds the user by provider identity, then by email, and creates
// one under accountType when neither exists.
func (s *userService) CreateOAuthUser(ctx context.Context, name, email string, accountType domain.AccountType, provider domain.AuthProvider, providerUserID string, emailVerified bool) (*domain.User, error) {
	if !accountType.IsValid() {
		return nil, fmt.Errorf("%w: invalid account type %q", apperrors.ErrValidation, accountType)
	}
	if email == "" || providerUserID == "" {
		return nil, fmt.Errorf("%w: email and provider user ID are required", apperrors.ErrValidation)
	}

	user, err := s.userRepo.FindUserByProviderDetails(ctx, provider, providerUserID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to look up user by provider", slog.String("provider", string(provider)))
		return nil, fmt.Errorf("failed to look up oauth user: %w", err)
	}

	if user == nil {
		user, err = s.userRepo.FindUserByEmail(ctx, email)
		if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to look up user by email")
			return nil, fmt.Errorf("failed to look up oauth user: %w", err)
		}
		if user != nil && !emailVerified {
			// An unverified address must not take over an existing account.
			return nil, fmt.Errorf("%w: email not verified by provider", apperrors.ErrUnauthorized)
		}
	}

	if user != nil {
		if user.AccountType != accountType {
			return nil, fmt.Errorf("%w: user is registered as %s", apperrors.ErrUnauthorized, user.AccountType)
		}
		if !user.IsActive {
			return nil, apperrors.ErrUnauthorized
		}
		s.recordLogin(ctx, user)
		return user, nil
	}

	if strings.TrimSpace(name) == "" {
		name = email
	}
	now := s.now().UTC()
	pid := providerUserID
	newUser := domain.User{
		UserID:         uuid.NewString(),
		Name:           strings.TrimSpace(name),
		Email:          email,
		AccountType:    accountType,
		AuthProvider:   provider,
		ProviderUserID: &pid,
		IsActive:       true,
		CreatedAt:      now,
		LastLoginAt:    &now,
	}
	if err := s.userRepo.SaveUser(ctx, newUser); err != nil {
		s.LogError(ctx, err, "Failed to save oauth user")
		return nil, fmt.Errorf("failed to create oauth user: %w", err)
	}
	s.LogInfo(ctx, "OAuth user created", slog.String("user_id", newUser.UserID), slog.String("provider", string(provider)))
	return &newUser, nil
}

// GetUserByID retrieves a user by ID.
func (s *userService) GetUserByID(ctx context.Context, userID string) (*domain.User, error) {
	user, err := s.userRepo.FindUserByID(ctx, userID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find user by ID", slog.String("user_id", userID))
		}
		return nil, err
	}
	return user, nil
}

// recordLogin stamps LastLoginAt. A failed write is logged and does not fail the login.
func (s *userService) recordLogin(ctx context.Context, user *domain.User) {
	now := s.now().UTC()
	if err := s.userRepo.UpdateLastLogin(ctx, user.UserID, now); err != nil {
		s.LogError(ctx, err, "Failed to update last login", slog.String("user_id", user.UserID))
		return
	}
	user.LastLoginAt = &now
}
