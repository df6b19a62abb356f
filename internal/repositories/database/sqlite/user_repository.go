package sqlite

import (
	"context"
	"time"

	"github.com/SscSPs/finance_dashboard/internal/apperrors"
	"github.com/SscSPs/finance_dashboard/internal/core/domain"
	portsrepo "github.com/SscSPs/finance_dashboard/internal/core/ports/repositories"
	"github.com/SscSPs/finance_dashboard/internal/models"
	"github.com/SscSPs/finance_dashboard/internal/utils/mapping"
	"gorm.io/gorm"
)

type GormUserRepository struct {
	db *gorm.DB
}

func newGormUserRepository(db *gorm.DB) portsrepo.UserRepositoryFacade {
	return &GormUserRepository{db: db}
}

var _ portsrepo.UserRepositoryFacade = (*GormUserRepository)(nil)

func (r *GormUserRepository) SaveUser(ctx context.Context, user domain.User) error {
	m := mapping.ToModelUser(user)
	return translateError(r.db.WithContext(ctx).Create(&m).Error, "failed to save user")
}

func (r *GormUserRepository) findOne(ctx context.Context, query string, args ...any) (*domain.User, error) {
	var m models.User
	if err := r.db.WithContext(ctx).Where(query, args...).First(&m).Error; err != nil {
		return nil, translateError(err, "failed to find user")
	}
	user := mapping.ToDomainUser(m)
	return &user, nil
}

func (r *GormUserRepository) FindUserByID(ctx context.Context, userID string) (*domain.User, error) {
	return r.findOne(ctx, "user_id = ?", userID)
}

func (r *GormUserRepository) FindUserByEmail(ctx context.Context, email string) (*domain.User, error) {
	return r.findOne(ctx, "lower(email) = lower(?)", email)
}

func (r *GormUserRepository) FindUserByEmailAndType(ctx context.Context, email string, accountType domain.AccountType) (*domain.User, error) {
	return r.findOne(ctx, "lower(email) = lower(?) AND account_type = ?", email, string(accountType))
}

func (r *GormUserRepository) FindUserByProviderDetails(ctx context.Context, provider domain.AuthProvider, providerUserID string) (*domain.User, error) {
	return r.findOne(ctx, "auth_provider = ? AND provider_user_id = ?", string(provider), providerUserID)
}

func (r *GormUserRepository) UpdateLastLogin(ctx context.Context, userID string, at time.Time) error {
	res := r.db.WithContext(ctx).Model(&models.User{}).Where("user_id = ?", userID).Update("last_login_at", at.UTC())
	if res.Error != nil {
		return translateError(res.Error, "failed to update last login")
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}
