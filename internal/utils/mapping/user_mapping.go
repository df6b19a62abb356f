package mapping

import (
	"database/sql"

	"github.com/SscSPs/finance_dashboard/internal/core/domain"
	"github.com/SscSPs/finance_dashboard/internal/models"
)

// ToModelUser converts a domain User to a model User
func ToModelUser(d domain.User) models.User {
	m := models.User{
		UserID:       d.UserID,
		Name:         d.Name,
		Email:        d.Email,
		PasswordHash: sql.NullString{String: d.PasswordHash, Valid: d.PasswordHash != ""},
		AccountType:  string(d.AccountType),
		AuthProvider: string(d.AuthProvider),
		IsActive:     d.IsActive,
		CreatedAt:    d.CreatedAt,
	}
	if m.AuthProvider == "" {
		m.AuthProvider = string(domain.ProviderLocal)
	}
	if d.ProviderUserID != nil {
		m.ProviderUserID = sql.NullString{String: *d.ProviderUserID, Valid: true}
	}
	if d.LastLoginAt != nil {
		m.LastLoginAt = sql.NullTime{Time: *d.LastLoginAt, Valid: true}
	}
	return m
}

// ToDomainUser converts a model User to a domain User
func ToDomainUser(m models.User) domain.User {
	d := domain.User{
		UserID:       m.UserID,
		Name:         m.Name,
		Email:        m.Email,
		PasswordHash: m.PasswordHash.String,
		AccountType:  domain.AccountType(m.AccountType),
		AuthProvider: domain.AuthProvider(m.AuthProvider),
		IsActive:     m.IsActive,
		CreatedAt:    m.CreatedAt.UTC(),
	}
	if m.ProviderUserID.Valid {
		pid := m.ProviderUserID.String
		d.ProviderUserID = &pid
	}
	if m.LastLoginAt.Valid {
		at := m.LastLoginAt.Time.UTC()
		d.LastLoginAt = &at
	}
	return d
}
