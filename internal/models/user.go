package models

import (
	"database/sql"
	"time"
)

// User is the persisted form of a user. The gorm tags describe the SQLite schema;
// the Postgres schema lives in migrations/.
type User struct {
	UserID         string         `db:"user_id" gorm:"column:user_id;primaryKey"`
	Name           string         `db:"name" gorm:"column:name;not null"`
	Email          string         `db:"email" gorm:"column:email;not null;uniqueIndex"`
	PasswordHash   sql.NullString `db:"password_hash" gorm:"column:password_hash"` // NULL for OAuth-only users
	AccountType    string         `db:"account_type" gorm:"column:account_type;not null"`
	AuthProvider   string         `db:"auth_provider" gorm:"column:auth_provider;not null;default:local"`
	ProviderUserID sql.NullString `db:"provider_user_id" gorm:"column:provider_user_id;index:idx_users_provider"`
	IsActive       bool           `db:"is_active" gorm:"column:is_active;not null;default:true"`
	CreatedAt      time.Time      `db:"created_at" gorm:"column:created_at;not null"`
	LastLoginAt    sql.NullTime   `db:"last_login_at" gorm:"column:last_login_at"`
}

// TableName pins the gorm table name to the one used by the Postgres schema.
func (User) TableName() string { return "users" }
