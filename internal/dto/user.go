package dto

import (
	"time"

	"github.com/SscSPs/finance_dashboard/internal/core/domain"
)

type UserResponse struct {
	UserID       string     `json:"userID"`
	Name         string     `json:"name"`
	Email        string     `json:"email"`
	AccountType  string     `json:"accountType"`
	AuthProvider string     `json:"authProvider"`
	CreatedAt    time.Time  `json:"createdAt"`
	LastLoginAt  *time.Time `json:"lastLoginAt,omitempty"`
}

func ToUserResponse(user *domain.User) UserResponse {
	return UserResponse{
		UserID:       user.UserID,
		Name:         user.Name,
		Email:        user.Email,
		AccountType:  string(user.AccountType),
		AuthProvider: string(user.AuthProvider),
		CreatedAt:    user.CreatedAt,
		LastLoginAt:  user.LastLoginAt,
	}
}
