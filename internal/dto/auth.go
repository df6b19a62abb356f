package dto

import "time"

// RegisterRequest is the body of POST /auth/register.
type RegisterRequest struct {
	Name        string `json:"name" binding:"required,max=100"`
	Email       string `json:"email" binding:"required,appemail"`
	Password    string `json:"password" binding:"required,strongpassword"`
	AccountType string `json:"accountType" binding:"required,accounttype"`
}

// LoginRequest is the body of POST /auth/login. The account type is part of the
// credentials: a farmer cannot sign in to the company dashboard.
type LoginRequest struct {
	Email       string `json:"email" binding:"required"`
	Password    string `json:"password" binding:"required"`
	AccountType string `json:"accountType" binding:"required,accounttype"`
}

// LoginResponse represents the response for a successful login.
type LoginResponse struct {
	Token     string       `json:"token"`
	ExpiresAt time.Time    `json:"expiresAt"`
	User      UserResponse `json:"user"`
}

// ExchangeCodeRequest is the body of POST /auth/google/exchange-code.
// Either the authorization code or a Google ID token obtained by the client must be set.
type ExchangeCodeRequest struct {
	Code        string `json:"code" binding:"required_without=IDToken"`
	IDToken     string `json:"idToken"`
	AccountType string `json:"accountType" binding:"required,accounttype"`
}
