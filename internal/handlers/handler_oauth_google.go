package handlers

import (
	"log/slog"
	"strings"

	"github.com/SscSPs/finance_dashboard/internal/apperrors"
	"github.com/SscSPs/finance_dashboard/internal/core/domain"
	portssvc "github.com/SscSPs/finance_dashboard/internal/core/ports/services"
	"github.com/SscSPs/finance_dashboard/internal/dto"
	"github.com/SscSPs/finance_dashboard/internal/middleware"
	"github.com/SscSPs/finance_dashboard/internal/platform/config"
	"github.com/SscSPs/finance_dashboard/internal/utils"
	"github.com/gin-gonic/gin"
)

// GoogleOAuthHandler handles Google sign-in.
type GoogleOAuthHandler struct {
	googleOAuthService portssvc.GoogleOAuthHandlerSvcFacade
	userService        portssvc.UserSvcFacade
	tokenService       portssvc.TokenSvcFacade
	cfg                *config.Config
	posthogClient      *utils.PosthogClientWrapper
}

// NewGoogleOAuthHandler creates a new instance of GoogleOAuthHandler.
func NewGoogleOAuthHandler(
	googleOAuthService portssvc.GoogleOAuthHandlerSvcFacade,
	userService portssvc.UserSvcFacade,
	tokenService portssvc.TokenSvcFacade,
	cfg *config.Config,
	posthogClient *utils.PosthogClientWrapper,
) *GoogleOAuthHandler {
	return &GoogleOAuthHandler{
		googleOAuthService: googleOAuthService,
		userService:        userService,
		tokenService:       tokenService,
		cfg:                cfg,
		posthogClient:      posthogClient,
	}
}

// ExchangeCodeGoogle handles the POST request from the frontend containing either the
// authorization code from Google or an ID token the frontend obtained itself.
// It validates the ID token, finds or creates the user for the requested account type,
// and returns an application JWT.
// @Summary Sign in with Google
// @Description Exchange a Google authorization code (or ID token) for an application access token
// @Tags auth
// @Accept  json
// @Produce  json
// @Param   request body dto.ExchangeCodeRequest true "Authorization code or ID token, and account type"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse "Invalid authorization code"
// @Failure 401 {object} ErrorResponse "Invalid Google ID token or account type mismatch"
// @Failure 504 {object} ErrorResponse "Google could not be reached"
// @Router /auth/google/exchange-code [post]
func (h *GoogleOAuthHandler) ExchangeCodeGoogle(c *gin.Context) {
	ctx := c.Request.Context()
	logger := middleware.GetLoggerFromCtx(ctx)

	var req dto.ExchangeCodeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, err)
		return
	}

	idTokenString := req.IDToken
	if idTokenString == "" {
		// 1. Exchange authorization code for Google tokens
		oauth2Token, err := h.googleOAuthService.ExchangeCodeForToken(ctx, req.Code)
		if err != nil {
			logger.Error("Failed to exchange authorization code with Google", slog.String("error", err.Error()))
			appErr := apperrors.NewGatewayTimeoutError("Failed to communicate with Google OAuth service.")
			// An invalid code is the client's problem in this flow.
			if lower := strings.ToLower(err.Error()); strings.Contains(lower, "invalid_grant") || strings.Contains(lower, "bad request") {
				appErr = apperrors.NewBadRequestError("Invalid or expired authorization code provided by Google.")
			}
			c.AbortWithStatusJSON(appErr.Code, appErr)
			return
		}

		var ok bool
		idTokenString, ok = oauth2Token.Extra("id_token").(string)
		if !ok || idTokenString == "" {
			logger.Error("ID token not found in Google's token response")
			appErr := apperrors.NewInternalServerError("Failed to retrieve ID token from Google.")
			c.AbortWithStatusJSON(appErr.Code, appErr)
			return
		}
	}

	// 2. Validate Google's ID Token
	payload, err := h.googleOAuthService.ValidateGoogleIDToken(ctx, idTokenString)
	if err != nil {
		logger.Warn("Google ID token validation failed", slog.String("error", err.Error()))
		appErr := apperrors.NewUnauthorizedError("Invalid Google ID token")
		c.AbortWithStatusJSON(appErr.Code, appErr)
		return
	}

	// 3. Extract user information from the validated payload
	email, _ := payload.Claims["email"].(string)
	name, _ := payload.Claims["name"].(string)
	emailVerified, _ := payload.Claims["email_verified"].(bool)
	providerUserID := payload.Subject

	if email == "" || providerUserID == "" {
		logger.Error("Essential claims (email or sub) missing from Google ID token payload")
		appErr := apperrors.NewInternalServerError("Essential user information missing from Google token.")
		c.AbortWithStatusJSON(appErr.Code, appErr)
		return
	}

	// 4. Find or create the user
	user, err := h.userService.CreateOAuthUser(ctx, name, email, domain.AccountType(req.AccountType),
		domain.ProviderGoogle, providerUserID, emailVerified)
	if err != nil {
		respondWithError(c, err, "Failed to process user authentication")
		return
	}
	logger.Info("User signed in via Google", slog.String("user_id", user.UserID))

	// 5. Issue the application's JWT
	if !issueSession(c, h.tokenService, h.cfg, user) {
		return
	}
	middleware.PosthogEvent(c, h.posthogClient, user.UserID, "user_logged_in", map[string]any{
		"account_type": string(user.AccountType),
		"provider":     string(domain.ProviderGoogle),
	})
}
