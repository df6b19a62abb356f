package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"github.com/SscSPs/finance_dashboard/internal/apperrors"
	"github.com/SscSPs/finance_dashboard/internal/core/domain"
	portssvc "github.com/SscSPs/finance_dashboard/internal/core/ports/services"
	"github.com/SscSPs/finance_dashboard/internal/dto"
	"github.com/SscSPs/finance_dashboard/internal/i18n"
	"github.com/SscSPs/finance_dashboard/internal/middleware"
	"github.com/SscSPs/finance_dashboard/internal/platform/config"
	"github.com/SscSPs/finance_dashboard/internal/utils"
	"github.com/gin-gonic/gin"
)

// AuthHandler handles registration, login and logout.
type AuthHandler struct {
	userService   portssvc.UserSvcFacade
	tokenService  portssvc.TokenSvcFacade
	catalog       *i18n.Catalog
	cfg           *config.Config
	posthogClient *utils.PosthogClientWrapper
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(us portssvc.UserSvcFacade, ts portssvc.TokenSvcFacade, catalog *i18n.Catalog, cfg *config.Config, posthogClient *utils.PosthogClientWrapper) *AuthHandler {
	return &AuthHandler{
		userService:   us,
		tokenService:  ts,
		catalog:       catalog,
		cfg:           cfg,
		posthogClient: posthogClient,
	}
}

// Register godoc
// @Summary Register new user
// @Description Creates a local account under one of the farmer, individual or company archetypes.
// @Tags auth
// @Accept json
// @Produce json
// @Param register body dto.RegisterRequest true "User Registration Info"
// @Success 201 {object} dto.UserResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse "Conflict (email already registered)"
// @Failure 500 {object} ErrorResponse
// @Router /auth/register [post]
func (h *AuthHandler) Register(c *gin.Context) {
	var req dto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, err)
		return
	}

	newUser, err := h.userService.RegisterUser(c.Request.Context(), req)
	if err != nil {
		respondWithError(c, err, "Failed to register user")
		return
	}

	middleware.PosthogEvent(c, h.posthogClient, newUser.UserID, "user_registered", map[string]any{
		"account_type": string(newUser.AccountType),
	})
	c.JSON(http.StatusCreated, dto.ToUserResponse(newUser))
}

// Login godoc
// @Summary User login
// @Description Authenticates a user for the chosen account type, returns a JWT and sets it as an HttpOnly cookie.
// @Tags auth
// @Accept json
// @Produce json
// @Param login body dto.LoginRequest true "Login Credentials"
// @Success 200 {object} dto.LoginResponse
// @Failure 400 {object} ErrorResponse
// @Failure 401 {object} ErrorResponse
// @Failure 429 {object} ErrorResponse
// @Failure 500 {object} ErrorResponse
// @Router /auth/login [post]
func (h *AuthHandler) Login(c *gin.Context) {
	var req dto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondWithBindError(c, err)
		return
	}

	user, err := h.userService.AuthenticateUser(c.Request.Context(), req.Email, req.Password, domain.AccountType(req.AccountType))
	if err != nil {
		if errors.Is(err, apperrors.ErrUnauthorized) {
			lang := middleware.GetLanguageFromContext(c)
			appErr := apperrors.NewUnauthorizedError(h.catalog.Text(lang, "invalid_credentials"))
			c.AbortWithStatusJSON(appErr.Code, appErr)
			return
		}
		respondWithError(c, err, "Failed to authenticate user")
		return
	}

	if !issueSession(c, h.tokenService, h.cfg, user) {
		return
	}
	middleware.PosthogEvent(c, h.posthogClient, user.UserID, "user_logged_in", map[string]any{
		"account_type": string(user.AccountType),
		"provider":     string(domain.ProviderLocal),
	})
}

// Logout godoc
// @Summary User logout
// @Description Clears the authentication cookie.
// @Tags auth
// @Success 204 "No Content"
// @Router /auth/logout [post]
func (h *AuthHandler) Logout(c *gin.Context) {
	clearAuthCookie(c, h.cfg)
	c.Status(http.StatusNoContent)
}

// Me godoc
// @Summary Current user
// @Description Returns the profile of the authenticated user.
// @Tags auth
// @Produce json
// @Success 200 {object} dto.UserResponse
// @Failure 401 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Security BearerAuth
// @Router /me [get]
func (h *AuthHandler) Me(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		respondWithError(c, apperrors.ErrUnauthorized, "Unauthorized")
		return
	}
	user, err := h.userService.GetUserByID(c.Request.Context(), userID)
	if err != nil {
		respondWithError(c, err, "Failed to load user")
		return
	}
	c.JSON(http.StatusOK, dto.ToUserResponse(user))
}

// issueSession signs an access token for user, sets the auth cookie and writes the login response.
// It reports whether the session was issued.
func issueSession(c *gin.Context, ts portssvc.TokenSvcFacade, cfg *config.Config, user *domain.User) bool {
	token, expiresAt, err := ts.GenerateAccessToken(c.Request.Context(), user)
	if err != nil {
		middleware.GetLoggerFromCtx(c.Request.Context()).Error("Failed to generate access token",
			slog.String("error", err.Error()), slog.String("user_id", user.UserID))
		appErr := apperrors.NewInternalServerError("Failed to generate token")
		c.AbortWithStatusJSON(appErr.Code, appErr)
		return false
	}
	setAuthCookie(c, cfg, token, expiresAt)
	c.JSON(http.StatusOK, dto.LoginResponse{
		Token:     token,
		ExpiresAt: expiresAt,
		User:      dto.ToUserResponse(user),
	})
	return true
}
