package middleware

import (
	"context"

	"github.com/SscSPs/finance_dashboard/internal/core/domain"
	"github.com/gin-gonic/gin"
)

const (
	userIDKey      = contextKey("userID")
	accountTypeKey = contextKey("accountType")
	languageKey    = contextKey("language")
)

// GetUserIDFromContext retrieves the authenticated user ID from the Gin context.
// It returns the user ID and a boolean indicating if it was found.
func GetUserIDFromContext(c *gin.Context) (string, bool) {
	if userID, ok := c.Request.Context().Value(userIDKey).(string); ok && userID != "" {
		return userID, true
	}
	return "", false
}

// GetAccountTypeFromContext retrieves the account type carried by the access token.
func GetAccountTypeFromContext(c *gin.Context) (domain.AccountType, bool) {
	accountType, ok := c.Request.Context().Value(accountTypeKey).(domain.AccountType)
	return accountType, ok && accountType.IsValid()
}

// GetLanguageFromContext returns the language resolved for the request, "en" if none was.
func GetLanguageFromContext(c *gin.Context) string {
	return languageFromCtx(c.Request.Context())
}

func languageFromCtx(ctx context.Context) string {
	if lang, ok := ctx.Value(languageKey).(string); ok && lang != "" {
		return lang
	}
	return "en"
}
