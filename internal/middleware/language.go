package middleware

import (
	"context"

	"github.com/SscSPs/finance_dashboard/internal/i18n"
	"github.com/gin-gonic/gin"
)

// LanguageMiddleware resolves the display language of every request from the lang
// query parameter, the lang cookie and the Accept-Language header, in that order.
func LanguageMiddleware(catalog *i18n.Catalog) gin.HandlerFunc {
	return func(c *gin.Context) {
		cookie, _ := c.Cookie(i18n.CookieName)
		lang := catalog.Resolve(c.Query(i18n.QueryParam), cookie, c.GetHeader("Accept-Language"))
		c.Request = c.Request.WithContext(context.WithValue(c.Request.Context(), languageKey, lang))
		c.Header("Content-Language", lang)
		c.Next()
	}
}
