package handlers

import (
	"net/http"
	"time"

	"github.com/SscSPs/finance_dashboard/internal/platform/config"
	"github.com/gin-gonic/gin"
)

const languageCookieMaxAge = 365 * 24 * 60 * 60

func setAuthCookie(c *gin.Context, cfg *config.Config, token string, expiresAt time.Time) {
	maxAge := int(time.Until(expiresAt).Seconds())
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(cfg.AuthCookieName, token, maxAge, "/", "", cfg.IsProduction, true)
}

func clearAuthCookie(c *gin.Context, cfg *config.Config) {
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(cfg.AuthCookieName, "", -1, "/", "", cfg.IsProduction, true)
}
