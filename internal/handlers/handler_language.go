package handlers

import (
	"net/http"

	"github.com/SscSPs/finance_dashboard/internal/apperrors"
	"github.com/SscSPs/finance_dashboard/internal/dto"
	"github.com/SscSPs/finance_dashboard/internal/i18n"
	"github.com/SscSPs/finance_dashboard/internal/middleware"
	"github.com/SscSPs/finance_dashboard/internal/platform/config"
	"github.com/gin-gonic/gin"
)

type languageHandler struct {
	catalog *i18n.Catalog
	cfg     *config.Config
}

func registerLanguageRoutes(rg *gin.RouterGroup, catalog *i18n.Catalog, cfg *config.Config) {
	h := &languageHandler{catalog: catalog, cfg: cfg}
	rg.PUT("/language/:lang", h.setLanguage)
	rg.GET("/translations", h.getTranslations)
}

// setLanguage godoc
// @Summary Set display language
// @Description Stores the preferred language in a cookie.
// @Tags i18n
// @Produce  json
// @Param   lang path string true "Language code (en or te)"
// @Success 200 {object} dto.LanguageResponse
// @Failure 400 {object} ErrorResponse "Unsupported language"
// @Router /language/{lang} [put]
func (h *languageHandler) setLanguage(c *gin.Context) {
	lang := c.Param("lang")
	if !h.catalog.IsSupported(lang) {
		appErr := apperrors.NewBadRequestError("Unsupported language: " + lang)
		c.AbortWithStatusJSON(appErr.Code, appErr)
		return
	}
	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(i18n.CookieName, lang, languageCookieMaxAge, "/", "", h.cfg.IsProduction, false)
	c.Header("Content-Language", lang)
	c.JSON(http.StatusOK, dto.LanguageResponse{Language: lang})
}

// getTranslations godoc
// @Summary UI strings
// @Description Returns the string table of the request's language with English filling any gaps.
// @Tags i18n
// @Produce  json
// @Param   lang query string false "Language code (en or te)"
// @Success 200 {object} dto.TranslationsResponse
// @Router /translations [get]
func (h *languageHandler) getTranslations(c *gin.Context) {
	lang := middleware.GetLanguageFromContext(c)
	c.JSON(http.StatusOK, dto.TranslationsResponse{
		Language:  lang,
		Available: h.catalog.Supported(),
		Strings:   h.catalog.Strings(lang),
	})
}
