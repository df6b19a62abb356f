package handlers

import (
	"net/http"
	"time"

	"github.com/SscSPs/finance_dashboard/internal/apperrors"
	"github.com/SscSPs/finance_dashboard/internal/core/domain"
	portssvc "github.com/SscSPs/finance_dashboard/internal/core/ports/services"
	"github.com/SscSPs/finance_dashboard/internal/dto"
	"github.com/SscSPs/finance_dashboard/internal/i18n"
	"github.com/SscSPs/finance_dashboard/internal/middleware"
	"github.com/gin-gonic/gin"
)

type dashboardHandler struct {
	dashboardService portssvc.DashboardSvc
	catalog          *i18n.Catalog
	now              func() time.Time
}

func registerDashboardRoutes(rg *gin.RouterGroup, ds portssvc.DashboardSvc, catalog *i18n.Catalog) {
	h := &dashboardHandler{dashboardService: ds, catalog: catalog, now: time.Now}
	rg.GET("/dashboard", h.getDashboard)
}

// getDashboard godoc
// @Summary Dashboard
// @Description Returns the transaction summary, the metrics of the user's account type and the recommendations derived from them. Missing data sources are reported as translated notices.
// @Tags dashboard
// @Produce  json
// @Param   lang query string false "Display language (en or te)"
// @Success 200 {object} dto.DashboardResponse
// @Failure 401 {object} ErrorResponse "Unauthorized"
// @Security BearerAuth
// @Router /dashboard [get]
func (h *dashboardHandler) getDashboard(c *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(c)
	if !ok {
		respondWithError(c, apperrors.ErrUnauthorized, "Unauthorized")
		return
	}
	accountType, ok := middleware.GetAccountTypeFromContext(c)
	if !ok {
		respondWithError(c, apperrors.ErrUnauthorized, "Unauthorized")
		return
	}
	lang := middleware.GetLanguageFromContext(c)

	viewer := domain.ViewerContext{
		UserID:      userID,
		AccountType: accountType,
		Language:    lang,
		Now:         h.now(),
	}
	d, err := h.dashboardService.Dashboard(c.Request.Context(), viewer)
	if err != nil {
		respondWithError(c, err, "Failed to build dashboard")
		return
	}

	c.JSON(http.StatusOK, dto.ToDashboardResponse(d, lang, func(key string) string {
		return h.catalog.Text(lang, key)
	}))
}
