package handlers

import (
	"net/http"

	"github.com/SscSPs/finance_dashboard/cmd/docs"
	portssvc "github.com/SscSPs/finance_dashboard/internal/core/ports/services"
	"github.com/SscSPs/finance_dashboard/internal/i18n"
	"github.com/SscSPs/finance_dashboard/internal/middleware"
	"github.com/SscSPs/finance_dashboard/internal/platform/config"
	"github.com/SscSPs/finance_dashboard/internal/utils"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
// loginLimiter throttles the credential endpoints per client IP.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	catalog *i18n.Catalog,
	loginLimiter *limiter.Limiter,
	posthogClient *utils.PosthogClientWrapper,
) {
	// Add health check route
	r.GET("/health", func(c *gin.Context) {
		c.String(http.StatusOK, "OK")
	})

	api := r.Group("/api/v1", middleware.LanguageMiddleware(catalog))

	// Public routes
	registerAuthRoutes(api, cfg, services, catalog, loginLimiter, posthogClient)
	registerLanguageRoutes(api, catalog, cfg)

	// Everything else requires a valid access token
	protected := api.Group("",
		middleware.AuthMiddleware(cfg.JWTSecret, cfg.AuthCookieName),
		middleware.PosthogMiddleware(posthogClient),
	)
	authHandler := NewAuthHandler(services.User, services.TokenService, catalog, cfg, posthogClient)
	protected.GET("/me", authHandler.Me)
	registerDashboardRoutes(protected, services.Dashboard, catalog)
	registerTransactionRoutes(protected, services.Transaction, posthogClient)

	setupSwaggerRoutes(r, cfg)
}

// registerAuthRoutes sets up the public authentication routes.
func registerAuthRoutes(
	api *gin.RouterGroup,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	catalog *i18n.Catalog,
	loginLimiter *limiter.Limiter,
	posthogClient *utils.PosthogClientWrapper,
) {
	h := NewAuthHandler(services.User, services.TokenService, catalog, cfg, posthogClient)
	google := NewGoogleOAuthHandler(services.GoogleOAuthHandler, services.User, services.TokenService, cfg, posthogClient)
	limit := middleware.RateLimit(loginLimiter)

	auth := api.Group("/auth")
	{
		auth.POST("/register", h.Register)
		auth.POST("/login", limit, h.Login)
		auth.POST("/logout", h.Logout)
		auth.POST("/google/exchange-code", limit, google.ExchangeCodeGoogle)
	}
}

// setupSwaggerRoutes configures the swagger documentation routes
func setupSwaggerRoutes(r *gin.Engine, cfg *config.Config) {
	if cfg.IsProduction {
		//no swagger in prod
		return
	}
	docs.SwaggerInfo.BasePath = "/api/v1"
	swagger := r.Group("/swagger")
	swagger.GET("/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}
