package handlers

import (
	"github.com/SscSPs/cash_wallet_app/cmd/docs"
	portssvc "github.com/SscSPs/cash_wallet_app/internal/core/ports/services"
	"github.com/SscSPs/cash_wallet_app/internal/middleware"
	"github.com/SscSPs/cash_wallet_app/internal/platform/config"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"github.com/ulule/limiter/v3"
)

// RegisterRoutes sets up all application routes, injecting dependencies using interfaces.
// transferLimiter may be nil, in which case money-moving routes are not rate limited.
func RegisterRoutes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	transferLimiter *limiter.Limiter,
) {
	r.GET("/", getHome)
	r.GET("/health", getHealth)

	setupAPIV1Routes(r, cfg, services, transferLimiter)

	setupSwaggerRoutes(r, cfg)
}

// setupAPIV1Routes configures the /api/v1 group and delegates to specific entity route registrations
func setupAPIV1Routes(
	r *gin.Engine,
	cfg *config.Config,
	services *portssvc.ServiceContainer,
	transferLimiter *limiter.Limiter,
) {
	v1 := r.Group("/api/v1", middleware.AuthMiddleware(cfg.JWTSecret, cfg.JWTIssuer))

	var writeMiddleware []gin.HandlerFunc
	if transferLimiter != nil {
		writeMiddleware = append(writeMiddleware, middleware.RateLimit(transferLimiter))
	}

	RegisterTransactionRoutes(v1, services.Transfer, writeMiddleware...)
	RegisterWalletRoutes(v1, services.Wallet, writeMiddleware...)
	RegisterProfitRoutes(v1, services.Profit)
	RegisterReportingRoutes(v1, services.Reporting)
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
