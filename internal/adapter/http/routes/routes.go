package routes

import (
	_ "checkout_gateway/docs"
	"checkout_gateway/internal/adapter/http/handlers"
	"checkout_gateway/internal/adapter/http/middleware"
	"checkout_gateway/internal/config"
	"checkout_gateway/internal/usecase"
	"checkout_gateway/pkg/logger"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
)

// NewRouter builds the HTTP engine for the checkout gateway.
func NewRouter(cfg *config.Config, checkoutUseCase usecase.ICheckoutUseCase) *gin.Engine {
	if cfg.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	if err := router.SetTrustedProxies(cfg.TrustedProxies); err != nil {
		logger.L().Error("invalid TRUSTED_PROXIES; trusting no proxy", zap.Error(err))
		_ = router.SetTrustedProxies(nil)
	}
	setMiddlewares(router, cfg)

	// Swagger documentation endpoint
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	checkoutHandler := handlers.NewCheckoutHandler(checkoutUseCase, handlers.ReturnPageOptions{
		Mode:          cfg.Return.Mode,
		FallbackDelay: cfg.Return.FallbackDelay,
	})
	healthHandler := handlers.NewHealthHandler(cfg.Environment, cfg.CORSOrigins, cfg.AllowedOriginsLabel())

	var limiter gin.HandlerFunc
	if cfg.RateLimit.Enabled {
		limiter = middleware.NewRateLimiter(cfg.RateLimit.RPS, cfg.RateLimit.Burst).Middleware()
	}

	root := router.Group("")
	addHealthRoutes(root, healthHandler)
	addCheckoutRoutes(root, checkoutHandler, limiter)

	return router
}

func setMiddlewares(router *gin.Engine, cfg *config.Config) {
	router.Use(middleware.RequestLogger())
	router.Use(middleware.Recovery())
	router.Use(middleware.CORS(cfg.CORSOrigins, PathReturn))
}
