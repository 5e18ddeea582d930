package routes

import (
	"checkout_gateway/internal/adapter/http/handlers"

	"github.com/gin-gonic/gin"
)

const (
	PathCheckout   = "/checkout"
	PathReturn     = PathCheckout + "/return"
	PathLegacyInit = "/api/pago/init"
	PathHealth     = "/health"
)

func addCheckoutRoutes(rg *gin.RouterGroup, checkoutHandler *handlers.CheckoutHandler, limiter gin.HandlerFunc) {
	// The buyer's browser lands here mid-payment; it always gets a redirect,
	// so it stays out of the rate limiter.
	rg.GET(PathReturn, checkoutHandler.ReturnFromProcessor)
	rg.POST(PathReturn, checkoutHandler.ReturnFromProcessor)

	checkout := rg.Group(PathCheckout)
	if limiter != nil {
		checkout.Use(limiter)
	}
	{
		checkout.POST("/init", checkoutHandler.InitCheckout)
		checkout.POST("/confirm", checkoutHandler.ConfirmTransaction)
		checkout.GET("/transactions/:buy_order", checkoutHandler.ListTransactions)
	}

	// Older app builds still post here.
	legacy := rg.Group("")
	if limiter != nil {
		legacy.Use(limiter)
	}
	legacy.POST(PathLegacyInit, checkoutHandler.InitCheckout)
}

func addHealthRoutes(rg *gin.RouterGroup, healthHandler *handlers.HealthHandler) {
	rg.GET(PathHealth, healthHandler.Health)
}
