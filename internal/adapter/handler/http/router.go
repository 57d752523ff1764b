package http

import (
	"github.com/gin-gonic/gin"
	"github.com/mallforge/tradesvc/internal/adapter/config"
	"github.com/mallforge/tradesvc/internal/adapter/metrics"
	"github.com/mallforge/tradesvc/internal/core/port"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type Router struct {
	*gin.Engine
}

func NewRouter(
	conf *config.HTTP,
	tokenService port.TokenService,
	m *metrics.Metrics,
	tradeHandler *TradeHandler) (*Router, error) {

	router := gin.New()
	router.Use(observeRequests(m))

	// Swagger
	router.GET("/docs/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	router.GET("/metrics", gin.WrapH(metrics.Handler()))

	api := router.Group("/api")
	{
		trade := api.Group("/trade")
		{
			trade.Use(authCheck(tokenService))
			trade.POST("", tradeHandler.Checkout)
			trade.GET("/:sn", tradeHandler.GetTrade)
			trade.GET("/:sn/orders", tradeHandler.ListTradeOrders)
			trade.POST("/:sn/pay", tradeHandler.PayTrade)
		}

		order := api.Group("/order")
		{
			order.Use(authCheck(tokenService))
			order.POST("/:sn/pay", tradeHandler.PayOrder)
		}
	}

	return &Router{router}, nil
}

// Serve starts the HTTP server
func (r *Router) Serve(listenAddr string) error {
	return r.Run(listenAddr)
}
