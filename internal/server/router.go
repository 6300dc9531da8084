package server

import (
	handler "auctions/services/bidding/handler"

	"github.com/gin-gonic/gin"
)

// SetupRouter configures all Gin routes for the application
func SetupRouter(service handler.BiddingServiceInterface) *gin.Engine {
	router := gin.New() // no default middleware, logging goes through logrus

	router.Use(gin.Recovery())          // recover from panics
	router.Use(RequestLoggerMiddleware) // custom request logging

	biddingHandler := handler.NewBiddingHandler(service)

	auctions := router.Group("/auctions")
	{
		auctions.GET("", biddingHandler.GetActiveAuctionsHandler)
		auctions.GET("/:auction_id", biddingHandler.GetAuctionHandler)
		auctions.POST("/:auction_id/withdrawals", biddingHandler.WithdrawBidsHandler)
	}

	return router
}
