package router

import (
	"github.com/labstack/echo/v4"

	"gameclub/internal/adapter/api/handler"
	"gameclub/internal/adapter/api/middleware"
)

func SetupGameRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminKeyMiddleware) {
	gameHandler := handler.GetGameHandler()
	reviewHandler := handler.GetReviewHandler()

	// Public catalog
	e.GET("/api/games", gameHandler.ListGames)
	e.GET("/api/games/:id", gameHandler.GetGame)
	e.GET("/api/games/:id/reviews", reviewHandler.ListGameReviews)

	// Reviews and alerts need a signed-in user
	e.POST("/api/games/:id/reviews", reviewHandler.CreateReview, authMiddleware.Authenticate)
	e.POST("/api/price-alerts", reviewHandler.CreatePriceAlert, authMiddleware.OptionalAuthenticate)
	e.GET("/api/price-alerts", reviewHandler.ListMyPriceAlerts, authMiddleware.Authenticate)

	// Back office
	admin := e.Group("/api/games", adminMiddleware.Require)
	admin.POST("", gameHandler.CreateGame)
	admin.POST("/seed", gameHandler.SeedGames)
	admin.PATCH("/:id", gameHandler.UpdateGame)
	admin.DELETE("/:id", gameHandler.DeleteGame)
}
