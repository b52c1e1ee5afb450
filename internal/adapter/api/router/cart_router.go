package router

import (
	"github.com/labstack/echo/v4"

	"gameclub/internal/adapter/api/handler"
	"gameclub/internal/adapter/api/middleware"
)

func SetupCartRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	cartHandler := handler.GetCartHandler()

	cart := e.Group("/api/cart", authMiddleware.Authenticate)
	cart.GET("", cartHandler.GetCart)
	cart.POST("/items", cartHandler.AddItem)
	cart.PATCH("/items/:gameId", cartHandler.UpdateItem)
	cart.DELETE("/items/:gameId", cartHandler.RemoveItem)
	cart.DELETE("", cartHandler.ClearCart)
}
