package router

import (
	"github.com/labstack/echo/v4"

	"gameclub/internal/adapter/api/handler"
	"gameclub/internal/adapter/api/middleware"
)

func SetupOrderRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminKeyMiddleware) {
	orderHandler := handler.GetOrderHandler()

	// Checkout works for guests too; the payment callback is unauthenticated
	// because the gateway calls it.
	e.POST("/api/orders", orderHandler.CreateOrder, authMiddleware.OptionalAuthenticate)
	e.POST("/api/orders/verify-payment", orderHandler.VerifyPayment)

	e.GET("/api/orders", orderHandler.ListMyOrders, authMiddleware.Authenticate)
	e.GET("/api/orders/:id", orderHandler.GetOrder, authMiddleware.Authenticate)
	e.PATCH("/api/orders/:id/ack", orderHandler.AcknowledgeDelivery, authMiddleware.Authenticate)

	admin := e.Group("/api/orders", adminMiddleware.Require)
	admin.GET("/admin", orderHandler.AdminSearch)
	admin.GET("/admin/all", orderHandler.AdminListAll)
	admin.PATCH("/:id/status", orderHandler.UpdateStatus)
	admin.PATCH("/:id/delivery", orderHandler.UpdateDelivery)
	admin.POST("/:id/notify", orderHandler.NotifyCustomer)
}
