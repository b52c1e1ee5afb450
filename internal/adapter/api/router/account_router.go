package router

import (
	"github.com/labstack/echo/v4"

	"gameclub/internal/adapter/api/handler"
	"gameclub/internal/adapter/api/middleware"
)

func SetupAccountRouter(e *echo.Echo, adminMiddleware *middleware.AdminKeyMiddleware) {
	accountHandler := handler.GetAccountHandler()

	admin := e.Group("/api/accounts", adminMiddleware.Require)
	admin.GET("", accountHandler.ListAccounts)
	admin.POST("", accountHandler.CreateAccount)
}
