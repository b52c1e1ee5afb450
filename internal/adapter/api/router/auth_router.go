package router

import (
	"github.com/labstack/echo/v4"

	"gameclub/internal/adapter/api/handler"
	"gameclub/internal/adapter/api/middleware"
)

func SetupAuthRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	authHandler := handler.GetAuthHandler()

	e.POST("/api/auth/register", authHandler.Register)
	e.POST("/api/auth/login", authHandler.Login)
	e.GET("/api/auth/me", authHandler.Me, authMiddleware.Authenticate)
}
