package router

import (
	"github.com/labstack/echo/v4"

	"gameclub/internal/adapter/api/handler"
	"gameclub/internal/adapter/api/middleware"
)

func SetupUploadRouter(e *echo.Echo, adminMiddleware *middleware.AdminKeyMiddleware) {
	uploadHandler := handler.GetUploadHandler()

	e.POST("/api/upload/image", uploadHandler.UploadImage, adminMiddleware.Require)
}
