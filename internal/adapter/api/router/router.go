package router

import (
	"github.com/labstack/echo/v4"

	"gameclub/internal/adapter/api/middleware"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminKeyMiddleware) {
	SetupAuthRouter(e, authMiddleware)
	SetupGameRouter(e, authMiddleware, adminMiddleware)
	SetupCartRouter(e, authMiddleware)
	SetupOrderRouter(e, authMiddleware, adminMiddleware)
	SetupContentRouter(e, adminMiddleware)
	SetupAccountRouter(e, adminMiddleware)
	SetupUploadRouter(e, adminMiddleware)
	SetupHealthRouter(e)
}
