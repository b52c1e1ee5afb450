package router

import (
	"github.com/labstack/echo/v4"

	"gameclub/internal/adapter/api/handler"
	"gameclub/internal/adapter/api/middleware"
)

// SetupContentRouter wires the two CMS singletons: marketing settings and
// landing-page content. Reads are public, writes need the admin key.
func SetupContentRouter(e *echo.Echo, adminMiddleware *middleware.AdminKeyMiddleware) {
	marketingHandler := handler.GetMarketingHandler()
	homeContentHandler := handler.GetHomeContentHandler()

	e.GET("/api/marketing", marketingHandler.GetSettings)
	e.PATCH("/api/marketing", marketingHandler.UpdateSettings, adminMiddleware.Require)

	e.GET("/api/home", homeContentHandler.GetContent)
	e.PATCH("/api/home", homeContentHandler.UpdateContent, adminMiddleware.Require)
}
