package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"gameclub/internal/domain/entity"
	"gameclub/internal/usecase"
	"gameclub/pkg/response"
)

type HomeContentHandler struct {
	homeContentUseCase *usecase.HomeContentUseCase
}

func NewHomeContentHandler(homeContentUseCase *usecase.HomeContentUseCase) *HomeContentHandler {
	return &HomeContentHandler{
		homeContentUseCase: homeContentUseCase,
	}
}

type updateHomeContentRequest struct {
	Hero         *entity.HeroContent    `json:"hero"`
	Carousel     []entity.CarouselSlide `json:"carousel"`
	Spotlights   []entity.Spotlight     `json:"spotlights"`
	TrustSignals []entity.TrustSignal   `json:"trust_signals"`
	Testimonials []entity.Testimonial   `json:"testimonials"`
}

func (h *HomeContentHandler) GetContent(c echo.Context) error {
	content, err := h.homeContentUseCase.GetContent(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, content)
}

func (h *HomeContentHandler) UpdateContent(c echo.Context) error {
	var req updateHomeContentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	content, err := h.homeContentUseCase.UpdateContent(c.Request().Context(), usecase.UpdateHomeContentInput{
		Hero:         req.Hero,
		Carousel:     req.Carousel,
		Spotlights:   req.Spotlights,
		TrustSignals: req.TrustSignals,
		Testimonials: req.Testimonials,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.SuccessMessage(c, "Home content updated", content)
}
