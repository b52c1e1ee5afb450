package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"gameclub/internal/usecase"
	"gameclub/pkg/response"
)

type ReviewHandler struct {
	reviewUseCase *usecase.ReviewUseCase
}

func NewReviewHandler(reviewUseCase *usecase.ReviewUseCase) *ReviewHandler {
	return &ReviewHandler{
		reviewUseCase: reviewUseCase,
	}
}

type createReviewRequest struct {
	Rating  int    `json:"rating" validate:"required,gte=1,lte=5"`
	Comment string `json:"comment" validate:"required,min=3"`
}

type createPriceAlertRequest struct {
	GameID      string `json:"game_id" validate:"required"`
	Email       string `json:"email" validate:"required,email"`
	TargetPrice int64  `json:"target_price" validate:"required,gt=0"`
}

func (h *ReviewHandler) ListGameReviews(c echo.Context) error {
	reviews, err := h.reviewUseCase.ListGameReviews(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, reviews)
}

func (h *ReviewHandler) CreateReview(c echo.Context) error {
	uid, _ := c.Get("uid").(string)

	var req createReviewRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	review, err := h.reviewUseCase.CreateReview(c.Request().Context(), usecase.CreateReviewInput{
		GameID:  c.Param("id"),
		UserID:  uid,
		Rating:  req.Rating,
		Comment: req.Comment,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, "Review submitted", review)
}

func (h *ReviewHandler) CreatePriceAlert(c echo.Context) error {
	uid, _ := c.Get("uid").(string)

	var req createPriceAlertRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	alert, err := h.reviewUseCase.CreatePriceAlert(c.Request().Context(), usecase.CreatePriceAlertInput{
		GameID:      req.GameID,
		UserID:      uid,
		Email:       req.Email,
		TargetPrice: req.TargetPrice,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, "Price alert registered", alert)
}

func (h *ReviewHandler) ListMyPriceAlerts(c echo.Context) error {
	uid, _ := c.Get("uid").(string)

	alerts, err := h.reviewUseCase.ListUserPriceAlerts(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, alerts)
}
