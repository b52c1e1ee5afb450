package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"gameclub/internal/usecase"
	"gameclub/pkg/response"
)

type CartHandler struct {
	cartUseCase *usecase.CartUseCase
}

func NewCartHandler(cartUseCase *usecase.CartUseCase) *CartHandler {
	return &CartHandler{
		cartUseCase: cartUseCase,
	}
}

type addToCartRequest struct {
	GameID          string            `json:"game_id" validate:"required"`
	VariantID       string            `json:"variant_id"`
	SelectedOptions map[string]string `json:"selected_options"`
	Quantity        int               `json:"quantity" validate:"required,gt=0"`
}

type updateCartItemRequest struct {
	Quantity int `json:"quantity" validate:"gte=0"`
}

func (h *CartHandler) GetCart(c echo.Context) error {
	uid, _ := c.Get("uid").(string)

	cart, err := h.cartUseCase.GetCart(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, cart)
}

func (h *CartHandler) AddItem(c echo.Context) error {
	uid, _ := c.Get("uid").(string)

	var req addToCartRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	cart, err := h.cartUseCase.AddItem(c.Request().Context(), uid, usecase.AddToCartInput{
		GameID:          req.GameID,
		VariantID:       req.VariantID,
		SelectedOptions: req.SelectedOptions,
		Quantity:        req.Quantity,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, cart)
}

func (h *CartHandler) UpdateItem(c echo.Context) error {
	uid, _ := c.Get("uid").(string)

	var req updateCartItemRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	cart, err := h.cartUseCase.UpdateItemQuantity(c.Request().Context(), uid, c.Param("gameId"), req.Quantity)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, cart)
}

func (h *CartHandler) RemoveItem(c echo.Context) error {
	uid, _ := c.Get("uid").(string)

	cart, err := h.cartUseCase.RemoveItem(c.Request().Context(), uid, c.Param("gameId"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, cart)
}

func (h *CartHandler) ClearCart(c echo.Context) error {
	uid, _ := c.Get("uid").(string)

	cart, err := h.cartUseCase.ClearCart(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.SuccessMessage(c, "Cart cleared", cart)
}
