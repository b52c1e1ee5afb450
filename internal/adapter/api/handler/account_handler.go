package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"gameclub/internal/usecase"
	"gameclub/pkg/response"
)

type AccountHandler struct {
	accountUseCase *usecase.AccountUseCase
}

func NewAccountHandler(accountUseCase *usecase.AccountUseCase) *AccountHandler {
	return &AccountHandler{
		accountUseCase: accountUseCase,
	}
}

type createAccountRequest struct {
	GameID   string `json:"game_id" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Region   string `json:"region" validate:"required"`
	Type     string `json:"type" validate:"omitempty,oneof=standard safe"`
}

func (h *AccountHandler) CreateAccount(c echo.Context) error {
	var req createAccountRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	account, err := h.accountUseCase.CreateAccount(c.Request().Context(), usecase.CreateAccountInput{
		GameID:   req.GameID,
		Email:    req.Email,
		Password: req.Password,
		Region:   req.Region,
		Type:     req.Type,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, "Account added to inventory", account)
}

func (h *AccountHandler) ListAccounts(c echo.Context) error {
	accounts, err := h.accountUseCase.ListAccounts(c.Request().Context(), c.QueryParam("gameId"), c.QueryParam("status"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, accounts)
}
