package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"gameclub/internal/domain/repository"
	"gameclub/internal/usecase"
	"gameclub/pkg/response"
)

type GameHandler struct {
	gameUseCase *usecase.GameUseCase
}

func NewGameHandler(gameUseCase *usecase.GameUseCase) *GameHandler {
	return &GameHandler{
		gameUseCase: gameUseCase,
	}
}

type gameOptionRequest struct {
	ID     string   `json:"id" validate:"required"`
	Name   string   `json:"name" validate:"required"`
	Values []string `json:"values" validate:"required,min=1"`
}

type gameVariantRequest struct {
	ID              string            `json:"id" validate:"required"`
	SelectedOptions map[string]string `json:"selected_options"`
	Price           int64             `json:"price" validate:"required,gt=0"`
	Stock           int               `json:"stock" validate:"gte=0"`
}

type createGameRequest struct {
	Title                string               `json:"title" validate:"required"`
	Slug                 string               `json:"slug" validate:"required"`
	Description          string               `json:"description" validate:"required"`
	DetailedDescription  string               `json:"detailed_description"`
	Genre                []string             `json:"genre" validate:"required,min=1"`
	Platform             string               `json:"platform" validate:"required"`
	RegionOptions        []string             `json:"region_options"`
	BasePrice            int64                `json:"base_price" validate:"required,gt=0"`
	SafeAccountAvailable bool                 `json:"safe_account_available"`
	CoverURL             string               `json:"cover_url"`
	Gallery              []string             `json:"gallery"`
	Tags                 []string             `json:"tags"`
	Options              []gameOptionRequest  `json:"options" validate:"dive"`
	Variants             []gameVariantRequest `json:"variants" validate:"dive"`
}

type updateGameRequest struct {
	Title                *string              `json:"title"`
	Slug                 *string              `json:"slug"`
	Description          *string              `json:"description"`
	DetailedDescription  *string              `json:"detailed_description"`
	Genre                []string             `json:"genre"`
	Platform             *string              `json:"platform"`
	RegionOptions        []string             `json:"region_options"`
	BasePrice            *int64               `json:"base_price" validate:"omitempty,gt=0"`
	SafeAccountAvailable *bool                `json:"safe_account_available"`
	CoverURL             *string              `json:"cover_url"`
	Gallery              []string             `json:"gallery"`
	Tags                 []string             `json:"tags"`
	Options              []gameOptionRequest  `json:"options" validate:"omitempty,dive"`
	Variants             []gameVariantRequest `json:"variants" validate:"omitempty,dive"`
}

func (h *GameHandler) ListGames(c echo.Context) error {
	filter := repository.GameFilter{
		Genre:  c.QueryParam("genre"),
		Region: c.QueryParam("region"),
		Search: c.QueryParam("search"),
		Sort:   c.QueryParam("sort"),
	}
	if safeOnly := c.QueryParam("safeOnly"); safeOnly == "true" {
		yes := true
		filter.SafeOnly = &yes
	}

	games, err := h.gameUseCase.ListGames(c.Request().Context(), filter)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, games)
}

func (h *GameHandler) GetGame(c echo.Context) error {
	game, err := h.gameUseCase.GetGame(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, game)
}

func (h *GameHandler) CreateGame(c echo.Context) error {
	var req createGameRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	game, err := h.gameUseCase.CreateGame(c.Request().Context(), usecase.CreateGameInput{
		Title:                req.Title,
		Slug:                 req.Slug,
		Description:          req.Description,
		DetailedDescription:  req.DetailedDescription,
		Genre:                req.Genre,
		Platform:             req.Platform,
		RegionOptions:        req.RegionOptions,
		BasePrice:            req.BasePrice,
		SafeAccountAvailable: req.SafeAccountAvailable,
		CoverURL:             req.CoverURL,
		Gallery:              req.Gallery,
		Tags:                 req.Tags,
		Options:              toOptionInputs(req.Options),
		Variants:             toVariantInputs(req.Variants),
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, "Game created", game)
}

func (h *GameHandler) UpdateGame(c echo.Context) error {
	var req updateGameRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	input := usecase.UpdateGameInput{
		Title:                req.Title,
		Slug:                 req.Slug,
		Description:          req.Description,
		DetailedDescription:  req.DetailedDescription,
		Genre:                req.Genre,
		Platform:             req.Platform,
		RegionOptions:        req.RegionOptions,
		BasePrice:            req.BasePrice,
		SafeAccountAvailable: req.SafeAccountAvailable,
		CoverURL:             req.CoverURL,
		Gallery:              req.Gallery,
		Tags:                 req.Tags,
	}
	if req.Options != nil {
		input.Options = toOptionInputs(req.Options)
	}
	if req.Variants != nil {
		input.Variants = toVariantInputs(req.Variants)
	}

	game, err := h.gameUseCase.UpdateGame(c.Request().Context(), c.Param("id"), input)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, game)
}

func (h *GameHandler) DeleteGame(c echo.Context) error {
	if err := h.gameUseCase.DeleteGame(c.Request().Context(), c.Param("id")); err != nil {
		return response.Error(c, err)
	}

	return response.SuccessMessage(c, "Game deleted", nil)
}

func (h *GameHandler) SeedGames(c echo.Context) error {
	result, err := h.gameUseCase.SeedSampleGames(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.SuccessMessage(c, "Sample games seeded", result)
}

func toOptionInputs(reqs []gameOptionRequest) []usecase.GameOptionInput {
	inputs := make([]usecase.GameOptionInput, len(reqs))
	for i, r := range reqs {
		inputs[i] = usecase.GameOptionInput{
			ID:     r.ID,
			Name:   r.Name,
			Values: r.Values,
		}
	}
	return inputs
}

func toVariantInputs(reqs []gameVariantRequest) []usecase.GameVariantInput {
	inputs := make([]usecase.GameVariantInput, len(reqs))
	for i, r := range reqs {
		inputs[i] = usecase.GameVariantInput{
			ID:              r.ID,
			SelectedOptions: r.SelectedOptions,
			Price:           r.Price,
			Stock:           r.Stock,
		}
	}
	return inputs
}
