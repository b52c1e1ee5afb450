package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"gameclub/internal/domain/entity"
	"gameclub/internal/usecase"
	"gameclub/pkg/response"
)

type MarketingHandler struct {
	marketingUseCase *usecase.MarketingUseCase
}

func NewMarketingHandler(marketingUseCase *usecase.MarketingUseCase) *MarketingHandler {
	return &MarketingHandler{
		marketingUseCase: marketingUseCase,
	}
}

type updateMarketingRequest struct {
	BannerContent   *entity.BannerContent `json:"banner_content"`
	Campaigns       []entity.Campaign     `json:"campaigns"`
	UtmBuilder      *entity.UtmBuilder    `json:"utm_builder"`
	ExperimentSplit *int                  `json:"experiment_split" validate:"omitempty,gte=0,lte=100"`
}

type marketingResponse struct {
	Settings *entity.MarketingSettings `json:"settings"`
	Metrics  *usecase.MarketingMetrics `json:"metrics"`
}

func (h *MarketingHandler) GetSettings(c echo.Context) error {
	ctx := c.Request().Context()

	settings, err := h.marketingUseCase.GetSettings(ctx)
	if err != nil {
		return response.Error(c, err)
	}

	metrics, err := h.marketingUseCase.BuildMetrics(ctx, settings.Campaigns)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, marketingResponse{
		Settings: settings,
		Metrics:  metrics,
	})
}

func (h *MarketingHandler) UpdateSettings(c echo.Context) error {
	var req updateMarketingRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	settings, err := h.marketingUseCase.UpdateSettings(c.Request().Context(), usecase.UpdateMarketingInput{
		BannerContent:   req.BannerContent,
		Campaigns:       req.Campaigns,
		UtmBuilder:      req.UtmBuilder,
		ExperimentSplit: req.ExperimentSplit,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.SuccessMessage(c, "Marketing settings updated", settings)
}
