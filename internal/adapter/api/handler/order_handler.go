package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"gameclub/internal/domain/entity"
	"gameclub/internal/domain/repository"
	"gameclub/internal/usecase"
	"gameclub/pkg/response"
	"gameclub/pkg/utils"
)

type OrderHandler struct {
	orderUseCase *usecase.OrderUseCase
}

func NewOrderHandler(orderUseCase *usecase.OrderUseCase) *OrderHandler {
	return &OrderHandler{
		orderUseCase: orderUseCase,
	}
}

type orderItemRequest struct {
	GameID          string            `json:"game_id" validate:"required"`
	VariantID       string            `json:"variant_id"`
	SelectedOptions map[string]string `json:"selected_options"`
	PricePaid       int64             `json:"price_paid" validate:"required,gt=0"`
	Quantity        int               `json:"quantity" validate:"required,gt=0"`
}

type createOrderRequest struct {
	CustomerInfo struct {
		Name  string `json:"name"`
		Email string `json:"email" validate:"required,email"`
		Phone string `json:"phone" validate:"required"`
	} `json:"customer_info" validate:"required"`
	Items       []orderItemRequest `json:"items" validate:"required,min=1,dive"`
	TotalAmount int64              `json:"total_amount" validate:"required,gt=0"`
}

type updateOrderStatusRequest struct {
	PaymentStatus     *string `json:"payment_status" validate:"omitempty,oneof=pending paid failed"`
	FulfillmentStatus *string `json:"fulfillment_status" validate:"omitempty,oneof=pending assigned delivered refunded"`
	PaymentReference  *string `json:"payment_reference"`
}

type updateDeliveryRequest struct {
	Message     *string    `json:"message"`
	Credentials *string    `json:"credentials"`
	DeliveredAt *time.Time `json:"delivered_at"`
}

type notifyRequest struct {
	Subject string `json:"subject"`
	Message string `json:"message"`
}

type verifyPaymentRequest struct {
	Authority string `json:"authority" validate:"required"`
	Status    string `json:"status" validate:"required"`
}

// CreateOrder serves both guest and signed-in checkout; the optional auth
// middleware decides whether a uid is attached.
func (h *OrderHandler) CreateOrder(c echo.Context) error {
	uid, _ := c.Get("uid").(string)

	var req createOrderRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	items := make([]usecase.OrderItemInput, len(req.Items))
	for i, item := range req.Items {
		items[i] = usecase.OrderItemInput{
			GameID:          item.GameID,
			VariantID:       item.VariantID,
			SelectedOptions: item.SelectedOptions,
			PricePaid:       item.PricePaid,
			Quantity:        item.Quantity,
		}
	}

	order, err := h.orderUseCase.CreateOrder(c.Request().Context(), usecase.CreateOrderInput{
		UserID: uid,
		CustomerInfo: entity.CustomerInfo{
			Name:  req.CustomerInfo.Name,
			Email: req.CustomerInfo.Email,
			Phone: req.CustomerInfo.Phone,
		},
		Items:       items,
		TotalAmount: req.TotalAmount,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Created(c, "Order registered", order)
}

func (h *OrderHandler) ListMyOrders(c echo.Context) error {
	uid, _ := c.Get("uid").(string)

	orders, err := h.orderUseCase.GetUserOrders(c.Request().Context(), uid, c.QueryParam("paymentStatus"))
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, orders)
}

func (h *OrderHandler) GetOrder(c echo.Context) error {
	uid, _ := c.Get("uid").(string)

	order, err := h.orderUseCase.GetOrderByID(c.Request().Context(), c.Param("id"), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, order)
}

func (h *OrderHandler) AdminSearch(c echo.Context) error {
	pagination := utils.GetPaginationParams(c)

	filter := repository.OrderSearchFilter{
		Search:            c.QueryParam("search"),
		PaymentStatus:     c.QueryParam("paymentStatus"),
		FulfillmentStatus: c.QueryParam("fulfillmentStatus"),
		Limit:             pagination.Limit,
		Offset:            pagination.Offset,
	}
	if from := c.QueryParam("fromDate"); from != "" {
		if t, err := time.Parse(time.RFC3339, from); err == nil {
			filter.FromDate = &t
		}
	}
	if to := c.QueryParam("toDate"); to != "" {
		if t, err := time.Parse(time.RFC3339, to); err == nil {
			filter.ToDate = &t
		}
	}

	orders, total, err := h.orderUseCase.SearchOrders(c.Request().Context(), filter)
	if err != nil {
		return response.Error(c, err)
	}

	return response.Paginated(c, orders, total, pagination.Page, pagination.Limit)
}

func (h *OrderHandler) AdminListAll(c echo.Context) error {
	orders, err := h.orderUseCase.ListAllOrders(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, orders)
}

func (h *OrderHandler) UpdateStatus(c echo.Context) error {
	var req updateOrderStatusRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	order, err := h.orderUseCase.UpdateStatus(c.Request().Context(), c.Param("id"), usecase.UpdateOrderStatusInput{
		PaymentStatus:     req.PaymentStatus,
		FulfillmentStatus: req.FulfillmentStatus,
		PaymentReference:  req.PaymentReference,
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, order)
}

func (h *OrderHandler) UpdateDelivery(c echo.Context) error {
	var req updateDeliveryRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	order, err := h.orderUseCase.UpdateDelivery(c.Request().Context(), c.Param("id"), usecase.UpdateDeliveryInput{
		Message:     req.Message,
		Credentials: req.Credentials,
		DeliveredAt: req.DeliveredAt,
		UpdatedBy:   "admin",
	})
	if err != nil {
		return response.Error(c, err)
	}

	return response.Success(c, order)
}

func (h *OrderHandler) AcknowledgeDelivery(c echo.Context) error {
	uid, _ := c.Get("uid").(string)

	order, err := h.orderUseCase.AcknowledgeDelivery(c.Request().Context(), c.Param("id"), uid)
	if err != nil {
		return response.Error(c, err)
	}

	return response.SuccessMessage(c, "Delivery acknowledged", order)
}

func (h *OrderHandler) NotifyCustomer(c echo.Context) error {
	var req notifyRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	result, err := h.orderUseCase.NotifyCustomer(c.Request().Context(), c.Param("id"), req.Subject, req.Message)
	if err != nil {
		return response.Error(c, err)
	}

	return response.SuccessMessage(c, "Notification sent", result)
}

func (h *OrderHandler) VerifyPayment(c echo.Context) error {
	var req verifyPaymentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	order, err := h.orderUseCase.VerifyPayment(c.Request().Context(), req.Authority, req.Status)
	if err != nil {
		return response.Error(c, err)
	}

	return response.SuccessMessage(c, "Payment verified", order)
}
