package usecase

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"gameclub/internal/domain/entity"
	"gameclub/internal/domain/repository"
	"gameclub/pkg/errors"
	"gameclub/pkg/logger"
)

type OrderUseCase struct {
	orderRepo repository.OrderRepository
	cartRepo  repository.CartRepository
	gameRepo  repository.GameRepository
}

func NewOrderUseCase(orderRepo repository.OrderRepository, cartRepo repository.CartRepository, gameRepo repository.GameRepository) *OrderUseCase {
	return &OrderUseCase{
		orderRepo: orderRepo,
		cartRepo:  cartRepo,
		gameRepo:  gameRepo,
	}
}

type OrderItemInput struct {
	GameID          string
	VariantID       string
	SelectedOptions map[string]string
	PricePaid       int64
	Quantity        int
}

type CreateOrderInput struct {
	UserID       string
	CustomerInfo entity.CustomerInfo
	Items        []OrderItemInput
	TotalAmount  int64
}

type UpdateOrderStatusInput struct {
	PaymentStatus     *string
	FulfillmentStatus *string
	PaymentReference  *string
}

type UpdateDeliveryInput struct {
	Message     *string
	Credentials *string
	DeliveredAt *time.Time
	UpdatedBy   string
}

type NotifyResult struct {
	OrderID     string `json:"order_id"`
	OrderNumber string `json:"order_number"`
	To          string `json:"to"`
	Subject     string `json:"subject"`
	Message     string `json:"message"`
}

// CreateOrder persists a new order with both statuses pending and, when the
// checkout belongs to a signed-in user, empties that user's cart. The cart
// clear is a best-effort side update, not a transaction; a failure there
// leaves a stale cart and is only logged.
func (uc *OrderUseCase) CreateOrder(ctx context.Context, input CreateOrderInput) (*entity.Order, error) {
	orderNumber, err := uc.generateOrderNumber(ctx)
	if err != nil {
		return nil, err
	}

	items := make([]entity.OrderItem, len(input.Items))
	for i, item := range input.Items {
		items[i] = entity.OrderItem{
			GameID:          item.GameID,
			VariantID:       item.VariantID,
			SelectedOptions: item.SelectedOptions,
			PricePaid:       item.PricePaid,
			Quantity:        item.Quantity,
		}
	}

	now := time.Now()
	order := &entity.Order{
		UserID:            input.UserID,
		OrderNumber:       orderNumber,
		CustomerInfo:      input.CustomerInfo,
		Items:             items,
		TotalAmount:       input.TotalAmount,
		PaymentStatus:     entity.PaymentStatusPending,
		FulfillmentStatus: entity.FulfillmentStatusPending,
		CreatedAt:         now,
		UpdatedAt:         now,
	}

	if err := uc.orderRepo.Create(ctx, order); err != nil {
		return nil, err
	}

	if input.UserID != "" {
		if err := uc.clearUserCart(ctx, input.UserID); err != nil {
			logger.Warn("Failed to clear cart after order %s: %v", order.OrderNumber, err)
		}
	}

	return order, nil
}

// Order numbers look like GC250831-4821: a GC prefix, the current date, and a
// 4-digit random suffix regenerated until it does not collide.
func (uc *OrderUseCase) generateOrderNumber(ctx context.Context) (string, error) {
	for {
		candidate := fmt.Sprintf("GC%s-%04d", time.Now().Format("060102"), 1000+rand.Intn(9000))

		exists, err := uc.orderRepo.ExistsByOrderNumber(ctx, candidate)
		if err != nil {
			return "", err
		}
		if !exists {
			return candidate, nil
		}
	}
}

func (uc *OrderUseCase) clearUserCart(ctx context.Context, userID string) error {
	cart, err := uc.cartRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, "NOT_FOUND") {
			return nil
		}
		return err
	}

	cart.Items = []entity.CartItem{}
	return uc.cartRepo.Save(ctx, cart)
}

func (uc *OrderUseCase) GetUserOrders(ctx context.Context, userID, paymentStatus string) ([]*entity.Order, error) {
	return uc.orderRepo.ListByUser(ctx, userID, paymentStatus)
}

// GetOrderByID enforces ownership: an order that carries a userId is only
// returned to that user. The mismatch is reported as not-found, not as an
// authorization failure.
func (uc *OrderUseCase) GetOrderByID(ctx context.Context, orderID, userID string) (*entity.Order, error) {
	order, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if order.UserID != "" && userID != "" && order.UserID != userID {
		return nil, errors.NotFound("Order", nil)
	}

	return order, nil
}

func (uc *OrderUseCase) SearchOrders(ctx context.Context, filter repository.OrderSearchFilter) ([]*entity.Order, int64, error) {
	return uc.orderRepo.Search(ctx, filter)
}

func (uc *OrderUseCase) ListAllOrders(ctx context.Context) ([]*entity.Order, error) {
	return uc.orderRepo.ListAll(ctx)
}

// UpdateStatus is a partial overwrite of the payment/fulfillment enums and
// the payment reference. There is no transition table: any status can be set
// from any status, and the two enums never constrain each other.
func (uc *OrderUseCase) UpdateStatus(ctx context.Context, orderID string, input UpdateOrderStatusInput) (*entity.Order, error) {
	order, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if input.PaymentStatus != nil {
		order.PaymentStatus = *input.PaymentStatus
	}
	if input.FulfillmentStatus != nil {
		order.FulfillmentStatus = *input.FulfillmentStatus
	}
	if input.PaymentReference != nil {
		order.PaymentReference = *input.PaymentReference
	}

	if err := uc.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}

	return order, nil
}

func (uc *OrderUseCase) UpdateDelivery(ctx context.Context, orderID string, input UpdateDeliveryInput) (*entity.Order, error) {
	order, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if order.DeliveryInfo == nil {
		order.DeliveryInfo = &entity.DeliveryInfo{}
	}
	if input.Message != nil {
		order.DeliveryInfo.Message = *input.Message
	}
	if input.Credentials != nil {
		order.DeliveryInfo.Credentials = *input.Credentials
	}
	deliveredAt := time.Now()
	if input.DeliveredAt != nil {
		deliveredAt = *input.DeliveredAt
	}
	order.DeliveryInfo.DeliveredAt = &deliveredAt
	if input.UpdatedBy != "" {
		order.DeliveryInfo.UpdatedBy = input.UpdatedBy
	}

	if err := uc.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}

	return order, nil
}

// AcknowledgeDelivery records the customer's confirmation. Only the order's
// own user may acknowledge; anyone else gets not-found.
func (uc *OrderUseCase) AcknowledgeDelivery(ctx context.Context, orderID, userID string) (*entity.Order, error) {
	order, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if order.UserID == "" || order.UserID != userID {
		return nil, errors.NotFound("Order", nil)
	}

	now := time.Now()
	order.CustomerAcknowledgement = &entity.CustomerAcknowledgement{
		Acknowledged:   true,
		AcknowledgedAt: &now,
	}

	if err := uc.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}

	return order, nil
}

// NotifyCustomer composes a receipt email and logs it instead of sending;
// the composed message is returned to the caller as confirmation.
func (uc *OrderUseCase) NotifyCustomer(ctx context.Context, orderID, subject, message string) (*NotifyResult, error) {
	order, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	subject = strings.TrimSpace(subject)
	if subject == "" {
		subject = fmt.Sprintf("Order receipt %s", order.OrderNumber)
	}

	message = strings.TrimSpace(message)
	if message == "" {
		message = uc.composeReceipt(ctx, order)
	}

	logger.Info("[order email simulation] to=%s subject=%q message=%q", order.CustomerInfo.Email, subject, message)

	return &NotifyResult{
		OrderID:     order.ID,
		OrderNumber: order.OrderNumber,
		To:          order.CustomerInfo.Email,
		Subject:     subject,
		Message:     message,
	}, nil
}

func (uc *OrderUseCase) composeReceipt(ctx context.Context, order *entity.Order) string {
	greeting := "Hello"
	if order.CustomerInfo.Name != "" {
		greeting = "Hello " + order.CustomerInfo.Name
	}

	var lines []string
	for _, item := range order.Items {
		title := "game"
		if game, err := uc.gameRepo.GetByID(ctx, item.GameID); err == nil {
			title = game.Title
		}
		lines = append(lines, fmt.Sprintf("- %dx %s (%d toman)", item.Quantity, title, item.PricePaid))
	}

	paymentLine := "awaiting payment"
	if order.PaymentStatus == entity.PaymentStatusPaid {
		paymentLine = "paid"
	}

	return fmt.Sprintf(
		"%s\n\nOrder %s for %d toman has been registered.\nItems:\n%s\n\nPayment status: %s\nFulfillment status: %s\n\nThank you for shopping with GameClub",
		greeting, order.OrderNumber, order.TotalAmount, strings.Join(lines, "\n"), paymentLine, order.FulfillmentStatus,
	)
}

// VerifyPayment is the ZarinPal callback stub: when the gateway reports OK it
// marks the order paid, using the authority value as both the order id and
// the stored payment reference. Real gateway verification is not implemented.
func (uc *OrderUseCase) VerifyPayment(ctx context.Context, authority, gatewayStatus string) (*entity.Order, error) {
	if gatewayStatus != "OK" {
		return nil, errors.BadRequest("Payment was not successful", nil)
	}

	paid := entity.PaymentStatusPaid
	return uc.UpdateStatus(ctx, authority, UpdateOrderStatusInput{
		PaymentStatus:    &paid,
		PaymentReference: &authority,
	})
}
