package entity

import (
	"time"
)

const (
	PaymentStatusPending = "pending"
	PaymentStatusPaid    = "paid"
	PaymentStatusFailed  = "failed"

	FulfillmentStatusPending   = "pending"
	FulfillmentStatusAssigned  = "assigned"
	FulfillmentStatusDelivered = "delivered"
	FulfillmentStatusRefunded  = "refunded"
)

type OrderItem struct {
	GameID          string            `json:"game_id" firestore:"gameId"`
	VariantID       string            `json:"variant_id,omitempty" firestore:"variantId,omitempty"`
	SelectedOptions map[string]string `json:"selected_options,omitempty" firestore:"selectedOptions,omitempty"`
	PricePaid       int64             `json:"price_paid" firestore:"pricePaid"`
	Quantity        int               `json:"quantity" firestore:"quantity"`
}

type CustomerInfo struct {
	Name  string `json:"name,omitempty" firestore:"name,omitempty"`
	Email string `json:"email" firestore:"email"`
	Phone string `json:"phone" firestore:"phone"`
}

type DeliveryInfo struct {
	Message     string     `json:"message,omitempty" firestore:"message,omitempty"`
	Credentials string     `json:"credentials,omitempty" firestore:"credentials,omitempty"`
	DeliveredAt *time.Time `json:"delivered_at,omitempty" firestore:"deliveredAt,omitempty"`
	UpdatedBy   string     `json:"updated_by,omitempty" firestore:"updatedBy,omitempty"`
}

type CustomerAcknowledgement struct {
	Acknowledged   bool       `json:"acknowledged" firestore:"acknowledged"`
	AcknowledgedAt *time.Time `json:"acknowledged_at,omitempty" firestore:"acknowledgedAt,omitempty"`
}

// Order is created at checkout with both statuses pending. PaymentStatus and
// FulfillmentStatus are independent enums mutated separately; no transition
// table is enforced.
type Order struct {
	ID               string       `json:"id" firestore:"id"`
	UserID           string       `json:"user_id,omitempty" firestore:"userId,omitempty"`
	OrderNumber      string       `json:"order_number" firestore:"orderNumber"`
	CustomerInfo     CustomerInfo `json:"customer_info" firestore:"customerInfo"`
	Items            []OrderItem  `json:"items" firestore:"items"`
	TotalAmount      int64        `json:"total_amount" firestore:"totalAmount"`
	PaymentStatus    string       `json:"payment_status" firestore:"paymentStatus"`
	PaymentReference string       `json:"payment_reference,omitempty" firestore:"paymentReference,omitempty"`

	FulfillmentStatus string   `json:"fulfillment_status" firestore:"fulfillmentStatus"`
	AssignedAccounts  []string `json:"assigned_accounts,omitempty" firestore:"assignedAccounts,omitempty"`

	DeliveryInfo            *DeliveryInfo            `json:"delivery_info,omitempty" firestore:"deliveryInfo,omitempty"`
	CustomerAcknowledgement *CustomerAcknowledgement `json:"customer_acknowledgement,omitempty" firestore:"customerAcknowledgement,omitempty"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}
