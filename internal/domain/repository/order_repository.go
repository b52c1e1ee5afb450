package repository

import (
	"context"
	"time"

	"gameclub/internal/domain/entity"
)

// OrderSearchFilter combines the admin dashboard constraints: free-text match
// across orderNumber/customer name/email/phone, exact status filters, and an
// inclusive createdAt range. All present conditions are ANDed.
type OrderSearchFilter struct {
	Search            string
	PaymentStatus     string
	FulfillmentStatus string
	FromDate          *time.Time
	ToDate            *time.Time
	Limit             int
	Offset            int
}

// OrderCountFilter scopes aggregate counts and revenue sums for marketing
// reporting.
type OrderCountFilter struct {
	PaymentStatus     string
	FulfillmentStatus string
	CreatedFrom       *time.Time
	CreatedBefore     *time.Time
}

type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	ListByUser(ctx context.Context, userID string, paymentStatus string) ([]*entity.Order, error)
	ListAll(ctx context.Context) ([]*entity.Order, error)
	Search(ctx context.Context, filter OrderSearchFilter) ([]*entity.Order, int64, error)
	Update(ctx context.Context, order *entity.Order) error
	ExistsByOrderNumber(ctx context.Context, orderNumber string) (bool, error)
	Count(ctx context.Context, filter OrderCountFilter) (int64, error)
	SumTotalAmount(ctx context.Context, filter OrderCountFilter) (int64, error)
}
