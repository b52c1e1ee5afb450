package repository

import (
	"context"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"gameclub/internal/domain/entity"
	"gameclub/internal/domain/repository"
	"gameclub/pkg/errors"
)

type firestoreOrderRepository struct {
	client *firestore.Client
}

func NewFirestoreOrderRepository(client *firestore.Client) repository.OrderRepository {
	return &firestoreOrderRepository{
		client: client,
	}
}

func (r *firestoreOrderRepository) Create(ctx context.Context, order *entity.Order) error {
	if order.ID == "" {
		doc := r.client.Collection("orders").NewDoc()
		order.ID = doc.ID
	}

	now := time.Now()
	if order.CreatedAt.IsZero() {
		order.CreatedAt = now
	}
	order.UpdatedAt = now

	_, err := r.client.Collection("orders").Doc(order.ID).Set(ctx, order)
	if err != nil {
		return errors.Internal("Failed to create order", err)
	}

	return nil
}

func (r *firestoreOrderRepository) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	doc, err := r.client.Collection("orders").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Order", err)
		}
		return nil, errors.Internal("Failed to get order", err)
	}

	var order entity.Order
	if err := doc.DataTo(&order); err != nil {
		return nil, errors.Internal("Failed to parse order data", err)
	}

	return &order, nil
}

func (r *firestoreOrderRepository) ListByUser(ctx context.Context, userID string, paymentStatus string) ([]*entity.Order, error) {
	query := r.client.Collection("orders").Query.Where("userId", "==", userID)
	if paymentStatus != "" {
		query = query.Where("paymentStatus", "==", paymentStatus)
	}
	query = query.OrderBy("createdAt", firestore.Desc)

	return collectOrders(query.Documents(ctx))
}

func (r *firestoreOrderRepository) ListAll(ctx context.Context) ([]*entity.Order, error) {
	query := r.client.Collection("orders").Query.OrderBy("createdAt", firestore.Desc)
	return collectOrders(query.Documents(ctx))
}

// Search ANDs the status and date constraints into the Firestore query, then
// applies the free-text OR (orderNumber, customer name/email/phone) in memory;
// Firestore cannot express a case-insensitive OR across fields. Pagination is
// applied after matching so the reported total covers the whole result set.
func (r *firestoreOrderRepository) Search(ctx context.Context, filter repository.OrderSearchFilter) ([]*entity.Order, int64, error) {
	query := r.client.Collection("orders").Query

	if filter.PaymentStatus != "" {
		query = query.Where("paymentStatus", "==", filter.PaymentStatus)
	}
	if filter.FulfillmentStatus != "" {
		query = query.Where("fulfillmentStatus", "==", filter.FulfillmentStatus)
	}
	if filter.FromDate != nil {
		query = query.Where("createdAt", ">=", *filter.FromDate)
	}
	if filter.ToDate != nil {
		query = query.Where("createdAt", "<=", *filter.ToDate)
	}
	query = query.OrderBy("createdAt", firestore.Desc)

	orders, err := collectOrders(query.Documents(ctx))
	if err != nil {
		return nil, 0, err
	}

	if filter.Search != "" {
		needle := strings.ToLower(filter.Search)
		matched := orders[:0]
		for _, order := range orders {
			if orderMatches(order, needle) {
				matched = append(matched, order)
			}
		}
		orders = matched
	}

	total := int64(len(orders))

	return pageOrders(orders, filter.Offset, filter.Limit), total, nil
}

// pageOrders slices the matched set; a zero limit means no cap, and an offset
// past the end yields an empty page rather than a panic.
func pageOrders(orders []*entity.Order, offset, limit int) []*entity.Order {
	start := offset
	if start > len(orders) {
		start = len(orders)
	}
	end := len(orders)
	if limit > 0 && start+limit < end {
		end = start + limit
	}
	return orders[start:end]
}

func (r *firestoreOrderRepository) Update(ctx context.Context, order *entity.Order) error {
	order.UpdatedAt = time.Now()

	_, err := r.client.Collection("orders").Doc(order.ID).Set(ctx, order)
	if err != nil {
		return errors.Internal("Failed to update order", err)
	}

	return nil
}

func (r *firestoreOrderRepository) ExistsByOrderNumber(ctx context.Context, orderNumber string) (bool, error) {
	iter := r.client.Collection("orders").Where("orderNumber", "==", orderNumber).Limit(1).Documents(ctx)

	_, err := iter.Next()
	if err == iterator.Done {
		return false, nil
	}
	if err != nil {
		return false, errors.Internal("Failed to check order number", err)
	}

	return true, nil
}

func (r *firestoreOrderRepository) Count(ctx context.Context, filter repository.OrderCountFilter) (int64, error) {
	docs, err := r.countQuery(filter).Documents(ctx).GetAll()
	if err != nil {
		return 0, errors.Internal("Failed to count orders", err)
	}
	return int64(len(docs)), nil
}

func (r *firestoreOrderRepository) SumTotalAmount(ctx context.Context, filter repository.OrderCountFilter) (int64, error) {
	iter := r.countQuery(filter).Documents(ctx)

	var total int64
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return 0, errors.Internal("Failed to sum order totals", err)
		}

		var order entity.Order
		if err := doc.DataTo(&order); err != nil {
			return 0, errors.Internal("Failed to parse order data", err)
		}
		total += order.TotalAmount
	}

	return total, nil
}

func (r *firestoreOrderRepository) countQuery(filter repository.OrderCountFilter) firestore.Query {
	query := r.client.Collection("orders").Query

	if filter.PaymentStatus != "" {
		query = query.Where("paymentStatus", "==", filter.PaymentStatus)
	}
	if filter.FulfillmentStatus != "" {
		query = query.Where("fulfillmentStatus", "==", filter.FulfillmentStatus)
	}
	if filter.CreatedFrom != nil {
		query = query.Where("createdAt", ">=", *filter.CreatedFrom)
	}
	if filter.CreatedBefore != nil {
		query = query.Where("createdAt", "<", *filter.CreatedBefore)
	}

	return query
}

func collectOrders(iter *firestore.DocumentIterator) ([]*entity.Order, error) {
	var orders []*entity.Order
	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate orders", err)
		}

		var order entity.Order
		if err := doc.DataTo(&order); err != nil {
			return nil, errors.Internal("Failed to parse order data", err)
		}
		orders = append(orders, &order)
	}
	return orders, nil
}

func orderMatches(order *entity.Order, needle string) bool {
	haystacks := []string{
		order.OrderNumber,
		order.CustomerInfo.Name,
		order.CustomerInfo.Email,
		order.CustomerInfo.Phone,
	}
	for _, haystack := range haystacks {
		if strings.Contains(strings.ToLower(haystack), needle) {
			return true
		}
	}
	return false
}
