package repository

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"

	"gameclub/internal/domain/entity"
	"gameclub/internal/domain/repository"
	"gameclub/pkg/errors"
)

type firestoreCartRepository struct {
	client *firestore.Client
}

func NewFirestoreCartRepository(client *firestore.Client) repository.CartRepository {
	return &firestoreCartRepository{
		client: client,
	}
}

func (r *firestoreCartRepository) GetByUserID(ctx context.Context, userID string) (*entity.Cart, error) {
	iter := r.client.Collection("carts").Where("userId", "==", userID).Limit(1).Documents(ctx)

	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, errors.NotFound("Cart", nil)
	}
	if err != nil {
		return nil, errors.Internal("Failed to query cart", err)
	}

	var cart entity.Cart
	if err := doc.DataTo(&cart); err != nil {
		return nil, errors.Internal("Failed to parse cart data", err)
	}

	return &cart, nil
}

func (r *firestoreCartRepository) Save(ctx context.Context, cart *entity.Cart) error {
	if cart.ID == "" {
		doc := r.client.Collection("carts").NewDoc()
		cart.ID = doc.ID
	}

	now := time.Now()
	if cart.CreatedAt.IsZero() {
		cart.CreatedAt = now
	}
	cart.UpdatedAt = now

	_, err := r.client.Collection("carts").Doc(cart.ID).Set(ctx, cart)
	if err != nil {
		return errors.Internal("Failed to save cart", err)
	}

	return nil
}
