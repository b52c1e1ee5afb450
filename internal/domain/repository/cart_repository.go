package repository

import (
	"context"

	"gameclub/internal/domain/entity"
)

type CartRepository interface {
	// GetByUserID returns the user's cart, or a NotFound error when the user
	// has never added anything.
	GetByUserID(ctx context.Context, userID string) (*entity.Cart, error)
	// Save persists the whole cart document, creating it on first use.
	Save(ctx context.Context, cart *entity.Cart) error
}
