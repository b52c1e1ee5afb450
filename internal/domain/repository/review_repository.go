package repository

import (
	"context"

	"gameclub/internal/domain/entity"
)

type ReviewRepository interface {
	Create(ctx context.Context, review *entity.Review) error
	ListByGame(ctx context.Context, gameID string) ([]*entity.Review, error)
}

type PriceAlertRepository interface {
	Create(ctx context.Context, alert *entity.PriceAlert) error
	ListByUser(ctx context.Context, userID string) ([]*entity.PriceAlert, error)
}
