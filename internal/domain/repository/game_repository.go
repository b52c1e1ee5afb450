package repository

import (
	"context"

	"gameclub/internal/domain/entity"
)

// GameFilter narrows catalog listings. SafeOnly is a tri-state: nil means
// "no preference". Sort accepts "createdAt" or "-createdAt".
type GameFilter struct {
	Genre    string
	Region   string
	SafeOnly *bool
	Search   string
	Sort     string
}

type GameRepository interface {
	Create(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	GetBySlug(ctx context.Context, slug string) (*entity.Game, error)
	List(ctx context.Context, filter GameFilter) ([]*entity.Game, error)
	Update(ctx context.Context, game *entity.Game) error
	Delete(ctx context.Context, id string) error
}
