package repository

import (
	"context"

	"gameclub/internal/domain/entity"
)

type GameAccountRepository interface {
	Create(ctx context.Context, account *entity.GameAccount) error
	List(ctx context.Context, gameID, status string) ([]*entity.GameAccount, error)
}
