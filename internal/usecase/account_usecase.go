package usecase

import (
	"context"
	"time"

	"golang.org/x/crypto/bcrypt"

	"gameclub/internal/domain/entity"
	"gameclub/internal/domain/repository"
	"gameclub/pkg/errors"
)

// AccountUseCase manages the admin-facing credential inventory. Order
// delivery does not consume this pool; credentials are still handed over as
// free text by an admin.
type AccountUseCase struct {
	accountRepo repository.GameAccountRepository
	gameRepo    repository.GameRepository
}

func NewAccountUseCase(accountRepo repository.GameAccountRepository, gameRepo repository.GameRepository) *AccountUseCase {
	return &AccountUseCase{
		accountRepo: accountRepo,
		gameRepo:    gameRepo,
	}
}

type CreateAccountInput struct {
	GameID   string
	Email    string
	Password string
	Region   string
	Type     string
}

func (uc *AccountUseCase) CreateAccount(ctx context.Context, input CreateAccountInput) (*entity.GameAccount, error) {
	if _, err := uc.gameRepo.GetByID(ctx, input.GameID); err != nil {
		return nil, err
	}

	accountType := input.Type
	if accountType == "" {
		accountType = entity.AccountTypeStandard
	}
	if accountType != entity.AccountTypeStandard && accountType != entity.AccountTypeSafe {
		return nil, errors.BadRequest("Account type must be standard or safe", nil)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.Internal("Failed to hash account password", err)
	}

	now := time.Now()
	account := &entity.GameAccount{
		GameID:       input.GameID,
		Email:        input.Email,
		PasswordHash: string(hashed),
		Region:       input.Region,
		Type:         accountType,
		Status:       entity.AccountStatusAvailable,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := uc.accountRepo.Create(ctx, account); err != nil {
		return nil, err
	}

	return account, nil
}

func (uc *AccountUseCase) ListAccounts(ctx context.Context, gameID, status string) ([]*entity.GameAccount, error) {
	return uc.accountRepo.List(ctx, gameID, status)
}
