package usecase

import (
	"context"
	"time"

	"gameclub/internal/domain/entity"
	"gameclub/internal/domain/repository"
	"gameclub/pkg/errors"
)

type ReviewUseCase struct {
	reviewRepo repository.ReviewRepository
	alertRepo  repository.PriceAlertRepository
	gameRepo   repository.GameRepository
}

func NewReviewUseCase(reviewRepo repository.ReviewRepository, alertRepo repository.PriceAlertRepository, gameRepo repository.GameRepository) *ReviewUseCase {
	return &ReviewUseCase{
		reviewRepo: reviewRepo,
		alertRepo:  alertRepo,
		gameRepo:   gameRepo,
	}
}

type CreateReviewInput struct {
	GameID  string
	UserID  string
	Rating  int
	Comment string
}

type CreatePriceAlertInput struct {
	GameID      string
	UserID      string
	Email       string
	TargetPrice int64
}

func (uc *ReviewUseCase) CreateReview(ctx context.Context, input CreateReviewInput) (*entity.Review, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, errors.BadRequest("Rating must be between 1 and 5", nil)
	}

	if _, err := uc.gameRepo.GetByID(ctx, input.GameID); err != nil {
		return nil, err
	}

	review := &entity.Review{
		GameID:    input.GameID,
		UserID:    input.UserID,
		Rating:    input.Rating,
		Comment:   input.Comment,
		CreatedAt: time.Now(),
	}

	if err := uc.reviewRepo.Create(ctx, review); err != nil {
		return nil, err
	}

	return review, nil
}

func (uc *ReviewUseCase) ListGameReviews(ctx context.Context, gameID string) ([]*entity.Review, error) {
	return uc.reviewRepo.ListByGame(ctx, gameID)
}

func (uc *ReviewUseCase) CreatePriceAlert(ctx context.Context, input CreatePriceAlertInput) (*entity.PriceAlert, error) {
	game, err := uc.gameRepo.GetByID(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	if input.TargetPrice <= 0 || input.TargetPrice >= game.BasePrice {
		return nil, errors.BadRequest("Target price must be below the current price", nil)
	}

	alert := &entity.PriceAlert{
		GameID:      input.GameID,
		UserID:      input.UserID,
		Email:       input.Email,
		TargetPrice: input.TargetPrice,
		Active:      true,
		CreatedAt:   time.Now(),
	}

	if err := uc.alertRepo.Create(ctx, alert); err != nil {
		return nil, err
	}

	return alert, nil
}

func (uc *ReviewUseCase) ListUserPriceAlerts(ctx context.Context, userID string) ([]*entity.PriceAlert, error) {
	return uc.alertRepo.ListByUser(ctx, userID)
}
