package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"gameclub/internal/domain/entity"
	"gameclub/internal/domain/repository"
	"gameclub/pkg/errors"
)

type memReviewRepo struct {
	reviews []*entity.Review
}

func (r *memReviewRepo) Create(ctx context.Context, review *entity.Review) error {
	review.ID = "review-1"
	r.reviews = append(r.reviews, review)
	return nil
}

func (r *memReviewRepo) ListByGame(ctx context.Context, gameID string) ([]*entity.Review, error) {
	var out []*entity.Review
	for _, review := range r.reviews {
		if review.GameID == gameID {
			out = append(out, review)
		}
	}
	return out, nil
}

type memAlertRepo struct {
	alerts []*entity.PriceAlert
}

func (r *memAlertRepo) Create(ctx context.Context, alert *entity.PriceAlert) error {
	alert.ID = "alert-1"
	r.alerts = append(r.alerts, alert)
	return nil
}

func (r *memAlertRepo) ListByUser(ctx context.Context, userID string) ([]*entity.PriceAlert, error) {
	var out []*entity.PriceAlert
	for _, alert := range r.alerts {
		if alert.UserID == userID {
			out = append(out, alert)
		}
	}
	return out, nil
}

var _ repository.ReviewRepository = (*memReviewRepo)(nil)
var _ repository.PriceAlertRepository = (*memAlertRepo)(nil)

func newReviewFixture(t *testing.T) (*ReviewUseCase, *memGameRepo) {
	gameRepo := newMemGameRepo()
	uc := NewReviewUseCase(&memReviewRepo{}, &memAlertRepo{}, gameRepo)
	return uc, gameRepo
}

func TestCreateReviewValidatesRatingRange(t *testing.T) {
	uc, gameRepo := newReviewFixture(t)
	game := seedGame(t, gameRepo, "stellar-blade", 2199000)

	ctx := context.Background()

	_, err := uc.CreateReview(ctx, CreateReviewInput{GameID: game.ID, UserID: "user-1", Rating: 0})
	assert.True(t, errors.Is(err, "BAD_REQUEST"))

	_, err = uc.CreateReview(ctx, CreateReviewInput{GameID: game.ID, UserID: "user-1", Rating: 6})
	assert.True(t, errors.Is(err, "BAD_REQUEST"))

	review, err := uc.CreateReview(ctx, CreateReviewInput{GameID: game.ID, UserID: "user-1", Rating: 5, Comment: "great"})
	require.NoError(t, err)
	assert.Equal(t, 5, review.Rating)
}

func TestCreateReviewRequiresExistingGame(t *testing.T) {
	uc, _ := newReviewFixture(t)

	_, err := uc.CreateReview(context.Background(), CreateReviewInput{GameID: "missing", Rating: 4})

	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestListGameReviewsScopedToGame(t *testing.T) {
	gameRepo := newMemGameRepo()
	reviewRepo := &memReviewRepo{}
	uc := NewReviewUseCase(reviewRepo, &memAlertRepo{}, gameRepo)
	game := seedGame(t, gameRepo, "nioh", 999000)
	other := seedGame(t, gameRepo, "sekiro", 1299000)

	ctx := context.Background()
	_, err := uc.CreateReview(ctx, CreateReviewInput{GameID: game.ID, UserID: "u1", Rating: 4, Comment: "good"})
	require.NoError(t, err)
	_, err = uc.CreateReview(ctx, CreateReviewInput{GameID: other.ID, UserID: "u1", Rating: 5, Comment: "better"})
	require.NoError(t, err)

	reviews, err := uc.ListGameReviews(ctx, game.ID)
	require.NoError(t, err)
	require.Len(t, reviews, 1)
	assert.Equal(t, game.ID, reviews[0].GameID)
}

func TestCreatePriceAlertRequiresPriceBelowCurrent(t *testing.T) {
	uc, gameRepo := newReviewFixture(t)
	game := seedGame(t, gameRepo, "ff16", 2799000)

	ctx := context.Background()

	_, err := uc.CreatePriceAlert(ctx, CreatePriceAlertInput{GameID: game.ID, Email: "a@b.com", TargetPrice: game.BasePrice})
	assert.True(t, errors.Is(err, "BAD_REQUEST"))

	alert, err := uc.CreatePriceAlert(ctx, CreatePriceAlertInput{GameID: game.ID, UserID: "u1", Email: "a@b.com", TargetPrice: 1999000})
	require.NoError(t, err)
	assert.True(t, alert.Active)
}

func TestCreatePriceAlertAllowsGuestSubscribers(t *testing.T) {
	uc, gameRepo := newReviewFixture(t)
	game := seedGame(t, gameRepo, "silent-hill-2", 2499000)

	alert, err := uc.CreatePriceAlert(context.Background(), CreatePriceAlertInput{
		GameID:      game.ID,
		Email:       "guest@example.com",
		TargetPrice: 1999000,
	})
	require.NoError(t, err)

	assert.Empty(t, alert.UserID)
	assert.Equal(t, "guest@example.com", alert.Email)
	assert.True(t, alert.Active)
}

func TestListUserPriceAlertsScopedToUser(t *testing.T) {
	uc, gameRepo := newReviewFixture(t)
	game := seedGame(t, gameRepo, "bloodborne-goty", 1799000)

	ctx := context.Background()
	_, err := uc.CreatePriceAlert(ctx, CreatePriceAlertInput{GameID: game.ID, UserID: "u1", Email: "u1@example.com", TargetPrice: 999000})
	require.NoError(t, err)
	_, err = uc.CreatePriceAlert(ctx, CreatePriceAlertInput{GameID: game.ID, Email: "guest@example.com", TargetPrice: 999000})
	require.NoError(t, err)

	alerts, err := uc.ListUserPriceAlerts(ctx, "u1")
	require.NoError(t, err)
	require.Len(t, alerts, 1)
	assert.Equal(t, "u1", alerts[0].UserID)
}
