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

type firestoreReviewRepository struct {
	client *firestore.Client
}

func NewFirestoreReviewRepository(client *firestore.Client) repository.ReviewRepository {
	return &firestoreReviewRepository{
		client: client,
	}
}

func (r *firestoreReviewRepository) Create(ctx context.Context, review *entity.Review) error {
	if review.ID == "" {
		doc := r.client.Collection("reviews").NewDoc()
		review.ID = doc.ID
	}
	if review.CreatedAt.IsZero() {
		review.CreatedAt = time.Now()
	}

	_, err := r.client.Collection("reviews").Doc(review.ID).Set(ctx, review)
	if err != nil {
		return errors.Internal("Failed to create review", err)
	}

	return nil
}

func (r *firestoreReviewRepository) ListByGame(ctx context.Context, gameID string) ([]*entity.Review, error) {
	query := r.client.Collection("reviews").Query.
		Where("gameId", "==", gameID).
		OrderBy("createdAt", firestore.Desc)

	iter := query.Documents(ctx)
	var reviews []*entity.Review

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate reviews", err)
		}

		var review entity.Review
		if err := doc.DataTo(&review); err != nil {
			return nil, errors.Internal("Failed to parse review data", err)
		}
		reviews = append(reviews, &review)
	}

	return reviews, nil
}

type firestorePriceAlertRepository struct {
	client *firestore.Client
}

func NewFirestorePriceAlertRepository(client *firestore.Client) repository.PriceAlertRepository {
	return &firestorePriceAlertRepository{
		client: client,
	}
}

func (r *firestorePriceAlertRepository) Create(ctx context.Context, alert *entity.PriceAlert) error {
	if alert.ID == "" {
		doc := r.client.Collection("priceAlerts").NewDoc()
		alert.ID = doc.ID
	}
	if alert.CreatedAt.IsZero() {
		alert.CreatedAt = time.Now()
	}

	_, err := r.client.Collection("priceAlerts").Doc(alert.ID).Set(ctx, alert)
	if err != nil {
		return errors.Internal("Failed to create price alert", err)
	}

	return nil
}

func (r *firestorePriceAlertRepository) ListByUser(ctx context.Context, userID string) ([]*entity.PriceAlert, error) {
	iter := r.client.Collection("priceAlerts").Where("userId", "==", userID).Documents(ctx)
	var alerts []*entity.PriceAlert

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate price alerts", err)
		}

		var alert entity.PriceAlert
		if err := doc.DataTo(&alert); err != nil {
			return nil, errors.Internal("Failed to parse price alert data", err)
		}
		alerts = append(alerts, &alert)
	}

	return alerts, nil
}
