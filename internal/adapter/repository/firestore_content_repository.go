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

// The CMS collections hold a single document each; Get grabs whichever
// document exists and Save creates it on first write.

type firestoreHomeContentRepository struct {
	client *firestore.Client
}

func NewFirestoreHomeContentRepository(client *firestore.Client) repository.HomeContentRepository {
	return &firestoreHomeContentRepository{
		client: client,
	}
}

func (r *firestoreHomeContentRepository) Get(ctx context.Context) (*entity.HomeContent, error) {
	iter := r.client.Collection("homeContent").Limit(1).Documents(ctx)

	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, errors.NotFound("Home content", nil)
	}
	if err != nil {
		return nil, errors.Internal("Failed to query home content", err)
	}

	var content entity.HomeContent
	if err := doc.DataTo(&content); err != nil {
		return nil, errors.Internal("Failed to parse home content", err)
	}

	return &content, nil
}

func (r *firestoreHomeContentRepository) Save(ctx context.Context, content *entity.HomeContent) error {
	if content.ID == "" {
		doc := r.client.Collection("homeContent").NewDoc()
		content.ID = doc.ID
	}

	now := time.Now()
	if content.CreatedAt.IsZero() {
		content.CreatedAt = now
	}
	content.UpdatedAt = now

	_, err := r.client.Collection("homeContent").Doc(content.ID).Set(ctx, content)
	if err != nil {
		return errors.Internal("Failed to save home content", err)
	}

	return nil
}

type firestoreMarketingRepository struct {
	client *firestore.Client
}

func NewFirestoreMarketingRepository(client *firestore.Client) repository.MarketingRepository {
	return &firestoreMarketingRepository{
		client: client,
	}
}

func (r *firestoreMarketingRepository) Get(ctx context.Context) (*entity.MarketingSettings, error) {
	iter := r.client.Collection("marketingSettings").Limit(1).Documents(ctx)

	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, errors.NotFound("Marketing settings", nil)
	}
	if err != nil {
		return nil, errors.Internal("Failed to query marketing settings", err)
	}

	var settings entity.MarketingSettings
	if err := doc.DataTo(&settings); err != nil {
		return nil, errors.Internal("Failed to parse marketing settings", err)
	}

	return &settings, nil
}

func (r *firestoreMarketingRepository) Save(ctx context.Context, settings *entity.MarketingSettings) error {
	if settings.ID == "" {
		doc := r.client.Collection("marketingSettings").NewDoc()
		settings.ID = doc.ID
	}

	now := time.Now()
	if settings.CreatedAt.IsZero() {
		settings.CreatedAt = now
	}
	settings.UpdatedAt = now

	_, err := r.client.Collection("marketingSettings").Doc(settings.ID).Set(ctx, settings)
	if err != nil {
		return errors.Internal("Failed to save marketing settings", err)
	}

	return nil
}
