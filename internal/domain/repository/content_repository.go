package repository

import (
	"context"

	"gameclub/internal/domain/entity"
)

// Both CMS documents follow the singleton pattern: Get returns a NotFound
// error until the first Save creates the document.

type HomeContentRepository interface {
	Get(ctx context.Context) (*entity.HomeContent, error)
	Save(ctx context.Context, content *entity.HomeContent) error
}

type MarketingRepository interface {
	Get(ctx context.Context) (*entity.MarketingSettings, error)
	Save(ctx context.Context, settings *entity.MarketingSettings) error
}
