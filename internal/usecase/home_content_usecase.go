package usecase

import (
	"context"
	"time"

	"gameclub/internal/domain/entity"
	"gameclub/internal/domain/repository"
	"gameclub/pkg/errors"
)

type HomeContentUseCase struct {
	contentRepo repository.HomeContentRepository
}

func NewHomeContentUseCase(contentRepo repository.HomeContentRepository) *HomeContentUseCase {
	return &HomeContentUseCase{
		contentRepo: contentRepo,
	}
}

type UpdateHomeContentInput struct {
	Hero         *entity.HeroContent
	Carousel     []entity.CarouselSlide
	Spotlights   []entity.Spotlight
	TrustSignals []entity.TrustSignal
	Testimonials []entity.Testimonial
}

// GetContent returns the landing-page singleton, creating it from the
// built-in defaults on first access.
func (uc *HomeContentUseCase) GetContent(ctx context.Context) (*entity.HomeContent, error) {
	content, err := uc.contentRepo.Get(ctx)
	if err != nil {
		if !errors.Is(err, "NOT_FOUND") {
			return nil, err
		}
		fresh := defaultHomeContent
		now := time.Now()
		fresh.CreatedAt = now
		fresh.UpdatedAt = now
		if err := uc.contentRepo.Save(ctx, &fresh); err != nil {
			return nil, err
		}
		return &fresh, nil
	}
	return content, nil
}

// UpdateContent overwrites only the sections present in the input.
func (uc *HomeContentUseCase) UpdateContent(ctx context.Context, input UpdateHomeContentInput) (*entity.HomeContent, error) {
	content, err := uc.GetContent(ctx)
	if err != nil {
		return nil, err
	}

	if input.Hero != nil {
		content.Hero = *input.Hero
	}
	if input.Carousel != nil {
		content.Carousel = input.Carousel
	}
	if input.Spotlights != nil {
		content.Spotlights = input.Spotlights
	}
	if input.TrustSignals != nil {
		content.TrustSignals = input.TrustSignals
	}
	if input.Testimonials != nil {
		content.Testimonials = input.Testimonials
	}
	content.UpdatedAt = time.Now()

	if err := uc.contentRepo.Save(ctx, content); err != nil {
		return nil, err
	}

	return content, nil
}
