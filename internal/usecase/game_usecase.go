package usecase

import (
	"context"
	"time"

	"gameclub/internal/domain/entity"
	"gameclub/internal/domain/repository"
	"gameclub/pkg/errors"
)

type GameUseCase struct {
	gameRepo repository.GameRepository
}

func NewGameUseCase(gameRepo repository.GameRepository) *GameUseCase {
	return &GameUseCase{
		gameRepo: gameRepo,
	}
}

type GameOptionInput struct {
	ID     string
	Name   string
	Values []string
}

type GameVariantInput struct {
	ID              string
	SelectedOptions map[string]string
	Price           int64
	Stock           int
}

type CreateGameInput struct {
	Title                string
	Slug                 string
	Description          string
	DetailedDescription  string
	Genre                []string
	Platform             string
	RegionOptions        []string
	BasePrice            int64
	SafeAccountAvailable bool
	CoverURL             string
	Gallery              []string
	Tags                 []string
	Options              []GameOptionInput
	Variants             []GameVariantInput
}

// UpdateGameInput is a partial update; nil fields keep their current value.
type UpdateGameInput struct {
	Title                *string
	Slug                 *string
	Description          *string
	DetailedDescription  *string
	Genre                []string
	Platform             *string
	RegionOptions        []string
	BasePrice            *int64
	SafeAccountAvailable *bool
	CoverURL             *string
	Gallery              []string
	Tags                 []string
	Options              []GameOptionInput
	Variants             []GameVariantInput
}

type SeedResult struct {
	Inserted int `json:"inserted"`
	Skipped  int `json:"skipped"`
}

func (uc *GameUseCase) ListGames(ctx context.Context, filter repository.GameFilter) ([]*entity.Game, error) {
	return uc.gameRepo.List(ctx, filter)
}

// GetGame accepts either a document id or a slug and resolves whichever
// matches.
func (uc *GameUseCase) GetGame(ctx context.Context, idOrSlug string) (*entity.Game, error) {
	game, err := uc.gameRepo.GetByID(ctx, idOrSlug)
	if err == nil {
		return game, nil
	}
	if !errors.Is(err, "NOT_FOUND") {
		return nil, err
	}
	return uc.gameRepo.GetBySlug(ctx, idOrSlug)
}

func (uc *GameUseCase) CreateGame(ctx context.Context, input CreateGameInput) (*entity.Game, error) {
	existing, err := uc.gameRepo.GetBySlug(ctx, input.Slug)
	if err == nil && existing != nil {
		return nil, errors.Conflict("A game with this slug already exists")
	}

	now := time.Now()
	game := &entity.Game{
		Title:                input.Title,
		Slug:                 input.Slug,
		Description:          input.Description,
		DetailedDescription:  input.DetailedDescription,
		Genre:                input.Genre,
		Platform:             input.Platform,
		RegionOptions:        input.RegionOptions,
		BasePrice:            input.BasePrice,
		SafeAccountAvailable: input.SafeAccountAvailable,
		CoverURL:             input.CoverURL,
		Gallery:              input.Gallery,
		Tags:                 input.Tags,
		Options:              convertOptions(input.Options),
		Variants:             convertVariants(input.Variants),
		CreatedAt:            now,
		UpdatedAt:            now,
	}

	if err := uc.gameRepo.Create(ctx, game); err != nil {
		return nil, err
	}

	return game, nil
}

func (uc *GameUseCase) UpdateGame(ctx context.Context, idOrSlug string, input UpdateGameInput) (*entity.Game, error) {
	game, err := uc.GetGame(ctx, idOrSlug)
	if err != nil {
		return nil, err
	}

	if input.Title != nil {
		game.Title = *input.Title
	}
	if input.Slug != nil {
		game.Slug = *input.Slug
	}
	if input.Description != nil {
		game.Description = *input.Description
	}
	if input.DetailedDescription != nil {
		game.DetailedDescription = *input.DetailedDescription
	}
	if input.Genre != nil {
		game.Genre = input.Genre
	}
	if input.Platform != nil {
		game.Platform = *input.Platform
	}
	if input.RegionOptions != nil {
		game.RegionOptions = input.RegionOptions
	}
	if input.BasePrice != nil {
		game.BasePrice = *input.BasePrice
	}
	if input.SafeAccountAvailable != nil {
		game.SafeAccountAvailable = *input.SafeAccountAvailable
	}
	if input.CoverURL != nil {
		game.CoverURL = *input.CoverURL
	}
	if input.Gallery != nil {
		game.Gallery = input.Gallery
	}
	if input.Tags != nil {
		game.Tags = input.Tags
	}
	if input.Options != nil {
		game.Options = convertOptions(input.Options)
	}
	if input.Variants != nil {
		game.Variants = convertVariants(input.Variants)
	}
	game.UpdatedAt = time.Now()

	if err := uc.gameRepo.Update(ctx, game); err != nil {
		return nil, err
	}

	return game, nil
}

func (uc *GameUseCase) DeleteGame(ctx context.Context, idOrSlug string) error {
	game, err := uc.GetGame(ctx, idOrSlug)
	if err != nil {
		return err
	}

	return uc.gameRepo.Delete(ctx, game.ID)
}

// SeedSampleGames inserts the built-in catalog, skipping any slug that is
// already present, so the endpoint is safe to call repeatedly.
func (uc *GameUseCase) SeedSampleGames(ctx context.Context) (*SeedResult, error) {
	result := &SeedResult{}

	for _, sample := range sampleGames {
		existing, err := uc.gameRepo.GetBySlug(ctx, sample.Slug)
		if err != nil && !errors.Is(err, "NOT_FOUND") {
			return nil, err
		}
		if existing != nil {
			result.Skipped++
			continue
		}

		game := sample
		if err := uc.gameRepo.Create(ctx, &game); err != nil {
			return nil, err
		}
		result.Inserted++
	}

	return result, nil
}

func convertOptions(inputs []GameOptionInput) []entity.GameOption {
	options := make([]entity.GameOption, len(inputs))
	for i, opt := range inputs {
		options[i] = entity.GameOption{
			ID:     opt.ID,
			Name:   opt.Name,
			Values: opt.Values,
		}
	}
	return options
}

func convertVariants(inputs []GameVariantInput) []entity.GameVariant {
	variants := make([]entity.GameVariant, len(inputs))
	for i, v := range inputs {
		variants[i] = entity.GameVariant{
			ID:              v.ID,
			SelectedOptions: v.SelectedOptions,
			Price:           v.Price,
			Stock:           v.Stock,
		}
	}
	return variants
}
