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

func TestCreateGameRejectsDuplicateSlug(t *testing.T) {
	gameRepo := newMemGameRepo()
	uc := NewGameUseCase(gameRepo)

	ctx := context.Background()
	input := CreateGameInput{Title: "Bloodborne", Slug: "bloodborne", Description: "souls", Genre: []string{"Action"}, Platform: "PS4", BasePrice: 990000}

	_, err := uc.CreateGame(ctx, input)
	require.NoError(t, err)

	_, err = uc.CreateGame(ctx, input)
	assert.True(t, errors.Is(err, "CONFLICT"))
}

func TestGetGameResolvesIDThenSlug(t *testing.T) {
	gameRepo := newMemGameRepo()
	uc := NewGameUseCase(gameRepo)
	game := seedGame(t, gameRepo, "stray", 699000)

	ctx := context.Background()

	byID, err := uc.GetGame(ctx, game.ID)
	require.NoError(t, err)
	assert.Equal(t, game.ID, byID.ID)

	bySlug, err := uc.GetGame(ctx, "stray")
	require.NoError(t, err)
	assert.Equal(t, game.ID, bySlug.ID)

	_, err = uc.GetGame(ctx, "nope")
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestUpdateGameAppliesOnlyProvidedFields(t *testing.T) {
	gameRepo := newMemGameRepo()
	uc := NewGameUseCase(gameRepo)
	game := seedGame(t, gameRepo, "returnal", 1599000)

	newPrice := int64(1299000)
	updated, err := uc.UpdateGame(context.Background(), game.Slug, UpdateGameInput{BasePrice: &newPrice})
	require.NoError(t, err)

	assert.Equal(t, newPrice, updated.BasePrice)
	assert.Equal(t, game.Title, updated.Title)
	assert.Equal(t, game.Slug, updated.Slug)
}

func TestDeleteGameBySlug(t *testing.T) {
	gameRepo := newMemGameRepo()
	uc := NewGameUseCase(gameRepo)
	game := seedGame(t, gameRepo, "ghost-of-tsushima", 1899000)

	ctx := context.Background()
	require.NoError(t, uc.DeleteGame(ctx, game.Slug))

	_, err := uc.GetGame(ctx, game.Slug)
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestSeedSampleGamesIsIdempotent(t *testing.T) {
	gameRepo := newMemGameRepo()
	uc := NewGameUseCase(gameRepo)

	ctx := context.Background()

	first, err := uc.SeedSampleGames(ctx)
	require.NoError(t, err)
	assert.Equal(t, len(sampleGames), first.Inserted)
	assert.Zero(t, first.Skipped)

	second, err := uc.SeedSampleGames(ctx)
	require.NoError(t, err)
	assert.Zero(t, second.Inserted)
	assert.Equal(t, len(sampleGames), second.Skipped)

	games, err := uc.ListGames(ctx, repository.GameFilter{})
	require.NoError(t, err)
	assert.Len(t, games, len(sampleGames))
}

func catalogGame(t *testing.T, repo *memGameRepo, title string, genre []string, regions []string, safe bool) *entity.Game {
	t.Helper()
	game := &entity.Game{
		Title:                title,
		Slug:                 title,
		Description:          title + " account",
		Genre:                genre,
		RegionOptions:        regions,
		Platform:             "PS5",
		BasePrice:            1499000,
		SafeAccountAvailable: safe,
	}
	if err := repo.Create(context.Background(), game); err != nil {
		t.Fatalf("seed catalog game: %v", err)
	}
	return game
}

func TestListGamesSafeOnlyReturnsOnlySafeGames(t *testing.T) {
	gameRepo := newMemGameRepo()
	uc := NewGameUseCase(gameRepo)

	catalogGame(t, gameRepo, "elden-ring", []string{"RPG"}, []string{"EU"}, true)
	catalogGame(t, gameRepo, "tekken-8", []string{"Fighting"}, []string{"EU"}, false)

	safeOnly := true
	games, err := uc.ListGames(context.Background(), repository.GameFilter{SafeOnly: &safeOnly})
	require.NoError(t, err)

	require.Len(t, games, 1)
	assert.True(t, games[0].SafeAccountAvailable)
	assert.Equal(t, "elden-ring", games[0].Slug)
}

func TestListGamesGenreMatchesGenreArray(t *testing.T) {
	gameRepo := newMemGameRepo()
	uc := NewGameUseCase(gameRepo)

	catalogGame(t, gameRepo, "persona-5", []string{"JRPG"}, []string{"US"}, false)
	catalogGame(t, gameRepo, "elden-ring", []string{"RPG", "Action"}, []string{"US"}, false)
	catalogGame(t, gameRepo, "fc-25", []string{"Sports"}, []string{"US"}, false)

	ctx := context.Background()

	games, err := uc.ListGames(ctx, repository.GameFilter{Genre: "JRPG"})
	require.NoError(t, err)
	require.Len(t, games, 1)
	assert.Equal(t, "persona-5", games[0].Slug)

	// Whole-value match only; "RPG" must not pick up "JRPG" as a substring.
	games, err = uc.ListGames(ctx, repository.GameFilter{Genre: "RPG"})
	require.NoError(t, err)
	require.Len(t, games, 1)
	assert.Equal(t, "elden-ring", games[0].Slug)

	games, err = uc.ListGames(ctx, repository.GameFilter{Genre: "Racing"})
	require.NoError(t, err)
	assert.Empty(t, games)
}

func TestListGamesCombinesRegionAndSearch(t *testing.T) {
	gameRepo := newMemGameRepo()
	uc := NewGameUseCase(gameRepo)

	catalogGame(t, gameRepo, "gran-turismo-7", []string{"Racing"}, []string{"EU", "US"}, false)
	catalogGame(t, gameRepo, "horizon-forbidden-west", []string{"Action"}, []string{"Asia"}, false)

	games, err := uc.ListGames(context.Background(), repository.GameFilter{Region: "EU", Search: "TURISMO"})
	require.NoError(t, err)

	require.Len(t, games, 1)
	assert.Equal(t, "gran-turismo-7", games[0].Slug)
}
