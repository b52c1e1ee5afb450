package repository

import (
	"context"
	"sort"
	"strings"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"gameclub/internal/domain/entity"
	"gameclub/internal/domain/repository"
	"gameclub/pkg/errors"
)

type firestoreGameRepository struct {
	client *firestore.Client
}

func NewFirestoreGameRepository(client *firestore.Client) repository.GameRepository {
	return &firestoreGameRepository{
		client: client,
	}
}

func (r *firestoreGameRepository) Create(ctx context.Context, game *entity.Game) error {
	if game.ID == "" {
		doc := r.client.Collection("games").NewDoc()
		game.ID = doc.ID
	}

	now := time.Now()
	if game.CreatedAt.IsZero() {
		game.CreatedAt = now
	}
	game.UpdatedAt = now

	_, err := r.client.Collection("games").Doc(game.ID).Set(ctx, game)
	if err != nil {
		return errors.Internal("Failed to create game", err)
	}

	return nil
}

func (r *firestoreGameRepository) GetByID(ctx context.Context, id string) (*entity.Game, error) {
	doc, err := r.client.Collection("games").Doc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, errors.NotFound("Game", err)
		}
		return nil, errors.Internal("Failed to get game", err)
	}

	var game entity.Game
	if err := doc.DataTo(&game); err != nil {
		return nil, errors.Internal("Failed to parse game data", err)
	}

	return &game, nil
}

func (r *firestoreGameRepository) GetBySlug(ctx context.Context, slug string) (*entity.Game, error) {
	iter := r.client.Collection("games").Where("slug", "==", slug).Limit(1).Documents(ctx)

	doc, err := iter.Next()
	if err == iterator.Done {
		return nil, errors.NotFound("Game", nil)
	}
	if err != nil {
		return nil, errors.Internal("Failed to query game by slug", err)
	}

	var game entity.Game
	if err := doc.DataTo(&game); err != nil {
		return nil, errors.Internal("Failed to parse game data", err)
	}

	return &game, nil
}

// List pushes equality filters into the Firestore query and applies the
// region and free-text constraints in memory; Firestore allows a single
// array-contains clause per query and has no substring search.
func (r *firestoreGameRepository) List(ctx context.Context, filter repository.GameFilter) ([]*entity.Game, error) {
	query := r.client.Collection("games").Query

	if filter.Genre != "" {
		query = query.Where("genre", "array-contains", filter.Genre)
	}
	if filter.SafeOnly != nil {
		query = query.Where("safeAccountAvailable", "==", *filter.SafeOnly)
	}

	iter := query.Documents(ctx)
	var games []*entity.Game

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate games", err)
		}

		var game entity.Game
		if err := doc.DataTo(&game); err != nil {
			return nil, errors.Internal("Failed to parse game data", err)
		}
		games = append(games, &game)
	}

	if filter.Region != "" {
		games = filterGames(games, func(g *entity.Game) bool {
			return containsString(g.RegionOptions, filter.Region)
		})
	}

	if filter.Search != "" {
		needle := strings.ToLower(filter.Search)
		games = filterGames(games, func(g *entity.Game) bool {
			return strings.Contains(strings.ToLower(g.Title), needle) ||
				strings.Contains(strings.ToLower(g.Description), needle)
		})
	}

	switch filter.Sort {
	case "createdAt":
		sort.Slice(games, func(i, j int) bool { return games[i].CreatedAt.Before(games[j].CreatedAt) })
	case "-createdAt":
		sort.Slice(games, func(i, j int) bool { return games[i].CreatedAt.After(games[j].CreatedAt) })
	}

	return games, nil
}

func (r *firestoreGameRepository) Update(ctx context.Context, game *entity.Game) error {
	game.UpdatedAt = time.Now()

	_, err := r.client.Collection("games").Doc(game.ID).Set(ctx, game)
	if err != nil {
		return errors.Internal("Failed to update game", err)
	}

	return nil
}

func (r *firestoreGameRepository) Delete(ctx context.Context, id string) error {
	_, err := r.client.Collection("games").Doc(id).Delete(ctx)
	if err != nil {
		return errors.Internal("Failed to delete game", err)
	}

	return nil
}

func filterGames(games []*entity.Game, keep func(*entity.Game) bool) []*entity.Game {
	filtered := games[:0]
	for _, game := range games {
		if keep(game) {
			filtered = append(filtered, game)
		}
	}
	return filtered
}

func containsString(values []string, target string) bool {
	for _, value := range values {
		if value == target {
			return true
		}
	}
	return false
}
