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

type firestoreGameAccountRepository struct {
	client *firestore.Client
}

func NewFirestoreGameAccountRepository(client *firestore.Client) repository.GameAccountRepository {
	return &firestoreGameAccountRepository{
		client: client,
	}
}

func (r *firestoreGameAccountRepository) Create(ctx context.Context, account *entity.GameAccount) error {
	if account.ID == "" {
		doc := r.client.Collection("accounts").NewDoc()
		account.ID = doc.ID
	}

	now := time.Now()
	if account.CreatedAt.IsZero() {
		account.CreatedAt = now
	}
	account.UpdatedAt = now

	_, err := r.client.Collection("accounts").Doc(account.ID).Set(ctx, account)
	if err != nil {
		return errors.Internal("Failed to create account", err)
	}

	return nil
}

func (r *firestoreGameAccountRepository) List(ctx context.Context, gameID, status string) ([]*entity.GameAccount, error) {
	query := r.client.Collection("accounts").Query
	if gameID != "" {
		query = query.Where("gameId", "==", gameID)
	}
	if status != "" {
		query = query.Where("status", "==", status)
	}

	iter := query.Documents(ctx)
	var accounts []*entity.GameAccount

	for {
		doc, err := iter.Next()
		if err == iterator.Done {
			break
		}
		if err != nil {
			return nil, errors.Internal("Failed to iterate accounts", err)
		}

		var account entity.GameAccount
		if err := doc.DataTo(&account); err != nil {
			return nil, errors.Internal("Failed to parse account data", err)
		}
		accounts = append(accounts, &account)
	}

	return accounts, nil
}
