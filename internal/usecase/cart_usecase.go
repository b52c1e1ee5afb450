package usecase

import (
	"context"
	"time"

	"gameclub/internal/domain/entity"
	"gameclub/internal/domain/repository"
	"gameclub/pkg/errors"
)

type CartUseCase struct {
	cartRepo repository.CartRepository
	gameRepo repository.GameRepository
}

func NewCartUseCase(cartRepo repository.CartRepository, gameRepo repository.GameRepository) *CartUseCase {
	return &CartUseCase{
		cartRepo: cartRepo,
		gameRepo: gameRepo,
	}
}

type AddToCartInput struct {
	GameID          string
	VariantID       string
	SelectedOptions map[string]string
	Quantity        int
}

// GetCart returns the user's cart, or a synthesized empty cart that is not
// persisted until the first add.
func (uc *CartUseCase) GetCart(ctx context.Context, userID string) (*entity.Cart, error) {
	cart, err := uc.cartRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, "NOT_FOUND") {
			now := time.Now()
			return &entity.Cart{
				UserID:    userID,
				Items:     []entity.CartItem{},
				CreatedAt: now,
				UpdatedAt: now,
			}, nil
		}
		return nil, err
	}
	return cart, nil
}

// AddItem snapshots the price at add time: the game's base price, overridden
// by the variant price when the variant id matches a known variant. Adding an
// existing (gameId, variantId) pair increments its quantity instead of
// appending a duplicate line.
func (uc *CartUseCase) AddItem(ctx context.Context, userID string, input AddToCartInput) (*entity.Cart, error) {
	game, err := uc.gameRepo.GetByID(ctx, input.GameID)
	if err != nil {
		return nil, err
	}

	cart, err := uc.cartRepo.GetByUserID(ctx, userID)
	if err != nil {
		if !errors.Is(err, "NOT_FOUND") {
			return nil, err
		}
		cart = &entity.Cart{
			UserID: userID,
			Items:  []entity.CartItem{},
		}
	}

	price := game.BasePrice
	if input.VariantID != "" {
		for _, variant := range game.Variants {
			if variant.ID == input.VariantID {
				price = variant.Price
				break
			}
		}
	}

	merged := false
	for i := range cart.Items {
		if cart.Items[i].GameID == input.GameID && cart.Items[i].VariantID == input.VariantID {
			cart.Items[i].Quantity += input.Quantity
			merged = true
			break
		}
	}

	if !merged {
		cart.Items = append(cart.Items, entity.CartItem{
			GameID:          input.GameID,
			VariantID:       input.VariantID,
			SelectedOptions: input.SelectedOptions,
			Quantity:        input.Quantity,
			PriceAtAdd:      price,
			AddedAt:         time.Now(),
		})
	}

	if err := uc.cartRepo.Save(ctx, cart); err != nil {
		return nil, err
	}

	return cart, nil
}

// UpdateItemQuantity overwrites the line's quantity; zero removes the line.
func (uc *CartUseCase) UpdateItemQuantity(ctx context.Context, userID, gameID string, quantity int) (*entity.Cart, error) {
	cart, err := uc.cartRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	index := -1
	for i := range cart.Items {
		if cart.Items[i].GameID == gameID {
			index = i
			break
		}
	}
	if index == -1 {
		return nil, errors.NotFound("Cart item", nil)
	}

	if quantity == 0 {
		cart.Items = append(cart.Items[:index], cart.Items[index+1:]...)
	} else {
		cart.Items[index].Quantity = quantity
	}

	if err := uc.cartRepo.Save(ctx, cart); err != nil {
		return nil, err
	}

	return cart, nil
}

// RemoveItem drops every line for the game, regardless of variant. This
// matches the storefront's long-standing behavior; see the cart tests before
// changing it.
func (uc *CartUseCase) RemoveItem(ctx context.Context, userID, gameID string) (*entity.Cart, error) {
	cart, err := uc.cartRepo.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	kept := cart.Items[:0]
	for _, item := range cart.Items {
		if item.GameID != gameID {
			kept = append(kept, item)
		}
	}
	cart.Items = kept

	if err := uc.cartRepo.Save(ctx, cart); err != nil {
		return nil, err
	}

	return cart, nil
}

// ClearCart empties the items array but keeps the document. Returns nil
// without error when the user has no cart.
func (uc *CartUseCase) ClearCart(ctx context.Context, userID string) (*entity.Cart, error) {
	cart, err := uc.cartRepo.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, "NOT_FOUND") {
			return nil, nil
		}
		return nil, err
	}

	cart.Items = []entity.CartItem{}
	if err := uc.cartRepo.Save(ctx, cart); err != nil {
		return nil, err
	}

	return cart, nil
}
