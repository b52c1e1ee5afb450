package entity

import (
	"time"
)

// CartItem snapshots the price at the moment the line was added; later price
// changes on the game never touch existing lines.
type CartItem struct {
	GameID          string            `json:"game_id" firestore:"gameId"`
	VariantID       string            `json:"variant_id,omitempty" firestore:"variantId,omitempty"`
	SelectedOptions map[string]string `json:"selected_options,omitempty" firestore:"selectedOptions,omitempty"`
	Quantity        int               `json:"quantity" firestore:"quantity"`
	PriceAtAdd      int64             `json:"price_at_add" firestore:"priceAtAdd"`
	AddedAt         time.Time         `json:"added_at" firestore:"addedAt"`
}

// Cart holds at most one document per user; at most one item per
// (gameId, variantId) pair.
type Cart struct {
	ID     string     `json:"id" firestore:"id"`
	UserID string     `json:"user_id" firestore:"userId"`
	Items  []CartItem `json:"items" firestore:"items"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}

func (c *Cart) TotalPrice() int64 {
	var total int64
	for _, item := range c.Items {
		total += item.PriceAtAdd * int64(item.Quantity)
	}
	return total
}
