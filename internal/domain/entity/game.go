package entity

import (
	"time"
)

type GameOption struct {
	ID     string   `json:"id" firestore:"id"`
	Name   string   `json:"name" firestore:"name"`
	Values []string `json:"values" firestore:"values"`
}

// GameVariant is a priced, stocked combination of option values.
// SelectedOptions keys are expected to match option names declared on the
// owning game, but the store does not enforce that at write time.
type GameVariant struct {
	ID              string            `json:"id" firestore:"id"`
	SelectedOptions map[string]string `json:"selected_options" firestore:"selectedOptions"`
	Price           int64             `json:"price" firestore:"price"`
	Stock           int               `json:"stock" firestore:"stock"`
}

type Game struct {
	ID                   string        `json:"id" firestore:"id"`
	Title                string        `json:"title" firestore:"title"`
	Slug                 string        `json:"slug" firestore:"slug"`
	Description          string        `json:"description" firestore:"description"`
	DetailedDescription  string        `json:"detailed_description,omitempty" firestore:"detailedDescription,omitempty"`
	Genre                []string      `json:"genre" firestore:"genre"`
	Platform             string        `json:"platform" firestore:"platform"`
	RegionOptions        []string      `json:"region_options" firestore:"regionOptions"`
	BasePrice            int64         `json:"base_price" firestore:"basePrice"`
	SafeAccountAvailable bool          `json:"safe_account_available" firestore:"safeAccountAvailable"`
	CoverURL             string        `json:"cover_url,omitempty" firestore:"coverUrl,omitempty"`
	Gallery              []string      `json:"gallery,omitempty" firestore:"gallery,omitempty"`
	Tags                 []string      `json:"tags,omitempty" firestore:"tags,omitempty"`
	Options              []GameOption  `json:"options" firestore:"options"`
	Variants             []GameVariant `json:"variants" firestore:"variants"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}
