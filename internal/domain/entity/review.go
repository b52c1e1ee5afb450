package entity

import (
	"time"
)

type Review struct {
	ID      string `json:"id" firestore:"id"`
	GameID  string `json:"game_id" firestore:"gameId"`
	UserID  string `json:"user_id" firestore:"userId"`
	Rating  int    `json:"rating" firestore:"rating"`
	Comment string `json:"comment" firestore:"comment"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
}

type PriceAlert struct {
	ID          string `json:"id" firestore:"id"`
	GameID      string `json:"game_id" firestore:"gameId"`
	UserID      string `json:"user_id" firestore:"userId"`
	Email       string `json:"email" firestore:"email"`
	TargetPrice int64  `json:"target_price" firestore:"targetPrice"`
	Active      bool   `json:"active" firestore:"active"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
}
