package entity

import (
	"time"
)

const (
	AccountTypeStandard = "standard"
	AccountTypeSafe     = "safe"

	AccountStatusAvailable = "available"
	AccountStatusReserved  = "reserved"
	AccountStatusAssigned  = "assigned"
	AccountStatusBanned    = "banned"
	AccountStatusExpired   = "expired"
)

// GameAccount is a sellable credential in the inventory pool. Delivery is
// manual free-text entered by an admin; nothing assigns from this pool yet.
type GameAccount struct {
	ID           string `json:"id" firestore:"id"`
	GameID       string `json:"game_id" firestore:"gameId"`
	Email        string `json:"email" firestore:"email"`
	PasswordHash string `json:"-" firestore:"passwordHash"`
	Region       string `json:"region" firestore:"region"`
	Type         string `json:"type" firestore:"type"`
	Status       string `json:"status" firestore:"status"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}
