package entity

import (
	"time"
)

type User struct {
	ID       string `json:"id" firestore:"id"`
	Name     string `json:"name" firestore:"name"`
	Email    string `json:"email" firestore:"email"`
	Password string `json:"-" firestore:"password"`
	Phone    string `json:"phone,omitempty" firestore:"phone,omitempty"`
	Telegram string `json:"telegram,omitempty" firestore:"telegram,omitempty"`
	Role     string `json:"role" firestore:"role"`

	CreatedAt time.Time `json:"created_at" firestore:"createdAt"`
	UpdatedAt time.Time `json:"updated_at" firestore:"updatedAt"`
}
