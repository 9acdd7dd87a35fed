package models

import "time"

type UserProfile struct {
	ID           string    `json:"id"`
	UserID       string    `json:"user_id"`
	ProfilePhoto *string   `json:"profile_photo"`
	Bio          *string   `json:"bio"`
	Height       *int      `json:"height"`
	Weight       *int      `json:"weight"`
	Age          *int      `json:"age"`
	Gender       *string   `json:"gender"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
