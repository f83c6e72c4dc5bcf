package model

import (
	"time"
)

// Note belongs to exactly one owner. OwnerID is set at creation and never
// reassigned.
type Note struct {
	ID        int64     `json:"id"`
	Title     string    `json:"title"`
	Content   string    `json:"content"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
	OwnerID   int64     `json:"owner_id"`
}
