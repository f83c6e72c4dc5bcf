package model

type User struct {
	ID             int64  `json:"id"`
	Username       string `json:"username"`
	Email          string `json:"email"`
	HashedPassword string `json:"-"` // Not exposed
	IsActive       bool   `json:"is_active"`
}
