package models

import "time"

// User is a back-office login, not a shop employee. Role gates the
// destructive endpoints ("manager" or "staff").
type User struct {
	ID           int       `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}
