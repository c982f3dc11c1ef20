package models

import "time"

// DefaultRole is assigned to every newly registered user. No endpoint
// elevates it.
const DefaultRole = "user"

// User represents a user in the system
type User struct {
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // Not serialized
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
}
