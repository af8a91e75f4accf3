package models

import "time"

// User represents a row in the users table.
type User struct {
	ID           int64     `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"` // never serialize
	CreatedAt    time.Time `json:"created_at"`
}

// PublicUser is the projection of a user safe to expose to clients.
// The password hash has no field here at all.
type PublicUser struct {
	ID        int64     `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}

// RegisterRequest is the JSON body for POST /api/register.
type RegisterRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}
