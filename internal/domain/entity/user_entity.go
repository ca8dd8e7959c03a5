package entity

import (
	"time"
)

// User is the aggregate root for the user domain.
// Password holds the bcrypt hash; the plaintext is never persisted.
type User struct {
	ID        string
	Username  string
	Email     string
	Password  string
	AvatarURL string
	CreatedAt time.Time
	UpdatedAt time.Time
}
