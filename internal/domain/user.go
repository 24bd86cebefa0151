package domain

import "time"

// User is the domain model for a registered account. The email doubles as the
// login key and is unique at the store layer.
type User struct {
	ID           string
	Email        string
	PasswordHash string
	CreatedAt    time.Time
}
