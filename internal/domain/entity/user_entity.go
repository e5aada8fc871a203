package entity

import (
	"time"
)

// User is the aggregate root for the identity domain.
// PasswordHash holds the bcrypt digest; it must never reach an
// outward-facing payload, so responses go through view types only.
type User struct {
	ID           string
	FirstName    string
	LastName     string
	Email        string
	PasswordHash string
	Phone        string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
