package entity

import (
	"time"
)

// Organisation groups users. Every registered user gets a default one.
type Organisation struct {
	ID          string
	Name        string
	Description string
	CreatedAt   time.Time
}

// Membership links a user to an organisation. The pair is unique at the
// store level; membership is append-only.
type Membership struct {
	UserID    string
	OrgID     string
	CreatedAt time.Time
}
