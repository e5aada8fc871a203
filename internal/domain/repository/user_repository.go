package repository

import (
	"context"

	"github.com/craftd/orgauth/internal/domain/entity"
)

// UserRepository defines the interface for user-related database operations.
type UserRepository interface {
	// CreateWithOrganisation persists the user together with their default
	// organisation and the linking membership in a single transaction.
	// A duplicate email yields ErrDuplicateEmail and nothing is persisted.
	CreateWithOrganisation(ctx context.Context, u *entity.User, org *entity.Organisation) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
}
