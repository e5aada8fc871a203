package repository

import (
	"context"

	"github.com/craftd/orgauth/internal/domain/entity"
)

// OrganisationRepository defines organisation and membership persistence.
// All reads are scoped by the requesting user's membership; an organisation
// the user does not belong to is indistinguishable from one that does not
// exist.
type OrganisationRepository interface {
	// CreateWithMember persists the organisation and links memberID as its
	// first member in a single transaction.
	CreateWithMember(ctx context.Context, org *entity.Organisation, memberID string) error
	ListByMember(ctx context.Context, userID string) ([]entity.Organisation, error)
	GetForMember(ctx context.Context, userID, orgID string) (*entity.Organisation, error)
	IsMember(ctx context.Context, orgID, userID string) (bool, error)
	// AddMember inserts a membership row; adding an existing member is a no-op.
	AddMember(ctx context.Context, orgID, userID string) error
}
