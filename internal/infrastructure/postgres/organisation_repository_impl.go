package postgres

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/craftd/orgauth/internal/domain/entity"
	"github.com/craftd/orgauth/internal/domain/repository"
)

const foreignKeyViolation = "23503"

type OrganisationRepository struct {
	pool *pgxpool.Pool
}

func NewOrganisationRepository(pool *pgxpool.Pool) *OrganisationRepository {
	return &OrganisationRepository{pool: pool}
}

func (r *OrganisationRepository) CreateWithMember(ctx context.Context, org *entity.Organisation, memberID string) error {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		return err
	}
	defer func() { _ = tx.Rollback(ctx) }()

	row := tx.QueryRow(ctx, `
		INSERT INTO organisations (id, name, description)
		VALUES ($1, $2, $3)
		RETURNING created_at
	`, org.ID, org.Name, org.Description)
	if err := row.Scan(&org.CreatedAt); err != nil {
		return err
	}

	if _, err := tx.Exec(ctx, `
		INSERT INTO membership (user_id, org_id)
		VALUES ($1, $2)
	`, memberID, org.ID); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// ListByMember returns organisations in membership-creation order so the
// listing is stable within a query.
func (r *OrganisationRepository) ListByMember(ctx context.Context, userID string) ([]entity.Organisation, error) {
	rows, err := r.pool.Query(ctx, `
		SELECT o.id, o.name, o.description, o.created_at
		FROM organisations o
		JOIN membership m ON m.org_id = o.id
		WHERE m.user_id = $1
		ORDER BY m.created_at, o.id
	`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orgs := make([]entity.Organisation, 0)
	for rows.Next() {
		var o entity.Organisation
		if err := rows.Scan(&o.ID, &o.Name, &o.Description, &o.CreatedAt); err != nil {
			return nil, err
		}
		orgs = append(orgs, o)
	}
	return orgs, rows.Err()
}

// GetForMember joins through the caller's membership, so a non-member read
// and a nonexistent organisation both come back as ErrNotFound.
func (r *OrganisationRepository) GetForMember(ctx context.Context, userID, orgID string) (*entity.Organisation, error) {
	o := &entity.Organisation{}

	row := r.pool.QueryRow(ctx, `
		SELECT o.id, o.name, o.description, o.created_at
		FROM organisations o
		JOIN membership m ON m.org_id = o.id
		WHERE m.user_id = $1 AND o.id = $2
	`, userID, orgID)

	if err := row.Scan(&o.ID, &o.Name, &o.Description, &o.CreatedAt); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, repository.ErrNotFound
		}
		return nil, err
	}

	return o, nil
}

func (r *OrganisationRepository) IsMember(ctx context.Context, orgID, userID string) (bool, error) {
	var exists bool
	err := r.pool.QueryRow(ctx, `
		SELECT EXISTS (
			SELECT 1 FROM membership WHERE org_id = $1 AND user_id = $2
		)
	`, orgID, userID).Scan(&exists)
	return exists, err
}

// AddMember is an idempotent insert; adding an existing member is a no-op.
// A vanished organisation or user surfaces as ErrNotFound via the foreign keys.
func (r *OrganisationRepository) AddMember(ctx context.Context, orgID, userID string) error {
	_, err := r.pool.Exec(ctx, `
		INSERT INTO membership (user_id, org_id)
		VALUES ($1, $2)
		ON CONFLICT (user_id, org_id) DO NOTHING
	`, userID, orgID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == foreignKeyViolation {
			return repository.ErrNotFound
		}
		return err
	}
	return nil
}

var _ repository.OrganisationRepository = (*OrganisationRepository)(nil)
