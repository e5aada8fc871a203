package handlers_test

import (
	"context"
	"sync"
	"time"

	"github.com/craftd/orgauth/internal/domain/entity"
	"github.com/craftd/orgauth/internal/domain/repository"
)

// In-memory repositories with the same store-level rules as Postgres:
// unique emails, unique membership pairs, foreign keys on membership.
type fakeStore struct {
	mu          sync.Mutex
	users       map[string]*entity.User
	byEmail     map[string]string
	orgs        map[string]*entity.Organisation
	memberships []entity.Membership
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		users:   make(map[string]*entity.User),
		byEmail: make(map[string]string),
		orgs:    make(map[string]*entity.Organisation),
	}
}

func (f *fakeStore) addMembership(userID, orgID string) {
	for _, m := range f.memberships {
		if m.UserID == userID && m.OrgID == orgID {
			return
		}
	}
	f.memberships = append(f.memberships, entity.Membership{UserID: userID, OrgID: orgID, CreatedAt: time.Now()})
}

func (f *fakeStore) membershipCount(orgID string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, m := range f.memberships {
		if m.OrgID == orgID {
			n++
		}
	}
	return n
}

type fakeUserRepo struct {
	store *fakeStore
}

func (r *fakeUserRepo) CreateWithOrganisation(ctx context.Context, u *entity.User, org *entity.Organisation) error {
	f := r.store
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, taken := f.byEmail[u.Email]; taken {
		return repository.ErrDuplicateEmail
	}
	now := time.Now()
	u.CreatedAt, u.UpdatedAt = now, now
	org.CreatedAt = now
	cu := *u
	f.users[u.ID] = &cu
	f.byEmail[u.Email] = u.ID
	co := *org
	f.orgs[org.ID] = &co
	f.addMembership(u.ID, org.ID)
	return nil
}

func (r *fakeUserRepo) GetByID(ctx context.Context, id string) (*entity.User, error) {
	f := r.store
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	f := r.store
	f.mu.Lock()
	defer f.mu.Unlock()
	id, ok := f.byEmail[email]
	if !ok {
		return nil, repository.ErrNotFound
	}
	cp := *f.users[id]
	return &cp, nil
}

type fakeOrgRepo struct {
	store *fakeStore
}

func (r *fakeOrgRepo) CreateWithMember(ctx context.Context, org *entity.Organisation, memberID string) error {
	f := r.store
	f.mu.Lock()
	defer f.mu.Unlock()
	org.CreatedAt = time.Now()
	cp := *org
	f.orgs[org.ID] = &cp
	f.addMembership(memberID, org.ID)
	return nil
}

func (r *fakeOrgRepo) ListByMember(ctx context.Context, userID string) ([]entity.Organisation, error) {
	f := r.store
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []entity.Organisation
	for _, m := range f.memberships {
		if m.UserID == userID {
			out = append(out, *f.orgs[m.OrgID])
		}
	}
	return out, nil
}

func (r *fakeOrgRepo) GetForMember(ctx context.Context, userID, orgID string) (*entity.Organisation, error) {
	f := r.store
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, m := range f.memberships {
		if m.UserID == userID && m.OrgID == orgID {
			cp := *f.orgs[orgID]
			return &cp, nil
		}
	}
	return nil, repository.ErrNotFound
}

func (r *fakeOrgRepo) IsMember(ctx context.Context, orgID, userID string) (bool, error) {
	f := r.store
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, m := range f.memberships {
		if m.UserID == userID && m.OrgID == orgID {
			return true, nil
		}
	}
	return false, nil
}

func (r *fakeOrgRepo) AddMember(ctx context.Context, orgID, userID string) error {
	f := r.store
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.orgs[orgID]; !ok {
		return repository.ErrNotFound
	}
	if _, ok := f.users[userID]; !ok {
		return repository.ErrNotFound
	}
	f.addMembership(userID, orgID)
	return nil
}

var (
	_ repository.UserRepository         = (*fakeUserRepo)(nil)
	_ repository.OrganisationRepository = (*fakeOrgRepo)(nil)
)
