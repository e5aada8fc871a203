package application

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/craftd/orgauth/internal/domain/entity"
	"github.com/craftd/orgauth/internal/domain/repository"
	"github.com/craftd/orgauth/internal/events"
	"github.com/craftd/orgauth/pkg/helpers"
)

var ErrOrganisationNotFound = errors.New("organisation not found")

const orgListCacheTTL = 5 * time.Minute

func orgsCacheKey(userID string) string {
	return "user:orgs:" + userID
}

// OrganisationService covers organisation creation, listing, member-scoped
// reads, and member addition. Redis caches a user's organisation list; the
// cache is dropped on any write that would change it. Redis and Events are
// optional.
type OrganisationService struct {
	Orgs   repository.OrganisationRepository
	Users  repository.UserRepository
	Redis  *redis.Client
	Logger *logrus.Logger
	Events *events.Publisher
}

func NewOrganisationService(orgs repository.OrganisationRepository, users repository.UserRepository, rdb *redis.Client, logger *logrus.Logger, pub *events.Publisher) *OrganisationService {
	return &OrganisationService{Orgs: orgs, Users: users, Redis: rdb, Logger: logger, Events: pub}
}

func (s *OrganisationService) invalidateOrgList(ctx context.Context, userID string) {
	if s.Redis == nil {
		return
	}
	if err := helpers.RedisDel(ctx, s.Redis, orgsCacheKey(userID)); err != nil && s.Logger != nil {
		s.Logger.WithError(err).WithField("user_id", userID).Warn("org list cache invalidation failed")
	}
}

// Create persists the organisation with the principal as its first member.
func (s *OrganisationService) Create(ctx context.Context, principalID, name, description string) (OrganisationView, error) {
	org := &entity.Organisation{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
	}
	if err := s.Orgs.CreateWithMember(ctx, org, principalID); err != nil {
		return OrganisationView{}, err
	}

	s.invalidateOrgList(ctx, principalID)
	if s.Events != nil {
		payload := map[string]interface{}{"org_id": org.ID, "name": org.Name, "created_by": principalID}
		if err := s.Events.Publish(ctx, events.TypeOrganisationCreated, payload); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("org_id", org.ID).Warn("publish organisation.created failed")
		}
	}

	return NewOrganisationView(org), nil
}

// List returns every organisation the principal belongs to, served from the
// cache when warm.
func (s *OrganisationService) List(ctx context.Context, principalID string) ([]OrganisationView, error) {
	key := orgsCacheKey(principalID)
	if s.Redis != nil {
		var cached []OrganisationView
		if ok, err := helpers.RedisGetJSON(ctx, s.Redis, key, &cached); err == nil && ok {
			return cached, nil
		}
	}

	orgs, err := s.Orgs.ListByMember(ctx, principalID)
	if err != nil {
		return nil, err
	}
	views := make([]OrganisationView, 0, len(orgs))
	for i := range orgs {
		views = append(views, NewOrganisationView(&orgs[i]))
	}

	if s.Redis != nil {
		if err := helpers.RedisSetJSON(ctx, s.Redis, key, views, orgListCacheTTL); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", principalID).Warn("org list cache write failed")
		}
	}
	return views, nil
}

// Get returns the organisation only when the principal is a member. A
// nonexistent organisation and a non-membership both come back as
// ErrOrganisationNotFound, so the response reveals nothing to outsiders.
func (s *OrganisationService) Get(ctx context.Context, principalID, orgID string) (OrganisationView, error) {
	org, err := s.Orgs.GetForMember(ctx, principalID, orgID)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return OrganisationView{}, ErrOrganisationNotFound
		}
		return OrganisationView{}, err
	}
	return NewOrganisationView(org), nil
}

// AddUser links targetID to the organisation. The principal must already be
// a member; a non-member gets the same not-found as a nonexistent
// organisation. Adding an existing member is a no-op.
func (s *OrganisationService) AddUser(ctx context.Context, principalID, orgID, targetID string) error {
	member, err := s.Orgs.IsMember(ctx, orgID, principalID)
	if err != nil {
		return err
	}
	if !member {
		return ErrOrganisationNotFound
	}

	if _, err := s.Users.GetByID(ctx, targetID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrUserNotFound
		}
		return err
	}

	if err := s.Orgs.AddMember(ctx, orgID, targetID); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrOrganisationNotFound
		}
		return err
	}

	s.invalidateOrgList(ctx, targetID)
	if s.Events != nil {
		payload := map[string]interface{}{"org_id": orgID, "user_id": targetID, "added_by": principalID}
		if err := s.Events.Publish(ctx, events.TypeMemberAdded, payload); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("org_id", orgID).Warn("publish organisation.member_added failed")
		}
	}
	return nil
}
