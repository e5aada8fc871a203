package application

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"github.com/craftd/orgauth/internal/domain/entity"
	"github.com/craftd/orgauth/internal/domain/repository"
	"github.com/craftd/orgauth/internal/events"
	"github.com/craftd/orgauth/internal/search"
	"github.com/craftd/orgauth/pkg/helpers"
)

var (
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already registered")
	ErrUserNotFound       = errors.New("user not found")
)

// AuthService orchestrates registration and login: hash password, persist,
// issue token. Events and Indexer are optional; a nil value disables them.
type AuthService struct {
	Users   repository.UserRepository
	JWT     *helpers.JWTManager
	Logger  *logrus.Logger
	Events  *events.Publisher
	Indexer *search.UserIndexer
}

func NewAuthService(users repository.UserRepository, jwt *helpers.JWTManager, logger *logrus.Logger, pub *events.Publisher, indexer *search.UserIndexer) *AuthService {
	return &AuthService{Users: users, JWT: jwt, Logger: logger, Events: pub, Indexer: indexer}
}

type RegisterInput struct {
	FirstName string
	LastName  string
	Email     string
	Password  string
	Phone     string
}

// Register creates the user with a fresh id, their default organisation
// named "<firstName>'s Organisation", and the linking membership, all in one
// transaction. A duplicate email yields ErrEmailTaken with nothing persisted.
func (s *AuthService) Register(ctx context.Context, in RegisterInput) (UserView, string, error) {
	hash, err := helpers.HashPassword(in.Password)
	if err != nil {
		return UserView{}, "", err
	}

	u := &entity.User{
		ID:           uuid.NewString(),
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		PasswordHash: hash,
		Phone:        in.Phone,
	}
	org := &entity.Organisation{
		ID:   uuid.NewString(),
		Name: in.FirstName + "'s Organisation",
	}

	if err := s.Users.CreateWithOrganisation(ctx, u, org); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return UserView{}, "", ErrEmailTaken
		}
		return UserView{}, "", err
	}

	token, _, err := s.JWT.GenerateToken(u.ID, u.Email)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Error("generate token failed")
		}
		return UserView{}, "", err
	}

	if s.Events != nil {
		payload := map[string]interface{}{"user_id": u.ID, "email": u.Email, "org_id": org.ID}
		if err := s.Events.Publish(ctx, events.TypeUserRegistered, payload); err != nil && s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Warn("publish user.registered failed")
		}
	}
	_ = s.Indexer.IndexUser(ctx, u)

	if s.Logger != nil {
		s.Logger.WithFields(logrus.Fields{"user_id": u.ID, "org_id": org.ID}).Info("user registered")
	}
	return NewUserView(u), token, nil
}

// Login verifies credentials and issues a fresh token. A missing user and a
// wrong password are indistinguishable to the caller.
func (s *AuthService) Login(ctx context.Context, email, password string) (UserView, string, error) {
	u, err := s.Users.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return UserView{}, "", ErrInvalidCredentials
		}
		return UserView{}, "", err
	}
	if !helpers.CompareHashAndPassword(u.PasswordHash, password) {
		return UserView{}, "", ErrInvalidCredentials
	}

	token, _, err := s.JWT.GenerateToken(u.ID, u.Email)
	if err != nil {
		return UserView{}, "", err
	}
	return NewUserView(u), token, nil
}

// GetUser returns the public view; the self-access check happens at the
// HTTP layer before this is called.
func (s *AuthService) GetUser(ctx context.Context, id string) (UserView, error) {
	u, err := s.Users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return UserView{}, ErrUserNotFound
		}
		return UserView{}, err
	}
	return NewUserView(u), nil
}
