package router

import (
	"github.com/elastic/go-elasticsearch/v8"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"

	"github.com/craftd/orgauth/config"
	"github.com/craftd/orgauth/internal/application"
	"github.com/craftd/orgauth/internal/events"
	pginfra "github.com/craftd/orgauth/internal/infrastructure/postgres"
	handlers "github.com/craftd/orgauth/internal/interface/http"
	"github.com/craftd/orgauth/internal/router/modules"
	"github.com/craftd/orgauth/internal/search"
	"github.com/craftd/orgauth/pkg/helpers"
)

// Deps carries everything main constructs once at startup. Components are
// wired explicitly from here; there are no package-level singletons. Redis,
// ES, and Events may be nil, in which case the optional features they back
// are disabled.
type Deps struct {
	Cfg    *config.Config
	Logger *logrus.Logger
	Pool   *pgxpool.Pool
	Redis  *redis.Client
	ES     *elasticsearch.Client
	Events *events.Publisher
	JWT    *helpers.JWTManager
}

// InitModules builds repositories, services, and handlers from Deps and
// registers every feature module with the registry.
func InitModules(r *Registry, d Deps) {
	users := pginfra.NewUserRepository(d.Pool)
	orgs := pginfra.NewOrganisationRepository(d.Pool)

	var indexer *search.UserIndexer
	if d.ES != nil {
		indexer = search.NewUserIndexer(d.ES, d.Cfg.ESUsersIndex, d.Logger)
	}

	authSvc := application.NewAuthService(users, d.JWT, d.Logger, d.Events, indexer)
	orgSvc := application.NewOrganisationService(orgs, users, d.Redis, d.Logger, d.Events)

	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(authSvc, d.Logger)))
	r.Add(modules.NewUserModule(handlers.NewUserHandler(authSvc, d.Logger), d.JWT))
	r.Add(modules.NewOrganisationModule(handlers.NewOrganisationHandler(orgSvc, d.Logger), d.JWT))
}
