package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/craftd/orgauth/internal/interface/http"
	"github.com/craftd/orgauth/internal/interface/middleware"
	"github.com/craftd/orgauth/pkg/helpers"
)

// OrganisationModule registers the protected organisation routes.
type OrganisationModule struct {
	Handler *handlers.OrganisationHandler
	JWT     *helpers.JWTManager
}

func NewOrganisationModule(h *handlers.OrganisationHandler, jwt *helpers.JWTManager) *OrganisationModule {
	return &OrganisationModule{Handler: h, JWT: jwt}
}

func (m *OrganisationModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/organisations")
	auth.Use(middleware.Auth(m.JWT))
	{
		auth.GET("", m.Handler.List)
		auth.POST("", m.Handler.Create)
		auth.GET("/:orgId", m.Handler.Get)
		auth.POST("/:orgId/users", m.Handler.AddUser)
	}
}
