package modules

import (
	"github.com/gin-gonic/gin"

	handlers "github.com/craftd/orgauth/internal/interface/http"
	"github.com/craftd/orgauth/internal/interface/middleware"
	"github.com/craftd/orgauth/pkg/helpers"
)

// UserModule registers the protected user routes.
type UserModule struct {
	Handler *handlers.UserHandler
	JWT     *helpers.JWTManager
}

func NewUserModule(h *handlers.UserHandler, jwt *helpers.JWTManager) *UserModule {
	return &UserModule{Handler: h, JWT: jwt}
}

func (m *UserModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/users")
	auth.Use(middleware.Auth(m.JWT))
	{
		auth.GET("/:id", m.Handler.Get)
	}
}
