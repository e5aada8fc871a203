package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/craftd/orgauth/internal/application"
	"github.com/craftd/orgauth/internal/interface/middleware"
	"github.com/craftd/orgauth/pkg/response"
)

type UserHandler struct {
	Svc    *application.AuthService
	Logger *logrus.Logger
}

func NewUserHandler(svc *application.AuthService, logger *logrus.Logger) *UserHandler {
	return &UserHandler{Svc: svc, Logger: logger}
}

// Get GET /users/:id
// Strict self-access: the path id must match the principal, even when the
// target user exists.
func (h *UserHandler) Get(c *gin.Context) {
	id := c.Param("id")
	if id != c.GetString(middleware.CtxUserIDKey) {
		response.Fail(c, http.StatusForbidden, "Access denied")
		return
	}

	user, err := h.Svc.GetUser(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, application.ErrUserNotFound) {
			response.Fail(c, http.StatusNotFound, "User record not found")
			return
		}
		h.Logger.WithError(err).WithField("user_id", id).Error("get user failed")
		response.Fail(c, http.StatusInternalServerError, "Could not retrieve user record")
		return
	}

	response.Success(c, http.StatusOK, "User record retrieved successfully", user)
}
