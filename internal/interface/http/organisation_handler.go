package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/craftd/orgauth/internal/application"
	"github.com/craftd/orgauth/internal/interface/middleware"
	"github.com/craftd/orgauth/pkg/response"
	"github.com/craftd/orgauth/pkg/validation"
)

type OrganisationHandler struct {
	Svc    *application.OrganisationService
	Logger *logrus.Logger
}

func NewOrganisationHandler(svc *application.OrganisationService, logger *logrus.Logger) *OrganisationHandler {
	return &OrganisationHandler{Svc: svc, Logger: logger}
}

type createOrganisationRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type addUserRequest struct {
	UserID string `json:"userId" binding:"required"`
}

// Create POST /organisations
func (h *OrganisationHandler) Create(c *gin.Context) {
	var req createOrganisationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FailWithDetails(c, http.StatusBadRequest, "Client error", validation.ToDetails(err))
		return
	}

	principal := c.GetString(middleware.CtxUserIDKey)
	org, err := h.Svc.Create(c.Request.Context(), principal, req.Name, req.Description)
	if err != nil {
		h.Logger.WithError(err).WithField("user_id", principal).Error("create organisation failed")
		response.Fail(c, http.StatusInternalServerError, "Could not create organisation")
		return
	}

	response.Success(c, http.StatusCreated, "Organisation created successfully", org)
}

// List GET /organisations
func (h *OrganisationHandler) List(c *gin.Context) {
	principal := c.GetString(middleware.CtxUserIDKey)
	orgs, err := h.Svc.List(c.Request.Context(), principal)
	if err != nil {
		h.Logger.WithError(err).WithField("user_id", principal).Error("list organisations failed")
		response.Fail(c, http.StatusInternalServerError, "Could not retrieve organisations")
		return
	}

	response.Success(c, http.StatusOK, "Organisations retrieved successfully", gin.H{
		"organisations": orgs,
	})
}

// Get GET /organisations/:orgId
func (h *OrganisationHandler) Get(c *gin.Context) {
	principal := c.GetString(middleware.CtxUserIDKey)
	orgID := c.Param("orgId")

	org, err := h.Svc.Get(c.Request.Context(), principal, orgID)
	if err != nil {
		if errors.Is(err, application.ErrOrganisationNotFound) {
			response.Fail(c, http.StatusNotFound, "Organisation record not found")
			return
		}
		h.Logger.WithError(err).WithField("org_id", orgID).Error("get organisation failed")
		response.Fail(c, http.StatusInternalServerError, "Could not retrieve organisation record")
		return
	}

	response.Success(c, http.StatusOK, "Organisation record retrieved successfully", org)
}

// AddUser POST /organisations/:orgId/users
func (h *OrganisationHandler) AddUser(c *gin.Context) {
	var req addUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FailWithDetails(c, http.StatusBadRequest, "User ID required", validation.ToDetails(err))
		return
	}

	principal := c.GetString(middleware.CtxUserIDKey)
	orgID := c.Param("orgId")

	if err := h.Svc.AddUser(c.Request.Context(), principal, orgID, req.UserID); err != nil {
		switch {
		case errors.Is(err, application.ErrOrganisationNotFound):
			response.Fail(c, http.StatusNotFound, "Organisation record not found")
		case errors.Is(err, application.ErrUserNotFound):
			response.Fail(c, http.StatusNotFound, "User not found")
		default:
			h.Logger.WithError(err).WithField("org_id", orgID).Error("add user to organisation failed")
			response.Fail(c, http.StatusInternalServerError, "Could not add user to organisation")
		}
		return
	}

	response.Success(c, http.StatusOK, "User added to organisation successfully", nil)
}
