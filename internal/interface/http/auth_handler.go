package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/craftd/orgauth/internal/application"
	"github.com/craftd/orgauth/pkg/response"
	"github.com/craftd/orgauth/pkg/validation"
)

type AuthHandler struct {
	Svc    *application.AuthService
	Logger *logrus.Logger
}

func NewAuthHandler(svc *application.AuthService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger}
}

type registerRequest struct {
	FirstName string `json:"firstName" binding:"required"`
	LastName  string `json:"lastName" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required"`
	Phone     string `json:"phone"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// Register POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FailWithDetails(c, http.StatusBadRequest, "Registration unsuccessful", validation.ToDetails(err))
		return
	}

	user, token, err := h.Svc.Register(c.Request.Context(), application.RegisterInput{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Password:  req.Password,
		Phone:     req.Phone,
	})
	if err != nil {
		if errors.Is(err, application.ErrEmailTaken) {
			response.Fail(c, http.StatusUnprocessableEntity, "Registration unsuccessful")
			return
		}
		h.Logger.WithError(err).Error("registration failed")
		response.Fail(c, http.StatusInternalServerError, "Registration unsuccessful")
		return
	}

	response.Success(c, http.StatusCreated, "Registration successful", gin.H{
		"accessToken": token,
		"user":        user,
	})
}

// Login POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.FailWithDetails(c, http.StatusBadRequest, "Authentication failed", validation.ToDetails(err))
		return
	}

	user, token, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, application.ErrInvalidCredentials) {
			response.Fail(c, http.StatusUnauthorized, "Authentication failed")
			return
		}
		h.Logger.WithError(err).Error("login failed")
		response.Fail(c, http.StatusInternalServerError, "Authentication failed")
		return
	}

	response.Success(c, http.StatusOK, "Login successful", gin.H{
		"accessToken": token,
		"user":        user,
	})
}
