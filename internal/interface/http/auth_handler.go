package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/morechaitanya606/ucia/internal/application"
	"github.com/morechaitanya606/ucia/pkg/response"
	"github.com/morechaitanya606/ucia/pkg/validation"
)

type AuthHandler struct {
	Svc    *application.AuthService
	Logger *logrus.Logger
}

func NewAuthHandler(svc *application.AuthService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger}
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type registerRequest struct {
	Name     string `json:"name" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,pwd"`
	Role     string `json:"role" binding:"required,oneof=admin editor viewer"`
}

// Login POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	res, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if errors.Is(err, application.ErrInvalidCredentials) {
			// identical for unknown email and wrong password
			response.Error[any](c, http.StatusBadRequest, "invalid credentials", nil)
			return
		}
		response.Error[any](c, http.StatusInternalServerError, "login failed", nil)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"token": res.Token,
		"user":  res.User,
	}, "login successful", map[string]any{"expires_at": res.ExpiresAt})
}

// Register POST /api/auth/register (admin only)
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	u, err := h.Svc.Register(c.Request.Context(), application.RegisterInput{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		switch {
		case errors.Is(err, application.ErrDuplicateEmail):
			response.Error[any](c, http.StatusBadRequest, "email already registered", nil)
		case errors.Is(err, application.ErrInvalidRole):
			response.Error[any](c, http.StatusBadRequest, "invalid role", nil)
		default:
			response.Error[any](c, http.StatusInternalServerError, "registration failed", nil)
		}
		return
	}

	response.Success(c, http.StatusCreated, gin.H{"id": u.ID, "email": u.Email}, "user registered", nil)
}
