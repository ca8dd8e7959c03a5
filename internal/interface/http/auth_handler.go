package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/adityawp/casaly/internal/apperr"
	"github.com/adityawp/casaly/internal/application"
	"github.com/adityawp/casaly/internal/domain/entity"
	"github.com/adityawp/casaly/pkg/response"
	"github.com/adityawp/casaly/pkg/validation"
)

type AuthHandler struct {
	Svc    *application.AuthService
	Logger *logrus.Logger
}

func NewAuthHandler(svc *application.AuthService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger}
}

type registerRequest struct {
	Username string `json:"username" binding:"required,min=3"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,pwd"`
}

type loginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// userJSON serializes a user without the password hash.
func userJSON(u *entity.User) gin.H {
	return gin.H{
		"id":         u.ID,
		"username":   u.Username,
		"email":      u.Email,
		"avatar_url": u.AvatarURL,
		"created_at": u.CreatedAt,
		"updated_at": u.UpdatedAt,
	}
}

// Register POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	u, tok, err := h.Svc.Register(c.Request.Context(), application.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if apperr.KindOf(err) == apperr.KindStore && h.Logger != nil {
			h.Logger.WithError(err).Error("register failed")
		}
		response.Error[any](c, apperr.Status(err), apperr.Message(err), nil)
		return
	}

	response.Success(c, http.StatusCreated, gin.H{
		"user":  userJSON(u),
		"token": tok.Value,
	}, "registered", gin.H{"expires_at": tok.ExpiresAt})
}

// Login POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error[any](c, http.StatusBadRequest, "invalid payload", validation.ToDetails(err))
		return
	}

	u, tok, err := h.Svc.Login(c.Request.Context(), req.Email, req.Password)
	if err != nil {
		if apperr.KindOf(err) == apperr.KindStore && h.Logger != nil {
			h.Logger.WithError(err).Error("login failed")
		}
		response.Error[any](c, apperr.Status(err), apperr.Message(err), nil)
		return
	}

	response.Success(c, http.StatusOK, gin.H{
		"user":  userJSON(u),
		"token": tok.Value,
	}, "login successful", gin.H{"expires_at": tok.ExpiresAt})
}
