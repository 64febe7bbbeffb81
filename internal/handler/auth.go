package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"planetarium/internal/auth"
	"planetarium/internal/model"
)

type credentialsRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=8"`
}

func (h *Handler) Register(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "detail": err.Error()})
		return
	}
	hash, err := auth.HashPassword(req.Password)
	if err != nil {
		h.writeError(c, err)
		return
	}
	user := &model.User{
		Email:          req.Email,
		HashedPassword: hash,
	}
	if err := h.app.UserRepo.Create(user); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			c.JSON(http.StatusConflict, gin.H{"error": "Email already registered"})
			return
		}
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{"id": user.ID, "email": user.Email})
}

func (h *Handler) Login(c *gin.Context) {
	var req credentialsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format", "detail": err.Error()})
		return
	}
	user, err := h.app.UserRepo.GetByEmail(req.Email)
	if err != nil || !auth.CheckPassword(user.HashedPassword, req.Password) {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
		return
	}
	token, err := auth.GenerateToken(h.app.Config.JWTSecret, user.ID, user.IsStaff)
	if err != nil {
		h.writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"access_token": token})
}
