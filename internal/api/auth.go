package api

import (
	"errors"
	"net/http"

	"shivasadhana-api/internal/service"
	"shivasadhana-api/internal/util"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// login verifies credentials and opens a session. The response carries
// the user without any credential material plus the session token.
func (h *Handler) login(c *gin.Context) {
	var req service.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	user, err := h.auth.Login(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCredentials) {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid credentials"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		return
	}

	token, err := h.sessions.Create(c.Request.Context(), user)
	if err != nil {
		util.GetLogger().Error("Failed to create session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Login failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user, "token": token})
}

// register creates an account and opens a session for it right away.
func (h *Handler) register(c *gin.Context) {
	var req service.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	user, err := h.auth.Register(c.Request.Context(), &req)
	if err != nil {
		if errors.Is(err, service.ErrEmailTaken) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "User already exists"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Registration failed"})
		return
	}

	token, err := h.sessions.Create(c.Request.Context(), user)
	if err != nil {
		util.GetLogger().Error("Failed to create session", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Registration failed"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"user": user, "token": token})
}

// logout drops the session behind the presented token. A request with
// no token is already logged out, which is not an error.
func (h *Handler) logout(c *gin.Context) {
	token := bearerToken(c)
	if token != "" {
		if err := h.sessions.Destroy(c.Request.Context(), token); err != nil {
			util.GetLogger().Warn("Failed to destroy session", zap.Error(err))
		}
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}
