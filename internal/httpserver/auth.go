package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"nexus-storefront/internal/backend"
	"nexus-storefront/internal/domain"
)

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Role     string `json:"role"`
}

func (h *handlers) login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username and password required"})
		return
	}
	role := domain.RoleUser
	if req.Role == string(domain.RoleAdmin) {
		role = domain.RoleAdmin
	}

	pair, claims, err := h.auth.Login(c.Request.Context(), domain.Credentials{
		Username: req.Username,
		Password: req.Password,
	}, role)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"access":  pair.Access,
		"refresh": pair.Refresh,
		"user": gin.H{
			"id":       claims.UserID,
			"username": claims.Username,
			"role":     claims.Role,
		},
	})
}

func (h *handlers) register(c *gin.Context) {
	var req backend.RegisterInput
	if err := c.ShouldBindJSON(&req); err != nil || req.Username == "" || req.Password == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username and password required"})
		return
	}
	pair, claims, err := h.auth.Register(c.Request.Context(), req)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, gin.H{
		"access":  pair.Access,
		"refresh": pair.Refresh,
		"user": gin.H{
			"id":       claims.UserID,
			"username": claims.Username,
			"role":     claims.Role,
		},
	})
}

func (h *handlers) me(c *gin.Context) {
	claims, _ := h.claims(c)
	profile, err := h.api.FetchProfile(c.Request.Context(), claims.UserID)
	if err != nil {
		// The token is valid even when the backend has no profile record;
		// fall back to token identity.
		c.JSON(http.StatusOK, gin.H{
			"id":       claims.UserID,
			"username": claims.Username,
			"role":     claims.Role,
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"id":       profile.ID,
		"username": profile.Username,
		"email":    profile.Email,
		"role":     claims.Role,
	})
}
