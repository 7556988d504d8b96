package httpserver

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"nexus-storefront/internal/auth"
	"nexus-storefront/internal/backend"
	"nexus-storefront/internal/cart"
	"nexus-storefront/internal/domain"
)

type handlers struct {
	api           backend.API
	carts         *cart.Manager
	auth          *auth.Service
	sessionCookie string
	log           zerolog.Logger
}

func newHandlers(deps Deps, log zerolog.Logger) *handlers {
	return &handlers{
		api:           deps.Backend,
		carts:         deps.Carts,
		auth:          deps.Auth,
		sessionCookie: deps.SessionCookie,
		log:           log,
	}
}

func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	case errors.Is(err, domain.ErrUnauthorized):
		c.JSON(http.StatusUnauthorized, gin.H{"error": "unauthorized"})
	default:
		c.JSON(http.StatusBadGateway, gin.H{"error": "backend unavailable"})
	}
}
