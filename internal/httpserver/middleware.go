package httpserver

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"nexus-storefront/internal/auth"
	"nexus-storefront/internal/domain"
)

const (
	ctxSessionID = "sessionID"
	ctxClaims    = "claims"
)

// session ensures every cart request carries a session id, minting a cookie
// on first contact. The id namespaces the shopper's cart mirror.
func (h *handlers) session(c *gin.Context) {
	id, err := c.Cookie(h.sessionCookie)
	if err != nil || id == "" {
		id = uuid.NewString()
		c.SetCookie(h.sessionCookie, id, 0, "/", "", false, true)
	}
	c.Set(ctxSessionID, id)
	c.Next()
}

func (h *handlers) sessionID(c *gin.Context) string {
	return c.GetString(ctxSessionID)
}

// requireAuth parses the bearer token and stores its claims on the request.
func (h *handlers) requireAuth(c *gin.Context) {
	header := c.GetHeader("Authorization")
	token, ok := strings.CutPrefix(header, "Bearer ")
	if !ok || token == "" {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "missing bearer token"})
		return
	}
	claims, err := h.auth.Verify(token)
	if err != nil {
		c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "invalid token"})
		return
	}
	c.Set(ctxClaims, claims)
	c.Next()
}

// requireAdmin gates the back-office group on the admin role claim.
func (h *handlers) requireAdmin(c *gin.Context) {
	claims, ok := h.claims(c)
	if !ok || claims.Role != domain.RoleAdmin {
		c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "admin role required"})
		return
	}
	c.Next()
}

func (h *handlers) claims(c *gin.Context) (auth.Claims, bool) {
	v, ok := c.Get(ctxClaims)
	if !ok {
		return auth.Claims{}, false
	}
	claims, ok := v.(auth.Claims)
	return claims, ok
}
