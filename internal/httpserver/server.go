package httpserver

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"

	"nexus-storefront/internal/auth"
	"nexus-storefront/internal/backend"
	"nexus-storefront/internal/cart"
	"nexus-storefront/internal/storage"
)

// Deps carries the collaborators the router wires into handlers.
type Deps struct {
	Backend       backend.API
	Carts         *cart.Manager
	Auth          *auth.Service
	KV            storage.KV
	SessionCookie string
	AllowOrigins  []string
}

// Server wraps the HTTP server setup.
type Server struct {
	httpServer *http.Server
	log        zerolog.Logger
}

// New builds a Server with the storefront routes.
func New(addr string, log zerolog.Logger, deps Deps) (*Server, error) {
	router, err := buildRouter(log, deps)
	if err != nil {
		return nil, err
	}

	httpSrv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	return &Server{httpServer: httpSrv, log: log}, nil
}

// ListenAndServe starts the HTTP server.
func (s *Server) ListenAndServe() error {
	return s.httpServer.ListenAndServe()
}

// Shutdown gracefully stops the HTTP server.
func (s *Server) Shutdown(ctx context.Context) error {
	return s.httpServer.Shutdown(ctx)
}

func healthHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func readyHandler(kv storage.KV) gin.HandlerFunc {
	return func(c *gin.Context) {
		pinger, ok := kv.(storage.Pinger)
		if !ok {
			c.JSON(http.StatusOK, gin.H{"status": "ready"})
			return
		}
		ctx, cancel := context.WithTimeout(c.Request.Context(), time.Second)
		defer cancel()
		if err := pinger.Ping(ctx); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unavailable", "reason": "storage not reachable"})
			return
		}
		c.JSON(http.StatusOK, gin.H{"status": "ready"})
	}
}
