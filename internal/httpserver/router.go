package httpserver

import (
	"errors"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
)

// buildRouter wires routes for the storefront API.
func buildRouter(log zerolog.Logger, deps Deps) (*gin.Engine, error) {
	if deps.Backend == nil || deps.Carts == nil || deps.Auth == nil {
		return nil, errors.New("missing dependencies")
	}

	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.LoggerWithWriter(ginLogWriter{log}), gin.Recovery())

	corsCfg := cors.DefaultConfig()
	if len(deps.AllowOrigins) == 1 && deps.AllowOrigins[0] == "*" {
		corsCfg.AllowAllOrigins = true
	} else {
		corsCfg.AllowOrigins = deps.AllowOrigins
	}
	corsCfg.AllowCredentials = !corsCfg.AllowAllOrigins
	corsCfg.AddAllowHeaders("Authorization")
	router.Use(cors.New(corsCfg))

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(deps.KV))

	h := newHandlers(deps, log)

	api := router.Group("/api")
	{
		api.GET("/products", h.listProducts)
		api.GET("/products/:id", h.getProduct)
		api.GET("/categories", h.listCategories)

		api.POST("/auth/login", h.login)
		api.POST("/auth/register", h.register)
		api.GET("/auth/me", h.requireAuth, h.me)

		withCart := api.Group("", h.session)
		{
			withCart.GET("/cart", h.viewCart)
			withCart.POST("/cart/items", h.addCartItem)
			withCart.PATCH("/cart/items/:id", h.updateCartItem)
			withCart.DELETE("/cart/items/:id", h.removeCartItem)
			withCart.DELETE("/cart", h.clearCart)
			withCart.POST("/checkout", h.requireAuth, h.checkout)
		}

		api.GET("/orders", h.requireAuth, h.listOrders)
		api.GET("/orders/:id", h.requireAuth, h.getOrder)

		admin := api.Group("/admin", h.requireAuth, h.requireAdmin)
		{
			admin.GET("/users", h.listUsers)
			admin.GET("/orders", h.listAllOrders)
			admin.POST("/products", h.createProduct)
			admin.PUT("/products/:id", h.updateProduct)
			admin.DELETE("/products/:id", h.deleteProduct)
		}
	}

	return router, nil
}

// ginLogWriter feeds gin's access log through zerolog at debug level.
type ginLogWriter struct {
	log zerolog.Logger
}

func (w ginLogWriter) Write(p []byte) (int, error) {
	w.log.Debug().Msg(string(p))
	return len(p), nil
}
