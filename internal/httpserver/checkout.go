package httpserver

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"nexus-storefront/internal/adapter"
	"nexus-storefront/internal/domain"
)

// checkout submits the session's cart as an order. The cart is cleared only
// after the backend accepts; a rejected submission leaves it intact so the
// shopper can retry.
func (h *handlers) checkout(c *gin.Context) {
	claims, _ := h.claims(c)
	s := h.carts.Store(c.Request.Context(), h.sessionID(c))

	items := s.Items()
	if len(items) == 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "cart is empty"})
		return
	}

	lines := make([]domain.OrderLine, 0, len(items))
	for _, it := range items {
		lines = append(lines, domain.OrderLine{ProductID: it.ProductID, Quantity: it.Quantity})
	}

	order, err := h.api.CreateOrder(c.Request.Context(), claims.UserID, lines)
	if err != nil {
		respondError(c, err)
		return
	}

	s.Clear(c.Request.Context())
	c.JSON(http.StatusCreated, adapter.AdaptOrder(order))
}

func (h *handlers) listOrders(c *gin.Context) {
	claims, _ := h.claims(c)
	orders, err := h.api.FetchOrders(c.Request.Context(), claims.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, adapter.AdaptOrders(orders))
}

// getOrder serves one order in the legacy shape. Shoppers only see their own
// orders; admins see any.
func (h *handlers) getOrder(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid order id"})
		return
	}
	claims, _ := h.claims(c)
	order, err := h.api.FetchOrder(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if order.User != claims.UserID && claims.Role != domain.RoleAdmin {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
		return
	}
	c.JSON(http.StatusOK, adapter.AdaptOrder(order))
}
