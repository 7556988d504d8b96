package httpserver

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"nexus-storefront/internal/cart"
	"nexus-storefront/internal/domain"
)

type cartView struct {
	Items      []domain.CartItem `json:"items"`
	TotalItems int               `json:"totalItems"`
	Subtotal   decimal.Decimal   `json:"subtotal"`
}

func viewOf(s *cart.Store) cartView {
	return cartView{
		Items:      s.Items(),
		TotalItems: s.TotalItems(),
		Subtotal:   s.Subtotal(),
	}
}

func (h *handlers) viewCart(c *gin.Context) {
	s := h.carts.Store(c.Request.Context(), h.sessionID(c))
	c.JSON(http.StatusOK, viewOf(s))
}

type addItemRequest struct {
	Product  cart.RawProduct `json:"product"`
	Quantity int             `json:"quantity"`
}

func (h *handlers) addCartItem(c *gin.Context) {
	var req addItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	s := h.carts.Store(c.Request.Context(), h.sessionID(c))
	if err := s.AddRaw(c.Request.Context(), req.Product, req.Quantity); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, viewOf(s))
}

type updateItemRequest struct {
	Quantity int `json:"quantity"`
}

func (h *handlers) updateCartItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}
	var req updateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid body"})
		return
	}
	s := h.carts.Store(c.Request.Context(), h.sessionID(c))
	s.UpdateQuantity(c.Request.Context(), id, req.Quantity)
	c.JSON(http.StatusOK, viewOf(s))
}

func (h *handlers) removeCartItem(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}
	s := h.carts.Store(c.Request.Context(), h.sessionID(c))
	s.Remove(c.Request.Context(), id)
	c.JSON(http.StatusOK, viewOf(s))
}

func (h *handlers) clearCart(c *gin.Context) {
	s := h.carts.Store(c.Request.Context(), h.sessionID(c))
	s.Clear(c.Request.Context())
	c.JSON(http.StatusOK, viewOf(s))
}
