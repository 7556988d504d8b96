package httpserver

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"nexus-storefront/internal/adapter"
	"nexus-storefront/internal/backend"
)

// listProducts serves the catalog in the legacy flat shape pages consume.
// ?view=raw returns the normalized SKU records unadapted, which the admin
// product pages need for stock and variant detail.
func (h *handlers) listProducts(c *gin.Context) {
	q := backend.ProductQuery{Search: c.Query("search")}
	if v := c.Query("category"); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid category"})
			return
		}
		q.Category = id
	}
	if v := c.Query("seller"); v != "" {
		id, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": "invalid seller"})
			return
		}
		q.Seller = id
	}

	page, err := h.api.FetchProducts(c.Request.Context(), q)
	if err != nil {
		respondError(c, err)
		return
	}

	if c.Query("view") == "raw" {
		c.JSON(http.StatusOK, page)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"results":  adapter.AdaptProducts(page.Results),
		"count":    page.Count,
		"next":     page.Next,
		"previous": page.Previous,
	})
}

func (h *handlers) getProduct(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid product id"})
		return
	}
	product, err := h.api.FetchProduct(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	if c.Query("view") == "raw" {
		c.JSON(http.StatusOK, product)
		return
	}
	flat := adapter.AdaptProduct(product)
	c.JSON(http.StatusOK, gin.H{
		"product":    flat,
		"priceRange": adapter.GetPriceRange(product),
		"inStock":    adapter.InStock(product),
		"totalStock": adapter.TotalStock(product),
	})
}

func (h *handlers) listCategories(c *gin.Context) {
	categories, err := h.api.FetchCategories(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, categories)
}
