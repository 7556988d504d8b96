package adapter

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nexus-storefront/internal/domain"
)

func dec(s string) decimal.Decimal { return decimal.RequireFromString(s) }

func skuProduct(prices ...string) domain.CatalogProduct {
	p := domain.CatalogProduct{
		ID:           1,
		Name:         "Headphones",
		Description:  "Noise cancelling",
		CategoryName: "Electronics",
	}
	for i, price := range prices {
		p.Items = append(p.Items, domain.ProductItem{
			ID:           i + 1,
			SKU:          "SKU-" + price,
			Price:        dec(price),
			ProductImage: "img-" + price,
			QtyInStock:   i * 10,
		})
	}
	return p
}

func TestAdaptProductZeroSKUs(t *testing.T) {
	flat := AdaptProduct(skuProduct())
	assert.True(t, flat.Price.IsZero())
	assert.Empty(t, flat.Image)
	assert.Equal(t, "Headphones", flat.Title)
	assert.Equal(t, "Electronics", flat.Category)
}

func TestAdaptProductSingleSKU(t *testing.T) {
	flat := AdaptProduct(skuProduct("19.99"))
	assert.True(t, flat.Price.Equal(dec("19.99")))
	assert.Equal(t, "img-19.99", flat.Image)
}

func TestAdaptProductUsesFirstSKUNotCheapest(t *testing.T) {
	p := skuProduct("30", "10")
	flat := AdaptProduct(p)
	// Flattening keeps the first SKU's price; minimum-price display goes
	// through BestPrice instead.
	assert.True(t, flat.Price.Equal(dec("30")))
	assert.True(t, BestPrice(p).Equal(dec("10")))
}

func TestAdaptProductPrefersProductImage(t *testing.T) {
	p := skuProduct("10")
	p.ProductImage = "cover.jpg"
	assert.Equal(t, "cover.jpg", AdaptProduct(p).Image)
}

func TestAdaptProductsKeepsOrder(t *testing.T) {
	a := skuProduct("1")
	a.ID = 1
	b := skuProduct("2")
	b.ID = 2
	out := AdaptProducts([]domain.CatalogProduct{a, b})
	require.Len(t, out, 2)
	assert.Equal(t, 1, out[0].ID)
	assert.Equal(t, 2, out[1].ID)
}

func TestGetPriceRange(t *testing.T) {
	r := GetPriceRange(skuProduct("30", "10", "20"))
	assert.True(t, r.Min.Equal(dec("10")))
	assert.True(t, r.Max.Equal(dec("30")))
	assert.False(t, r.Single())
}

func TestGetPriceRangeSinglePrice(t *testing.T) {
	r := GetPriceRange(skuProduct("15", "15"))
	assert.True(t, r.Single())
	assert.True(t, r.Min.Equal(dec("15")))
}

func TestGetPriceRangeZeroSKUs(t *testing.T) {
	r := GetPriceRange(skuProduct())
	assert.True(t, r.Min.IsZero())
	assert.True(t, r.Max.IsZero())
	assert.True(t, r.Single())
}

func TestBestPriceZeroSKUs(t *testing.T) {
	assert.True(t, BestPrice(skuProduct()).IsZero())
}

func TestStockDerivations(t *testing.T) {
	p := skuProduct("10", "20", "30") // stock 0, 10, 20
	assert.Equal(t, 30, TotalStock(p))
	assert.True(t, InStock(p))

	empty := skuProduct()
	assert.Equal(t, 0, TotalStock(empty))
	assert.False(t, InStock(empty))

	outOfStock := skuProduct("10")
	assert.False(t, InStock(outOfStock))
}

func TestAdaptOrder(t *testing.T) {
	order := AdaptOrder(domain.ShopOrder{
		ID:        9,
		User:      3,
		OrderDate: time.Date(2026, 5, 17, 10, 0, 0, 0, time.UTC),
		Lines: []domain.ShopOrderLine{
			{ProductItem: 4, Quantity: 2},
			{ProductItem: 7, Quantity: 1},
		},
		IsMultiVendor: "true",
	})
	assert.Equal(t, 9, order.ID)
	assert.Equal(t, 3, order.UserID)
	assert.Equal(t, "2026-05-17", order.Date)
	require.Len(t, order.Products, 2)
	assert.Equal(t, domain.OrderLine{ProductID: 4, Quantity: 2}, order.Products[0])
}

func TestAdaptCartItem(t *testing.T) {
	item := AdaptCartItem(domain.ShoppingCartItem{
		ID:          5,
		ProductName: "Backpack",
		Price:       dec("79.99"),
		Image:       "bp.jpg",
		Quantity:    2,
	})
	assert.Equal(t, 5, item.ProductID)
	assert.Equal(t, "Backpack", item.Name)
	assert.Equal(t, 2, item.Quantity)
	assert.Empty(t, item.Description)
	assert.Empty(t, item.Category)
}

func TestCartTotal(t *testing.T) {
	total := CartTotal([]domain.ShoppingCartItem{
		{Subtotal: dec("10.50")},
		{Subtotal: dec("4.50")},
	})
	assert.True(t, total.Equal(dec("15")))
	assert.True(t, CartTotal(nil).IsZero())
}
