package adapter

import (
	"github.com/shopspring/decimal"

	"nexus-storefront/internal/domain"
)

// PriceRange is the min/max price across a product's SKUs.
type PriceRange struct {
	Min decimal.Decimal `json:"min"`
	Max decimal.Decimal `json:"max"`
}

// Single reports whether all SKUs carry the same price.
func (r PriceRange) Single() bool {
	return r.Min.Equal(r.Max)
}

// BestPrice is the minimum price across a product's SKUs, zero when the
// product has none.
func BestPrice(p domain.CatalogProduct) decimal.Decimal {
	if len(p.Items) == 0 {
		return decimal.Zero
	}
	best := p.Items[0].Price
	for _, item := range p.Items[1:] {
		if item.Price.LessThan(best) {
			best = item.Price
		}
	}
	return best
}

// GetPriceRange returns the min/max price pair across a product's SKUs. A
// product with no SKUs yields a zero range.
func GetPriceRange(p domain.CatalogProduct) PriceRange {
	if len(p.Items) == 0 {
		return PriceRange{Min: decimal.Zero, Max: decimal.Zero}
	}
	r := PriceRange{Min: p.Items[0].Price, Max: p.Items[0].Price}
	for _, item := range p.Items[1:] {
		if item.Price.LessThan(r.Min) {
			r.Min = item.Price
		}
		if item.Price.GreaterThan(r.Max) {
			r.Max = item.Price
		}
	}
	return r
}

// TotalStock sums stock quantities across a product's SKUs.
func TotalStock(p domain.CatalogProduct) int {
	total := 0
	for _, item := range p.Items {
		total += item.QtyInStock
	}
	return total
}

// InStock reports whether any SKU has stock.
func InStock(p domain.CatalogProduct) bool {
	for _, item := range p.Items {
		if item.QtyInStock > 0 {
			return true
		}
	}
	return false
}
