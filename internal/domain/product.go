package domain

import "github.com/shopspring/decimal"

// Product is the legacy flat catalog shape the storefront pages consume.
// Price is a single scalar even when the backing catalog record carries
// multiple SKUs; see adapter.AdaptProduct for how it is chosen.
type Product struct {
	ID          int             `json:"id"`
	Title       string          `json:"title"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Image       string          `json:"image"`
	Rating      Rating          `json:"rating"`
}

// Rating is the review aggregate carried by the legacy shape.
type Rating struct {
	Rate  float64 `json:"rate"`
	Count int     `json:"count"`
}

// CatalogProduct is the normalized shape returned by the shop backend.
// Purchasable variants live in Items; the product itself has no price.
type CatalogProduct struct {
	ID           int           `json:"id"`
	Name         string        `json:"name"`
	Description  string        `json:"description"`
	ProductImage string        `json:"product_image"`
	IsPublished  bool          `json:"is_published"`
	Category     int           `json:"category"`
	CategoryName string        `json:"category_name"`
	Seller       int           `json:"seller"`
	SellerName   string        `json:"seller_name"`
	Items        []ProductItem `json:"items"`
}

// ProductItem is a SKU: one purchasable variant with its own price and stock.
// The backend serializes prices as strings ("199.99"); decimal.Decimal
// accepts both string and number forms.
type ProductItem struct {
	ID           int             `json:"id"`
	SKU          string          `json:"sku"`
	QtyInStock   int             `json:"qty_in_stock"`
	Price        decimal.Decimal `json:"price"`
	ProductImage string          `json:"product_image"`
	Options      string          `json:"options"`
}

// ProductPage is the paginated envelope some backend endpoints return in
// place of a bare array.
type ProductPage struct {
	Results  []CatalogProduct `json:"results"`
	Count    int              `json:"count"`
	Next     *string          `json:"next"`
	Previous *string          `json:"previous"`
}
