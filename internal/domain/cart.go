package domain

import "github.com/shopspring/decimal"

// CartItem is one line in the cart: a product identity plus the selected
// quantity. Quantity is always >= 1; a quantity update below 1 removes the
// line instead.
type CartItem struct {
	ProductID   int             `json:"id"`
	Name        string          `json:"name"`
	Price       decimal.Decimal `json:"price"`
	Image       string          `json:"image"`
	Category    string          `json:"category"`
	Description string          `json:"description"`
	Quantity    int             `json:"quantity"`
}

// LineTotal is price times quantity for this line.
func (i CartItem) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// ShoppingCartItem is the server-side cart row shape of the normalized
// backend, kept distinct from CartItem so the two schemas never share a
// struct.
type ShoppingCartItem struct {
	ID          int             `json:"id"`
	ProductItem int             `json:"product_item"`
	ProductName string          `json:"product_name"`
	Image       string          `json:"image"`
	Price       decimal.Decimal `json:"price"`
	Quantity    int             `json:"quantity"`
	Subtotal    decimal.Decimal `json:"subtotal"`
}
