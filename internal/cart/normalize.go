package cart

import (
	"errors"

	"github.com/shopspring/decimal"

	"nexus-storefront/internal/domain"
)

// RawProduct is the loosely-shaped record external sources hand to the cart:
// name and title are interchangeable, price may arrive as a JSON string or
// number (decimal.Decimal accepts both) and the remaining fields are
// optional. ID and Price are required.
type RawProduct struct {
	ID          *int             `json:"id"`
	Name        string           `json:"name"`
	Title       string           `json:"title"`
	Price       *decimal.Decimal `json:"price"`
	Image       string           `json:"image"`
	Category    string           `json:"category"`
	Description string           `json:"description"`
}

var (
	ErrMissingID    = errors.New("product id required")
	ErrMissingPrice = errors.New("product price required")
)

// Normalize turns a raw record into a cart line item (quantity left unset;
// Store.Add assigns it). Missing image, category and description default to
// the empty string.
func Normalize(raw RawProduct) (domain.CartItem, error) {
	if raw.ID == nil {
		return domain.CartItem{}, ErrMissingID
	}
	if raw.Price == nil {
		return domain.CartItem{}, ErrMissingPrice
	}
	name := raw.Name
	if name == "" {
		name = raw.Title
	}
	return domain.CartItem{
		ProductID:   *raw.ID,
		Name:        name,
		Price:       *raw.Price,
		Image:       raw.Image,
		Category:    raw.Category,
		Description: raw.Description,
	}, nil
}
