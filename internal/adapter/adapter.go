// Package adapter translates between the two incompatible backend schemas:
// the legacy flat product/order shape and the normalized SKU-based shape.
// Everything here is a pure function and safe for concurrent use.
package adapter

import (
	"github.com/shopspring/decimal"

	"nexus-storefront/internal/domain"
)

// AdaptProduct flattens a normalized catalog product into the legacy shape.
// The first SKU supplies the representative price and the fallback image; a
// product with no SKUs flattens to price 0 and an empty image. This keeps
// the behavior consumers of the flat shape have always seen; display code
// that wants "starting at" semantics should use BestPrice or PriceRange.
func AdaptProduct(p domain.CatalogProduct) domain.Product {
	price := decimal.Zero
	image := p.ProductImage
	if len(p.Items) > 0 {
		price = p.Items[0].Price
		if image == "" {
			image = p.Items[0].ProductImage
		}
	}
	return domain.Product{
		ID:          p.ID,
		Title:       p.Name,
		Price:       price,
		Description: p.Description,
		Category:    p.CategoryName,
		Image:       image,
		Rating:      domain.Rating{},
	}
}

// AdaptProducts flattens a slice of catalog products.
func AdaptProducts(products []domain.CatalogProduct) []domain.Product {
	out := make([]domain.Product, 0, len(products))
	for _, p := range products {
		out = append(out, AdaptProduct(p))
	}
	return out
}

// AdaptCartItem maps a server-side cart row into the cart line item shape.
// Description and category have no equivalent on the row and default empty.
func AdaptCartItem(row domain.ShoppingCartItem) domain.CartItem {
	return domain.CartItem{
		ProductID: row.ID,
		Name:      row.ProductName,
		Price:     row.Price,
		Image:     row.Image,
		Quantity:  row.Quantity,
	}
}

// AdaptCartItems maps a slice of server-side cart rows.
func AdaptCartItems(rows []domain.ShoppingCartItem) []domain.CartItem {
	out := make([]domain.CartItem, 0, len(rows))
	for _, r := range rows {
		out = append(out, AdaptCartItem(r))
	}
	return out
}

// AdaptOrder maps a normalized order into the legacy shape. SKU line
// references become productId/quantity pairs; vendor bookkeeping fields have
// no legacy equivalent and are dropped. The legacy user id is not carried on
// the normalized order.
func AdaptOrder(o domain.ShopOrder) domain.Order {
	products := make([]domain.OrderLine, 0, len(o.Lines))
	for _, line := range o.Lines {
		products = append(products, domain.OrderLine{
			ProductID: line.ProductItem,
			Quantity:  line.Quantity,
		})
	}
	return domain.Order{
		ID:       o.ID,
		UserID:   o.User,
		Date:     o.OrderDate.Format("2006-01-02"),
		Products: products,
	}
}

// AdaptOrders maps a slice of normalized orders.
func AdaptOrders(orders []domain.ShopOrder) []domain.Order {
	out := make([]domain.Order, 0, len(orders))
	for _, o := range orders {
		out = append(out, AdaptOrder(o))
	}
	return out
}

// CartTotal sums the precomputed line subtotals of server-side cart rows.
func CartTotal(rows []domain.ShoppingCartItem) decimal.Decimal {
	total := decimal.Zero
	for _, r := range rows {
		total = total.Add(r.Subtotal)
	}
	return total
}
