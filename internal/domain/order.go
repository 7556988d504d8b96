package domain

import "time"

// Order is the legacy order shape: a user, a date and product/quantity pairs.
type Order struct {
	ID       int         `json:"id"`
	UserID   int         `json:"userId"`
	Date     string      `json:"date"`
	Products []OrderLine `json:"products"`
}

// OrderLine pairs a product id with a quantity.
type OrderLine struct {
	ProductID int `json:"productId"`
	Quantity  int `json:"quantity"`
}

// ShopOrder is the normalized backend order shape. Its lines reference SKUs
// (product items), not products, and it carries vendor bookkeeping the legacy
// shape has no equivalent for.
type ShopOrder struct {
	ID                     int             `json:"id"`
	User                   int             `json:"user,omitempty"`
	OrderDate              time.Time       `json:"order_date"`
	OrderTotal             string          `json:"order_total"`
	StatusDisplay          string          `json:"status_display"`
	OrderStatusID          int             `json:"order_status_id"`
	PaymentStatus          string          `json:"payment_status"`
	ShippingAddressDetails string          `json:"shipping_address_details"`
	CustomerPhoneNumber    string          `json:"customer_phone_number"`
	CustomerUsername       string          `json:"customer_username"`
	CanUpdateStatus        string          `json:"can_update_status"`
	IsMultiVendor          string          `json:"is_multi_vendor"`
	OtherSellersLinesCount string          `json:"other_sellers_lines_count"`
	TotalLinesCount        string          `json:"total_lines_count"`
	Lines                  []ShopOrderLine `json:"lines"`
}

// ShopOrderLine references a SKU by id.
type ShopOrderLine struct {
	ProductItem int `json:"product_item"`
	Quantity    int `json:"quantity"`
}
