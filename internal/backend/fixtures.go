package backend

import (
	"time"

	"github.com/shopspring/decimal"

	"nexus-storefront/internal/domain"
)

// Fixture data for the mock backend, kept close to the live catalog's shape
// for manual testing.

func fixtureCategories() []domain.ProductCategory {
	return []domain.ProductCategory{
		{ID: 1, CategoryName: "Electronics"},
		{ID: 2, CategoryName: "Clothing"},
		{ID: 3, CategoryName: "Home & Garden"},
		{ID: 4, CategoryName: "Sports"},
		{ID: 5, CategoryName: "Books"},
	}
}

func fixtureProducts() []domain.CatalogProduct {
	return []domain.CatalogProduct{
		{
			ID:           1,
			Name:         "Wireless Headphones",
			Description:  "High-quality wireless headphones with noise cancellation and 30-hour battery life.",
			ProductImage: "https://images.example.com/headphones.jpg",
			IsPublished:  true,
			Category:     1,
			CategoryName: "Electronics",
			Seller:       1,
			SellerName:   "TechStore",
			Items: []domain.ProductItem{
				{ID: 1, SKU: "WH-001-BLK", QtyInStock: 50, Price: decimal.RequireFromString("199.99"), ProductImage: "https://images.example.com/headphones.jpg", Options: "Color: Black"},
				{ID: 2, SKU: "WH-001-WHT", QtyInStock: 30, Price: decimal.RequireFromString("199.99"), ProductImage: "https://images.example.com/headphones.jpg", Options: "Color: White"},
			},
		},
		{
			ID:           2,
			Name:         "Smart Watch Pro",
			Description:  "Advanced fitness tracking, heart rate monitoring, and smartphone notifications.",
			ProductImage: "https://images.example.com/watch.jpg",
			IsPublished:  true,
			Category:     1,
			CategoryName: "Electronics",
			Seller:       1,
			SellerName:   "TechStore",
			Items: []domain.ProductItem{
				{ID: 3, SKU: "SW-002-BLK", QtyInStock: 100, Price: decimal.RequireFromString("299.99"), ProductImage: "https://images.example.com/watch.jpg", Options: "Color: Black, Size: 42mm"},
			},
		},
		{
			ID:           3,
			Name:         "Premium Backpack",
			Description:  "Durable waterproof backpack with laptop compartment and USB charging port.",
			ProductImage: "https://images.example.com/backpack.jpg",
			IsPublished:  true,
			Category:     2,
			CategoryName: "Clothing",
			Seller:       2,
			SellerName:   "FashionHub",
			Items: []domain.ProductItem{
				{ID: 4, SKU: "BP-003-GRY", QtyInStock: 75, Price: decimal.RequireFromString("79.99"), ProductImage: "https://images.example.com/backpack.jpg", Options: "Color: Gray"},
			},
		},
		{
			ID:           4,
			Name:         "Running Shoes",
			Description:  "Lightweight running shoes with advanced cushioning and breathable mesh.",
			ProductImage: "https://images.example.com/shoes.jpg",
			IsPublished:  true,
			Category:     4,
			CategoryName: "Sports",
			Seller:       3,
			SellerName:   "SportGear",
			Items: []domain.ProductItem{
				{ID: 5, SKU: "RS-004-42", QtyInStock: 60, Price: decimal.RequireFromString("129.99"), ProductImage: "https://images.example.com/shoes.jpg", Options: "Size: 42"},
				{ID: 6, SKU: "RS-004-44", QtyInStock: 0, Price: decimal.RequireFromString("139.99"), ProductImage: "https://images.example.com/shoes.jpg", Options: "Size: 44"},
			},
		},
		{
			ID:           5,
			Name:         "Desk Lamp",
			Description:  "Adjustable LED desk lamp with touch control and USB charging.",
			ProductImage: "https://images.example.com/lamp.jpg",
			IsPublished:  true,
			Category:     3,
			CategoryName: "Home & Garden",
			Seller:       2,
			SellerName:   "FashionHub",
			Items: []domain.ProductItem{
				{ID: 7, SKU: "DL-006-BLK", QtyInStock: 40, Price: decimal.RequireFromString("49.99"), ProductImage: "https://images.example.com/lamp.jpg", Options: "Color: Black"},
				{ID: 8, SKU: "DL-006-WHT", QtyInStock: 90, Price: decimal.RequireFromString("49.99"), ProductImage: "https://images.example.com/lamp.jpg", Options: "Color: White"},
			},
		},
	}
}

func fixtureUsers() []domain.UserProfile {
	return []domain.UserProfile{
		{ID: 1, Username: "testuser", Email: "test@example.com", PhoneNumber: "1234567890", UserType: "customer"},
		{ID: 2, Username: "admin", Email: "admin@example.com", PhoneNumber: "0987654321", UserType: "customer"},
	}
}

func fixtureOrders() []domain.ShopOrder {
	return []domain.ShopOrder{
		{
			ID:                     1,
			User:                   1,
			OrderDate:              time.Now().UTC(),
			OrderTotal:             "299.99",
			StatusDisplay:          "Processing",
			OrderStatusID:          1,
			PaymentStatus:          "Paid",
			ShippingAddressDetails: "123 Main St, City, State 12345",
			CustomerPhoneNumber:    "1234567890",
			CustomerUsername:       "testuser",
			CanUpdateStatus:        "true",
			IsMultiVendor:          "false",
			OtherSellersLinesCount: "0",
			TotalLinesCount:        "2",
			Lines:                  []domain.ShopOrderLine{},
		},
	}
}
