// Package backend talks to the upstream shop API. Client is the real REST
// implementation; Mock serves the same interface from a fixture catalog so
// the storefront runs without a live backend.
package backend

import (
	"context"

	"nexus-storefront/internal/domain"
)

// ProductQuery filters a catalog listing. Zero values mean "no filter".
type ProductQuery struct {
	Category int
	Seller   int
	Search   string
}

// ProductInput is the payload for creating or updating a catalog product.
type ProductInput struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	ProductImage string `json:"product_image,omitempty"`
	Category     int    `json:"category"`
	IsPublished  bool   `json:"is_published"`
}

// RegisterInput is the payload for creating an account.
type RegisterInput struct {
	Username    string `json:"username"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	PhoneNumber string `json:"phone_number,omitempty"`
}

// API is the upstream shop backend as the storefront consumes it. Failures
// propagate to callers as errors; the cart store never goes through this
// interface.
type API interface {
	FetchProducts(ctx context.Context, q ProductQuery) (domain.ProductPage, error)
	FetchProduct(ctx context.Context, id int) (domain.CatalogProduct, error)
	CreateProduct(ctx context.Context, in ProductInput) (domain.CatalogProduct, error)
	UpdateProduct(ctx context.Context, id int, in ProductInput) (domain.CatalogProduct, error)
	DeleteProduct(ctx context.Context, id int) error

	FetchCategories(ctx context.Context) ([]domain.ProductCategory, error)

	Login(ctx context.Context, creds domain.Credentials) (domain.TokenPair, error)
	Register(ctx context.Context, in RegisterInput) (domain.TokenPair, error)
	FetchProfile(ctx context.Context, userID int) (domain.UserProfile, error)
	FetchUsers(ctx context.Context) ([]domain.UserProfile, error)

	CreateOrder(ctx context.Context, userID int, lines []domain.OrderLine) (domain.ShopOrder, error)
	FetchOrders(ctx context.Context, userID int) ([]domain.ShopOrder, error)
	FetchOrder(ctx context.Context, id int) (domain.ShopOrder, error)
}
