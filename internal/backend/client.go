package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"nexus-storefront/internal/domain"
)

// Client is the REST client for the shop backend. No SDK exists for the
// upstream API, so requests go through a plain http.Client with a configured
// base URL and timeout.
type Client struct {
	baseURL string
	http    *http.Client
	log     zerolog.Logger
}

func NewClient(baseURL string, timeout time.Duration, log zerolog.Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		log:     log.With().Str("component", "backend").Logger(),
	}
}

// FetchProducts lists catalog products. The backend returns either a bare
// array or a {results, count, next, previous} page; both are accepted and
// exposed as a page.
func (c *Client) FetchProducts(ctx context.Context, q ProductQuery) (domain.ProductPage, error) {
	params := url.Values{}
	if q.Category != 0 {
		params.Set("category", strconv.Itoa(q.Category))
	}
	if q.Seller != 0 {
		params.Set("seller", strconv.Itoa(q.Seller))
	}
	if q.Search != "" {
		params.Set("search", q.Search)
	}
	path := "/products"
	if len(params) > 0 {
		path += "?" + params.Encode()
	}
	raw, err := c.do(ctx, http.MethodGet, path, nil)
	if err != nil {
		return domain.ProductPage{}, err
	}
	return decodeProductPage(raw)
}

func decodeProductPage(raw []byte) (domain.ProductPage, error) {
	trimmed := bytes.TrimLeft(raw, " \t\r\n")
	if len(trimmed) > 0 && trimmed[0] == '[' {
		var results []domain.CatalogProduct
		if err := json.Unmarshal(trimmed, &results); err != nil {
			return domain.ProductPage{}, fmt.Errorf("decode product list: %w", err)
		}
		return domain.ProductPage{Results: results, Count: len(results)}, nil
	}
	var page domain.ProductPage
	if err := json.Unmarshal(trimmed, &page); err != nil {
		return domain.ProductPage{}, fmt.Errorf("decode product page: %w", err)
	}
	return page, nil
}

func (c *Client) FetchProduct(ctx context.Context, id int) (domain.CatalogProduct, error) {
	var product domain.CatalogProduct
	err := c.doJSON(ctx, http.MethodGet, "/products/"+strconv.Itoa(id), nil, &product)
	return product, err
}

func (c *Client) CreateProduct(ctx context.Context, in ProductInput) (domain.CatalogProduct, error) {
	var product domain.CatalogProduct
	err := c.doJSON(ctx, http.MethodPost, "/products", in, &product)
	return product, err
}

func (c *Client) UpdateProduct(ctx context.Context, id int, in ProductInput) (domain.CatalogProduct, error) {
	var product domain.CatalogProduct
	err := c.doJSON(ctx, http.MethodPut, "/products/"+strconv.Itoa(id), in, &product)
	return product, err
}

func (c *Client) DeleteProduct(ctx context.Context, id int) error {
	return c.doJSON(ctx, http.MethodDelete, "/products/"+strconv.Itoa(id), nil, nil)
}

func (c *Client) FetchCategories(ctx context.Context) ([]domain.ProductCategory, error) {
	var categories []domain.ProductCategory
	err := c.doJSON(ctx, http.MethodGet, "/categories", nil, &categories)
	return categories, err
}

// Login exchanges credentials for the backend's access/refresh pair. Some
// deployments return a single "token" field instead; that is mapped onto the
// access slot.
func (c *Client) Login(ctx context.Context, creds domain.Credentials) (domain.TokenPair, error) {
	var resp struct {
		Access  string `json:"access"`
		Refresh string `json:"refresh"`
		Token   string `json:"token"`
	}
	if err := c.doJSON(ctx, http.MethodPost, "/auth/login", creds, &resp); err != nil {
		return domain.TokenPair{}, err
	}
	if resp.Access == "" {
		resp.Access = resp.Token
	}
	return domain.TokenPair{Access: resp.Access, Refresh: resp.Refresh}, nil
}

func (c *Client) Register(ctx context.Context, in RegisterInput) (domain.TokenPair, error) {
	var pair domain.TokenPair
	err := c.doJSON(ctx, http.MethodPost, "/auth/register", in, &pair)
	return pair, err
}

func (c *Client) FetchProfile(ctx context.Context, userID int) (domain.UserProfile, error) {
	var profile domain.UserProfile
	err := c.doJSON(ctx, http.MethodGet, "/users/"+strconv.Itoa(userID), nil, &profile)
	return profile, err
}

func (c *Client) FetchUsers(ctx context.Context) ([]domain.UserProfile, error) {
	var users []domain.UserProfile
	err := c.doJSON(ctx, http.MethodGet, "/users", nil, &users)
	return users, err
}

// CreateOrder submits the legacy productId/quantity lines in the normalized
// wire shape the backend expects.
func (c *Client) CreateOrder(ctx context.Context, userID int, lines []domain.OrderLine) (domain.ShopOrder, error) {
	wireLines := make([]domain.ShopOrderLine, 0, len(lines))
	for _, l := range lines {
		wireLines = append(wireLines, domain.ShopOrderLine{ProductItem: l.ProductID, Quantity: l.Quantity})
	}
	payload := struct {
		User  int                    `json:"user"`
		Lines []domain.ShopOrderLine `json:"lines"`
	}{User: userID, Lines: wireLines}

	var order domain.ShopOrder
	err := c.doJSON(ctx, http.MethodPost, "/orders", payload, &order)
	return order, err
}

func (c *Client) FetchOrder(ctx context.Context, id int) (domain.ShopOrder, error) {
	var order domain.ShopOrder
	err := c.doJSON(ctx, http.MethodGet, "/orders/"+strconv.Itoa(id), nil, &order)
	return order, err
}

func (c *Client) FetchOrders(ctx context.Context, userID int) ([]domain.ShopOrder, error) {
	path := "/orders"
	if userID != 0 {
		path += "?user=" + strconv.Itoa(userID)
	}
	var orders []domain.ShopOrder
	err := c.doJSON(ctx, http.MethodGet, path, nil, &orders)
	return orders, err
}

func (c *Client) doJSON(ctx context.Context, method, path string, body, out interface{}) error {
	raw, err := c.do(ctx, method, path, body)
	if err != nil {
		return err
	}
	if out == nil || len(raw) == 0 {
		return nil
	}
	if err := json.Unmarshal(raw, out); err != nil {
		return fmt.Errorf("decode %s %s: %w", method, path, err)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, body interface{}) ([]byte, error) {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode %s %s: %w", method, path, err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("read %s %s: %w", method, path, err)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, domain.ErrNotFound
	case resp.StatusCode == http.StatusUnauthorized, resp.StatusCode == http.StatusForbidden:
		return nil, domain.ErrUnauthorized
	case resp.StatusCode >= 400:
		c.log.Warn().Int("status", resp.StatusCode).Str("path", path).Msg("backend request failed")
		return nil, fmt.Errorf("%s %s: unexpected status %d", method, path, resp.StatusCode)
	}
	return raw, nil
}
