package backend

import (
	"context"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"nexus-storefront/internal/domain"
)

// Mock implements API from the fixture catalog so the storefront runs with
// no live backend, selected by the USE_MOCK_API config flag. Login accepts
// any credentials; the username "admin" gets the admin role. State is
// process-local and resets on restart.
type Mock struct {
	mu         sync.Mutex
	products   []domain.CatalogProduct
	categories []domain.ProductCategory
	users      []domain.UserProfile
	orders     []domain.ShopOrder
	secret     []byte
}

func NewMock() *Mock {
	return &Mock{
		products:   fixtureProducts(),
		categories: fixtureCategories(),
		users:      fixtureUsers(),
		orders:     fixtureOrders(),
		secret:     []byte("mock-signature"),
	}
}

func (m *Mock) FetchProducts(_ context.Context, q ProductQuery) (domain.ProductPage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	results := make([]domain.CatalogProduct, 0, len(m.products))
	search := strings.ToLower(q.Search)
	for _, p := range m.products {
		if q.Category != 0 && p.Category != q.Category {
			continue
		}
		if q.Seller != 0 && p.Seller != q.Seller {
			continue
		}
		if search != "" &&
			!strings.Contains(strings.ToLower(p.Name), search) &&
			!strings.Contains(strings.ToLower(p.Description), search) {
			continue
		}
		results = append(results, p)
	}
	return domain.ProductPage{Results: results, Count: len(results)}, nil
}

func (m *Mock) FetchProduct(_ context.Context, id int) (domain.CatalogProduct, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, p := range m.products {
		if p.ID == id {
			return p, nil
		}
	}
	return domain.CatalogProduct{}, domain.ErrNotFound
}

func (m *Mock) CreateProduct(_ context.Context, in ProductInput) (domain.CatalogProduct, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	product := domain.CatalogProduct{
		ID:           m.nextProductID(),
		Name:         in.Name,
		Description:  in.Description,
		ProductImage: in.ProductImage,
		IsPublished:  in.IsPublished,
		Category:     in.Category,
		CategoryName: m.categoryName(in.Category),
		Seller:       1,
		SellerName:   "CurrentUser",
		Items:        []domain.ProductItem{},
	}
	m.products = append(m.products, product)
	return product, nil
}

func (m *Mock) UpdateProduct(_ context.Context, id int, in ProductInput) (domain.CatalogProduct, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.products {
		if m.products[i].ID != id {
			continue
		}
		m.products[i].Name = in.Name
		m.products[i].Description = in.Description
		if in.ProductImage != "" {
			m.products[i].ProductImage = in.ProductImage
		}
		m.products[i].Category = in.Category
		m.products[i].CategoryName = m.categoryName(in.Category)
		m.products[i].IsPublished = in.IsPublished
		return m.products[i], nil
	}
	return domain.CatalogProduct{}, domain.ErrNotFound
}

func (m *Mock) DeleteProduct(_ context.Context, id int) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.products {
		if m.products[i].ID == id {
			m.products = append(m.products[:i], m.products[i+1:]...)
			return nil
		}
	}
	return domain.ErrNotFound
}

func (m *Mock) FetchCategories(_ context.Context) ([]domain.ProductCategory, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.ProductCategory, len(m.categories))
	copy(out, m.categories)
	return out, nil
}

func (m *Mock) Login(_ context.Context, creds domain.Credentials) (domain.TokenPair, error) {
	role := domain.RoleUser
	user := m.userByName(creds.Username)
	if strings.EqualFold(creds.Username, "admin") {
		role = domain.RoleAdmin
	}
	return m.tokenPair(user.ID, user.Username, role)
}

func (m *Mock) Register(_ context.Context, in RegisterInput) (domain.TokenPair, error) {
	m.mu.Lock()
	profile := domain.UserProfile{
		ID:          m.nextUserID(),
		Username:    in.Username,
		Email:       in.Email,
		PhoneNumber: in.PhoneNumber,
		UserType:    "customer",
	}
	m.users = append(m.users, profile)
	m.mu.Unlock()
	return m.tokenPair(profile.ID, profile.Username, domain.RoleUser)
}

func (m *Mock) FetchProfile(_ context.Context, userID int) (domain.UserProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if u.ID == userID {
			return u, nil
		}
	}
	return domain.UserProfile{}, domain.ErrNotFound
}

func (m *Mock) FetchUsers(_ context.Context) ([]domain.UserProfile, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.UserProfile, len(m.users))
	copy(out, m.users)
	return out, nil
}

func (m *Mock) CreateOrder(_ context.Context, userID int, lines []domain.OrderLine) (domain.ShopOrder, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	wireLines := make([]domain.ShopOrderLine, 0, len(lines))
	for _, l := range lines {
		wireLines = append(wireLines, domain.ShopOrderLine{ProductItem: l.ProductID, Quantity: l.Quantity})
	}
	order := domain.ShopOrder{
		ID:                     len(m.orders) + 1,
		User:                   userID,
		OrderDate:              time.Now().UTC(),
		OrderTotal:             "0.00",
		StatusDisplay:          "Pending",
		OrderStatusID:          1,
		PaymentStatus:          "Pending",
		ShippingAddressDetails: "Mock Address",
		CustomerUsername:       m.usernameByID(userID),
		CanUpdateStatus:        "true",
		IsMultiVendor:          "false",
		OtherSellersLinesCount: "0",
		TotalLinesCount:        strconv.Itoa(len(wireLines)),
		Lines:                  wireLines,
	}
	m.orders = append(m.orders, order)
	return order, nil
}

func (m *Mock) FetchOrder(_ context.Context, id int) (domain.ShopOrder, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, o := range m.orders {
		if o.ID == id {
			return o, nil
		}
	}
	return domain.ShopOrder{}, domain.ErrNotFound
}

func (m *Mock) FetchOrders(_ context.Context, userID int) ([]domain.ShopOrder, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]domain.ShopOrder, 0, len(m.orders))
	for _, o := range m.orders {
		if userID != 0 && o.User != userID {
			continue
		}
		out = append(out, o)
	}
	return out, nil
}

func (m *Mock) tokenPair(userID int, username string, role domain.Role) (domain.TokenPair, error) {
	claims := jwt.MapClaims{
		"user_id":  userID,
		"username": username,
		"role":     string(role),
		"exp":      time.Now().Add(24 * time.Hour).Unix(),
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.secret)
	if err != nil {
		return domain.TokenPair{}, err
	}
	return domain.TokenPair{Access: token, Refresh: token}, nil
}

func (m *Mock) userByName(username string) domain.UserProfile {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.users {
		if strings.EqualFold(u.Username, username) {
			return u
		}
	}
	// Unknown names still log in; mirrors the fixture backend accepting any
	// credentials for demos.
	return domain.UserProfile{ID: 99, Username: username, UserType: "customer"}
}

func (m *Mock) usernameByID(userID int) string {
	for _, u := range m.users {
		if u.ID == userID {
			return u.Username
		}
	}
	return ""
}

func (m *Mock) categoryName(id int) string {
	for _, c := range m.categories {
		if c.ID == id {
			return c.CategoryName
		}
	}
	return "Unknown"
}

func (m *Mock) nextProductID() int {
	max := 0
	for _, p := range m.products {
		if p.ID > max {
			max = p.ID
		}
	}
	return max + 1
}

func (m *Mock) nextUserID() int {
	max := 0
	for _, u := range m.users {
		if u.ID > max {
			max = u.ID
		}
	}
	return max + 1
}
