package httpserver

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"nexus-storefront/internal/auth"
	"nexus-storefront/internal/backend"
	"nexus-storefront/internal/cart"
	"nexus-storefront/internal/domain"
	"nexus-storefront/internal/storage"
)

type testEnv struct {
	router *gin.Engine
	tokens *auth.Manager
	kv     storage.KV
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	kv := storage.NewMemory()
	api := backend.NewMock()
	tokens := auth.NewManager("test-secret", "nexus-storefront", time.Hour, 24*time.Hour)

	router, err := buildRouter(zerolog.Nop(), Deps{
		Backend:       api,
		Carts:         cart.NewManager(kv, "nexus_cart", zerolog.Nop()),
		Auth:          auth.NewService(api, tokens, zerolog.Nop()),
		KV:            kv,
		SessionCookie: "nexus_session",
		AllowOrigins:  []string{"*"},
	})
	require.NoError(t, err)
	return &testEnv{router: router, tokens: tokens, kv: kv}
}

type reqOption func(*http.Request)

func withCookies(cookies []*http.Cookie) reqOption {
	return func(r *http.Request) {
		for _, c := range cookies {
			r.AddCookie(c)
		}
	}
}

func withBearer(token string) reqOption {
	return func(r *http.Request) {
		r.Header.Set("Authorization", "Bearer "+token)
	}
}

func (e *testEnv) do(t *testing.T, method, path, body string, opts ...reqOption) *httptest.ResponseRecorder {
	t.Helper()
	var reader *strings.Reader
	if body != "" {
		reader = strings.NewReader(body)
	} else {
		reader = strings.NewReader("")
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for _, opt := range opts {
		opt(req)
	}
	rec := httptest.NewRecorder()
	e.router.ServeHTTP(rec, req)
	return rec
}

func (e *testEnv) userToken(t *testing.T) string {
	t.Helper()
	pair, err := e.tokens.IssuePair(1, "testuser", domain.RoleUser)
	require.NoError(t, err)
	return pair.Access
}

func (e *testEnv) adminToken(t *testing.T) string {
	t.Helper()
	pair, err := e.tokens.IssuePair(2, "admin", domain.RoleAdmin)
	require.NoError(t, err)
	return pair.Access
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out))
	return out
}

func TestHealthz(t *testing.T) {
	rec := newTestEnv(t).do(t, http.MethodGet, "/healthz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestReadyzMemoryStorage(t *testing.T) {
	rec := newTestEnv(t).do(t, http.MethodGet, "/readyz", "")
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestListProductsFlatShape(t *testing.T) {
	rec := newTestEnv(t).do(t, http.MethodGet, "/api/products", "")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	results, ok := body["results"].([]any)
	require.True(t, ok)
	require.NotEmpty(t, results)

	first := results[0].(map[string]any)
	assert.Contains(t, first, "title")
	assert.Contains(t, first, "price")
	assert.NotContains(t, first, "items")
}

func TestListProductsRawView(t *testing.T) {
	rec := newTestEnv(t).do(t, http.MethodGet, "/api/products?view=raw", "")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	results := body["results"].([]any)
	first := results[0].(map[string]any)
	assert.Contains(t, first, "items")
	assert.Contains(t, first, "name")
}

func TestListProductsCategoryFilter(t *testing.T) {
	rec := newTestEnv(t).do(t, http.MethodGet, "/api/products?category=2&view=raw", "")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	results := body["results"].([]any)
	require.Len(t, results, 1)
	assert.Equal(t, "Premium Backpack", results[0].(map[string]any)["name"])
}

func TestListProductsInvalidCategory(t *testing.T) {
	rec := newTestEnv(t).do(t, http.MethodGet, "/api/products?category=abc", "")
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetProductIncludesDerivedFields(t *testing.T) {
	rec := newTestEnv(t).do(t, http.MethodGet, "/api/products/4", "")
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Contains(t, body, "product")
	assert.Contains(t, body, "priceRange")
	assert.Equal(t, true, body["inStock"])
	assert.Equal(t, float64(60), body["totalStock"])
}

func TestGetProductNotFound(t *testing.T) {
	rec := newTestEnv(t).do(t, http.MethodGet, "/api/products/999", "")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestCartSessionCookieMinted(t *testing.T) {
	env := newTestEnv(t)
	rec := env.do(t, http.MethodGet, "/api/cart", "")
	require.Equal(t, http.StatusOK, rec.Code)

	cookies := rec.Result().Cookies()
	var found bool
	for _, c := range cookies {
		if c.Name == "nexus_session" && c.Value != "" {
			found = true
		}
	}
	assert.True(t, found)
}

func TestCartFlow(t *testing.T) {
	env := newTestEnv(t)

	first := env.do(t, http.MethodGet, "/api/cart", "")
	require.Equal(t, http.StatusOK, first.Code)
	cookies := first.Result().Cookies()

	add := env.do(t, http.MethodPost, "/api/cart/items",
		`{"product": {"id": 1, "name": "Wireless Headphones", "price": "199.99"}, "quantity": 2}`,
		withCookies(cookies))
	require.Equal(t, http.StatusOK, add.Code)
	body := decodeBody(t, add)
	assert.Equal(t, float64(2), body["totalItems"])

	// Adding the same product merges quantities.
	again := env.do(t, http.MethodPost, "/api/cart/items",
		`{"product": {"id": 1, "name": "Wireless Headphones", "price": "199.99"}, "quantity": 1}`,
		withCookies(cookies))
	body = decodeBody(t, again)
	assert.Equal(t, float64(3), body["totalItems"])
	assert.Len(t, body["items"].([]any), 1)

	update := env.do(t, http.MethodPatch, "/api/cart/items/1", `{"quantity": 5}`, withCookies(cookies))
	body = decodeBody(t, update)
	assert.Equal(t, float64(5), body["totalItems"])

	// Quantity below one removes the line.
	drop := env.do(t, http.MethodPatch, "/api/cart/items/1", `{"quantity": 0}`, withCookies(cookies))
	body = decodeBody(t, drop)
	assert.Empty(t, body["items"])

	readd := env.do(t, http.MethodPost, "/api/cart/items",
		`{"product": {"id": 2, "title": "Smart Watch Pro", "price": 299.99}}`,
		withCookies(cookies))
	require.Equal(t, http.StatusOK, readd.Code)

	remove := env.do(t, http.MethodDelete, "/api/cart/items/2", "", withCookies(cookies))
	body = decodeBody(t, remove)
	assert.Empty(t, body["items"])

	env.do(t, http.MethodPost, "/api/cart/items",
		`{"product": {"id": 3, "name": "Premium Backpack", "price": "79.99"}}`, withCookies(cookies))
	clear := env.do(t, http.MethodDelete, "/api/cart", "", withCookies(cookies))
	body = decodeBody(t, clear)
	assert.Empty(t, body["items"])
	assert.Equal(t, float64(0), body["totalItems"])
}

func TestCartAddRejectsMissingPrice(t *testing.T) {
	env := newTestEnv(t)
	rec := env.do(t, http.MethodPost, "/api/cart/items", `{"product": {"id": 1, "name": "Lamp"}}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCartIsolatedPerSession(t *testing.T) {
	env := newTestEnv(t)

	first := env.do(t, http.MethodGet, "/api/cart", "")
	cookies := first.Result().Cookies()
	env.do(t, http.MethodPost, "/api/cart/items",
		`{"product": {"id": 1, "price": "10", "name": "X"}}`, withCookies(cookies))

	other := env.do(t, http.MethodGet, "/api/cart", "")
	body := decodeBody(t, other)
	assert.Empty(t, body["items"])
}

func TestCheckoutRequiresAuth(t *testing.T) {
	env := newTestEnv(t)
	rec := env.do(t, http.MethodPost, "/api/checkout", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestCheckoutEmptyCart(t *testing.T) {
	env := newTestEnv(t)
	rec := env.do(t, http.MethodPost, "/api/checkout", "", withBearer(env.userToken(t)))
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestCheckoutSubmitsAndClearsCart(t *testing.T) {
	env := newTestEnv(t)
	token := env.userToken(t)

	first := env.do(t, http.MethodGet, "/api/cart", "")
	cookies := first.Result().Cookies()
	env.do(t, http.MethodPost, "/api/cart/items",
		`{"product": {"id": 1, "name": "Wireless Headphones", "price": "199.99"}, "quantity": 2}`,
		withCookies(cookies))

	rec := env.do(t, http.MethodPost, "/api/checkout", "", withCookies(cookies), withBearer(token))
	require.Equal(t, http.StatusCreated, rec.Code)

	body := decodeBody(t, rec)
	products := body["products"].([]any)
	require.Len(t, products, 1)
	line := products[0].(map[string]any)
	assert.Equal(t, float64(1), line["productId"])
	assert.Equal(t, float64(2), line["quantity"])

	after := env.do(t, http.MethodGet, "/api/cart", "", withCookies(cookies))
	assert.Empty(t, decodeBody(t, after)["items"])
}

func TestLoginIssuesTokens(t *testing.T) {
	env := newTestEnv(t)
	rec := env.do(t, http.MethodPost, "/api/auth/login", `{"username": "testuser", "password": "pw"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	access, _ := body["access"].(string)
	require.NotEmpty(t, access)

	claims, err := env.tokens.Parse(access)
	require.NoError(t, err)
	assert.Equal(t, "testuser", claims.Username)
	assert.Equal(t, domain.RoleUser, claims.Role)
}

func TestLoginAdminSurfaceGrantsAdminRole(t *testing.T) {
	env := newTestEnv(t)
	rec := env.do(t, http.MethodPost, "/api/auth/login",
		`{"username": "admin", "password": "pw", "role": "admin"}`)
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	claims, err := env.tokens.Parse(body["access"].(string))
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, claims.Role)
}

func TestLoginMissingFields(t *testing.T) {
	rec := newTestEnv(t).do(t, http.MethodPost, "/api/auth/login", `{"username": "x"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestRegisterCreatesAndLogsIn(t *testing.T) {
	env := newTestEnv(t)
	rec := env.do(t, http.MethodPost, "/api/auth/register",
		`{"username": "newbie", "email": "n@example.com", "password": "pw"}`)
	require.Equal(t, http.StatusCreated, rec.Code)

	body := decodeBody(t, rec)
	assert.NotEmpty(t, body["access"])
	user := body["user"].(map[string]any)
	assert.Equal(t, "newbie", user["username"])
	assert.Equal(t, "user", user["role"])
}

func TestMeRequiresToken(t *testing.T) {
	rec := newTestEnv(t).do(t, http.MethodGet, "/api/auth/me", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMeReturnsProfile(t *testing.T) {
	env := newTestEnv(t)
	rec := env.do(t, http.MethodGet, "/api/auth/me", "", withBearer(env.userToken(t)))
	require.Equal(t, http.StatusOK, rec.Code)

	body := decodeBody(t, rec)
	assert.Equal(t, "testuser", body["username"])
	assert.Equal(t, "test@example.com", body["email"])
}

func TestMeFallsBackToTokenIdentity(t *testing.T) {
	env := newTestEnv(t)
	pair, err := env.tokens.IssuePair(999, "ghost", domain.RoleUser)
	require.NoError(t, err)

	rec := env.do(t, http.MethodGet, "/api/auth/me", "", withBearer(pair.Access))
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "ghost", decodeBody(t, rec)["username"])
}

func TestOrdersRequireAuth(t *testing.T) {
	rec := newTestEnv(t).do(t, http.MethodGet, "/api/orders", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestOrdersListAdapted(t *testing.T) {
	env := newTestEnv(t)
	rec := env.do(t, http.MethodGet, "/api/orders", "", withBearer(env.userToken(t)))
	require.Equal(t, http.StatusOK, rec.Code)

	var orders []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &orders))
	require.Len(t, orders, 1)
	assert.Contains(t, orders[0], "date")
	assert.Contains(t, orders[0], "products")
}

func TestGetOrderOwnership(t *testing.T) {
	env := newTestEnv(t)

	// Fixture order 1 belongs to user 1.
	own := env.do(t, http.MethodGet, "/api/orders/1", "", withBearer(env.userToken(t)))
	require.Equal(t, http.StatusOK, own.Code)
	assert.Contains(t, decodeBody(t, own), "products")

	other, err := env.tokens.IssuePair(42, "stranger", domain.RoleUser)
	require.NoError(t, err)
	denied := env.do(t, http.MethodGet, "/api/orders/1", "", withBearer(other.Access))
	assert.Equal(t, http.StatusNotFound, denied.Code)

	admin := env.do(t, http.MethodGet, "/api/orders/1", "", withBearer(env.adminToken(t)))
	assert.Equal(t, http.StatusOK, admin.Code)

	missing := env.do(t, http.MethodGet, "/api/orders/999", "", withBearer(env.userToken(t)))
	assert.Equal(t, http.StatusNotFound, missing.Code)
}

func TestAdminRejectsUserRole(t *testing.T) {
	env := newTestEnv(t)
	rec := env.do(t, http.MethodGet, "/api/admin/users", "", withBearer(env.userToken(t)))
	assert.Equal(t, http.StatusForbidden, rec.Code)
}

func TestAdminRejectsMissingToken(t *testing.T) {
	rec := newTestEnv(t).do(t, http.MethodGet, "/api/admin/users", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestAdminListsUsers(t *testing.T) {
	env := newTestEnv(t)
	rec := env.do(t, http.MethodGet, "/api/admin/users", "", withBearer(env.adminToken(t)))
	require.Equal(t, http.StatusOK, rec.Code)

	var users []map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &users))
	assert.NotEmpty(t, users)
}

func TestAdminProductLifecycle(t *testing.T) {
	env := newTestEnv(t)
	token := env.adminToken(t)

	created := env.do(t, http.MethodPost, "/api/admin/products",
		`{"name": "Kettle", "category": 3, "is_published": true}`, withBearer(token))
	require.Equal(t, http.StatusCreated, created.Code)
	id := int(decodeBody(t, created)["id"].(float64))

	updated := env.do(t, http.MethodPut, "/api/admin/products/"+strconv.Itoa(id),
		`{"name": "Electric Kettle", "category": 3, "is_published": true}`, withBearer(token))
	require.Equal(t, http.StatusOK, updated.Code)
	assert.Equal(t, "Electric Kettle", decodeBody(t, updated)["name"])

	deleted := env.do(t, http.MethodDelete, "/api/admin/products/"+strconv.Itoa(id), "", withBearer(token))
	assert.Equal(t, http.StatusOK, deleted.Code)

	gone := env.do(t, http.MethodGet, "/api/products/"+strconv.Itoa(id), "")
	assert.Equal(t, http.StatusNotFound, gone.Code)
}

func TestRequireAuthRejectsBadToken(t *testing.T) {
	rec := newTestEnv(t).do(t, http.MethodGet, "/api/orders", "", withBearer("garbage"))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
