package httpapi

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/dwikikusuma/storefront/internal/cart/app"
	"github.com/dwikikusuma/storefront/internal/cart/domain"
	jsoniter "github.com/json-iterator/go"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubCatalog struct {
	err error
}

func (s stubCatalog) GetProduct(ctx context.Context, id int) (domain.Product, error) {
	if s.err != nil {
		return domain.Product{}, s.err
	}
	if id != 1 && id != 2 {
		return domain.Product{}, app.ErrProductNotFound
	}
	return domain.Product{ID: id, Title: "item", Price: decimal.RequireFromString("9.99")}, nil
}

func newServer(catalog app.CatalogReader) *echo.Echo {
	e := echo.New()
	NewHandler(app.NewService(catalog, nil, nil)).Register(e.Group("/api"))
	return e
}

func raw(e *echo.Echo, method, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(method, path, nil))
	return rec
}

func call(t *testing.T, e *echo.Echo, method, path string) (int, cartResponse) {
	t.Helper()
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, httptest.NewRequest(method, path, nil))

	var body cartResponse
	if rec.Code == http.StatusOK {
		require.NoError(t, jsoniter.Unmarshal(rec.Body.Bytes(), &body))
	}
	return rec.Code, body
}

func TestCartFlow(t *testing.T) {
	e := newServer(stubCatalog{})

	code, cart := call(t, e, http.MethodGet, "/api/cart")
	require.Equal(t, http.StatusOK, code)
	assert.Empty(t, cart.Items)
	assert.NotEmpty(t, cart.SessionID)

	call(t, e, http.MethodPost, "/api/cart/items/1")
	call(t, e, http.MethodPost, "/api/cart/items/1")
	code, cart = call(t, e, http.MethodPost, "/api/cart/items/2")
	require.Equal(t, http.StatusOK, code)
	require.Len(t, cart.Items, 2)
	assert.Equal(t, 2, cart.Items[0].Quantity)
	assert.Equal(t, 3, cart.TotalQuantity)
	assert.True(t, cart.Subtotal.Equal(decimal.RequireFromString("29.97")))
	assert.True(t, cart.Items[0].LineTotal.Equal(decimal.RequireFromString("19.98")))

	_, cart = call(t, e, http.MethodDelete, "/api/cart/items/1")
	assert.Equal(t, 1, cart.Items[0].Quantity)

	_, cart = call(t, e, http.MethodDelete, "/api/cart/items/1")
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].ID)

	code, cart = call(t, e, http.MethodDelete, "/api/cart/items/7")
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, 1, cart.TotalQuantity)
}

func TestCartPricesAreNumbers(t *testing.T) {
	e := newServer(stubCatalog{})
	raw(e, http.MethodPost, "/api/cart/items/1")

	rec := raw(e, http.MethodPost, "/api/cart/items/1")
	require.Equal(t, http.StatusOK, rec.Code)
	body := rec.Body.String()
	assert.Contains(t, body, `"price":9.99`)
	assert.Contains(t, body, `"line_total":19.98`)
	assert.Contains(t, body, `"subtotal":19.98`)
}

func TestCartErrors(t *testing.T) {
	t.Run("unknown product -> 404", func(t *testing.T) {
		code, _ := call(t, newServer(stubCatalog{}), http.MethodPost, "/api/cart/items/5")
		assert.Equal(t, http.StatusNotFound, code)
	})

	t.Run("bad id -> 400", func(t *testing.T) {
		e := newServer(stubCatalog{})
		code, _ := call(t, e, http.MethodPost, "/api/cart/items/x")
		assert.Equal(t, http.StatusBadRequest, code)
		code, _ = call(t, e, http.MethodDelete, "/api/cart/items/x")
		assert.Equal(t, http.StatusBadRequest, code)
	})

	t.Run("catalog down -> 503", func(t *testing.T) {
		rec := raw(newServer(stubCatalog{err: app.ErrCatalogUnavailable}), http.MethodPost, "/api/cart/items/1")
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Contains(t, rec.Body.String(), "something went wrong")
	})

	t.Run("catalog loading -> 503 loading", func(t *testing.T) {
		rec := raw(newServer(stubCatalog{err: app.ErrCatalogLoading}), http.MethodPost, "/api/cart/items/1")
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Contains(t, rec.Body.String(), "catalog is loading")
	})
}

func TestDrawer(t *testing.T) {
	e := newServer(stubCatalog{})

	_, cart := call(t, e, http.MethodPost, "/api/cart/drawer/open")
	assert.True(t, cart.DrawerOpen)

	_, cart = call(t, e, http.MethodGet, "/api/cart")
	assert.True(t, cart.DrawerOpen)

	_, cart = call(t, e, http.MethodPost, "/api/cart/drawer/close")
	assert.False(t, cart.DrawerOpen)
}
