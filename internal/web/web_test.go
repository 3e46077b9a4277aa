package web

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	cartapp "github.com/dwikikusuma/storefront/internal/cart/app"
	"github.com/dwikikusuma/storefront/internal/cart/infra/adapter"
	catalogapp "github.com/dwikikusuma/storefront/internal/catalog/app"
	catalogdomain "github.com/dwikikusuma/storefront/internal/catalog/domain"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubSource struct {
	err error
}

func (s stubSource) FetchProducts(ctx context.Context) ([]catalogdomain.Product, error) {
	if s.err != nil {
		return nil, s.err
	}
	return []catalogdomain.Product{
		{ID: 1, Title: "Mens Casual Slim Fit", Description: "soft cotton", Image: "https://example.test/1.jpg", Price: decimal.RequireFromString("15.99")},
		{ID: 2, Title: "Solid Gold Petite Micropave", Description: "satisfaction guaranteed", Image: "https://example.test/2.jpg", Price: decimal.RequireFromString("168")},
	}, nil
}

type fixture struct {
	e    *echo.Echo
	cart *cartapp.Service
}

func newFixture(t *testing.T, src stubSource, load bool) fixture {
	t.Helper()
	log := slog.New(slog.NewTextHandler(io.Discard, nil))

	catalog := catalogapp.NewService(src, log)
	if load {
		_ = catalog.Load(context.Background())
	}
	cart := cartapp.NewService(adapter.NewCatalogServiceReader(catalog), nil, log)

	e := echo.New()
	e.Renderer = NewRenderer()
	NewHandler(catalog, cart, log).Register(e)
	return fixture{e: e, cart: cart}
}

func (f fixture) do(method, path string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	f.e.ServeHTTP(rec, httptest.NewRequest(method, path, nil))
	return rec
}

func TestIndexStates(t *testing.T) {
	t.Run("loading", func(t *testing.T) {
		rec := newFixture(t, stubSource{}, false).do(http.MethodGet, "/")
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Contains(t, rec.Body.String(), "<progress")
	})

	t.Run("failed", func(t *testing.T) {
		rec := newFixture(t, stubSource{err: errors.New("502")}, true).do(http.MethodGet, "/")
		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Contains(t, rec.Body.String(), "Something went wrong ...")
	})

	t.Run("ready renders product cards", func(t *testing.T) {
		rec := newFixture(t, stubSource{}, true).do(http.MethodGet, "/")
		require.Equal(t, http.StatusOK, rec.Code)

		body := rec.Body.String()
		assert.Contains(t, body, "Mens Casual Slim Fit")
		assert.Contains(t, body, "$15.99")
		assert.Contains(t, body, `action="/cart/add/2"`)
		assert.Contains(t, body, `<span class="badge">0</span>`)
		assert.NotContains(t, body, "Your Shopping Cart")
	})
}

func TestCartForms(t *testing.T) {
	f := newFixture(t, stubSource{}, true)

	rec := f.do(http.MethodPost, "/cart/add/2")
	assert.Equal(t, http.StatusSeeOther, rec.Code)
	assert.Equal(t, "/", rec.Header().Get("Location"))

	f.do(http.MethodPost, "/cart/add/2")
	f.do(http.MethodPost, "/cart/add/1")
	f.do(http.MethodPost, "/cart/remove/1")
	f.do(http.MethodPost, "/cart/open")

	body := f.do(http.MethodGet, "/").Body.String()
	assert.Contains(t, body, `<span class="badge">2</span>`)
	assert.Contains(t, body, "Your Shopping Cart")
	assert.Contains(t, body, "Total: $336.00")

	f.do(http.MethodPost, "/cart/close")
	assert.False(t, f.cart.Summary().DrawerOpen)

	assert.Equal(t, http.StatusNotFound, f.do(http.MethodPost, "/cart/add/99").Code)
	assert.Equal(t, http.StatusBadRequest, f.do(http.MethodPost, "/cart/remove/x").Code)
}

func TestEmptyDrawer(t *testing.T) {
	f := newFixture(t, stubSource{}, true)
	f.do(http.MethodPost, "/cart/open")

	body := f.do(http.MethodGet, "/").Body.String()
	assert.Contains(t, body, "No items in cart.")
	assert.Contains(t, body, "Total: $0.00")
}
