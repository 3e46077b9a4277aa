package web

import (
	"embed"
	"errors"
	"html/template"
	"io"
	"log/slog"
	"net/http"
	"strconv"

	cartapp "github.com/dwikikusuma/storefront/internal/cart/app"
	catalogapp "github.com/dwikikusuma/storefront/internal/catalog/app"
	catalogdomain "github.com/dwikikusuma/storefront/internal/catalog/domain"
	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var templateFS embed.FS

// Renderer adapts html/template to echo.Renderer.
type Renderer struct {
	tmpl *template.Template
}

func NewRenderer() *Renderer {
	return &Renderer{tmpl: template.Must(template.ParseFS(templateFS, "templates/*.html"))}
}

func (r *Renderer) Render(w io.Writer, name string, data any, c echo.Context) error {
	return r.tmpl.ExecuteTemplate(w, name, data)
}

type Handler struct {
	catalog *catalogapp.Service
	cart    *cartapp.Service
	log     *slog.Logger
}

func NewHandler(catalog *catalogapp.Service, cart *cartapp.Service, log *slog.Logger) *Handler {
	if log == nil {
		log = slog.Default()
	}
	return &Handler{catalog: catalog, cart: cart, log: log}
}

func (h *Handler) Register(e *echo.Echo) {
	e.GET("/", h.index)
	e.POST("/cart/add/:id", h.add)
	e.POST("/cart/remove/:id", h.remove)
	e.POST("/cart/open", h.open)
	e.POST("/cart/close", h.close)
}

type page struct {
	Status   string
	Products []catalogdomain.Product
	Cart     cartapp.Summary
}

func (h *Handler) index(c echo.Context) error {
	snap := h.catalog.Snapshot()

	status := http.StatusOK
	if snap.Status != catalogdomain.StatusReady {
		status = http.StatusServiceUnavailable
	}

	return c.Render(status, "index", page{
		Status:   snap.Status.String(),
		Products: snap.Products,
		Cart:     h.cart.Summary(),
	})
}

func (h *Handler) add(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "product id must be an integer")
	}

	if _, err := h.cart.AddItem(c.Request().Context(), id); err != nil {
		if errors.Is(err, cartapp.ErrProductNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "product not found")
		}
		h.log.Warn("add to cart failed", slog.Int("product_id", id), slog.Any("err", err))
	}
	return back(c)
}

func (h *Handler) remove(c echo.Context) error {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "product id must be an integer")
	}

	h.cart.RemoveItem(c.Request().Context(), id)
	return back(c)
}

func (h *Handler) open(c echo.Context) error {
	h.cart.OpenDrawer()
	return back(c)
}

func (h *Handler) close(c echo.Context) error {
	h.cart.CloseDrawer()
	return back(c)
}

func back(c echo.Context) error {
	return c.Redirect(http.StatusSeeOther, "/")
}
