package httpapi

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/dwikikusuma/storefront/internal/cart/app"
	"github.com/dwikikusuma/storefront/pkg/money"
	"github.com/labstack/echo/v4"
)

type Handler struct {
	svc *app.Service
}

func NewHandler(svc *app.Service) *Handler {
	return &Handler{svc: svc}
}

func (h *Handler) Register(g *echo.Group) {
	g.GET("/cart", h.getCart)
	g.POST("/cart/items/:id", h.addItem)
	g.DELETE("/cart/items/:id", h.removeItem)
	g.POST("/cart/drawer/open", h.openDrawer)
	g.POST("/cart/drawer/close", h.closeDrawer)
}

type entryResponse struct {
	ID          int          `json:"id"`
	Title       string       `json:"title"`
	Description string       `json:"description"`
	Category    string       `json:"category"`
	Image       string       `json:"image"`
	Price       money.Amount `json:"price"`
	Quantity    int          `json:"quantity"`
	LineTotal   money.Amount `json:"line_total"`
}

type cartResponse struct {
	SessionID     string          `json:"session_id"`
	Items         []entryResponse `json:"items"`
	TotalQuantity int             `json:"total_quantity"`
	Subtotal      money.Amount    `json:"subtotal"`
	DrawerOpen    bool            `json:"drawer_open"`
}

func (h *Handler) getCart(c echo.Context) error {
	return c.JSON(http.StatusOK, toResponse(h.svc.Summary()))
}

func (h *Handler) addItem(c echo.Context) error {
	id, err := productID(c)
	if err != nil {
		return err
	}

	sum, err := h.svc.AddItem(c.Request().Context(), id)
	if err != nil {
		return mapErr(err)
	}
	return c.JSON(http.StatusOK, toResponse(sum))
}

func (h *Handler) removeItem(c echo.Context) error {
	id, err := productID(c)
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, toResponse(h.svc.RemoveItem(c.Request().Context(), id)))
}

func (h *Handler) openDrawer(c echo.Context) error {
	return c.JSON(http.StatusOK, toResponse(h.svc.OpenDrawer()))
}

func (h *Handler) closeDrawer(c echo.Context) error {
	return c.JSON(http.StatusOK, toResponse(h.svc.CloseDrawer()))
}

func productID(c echo.Context) (int, error) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		return 0, echo.NewHTTPError(http.StatusBadRequest, "product id must be an integer")
	}
	return id, nil
}

func toResponse(sum app.Summary) cartResponse {
	items := make([]entryResponse, 0, len(sum.Lines))
	for _, ln := range sum.Lines {
		items = append(items, entryResponse{
			ID:          ln.ID,
			Title:       ln.Title,
			Description: ln.Description,
			Category:    ln.Category,
			Image:       ln.Image,
			Price:       money.New(ln.Price),
			Quantity:    ln.Quantity,
			LineTotal:   money.New(ln.LineTotal),
		})
	}

	return cartResponse{
		SessionID:     sum.SessionID,
		Items:         items,
		TotalQuantity: sum.TotalQuantity,
		Subtotal:      money.New(sum.Subtotal),
		DrawerOpen:    sum.DrawerOpen,
	}
}

func mapErr(err error) error {
	switch {
	case errors.Is(err, app.ErrProductNotFound):
		return echo.NewHTTPError(http.StatusNotFound, "product not found")
	case errors.Is(err, app.ErrCatalogLoading):
		return echo.NewHTTPError(http.StatusServiceUnavailable, "catalog is loading").SetInternal(err)
	case errors.Is(err, app.ErrCatalogUnavailable):
		return echo.NewHTTPError(http.StatusServiceUnavailable, "something went wrong").SetInternal(err)
	}
	return echo.NewHTTPError(http.StatusInternalServerError, "internal error").SetInternal(err)
}
