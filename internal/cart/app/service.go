package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/dwikikusuma/storefront/internal/cart/domain"
	"github.com/shopspring/decimal"
)

var (
	ErrProductNotFound    = errors.New("product not found")
	ErrCatalogLoading     = errors.New("catalog is loading")
	ErrCatalogUnavailable = errors.New("catalog unavailable")
)

type Line struct {
	domain.Entry
	LineTotal decimal.Decimal
}

// Summary is what the cart drawer renders.
type Summary struct {
	SessionID     string
	Lines         []Line
	TotalQuantity int
	Subtotal      decimal.Decimal
	DrawerOpen    bool
}

type Service struct {
	catalog CatalogReader
	session *Session
	log     *slog.Logger
}

func NewService(catalog CatalogReader, session *Session, log *slog.Logger) *Service {
	if session == nil {
		session = NewSession()
	}
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		catalog: catalog,
		session: session,
		log:     log.With(slog.String("session", session.ID)),
	}
}

func (s *Service) Session() *Session {
	return s.session
}

func (s *Service) AddItem(ctx context.Context, productID int) (Summary, error) {
	p, err := s.catalog.GetProduct(ctx, productID)
	if err != nil {
		return Summary{}, fmt.Errorf("add product %d: %w", productID, err)
	}

	cart := s.session.Apply(func(c domain.Cart) domain.Cart {
		return domain.AddItem(c, p)
	})
	s.log.Debug("cart item added",
		slog.Int("product_id", productID),
		slog.Int("total_quantity", domain.TotalQuantity(cart)))

	return s.summarize(cart), nil
}

func (s *Service) RemoveItem(ctx context.Context, productID int) Summary {
	cart := s.session.Apply(func(c domain.Cart) domain.Cart {
		return domain.RemoveItem(c, productID)
	})
	s.log.Debug("cart item removed",
		slog.Int("product_id", productID),
		slog.Int("total_quantity", domain.TotalQuantity(cart)))

	return s.summarize(cart)
}

func (s *Service) Summary() Summary {
	return s.summarize(s.session.Cart())
}

func (s *Service) OpenDrawer() Summary {
	s.session.OpenDrawer()
	return s.Summary()
}

func (s *Service) CloseDrawer() Summary {
	s.session.CloseDrawer()
	return s.Summary()
}

func (s *Service) summarize(cart domain.Cart) Summary {
	lines := make([]Line, 0, len(cart))
	for _, e := range cart {
		lines = append(lines, Line{Entry: e, LineTotal: e.LineTotal()})
	}
	return Summary{
		SessionID:     s.session.ID,
		Lines:         lines,
		TotalQuantity: domain.TotalQuantity(cart),
		Subtotal:      domain.Subtotal(cart),
		DrawerOpen:    s.session.DrawerOpen(),
	}
}
