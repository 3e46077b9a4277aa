package adapter

import (
	"context"
	"errors"

	cartapp "github.com/dwikikusuma/storefront/internal/cart/app"
	cartdomain "github.com/dwikikusuma/storefront/internal/cart/domain"
	catalogapp "github.com/dwikikusuma/storefront/internal/catalog/app"
)

type CatalogServiceReader struct {
	svc *catalogapp.Service
}

func NewCatalogServiceReader(svc *catalogapp.Service) *CatalogServiceReader {
	return &CatalogServiceReader{svc: svc}
}

func (r *CatalogServiceReader) GetProduct(ctx context.Context, productID int) (cartdomain.Product, error) {
	p, err := r.svc.GetProduct(ctx, productID)
	switch {
	case errors.Is(err, catalogapp.ErrNotFound):
		return cartdomain.Product{}, cartapp.ErrProductNotFound
	case errors.Is(err, catalogapp.ErrLoading):
		return cartdomain.Product{}, errors.Join(cartapp.ErrCatalogLoading, err)
	case err != nil:
		return cartdomain.Product{}, errors.Join(cartapp.ErrCatalogUnavailable, err)
	}

	return cartdomain.Product{
		ID:          p.ID,
		Title:       p.Title,
		Description: p.Description,
		Category:    p.Category,
		Image:       p.Image,
		Price:       p.Price,
	}, nil
}
