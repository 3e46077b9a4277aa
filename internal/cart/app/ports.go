package app

import (
	"context"

	"github.com/dwikikusuma/storefront/internal/cart/domain"
)

// CatalogReader resolves a product id to the record a cart entry is built
// from. Implementations report ErrProductNotFound, ErrCatalogLoading or
// ErrCatalogUnavailable.
type CatalogReader interface {
	GetProduct(ctx context.Context, productID int) (domain.Product, error)
}
