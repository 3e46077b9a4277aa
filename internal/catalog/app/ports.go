package app

import (
	"context"

	"github.com/dwikikusuma/storefront/internal/catalog/domain"
)

type ProductSource interface {
	FetchProducts(ctx context.Context) ([]domain.Product, error)
}
