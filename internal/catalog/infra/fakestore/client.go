package fakestore

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/dwikikusuma/storefront/internal/catalog/domain"
	jsoniter "github.com/json-iterator/go"
	"github.com/shopspring/decimal"
)

const DefaultURL = "https://fakestoreapi.com/products"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Client reads the product list from a Fake Store compatible endpoint.
type Client struct {
	url  string
	http *http.Client
}

func NewClient(url string, timeout time.Duration) *Client {
	if url == "" {
		url = DefaultURL
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	return &Client{
		url:  url,
		http: &http.Client{Timeout: timeout},
	}
}

type productDTO struct {
	ID          int             `json:"id"`
	Title       string          `json:"title"`
	Price       decimal.Decimal `json:"price"`
	Description string          `json:"description"`
	Category    string          `json:"category"`
	Image       string          `json:"image"`
}

func (c *Client) FetchProducts(ctx context.Context) ([]domain.Product, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.url, nil)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("get %s: %w", c.url, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("get %s: unexpected status %d", c.url, resp.StatusCode)
	}

	var rows []productDTO
	if err := json.NewDecoder(resp.Body).Decode(&rows); err != nil {
		return nil, fmt.Errorf("decode products: %w", err)
	}

	out := make([]domain.Product, 0, len(rows))
	seen := make(map[int]struct{}, len(rows))
	for i, row := range rows {
		if row.Price.IsNegative() {
			return nil, fmt.Errorf("product %d: negative price %s", i, row.Price)
		}
		if _, dup := seen[row.ID]; dup {
			return nil, fmt.Errorf("product %d: duplicate id %d", i, row.ID)
		}
		seen[row.ID] = struct{}{}

		out = append(out, domain.Product{
			ID:          row.ID,
			Title:       row.Title,
			Description: row.Description,
			Category:    row.Category,
			Image:       row.Image,
			Price:       row.Price,
		})
	}

	return out, nil
}
