package app

import (
	"context"
	"errors"
	"log/slog"
	"sync"

	"github.com/dwikikusuma/storefront/internal/catalog/domain"
)

var (
	ErrNotFound    = errors.New("not found")
	ErrLoading     = errors.New("catalog is loading")
	ErrUnavailable = errors.New("something went wrong")
)

// Service holds the product catalog fetched once at startup. After Load
// returns, the snapshot never changes for the life of the process.
type Service struct {
	src ProductSource
	log *slog.Logger

	once sync.Once
	mu   sync.RWMutex

	status   domain.Status
	products []domain.Product
	index    map[int]int
}

func NewService(src ProductSource, log *slog.Logger) *Service {
	if log == nil {
		log = slog.Default()
	}
	return &Service{
		src:    src,
		log:    log,
		status: domain.StatusLoading,
	}
}

// Load fetches the catalog. Only the first call talks to the source; later
// and concurrent calls wait for it and share its outcome.
func (s *Service) Load(ctx context.Context) error {
	s.once.Do(func() {
		products, err := s.src.FetchProducts(ctx)

		s.mu.Lock()
		defer s.mu.Unlock()

		if err != nil {
			s.log.Error("catalog fetch failed", slog.Any("err", err))
			s.status = domain.StatusFailed
			return
		}

		s.products = products
		s.index = make(map[int]int, len(products))
		for i, p := range products {
			s.index[p.ID] = i
		}
		s.status = domain.StatusReady
		s.log.Info("catalog loaded", slog.Int("products", len(products)))
	})

	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.status == domain.StatusFailed {
		return ErrUnavailable
	}
	return nil
}

func (s *Service) Status() domain.Status {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.status
}

func (s *Service) Snapshot() domain.Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Product, len(s.products))
	copy(out, s.products)
	return domain.Snapshot{Status: s.status, Products: out}
}

func (s *Service) ListProducts(ctx context.Context) ([]domain.Product, error) {
	snap := s.Snapshot()
	if err := statusErr(snap.Status); err != nil {
		return nil, err
	}
	return snap.Products, nil
}

// GetProduct looks id up in the loaded snapshot. Any integer is a valid id;
// whether it exists is up to the upstream catalog.
func (s *Service) GetProduct(ctx context.Context, id int) (domain.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if err := statusErr(s.status); err != nil {
		return domain.Product{}, err
	}
	i, ok := s.index[id]
	if !ok {
		return domain.Product{}, ErrNotFound
	}
	return s.products[i], nil
}

func statusErr(st domain.Status) error {
	switch st {
	case domain.StatusLoading:
		return ErrLoading
	case domain.StatusFailed:
		return ErrUnavailable
	}
	return nil
}
