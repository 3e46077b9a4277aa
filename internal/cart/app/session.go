package app

import (
	"sync"
	"time"

	"github.com/dwikikusuma/storefront/internal/cart/domain"
	"github.com/google/uuid"
)

// Session owns the cart and the drawer flag for one shopper. Mutations go
// through Apply one at a time, each seeing the previous one's result.
type Session struct {
	ID        string
	StartedAt time.Time

	mu         sync.Mutex
	cart       domain.Cart
	drawerOpen bool
}

func NewSession() *Session {
	return &Session{
		ID:        uuid.NewString(),
		StartedAt: time.Now().UTC(),
		cart:      domain.Cart{},
	}
}

func (s *Session) Cart() domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make(domain.Cart, len(s.cart))
	copy(out, s.cart)
	return out
}

// Apply commits fn(current) as the new cart and returns it.
func (s *Session) Apply(fn func(domain.Cart) domain.Cart) domain.Cart {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart = fn(s.cart)

	out := make(domain.Cart, len(s.cart))
	copy(out, s.cart)
	return out
}

func (s *Session) OpenDrawer() {
	s.mu.Lock()
	s.drawerOpen = true
	s.mu.Unlock()
}

func (s *Session) CloseDrawer() {
	s.mu.Lock()
	s.drawerOpen = false
	s.mu.Unlock()
}

func (s *Session) DrawerOpen() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.drawerOpen
}
