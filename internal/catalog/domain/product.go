package domain

import "github.com/shopspring/decimal"

type Product struct {
	ID          int
	Title       string
	Description string
	Category    string
	Image       string
	Price       decimal.Decimal
}

type Status int

const (
	StatusLoading Status = iota
	StatusReady
	StatusFailed
)

func (s Status) String() string {
	switch s {
	case StatusReady:
		return "ready"
	case StatusFailed:
		return "failed"
	default:
		return "loading"
	}
}

// Snapshot is the catalog as seen by the presentation layer.
type Snapshot struct {
	Status   Status
	Products []Product
}
