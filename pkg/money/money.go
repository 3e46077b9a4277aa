// Package money renders decimal prices the way the upstream catalog sends
// them: as bare JSON numbers.
package money

import (
	"github.com/shopspring/decimal"
)

// Amount is a decimal that always marshals as a JSON number, independent of
// decimal.MarshalJSONWithoutQuotes. Decoding accepts numbers and quoted
// strings alike.
type Amount struct {
	decimal.Decimal
}

func New(d decimal.Decimal) Amount {
	return Amount{Decimal: d}
}

func (a Amount) MarshalJSON() ([]byte, error) {
	return []byte(a.Decimal.String()), nil
}
