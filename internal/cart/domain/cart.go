package domain

import "github.com/shopspring/decimal"

// Product is the catalog record a cart entry is built from.
type Product struct {
	ID          int
	Title       string
	Description string
	Category    string
	Image       string
	Price       decimal.Decimal
}

// Entry is a product together with how many units of it are in the cart.
// Quantity is at least 1 for as long as the entry exists.
type Entry struct {
	Product
	Quantity int
}

// LineTotal is the entry's price multiplied by its quantity.
func (e Entry) LineTotal() decimal.Decimal {
	return e.Price.Mul(decimal.NewFromInt(int64(e.Quantity)))
}

// Cart is an ordered list of entries, unique by product id.
type Cart []Entry

// Find returns the entry for id, if any.
func (c Cart) Find(id int) (Entry, bool) {
	for _, e := range c {
		if e.ID == id {
			return e, true
		}
	}
	return Entry{}, false
}

// AddItem returns a new cart with one more unit of p. An existing entry is
// incremented in place; otherwise a new entry is appended with quantity 1.
// The input cart is never modified.
func AddItem(cart Cart, p Product) Cart {
	out := make(Cart, 0, len(cart)+1)
	found := false
	for _, e := range cart {
		if e.ID == p.ID {
			e.Quantity++
			found = true
		}
		out = append(out, e)
	}
	if !found {
		out = append(out, Entry{Product: p, Quantity: 1})
	}
	return out
}

// RemoveItem returns a new cart with one less unit of the product id. An
// entry at quantity 1 is dropped; the others keep their relative order.
// Removing an id that is not in the cart returns cart itself.
func RemoveItem(cart Cart, id int) Cart {
	if _, ok := cart.Find(id); !ok {
		return cart
	}

	out := make(Cart, 0, len(cart))
	for _, e := range cart {
		if e.ID == id {
			if e.Quantity <= 1 {
				continue
			}
			e.Quantity--
		}
		out = append(out, e)
	}
	return out
}

// TotalQuantity sums quantities across all entries.
func TotalQuantity(cart Cart) int {
	total := 0
	for _, e := range cart {
		total += e.Quantity
	}
	return total
}

// Subtotal sums price * quantity across all entries.
func Subtotal(cart Cart) decimal.Decimal {
	sum := decimal.Zero
	for _, e := range cart {
		sum = sum.Add(e.LineTotal())
	}
	return sum
}
