package domain

import (
	catalog "github.com/bloomshop/storefront/internal/catalog/domain"
)

// Cart maps a product id to its quantity. Every entry holds a quantity of
// at least 1; an operation that would drop a quantity below 1 removes the
// entry instead. All mutations go through the pure functions below, which
// return a fresh map and leave the input untouched.
type Cart map[int64]int

func New() Cart {
	return Cart{}
}

func (c Cart) clone() Cart {
	nc := make(Cart, len(c)+1)
	for id, qty := range c {
		nc[id] = qty
	}
	return nc
}

// Add increments the quantity for id by one, inserting it at 1 if absent.
func Add(c Cart, id int64) Cart {
	nc := c.clone()
	nc[id]++
	return nc
}

// Remove deletes the entry for id regardless of quantity.
func Remove(c Cart, id int64) Cart {
	if _, ok := c[id]; !ok {
		return c.clone()
	}
	nc := c.clone()
	delete(nc, id)
	return nc
}

// ChangeQuantity applies delta to the current quantity (treating an absent
// entry as 1). A result below 1 removes the entry.
func ChangeQuantity(c Cart, id int64, delta int) Cart {
	qty, ok := c[id]
	if !ok {
		qty = 1
	}
	qty += delta
	if qty < 1 {
		return Remove(c, id)
	}
	nc := c.clone()
	nc[id] = qty
	return nc
}

// SetQuantity sets the quantity for id with a floor of 1. It never removes
// an entry: zero or negative input clamps to 1.
func SetQuantity(c Cart, id int64, qty int) Cart {
	if qty < 1 {
		qty = 1
	}
	nc := c.clone()
	nc[id] = qty
	return nc
}

// Lines returns the number of distinct products in the cart.
func (c Cart) Lines() int {
	return len(c)
}

// ItemCount returns the sum of all quantities.
func (c Cart) ItemCount() int {
	var n int
	for _, qty := range c {
		n += qty
	}
	return n
}

// Subtotal prices the cart against a catalog index. Entries whose product
// id is not in the index contribute nothing; they are still rendered as
// lines, so they are skipped here rather than treated as an error.
func (c Cart) Subtotal(index map[int64]catalog.Product) float64 {
	var total float64
	for id, qty := range c {
		p, ok := index[id]
		if !ok {
			continue
		}
		total += p.Price * float64(qty)
	}
	return total
}
