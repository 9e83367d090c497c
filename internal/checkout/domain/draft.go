package domain

import (
	"sort"
	"time"

	cart "github.com/bloomshop/storefront/internal/cart/domain"
	catalog "github.com/bloomshop/storefront/internal/catalog/domain"
)

// DraftLine is a priced snapshot of one cart entry, frozen at payment time
// so later catalog changes cannot alter what the customer confirmed.
type DraftLine struct {
	ProductID int64   `json:"product_id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
}

// OrderDraft carries the paid-for cart between the payment and delivery
// steps. It lives only in the session store and is consumed exactly once
// when shipping is confirmed.
type OrderDraft struct {
	OrderID   string        `json:"order_id,omitempty"`
	Lines     []DraftLine   `json:"lines"`
	Subtotal  float64       `json:"subtotal"`
	Method    PaymentMethod `json:"method"`
	CreatedAt time.Time     `json:"created_at"`
}

// BuildDraft resolves the cart against the catalog index and snapshots the
// resolvable lines, ordered by product id for a deterministic payload.
// Unresolvable entries are dropped; the caller decides whether an empty
// result blocks the payment step.
func BuildDraft(c cart.Cart, index map[int64]catalog.Product, method PaymentMethod) OrderDraft {
	lines := make([]DraftLine, 0, len(c))
	var subtotal float64
	for id, qty := range c {
		p, ok := index[id]
		if !ok {
			continue
		}
		lines = append(lines, DraftLine{
			ProductID: id,
			Name:      p.Name,
			UnitPrice: p.Price,
			Quantity:  qty,
		})
		subtotal += p.Price * float64(qty)
	}
	sort.Slice(lines, func(i, j int) bool { return lines[i].ProductID < lines[j].ProductID })
	return OrderDraft{
		Lines:     lines,
		Subtotal:  subtotal,
		Method:    method,
		CreatedAt: time.Now().UTC(),
	}
}
