package domain

import "time"

type Status string

const (
	StatusPending   Status = "pending"
	StatusPaid      Status = "paid"
	StatusConfirmed Status = "confirmed"
	StatusCancelled Status = "cancelled"
)

type Line struct {
	ProductID int64   `json:"product_id"`
	Name      string  `json:"name"`
	UnitPrice float64 `json:"unit_price"`
	Quantity  int     `json:"quantity"`
}

// Order is the locally journaled record of a confirmed checkout. The
// remote backend stays the system of record; the journal feeds the event
// relay and keeps an audit trail of what this service confirmed.
type Order struct {
	ID           string    `json:"id"`
	SessionID    string    `json:"session_id"`
	Method       string    `json:"method"`
	Lines        []Line    `json:"lines"`
	Subtotal     float64   `json:"subtotal"`
	Taxes        float64   `json:"taxes"`
	ShippingTier string    `json:"shipping_tier"`
	ShippingCost float64   `json:"shipping_cost"`
	Total        float64   `json:"total"`
	Status       Status    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func NewOrder(id, sessionID, method string, lines []Line, subtotal, taxes float64, tier string, shippingCost, total float64) Order {
	now := time.Now().UTC()
	return Order{
		ID:           id,
		SessionID:    sessionID,
		Method:       method,
		Lines:        lines,
		Subtotal:     subtotal,
		Taxes:        taxes,
		ShippingTier: tier,
		ShippingCost: shippingCost,
		Total:        total,
		Status:       StatusConfirmed,
		CreatedAt:    now,
		UpdatedAt:    now,
	}
}
