package domain

// OrderConfirmed is published through the outbox once delivery is
// confirmed, for downstream fulfillment consumers.
type OrderConfirmed struct {
	OrderID      string  `json:"order_id"`
	SessionID    string  `json:"session_id"`
	Method       string  `json:"method"`
	Lines        []Line  `json:"lines"`
	Total        float64 `json:"total"`
	ShippingTier string  `json:"shipping_tier"`
}
