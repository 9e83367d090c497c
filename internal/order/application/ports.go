package application

import (
	"context"

	"github.com/bloomshop/storefront/internal/order/domain"
)

type Repository interface {
	SaveWithOutbox(ctx context.Context, o domain.Order, eventType string, payload []byte, traceparent string) error
	BySession(ctx context.Context, sessionID string) ([]domain.Order, error)
}

// HistoryClient fetches the authoritative paged order history from the
// remote backend.
type HistoryClient interface {
	OrderHistory(ctx context.Context, token string, page, limit int) (domain.HistoryPage, error)
}
