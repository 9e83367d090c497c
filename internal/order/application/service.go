package application

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/bloomshop/storefront/internal/order/domain"
	"github.com/bloomshop/storefront/pkg/tracing"
)

const (
	defaultLimit = 10
	maxLimit     = 100
)

type Service struct {
	log     *slog.Logger
	repo    Repository
	history HistoryClient
}

func NewService(log *slog.Logger, repo Repository, history HistoryClient) *Service {
	return &Service{log: log, repo: repo, history: history}
}

// Record journals a confirmed order and captures its OrderConfirmed
// event in the same transaction; the outbox relay publishes it.
func (s *Service) Record(ctx context.Context, o domain.Order) error {
	event := domain.OrderConfirmed{
		OrderID:      o.ID,
		SessionID:    o.SessionID,
		Method:       o.Method,
		Lines:        o.Lines,
		Total:        o.Total,
		ShippingTier: o.ShippingTier,
	}
	payload, err := json.Marshal(event)
	if err != nil {
		return err
	}
	return s.repo.SaveWithOutbox(ctx, o, "OrderConfirmed", payload, tracing.Traceparent(ctx))
}

// History proxies the backend's paged order history, clamping page and
// limit to sane values.
func (s *Service) History(ctx context.Context, token string, page, limit int) (domain.HistoryPage, error) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultLimit
	}
	if limit > maxLimit {
		limit = maxLimit
	}
	return s.history.OrderHistory(ctx, token, page, limit)
}

// BySession lists locally journaled orders for a session, newest first.
func (s *Service) BySession(ctx context.Context, sessionID string) ([]domain.Order, error) {
	return s.repo.BySession(ctx, sessionID)
}
