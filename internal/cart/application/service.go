package application

import (
	"context"
	"log/slog"

	"github.com/bloomshop/storefront/internal/cart/domain"
	"github.com/bloomshop/storefront/internal/kv"
)

// Service owns the session-keyed cart lifecycle: restore from the store,
// apply one of the pure reducer operations, write the result back. Every
// mutation persists the full mapping synchronously so the cart survives
// client reloads.
type Service struct {
	log   *slog.Logger
	store kv.Store
}

func NewService(log *slog.Logger, store kv.Store) *Service {
	return &Service{log: log, store: store}
}

func cartKey(sessionID string) string {
	return "cart:" + sessionID
}

// Get restores the session's cart. A missing or corrupt stored value
// yields an empty cart, never an error that blocks the session.
func (s *Service) Get(ctx context.Context, sessionID string) (domain.Cart, error) {
	c := domain.New()
	ok, err := kv.GetJSON(ctx, s.store, cartKey(sessionID), &c)
	if err != nil {
		return nil, err
	}
	if !ok {
		return domain.New(), nil
	}
	// drop any entries a buggy or tampered client managed to persist
	for id, qty := range c {
		if qty < 1 {
			delete(c, id)
		}
	}
	return c, nil
}

func (s *Service) Add(ctx context.Context, sessionID string, productID int64) (domain.Cart, error) {
	return s.apply(ctx, sessionID, func(c domain.Cart) domain.Cart {
		return domain.Add(c, productID)
	})
}

func (s *Service) Remove(ctx context.Context, sessionID string, productID int64) (domain.Cart, error) {
	return s.apply(ctx, sessionID, func(c domain.Cart) domain.Cart {
		return domain.Remove(c, productID)
	})
}

func (s *Service) ChangeQuantity(ctx context.Context, sessionID string, productID int64, delta int) (domain.Cart, error) {
	return s.apply(ctx, sessionID, func(c domain.Cart) domain.Cart {
		return domain.ChangeQuantity(c, productID, delta)
	})
}

func (s *Service) SetQuantity(ctx context.Context, sessionID string, productID int64, qty int) (domain.Cart, error) {
	return s.apply(ctx, sessionID, func(c domain.Cart) domain.Cart {
		return domain.SetQuantity(c, productID, qty)
	})
}

// Clear empties the cart after a successful order submission.
func (s *Service) Clear(ctx context.Context, sessionID string) error {
	return s.store.Delete(ctx, cartKey(sessionID))
}

func (s *Service) apply(ctx context.Context, sessionID string, op func(domain.Cart) domain.Cart) (domain.Cart, error) {
	c, err := s.Get(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	c = op(c)
	if err := kv.SetJSON(ctx, s.store, cartKey(sessionID), c, 0); err != nil {
		return nil, err
	}
	return c, nil
}
