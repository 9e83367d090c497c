package application

import (
	"context"

	auth "github.com/bloomshop/storefront/internal/auth/domain"
	cart "github.com/bloomshop/storefront/internal/cart/domain"
	catalog "github.com/bloomshop/storefront/internal/catalog/domain"
	checkout "github.com/bloomshop/storefront/internal/checkout/domain"
	order "github.com/bloomshop/storefront/internal/order/domain"
)

type CartService interface {
	Get(ctx context.Context, sessionID string) (cart.Cart, error)
	Clear(ctx context.Context, sessionID string) error
}

type CatalogService interface {
	Index(ctx context.Context) (map[int64]catalog.Product, error)
}

type AuthService interface {
	Current(ctx context.Context, sessionID string) (*auth.User, error)
	Token(ctx context.Context, sessionID string) (string, bool, error)
}

// OrderGateway submits the order to the remote backend and returns the
// created order id.
type OrderGateway interface {
	SubmitOrder(ctx context.Context, token string, draft checkout.OrderDraft) (string, error)
}

// OrderJournal records a confirmed order locally together with its
// outbox event.
type OrderJournal interface {
	Record(ctx context.Context, o order.Order) error
}

// SubmitGuard rejects duplicate in-flight payment submissions.
type SubmitGuard interface {
	Acquire(ctx context.Context, key string) (bool, error)
	Release(ctx context.Context, key string) error
}
