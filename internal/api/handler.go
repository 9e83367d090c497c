// Package api is the storefront's HTTP surface: session-scoped cart and
// checkout operations, catalog browsing and auth, all keyed by a session
// cookie.
package api

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/trace"

	authapp "github.com/bloomshop/storefront/internal/auth/application"
	cartapp "github.com/bloomshop/storefront/internal/cart/application"
	catalogapp "github.com/bloomshop/storefront/internal/catalog/application"
	checkoutapp "github.com/bloomshop/storefront/internal/checkout/application"
	orderapp "github.com/bloomshop/storefront/internal/order/application"
)

type Handler struct {
	log      *slog.Logger
	tracer   trace.Tracer
	carts    *cartapp.Service
	catalog  *catalogapp.Service
	auth     *authapp.Service
	checkout *checkoutapp.Orchestrator
	orders   *orderapp.Service
}

func NewHandler(
	log *slog.Logger,
	carts *cartapp.Service,
	catalog *catalogapp.Service,
	auth *authapp.Service,
	checkout *checkoutapp.Orchestrator,
	orders *orderapp.Service,
) *Handler {
	return &Handler{
		log:      log,
		tracer:   otel.Tracer("storefront-http"),
		carts:    carts,
		catalog:  catalog,
		auth:     auth,
		checkout: checkout,
		orders:   orders,
	}
}

func (h *Handler) Routes() http.Handler {
	r := chi.NewRouter()
	r.Use(middleware.Recoverer)
	r.Use(withSession)

	r.Post("/auth/login", h.login)
	r.Post("/auth/register", h.register)
	r.Post("/auth/logout", h.logout)
	r.Get("/auth/me", h.me)

	r.Get("/products", h.listProducts)

	r.Get("/cart", h.getCart)
	r.Post("/cart/items", h.addItem)
	r.Patch("/cart/items/{productID}", h.updateItem)
	r.Delete("/cart/items/{productID}", h.removeItem)

	r.Get("/checkout", h.checkoutState)
	r.Post("/checkout", h.beginCheckout)
	r.Post("/checkout/payment", h.submitPayment)
	r.Get("/checkout/draft", h.getDraft)
	r.Get("/checkout/shipping", h.listShippingTiers)
	r.Post("/checkout/delivery", h.confirmShipping)
	r.Post("/checkout/reset", h.resetCheckout)

	r.Get("/orders/my", h.orderHistory)

	return r
}
