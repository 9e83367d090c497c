package application

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/bloomshop/storefront/internal/checkout/domain"
	"github.com/bloomshop/storefront/internal/kv"
	order "github.com/bloomshop/storefront/internal/order/domain"
	"github.com/bloomshop/storefront/pkg/idempotency"
)

var (
	ErrEmptyCart          = errors.New("cart is empty")
	ErrAuthRequired       = errors.New("authentication required")
	ErrNoResolvableLines  = errors.New("no cart line resolves to a known product")
	ErrNoDraft            = errors.New("no order draft for this session")
	ErrNotInPaymentEntry  = errors.New("checkout has not reached payment entry")
	ErrSubmissionInFlight = errors.New("a payment submission is already in flight")
)

// Drafts abandoned mid-flow are bounded by this TTL rather than living in
// the store forever.
const draftTTL = 24 * time.Hour

// Orchestrator drives the checkout flow for a session:
// browsing -> payment_entry -> delivery_selection -> confirmed.
// Both the state and the order draft live in the session store, so the
// flow survives reloads and any instance can serve any session.
type Orchestrator struct {
	log     *slog.Logger
	store   kv.Store
	carts   CartService
	catalog CatalogService
	auth    AuthService
	gateway OrderGateway
	journal OrderJournal
	guard   SubmitGuard
}

func NewOrchestrator(
	log *slog.Logger,
	store kv.Store,
	carts CartService,
	catalog CatalogService,
	auth AuthService,
	gateway OrderGateway,
	journal OrderJournal,
	guard SubmitGuard,
) *Orchestrator {
	return &Orchestrator{
		log:     log,
		store:   store,
		carts:   carts,
		catalog: catalog,
		auth:    auth,
		gateway: gateway,
		journal: journal,
		guard:   guard,
	}
}

func stateKey(sessionID string) string { return "checkout:" + sessionID }
func draftKey(sessionID string) string { return "draft:" + sessionID }

// State reports where the session is in the flow, defaulting to browsing.
func (o *Orchestrator) State(ctx context.Context, sessionID string) (domain.State, error) {
	var s domain.State
	ok, err := kv.GetJSON(ctx, o.store, stateKey(sessionID), &s)
	if err != nil {
		return "", err
	}
	if !ok {
		return domain.StateBrowsing, nil
	}
	switch s {
	case domain.StateBrowsing, domain.StatePaymentEntry, domain.StateDeliverySelection, domain.StateConfirmed:
		return s, nil
	default:
		return domain.StateBrowsing, nil
	}
}

func (o *Orchestrator) setState(ctx context.Context, sessionID string, s domain.State) error {
	return kv.SetJSON(ctx, o.store, stateKey(sessionID), s, 0)
}

// Begin moves browsing -> payment_entry. An empty cart or an
// unauthenticated session blocks the transition and leaves the state
// untouched; the client logs in and retries, resuming the flow.
func (o *Orchestrator) Begin(ctx context.Context, sessionID string) (domain.State, error) {
	c, err := o.carts.Get(ctx, sessionID)
	if err != nil {
		return "", err
	}
	if c.Lines() == 0 {
		return domain.StateBrowsing, ErrEmptyCart
	}
	user, err := o.auth.Current(ctx, sessionID)
	if err != nil {
		return "", err
	}
	if user == nil {
		return domain.StateBrowsing, ErrAuthRequired
	}
	if err := o.setState(ctx, sessionID, domain.StatePaymentEntry); err != nil {
		return "", err
	}
	return domain.StatePaymentEntry, nil
}

// SubmitPayment moves payment_entry -> delivery_selection. Validation
// failures never reach the network. The remote order creation is awaited,
// and only on its success are the draft written, the cart cleared and the
// state advanced; a failure leaves everything as it was so the action can
// simply be retried.
func (o *Orchestrator) SubmitPayment(ctx context.Context, sessionID string, method domain.PaymentMethod, card domain.CardDetails) (domain.OrderDraft, error) {
	state, err := o.State(ctx, sessionID)
	if err != nil {
		return domain.OrderDraft{}, err
	}
	if state != domain.StatePaymentEntry {
		return domain.OrderDraft{}, ErrNotInPaymentEntry
	}

	if err := card.Validate(method); err != nil {
		return domain.OrderDraft{}, err
	}

	guardKey := idempotency.PaymentKey(sessionID)
	acquired, err := o.guard.Acquire(ctx, guardKey)
	if err != nil {
		return domain.OrderDraft{}, err
	}
	if !acquired {
		return domain.OrderDraft{}, ErrSubmissionInFlight
	}
	defer func() {
		if err := o.guard.Release(ctx, guardKey); err != nil {
			o.log.Error("payment guard release failed", "session", sessionID, "err", err)
		}
	}()

	c, err := o.carts.Get(ctx, sessionID)
	if err != nil {
		return domain.OrderDraft{}, err
	}
	index, err := o.catalog.Index(ctx)
	if err != nil {
		return domain.OrderDraft{}, err
	}
	draft := domain.BuildDraft(c, index, method)
	if len(draft.Lines) == 0 {
		return domain.OrderDraft{}, ErrNoResolvableLines
	}

	token, ok, err := o.auth.Token(ctx, sessionID)
	if err != nil {
		return domain.OrderDraft{}, err
	}
	if !ok {
		return domain.OrderDraft{}, ErrAuthRequired
	}

	orderID, err := o.gateway.SubmitOrder(ctx, token, draft)
	if err != nil {
		return domain.OrderDraft{}, err
	}
	draft.OrderID = orderID

	if err := kv.SetJSON(ctx, o.store, draftKey(sessionID), draft, draftTTL); err != nil {
		return domain.OrderDraft{}, err
	}
	if err := o.carts.Clear(ctx, sessionID); err != nil {
		o.log.Error("cart clear after order failed", "session", sessionID, "err", err)
	}
	if err := o.setState(ctx, sessionID, domain.StateDeliverySelection); err != nil {
		return domain.OrderDraft{}, err
	}
	o.log.Info("payment accepted", "session", sessionID, "order_id", orderID, "method", method, "subtotal", draft.Subtotal)
	return draft, nil
}

// Draft returns the pending order draft, or nil when none exists.
func (o *Orchestrator) Draft(ctx context.Context, sessionID string) (*domain.OrderDraft, error) {
	var draft domain.OrderDraft
	ok, err := kv.GetJSON(ctx, o.store, draftKey(sessionID), &draft)
	if err != nil {
		return nil, err
	}
	if !ok {
		return nil, nil
	}
	return &draft, nil
}

// Confirmation is the final totals breakdown shown after shipping is
// confirmed.
type Confirmation struct {
	OrderID  string              `json:"order_id"`
	Subtotal float64             `json:"subtotal"`
	Taxes    float64             `json:"taxes"`
	Tier     domain.ShippingTier `json:"shipping"`
	Total    float64             `json:"total"`
}

// ConfirmShipping moves delivery_selection -> confirmed. Without a draft
// the session is pushed back to browsing and the caller gets ErrNoDraft
// so it can redirect. The draft is consumed exactly once.
func (o *Orchestrator) ConfirmShipping(ctx context.Context, sessionID, tierID string) (Confirmation, error) {
	draft, err := o.Draft(ctx, sessionID)
	if err != nil {
		return Confirmation{}, err
	}
	if draft == nil {
		if err := o.setState(ctx, sessionID, domain.StateBrowsing); err != nil {
			return Confirmation{}, err
		}
		return Confirmation{}, ErrNoDraft
	}

	tier, err := domain.TierByID(tierID)
	if err != nil {
		return Confirmation{}, err
	}

	conf := Confirmation{
		OrderID:  draft.OrderID,
		Subtotal: draft.Subtotal,
		Taxes:    domain.Taxes(draft.Subtotal),
		Tier:     tier,
		Total:    domain.Total(draft.Subtotal, tier),
	}
	if conf.OrderID == "" {
		conf.OrderID = uuid.NewString()
	}

	lines := make([]order.Line, 0, len(draft.Lines))
	for _, l := range draft.Lines {
		lines = append(lines, order.Line{ProductID: l.ProductID, Name: l.Name, UnitPrice: l.UnitPrice, Quantity: l.Quantity})
	}
	journaled := order.NewOrder(conf.OrderID, sessionID, string(draft.Method), lines, conf.Subtotal, conf.Taxes, tier.ID, tier.Cost, conf.Total)
	if err := o.journal.Record(ctx, journaled); err != nil {
		// the backend already holds the order; a journal failure must not
		// block the customer
		o.log.Error("order journal failed", "order_id", conf.OrderID, "err", err)
	}

	if err := o.store.Delete(ctx, draftKey(sessionID)); err != nil {
		return Confirmation{}, err
	}
	if err := o.setState(ctx, sessionID, domain.StateConfirmed); err != nil {
		return Confirmation{}, err
	}
	o.log.Info("shipping confirmed", "session", sessionID, "order_id", conf.OrderID, "tier", tier.ID, "total", conf.Total)
	return conf, nil
}

// Reset returns a confirmed (or abandoned) session to browsing, starting
// a fresh cart lifecycle.
func (o *Orchestrator) Reset(ctx context.Context, sessionID string) error {
	return o.setState(ctx, sessionID, domain.StateBrowsing)
}
