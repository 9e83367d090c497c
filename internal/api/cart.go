package api

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	cart "github.com/bloomshop/storefront/internal/cart/domain"
)

type cartLineView struct {
	ProductID int64   `json:"productId"`
	Name      string  `json:"name,omitempty"`
	UnitPrice float64 `json:"unitPrice"`
	Quantity  int     `json:"quantity"`
	LineTotal float64 `json:"lineTotal"`
	Known     bool    `json:"known"`
}

type cartView struct {
	Items     []cartLineView `json:"items"`
	Lines     int            `json:"lines"`
	ItemCount int            `json:"itemCount"`
	Subtotal  float64        `json:"subtotal"`
}

// cartResponse prices the cart against the current catalog. Unknown
// products are still listed, they just carry no price.
func (h *Handler) cartResponse(ctx context.Context, c cart.Cart) (cartView, error) {
	index, err := h.catalog.Index(ctx)
	if err != nil {
		return cartView{}, err
	}
	view := cartView{
		Items:     make([]cartLineView, 0, len(c)),
		Lines:     c.Lines(),
		ItemCount: c.ItemCount(),
		Subtotal:  c.Subtotal(index),
	}
	for id, qty := range c {
		line := cartLineView{ProductID: id, Quantity: qty}
		if p, ok := index[id]; ok {
			line.Name = p.Name
			line.UnitPrice = p.Price
			line.LineTotal = p.Price * float64(qty)
			line.Known = true
		}
		view.Items = append(view.Items, line)
	}
	return view, nil
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "GetCart")
	defer span.End()

	c, err := h.carts.Get(ctx, sessionID(r))
	if err != nil {
		respondError(w, err)
		return
	}
	view, err := h.cartResponse(ctx, c)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, view)
}

type addItemRequest struct {
	ProductID int64 `json:"productId"`
}

func (h *Handler) addItem(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "AddCartItem")
	defer span.End()

	var req addItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.ProductID <= 0 {
		respondJSON(w, http.StatusBadRequest, errorBody{Error: "productId is required"})
		return
	}

	c, err := h.carts.Add(ctx, sessionID(r), req.ProductID)
	if err != nil {
		respondError(w, err)
		return
	}
	view, err := h.cartResponse(ctx, c)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, view)
}

type updateItemRequest struct {
	Delta    *int `json:"delta,omitempty"`
	Quantity *int `json:"quantity,omitempty"`
}

// updateItem applies either a relative delta or an absolute quantity to
// one line, mirroring the two adjustment controls in the cart drawer.
func (h *Handler) updateItem(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "UpdateCartItem")
	defer span.End()

	productID, err := strconv.ParseInt(chi.URLParam(r, "productID"), 10, 64)
	if err != nil || productID <= 0 {
		respondJSON(w, http.StatusBadRequest, errorBody{Error: "invalid product id"})
		return
	}
	var req updateItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorBody{Error: "invalid body"})
		return
	}

	var c cart.Cart
	switch {
	case req.Delta != nil:
		c, err = h.carts.ChangeQuantity(ctx, sessionID(r), productID, *req.Delta)
	case req.Quantity != nil:
		c, err = h.carts.SetQuantity(ctx, sessionID(r), productID, *req.Quantity)
	default:
		respondJSON(w, http.StatusBadRequest, errorBody{Error: "delta or quantity is required"})
		return
	}
	if err != nil {
		respondError(w, err)
		return
	}
	view, err := h.cartResponse(ctx, c)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, view)
}

func (h *Handler) removeItem(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "RemoveCartItem")
	defer span.End()

	productID, err := strconv.ParseInt(chi.URLParam(r, "productID"), 10, 64)
	if err != nil || productID <= 0 {
		respondJSON(w, http.StatusBadRequest, errorBody{Error: "invalid product id"})
		return
	}

	c, err := h.carts.Remove(ctx, sessionID(r), productID)
	if err != nil {
		respondError(w, err)
		return
	}
	view, err := h.cartResponse(ctx, c)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, view)
}
