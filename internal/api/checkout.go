package api

import (
	"encoding/json"
	"net/http"

	checkout "github.com/bloomshop/storefront/internal/checkout/domain"
)

func (h *Handler) checkoutState(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "CheckoutState")
	defer span.End()

	state, err := h.checkout.State(ctx, sessionID(r))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"state": state.String()})
}

func (h *Handler) beginCheckout(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "BeginCheckout")
	defer span.End()

	state, err := h.checkout.Begin(ctx, sessionID(r))
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"state": state.String()})
}

type submitPaymentRequest struct {
	Method     string `json:"method"`
	CardNumber string `json:"cardNumber"`
	Expiry     string `json:"expiry"`
	CVC        string `json:"cvc"`
}

func (h *Handler) submitPayment(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "SubmitPayment")
	defer span.End()

	var req submitPaymentRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondJSON(w, http.StatusBadRequest, errorBody{Error: "invalid body"})
		return
	}
	method, err := checkout.ParsePaymentMethod(req.Method)
	if err != nil {
		respondJSON(w, http.StatusBadRequest, errorBody{Error: err.Error(), Field: "method"})
		return
	}
	card := checkout.CardDetails{Number: req.CardNumber, Expiry: req.Expiry, CVC: req.CVC}

	draft, err := h.checkout.SubmitPayment(ctx, sessionID(r), method, card)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, draft)
}

func (h *Handler) getDraft(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "GetDraft")
	defer span.End()

	draft, err := h.checkout.Draft(ctx, sessionID(r))
	if err != nil {
		respondError(w, err)
		return
	}
	if draft == nil {
		respondJSON(w, http.StatusNotFound, errorBody{Error: "no order draft"})
		return
	}
	respondJSON(w, http.StatusOK, draft)
}

func (h *Handler) listShippingTiers(w http.ResponseWriter, r *http.Request) {
	_, span := h.tracer.Start(r.Context(), "ListShippingTiers")
	defer span.End()

	respondJSON(w, http.StatusOK, checkout.ShippingTiers())
}

type confirmShippingRequest struct {
	TierID string `json:"tierId"`
}

func (h *Handler) confirmShipping(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "ConfirmShipping")
	defer span.End()

	var req confirmShippingRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil || req.TierID == "" {
		respondJSON(w, http.StatusBadRequest, errorBody{Error: "tierId is required"})
		return
	}

	conf, err := h.checkout.ConfirmShipping(ctx, sessionID(r), req.TierID)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, conf)
}

func (h *Handler) resetCheckout(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "ResetCheckout")
	defer span.End()

	if err := h.checkout.Reset(ctx, sessionID(r)); err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, map[string]string{"state": checkout.StateBrowsing.String()})
}
