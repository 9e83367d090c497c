package api

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/bloomshop/storefront/internal/backend"
	checkoutapp "github.com/bloomshop/storefront/internal/checkout/application"
	checkout "github.com/bloomshop/storefront/internal/checkout/domain"
)

func respondJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

type errorBody struct {
	Error string `json:"error"`
	Field string `json:"field,omitempty"`
	State string `json:"state,omitempty"`
}

// respondError maps domain errors onto HTTP statuses. Validation failures
// carry the offending field; a missing draft reports the browsing state
// so the client knows where to redirect.
func respondError(w http.ResponseWriter, err error) {
	var fieldErr *checkout.FieldError
	if errors.As(err, &fieldErr) {
		respondJSON(w, http.StatusUnprocessableEntity, errorBody{Error: fieldErr.Message, Field: fieldErr.Field})
		return
	}

	var apiErr *backend.APIError
	if errors.As(err, &apiErr) {
		status := http.StatusBadGateway
		if apiErr.IsAuth() {
			status = http.StatusUnauthorized
		}
		respondJSON(w, status, errorBody{Error: apiErr.Message})
		return
	}

	switch {
	case errors.Is(err, checkoutapp.ErrEmptyCart),
		errors.Is(err, checkoutapp.ErrNoResolvableLines),
		errors.Is(err, checkoutapp.ErrNotInPaymentEntry),
		errors.Is(err, checkout.ErrUnknownTier):
		respondJSON(w, http.StatusBadRequest, errorBody{Error: err.Error()})
	case errors.Is(err, checkoutapp.ErrAuthRequired):
		respondJSON(w, http.StatusUnauthorized, errorBody{Error: err.Error()})
	case errors.Is(err, checkoutapp.ErrNoDraft):
		respondJSON(w, http.StatusConflict, errorBody{Error: err.Error(), State: checkout.StateBrowsing.String()})
	case errors.Is(err, checkoutapp.ErrSubmissionInFlight):
		respondJSON(w, http.StatusConflict, errorBody{Error: err.Error()})
	default:
		respondJSON(w, http.StatusInternalServerError, errorBody{Error: "internal error"})
	}
}
