package api

import (
	"net/http"
	"strconv"
)

func (h *Handler) orderHistory(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "OrderHistory")
	defer span.End()

	token, ok, err := h.auth.Token(ctx, sessionID(r))
	if err != nil {
		respondError(w, err)
		return
	}
	if !ok {
		respondJSON(w, http.StatusUnauthorized, errorBody{Error: "not authenticated"})
		return
	}

	page, _ := strconv.Atoi(r.URL.Query().Get("page"))
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	history, err := h.orders.History(ctx, token, page, limit)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, history)
}
