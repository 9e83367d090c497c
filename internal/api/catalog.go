package api

import (
	"net/http"

	catalog "github.com/bloomshop/storefront/internal/catalog/domain"
)

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	ctx, span := h.tracer.Start(r.Context(), "ListProducts")
	defer span.End()

	term := r.URL.Query().Get("search")
	mode := catalog.ParseSortMode(r.URL.Query().Get("sort"))

	products, err := h.catalog.Search(ctx, term, mode)
	if err != nil {
		respondError(w, err)
		return
	}
	respondJSON(w, http.StatusOK, products)
}
