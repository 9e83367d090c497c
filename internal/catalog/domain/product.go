package domain

import (
	"sort"
	"strings"
)

// Product is the canonical catalog shape. Backend payloads vary in their
// image field (`img` vs `imageUrl`); both are folded into Image at the
// ingestion boundary before anything downstream sees a product.
type Product struct {
	ID    int64   `json:"id"`
	Name  string  `json:"name"`
	Price float64 `json:"price"`
	Image string  `json:"image,omitempty"`
	Tag   string  `json:"tag,omitempty"`
}

type SortMode string

const (
	SortUnsorted       SortMode = ""
	SortPriceAscending SortMode = "low"
	SortPriceDescending SortMode = "high"
)

// ParseSortMode maps a query value onto a SortMode, defaulting to unsorted.
func ParseSortMode(s string) SortMode {
	switch SortMode(s) {
	case SortPriceAscending, SortPriceDescending:
		return SortMode(s)
	default:
		return SortUnsorted
	}
}

// FilterSort filters products to names containing term (case-insensitive,
// empty term keeps everything) and then sorts by price if a price mode is
// set. The sort is stable, so equal prices keep their catalog order. The
// input slice is never mutated.
func FilterSort(products []Product, term string, mode SortMode) []Product {
	out := make([]Product, 0, len(products))
	needle := strings.ToLower(strings.TrimSpace(term))
	for _, p := range products {
		if needle == "" || strings.Contains(strings.ToLower(p.Name), needle) {
			out = append(out, p)
		}
	}
	switch mode {
	case SortPriceAscending:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price < out[j].Price })
	case SortPriceDescending:
		sort.SliceStable(out, func(i, j int) bool { return out[i].Price > out[j].Price })
	}
	return out
}

// PriceIndex builds an id -> product lookup used by cart subtotals and
// checkout line resolution.
func PriceIndex(products []Product) map[int64]Product {
	idx := make(map[int64]Product, len(products))
	for _, p := range products {
		idx[p.ID] = p
	}
	return idx
}
