package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func testProducts() []Product {
	return []Product{
		{ID: 1, Name: "Monstera Deliciosa", Price: 590},
		{ID: 2, Name: "Snake Plant", Price: 350},
		{ID: 3, Name: "Fiddle Leaf Fig", Price: 890},
		{ID: 4, Name: "Golden Pothos", Price: 350},
		{ID: 5, Name: "Peace Lily", Price: 450},
	}
}

func TestFilterSortEmptyTermKeepsOriginalOrder(t *testing.T) {
	in := testProducts()
	out := FilterSort(in, "", SortUnsorted)
	assert.Equal(t, in, out)
}

func TestFilterSortCaseInsensitiveSubstring(t *testing.T) {
	out := FilterSort(testProducts(), "PLANT", SortUnsorted)
	assert.Len(t, out, 1)
	assert.Equal(t, int64(2), out[0].ID)

	out = FilterSort(testProducts(), "li", SortUnsorted)
	assert.Len(t, out, 2) // Deliciosa, Lily
}

func TestFilterSortNoMatchReturnsEmpty(t *testing.T) {
	out := FilterSort(testProducts(), "orchid", SortUnsorted)
	assert.Empty(t, out)
}

func TestFilterSortAscendingThenDescendingReverses(t *testing.T) {
	asc := FilterSort(testProducts(), "", SortPriceAscending)
	desc := FilterSort(testProducts(), "", SortPriceDescending)

	prices := func(ps []Product) []float64 {
		out := make([]float64, len(ps))
		for i, p := range ps {
			out[i] = p.Price
		}
		return out
	}
	ascPrices := prices(asc)
	descPrices := prices(desc)
	for i := range ascPrices {
		assert.Equal(t, ascPrices[i], descPrices[len(descPrices)-1-i])
	}
}

func TestFilterSortStabilityOnEqualPrices(t *testing.T) {
	// Snake Plant (id 2) precedes Golden Pothos (id 4) in the catalog and
	// both cost 350; a stable sort must keep that relative order.
	asc := FilterSort(testProducts(), "", SortPriceAscending)
	var equalPriced []int64
	for _, p := range asc {
		if p.Price == 350 {
			equalPriced = append(equalPriced, p.ID)
		}
	}
	assert.Equal(t, []int64{2, 4}, equalPriced)
}

func TestFilterSortDoesNotMutateInput(t *testing.T) {
	in := testProducts()
	_ = FilterSort(in, "", SortPriceDescending)
	assert.Equal(t, testProducts(), in)
}

func TestParseSortMode(t *testing.T) {
	assert.Equal(t, SortPriceAscending, ParseSortMode("low"))
	assert.Equal(t, SortPriceDescending, ParseSortMode("high"))
	assert.Equal(t, SortUnsorted, ParseSortMode(""))
	assert.Equal(t, SortUnsorted, ParseSortMode("bogus"))
}
