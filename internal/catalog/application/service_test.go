package application

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bloomshop/storefront/internal/catalog/domain"
	"github.com/bloomshop/storefront/internal/kv"
	"github.com/bloomshop/storefront/pkg/logging"
)

type mockFetcher struct {
	mu       sync.Mutex
	products []domain.Product
	err      error
	calls    int
}

func (m *mockFetcher) FetchProducts(context.Context) ([]domain.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.calls++
	if m.err != nil {
		return nil, m.err
	}
	return m.products, nil
}

func TestListFetchesAndCaches(t *testing.T) {
	ctx := context.Background()
	fetcher := &mockFetcher{products: []domain.Product{{ID: 1, Name: "Monstera", Price: 590}}}
	svc := NewService(logging.New(), fetcher, kv.NewMemoryStore())

	got, err := svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 1)

	// second call is served from cache
	got, err = svc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, got, 1)
	assert.Equal(t, 1, fetcher.calls)
}

func TestListFallsBackOnFetchError(t *testing.T) {
	ctx := context.Background()
	fetcher := &mockFetcher{err: errors.New("backend down")}
	svc := NewService(logging.New(), fetcher, kv.NewMemoryStore())

	got, err := svc.List(ctx)
	require.NoError(t, err)
	assert.NotEmpty(t, got, "fallback catalog must never be empty")
	assert.Equal(t, FallbackCatalog(), got)
}

func TestFallbackNotCached(t *testing.T) {
	ctx := context.Background()
	fetcher := &mockFetcher{err: errors.New("backend down")}
	svc := NewService(logging.New(), fetcher, kv.NewMemoryStore())

	_, err := svc.List(ctx)
	require.NoError(t, err)

	// once the backend recovers the next List picks up live data
	fetcher.mu.Lock()
	fetcher.err = nil
	fetcher.products = []domain.Product{{ID: 9, Name: "Spider Plant", Price: 190}}
	fetcher.mu.Unlock()

	got, err := svc.List(ctx)
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(9), got[0].ID)
}

func TestSearchAppliesFilterAndSort(t *testing.T) {
	ctx := context.Background()
	fetcher := &mockFetcher{products: []domain.Product{
		{ID: 1, Name: "Monstera", Price: 590},
		{ID: 2, Name: "Snake Plant", Price: 350},
		{ID: 3, Name: "Spider Plant", Price: 190},
	}}
	svc := NewService(logging.New(), fetcher, kv.NewMemoryStore())

	got, err := svc.Search(ctx, "plant", domain.SortPriceAscending)
	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(3), got[0].ID)
	assert.Equal(t, int64(2), got[1].ID)
}

func TestFallbackCatalogCopiesAreIndependent(t *testing.T) {
	a := FallbackCatalog()
	require.NotEmpty(t, a)
	a[0].Name = "mutated"
	b := FallbackCatalog()
	assert.NotEqual(t, "mutated", b[0].Name)
}
