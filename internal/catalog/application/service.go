package application

import (
	"context"
	"log/slog"
	"math/rand"
	"time"

	"golang.org/x/sync/singleflight"

	"github.com/bloomshop/storefront/internal/catalog/domain"
	"github.com/bloomshop/storefront/internal/kv"
)

const (
	cacheKey     = "catalog:products"
	cacheBaseTTL = 15 * time.Minute
)

// Fetcher is the remote catalog port.
type Fetcher interface {
	FetchProducts(ctx context.Context) ([]domain.Product, error)
}

type Service struct {
	log     *slog.Logger
	fetcher Fetcher
	cache   kv.Store
	sfg     singleflight.Group
}

func NewService(log *slog.Logger, fetcher Fetcher, cache kv.Store) *Service {
	return &Service{log: log, fetcher: fetcher, cache: cache}
}

// List returns the catalog: cached copy if present, otherwise a remote
// fetch collapsed through singleflight. A failed fetch degrades to the
// bundled fallback catalog so browsing never renders empty.
func (s *Service) List(ctx context.Context) ([]domain.Product, error) {
	var cached []domain.Product
	ok, err := kv.GetJSON(ctx, s.cache, cacheKey, &cached)
	if err != nil {
		s.log.Error("catalog cache get failed", "err", err)
	}
	if ok && len(cached) > 0 {
		return cached, nil
	}

	v, err, _ := s.sfg.Do(cacheKey, func() (any, error) {
		products, err := s.fetcher.FetchProducts(ctx)
		if err != nil {
			s.log.Warn("catalog fetch failed, using fallback", "err", err)
			return FallbackCatalog(), nil
		}
		ttl := cacheBaseTTL + time.Duration(rand.Intn(5))*time.Minute
		if err := kv.SetJSON(ctx, s.cache, cacheKey, products, ttl); err != nil {
			s.log.Error("catalog cache set failed", "err", err)
		}
		return products, nil
	})
	if err != nil {
		return nil, err
	}
	return v.([]domain.Product), nil
}

// Search applies the filter/sort transform on top of List.
func (s *Service) Search(ctx context.Context, term string, mode domain.SortMode) ([]domain.Product, error) {
	products, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return domain.FilterSort(products, term, mode), nil
}

// Index returns the id -> product lookup for the current catalog.
func (s *Service) Index(ctx context.Context) (map[int64]domain.Product, error) {
	products, err := s.List(ctx)
	if err != nil {
		return nil, err
	}
	return domain.PriceIndex(products), nil
}
