package application

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bloomshop/storefront/internal/cart/domain"
	"github.com/bloomshop/storefront/internal/kv"
	"github.com/bloomshop/storefront/pkg/logging"
)

const session = "sess-1"

func newService() (*Service, *kv.MemoryStore) {
	store := kv.NewMemoryStore()
	return NewService(logging.New(), store), store
}

func TestGetMissingYieldsEmptyCart(t *testing.T) {
	svc, _ := newService()
	c, err := svc.Get(context.Background(), session)
	require.NoError(t, err)
	assert.Empty(t, c)
}

func TestGetCorruptValueYieldsEmptyCart(t *testing.T) {
	ctx := context.Background()
	svc, store := newService()
	require.NoError(t, store.Set(ctx, "cart:"+session, []byte("][ not json"), 0))

	c, err := svc.Get(ctx, session)
	require.NoError(t, err)
	assert.Empty(t, c)
}

func TestMutationsPersistAcrossRestores(t *testing.T) {
	ctx := context.Background()
	svc, store := newService()

	_, err := svc.Add(ctx, session, 1)
	require.NoError(t, err)
	c, err := svc.Add(ctx, session, 1)
	require.NoError(t, err)
	assert.Equal(t, domain.Cart{1: 2}, c)

	// a fresh service over the same store sees the persisted cart
	restored := NewService(logging.New(), store)
	c, err = restored.Get(ctx, session)
	require.NoError(t, err)
	assert.Equal(t, domain.Cart{1: 2}, c)
}

func TestChangeQuantityRemovesAtFloor(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService()

	_, err := svc.Add(ctx, session, 7)
	require.NoError(t, err)
	c, err := svc.ChangeQuantity(ctx, session, 7, -1)
	require.NoError(t, err)
	assert.Empty(t, c)
}

func TestSetQuantityClampsInvalidInput(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService()

	c, err := svc.SetQuantity(ctx, session, 3, -4)
	require.NoError(t, err)
	assert.Equal(t, domain.Cart{3: 1}, c)
}

func TestClearEmptiesStore(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService()

	_, err := svc.Add(ctx, session, 1)
	require.NoError(t, err)
	require.NoError(t, svc.Clear(ctx, session))

	c, err := svc.Get(ctx, session)
	require.NoError(t, err)
	assert.Empty(t, c)
}

func TestSessionsAreIsolated(t *testing.T) {
	ctx := context.Background()
	svc, _ := newService()

	_, err := svc.Add(ctx, "a", 1)
	require.NoError(t, err)
	c, err := svc.Get(ctx, "b")
	require.NoError(t, err)
	assert.Empty(t, c)
}

func TestRestoreDropsSubOneQuantities(t *testing.T) {
	ctx := context.Background()
	svc, store := newService()
	require.NoError(t, store.Set(ctx, "cart:"+session, []byte(`{"1":0,"2":3,"5":-2}`), 0))

	c, err := svc.Get(ctx, session)
	require.NoError(t, err)
	assert.Equal(t, domain.Cart{2: 3}, c)
}
