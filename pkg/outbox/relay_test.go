package outbox

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/segmentio/kafka-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bloomshop/storefront/pkg/logging"
)

type mockStore struct {
	mu      sync.Mutex
	pending []Event
	sent    []int64
	failed  []int64
}

func (m *mockStore) LockBatch(_ context.Context, _ string, _ int, _ time.Duration) ([]Event, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := m.pending
	m.pending = nil
	return out, nil
}

func (m *mockStore) MarkSent(_ context.Context, ids []int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, ids...)
	return nil
}

func (m *mockStore) MarkFailed(_ context.Context, id int64, _ string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failed = append(m.failed, id)
	return nil
}

func (m *mockStore) ExtendLease(context.Context, string, []int64, time.Duration) error {
	return nil
}

type mockProducer struct {
	mu       sync.Mutex
	messages []kafka.Message
	err      error
}

func (m *mockProducer) WriteMessages(_ context.Context, msgs ...kafka.Message) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.err != nil {
		return m.err
	}
	m.messages = append(m.messages, msgs...)
	return nil
}

func TestDispatcherBuildsMessage(t *testing.T) {
	producer := &mockProducer{}
	d := NewDispatcher(logging.New(), producer, "storefront.order.events")

	err := d.Dispatch(context.Background(), Event{
		ID:          1,
		AggregateID: "order-1",
		Type:        "OrderConfirmed",
		Payload:     []byte(`{}`),
		Traceparent: "00-abc-def-01",
	})
	require.NoError(t, err)
	require.Len(t, producer.messages, 1)

	msg := producer.messages[0]
	assert.Equal(t, "storefront.order.events", msg.Topic)
	assert.Equal(t, []byte("order-1"), msg.Key)
	require.Len(t, msg.Headers, 2)
	assert.Equal(t, "event_type", msg.Headers[0].Key)
	assert.Equal(t, "traceparent", msg.Headers[1].Key)
}

func TestRelayMarksSentAndFailed(t *testing.T) {
	store := &mockStore{pending: []Event{
		{ID: 1, AggregateID: "a", Type: "OrderConfirmed", Payload: []byte(`{}`)},
		{ID: 2, AggregateID: "b", Type: "OrderConfirmed", Payload: []byte(`{}`)},
	}}
	producer := &mockProducer{}
	relay := NewRelay(logging.New(), store, NewDispatcher(logging.New(), producer, "t"), "test-relay")
	relay.interval = 5 * time.Millisecond

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	require.NoError(t, relay.Run(ctx))

	store.mu.Lock()
	defer store.mu.Unlock()
	assert.ElementsMatch(t, []int64{1, 2}, store.sent)
	assert.Empty(t, store.failed)
}

func TestRelayMarksFailedOnProducerError(t *testing.T) {
	store := &mockStore{pending: []Event{{ID: 7, AggregateID: "a", Type: "OrderConfirmed"}}}
	producer := &mockProducer{err: errors.New("broker down")}
	relay := NewRelay(logging.New(), store, NewDispatcher(logging.New(), producer, "t"), "test-relay")
	relay.interval = 5 * time.Millisecond

	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()
	require.NoError(t, relay.Run(ctx))

	store.mu.Lock()
	defer store.mu.Unlock()
	assert.Equal(t, []int64{7}, store.failed)
	assert.Empty(t, store.sent)
}
