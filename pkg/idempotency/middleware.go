package idempotency

import (
	"context"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// Store is a short-TTL duplicate guard backed by redis SetNX. The
// checkout flow uses it to reject a second payment submission while one
// is still in flight for the same session.
type Store struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewStore(rdb *redis.Client, ttl time.Duration) *Store {
	return &Store{rdb: rdb, ttl: ttl}
}

// PaymentKey scopes the guard to one session's payment submission.
func PaymentKey(sessionID string) string {
	return fmt.Sprintf("idem:pay:%s", sessionID)
}

// Acquire claims the key. It returns false when another holder already
// claimed it inside the TTL window.
func (s *Store) Acquire(ctx context.Context, key string) (bool, error) {
	ok, err := s.rdb.SetNX(ctx, key, "1", s.ttl).Result()
	if err != nil {
		return false, err
	}
	return ok, nil
}

// Release frees the key early so a failed submission can be retried
// without waiting out the TTL.
func (s *Store) Release(ctx context.Context, key string) error {
	return s.rdb.Del(ctx, key).Err()
}
