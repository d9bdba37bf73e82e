package cache

import (
	"strconv"
	"time"

	"github.com/viccon/sturdyc"
)

// DefaultTTL bounds the staleness of cached reads. Mutations invalidate their
// entity's key explicitly, but a concurrent read may repopulate a key with
// stale data; the TTL is the stated upper bound on how long that can last.
const DefaultTTL = 10 * time.Minute

const (
	defaultCapacity    = 10000
	numShards          = 64
	evictionPercentage = 10
)

// Store is a bounded key-value cache with TTL eviction, keyed per entity id.
// Entries are set and removed atomically per key; there is no cross-key
// coordination.
type Store[T any] interface {
	Get(key string) (T, bool)
	Set(key string, value T)
	Delete(key string)
}

// sturdycStore adapts a sturdyc client to the Store interface.
type sturdycStore[T any] struct {
	client *sturdyc.Client[T]
}

// New creates an in-memory Store with the given capacity and TTL.
func New[T any](capacity int, ttl time.Duration) Store[T] {
	if capacity <= 0 {
		capacity = defaultCapacity
	}
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &sturdycStore[T]{
		client: sturdyc.New[T](capacity, numShards, ttl, evictionPercentage),
	}
}

func (s *sturdycStore[T]) Get(key string) (T, bool) {
	return s.client.Get(key)
}

func (s *sturdycStore[T]) Set(key string, value T) {
	s.client.Set(key, value)
}

func (s *sturdycStore[T]) Delete(key string) {
	s.client.Delete(key)
}

// ProductKey is the cache key for a product id.
func ProductKey(productID int64) string {
	return "Product_" + strconv.FormatInt(productID, 10)
}

// UserDetailsKey is the cache key for a user's detail projection.
func UserDetailsKey(userID string) string {
	return "UserDetails_" + userID
}
