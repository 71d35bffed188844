// internal/domain/cart/repository.go
package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrNotFound signals that no cart blob exists for the session
var ErrNotFound = errors.New("cart not found")

// Repository persists each session's cart as one opaque serialized blob under
// a fixed key. The whole collection is small and rewritten atomically on every
// mutation; last write wins.
type Repository interface {
	Load(ctx context.Context, sessionID string) ([]LineItem, error)
	Save(ctx context.Context, sessionID string, items []LineItem) error
	Delete(ctx context.Context, sessionID string) error
}

// cartTTL keeps abandoned carts around for a month before Redis expires them
const cartTTL = 30 * 24 * time.Hour

// RedisRepository stores cart blobs in Redis
type RedisRepository struct {
	client *redis.Client
}

// NewRedisRepository creates a Redis-backed cart repository
func NewRedisRepository(client *redis.Client) *RedisRepository {
	return &RedisRepository{client: client}
}

func cartKey(sessionID string) string {
	return fmt.Sprintf("cart:session:%s", sessionID)
}

// Load reads and decodes the cart blob for a session
func (r *RedisRepository) Load(ctx context.Context, sessionID string) ([]LineItem, error) {
	data, err := r.client.Get(ctx, cartKey(sessionID)).Result()
	if err == redis.Nil {
		return nil, ErrNotFound
	} else if err != nil {
		return nil, fmt.Errorf("failed to load cart: %w", err)
	}

	var items []LineItem
	if err := json.Unmarshal([]byte(data), &items); err != nil {
		return nil, fmt.Errorf("failed to decode cart blob: %w", err)
	}

	return items, nil
}

// Save re-serializes the whole cart and overwrites the session's blob
func (r *RedisRepository) Save(ctx context.Context, sessionID string, items []LineItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}

	if err := r.client.Set(ctx, cartKey(sessionID), data, cartTTL).Err(); err != nil {
		return fmt.Errorf("failed to save cart: %w", err)
	}

	return nil
}

// Delete removes the session's cart blob
func (r *RedisRepository) Delete(ctx context.Context, sessionID string) error {
	if err := r.client.Del(ctx, cartKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to delete cart: %w", err)
	}
	return nil
}

// MemoryRepository keeps cart blobs in process memory. It round-trips items
// through JSON exactly like the Redis repository so serialization behavior is
// identical; used in tests and local development without Redis.
type MemoryRepository struct {
	mu    sync.Mutex
	blobs map[string][]byte
}

// NewMemoryRepository creates an in-memory cart repository
func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{blobs: make(map[string][]byte)}
}

// Load decodes the stored blob for a session
func (m *MemoryRepository) Load(ctx context.Context, sessionID string) ([]LineItem, error) {
	m.mu.Lock()
	data, ok := m.blobs[sessionID]
	m.mu.Unlock()

	if !ok {
		return nil, ErrNotFound
	}

	var items []LineItem
	if err := json.Unmarshal(data, &items); err != nil {
		return nil, fmt.Errorf("failed to decode cart blob: %w", err)
	}

	return items, nil
}

// Save overwrites the session's blob
func (m *MemoryRepository) Save(ctx context.Context, sessionID string, items []LineItem) error {
	data, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}

	m.mu.Lock()
	m.blobs[sessionID] = data
	m.mu.Unlock()
	return nil
}

// Delete removes the session's blob
func (m *MemoryRepository) Delete(ctx context.Context, sessionID string) error {
	m.mu.Lock()
	delete(m.blobs, sessionID)
	m.mu.Unlock()
	return nil
}

// Corrupt overwrites a session's blob with bytes that will not decode.
// Test hook for the hydration-failure path.
func (m *MemoryRepository) Corrupt(sessionID string, data []byte) {
	m.mu.Lock()
	m.blobs[sessionID] = data
	m.mu.Unlock()
}
