package session

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/finance-tracker/client/internal/application/adapter"
)

// RedisTokenStore persists the credential under a single Redis key.
type RedisTokenStore struct {
	client *redis.Client
	key    string
}

var _ adapter.TokenStore = (*RedisTokenStore)(nil)

// NewRedisTokenStore creates a new Redis-backed token store.
func NewRedisTokenStore(client *redis.Client, key string) *RedisTokenStore {
	return &RedisTokenStore{
		client: client,
		key:    key,
	}
}

// Load returns the stored credential.
func (s *RedisTokenStore) Load(ctx context.Context) (string, bool, error) {
	token, err := s.client.Get(ctx, s.key).Result()
	if errors.Is(err, redis.Nil) {
		return "", false, nil
	}
	if err != nil {
		return "", false, fmt.Errorf("failed to read token: %w", err)
	}
	return token, true, nil
}

// Save stores the credential. JWTs expire from Redis together with their
// exp claim.
func (s *RedisTokenStore) Save(ctx context.Context, token string) error {
	var ttl time.Duration
	if expiresAt, ok := ExpiresAt(token); ok {
		ttl = time.Until(expiresAt)
		if ttl <= 0 {
			return s.Clear(ctx)
		}
	}

	if err := s.client.Set(ctx, s.key, token, ttl).Err(); err != nil {
		return fmt.Errorf("failed to write token: %w", err)
	}
	return nil
}

// Clear removes the stored credential.
func (s *RedisTokenStore) Clear(ctx context.Context) error {
	if err := s.client.Del(ctx, s.key).Err(); err != nil {
		return fmt.Errorf("failed to delete token: %w", err)
	}
	return nil
}

// MemoryTokenStore keeps the credential in process memory.
type MemoryTokenStore struct {
	mu    sync.Mutex
	token string
}

var _ adapter.TokenStore = (*MemoryTokenStore)(nil)

// Load returns the stored credential.
func (s *MemoryTokenStore) Load(ctx context.Context) (string, bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.token, s.token != "", nil
}

// Save stores the credential.
func (s *MemoryTokenStore) Save(ctx context.Context, token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	return nil
}

// Clear removes the stored credential.
func (s *MemoryTokenStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	return nil
}
