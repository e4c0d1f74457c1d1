package preferences

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"

	goredis "github.com/redis/go-redis/v9"

	"github.com/visitgeorgia/transfers/pkg/redis"
)

// Store persists per-client preferences. Load returns the defaults
// when no record exists for the client.
type Store interface {
	Load(ctx context.Context, clientID string) (Preferences, error)
	Save(ctx context.Context, clientID string, p Preferences) error
}

func storeKey(clientID string) string {
	return "preferences:" + clientID
}

// RedisStore keeps preferences in Redis as JSON, one key per client.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Load(ctx context.Context, clientID string) (Preferences, error) {
	raw, err := s.client.GetString(ctx, storeKey(clientID))
	if errors.Is(err, goredis.Nil) {
		return Defaults(), nil
	}
	if err != nil {
		return Preferences{}, fmt.Errorf("load preferences: %w", err)
	}

	var p Preferences
	if err := json.Unmarshal([]byte(raw), &p); err != nil {
		return Defaults(), nil
	}
	return p.Normalize(), nil
}

func (s *RedisStore) Save(ctx context.Context, clientID string, p Preferences) error {
	raw, err := json.Marshal(p.Normalize())
	if err != nil {
		return fmt.Errorf("marshal preferences: %w", err)
	}
	if err := s.client.SetString(ctx, storeKey(clientID), string(raw)); err != nil {
		return fmt.Errorf("save preferences: %w", err)
	}
	return nil
}

// MemoryStore is the fallback when Redis is not configured. Contents
// do not survive a restart.
type MemoryStore struct {
	mu   sync.RWMutex
	data map[string]Preferences
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]Preferences)}
}

func (s *MemoryStore) Load(_ context.Context, clientID string) (Preferences, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if p, ok := s.data[clientID]; ok {
		return p.Normalize(), nil
	}
	return Defaults(), nil
}

func (s *MemoryStore) Save(_ context.Context, clientID string, p Preferences) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data[clientID] = p.Normalize()
	return nil
}
