package cache

import (
	"context"
	"sync"
	"time"

	"github.com/JulianoL13/identity-verify-sdk/internal/common/graphql"
)

const defaultTTL = 15 * time.Minute

type entry struct {
	payload   []byte
	expiresAt time.Time
}

// Memory is the zero-infrastructure default store.
type Memory struct {
	mu      sync.Mutex
	entries map[string]entry
	ttl     time.Duration
}

func NewMemory() *Memory {
	return &Memory{
		entries: make(map[string]entry),
		ttl:     defaultTTL,
	}
}

func (m *Memory) WithTTL(ttl time.Duration) *Memory {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.ttl = ttl
	return m
}

func (m *Memory) Get(ctx context.Context, key string) ([]byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.entries[key]
	if !ok {
		return nil, graphql.ErrCacheMiss
	}
	if time.Now().After(e.expiresAt) {
		delete(m.entries, key)
		return nil, graphql.ErrCacheMiss
	}

	payload := make([]byte, len(e.payload))
	copy(payload, e.payload)
	return payload, nil
}

func (m *Memory) Set(ctx context.Context, key string, payload []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	stored := make([]byte, len(payload))
	copy(stored, payload)
	m.entries[key] = entry{
		payload:   stored,
		expiresAt: time.Now().Add(m.ttl),
	}
	return nil
}

func (m *Memory) Flush(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.entries = make(map[string]entry)
	return nil
}

var _ Store = (*Memory)(nil)
