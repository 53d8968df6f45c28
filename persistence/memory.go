package persistence

import (
	"context"
	"sync"
)

// MemoryProvider is a map-backed provider for tests and ephemeral
// runs. Snapshots do not survive a restart of the process.
type MemoryProvider struct {
	mu sync.RWMutex
	m  map[string][]byte
}

func NewMemoryProvider() *MemoryProvider {
	return &MemoryProvider{m: make(map[string][]byte)}
}

func (p *MemoryProvider) Load(_ context.Context, key string) ([]byte, bool, error) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	value, ok := p.m[key]
	if !ok {
		return nil, false, nil
	}
	out := make([]byte, len(value))
	copy(out, value)
	return out, true, nil
}

func (p *MemoryProvider) Save(_ context.Context, key string, value []byte) error {
	p.mu.Lock()
	defer p.mu.Unlock()
	stored := make([]byte, len(value))
	copy(stored, value)
	p.m[key] = stored
	return nil
}
