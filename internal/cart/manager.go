package cart

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"nexus-storefront/internal/storage"
)

// Manager hands out one Store per shopper session, lazily created and
// initialized from the mirror on first use. Mirrors are namespaced under
// prefix so sessions never read each other's state.
type Manager struct {
	mu     sync.Mutex
	stores map[string]*Store
	kv     storage.KV
	prefix string
	log    zerolog.Logger
}

func NewManager(kv storage.KV, prefix string, log zerolog.Logger) *Manager {
	return &Manager{
		stores: make(map[string]*Store),
		kv:     kv,
		prefix: prefix,
		log:    log,
	}
}

// Store returns the cart store for sessionID, creating and initializing it
// on first use.
func (m *Manager) Store(ctx context.Context, sessionID string) *Store {
	m.mu.Lock()
	defer m.mu.Unlock()
	if s, ok := m.stores[sessionID]; ok {
		return s
	}
	s := New(m.kv, m.prefix+":"+sessionID, m.log)
	s.Initialize(ctx)
	m.stores[sessionID] = s
	return s
}

// Drop forgets the in-memory store for a session. The mirror is left alone;
// a later Store call re-initializes from it.
func (m *Manager) Drop(sessionID string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.stores, sessionID)
}
