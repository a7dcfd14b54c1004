package ledger

import "sync"

// KV is the raw key-value abstraction the ledger store is built on.
// Implementations must support point lookups; absent keys are reported via
// the found flag, never as an error.
type KV interface {
	Get(key []byte) (value []byte, found bool, err error)
	Put(key, value []byte) error
	Close() error
}

// MemoryKV is an in-process KV used for tests and ephemeral deployments.
type MemoryKV struct {
	mu   sync.RWMutex
	data map[string][]byte
}

// NewMemoryKV creates an empty in-memory KV.
func NewMemoryKV() *MemoryKV {
	return &MemoryKV{data: make(map[string][]byte)}
}

// Get returns the value stored under key.
func (m *MemoryKV) Get(key []byte) ([]byte, bool, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	v, ok := m.data[string(key)]
	if !ok {
		return nil, false, nil
	}
	cp := make([]byte, len(v))
	copy(cp, v)
	return cp, true, nil
}

// Put stores value under key, overwriting any existing value.
func (m *MemoryKV) Put(key, value []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	cp := make([]byte, len(value))
	copy(cp, value)
	m.data[string(key)] = cp
	return nil
}

// Close releases the map.
func (m *MemoryKV) Close() error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.data = nil
	return nil
}
