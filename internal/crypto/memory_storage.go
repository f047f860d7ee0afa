package crypto

import "sync"

// MemoryStorage is a process-scoped [VolatileStorage]. Its contents vanish
// with the process, which is the CLI equivalent of a browser tab.
type MemoryStorage struct {
	mu    sync.RWMutex
	items map[string]string
}

func NewMemoryStorage() *MemoryStorage {
	return &MemoryStorage{items: make(map[string]string)}
}

// Get returns the value stored under key and whether it was present.
func (s *MemoryStorage) Get(key string) (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	v, ok := s.items[key]
	return v, ok
}

// Set stores value under key, replacing any previous value.
func (s *MemoryStorage) Set(key, value string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items[key] = value
}

// Remove deletes key. Removing a missing key is a no-op.
func (s *MemoryStorage) Remove(key string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.items, key)
}
