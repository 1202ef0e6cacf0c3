package database

import "sync"

// MemorySlotStore keeps slots in process memory. It backs tests and ephemeral
// runs where no database is configured; contents are lost on restart.
type MemorySlotStore struct {
	mu    sync.RWMutex
	slots map[string][]byte
}

func NewMemorySlotStore() *MemorySlotStore {
	return &MemorySlotStore{slots: make(map[string][]byte)}
}

func (s *MemorySlotStore) Load(key string) ([]byte, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	value, ok := s.slots[key]
	if !ok {
		return nil, nil
	}
	copied := make([]byte, len(value))
	copy(copied, value)
	return copied, nil
}

func (s *MemorySlotStore) Save(key string, value []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	copied := make([]byte, len(value))
	copy(copied, value)
	s.slots[key] = copied
	return nil
}

func (s *MemorySlotStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.slots, key)
	return nil
}
