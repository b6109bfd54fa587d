package economy

import "sync"

// Store persists named integer balances.
type Store interface {
	LoadBalance(key string) (int, bool, error)
	SaveBalance(key string, v int) error
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: map[string]int{}}
}

// MemoryStore keeps balances for the lifetime of the process.
type MemoryStore struct {
	mtx    sync.Mutex
	values map[string]int
}

func (s *MemoryStore) LoadBalance(key string) (int, bool, error) {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	v, ok := s.values[key]
	return v, ok, nil
}

func (s *MemoryStore) SaveBalance(key string, v int) error {
	s.mtx.Lock()
	defer s.mtx.Unlock()
	s.values[key] = v
	return nil
}
