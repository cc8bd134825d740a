package session

import "sync"

// Store holds the single bearer credential for the lifetime of the process.
// It is created in main and injected into the API client; nothing is ever
// persisted to disk. Absence of a credential means "not logged in".
type Store interface {
	Set(token string)
	Get() (string, bool)
	Clear()
}

// MemoryStore 内存凭证存储（进程生命周期内有效）
type MemoryStore struct {
	mu    sync.RWMutex
	token string
}

func NewMemoryStore() *MemoryStore { return &MemoryStore{} }

func (s *MemoryStore) Set(token string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
}

func (s *MemoryStore) Get() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.token == "" {
		return "", false
	}
	return s.token, true
}

func (s *MemoryStore) Clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
}
