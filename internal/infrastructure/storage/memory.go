package storage

import "sync"

var _ Store = (*MemoryStore)(nil)

// MemoryStore almacén en memoria. Se usa en tests y como modo efímero
// (STORAGE_DRIVER=memory). Con MaxBytes > 0 simula la cuota del medio,
// lo que permite ejercitar el camino de "almacenamiento lleno".
type MemoryStore struct {
	mu       sync.RWMutex
	data     map[string]string
	maxBytes int
	closed   bool
}

// NewMemoryStore construye el almacén sin límite de tamaño.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: map[string]string{}}
}

// NewMemoryStoreWithQuota construye el almacén con una cuota en bytes sobre
// la suma de claves y valores.
func NewMemoryStoreWithQuota(maxBytes int) *MemoryStore {
	return &MemoryStore{data: map[string]string{}, maxBytes: maxBytes}
}

// Get devuelve el blob o ErrKeyNotFound.
func (s *MemoryStore) Get(key string) (string, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.data[key]
	if !ok {
		return "", ErrKeyNotFound
	}
	return v, nil
}

// Set escribe el blob; ErrQuotaExceeded si la cuota no alcanza.
func (s *MemoryStore) Set(key, value string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.maxBytes > 0 {
		size := len(key) + len(value)
		for k, v := range s.data {
			if k == key {
				continue
			}
			size += len(k) + len(v)
		}
		if size > s.maxBytes {
			return ErrQuotaExceeded
		}
	}
	s.data[key] = value
	return nil
}

// Delete elimina la clave (idempotente).
func (s *MemoryStore) Delete(key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.data, key)
	return nil
}

// Close no libera nada; existe para cumplir Store.
func (s *MemoryStore) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	return nil
}

// Len número de claves almacenadas (para tests).
func (s *MemoryStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.data)
}
