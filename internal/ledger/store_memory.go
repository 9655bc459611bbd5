package ledger

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"academy/pkg/domain"
)

// MemoryStore keeps accounts in memory. It backs tests and single-node
// deployments where the relay owns the whole ledger.
type MemoryStore struct {
	mu       sync.RWMutex
	accounts map[domain.Address]Record
}

// NewMemoryStore constructs an empty in-memory account store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{accounts: make(map[domain.Address]Record)}
}

func (s *MemoryStore) Get(_ context.Context, addr domain.Address) (Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	rec, ok := s.accounts[addr]
	if !ok {
		return Record{}, fmt.Errorf("get %s: %w", addr, ErrNotFound)
	}
	return cloneRecord(rec), nil
}

func (s *MemoryStore) Put(_ context.Context, rec Record) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accounts[rec.Address] = cloneRecord(rec)
	return nil
}

func (s *MemoryStore) Delete(_ context.Context, addr domain.Address) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.accounts[addr]; !ok {
		return fmt.Errorf("delete %s: %w", addr, ErrNotFound)
	}
	delete(s.accounts, addr)
	return nil
}

func (s *MemoryStore) ListByKind(_ context.Context, kind Kind) ([]Record, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []Record
	for _, rec := range s.accounts {
		if rec.Kind == kind {
			out = append(out, cloneRecord(rec))
		}
	}
	// Stable order for deterministic reads.
	sort.Slice(out, func(i, j int) bool { return out[i].Address.Less(out[j].Address) })
	return out, nil
}

// cloneRecord keeps callers from aliasing stored payload bytes.
func cloneRecord(rec Record) Record {
	data := make([]byte, len(rec.Data))
	copy(data, rec.Data)
	rec.Data = data
	return rec
}
