package db

import (
	"context"
	"sync"

	"github.com/mithrel/minid/pkg/minid"
)

type memStore struct {
	mu   sync.RWMutex
	byID map[minid.ID]Record
}

func newMemStore() *memStore {
	return &memStore{byID: make(map[minid.ID]Record)}
}

func (m *memStore) Put(ctx context.Context, recs ...Record) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	seen := make(map[minid.ID]struct{}, len(recs))
	for _, r := range recs {
		if _, ok := m.byID[r.ID]; ok {
			return ErrDuplicate
		}
		if _, ok := seen[r.ID]; ok {
			return ErrDuplicate
		}
		seen[r.ID] = struct{}{}
	}
	for _, r := range recs {
		m.byID[r.ID] = r
	}
	return nil
}

func (m *memStore) Get(ctx context.Context, id minid.ID) (Record, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	r, ok := m.byID[id]
	if !ok {
		return Record{}, ErrNotFound
	}
	return r, nil
}

func (m *memStore) List(ctx context.Context, opts ListOptions) ([]Record, error) {
	m.mu.RLock()
	out := make([]Record, 0, len(m.byID))
	for _, r := range m.byID {
		out = append(out, r)
	}
	m.mu.RUnlock()
	return finish(out, opts), nil
}

func (m *memStore) Close() error { return nil }
