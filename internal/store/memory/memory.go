// Package memory provides an in-process Store used by tests and local runs.
package memory

import (
	"context"
	"sort"
	"sync"

	"github.com/fekuna/omnipos-menu-service/internal/store"
	"github.com/google/uuid"
)

type Store struct {
	mu          sync.RWMutex
	collections map[string]map[string]map[string]string
}

func New() *Store {
	return &Store{collections: make(map[string]map[string]map[string]string)}
}

func (s *Store) Get(ctx context.Context, collection, id string) (store.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	fields, ok := s.collections[collection][id]
	if !ok {
		return store.Document{}, store.ErrNotFound
	}
	return store.Document{ID: id, Fields: clone(fields)}, nil
}

func (s *Store) List(ctx context.Context, collection, orderBy string, cursor store.Cursor, limit int) ([]store.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	docs := s.sorted(collection, orderBy)

	start := 0
	if !cursor.Zero() {
		value, id := cursor.Position()
		for i, d := range docs {
			if d.Fields[orderBy] > value || (d.Fields[orderBy] == value && d.ID > id) {
				break
			}
			start = i + 1
		}
	}

	end := len(docs)
	if limit > 0 && start+limit < end {
		end = start + limit
	}
	if start >= len(docs) {
		return nil, nil
	}
	return docs[start:end], nil
}

func (s *Store) Query(ctx context.Context, collection string, filters map[string]string) ([]store.Document, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	var out []store.Document
	for _, d := range s.sorted(collection, "") {
		match := true
		for k, v := range filters {
			if d.Fields[k] != v {
				match = false
				break
			}
		}
		if match {
			out = append(out, d)
		}
	}
	return out, nil
}

func (s *Store) Insert(ctx context.Context, collection string, fields map[string]string) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.collections[collection] == nil {
		s.collections[collection] = make(map[string]map[string]string)
	}
	id := uuid.New().String()
	s.collections[collection][id] = clone(fields)
	return id, nil
}

func (s *Store) Replace(ctx context.Context, collection, id string, fields map[string]string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.collections[collection][id]; !ok {
		return store.ErrNotFound
	}
	s.collections[collection][id] = clone(fields)
	return nil
}

func (s *Store) Remove(ctx context.Context, collection, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.collections[collection], id)
	return nil
}

// sorted snapshots a collection ordered by (orderBy value, id). An empty
// orderBy sorts by id alone.
func (s *Store) sorted(collection, orderBy string) []store.Document {
	col := s.collections[collection]
	docs := make([]store.Document, 0, len(col))
	for id, fields := range col {
		docs = append(docs, store.Document{ID: id, Fields: clone(fields)})
	}
	sort.Slice(docs, func(i, j int) bool {
		if orderBy != "" && docs[i].Fields[orderBy] != docs[j].Fields[orderBy] {
			return docs[i].Fields[orderBy] < docs[j].Fields[orderBy]
		}
		return docs[i].ID < docs[j].ID
	})
	return docs
}

func clone(m map[string]string) map[string]string {
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}
