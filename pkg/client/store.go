package client

import (
	"context"
	"net/http"
	"net/url"
	"sync"
)

// Entity is anything addressed by uuid. Every model satisfies it.
type Entity interface {
	GetUUID() string
}

// Store caches one resource's list. Readers get copies; the cache only
// changes through Fetch, the write methods and Invalidate.
type Store[T Entity] struct {
	client *Client
	path   string

	mu     sync.RWMutex
	items  []T
	loaded bool
}

// NewStore binds a store to a resource path such as "/api/uoms".
func NewStore[T Entity](c *Client, path string) *Store[T] {
	return &Store[T]{client: c, path: path}
}

// Fetch loads the list for scope (query parameters, may be nil) and replaces
// the cache with it.
func (s *Store[T]) Fetch(ctx context.Context, scope map[string]string) ([]T, error) {
	var list []T
	if err := s.client.do(ctx, http.MethodGet, s.path, scope, nil, &list); err != nil {
		return nil, err
	}
	if list == nil {
		list = []T{}
	}

	s.mu.Lock()
	s.items = list
	s.loaded = true
	s.mu.Unlock()
	return s.Items(), nil
}

// Items returns a copy of the cached list.
func (s *Store[T]) Items() []T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]T, len(s.items))
	copy(out, s.items)
	return out
}

// Loaded reports whether the cache holds a fetched list.
func (s *Store[T]) Loaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

func (s *Store[T]) Get(ctx context.Context, id string) (*T, error) {
	var item T
	if err := s.client.do(ctx, http.MethodGet, s.itemPath(id), nil, nil, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// Create posts body and prepends the created row to the cache.
func (s *Store[T]) Create(ctx context.Context, body interface{}) (*T, error) {
	var item T
	if err := s.client.do(ctx, http.MethodPost, s.path, nil, body, &item); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.items = append([]T{item}, s.items...)
	s.mu.Unlock()
	return &item, nil
}

// Update replaces the row and swaps it in place in the cache.
func (s *Store[T]) Update(ctx context.Context, id string, body interface{}) (*T, error) {
	var item T
	if err := s.client.do(ctx, http.MethodPut, s.itemPath(id), nil, body, &item); err != nil {
		return nil, err
	}

	s.mu.Lock()
	for i := range s.items {
		if s.items[i].GetUUID() == id {
			s.items[i] = item
			break
		}
	}
	s.mu.Unlock()
	return &item, nil
}

// Delete removes the row on the server, then from the cache.
func (s *Store[T]) Delete(ctx context.Context, id string) error {
	if err := s.client.do(ctx, http.MethodDelete, s.itemPath(id), nil, nil, nil); err != nil {
		return err
	}

	s.mu.Lock()
	kept := s.items[:0]
	for _, it := range s.items {
		if it.GetUUID() != id {
			kept = append(kept, it)
		}
	}
	s.items = kept
	s.mu.Unlock()
	return nil
}

// Invalidate drops the cache; the next reader should Fetch.
func (s *Store[T]) Invalidate() {
	s.mu.Lock()
	s.items = nil
	s.loaded = false
	s.mu.Unlock()
}

func (s *Store[T]) itemPath(id string) string {
	return s.path + "/" + url.PathEscape(id)
}
