// Package store holds the canonical client-side snapshot of one entity
// collection. A Store is a process-lifetime singleton shared by the data
// services, the sync service and any consumer; all mutation goes through
// Set/Upsert/Remove/Patch, which serialize under one mutex and publish a
// fresh snapshot in mutation order. Published slices are never mutated in
// place, so consumers may hold them without copying.
package store

import (
	"sync"

	"github.com/cmu-sei/cite.go/pkg/stream"
)

// Entity is any record addressable by a unique string id.
type Entity interface {
	GetID() string
}

// Store is an observable, id-unique, insertion-ordered collection of T.
type Store[T Entity] struct {
	mu    sync.Mutex
	items []T

	itemsSubject   *stream.Subject[[]T]
	loadingSubject *stream.Subject[bool]
	activeSubject  *stream.Subject[string]
}

func New[T Entity]() *Store[T] {
	return &Store[T]{
		itemsSubject:   stream.NewSubject[[]T](nil),
		loadingSubject: stream.NewSubject(false),
		activeSubject:  stream.NewSubject(""),
	}
}

// Items is the stream of collection snapshots.
func (s *Store[T]) Items() *stream.Subject[[]T] { return s.itemsSubject }

// Loading is true exactly while a full-collection fetch is outstanding.
func (s *Store[T]) Loading() *stream.Subject[bool] { return s.loadingSubject }

// Active is the id of the currently designated record, or "".
func (s *Store[T]) Active() *stream.Subject[string] { return s.activeSubject }

// All returns the current snapshot.
func (s *Store[T]) All() []T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.items
}

// Get returns the record with the given id.
func (s *Store[T]) Get(id string) (T, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, it := range s.items {
		if it.GetID() == id {
			return it, true
		}
	}
	var zero T
	return zero, false
}

// Set replaces the whole collection. Duplicate ids in the input collapse to
// the last occurrence.
func (s *Store[T]) Set(items []T) {
	next := make([]T, 0, len(items))
	seen := make(map[string]int, len(items))
	for _, it := range items {
		if i, ok := seen[it.GetID()]; ok {
			next[i] = it
			continue
		}
		seen[it.GetID()] = len(next)
		next = append(next, it)
	}

	s.mu.Lock()
	s.items = next
	s.mu.Unlock()
	s.itemsSubject.Next(next)
}

// Upsert replaces the record with the given id in place, or appends it when
// absent. The stored record always carries the given id, even if the value
// disagrees.
func (s *Store[T]) Upsert(id string, item T) {
	s.mu.Lock()
	next := make([]T, len(s.items), len(s.items)+1)
	copy(next, s.items)
	found := false
	for i, it := range next {
		if it.GetID() == id {
			next[i] = item
			found = true
			break
		}
	}
	if !found {
		next = append(next, item)
	}
	s.items = next
	s.mu.Unlock()
	s.itemsSubject.Next(next)
}

// Patch applies fn to the record with the given id, if present.
func (s *Store[T]) Patch(id string, fn func(T) T) {
	s.mu.Lock()
	var next []T
	for i, it := range s.items {
		if it.GetID() == id {
			next = make([]T, len(s.items))
			copy(next, s.items)
			next[i] = fn(it)
			s.items = next
			break
		}
	}
	s.mu.Unlock()
	if next != nil {
		s.itemsSubject.Next(next)
	}
}

// Remove deletes the record with the given id. Removing an absent id is a
// no-op and does not publish.
func (s *Store[T]) Remove(id string) {
	s.mu.Lock()
	var next []T
	for i, it := range s.items {
		if it.GetID() == id {
			next = make([]T, 0, len(s.items)-1)
			next = append(next, s.items[:i]...)
			next = append(next, s.items[i+1:]...)
			s.items = next
			break
		}
	}
	s.mu.Unlock()
	if next != nil {
		s.itemsSubject.Next(next)
	}
}

func (s *Store[T]) SetLoading(loading bool) { s.loadingSubject.Next(loading) }

func (s *Store[T]) SetActive(id string) { s.activeSubject.Next(id) }
