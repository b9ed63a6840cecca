// Package stream provides the small publish/subscribe primitive the SDK is
// built on: a Subject holds a current value and replays it to every new
// subscriber, then delivers each subsequent value synchronously, in
// publication order. Subscriptions are explicit and must be disposed by the
// consumer when it is torn down.
package stream

import (
	"sync"
)

// Subscription represents one subscriber's registration on a Subject.
type Subscription struct {
	once   sync.Once
	cancel func()
}

// Unsubscribe detaches the subscriber. It is safe to call more than once.
func (s *Subscription) Unsubscribe() {
	if s == nil {
		return
	}
	s.once.Do(s.cancel)
}

// Subject is a behavior-subject: it always has a current value, and a new
// subscriber is called immediately with it before receiving later values.
type Subject[T any] struct {
	mu     sync.Mutex
	value  T
	nextID int
	subs   map[int]func(T)
}

func NewSubject[T any](initial T) *Subject[T] {
	return &Subject[T]{
		value: initial,
		subs:  map[int]func(T){},
	}
}

// Value returns the current value.
func (s *Subject[T]) Value() T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value
}

// Next publishes a new value to all current subscribers.
func (s *Subject[T]) Next(v T) {
	s.mu.Lock()
	s.value = v
	fns := make([]func(T), 0, len(s.subs))
	for _, fn := range s.subs {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	// Callbacks run outside the lock so a subscriber may publish or
	// subscribe without deadlocking.
	for _, fn := range fns {
		fn(v)
	}
}

// Subscribe registers fn and invokes it immediately with the current value.
func (s *Subject[T]) Subscribe(fn func(T)) *Subscription {
	sub, v := s.register(fn)
	fn(v)
	return sub
}

// subscribeNoReplay registers fn without the initial replay; fn only sees
// values published after registration.
func (s *Subject[T]) subscribeNoReplay(fn func(T)) *Subscription {
	sub, _ := s.register(fn)
	return sub
}

func (s *Subject[T]) register(fn func(T)) (*Subscription, T) {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	v := s.value
	s.mu.Unlock()

	return &Subscription{cancel: func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}}, v
}

// CombineLatest2 derives a Subject whose value is f applied to the latest
// values of a and b, recomputed whenever either publishes. The returned
// Subscription detaches the derived subject from both sources.
func CombineLatest2[A, B, R any](a *Subject[A], b *Subject[B], f func(A, B) R) (*Subject[R], *Subscription) {
	out := NewSubject(f(a.Value(), b.Value()))

	recompute := func() { out.Next(f(a.Value(), b.Value())) }
	subA := a.subscribeNoReplay(func(A) { recompute() })
	subB := b.subscribeNoReplay(func(B) { recompute() })
	// A source may have published between seeding and registering; out has
	// no subscribers yet, so this at worst refreshes the seed.
	recompute()

	return out, &Subscription{cancel: func() {
		subA.Unsubscribe()
		subB.Unsubscribe()
	}}
}

// CombineLatest3 is CombineLatest2 over three sources.
func CombineLatest3[A, B, C, R any](a *Subject[A], b *Subject[B], c *Subject[C], f func(A, B, C) R) (*Subject[R], *Subscription) {
	out := NewSubject(f(a.Value(), b.Value(), c.Value()))

	recompute := func() { out.Next(f(a.Value(), b.Value(), c.Value())) }
	subA := a.subscribeNoReplay(func(A) { recompute() })
	subB := b.subscribeNoReplay(func(B) { recompute() })
	subC := c.subscribeNoReplay(func(C) { recompute() })
	recompute()

	return out, &Subscription{cancel: func() {
		subA.Unsubscribe()
		subB.Unsubscribe()
		subC.Unsubscribe()
	}}
}
