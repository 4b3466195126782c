// Package store is the state-management add-on: observable value
// containers shared between components outside the hook system.
package store

import "sync"

// Store is a reactive value container. Subscribers are notified after
// every accepted write; notification uses copy-before-notify so handlers
// may subscribe or unsubscribe reentrantly.
type Store[T any] struct {
	mu    sync.RWMutex
	value T

	subMu  sync.Mutex
	subs   map[int]func(T)
	nextID int
}

// New creates a store holding initial.
func New[T any](initial T) *Store[T] {
	return &Store[T]{
		value: initial,
		subs:  make(map[int]func(T)),
	}
}

// Get returns the current value.
func (s *Store[T]) Get() T {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.value
}

// Set replaces the value and notifies subscribers.
func (s *Store[T]) Set(value T) {
	s.mu.Lock()
	s.value = value
	s.mu.Unlock()
	s.notify(value)
}

// Update applies fn to the current value and stores the result.
func (s *Store[T]) Update(fn func(T) T) {
	s.mu.Lock()
	s.value = fn(s.value)
	value := s.value
	s.mu.Unlock()
	s.notify(value)
}

// Subscribe registers fn to run after every write. The returned function
// unsubscribes; calling it more than once is harmless.
func (s *Store[T]) Subscribe(fn func(T)) func() {
	s.subMu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = fn
	s.subMu.Unlock()

	return func() {
		s.subMu.Lock()
		delete(s.subs, id)
		s.subMu.Unlock()
	}
}

// SubscriberCount returns the number of live subscriptions.
func (s *Store[T]) SubscriberCount() int {
	s.subMu.Lock()
	defer s.subMu.Unlock()
	return len(s.subs)
}

// notify runs subscribers against a snapshot of the subscription set.
func (s *Store[T]) notify(value T) {
	s.subMu.Lock()
	subs := make([]func(T), 0, len(s.subs))
	for _, fn := range s.subs {
		subs = append(subs, fn)
	}
	s.subMu.Unlock()

	for _, fn := range subs {
		fn(value)
	}
}
