package store

import (
	"fmt"
	"sync"

	"github.com/vmihailenco/msgpack/v5"
)

// Middleware intercepts writes to an AdvancedStore. It receives the
// previous and proposed values and returns the value actually stored.
type Middleware[T any] func(prev, next T) T

// AdvancedStore extends Store with write middleware, derived
// subscriptions, and binary snapshots the dev server uses to carry state
// across reloads.
type AdvancedStore[T any] struct {
	*Store[T]

	mwMu       sync.RWMutex
	middleware []Middleware[T]
}

// NewAdvanced creates an advanced store holding initial.
func NewAdvanced[T any](initial T, middleware ...Middleware[T]) *AdvancedStore[T] {
	return &AdvancedStore[T]{
		Store:      New(initial),
		middleware: middleware,
	}
}

// Use appends a middleware to the write chain.
func (s *AdvancedStore[T]) Use(mw Middleware[T]) {
	s.mwMu.Lock()
	s.middleware = append(s.middleware, mw)
	s.mwMu.Unlock()
}

// Set runs the proposed value through the middleware chain, then stores
// and notifies.
func (s *AdvancedStore[T]) Set(value T) {
	prev := s.Get()

	s.mwMu.RLock()
	chain := s.middleware
	s.mwMu.RUnlock()

	for _, mw := range chain {
		value = mw(prev, value)
	}
	s.Store.Set(value)
}

// Update applies fn and routes the result through Set so middleware runs.
func (s *AdvancedStore[T]) Update(fn func(T) T) {
	s.Set(fn(s.Get()))
}

// Select subscribes to a derived value: fn runs only when the selected
// projection changes (compared with !=). The returned function
// unsubscribes.
func Select[T any, S comparable](s *AdvancedStore[T], selector func(T) S, fn func(S)) func() {
	last := selector(s.Get())
	return s.Subscribe(func(value T) {
		next := selector(value)
		if next != last {
			last = next
			fn(next)
		}
	})
}

// Snapshot encodes the current value with msgpack.
func (s *AdvancedStore[T]) Snapshot() ([]byte, error) {
	data, err := msgpack.Marshal(s.Get())
	if err != nil {
		return nil, fmt.Errorf("store snapshot: %w", err)
	}
	return data, nil
}

// Restore decodes a snapshot and stores it through the middleware chain,
// notifying subscribers.
func (s *AdvancedStore[T]) Restore(data []byte) error {
	var value T
	if err := msgpack.Unmarshal(data, &value); err != nil {
		return fmt.Errorf("store restore: %w", err)
	}
	s.Set(value)
	return nil
}
