// Package signal provides a minimal observable value store: one held value,
// synchronous notification of subscribers on change.
package signal

import "sync"

// Option configures a Store.
type Option[T any] func(*Store[T])

// WithEquals replaces the store's change detector. Set skips notification
// when the detector reports the new value equal to the current one.
func WithEquals[T any](equals func(old, new T) bool) Option[T] {
	return func(s *Store[T]) {
		s.equals = equals
	}
}

// Store holds a single value of type T and notifies subscribers whenever
// the value actually changes. All methods are safe for concurrent use.
// Listeners run synchronously inside Set, in no particular order.
type Store[T any] struct {
	mu     sync.Mutex
	value  T
	subs   map[int]func(T)
	nextID int
	equals func(old, new T) bool
}

// New creates a store holding initial. The default change detector compares
// by interface identity (any(old) == any(new)), which matches reference
// equality for pointer-typed T. Use WithEquals for value types whose
// dynamic type is not comparable.
func New[T any](initial T, opts ...Option[T]) *Store[T] {
	s := &Store[T]{
		value: initial,
		subs:  make(map[int]func(T)),
		equals: func(old, new T) bool {
			return any(old) == any(new)
		},
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Get returns the current value. No side effects.
func (s *Store[T]) Get() T {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.value
}

// Set replaces the value and invokes every current subscriber with it.
// When the new value equals the old one it is a no-op and nothing is
// notified. Listeners are called outside the store lock, so a listener may
// call back into the store.
func (s *Store[T]) Set(v T) {
	s.mu.Lock()
	if s.equals(s.value, v) {
		s.mu.Unlock()
		return
	}
	s.value = v
	listeners := make([]func(T), 0, len(s.subs))
	for _, fn := range s.subs {
		listeners = append(listeners, fn)
	}
	s.mu.Unlock()

	for _, fn := range listeners {
		fn(v)
	}
}

// Subscribe registers listener for every successful Set and returns the
// function that deregisters it. The returned function is idempotent.
func (s *Store[T]) Subscribe(listener func(T)) func() {
	s.mu.Lock()
	id := s.nextID
	s.nextID++
	s.subs[id] = listener
	s.mu.Unlock()

	return func() {
		s.mu.Lock()
		delete(s.subs, id)
		s.mu.Unlock()
	}
}

// Subscribers returns the number of registered listeners.
func (s *Store[T]) Subscribers() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.subs)
}
