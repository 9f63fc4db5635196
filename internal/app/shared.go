package app

import "sync/atomic"

// Shared is a reference-counted handle. The release func runs exactly once,
// when the last reference is dropped.
type Shared[T any] struct {
	value   T
	refs    atomic.Int64
	release func(T) error
}

// NewShared wraps value with a reference count of one.
func NewShared[T any](value T, release func(T) error) *Shared[T] {
	s := &Shared[T]{value: value, release: release}
	s.refs.Store(1)
	return s
}

// Get returns the wrapped value.
func (s *Shared[T]) Get() T {
	return s.value
}

// Retain adds a reference and returns s.
// Panics if the handle has already been released.
func (s *Shared[T]) Retain() *Shared[T] {
	for {
		n := s.refs.Load()
		if n <= 0 {
			panic("app: retain of released handle")
		}
		if s.refs.CompareAndSwap(n, n+1) {
			return s
		}
	}
}

// Release drops a reference. The last release runs the release func and
// returns its error.
func (s *Shared[T]) Release() error {
	for {
		n := s.refs.Load()
		if n <= 0 {
			return ErrReleased
		}
		if !s.refs.CompareAndSwap(n, n-1) {
			continue
		}
		if n == 1 && s.release != nil {
			return s.release(s.value)
		}
		return nil
	}
}

// Refs returns the current reference count.
func (s *Shared[T]) Refs() int {
	return int(s.refs.Load())
}
