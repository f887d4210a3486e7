// Package store implements the bounded idle store that backs a scenepool.Pool.
//
// A [Stack] keeps released instances in LIFO order, creates new ones on
// demand when it is empty, and drops instances that do not fit under the
// maximum size, reporting them to a discard hook:
//
//	s, err := store.New(newBullet,
//	  store.WithOnRelease(func(b *Bullet) { b.Hide() }),
//	  store.WithMaxSize[*Bullet](64),
//	)
//
//	b := s.Get()             // pops an idle bullet or creates one
//	err = s.Release(b)       // pushes it back, or discards it when full
//
// The Stack is not safe for concurrent use.
package store

import (
	"errors"
	"fmt"
)

const (
	// DefaultCapacity is the initial capacity of the idle stack.
	DefaultCapacity = 10
	// DefaultMaxSize is the number of idle instances kept before discarding.
	DefaultMaxSize = 10000
)

var (
	// ErrAlreadyReleased is returned by Release when the collection check
	// finds the instance already in the idle stack.
	ErrAlreadyReleased = errors.New("store: instance already released to the pool")
	// ErrInvalidMaxSize indicates a non-positive maximum size.
	ErrInvalidMaxSize = errors.New("store: max size must be greater than 0")
	// ErrNilCreate indicates a missing create function.
	ErrNilCreate = errors.New("store: create function is required")
)

// Stack is a typed bounded store of idle instances.
type Stack[T comparable] struct {
	create func() T
	cfg    config[T]

	items    []T
	idle     map[T]int
	countAll int
}

// New is the constructor of a *store.Stack.
// Receives the constructor of the type T, called whenever Get finds the
// idle stack empty.
func New[T comparable](create func() T, opts ...Option[T]) (*Stack[T], error) {
	if create == nil {
		return nil, ErrNilCreate
	}

	c := config[T]{
		capacity: DefaultCapacity,
		maxSize:  DefaultMaxSize,
	}

	for _, opt := range opts {
		opt(&c)
	}

	if c.maxSize <= 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidMaxSize, c.maxSize)
	}

	if c.capacity < 0 {
		c.capacity = 0
	}

	return &Stack[T]{
		create: create,
		cfg:    c,
		items:  make([]T, 0, c.capacity),
		idle:   make(map[T]int, c.capacity),
	}, nil
}

// Get pops the most recently released instance, or creates a new one when
// the idle stack is empty. The get hook runs on the returned instance.
func (s *Stack[T]) Get() T {
	var item T

	if n := len(s.items); n == 0 {
		item = s.create()
		s.countAll++
	} else {
		item = s.items[n-1]

		var zero T
		s.items[n-1] = zero
		s.items = s.items[:n-1]

		s.forget(item)
	}

	if s.cfg.onGet != nil {
		s.cfg.onGet(item)
	}

	return item
}

// Release returns the instance to the idle stack after running the release
// hook. If the stack already holds MaxSize instances, the instance is dropped
// instead: it is no longer counted and the discard hook runs.
//
// With the collection check enabled, releasing an instance that is already
// idle returns ErrAlreadyReleased and leaves the store untouched.
// Without it, the instance is pushed again.
func (s *Stack[T]) Release(item T) error {
	if s.cfg.collectionCheck && s.idle[item] > 0 {
		return fmt.Errorf("%w: %T", ErrAlreadyReleased, item)
	}

	if s.cfg.onRelease != nil {
		s.cfg.onRelease(item)
	}

	if len(s.items) < s.cfg.maxSize {
		s.items = append(s.items, item)
		s.idle[item]++

		return nil
	}

	s.countAll--

	if s.cfg.onDiscard != nil {
		s.cfg.onDiscard(item)
	}

	return nil
}

// Contains reports whether the instance is currently idle.
func (s *Stack[T]) Contains(item T) bool {
	return s.idle[item] > 0
}

// Clear drops every idle instance. The discard hook runs once per instance,
// even when duplicates were pushed with the collection check disabled.
func (s *Stack[T]) Clear() {
	items, idle := s.items, s.idle

	s.items = make([]T, 0, s.cfg.capacity)
	s.idle = make(map[T]int, s.cfg.capacity)
	s.countAll -= len(idle)

	for _, item := range items {
		if _, ok := idle[item]; !ok {
			continue
		}

		delete(idle, item)

		if s.cfg.onDiscard != nil {
			s.cfg.onDiscard(item)
		}
	}
}

// CountAll is the number of instances created and still owned by the store,
// idle or not.
func (s *Stack[T]) CountAll() int { return s.countAll }

// CountActive is the number of instances handed out and not yet released.
func (s *Stack[T]) CountActive() int { return s.countAll - len(s.items) }

// CountInactive is the number of idle instances.
func (s *Stack[T]) CountInactive() int { return len(s.items) }

// MaxSize is the maximum number of idle instances.
func (s *Stack[T]) MaxSize() int { return s.cfg.maxSize }

// CollectionCheck reports whether double releases are rejected.
func (s *Stack[T]) CollectionCheck() bool { return s.cfg.collectionCheck }

func (s *Stack[T]) forget(item T) {
	if n := s.idle[item]; n > 1 {
		s.idle[item] = n - 1
	} else {
		delete(s.idle, item)
	}
}
