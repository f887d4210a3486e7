package store

type config[T any] struct {
	onGet           func(T)
	onRelease       func(T)
	onDiscard       func(T)
	collectionCheck bool
	capacity        int
	maxSize         int
}

// Option type.
type Option[T any] func(*config[T])

// WithOnGet is a functional option.
// Sets the hook executed on every instance returned by Get.
func WithOnGet[T any](onGet func(T)) Option[T] {
	return func(c *config[T]) {
		c.onGet = onGet
	}
}

// WithOnRelease is a functional option.
// Sets the hook executed on every accepted Release, before the instance is
// pushed back or discarded.
func WithOnRelease[T any](onRelease func(T)) Option[T] {
	return func(c *config[T]) {
		c.onRelease = onRelease
	}
}

// WithOnDiscard is a functional option.
// Sets the hook executed on instances the store stops tracking: releases
// that do not fit under the max size, and idle instances when the store is
// cleared. It runs once per instance.
func WithOnDiscard[T any](onDiscard func(T)) Option[T] {
	return func(c *config[T]) {
		c.onDiscard = onDiscard
	}
}

// WithCollectionCheck is a functional option.
// When enabled, Release rejects instances that are already idle.
func WithCollectionCheck[T any](enabled bool) Option[T] {
	return func(c *config[T]) {
		c.collectionCheck = enabled
	}
}

// WithDefaultCapacity is a functional option.
// Sets the initial capacity of the idle stack.
func WithDefaultCapacity[T any](capacity int) Option[T] {
	return func(c *config[T]) {
		c.capacity = capacity
	}
}

// WithMaxSize is a functional option.
// Sets the maximum number of idle instances. Must be greater than 0.
func WithMaxSize[T any](maxSize int) Option[T] {
	return func(c *config[T]) {
		c.maxSize = maxSize
	}
}
