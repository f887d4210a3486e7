package scenepool

// Container is a placement target in the host scene.
type Container interface {
	Name() string
}

// Environment is the host capability a Pool drives. Implementations are
// expected to be called from a single goroutine, like the pool itself.
type Environment[T any] interface {
	// Create instantiates a fresh instance from the configured template.
	Create() T
	// SetActive shows or hides the instance.
	SetActive(obj T, active bool)
	// Reparent moves the instance under the container.
	Reparent(obj T, container Container)
	// ResetLocalTransform puts the instance back at the local origin.
	ResetLocalTransform(obj T)
	// Destroy removes the instance from the host for good. The pool itself
	// never calls it; it is there for hosts disposing of instances they own.
	Destroy(obj T)
}
