package scene

import "github.com/peczenyj/scenepool"

var _ scenepool.Environment[*Node] = (*Environment[*Node])(nil)

// Entity is anything backed by a scene node.
type Entity interface {
	SceneNode() *Node
}

// Environment implements scenepool.Environment on top of a scene root.
// New instances are created under the root; containers must be entities,
// any other container places instances back under the root.
type Environment[T Entity] struct {
	root        *Node
	instantiate func() T
	created     int
	destroyed   int
}

// NewEnvironment returns an environment creating instances with instantiate.
func NewEnvironment[T Entity](root *Node, instantiate func() T) *Environment[T] {
	return &Environment[T]{
		root:        root,
		instantiate: instantiate,
	}
}

// Root is the node new instances are attached to.
func (e *Environment[T]) Root() *Node { return e.root }

// Create instantiates an instance and attaches it to the root when it has no parent.
func (e *Environment[T]) Create() T {
	obj := e.instantiate()

	if n := obj.SceneNode(); n.Parent() == nil {
		n.SetParent(e.root)
	}

	e.created++

	return obj
}

// SetActive sets the active flag of the instance node.
func (e *Environment[T]) SetActive(obj T, active bool) {
	obj.SceneNode().SetActive(active)
}

// Reparent moves the instance node under container.
func (e *Environment[T]) Reparent(obj T, container scenepool.Container) {
	parent := e.root

	if entity, ok := container.(Entity); ok {
		parent = entity.SceneNode()
	}

	obj.SceneNode().SetParent(parent)
}

// ResetLocalTransform moves the instance node to the local origin.
func (e *Environment[T]) ResetLocalTransform(obj T) {
	obj.SceneNode().SetLocalPosition(Zero)
}

// Destroy destroys the instance node.
func (e *Environment[T]) Destroy(obj T) {
	obj.SceneNode().Destroy()

	e.destroyed++
}

// Created is the number of instances created so far.
func (e *Environment[T]) Created() int { return e.created }

// Destroyed is the number of instances destroyed so far.
func (e *Environment[T]) Destroyed() int { return e.destroyed }
