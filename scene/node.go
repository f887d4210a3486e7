// Package scene is a small in-memory scene graph and the scenepool
// environment built on it. It stands in for a real engine in tools and tests.
package scene

import (
	"slices"

	"github.com/google/uuid"
)

// Vec3 is a position in parent space.
type Vec3 struct {
	X, Y, Z float64
}

// Zero is the local origin.
var Zero Vec3

// Add returns v translated by d.
func (v Vec3) Add(d Vec3) Vec3 {
	return Vec3{X: v.X + d.X, Y: v.Y + d.Y, Z: v.Z + d.Z}
}

// Scale returns v multiplied by f.
func (v Vec3) Scale(f float64) Vec3 {
	return Vec3{X: v.X * f, Y: v.Y * f, Z: v.Z * f}
}

// Node is an element of the scene hierarchy.
type Node struct {
	id            string
	name          string
	parent        *Node
	children      []*Node
	active        bool
	localPosition Vec3
	destroyed     bool
}

// NewNode returns an active, detached node.
func NewNode(name string) *Node {
	return &Node{
		id:     uuid.NewString(),
		name:   name,
		active: true,
	}
}

// ID is unique per node.
func (n *Node) ID() string { return n.id }

// Name of the node.
func (n *Node) Name() string { return n.name }

// SceneNode returns n, so that a node is an Entity on its own.
func (n *Node) SceneNode() *Node { return n }

// Parent returns the parent node, nil for a root.
func (n *Node) Parent() *Node { return n.parent }

// Children returns a copy of the direct children.
func (n *Node) Children() []*Node { return slices.Clone(n.children) }

// SetParent moves n under parent, or detaches it when parent is nil.
func (n *Node) SetParent(parent *Node) {
	if n.parent == parent {
		return
	}

	if n.parent != nil {
		n.parent.removeChild(n)
	}

	n.parent = parent

	if parent != nil {
		parent.children = append(parent.children, n)
	}
}

// ActiveSelf is the node's own active flag.
func (n *Node) ActiveSelf() bool { return n.active }

// ActiveInHierarchy reports whether n and all its ancestors are active.
func (n *Node) ActiveInHierarchy() bool {
	for cur := n; cur != nil; cur = cur.parent {
		if !cur.active {
			return false
		}
	}

	return true
}

// SetActive sets the node's own active flag.
func (n *Node) SetActive(active bool) { n.active = active }

// LocalPosition is the position relative to the parent.
func (n *Node) LocalPosition() Vec3 { return n.localPosition }

// SetLocalPosition moves the node relative to its parent.
func (n *Node) SetLocalPosition(pos Vec3) { n.localPosition = pos }

// Destroy detaches n and destroys its whole subtree.
func (n *Node) Destroy() {
	if n.destroyed {
		return
	}

	n.SetParent(nil)
	n.destroyTree()
}

// Destroyed reports whether Destroy was called.
func (n *Node) Destroyed() bool { return n.destroyed }

// Find returns the first descendant named name, depth first.
func (n *Node) Find(name string) *Node {
	for _, child := range n.children {
		if child.name == name {
			return child
		}

		if found := child.Find(name); found != nil {
			return found
		}
	}

	return nil
}

func (n *Node) destroyTree() {
	n.destroyed = true
	n.active = false

	for _, child := range n.children {
		child.parent = nil
		child.destroyTree()
	}

	n.children = nil
}

func (n *Node) removeChild(child *Node) {
	if i := slices.Index(n.children, child); i >= 0 {
		n.children = slices.Delete(n.children, i, i+1)
	}
}
