// package scenegraph provides the minimal node/transform/hierarchy
// abstraction the gameplay core runs against: named nodes with local and
// world transforms, re-parenting, and name/predicate lookup. A host engine
// can adapt its own scene graph behind the Node interface; NewNode provides
// the in-memory implementation used by the reference world, demos, and tests.
package scenegraph

import (
	"github.com/Carmen-Shannon/strider-go/common"
	"github.com/go-gl/mathgl/mgl32"
)

// Node is one element of the scene hierarchy.
type Node interface {
	// Name returns the node's name, used for lookup and anchor tagging.
	//
	// Returns:
	//   - string: the node name
	Name() string

	// Parent returns the node's parent, or nil for a root node.
	//
	// Returns:
	//   - Node: the parent node, or nil
	Parent() Node

	// Children returns the node's direct children. The returned slice is a
	// copy; mutating it does not affect the hierarchy.
	//
	// Returns:
	//   - []Node: the direct children
	Children() []Node

	// AddChild re-parents child under this node: the child is detached from
	// its previous parent first. The child's local transform is not adjusted;
	// callers preserving a world placement should follow up with
	// SetWorldTransform. A nil child, the node itself, or one of the node's
	// ancestors is ignored, keeping the hierarchy acyclic.
	//
	// Parameters:
	//   - child: the node to attach
	AddChild(child Node)

	// RemoveChild detaches child from this node. A nil or non-child node is
	// ignored.
	//
	// Parameters:
	//   - child: the node to detach
	RemoveChild(child Node)

	// LocalTransform returns the node's transform relative to its parent.
	//
	// Returns:
	//   - common.Transform: the local transform
	LocalTransform() common.Transform

	// SetLocalTransform replaces the node's transform relative to its parent.
	//
	// Parameters:
	//   - t: the new local transform
	SetLocalTransform(t common.Transform)

	// WorldTransform returns the node's transform composed up to the root.
	//
	// Returns:
	//   - common.Transform: the world transform
	WorldTransform() common.Transform

	// SetWorldTransform sets the node's world placement by computing the
	// local transform from the inverse of the parent's world transform.
	//
	// Parameters:
	//   - t: the desired world transform
	SetWorldTransform(t common.Transform)

	// WorldPosition returns the translation component of the world transform.
	//
	// Returns:
	//   - mgl32.Vec3: the world-space position
	WorldPosition() mgl32.Vec3
}

// node is the in-memory implementation of Node.
type node struct {
	name     string
	parent   Node
	children []Node
	local    common.Transform
}

var _ Node = &node{}

// NewNode creates a named node with the provided options. Defaults to an
// identity local transform and no parent.
//
// Parameters:
//   - name: the node name
//   - options: functional options to configure the node
//
// Returns:
//   - Node: the newly created node
func NewNode(name string, options ...NodeBuilderOption) Node {
	n := &node{
		name:  name,
		local: common.IdentityTransform(),
	}
	for _, opt := range options {
		opt(n)
	}
	return n
}

func (n *node) Name() string {
	return n.name
}

func (n *node) Parent() Node {
	return n.parent
}

func (n *node) Children() []Node {
	out := make([]Node, len(n.children))
	copy(out, n.children)
	return out
}

func (n *node) AddChild(child Node) {
	c, ok := child.(*node)
	if !ok || c == nil || c == n {
		return
	}
	// Refuse an ancestor as a child; that cycle would never resolve a world
	// transform again.
	for a := n.parent; a != nil; a = a.Parent() {
		if a == child {
			return
		}
	}
	if c.parent != nil {
		c.parent.RemoveChild(c)
	}
	c.parent = n
	n.children = append(n.children, c)
}

func (n *node) RemoveChild(child Node) {
	c, ok := child.(*node)
	if !ok || c == nil {
		return
	}
	for i, existing := range n.children {
		if existing == child {
			// Swap-remove; sibling order is not part of the contract.
			last := len(n.children) - 1
			n.children[i] = n.children[last]
			n.children[last] = nil
			n.children = n.children[:last]
			c.parent = nil
			return
		}
	}
}

func (n *node) LocalTransform() common.Transform {
	return n.local
}

func (n *node) SetLocalTransform(t common.Transform) {
	n.local = t
}

func (n *node) WorldTransform() common.Transform {
	if n.parent == nil {
		return n.local
	}
	return n.parent.WorldTransform().Mul(n.local)
}

func (n *node) SetWorldTransform(t common.Transform) {
	if n.parent == nil {
		n.local = t
		return
	}
	n.local = n.parent.WorldTransform().Inverse().Mul(t)
}

func (n *node) WorldPosition() mgl32.Vec3 {
	return n.WorldTransform().Position
}
