package bvh

import "github.com/achilleasa/raybvh/geometry"

type Kind uint8

const (
	Leaf Kind = iota
	Internal
)

func (k Kind) String() string {
	if k == Leaf {
		return "leaf"
	}
	return "internal"
}

// A BVH node. Leaf nodes hold a list of primitives while internal nodes hold
// exactly two children. The node bbox is calculated once when the node is
// created; nodes are never modified after that.
type Node struct {
	kind Kind
	box  *geometry.BBox

	// Leaf payload.
	members []geometry.Primitive

	// Internal node payload.
	left, right *Node
}

// Create a leaf. Its bbox is the union of the member bboxes; unbounded
// members do not contribute to it.
func newLeaf(members []geometry.Primitive) *Node {
	var box *geometry.BBox
	for _, prim := range members {
		box = geometry.Combine(box, prim.BBox())
	}
	return &Node{
		kind:    Leaf,
		box:     box,
		members: members,
	}
}

func newInternal(left, right *Node) *Node {
	return &Node{
		kind:  Internal,
		box:   geometry.Combine(left.box, right.box),
		left:  left,
		right: right,
	}
}

func (n *Node) Kind() Kind {
	return n.kind
}

func (n *Node) IsLeaf() bool {
	return n.kind == Leaf
}

// The node bbox or nil if the node only contains unbounded primitives (or
// nothing at all).
func (n *Node) BBox() *geometry.BBox {
	return n.box
}

// The primitives stored in a leaf; nil for internal nodes. The returned slice
// must not be modified.
func (n *Node) Members() []geometry.Primitive {
	return n.members
}

// The children of an internal node; both are nil for leaves.
func (n *Node) Children() (left, right *Node) {
	return n.left, n.right
}

// Walk visits the subtree rooted at n in depth-first, pre-order fashion.
// Returning false from fn skips the children of the visited node.
func (n *Node) Walk(fn func(node *Node, depth int) bool) {
	n.walk(fn, 0)
}

func (n *Node) walk(fn func(node *Node, depth int) bool, depth int) {
	if !fn(n, depth) || n.kind == Leaf {
		return
	}
	n.left.walk(fn, depth+1)
	n.right.walk(fn, depth+1)
}
