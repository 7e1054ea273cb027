package bvh

import (
	"github.com/achilleasa/raybvh/geometry"
	"github.com/achilleasa/raybvh/types"
)

// A Tree is an immutable BVH produced by Build. It is safe for concurrent use
// by multiple goroutines.
type Tree struct {
	root *Node

	// True if the tree contains unbounded primitives.
	unbounded bool
}

// The root node. Empty trees have a leaf root without members.
func (t *Tree) Root() *Node {
	return t.root
}

// BBox returns the bbox of all partitioned primitives or nil if the tree is
// empty or contains unbounded primitives. It allows a tree to be used as a
// primitive inside another tree or composite.
func (t *Tree) BBox() *geometry.BBox {
	if t.unbounded {
		return nil
	}
	return t.root.box
}

// Intersect collects the intersections of ray with the tree primitives that lie
// within maxDistance. It returns nil if nothing was hit.
func (t *Tree) Intersect(ray types.Ray, maxDistance float64) []geometry.Intersection {
	return t.root.intersect(ray, maxDistance)
}

func (n *Node) intersect(ray types.Ray, maxDistance float64) []geometry.Intersection {
	var out []geometry.Intersection

	if n.kind == Leaf {
		for _, prim := range n.members {
			out = geometry.Append(out, prim.Intersect(ray, maxDistance))
		}
		return out
	}

	if n.left.reachable(ray, maxDistance) {
		out = geometry.Append(out, n.left.intersect(ray, maxDistance))
	}
	if n.right.reachable(ray, maxDistance) {
		out = geometry.Append(out, n.right.intersect(ray, maxDistance))
	}
	return out
}

// A node without a bbox can not be pruned.
func (n *Node) reachable(ray types.Ray, maxDistance float64) bool {
	return n.box == nil || n.box.Intersects(ray, maxDistance)
}
