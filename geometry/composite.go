package geometry

import "github.com/achilleasa/raybvh/types"

// Composite is a flat, unaccelerated collection of primitives. Every query
// tests every member. It serves as the correctness reference for the BVH and as
// a fallback for scenes that are too small to benefit from one.
type Composite struct {
	members []Primitive
}

// Create a composite containing the given primitives.
func NewComposite(prims ...Primitive) *Composite {
	c := &Composite{}
	c.Add(prims...)
	return c
}

// Add primitives to the composite.
func (c *Composite) Add(prims ...Primitive) {
	c.members = append(c.members, prims...)
}

// Number of member primitives.
func (c *Composite) Len() int {
	return len(c.members)
}

// The member primitives. The returned slice must not be modified.
func (c *Composite) Primitives() []Primitive {
	return c.members
}

// The union of the member boxes. A composite with an unbounded member is
// itself unbounded, so nil is returned in that case (and when empty).
func (c *Composite) BBox() *BBox {
	var box *BBox
	for _, prim := range c.members {
		primBox := prim.BBox()
		if primBox == nil {
			return nil
		}
		box = Combine(box, primBox)
	}
	return box
}

// Intersect tests the ray against all members and concatenates their hits.
func (c *Composite) Intersect(ray types.Ray, maxDistance float64) []Intersection {
	var out []Intersection
	for _, prim := range c.members {
		out = Append(out, prim.Intersect(ray, maxDistance))
	}
	return out
}
