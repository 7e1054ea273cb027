package geometry

import "github.com/achilleasa/raybvh/types"

type hitKey struct {
	prim  Primitive
	point types.Vec3
}

// SameIntersections reports whether a and b contain the same (primitive, point)
// pairs with the same multiplicity, regardless of order. A nil list only
// matches another nil list.
func SameIntersections(a, b []Intersection) bool {
	if len(a) != len(b) || (a == nil) != (b == nil) {
		return false
	}

	counts := make(map[hitKey]int, len(a))
	for _, hit := range a {
		counts[hitKey{hit.Primitive, hit.Point}]++
	}
	for _, hit := range b {
		key := hitKey{hit.Primitive, hit.Point}
		if counts[key] == 0 {
			return false
		}
		counts[key]--
	}
	return true
}
