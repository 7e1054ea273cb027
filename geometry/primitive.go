package geometry

import "github.com/achilleasa/raybvh/types"

// An Intersection records a ray hit against a primitive.
type Intersection struct {
	Primitive Primitive
	Point     types.Vec3

	// Parametric distance of Point along the ray.
	Distance float64
}

// The Intersectable interface is implemented by anything that can report ray
// intersections closer than maxDistance. Implementations return nil when there
// are no intersections; they never return an empty, non-nil slice.
type Intersectable interface {
	Intersect(ray types.Ray, maxDistance float64) []Intersection
}

// The Primitive interface is implemented by all geometries that can be
// partitioned by the BVH builder. BBox returns nil for unbounded geometries
// such as infinite planes.
type Primitive interface {
	Intersectable
	BBox() *BBox
}

// Append src to dst keeping the nil-means-empty convention.
func Append(dst, src []Intersection) []Intersection {
	if len(src) == 0 {
		return dst
	}
	return append(dst, src...)
}
