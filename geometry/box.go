package geometry

import (
	"math"

	"github.com/achilleasa/raybvh/types"
)

const (
	// Ray direction components with a smaller magnitude are treated as
	// parallel to the slab faces of that axis.
	parallelEpsilon = 1e-15

	// Tolerance when comparing the entry and exit distances of the slab
	// interval. Keeps rays grazing a face or an edge from being rejected.
	slabEpsilon = 1e-10
)

// BBox is an immutable axis-aligned bounding box. A nil *BBox denotes an
// absent box (e.g. an unbounded primitive).
type BBox struct {
	Min    types.Vec3
	Max    types.Vec3
	Center types.Vec3
}

// Create a bounding box from its min and max corners. Callers must ensure that
// min[i] <= max[i] for every axis.
func NewBBox(min, max types.Vec3) *BBox {
	return &BBox{
		Min:    min,
		Max:    max,
		Center: min.Add(max).Mul(0.5),
	}
}

// Combine returns the union of two boxes. If either box is absent the other
// one is returned as-is; combining two absent boxes yields an absent box.
func Combine(a, b *BBox) *BBox {
	if a == nil {
		return b
	}
	if b == nil {
		return a
	}
	return NewBBox(types.MinVec3(a.Min, b.Min), types.MaxVec3(a.Max, b.Max))
}

// SurfaceArea returns 2*(dx*dy + dx*dz + dy*dz). It is only meant to be used
// as a cost proxy by the BVH builder.
func (b *BBox) SurfaceArea() float64 {
	side := b.Max.Sub(b.Min)
	return 2 * (side[0]*side[1] + side[0]*side[2] + side[1]*side[2])
}

// SlabInterval clips the ray against the three slabs of the box and returns
// the resulting parametric interval. The ok flag is false if the interval is
// empty, or if the ray runs parallel to a slab without starting inside it.
func (b *BBox) SlabInterval(ray types.Ray) (tMin, tMax float64, ok bool) {
	tMin = math.Inf(-1)
	tMax = math.Inf(1)

	for axis := 0; axis < 3; axis++ {
		origin := ray.Origin[axis]
		dir := ray.Dir[axis]

		if math.Abs(dir) < parallelEpsilon {
			if origin < b.Min[axis] || origin > b.Max[axis] {
				return tMin, tMax, false
			}
			continue
		}

		t1 := (b.Min[axis] - origin) / dir
		t2 := (b.Max[axis] - origin) / dir
		if t1 > t2 {
			t1, t2 = t2, t1
		}

		tMin = math.Max(tMin, t1)
		tMax = math.Min(tMax, t2)
		if tMin > tMax+slabEpsilon {
			return tMin, tMax, false
		}
	}

	return tMin, tMax, true
}

// Intersects is the gate used while descending a BVH. It accepts the box if
// the forward part of the ray reaches it before maxDistance; the exit point may
// lie beyond maxDistance.
func (b *BBox) Intersects(ray types.Ray, maxDistance float64) bool {
	tMin, tMax, ok := b.SlabInterval(ray)
	return ok && tMin <= maxDistance && tMax >= 0
}

// IntersectsWithin is the stricter test used when the box stands for a
// hierarchy volume on its own: besides the Intersects conditions, the ray must
// also exit the box no further than maxDistance.
func (b *BBox) IntersectsWithin(ray types.Ray, maxDistance float64) bool {
	tMin, tMax, ok := b.SlabInterval(ray)
	return ok && tMin <= maxDistance && tMax >= 0 && tMax <= maxDistance
}
