package bvh

import (
	"sync/atomic"

	"github.com/achilleasa/raybvh/geometry"
	"github.com/achilleasa/raybvh/types"
)

// A primitive with a fixed bbox that never reports intersections.
type boxPrimitive struct {
	box *geometry.BBox
}

func (p *boxPrimitive) BBox() *geometry.BBox {
	return p.box
}

func (p *boxPrimitive) Intersect(types.Ray, float64) []geometry.Intersection {
	return nil
}

// Wraps a primitive and counts calls to Intersect.
type countingPrimitive struct {
	geometry.Primitive
	calls int32
}

func (p *countingPrimitive) Intersect(ray types.Ray, maxDistance float64) []geometry.Intersection {
	atomic.AddInt32(&p.calls, 1)
	return p.Primitive.Intersect(ray, maxDistance)
}

func unitCube(x, y, z float64) *boxPrimitive {
	return &boxPrimitive{
		box: geometry.NewBBox(types.XYZ(x-0.5, y-0.5, z-0.5), types.XYZ(x+0.5, y+0.5, z+0.5)),
	}
}
