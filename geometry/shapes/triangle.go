package shapes

import (
	"github.com/achilleasa/raybvh/geometry"
	"github.com/achilleasa/raybvh/types"
)

type Triangle struct {
	Vertices [3]types.Vec3

	box *geometry.BBox
}

func NewTriangle(a, b, c types.Vec3) *Triangle {
	return &Triangle{
		Vertices: [3]types.Vec3{a, b, c},
		box: geometry.NewBBox(
			types.MinVec3(types.MinVec3(a, b), c),
			types.MaxVec3(types.MaxVec3(a, b), c),
		),
	}
}

func (tr *Triangle) BBox() *geometry.BBox {
	return tr.box
}

// Moller-Trumbore ray/triangle test. Hits on an edge are rejected.
func (tr *Triangle) Intersect(ray types.Ray, maxDistance float64) []geometry.Intersection {
	e1 := tr.Vertices[1].Sub(tr.Vertices[0])
	e2 := tr.Vertices[2].Sub(tr.Vertices[0])

	p := ray.Dir.Cross(e2)
	det := e1.Dot(p)
	if isZero(det) {
		return nil
	}
	invDet := 1.0 / det

	s := ray.Origin.Sub(tr.Vertices[0])
	u := s.Dot(p) * invDet
	if u <= 0 || u >= 1 {
		return nil
	}

	q := s.Cross(e1)
	v := ray.Dir.Dot(q) * invDet
	if v <= 0 || u+v >= 1 {
		return nil
	}

	t := e2.Dot(q) * invDet
	if !inRange(t, maxDistance) {
		return nil
	}
	return []geometry.Intersection{{Primitive: tr, Point: ray.At(t), Distance: t}}
}
