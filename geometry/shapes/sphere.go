package shapes

import (
	"math"

	"github.com/achilleasa/raybvh/geometry"
	"github.com/achilleasa/raybvh/types"
)

type Sphere struct {
	Center types.Vec3
	Radius float64

	box *geometry.BBox
}

func NewSphere(center types.Vec3, radius float64) *Sphere {
	ext := types.XYZ(radius, radius, radius)
	return &Sphere{
		Center: center,
		Radius: radius,
		box:    geometry.NewBBox(center.Sub(ext), center.Add(ext)),
	}
}

func (s *Sphere) BBox() *geometry.BBox {
	return s.box
}

// Intersect returns up to two hits ordered by distance.
func (s *Sphere) Intersect(ray types.Ray, maxDistance float64) []geometry.Intersection {
	l := ray.Origin.Sub(s.Center)
	b := ray.Dir.Dot(l)
	disc := b*b - (l.Dot(l) - s.Radius*s.Radius)
	if disc < 0 {
		return nil
	}

	var out []geometry.Intersection
	if isZero(disc) {
		if t := -b; inRange(t, maxDistance) {
			out = append(out, geometry.Intersection{Primitive: s, Point: ray.At(t), Distance: t})
		}
		return out
	}

	root := math.Sqrt(disc)
	for _, t := range [2]float64{-b - root, -b + root} {
		if inRange(t, maxDistance) {
			out = append(out, geometry.Intersection{Primitive: s, Point: ray.At(t), Distance: t})
		}
	}
	return out
}
