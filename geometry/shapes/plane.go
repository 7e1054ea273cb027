package shapes

import (
	"github.com/achilleasa/raybvh/geometry"
	"github.com/achilleasa/raybvh/types"
)

// An infinite plane. Planes have no bounding box.
type Plane struct {
	Point  types.Vec3
	Normal types.Vec3
}

func NewPlane(point, normal types.Vec3) *Plane {
	return &Plane{Point: point, Normal: normal.Normalize()}
}

func (p *Plane) BBox() *geometry.BBox {
	return nil
}

func (p *Plane) Intersect(ray types.Ray, maxDistance float64) []geometry.Intersection {
	denom := p.Normal.Dot(ray.Dir)
	if isZero(denom) {
		return nil
	}

	t := p.Normal.Dot(p.Point.Sub(ray.Origin)) / denom
	if !inRange(t, maxDistance) {
		return nil
	}
	return []geometry.Intersection{{Primitive: p, Point: ray.At(t), Distance: t}}
}
