package types

// A ray with an origin and a unit-length direction.
type Ray struct {
	Origin Vec3
	Dir    Vec3
}

// Create a ray; the direction is normalized.
func NewRay(origin, dir Vec3) Ray {
	return Ray{
		Origin: origin,
		Dir:    dir.Normalize(),
	}
}

// Get the point at parametric distance t along the ray.
func (r Ray) At(t float64) Vec3 {
	return r.Origin.Add(r.Dir.Mul(t))
}
