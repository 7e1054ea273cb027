package scene

import (
	"math/rand"

	"github.com/achilleasa/raybvh/geometry"
	"github.com/achilleasa/raybvh/geometry/shapes"
	"github.com/achilleasa/raybvh/types"
)

// Generator creates reproducible random scenes. All primitive centers lie
// inside the cube [-Extent, Extent]^3.
type Generator struct {
	Seed      int64   `toml:"seed"`
	Spheres   int     `toml:"spheres"`
	Triangles int     `toml:"triangles"`
	Planes    int     `toml:"planes"`
	Extent    float64 `toml:"extent"`
	MinRadius float64 `toml:"min_radius"`
	MaxRadius float64 `toml:"max_radius"`
}

// Get a generator for a scene of 1000 spheres.
func DefaultGenerator() Generator {
	return Generator{
		Seed:      42,
		Spheres:   1000,
		Extent:    100,
		MinRadius: 0.5,
		MaxRadius: 2,
	}
}

// Generate the scene primitives. Spheres come first, followed by triangles and
// planes. The same generator settings always produce the same scene.
func (g Generator) Generate() []geometry.Primitive {
	rng := rand.New(rand.NewSource(g.Seed))
	out := make([]geometry.Primitive, 0, g.Spheres+g.Triangles+g.Planes)

	for i := 0; i < g.Spheres; i++ {
		out = append(out, shapes.NewSphere(g.randomPoint(rng), g.randomRadius(rng)))
	}

	for i := 0; i < g.Triangles; i++ {
		center := g.randomPoint(rng)
		size := g.randomRadius(rng)
		out = append(out, shapes.NewTriangle(
			center.Add(randomDir(rng).Mul(size)),
			center.Add(randomDir(rng).Mul(size)),
			center.Add(randomDir(rng).Mul(size)),
		))
	}

	for i := 0; i < g.Planes; i++ {
		out = append(out, shapes.NewPlane(g.randomPoint(rng), randomDir(rng)))
	}

	return out
}

func (g Generator) randomPoint(rng *rand.Rand) types.Vec3 {
	return types.XYZ(
		(rng.Float64()*2-1)*g.Extent,
		(rng.Float64()*2-1)*g.Extent,
		(rng.Float64()*2-1)*g.Extent,
	)
}

func (g Generator) randomRadius(rng *rand.Rand) float64 {
	return g.MinRadius + rng.Float64()*(g.MaxRadius-g.MinRadius)
}

// Pick a uniformly distributed unit vector by rejection sampling.
func randomDir(rng *rand.Rand) types.Vec3 {
	for {
		v := types.XYZ(rng.Float64()*2-1, rng.Float64()*2-1, rng.Float64()*2-1)
		if l := v.Len(); l > 1e-3 && l <= 1 {
			return v.Normalize()
		}
	}
}

// RandomRays generates count rays whose origins lie on a sphere of radius
// 2*extent around the scene center and which are aimed at random points
// inside the [-extent, extent]^3 cube.
func RandomRays(seed int64, count int, extent float64) []types.Ray {
	rng := rand.New(rand.NewSource(seed))
	g := Generator{Extent: extent}

	rays := make([]types.Ray, count)
	for i := range rays {
		origin := randomDir(rng).Mul(2 * extent)
		target := g.randomPoint(rng)
		rays[i] = types.NewRay(origin, target.Sub(origin))
	}
	return rays
}
