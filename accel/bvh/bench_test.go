package bvh

import (
	"math"
	"testing"

	"github.com/achilleasa/raybvh/geometry"
	"github.com/achilleasa/raybvh/scene"
)

func BenchmarkBuild(b *testing.B) {
	workList := scene.DefaultGenerator().Generate()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		Build(workList, DefaultOptions())
	}
}

func BenchmarkTreeIntersect(b *testing.B) {
	workList := scene.DefaultGenerator().Generate()
	tree := Build(workList, DefaultOptions())
	rays := testRays(workList, 1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tree.Intersect(rays[i%len(rays)], math.Inf(1))
	}
}

func BenchmarkCompositeIntersect(b *testing.B) {
	workList := scene.DefaultGenerator().Generate()
	flat := geometry.NewComposite(workList...)
	rays := testRays(workList, 1000)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		flat.Intersect(rays[i%len(rays)], math.Inf(1))
	}
}
