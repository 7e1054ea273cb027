package tracer

import (
	"math"
	"testing"

	"github.com/achilleasa/raybvh/accel/bvh"
	"github.com/achilleasa/raybvh/geometry"
	"github.com/achilleasa/raybvh/scene"
)

func TestTraceBatch(t *testing.T) {
	workList := scene.DefaultGenerator().Generate()
	tree := bvh.Build(workList, bvh.DefaultOptions())
	flat := geometry.NewComposite(workList...)

	rays := scene.RandomRays(3, 200, scene.DefaultGenerator().Extent)
	for i := 0; i < 100; i++ {
		rays[i].Dir = workList[i].BBox().Center.Sub(rays[i].Origin).Normalize()
	}

	expHits := 0
	for _, ray := range rays {
		expHits += len(flat.Intersect(ray, math.Inf(1)))
	}

	sch := PerfectScheduler()
	tracers := NewCPUTracers(4, tree)
	for pass := 0; pass < 3; pass++ {
		stats := TraceBatch(tracers, sch, rays, math.Inf(1))
		if stats.Rays != len(rays) {
			t.Fatalf("[pass %d] expected %d rays; got %d", pass, len(rays), stats.Rays)
		}
		if stats.Hits != expHits {
			t.Fatalf("[pass %d] expected %d hits; got %d", pass, expHits, stats.Hits)
		}

		var traced uint32
		for _, trStat := range stats.Tracers {
			traced += trStat.BlockLen
		}
		if traced != uint32(len(rays)) {
			t.Fatalf("[pass %d] expected tracers to process %d rays; got %d", pass, len(rays), traced)
		}
	}
}

func TestTraceBatchWithFewRays(t *testing.T) {
	tracers := []Tracer{makeMockTracer("a", 1), makeMockTracer("b", 1), makeMockTracer("c", 1)}
	rays := scene.RandomRays(1, 2, 10)

	stats := TraceBatch(tracers, NaiveScheduler(), rays, 1)
	if len(stats.Tracers) != 2 {
		t.Fatalf("expected 2 tracers to be used; got %d", len(stats.Tracers))
	}
	if stats.Tracers[0].BlockLen != 1 || stats.Tracers[1].BlockLen != 1 {
		t.Fatalf("expected each tracer to receive 1 ray; got %+v", stats.Tracers)
	}

	if empty := TraceBatch(tracers, NaiveScheduler(), nil, 1); empty.Rays != 0 || empty.Tracers != nil {
		t.Fatalf("expected empty batch stats; got %+v", empty)
	}
}
