package tracer

import (
	"fmt"
	"time"

	"github.com/achilleasa/raybvh/geometry"
	"github.com/achilleasa/raybvh/types"
)

// Tracer statistics for the last traced block.
type Stats struct {
	// The number of rays in the block.
	BlockLen uint32

	// The time for tracing this block (in nanoseconds)
	BlockTime int64

	// The number of intersections reported for the block.
	Hits int
}

// The Tracer interface is implemented by anything that can trace blocks of
// rays and report statistics for the last traced block.
type Tracer interface {
	// Get tracer id.
	Id() string

	// Get the tracers computation speed estimate compared to a
	// baseline (single goroutine) implementation.
	SpeedEstimate() float32

	// Trace a block of rays.
	Trace(rays []types.Ray, maxDistance float64)

	// Get statistics for the last traced block.
	Stats() *Stats
}

// A tracer that runs on a single goroutine and casts rays against an
// Intersectable (a BVH or a flat composite).
type cpuTracer struct {
	id     string
	target geometry.Intersectable
	stats  Stats
}

// Create a new tracer for the given target.
func NewCPUTracer(id string, target geometry.Intersectable) Tracer {
	return &cpuTracer{
		id:     id,
		target: target,
	}
}

// Create count tracers sharing the same target.
func NewCPUTracers(count int, target geometry.Intersectable) []Tracer {
	tracers := make([]Tracer, count)
	for index := range tracers {
		tracers[index] = NewCPUTracer(fmt.Sprintf("cpu-%d", index), target)
	}
	return tracers
}

func (tr *cpuTracer) Id() string {
	return tr.id
}

func (tr *cpuTracer) SpeedEstimate() float32 {
	return 1.0
}

func (tr *cpuTracer) Stats() *Stats {
	return &tr.stats
}

func (tr *cpuTracer) Trace(rays []types.Ray, maxDistance float64) {
	start := time.Now()
	hits := 0
	for _, ray := range rays {
		hits += len(tr.target.Intersect(ray, maxDistance))
	}

	tr.stats = Stats{
		BlockLen:  uint32(len(rays)),
		BlockTime: time.Since(start).Nanoseconds(),
		Hits:      hits,
	}
}
