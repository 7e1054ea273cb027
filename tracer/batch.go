package tracer

import (
	"sync"
	"time"

	"github.com/achilleasa/raybvh/types"
)

type TracerStat struct {
	// The tracer id.
	Id string

	// The block length and the percentage of the batch it represents.
	BlockLen     uint32
	BatchPercent float32

	// Number of intersections reported by the tracer.
	Hits int

	// Trace time for assigned block
	TraceTime time.Duration
}

type BatchStats struct {
	// Individual tracer stats.
	Tracers []TracerStat

	// Total number of rays and intersections.
	Rays int
	Hits int

	// Total trace time for the entire batch.
	TraceTime time.Duration
}

// TraceBatch splits rays into blocks using the scheduler and traces each block
// on its own goroutine. If there are fewer rays than tracers only the first
// len(rays) tracers are used.
func TraceBatch(tracers []Tracer, sch BlockScheduler, rays []types.Ray, maxDistance float64) BatchStats {
	if len(rays) == 0 || len(tracers) == 0 {
		return BatchStats{}
	}
	if len(tracers) > len(rays) {
		tracers = tracers[:len(rays)]
	}

	start := time.Now()
	blockAssignment := sch.Schedule(tracers, uint32(len(rays)))

	var wg sync.WaitGroup
	var offset uint32 = 0
	for idx, tr := range tracers {
		block := rays[offset : offset+blockAssignment[idx]]
		offset += blockAssignment[idx]

		wg.Add(1)
		go func(tr Tracer, block []types.Ray) {
			defer wg.Done()
			tr.Trace(block, maxDistance)
		}(tr, block)
	}
	wg.Wait()

	out := BatchStats{
		Tracers:   make([]TracerStat, len(tracers)),
		Rays:      len(rays),
		TraceTime: time.Since(start),
	}
	for idx, tr := range tracers {
		stats := tr.Stats()
		out.Hits += stats.Hits
		out.Tracers[idx] = TracerStat{
			Id:           tr.Id(),
			BlockLen:     stats.BlockLen,
			BatchPercent: 100 * float32(stats.BlockLen) / float32(len(rays)),
			Hits:         stats.Hits,
			TraceTime:    time.Duration(stats.BlockTime),
		}
	}
	return out
}
