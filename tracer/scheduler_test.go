package tracer

import (
	"testing"

	"github.com/achilleasa/raybvh/types"
)

func TestNaiveScheduler(t *testing.T) {
	type spec struct {
		speed1   float32
		speed2   float32
		batchLen uint32
		expLen1  uint32
		expLen2  uint32
	}
	specs := []spec{
		{1, 2, 10, 4, 6},
		{2, 1, 10, 7, 3},
		{1, 1000, 10, 1, 9},
		// No speed estimates
		{0, 0, 10, 5, 5},
		{0, 0, 7, 4, 3},
	}

	for index, s := range specs {
		tr1 := makeMockTracer("mock-1", s.speed1)
		tr2 := makeMockTracer("mock-2", s.speed2)
		tracers := []Tracer{tr1, tr2}

		sch := NaiveScheduler()
		blockAssignment := sch.Schedule(tracers, s.batchLen)

		if blockAssignment[0] != s.expLen1 {
			t.Fatalf("[spec %d] expected tracer 0 to be assigned %d rays; got %d", index, s.expLen1, blockAssignment[0])
		}

		if blockAssignment[1] != s.expLen2 {
			t.Fatalf("[spec %d] expected tracer 1 to be assigned %d rays; got %d", index, s.expLen2, blockAssignment[1])
		}
	}
}

func TestPerfectScheduler(t *testing.T) {
	type spec struct {
		batchLen uint32
		time1    int64
		time2    int64
		expLen1  uint32
		expLen2  uint32
	}
	specs := []spec{
		// First call always behaves like the naive scheduler
		{10, 1, 5, 5, 5},
		// Second call should use the trace times to assign rays
		{10, 1, 5, 9, 1},
		// This time tracer 2 performed much better
		{10, 5, 1, 7, 3},
	}

	// Tracers have same speed
	tr1 := makeMockTracer("mock-1", 1)
	tr2 := makeMockTracer("mock-2", 1)
	tracers := []Tracer{tr1, tr2}

	sch := PerfectScheduler()
	for index, s := range specs {
		tr1.stats.BlockTime = s.time1
		tr2.stats.BlockTime = s.time2

		blockAssignment := sch.Schedule(tracers, s.batchLen)

		if blockAssignment[0] != s.expLen1 {
			t.Fatalf("[spec %d] expected tracer 0 to be assigned %d rays; got %d", index, s.expLen1, blockAssignment[0])
		}

		if blockAssignment[1] != s.expLen2 {
			t.Fatalf("[spec %d] expected tracer 1 to be assigned %d rays; got %d", index, s.expLen2, blockAssignment[1])
		}

		tr1.stats.BlockLen = blockAssignment[0]
		tr2.stats.BlockLen = blockAssignment[1]
	}
}

func TestBalance(t *testing.T) {
	type spec struct {
		in       []uint32
		batchLen uint32
		exp      []uint32
	}
	specs := []spec{
		{[]uint32{3, 3}, 8, []uint32{5, 3}},
		{[]uint32{1, 1, 1}, 2, []uint32{0, 1, 1}},
		{[]uint32{2, 5, 1}, 6, []uint32{2, 3, 1}},
	}

	for index, s := range specs {
		out := balance(s.in, s.batchLen)
		for i := range s.exp {
			if out[i] != s.exp[i] {
				t.Fatalf("[spec %d] expected %v; got %v", index, s.exp, out)
			}
		}
	}
}

type mockTracer struct {
	id    string
	speed float32
	stats *Stats
}

func makeMockTracer(id string, speed float32) *mockTracer {
	return &mockTracer{
		id:    id,
		speed: speed,
		stats: &Stats{},
	}
}

func (mt *mockTracer) Id() string {
	return mt.id
}

func (mt *mockTracer) SpeedEstimate() float32 {
	return mt.speed
}

func (mt *mockTracer) Trace(rays []types.Ray, _ float64) {
	mt.stats.BlockLen = uint32(len(rays))
	mt.stats.BlockTime = 1
}

func (mt *mockTracer) Stats() *Stats {
	return mt.stats
}
