package tracer

import "math"

// The BlockScheduler interface is implemented by all block scheduling algorithms.
type BlockScheduler interface {
	// Split a ray batch into blocks of variable length and assign them to
	// the pool of tracers using feedback collected from previous batches.
	//
	// This function returns the block length assignment for each tracer
	// in the input list. The assignments always add up to batchLen.
	Schedule(tracers []Tracer, batchLen uint32) []uint32
}

// The naive scheduler splits the batch according to tracer speed estimates.
type naiveScheduler struct{}

// Create a new naive scheduler instance.
func NaiveScheduler() BlockScheduler {
	return naiveScheduler{}
}

func (sch naiveScheduler) Schedule(tracers []Tracer, batchLen uint32) []uint32 {
	var total float64 = 0.0
	for _, tr := range tracers {
		total += float64(tr.SpeedEstimate())
	}

	blockAssignment := make([]uint32, len(tracers))

	// Without usable speed estimates the batch is split evenly.
	if total <= 0 {
		for idx := range blockAssignment {
			blockAssignment[idx] = batchLen / uint32(len(tracers))
		}
		return balance(blockAssignment, batchLen)
	}

	scaler := float64(batchLen) / total
	for idx, tr := range tracers {
		blockAssignment[idx] = uint32(math.Max(1.0, math.Floor(float64(tr.SpeedEstimate())*scaler)))
	}

	return balance(blockAssignment, batchLen)
}

// The perfect scheduler assumes that the volume of tracing work between two
// subsequent batches is approximately the same.
type perfectScheduler struct {
	blockAssignment []uint32
}

// Create a new perfect scheduler instance
func PerfectScheduler() BlockScheduler {
	return &perfectScheduler{}
}

// Split the batch into blocks using feedback collected from the previous
// batch.
//
// When previous batch information is available the scheduler uses the
// following formula for estimating the workload for tracer w and batch i+1:
// w_i, b_i+1 = (blockLen,w_i / time,w_i) / Σ(blockLen_i / time,i)
func (sch *perfectScheduler) Schedule(tracers []Tracer, batchLen uint32) []uint32 {
	// If this is the first time we try to schedule, the number of tracers
	// has changed or some tracer has no usable statistics fall back to
	// the naive scheduler.
	if len(sch.blockAssignment) != len(tracers) || !haveTimings(tracers) {
		sch.blockAssignment = NaiveScheduler().Schedule(tracers, batchLen)
		return sch.blockAssignment
	}

	var total float64 = 0.0
	var stats *Stats
	for _, tr := range tracers {
		stats = tr.Stats()
		total += float64(stats.BlockLen) / float64(stats.BlockTime)
	}

	scaler := float64(batchLen) / total
	for idx, tr := range tracers {
		stats = tr.Stats()
		sch.blockAssignment[idx] = uint32(math.Max(1.0, math.Floor(float64(stats.BlockLen)/float64(stats.BlockTime)*scaler)))
	}

	return balance(sch.blockAssignment, batchLen)
}

func haveTimings(tracers []Tracer) bool {
	for _, tr := range tracers {
		if stats := tr.Stats(); stats.BlockLen == 0 || stats.BlockTime <= 0 {
			return false
		}
	}
	return true
}

// Adjust a block assignment so that it adds up to batchLen. Missing items are
// appended to the first tracer; extra items are removed from the largest
// blocks.
func balance(blockAssignment []uint32, batchLen uint32) []uint32 {
	var scheduled uint32 = 0
	for _, blockLen := range blockAssignment {
		scheduled += blockLen
	}

	if scheduled <= batchLen {
		blockAssignment[0] += batchLen - scheduled
		return blockAssignment
	}

	for excess := scheduled - batchLen; excess > 0; excess-- {
		largest := 0
		for idx, blockLen := range blockAssignment {
			if blockLen > blockAssignment[largest] {
				largest = idx
			}
		}
		blockAssignment[largest]--
	}
	return blockAssignment
}
