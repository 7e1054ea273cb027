package bvh

import (
	"cmp"
	"math"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/achilleasa/raybvh/geometry"
	"github.com/achilleasa/raybvh/log"
)

const (
	// The default maximum number of primitives stored in a leaf.
	DefaultMaxLeafSize = 6

	// Partitions smaller than this are built on the calling goroutine even
	// when parallel builds are enabled.
	DefaultParallelThreshold = 1024
)

// Options for tuning the BVH builder.
type Options struct {
	// The builder creates a leaf once the work list length drops to this value.
	MaxLeafSize int

	// Build the two halves of large partitions in parallel.
	Parallel bool

	// The minimum partition length for a parallel build.
	ParallelThreshold int
}

// Get the default builder options.
func DefaultOptions() Options {
	return Options{
		MaxLeafSize:       DefaultMaxLeafSize,
		ParallelThreshold: DefaultParallelThreshold,
	}
}

type builder struct {
	logger log.Logger
	opts   Options

	// The primitives to partition and their cached bboxes. Both lists are
	// read-only while building; partitions refer to them by index.
	items []geometry.Primitive
	boxes []*geometry.BBox

	stats buildStats
}

// Node counters updated while building. Partitions may be built by
// concurrent goroutines.
type buildStats struct {
	nodes    atomic.Int32
	leafs    atomic.Int32
	maxDepth atomic.Int32
}

func (s *buildStats) visit(depth int, leaf bool) {
	s.nodes.Add(1)
	if leaf {
		s.leafs.Add(1)
	}
	for {
		cur := s.maxDepth.Load()
		if int32(depth) <= cur || s.maxDepth.CompareAndSwap(cur, int32(depth)) {
			return
		}
	}
}

// Construct a BVH from a set of primitives.
//
// The builder uses the surface area heuristic (SAH) to pick the split point
// of each partition:
// cost = 1 + (left count * left bbox area + right count * right bbox area) / node bbox area
//
// Candidate splits are evaluated between every pair of adjacent primitives
// after sorting them by bbox center along each axis. Partitions containing at
// most opts.MaxLeafSize primitives become leafs.
//
// Work lists with at most opts.MaxLeafSize primitives always build a single
// leaf. Otherwise, unbounded primitives (nil bbox) can not be sorted by
// center; they are kept out of the SAH partitioning and stored in dedicated
// leafs that are never pruned during traversal.
//
// The work list itself is not modified.
func Build(workList []geometry.Primitive, opts Options) *Tree {
	if opts.MaxLeafSize < 1 {
		opts.MaxLeafSize = DefaultMaxLeafSize
	}
	if opts.ParallelThreshold < 1 {
		opts.ParallelThreshold = DefaultParallelThreshold
	}

	b := &builder{
		logger: log.New("bvh builder"),
		opts:   opts,
		items:  workList,
		boxes:  make([]*geometry.BBox, len(workList)),
	}

	start := time.Now()

	bounded := make([]int, 0, len(workList))
	var unbounded []int
	for index, item := range workList {
		b.boxes[index] = item.BBox()
		if b.boxes[index] == nil {
			unbounded = append(unbounded, index)
			continue
		}
		bounded = append(bounded, index)
	}

	var root *Node
	switch {
	case len(workList) <= opts.MaxLeafSize:
		// The root is never pruned so its bbox may ignore unbounded members.
		// An empty work list ends up here and yields an empty leaf.
		all := make([]int, len(workList))
		for index := range all {
			all[index] = index
		}
		root = b.createLeaf(all, 0)
	case len(unbounded) == 0:
		root = b.partition(bounded, 0)
	case len(bounded) == 0:
		root = b.partitionUnbounded(unbounded, 0)
	default:
		b.stats.visit(0, false)
		root = newInternal(b.partition(bounded, 1), b.partitionUnbounded(unbounded, 1))
	}

	tree := &Tree{
		root:      root,
		unbounded: len(unbounded) != 0,
	}

	b.logger.Debugf(
		"BVH tree build time: %d ms, primitives: %d (%d unbounded), maxDepth: %d, nodes: %d, leafs: %d",
		time.Since(start).Nanoseconds()/1e6,
		len(workList), len(unbounded),
		b.stats.maxDepth.Load(), b.stats.nodes.Load(), b.stats.leafs.Load(),
	)
	return tree
}

// Partition a work list of bounded primitive indices and return the subtree root.
func (b *builder) partition(workList []int, depth int) *Node {
	if len(workList) <= b.opts.MaxLeafSize {
		return b.createLeaf(workList, depth)
	}

	splitAxis, splitIndex := b.findSplit(workList)

	// Either no split could be scored or all primitives end up on one side
	if splitAxis < 0 || splitIndex <= 0 || splitIndex >= len(workList) {
		return b.createLeaf(workList, depth)
	}

	b.stats.visit(depth, false)

	b.sortByCenter(workList, splitAxis)
	leftWorkList := workList[:splitIndex:splitIndex]
	rightWorkList := workList[splitIndex:]

	var left, right *Node
	if b.opts.Parallel && len(workList) >= b.opts.ParallelThreshold {
		var wg sync.WaitGroup
		wg.Add(1)
		go func() {
			defer wg.Done()
			left = b.partition(leftWorkList, depth+1)
		}()
		right = b.partition(rightWorkList, depth+1)
		wg.Wait()
	} else {
		left = b.partition(leftWorkList, depth+1)
		right = b.partition(rightWorkList, depth+1)
	}

	return newInternal(left, right)
}

// Evaluate the SAH cost of every split candidate along each axis and return
// the axis and index of the cheapest one. On ties the first candidate wins,
// scanning axes in X, Y, Z order and indices in increasing order. An axis
// value of -1 indicates that no split could be scored.
//
// The work list is reordered as a side effect.
func (b *builder) findSplit(workList []int) (splitAxis, splitIndex int) {
	n := len(workList)

	var nodeBox *geometry.BBox
	for _, index := range workList {
		nodeBox = geometry.Combine(nodeBox, b.boxes[index])
	}

	// Normalizing by a zero area would turn every cost into NaN. Any
	// positive constant yields the same argmin.
	totalArea := nodeBox.SurfaceArea()
	if totalArea <= 0 {
		totalArea = 1
	}

	leftBoxes := make([]*geometry.BBox, n)
	rightBoxes := make([]*geometry.BBox, n)

	bestCost := math.Inf(1)
	splitAxis, splitIndex = -1, -1
	for axis := 0; axis < 3; axis++ {
		b.sortByCenter(workList, axis)

		var acc *geometry.BBox
		for i := 0; i < n; i++ {
			acc = geometry.Combine(acc, b.boxes[workList[i]])
			leftBoxes[i] = acc
		}
		acc = nil
		for i := n - 1; i >= 0; i-- {
			acc = geometry.Combine(acc, b.boxes[workList[i]])
			rightBoxes[i] = acc
		}

		for i := 1; i < n; i++ {
			cost := 1 + (float64(i)*leftBoxes[i-1].SurfaceArea()+float64(n-i)*rightBoxes[i].SurfaceArea())/totalArea
			if cost < bestCost {
				bestCost = cost
				splitAxis = axis
				splitIndex = i
			}
		}
	}

	return splitAxis, splitIndex
}

// Stable sort of a work list by the bbox center coordinate along axis.
func (b *builder) sortByCenter(workList []int, axis int) {
	slices.SortStableFunc(workList, func(i, j int) int {
		return cmp.Compare(b.boxes[i].Center[axis], b.boxes[j].Center[axis])
	})
}

// Split a work list of unbounded primitives into leafs without any spatial
// ordering.
func (b *builder) partitionUnbounded(workList []int, depth int) *Node {
	if len(workList) <= b.opts.MaxLeafSize {
		return b.createLeaf(workList, depth)
	}

	b.stats.visit(depth, false)
	mid := len(workList) / 2
	return newInternal(
		b.partitionUnbounded(workList[:mid:mid], depth+1),
		b.partitionUnbounded(workList[mid:], depth+1),
	)
}

// Setup a leaf node containing all items in the work list.
func (b *builder) createLeaf(workList []int, depth int) *Node {
	b.stats.visit(depth, true)
	members := make([]geometry.Primitive, len(workList))
	for i, index := range workList {
		members[i] = b.items[index]
	}
	return newLeaf(members)
}
