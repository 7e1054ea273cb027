package bvh

import (
	"bytes"
	"fmt"

	"github.com/olekukonko/tablewriter"
)

// Cost of visiting an internal node relative to a primitive intersection
// test. Used when estimating the SAH cost of a built tree.
const traversalCost = 1.0

// Tree statistics.
type Stats struct {
	Primitives      int
	Nodes           int
	Leaves          int
	UnboundedLeaves int
	EmptyLeaves     int
	MaxDepth        int
	MaxLeafItems    int
	AvgLeafItems    float64

	// Expected cost of a random ray query, estimated with the surface area
	// heuristic over the bounded part of the tree.
	SAHCost float64
}

// Walk the tree and collect statistics.
func (t *Tree) Stats() Stats {
	var s Stats

	var rootArea float64
	if t.root.box != nil {
		rootArea = t.root.box.SurfaceArea()
	}

	t.root.Walk(func(node *Node, depth int) bool {
		s.Nodes++
		if depth > s.MaxDepth {
			s.MaxDepth = depth
		}

		var relArea float64
		if node.box != nil && rootArea > 0 {
			relArea = node.box.SurfaceArea() / rootArea
		}

		if node.kind == Internal {
			s.SAHCost += relArea * traversalCost
			return true
		}

		count := len(node.members)
		s.Leaves++
		s.Primitives += count
		s.SAHCost += relArea * float64(count)
		if count > s.MaxLeafItems {
			s.MaxLeafItems = count
		}
		switch {
		case count == 0:
			s.EmptyLeaves++
		case node.box == nil:
			s.UnboundedLeaves++
		}
		return true
	})

	if s.Leaves > 0 {
		s.AvgLeafItems = float64(s.Primitives) / float64(s.Leaves)
	}
	return s
}

// Build a tabular representation of the tree statistics.
func (s Stats) Table() string {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAlignment(tablewriter.ALIGN_LEFT)
	table.SetAutoFormatHeaders(false)
	table.SetHeader([]string{"Metric", "Value"})
	table.Append([]string{"Primitives", fmt.Sprintf("%d", s.Primitives)})
	table.Append([]string{"Nodes", fmt.Sprintf("%d", s.Nodes)})
	table.Append([]string{"Leafs", fmt.Sprintf("%d", s.Leaves)})
	table.Append([]string{"Unbounded leafs", fmt.Sprintf("%d", s.UnboundedLeaves)})
	table.Append([]string{"Empty leafs", fmt.Sprintf("%d", s.EmptyLeaves)})
	table.Append([]string{"Max depth", fmt.Sprintf("%d", s.MaxDepth)})
	table.Append([]string{"Max leaf items", fmt.Sprintf("%d", s.MaxLeafItems)})
	table.Append([]string{"Avg leaf items", fmt.Sprintf("%.2f", s.AvgLeafItems)})
	table.SetFooter([]string{"SAH cost", fmt.Sprintf("%.3f", s.SAHCost)})

	table.Render()
	return buf.String()
}
