package bvh

import (
	"strings"
	"testing"

	"github.com/achilleasa/raybvh/geometry"
	"github.com/achilleasa/raybvh/scene"
)

func TestStats(t *testing.T) {
	// Two clusters of 4 cubes end up in two leafs.
	workList := []geometry.Primitive{
		unitCube(0, 0, 0), unitCube(1, 0, 0), unitCube(0, 1, 0), unitCube(1, 1, 0),
		unitCube(100, 0, 0), unitCube(101, 0, 0), unitCube(100, 1, 0), unitCube(101, 1, 0),
	}
	stats := Build(workList, DefaultOptions()).Stats()

	type spec struct {
		name     string
		got, exp int
	}
	specs := []spec{
		{"primitives", stats.Primitives, 8},
		{"nodes", stats.Nodes, 3},
		{"leafs", stats.Leaves, 2},
		{"max depth", stats.MaxDepth, 1},
		{"max leaf items", stats.MaxLeafItems, 4},
		{"unbounded leafs", stats.UnboundedLeaves, 0},
		{"empty leafs", stats.EmptyLeaves, 0},
	}
	for _, s := range specs {
		if s.got != s.exp {
			t.Fatalf("expected %s to be %d; got %d", s.name, s.exp, s.got)
		}
	}

	if stats.AvgLeafItems != 4 {
		t.Fatalf("expected avg leaf items to be 4; got %f", stats.AvgLeafItems)
	}
	if stats.SAHCost <= 1 {
		t.Fatalf("expected SAH cost to include the root traversal and leaf costs; got %f", stats.SAHCost)
	}
}

func TestStatsTable(t *testing.T) {
	stats := Build(scene.DefaultGenerator().Generate(), DefaultOptions()).Stats()
	table := stats.Table()

	for _, exp := range []string{"Primitives", "1000", "Max depth", "SAH cost"} {
		if !strings.Contains(table, exp) {
			t.Fatalf("expected stats table to contain %q; got:\n%s", exp, table)
		}
	}
}
