package cmd

import (
	"bytes"
	"fmt"
	"time"

	"github.com/achilleasa/raybvh/accel/bvh"
	"github.com/achilleasa/raybvh/geometry"
	"github.com/achilleasa/raybvh/scene"
	"github.com/achilleasa/raybvh/tracer"
	"github.com/olekukonko/tablewriter"
	"github.com/urfave/cli"
)

type benchResult struct {
	strategy  string
	buildTime time.Duration
	rays      int
	hits      int
	traceTime time.Duration
}

// Compare ray query times for a BVH and a flat composite built from the same
// scene. Rays are traced in several passes by a pool of cpu tracers; the
// block scheduler rebalances work between passes.
func Bench(ctx *cli.Context) error {
	setupLogging(ctx)

	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	passes := ctx.Int("passes")
	if passes < 1 {
		return fmt.Errorf("bench: passes must be at least 1")
	}

	workList := cfg.Scene.Generate()
	rays := scene.RandomRays(cfg.Rays.Seed, cfg.Rays.Count, cfg.Scene.Extent)
	maxDistance := cfg.Rays.Limit()

	devices := cpuDevices()
	logger.Noticef("benchmarking %d rays against %d primitives using %d tracers on %s", len(rays), len(workList), cfg.Rays.Workers, devices[0].Name)

	start := time.Now()
	tree := bvh.Build(workList, cfg.BVH.Options())
	treeBuildTime := time.Since(start)

	start = time.Now()
	flat := geometry.NewComposite(workList...)
	flatBuildTime := time.Since(start)

	targets := []struct {
		strategy  string
		target    geometry.Intersectable
		buildTime time.Duration
	}{
		{"bvh", tree, treeBuildTime},
		{"flat", flat, flatBuildTime},
	}

	results := make([]benchResult, 0, len(targets))
	for _, t := range targets {
		tracers := tracer.NewCPUTracers(cfg.Rays.Workers, t.target)
		sch := tracer.PerfectScheduler()

		res := benchResult{strategy: t.strategy, buildTime: t.buildTime}
		var stats tracer.BatchStats
		for pass := 0; pass < passes; pass++ {
			stats = tracer.TraceBatch(tracers, sch, rays, maxDistance)
			res.rays += stats.Rays
			res.hits += stats.Hits
			res.traceTime += stats.TraceTime
		}

		displayBatchStats(t.strategy, stats)
		results = append(results, res)
	}

	if results[0].hits != results[1].hits {
		logger.Warningf("bvh reported %d intersections; flat composite reported %d", results[0].hits, results[1].hits)
	}

	displayBenchResults(results)
	return nil
}

func displayBatchStats(strategy string, stats tracer.BatchStats) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Tracer", "Block length", "% of batch", "Hits", "Trace time"})
	for _, stat := range stats.Tracers {
		table.Append([]string{
			stat.Id,
			fmt.Sprintf("%d", stat.BlockLen),
			fmt.Sprintf("%02.1f %%", stat.BatchPercent),
			fmt.Sprintf("%d", stat.Hits),
			stat.TraceTime.String(),
		})
	}
	table.SetFooter([]string{"", "", "", "TOTAL", stats.TraceTime.String()})

	table.Render()
	logger.Infof("last %s batch statistics\n%s", strategy, buf.String())
}

func displayBenchResults(results []benchResult) {
	var buf bytes.Buffer
	table := tablewriter.NewWriter(&buf)
	table.SetAutoFormatHeaders(false)
	table.SetAutoWrapText(false)
	table.SetHeader([]string{"Strategy", "Build time", "Rays", "Hits", "Trace time", "Rays/sec"})
	for _, res := range results {
		table.Append([]string{
			res.strategy,
			res.buildTime.String(),
			fmt.Sprintf("%d", res.rays),
			fmt.Sprintf("%d", res.hits),
			res.traceTime.String(),
			fmt.Sprintf("%.0f", float64(res.rays)/res.traceTime.Seconds()),
		})
	}

	table.Render()
	logger.Noticef("benchmark results\n%s", buf.String())
}
