package cmd

import (
	"time"

	"github.com/achilleasa/raybvh/accel/bvh"
	"github.com/urfave/cli"
)

// Build a BVH for the configured scene and display its statistics.
func ShowTreeStats(ctx *cli.Context) error {
	setupLogging(ctx)

	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	workList := cfg.Scene.Generate()
	logger.Noticef("building BVH tree (%d primitives)", len(workList))

	start := time.Now()
	tree := bvh.Build(workList, cfg.BVH.Options())
	logger.Noticef("built BVH tree in %s", time.Since(start))

	logger.Noticef("tree statistics:\n%s", tree.Stats().Table())
	return nil
}
