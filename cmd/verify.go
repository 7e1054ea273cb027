package cmd

import (
	"fmt"

	"github.com/achilleasa/raybvh/accel/bvh"
	"github.com/achilleasa/raybvh/geometry"
	"github.com/achilleasa/raybvh/scene"
	"github.com/urfave/cli"
)

// Cast random rays through a BVH and a flat composite built from the same
// scene and check that both report the same intersections.
func Verify(ctx *cli.Context) error {
	setupLogging(ctx)

	cfg, err := loadConfig(ctx)
	if err != nil {
		return err
	}

	workList := cfg.Scene.Generate()
	tree := bvh.Build(workList, cfg.BVH.Options())
	flat := geometry.NewComposite(workList...)

	rays := scene.RandomRays(cfg.Rays.Seed, cfg.Rays.Count, cfg.Scene.Extent)
	maxDistance := cfg.Rays.Limit()

	mismatches, hits := 0, 0
	for index, ray := range rays {
		treeHits := tree.Intersect(ray, maxDistance)
		flatHits := flat.Intersect(ray, maxDistance)
		hits += len(flatHits)

		if !geometry.SameIntersections(treeHits, flatHits) {
			mismatches++
			logger.Warningf("ray %d (origin %v, dir %v): BVH reported %d intersections; expected %d", index, ray.Origin, ray.Dir, len(treeHits), len(flatHits))
		}
	}

	if mismatches != 0 {
		return fmt.Errorf("verify: %d of %d rays produced different intersections", mismatches, len(rays))
	}

	logger.Noticef("verified %d rays against %d primitives (%d intersections)", len(rays), len(workList), hits)
	return nil
}
