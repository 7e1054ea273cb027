package main

import (
	"os"

	"github.com/achilleasa/raybvh/cmd"
	"github.com/achilleasa/raybvh/log"
	"github.com/urfave/cli"
)

func main() {
	cli.VersionFlag = cli.BoolFlag{
		Name:  "version",
		Usage: "print only the version",
	}

	app := cli.NewApp()
	app.Name = "raybvh"
	app.Usage = "build and query bounding volume hierarchies for ray casting"
	app.Version = "0.1.0"
	app.Flags = cmd.GlobalFlags
	app.Commands = []cli.Command{
		{
			Name:  "stats",
			Usage: "build a BVH for the configured scene and display tree statistics",
			Description: `
Generate a random scene using the settings from the config file (or the
defaults), partition it into a BVH using the surface area heuristic and
print statistics about the generated tree.`,
			Action: cmd.ShowTreeStats,
		},
		{
			Name:  "verify",
			Usage: "check BVH query results against a flat primitive list",
			Description: `
Cast random rays through both a BVH and an unaccelerated primitive list built
from the same scene. The command fails if any ray reports a different set of
intersections.`,
			Action: cmd.Verify,
		},
		{
			Name:  "bench",
			Usage: "compare ray query times for a BVH and a flat primitive list",
			Flags: []cli.Flag{
				cli.IntFlag{
					Name:  "passes",
					Value: 3,
					Usage: "number of times to trace the ray batch",
				},
			},
			Action: cmd.Bench,
		},
		{
			Name:   "list-devices",
			Usage:  "list the cpu devices available for tracing",
			Action: cmd.ListDevices,
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.New("raybvh").Error(err)
		os.Exit(1)
	}
}
