package cmd

import (
	"github.com/achilleasa/raybvh/config"
	"github.com/achilleasa/raybvh/log"
	"github.com/urfave/cli"
)

var logger = log.New("raybvh")

// Global flags shared by all commands.
var GlobalFlags = []cli.Flag{
	cli.BoolFlag{
		Name:  "v",
		Usage: "enable verbose logging",
	},
	cli.BoolFlag{
		Name:  "vv",
		Usage: "enable even more verbose logging",
	},
	cli.StringFlag{
		Name:  "config, c",
		Usage: "load settings from a TOML file",
	},
	cli.IntFlag{
		Name:  "spheres",
		Usage: "override the number of generated spheres",
	},
	cli.IntFlag{
		Name:  "leaf-size",
		Usage: "override the maximum number of primitives per BVH leaf",
	},
	cli.IntFlag{
		Name:  "rays",
		Usage: "override the number of cast rays",
	},
}

func setupLogging(ctx *cli.Context) {
	if ctx.GlobalBool("v") {
		log.SetLevel(log.Info)
	}

	if ctx.GlobalBool("vv") {
		log.SetLevel(log.Debug)
	}
}

// Load the configuration and apply flag overrides. A log level defined in the
// configuration takes precedence over the verbosity flags.
func loadConfig(ctx *cli.Context) (config.Config, error) {
	cfg := config.Default()

	var err error
	if path := ctx.GlobalString("config"); path != "" {
		if cfg, err = config.Load(path); err != nil {
			return cfg, err
		}
		logger.Infof("loaded config from %s", path)
	}

	if ctx.GlobalIsSet("spheres") {
		cfg.Scene.Spheres = ctx.GlobalInt("spheres")
	}
	if ctx.GlobalIsSet("leaf-size") {
		cfg.BVH.MaxLeafSize = ctx.GlobalInt("leaf-size")
	}
	if ctx.GlobalIsSet("rays") {
		cfg.Rays.Count = ctx.GlobalInt("rays")
	}

	if err = cfg.Validate(); err != nil {
		return cfg, err
	}

	if cfg.LogLevel != "" {
		level, err := log.ParseLevel(cfg.LogLevel)
		if err != nil {
			return cfg, err
		}
		log.SetLevel(level)
	}

	return cfg, nil
}
