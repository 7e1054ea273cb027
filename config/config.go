// Package config loads the settings shared by the raybvh commands from a
// TOML document.
package config

import (
	"bytes"
	"math"
	"os"
	"runtime"

	"github.com/achilleasa/raybvh/accel/bvh"
	"github.com/achilleasa/raybvh/log"
	"github.com/achilleasa/raybvh/scene"
	"github.com/mitchellh/go-homedir"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/pkg/errors"
)

type Config struct {
	// Optional log level; overrides the -v / -vv flags when set.
	LogLevel string `toml:"log_level"`

	Scene scene.Generator `toml:"scene"`
	BVH   BVH             `toml:"bvh"`
	Rays  Rays            `toml:"rays"`
}

// BVH builder settings.
type BVH struct {
	MaxLeafSize       int  `toml:"max_leaf_size"`
	Parallel          bool `toml:"parallel"`
	ParallelThreshold int  `toml:"parallel_threshold"`
}

// Ray casting settings.
type Rays struct {
	Seed  int64 `toml:"seed"`
	Count int   `toml:"count"`

	// Zero means that intersections are not limited by distance.
	MaxDistance float64 `toml:"max_distance"`

	// Number of goroutines casting rays.
	Workers int `toml:"workers"`
}

// Get the default configuration.
func Default() Config {
	opts := bvh.DefaultOptions()
	return Config{
		Scene: scene.DefaultGenerator(),
		BVH: BVH{
			MaxLeafSize:       opts.MaxLeafSize,
			ParallelThreshold: opts.ParallelThreshold,
		},
		Rays: Rays{
			Seed:    7,
			Count:   100,
			Workers: runtime.NumCPU(),
		},
	}
}

// Load a configuration file. Settings missing from the file keep their
// default values; unknown settings are rejected. A leading ~ in the path is
// expanded to the user home directory.
func Load(path string) (Config, error) {
	cfg := Default()

	expPath, err := homedir.Expand(path)
	if err != nil {
		return cfg, errors.Wrapf(err, "config: could not expand path %q", path)
	}

	data, err := os.ReadFile(expPath)
	if err != nil {
		return cfg, errors.Wrap(err, "config: could not read config file")
	}

	if err = Decode(data, &cfg); err != nil {
		return cfg, errors.Wrapf(err, "config: could not parse %s", expPath)
	}

	return cfg, nil
}

// Decode a TOML document on top of cfg and validate the result.
func Decode(data []byte, cfg *Config) error {
	dec := toml.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(cfg); err != nil {
		return err
	}

	return cfg.Validate()
}

// Validate the configuration.
func (c Config) Validate() error {
	if c.LogLevel != "" {
		if _, err := log.ParseLevel(c.LogLevel); err != nil {
			return err
		}
	}

	switch {
	case c.Scene.Spheres < 0 || c.Scene.Triangles < 0 || c.Scene.Planes < 0:
		return errors.New("config: scene primitive counts must not be negative")
	case c.Scene.Extent <= 0:
		return errors.New("config: scene extent must be positive")
	case c.Scene.MinRadius <= 0 || c.Scene.MaxRadius < c.Scene.MinRadius:
		return errors.Errorf("config: invalid scene radius range [%g, %g]", c.Scene.MinRadius, c.Scene.MaxRadius)
	case c.BVH.MaxLeafSize < 1:
		return errors.New("config: bvh max_leaf_size must be at least 1")
	case c.Rays.Count < 1:
		return errors.New("config: ray count must be at least 1")
	case c.Rays.MaxDistance < 0:
		return errors.New("config: ray max_distance must not be negative")
	case c.Rays.Workers < 1:
		return errors.New("config: ray workers must be at least 1")
	}

	return nil
}

// Get the distance limit for ray queries.
func (r Rays) Limit() float64 {
	if r.MaxDistance == 0 {
		return math.Inf(1)
	}
	return r.MaxDistance
}

// Get the BVH builder options.
func (b BVH) Options() bvh.Options {
	return bvh.Options{
		MaxLeafSize:       b.MaxLeafSize,
		Parallel:          b.Parallel,
		ParallelThreshold: b.ParallelThreshold,
	}
}
