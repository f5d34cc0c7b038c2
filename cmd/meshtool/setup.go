package main

import (
	"fmt"
	"os"

	"gonum.org/v1/gonum/spatial/r3"
	"gopkg.in/yaml.v3"

	"github.com/Faultbox/halfmesh/internal/config"
	"github.com/Faultbox/halfmesh/internal/logger"
	"github.com/Faultbox/halfmesh/pkg/polymesh"
	"github.com/Faultbox/halfmesh/pkg/quad"
)

// setup parses flags, loads the config and starts logging. It returns the
// positional arguments left over.
func setup(args []string) (*config.Config, []string, error) {
	if err := config.ParseFlags(args); err != nil {
		return nil, nil, err
	}
	cfg, err := config.Load()
	if err != nil {
		return nil, nil, err
	}
	if err := logger.Init(cfg.Logging.Level, cfg.Logging.LogFile); err != nil {
		return nil, nil, err
	}
	return cfg, config.Args(), nil
}

// buildShape generates the primitive selected by cfg.
func buildShape(cfg config.ShapeConfig) (*polymesh.Mesh, error) {
	size := r3.Vec{X: cfg.Size[0], Y: cfg.Size[1], Z: cfg.Size[2]}
	switch cfg.Kind {
	case "box":
		return polymesh.Box(size)
	case "tetrahedron":
		return polymesh.Tetrahedron(cfg.Radius)
	case "bipyramid":
		return polymesh.Bipyramid(cfg.Sides, cfg.Radius, cfg.Height)
	case "grid":
		return polymesh.Grid(cfg.Cells[0], cfg.Cells[1], size)
	case "ngon":
		return polymesh.Ngon(cfg.Sides, cfg.Radius)
	default:
		return nil, fmt.Errorf("unknown shape %q", cfg.Kind)
	}
}

func strategy(name string) (quad.Strategy, error) {
	switch name {
	case "fan":
		return quad.Fan{}, nil
	case "strip":
		return quad.Strip{}, nil
	default:
		return nil, fmt.Errorf("unknown strategy %q", name)
	}
}

func parallelism(cfg config.ParallelConfig) polymesh.Parallelism {
	return polymesh.Parallelism{Workers: cfg.Workers, Grain: cfg.Grain}
}

// writeReport prints v as YAML on stdout.
func writeReport(v any) error {
	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}
