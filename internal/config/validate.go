package config

import (
	"errors"
	"fmt"
)

// ErrInvalid reports a setting outside its allowed range.
var ErrInvalid = errors.New("invalid config")

// Validate checks settings that the loaders cannot enforce.
func (c *Config) Validate() error {
	switch c.Shape.Kind {
	case "box", "tetrahedron", "bipyramid", "grid", "ngon":
	default:
		return fmt.Errorf("shape kind %q: %w", c.Shape.Kind, ErrInvalid)
	}
	switch c.Quad.Strategy {
	case "fan", "strip":
	default:
		return fmt.Errorf("quad strategy %q: %w", c.Quad.Strategy, ErrInvalid)
	}
	if c.Unroll.Factor < 0 || c.Unroll.Factor > 1 {
		return fmt.Errorf("unroll factor %v: %w", c.Unroll.Factor, ErrInvalid)
	}
	if c.Unroll.Seed < 0 {
		return fmt.Errorf("unroll seed %d: %w", c.Unroll.Seed, ErrInvalid)
	}
	if c.Parallel.Workers < 0 || c.Parallel.Grain < 0 {
		return fmt.Errorf("parallel workers=%d grain=%d: %w", c.Parallel.Workers, c.Parallel.Grain, ErrInvalid)
	}
	return nil
}
