// Package config handles meshtool configuration loading and management.
package config

// Config holds all meshtool settings.
type Config struct {
	Logging  LoggingConfig  `yaml:"logging"`
	Parallel ParallelConfig `yaml:"parallel"`
	Shape    ShapeConfig    `yaml:"shape"`
	Quad     QuadConfig     `yaml:"quad"`
	Unroll   UnrollConfig   `yaml:"unroll"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level   string `yaml:"level"`
	LogFile string `yaml:"log_file"`
}

// ParallelConfig controls per-element computations.
type ParallelConfig struct {
	Workers int `yaml:"workers"` // 0 = GOMAXPROCS
	Grain   int `yaml:"grain"`   // 0 = automatic
}

// ShapeConfig selects the primitive the tool works on.
type ShapeConfig struct {
	Kind   string     `yaml:"kind"` // box, tetrahedron, bipyramid, grid, ngon
	Sides  int        `yaml:"sides"`
	Radius float64    `yaml:"radius"`
	Height float64    `yaml:"height"`
	Size   [3]float64 `yaml:"size"`
	Cells  [2]int     `yaml:"cells"`
}

// QuadConfig holds quadrangulation settings.
type QuadConfig struct {
	Strategy string `yaml:"strategy"` // fan or strip
}

// UnrollConfig holds unroll settings.
type UnrollConfig struct {
	Seed   int     `yaml:"seed"`
	Factor float64 `yaml:"factor"`
	Layout bool    `yaml:"layout"` // write texture coordinates after a full unroll
}

// Default returns a Config with sensible default values.
func Default() *Config {
	return &Config{
		Logging: LoggingConfig{
			Level:   "info",
			LogFile: "",
		},
		Parallel: ParallelConfig{
			Workers: 0,
			Grain:   0,
		},
		Shape: ShapeConfig{
			Kind:   "box",
			Sides:  6,
			Radius: 1,
			Height: 1,
			Size:   [3]float64{1, 1, 1},
			Cells:  [2]int{4, 4},
		},
		Quad: QuadConfig{
			Strategy: "strip",
		},
		Unroll: UnrollConfig{
			Seed:   0,
			Factor: 1,
			Layout: true,
		},
	}
}
