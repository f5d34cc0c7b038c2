package config

import "flag"

var (
	flagConfig   = flag.String("config", "", "Path to config file")
	flagDebug    = flag.Bool("debug", false, "Enable debug logging")
	flagLogFile  = flag.String("log", "", "Also log to this file")
	flagShape    = flag.String("shape", "", "Primitive: box, tetrahedron, bipyramid, grid, ngon")
	flagSides    = flag.Int("sides", 0, "Side count for ngon and bipyramid")
	flagStrategy = flag.String("strategy", "", "Quadrangulation strategy: fan or strip")
	flagSeed     = flag.Int("seed", -1, "Seed face for unroll")
	flagFactor   = flag.Float64("factor", -1, "Unroll factor in [0, 1]")
	flagWorkers  = flag.Int("workers", -1, "Worker goroutines (0 = all CPUs)")
)

// ParseFlags parses command-line flags from args, which excludes the
// program name and subcommand.
func ParseFlags(args []string) error {
	return flag.CommandLine.Parse(args)
}

// Args returns the positional arguments left after ParseFlags.
func Args() []string {
	return flag.Args()
}

// ConfigPath returns the explicit config path if provided via --config flag.
func ConfigPath() string {
	return *flagConfig
}

// applyFlags applies CLI flag overrides to the config.
func applyFlags(cfg *Config) {
	if *flagDebug {
		cfg.Logging.Level = "debug"
	}
	if *flagLogFile != "" {
		cfg.Logging.LogFile = *flagLogFile
	}
	if *flagShape != "" {
		cfg.Shape.Kind = *flagShape
	}
	if *flagSides > 0 {
		cfg.Shape.Sides = *flagSides
	}
	if *flagStrategy != "" {
		cfg.Quad.Strategy = *flagStrategy
	}
	if *flagSeed >= 0 {
		cfg.Unroll.Seed = *flagSeed
	}
	if *flagFactor >= 0 {
		cfg.Unroll.Factor = *flagFactor
	}
	if *flagWorkers >= 0 {
		cfg.Parallel.Workers = *flagWorkers
	}
}
