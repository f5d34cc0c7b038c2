package main

import (
	"fmt"
	"strconv"

	"go.uber.org/zap"

	"github.com/Faultbox/halfmesh/internal/config"
	"github.com/Faultbox/halfmesh/internal/logger"
	"github.com/Faultbox/halfmesh/pkg/halfedge"
	"github.com/Faultbox/halfmesh/pkg/polymesh"
	"github.com/Faultbox/halfmesh/pkg/unroll"
)

func cmdInfo(args []string) error {
	cfg, _, err := setup(args)
	if err != nil {
		return err
	}
	defer logger.Sync()

	m, err := buildShape(cfg.Shape)
	if err != nil {
		return err
	}
	geo, err := describeGeometry(m, parallelism(cfg.Parallel))
	if err != nil {
		return err
	}
	return writeReport(struct {
		Shape    string         `yaml:"shape"`
		Topology topologyReport `yaml:"topology"`
		Geometry geometryReport `yaml:"geometry"`
	}{cfg.Shape.Kind, describeTopology(m), geo})
}

func cmdQuad(args []string) error {
	cfg, _, err := setup(args)
	if err != nil {
		return err
	}
	defer logger.Sync()

	st, err := strategy(cfg.Quad.Strategy)
	if err != nil {
		return err
	}
	m, err := buildShape(cfg.Shape)
	if err != nil {
		return err
	}
	before := m.Counts()
	splits, err := polymesh.Quadrangulate(m, st)
	if err != nil {
		return err
	}
	logger.Info("quadrangulated",
		zap.String("strategy", cfg.Quad.Strategy),
		zap.Int("splits", splits))

	sides := make(map[int]int)
	for f := range m.Faces.All() {
		sides[m.LoopLength(m.First(f))]++
	}
	return writeReport(struct {
		Shape    string          `yaml:"shape"`
		Strategy string          `yaml:"strategy"`
		Before   halfedge.Counts `yaml:"before"`
		Splits   int             `yaml:"splits"`
		Sides    map[int]int     `yaml:"sides"`
		Topology topologyReport  `yaml:"topology"`
	}{cfg.Shape.Kind, cfg.Quad.Strategy, before, splits, sides, describeTopology(m)})
}

func cmdUnroll(args []string) error {
	cfg, _, err := setup(args)
	if err != nil {
		return err
	}
	defer logger.Sync()

	m, err := buildShape(cfg.Shape)
	if err != nil {
		return err
	}
	res, err := polymesh.Unroll(m, cfg.Unroll.Seed,
		unroll.WithFactor(cfg.Unroll.Factor),
		unroll.WithLogger(logger.Named("unroll")))
	if err != nil {
		return err
	}
	laidOut := cfg.Unroll.Layout && cfg.Unroll.Factor == 1
	var stretch *span
	if laidOut {
		if err := polymesh.Layout(m, cfg.Unroll.Seed); err != nil {
			return err
		}
		s := layoutStretch(m)
		stretch = &s
	}
	geo, err := describeGeometry(m, parallelism(cfg.Parallel))
	if err != nil {
		return err
	}
	return writeReport(struct {
		Shape     string         `yaml:"shape"`
		Seed      int            `yaml:"seed"`
		Factor    float64        `yaml:"factor"`
		Cut       int            `yaml:"cut"`
		Crossed   int            `yaml:"crossed"`
		Seams     int            `yaml:"seams"`
		Unreached []int          `yaml:"unreached,omitempty"`
		LaidOut   bool           `yaml:"laid_out"`
		Stretch   *span          `yaml:"layout_stretch,omitempty"`
		Topology  topologyReport `yaml:"topology"`
		Geometry  geometryReport `yaml:"geometry"`
	}{
		cfg.Shape.Kind, cfg.Unroll.Seed, cfg.Unroll.Factor,
		res.Cut, res.Crossed, polymesh.Seams(m), res.Unreached, laidOut,
		stretch, describeTopology(m), geo,
	})
}

func cmdDual(args []string) error {
	cfg, _, err := setup(args)
	if err != nil {
		return err
	}
	defer logger.Sync()

	m, err := buildShape(cfg.Shape)
	if err != nil {
		return err
	}
	d, err := polymesh.Dual(m)
	if err != nil {
		return err
	}
	return writeReport(struct {
		Shape  string         `yaml:"shape"`
		Primal topologyReport `yaml:"primal"`
		Dual   topologyReport `yaml:"dual"`
	}{cfg.Shape.Kind, describeTopology(m), describeTopology(d)})
}

func cmdDetach(args []string) error {
	cfg, rest, err := setup(args)
	if err != nil {
		return err
	}
	defer logger.Sync()

	if len(rest) != 2 {
		return fmt.Errorf("usage: meshtool detach [options] <u> <v>")
	}
	u, err := strconv.Atoi(rest[0])
	if err != nil {
		return fmt.Errorf("vertex %q: %w", rest[0], err)
	}
	v, err := strconv.Atoi(rest[1])
	if err != nil {
		return fmt.Errorf("vertex %q: %w", rest[1], err)
	}

	m, err := buildShape(cfg.Shape)
	if err != nil {
		return err
	}
	if !m.Vertices.Used(u) || !m.Vertices.Used(v) {
		return fmt.Errorf("vertices %d and %d: %w", u, v, halfedge.ErrNotOwned)
	}
	h := m.FindHalfedge(u, v)
	if h == halfedge.None {
		return fmt.Errorf("no edge between %d and %d", u, v)
	}
	before := m.Vertices.Len()
	n, err := m.DetachEdge(h)
	if err != nil {
		return err
	}
	logger.Debug("edge detached", zap.Int("halfedge", h), zap.Int("copy", n))

	return writeReport(struct {
		Shape       string         `yaml:"shape"`
		Halfedge    int            `yaml:"halfedge"`
		Copy        int            `yaml:"copy"`
		NewVertices int            `yaml:"new_vertices"`
		Topology    topologyReport `yaml:"topology"`
	}{cfg.Shape.Kind, h, n, m.Vertices.Len() - before, describeTopology(m)})
}

func cmdConfig(args []string) error {
	cfg, rest, err := setup(args)
	if err != nil {
		return err
	}
	defer logger.Sync()
	switch {
	case len(rest) == 0:
		return writeReport(cfg)
	case rest[0] == "save":
		if err := cfg.Save(); err != nil {
			return err
		}
		fmt.Printf("Saved to %s\n", config.ConfigDir())
		return nil
	default:
		if err := cfg.SaveTo(rest[0]); err != nil {
			return err
		}
		logger.Info("config written", zap.String("path", rest[0]))
		return nil
	}
}
