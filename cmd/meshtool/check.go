package main

import (
	"go.uber.org/zap"

	"github.com/Faultbox/halfmesh/internal/config"
	"github.com/Faultbox/halfmesh/internal/logger"
	"github.com/Faultbox/halfmesh/pkg/halfedge"
	"github.com/Faultbox/halfmesh/pkg/polymesh"
	"github.com/Faultbox/halfmesh/pkg/quad"
	"github.com/Faultbox/halfmesh/pkg/unroll"
)

type checkResult struct {
	Step   string          `yaml:"step"`
	Counts halfedge.Counts `yaml:"counts"`
	Error  string          `yaml:"error,omitempty"`
}

// step is one operator run on a fresh copy of the shape.
type step struct {
	name string
	run  func(m *polymesh.Mesh) (*polymesh.Mesh, error)
}

func checkSteps(cfg *config.Config) []step {
	return []step{
		{"validate", func(m *polymesh.Mesh) (*polymesh.Mesh, error) { return m, nil }},
		{"quad fan", func(m *polymesh.Mesh) (*polymesh.Mesh, error) {
			_, err := polymesh.Quadrangulate(m, quad.Fan{})
			return m, err
		}},
		{"quad strip", func(m *polymesh.Mesh) (*polymesh.Mesh, error) {
			_, err := polymesh.Quadrangulate(m, quad.Strip{})
			return m, err
		}},
		{"dual", polymesh.Dual},
		{"unroll", func(m *polymesh.Mesh) (*polymesh.Mesh, error) {
			_, err := polymesh.Unroll(m, 0, unroll.WithLogger(logger.Named("check")))
			return m, err
		}},
		{"append", func(m *polymesh.Mesh) (*polymesh.Mesh, error) {
			m.Append(m.Duplicate(polymesh.Copier), polymesh.Copier)
			return m, nil
		}},
		{"remove and compact", func(m *polymesh.Mesh) (*polymesh.Mesh, error) {
			if err := m.RemoveFace(0); err != nil {
				return m, err
			}
			m.Compact()
			return m, nil
		}},
		{"transform", func(m *polymesh.Mesh) (*polymesh.Mesh, error) {
			return m, placeRigidly(m, parallelism(cfg.Parallel))
		}},
	}
}

func cmdCheck(args []string) error {
	cfg, _, err := setup(args)
	if err != nil {
		return err
	}
	defer logger.Sync()

	var results []checkResult
	failed := 0
	for _, s := range checkSteps(cfg) {
		m, err := buildShape(cfg.Shape)
		if err != nil {
			return err
		}
		out, err := s.run(m)
		if err == nil {
			err = out.Validate()
		}
		r := checkResult{Step: s.name}
		if out != nil {
			r.Counts = out.Counts()
		}
		if err != nil {
			r.Error = err.Error()
			failed++
			logger.Warn("check failed", zap.String("step", s.name), zap.Error(err))
		}
		results = append(results, r)
	}
	logger.Info("check finished", zap.Int("steps", len(results)), zap.Int("failed", failed))
	return writeReport(struct {
		Shape   string        `yaml:"shape"`
		Failed  int           `yaml:"failed"`
		Results []checkResult `yaml:"results"`
	}{cfg.Shape.Kind, failed, results})
}
