package cli

import (
	"fmt"
	"math/rand"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/riteshydv05/rubics-cube-sub000/solver"
)

// solverConfig is the YAML solver configuration. Zero values fall back to
// the solver defaults.
type solverConfig struct {
	TimeoutMs     int    `yaml:"timeout_ms"`
	MaxDepth      int    `yaml:"max_depth"`
	NodeLimit     int    `yaml:"node_limit"`
	MaxIterations int    `yaml:"max_iterations"`
	Restarts      int    `yaml:"restarts"`
	Seed          *int64 `yaml:"seed"`
}

// loadSolverConfig reads the YAML config named by --config, or returns an
// empty config when the flag is unset.
func loadSolverConfig() (*solverConfig, error) {
	cfg := &solverConfig{}
	if configPath == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}
	return cfg, nil
}

// options converts the config into solver options.
func (c *solverConfig) options() []solver.Option {
	var opts []solver.Option
	if c.TimeoutMs > 0 {
		opts = append(opts, solver.WithTimeout(time.Duration(c.TimeoutMs)*time.Millisecond))
	}
	if c.MaxDepth > 0 {
		opts = append(opts, solver.WithMaxDepth(c.MaxDepth))
	}
	if c.NodeLimit > 0 {
		opts = append(opts, solver.WithNodeLimit(c.NodeLimit))
	}
	if c.MaxIterations > 0 {
		opts = append(opts, solver.WithMaxIterations(c.MaxIterations))
	}
	if c.Restarts > 0 {
		opts = append(opts, solver.WithRestarts(c.Restarts))
	}
	if c.Seed != nil {
		opts = append(opts, solver.WithRand(rand.New(rand.NewSource(*c.Seed))))
	}
	return opts
}
