package solver

import (
	"math/rand"
	"time"
)

// Option configures Solver behavior.
type Option func(*config)

type config struct {
	timeout         time.Duration
	maxDepth        int
	nodeLimit       int
	maxIterations   int
	stagnationLimit int
	restarts        int
	walkLength      int
	rng             *rand.Rand
	external        FaceletSolver
}

func defaultConfig() *config {
	return &config{
		timeout:         15 * time.Second,
		maxDepth:        10,
		nodeLimit:       2_000_000,
		maxIterations:   250,
		stagnationLimit: 5,
		restarts:        8,
		walkLength:      150,
		rng:             rand.New(rand.NewSource(time.Now().UnixNano())),
	}
}

// WithTimeout sets the overall wall-clock budget for a solve. Past the
// deadline the solver returns its best attempt so far instead of hanging.
// Zero disables the internal deadline (the caller's context still applies).
func WithTimeout(d time.Duration) Option {
	return func(c *config) {
		c.timeout = d
	}
}

// WithMaxDepth bounds the iterative-deepening search depth.
func WithMaxDepth(n int) Option {
	return func(c *config) {
		c.maxDepth = n
	}
}

// WithNodeLimit caps the number of states the bounded search may visit,
// guaranteeing termination regardless of depth.
func WithNodeLimit(n int) Option {
	return func(c *config) {
		c.nodeLimit = n
	}
}

// WithMaxIterations bounds the heuristic hill-climbing loop.
func WithMaxIterations(n int) Option {
	return func(c *config) {
		c.maxIterations = n
	}
}

// WithRestarts sets how many independent random walks the fallback strategy
// runs.
func WithRestarts(n int) Option {
	return func(c *config) {
		c.restarts = n
	}
}

// WithRand injects the randomness source used by the heuristic and random
// strategies. Tests pass a seeded source for deterministic runs.
func WithRand(rng *rand.Rand) Option {
	return func(c *config) {
		c.rng = rng
	}
}

// WithExternal sets the external facelet solver tried before any internal
// strategy. Nil (the default) skips straight to the bounded search.
func WithExternal(ext FaceletSolver) Option {
	return func(c *config) {
		c.external = ext
	}
}
