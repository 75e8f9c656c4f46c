// Package solver turns a valid cube state into a move sequence reaching the
// solved state. Strategies are tried in order of decreasing reliability:
// an optional external facelet solver, a bounded iterative-deepening search,
// heuristic hill-climbing with canned algorithms, and randomized restarts.
// When every budget runs out the best attempt found is returned; callers
// tell success from exhaustion by the Solution's Solved flag, which is set
// by replaying the sequence, never assumed.
package solver

import (
	"context"

	rubiks "github.com/riteshydv05/rubics-cube-sub000"
)

// Solution is an ordered move sequence plus its compact notation. Solved
// reports whether replaying Moves from the input state actually reaches the
// solved cube; a false value means every strategy exhausted its budget.
type Solution struct {
	Moves    []rubiks.Move
	Notation string
	Length   int
	Solved   bool
	Strategy string
}

// Solver runs the strategy chain. A Solver is stateless between calls and
// safe to reuse; concurrent calls should not share an injected rand source.
type Solver struct {
	cfg *config
}

// New creates a Solver.
func New(opts ...Option) *Solver {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(cfg)
	}
	return &Solver{cfg: cfg}
}

// newSolution simplifies the sequence and verifies it by replay.
func newSolution(start *rubiks.Cube, moves []rubiks.Move, strategy string) Solution {
	moves = rubiks.Simplify(moves)
	return Solution{
		Moves:    moves,
		Notation: rubiks.FormatMoves(moves),
		Length:   len(moves),
		Solved:   start.ApplySequence(moves).IsSolved(),
		Strategy: strategy,
	}
}

// Solve produces a move sequence for a state the caller has already
// validated. It never returns an error: on exhaustion the best-scoring
// attempt is returned with Solved false. The context cancels the solve
// between iterations; the configured timeout bounds the whole call.
func (s *Solver) Solve(ctx context.Context, c *rubiks.Cube) Solution {
	if c.IsSolved() {
		return newSolution(c, nil, "already-solved")
	}

	if s.cfg.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.cfg.timeout)
		defer cancel()
	}

	best := newSolution(c, nil, "none")
	bestScore := Score(c)

	// consider simplifies and replays a candidate; it returns true when the
	// candidate solves the cube, and otherwise keeps the best-scoring
	// attempt for graceful degradation.
	consider := func(moves []rubiks.Move, strategy string) (Solution, bool) {
		sol := newSolution(c, moves, strategy)
		if sol.Solved {
			return sol, true
		}
		if sc := Score(c.ApplySequence(sol.Moves)); sc > bestScore {
			bestScore = sc
			best = sol
		}
		return sol, false
	}

	if s.cfg.external != nil && ctx.Err() == nil {
		if moves, err := solveExternal(s.cfg.external, c); err == nil {
			if sol, done := consider(moves, "external"); done {
				return sol
			}
		}
	}

	if ctx.Err() == nil {
		if moves, found := s.idaSearch(ctx, c); found {
			if sol, done := consider(moves, "ida"); done {
				return sol
			}
		}
	}

	if ctx.Err() == nil {
		if sol, done := consider(s.hillClimb(ctx, c), "heuristic"); done {
			return sol
		}
	}

	if ctx.Err() == nil {
		if sol, done := consider(s.randomRestart(ctx, c), "random-restart"); done {
			return sol
		}
	}

	return best
}
