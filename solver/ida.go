package solver

import (
	"context"

	rubiks "github.com/riteshydv05/rubics-cube-sub000"
)

// idaSearch runs iterative-deepening depth-first search over the 18 basic
// moves, from depth 1 up to the configured maximum. Two prunings keep the
// tree honest: no move repeats the face of its predecessor, and when
// consecutive moves are on opposite faces (which commute) only one ordering
// is explored. The node budget spans all depths and guarantees termination.
func (s *Solver) idaSearch(ctx context.Context, start *rubiks.Cube) ([]rubiks.Move, bool) {
	nodes := 0
	for depth := 1; depth <= s.cfg.maxDepth; depth++ {
		moves, found, aborted := s.dfs(ctx, start, depth, rubiks.Move{}, false, &nodes)
		if found {
			return moves, true
		}
		if aborted {
			return nil, false
		}
	}
	return nil, false
}

func (s *Solver) dfs(ctx context.Context, c *rubiks.Cube, remaining int, prev rubiks.Move, hasPrev bool, nodes *int) ([]rubiks.Move, bool, bool) {
	if c.IsSolved() {
		return nil, true, false
	}
	if remaining == 0 {
		return nil, false, false
	}

	for _, m := range rubiks.BasicMoves {
		if hasPrev {
			if m.Face == prev.Face {
				continue
			}
			if oppositeFaces(m.Face, prev.Face) && m.Face > prev.Face {
				continue
			}
		}

		*nodes++
		if *nodes > s.cfg.nodeLimit {
			return nil, false, true
		}
		if *nodes%1024 == 0 && ctx.Err() != nil {
			return nil, false, true
		}

		tail, found, aborted := s.dfs(ctx, c.Apply(m), remaining-1, m, true, nodes)
		if found {
			return append([]rubiks.Move{m}, tail...), true, false
		}
		if aborted {
			return nil, false, true
		}
	}
	return nil, false, false
}

// oppositeFaces reports whether two faces sit on the same axis. Face values
// pair opposites as 0/1, 2/3, 4/5.
func oppositeFaces(a, b rubiks.Face) bool {
	return a != b && a>>1 == b>>1
}
