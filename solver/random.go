package solver

import (
	"context"

	rubiks "github.com/riteshydv05/rubics-cube-sub000"
)

// greedyBias is the probability a random-walk step takes the locally best
// move instead of a uniformly random one.
const greedyBias = 0.7

// randomRestart runs several independent biased random walks and keeps the
// best-scoring prefix seen across all of them. It is the last resort after
// search and hill-climbing have given up.
func (s *Solver) randomRestart(ctx context.Context, start *rubiks.Cube) []rubiks.Move {
	var best []rubiks.Move
	bestScore := Score(start)

	for r := 0; r < s.cfg.restarts; r++ {
		if ctx.Err() != nil {
			break
		}

		cur := start
		var walk []rubiks.Move
		walkScore := Score(cur)
		walkLen := 0

		for step := 0; step < s.cfg.walkLength; step++ {
			if cur.IsSolved() {
				break
			}
			if step%32 == 0 && ctx.Err() != nil {
				break
			}

			var m rubiks.Move
			if s.cfg.rng.Float64() < greedyBias {
				bsc := -1
				for _, cand := range rubiks.BasicMoves {
					if sc := Score(cur.Apply(cand)); sc > bsc {
						bsc = sc
						m = cand
					}
				}
			} else {
				m = rubiks.BasicMoves[s.cfg.rng.Intn(len(rubiks.BasicMoves))]
			}

			cur = cur.Apply(m)
			walk = append(walk, m)
			if sc := Score(cur); sc > walkScore {
				walkScore = sc
				walkLen = len(walk)
			}
		}

		if walkScore > bestScore {
			bestScore = walkScore
			best = append([]rubiks.Move(nil), walk[:walkLen]...)
		}
	}

	return best
}
