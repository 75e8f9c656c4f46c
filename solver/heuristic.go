package solver

import (
	"context"

	rubiks "github.com/riteshydv05/rubics-cube-sub000"
)

// hillClimb greedily improves the state score with one-step lookahead over
// the 18 basic moves and the canned algorithm library. When no candidate
// improves the score it walks the plateau with the best candidate anyway,
// and after stagnationLimit non-improving iterations it escapes by applying
// a randomly chosen algorithm.
func (s *Solver) hillClimb(ctx context.Context, start *rubiks.Cube) []rubiks.Move {
	cur := start
	var solution []rubiks.Move
	stagnation := 0

	for iter := 0; iter < s.cfg.maxIterations; iter++ {
		if ctx.Err() != nil || cur.IsSolved() {
			break
		}

		curScore := Score(cur)
		var bestMoves []rubiks.Move
		bestScore := -1

		for _, m := range rubiks.BasicMoves {
			if sc := Score(cur.Apply(m)); sc > bestScore {
				bestScore = sc
				bestMoves = []rubiks.Move{m}
			}
		}
		for _, alg := range rubiks.Algorithms {
			if sc := Score(cur.ApplySequence(alg.Moves)); sc > bestScore {
				bestScore = sc
				bestMoves = alg.Moves
			}
		}

		if bestScore > curScore {
			stagnation = 0
		} else {
			stagnation++
			if stagnation >= s.cfg.stagnationLimit {
				// Stuck on a local maximum: a random algorithm perturbs the
				// state enough to open new improving moves.
				bestMoves = rubiks.Algorithms[s.cfg.rng.Intn(len(rubiks.Algorithms))].Moves
				stagnation = 0
			}
		}

		cur = cur.ApplySequence(bestMoves)
		solution = append(solution, bestMoves...)
	}

	return solution
}
