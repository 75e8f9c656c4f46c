package rubiks

import (
	"math/rand"
	"time"
)

var scrambleTurns = []Turn{CW, CCW, Double}

// Scramble generates a random n-move scramble. Consecutive moves never
// repeat a face, and two moves on the same axis are never followed by a
// third, so the sequence cannot trivially collapse. Pass a seeded rng for
// deterministic output; nil uses a time-seeded source.
func Scramble(n int, rng *rand.Rand) []Move {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}

	moves := make([]Move, 0, n)
	for len(moves) < n {
		face := Face(rng.Intn(6))
		if k := len(moves); k > 0 {
			prev := moves[k-1].Face
			if face == prev {
				continue
			}
			if k > 1 && sameAxis(face, prev) && sameAxis(moves[k-2].Face, prev) {
				continue
			}
		}
		moves = append(moves, Move{Face: face, Turn: scrambleTurns[rng.Intn(3)]})
	}
	return moves
}

// sameAxis reports whether two faces sit on the same rotation axis.
func sameAxis(a, b Face) bool {
	return a == b || opposite[solvedColor(a)] == solvedColor(b)
}
