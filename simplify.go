package rubiks

// quarterTurns maps a Turn to its clockwise quarter-turn count.
func quarterTurns(t Turn) int {
	switch t {
	case CCW:
		return 3
	case Double:
		return 2
	default:
		return 1
	}
}

// turnFromQuarters is the inverse of quarterTurns for counts 1-3.
func turnFromQuarters(q int) Turn {
	switch q {
	case 2:
		return Double
	case 3:
		return CCW
	default:
		return CW
	}
}

// Simplify merges adjacent moves on the same face and width by summing their
// quarter turns mod 4 (0 drops the pair, 3 becomes the inverse), iterating
// until nothing merges. Wide and one-layer moves on the same face never
// merge: they are different permutations.
func Simplify(moves []Move) []Move {
	out := append([]Move(nil), moves...)
	for {
		merged := make([]Move, 0, len(out))
		changed := false
		for _, m := range out {
			n := len(merged)
			if n > 0 && merged[n-1].Face == m.Face && merged[n-1].Wide == m.Wide {
				q := (quarterTurns(merged[n-1].Turn) + quarterTurns(m.Turn)) % 4
				merged = merged[:n-1]
				if q != 0 {
					merged = append(merged, Move{Face: m.Face, Turn: turnFromQuarters(q), Wide: m.Wide})
				}
				changed = true
				continue
			}
			merged = append(merged, m)
		}
		out = merged
		if !changed {
			return out
		}
	}
}
