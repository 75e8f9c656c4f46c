package rubiks

import "fmt"

// CheckParity decides whether a structurally valid, complete cube state is
// reachable from the solved state by legal moves. It evaluates the three
// solvability invariants of the cube group: edge orientation, corner
// orientation, and permutation parity. Wide moves rotate the centers, so
// the invariants are computed in the frame of the current centers, not the
// fixed solved color scheme: stickers are relabeled as if the whole cube
// were rotated back to standard orientation first. The caller is expected
// to run ValidateStructure first; on an incomplete or structurally broken
// state CheckParity returns nil rather than guessing.
func CheckParity(c *Cube) []Violation {
	if !c.IsComplete() {
		return nil
	}

	relabel, ok := centerRelabel(c)
	if !ok {
		return []Violation{newViolation(
			CategoryParity,
			SeverityCritical,
			"centers are not arranged as any rotation of a solved cube",
			centerPositions(),
			[]string{"Re-enter the centers; their mutual arrangement is fixed on a physical cube"},
			false,
			kindCenterArrangement,
			Unset,
		)}
	}

	edgePerm := make([]int, 0, 12)
	cornerPerm := make([]int, 0, 8)

	flipSum := 0
	for _, slot := range EdgeSlots {
		a, b := relabel[c.at(slot.A)], relabel[c.at(slot.B)]
		id := edgeIdentity(a, b)
		if id < 0 {
			return nil // structurally broken, parity is meaningless
		}
		edgePerm = append(edgePerm, id)
		if !edgeOriented(a, b) {
			flipSum++
		}
	}

	twistSum := 0
	for _, slot := range CornerSlots {
		a := relabel[c.at(slot.Facelets[0])]
		b := relabel[c.at(slot.Facelets[1])]
		d := relabel[c.at(slot.Facelets[2])]
		id := cornerIdentity(a, b, d)
		if id < 0 {
			return nil
		}
		cornerPerm = append(cornerPerm, id)
		twistSum += cornerTwist(a, b, d)
	}

	var out []Violation

	if flipSum%2 != 0 {
		out = append(out, newViolation(
			CategoryOrientation,
			SeverityCritical,
			fmt.Sprintf("edge orientation sum is odd (%d flipped): an edge piece is flipped in place", flipSum),
			nil,
			[]string{"Pop the flipped edge out and reinsert it the right way around; no recoloring can fix this"},
			false,
			kindEdgeOrientation,
			Unset,
		))
	}

	if twistSum%3 != 0 {
		out = append(out, newViolation(
			CategoryOrientation,
			SeverityCritical,
			fmt.Sprintf("corner twist sum is %d (mod 3 != 0): a corner piece is twisted in place", twistSum),
			nil,
			[]string{"Twist the rotated corner back physically; no recoloring can fix this"},
			false,
			kindCornerOrientation,
			Unset,
		))
	}

	if inversions(edgePerm)%2 != inversions(cornerPerm)%2 {
		out = append(out, newViolation(
			CategoryParity,
			SeverityCritical,
			"edge and corner permutation parities disagree: two pieces have been swapped",
			nil,
			[]string{"Disassemble and reassemble the cube; a two-piece swap is unreachable by legal moves"},
			false,
			kindPermutation,
			Unset,
		))
	}

	return out
}

// centerRelabel builds the color relabeling that normalizes whole-cube
// orientation away: each color maps to the solved color of the face whose
// center currently carries it, so after relabeling the centers read as a
// standard-orientation cube. ok is false when the centers are not a
// rotation of the solved scheme (a repeated center, a broken opposite
// pair, or a mirror arrangement).
func centerRelabel(c *Cube) ([7]Color, bool) {
	var m [7]Color
	var seen [7]bool
	for f := Face(0); f < 6; f++ {
		col := c.Facelets[f][4]
		if col == Unset || seen[col] {
			return m, false
		}
		seen[col] = true
		m[col] = solvedColor(f)
	}
	m[Unset] = Unset

	for col := Color(0); col < 6; col++ {
		if m[opposite[col]] != opposite[m[col]] {
			return m, false
		}
	}
	if !rightHanded(m) {
		return m, false
	}
	return m, true
}

// colorAxis maps a color to its axis (U/D, F/B, R/L) and sign within it.
func colorAxis(c Color) (axis int, sign int) {
	switch c {
	case White:
		return 0, 1
	case Yellow:
		return 0, -1
	case Green:
		return 1, 1
	case Blue:
		return 1, -1
	case Red:
		return 2, 1
	default: // Orange
		return 2, -1
	}
}

// rightHanded reports whether an opposite-preserving color relabeling is a
// proper rotation rather than a mirror: the determinant of the induced
// signed axis permutation must be +1.
func rightHanded(m [7]Color) bool {
	var to [3]int
	var sign [3]int
	for col := Color(0); col < 6; col++ {
		from, fs := colorAxis(col)
		dest, ds := colorAxis(m[col])
		to[from] = dest
		sign[from] = fs * ds
	}

	det := sign[0] * sign[1] * sign[2]
	// Parity of the 3-element axis permutation: identity and 3-cycles are
	// even, a lone swap is odd.
	if to[0] != 0 && to[1] != 1 && to[2] != 2 {
		// 3-cycle, even
	} else if to[0] == 0 && to[1] == 1 && to[2] == 2 {
		// identity, even
	} else {
		det = -det
	}
	return det == 1
}

// centerPositions lists the six center facelets.
func centerPositions() []Facelet {
	out := make([]Facelet, 0, 6)
	for f := Face(0); f < 6; f++ {
		out = append(out, Facelet{f, 4})
	}
	return out
}

// edgeOriented reports whether an edge sitting with color a on its reference
// facelet (U/D face for top and bottom layer slots, F/B face for middle
// slots) is in its home orientation. An edge is oriented when its U/D color
// faces U/D, or, for the four edges without a U/D color, when its F/B color
// faces F/B.
func edgeOriented(a, b Color) bool {
	if a == White || a == Yellow {
		return true
	}
	if (a == Green || a == Blue) && (b == Red || b == Orange) {
		return true
	}
	return false
}

// cornerTwist returns 0, 1 or 2 depending on which facelet of the slot
// (clockwise from the U/D-face position) carries the piece's U/D color.
func cornerTwist(a, b, d Color) int {
	switch {
	case a == White || a == Yellow:
		return 0
	case b == White || b == Yellow:
		return 1
	case d == White || d == Yellow:
		return 2
	default:
		return 0 // unreachable on a structurally valid cube
	}
}

// inversions counts the pairs out of order in a permutation sequence.
func inversions(seq []int) int {
	n := 0
	for i := 0; i < len(seq); i++ {
		for j := i + 1; j < len(seq); j++ {
			if seq[i] > seq[j] {
				n++
			}
		}
	}
	return n
}
