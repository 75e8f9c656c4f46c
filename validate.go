package rubiks

import "fmt"

// ValidateStructure checks a cube state against the fixed geometry of a
// physical cube: color counts, edge legality, corner legality, and piece
// uniqueness. All violations are collected; none short-circuits another.
// Facelets still Unset are skipped by the piece-level checks, so a cube in
// mid-entry is not over-reported.
func ValidateStructure(c *Cube) []Violation {
	var out []Violation
	out = append(out, checkColorCounts(c)...)
	out = append(out, checkEdges(c)...)
	out = append(out, checkCorners(c)...)
	return out
}

// colorTally counts set facelets per color across all six faces.
func colorTally(c *Cube) [7]int {
	var tally [7]int
	for f := 0; f < 6; f++ {
		for i := 0; i < 9; i++ {
			tally[c.Facelets[f][i]]++
		}
	}
	return tally
}

// checkColorCounts verifies each color appears exactly 9 times. Over-counts
// are always reported; under-counts only once every facelet is set, since an
// unfinished cube is under-counted by construction.
func checkColorCounts(c *Cube) []Violation {
	tally := colorTally(c)
	complete := c.IsComplete()

	var out []Violation
	for color := Color(0); color < 6; color++ {
		n := tally[color]
		if n == 9 {
			continue
		}
		if n < 9 && !complete {
			continue
		}
		var positions []Facelet
		if n > 9 {
			for f := Face(0); f < 6; f++ {
				for i := 0; i < 9; i++ {
					if c.Facelets[f][i] == color {
						positions = append(positions, Facelet{f, i})
					}
				}
			}
		}
		out = append(out, newViolation(
			CategoryColorCount,
			SeverityCritical,
			fmt.Sprintf("%s count = %d (expected 9)", displayName(color), n),
			positions,
			[]string{
				fmt.Sprintf("Find a facelet wrongly painted %s", displayName(color)),
				"Repaint it with the missing color",
			},
			true,
			kindColorCount,
			color,
		))
	}
	return out
}

// checkEdges validates each fully-set edge slot and then checks edge
// uniqueness.
func checkEdges(c *Cube) []Violation {
	var out []Violation
	var bySlot [12][]int // identity -> slot indices

	for si, slot := range EdgeSlots {
		a, b := c.at(slot.A), c.at(slot.B)
		if a == Unset || b == Unset {
			continue
		}
		positions := []Facelet{slot.A, slot.B}
		switch {
		case a == b:
			out = append(out, newViolation(
				CategoryEdgePiece,
				SeverityCritical,
				fmt.Sprintf("edge %s has %s on both stickers; no such piece exists", slot.Name, displayName(a)),
				positions,
				[]string{fmt.Sprintf("Repaint one sticker of edge %s", slot.Name)},
				true,
				kindEdgeRepeat,
				a,
			))
		case opposite[a] == b:
			out = append(out, newViolation(
				CategoryEdgePiece,
				SeverityCritical,
				fmt.Sprintf("edge %s pairs opposite colors %s and %s", slot.Name, displayName(a), displayName(b)),
				positions,
				[]string{fmt.Sprintf("Repaint one sticker of edge %s; opposite colors never share a piece", slot.Name)},
				true,
				kindEdgeOpposite,
				a,
			))
		case edgeIdentity(a, b) < 0:
			out = append(out, newViolation(
				CategoryEdgePiece,
				SeverityCritical,
				fmt.Sprintf("edge %s shows colors %s/%s, which match no real piece", slot.Name, displayName(a), displayName(b)),
				positions,
				[]string{fmt.Sprintf("Repaint edge %s to a real color combination", slot.Name)},
				true,
				kindEdgeUnknown,
				a,
			))
		default:
			id := edgeIdentity(a, b)
			bySlot[id] = append(bySlot[id], si)
		}
	}

	for id, slots := range bySlot {
		if len(slots) < 2 {
			continue
		}
		// Every occurrence after the first is a duplicate of a unique
		// physical piece.
		for _, si := range slots[1:] {
			slot := EdgeSlots[si]
			out = append(out, newViolation(
				CategoryEdgePiece,
				SeverityWarning,
				fmt.Sprintf("edge %s duplicates the %s piece also found at %s", slot.Name, EdgeSlots[id].Name, EdgeSlots[slots[0]].Name),
				[]Facelet{slot.A, slot.B},
				[]string{fmt.Sprintf("Repaint edge %s; each piece exists exactly once", slot.Name)},
				true,
				kindEdgeDuplicate,
				c.at(slot.A),
			))
		}
	}
	return out
}

// checkCorners validates each fully-set corner slot and then checks corner
// uniqueness.
func checkCorners(c *Cube) []Violation {
	var out []Violation
	var bySlot [8][]int // identity -> slot indices

	for si, slot := range CornerSlots {
		a := c.at(slot.Facelets[0])
		b := c.at(slot.Facelets[1])
		d := c.at(slot.Facelets[2])
		if a == Unset || b == Unset || d == Unset {
			continue
		}
		positions := slot.Facelets[:]
		switch {
		case a == b || a == d || b == d:
			out = append(out, newViolation(
				CategoryCornerPiece,
				SeverityCritical,
				fmt.Sprintf("corner %s repeats a color; no such piece exists", slot.Name),
				positions,
				[]string{fmt.Sprintf("Repaint one sticker of corner %s", slot.Name)},
				true,
				kindCornerRepeat,
				a,
			))
		case opposite[a] == b || opposite[a] == d || opposite[b] == d:
			out = append(out, newViolation(
				CategoryCornerPiece,
				SeverityCritical,
				fmt.Sprintf("corner %s pairs opposite colors", slot.Name),
				positions,
				[]string{fmt.Sprintf("Repaint one sticker of corner %s; opposite colors never share a piece", slot.Name)},
				true,
				kindCornerOpposite,
				a,
			))
		case cornerIdentity(a, b, d) < 0:
			out = append(out, newViolation(
				CategoryCornerPiece,
				SeverityCritical,
				fmt.Sprintf("corner %s shows colors %s/%s/%s, which match no real piece", slot.Name, displayName(a), displayName(b), displayName(d)),
				positions,
				[]string{fmt.Sprintf("Repaint corner %s to a real color combination", slot.Name)},
				true,
				kindCornerUnknown,
				a,
			))
		default:
			id := cornerIdentity(a, b, d)
			bySlot[id] = append(bySlot[id], si)
		}
	}

	for id, slots := range bySlot {
		if len(slots) < 2 {
			continue
		}
		for _, si := range slots[1:] {
			slot := CornerSlots[si]
			out = append(out, newViolation(
				CategoryCornerPiece,
				SeverityWarning,
				fmt.Sprintf("corner %s duplicates the %s piece also found at %s", slot.Name, CornerSlots[id].Name, CornerSlots[slots[0]].Name),
				slot.Facelets[:],
				[]string{fmt.Sprintf("Repaint corner %s; each piece exists exactly once", slot.Name)},
				true,
				kindCornerDuplicate,
				c.at(slot.Facelets[0]),
			))
		}
	}
	return out
}

// displayName returns a capitalized color name for messages.
func displayName(c Color) string {
	switch c {
	case White:
		return "White"
	case Yellow:
		return "Yellow"
	case Green:
		return "Green"
	case Blue:
		return "Blue"
	case Red:
		return "Red"
	case Orange:
		return "Orange"
	default:
		return "Unset"
	}
}
