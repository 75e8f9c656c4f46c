package rubiks

// Fixed cube geometry: the 12 edge slots, the 8 corner slots, and the
// opposite-color pairing. All tables here are read-only after package
// initialization and safe to share between concurrent callers.

// Facelet identifies one sticker position on the cube.
type Facelet struct {
	Face  Face
	Index int
}

func (p Facelet) String() string {
	return p.Face.String() + "[" + string(rune('0'+p.Index)) + "]"
}

// EdgeSlot is one of the 12 fixed edge positions. A is the orientation
// reference facelet: the U/D-face sticker for top- and bottom-layer slots,
// the F/B-face sticker for middle-layer slots.
type EdgeSlot struct {
	Name string
	A, B Facelet
}

// CornerSlot is one of the 8 fixed corner positions. Facelets are listed
// clockwise as seen from outside the corner, starting with the U/D-face
// sticker.
type CornerSlot struct {
	Name     string
	Facelets [3]Facelet
}

// EdgeSlots lists the 12 edge positions in canonical order. The slot order
// doubles as the piece identity order for permutation parity.
var EdgeSlots = [12]EdgeSlot{
	{"UB", Facelet{FaceU, 1}, Facelet{FaceB, 1}},
	{"UL", Facelet{FaceU, 3}, Facelet{FaceL, 1}},
	{"UR", Facelet{FaceU, 5}, Facelet{FaceR, 1}},
	{"UF", Facelet{FaceU, 7}, Facelet{FaceF, 1}},
	{"DF", Facelet{FaceD, 1}, Facelet{FaceF, 7}},
	{"DL", Facelet{FaceD, 3}, Facelet{FaceL, 7}},
	{"DR", Facelet{FaceD, 5}, Facelet{FaceR, 7}},
	{"DB", Facelet{FaceD, 7}, Facelet{FaceB, 7}},
	{"FR", Facelet{FaceF, 5}, Facelet{FaceR, 3}},
	{"FL", Facelet{FaceF, 3}, Facelet{FaceL, 5}},
	{"BR", Facelet{FaceB, 3}, Facelet{FaceR, 5}},
	{"BL", Facelet{FaceB, 5}, Facelet{FaceL, 3}},
}

// CornerSlots lists the 8 corner positions in canonical order.
var CornerSlots = [8]CornerSlot{
	{"URF", [3]Facelet{{FaceU, 8}, {FaceR, 0}, {FaceF, 2}}},
	{"UFL", [3]Facelet{{FaceU, 6}, {FaceF, 0}, {FaceL, 2}}},
	{"ULB", [3]Facelet{{FaceU, 0}, {FaceL, 0}, {FaceB, 2}}},
	{"UBR", [3]Facelet{{FaceU, 2}, {FaceB, 0}, {FaceR, 2}}},
	{"DFR", [3]Facelet{{FaceD, 2}, {FaceF, 8}, {FaceR, 6}}},
	{"DLF", [3]Facelet{{FaceD, 0}, {FaceL, 8}, {FaceF, 6}}},
	{"DBL", [3]Facelet{{FaceD, 6}, {FaceB, 8}, {FaceL, 6}}},
	{"DRB", [3]Facelet{{FaceD, 8}, {FaceR, 8}, {FaceB, 6}}},
}

// opposite maps each color to the color on the opposing face of a solved
// cube. Two opposite colors can never share a physical piece.
var opposite = [7]Color{
	White:  Yellow,
	Yellow: White,
	Green:  Blue,
	Blue:   Green,
	Red:    Orange,
	Orange: Red,
	Unset:  Unset,
}

// OppositeColor returns the color on the face opposing c, or Unset for Unset.
func OppositeColor(c Color) Color {
	return opposite[c]
}

func colorBit(c Color) uint16 {
	return 1 << uint(c)
}

// solvedEdgeMasks and solvedCornerMasks hold the color-set bitmask of each
// slot on a solved cube, in slot order. Computed once at startup.
var (
	solvedEdgeMasks   [12]uint16
	solvedCornerMasks [8]uint16
)

func init() {
	s := New()
	for i, e := range EdgeSlots {
		solvedEdgeMasks[i] = colorBit(s.at(e.A)) | colorBit(s.at(e.B))
	}
	for i, cs := range CornerSlots {
		solvedCornerMasks[i] = colorBit(s.at(cs.Facelets[0])) |
			colorBit(s.at(cs.Facelets[1])) |
			colorBit(s.at(cs.Facelets[2]))
	}
}

// edgeIdentity maps an unordered color pair to its canonical edge index
// (0-11), or -1 if no real edge piece carries those colors.
func edgeIdentity(a, b Color) int {
	mask := colorBit(a) | colorBit(b)
	for i, m := range solvedEdgeMasks {
		if m == mask {
			return i
		}
	}
	return -1
}

// cornerIdentity maps an unordered color triple to its canonical corner
// index (0-7), or -1 if no real corner piece carries those colors.
func cornerIdentity(a, b, c Color) int {
	mask := colorBit(a) | colorBit(b) | colorBit(c)
	for i, m := range solvedCornerMasks {
		if m == mask {
			return i
		}
	}
	return -1
}
