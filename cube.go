package rubiks

// Color represents a facelet color.
type Color byte

const (
	White  Color = 0 // Up face when solved
	Yellow Color = 1 // Down face when solved
	Green  Color = 2 // Front face when solved
	Blue   Color = 3 // Back face when solved
	Red    Color = 4 // Right face when solved
	Orange Color = 5 // Left face when solved
	Unset  Color = 6 // Facelet not yet entered
)

func (c Color) String() string {
	switch c {
	case White:
		return "W"
	case Yellow:
		return "Y"
	case Green:
		return "G"
	case Blue:
		return "B"
	case Red:
		return "R"
	case Orange:
		return "O"
	case Unset:
		return "."
	default:
		return "?"
	}
}

// Name returns the lowercase color name used by the JSON state format.
func (c Color) Name() string {
	switch c {
	case White:
		return "white"
	case Yellow:
		return "yellow"
	case Green:
		return "green"
	case Blue:
		return "blue"
	case Red:
		return "red"
	case Orange:
		return "orange"
	default:
		return "unset"
	}
}

// Face represents a cube face.
type Face int

const (
	FaceU Face = 0 // Up (White)
	FaceD Face = 1 // Down (Yellow)
	FaceF Face = 2 // Front (Green)
	FaceB Face = 3 // Back (Blue)
	FaceR Face = 4 // Right (Red)
	FaceL Face = 5 // Left (Orange)
)

func (f Face) String() string {
	switch f {
	case FaceU:
		return "U"
	case FaceD:
		return "D"
	case FaceF:
		return "F"
	case FaceB:
		return "B"
	case FaceR:
		return "R"
	case FaceL:
		return "L"
	default:
		return "?"
	}
}

// Cube represents a 3x3 Rubik's cube.
// Each face has 9 facelets indexed as:
//
//	0 1 2
//	3 4 5
//	6 7 8
//
// The center (index 4) defines the face color. Exported operations treat
// the cube as an immutable value: Apply and ApplySequence return a new
// cube and never touch the receiver.
type Cube struct {
	// Facelets[face][position] = color
	Facelets [6][9]Color
}

// New creates a solved cube with standard orientation:
// White on top, Green in front.
func New() *Cube {
	c := &Cube{}
	for face := Face(0); face < 6; face++ {
		color := solvedColor(face)
		for i := 0; i < 9; i++ {
			c.Facelets[face][i] = color
		}
	}
	return c
}

// NewEmpty creates a cube with only the six centers set, everything else
// Unset. This is the starting point for interactive facelet entry.
func NewEmpty() *Cube {
	c := &Cube{}
	for face := Face(0); face < 6; face++ {
		for i := 0; i < 9; i++ {
			c.Facelets[face][i] = Unset
		}
		c.Facelets[face][4] = solvedColor(face)
	}
	return c
}

// solvedColor returns the color of a face when solved.
func solvedColor(f Face) Color {
	switch f {
	case FaceU:
		return White
	case FaceD:
		return Yellow
	case FaceF:
		return Green
	case FaceB:
		return Blue
	case FaceR:
		return Red
	case FaceL:
		return Orange
	default:
		return White
	}
}

// Clone creates a deep copy of the cube.
func (c *Cube) Clone() *Cube {
	clone := &Cube{}
	clone.Facelets = c.Facelets
	return clone
}

// Equal reports whether two cubes hold identical facelets.
func (c *Cube) Equal(other *Cube) bool {
	return c.Facelets == other.Facelets
}

// IsComplete reports whether every facelet has been set.
func (c *Cube) IsComplete() bool {
	for f := 0; f < 6; f++ {
		for i := 0; i < 9; i++ {
			if c.Facelets[f][i] == Unset {
				return false
			}
		}
	}
	return true
}

// IsSolved reports whether every facelet on each face matches that face's
// center color. A cube with unset facelets is never solved.
func (c *Cube) IsSolved() bool {
	for f := 0; f < 6; f++ {
		center := c.Facelets[f][4]
		if center == Unset {
			return false
		}
		for i := 0; i < 9; i++ {
			if c.Facelets[f][i] != center {
				return false
			}
		}
	}
	return true
}

// at reads the color at a facelet position.
func (c *Cube) at(p Facelet) Color {
	return c.Facelets[p.Face][p.Index]
}

// Apply returns a new cube with the move applied. The receiver is not
// modified.
func (c *Cube) Apply(m Move) *Cube {
	out := c.Clone()
	out.apply(m)
	return out
}

// ApplySequence returns a new cube with the moves applied left to right.
// The receiver is not modified.
func (c *Cube) ApplySequence(moves []Move) *Cube {
	out := c.Clone()
	for _, m := range moves {
		out.apply(m)
	}
	return out
}

// apply mutates the cube in place. Only ever called on a fresh clone.
func (c *Cube) apply(m Move) {
	quarters := 1
	switch m.Turn {
	case CCW:
		quarters = 3
	case Double:
		quarters = 2
	}
	for i := 0; i < quarters; i++ {
		c.rotateFaceCW(m.Face)
		c.cycleStrips(edgeCycles[m.Face])
		if m.Wide {
			c.cycleStrips(sliceCycles[m.Face])
		}
	}
}

// rotateFaceCW rotates a face 90 degrees clockwise.
func (c *Cube) rotateFaceCW(face Face) {
	f := &c.Facelets[face]
	// Corner rotation: 0->2->8->6->0
	// Edge rotation: 1->5->7->3->1
	temp := f[0]
	f[0] = f[6]
	f[6] = f[8]
	f[8] = f[2]
	f[2] = temp

	temp = f[1]
	f[1] = f[3]
	f[3] = f[7]
	f[7] = f[5]
	f[5] = temp
}

// strip identifies three facelets on one face that move together during a
// turn of an adjacent face.
type strip struct {
	face Face
	idx  [3]int
}

// edgeCycles[f] lists the four adjacent-face strips crossed by a clockwise
// turn of face f, in the order the stickers travel.
var edgeCycles = [6][4]strip{
	FaceU: {
		{FaceF, [3]int{0, 1, 2}},
		{FaceL, [3]int{0, 1, 2}},
		{FaceB, [3]int{0, 1, 2}},
		{FaceR, [3]int{0, 1, 2}},
	},
	FaceD: {
		{FaceF, [3]int{6, 7, 8}},
		{FaceR, [3]int{6, 7, 8}},
		{FaceB, [3]int{6, 7, 8}},
		{FaceL, [3]int{6, 7, 8}},
	},
	FaceF: {
		{FaceU, [3]int{6, 7, 8}},
		{FaceR, [3]int{0, 3, 6}},
		{FaceD, [3]int{2, 1, 0}},
		{FaceL, [3]int{8, 5, 2}},
	},
	FaceB: {
		{FaceU, [3]int{2, 1, 0}},
		{FaceL, [3]int{0, 3, 6}},
		{FaceD, [3]int{6, 7, 8}},
		{FaceR, [3]int{8, 5, 2}},
	},
	FaceR: {
		{FaceU, [3]int{2, 5, 8}},
		{FaceB, [3]int{6, 3, 0}},
		{FaceD, [3]int{2, 5, 8}},
		{FaceF, [3]int{2, 5, 8}},
	},
	FaceL: {
		{FaceU, [3]int{0, 3, 6}},
		{FaceF, [3]int{0, 3, 6}},
		{FaceD, [3]int{0, 3, 6}},
		{FaceB, [3]int{8, 5, 2}},
	},
}

// sliceCycles[f] lists the middle-slice strips dragged along by a wide turn
// of face f. Each entry is the matching edgeCycles strip shifted one layer
// inward, so the slice follows the face in the same direction. Wide turns
// move center facelets.
var sliceCycles = [6][4]strip{
	FaceU: {
		{FaceF, [3]int{3, 4, 5}},
		{FaceL, [3]int{3, 4, 5}},
		{FaceB, [3]int{3, 4, 5}},
		{FaceR, [3]int{3, 4, 5}},
	},
	FaceD: {
		{FaceF, [3]int{3, 4, 5}},
		{FaceR, [3]int{3, 4, 5}},
		{FaceB, [3]int{3, 4, 5}},
		{FaceL, [3]int{3, 4, 5}},
	},
	FaceF: {
		{FaceU, [3]int{3, 4, 5}},
		{FaceR, [3]int{1, 4, 7}},
		{FaceD, [3]int{5, 4, 3}},
		{FaceL, [3]int{7, 4, 1}},
	},
	FaceB: {
		{FaceU, [3]int{5, 4, 3}},
		{FaceL, [3]int{1, 4, 7}},
		{FaceD, [3]int{3, 4, 5}},
		{FaceR, [3]int{7, 4, 1}},
	},
	FaceR: {
		{FaceU, [3]int{1, 4, 7}},
		{FaceB, [3]int{7, 4, 1}},
		{FaceD, [3]int{1, 4, 7}},
		{FaceF, [3]int{1, 4, 7}},
	},
	FaceL: {
		{FaceU, [3]int{1, 4, 7}},
		{FaceF, [3]int{1, 4, 7}},
		{FaceD, [3]int{1, 4, 7}},
		{FaceB, [3]int{7, 4, 1}},
	},
}

// cycleStrips rotates the contents of four strips: s[0] -> s[1] -> s[2] ->
// s[3] -> s[0].
func (c *Cube) cycleStrips(s [4]strip) {
	var saved [3]Color
	for k := 0; k < 3; k++ {
		saved[k] = c.Facelets[s[3].face][s[3].idx[k]]
	}
	for n := 3; n > 0; n-- {
		for k := 0; k < 3; k++ {
			c.Facelets[s[n].face][s[n].idx[k]] = c.Facelets[s[n-1].face][s[n-1].idx[k]]
		}
	}
	for k := 0; k < 3; k++ {
		c.Facelets[s[0].face][s[0].idx[k]] = saved[k]
	}
}

// String returns a text representation of the cube as an unfolded net.
func (c *Cube) String() string {
	result := ""

	// U face (indented)
	for row := 0; row < 3; row++ {
		result += "      "
		for col := 0; col < 3; col++ {
			result += c.Facelets[FaceU][row*3+col].String() + " "
		}
		result += "\n"
	}

	// L, F, R, B faces (side by side)
	for row := 0; row < 3; row++ {
		for _, face := range []Face{FaceL, FaceF, FaceR, FaceB} {
			for col := 0; col < 3; col++ {
				result += c.Facelets[face][row*3+col].String() + " "
			}
		}
		result += "\n"
	}

	// D face (indented)
	for row := 0; row < 3; row++ {
		result += "      "
		for col := 0; col < 3; col++ {
			result += c.Facelets[FaceD][row*3+col].String() + " "
		}
		result += "\n"
	}

	return result
}
