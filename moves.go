package rubiks

// Predefined moves for convenience.
// Use these instead of constructing Move structs manually.
//
// Example:
//
//	c := rubiks.New().ApplySequence([]rubiks.Move{rubiks.R, rubiks.U, rubiks.RPrime, rubiks.UPrime})
var (
	// Right face moves
	R      = Move{Face: FaceR, Turn: CW}     // Right clockwise
	RPrime = Move{Face: FaceR, Turn: CCW}    // Right counter-clockwise
	R2     = Move{Face: FaceR, Turn: Double} // Right 180

	// Left face moves
	L      = Move{Face: FaceL, Turn: CW}     // Left clockwise
	LPrime = Move{Face: FaceL, Turn: CCW}    // Left counter-clockwise
	L2     = Move{Face: FaceL, Turn: Double} // Left 180

	// Up face moves
	U      = Move{Face: FaceU, Turn: CW}     // Up clockwise
	UPrime = Move{Face: FaceU, Turn: CCW}    // Up counter-clockwise
	U2     = Move{Face: FaceU, Turn: Double} // Up 180

	// Down face moves
	D      = Move{Face: FaceD, Turn: CW}     // Down clockwise
	DPrime = Move{Face: FaceD, Turn: CCW}    // Down counter-clockwise
	D2     = Move{Face: FaceD, Turn: Double} // Down 180

	// Front face moves
	F      = Move{Face: FaceF, Turn: CW}     // Front clockwise
	FPrime = Move{Face: FaceF, Turn: CCW}    // Front counter-clockwise
	F2     = Move{Face: FaceF, Turn: Double} // Front 180

	// Back face moves
	B      = Move{Face: FaceB, Turn: CW}     // Back clockwise
	BPrime = Move{Face: FaceB, Turn: CCW}    // Back counter-clockwise
	B2     = Move{Face: FaceB, Turn: Double} // Back 180
)

// BasicMoves lists the 18 single-layer moves, the move set searched by the
// solver.
var BasicMoves = []Move{
	U, UPrime, U2,
	D, DPrime, D2,
	F, FPrime, F2,
	B, BPrime, B2,
	R, RPrime, R2,
	L, LPrime, L2,
}

// Algorithm is a named move sequence.
type Algorithm struct {
	Name  string
	Moves []Move
}

// Algorithms is the canned sequence library used by the heuristic solver:
// short commutators plus common OLL/PLL cases.
var Algorithms = []Algorithm{
	{"sexy move", []Move{R, U, RPrime, UPrime}},
	{"inverse sexy move", []Move{U, R, UPrime, RPrime}},
	{"sledgehammer", []Move{RPrime, F, R, FPrime}},
	{"hedgeslammer", []Move{F, RPrime, FPrime, R}},
	{"sune", []Move{R, U, RPrime, U, R, U2, RPrime}},
	{"antisune", []Move{R, U2, RPrime, UPrime, R, UPrime, RPrime}},
	{"T-perm", []Move{R, U, RPrime, UPrime, RPrime, F, R2, UPrime, RPrime, UPrime, R, U, RPrime, FPrime}},
	{"Ua-perm", []Move{R, UPrime, R, U, R, U, R, UPrime, RPrime, UPrime, R2}},
	{"Jb-perm", []Move{R, U, RPrime, FPrime, R, U, RPrime, UPrime, RPrime, F, R2, UPrime, RPrime}},
	{"Ub-perm", []Move{R2, U, R, U, RPrime, UPrime, RPrime, UPrime, RPrime, U, RPrime}},
}
