package rubiks

import (
	"fmt"
	"strings"
)

// Turn represents the direction and magnitude of a face turn.
type Turn int

const (
	CW     Turn = 1  // Clockwise (90 degrees)
	CCW    Turn = -1 // Counter-clockwise (90 degrees)
	Double Turn = 2  // Half turn (180 degrees)
)

// Move represents a single cube move: a face, a turn direction, and whether
// the adjacent middle slice turns along with the face (a wide move).
type Move struct {
	Face Face
	Turn Turn
	Wide bool
}

// Notation returns the standard cube notation string for this move.
// Uppercase is a one-layer turn, lowercase a two-layer wide turn.
// Examples: R, R', R2, r, r', r2
func (m Move) Notation() string {
	letter := m.Face.String()
	if m.Wide {
		letter = strings.ToLower(letter)
	}
	suffix := ""
	switch m.Turn {
	case CCW:
		suffix = "'"
	case Double:
		suffix = "2"
	}
	return letter + suffix
}

// Inverse returns the inverse of this move.
// R becomes R', R' becomes R, R2 stays R2.
func (m Move) Inverse() Move {
	inv := m
	switch m.Turn {
	case CW:
		inv.Turn = CCW
	case CCW:
		inv.Turn = CW
		// Double is its own inverse
	}
	return inv
}

// Description returns a human-readable description of the move.
func (m Move) Description() string {
	layer := "face"
	if m.Wide {
		layer = "two layers"
	}
	dir := "clockwise"
	switch m.Turn {
	case CCW:
		dir = "counter-clockwise"
	case Double:
		dir = "180 degrees"
	}
	return fmt.Sprintf("turn the %s %s %s", faceName(m.Face), layer, dir)
}

func faceName(f Face) string {
	switch f {
	case FaceU:
		return "Up"
	case FaceD:
		return "Down"
	case FaceF:
		return "Front"
	case FaceB:
		return "Back"
	case FaceR:
		return "Right"
	case FaceL:
		return "Left"
	default:
		return "?"
	}
}

// String returns the notation string (alias for Notation).
func (m Move) String() string {
	return m.Notation()
}

// ParseMove parses a standard notation string into a Move.
// Uppercase letters are one-layer turns, lowercase letters are wide turns.
// Examples: R, R', R2, r, u'
// Malformed notation is a caller error and is reported, never repaired.
func ParseMove(s string) (Move, error) {
	s = strings.TrimSpace(s)
	if len(s) == 0 {
		return Move{}, ErrInvalidNotation
	}

	var face Face
	wide := false
	switch s[0] {
	case 'R':
		face = FaceR
	case 'L':
		face = FaceL
	case 'U':
		face = FaceU
	case 'D':
		face = FaceD
	case 'F':
		face = FaceF
	case 'B':
		face = FaceB
	case 'r':
		face, wide = FaceR, true
	case 'l':
		face, wide = FaceL, true
	case 'u':
		face, wide = FaceU, true
	case 'd':
		face, wide = FaceD, true
	case 'f':
		face, wide = FaceF, true
	case 'b':
		face, wide = FaceB, true
	default:
		return Move{}, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
	}

	turn := CW
	if len(s) > 1 {
		switch s[1:] {
		case "'":
			turn = CCW
		case "2":
			turn = Double
		default:
			// Backtick and "2'" spellings belong to the external solver
			// dialect; ParseExternalMoves normalizes them.
			return Move{}, fmt.Errorf("%w: %q", ErrInvalidNotation, s)
		}
	}

	return Move{Face: face, Turn: turn, Wide: wide}, nil
}

// ParseMoves parses a space-separated sequence of moves.
// Example: "R U R' U'"
// Any malformed token fails the whole parse.
func ParseMoves(s string) ([]Move, error) {
	parts := strings.Fields(s)
	moves := make([]Move, 0, len(parts))

	for _, part := range parts {
		move, err := ParseMove(part)
		if err != nil {
			return nil, err
		}
		moves = append(moves, move)
	}

	return moves, nil
}

// FormatMoves formats a slice of moves as a space-separated notation string.
func FormatMoves(moves []Move) string {
	if len(moves) == 0 {
		return ""
	}

	parts := make([]string, len(moves))
	for i, m := range moves {
		parts[i] = m.Notation()
	}

	return strings.Join(parts, " ")
}
