package solver

import (
	"fmt"
	"strings"

	rubiks "github.com/riteshydv05/rubics-cube-sub000"
)

// FaceletSolver is the external layer-method solver collaborator. It
// consumes a 54-character facelet string (faces in Front, Right, Up, Down,
// Left, Back order, row-major, one face letter per color) and returns a
// whitespace-separated move string in its own notation.
type FaceletSolver interface {
	Solve(facelets string) (string, error)
}

// solveExternal serializes the state, calls the collaborator, and
// normalizes its notation into Moves.
func solveExternal(ext FaceletSolver, c *rubiks.Cube) ([]rubiks.Move, error) {
	facelets, err := c.FaceletString()
	if err != nil {
		return nil, err
	}
	raw, err := ext.Solve(facelets)
	if err != nil {
		return nil, err
	}
	return ParseExternalMoves(raw)
}

// ParseExternalMoves normalizes an external solver's move string into this
// engine's notation. The external dialect allows a literal "prime" keyword
// as well as the apostrophe for counter-clockwise turns, "2" for half
// turns, and lowercase letters for wide moves.
func ParseExternalMoves(s string) ([]rubiks.Move, error) {
	fields := strings.Fields(s)
	moves := make([]rubiks.Move, 0, len(fields))
	for _, tok := range fields {
		m, err := parseExternalToken(tok)
		if err != nil {
			return nil, err
		}
		moves = append(moves, m)
	}
	return moves, nil
}

func parseExternalToken(tok string) (rubiks.Move, error) {
	if tok == "" {
		return rubiks.Move{}, rubiks.ErrInvalidNotation
	}

	// The face letter parses exactly like native notation, including the
	// lowercase wide convention.
	m, err := rubiks.ParseMove(tok[:1])
	if err != nil {
		return rubiks.Move{}, fmt.Errorf("external token %q: %w", tok, err)
	}

	switch suffix := strings.ToLower(tok[1:]); suffix {
	case "":
		m.Turn = rubiks.CW
	case "'", "`", "prime":
		m.Turn = rubiks.CCW
	case "2", "2'", "2`":
		m.Turn = rubiks.Double
	default:
		return rubiks.Move{}, fmt.Errorf("external token %q: %w", tok, rubiks.ErrInvalidNotation)
	}
	return m, nil
}
