package rubiks

import (
	"encoding/json"
	"fmt"
	"strings"
)

// stateJSON is the interchange format for cube states: one key per face,
// nine color names per face, "unset" for facelets not yet entered.
type stateJSON struct {
	Up    []string `json:"up"`
	Down  []string `json:"down"`
	Front []string `json:"front"`
	Back  []string `json:"back"`
	Left  []string `json:"left"`
	Right []string `json:"right"`
}

// ParseColor parses a lowercase color name ("white", "unset", ...).
func ParseColor(name string) (Color, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "white":
		return White, nil
	case "yellow":
		return Yellow, nil
	case "green":
		return Green, nil
	case "blue":
		return Blue, nil
	case "red":
		return Red, nil
	case "orange":
		return Orange, nil
	case "unset", "":
		return Unset, nil
	default:
		return Unset, fmt.Errorf("%w: unknown color %q", ErrInvalidState, name)
	}
}

// MarshalJSON encodes the cube in the face-keyed state format.
func (c *Cube) MarshalJSON() ([]byte, error) {
	names := func(f Face) []string {
		out := make([]string, 9)
		for i := 0; i < 9; i++ {
			out[i] = c.Facelets[f][i].Name()
		}
		return out
	}
	return json.Marshal(stateJSON{
		Up:    names(FaceU),
		Down:  names(FaceD),
		Front: names(FaceF),
		Back:  names(FaceB),
		Left:  names(FaceL),
		Right: names(FaceR),
	})
}

// UnmarshalJSON decodes the face-keyed state format. Every face must carry
// exactly nine color symbols.
func (c *Cube) UnmarshalJSON(data []byte) error {
	var s stateJSON
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %v", ErrInvalidState, err)
	}

	faces := []struct {
		face  Face
		names []string
	}{
		{FaceU, s.Up},
		{FaceD, s.Down},
		{FaceF, s.Front},
		{FaceB, s.Back},
		{FaceL, s.Left},
		{FaceR, s.Right},
	}

	var parsed Cube
	for _, f := range faces {
		if len(f.names) != 9 {
			return fmt.Errorf("%w: face %s has %d facelets, want 9", ErrInvalidState, faceName(f.face), len(f.names))
		}
		for i, name := range f.names {
			color, err := ParseColor(name)
			if err != nil {
				return err
			}
			parsed.Facelets[f.face][i] = color
		}
	}

	*c = parsed
	return nil
}

// externalFaceOrder is the face order the external facelet solver expects.
var externalFaceOrder = [6]Face{FaceF, FaceR, FaceU, FaceD, FaceL, FaceB}

// FaceletString serializes a complete cube into the 54-character string the
// external solver consumes: faces in Front, Right, Up, Down, Left, Back
// order, each read row-major, each color encoded as the letter of the face
// whose center carries it.
func (c *Cube) FaceletString() (string, error) {
	if !c.IsComplete() {
		return "", ErrIncompleteState
	}

	var letterFor [7]string
	for _, f := range []Face{FaceU, FaceD, FaceF, FaceB, FaceL, FaceR} {
		letterFor[c.Facelets[f][4]] = f.String()
	}

	var sb strings.Builder
	sb.Grow(54)
	for _, f := range externalFaceOrder {
		for i := 0; i < 9; i++ {
			letter := letterFor[c.Facelets[f][i]]
			if letter == "" {
				return "", fmt.Errorf("%w: color %s is on no center", ErrInvalidState, displayName(c.Facelets[f][i]))
			}
			sb.WriteString(letter)
		}
	}
	return sb.String(), nil
}
