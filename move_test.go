package rubiks

import (
	"errors"
	"testing"
)

func TestParseMove(t *testing.T) {
	cases := []struct {
		in   string
		want Move
	}{
		{"R", Move{Face: FaceR, Turn: CW}},
		{"R'", Move{Face: FaceR, Turn: CCW}},
		{"R2", Move{Face: FaceR, Turn: Double}},
		{"U", Move{Face: FaceU, Turn: CW}},
		{"d'", Move{Face: FaceD, Turn: CCW, Wide: true}},
		{"f2", Move{Face: FaceF, Turn: Double, Wide: true}},
		{"l", Move{Face: FaceL, Turn: CW, Wide: true}},
		{"B'", Move{Face: FaceB, Turn: CCW}},
	}
	for _, tc := range cases {
		got, err := ParseMove(tc.in)
		if err != nil {
			t.Errorf("ParseMove(%q) returned error: %v", tc.in, err)
			continue
		}
		if got != tc.want {
			t.Errorf("ParseMove(%q) = %+v, want %+v", tc.in, got, tc.want)
		}
	}
}

func TestParseMoveRejectsBadNotation(t *testing.T) {
	bad := []string{"", "X", "R3", "R''", "RU", "2R"}
	for _, in := range bad {
		if _, err := ParseMove(in); !errors.Is(err, ErrInvalidNotation) {
			t.Errorf("ParseMove(%q) error = %v, want ErrInvalidNotation", in, err)
		}
	}
}

func TestParseMoveRejectsExternalDialect(t *testing.T) {
	// Backtick and "2'" spellings are the external solver's dialect and
	// must not leak into native notation.
	for _, in := range []string{"R`", "R2'", "R2`", "Rprime"} {
		if _, err := ParseMove(in); !errors.Is(err, ErrInvalidNotation) {
			t.Errorf("ParseMove(%q) error = %v, want ErrInvalidNotation", in, err)
		}
	}
}

func TestParseMovesFailsOnFirstBadToken(t *testing.T) {
	if _, err := ParseMoves("R U Q F"); !errors.Is(err, ErrInvalidNotation) {
		t.Errorf("ParseMoves with bad token error = %v, want ErrInvalidNotation", err)
	}
	moves, err := ParseMoves("R U R' U'")
	if err != nil {
		t.Fatalf("ParseMoves returned error: %v", err)
	}
	if len(moves) != 4 {
		t.Errorf("ParseMoves returned %d moves, want 4", len(moves))
	}
}

func TestNotationRoundTrip(t *testing.T) {
	faces := []Face{FaceU, FaceD, FaceF, FaceB, FaceR, FaceL}
	turns := []Turn{CW, CCW, Double}
	for _, f := range faces {
		for _, turn := range turns {
			for _, wide := range []bool{false, true} {
				m := Move{Face: f, Turn: turn, Wide: wide}
				parsed, err := ParseMove(m.Notation())
				if err != nil {
					t.Errorf("ParseMove(%q) returned error: %v", m.Notation(), err)
					continue
				}
				if parsed != m {
					t.Errorf("round trip of %q = %+v, want %+v", m.Notation(), parsed, m)
				}
			}
		}
	}
}

func TestInverse(t *testing.T) {
	cases := []struct{ in, want string }{
		{"R", "R'"},
		{"R'", "R"},
		{"R2", "R2"},
		{"u", "u'"},
		{"f2", "f2"},
	}
	for _, tc := range cases {
		m, err := ParseMove(tc.in)
		if err != nil {
			t.Fatalf("ParseMove(%q) returned error: %v", tc.in, err)
		}
		if got := m.Inverse().Notation(); got != tc.want {
			t.Errorf("inverse of %s = %s, want %s", tc.in, got, tc.want)
		}
	}
}

func TestFormatMoves(t *testing.T) {
	moves := []Move{R, U, RPrime, U2}
	if got := FormatMoves(moves); got != "R U R' U2" {
		t.Errorf("FormatMoves = %q, want %q", got, "R U R' U2")
	}
	if got := FormatMoves(nil); got != "" {
		t.Errorf("FormatMoves(nil) = %q, want empty", got)
	}
}

func TestAlgorithmsReturnToSolved(t *testing.T) {
	// Every library algorithm permutes pieces, so repeating it must cycle
	// back to solved within a small bound.
	for _, alg := range Algorithms {
		c := New()
		solvedAgain := false
		for i := 0; i < 36 && !solvedAgain; i++ {
			c = c.ApplySequence(alg.Moves)
			solvedAgain = c.IsSolved()
		}
		if !solvedAgain {
			t.Errorf("algorithm %q never returned to solved", alg.Name)
		}
	}
}
