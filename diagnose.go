package rubiks

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
)

// Category classifies a violation.
type Category string

const (
	CategoryColorCount  Category = "color-count"
	CategoryEdgePiece   Category = "edge-piece"
	CategoryCornerPiece Category = "corner-piece"
	CategoryOrientation Category = "orientation"
	CategoryParity      Category = "parity"
)

// Severity grades how serious a violation is.
type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityWarning  Severity = "warning"
	SeverityInfo     Severity = "info"
)

// violationKind drives auto-fix dispatch. Not exposed; callers should key
// off Category.
type violationKind int

const (
	kindColorCount violationKind = iota
	kindEdgeRepeat
	kindEdgeOpposite
	kindEdgeUnknown
	kindEdgeDuplicate
	kindCornerRepeat
	kindCornerOpposite
	kindCornerUnknown
	kindCornerDuplicate
	kindEdgeOrientation
	kindCornerOrientation
	kindPermutation
	kindCenterArrangement
)

// Violation is one structured diagnostic about a cube state.
type Violation struct {
	ID          string
	Category    Category
	Severity    Severity
	Message     string
	Positions   []Facelet
	FixSteps    []string
	AutoFixable bool

	kind  violationKind
	color Color // offending color, where one exists
}

func newViolation(cat Category, sev Severity, msg string, positions []Facelet, fixSteps []string, fixable bool, kind violationKind, color Color) Violation {
	return Violation{
		ID:          uuid.New().String(),
		Category:    cat,
		Severity:    sev,
		Message:     msg,
		Positions:   positions,
		FixSteps:    fixSteps,
		AutoFixable: fixable,
		kind:        kind,
		color:       color,
	}
}

// diagnosticChecks is the number of independent checks behind the progress
// score: 6 color counts, 12 edges, 8 corners, the center arrangement, and
// 3 parity invariants.
const diagnosticChecks = 6 + 12 + 8 + 1 + 3

// Report bundles all diagnostics for one cube state.
type Report struct {
	Violations []Violation
	IsValid    bool
	// Progress is a 0-100 score for entry UIs: 100 exactly when the state
	// is violation-free.
	Progress int
}

// Diagnose runs the structural validator and, if the structure is clean and
// the state complete, the parity checker. Parity on an already-impossible
// state is meaningless and skipped.
func Diagnose(c *Cube) *Report {
	violations := ValidateStructure(c)
	if len(violations) == 0 && c.IsComplete() {
		violations = append(violations, CheckParity(c)...)
	}

	progress := 100 * (diagnosticChecks - len(violations)) / diagnosticChecks
	if progress < 0 {
		progress = 0
	}
	if len(violations) == 0 {
		progress = 100
	} else if progress >= 100 {
		progress = 99
	}

	return &Report{
		Violations: violations,
		IsValid:    len(violations) == 0,
		Progress:   progress,
	}
}

// FixResult is the outcome of one auto-fix attempt. On failure NewState is
// nil and the input state is untouched.
type FixResult struct {
	NewState    *Cube
	Description string
	Success     bool
}

// AutoFix attempts a mechanical repair for a single violation. Only
// color-count, edge-piece and corner-piece violations are fixable;
// orientation and permutation parity indicate a physically reassembled cube
// and cannot be repaired by recoloring.
func AutoFix(v Violation, c *Cube) FixResult {
	switch v.kind {
	case kindColorCount:
		return fixColorCount(v, c)
	case kindEdgeRepeat, kindEdgeOpposite, kindEdgeUnknown, kindEdgeDuplicate,
		kindCornerRepeat, kindCornerOpposite, kindCornerUnknown, kindCornerDuplicate:
		return fixPiece(v, c)
	default:
		return FixResult{
			Description: "parity violations require physically reassembling the cube; recoloring cannot fix them",
			Success:     false,
		}
	}
}

// fixColorCount recolors one non-center facelet of an over-represented color
// to the most under-represented color. Facelets sitting inside a violating
// piece are preferred, so a count fix does not break a healthy piece.
func fixColorCount(v Violation, c *Cube) FixResult {
	tally := colorTally(c)

	over := v.color
	if tally[over] <= 9 {
		over = Unset
		for col := Color(0); col < 6; col++ {
			if tally[col] > 9 && (over == Unset || tally[col] > tally[over]) {
				over = col
			}
		}
	}
	if over == Unset {
		return FixResult{Description: "no over-represented color to repaint", Success: false}
	}

	under := Unset
	for col := Color(0); col < 6; col++ {
		if tally[col] < 9 && (under == Unset || tally[col] < tally[under]) {
			under = col
		}
	}
	if under == Unset {
		return FixResult{Description: "no under-represented color to repaint with", Success: false}
	}

	if target, ok := pickOverFacelet(c, over); ok {
		fixed := c.Clone()
		fixed.Facelets[target.Face][target.Index] = under
		return FixResult{
			NewState:    fixed,
			Description: fmt.Sprintf("repainted %s from %s to %s", target, displayName(over), displayName(under)),
			Success:     true,
		}
	}
	return FixResult{Description: "over-represented color found only on centers", Success: false}
}

// pickOverFacelet chooses which facelet of the over-represented color to
// repaint: one inside a violating piece when possible, otherwise the first
// non-center occurrence.
func pickOverFacelet(c *Cube, over Color) (Facelet, bool) {
	var pieceViolations []Violation
	pieceViolations = append(pieceViolations, checkEdges(c)...)
	pieceViolations = append(pieceViolations, checkCorners(c)...)
	for _, pv := range pieceViolations {
		for _, p := range pv.Positions {
			if p.Index != 4 && c.at(p) == over {
				return p, true
			}
		}
	}

	for f := Face(0); f < 6; f++ {
		for i := 0; i < 9; i++ {
			if i == 4 {
				continue // centers are fixed
			}
			if c.Facelets[f][i] == over {
				return Facelet{f, i}, true
			}
		}
	}
	return Facelet{}, false
}

// fixPiece recolors one sticker of an illegal or duplicated piece: the
// sticker whose color is globally most abundant is repainted to the
// least-used color that is neither already on the piece nor opposite to any
// color on it.
func fixPiece(v Violation, c *Cube) FixResult {
	if len(v.Positions) == 0 {
		return FixResult{Description: "violation carries no positions", Success: false}
	}
	tally := colorTally(c)

	// Pick the sticker holding the globally more abundant color.
	target := v.Positions[0]
	for _, p := range v.Positions[1:] {
		if tally[c.at(p)] > tally[c.at(target)] {
			target = p
		}
	}
	if target.Index == 4 {
		return FixResult{Description: "cannot repaint a center facelet", Success: false}
	}

	// Colors that stay on the piece after the repaint.
	var remaining []Color
	for _, p := range v.Positions {
		if p != target {
			remaining = append(remaining, c.at(p))
		}
	}

	replacement, ok := pickReplacement(tally, c.at(target), remaining)
	if !ok {
		return FixResult{Description: "no legal replacement color exists for this piece", Success: false}
	}

	fixed := c.Clone()
	fixed.Facelets[target.Face][target.Index] = replacement
	return FixResult{
		NewState:    fixed,
		Description: fmt.Sprintf("repainted %s from %s to %s", target, displayName(c.at(target)), displayName(replacement)),
		Success:     true,
	}
}

// pickReplacement chooses the least-used color that is legal next to the
// remaining piece colors: not already on the piece, not opposite to anything
// on it, and different from the color being replaced.
func pickReplacement(tally [7]int, current Color, remaining []Color) (Color, bool) {
	candidates := []Color{White, Yellow, Green, Blue, Red, Orange}
	sort.SliceStable(candidates, func(i, j int) bool {
		return tally[candidates[i]] < tally[candidates[j]]
	})

next:
	for _, cand := range candidates {
		if cand == current {
			continue
		}
		for _, r := range remaining {
			if cand == r || opposite[cand] == r {
				continue next
			}
		}
		return cand, true
	}
	return Unset, false
}

// maxAutoFixPasses bounds AutoFixAll; each pass repairs at most one facelet,
// and 54 facelets is the most any state could need.
const maxAutoFixPasses = 54

// AutoFixAll repeatedly diagnoses and repairs until the state is clean, a
// repair fails, or the pass bound is hit. It returns the final state, the
// descriptions of the repairs applied, and whether the state ended clean of
// auto-fixable violations.
func AutoFixAll(c *Cube) (*Cube, []string, bool) {
	current := c
	var applied []string

	for pass := 0; pass < maxAutoFixPasses; pass++ {
		report := Diagnose(current)
		if report.IsValid {
			return current, applied, true
		}

		var next *Violation
		for i := range report.Violations {
			if report.Violations[i].AutoFixable {
				next = &report.Violations[i]
				break
			}
		}
		if next == nil {
			// Only unfixable (parity) violations remain.
			return current, applied, false
		}

		result := AutoFix(*next, current)
		if !result.Success {
			return current, applied, false
		}
		current = result.NewState
		applied = append(applied, result.Description)
	}
	return current, applied, false
}
