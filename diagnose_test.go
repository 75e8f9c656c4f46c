package rubiks

import (
	"testing"
)

func TestDiagnoseSolved(t *testing.T) {
	report := Diagnose(New())
	if !report.IsValid {
		t.Error("solved cube should be valid")
	}
	if report.Progress != 100 {
		t.Errorf("progress = %d, want 100", report.Progress)
	}
	if len(report.Violations) != 0 {
		t.Errorf("got %d violations, want 0", len(report.Violations))
	}
}

func TestDiagnoseWideScrambleIsValid(t *testing.T) {
	// Wide-move states must pass the full diagnosis: the solve path
	// refuses anything Diagnose flags.
	for _, scr := range []string{"r", "u'", "r U r'", "f d2 b"} {
		c := New().ApplySequence(mustParseMoves(t, scr))
		report := Diagnose(c)
		if !report.IsValid {
			t.Errorf("scramble %q diagnosed as invalid", scr)
			for _, v := range report.Violations {
				t.Log(v.Message)
			}
		}
	}
}

func TestDiagnoseProgressNeverFullWithViolations(t *testing.T) {
	// One flipped edge: a single violation must still cap progress below
	// 100.
	c := New()
	c.Facelets[FaceU][7], c.Facelets[FaceF][1] = c.Facelets[FaceF][1], c.Facelets[FaceU][7]

	report := Diagnose(c)
	if report.IsValid {
		t.Error("flipped edge should not be valid")
	}
	if report.Progress >= 100 || report.Progress < 0 {
		t.Errorf("progress = %d, want within [0, 100)", report.Progress)
	}
}

func TestDiagnoseSkipsParityOnBrokenStructure(t *testing.T) {
	// A repainted sticker breaks structure; parity on such a state is
	// meaningless and must not be reported.
	c := New()
	c.Facelets[FaceF][1] = White

	report := Diagnose(c)
	for _, v := range report.Violations {
		if v.Category == CategoryOrientation || v.Category == CategoryParity {
			t.Errorf("parity violation %q reported on structurally broken state", v.Message)
		}
	}
}

func TestViolationIDsAreUnique(t *testing.T) {
	c := New()
	c.Facelets[FaceU][4] = Red

	report := Diagnose(c)
	seen := map[string]bool{}
	for _, v := range report.Violations {
		if v.ID == "" {
			t.Error("violation has empty ID")
		}
		if seen[v.ID] {
			t.Errorf("duplicate violation ID %s", v.ID)
		}
		seen[v.ID] = true
	}
}

func TestAutoFixColorCount(t *testing.T) {
	c := New()
	c.Facelets[FaceU][4] = Red

	report := Diagnose(c)
	var count *Violation
	for i := range report.Violations {
		if report.Violations[i].Category == CategoryColorCount && report.Violations[i].AutoFixable {
			count = &report.Violations[i]
			break
		}
	}
	if count == nil {
		t.Fatal("no auto-fixable count violation found")
	}

	result := AutoFix(*count, c)
	if !result.Success {
		t.Fatalf("fix failed: %s", result.Description)
	}
	if tally := colorTally(result.NewState); tally[Red] != 9 {
		t.Errorf("Red count after fix = %d, want 9", tally[Red])
	}
}

func TestAutoFixOppositeEdgeRestoresSolved(t *testing.T) {
	c := New()
	c.Facelets[FaceF][1] = Yellow

	report := Diagnose(c)
	var edge *Violation
	for i := range report.Violations {
		if report.Violations[i].Category == CategoryEdgePiece {
			edge = &report.Violations[i]
			break
		}
	}
	if edge == nil {
		t.Fatal("no edge violation found")
	}

	result := AutoFix(*edge, c)
	if !result.Success {
		t.Fatalf("fix failed: %s", result.Description)
	}
	if !result.NewState.IsSolved() {
		t.Error("repainting the odd sticker should restore the solved state")
		t.Log(result.NewState.String())
	}
}

func TestAutoFixRefusesParity(t *testing.T) {
	c := New()
	c.Facelets[FaceU][7], c.Facelets[FaceF][1] = c.Facelets[FaceF][1], c.Facelets[FaceU][7]

	report := Diagnose(c)
	if len(report.Violations) != 1 {
		t.Fatalf("got %d violations, want 1", len(report.Violations))
	}
	result := AutoFix(report.Violations[0], c)
	if result.Success {
		t.Error("parity violations must not be auto-fixable")
	}
}

func TestAutoFixDoesNotMutateInput(t *testing.T) {
	c := New()
	c.Facelets[FaceF][1] = Yellow
	snapshot := c.Clone()

	report := Diagnose(c)
	for _, v := range report.Violations {
		AutoFix(v, c)
	}
	if !c.Equal(snapshot) {
		t.Error("AutoFix must not mutate its input state")
	}
}

func TestAutoFixAllConvergesToSolved(t *testing.T) {
	c := New()
	c.Facelets[FaceF][1] = Yellow

	fixed, applied, ok := AutoFixAll(c)
	if !ok {
		t.Fatal("AutoFixAll should fully repair a single repainted sticker")
	}
	if !fixed.IsSolved() {
		t.Error("repaired state should be solved")
	}
	if len(applied) != 1 {
		t.Errorf("applied %d fixes, want 1", len(applied))
	}
}

func TestAutoFixAllStopsAtUnfixableParity(t *testing.T) {
	// Repainting UF's white sticker red makes the state ambiguous: any
	// recoloring that repairs structure leaves a piece swap behind.
	c := New()
	c.Facelets[FaceU][7] = Red

	fixed, applied, ok := AutoFixAll(c)
	if ok {
		t.Error("AutoFixAll should report failure when parity remains")
	}
	if len(applied) == 0 {
		t.Error("structural repairs should still have been applied")
	}
	if vs := ValidateStructure(fixed); len(vs) != 0 {
		t.Errorf("final state should be structurally clean, got %d violations", len(vs))
	}
}

func TestAutoFixAllLeavesValidStateAlone(t *testing.T) {
	c := New().ApplySequence(mustParseMoves(t, "R U R' U'"))
	fixed, applied, ok := AutoFixAll(c)
	if !ok {
		t.Error("a legal state needs no fixing")
	}
	if len(applied) != 0 {
		t.Errorf("applied %d fixes on a legal state, want 0", len(applied))
	}
	if !fixed.Equal(c) {
		t.Error("state should be returned unchanged")
	}
}
