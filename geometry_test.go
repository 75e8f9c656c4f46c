package rubiks

import "testing"

func TestOppositeColor(t *testing.T) {
	pairs := [][2]Color{{White, Yellow}, {Green, Blue}, {Red, Orange}}
	for _, p := range pairs {
		if OppositeColor(p[0]) != p[1] || OppositeColor(p[1]) != p[0] {
			t.Errorf("%s and %s should be opposites", p[0].Name(), p[1].Name())
		}
	}
	if OppositeColor(Unset) != Unset {
		t.Error("Unset has no opposite")
	}
}

func TestEdgeIdentityIsOrderFree(t *testing.T) {
	a := edgeIdentity(White, Green)
	b := edgeIdentity(Green, White)
	if a < 0 || a != b {
		t.Errorf("edgeIdentity(W,G)=%d, edgeIdentity(G,W)=%d, want equal and valid", a, b)
	}
	if edgeIdentity(White, Yellow) >= 0 {
		t.Error("opposite colors must not form an edge identity")
	}
	if edgeIdentity(White, White) >= 0 {
		t.Error("a repeated color must not form an edge identity")
	}
}

func TestCornerIdentityIsOrderFree(t *testing.T) {
	a := cornerIdentity(White, Red, Green)
	b := cornerIdentity(Green, White, Red)
	if a < 0 || a != b {
		t.Errorf("cornerIdentity differs across orderings: %d vs %d", a, b)
	}
	if cornerIdentity(White, Yellow, Green) >= 0 {
		t.Error("opposite colors must not form a corner identity")
	}
}

func TestEverySolvedSlotHasIdentity(t *testing.T) {
	c := New()
	for _, slot := range EdgeSlots {
		if edgeIdentity(c.at(slot.A), c.at(slot.B)) < 0 {
			t.Errorf("solved edge %s has no identity", slot.Name)
		}
	}
	for _, slot := range CornerSlots {
		if cornerIdentity(c.at(slot.Facelets[0]), c.at(slot.Facelets[1]), c.at(slot.Facelets[2])) < 0 {
			t.Errorf("solved corner %s has no identity", slot.Name)
		}
	}
}
