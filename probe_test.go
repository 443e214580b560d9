package curveplot

import (
	"math"
	"testing"
)

func TestResolveProbe(t *testing.T) {
	c1 := CurveFromPoints([]Point{{0, 0}, {10, 0}})
	c2 := CurveFromPoints([]Point{{0, 5}, {10, 5}})
	f := mustField(t, c1, c2)

	leash, err := ResolveProbe(f, 5, 5)
	if err != nil {
		t.Fatalf("ResolveProbe error: %v", err)
	}
	if !pointsEqual(leash.P1, Point{5, 0}, curveEpsilon) {
		t.Errorf("P1 = %v, want (5, 0)", leash.P1)
	}
	if !pointsEqual(leash.P2, Point{5, 5}, curveEpsilon) {
		t.Errorf("P2 = %v, want (5, 5)", leash.P2)
	}
	if math.Abs(leash.Length()-5) > curveEpsilon {
		t.Errorf("Length() = %v, want 5", leash.Length())
	}
	// Leash length agrees with the distance field at the same pair.
	if math.Abs(leash.Length()-f.Evaluate(5, 5)) > curveEpsilon {
		t.Errorf("Length() = %v, Evaluate = %v", leash.Length(), f.Evaluate(5, 5))
	}
}

func TestResolveProbeClampsParameters(t *testing.T) {
	c1 := CurveFromPoints([]Point{{0, 0}, {10, 0}})
	c2 := CurveFromPoints([]Point{{0, 5}, {10, 5}})
	f := mustField(t, c1, c2)

	leash, err := ResolveProbe(f, -3, 100)
	if err != nil {
		t.Fatalf("ResolveProbe error: %v", err)
	}
	if leash.S != 0 || leash.T != 10 {
		t.Errorf("clamped params = (%v, %v), want (0, 10)", leash.S, leash.T)
	}
	if !pointsEqual(leash.P1, Point{0, 0}, curveEpsilon) {
		t.Errorf("P1 = %v, want (0, 0)", leash.P1)
	}
	if !pointsEqual(leash.P2, Point{10, 5}, curveEpsilon) {
		t.Errorf("P2 = %v, want (10, 5)", leash.P2)
	}
}

func TestLeashSegment(t *testing.T) {
	l := Leash{P1: Point{1, 2}, P2: Point{4, 6}}
	seg := l.Segment()
	if seg.P0 != l.P1 || seg.P1 != l.P2 {
		t.Errorf("Segment() = %v, want from %v to %v", seg, l.P1, l.P2)
	}
	if math.Abs(seg.Length()-5) > curveEpsilon {
		t.Errorf("Segment().Length() = %v, want 5", seg.Length())
	}
}
