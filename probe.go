package curveplot

// Leash is a resolved probe: the pair of curve points at a highlighted
// parameter pair and the straight segment joining them. It is
// recomputed from the current curve values on every frame; there is no
// cached state to invalidate when a curve is edited.
type Leash struct {
	// S and T are the highlighted parameters after clamping.
	S, T float64

	// P1 and P2 are the corresponding points on the two curves.
	P1, P2 Point
}

// Length returns the leash length, which equals the distance field
// value at (S, T).
func (l Leash) Length() float64 {
	return l.P1.Distance(l.P2)
}

// Segment returns the leash as a line segment from P1 to P2.
func (l Leash) Segment() LineSegment {
	return LineSegment{P0: l.P1, P1: l.P2}
}

// ResolveProbe resolves the highlighted parameter pair (s, t) against
// the field's curves. Out-of-range parameters clamp to the curve ends.
// It returns ErrDegenerateCurve only if the field was built around
// curves that have since become unsampleable, which cannot happen for
// fields obtained from NewDistanceField.
func ResolveProbe(f *DistanceField, s, t float64) (Leash, error) {
	c1, c2 := f.Curves()
	p1, err := c1.At(s)
	if err != nil {
		return Leash{}, err
	}
	p2, err := c2.At(t)
	if err != nil {
		return Leash{}, err
	}
	return Leash{
		S:  clamp(s, 0, c1.TotalLength()),
		T:  clamp(t, 0, c2.TotalLength()),
		P1: p1,
		P2: p2,
	}, nil
}

func clamp(x, lo, hi float64) float64 {
	if x < lo {
		return lo
	}
	if x > hi {
		return hi
	}
	return x
}
