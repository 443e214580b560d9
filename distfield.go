package curveplot

import "math"

// DistanceField is the bivariate function d(s, t) giving the Euclidean
// distance between the point at arc-length parameter s on the first
// curve and parameter t on the second. It is stateless apart from the
// two curve values it was built from; nothing is cached across frames,
// so curve edits stay trivially consistent with the rendered field.
type DistanceField struct {
	c1, c2 Curve
}

// NewDistanceField builds a distance field over the two curves.
// It returns ErrDegenerateCurve if either curve has fewer than two
// points, mirroring the guard callers are expected to apply before
// rendering.
func NewDistanceField(c1, c2 Curve) (*DistanceField, error) {
	if c1.Len() < 2 || c2.Len() < 2 {
		return nil, ErrDegenerateCurve
	}
	return &DistanceField{c1: c1, c2: c2}, nil
}

// Evaluate returns d(s, t). Parameters outside the curves' length
// ranges are clamped by the underlying sampling.
func (f *DistanceField) Evaluate(s, t float64) float64 {
	// At cannot fail: both curves were validated at construction.
	p1, _ := f.c1.At(s)
	p2, _ := f.c2.At(t)
	return p1.Distance(p2)
}

// MaxDist returns the maximum of d over the whole domain. The maximum
// of the distance between two polylines is attained at a vertex pair,
// so a scan over the point product suffices.
func (f *DistanceField) MaxDist() float64 {
	maxSq := math.Inf(-1)
	for _, p1 := range f.c1.points {
		for _, p2 := range f.c2.points {
			if d := p1.Sub(p2).LengthSquared(); d > maxSq {
				maxSq = d
			}
		}
	}
	return math.Sqrt(maxSq)
}

// MinDist returns the minimum of d over the whole domain, the closest
// approach between any segment of one curve and any segment of the
// other.
func (f *DistanceField) MinDist() float64 {
	minSq := math.Inf(1)
	for _, s1 := range f.c1.Segments() {
		for _, s2 := range f.c2.Segments() {
			if d := s1.DistanceSquared(s2); d < minSq {
				minSq = d
			}
		}
	}
	return math.Sqrt(minSq)
}

// Curves returns the two curve values the field was built from.
func (f *DistanceField) Curves() (Curve, Curve) {
	return f.c1, f.c2
}
