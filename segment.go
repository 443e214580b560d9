package curveplot

import "math"

// LineSegment is a 2D line segment from P0 to P1.
type LineSegment struct {
	P0, P1 Point
}

// Eval returns the point at fraction t along the segment (t in [0,1]).
func (l LineSegment) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

// Length returns the segment length.
func (l LineSegment) Length() float64 {
	return l.P0.Distance(l.P1)
}

// DistanceSquared returns the squared minimum distance between the two
// segments, using the constrained quadratic minimization from
// Eberly, "Robust Computation of Distance Between Line Segments"
// (geometrictools.com). Handles degenerate and parallel segments.
func (l LineSegment) DistanceSquared(o LineSegment) float64 {
	p := l.P1.Sub(l.P0)
	q := o.P1.Sub(o.P0)
	r := l.P0.Sub(o.P0)

	a := p.Dot(p)
	b := p.Dot(q)
	c := q.Dot(q)
	d := p.Dot(r)
	e := q.Dot(r)

	det := a*c - b*b

	var s, t float64
	if det > 0 {
		bte := b * e
		ctd := c * d
		switch {
		case bte <= ctd: // s <= 0
			s = 0
			switch {
			case e <= 0:
				t = 0
				s = clampDiv(-d, a)
			case e < c:
				t = e / c
			default:
				t = 1
				s = clampDiv(b-d, a)
			}
		default: // s > 0
			s = bte - ctd
			switch {
			case s >= det: // s >= 1
				s = 1
				bpe := b + e
				switch {
				case bpe <= 0:
					t = 0
					s = clampDiv(-d, a)
				case bpe < c:
					t = bpe / c
				default:
					t = 1
					s = clampDiv(b-d, a)
				}
			default: // 0 < s < 1
				ate := a * e
				btd := b * d
				switch {
				case ate <= btd: // t <= 0
					t = 0
					s = clampDiv(-d, a)
				default:
					t = ate - btd
					if t >= det {
						t = 1
						s = clampDiv(b-d, a)
					} else {
						s /= det
						t /= det
					}
				}
			}
		}
	} else {
		// Parallel (or degenerate) segments: the minimum lies on an
		// edge of the [0,1]^2 domain.
		switch {
		case e <= 0:
			t = 0
			s = clampDiv(-d, a)
		case e >= c:
			t = 1
			s = clampDiv(b-d, a)
		default:
			s = 0
			t = e / c
		}
	}

	c0 := l.P0.Add(p.Mul(s))
	c1 := o.P0.Add(q.Mul(t))
	return c0.Sub(c1).LengthSquared()
}

// Distance returns the minimum distance between the two segments.
func (l LineSegment) Distance(o LineSegment) float64 {
	return math.Sqrt(l.DistanceSquared(o))
}

// clampDiv returns num/den clamped to [0, 1], treating a non-positive
// denominator (degenerate segment) as 0.
func clampDiv(num, den float64) float64 {
	if num <= 0 || den <= 0 {
		return 0
	}
	if num >= den {
		return 1
	}
	return num / den
}
