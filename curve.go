package curveplot

import (
	"fmt"
	"sort"
)

// Curve is an immutable ordered polyline of 2D points with a derived
// arc-length parametrization. Point order is path order. The cumulative
// length sequence has one entry per point, starts at 0, and is monotone
// non-decreasing; a curve with fewer than two points has no meaningful
// parametrization.
//
// Curve is a value type: WithPoint and WithReplacedPoint return new
// curves and never mutate the receiver. The zero value is an empty curve.
type Curve struct {
	points     []Point
	cumulative []float64
}

// NewCurve returns an empty curve.
func NewCurve() Curve {
	return Curve{}
}

// CurveFromPoints builds a curve from an initial point list.
// The slice is copied; the caller keeps ownership of its argument.
func CurveFromPoints(points []Point) Curve {
	pts := make([]Point, len(points))
	copy(pts, points)
	return Curve{
		points:     pts,
		cumulative: computeCumulativeLengths(pts),
	}
}

func computeCumulativeLengths(points []Point) []float64 {
	if len(points) == 0 {
		return nil
	}
	cum := make([]float64, len(points))
	for i := 1; i < len(points); i++ {
		cum[i] = cum[i-1] + points[i].Distance(points[i-1])
	}
	return cum
}

// Len returns the number of points.
func (c Curve) Len() int {
	return len(c.points)
}

// Points returns a copy of the point sequence.
func (c Curve) Points() []Point {
	pts := make([]Point, len(c.points))
	copy(pts, c.points)
	return pts
}

// Point returns the point at index i.
// It returns ErrIndexOutOfRange if i is not a valid index.
func (c Curve) Point(i int) (Point, error) {
	if i < 0 || i >= len(c.points) {
		return Point{}, fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, i, len(c.points))
	}
	return c.points[i], nil
}

// CumulativeLengths returns a copy of the cumulative length sequence.
// Entry i is the path length from the first point to point i, so entry 0
// is 0 and the last entry equals TotalLength.
func (c Curve) CumulativeLengths() []float64 {
	cum := make([]float64, len(c.cumulative))
	copy(cum, c.cumulative)
	return cum
}

// TotalLength returns the total arc length, 0 for curves with fewer
// than two points.
func (c Curve) TotalLength() float64 {
	if len(c.cumulative) == 0 {
		return 0
	}
	return c.cumulative[len(c.cumulative)-1]
}

// WithPoint returns a new curve with p appended. Only the new segment's
// length is computed; the existing cumulative sequence is reused as a
// prefix of the copy.
func (c Curve) WithPoint(p Point) Curve {
	n := len(c.points)
	pts := make([]Point, n+1)
	copy(pts, c.points)
	pts[n] = p

	cum := make([]float64, n+1)
	copy(cum, c.cumulative)
	if n > 0 {
		cum[n] = cum[n-1] + p.Distance(pts[n-1])
	}
	return Curve{points: pts, cumulative: cum}
}

// WithReplacedPoint returns a new curve with the point at index i
// replaced by p. It returns ErrIndexOutOfRange if i is not a valid
// index. Cumulative lengths are recomputed in full; only segments
// touching i actually change, but curves are interactive-sized and the
// full recompute keeps the code trivially correct.
func (c Curve) WithReplacedPoint(i int, p Point) (Curve, error) {
	if i < 0 || i >= len(c.points) {
		return Curve{}, fmt.Errorf("%w: %d of %d", ErrIndexOutOfRange, i, len(c.points))
	}
	pts := make([]Point, len(c.points))
	copy(pts, c.points)
	pts[i] = p
	return Curve{
		points:     pts,
		cumulative: computeCumulativeLengths(pts),
	}, nil
}

// At samples the curve at arc-length parameter s using linear
// interpolation between the two bracketing points. s is clamped to
// [0, TotalLength]. It returns ErrDegenerateCurve when the curve has
// fewer than two points.
func (c Curve) At(s float64) (Point, error) {
	if len(c.points) < 2 {
		return Point{}, ErrDegenerateCurve
	}

	total := c.TotalLength()
	if s < 0 {
		s = 0
	} else if s > total {
		s = total
	}

	// First index whose cumulative length is >= s; the segment
	// [idx-1, idx] brackets s.
	idx := sort.SearchFloat64s(c.cumulative, s)
	if idx == 0 {
		return c.points[0], nil
	}

	l1 := c.cumulative[idx-1]
	l2 := c.cumulative[idx]
	w := 0.0
	if l2 > l1 {
		w = (s - l1) / (l2 - l1)
	}
	return c.points[idx-1].Lerp(c.points[idx], w), nil
}

// Segments returns the curve's line segments in path order.
// A curve with fewer than two points has no segments.
func (c Curve) Segments() []LineSegment {
	if len(c.points) < 2 {
		return nil
	}
	segs := make([]LineSegment, len(c.points)-1)
	for i := range segs {
		segs[i] = LineSegment{P0: c.points[i], P1: c.points[i+1]}
	}
	return segs
}
