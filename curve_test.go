package curveplot

import (
	"errors"
	"math"
	"testing"
)

const curveEpsilon = 1e-9

func pointsEqual(p1, p2 Point, epsilon float64) bool {
	return math.Abs(p1.X-p2.X) < epsilon && math.Abs(p1.Y-p2.Y) < epsilon
}

func TestCurveCumulativeLengths(t *testing.T) {
	tests := []struct {
		name   string
		points []Point
		want   []float64
	}{
		{
			name:   "empty",
			points: nil,
			want:   nil,
		},
		{
			name:   "single point",
			points: []Point{{1, 2}},
			want:   []float64{0},
		},
		{
			name:   "right angle 3-4-5",
			points: []Point{{0, 0}, {3, 0}, {3, 4}},
			want:   []float64{0, 3, 7},
		},
		{
			name:   "repeated point contributes zero length",
			points: []Point{{0, 0}, {1, 0}, {1, 0}, {2, 0}},
			want:   []float64{0, 1, 1, 2},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := CurveFromPoints(tt.points)
			got := c.CumulativeLengths()
			if len(got) != len(tt.want) {
				t.Fatalf("CumulativeLengths() len = %d, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if math.Abs(got[i]-tt.want[i]) > curveEpsilon {
					t.Errorf("CumulativeLengths()[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestCurveCumulativeLengthsMonotone(t *testing.T) {
	c := CurveFromPoints([]Point{{0, 0}, {5, 0}, {5, 0}, {2, 4}, {-1, -1}})
	lengths := c.CumulativeLengths()
	if lengths[0] != 0 {
		t.Errorf("CumulativeLengths()[0] = %v, want 0", lengths[0])
	}
	for i := 1; i < len(lengths); i++ {
		if lengths[i] < lengths[i-1] {
			t.Errorf("lengths not monotone at %d: %v < %v", i, lengths[i], lengths[i-1])
		}
	}
}

func TestCurveAt(t *testing.T) {
	c := CurveFromPoints([]Point{{0, 0}, {3, 0}, {3, 4}})

	tests := []struct {
		name string
		s    float64
		want Point
	}{
		{"start", 0, Point{0, 0}},
		{"first vertex", 3, Point{3, 0}},
		{"mid second segment", 5, Point{3, 2}},
		{"end", 7, Point{3, 4}},
		{"clamped below", -10, Point{0, 0}},
		{"clamped above", 100, Point{3, 4}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := c.At(tt.s)
			if err != nil {
				t.Fatalf("At(%v) error: %v", tt.s, err)
			}
			if !pointsEqual(got, tt.want, curveEpsilon) {
				t.Errorf("At(%v) = %v, want %v", tt.s, got, tt.want)
			}
		})
	}
}

func TestCurveAtEndpoints(t *testing.T) {
	// at(0) is the first point and at(total) the last, regardless of shape.
	curves := [][]Point{
		{{0, 0}, {1, 1}},
		{{5, -2}, {0, 0}, {-3, 7}, {10, 10}},
		{{1, 1}, {1, 1}, {2, 1}},
	}
	for _, pts := range curves {
		c := CurveFromPoints(pts)
		first, err := c.At(0)
		if err != nil {
			t.Fatalf("At(0) error: %v", err)
		}
		if !pointsEqual(first, pts[0], curveEpsilon) {
			t.Errorf("At(0) = %v, want %v", first, pts[0])
		}
		last, err := c.At(c.TotalLength())
		if err != nil {
			t.Fatalf("At(total) error: %v", err)
		}
		if !pointsEqual(last, pts[len(pts)-1], curveEpsilon) {
			t.Errorf("At(total) = %v, want %v", last, pts[len(pts)-1])
		}
	}
}

func TestCurveAtRoundTrip(t *testing.T) {
	pts := []Point{{0, 0}, {3, 0}, {3, 4}, {0, 4}}
	c := CurveFromPoints(pts)
	lengths := c.CumulativeLengths()
	for i, l := range lengths {
		got, err := c.At(l)
		if err != nil {
			t.Fatalf("At(%v) error: %v", l, err)
		}
		if !pointsEqual(got, pts[i], curveEpsilon) {
			t.Errorf("At(%v) = %v, want %v", l, got, pts[i])
		}
	}
}

func TestCurveAtIdempotent(t *testing.T) {
	c := CurveFromPoints([]Point{{0, 0}, {3, 0}, {3, 4}})
	p1, err1 := c.At(4.2)
	p2, err2 := c.At(4.2)
	if err1 != nil || err2 != nil {
		t.Fatalf("At errors: %v, %v", err1, err2)
	}
	if p1 != p2 {
		t.Errorf("At not deterministic: %v != %v", p1, p2)
	}
}

func TestCurveAtDegenerate(t *testing.T) {
	for _, pts := range [][]Point{nil, {{1, 2}}} {
		c := CurveFromPoints(pts)
		_, err := c.At(0)
		if !errors.Is(err, ErrDegenerateCurve) {
			t.Errorf("At on %d-point curve: error = %v, want ErrDegenerateCurve", len(pts), err)
		}
	}
}

func TestCurveAtZeroLengthSegment(t *testing.T) {
	// A repeated point yields a zero-length segment; sampling exactly at
	// its cumulative length must not divide by zero.
	c := CurveFromPoints([]Point{{0, 0}, {1, 0}, {1, 0}, {2, 0}})
	got, err := c.At(1)
	if err != nil {
		t.Fatalf("At(1) error: %v", err)
	}
	if !pointsEqual(got, Point{1, 0}, curveEpsilon) {
		t.Errorf("At(1) = %v, want (1,0)", got)
	}
}

func TestCurveWithPoint(t *testing.T) {
	c1 := CurveFromPoints([]Point{{0, 0}, {3, 0}})
	c2 := c1.WithPoint(Point{3, 4})

	if c1.Len() != 2 {
		t.Errorf("original curve mutated: Len() = %d, want 2", c1.Len())
	}
	if got := c1.TotalLength(); math.Abs(got-3) > curveEpsilon {
		t.Errorf("original curve mutated: TotalLength() = %v, want 3", got)
	}
	if c2.Len() != 3 {
		t.Errorf("new curve Len() = %d, want 3", c2.Len())
	}
	if got := c2.TotalLength(); math.Abs(got-7) > curveEpsilon {
		t.Errorf("new curve TotalLength() = %v, want 7", got)
	}
}

func TestCurveWithReplacedPoint(t *testing.T) {
	c1 := CurveFromPoints([]Point{{0, 0}, {3, 0}, {3, 4}})

	c2, err := c1.WithReplacedPoint(1, Point{0, 3})
	if err != nil {
		t.Fatalf("WithReplacedPoint error: %v", err)
	}
	if got := c2.TotalLength(); math.Abs(got-(3+5)) > curveEpsilon {
		t.Errorf("replaced curve TotalLength() = %v, want 8", got)
	}
	// Original unchanged.
	if got := c1.TotalLength(); math.Abs(got-7) > curveEpsilon {
		t.Errorf("original curve mutated: TotalLength() = %v, want 7", got)
	}

	_, err = c1.WithReplacedPoint(3, Point{})
	if !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("WithReplacedPoint(3) error = %v, want ErrIndexOutOfRange", err)
	}
	_, err = c1.WithReplacedPoint(-1, Point{})
	if !errors.Is(err, ErrIndexOutOfRange) {
		t.Errorf("WithReplacedPoint(-1) error = %v, want ErrIndexOutOfRange", err)
	}
}

func TestCurveFromPointsCopies(t *testing.T) {
	pts := []Point{{0, 0}, {1, 0}}
	c := CurveFromPoints(pts)
	pts[1] = Point{100, 100}
	got, err := c.Point(1)
	if err != nil {
		t.Fatalf("Point(1) error: %v", err)
	}
	if !pointsEqual(got, Point{1, 0}, curveEpsilon) {
		t.Errorf("curve shares caller slice: Point(1) = %v, want (1,0)", got)
	}
}

func TestCurveSegments(t *testing.T) {
	c := CurveFromPoints([]Point{{0, 0}, {3, 0}, {3, 4}})
	segs := c.Segments()
	if len(segs) != 2 {
		t.Fatalf("Segments() len = %d, want 2", len(segs))
	}
	want := []LineSegment{
		{P0: Point{0, 0}, P1: Point{3, 0}},
		{P0: Point{3, 0}, P1: Point{3, 4}},
	}
	for i, s := range segs {
		if s != want[i] {
			t.Errorf("Segments()[%d] = %v, want %v", i, s, want[i])
		}
	}
}
