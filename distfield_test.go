package curveplot

import (
	"errors"
	"math"
	"testing"
)

func mustField(t *testing.T, c1, c2 Curve) *DistanceField {
	t.Helper()
	f, err := NewDistanceField(c1, c2)
	if err != nil {
		t.Fatalf("NewDistanceField error: %v", err)
	}
	return f
}

func TestNewDistanceFieldDegenerate(t *testing.T) {
	ok := CurveFromPoints([]Point{{0, 0}, {1, 0}})
	short := CurveFromPoints([]Point{{0, 0}})

	for _, pair := range [][2]Curve{{short, ok}, {ok, short}, {short, short}} {
		if _, err := NewDistanceField(pair[0], pair[1]); !errors.Is(err, ErrDegenerateCurve) {
			t.Errorf("NewDistanceField error = %v, want ErrDegenerateCurve", err)
		}
	}
}

func TestDistanceFieldEvaluate(t *testing.T) {
	c1 := CurveFromPoints([]Point{{0, 0}, {10, 0}})
	c2 := CurveFromPoints([]Point{{0, 5}, {10, 5}})
	f := mustField(t, c1, c2)

	tests := []struct {
		name string
		s, t float64
		want float64
	}{
		{"parallel midpoints", 5, 5, 5},
		{"origin pair", 0, 0, 5},
		{"opposite ends", 0, 10, math.Sqrt(100 + 25)},
		{"clamped parameters", -100, 100, math.Sqrt(100 + 25)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := f.Evaluate(tt.s, tt.t)
			if math.Abs(got-tt.want) > 1e-9 {
				t.Errorf("Evaluate(%v, %v) = %v, want %v", tt.s, tt.t, got, tt.want)
			}
		})
	}
}

func TestDistanceFieldMinMax(t *testing.T) {
	tests := []struct {
		name    string
		c1, c2  []Point
		wantMin float64
		wantMax float64
	}{
		{
			name:    "parallel lines",
			c1:      []Point{{0, 0}, {10, 0}},
			c2:      []Point{{0, 5}, {10, 5}},
			wantMin: 5,
			wantMax: math.Sqrt(100 + 25),
		},
		{
			name:    "crossing lines",
			c1:      []Point{{-1, 0}, {1, 0}},
			c2:      []Point{{0, -1}, {0, 1}},
			wantMin: 0,
			wantMax: math.Sqrt2,
		},
		{
			// Min is at a segment interior, not at any vertex pair.
			name:    "interior closest approach",
			c1:      []Point{{0, 0}, {10, 0}},
			c2:      []Point{{5, 3}, {5, 10}},
			wantMin: 3,
			wantMax: math.Sqrt(25 + 100),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := mustField(t, CurveFromPoints(tt.c1), CurveFromPoints(tt.c2))
			if got := f.MinDist(); math.Abs(got-tt.wantMin) > 1e-9 {
				t.Errorf("MinDist() = %v, want %v", got, tt.wantMin)
			}
			if got := f.MaxDist(); math.Abs(got-tt.wantMax) > 1e-9 {
				t.Errorf("MaxDist() = %v, want %v", got, tt.wantMax)
			}
		})
	}
}

func TestDistanceFieldEvaluateWithinRange(t *testing.T) {
	c1 := CurveFromPoints([]Point{{0, 0}, {3, 0}, {3, 4}})
	c2 := CurveFromPoints([]Point{{1, 1}, {2, 5}, {-1, 2}})
	f := mustField(t, c1, c2)
	min, max := f.MinDist(), f.MaxDist()

	for s := 0.0; s <= c1.TotalLength(); s += 0.25 {
		for u := 0.0; u <= c2.TotalLength(); u += 0.25 {
			d := f.Evaluate(s, u)
			if d < min-1e-9 || d > max+1e-9 {
				t.Fatalf("Evaluate(%v, %v) = %v outside [%v, %v]", s, u, d, min, max)
			}
		}
	}
}
