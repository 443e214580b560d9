// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"math"
	"testing"

	"github.com/gogpu/curveplot"
)

func TestNDCTransformFullCanvas(t *testing.T) {
	opts := curveplot.DrawOptions{
		XBounds: [2]float64{0, 10}, YBounds: [2]float64{0, 20},
		DrawWidth: 400, DrawHeight: 300,
		CanvasWidth: 400, CanvasHeight: 300,
	}
	sx, sy, ox, oy := ndcTransform(opts)

	// Bounds corners map onto the full NDC square, with t growing upward.
	checks := []struct {
		name  string
		s, t  float64
		wantX float64
		wantY float64
	}{
		{"bottom left", 0, 0, -1, -1},
		{"top right", 10, 20, 1, 1},
		{"center", 5, 10, 0, 0},
	}
	for _, c := range checks {
		gotX := c.s*sx + ox
		gotY := c.t*sy + oy
		if math.Abs(gotX-c.wantX) > 1e-12 || math.Abs(gotY-c.wantY) > 1e-12 {
			t.Errorf("%s: (%v, %v) -> (%v, %v), want (%v, %v)",
				c.name, c.s, c.t, gotX, gotY, c.wantX, c.wantY)
		}
	}
}

func TestNDCTransformPartialDraw(t *testing.T) {
	// Draw region covers the left half and top half of the canvas,
	// anchored top-left.
	opts := curveplot.DrawOptions{
		XBounds: [2]float64{0, 10}, YBounds: [2]float64{0, 10},
		DrawWidth: 200, DrawHeight: 150,
		CanvasWidth: 400, CanvasHeight: 300,
	}
	sx, sy, ox, oy := ndcTransform(opts)

	// XBounds[0] at the left edge, XBounds[1] at canvas center.
	if gotX := 0*sx + ox; math.Abs(gotX-(-1)) > 1e-12 {
		t.Errorf("left edge x = %v, want -1", gotX)
	}
	if gotX := 10*sx + ox; math.Abs(gotX-0) > 1e-12 {
		t.Errorf("right edge x = %v, want 0", gotX)
	}
	// YBounds[1] at the top edge, YBounds[0] at canvas middle.
	if gotY := 10*sy + oy; math.Abs(gotY-1) > 1e-12 {
		t.Errorf("top edge y = %v, want 1", gotY)
	}
	if gotY := 0*sy + oy; math.Abs(gotY-0) > 1e-12 {
		t.Errorf("bottom edge y = %v, want 0", gotY)
	}
}

func TestNDCTransformEmptyBounds(t *testing.T) {
	opts := curveplot.DrawOptions{
		XBounds: [2]float64{5, 5}, YBounds: [2]float64{0, 10},
		DrawWidth: 100, DrawHeight: 100,
		CanvasWidth: 100, CanvasHeight: 100,
	}
	sx, sy, _, _ := ndcTransform(opts)
	if sx != 0 || sy != 0 {
		t.Errorf("zero-span bounds: scale = (%v, %v), want (0, 0)", sx, sy)
	}
}

func TestProbeCrosshair(t *testing.T) {
	pts := probeCrosshair(3, 4, [2]float64{0, 10}, [2]float64{0, 10})
	if len(pts) != 4 {
		t.Fatalf("probeCrosshair returned %d points, want 4", len(pts))
	}
	// Vertical line at s=3, horizontal at t=4.
	if pts[0].X != 3 || pts[1].X != 3 {
		t.Errorf("vertical line at x = %v, %v, want 3", pts[0].X, pts[1].X)
	}
	if pts[2].Y != 4 || pts[3].Y != 4 {
		t.Errorf("horizontal line at y = %v, %v, want 4", pts[2].Y, pts[3].Y)
	}

	// Probe outside the visible bounds draws nothing.
	if pts := probeCrosshair(20, 4, [2]float64{0, 10}, [2]float64{0, 10}); pts != nil {
		t.Errorf("out-of-bounds probe = %v, want nil", pts)
	}
}
