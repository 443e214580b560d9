package curveplot

import "math"

// DrawOptions is the per-frame draw request handed to the plotter.
// All pixel extents are device pixels. A zero DrawWidth or DrawHeight
// makes the draw a no-op rather than an error.
type DrawOptions struct {
	// ShowMesh toggles the wireframe overlay of the sample grid.
	ShowMesh bool

	// XBounds and YBounds are the clamped parameter ranges covered by
	// the draw region, as produced by MapViewport.
	XBounds [2]float64
	YBounds [2]float64

	// DrawWidth and DrawHeight are the extent of the region actually
	// rasterized, anchored at the canvas top-left.
	DrawWidth  int
	DrawHeight int

	// CanvasWidth and CanvasHeight are the backing-store size.
	CanvasWidth  int
	CanvasHeight int

	// DevicePixelRatio is carried for the caller's rounding decisions;
	// the plotter itself only consumes device-pixel extents.
	DevicePixelRatio float64
}

// ViewportRequest describes a requested pane view in parameter space,
// before clamping to the valid domain.
type ViewportRequest struct {
	// XRange and YRange are the parameter ranges the pan/zoom transform
	// asks for. They may extend beyond the curves' length ranges.
	XRange [2]float64
	YRange [2]float64

	// LengthX and LengthY are the total lengths of the two curves,
	// bounding the valid domain [0, LengthX] x [0, LengthY].
	LengthX float64
	LengthY float64

	// Width and Height are the pane size in CSS pixels.
	Width  float64
	Height float64

	// DevicePixelRatio scales CSS pixels to device pixels. Values
	// below 1 are treated as 1.
	DevicePixelRatio float64
}

// Rect is an axis-aligned rectangle in CSS pixels with Y growing
// downward. Coordinates produced by MapViewport are snapped to the
// device-pixel grid.
type Rect struct {
	X, Y, W, H float64
}

// Empty reports whether the rectangle has no area.
func (r Rect) Empty() bool {
	return r.W <= 0 || r.H <= 0
}

// Viewport is the result of clamping a ViewportRequest to the valid
// parameter domain. Draw is the sub-rectangle of the pane covered by
// valid data; Canvas covers the whole (unclamped) pane so overlay axes
// stay aligned during pan. Draw is always contained in Canvas.
type Viewport struct {
	XBounds [2]float64
	YBounds [2]float64

	Draw   Rect
	Canvas Rect

	DevicePixelRatio float64
}

// MapViewport clamps the requested ranges to the valid domain and
// derives the device-pixel-snapped draw and canvas rectangles.
//
// Rectangle coordinates are snapped as round(x*dpr)/dpr so that the
// canvas backing store and its CSS-space placement agree exactly; this
// avoids one-pixel seams against vector overlays. Parameter t grows
// upward in the pane: YRange[1] maps to the pane top.
func MapViewport(req ViewportRequest) Viewport {
	dpr := req.DevicePixelRatio
	if dpr < 1 {
		dpr = 1
	}

	v := Viewport{
		XBounds:          clampRange(req.XRange, req.LengthX),
		YBounds:          clampRange(req.YRange, req.LengthY),
		Canvas:           snapRect(Rect{0, 0, req.Width, req.Height}, dpr),
		DevicePixelRatio: dpr,
	}

	xSpan := req.XRange[1] - req.XRange[0]
	ySpan := req.YRange[1] - req.YRange[0]
	if xSpan <= 0 || ySpan <= 0 {
		return v
	}

	x0 := (v.XBounds[0] - req.XRange[0]) / xSpan * req.Width
	x1 := (v.XBounds[1] - req.XRange[0]) / xSpan * req.Width
	yTop := (req.YRange[1] - v.YBounds[1]) / ySpan * req.Height
	yBot := (req.YRange[1] - v.YBounds[0]) / ySpan * req.Height

	draw := snapRect(Rect{X: x0, Y: yTop, W: x1 - x0, H: yBot - yTop}, dpr)
	if draw.Empty() {
		draw.W = 0
		draw.H = 0
	}
	v.Draw = draw
	return v
}

// DrawOptions converts the viewport into the plotter's draw request.
func (v Viewport) DrawOptions(showMesh bool) DrawOptions {
	return DrawOptions{
		ShowMesh:         showMesh,
		XBounds:          v.XBounds,
		YBounds:          v.YBounds,
		DrawWidth:        devicePixels(v.Draw.W, v.DevicePixelRatio),
		DrawHeight:       devicePixels(v.Draw.H, v.DevicePixelRatio),
		CanvasWidth:      devicePixels(v.Canvas.W, v.DevicePixelRatio),
		CanvasHeight:     devicePixels(v.Canvas.H, v.DevicePixelRatio),
		DevicePixelRatio: v.DevicePixelRatio,
	}
}

func clampRange(r [2]float64, length float64) [2]float64 {
	lo := math.Max(r[0], 0)
	hi := math.Min(r[1], length)
	if hi < lo {
		// Empty intersection collapses to the nearest domain edge.
		if r[1] < 0 {
			return [2]float64{0, 0}
		}
		return [2]float64{length, length}
	}
	return [2]float64{lo, hi}
}

func snap(x, dpr float64) float64 {
	return math.Round(x*dpr) / dpr
}

func snapRect(r Rect, dpr float64) Rect {
	x0 := snap(r.X, dpr)
	y0 := snap(r.Y, dpr)
	x1 := snap(r.X+r.W, dpr)
	y1 := snap(r.Y+r.H, dpr)
	return Rect{X: x0, Y: y0, W: x1 - x0, H: y1 - y0}
}

func devicePixels(cssPx, dpr float64) int {
	return int(math.Round(cssPx * dpr))
}
