package curveplot

import "errors"

// Errors returned by curveplot and its render subpackage.
// Test with errors.Is; returned errors may carry additional context.
var (
	// ErrIndexOutOfRange is returned when a point index does not refer to
	// an existing point of the curve.
	ErrIndexOutOfRange = errors.New("curveplot: point index out of range")

	// ErrDegenerateCurve is returned when sampling is attempted on a
	// curve with fewer than two points. Such a curve has no meaningful
	// arc-length parametrization; callers are expected to check Len
	// before sampling rather than rely on this error.
	ErrDegenerateCurve = errors.New("curveplot: curve has fewer than two points")

	// ErrInvalidState is returned for operations on a disposed plotter.
	ErrInvalidState = errors.New("curveplot: plotter is disposed")

	// ErrContextLost is returned when the GPU device fails during a draw.
	// The plotter does not attempt recovery; the caller decides whether
	// to reinitialize.
	ErrContextLost = errors.New("curveplot: GPU context lost")

	// ErrInvalidColorMap is returned when a color map is constructed
	// from fewer than two stops or from stops whose thresholds are not
	// non-decreasing within [0, 1].
	ErrInvalidColorMap = errors.New("curveplot: invalid color map stops")
)
