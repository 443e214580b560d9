package curveplot

import (
	"fmt"
	"sort"
)

// ColorStop is a color at a normalized threshold position in a color map.
type ColorStop struct {
	Threshold float64 // position in [0, 1]
	Color     RGBA
}

// ColorMap maps a normalized scalar value in [0, 1] to a color by
// linear interpolation between the two bracketing stops. Values below
// the first or above the last threshold clamp to the nearest stop's
// color.
type ColorMap struct {
	stops []ColorStop
}

// NewColorMap builds a color map from an ordered stop list. It returns
// ErrInvalidColorMap when fewer than two stops are given, when a
// threshold lies outside [0, 1], or when thresholds decrease.
func NewColorMap(stops []ColorStop) (ColorMap, error) {
	if len(stops) < 2 {
		return ColorMap{}, fmt.Errorf("%w: need at least 2 stops, got %d", ErrInvalidColorMap, len(stops))
	}
	for i, s := range stops {
		if s.Threshold < 0 || s.Threshold > 1 {
			return ColorMap{}, fmt.Errorf("%w: threshold %g outside [0, 1]", ErrInvalidColorMap, s.Threshold)
		}
		if i > 0 && s.Threshold < stops[i-1].Threshold {
			return ColorMap{}, fmt.Errorf("%w: thresholds decrease at stop %d", ErrInvalidColorMap, i)
		}
	}
	cp := make([]ColorStop, len(stops))
	copy(cp, stops)
	return ColorMap{stops: cp}, nil
}

// DefaultColorMap returns the YlGnBu ramp (ColorBrewer 9-class), the
// map used for density shading by default.
func DefaultColorMap() ColorMap {
	hex := []uint32{
		0xffffd9, 0xedf8b1, 0xc7e9b4, 0x7fcdbb, 0x41b6c4,
		0x1d91c0, 0x225ea8, 0x253494, 0x081d58,
	}
	stops := make([]ColorStop, len(hex))
	for i, v := range hex {
		stops[i] = ColorStop{
			Threshold: float64(i) / float64(len(hex)-1),
			Color:     hexRGB(v),
		}
	}
	cm, _ := NewColorMap(stops)
	return cm
}

// Stops returns a copy of the stop list.
func (m ColorMap) Stops() []ColorStop {
	cp := make([]ColorStop, len(m.stops))
	copy(cp, m.stops)
	return cp
}

// At returns the interpolated color at t. t below the first threshold
// yields the first stop's color, above the last the last stop's.
func (m ColorMap) At(t float64) RGBA {
	if len(m.stops) == 0 {
		return RGBA{}
	}

	idx := sort.Search(len(m.stops), func(i int) bool {
		return m.stops[i].Threshold >= t
	})
	if idx == 0 {
		return m.stops[0].Color
	}
	if idx >= len(m.stops) {
		return m.stops[len(m.stops)-1].Color
	}

	lo, hi := m.stops[idx-1], m.stops[idx]
	span := hi.Threshold - lo.Threshold
	if span <= 0 {
		return hi.Color
	}
	return lo.Color.Lerp(hi.Color, (t-lo.Threshold)/span)
}

// Quantize returns a stepped variant of the map with n constant-color
// bands, each band sampled at its center. Used for the sharp gradient
// mode that makes isoline bands readable. n below 2 is treated as 2.
func (m ColorMap) Quantize(n int) ColorMap {
	if n < 2 {
		n = 2
	}
	stops := make([]ColorStop, 0, 2*n)
	for i := 0; i < n; i++ {
		c := m.At((float64(i) + 0.5) / float64(n))
		stops = append(stops,
			ColorStop{Threshold: float64(i) / float64(n), Color: c},
			ColorStop{Threshold: float64(i+1) / float64(n), Color: c},
		)
	}
	return ColorMap{stops: stops}
}

// Table samples the map into n RGBA8 entries, 4 bytes per entry, for
// upload as a 1-D gradient texture. n below 2 is treated as 2.
func (m ColorMap) Table(n int) []byte {
	if n < 2 {
		n = 2
	}
	data := make([]byte, n*4)
	for i := 0; i < n; i++ {
		c := m.At(float64(i) / float64(n-1))
		data[i*4+0] = uint8(clamp255(c.R * 255))
		data[i*4+1] = uint8(clamp255(c.G * 255))
		data[i*4+2] = uint8(clamp255(c.B * 255))
		data[i*4+3] = uint8(clamp255(c.A * 255))
	}
	return data
}
