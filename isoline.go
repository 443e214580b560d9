package curveplot

// IsolineSegment is one line segment of an isoline, both endpoints
// lying on the threshold level.
type IsolineSegment struct {
	A, B MeshVertex
}

// crossing interpolates the point on the edge v1..v2 where the field
// crosses the threshold. Callers guarantee the edge straddles it, so
// the denominator is nonzero.
func crossing(v1, v2 MeshVertex, threshold float64) MeshVertex {
	t := (threshold - v1.Value) / (v2.Value - v1.Value)
	return v1.Lerp(v2, t)
}

// analyzeTriangle extracts the threshold crossing from one triangle,
// if any. A linear field crosses a triangle in at most one segment,
// entering through one edge and leaving through another.
func analyzeTriangle(v0, v1, v2 MeshVertex, threshold float64) (IsolineSegment, bool) {
	a, b, c := v0.Value > threshold, v1.Value > threshold, v2.Value > threshold
	switch {
	case a == b && b == c:
		return IsolineSegment{}, false
	case a == b: // v2 on the other side
		return IsolineSegment{A: crossing(v0, v2, threshold), B: crossing(v1, v2, threshold)}, true
	case a == c: // v1 on the other side
		return IsolineSegment{A: crossing(v0, v1, threshold), B: crossing(v2, v1, threshold)}, true
	default: // v0 on the other side
		return IsolineSegment{A: crossing(v1, v0, threshold), B: crossing(v2, v0, threshold)}, true
	}
}

// Isolines walks every triangle of the mesh and collects the segments
// where the interpolated field equals threshold.
func (m *Mesh) Isolines(threshold float64) []IsolineSegment {
	var out []IsolineSegment
	for i := 0; i < m.NumTriangles(); i++ {
		tri := m.Triangle(i)
		if seg, ok := analyzeTriangle(tri[0], tri[1], tri[2], threshold); ok {
			out = append(out, seg)
		}
	}
	return out
}

// IsolineThresholds returns n levels strictly between min and max,
// evenly spaced. These are the default contour levels drawn over the
// surface; min and max themselves are excluded since their contours
// degenerate to isolated points or the domain boundary.
func IsolineThresholds(min, max float64, n int) []float64 {
	if n <= 0 || max <= min {
		return nil
	}
	out := make([]float64, n)
	for i := 0; i < n; i++ {
		w := float64(i+1) / float64(n+1)
		out[i] = min + (max-min)*w
	}
	return out
}
