package curveplot

import (
	"math"
	"sort"
)

// DefaultSampleResolution is the default spacing, in parameter units,
// between mesh samples along each axis. Sample counts are bounded by
// this resolution and the viewport extent, not by curve complexity.
const DefaultSampleResolution = 64.0

// SubdivideLengths subdivides a cumulative length sequence so that no
// two consecutive samples are further apart than res, then clips the
// result to the bounds range while keeping one sample at or beyond each
// end so the mesh fully covers the viewport. Duplicate lengths
// (zero-length segments) collapse, so the output is strictly
// increasing. Curve vertices inside the range are always retained,
// which keeps mesh lines aligned with the distance field's derivative
// discontinuities.
func SubdivideLengths(lengths []float64, res float64, bounds [2]float64) []float64 {
	if len(lengths) == 0 {
		return nil
	}
	if res <= 0 {
		res = DefaultSampleResolution
	}

	out := make([]float64, 1, len(lengths))
	out[0] = lengths[0]
	for i := 1; i < len(lengths); i++ {
		l1, l2 := lengths[i-1], lengths[i]
		n := int(math.Ceil((l2 - l1) / res))
		for k := 1; k <= n; k++ {
			t := float64(k) / float64(n)
			out = append(out, l1*(1-t)+l2*t)
		}
	}

	lo := sort.Search(len(out), func(i int) bool { return out[i] > bounds[0] })
	if lo < 1 {
		lo = 1
	}
	lo--
	hi := sort.Search(len(out), func(i int) bool { return out[i] > bounds[1] })
	if hi > len(out)-1 {
		hi = len(out) - 1
	}
	if hi < lo {
		hi = lo
	}
	return out[lo : hi+1]
}

// MeshVertex is one sample of the distance field: a parameter pair and
// the field value there.
type MeshVertex struct {
	S, T  float64
	Value float64
}

// Lerp interpolates position and value between two vertices.
func (v MeshVertex) Lerp(o MeshVertex, t float64) MeshVertex {
	return MeshVertex{
		S:     v.S + (o.S-v.S)*t,
		T:     v.T + (o.T-v.T)*t,
		Value: v.Value + (o.Value-v.Value)*t,
	}
}

// Mesh is a regular triangle grid over a parameter-space rectangle with
// a field value at every vertex. It is rebuilt from scratch on every
// frame; there is no incremental state to go stale.
//
// Vertices are stored column-major (t varies fastest), each grid quad
// split into two triangles:
//
//	tl---tr        tr      tl---tr
//	|     |       / |      |   /
//	|     |  =  /   |  +   | /
//	bl---br   bl---br      bl
type Mesh struct {
	nx, ny   int
	vertices []MeshVertex
	indices  []uint32
}

// BuildMesh samples value over the grid xs x ys and triangulates it.
// Fewer than two samples on either axis yields an empty mesh.
func BuildMesh(xs, ys []float64, value func(s, t float64) float64) *Mesh {
	m := &Mesh{nx: len(xs), ny: len(ys)}
	if m.nx == 0 || m.ny == 0 {
		return m
	}

	m.vertices = make([]MeshVertex, 0, m.nx*m.ny)
	for _, s := range xs {
		for _, t := range ys {
			m.vertices = append(m.vertices, MeshVertex{S: s, T: t, Value: value(s, t)})
		}
	}

	if m.nx < 2 || m.ny < 2 {
		return m
	}

	ny := uint32(m.ny)
	m.indices = make([]uint32, 0, 6*(m.nx-1)*(m.ny-1))
	for x := 0; x < m.nx-1; x++ {
		for y := 0; y < m.ny-1; y++ {
			bl := uint32(y) + uint32(x)*ny
			tl := bl + 1
			br := bl + ny
			tr := br + 1
			m.indices = append(m.indices, bl, tr, br, tr, bl, tl)
		}
	}
	return m
}

// Dims returns the grid dimensions (samples per axis).
func (m *Mesh) Dims() (nx, ny int) {
	return m.nx, m.ny
}

// Vertices returns the vertex slice, t varying fastest.
// The slice is owned by the mesh; treat it as read-only.
func (m *Mesh) Vertices() []MeshVertex {
	return m.vertices
}

// Indices returns the triangle index list, three entries per triangle.
// The slice is owned by the mesh; treat it as read-only.
func (m *Mesh) Indices() []uint32 {
	return m.indices
}

// NumTriangles returns the triangle count.
func (m *Mesh) NumTriangles() int {
	return len(m.indices) / 3
}

// Triangle returns the three vertices of triangle i.
func (m *Mesh) Triangle(i int) [3]MeshVertex {
	return [3]MeshVertex{
		m.vertices[m.indices[i*3]],
		m.vertices[m.indices[i*3+1]],
		m.vertices[m.indices[i*3+2]],
	}
}

// WireframeVertices expands the triangles into a line-list vertex
// sequence (two vertices per edge) for the mesh overlay.
func (m *Mesh) WireframeVertices() []MeshVertex {
	out := make([]MeshVertex, 0, 6*m.NumTriangles())
	for i := 0; i < m.NumTriangles(); i++ {
		tri := m.Triangle(i)
		out = append(out, tri[0], tri[1], tri[1], tri[2], tri[2], tri[0])
	}
	return out
}

// ValueRange returns the minimum and maximum field value over the mesh.
// An empty mesh returns (0, 0).
func (m *Mesh) ValueRange() (min, max float64) {
	if len(m.vertices) == 0 {
		return 0, 0
	}
	min, max = m.vertices[0].Value, m.vertices[0].Value
	for _, v := range m.vertices[1:] {
		if v.Value < min {
			min = v.Value
		}
		if v.Value > max {
			max = v.Value
		}
	}
	return min, max
}
