// Package curveplot provides the data model and math for visualizing the
// pointwise distance between two polyline curves.
//
// # Overview
//
// Two curves are compared by rendering the bivariate distance function
//
//	d(s, t) = |curve1.At(s) - curve2.At(t)|
//
// as a color-mapped surface over the product of the curves' arc-length
// parameters. This package holds the pure parts: immutable curves with
// arc-length parametrization, the distance field, viewport mapping,
// mesh generation, isoline extraction, and color maps. GPU rendering
// lives in the render subpackage.
//
// # Quick Start
//
//	c1 := curveplot.CurveFromPoints([]curveplot.Point{{0, 0}, {10, 0}})
//	c2 := curveplot.CurveFromPoints([]curveplot.Point{{0, 5}, {10, 5}})
//
//	df, _ := curveplot.NewDistanceField(c1, c2)
//	d := df.Evaluate(5, 5) // 5.0
//
// # Immutability
//
// Curve is a value type. Edits return a new Curve and never mutate the
// receiver, so curves can be shared freely between the UI, the distance
// field, and the renderer without synchronization.
//
// # Coordinate System
//
// Curve points live in the caller's canvas coordinate space; no unit is
// enforced. Parameter values are cumulative arc lengths in the same
// units. Out-of-range parameters are clamped, which is documented
// behavior rather than an error.
package curveplot
