// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package render draws curveplot distance fields on the GPU.
//
// The entry point is [Plotter]. It owns all GPU resources (pipelines,
// buffers, textures) for its lifetime and renders into a caller-supplied
// texture view: the plotter receives a device and queue from the host,
// it never creates its own.
//
//	plotter, err := render.NewPlotter(device, queue, surfaceView)
//	if err != nil { ... }
//	defer plotter.Dispose()
//
//	plotter.UpdateCurves(c1, c2)
//	err = plotter.Draw(viewport.DrawOptions(true))
//
// Each Draw call is a complete, synchronous unit of work: it encodes a
// single render pass (color surface, optional mesh wireframe, isolines,
// probe), submits it, and waits for completion. Rapid successive calls
// simply supersede the previous frame.
package render
