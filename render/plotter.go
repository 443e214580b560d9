// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"encoding/binary"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/curveplot"
)

// gpuTimeout bounds the wait for a submitted frame.
const gpuTimeout = 5 * time.Second

// PlotterOption configures a Plotter during creation.
type PlotterOption func(*plotterOptions)

type plotterOptions struct {
	sampleResolution float64
	colorMap         curveplot.ColorMap
	isolineCount     int
	clearColor       curveplot.RGBA
	meshColor        curveplot.RGBA
	isolineColor     curveplot.RGBA
	probeColor       curveplot.RGBA
}

func defaultPlotterOptions() plotterOptions {
	return plotterOptions{
		sampleResolution: curveplot.DefaultSampleResolution,
		colorMap:         curveplot.DefaultColorMap(),
		isolineCount:     10,
		clearColor:       curveplot.RGBA{},
		meshColor:        curveplot.RGBA{R: 0, G: 0, B: 0, A: 0.25},
		isolineColor:     curveplot.RGBA{R: 0, G: 0, B: 0, A: 0.6},
		probeColor:       curveplot.RGBA{R: 1, G: 0.27, B: 0.23, A: 0.9},
	}
}

// WithSampleResolution sets the parameter-space spacing between mesh
// samples. Smaller values give a finer surface at higher vertex cost.
// Non-positive values are ignored.
func WithSampleResolution(res float64) PlotterOption {
	return func(o *plotterOptions) {
		if res > 0 {
			o.sampleResolution = res
		}
	}
}

// WithColorMap sets the color map used for surface shading.
func WithColorMap(cm curveplot.ColorMap) PlotterOption {
	return func(o *plotterOptions) {
		o.colorMap = cm
	}
}

// WithIsolineCount sets how many evenly spaced contour levels are drawn
// between the field's minimum and maximum. Zero disables isolines.
func WithIsolineCount(n int) PlotterOption {
	return func(o *plotterOptions) {
		if n >= 0 {
			o.isolineCount = n
		}
	}
}

// WithClearColor sets the color the canvas is cleared to before the
// surface is drawn. The default is transparent black, leaving the area
// outside the valid domain unfilled.
func WithClearColor(c curveplot.RGBA) PlotterOption {
	return func(o *plotterOptions) {
		o.clearColor = c
	}
}

// WithMeshColor sets the wireframe overlay color.
func WithMeshColor(c curveplot.RGBA) PlotterOption {
	return func(o *plotterOptions) {
		o.meshColor = c
	}
}

// WithIsolineColor sets the contour line color.
func WithIsolineColor(c curveplot.RGBA) PlotterOption {
	return func(o *plotterOptions) {
		o.isolineColor = c
	}
}

// WithProbeColor sets the probe crosshair color.
func WithProbeColor(c curveplot.RGBA) PlotterOption {
	return func(o *plotterOptions) {
		o.probeColor = c
	}
}

// Plotter renders the distance field of a curve pair into a
// caller-supplied texture view. It exclusively owns its GPU resources
// (pipelines, buffers, textures) for its lifetime; the device, queue,
// and target view belong to the host.
//
// A Plotter is not safe for concurrent use. All methods are expected to
// run on the host's render thread.
type Plotter struct {
	device hal.Device
	queue  hal.Queue

	// surfaceView is the host-supplied resolve target. The plotter
	// draws into its own MSAA attachment and resolves here.
	surfaceView hal.TextureView

	// MSAA color attachment, recreated when the canvas size changes.
	msaaTex       hal.Texture
	msaaView      hal.TextureView
	width, height uint32

	// Shaders, layouts, and pipelines (see pipeline.go).
	surfaceShader     hal.ShaderModule
	lineShader        hal.ShaderModule
	surfaceLayout     hal.BindGroupLayout
	lineLayout        hal.BindGroupLayout
	surfacePipeLayout hal.PipelineLayout
	linePipeLayout    hal.PipelineLayout
	surfacePipeline   hal.RenderPipeline
	linePipeline      hal.RenderPipeline

	// Gradient lookup texture (see gradient.go).
	gradientTex     hal.Texture
	gradientView    hal.TextureView
	gradientSampler hal.Sampler

	colorMap         curveplot.ColorMap
	sampleResolution float64
	isolineCount     int
	clearColor       curveplot.RGBA
	meshColor        curveplot.RGBA
	isolineColor     curveplot.RGBA
	probeColor       curveplot.RGBA

	// Current curve pair. field is nil while either curve has fewer
	// than two points; such frames clear the canvas and draw nothing.
	c1, c2   curveplot.Curve
	field    *curveplot.DistanceField
	curveGen uint64

	// Field value range, computed lazily once per curve generation.
	rangeGen         uint64
	minDist, maxDist float64

	// Mesh cache, valid while the generation, bounds, and resolution
	// that produced it are unchanged.
	mesh        *curveplot.Mesh
	meshGen     uint64
	meshXBounds [2]float64
	meshYBounds [2]float64

	// Probe parameter pair, drawn as a crosshair when set.
	probeS, probeT float64
	probeSet       bool

	disposed bool
}

// NewPlotter creates a plotter that renders into surface, a BGRA8
// texture view owned by the caller. The device and queue are shared
// host resources; the plotter never destroys them.
//
// GPU resource acquisition happens here, as a one-shot setup step: all
// pipelines and the gradient texture exist before NewPlotter returns,
// so the first Draw does no lazy initialization.
func NewPlotter(device hal.Device, queue hal.Queue, surface hal.TextureView, opts ...PlotterOption) (*Plotter, error) {
	if device == nil || queue == nil {
		return nil, fmt.Errorf("%w: nil device or queue", curveplot.ErrInvalidState)
	}

	o := defaultPlotterOptions()
	for _, opt := range opts {
		opt(&o)
	}

	p := &Plotter{
		device:           device,
		queue:            queue,
		surfaceView:      surface,
		colorMap:         o.colorMap,
		sampleResolution: o.sampleResolution,
		isolineCount:     o.isolineCount,
		clearColor:       o.clearColor,
		meshColor:        o.meshColor,
		isolineColor:     o.isolineColor,
		probeColor:       o.probeColor,
	}

	if err := p.createPipelines(); err != nil {
		p.destroyPipelines()
		return nil, err
	}
	if err := p.createGradientTexture(); err != nil {
		p.destroyGradientTexture()
		p.destroyPipelines()
		return nil, err
	}

	curveplot.Logger().Info("plotter created",
		"sample_resolution", p.sampleResolution,
		"isolines", p.isolineCount)
	return p, nil
}

// SetSurface replaces the target texture view, e.g. after the host
// recreated its swapchain. The previous view is not destroyed; it
// belongs to the host.
func (p *Plotter) SetSurface(surface hal.TextureView) {
	p.surfaceView = surface
}

// SetColorMap replaces the color map and re-uploads the gradient
// texture. Takes effect on the next Draw.
func (p *Plotter) SetColorMap(cm curveplot.ColorMap) error {
	if p.disposed {
		return fmt.Errorf("%w: plotter is disposed", curveplot.ErrInvalidState)
	}
	p.colorMap = cm
	p.uploadGradient(cm)
	return nil
}

// UpdateCurves replaces the curve pair. Curves are immutable values,
// so this only swaps references and invalidates cached frame state;
// no sampling happens until the next Draw. A pair where either curve
// has fewer than two points is accepted and renders as an empty frame.
func (p *Plotter) UpdateCurves(c1, c2 curveplot.Curve) {
	p.c1, p.c2 = c1, c2
	p.curveGen++
	p.mesh = nil
	p.field = nil
	if f, err := curveplot.NewDistanceField(c1, c2); err == nil {
		p.field = f
	}
}

// SetProbe highlights a parameter pair; Draw renders it as a crosshair
// at s and t over the surface.
func (p *Plotter) SetProbe(s, t float64) {
	p.probeS, p.probeT = s, t
	p.probeSet = true
}

// ClearProbe removes the probe highlight.
func (p *Plotter) ClearProbe() {
	p.probeSet = false
}

// Dispose releases all GPU resources. Safe to call multiple times.
// After Dispose, Draw returns ErrInvalidState.
func (p *Plotter) Dispose() {
	if p.disposed {
		return
	}
	p.disposed = true
	p.destroyTargets()
	p.destroyGradientTexture()
	p.destroyPipelines()
	p.mesh = nil
	p.field = nil
	curveplot.Logger().Info("plotter disposed")
}

// Draw renders one frame according to opts. A zero draw extent is a
// no-op. Submission failures and fence timeouts surface as
// ErrContextLost; the plotter does not attempt recovery.
func (p *Plotter) Draw(opts curveplot.DrawOptions) error {
	if p.disposed {
		return fmt.Errorf("%w: plotter is disposed", curveplot.ErrInvalidState)
	}
	if p.surfaceView == nil {
		return fmt.Errorf("%w: no surface set", curveplot.ErrInvalidState)
	}
	if opts.DrawWidth <= 0 || opts.DrawHeight <= 0 {
		return nil
	}
	if opts.CanvasWidth <= 0 || opts.CanvasHeight <= 0 {
		return nil
	}

	if err := p.ensureTargets(uint32(opts.CanvasWidth), uint32(opts.CanvasHeight)); err != nil {
		return err
	}

	frame, err := p.buildFrame(opts)
	if err != nil {
		return err
	}
	defer frame.destroy(p.device)

	return p.encodeFrame(frame)
}

// ensureTargets recreates the MSAA color attachment when the canvas
// size changes.
func (p *Plotter) ensureTargets(w, h uint32) error {
	if p.width == w && p.height == h && p.msaaTex != nil {
		return nil
	}
	p.destroyTargets()

	tex, err := p.device.CreateTexture(&hal.TextureDescriptor{
		Label: "curveplot_msaa_color",
		Size: hal.Extent3D{
			Width:              w,
			Height:             h,
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: 1,
		SampleCount:   sampleCount,
		Dimension:     gputypes.TextureDimension2D,
		Format:        gputypes.TextureFormatBGRA8Unorm,
		Usage:         gputypes.TextureUsageRenderAttachment,
	})
	if err != nil {
		return fmt.Errorf("create MSAA color texture: %w", err)
	}
	p.msaaTex = tex

	view, err := p.device.CreateTextureView(tex, &hal.TextureViewDescriptor{
		Label: "curveplot_msaa_color_view",
	})
	if err != nil {
		p.destroyTargets()
		return fmt.Errorf("create MSAA color texture view: %w", err)
	}
	p.msaaView = view

	p.width = w
	p.height = h
	curveplot.Logger().Debug("resized plot targets", "width", w, "height", h)
	return nil
}

func (p *Plotter) destroyTargets() {
	if p.msaaView != nil {
		p.device.DestroyTextureView(p.msaaView)
		p.msaaView = nil
	}
	if p.msaaTex != nil {
		p.device.DestroyTexture(p.msaaTex)
		p.msaaTex = nil
	}
	p.width = 0
	p.height = 0
}

// valueRange returns the field's global min and max distance, cached
// per curve generation. Normalizing against the global range rather
// than the visible mesh keeps colors stable while panning.
func (p *Plotter) valueRange() (min, max float64) {
	if p.rangeGen != p.curveGen {
		p.minDist = p.field.MinDist()
		p.maxDist = p.field.MaxDist()
		p.rangeGen = p.curveGen
	}
	return p.minDist, p.maxDist
}

// currentMesh returns the sample mesh for the given bounds, rebuilding
// only when the curves, bounds, or resolution changed since the cached
// build.
func (p *Plotter) currentMesh(opts curveplot.DrawOptions) *curveplot.Mesh {
	if p.mesh != nil && p.meshGen == p.curveGen &&
		p.meshXBounds == opts.XBounds && p.meshYBounds == opts.YBounds {
		return p.mesh
	}

	xs := curveplot.SubdivideLengths(p.c1.CumulativeLengths(), p.sampleResolution, opts.XBounds)
	ys := curveplot.SubdivideLengths(p.c2.CumulativeLengths(), p.sampleResolution, opts.YBounds)
	p.mesh = curveplot.BuildMesh(xs, ys, p.field.Evaluate)
	p.meshGen = p.curveGen
	p.meshXBounds = opts.XBounds
	p.meshYBounds = opts.YBounds

	nx, ny := p.mesh.Dims()
	curveplot.Logger().Debug("rebuilt plot mesh",
		"nx", nx, "ny", ny, "triangles", p.mesh.NumTriangles())
	return p.mesh
}

// frameResources holds the transient GPU buffers and bind groups for
// one frame. Destroyed after the frame's fence signals.
type frameResources struct {
	clearColor gputypes.Color

	surfaceVerts   hal.Buffer
	surfaceIndices hal.Buffer
	surfaceUniform hal.Buffer
	surfaceBind    hal.BindGroup
	indexCount     uint32

	lines []lineBatch

	buffers    []hal.Buffer
	bindGroups []hal.BindGroup
}

// lineBatch is one line-list draw: a vertex buffer plus its uniform's
// bind group.
type lineBatch struct {
	verts       hal.Buffer
	bind        hal.BindGroup
	vertexCount uint32
}

func (f *frameResources) destroy(device hal.Device) {
	for _, bg := range f.bindGroups {
		device.DestroyBindGroup(bg)
	}
	for _, buf := range f.buffers {
		device.DestroyBuffer(buf)
	}
}

// ndcTransform maps parameter space to normalized device coordinates.
// The draw region is anchored at the canvas top-left: XBounds[0] maps
// to NDC x = -1 and YBounds[1] (t grows upward) maps to NDC y = +1,
// with the region spanning DrawWidth x DrawHeight device pixels of the
// canvas. The area right of and below the region stays untouched by
// geometry, satisfying the no-extrapolation rule at the shader level.
func ndcTransform(opts curveplot.DrawOptions) (scaleX, scaleY, offsetX, offsetY float64) {
	xSpan := opts.XBounds[1] - opts.XBounds[0]
	ySpan := opts.YBounds[1] - opts.YBounds[0]
	if xSpan <= 0 || ySpan <= 0 {
		return 0, 0, 0, 0
	}

	fracW := float64(opts.DrawWidth) / float64(opts.CanvasWidth)
	fracH := float64(opts.DrawHeight) / float64(opts.CanvasHeight)

	scaleX = 2 * fracW / xSpan
	offsetX = -1 - opts.XBounds[0]*scaleX

	bottom := 1 - 2*fracH
	scaleY = 2 * fracH / ySpan
	offsetY = bottom - opts.YBounds[0]*scaleY
	return scaleX, scaleY, offsetX, offsetY
}

// buildFrame computes the mesh, packs vertex and uniform data, and
// creates the transient buffers and bind groups for one frame.
func (p *Plotter) buildFrame(opts curveplot.DrawOptions) (*frameResources, error) {
	frame := &frameResources{
		clearColor: gputypes.Color{
			R: p.clearColor.R, G: p.clearColor.G, B: p.clearColor.B, A: p.clearColor.A,
		},
	}

	if p.field == nil {
		// Degenerate curves: clear-only frame.
		return frame, nil
	}

	scaleX, scaleY, offsetX, offsetY := ndcTransform(opts)
	if scaleX == 0 || scaleY == 0 {
		return frame, nil
	}

	mesh := p.currentMesh(opts)
	if mesh.NumTriangles() == 0 {
		return frame, nil
	}
	minDist, maxDist := p.valueRange()

	ok := false
	defer func() {
		if !ok {
			frame.destroy(p.device)
		}
	}()

	// Surface geometry.
	verts := mesh.Vertices()
	vertData := make([]byte, 0, len(verts)*surfaceVertexStride)
	for _, v := range verts {
		vertData = appendFloat32(vertData, float32(v.S))
		vertData = appendFloat32(vertData, float32(v.T))
		vertData = appendFloat32(vertData, float32(v.Value))
	}
	vertBuf, err := p.uploadBuffer(frame, "curveplot_surface_verts", vertData, gputypes.BufferUsageVertex|gputypes.BufferUsageCopyDst)
	if err != nil {
		return nil, err
	}

	indices := mesh.Indices()
	idxData := make([]byte, 0, len(indices)*4)
	for _, idx := range indices {
		idxData = binary.LittleEndian.AppendUint32(idxData, idx)
	}
	idxBuf, err := p.uploadBuffer(frame, "curveplot_surface_indices", idxData, gputypes.BufferUsageIndex|gputypes.BufferUsageCopyDst)
	if err != nil {
		return nil, err
	}

	// Surface uniform: transform + value normalization.
	span := maxDist - minDist
	if span < 1e-9 {
		span = 1e-9
	}
	uniData := make([]byte, 0, surfaceUniformSize)
	uniData = appendFloat32(uniData, float32(scaleX))
	uniData = appendFloat32(uniData, float32(scaleY))
	uniData = appendFloat32(uniData, float32(offsetX))
	uniData = appendFloat32(uniData, float32(offsetY))
	uniData = appendFloat32(uniData, float32(minDist))
	uniData = appendFloat32(uniData, float32(1/span))
	uniData = appendFloat32(uniData, 0)
	uniData = appendFloat32(uniData, 0)
	uniBuf, err := p.uploadBuffer(frame, "curveplot_surface_uniform", uniData, gputypes.BufferUsageUniform|gputypes.BufferUsageCopyDst)
	if err != nil {
		return nil, err
	}

	surfaceBind, err := p.device.CreateBindGroup(&hal.BindGroupDescriptor{
		Label:  "curveplot_surface_bind",
		Layout: p.surfaceLayout,
		Entries: []gputypes.BindGroupEntry{
			{Binding: 0, Resource: gputypes.BufferBinding{
				Buffer: uniBuf.NativeHandle(), Offset: 0, Size: surfaceUniformSize,
			}},
			{Binding: 1, Resource: gputypes.TextureViewBinding{TextureView: p.gradientView.NativeHandle()}},
			{Binding: 2, Resource: gputypes.SamplerBinding{Sampler: p.gradientSampler.NativeHandle()}},
		},
	})
	if err != nil {
		return nil, fmt.Errorf("create surface bind group: %w", err)
	}
	frame.bindGroups = append(frame.bindGroups, surfaceBind)

	frame.surfaceVerts = vertBuf
	frame.surfaceIndices = idxBuf
	frame.surfaceUniform = uniBuf
	frame.surfaceBind = surfaceBind
	frame.indexCount = uint32(len(indices))

	// Overlay line batches: isolines, wireframe, probe. Each is a line
	// list in parameter space sharing the line pipeline.
	if p.isolineCount > 0 {
		var pts []curveplot.Point
		for _, th := range curveplot.IsolineThresholds(minDist, maxDist, p.isolineCount) {
			for _, seg := range mesh.Isolines(th) {
				pts = append(pts,
					curveplot.Point{X: seg.A.S, Y: seg.A.T},
					curveplot.Point{X: seg.B.S, Y: seg.B.T})
			}
		}
		if err := p.addLineBatch(frame, "curveplot_isolines", pts, p.isolineColor, scaleX, scaleY, offsetX, offsetY); err != nil {
			return nil, err
		}
	}

	if opts.ShowMesh {
		wf := mesh.WireframeVertices()
		pts := make([]curveplot.Point, len(wf))
		for i, v := range wf {
			pts[i] = curveplot.Point{X: v.S, Y: v.T}
		}
		if err := p.addLineBatch(frame, "curveplot_wireframe", pts, p.meshColor, scaleX, scaleY, offsetX, offsetY); err != nil {
			return nil, err
		}
	}

	if p.probeSet {
		pts := probeCrosshair(p.probeS, p.probeT, opts.XBounds, opts.YBounds)
		if err := p.addLineBatch(frame, "curveplot_probe", pts, p.probeColor, scaleX, scaleY, offsetX, offsetY); err != nil {
			return nil, err
		}
	}

	ok = true
	return frame, nil
}

// probeCrosshair returns the line-list vertices of the probe marker: a
// vertical line at s and a horizontal line at t, spanning the visible
// bounds of the parameter plane.
func probeCrosshair(s, t float64, xb, yb [2]float64) []curveplot.Point {
	if s < xb[0] || s > xb[1] || t < yb[0] || t > yb[1] {
		return nil
	}
	return []curveplot.Point{
		{X: s, Y: yb[0]}, {X: s, Y: yb[1]},
		{X: xb[0], Y: t}, {X: xb[1], Y: t},
	}
}

// addLineBatch uploads one line list plus its colored uniform and
// records the batch on the frame. Empty point lists are skipped.
func (p *Plotter) addLineBatch(frame *frameResources, label string, pts []curveplot.Point, color curveplot.RGBA, scaleX, scaleY, offsetX, offsetY float64) error {
	if len(pts) < 2 {
		return nil
	}

	vertData := make([]byte, 0, len(pts)*lineVertexStride)
	for _, pt := range pts {
		vertData = appendFloat32(vertData, float32(pt.X))
		vertData = appendFloat32(vertData, float32(pt.Y))
	}
	vertBuf, err := p.uploadBuffer(frame, label+"_verts", vertData, gputypes.BufferUsageVertex|gputypes.BufferUsageCopyDst)
	if err != nil {
		return err
	}

	// Premultiplied color for the blend state.
	uniData := make([]byte, 0, lineUniformSize)
	uniData = appendFloat32(uniData, float32(scaleX))
	uniData = appendFloat32(uniData, float32(scaleY))
	uniData = appendFloat32(uniData, float32(offsetX))
	uniData = appendFloat32(uniData, float32(offsetY))
	uniData = appendFloat32(uniData, float32(color.R*color.A))
	uniData = appendFloat32(uniData, float32(color.G*color.A))
	uniData = appendFloat32(uniData, float32(color.B*color.A))
	uniData = appendFloat32(uniData, float32(color.A))
	uniBuf, err := p.uploadBuffer(frame, label+"_uniform", uniData, gputypes.BufferUsageUniform|gputypes.BufferUsageCopyDst)
	if err != nil {
		return err
	}

	bind, err := p.device.CreateBindGroup(&hal.BindGroupDescriptor{
		Label:  label + "_bind",
		Layout: p.lineLayout,
		Entries: []gputypes.BindGroupEntry{
			{Binding: 0, Resource: gputypes.BufferBinding{
				Buffer: uniBuf.NativeHandle(), Offset: 0, Size: lineUniformSize,
			}},
		},
	})
	if err != nil {
		return fmt.Errorf("create %s bind group: %w", label, err)
	}
	frame.bindGroups = append(frame.bindGroups, bind)

	frame.lines = append(frame.lines, lineBatch{
		verts:       vertBuf,
		bind:        bind,
		vertexCount: uint32(len(pts)),
	})
	return nil
}

// uploadBuffer creates a GPU buffer, uploads data, and registers it on
// the frame for cleanup.
func (p *Plotter) uploadBuffer(frame *frameResources, label string, data []byte, usage gputypes.BufferUsage) (hal.Buffer, error) {
	buf, err := p.device.CreateBuffer(&hal.BufferDescriptor{
		Label: label,
		Size:  uint64(len(data)),
		Usage: usage,
	})
	if err != nil {
		return nil, fmt.Errorf("create %s: %w", label, err)
	}
	frame.buffers = append(frame.buffers, buf)
	p.queue.WriteBuffer(buf, 0, data)
	return buf, nil
}

// encodeFrame records the render pass, submits it, and waits for the
// fence. The pass clears the MSAA attachment, draws the surface, then
// the overlay line batches, and resolves into the host surface view.
func (p *Plotter) encodeFrame(frame *frameResources) error {
	encoder, err := p.device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{
		Label: "curveplot_frame_encoder",
	})
	if err != nil {
		return fmt.Errorf("create command encoder: %w", err)
	}
	if err := encoder.BeginEncoding("curveplot_frame"); err != nil {
		return fmt.Errorf("begin encoding: %w", err)
	}

	rp := encoder.BeginRenderPass(&hal.RenderPassDescriptor{
		Label: "curveplot_pass",
		ColorAttachments: []hal.RenderPassColorAttachment{
			{
				View:          p.msaaView,
				ResolveTarget: p.surfaceView,
				LoadOp:        gputypes.LoadOpClear,
				StoreOp:       gputypes.StoreOpStore,
				ClearValue:    frame.clearColor,
			},
		},
	})

	if frame.indexCount > 0 {
		rp.SetPipeline(p.surfacePipeline)
		rp.SetBindGroup(0, frame.surfaceBind, nil)
		rp.SetVertexBuffer(0, frame.surfaceVerts, 0)
		rp.SetIndexBuffer(frame.surfaceIndices, gputypes.IndexFormatUint32, 0)
		rp.DrawIndexed(frame.indexCount, 1, 0, 0, 0)
	}
	for _, batch := range frame.lines {
		rp.SetPipeline(p.linePipeline)
		rp.SetBindGroup(0, batch.bind, nil)
		rp.SetVertexBuffer(0, batch.verts, 0)
		rp.Draw(batch.vertexCount, 1, 0, 0)
	}
	rp.End()

	cmdBuf, err := encoder.EndEncoding()
	if err != nil {
		return fmt.Errorf("end encoding: %w", err)
	}
	defer p.device.FreeCommandBuffer(cmdBuf)

	fence, err := p.device.CreateFence()
	if err != nil {
		return fmt.Errorf("%w: create fence: %v", curveplot.ErrContextLost, err)
	}
	defer p.device.DestroyFence(fence)

	if err := p.queue.Submit([]hal.CommandBuffer{cmdBuf}, fence, 1); err != nil {
		return fmt.Errorf("%w: submit: %v", curveplot.ErrContextLost, err)
	}
	fenceOK, err := p.device.Wait(fence, 1, gpuTimeout)
	if err != nil || !fenceOK {
		if err == nil {
			err = errors.New("fence timeout")
		}
		return fmt.Errorf("%w: wait for frame: %v", curveplot.ErrContextLost, err)
	}
	return nil
}

func appendFloat32(b []byte, v float32) []byte {
	return binary.LittleEndian.AppendUint32(b, math.Float32bits(v))
}
