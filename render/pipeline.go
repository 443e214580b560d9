// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
)

// sampleCount is the MSAA sample count for the plot surface. 4x MSAA
// keeps isolines and mesh lines smooth at reasonable cost.
const sampleCount = 4

// surfaceVertexStride is the byte stride per surface vertex:
// position (2 x float32) + field value (float32) = 12 bytes.
const surfaceVertexStride = 12

// lineVertexStride is the byte stride per line vertex:
// position (2 x float32) = 8 bytes.
const lineVertexStride = 8

// surfaceUniformSize is the surface uniform buffer size.
// Layout: scale (vec2) + offset (vec2) + value_min + inv_value_span +
// padding (vec2) = 32 bytes.
const surfaceUniformSize = 32

// lineUniformSize is the line uniform buffer size.
// Layout: scale (vec2) + offset (vec2) + color (vec4) = 32 bytes.
const lineUniformSize = 32

// createPipelines compiles both shaders and creates the surface and
// line render pipelines. The surface pipeline binds a uniform buffer,
// the gradient texture, and its sampler; the line pipeline binds a
// uniform buffer only. Both target the 4x MSAA BGRA8 color attachment
// with premultiplied alpha blending.
func (p *Plotter) createPipelines() error {
	surfaceShader, err := compileShaderModule(p.device, "curveplot_surface_shader", surfaceShaderSource)
	if err != nil {
		return err
	}
	p.surfaceShader = surfaceShader

	lineShader, err := compileShaderModule(p.device, "curveplot_line_shader", lineShaderSource)
	if err != nil {
		return err
	}
	p.lineShader = lineShader

	// Surface bind group layout:
	//   Binding 0: uniforms (vertex+fragment)
	//   Binding 1: gradient texture (fragment)
	//   Binding 2: gradient sampler (fragment)
	surfaceLayout, err := p.device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label: "curveplot_surface_layout",
		Entries: []gputypes.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: gputypes.ShaderStageVertex | gputypes.ShaderStageFragment,
				Buffer:     &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeUniform},
			},
			{
				Binding:    1,
				Visibility: gputypes.ShaderStageFragment,
				Texture: &gputypes.TextureBindingLayout{
					SampleType:    gputypes.TextureSampleTypeFloat,
					ViewDimension: gputypes.TextureViewDimension2D,
				},
			},
			{
				Binding:    2,
				Visibility: gputypes.ShaderStageFragment,
				Sampler:    &gputypes.SamplerBindingLayout{Type: gputypes.SamplerBindingTypeFiltering},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("create surface bind group layout: %w", err)
	}
	p.surfaceLayout = surfaceLayout

	lineLayout, err := p.device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label: "curveplot_line_layout",
		Entries: []gputypes.BindGroupLayoutEntry{
			{
				Binding:    0,
				Visibility: gputypes.ShaderStageVertex | gputypes.ShaderStageFragment,
				Buffer:     &gputypes.BufferBindingLayout{Type: gputypes.BufferBindingTypeUniform},
			},
		},
	})
	if err != nil {
		return fmt.Errorf("create line bind group layout: %w", err)
	}
	p.lineLayout = lineLayout

	surfacePipeLayout, err := p.device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            "curveplot_surface_pipe_layout",
		BindGroupLayouts: []hal.BindGroupLayout{p.surfaceLayout},
	})
	if err != nil {
		return fmt.Errorf("create surface pipeline layout: %w", err)
	}
	p.surfacePipeLayout = surfacePipeLayout

	linePipeLayout, err := p.device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            "curveplot_line_pipe_layout",
		BindGroupLayouts: []hal.BindGroupLayout{p.lineLayout},
	})
	if err != nil {
		return fmt.Errorf("create line pipeline layout: %w", err)
	}
	p.linePipeLayout = linePipeLayout

	multisample := gputypes.MultisampleState{
		Count: sampleCount,
		Mask:  0xFFFFFFFF,
	}
	premulBlend := gputypes.BlendStatePremultiplied()
	colorTargets := []gputypes.ColorTargetState{
		{
			Format:    gputypes.TextureFormatBGRA8Unorm,
			Blend:     &premulBlend,
			WriteMask: gputypes.ColorWriteMaskAll,
		},
	}

	surfacePipeline, err := p.device.CreateRenderPipeline(&hal.RenderPipelineDescriptor{
		Label:  "curveplot_surface_pipeline",
		Layout: p.surfacePipeLayout,
		Vertex: hal.VertexState{
			Module:     p.surfaceShader,
			EntryPoint: "vs_main",
			Buffers: []gputypes.VertexBufferLayout{
				{
					ArrayStride: surfaceVertexStride,
					StepMode:    gputypes.VertexStepModeVertex,
					Attributes: []gputypes.VertexAttribute{
						{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0}, // position
						{Format: gputypes.VertexFormatFloat32, Offset: 8, ShaderLocation: 1},   // value
					},
				},
			},
		},
		Fragment: &hal.FragmentState{
			Module:     p.surfaceShader,
			EntryPoint: "fs_main",
			Targets:    colorTargets,
		},
		Primitive: gputypes.PrimitiveState{
			Topology: gputypes.PrimitiveTopologyTriangleList,
			CullMode: gputypes.CullModeNone,
		},
		Multisample: multisample,
	})
	if err != nil {
		return fmt.Errorf("create surface pipeline: %w", err)
	}
	p.surfacePipeline = surfacePipeline

	linePipeline, err := p.device.CreateRenderPipeline(&hal.RenderPipelineDescriptor{
		Label:  "curveplot_line_pipeline",
		Layout: p.linePipeLayout,
		Vertex: hal.VertexState{
			Module:     p.lineShader,
			EntryPoint: "vs_main",
			Buffers: []gputypes.VertexBufferLayout{
				{
					ArrayStride: lineVertexStride,
					StepMode:    gputypes.VertexStepModeVertex,
					Attributes: []gputypes.VertexAttribute{
						{Format: gputypes.VertexFormatFloat32x2, Offset: 0, ShaderLocation: 0}, // position
					},
				},
			},
		},
		Fragment: &hal.FragmentState{
			Module:     p.lineShader,
			EntryPoint: "fs_main",
			Targets:    colorTargets,
		},
		Primitive: gputypes.PrimitiveState{
			Topology: gputypes.PrimitiveTopologyLineList,
			CullMode: gputypes.CullModeNone,
		},
		Multisample: multisample,
	})
	if err != nil {
		return fmt.Errorf("create line pipeline: %w", err)
	}
	p.linePipeline = linePipeline

	return nil
}

// destroyPipelines releases pipeline resources in reverse creation
// order. Safe to call on partially created pipelines.
func (p *Plotter) destroyPipelines() {
	if p.device == nil {
		return
	}
	if p.linePipeline != nil {
		p.device.DestroyRenderPipeline(p.linePipeline)
		p.linePipeline = nil
	}
	if p.surfacePipeline != nil {
		p.device.DestroyRenderPipeline(p.surfacePipeline)
		p.surfacePipeline = nil
	}
	if p.linePipeLayout != nil {
		p.device.DestroyPipelineLayout(p.linePipeLayout)
		p.linePipeLayout = nil
	}
	if p.surfacePipeLayout != nil {
		p.device.DestroyPipelineLayout(p.surfacePipeLayout)
		p.surfacePipeLayout = nil
	}
	if p.lineLayout != nil {
		p.device.DestroyBindGroupLayout(p.lineLayout)
		p.lineLayout = nil
	}
	if p.surfaceLayout != nil {
		p.device.DestroyBindGroupLayout(p.surfaceLayout)
		p.surfaceLayout = nil
	}
	if p.lineShader != nil {
		p.device.DestroyShaderModule(p.lineShader)
		p.lineShader = nil
	}
	if p.surfaceShader != nil {
		p.device.DestroyShaderModule(p.surfaceShader)
		p.surfaceShader = nil
	}
}
