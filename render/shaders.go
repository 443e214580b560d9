// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"

	"github.com/gogpu/naga"
	"github.com/gogpu/wgpu/hal"
)

// surfaceShaderSource colors the distance-field surface. Each vertex
// carries a parameter-space position and a field value; the fragment
// stage normalizes the value into [0, 1] against the frame's value
// range and looks the color up in a 1-D gradient texture.
const surfaceShaderSource = `
struct Uniforms {
    scale: vec2<f32>,
    offset: vec2<f32>,
    value_min: f32,
    inv_value_span: f32,
    _pad: vec2<f32>,
}

@group(0) @binding(0) var<uniform> u: Uniforms;
@group(0) @binding(1) var gradient_tex: texture_2d<f32>;
@group(0) @binding(2) var gradient_samp: sampler;

struct VertexOut {
    @builtin(position) pos: vec4<f32>,
    @location(0) value: f32,
}

@vertex
fn vs_main(@location(0) pos: vec2<f32>, @location(1) value: f32) -> VertexOut {
    var out: VertexOut;
    out.pos = vec4<f32>(pos * u.scale + u.offset, 0.0, 1.0);
    out.value = value;
    return out;
}

@fragment
fn fs_main(in: VertexOut) -> @location(0) vec4<f32> {
    let t = clamp((in.value - u.value_min) * u.inv_value_span, 0.0, 1.0);
    return textureSample(gradient_tex, gradient_samp, vec2<f32>(t, 0.5));
}
`

// lineShaderSource draws flat-colored line lists in parameter space.
// Shared by the mesh wireframe, isolines, and the probe crosshair; only
// the uniform color differs between draws.
const lineShaderSource = `
struct Uniforms {
    scale: vec2<f32>,
    offset: vec2<f32>,
    color: vec4<f32>,
}

@group(0) @binding(0) var<uniform> u: Uniforms;

@vertex
fn vs_main(@location(0) pos: vec2<f32>) -> @builtin(position) vec4<f32> {
    return vec4<f32>(pos * u.scale + u.offset, 0.0, 1.0);
}

@fragment
fn fs_main() -> @location(0) vec4<f32> {
    return u.color;
}
`

// compileShaderModule compiles WGSL to SPIR-V ahead of time via naga
// and creates the module from the SPIR-V words. If naga cannot compile
// the source (for example on a platform without the toolchain), the
// WGSL is handed to the driver as-is.
func compileShaderModule(device hal.Device, label, source string) (hal.ShaderModule, error) {
	src := hal.ShaderSource{WGSL: source}
	if spirvBytes, err := naga.Compile(source); err == nil && len(spirvBytes) >= 4 {
		words := make([]uint32, len(spirvBytes)/4)
		for i := range words {
			words[i] = uint32(spirvBytes[i*4]) |
				uint32(spirvBytes[i*4+1])<<8 |
				uint32(spirvBytes[i*4+2])<<16 |
				uint32(spirvBytes[i*4+3])<<24
		}
		src = hal.ShaderSource{SPIRV: words}
	}

	module, err := device.CreateShaderModule(&hal.ShaderModuleDescriptor{
		Label:  label,
		Source: src,
	})
	if err != nil {
		return nil, fmt.Errorf("compile %s: %w", label, err)
	}
	return module, nil
}
