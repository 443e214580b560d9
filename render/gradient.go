// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/curveplot"
)

// gradientWidth is the sample count of the 1-D gradient texture. 256
// entries keep quantized color maps step-accurate while staying far
// below any device texture limit.
const gradientWidth = 256

// createGradientTexture allocates the gradient lookup texture (a
// gradientWidth x 1 RGBA8 strip), its view, and the clamp-to-edge
// linear sampler, then uploads the current color map.
func (p *Plotter) createGradientTexture() error {
	tex, err := p.device.CreateTexture(&hal.TextureDescriptor{
		Label: "curveplot_gradient",
		Size: hal.Extent3D{
			Width:              gradientWidth,
			Height:             1,
			DepthOrArrayLayers: 1,
		},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        gputypes.TextureFormatRGBA8Unorm,
		Usage:         gputypes.TextureUsageTextureBinding | gputypes.TextureUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("create gradient texture: %w", err)
	}
	p.gradientTex = tex

	view, err := p.device.CreateTextureView(tex, &hal.TextureViewDescriptor{
		Label:         "curveplot_gradient_view",
		Format:        gputypes.TextureFormatRGBA8Unorm,
		Dimension:     gputypes.TextureViewDimension2D,
		Aspect:        gputypes.TextureAspectAll,
		MipLevelCount: 1,
	})
	if err != nil {
		return fmt.Errorf("create gradient texture view: %w", err)
	}
	p.gradientView = view

	sampler, err := p.device.CreateSampler(&hal.SamplerDescriptor{
		Label:        "curveplot_gradient_sampler",
		AddressModeU: gputypes.AddressModeClampToEdge,
		AddressModeV: gputypes.AddressModeClampToEdge,
		AddressModeW: gputypes.AddressModeClampToEdge,
		MagFilter:    gputypes.FilterModeLinear,
		MinFilter:    gputypes.FilterModeLinear,
	})
	if err != nil {
		return fmt.Errorf("create gradient sampler: %w", err)
	}
	p.gradientSampler = sampler

	p.uploadGradient(p.colorMap)
	return nil
}

// uploadGradient samples the color map into the gradient texture.
// Called at creation and whenever the color map changes.
func (p *Plotter) uploadGradient(cm curveplot.ColorMap) {
	data := cm.Table(gradientWidth)
	p.queue.WriteTexture(
		&hal.ImageCopyTexture{
			Texture:  p.gradientTex,
			MipLevel: 0,
		},
		data,
		&hal.ImageDataLayout{
			Offset:       0,
			BytesPerRow:  gradientWidth * 4,
			RowsPerImage: 1,
		},
		&hal.Extent3D{Width: gradientWidth, Height: 1, DepthOrArrayLayers: 1},
	)
}

// destroyGradientTexture releases the gradient resources.
func (p *Plotter) destroyGradientTexture() {
	if p.gradientSampler != nil {
		p.device.DestroySampler(p.gradientSampler)
		p.gradientSampler = nil
	}
	if p.gradientView != nil {
		p.device.DestroyTextureView(p.gradientView)
		p.gradientView = nil
	}
	if p.gradientTex != nil {
		p.device.DestroyTexture(p.gradientTex)
		p.gradientTex = nil
	}
}
