// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/curveplot"
)

// DeviceHandle is the integration point with GPU frameworks that share
// their device through the gpucontext ecosystem. The host application
// implements gpucontext.DeviceProvider and hands it to the plotter; the
// plotter receives the device, it never creates one.
type DeviceHandle = gpucontext.DeviceProvider

// NewPlotterFromProvider creates a plotter from a shared device
// provider. The provider must additionally expose the underlying HAL
// handles via HalDevice() any and HalQueue() any, as gogpu's context
// does; providers without HAL access cannot drive the plotter's render
// pipelines.
func NewPlotterFromProvider(provider DeviceHandle, surface hal.TextureView, opts ...PlotterOption) (*Plotter, error) {
	if provider == nil {
		return nil, fmt.Errorf("%w: nil device provider", curveplot.ErrInvalidState)
	}

	type halProvider interface {
		HalDevice() any
		HalQueue() any
	}
	hp, ok := provider.(halProvider)
	if !ok {
		return nil, fmt.Errorf("%w: provider does not expose HAL types", curveplot.ErrInvalidState)
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return nil, fmt.Errorf("%w: provider HalDevice is not hal.Device", curveplot.ErrInvalidState)
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok || queue == nil {
		return nil, fmt.Errorf("%w: provider HalQueue is not hal.Queue", curveplot.ErrInvalidState)
	}

	return NewPlotter(device, queue, surface, opts...)
}
