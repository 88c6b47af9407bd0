// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package halgfx

import (
	"errors"
	"fmt"
	"sync"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"
	"github.com/gogpu/wgpu/hal/noop"

	"github.com/gogpu/gxview/gfx"
)

// Device errors.
var (
	// ErrNoAdapter is returned when the HAL instance exposes no adapter.
	ErrNoAdapter = errors.New("halgfx: no GPU adapters found")

	// ErrNotHAL is returned when a provider does not expose HAL handles.
	ErrNotHAL = errors.New("halgfx: provider does not expose HAL types")

	// ErrDeviceDestroyed is returned by every create call after Destroy.
	ErrDeviceDestroyed = errors.New("halgfx: device destroyed")
)

// zeroVertexSize covers the widest vertex format read from the zero
// buffer bound for inputs no layout feeds.
const zeroVertexSize = 64

// Device implements gfx.Device over a hal.Device and its queue.
//
// Device is safe for concurrent resource creation; passes are recorded by
// a single goroutine each.
type Device struct {
	mu sync.Mutex

	device   hal.Device
	queue    hal.Queue
	instance hal.Instance // set when Open created the instance
	owned    bool         // device is destroyed with us

	opts    options
	limits  gfx.Limits
	vendor  gfx.VendorInfo
	tracker *gfx.Tracker
	debug   gfx.DebugGroupStack

	layouts map[gfx.BindingLayoutDescriptor]hal.BindGroupLayout

	placeholderTex     hal.Texture
	placeholderView    hal.TextureView
	placeholderSampler hal.Sampler
	zeroVertex         hal.Buffer

	destroyed bool
}

var _ gfx.Device = (*Device)(nil)

// instanceFactory is satisfied by hal.Backend and the noop API.
type instanceFactory interface {
	CreateInstance(desc *hal.InstanceDescriptor) (hal.Instance, error)
}

// Open creates a HAL instance, picks an adapter (discrete or integrated
// GPUs first) and opens a device on it. Without the requested backend
// compiled in, the noop adapter is used.
func Open(opts ...Option) (*Device, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	var factory instanceFactory = &noop.API{}
	if !o.noop {
		if b, ok := hal.GetBackend(o.backend); ok {
			factory = b
		} else {
			gfx.Logger().Warn("halgfx: backend not available, using noop adapter", "backend", o.backend)
			o.noop = true
		}
	}

	instance, err := factory.CreateInstance(&hal.InstanceDescriptor{Flags: 0})
	if err != nil {
		return nil, fmt.Errorf("halgfx: create instance: %w", err)
	}
	adapters := instance.EnumerateAdapters(nil)
	if len(adapters) == 0 {
		instance.Destroy()
		return nil, ErrNoAdapter
	}

	selected := &adapters[0]
	for i := range adapters {
		if adapters[i].Info.DeviceType == gputypes.DeviceTypeDiscreteGPU ||
			adapters[i].Info.DeviceType == gputypes.DeviceTypeIntegratedGPU {
			selected = &adapters[i]
			break
		}
	}

	openDev, err := selected.Adapter.Open(gputypes.Features(0), o.limits)
	if err != nil {
		instance.Destroy()
		return nil, fmt.Errorf("halgfx: open device: %w", err)
	}

	d, err := newDevice(openDev.Device, openDev.Queue, o)
	if err != nil {
		openDev.Device.Destroy()
		instance.Destroy()
		return nil, err
	}
	d.instance = instance
	d.owned = true
	d.vendor.AdapterName = selected.Info.Name
	d.vendor.DeviceType = selected.Info.DeviceType
	gfx.Logger().Info("halgfx: device opened", "adapter", selected.Info.Name, "noop", o.noop)
	return d, nil
}

// New wraps an existing HAL device and queue. The caller keeps ownership
// of both; Destroy releases only what the Device created.
func New(device hal.Device, queue hal.Queue, opts ...Option) (*Device, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return newDevice(device, queue, o)
}

// NewFromProvider shares the GPU device of a gogpu application. The
// provider must also implement HalDevice() any and HalQueue() any
// returning hal.Device and hal.Queue.
func NewFromProvider(provider gpucontext.DeviceProvider, opts ...Option) (*Device, error) {
	type halProvider interface {
		HalDevice() any
		HalQueue() any
	}
	hp, ok := provider.(halProvider)
	if !ok {
		return nil, ErrNotHAL
	}
	device, ok := hp.HalDevice().(hal.Device)
	if !ok || device == nil {
		return nil, fmt.Errorf("%w: HalDevice is not hal.Device", ErrNotHAL)
	}
	queue, ok := hp.HalQueue().(hal.Queue)
	if !ok || queue == nil {
		return nil, fmt.Errorf("%w: HalQueue is not hal.Queue", ErrNotHAL)
	}
	d, err := New(device, queue, opts...)
	if err != nil {
		return nil, err
	}
	gfx.Logger().Info("halgfx: sharing provider device", "surfaceFormat", provider.SurfaceFormat())
	return d, nil
}

func newDevice(device hal.Device, queue hal.Queue, o options) (*Device, error) {
	d := &Device{
		device:  device,
		queue:   queue,
		opts:    o,
		limits:  gfx.LimitsFromGPU(o.limits),
		tracker: gfx.NewTracker(),
		layouts: make(map[gfx.BindingLayoutDescriptor]hal.BindGroupLayout),
		vendor: gfx.VendorInfo{
			Backend:                  "wgpu",
			ShadingLanguage:          "WGSL",
			ShadingLanguageVersion:   "1.0",
			ExplicitBindingLocations: true,
			SeparateSamplerTextures:  true,
		},
	}
	if err := d.createPlaceholders(); err != nil {
		d.destroyPlaceholders()
		return nil, err
	}
	return d, nil
}

// createPlaceholders creates the resources bound for nil sampler
// bindings and missing vertex inputs.
func (d *Device) createPlaceholders() error {
	tex, err := d.device.CreateTexture(&hal.TextureDescriptor{
		Label:         "gfx_placeholder",
		Size:          hal.Extent3D{Width: 1, Height: 1, DepthOrArrayLayers: 1},
		MipLevelCount: 1,
		SampleCount:   1,
		Dimension:     gputypes.TextureDimension2D,
		Format:        gputypes.TextureFormatRGBA8Unorm,
		Usage:         gputypes.TextureUsageTextureBinding | gputypes.TextureUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("halgfx: placeholder texture: %w", err)
	}
	d.placeholderTex = tex
	view, err := d.device.CreateTextureView(tex, &hal.TextureViewDescriptor{
		Label:         "gfx_placeholder_view",
		Format:        gputypes.TextureFormatRGBA8Unorm,
		Dimension:     gputypes.TextureViewDimension2D,
		Aspect:        gputypes.TextureAspectAll,
		MipLevelCount: 1,
	})
	if err != nil {
		return fmt.Errorf("halgfx: placeholder view: %w", err)
	}
	d.placeholderView = view
	sampler, err := d.device.CreateSampler(&hal.SamplerDescriptor{
		Label:        "gfx_placeholder_sampler",
		AddressModeU: gputypes.AddressModeClampToEdge,
		AddressModeV: gputypes.AddressModeClampToEdge,
		AddressModeW: gputypes.AddressModeClampToEdge,
		MagFilter:    gputypes.FilterModeNearest,
		MinFilter:    gputypes.FilterModeNearest,
		MipmapFilter: gputypes.FilterModeNearest,
	})
	if err != nil {
		return fmt.Errorf("halgfx: placeholder sampler: %w", err)
	}
	d.placeholderSampler = sampler
	zero, err := d.device.CreateBuffer(&hal.BufferDescriptor{
		Label: "gfx_zero_vertex",
		Size:  zeroVertexSize,
		Usage: gputypes.BufferUsageVertex | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		return fmt.Errorf("halgfx: zero vertex buffer: %w", err)
	}
	d.zeroVertex = zero
	d.queue.WriteBuffer(zero, 0, make([]byte, zeroVertexSize))
	d.queue.WriteTexture(
		&hal.ImageCopyTexture{Texture: tex, MipLevel: 0, Aspect: gputypes.TextureAspectAll},
		[]byte{0xFF, 0xFF, 0xFF, 0xFF},
		&hal.ImageDataLayout{Offset: 0, BytesPerRow: 4, RowsPerImage: 1},
		&hal.Extent3D{Width: 1, Height: 1, DepthOrArrayLayers: 1},
	)
	return nil
}

func (d *Device) destroyPlaceholders() {
	if d.zeroVertex != nil {
		d.device.DestroyBuffer(d.zeroVertex)
		d.zeroVertex = nil
	}
	if d.placeholderSampler != nil {
		d.device.DestroySampler(d.placeholderSampler)
		d.placeholderSampler = nil
	}
	if d.placeholderView != nil {
		d.device.DestroyTextureView(d.placeholderView)
		d.placeholderView = nil
	}
	if d.placeholderTex != nil {
		d.device.DestroyTexture(d.placeholderTex)
		d.placeholderTex = nil
	}
}

// HAL returns the wrapped device and queue.
func (d *Device) HAL() (hal.Device, hal.Queue) { return d.device, d.queue }

// QueryLimits returns the uniform layout limits.
func (d *Device) QueryLimits() gfx.Limits { return d.limits }

// QueryTextureFormatSupported reports whether textures of format can be
// created and uploaded.
func (d *Device) QueryTextureFormatSupported(format gputypes.TextureFormat) bool {
	return gfx.FormatByteSize(format) > 0
}

// QueryPipelineReady reports whether o can be drawn with. HAL pipelines
// are created synchronously, so any live pipeline is ready.
func (d *Device) QueryPipelineReady(o *gfx.RenderPipeline) bool {
	return o != nil && o.State() != gfx.StateDestroyed && o.ID() != 0
}

// QueryPlatformAvailable reports whether the device can still be used.
func (d *Device) QueryPlatformAvailable() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.device != nil && !d.destroyed
}

// QueryVendorInfo describes the adapter and shading language.
func (d *Device) QueryVendorInfo() gfx.VendorInfo { return d.vendor }

// SetResourceName sets the debug name of o.
func (d *Device) SetResourceName(o gfx.Handle, name string) { d.tracker.SetName(o, name) }

// SetResourceLeakCheck enables or disables leak reporting for o.
func (d *Device) SetResourceLeakCheck(o gfx.Handle, enable bool) { d.tracker.SetLeakCheck(o, enable) }

// PushDebugGroup starts attributing work to g.
func (d *Device) PushDebugGroup(g *gfx.DebugGroup) { d.debug.Push(g) }

// PopDebugGroup stops attributing work to the innermost group.
func (d *Device) PopDebugGroup() { d.debug.Pop() }

// CheckForLeaks reports live resources with leak checking enabled.
func (d *Device) CheckForLeaks() []gfx.Leak { return d.tracker.Leaks() }

// Violations returns the lifecycle violations recorded so far.
func (d *Device) Violations() []gfx.Violation { return d.tracker.Violations() }

// Destroy releases device-owned state and logs leaked resources. The HAL
// device itself is destroyed only when Open created it.
func (d *Device) Destroy() {
	d.mu.Lock()
	if d.destroyed {
		d.mu.Unlock()
		return
	}
	d.destroyed = true
	layouts := d.layouts
	d.layouts = nil
	d.mu.Unlock()

	for _, l := range d.CheckForLeaks() {
		gfx.Logger().Warn("halgfx: resource leaked", "resource", l.String())
	}
	for _, l := range layouts {
		d.device.DestroyBindGroupLayout(l)
	}
	d.destroyPlaceholders()
	if d.owned {
		d.device.Destroy()
		if d.instance != nil {
			d.instance.Destroy()
		}
	}
}

func (d *Device) checkAlive() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.destroyed {
		return ErrDeviceDestroyed
	}
	return nil
}
