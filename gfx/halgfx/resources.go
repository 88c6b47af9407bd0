// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package halgfx

import (
	"fmt"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/naga"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/gxview/gfx"
)

// Backend state stored in gfx.Resource.Impl.
type (
	bufferImpl struct {
		buf  hal.Buffer
		size uint64
	}

	textureImpl struct {
		tex  hal.Texture
		view hal.TextureView
	}

	programImpl struct {
		vertex   hal.ShaderModule
		fragment hal.ShaderModule // same as vertex for single-module programs
	}

	bindingsImpl struct {
		group hal.BindGroup
	}

	inputLayoutImpl struct {
		buffers []gputypes.VertexBufferLayout
		// slots maps a gfx buffer index to its HAL slot, -1 when unused.
		slots []int
	}

	pipelineImpl struct {
		pipeline hal.RenderPipeline
		layout   hal.PipelineLayout
		// zeroSlot is the HAL slot fed from the zero buffer, -1 when none.
		zeroSlot int
		cullAll  bool
	}
)

// CreateBuffer creates a buffer of wordCount 32-bit words.
func (d *Device) CreateBuffer(wordCount int, usage gfx.BufferUsage, hint gfx.BufferFrequencyHint) (*gfx.Buffer, error) {
	if err := d.checkAlive(); err != nil {
		return nil, err
	}
	if wordCount <= 0 {
		return nil, fmt.Errorf("%w: buffer of %d words", gfx.ErrInvalidDescriptor, wordCount)
	}
	size := uint64(wordCount) * 4
	buf, err := d.device.CreateBuffer(&hal.BufferDescriptor{
		Label: "gfx_" + usage.String(),
		Size:  size,
		Usage: bufferUsage(usage),
	})
	if err != nil {
		return nil, fmt.Errorf("halgfx: create buffer: %w", err)
	}
	o := &gfx.Buffer{WordCount: wordCount, Usage: usage, Hint: hint}
	o.Impl = &bufferImpl{buf: buf, size: size}
	d.tracker.Track(o)
	return o, nil
}

// DestroyBuffer releases o.
func (d *Device) DestroyBuffer(o *gfx.Buffer) {
	if d.tracker.Release(o) != nil {
		return
	}
	if impl, ok := o.Impl.(*bufferImpl); ok {
		d.device.DestroyBuffer(impl.buf)
	}
}

func (d *Device) createTexture(label string, desc gfx.TextureDescriptor, sampleCount int, usage gputypes.TextureUsage) (*textureImpl, error) {
	layers := max(desc.Depth, 1)
	tex, err := d.device.CreateTexture(&hal.TextureDescriptor{
		Label:         label,
		Size:          hal.Extent3D{Width: uint32(desc.Width), Height: uint32(desc.Height), DepthOrArrayLayers: uint32(layers)},
		MipLevelCount: uint32(desc.NumLevels),
		SampleCount:   uint32(sampleCount),
		Dimension:     gputypes.TextureDimension2D,
		Format:        desc.PixelFormat,
		Usage:         usage,
	})
	if err != nil {
		return nil, fmt.Errorf("halgfx: create texture %s: %w", label, err)
	}
	viewDim := gputypes.TextureViewDimension2D
	if desc.Dimension == gfx.Texture2DArray {
		viewDim = gputypes.TextureViewDimension2DArray
	}
	view, err := d.device.CreateTextureView(tex, &hal.TextureViewDescriptor{
		Label:         label + "_view",
		Format:        desc.PixelFormat,
		Dimension:     viewDim,
		Aspect:        gputypes.TextureAspectAll,
		MipLevelCount: uint32(desc.NumLevels),
	})
	if err != nil {
		d.device.DestroyTexture(tex)
		return nil, fmt.Errorf("halgfx: create texture view %s: %w", label, err)
	}
	return &textureImpl{tex: tex, view: view}, nil
}

func (d *Device) destroyTextureImpl(impl any) {
	if t, ok := impl.(*textureImpl); ok {
		d.device.DestroyTextureView(t.view)
		d.device.DestroyTexture(t.tex)
	}
}

// CreateTexture creates a sampled texture. 2D textures are also
// renderable so they can receive a resolved color attachment.
func (d *Device) CreateTexture(desc gfx.TextureDescriptor) (*gfx.Texture, error) {
	if err := d.checkAlive(); err != nil {
		return nil, err
	}
	if err := desc.Validate(); err != nil {
		return nil, err
	}
	usage := gputypes.TextureUsageTextureBinding | gputypes.TextureUsageCopyDst
	if desc.Dimension == gfx.Texture2D {
		usage |= gputypes.TextureUsageRenderAttachment | gputypes.TextureUsageCopySrc
	}
	impl, err := d.createTexture("gfx_texture", desc, 1, usage)
	if err != nil {
		return nil, err
	}
	o := &gfx.Texture{Descriptor: desc}
	o.Impl = impl
	d.tracker.Track(o)
	return o, nil
}

// DestroyTexture releases o.
func (d *Device) DestroyTexture(o *gfx.Texture) {
	if d.tracker.Release(o) != nil {
		return
	}
	d.destroyTextureImpl(o.Impl)
}

// CreateSampler creates a texture sampler.
func (d *Device) CreateSampler(desc gfx.SamplerDescriptor) (*gfx.Sampler, error) {
	if err := d.checkAlive(); err != nil {
		return nil, err
	}
	s, err := d.device.CreateSampler(&hal.SamplerDescriptor{
		Label:        "gfx_sampler",
		AddressModeU: addressMode(desc.WrapS),
		AddressModeV: addressMode(desc.WrapT),
		AddressModeW: gputypes.AddressModeClampToEdge,
		MagFilter:    filterMode(desc.MagFilter),
		MinFilter:    filterMode(desc.MinFilter),
		MipmapFilter: mipFilterMode(desc.MipFilter),
	})
	if err != nil {
		return nil, fmt.Errorf("halgfx: create sampler: %w", err)
	}
	o := &gfx.Sampler{Descriptor: desc}
	o.Impl = s
	d.tracker.Track(o)
	return o, nil
}

// DestroySampler releases o.
func (d *Device) DestroySampler(o *gfx.Sampler) {
	if d.tracker.Release(o) != nil {
		return
	}
	if s, ok := o.Impl.(hal.Sampler); ok {
		d.device.DestroySampler(s)
	}
}

// CreateColorAttachment creates an RGBA8 render target.
func (d *Device) CreateColorAttachment(width, height, numSamples int) (*gfx.ColorAttachment, error) {
	if err := d.checkAlive(); err != nil {
		return nil, err
	}
	desc := gfx.MakeTextureDescriptor2D(gputypes.TextureFormatRGBA8Unorm, width, height, 1)
	if err := desc.Validate(); err != nil {
		return nil, err
	}
	impl, err := d.createTexture("gfx_color_attachment", desc, max(numSamples, 1),
		gputypes.TextureUsageRenderAttachment|gputypes.TextureUsageCopySrc)
	if err != nil {
		return nil, err
	}
	o := &gfx.ColorAttachment{Width: width, Height: height, SampleCount: max(numSamples, 1), Format: desc.PixelFormat}
	o.Impl = impl
	d.tracker.Track(o)
	return o, nil
}

// DestroyColorAttachment releases o.
func (d *Device) DestroyColorAttachment(o *gfx.ColorAttachment) {
	if d.tracker.Release(o) != nil {
		return
	}
	d.destroyTextureImpl(o.Impl)
}

// CreateDepthStencilAttachment creates a Depth24PlusStencil8 target.
func (d *Device) CreateDepthStencilAttachment(width, height, numSamples int) (*gfx.DepthStencilAttachment, error) {
	if err := d.checkAlive(); err != nil {
		return nil, err
	}
	desc := gfx.MakeTextureDescriptor2D(gputypes.TextureFormatDepth24PlusStencil8, width, height, 1)
	if err := desc.Validate(); err != nil {
		return nil, err
	}
	impl, err := d.createTexture("gfx_depth_stencil", desc, max(numSamples, 1), gputypes.TextureUsageRenderAttachment)
	if err != nil {
		return nil, err
	}
	o := &gfx.DepthStencilAttachment{Width: width, Height: height, SampleCount: max(numSamples, 1), Format: desc.PixelFormat}
	o.Impl = impl
	d.tracker.Track(o)
	return o, nil
}

// DestroyDepthStencilAttachment releases o.
func (d *Device) DestroyDepthStencilAttachment(o *gfx.DepthStencilAttachment) {
	if d.tracker.Release(o) != nil {
		return
	}
	d.destroyTextureImpl(o.Impl)
}

// CreateProgram creates the shader modules of a program. With shader
// validation on, each stage is compiled to SPIR-V first.
func (d *Device) CreateProgram(desc gfx.ProgramDescriptor) (*gfx.Program, error) {
	if err := d.checkAlive(); err != nil {
		return nil, err
	}
	vs, err := d.createShaderModule(desc.Name+"_vs", desc.VertexSource)
	if err != nil {
		return nil, err
	}
	fs := vs
	if desc.FragmentSource != desc.VertexSource {
		fs, err = d.createShaderModule(desc.Name+"_fs", desc.FragmentSource)
		if err != nil {
			d.device.DestroyShaderModule(vs)
			return nil, err
		}
	}
	o := &gfx.Program{Descriptor: desc}
	o.Impl = &programImpl{vertex: vs, fragment: fs}
	d.tracker.Track(o)
	gfx.Logger().Debug("halgfx: program created", "name", desc.Name, "spirv", d.opts.shaderValidation)
	return o, nil
}

func (d *Device) createShaderModule(label, source string) (hal.ShaderModule, error) {
	src := hal.ShaderSource{WGSL: source}
	if d.opts.shaderValidation {
		code, err := compileSPIRV(source)
		if err != nil {
			return nil, fmt.Errorf("halgfx: program %s: %w", label, err)
		}
		src = hal.ShaderSource{SPIRV: code}
	}
	m, err := d.device.CreateShaderModule(&hal.ShaderModuleDescriptor{Label: label, Source: src})
	if err != nil {
		return nil, fmt.Errorf("halgfx: create shader module %s: %w", label, err)
	}
	return m, nil
}

// compileSPIRV compiles WGSL to SPIR-V words.
func compileSPIRV(source string) ([]uint32, error) {
	spirvBytes, err := naga.Compile(source)
	if err != nil {
		return nil, fmt.Errorf("compile shader: %w", err)
	}
	// SPIR-V is little-endian 32-bit words.
	code := make([]uint32, len(spirvBytes)/4)
	for i := range code {
		code[i] = uint32(spirvBytes[i*4]) |
			uint32(spirvBytes[i*4+1])<<8 |
			uint32(spirvBytes[i*4+2])<<16 |
			uint32(spirvBytes[i*4+3])<<24
	}
	return code, nil
}

// DestroyProgram releases o.
func (d *Device) DestroyProgram(o *gfx.Program) {
	if d.tracker.Release(o) != nil {
		return
	}
	if impl, ok := o.Impl.(*programImpl); ok {
		if impl.fragment != impl.vertex {
			d.device.DestroyShaderModule(impl.fragment)
		}
		d.device.DestroyShaderModule(impl.vertex)
	}
}

// bindGroupLayout returns the cached layout of one binding set shape.
// Uniform buffers use dynamic offsets so a per-frame allocator can bind
// one buffer at many offsets.
func (d *Device) bindGroupLayout(desc gfx.BindingLayoutDescriptor) (hal.BindGroupLayout, error) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if l, ok := d.layouts[desc]; ok {
		return l, nil
	}
	visibility := gputypes.ShaderStageVertex | gputypes.ShaderStageFragment
	entries := make([]gputypes.BindGroupLayoutEntry, 0, desc.NumUniformBuffers+2*desc.NumSamplers)
	for i := range desc.NumUniformBuffers {
		entries = append(entries, gputypes.BindGroupLayoutEntry{
			Binding:    uint32(gfx.UniformBinding(i)),
			Visibility: visibility,
			Buffer: &gputypes.BufferBindingLayout{
				Type:             gputypes.BufferBindingTypeUniform,
				HasDynamicOffset: true,
			},
		})
	}
	for i := range desc.NumSamplers {
		entries = append(entries,
			gputypes.BindGroupLayoutEntry{
				Binding:    uint32(gfx.TextureBinding(desc.NumUniformBuffers, i)),
				Visibility: gputypes.ShaderStageFragment,
				Texture: &gputypes.TextureBindingLayout{
					SampleType:    gputypes.TextureSampleTypeFloat,
					ViewDimension: gputypes.TextureViewDimension2D,
				},
			},
			gputypes.BindGroupLayoutEntry{
				Binding:    uint32(gfx.SamplerBindingSlot(desc.NumUniformBuffers, i)),
				Visibility: gputypes.ShaderStageFragment,
				Sampler:    &gputypes.SamplerBindingLayout{Type: gputypes.SamplerBindingTypeFiltering},
			})
	}
	l, err := d.device.CreateBindGroupLayout(&hal.BindGroupLayoutDescriptor{
		Label:   fmt.Sprintf("gfx_layout_u%d_s%d", desc.NumUniformBuffers, desc.NumSamplers),
		Entries: entries,
	})
	if err != nil {
		return nil, fmt.Errorf("halgfx: create bind group layout: %w", err)
	}
	d.layouts[desc] = l
	return l, nil
}

// CreateBindings creates a bind group. Nil textures and samplers bind a
// 1x1 opaque white texture and a point sampler.
func (d *Device) CreateBindings(desc gfx.BindingsDescriptor) (*gfx.Bindings, error) {
	if err := d.checkAlive(); err != nil {
		return nil, err
	}
	if err := desc.Validate(); err != nil {
		return nil, err
	}
	layout, err := d.bindGroupLayout(desc.BindingLayout)
	if err != nil {
		return nil, err
	}
	nu := desc.BindingLayout.NumUniformBuffers
	entries := make([]gputypes.BindGroupEntry, 0, nu+2*desc.BindingLayout.NumSamplers)
	for i := range nu {
		b := desc.UniformBufferBindings[i]
		if err := d.tracker.Use(b.Buffer); err != nil {
			return nil, err
		}
		impl := b.Buffer.Impl.(*bufferImpl)
		size := uint64(b.WordCount) * 4
		if size == 0 {
			size = impl.size - uint64(b.WordOffset)*4
		}
		entries = append(entries, gputypes.BindGroupEntry{
			Binding: uint32(gfx.UniformBinding(i)),
			Resource: gputypes.BufferBinding{
				Buffer: impl.buf.NativeHandle(),
				Offset: uint64(b.WordOffset) * 4,
				Size:   size,
			},
		})
	}
	for i := range desc.BindingLayout.NumSamplers {
		sb := desc.SamplerBindings[i]
		view, sampler := d.placeholderView, d.placeholderSampler
		if sb.Texture != nil {
			if err := d.tracker.Use(sb.Texture); err != nil {
				return nil, err
			}
			view = sb.Texture.Impl.(*textureImpl).view
		}
		if sb.Sampler != nil {
			if err := d.tracker.Use(sb.Sampler); err != nil {
				return nil, err
			}
			sampler = sb.Sampler.Impl.(hal.Sampler)
		}
		entries = append(entries,
			gputypes.BindGroupEntry{
				Binding:  uint32(gfx.TextureBinding(nu, i)),
				Resource: gputypes.TextureViewBinding{TextureView: view.NativeHandle()},
			},
			gputypes.BindGroupEntry{
				Binding:  uint32(gfx.SamplerBindingSlot(nu, i)),
				Resource: gputypes.SamplerBinding{Sampler: sampler.NativeHandle()},
			})
	}
	group, err := d.device.CreateBindGroup(&hal.BindGroupDescriptor{
		Label:   "gfx_bindings",
		Layout:  layout,
		Entries: entries,
	})
	if err != nil {
		return nil, fmt.Errorf("halgfx: create bind group: %w", err)
	}
	o := &gfx.Bindings{Descriptor: desc}
	o.Impl = &bindingsImpl{group: group}
	d.tracker.Track(o)
	return o, nil
}

// DestroyBindings releases o.
func (d *Device) DestroyBindings(o *gfx.Bindings) {
	if d.tracker.Release(o) != nil {
		return
	}
	if impl, ok := o.Impl.(*bindingsImpl); ok {
		d.device.DestroyBindGroup(impl.group)
	}
}

// CreateInputLayout converts the vertex fetch description into HAL
// vertex buffer layouts. Nil buffer slots are compacted away.
func (d *Device) CreateInputLayout(desc gfx.InputLayoutDescriptor) (*gfx.InputLayout, error) {
	if err := d.checkAlive(); err != nil {
		return nil, err
	}
	if err := desc.Validate(); err != nil {
		return nil, err
	}
	impl := &inputLayoutImpl{slots: make([]int, len(desc.VertexBufferDescriptors))}
	for i, b := range desc.VertexBufferDescriptors {
		impl.slots[i] = -1
		if b == nil {
			continue
		}
		impl.slots[i] = len(impl.buffers)
		impl.buffers = append(impl.buffers, gputypes.VertexBufferLayout{
			ArrayStride: uint64(b.ByteStride),
			StepMode:    stepMode(b.Frequency),
		})
	}
	for _, a := range desc.VertexAttributeDescriptors {
		slot := impl.slots[a.BufferIndex]
		impl.buffers[slot].Attributes = append(impl.buffers[slot].Attributes, gputypes.VertexAttribute{
			Format:         a.Format,
			Offset:         uint64(a.BufferByteOffset),
			ShaderLocation: uint32(a.Location),
		})
	}
	o := &gfx.InputLayout{Descriptor: desc}
	o.Impl = impl
	d.tracker.Track(o)
	return o, nil
}

// DestroyInputLayout releases o.
func (d *Device) DestroyInputLayout(o *gfx.InputLayout) {
	d.tracker.Release(o)
}

// CreateInputState binds buffers to a layout.
func (d *Device) CreateInputState(layout *gfx.InputLayout, buffers []*gfx.VertexBufferDescriptor, indexBuffer *gfx.IndexBufferDescriptor) (*gfx.InputState, error) {
	if err := d.checkAlive(); err != nil {
		return nil, err
	}
	if err := d.tracker.Use(layout); err != nil {
		return nil, err
	}
	if len(buffers) > len(layout.Descriptor.VertexBufferDescriptors) {
		return nil, fmt.Errorf("%w: %d vertex buffers for a layout with %d slots",
			gfx.ErrInvalidDescriptor, len(buffers), len(layout.Descriptor.VertexBufferDescriptors))
	}
	if indexBuffer != nil && layout.Descriptor.IndexBufferFormat == gputypes.IndexFormatUndefined {
		return nil, fmt.Errorf("%w: index buffer bound to a non-indexed layout", gfx.ErrInvalidDescriptor)
	}
	o := &gfx.InputState{Layout: layout, VertexBuffers: buffers, IndexBuffer: indexBuffer}
	d.tracker.Track(o)
	return o, nil
}

// DestroyInputState releases o.
func (d *Device) DestroyInputState(o *gfx.InputState) {
	d.tracker.Release(o)
}

// CreateRenderPipeline creates a HAL render pipeline. Program inputs that
// the input layout does not feed read from a zero-stride zero buffer.
func (d *Device) CreateRenderPipeline(desc gfx.RenderPipelineDescriptor) (*gfx.RenderPipeline, error) {
	if err := d.checkAlive(); err != nil {
		return nil, err
	}
	if desc.Program == nil {
		return nil, fmt.Errorf("%w: pipeline without program", gfx.ErrInvalidDescriptor)
	}
	if err := d.tracker.Use(desc.Program); err != nil {
		return nil, err
	}
	prog := desc.Program.Impl.(*programImpl)

	var buffers []gputypes.VertexBufferLayout
	fed := make(map[int]bool)
	if desc.InputLayout != nil {
		if err := d.tracker.Use(desc.InputLayout); err != nil {
			return nil, err
		}
		il := desc.InputLayout.Impl.(*inputLayoutImpl)
		buffers = append(buffers, il.buffers...)
		for _, a := range desc.InputLayout.Descriptor.VertexAttributeDescriptors {
			fed[a.Location] = true
		}
	}
	zeroSlot := -1
	var zeroAttrs []gputypes.VertexAttribute
	for _, in := range desc.Program.Descriptor.VertexInputs {
		if !fed[in.Location] {
			zeroAttrs = append(zeroAttrs, gputypes.VertexAttribute{Format: in.Format, ShaderLocation: uint32(in.Location)})
		}
	}
	if len(zeroAttrs) > 0 {
		zeroSlot = len(buffers)
		buffers = append(buffers, gputypes.VertexBufferLayout{
			ArrayStride: 0,
			StepMode:    gputypes.VertexStepModeVertex,
			Attributes:  zeroAttrs,
		})
	}

	groupLayouts := make([]hal.BindGroupLayout, 0, len(desc.BindingLayouts))
	for _, bl := range desc.BindingLayouts {
		l, err := d.bindGroupLayout(bl)
		if err != nil {
			return nil, err
		}
		groupLayouts = append(groupLayouts, l)
	}
	pipeLayout, err := d.device.CreatePipelineLayout(&hal.PipelineLayoutDescriptor{
		Label:            desc.Program.Descriptor.Name + "_layout",
		BindGroupLayouts: groupLayouts,
	})
	if err != nil {
		return nil, fmt.Errorf("halgfx: create pipeline layout: %w", err)
	}

	colorFormat, dsFormat := desc.Formats()
	primitive, cullAll := primitiveState(desc.MegaState)
	vsEntry, fsEntry := desc.Program.Descriptor.EntryPoints()
	pipeline, err := d.device.CreateRenderPipeline(&hal.RenderPipelineDescriptor{
		Label:  desc.Program.Descriptor.Name,
		Layout: pipeLayout,
		Vertex: hal.VertexState{
			Module:     prog.vertex,
			EntryPoint: vsEntry,
			Buffers:    buffers,
		},
		Fragment: &hal.FragmentState{
			Module:     prog.fragment,
			EntryPoint: fsEntry,
			Targets:    []gputypes.ColorTargetState{colorTarget(desc.MegaState, colorFormat)},
		},
		DepthStencil: depthStencilState(desc.MegaState, dsFormat),
		Primitive:    primitive,
		Multisample: gputypes.MultisampleState{
			Count: uint32(max(desc.SampleCount, 1)),
			Mask:  0xFFFFFFFF,
		},
	})
	if err != nil {
		d.device.DestroyPipelineLayout(pipeLayout)
		return nil, fmt.Errorf("halgfx: create render pipeline %s: %w", desc.Program.Descriptor.Name, err)
	}

	o := &gfx.RenderPipeline{Descriptor: desc}
	o.Impl = &pipelineImpl{pipeline: pipeline, layout: pipeLayout, zeroSlot: zeroSlot, cullAll: cullAll}
	d.tracker.Track(o)
	gfx.Logger().Debug("halgfx: pipeline created",
		"program", desc.Program.Descriptor.Name,
		"zeroInputs", len(zeroAttrs),
		"cullAll", cullAll)
	return o, nil
}

// DestroyRenderPipeline releases o.
func (d *Device) DestroyRenderPipeline(o *gfx.RenderPipeline) {
	if d.tracker.Release(o) != nil {
		return
	}
	if impl, ok := o.Impl.(*pipelineImpl); ok {
		d.device.DestroyRenderPipeline(impl.pipeline)
		d.device.DestroyPipelineLayout(impl.layout)
	}
}
