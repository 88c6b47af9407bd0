// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package recorder

import (
	"fmt"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/gxview/gfx"
)

// Host-side state stored in gfx.Resource.Impl.
type (
	bufferImpl struct {
		data []byte
	}
	// textureImpl backs textures and color attachments. Each level holds
	// every array layer.
	textureImpl struct {
		levels [][]byte
	}
	programImpl struct {
		vertexGLSL   string
		fragmentGLSL string
	}
)

// CreateBuffer creates a host buffer of wordCount 32-bit words.
func (d *Device) CreateBuffer(wordCount int, usage gfx.BufferUsage, hint gfx.BufferFrequencyHint) (*gfx.Buffer, error) {
	if err := d.checkAlive(); err != nil {
		return nil, err
	}
	if wordCount <= 0 {
		return nil, fmt.Errorf("%w: buffer of %d words", gfx.ErrInvalidDescriptor, wordCount)
	}
	o := &gfx.Buffer{WordCount: wordCount, Usage: usage, Hint: hint}
	o.Impl = &bufferImpl{data: make([]byte, wordCount*4)}
	d.tracker.Track(o)
	return o, nil
}

// DestroyBuffer releases o.
func (d *Device) DestroyBuffer(o *gfx.Buffer) {
	d.tracker.Release(o)
}

// BufferData returns the current contents of o.
func BufferData(o *gfx.Buffer) []byte {
	if impl, ok := o.Impl.(*bufferImpl); ok {
		return impl.data
	}
	return nil
}

func newTextureImpl(desc gfx.TextureDescriptor) *textureImpl {
	impl := &textureImpl{levels: make([][]byte, desc.NumLevels)}
	for level := range desc.NumLevels {
		impl.levels[level] = make([]byte, gfx.MipLevelByteSize(desc, level)*desc.Depth)
	}
	return impl
}

// CreateTexture creates a host texture.
func (d *Device) CreateTexture(desc gfx.TextureDescriptor) (*gfx.Texture, error) {
	if err := d.checkAlive(); err != nil {
		return nil, err
	}
	if err := desc.Validate(); err != nil {
		return nil, err
	}
	o := &gfx.Texture{Descriptor: desc}
	o.Impl = newTextureImpl(desc)
	d.tracker.Track(o)
	return o, nil
}

// DestroyTexture releases o.
func (d *Device) DestroyTexture(o *gfx.Texture) {
	d.tracker.Release(o)
}

// TextureLevel returns the contents of one mip level of o.
func TextureLevel(o *gfx.Texture, level int) []byte {
	impl, ok := o.Impl.(*textureImpl)
	if !ok || level < 0 || level >= len(impl.levels) {
		return nil
	}
	return impl.levels[level]
}

// CreateSampler records a sampler. Samplers have no host state.
func (d *Device) CreateSampler(desc gfx.SamplerDescriptor) (*gfx.Sampler, error) {
	if err := d.checkAlive(); err != nil {
		return nil, err
	}
	o := &gfx.Sampler{Descriptor: desc}
	d.tracker.Track(o)
	return o, nil
}

// DestroySampler releases o.
func (d *Device) DestroySampler(o *gfx.Sampler) {
	d.tracker.Release(o)
}

// CreateColorAttachment creates an RGBA8 render target. Multisampled
// attachments keep one resolved sample per pixel.
func (d *Device) CreateColorAttachment(width, height, numSamples int) (*gfx.ColorAttachment, error) {
	if err := d.checkAlive(); err != nil {
		return nil, err
	}
	desc := gfx.MakeTextureDescriptor2D(gputypes.TextureFormatRGBA8Unorm, width, height, 1)
	if err := desc.Validate(); err != nil {
		return nil, err
	}
	o := &gfx.ColorAttachment{Width: width, Height: height, SampleCount: max(numSamples, 1), Format: desc.PixelFormat}
	o.Impl = newTextureImpl(desc)
	d.tracker.Track(o)
	return o, nil
}

// DestroyColorAttachment releases o.
func (d *Device) DestroyColorAttachment(o *gfx.ColorAttachment) {
	d.tracker.Release(o)
}

// CreateDepthStencilAttachment records a Depth24PlusStencil8 target.
// Depth is not simulated, so it has no host state.
func (d *Device) CreateDepthStencilAttachment(width, height, numSamples int) (*gfx.DepthStencilAttachment, error) {
	if err := d.checkAlive(); err != nil {
		return nil, err
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: depth stencil attachment %dx%d", gfx.ErrInvalidDescriptor, width, height)
	}
	o := &gfx.DepthStencilAttachment{
		Width:       width,
		Height:      height,
		SampleCount: max(numSamples, 1),
		Format:      gputypes.TextureFormatDepth24PlusStencil8,
	}
	d.tracker.Track(o)
	return o, nil
}

// DestroyDepthStencilAttachment releases o.
func (d *Device) DestroyDepthStencilAttachment(o *gfx.DepthStencilAttachment) {
	d.tracker.Release(o)
}

// CreateProgram records a program. With shader validation on both stages
// are compiled with naga; with GLSL output they are also translated.
func (d *Device) CreateProgram(desc gfx.ProgramDescriptor) (*gfx.Program, error) {
	if err := d.checkAlive(); err != nil {
		return nil, err
	}
	impl := &programImpl{}
	if d.opts.glsl {
		vs, fs, err := TranslateGLSL(desc, d.opts.glslES)
		if err != nil {
			return nil, err
		}
		impl.vertexGLSL, impl.fragmentGLSL = vs, fs
	} else if d.opts.shaderValidation {
		if err := ValidateProgram(desc); err != nil {
			return nil, err
		}
	}
	o := &gfx.Program{Descriptor: desc}
	o.Impl = impl
	d.tracker.Track(o)
	gfx.Logger().Debug("recorder: program created", "name", desc.Name, "glsl", d.opts.glsl)
	return o, nil
}

// DestroyProgram releases o.
func (d *Device) DestroyProgram(o *gfx.Program) {
	d.tracker.Release(o)
}

// ProgramGLSL returns the GLSL translation of o, empty unless the device
// was created WithGLSL.
func ProgramGLSL(o *gfx.Program) (vertex, fragment string) {
	if impl, ok := o.Impl.(*programImpl); ok {
		return impl.vertexGLSL, impl.fragmentGLSL
	}
	return "", ""
}

// CreateBindings records a binding set after checking every referenced
// resource is live.
func (d *Device) CreateBindings(desc gfx.BindingsDescriptor) (*gfx.Bindings, error) {
	if err := d.checkAlive(); err != nil {
		return nil, err
	}
	if err := desc.Validate(); err != nil {
		return nil, err
	}
	for i := range desc.BindingLayout.NumUniformBuffers {
		b := desc.UniformBufferBindings[i]
		if err := d.tracker.Use(b.Buffer); err != nil {
			return nil, err
		}
		if end := b.WordOffset + b.WordCount; end > b.Buffer.WordCount {
			return nil, fmt.Errorf("%w: uniform binding %d ends at word %d of %d",
				gfx.ErrInvalidDescriptor, i, end, b.Buffer.WordCount)
		}
	}
	for i := range desc.BindingLayout.NumSamplers {
		sb := desc.SamplerBindings[i]
		if sb.Texture != nil {
			if err := d.tracker.Use(sb.Texture); err != nil {
				return nil, err
			}
		}
		if sb.Sampler != nil {
			if err := d.tracker.Use(sb.Sampler); err != nil {
				return nil, err
			}
		}
	}
	o := &gfx.Bindings{Descriptor: desc}
	d.tracker.Track(o)
	return o, nil
}

// DestroyBindings releases o.
func (d *Device) DestroyBindings(o *gfx.Bindings) {
	d.tracker.Release(o)
}

// CreateInputLayout records a vertex fetch layout.
func (d *Device) CreateInputLayout(desc gfx.InputLayoutDescriptor) (*gfx.InputLayout, error) {
	if err := d.checkAlive(); err != nil {
		return nil, err
	}
	if err := desc.Validate(); err != nil {
		return nil, err
	}
	o := &gfx.InputLayout{Descriptor: desc}
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

// CreateRenderPipeline records a pipeline.
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
	if desc.InputLayout != nil {
		if err := d.tracker.Use(desc.InputLayout); err != nil {
			return nil, err
		}
	}
	o := &gfx.RenderPipeline{Descriptor: desc}
	d.tracker.Track(o)
	gfx.Logger().Debug("recorder: pipeline created",
		"program", desc.Program.Descriptor.Name,
		"cull", desc.MegaState.CullMode)
	return o, nil
}

// DestroyRenderPipeline releases o.
func (d *Device) DestroyRenderPipeline(o *gfx.RenderPipeline) {
	d.tracker.Release(o)
}
