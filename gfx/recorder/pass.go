// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package recorder

import (
	"fmt"
	"math"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/gxview/gfx"
)

// hostAccessPass collects uploads and applies them on submit.
type hostAccessPass struct {
	dev       *Device
	cmds      []Command
	apply     []func()
	err       error
	submitted bool
}

func (p *hostAccessPass) Kind() gfx.PassKind { return gfx.PassHostAccess }

func (p *hostAccessPass) fail(err error) {
	if p.err == nil {
		p.err = err
	}
}

// UploadBufferData writes data into buffer starting at dstWordOffset.
func (p *hostAccessPass) UploadBufferData(buffer *gfx.Buffer, dstWordOffset int, data []byte) {
	if p.submitted {
		p.fail(gfx.ErrPassSubmitted)
		return
	}
	if err := p.dev.tracker.Use(buffer); err != nil {
		p.fail(err)
		return
	}
	impl := buffer.Impl.(*bufferImpl)
	offset := dstWordOffset * 4
	if dstWordOffset < 0 || offset+len(data) > len(impl.data) {
		p.fail(fmt.Errorf("%w: upload of %d bytes at word %d overflows %d-word buffer",
			gfx.ErrInvalidDescriptor, len(data), dstWordOffset, buffer.WordCount))
		return
	}
	src := append([]byte(nil), data...)
	p.apply = append(p.apply, func() { copy(impl.data[offset:], src) })
	p.cmds = append(p.cmds, UploadBufferCommand{Buffer: buffer.ID(), WordOffset: dstWordOffset, ByteCount: len(data)})
	p.dev.debug.CountBufferUpload()
}

// UploadTextureData writes one byte slice per mip level, starting at
// firstMipLevel.
func (p *hostAccessPass) UploadTextureData(texture *gfx.Texture, firstMipLevel int, levelDatas [][]byte) {
	if p.submitted {
		p.fail(gfx.ErrPassSubmitted)
		return
	}
	if err := p.dev.tracker.Use(texture); err != nil {
		p.fail(err)
		return
	}
	impl := texture.Impl.(*textureImpl)
	for i, data := range levelDatas {
		level := firstMipLevel + i
		if level < 0 || level >= len(impl.levels) {
			p.fail(fmt.Errorf("%w: mip level %d of a %d-level texture", gfx.ErrInvalidDescriptor, level, len(impl.levels)))
			return
		}
		if len(data) < len(impl.levels[level]) {
			p.fail(fmt.Errorf("%w: mip level %d has %d bytes, want %d",
				gfx.ErrInvalidDescriptor, level, len(data), len(impl.levels[level])))
			return
		}
		dst := impl.levels[level]
		src := append([]byte(nil), data[:len(dst)]...)
		p.apply = append(p.apply, func() { copy(dst, src) })
	}
	p.cmds = append(p.cmds, UploadTextureCommand{Texture: texture.ID(), FirstMipLevel: firstMipLevel, LevelCount: len(levelDatas)})
}

// renderPass records commands. The first error is kept and later
// commands are dropped.
type renderPass struct {
	dev  *Device
	desc gfx.RenderPassDescriptor

	cmds      []Command
	pipeline  *gfx.RenderPipeline
	resolveTo *gfx.Texture
	err       error
	ended     bool
	submitted bool
}

func (p *renderPass) Kind() gfx.PassKind { return gfx.PassRender }

func (p *renderPass) fail(err error) {
	if p.err == nil {
		p.err = err
	}
}

func (p *renderPass) recording() bool {
	switch {
	case p.submitted:
		p.fail(gfx.ErrPassSubmitted)
	case p.ended:
		p.fail(gfx.ErrPassEnded)
	}
	return p.err == nil
}

func (p *renderPass) SetViewport(x, y, w, h float32) {
	if p.recording() {
		p.cmds = append(p.cmds, SetViewportCommand{X: x, Y: y, Width: w, Height: h})
	}
}

func (p *renderPass) SetScissor(x, y, w, h int) {
	if p.recording() {
		p.cmds = append(p.cmds, SetScissorCommand{X: x, Y: y, Width: w, Height: h})
	}
}

func (p *renderPass) SetPipeline(pipeline *gfx.RenderPipeline) {
	if !p.recording() {
		return
	}
	if pipeline == nil {
		p.fail(gfx.ErrNoPipeline)
		return
	}
	if err := p.dev.tracker.Use(pipeline); err != nil {
		p.fail(err)
		return
	}
	p.pipeline = pipeline
	p.cmds = append(p.cmds, SetPipelineCommand{Pipeline: pipeline.ID(), Program: pipeline.Descriptor.Program.Descriptor.Name})
}

func (p *renderPass) SetBindings(bindingLayoutIndex int, bindings *gfx.Bindings, dynamicByteOffsets []uint32) {
	if !p.recording() {
		return
	}
	if bindingLayoutIndex < 0 || (p.pipeline != nil && bindingLayoutIndex >= len(p.pipeline.Descriptor.BindingLayouts)) {
		p.fail(fmt.Errorf("%w: %d", gfx.ErrBindingIndex, bindingLayoutIndex))
		return
	}
	if err := p.dev.tracker.Use(bindings); err != nil {
		p.fail(err)
		return
	}
	for _, ub := range bindings.Descriptor.UniformBufferBindings {
		if err := p.dev.tracker.Use(ub.Buffer); err != nil {
			p.fail(err)
			return
		}
	}
	textures := make([]uint64, len(bindings.Descriptor.SamplerBindings))
	for i, sb := range bindings.Descriptor.SamplerBindings {
		if sb.Texture == nil {
			continue
		}
		if err := p.dev.tracker.Use(sb.Texture); err != nil {
			p.fail(err)
			return
		}
		textures[i] = sb.Texture.ID()
		p.dev.debug.CountTextureBind()
	}
	offsets := make([]uint32, bindings.Descriptor.BindingLayout.NumUniformBuffers)
	copy(offsets, dynamicByteOffsets)
	p.cmds = append(p.cmds, SetBindingsCommand{
		Index:          bindingLayoutIndex,
		Bindings:       bindings.ID(),
		DynamicOffsets: offsets,
		Textures:       textures,
	})
}

func (p *renderPass) SetInputState(inputState *gfx.InputState) {
	if !p.recording() || inputState == nil {
		return
	}
	if err := p.dev.tracker.Use(inputState); err != nil {
		p.fail(err)
		return
	}
	for _, vb := range inputState.VertexBuffers {
		if vb == nil {
			continue
		}
		if err := p.dev.tracker.Use(vb.Buffer); err != nil {
			p.fail(err)
			return
		}
	}
	if ib := inputState.IndexBuffer; ib != nil {
		if err := p.dev.tracker.Use(ib.Buffer); err != nil {
			p.fail(err)
			return
		}
	}
	p.cmds = append(p.cmds, SetInputStateCommand{InputState: inputState.ID()})
}

func (p *renderPass) SetStencilRef(value uint32) {
	if p.recording() {
		p.cmds = append(p.cmds, SetStencilRefCommand{Value: value})
	}
}

func (p *renderPass) drawable() bool {
	if !p.recording() {
		return false
	}
	if p.pipeline == nil {
		p.fail(gfx.ErrNoPipeline)
		return false
	}
	return true
}

func (p *renderPass) Draw(vertexCount, firstVertex int) {
	if !p.drawable() {
		return
	}
	p.cmds = append(p.cmds, DrawCommand{VertexCount: vertexCount, FirstVertex: firstVertex})
	p.dev.debug.CountDraw(vertexCount / 3)
}

func (p *renderPass) DrawIndexed(indexCount, firstIndex int) {
	p.DrawIndexedInstanced(indexCount, firstIndex, 1)
}

func (p *renderPass) DrawIndexedInstanced(indexCount, firstIndex, instanceCount int) {
	if !p.drawable() {
		return
	}
	p.cmds = append(p.cmds, DrawIndexedCommand{IndexCount: indexCount, FirstIndex: firstIndex, InstanceCount: instanceCount})
	p.dev.debug.CountDraw(indexCount / 3 * instanceCount)
}

func (p *renderPass) EndPass(resolveTo *gfx.Texture) {
	if !p.recording() {
		return
	}
	if resolveTo != nil {
		if err := p.dev.tracker.Use(resolveTo); err != nil {
			p.fail(err)
			return
		}
		if ca := p.desc.ColorAttachment; ca != nil &&
			(ca.Width != resolveTo.Descriptor.Width || ca.Height != resolveTo.Descriptor.Height) {
			p.fail(fmt.Errorf("%w: resolve %dx%d attachment into %dx%d texture", gfx.ErrInvalidDescriptor,
				ca.Width, ca.Height, resolveTo.Descriptor.Width, resolveTo.Descriptor.Height))
			return
		}
	}
	p.resolveTo = resolveTo
	p.ended = true
}

// CreateHostAccessPass starts a transfer pass.
func (d *Device) CreateHostAccessPass() gfx.HostAccessPass {
	return &hostAccessPass{dev: d}
}

// CreateRenderPass starts a render pass.
func (d *Device) CreateRenderPass(desc gfx.RenderPassDescriptor) gfx.RenderPass {
	p := &renderPass{dev: d, desc: desc}
	if desc.ColorAttachment != nil {
		if err := d.tracker.Use(desc.ColorAttachment); err != nil {
			p.fail(err)
		}
	}
	if desc.DepthStencilAttachment != nil {
		if err := d.tracker.Use(desc.DepthStencilAttachment); err != nil {
			p.fail(err)
		}
	}
	return p
}

// SubmitPass applies and records p.
func (d *Device) SubmitPass(p gfx.Pass) error {
	if err := d.checkAlive(); err != nil {
		return err
	}
	switch p := p.(type) {
	case *hostAccessPass:
		if p.dev != d {
			return gfx.ErrForeignPass
		}
		if p.submitted {
			return gfx.ErrPassSubmitted
		}
		p.submitted = true
		if p.err != nil {
			return p.err
		}
		for _, apply := range p.apply {
			apply()
		}
		d.emit(p.cmds...)
		p.apply, p.cmds = nil, nil
		return nil
	case *renderPass:
		if p.dev != d {
			return gfx.ErrForeignPass
		}
		if p.submitted {
			return gfx.ErrPassSubmitted
		}
		if !p.ended && p.err == nil {
			return gfx.ErrPassNotEnded
		}
		p.submitted = true
		if p.err != nil {
			return p.err
		}
		d.executeRenderPass(p)
		p.cmds = nil
		return nil
	default:
		return gfx.ErrForeignPass
	}
}

// executeRenderPass clears and resolves the color attachment on the host
// and appends the pass to the recording.
func (d *Device) executeRenderPass(p *renderPass) {
	desc := p.desc
	begin := BeginRenderPassCommand{
		ColorLoad:    desc.ColorLoadDisposition,
		ClearColor:   desc.ColorClearColor,
		DepthLoad:    desc.DepthLoadDisposition,
		DepthClear:   desc.DepthClearValue,
		StencilLoad:  desc.StencilLoadDisposition,
		StencilClear: desc.StencilClearValue,
	}
	if desc.DepthStencilAttachment != nil {
		begin.DepthStencilAttachment = desc.DepthStencilAttachment.ID()
	}

	var color []byte
	switch {
	case desc.ColorAttachment != nil:
		begin.ColorAttachment = desc.ColorAttachment.ID()
		color = desc.ColorAttachment.Impl.(*textureImpl).levels[0]
	case p.resolveTo != nil:
		// Without a color attachment the pass renders into resolveTo.
		color = p.resolveTo.Impl.(*textureImpl).levels[0]
	}
	if color != nil && desc.ColorLoadDisposition == gfx.LoadClear {
		fillRGBA8(color, desc.ColorClearColor)
	}
	end := EndRenderPassCommand{}
	if p.resolveTo != nil {
		end.ResolveTo = p.resolveTo.ID()
		if desc.ColorAttachment != nil {
			copy(p.resolveTo.Impl.(*textureImpl).levels[0], color)
		}
	}

	cmds := make([]Command, 0, len(p.cmds)+2)
	cmds = append(cmds, begin)
	cmds = append(cmds, p.cmds...)
	cmds = append(cmds, end)
	d.emit(cmds...)
}

// fillRGBA8 fills an RGBA8 pixel buffer with c.
func fillRGBA8(pix []byte, c gputypes.Color) {
	px := [4]byte{unorm8(float64(c.R)), unorm8(float64(c.G)), unorm8(float64(c.B)), unorm8(float64(c.A))}
	for i := 0; i+4 <= len(pix); i += 4 {
		copy(pix[i:i+4], px[:])
	}
}

func unorm8(v float64) byte {
	return byte(math.Round(min(max(v, 0), 1) * 255))
}
