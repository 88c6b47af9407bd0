// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package halgfx

import (
	"fmt"
	"time"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/gxview/gfx"
)

// submitTimeout bounds the wait for a submitted pass.
const submitTimeout = 5 * time.Second

// hostAccessPass collects uploads and writes them to the queue on submit.
type hostAccessPass struct {
	dev       *Device
	uploads   []func(q hal.Queue)
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
	offset := uint64(dstWordOffset) * 4
	if offset+uint64(len(data)) > impl.size {
		p.fail(fmt.Errorf("%w: upload of %d bytes at word %d overflows %d-word buffer",
			gfx.ErrInvalidDescriptor, len(data), dstWordOffset, buffer.WordCount))
		return
	}
	buf := append([]byte(nil), data...)
	p.uploads = append(p.uploads, func(q hal.Queue) {
		q.WriteBuffer(impl.buf, offset, buf)
	})
	p.dev.debug.CountBufferUpload()
}

// UploadTextureData writes one byte slice per mip level, starting at
// firstMipLevel. Array textures carry every layer in each level slice.
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
	desc := texture.Descriptor
	bpp := gfx.FormatByteSize(desc.PixelFormat)
	for i, data := range levelDatas {
		level := firstMipLevel + i
		if level >= desc.NumLevels {
			p.fail(fmt.Errorf("%w: mip level %d of a %d-level texture", gfx.ErrInvalidDescriptor, level, desc.NumLevels))
			return
		}
		w, h := gfx.MipLevelExtent(desc.Width, desc.Height, level)
		if want := w * h * bpp * desc.Depth; len(data) < want {
			p.fail(fmt.Errorf("%w: mip level %d has %d bytes, want %d", gfx.ErrInvalidDescriptor, level, len(data), want))
			return
		}
		data := append([]byte(nil), data...)
		layers := uint32(desc.Depth)
		p.uploads = append(p.uploads, func(q hal.Queue) {
			q.WriteTexture(
				&hal.ImageCopyTexture{Texture: impl.tex, MipLevel: uint32(level), Aspect: gputypes.TextureAspectAll},
				data,
				&hal.ImageDataLayout{Offset: 0, BytesPerRow: uint32(w * bpp), RowsPerImage: uint32(h)},
				&hal.Extent3D{Width: uint32(w), Height: uint32(h), DepthOrArrayLayers: layers},
			)
		})
	}
}

// renderPass records commands as closures replayed into a HAL render
// pass encoder on submit. The first error is kept and later commands
// are dropped.
type renderPass struct {
	dev  *Device
	desc gfx.RenderPassDescriptor

	cmds      []func(rp hal.RenderPassEncoder)
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

// recording reports whether commands may still be recorded.
func (p *renderPass) recording() bool {
	switch {
	case p.submitted:
		p.fail(gfx.ErrPassSubmitted)
	case p.ended:
		p.fail(gfx.ErrPassEnded)
	}
	return p.err == nil
}

func (p *renderPass) record(cmd func(rp hal.RenderPassEncoder)) {
	p.cmds = append(p.cmds, cmd)
}

func (p *renderPass) SetViewport(x, y, w, h float32) {
	if !p.recording() {
		return
	}
	p.record(func(rp hal.RenderPassEncoder) { rp.SetViewport(x, y, w, h, 0, 1) })
}

func (p *renderPass) SetScissor(x, y, w, h int) {
	if !p.recording() {
		return
	}
	ux, uy := uint32(max(x, 0)), uint32(max(y, 0))
	uw, uh := uint32(max(w, 0)), uint32(max(h, 0))
	p.record(func(rp hal.RenderPassEncoder) { rp.SetScissorRect(ux, uy, uw, uh) })
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
	impl := pipeline.Impl.(*pipelineImpl)
	zero := p.dev.zeroVertex
	p.record(func(rp hal.RenderPassEncoder) {
		rp.SetPipeline(impl.pipeline)
		if impl.zeroSlot >= 0 {
			rp.SetVertexBuffer(uint32(impl.zeroSlot), zero, 0)
		}
	})
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
	for _, sb := range bindings.Descriptor.SamplerBindings {
		if sb.Texture == nil {
			continue
		}
		if err := p.dev.tracker.Use(sb.Texture); err != nil {
			p.fail(err)
			return
		}
		p.dev.debug.CountTextureBind()
	}
	// Every uniform binding is dynamic; missing offsets are zero.
	offsets := make([]uint32, bindings.Descriptor.BindingLayout.NumUniformBuffers)
	copy(offsets, dynamicByteOffsets)
	group := bindings.Impl.(*bindingsImpl).group
	index := uint32(bindingLayoutIndex)
	p.record(func(rp hal.RenderPassEncoder) { rp.SetBindGroup(index, group, offsets) })
}

func (p *renderPass) SetInputState(inputState *gfx.InputState) {
	if !p.recording() {
		return
	}
	if inputState == nil {
		return
	}
	if err := p.dev.tracker.Use(inputState); err != nil {
		p.fail(err)
		return
	}
	layout := inputState.Layout.Impl.(*inputLayoutImpl)
	type vertexBinding struct {
		slot   uint32
		buf    hal.Buffer
		offset uint64
	}
	var vbs []vertexBinding
	for i, vb := range inputState.VertexBuffers {
		if vb == nil || i >= len(layout.slots) || layout.slots[i] < 0 {
			continue
		}
		if err := p.dev.tracker.Use(vb.Buffer); err != nil {
			p.fail(err)
			return
		}
		vbs = append(vbs, vertexBinding{
			slot:   uint32(layout.slots[i]),
			buf:    vb.Buffer.Impl.(*bufferImpl).buf,
			offset: uint64(vb.ByteOffset),
		})
	}
	var (
		indexBuf    hal.Buffer
		indexOffset uint64
	)
	indexFormat := inputState.Layout.Descriptor.IndexBufferFormat
	if ib := inputState.IndexBuffer; ib != nil {
		if err := p.dev.tracker.Use(ib.Buffer); err != nil {
			p.fail(err)
			return
		}
		indexBuf = ib.Buffer.Impl.(*bufferImpl).buf
		indexOffset = uint64(ib.ByteOffset)
	}
	p.record(func(rp hal.RenderPassEncoder) {
		for _, vb := range vbs {
			rp.SetVertexBuffer(vb.slot, vb.buf, vb.offset)
		}
		if indexBuf != nil {
			rp.SetIndexBuffer(indexBuf, indexFormat, indexOffset)
		}
	})
}

func (p *renderPass) SetStencilRef(value uint32) {
	if !p.recording() {
		return
	}
	p.record(func(rp hal.RenderPassEncoder) { rp.SetStencilReference(value) })
}

// drawable checks draw preconditions. Draws of pipelines culling both
// faces are valid but dropped.
func (p *renderPass) drawable() bool {
	if !p.recording() {
		return false
	}
	if p.pipeline == nil {
		p.fail(gfx.ErrNoPipeline)
		return false
	}
	return !p.pipeline.Impl.(*pipelineImpl).cullAll
}

func (p *renderPass) Draw(vertexCount, firstVertex int) {
	if !p.drawable() {
		return
	}
	vc, fv := uint32(vertexCount), uint32(firstVertex)
	p.record(func(rp hal.RenderPassEncoder) { rp.Draw(vc, 1, fv, 0) })
	p.dev.debug.CountDraw(vertexCount / 3)
}

func (p *renderPass) DrawIndexed(indexCount, firstIndex int) {
	p.DrawIndexedInstanced(indexCount, firstIndex, 1)
}

func (p *renderPass) DrawIndexedInstanced(indexCount, firstIndex, instanceCount int) {
	if !p.drawable() {
		return
	}
	ic, fi, inst := uint32(indexCount), uint32(firstIndex), uint32(instanceCount)
	p.record(func(rp hal.RenderPassEncoder) { rp.DrawIndexed(ic, inst, fi, 0, 0) })
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
	}
	p.resolveTo = resolveTo
	p.ended = true
}

// CreateHostAccessPass starts a transfer pass.
func (d *Device) CreateHostAccessPass() gfx.HostAccessPass {
	return &hostAccessPass{dev: d}
}

// CreateRenderPass starts a render pass. Attachments are checked here;
// a failure is reported by SubmitPass.
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

// SubmitPass executes and consumes p, waiting for the GPU to finish.
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
		for _, upload := range p.uploads {
			upload(d.queue)
		}
		p.uploads = nil
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
		err := d.encodeRenderPass(p)
		p.cmds = nil
		return err
	default:
		return gfx.ErrForeignPass
	}
}

// renderPassDescriptor builds the attachments. A multisampled color
// attachment resolves into resolveTo; a single-sampled one is replaced by
// resolveTo so the result lands there directly.
func (d *Device) renderPassDescriptor(p *renderPass) *hal.RenderPassDescriptor {
	rpDesc := &hal.RenderPassDescriptor{Label: "gfx_render_pass"}
	var view, resolve hal.TextureView
	if ca := p.desc.ColorAttachment; ca != nil {
		view = ca.Impl.(*textureImpl).view
		if p.resolveTo != nil {
			target := p.resolveTo.Impl.(*textureImpl).view
			if ca.SampleCount > 1 {
				resolve = target
			} else {
				view = target
			}
		}
	} else if p.resolveTo != nil {
		view = p.resolveTo.Impl.(*textureImpl).view
	}
	if view != nil {
		rpDesc.ColorAttachments = []hal.RenderPassColorAttachment{{
			View:          view,
			ResolveTarget: resolve,
			LoadOp:        loadOp(p.desc.ColorLoadDisposition),
			StoreOp:       gputypes.StoreOpStore,
			ClearValue:    p.desc.ColorClearColor,
		}}
	}
	if ds := p.desc.DepthStencilAttachment; ds != nil {
		rpDesc.DepthStencilAttachment = &hal.RenderPassDepthStencilAttachment{
			View:              ds.Impl.(*textureImpl).view,
			DepthLoadOp:       loadOp(p.desc.DepthLoadDisposition),
			DepthStoreOp:      gputypes.StoreOpStore,
			DepthClearValue:   p.desc.DepthClearValue,
			StencilLoadOp:     loadOp(p.desc.StencilLoadDisposition),
			StencilStoreOp:    gputypes.StoreOpStore,
			StencilClearValue: p.desc.StencilClearValue,
		}
	}
	return rpDesc
}

func (d *Device) encodeRenderPass(p *renderPass) error {
	encoder, err := d.device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{Label: "gfx_encoder"})
	if err != nil {
		return fmt.Errorf("halgfx: create command encoder: %w", err)
	}
	if err := encoder.BeginEncoding("gfx_frame"); err != nil {
		return fmt.Errorf("halgfx: begin encoding: %w", err)
	}
	rp := encoder.BeginRenderPass(d.renderPassDescriptor(p))
	for _, cmd := range p.cmds {
		cmd(rp)
	}
	rp.End()

	cmdBuf, err := encoder.EndEncoding()
	if err != nil {
		return fmt.Errorf("halgfx: end encoding: %w", err)
	}
	defer d.device.FreeCommandBuffer(cmdBuf)
	return d.submitAndWait(cmdBuf)
}

func (d *Device) submitAndWait(cmdBuf hal.CommandBuffer) error {
	fence, err := d.device.CreateFence()
	if err != nil {
		return fmt.Errorf("halgfx: create fence: %w", err)
	}
	defer d.device.DestroyFence(fence)

	if err := d.queue.Submit([]hal.CommandBuffer{cmdBuf}, fence, 1); err != nil {
		return fmt.Errorf("halgfx: submit: %w", err)
	}
	ok, err := d.device.Wait(fence, 1, submitTimeout)
	if err != nil || !ok {
		return fmt.Errorf("halgfx: wait for GPU: ok=%v err=%w", ok, err)
	}
	return nil
}
