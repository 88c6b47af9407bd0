// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package halgfx

import (
	"errors"
	"testing"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/gxview/gfx"
)

func TestHostAccessPassUpload(t *testing.T) {
	d := createNoopDevice(t)

	buf, err := d.CreateBuffer(4, gfx.BufferUsageUniform, gfx.BufferDynamic)
	if err != nil {
		t.Fatalf("CreateBuffer failed: %v", err)
	}
	defer d.DestroyBuffer(buf)

	g := &gfx.DebugGroup{Name: "uploads"}
	d.PushDebugGroup(g)
	p := d.CreateHostAccessPass()
	if p.Kind() != gfx.PassHostAccess {
		t.Errorf("Kind() = %v, want PassHostAccess", p.Kind())
	}
	p.UploadBufferData(buf, 1, make([]byte, 12))
	d.PopDebugGroup()

	if err := d.SubmitPass(p); err != nil {
		t.Fatalf("SubmitPass() error = %v", err)
	}
	if g.BufferUploadCount != 1 {
		t.Errorf("BufferUploadCount = %d, want 1", g.BufferUploadCount)
	}
	if err := d.SubmitPass(p); !errors.Is(err, gfx.ErrPassSubmitted) {
		t.Errorf("second SubmitPass() error = %v, want ErrPassSubmitted", err)
	}
}

func TestHostAccessPassOverflow(t *testing.T) {
	d := createNoopDevice(t)

	buf, err := d.CreateBuffer(4, gfx.BufferUsageUniform, gfx.BufferDynamic)
	if err != nil {
		t.Fatalf("CreateBuffer failed: %v", err)
	}
	defer d.DestroyBuffer(buf)

	p := d.CreateHostAccessPass()
	p.UploadBufferData(buf, 2, make([]byte, 12))
	if err := d.SubmitPass(p); !errors.Is(err, gfx.ErrInvalidDescriptor) {
		t.Errorf("SubmitPass() error = %v, want ErrInvalidDescriptor", err)
	}
}

func TestHostAccessPassTextureLevels(t *testing.T) {
	d := createNoopDevice(t)

	tex, err := d.CreateTexture(gfx.MakeTextureDescriptor2D(gputypes.TextureFormatRGBA8Unorm, 4, 4, 2))
	if err != nil {
		t.Fatalf("CreateTexture failed: %v", err)
	}
	defer d.DestroyTexture(tex)

	p := d.CreateHostAccessPass()
	p.UploadTextureData(tex, 0, [][]byte{make([]byte, 4*4*4), make([]byte, 2*2*4)})
	if err := d.SubmitPass(p); err != nil {
		t.Fatalf("SubmitPass() error = %v", err)
	}

	p = d.CreateHostAccessPass()
	p.UploadTextureData(tex, 1, [][]byte{make([]byte, 2*2*4), make([]byte, 4)})
	if err := d.SubmitPass(p); !errors.Is(err, gfx.ErrInvalidDescriptor) {
		t.Errorf("SubmitPass() error = %v, want ErrInvalidDescriptor for a missing level", err)
	}
}

func newTargets(t *testing.T, d *Device) (*gfx.ColorAttachment, *gfx.DepthStencilAttachment) {
	t.Helper()
	color, err := d.CreateColorAttachment(8, 8, 1)
	if err != nil {
		t.Fatalf("CreateColorAttachment failed: %v", err)
	}
	depth, err := d.CreateDepthStencilAttachment(8, 8, 1)
	if err != nil {
		t.Fatalf("CreateDepthStencilAttachment failed: %v", err)
	}
	t.Cleanup(func() {
		d.DestroyColorAttachment(color)
		d.DestroyDepthStencilAttachment(depth)
	})
	return color, depth
}

func TestRenderPassDraw(t *testing.T) {
	d := createNoopDevice(t)
	color, depth := newTargets(t, d)
	pipeline := testPipeline(t, d, gfx.DefaultMegaState())

	g := &gfx.DebugGroup{Name: "frame"}
	d.PushDebugGroup(g)
	p := d.CreateRenderPass(gfx.DefaultRenderPassDescriptor(color, depth))
	if p.Kind() != gfx.PassRender {
		t.Errorf("Kind() = %v, want PassRender", p.Kind())
	}
	p.SetViewport(0, 0, 8, 8)
	p.SetScissor(-2, 0, 8, 8)
	p.SetPipeline(pipeline)
	p.SetStencilRef(1)
	p.Draw(6, 0)
	p.EndPass(nil)
	d.PopDebugGroup()

	if err := d.SubmitPass(p); err != nil {
		t.Fatalf("SubmitPass() error = %v", err)
	}
	if g.DrawCallCount != 1 || g.TriangleCount != 2 {
		t.Errorf("draws = %d, triangles = %d; want 1, 2", g.DrawCallCount, g.TriangleCount)
	}
}

func TestRenderPassLifecycle(t *testing.T) {
	d := createNoopDevice(t)
	color, depth := newTargets(t, d)

	p := d.CreateRenderPass(gfx.DefaultRenderPassDescriptor(color, depth))
	if err := d.SubmitPass(p); !errors.Is(err, gfx.ErrPassNotEnded) {
		t.Errorf("SubmitPass() before EndPass error = %v, want ErrPassNotEnded", err)
	}
	p.EndPass(nil)
	p.SetViewport(0, 0, 1, 1)
	if err := d.SubmitPass(p); !errors.Is(err, gfx.ErrPassEnded) {
		t.Errorf("SubmitPass() error = %v, want ErrPassEnded", err)
	}
	if err := d.SubmitPass(p); !errors.Is(err, gfx.ErrPassSubmitted) {
		t.Errorf("second SubmitPass() error = %v, want ErrPassSubmitted", err)
	}
}

func TestRenderPassDrawWithoutPipeline(t *testing.T) {
	d := createNoopDevice(t)
	color, depth := newTargets(t, d)

	p := d.CreateRenderPass(gfx.DefaultRenderPassDescriptor(color, depth))
	p.DrawIndexed(3, 0)
	p.EndPass(nil)
	if err := d.SubmitPass(p); !errors.Is(err, gfx.ErrNoPipeline) {
		t.Errorf("SubmitPass() error = %v, want ErrNoPipeline", err)
	}
}

func TestRenderPassCullAllSkipsDraws(t *testing.T) {
	d := createNoopDevice(t)
	color, depth := newTargets(t, d)
	ms := gfx.DefaultMegaState()
	ms.CullMode = gfx.CullFrontAndBack
	pipeline := testPipeline(t, d, ms)

	g := &gfx.DebugGroup{Name: "culled"}
	d.PushDebugGroup(g)
	p := d.CreateRenderPass(gfx.DefaultRenderPassDescriptor(color, depth))
	p.SetPipeline(pipeline)
	p.Draw(3, 0)
	p.EndPass(nil)
	d.PopDebugGroup()

	if err := d.SubmitPass(p); err != nil {
		t.Fatalf("SubmitPass() error = %v", err)
	}
	if g.DrawCallCount != 0 {
		t.Errorf("DrawCallCount = %d, want 0 when every face is culled", g.DrawCallCount)
	}
}

func TestRenderPassBindingsAndInputs(t *testing.T) {
	d := createNoopDevice(t)
	color, depth := newTargets(t, d)

	ub, err := d.CreateBuffer(64, gfx.BufferUsageUniform, gfx.BufferDynamic)
	if err != nil {
		t.Fatalf("CreateBuffer failed: %v", err)
	}
	layoutDesc := gfx.BindingLayoutDescriptor{NumUniformBuffers: 2, NumSamplers: 1}
	bindings, err := d.CreateBindings(gfx.BindingsDescriptor{
		BindingLayout: layoutDesc,
		UniformBufferBindings: []gfx.BufferBinding{
			{Buffer: ub, WordCount: 16},
			{Buffer: ub, WordOffset: 16, WordCount: 16},
		},
		SamplerBindings: []gfx.SamplerBinding{{}},
	})
	if err != nil {
		t.Fatalf("CreateBindings failed: %v", err)
	}
	il, err := d.CreateInputLayout(gfx.InputLayoutDescriptor{
		VertexBufferDescriptors: []*gfx.InputLayoutBufferDescriptor{{ByteStride: 8}},
		VertexAttributeDescriptors: []gfx.VertexAttributeDescriptor{
			{Location: 0, Format: gputypes.VertexFormatFloat32x2},
		},
		IndexBufferFormat: gputypes.IndexFormatUint16,
	})
	if err != nil {
		t.Fatalf("CreateInputLayout failed: %v", err)
	}
	vb, err := d.CreateBuffer(6, gfx.BufferUsageVertex, gfx.BufferStatic)
	if err != nil {
		t.Fatalf("CreateBuffer failed: %v", err)
	}
	ib, err := d.CreateBuffer(2, gfx.BufferUsageIndex, gfx.BufferStatic)
	if err != nil {
		t.Fatalf("CreateBuffer failed: %v", err)
	}
	is, err := d.CreateInputState(il, []*gfx.VertexBufferDescriptor{{Buffer: vb}}, &gfx.IndexBufferDescriptor{Buffer: ib})
	if err != nil {
		t.Fatalf("CreateInputState failed: %v", err)
	}
	pipeline, err := d.CreateRenderPipeline(gfx.RenderPipelineDescriptor{
		BindingLayouts: []gfx.BindingLayoutDescriptor{layoutDesc},
		InputLayout:    il,
		Program:        testProgram(t, d),
		MegaState:      gfx.DefaultMegaState(),
	})
	if err != nil {
		t.Fatalf("CreateRenderPipeline failed: %v", err)
	}

	g := &gfx.DebugGroup{Name: "bound"}
	d.PushDebugGroup(g)
	p := d.CreateRenderPass(gfx.DefaultRenderPassDescriptor(color, depth))
	p.SetPipeline(pipeline)
	p.SetBindings(0, bindings, []uint32{0})
	p.SetInputState(is)
	p.DrawIndexedInstanced(3, 0, 2)
	p.EndPass(nil)
	d.PopDebugGroup()
	if err := d.SubmitPass(p); err != nil {
		t.Fatalf("SubmitPass() error = %v", err)
	}
	if g.TextureBindCount != 0 {
		t.Errorf("TextureBindCount = %d, want 0 for placeholder textures", g.TextureBindCount)
	}
	if g.TriangleCount != 2 {
		t.Errorf("TriangleCount = %d, want 2", g.TriangleCount)
	}

	p = d.CreateRenderPass(gfx.DefaultRenderPassDescriptor(color, depth))
	p.SetPipeline(pipeline)
	p.SetBindings(1, bindings, nil)
	p.EndPass(nil)
	if err := d.SubmitPass(p); !errors.Is(err, gfx.ErrBindingIndex) {
		t.Errorf("SubmitPass() error = %v, want ErrBindingIndex", err)
	}
}

func TestRenderPassUseAfterDestroy(t *testing.T) {
	d := createNoopDevice(t)
	color, depth := newTargets(t, d)
	pipeline := testPipeline(t, d, gfx.DefaultMegaState())
	d.DestroyRenderPipeline(pipeline)

	p := d.CreateRenderPass(gfx.DefaultRenderPassDescriptor(color, depth))
	p.SetPipeline(pipeline)
	p.Draw(3, 0)
	p.EndPass(nil)
	if err := d.SubmitPass(p); !errors.Is(err, gfx.ErrUseAfterDestroy) {
		t.Errorf("SubmitPass() error = %v, want ErrUseAfterDestroy", err)
	}
	if len(d.Violations()) == 0 {
		t.Error("use after destroy was not recorded as a violation")
	}
}

func TestSubmitForeignPass(t *testing.T) {
	a := createNoopDevice(t)
	b := createNoopDevice(t)

	p := a.CreateHostAccessPass()
	if err := b.SubmitPass(p); !errors.Is(err, gfx.ErrForeignPass) {
		t.Errorf("SubmitPass() error = %v, want ErrForeignPass", err)
	}
}

func TestSwapChainResolveAndReadPixels(t *testing.T) {
	d := createNoopDevice(t)
	sc, err := NewSwapChain(d, 8, 8)
	if err != nil {
		t.Fatalf("NewSwapChain failed: %v", err)
	}
	defer sc.Destroy()
	if sc.Device() != d {
		t.Error("Device() does not return the owning device")
	}

	color, depth := newTargets(t, d)
	p := d.CreateRenderPass(gfx.DefaultRenderPassDescriptor(color, depth))
	p.EndPass(sc.OnscreenTexture())
	if err := d.SubmitPass(p); err != nil {
		t.Fatalf("SubmitPass() error = %v", err)
	}
	if err := sc.Present(); err != nil {
		t.Fatalf("Present() error = %v", err)
	}
	if sc.Frames() != 1 {
		t.Errorf("Frames() = %d, want 1", sc.Frames())
	}

	img, err := sc.ReadPixels()
	if err != nil {
		t.Fatalf("ReadPixels() error = %v", err)
	}
	if b := img.Bounds(); b.Dx() != 8 || b.Dy() != 8 {
		t.Errorf("ReadPixels() bounds = %v, want 8x8", b)
	}

	sc.ConfigureSwapChain(16, 4)
	if tex := sc.OnscreenTexture(); tex.Descriptor.Width != 16 || tex.Descriptor.Height != 4 {
		t.Errorf("onscreen = %dx%d, want 16x4", tex.Descriptor.Width, tex.Descriptor.Height)
	}
	for _, l := range d.CheckForLeaks() {
		if l.Name == "Onscreen" {
			t.Error("onscreen texture is reported as a leak")
		}
	}
}
