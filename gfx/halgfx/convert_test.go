// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package halgfx

import (
	"testing"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/gxview/gfx"
)

func TestCompareFunction(t *testing.T) {
	tests := []struct {
		in   gfx.CompareMode
		want gputypes.CompareFunction
	}{
		{gfx.CompareNever, gputypes.CompareFunctionNever},
		{gfx.CompareLess, gputypes.CompareFunctionLess},
		{gfx.CompareEqual, gputypes.CompareFunctionEqual},
		{gfx.CompareLEqual, gputypes.CompareFunctionLessEqual},
		{gfx.CompareGreater, gputypes.CompareFunctionGreater},
		{gfx.CompareNEqual, gputypes.CompareFunctionNotEqual},
		{gfx.CompareGEqual, gputypes.CompareFunctionGreaterEqual},
		{gfx.CompareAlways, gputypes.CompareFunctionAlways},
	}
	for _, tt := range tests {
		if got := compareFunction(tt.in); got != tt.want {
			t.Errorf("compareFunction(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestColorTargetOpaqueHasNoBlend(t *testing.T) {
	ct := colorTarget(gfx.DefaultMegaState(), gputypes.TextureFormatRGBA8Unorm)
	if ct.Blend != nil {
		t.Errorf("Blend = %+v, want nil for opaque replace", ct.Blend)
	}
	if ct.WriteMask != gputypes.ColorWriteMaskAll {
		t.Errorf("WriteMask = %v, want all", ct.WriteMask)
	}

	// An empty attachment list falls back to the default attachment.
	ct = colorTarget(gfx.MegaStateDescriptor{}, gputypes.TextureFormatRGBA8Unorm)
	if ct.Blend != nil || ct.WriteMask != gputypes.ColorWriteMaskAll {
		t.Errorf("colorTarget(empty) = %+v, want default attachment", ct)
	}
}

func TestColorTargetAlphaBlend(t *testing.T) {
	ms := gfx.DefaultMegaState()
	gfx.SetAttachmentStateSimple(&ms, gfx.AttachmentStateSimple{
		BlendMode:      gfx.BlendModeAdd,
		BlendSrcFactor: gfx.BlendSrcAlpha,
		BlendDstFactor: gfx.BlendOneMinusSrcAlpha,
	})
	ct := colorTarget(ms, gputypes.TextureFormatRGBA8Unorm)
	if ct.Blend == nil {
		t.Fatal("Blend = nil for alpha blending")
	}
	want := gputypes.BlendComponent{
		SrcFactor: gputypes.BlendFactorSrcAlpha,
		DstFactor: gputypes.BlendFactorOneMinusSrcAlpha,
		Operation: gputypes.BlendOperationAdd,
	}
	if ct.Blend.Color != want || ct.Blend.Alpha != want {
		t.Errorf("Blend = %+v, want color and alpha %+v", *ct.Blend, want)
	}
}

func TestBlendOperation(t *testing.T) {
	tests := []struct {
		in   gfx.BlendMode
		want gputypes.BlendOperation
	}{
		{gfx.BlendModeAdd, gputypes.BlendOperationAdd},
		{gfx.BlendModeSubtract, gputypes.BlendOperationSubtract},
		{gfx.BlendModeReverseSubtract, gputypes.BlendOperationReverseSubtract},
	}
	for _, tt := range tests {
		if got := blendOperation(tt.in); got != tt.want {
			t.Errorf("blendOperation(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}

func TestDepthStencilStateStencilInactive(t *testing.T) {
	ms := gfx.DefaultMegaState()
	ds := depthStencilState(ms, gputypes.TextureFormatDepth24PlusStencil8)

	if !ds.DepthWriteEnabled {
		t.Error("DepthWriteEnabled = false, want true")
	}
	if ds.DepthCompare != compareFunction(ms.DepthCompare) {
		t.Errorf("DepthCompare = %v, want %v", ds.DepthCompare, compareFunction(ms.DepthCompare))
	}
	if ds.StencilWriteMask != 0 {
		t.Errorf("StencilWriteMask = %#x, want 0 without stencil writes", ds.StencilWriteMask)
	}
	if ds.StencilFront.Compare != gputypes.CompareFunctionAlways {
		t.Errorf("StencilFront.Compare = %v, want Always", ds.StencilFront.Compare)
	}
}

func TestDepthStencilStateStencilWrite(t *testing.T) {
	ms := gfx.DefaultMegaState()
	ms.StencilWrite = true
	ms.StencilCompare = gfx.CompareAlways
	ms.StencilPassOp = gfx.StencilReplace
	ds := depthStencilState(ms, gputypes.TextureFormatDepth24PlusStencil8)

	if ds.StencilWriteMask != 0xFF {
		t.Errorf("StencilWriteMask = %#x, want 0xff", ds.StencilWriteMask)
	}
	for _, face := range []hal.StencilFaceState{ds.StencilFront, ds.StencilBack} {
		if face.PassOp != hal.StencilOperationReplace {
			t.Errorf("PassOp = %v, want Replace", face.PassOp)
		}
		if face.FailOp != hal.StencilOperationKeep {
			t.Errorf("FailOp = %v, want Keep", face.FailOp)
		}
	}
}

func TestPrimitiveState(t *testing.T) {
	tests := []struct {
		cull    gfx.CullMode
		front   gfx.FrontFace
		want    gputypes.CullMode
		face    gputypes.FrontFace
		cullAll bool
	}{
		{gfx.CullNone, gfx.FrontFaceCCW, gputypes.CullModeNone, gputypes.FrontFaceCCW, false},
		{gfx.CullFront, gfx.FrontFaceCW, gputypes.CullModeFront, gputypes.FrontFaceCW, false},
		{gfx.CullBack, gfx.FrontFaceCCW, gputypes.CullModeBack, gputypes.FrontFaceCCW, false},
		{gfx.CullFrontAndBack, gfx.FrontFaceCW, gputypes.CullModeNone, gputypes.FrontFaceCW, true},
	}
	for _, tt := range tests {
		ms := gfx.DefaultMegaState()
		ms.CullMode = tt.cull
		ms.FrontFace = tt.front
		ps, cullAll := primitiveState(ms)
		if ps.CullMode != tt.want || ps.FrontFace != tt.face || cullAll != tt.cullAll {
			t.Errorf("primitiveState(%v, %v) = %v, %v, %v; want %v, %v, %v",
				tt.cull, tt.front, ps.CullMode, ps.FrontFace, cullAll, tt.want, tt.face, tt.cullAll)
		}
		if ps.Topology != gputypes.PrimitiveTopologyTriangleList {
			t.Errorf("Topology = %v, want TriangleList", ps.Topology)
		}
	}
}

func TestSamplerModes(t *testing.T) {
	if got := addressMode(gfx.WrapMirror); got != gputypes.AddressModeMirrorRepeat {
		t.Errorf("addressMode(Mirror) = %v, want MirrorRepeat", got)
	}
	if got := addressMode(gfx.WrapClamp); got != gputypes.AddressModeClampToEdge {
		t.Errorf("addressMode(Clamp) = %v, want ClampToEdge", got)
	}
	if got := filterMode(gfx.TexFilterBilinear); got != gputypes.FilterModeLinear {
		t.Errorf("filterMode(Bilinear) = %v, want Linear", got)
	}
	if got := mipFilterMode(gfx.MipFilterNoMip); got != gputypes.FilterModeNearest {
		t.Errorf("mipFilterMode(NoMip) = %v, want Nearest", got)
	}
}

func TestBufferUsageAllowsUpload(t *testing.T) {
	for _, u := range []gfx.BufferUsage{gfx.BufferUsageIndex, gfx.BufferUsageVertex, gfx.BufferUsageUniform} {
		if bufferUsage(u)&gputypes.BufferUsageCopyDst == 0 {
			t.Errorf("bufferUsage(%v) lacks CopyDst", u)
		}
	}
}
