// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package halgfx

import (
	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/gxview/gfx"
)

func compareFunction(m gfx.CompareMode) gputypes.CompareFunction {
	switch m {
	case gfx.CompareNever:
		return gputypes.CompareFunctionNever
	case gfx.CompareLess:
		return gputypes.CompareFunctionLess
	case gfx.CompareEqual:
		return gputypes.CompareFunctionEqual
	case gfx.CompareLEqual:
		return gputypes.CompareFunctionLessEqual
	case gfx.CompareGreater:
		return gputypes.CompareFunctionGreater
	case gfx.CompareNEqual:
		return gputypes.CompareFunctionNotEqual
	case gfx.CompareGEqual:
		return gputypes.CompareFunctionGreaterEqual
	default:
		return gputypes.CompareFunctionAlways
	}
}

func blendFactor(f gfx.BlendFactor) gputypes.BlendFactor {
	switch f {
	case gfx.BlendZero:
		return gputypes.BlendFactorZero
	case gfx.BlendSrcColor:
		return gputypes.BlendFactorSrc
	case gfx.BlendOneMinusSrcColor:
		return gputypes.BlendFactorOneMinusSrc
	case gfx.BlendDstColor:
		return gputypes.BlendFactorDst
	case gfx.BlendOneMinusDstColor:
		return gputypes.BlendFactorOneMinusDst
	case gfx.BlendSrcAlpha:
		return gputypes.BlendFactorSrcAlpha
	case gfx.BlendOneMinusSrcAlpha:
		return gputypes.BlendFactorOneMinusSrcAlpha
	case gfx.BlendDstAlpha:
		return gputypes.BlendFactorDstAlpha
	case gfx.BlendOneMinusDstAlpha:
		return gputypes.BlendFactorOneMinusDstAlpha
	default:
		return gputypes.BlendFactorOne
	}
}

func blendOperation(m gfx.BlendMode) gputypes.BlendOperation {
	switch m {
	case gfx.BlendModeSubtract:
		return gputypes.BlendOperationSubtract
	case gfx.BlendModeReverseSubtract:
		return gputypes.BlendOperationReverseSubtract
	default:
		return gputypes.BlendOperationAdd
	}
}

func blendComponent(c gfx.ChannelBlendState) gputypes.BlendComponent {
	return gputypes.BlendComponent{
		SrcFactor: blendFactor(c.BlendSrcFactor),
		DstFactor: blendFactor(c.BlendDstFactor),
		Operation: blendOperation(c.BlendMode),
	}
}

// colorTarget converts the first attachment state. Opaque replace on both
// channels leaves Blend nil so the driver can skip blending entirely.
func colorTarget(ms gfx.MegaStateDescriptor, format gputypes.TextureFormat) gputypes.ColorTargetState {
	att := gfx.DefaultMegaState().AttachmentsState[0]
	if len(ms.AttachmentsState) > 0 {
		att = ms.AttachmentsState[0]
	}
	target := gputypes.ColorTargetState{Format: format, WriteMask: att.ColorWriteMask}
	if !att.RGBBlendState.IsOpaqueReplace() || !att.AlphaBlendState.IsOpaqueReplace() {
		target.Blend = &gputypes.BlendState{
			Color: blendComponent(att.RGBBlendState),
			Alpha: blendComponent(att.AlphaBlendState),
		}
	}
	return target
}

func stencilOperation(op gfx.StencilOp) hal.StencilOperation {
	switch op {
	case gfx.StencilZero:
		return hal.StencilOperationZero
	case gfx.StencilReplace:
		return hal.StencilOperationReplace
	case gfx.StencilInvert:
		return hal.StencilOperationInvert
	case gfx.StencilIncrementClamp:
		return hal.StencilOperationIncrementClamp
	case gfx.StencilDecrementClamp:
		return hal.StencilOperationDecrementClamp
	case gfx.StencilIncrementWrap:
		return hal.StencilOperationIncrementWrap
	case gfx.StencilDecrementWrap:
		return hal.StencilOperationDecrementWrap
	default:
		return hal.StencilOperationKeep
	}
}

// depthStencilState converts depth and stencil state. Stencil is only
// tested when the mega state writes it; otherwise it always passes and
// is left untouched.
func depthStencilState(ms gfx.MegaStateDescriptor, format gputypes.TextureFormat) *hal.DepthStencilState {
	face := hal.StencilFaceState{
		Compare:     gputypes.CompareFunctionAlways,
		FailOp:      hal.StencilOperationKeep,
		DepthFailOp: hal.StencilOperationKeep,
		PassOp:      hal.StencilOperationKeep,
	}
	var writeMask uint32
	if ms.StencilWrite {
		face.Compare = compareFunction(ms.StencilCompare)
		face.PassOp = stencilOperation(ms.StencilPassOp)
		writeMask = 0xFF
	}
	return &hal.DepthStencilState{
		Format:            format,
		DepthWriteEnabled: ms.DepthWrite,
		DepthCompare:      compareFunction(ms.DepthCompare),
		StencilFront:      face,
		StencilBack:       face,
		StencilReadMask:   0xFF,
		StencilWriteMask:  writeMask,
	}
}

// primitiveState converts cull and winding. The second result reports
// that every triangle is culled and draws must be dropped.
func primitiveState(ms gfx.MegaStateDescriptor) (gputypes.PrimitiveState, bool) {
	ps := gputypes.PrimitiveState{
		Topology: gputypes.PrimitiveTopologyTriangleList,
		CullMode: gputypes.CullModeNone,
	}
	if ms.FrontFace == gfx.FrontFaceCW {
		ps.FrontFace = gputypes.FrontFaceCW
	} else {
		ps.FrontFace = gputypes.FrontFaceCCW
	}
	switch ms.CullMode {
	case gfx.CullFront:
		ps.CullMode = gputypes.CullModeFront
	case gfx.CullBack:
		ps.CullMode = gputypes.CullModeBack
	case gfx.CullFrontAndBack:
		return ps, true
	}
	return ps, false
}

func addressMode(w gfx.WrapMode) gputypes.AddressMode {
	switch w {
	case gfx.WrapRepeat:
		return gputypes.AddressModeRepeat
	case gfx.WrapMirror:
		return gputypes.AddressModeMirrorRepeat
	default:
		return gputypes.AddressModeClampToEdge
	}
}

func filterMode(f gfx.TexFilterMode) gputypes.FilterMode {
	if f == gfx.TexFilterBilinear {
		return gputypes.FilterModeLinear
	}
	return gputypes.FilterModeNearest
}

func mipFilterMode(f gfx.MipFilterMode) gputypes.FilterMode {
	if f == gfx.MipFilterLinear {
		return gputypes.FilterModeLinear
	}
	return gputypes.FilterModeNearest
}

func loadOp(d gfx.LoadDisposition) gputypes.LoadOp {
	if d == gfx.LoadLoad {
		return gputypes.LoadOpLoad
	}
	return gputypes.LoadOpClear
}

func bufferUsage(u gfx.BufferUsage) gputypes.BufferUsage {
	switch u {
	case gfx.BufferUsageIndex:
		return gputypes.BufferUsageIndex | gputypes.BufferUsageCopyDst
	case gfx.BufferUsageVertex:
		return gputypes.BufferUsageVertex | gputypes.BufferUsageCopyDst
	default:
		return gputypes.BufferUsageUniform | gputypes.BufferUsageCopyDst
	}
}

func stepMode(f gfx.VertexBufferFrequency) gputypes.VertexStepMode {
	if f == gfx.PerInstance {
		return gputypes.VertexStepModeInstance
	}
	return gputypes.VertexStepModeVertex
}
