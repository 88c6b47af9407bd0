// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gfx

import (
	"fmt"

	"github.com/gogpu/gputypes"
)

// CompareMode is a depth or stencil comparison function.
type CompareMode uint8

const (
	CompareNever CompareMode = iota
	CompareLess
	CompareEqual
	CompareLEqual
	CompareGreater
	CompareNEqual
	CompareGEqual
	CompareAlways
)

var compareModeNames = [...]string{
	CompareNever:   "Never",
	CompareLess:    "Less",
	CompareEqual:   "Equal",
	CompareLEqual:  "LEqual",
	CompareGreater: "Greater",
	CompareNEqual:  "NEqual",
	CompareGEqual:  "GEqual",
	CompareAlways:  "Always",
}

func (m CompareMode) String() string {
	if int(m) < len(compareModeNames) {
		return compareModeNames[m]
	}
	return fmt.Sprintf("CompareMode(%d)", int(m))
}

// ReverseDepthForCompareMode flips ordering comparisons for a reversed-Z
// depth buffer (1.0 at the near plane). Equality tests are unchanged.
func ReverseDepthForCompareMode(m CompareMode) CompareMode {
	switch m {
	case CompareLess:
		return CompareGreater
	case CompareLEqual:
		return CompareGEqual
	case CompareGreater:
		return CompareLess
	case CompareGEqual:
		return CompareLEqual
	default:
		return m
	}
}

// FrontFace is the winding order considered front-facing.
type FrontFace uint8

const (
	FrontFaceCCW FrontFace = iota
	FrontFaceCW
)

func (f FrontFace) String() string {
	switch f {
	case FrontFaceCCW:
		return "CCW"
	case FrontFaceCW:
		return "CW"
	default:
		return fmt.Sprintf("FrontFace(%d)", int(f))
	}
}

// CullMode selects which faces are discarded before rasterization.
// CullFrontAndBack discards every triangle; backends without native
// support skip the draw instead.
type CullMode uint8

const (
	CullNone CullMode = iota
	CullFront
	CullBack
	CullFrontAndBack
)

var cullModeNames = [...]string{
	CullNone:         "None",
	CullFront:        "Front",
	CullBack:         "Back",
	CullFrontAndBack: "FrontAndBack",
}

func (c CullMode) String() string {
	if int(c) < len(cullModeNames) {
		return cullModeNames[c]
	}
	return fmt.Sprintf("CullMode(%d)", int(c))
}

// BlendFactor is a source or destination blend multiplier.
type BlendFactor uint8

const (
	BlendZero BlendFactor = iota
	BlendOne
	BlendSrcColor
	BlendOneMinusSrcColor
	BlendDstColor
	BlendOneMinusDstColor
	BlendSrcAlpha
	BlendOneMinusSrcAlpha
	BlendDstAlpha
	BlendOneMinusDstAlpha
)

var blendFactorNames = [...]string{
	BlendZero:             "Zero",
	BlendOne:              "One",
	BlendSrcColor:         "SrcColor",
	BlendOneMinusSrcColor: "OneMinusSrcColor",
	BlendDstColor:         "DstColor",
	BlendOneMinusDstColor: "OneMinusDstColor",
	BlendSrcAlpha:         "SrcAlpha",
	BlendOneMinusSrcAlpha: "OneMinusSrcAlpha",
	BlendDstAlpha:         "DstAlpha",
	BlendOneMinusDstAlpha: "OneMinusDstAlpha",
}

func (f BlendFactor) String() string {
	if int(f) < len(blendFactorNames) {
		return blendFactorNames[f]
	}
	return fmt.Sprintf("BlendFactor(%d)", int(f))
}

// BlendMode is the blend equation.
type BlendMode uint8

const (
	BlendModeAdd BlendMode = iota
	BlendModeSubtract
	BlendModeReverseSubtract
)

func (m BlendMode) String() string {
	switch m {
	case BlendModeAdd:
		return "Add"
	case BlendModeSubtract:
		return "Subtract"
	case BlendModeReverseSubtract:
		return "ReverseSubtract"
	default:
		return fmt.Sprintf("BlendMode(%d)", int(m))
	}
}

// StencilOp is the operation applied to the stencil buffer when a test passes.
type StencilOp uint8

const (
	StencilKeep StencilOp = iota
	StencilZero
	StencilReplace
	StencilInvert
	StencilIncrementClamp
	StencilDecrementClamp
	StencilIncrementWrap
	StencilDecrementWrap
)

// ChannelBlendState is the blend equation for either RGB or alpha.
type ChannelBlendState struct {
	BlendMode      BlendMode
	BlendSrcFactor BlendFactor
	BlendDstFactor BlendFactor
}

// AttachmentState is the per-attachment blend and write-mask state.
type AttachmentState struct {
	ColorWriteMask  gputypes.ColorWriteMask
	RGBBlendState   ChannelBlendState
	AlphaBlendState ChannelBlendState
}

// MegaStateDescriptor bundles the fixed-function state of a render pipeline.
// It is derived once per material and never edited afterwards.
type MegaStateDescriptor struct {
	AttachmentsState []AttachmentState
	BlendConstant    gputypes.Color
	DepthCompare     CompareMode
	DepthWrite       bool
	StencilCompare   CompareMode
	StencilWrite     bool
	StencilPassOp    StencilOp
	CullMode         CullMode
	FrontFace        FrontFace
	PolygonOffset    bool
}

// DefaultMegaState returns the default pipeline state: opaque replace
// blending, reversed-Z LEqual depth test with writes, no stencil, no culling.
func DefaultMegaState() MegaStateDescriptor {
	return MegaStateDescriptor{
		AttachmentsState: []AttachmentState{{
			ColorWriteMask:  gputypes.ColorWriteMaskAll,
			RGBBlendState:   ChannelBlendState{BlendMode: BlendModeAdd, BlendSrcFactor: BlendOne, BlendDstFactor: BlendZero},
			AlphaBlendState: ChannelBlendState{BlendMode: BlendModeAdd, BlendSrcFactor: BlendOne, BlendDstFactor: BlendZero},
		}},
		BlendConstant:  gputypes.Color{},
		DepthCompare:   ReverseDepthForCompareMode(CompareLEqual),
		DepthWrite:     true,
		StencilCompare: CompareNever,
		StencilWrite:   false,
		StencilPassOp:  StencilKeep,
		CullMode:       CullNone,
		FrontFace:      FrontFaceCCW,
		PolygonOffset:  false,
	}
}

// Clone returns a deep copy of the descriptor.
func (m MegaStateDescriptor) Clone() MegaStateDescriptor {
	out := m
	out.AttachmentsState = append([]AttachmentState(nil), m.AttachmentsState...)
	return out
}

// Equal reports whether two descriptors describe identical state.
func (m MegaStateDescriptor) Equal(o MegaStateDescriptor) bool {
	if len(m.AttachmentsState) != len(o.AttachmentsState) {
		return false
	}
	for i := range m.AttachmentsState {
		if m.AttachmentsState[i] != o.AttachmentsState[i] {
			return false
		}
	}
	return m.BlendConstant == o.BlendConstant &&
		m.DepthCompare == o.DepthCompare &&
		m.DepthWrite == o.DepthWrite &&
		m.StencilCompare == o.StencilCompare &&
		m.StencilWrite == o.StencilWrite &&
		m.StencilPassOp == o.StencilPassOp &&
		m.CullMode == o.CullMode &&
		m.FrontFace == o.FrontFace &&
		m.PolygonOffset == o.PolygonOffset
}

// AttachmentStateSimple sets the same blend equation on RGB and alpha.
type AttachmentStateSimple struct {
	BlendMode      BlendMode
	BlendSrcFactor BlendFactor
	BlendDstFactor BlendFactor
}

// SetAttachmentStateSimple writes s into the first attachment of dst,
// creating the default attachment when dst has none.
func SetAttachmentStateSimple(dst *MegaStateDescriptor, s AttachmentStateSimple) {
	if len(dst.AttachmentsState) == 0 {
		dst.AttachmentsState = DefaultMegaState().AttachmentsState
	}
	cbs := ChannelBlendState{BlendMode: s.BlendMode, BlendSrcFactor: s.BlendSrcFactor, BlendDstFactor: s.BlendDstFactor}
	dst.AttachmentsState[0].RGBBlendState = cbs
	dst.AttachmentsState[0].AlphaBlendState = cbs
}

// IsOpaqueReplace reports whether a channel writes the source unchanged.
func (c ChannelBlendState) IsOpaqueReplace() bool {
	return c.BlendMode == BlendModeAdd && c.BlendSrcFactor == BlendOne && c.BlendDstFactor == BlendZero
}
