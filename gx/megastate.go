// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gx

import (
	"fmt"

	"github.com/gogpu/gxview/gfx"
)

var cullModes = map[CullMode]gfx.CullMode{
	CullNone:  gfx.CullNone,
	CullFront: gfx.CullFront,
	CullBack:  gfx.CullBack,
	CullAll:   gfx.CullFrontAndBack,
}

// TranslateCullMode maps a material cull mode to pipeline state.
// CullAll culls both faces.
func TranslateCullMode(c CullMode) gfx.CullMode {
	return cullModes[c]
}

var compareModes = map[CompareType]gfx.CompareMode{
	CompareNever:   gfx.CompareNever,
	CompareLess:    gfx.CompareLess,
	CompareEqual:   gfx.CompareEqual,
	CompareLEqual:  gfx.CompareLEqual,
	CompareGreater: gfx.CompareGreater,
	CompareNEqual:  gfx.CompareNEqual,
	CompareGEqual:  gfx.CompareGEqual,
	CompareAlways:  gfx.CompareAlways,
}

// TranslateCompareType maps a comparison to its pipeline equivalent.
func TranslateCompareType(c CompareType) gfx.CompareMode {
	return compareModes[c]
}

var commonBlendFactors = map[BlendFactor]gfx.BlendFactor{
	BlendZero:        gfx.BlendZero,
	BlendOne:         gfx.BlendOne,
	BlendSrcAlpha:    gfx.BlendSrcAlpha,
	BlendInvSrcAlpha: gfx.BlendOneMinusSrcAlpha,
	BlendDstAlpha:    gfx.BlendDstAlpha,
	BlendInvDstAlpha: gfx.BlendOneMinusDstAlpha,
}

// translateBlendSrcFactor maps a source factor. The color factors of a
// source refer to the destination color.
func translateBlendSrcFactor(f BlendFactor) (gfx.BlendFactor, error) {
	switch f {
	case BlendSrcClr:
		return gfx.BlendDstColor, nil
	case BlendInvSrcClr:
		return gfx.BlendOneMinusDstColor, nil
	}
	if v, ok := commonBlendFactors[f]; ok {
		return v, nil
	}
	return 0, fmt.Errorf("%w: blend source factor %v", ErrInvalidEnum, f)
}

func translateBlendDstFactor(f BlendFactor) (gfx.BlendFactor, error) {
	switch f {
	case BlendSrcClr:
		return gfx.BlendSrcColor, nil
	case BlendInvSrcClr:
		return gfx.BlendOneMinusSrcColor, nil
	}
	if v, ok := commonBlendFactors[f]; ok {
		return v, nil
	}
	return 0, fmt.Errorf("%w: blend destination factor %v", ErrInvalidEnum, f)
}

// TranslateMegaState derives the pipeline state of a material. Depth
// comparisons are reversed for a reversed-Z depth buffer; a disabled
// depth test becomes an always-pass compare. Logic blending is not
// supported and falls back to opaque replace with a warning.
func TranslateMegaState(m *Material) (gfx.MegaStateDescriptor, error) {
	ms := gfx.DefaultMegaState()

	if !m.CullMode.Valid() {
		return ms, compileErr(m, "", "CullMode", ErrInvalidEnum)
	}
	ms.CullMode = TranslateCullMode(m.CullMode)
	ms.DepthWrite = m.RopInfo.DepthWrite
	if m.RopInfo.DepthTest {
		if !m.RopInfo.DepthFunc.Valid() {
			return ms, compileErr(m, "rop", "DepthFunc", ErrInvalidEnum)
		}
		ms.DepthCompare = gfx.ReverseDepthForCompareMode(TranslateCompareType(m.RopInfo.DepthFunc))
	} else {
		ms.DepthCompare = gfx.CompareAlways
	}
	ms.FrontFace = gfx.FrontFaceCW

	blend := m.RopInfo.BlendMode
	simple := gfx.AttachmentStateSimple{
		BlendMode:      gfx.BlendModeAdd,
		BlendSrcFactor: gfx.BlendOne,
		BlendDstFactor: gfx.BlendZero,
	}
	switch blend.Type {
	case BlendNone:
	case BlendBlend:
		src, err := translateBlendSrcFactor(blend.SrcFactor)
		if err != nil {
			return ms, compileErr(m, "rop", "SrcFactor", err)
		}
		dst, err := translateBlendDstFactor(blend.DstFactor)
		if err != nil {
			return ms, compileErr(m, "rop", "DstFactor", err)
		}
		simple.BlendSrcFactor, simple.BlendDstFactor = src, dst
	case BlendSubtract:
		simple = gfx.AttachmentStateSimple{
			BlendMode:      gfx.BlendModeReverseSubtract,
			BlendSrcFactor: gfx.BlendOne,
			BlendDstFactor: gfx.BlendOne,
		}
	default:
		Logger().Warn("gx: unsupported blend mode, using opaque replace",
			"material", m.Name, "type", blend.Type.String(), "logicOp", blend.LogicOp.String())
	}
	gfx.SetAttachmentStateSimple(&ms, simple)
	return ms, nil
}
