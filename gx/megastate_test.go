// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gx

import (
	"errors"
	"testing"

	"github.com/gogpu/gxview/gfx"
)

func ropMaterial(rop RopInfo) *Material {
	m := texturedMaterial()
	m.RopInfo = rop
	return m
}

func TestTranslateMegaStateBlend(t *testing.T) {
	tests := []struct {
		name  string
		blend BlendState
		want  gfx.ChannelBlendState
	}{
		{
			"none",
			BlendState{Type: BlendNone},
			gfx.ChannelBlendState{BlendMode: gfx.BlendModeAdd, BlendSrcFactor: gfx.BlendOne, BlendDstFactor: gfx.BlendZero},
		},
		{
			"alpha",
			BlendState{Type: BlendBlend, SrcFactor: BlendSrcAlpha, DstFactor: BlendInvSrcAlpha},
			gfx.ChannelBlendState{BlendMode: gfx.BlendModeAdd, BlendSrcFactor: gfx.BlendSrcAlpha, BlendDstFactor: gfx.BlendOneMinusSrcAlpha},
		},
		{
			"color factors",
			BlendState{Type: BlendBlend, SrcFactor: BlendSrcClr, DstFactor: BlendInvSrcClr},
			gfx.ChannelBlendState{BlendMode: gfx.BlendModeAdd, BlendSrcFactor: gfx.BlendDstColor, BlendDstFactor: gfx.BlendOneMinusSrcColor},
		},
		{
			"subtract",
			BlendState{Type: BlendSubtract},
			gfx.ChannelBlendState{BlendMode: gfx.BlendModeReverseSubtract, BlendSrcFactor: gfx.BlendOne, BlendDstFactor: gfx.BlendOne},
		},
		{
			"logic falls back to opaque",
			BlendState{Type: BlendLogic, LogicOp: LogicXor},
			gfx.ChannelBlendState{BlendMode: gfx.BlendModeAdd, BlendSrcFactor: gfx.BlendOne, BlendDstFactor: gfx.BlendZero},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ms, err := TranslateMegaState(ropMaterial(RopInfo{BlendMode: tt.blend}))
			if err != nil {
				t.Fatalf("TranslateMegaState: %v", err)
			}
			att := ms.AttachmentsState[0]
			if att.RGBBlendState != tt.want {
				t.Errorf("RGB blend = %+v, want %+v", att.RGBBlendState, tt.want)
			}
			if att.AlphaBlendState != tt.want {
				t.Errorf("alpha blend = %+v, want %+v", att.AlphaBlendState, tt.want)
			}
		})
	}
}

func TestTranslateMegaStateDepth(t *testing.T) {
	ms, err := TranslateMegaState(ropMaterial(RopInfo{DepthTest: true, DepthFunc: CompareLess, DepthWrite: true}))
	if err != nil {
		t.Fatal(err)
	}
	if ms.DepthCompare != gfx.CompareGreater {
		t.Errorf("DepthCompare = %v, want reversed Greater", ms.DepthCompare)
	}
	if !ms.DepthWrite {
		t.Error("DepthWrite = false, want true")
	}

	ms, err = TranslateMegaState(ropMaterial(RopInfo{DepthTest: false, DepthFunc: CompareLess}))
	if err != nil {
		t.Fatal(err)
	}
	if ms.DepthCompare != gfx.CompareAlways {
		t.Errorf("DepthCompare without test = %v, want Always", ms.DepthCompare)
	}
	if ms.DepthWrite {
		t.Error("DepthWrite = true, want false")
	}

	// An invalid compare is ignored while the test is off.
	if _, err := TranslateMegaState(ropMaterial(RopInfo{DepthFunc: CompareType(42)})); err != nil {
		t.Errorf("disabled depth test with invalid func: %v", err)
	}
	if _, err := TranslateMegaState(ropMaterial(RopInfo{DepthTest: true, DepthFunc: CompareType(42)})); !errors.Is(err, ErrInvalidEnum) {
		t.Errorf("invalid depth func err = %v, want ErrInvalidEnum", err)
	}
}

func TestTranslateMegaStateCull(t *testing.T) {
	tests := []struct {
		in   CullMode
		want gfx.CullMode
	}{
		{CullNone, gfx.CullNone},
		{CullFront, gfx.CullFront},
		{CullBack, gfx.CullBack},
		{CullAll, gfx.CullFrontAndBack},
	}
	for _, tt := range tests {
		m := texturedMaterial()
		m.CullMode = tt.in
		ms, err := TranslateMegaState(m)
		if err != nil {
			t.Fatalf("%v: %v", tt.in, err)
		}
		if ms.CullMode != tt.want {
			t.Errorf("CullMode(%v) = %v, want %v", tt.in, ms.CullMode, tt.want)
		}
		if ms.FrontFace != gfx.FrontFaceCW {
			t.Errorf("FrontFace = %v, want CW", ms.FrontFace)
		}
	}
}

func TestTranslateMegaStateInvalidFactor(t *testing.T) {
	_, err := TranslateMegaState(ropMaterial(RopInfo{BlendMode: BlendState{Type: BlendBlend, SrcFactor: BlendOne, DstFactor: BlendFactor(99)}}))
	var ce *CompileError
	if !errors.As(err, &ce) {
		t.Fatalf("err = %v, want *CompileError", err)
	}
	if ce.Field != "DstFactor" {
		t.Errorf("Field = %q, want DstFactor", ce.Field)
	}
	if !errors.Is(err, ErrInvalidEnum) {
		t.Errorf("err = %v, want ErrInvalidEnum", err)
	}
}
