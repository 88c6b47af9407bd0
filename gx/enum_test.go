// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gx

import (
	"fmt"
	"testing"
)

func TestEnumString(t *testing.T) {
	tests := []struct {
		v    fmt.Stringer
		want string
	}{
		{CullBack, "BACK"},
		{CullMode(9), "CullMode(9)"},
		{ColorSrcVtx, "VTX"},
		{PnMtx(2), "PNMTX2"},
		{TexMtx(3), "TEXMTX3"},
		{TexGenIdentity, "IDENTITY"},
		{TexGenMatrix(31), "TexGenMatrix(31)"},
		{PTTexMtx(19), "PTTEXMTX19"},
		{PTIdentity, "PTIDENTITY"},
		{PostTexGenMatrix(65), "PostTexGenMatrix(65)"},
		{IndTexMtxS1, "S1"},
		{IndTexStage2, "INDTEXSTAGE2"},
		{KCSel3_8, "3_8"},
		{KCSelK2, "K2"},
		{KCSelK1B, "K1_B"},
		{VtxTex3MtxIdx, "TEX3MTXIDX"},
		{VtxClr1, "CLR1"},
		{TexCoordNull, "TEXCOORD_NULL"},
		{TexCoordID(4), "TEXCOORD4"},
		{TexMapNull, "TEXMAP_NULL"},
		{SpotRing1, "RING1"},
	}
	for _, tt := range tests {
		if got := tt.v.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestEnumValid(t *testing.T) {
	tests := []struct {
		name string
		got  bool
		want bool
	}{
		{"CullAll", CullAll.Valid(), true},
		{"CullMode(4)", CullMode(4).Valid(), false},
		{"TexMtx(9)", TexMtx(9).Valid(), true},
		{"TexGenMatrix(61)", TexGenMatrix(61).Valid(), false},
		{"PTTexMtx(20)", PTTexMtx(20).Valid(), false},
		{"IndTexMtxID(4)", IndTexMtxID(4).Valid(), false},
		{"IndTexStageID(4)", IndTexStageID(4).Valid(), false},
		{"TevOp(2)", TevOp(2).Valid(), false},
		{"TevOpCompRGB8EQ", TevOpCompRGB8EQ.Valid(), true},
		{"KonstColorSel(8)", KonstColorSel(8).Valid(), false},
		{"KonstColorSel(31)", KonstColorSel(31).Valid(), true},
		{"TexCoordID(8)", TexCoordID(8).Valid(), false},
		{"TexMapNull", TexMapNull.Valid(), true},
		{"VertexAttribute(40)", VertexAttribute(40).Valid(), false},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s.Valid() = %v, want %v", tt.name, tt.got, tt.want)
		}
	}
}

func TestTevOpIsCompare(t *testing.T) {
	if TevOpAdd.IsCompare() || TevOpSub.IsCompare() {
		t.Error("add/sub reported as compare")
	}
	for op := TevOpCompR8GT; op <= TevOpCompRGB8EQ; op++ {
		if !op.IsCompare() {
			t.Errorf("%v.IsCompare() = false", op)
		}
	}
}

func TestIndTexWrapModulus(t *testing.T) {
	tests := []struct {
		w    IndTexWrap
		want int
	}{
		{IndTexWrapOff, 0},
		{IndTexWrap256, 256},
		{IndTexWrap16, 16},
		{IndTexWrap0, 0},
	}
	for _, tt := range tests {
		if got := tt.w.Modulus(); got != tt.want {
			t.Errorf("%v.Modulus() = %d, want %d", tt.w, got, tt.want)
		}
	}
}

func TestFlagResolve(t *testing.T) {
	if !FlagDefault.Resolve() || !FlagTrue.Resolve() || FlagFalse.Resolve() {
		t.Error("Flag.Resolve: default and true must resolve to true, false to false")
	}
	if FlagOf(false) != FlagFalse || FlagOf(true) != FlagTrue {
		t.Error("FlagOf round trip failed")
	}
}
