// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gx

import (
	"errors"
	"fmt"
	"strings"
	"testing"

	"github.com/gogpu/gputypes"
)

func unlitChannel(src ColorSrc) ColorChannelControl {
	return ColorChannelControl{
		LightingEnabled:     false,
		MatColorSource:      src,
		AmbColorSource:      src,
		DiffuseFunction:     DiffNone,
		AttenuationFunction: AttnNone,
	}
}

// texturedMaterial is one unlit vertex-colored channel, one pass-through
// position texgen, and one stage outputting the texture color with
// constant alpha 1.0.
func texturedMaterial() *Material {
	ch := unlitChannel(ColorSrcVtx)
	return &Material{
		Name:          "textured",
		CullMode:      CullBack,
		LightChannels: []LightChannelControl{{ColorChannel: ch, AlphaChannel: ch}},
		TexGens: []TexGen{{
			Type:       TexGenSRTG,
			Source:     TexGenSrcPos,
			Matrix:     TexGenIdentity,
			PostMatrix: PTIdentity,
		}},
		TevStages: []TevStage{{
			ColorInA: CCZero, ColorInB: CCZero, ColorInC: CCZero, ColorInD: CCTexC,
			ColorOp: TevOpAdd, ColorBias: TevBiasZero, ColorScale: TevScale1, ColorClamp: true, ColorRegID: RegPrev,
			AlphaInA: CAZero, AlphaInB: CAZero, AlphaInC: CAZero, AlphaInD: CAKonst,
			AlphaOp: TevOpAdd, AlphaBias: TevBiasZero, AlphaScale: TevScale1, AlphaClamp: true, AlphaRegID: RegPrev,
			TexCoordID:    TexCoord0,
			TexMap:        TexMap0,
			ChannelID:     RasColor0A0,
			KonstColorSel: KCSel1,
			KonstAlphaSel: KASel1,
		}},
		AlphaTest: AlphaTest{Op: AlphaOpAnd, CompareA: CompareAlways, CompareB: CompareAlways},
		RopInfo: RopInfo{
			BlendMode:  BlendState{Type: BlendNone, SrcFactor: BlendOne, DstFactor: BlendZero},
			DepthTest:  true,
			DepthFunc:  CompareLEqual,
			DepthWrite: true,
		},
	}
}

func mustCompile(t *testing.T, m *Material, h *Hacks) *Program {
	t.Helper()
	p, err := Compile(m, h)
	if err != nil {
		t.Fatalf("Compile(%q) error: %v", m.Name, err)
	}
	return p
}

func TestCompileTexturedMaterial(t *testing.T) {
	p := mustCompile(t, texturedMaterial(), nil)

	if n := strings.Count(p.FragmentSource, "textureSampleBias("); n != 1 {
		t.Errorf("fragment samples %d textures, want 1", n)
	}
	if p.TextureSamples != 1 {
		t.Errorf("TextureSamples = %d, want 1", p.TextureSamples)
	}
	if strings.Contains(p.FragmentSource, "discard") {
		t.Error("fragment discards although the alpha test always passes")
	}
	if !strings.Contains(p.FragmentSource, "u_Texture0, u_Sampler0, t_TexCoord") {
		t.Error("fragment does not sample texture 0 at the stage coordinate")
	}
	if !strings.Contains(p.FragmentSource, "t_TevD = vec4<f32>(t_Sample0.rgb, (8.0/8.0));") {
		t.Errorf("fragment D operand not texture color with konst alpha:\n%s", p.FragmentSource)
	}
	if !strings.Contains(p.VertexSource, "vout.v_TexCoord0 = vec3<f32>(vec4<f32>(vin.a_Position, 1.0).xy, 1.0);") {
		t.Errorf("vertex texgen 0 is not a pass-through of position:\n%s", p.VertexSource)
	}

	want := []VertexAttribute{VtxPos, VtxPnMtxIdx, VtxClr0}
	if fmt.Sprint(p.VertexAttributes) != fmt.Sprint(want) {
		t.Errorf("VertexAttributes = %v, want %v", p.VertexAttributes, want)
	}
	if strings.Contains(p.VertexSource, "a_Normal") {
		t.Error("vertex stage declares a normal it never reads")
	}
}

func TestCompileDeterministic(t *testing.T) {
	m := texturedMaterial()
	m.IndTexStages = []IndTexStage{{TexCoordID: TexCoord0, Texture: 1, ScaleS: IndTexScale2, ScaleT: IndTexScale4}}
	m.TevStages[0].IndTexMatrix = IndTexMtx0
	m.TevStages[0].IndTexBiasSel = IndTexBiasST

	a := mustCompile(t, m, nil)
	b := mustCompile(t, m, nil)
	if a.VertexSource != b.VertexSource {
		t.Error("vertex source differs between compiles")
	}
	if a.FragmentSource != b.FragmentSource {
		t.Error("fragment source differs between compiles")
	}
	if !a.MegaState.Equal(b.MegaState) {
		t.Errorf("mega state differs: %+v vs %+v", a.MegaState, b.MegaState)
	}
}

func TestCompileAlphaTestDiscard(t *testing.T) {
	m := texturedMaterial()
	m.AlphaTest = AlphaTest{Op: AlphaOpAnd, CompareA: CompareAlways, CompareB: CompareNever}
	p := mustCompile(t, m, nil)

	if !strings.Contains(p.FragmentSource, "discard;") {
		t.Error("AND(ALWAYS, NEVER) does not discard")
	}
	if !strings.Contains(p.FragmentSource, "let t_AlphaTestB: bool = false;") {
		t.Error("NEVER compare not folded to false")
	}
	if AlphaTestAlwaysPasses(m.AlphaTest) {
		t.Error("AlphaTestAlwaysPasses = true, want false")
	}
	for _, alpha := range []float32{0, 0.5, 1} {
		if EvalAlphaTest(m.AlphaTest, alpha) {
			t.Errorf("EvalAlphaTest(alpha=%v) = true, want false", alpha)
		}
	}
}

func TestCompileAlphaTestReference(t *testing.T) {
	m := texturedMaterial()
	m.AlphaTest = AlphaTest{Op: AlphaOpOr, CompareA: CompareGEqual, ReferenceA: 0.5, CompareB: CompareNever}
	p := mustCompile(t, m, nil)

	for _, want := range []string{
		"let t_AlphaTestA: bool = t_TevOutput.a >= 0.5;",
		"if (!(t_AlphaTestA || t_AlphaTestB)) {",
	} {
		if !strings.Contains(p.FragmentSource, want) {
			t.Errorf("fragment missing %q", want)
		}
	}
}

func TestCompileLightingDisabledInvariant(t *testing.T) {
	base := texturedMaterial()
	want := mustCompile(t, base, nil)

	for _, tc := range []struct {
		name    string
		litMask uint8
		diff    DiffuseFunction
		attn    AttenuationFunction
	}{
		{"all lights clamp spot", 0xFF, DiffClamp, AttnSpot},
		{"one light sign spec", 0x01, DiffSign, AttnSpec},
		{"no lights", 0, DiffNone, AttnNone},
	} {
		t.Run(tc.name, func(t *testing.T) {
			m := texturedMaterial()
			ch := unlitChannel(ColorSrcVtx)
			ch.LitMask, ch.DiffuseFunction, ch.AttenuationFunction = tc.litMask, tc.diff, tc.attn
			m.LightChannels[0] = LightChannelControl{ColorChannel: ch, AlphaChannel: ch}

			got := mustCompile(t, m, nil)
			if got.VertexSource != want.VertexSource {
				t.Errorf("vertex source depends on light config:\n%s", got.VertexSource)
			}
			if got.FragmentSource != want.FragmentSource {
				t.Error("fragment source depends on light config")
			}
		})
	}

	// Forcing lighting off is the same as an unlit material.
	lit := texturedMaterial()
	ch := unlitChannel(ColorSrcVtx)
	ch.LightingEnabled = true
	lit.LightChannels[0] = LightChannelControl{ColorChannel: ch, AlphaChannel: ch}
	got := mustCompile(t, lit, &Hacks{DisableLighting: true})
	if got.VertexSource != want.VertexSource {
		t.Error("DisableLighting output differs from the unlit material")
	}
	if strings.Contains(got.VertexSource, "u_LightParams[") {
		t.Error("unlit vertex stage reads the light block")
	}
}

func TestCompileLitChannel(t *testing.T) {
	m := texturedMaterial()
	ch := ColorChannelControl{
		LightingEnabled:     true,
		MatColorSource:      ColorSrcReg,
		AmbColorSource:      ColorSrcReg,
		LitMask:             0b101,
		DiffuseFunction:     DiffClamp,
		AttenuationFunction: AttnSpot,
	}
	m.LightChannels[0] = LightChannelControl{ColorChannel: ch, AlphaChannel: ch}
	p := mustCompile(t, m, nil)
	vs := p.VertexSource

	for _, want := range []string{
		"t_LightAccum = ub_MaterialParams.u_ColorAmbReg[0];",
		"t_LightDelta = ub_MaterialParams.u_LightParams[0].Position.xyz - t_Position;",
		"t_LightDelta = ub_MaterialParams.u_LightParams[2].Position.xyz - t_Position;",
		"max(dot(t_Normal, t_LightDeltaDir), 0.0)",
		"dot(ub_MaterialParams.u_LightParams[2].DistAtten.xyz, vec3<f32>(1.0, t_LightDeltaDist, t_LightDeltaDist2))",
		"vout.v_Color0 = ub_MaterialParams.u_ColorMatReg[0] * clamp(t_LightAccum, vec4<f32>(0.0), vec4<f32>(1.0));",
		"let t_Normal: vec3<f32> =",
	} {
		if !strings.Contains(vs, want) {
			t.Errorf("vertex source missing %q", want)
		}
	}
	if strings.Contains(vs, "u_LightParams[1]") {
		t.Error("light 1 is not in the mask but is accumulated")
	}
	if !p.UsesAttribute(VtxNrm) {
		t.Error("lit channel with a diffuse function does not read normals")
	}
	if p.UsesAttribute(VtxClr0) {
		t.Error("register-sourced channel reads vertex colors")
	}
}

func TestCompileSplitChannel(t *testing.T) {
	m := texturedMaterial()
	color := unlitChannel(ColorSrcVtx)
	alpha := unlitChannel(ColorSrcReg)
	m.LightChannels[0] = LightChannelControl{ColorChannel: color, AlphaChannel: alpha}
	p := mustCompile(t, m, nil)

	for _, want := range []string{
		"var t_ColorChanTemp: vec4<f32>;",
		"vout.v_Color0 = vec4<f32>(t_ColorChanTemp.rgb, vout.v_Color0.a);",
		"vout.v_Color0.a = t_ColorChanTemp.a;",
	} {
		if !strings.Contains(p.VertexSource, want) {
			t.Errorf("vertex source missing %q", want)
		}
	}
}

func TestCompileErrors(t *testing.T) {
	tests := []struct {
		name   string
		modify func(m *Material)
		want   error
	}{
		{"no stages", func(m *Material) { m.TevStages = nil }, ErrNoTevStages},
		{"bad color input", func(m *Material) { m.TevStages[0].ColorInA = 99 }, ErrInvalidEnum},
		{"bad tev op", func(m *Material) { m.TevStages[0].AlphaOp = 4 }, ErrInvalidEnum},
		{"bad texgen matrix", func(m *Material) { m.TexGens[0].Matrix = 31 }, ErrInvalidEnum},
		{"bad swap table", func(m *Material) { m.TevStages[0].TexSwapTable = &SwapTable{TevChanR, 7, TevChanB, TevChanA} }, ErrInvalidEnum},
		{"bump texgen", func(m *Material) { m.TexGens[0].Type = TexGenBump0 }, ErrUnsupportedTexGen},
		{"tangent source", func(m *Material) { m.TexGens[0].Source = TexGenSrcTangent }, ErrUnsupportedTexGen},
		{"post matrix without block", func(m *Material) {
			m.TexGens[0].PostMatrix = PTTexMtx(2)
			m.Options.HasPostTexMtxBlock = FlagFalse
		}, ErrPostTexMtxBlockRequired},
		{"indirect format", func(m *Material) {
			m.IndTexStages = []IndTexStage{{TexCoordID: TexCoord0, Texture: 1}}
			m.TevStages[0].IndTexMatrix = IndTexMtx1
			m.TevStages[0].IndTexFormat = IndTexFormat5
		}, ErrUnsupportedIndTexFormat},
		{"bump ras channel", func(m *Material) {
			m.TevStages[0].ColorInD = CCRasC
			m.TevStages[0].ChannelID = RasAlphaBump
		}, ErrInvalidRasChannel},
		{"too many stages", func(m *Material) {
			for len(m.TevStages) <= MaxTevStages {
				m.TevStages = append(m.TevStages, m.TevStages[0])
			}
		}, ErrTooManyStages},
		{"bad blend factor", func(m *Material) {
			m.RopInfo.BlendMode = BlendState{Type: BlendBlend, SrcFactor: 42, DstFactor: BlendZero}
		}, ErrInvalidEnum},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := texturedMaterial()
			tt.modify(m)
			p, err := Compile(m, nil)
			if !errors.Is(err, tt.want) {
				t.Fatalf("Compile error = %v, want %v", err, tt.want)
			}
			if p != nil {
				t.Error("Compile returned a program with an error")
			}
			var ce *CompileError
			if !errors.As(err, &ce) {
				t.Fatalf("error %T is not a *CompileError", err)
			}
			if ce.Material != m.Name {
				t.Errorf("CompileError.Material = %q, want %q", ce.Material, m.Name)
			}
		})
	}
}

func TestCompileLightsBlockRequired(t *testing.T) {
	m := texturedMaterial()
	ch := unlitChannel(ColorSrcReg)
	ch.LightingEnabled = true
	ch.LitMask = 1
	m.LightChannels[0] = LightChannelControl{ColorChannel: ch, AlphaChannel: ch}
	m.Options.HasLightsBlock = FlagFalse

	_, err := Compile(m, nil)
	if !errors.Is(err, ErrLightsBlockRequired) {
		t.Fatalf("Compile error = %v, want ErrLightsBlockRequired", err)
	}
	var ce *CompileError
	if errors.As(err, &ce) && ce.Stage != "lightChannel[0].color" {
		t.Errorf("CompileError.Stage = %q, want lightChannel[0].color", ce.Stage)
	}

	if _, err := Compile(m, &Hacks{DisableLighting: true}); err != nil {
		t.Errorf("Compile with DisableLighting error: %v", err)
	}
}

func TestCompileOptionalBlocks(t *testing.T) {
	m := texturedMaterial()
	m.Options = MaterialOptions{HasPostTexMtxBlock: FlagFalse, HasLightsBlock: FlagFalse, UsePnMtxIdx: FlagFalse}
	p := mustCompile(t, m, nil)

	for _, absent := range []string{"u_PostTexMtx", "u_LightParams", "struct Light", "a_PnMtxIdx"} {
		if strings.Contains(p.VertexSource, absent) {
			t.Errorf("vertex source contains %q", absent)
		}
	}
	if !strings.Contains(p.VertexSource, "Mul4x3(ub_PacketParams.u_PosMtx[0], vec4<f32>(vin.a_Position, 1.0))") {
		t.Error("static position matrix not slot 0")
	}

	full := mustCompile(t, texturedMaterial(), nil)
	for _, present := range []string{"u_PostTexMtx: array<Mat4x3, 20>", "u_LightParams: array<Light, 8>"} {
		if !strings.Contains(full.VertexSource, present) {
			t.Errorf("default material block missing %q", present)
		}
	}
}

func TestCompileTexCoordOutOfRange(t *testing.T) {
	m := texturedMaterial()
	m.TevStages[0].TexCoordID = 3
	p := mustCompile(t, m, nil)
	if !strings.Contains(p.FragmentSource, "t_TexCoord = vec2<f32>(0.0, 0.0);") {
		t.Error("out of range texgen does not address with a zero vector")
	}

	m.TevStages[0].TexCoordID = TexCoordNull
	p = mustCompile(t, m, nil)
	if strings.Contains(p.FragmentSource, "t_TexCoord = ") {
		t.Error("TEXCOORD_NULL stage writes the running coordinate")
	}
}

func TestCompileIndirectTexCoordOutOfRange(t *testing.T) {
	m := texturedMaterial()
	m.IndTexStages = []IndTexStage{{TexCoordID: 3, Texture: 1, ScaleS: IndTexScale2, ScaleT: IndTexScale2}}
	s := &m.TevStages[0]
	s.IndTexStage = IndTexStage0
	s.IndTexMatrix = IndTexMtx0
	s.IndTexBiasSel = IndTexBiasST

	fs := mustCompile(t, m, nil).FragmentSource
	for _, want := range []string{
		"let t_IndTexCoord0: vec3<f32> = 255.0 * textureSampleBias(u_Texture1, u_Sampler1, vec2<f32>(0.0, 0.0), TextureLODBias(1)).abg;",
		"Mul4x2(ub_MaterialParams.u_IndTexMtx[0], vec4<f32>((t_IndTexCoord0 + vec3<f32>(-128.0, -128.0, 0.0)), 0.0))",
	} {
		if !strings.Contains(fs, want) {
			t.Errorf("fragment source missing %q", want)
		}
	}

	m.IndTexStages[0].TexCoordID = TexCoordNull
	fs = mustCompile(t, m, nil).FragmentSource
	if !strings.Contains(fs, "t_IndTexCoord0") {
		t.Error("indirect stage with TEXCOORD_NULL is dropped")
	}
}

func TestCompileIndirect(t *testing.T) {
	m := texturedMaterial()
	m.TexGens = append(m.TexGens, TexGen{Type: TexGenMtx3x4, Source: TexGenSrcTex0, Matrix: TexMtx(1), PostMatrix: PTIdentity})
	m.IndTexStages = []IndTexStage{{TexCoordID: 1, Texture: 2, ScaleS: IndTexScale2, ScaleT: IndTexScale1}}
	s := &m.TevStages[0]
	s.IndTexStage = IndTexStage0
	s.IndTexMatrix = IndTexMtx0
	s.IndTexBiasSel = IndTexBiasST
	s.IndTexWrapS = IndTexWrap16
	s.IndTexWrapT = IndTexWrap0
	s.IndTexAddPrev = true

	p := mustCompile(t, m, nil)
	fs := p.FragmentSource
	for _, want := range []string{
		"let t_IndTexCoord0: vec3<f32> = 255.0 * textureSampleBias(u_Texture2, u_Sampler2, (fin.v_TexCoord1.xy / fin.v_TexCoord1.z) * vec2<f32>(1.0/2.0, 1.0), TextureLODBias(2)).abg;",
		"t_TexCoord += vec2<f32>(TevMod(fin.v_TexCoord0.xy.x, 16.0), 0.0)",
		"Mul4x2(ub_MaterialParams.u_IndTexMtx[0], vec4<f32>((t_IndTexCoord0 + vec3<f32>(-128.0, -128.0, 0.0)), 0.0))",
		"* TextureInvScale(0))",
	} {
		if !strings.Contains(fs, want) {
			t.Errorf("fragment source missing %q", want)
		}
	}
	if p.TextureSamples != 2 {
		t.Errorf("TextureSamples = %d, want 2", p.TextureSamples)
	}
	if !strings.Contains(p.VertexSource, "Mul4x3(ub_MaterialParams.u_TexMtx[1], vec4<f32>(vin.a_Tex0, 1.0, 1.0))") {
		t.Error("texgen 1 does not multiply TEX0 by texture matrix 1")
	}
}

func TestCompileUnsupportedIndirectMatrix(t *testing.T) {
	m := texturedMaterial()
	m.IndTexStages = []IndTexStage{{TexCoordID: TexCoord0, Texture: 1}}
	m.TevStages[0].IndTexMatrix = IndTexMtxS1
	p := mustCompile(t, m, nil)
	if !strings.Contains(p.FragmentSource, "(t_IndTexCoord0).xy") {
		t.Error("unsupported indirect matrix does not fall back to the raw offset")
	}
}

func TestCompileHacks(t *testing.T) {
	t.Run("disable textures", func(t *testing.T) {
		p := mustCompile(t, texturedMaterial(), &Hacks{DisableTextures: true})
		if strings.Contains(p.FragmentSource, "textureSampleBias(") {
			t.Error("fragment samples a texture with textures disabled")
		}
		if !strings.Contains(p.FragmentSource, "vec4<f32>(1.0, 1.0, 1.0, 1.0).rgb") {
			t.Error("fragment does not substitute opaque white")
		}
	})
	t.Run("disable vertex colors", func(t *testing.T) {
		p := mustCompile(t, texturedMaterial(), &Hacks{DisableVertexColors: true})
		if p.UsesAttribute(VtxClr0) {
			t.Error("vertex colors read with DisableVertexColors")
		}
		if !strings.Contains(p.VertexSource, "vout.v_Color0 = vec4<f32>(1.0, 1.0, 1.0, 1.0);") {
			t.Error("vertex color not forced to white")
		}
	})
	t.Run("lighting fudge", func(t *testing.T) {
		m := texturedMaterial()
		ch := unlitChannel(ColorSrcVtx)
		ch.LightingEnabled = true
		ch.LitMask = 1
		m.LightChannels[0] = LightChannelControl{ColorChannel: ch, AlphaChannel: ch}
		var got LightingFudgeParams
		h := &Hacks{LightingFudge: func(p LightingFudgeParams) string {
			got = p
			return p.MatSource + " * 0.5"
		}}
		p := mustCompile(t, m, h)
		if !strings.Contains(p.VertexSource, "vout.v_Color0 = vec4<f32>(vin.a_Color0 * 0.5); // Fudge!") {
			t.Errorf("fudged expression missing:\n%s", p.VertexSource)
		}
		if got.Mat != "ub_MaterialParams.u_ColorMatReg[0]" || got.Vtx != "vin.a_Color0" {
			t.Errorf("fudge params = %+v", got)
		}
		if strings.Contains(p.VertexSource, "t_LightAccum") {
			t.Error("fudged channel still accumulates lights")
		}
	})
}

func TestCompileDynamicTexMtx(t *testing.T) {
	m := texturedMaterial()
	m.TexGens = append(m.TexGens, TexGen{Type: TexGenMtx2x4, Source: TexGenSrcTex1, Matrix: TexMtx(0), PostMatrix: PTTexMtx(3)})
	m.UseTexMtxIdx[1] = true
	p := mustCompile(t, m, nil)

	want := "vout.v_TexCoord1 = Mul4x3(ub_MaterialParams.u_PostTexMtx[3], vec4<f32>(vec3<f32>(Mul4x3(GetPosTexMatrix(vin.a_TexMtx0123Idx.y), vec4<f32>(vin.a_Tex1, 1.0, 1.0)).xy, 1.0), 1.0));"
	if !strings.Contains(p.VertexSource, want) {
		t.Errorf("vertex source missing %q:\n%s", want, p.VertexSource)
	}
	if !p.UsesAttribute(VtxTex0MtxIdx) || !p.UsesAttribute(VtxTex1) {
		t.Errorf("VertexAttributes = %v, want TEX0MTXIDX and TEX1", p.VertexAttributes)
	}
}

func TestCompileOutputRegisters(t *testing.T) {
	m := texturedMaterial()
	m.TevStages[0].ColorRegID = Reg0
	p := mustCompile(t, m, nil)
	if !strings.Contains(p.FragmentSource, "var t_TevOutput: vec4<f32> = vec4<f32>(t_Color0.rgb, t_ColorPrev.a);") {
		t.Error("split output registers are not merged")
	}
	if !strings.Contains(p.FragmentSource, "t_TevOutput = TevOverflow(t_TevOutput);") {
		t.Error("final output is not truncated")
	}
}

func TestCompileTevOps(t *testing.T) {
	tests := []struct {
		name  string
		stage func(s *TevStage)
		want  string
	}{
		{"sub bias scale", func(s *TevStage) {
			s.ColorOp, s.ColorBias, s.ColorScale, s.ColorClamp = TevOpSub, TevBiasAddHalf, TevScale2, false
		}, "t_ColorPrev = vec4<f32>((TevBias3(-mix(t_TevA.rgb, t_TevB.rgb, t_TevC.rgb) + t_TevD.rgb, 0.5)) * 2.0, t_ColorPrev.a);"},
		{"alpha divide", func(s *TevStage) {
			s.AlphaBias, s.AlphaScale = TevBiasSubHalf, TevScaleDivide2
		}, "t_ColorPrev.a = TevSaturate((TevBias(mix(t_TevA.a, t_TevB.a, t_TevC.a) + t_TevD.a, -0.5)) * 0.5);"},
		{"compare gr16", func(s *TevStage) { s.ColorOp = TevOpCompGR16GT },
			"select(vec3<f32>(0.0), t_TevC.rgb, TevPack16(t_TevA.rg) > TevPack16(t_TevB.rg)) + t_TevD.rgb"},
		{"compare rgb8 eq", func(s *TevStage) { s.ColorOp = TevOpCompRGB8EQ },
			"(TevPerCompEQ3(t_TevA.rgb, t_TevB.rgb) * t_TevC.rgb) + t_TevD.rgb"},
		{"compare a8 gt", func(s *TevStage) { s.AlphaOp = TevOpCompA8GT },
			"(TevPerCompGT(t_TevA.a, t_TevB.a) * t_TevC.a) + t_TevD.a"},
		{"konst color", func(s *TevStage) { s.ColorInA, s.KonstColorSel = CCKonst, KCSelK2B },
			"TevOverflow(vec4<f32>(s_kColor2.bbb, 0.0))"},
		{"konst alpha", func(s *TevStage) { s.AlphaInB, s.KonstAlphaSel = CAKonst, KASelK3A },
			"t_TevB = TevOverflow(vec4<f32>(vec3<f32>(0.0), s_kColor3.a));"},
		{"konst fraction", func(s *TevStage) { s.ColorInC, s.KonstColorSel = CCKonst, KCSel3_8 },
			"vec3<f32>(3.0/8.0)"},
		{"ras swap", func(s *TevStage) {
			s.ColorInA = CCRasC
			s.RasSwapTable = &SwapTable{TevChanB, TevChanG, TevChanR, TevChanA}
		}, "TevSaturate3(fin.v_Color0.bgr)"},
		{"tex alpha swap", func(s *TevStage) {
			s.AlphaInA = CATexA
			s.TexSwapTable = &SwapTable{TevChanR, TevChanG, TevChanB, TevChanR}
		}, "t_Sample0.r))"},
		{"ras zero", func(s *TevStage) { s.ColorInB, s.ChannelID = CCRasA, RasColorZero },
			"TevSaturate3(vec4<f32>(0.0, 0.0, 0.0, 0.0).aaa)"},
		{"register write", func(s *TevStage) { s.AlphaRegID = Reg2 }, "t_Color2.a = "},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m := texturedMaterial()
			tt.stage(&m.TevStages[0])
			p := mustCompile(t, m, nil)
			if !strings.Contains(p.FragmentSource, tt.want) {
				t.Errorf("fragment source missing %q:\n%s", tt.want, p.FragmentSource)
			}
		})
	}
}

func TestProgramDescriptor(t *testing.T) {
	p := mustCompile(t, texturedMaterial(), nil)
	d := p.Descriptor()

	if d.Name != "textured" || d.VertexSource != p.VertexSource || d.FragmentSource != p.FragmentSource {
		t.Error("descriptor does not carry the program")
	}
	vs, fs := d.EntryPoints()
	if vs != "vs_main" || fs != "fs_main" {
		t.Errorf("EntryPoints() = %q, %q", vs, fs)
	}
	if len(d.VertexInputs) != 3 {
		t.Fatalf("len(VertexInputs) = %d, want 3", len(d.VertexInputs))
	}
	if in := d.VertexInputs[1]; in.Location != 1 || in.Format != gputypes.VertexFormatUint32 {
		t.Errorf("VertexInputs[1] = %+v, want PnMtxIdx at 1", in)
	}
	if in := d.VertexInputs[2]; in.Location != 5 || in.Format != gputypes.VertexFormatFloat32x4 {
		t.Errorf("VertexInputs[2] = %+v, want Color0 at 5", in)
	}

	bl := BindingLayouts()
	if len(bl) != 1 || bl[0].NumUniformBuffers != 3 || bl[0].NumSamplers != 8 {
		t.Errorf("BindingLayouts() = %+v", bl)
	}
}

func TestWGSLFloat(t *testing.T) {
	tests := []struct {
		v    float32
		want string
	}{
		{0, "0.0"},
		{1, "1.0"},
		{0.5, "0.5"},
		{0.3, "0.3"},
		{-128, "-128.0"},
	}
	for _, tt := range tests {
		if got := wgslFloat(tt.v); got != tt.want {
			t.Errorf("wgslFloat(%v) = %q, want %q", tt.v, got, tt.want)
		}
	}
}
