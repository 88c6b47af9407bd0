// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gx

import "sort"

// presets are small reference materials covering the main code paths of
// the compiler. Each call returns a fresh material.
var presets = map[string]func() *Material{
	"vertex-color": VertexColorMaterial,
	"textured":     TexturedMaterial,
	"lit":          LitMaterial,
	"alpha-blend":  AlphaBlendMaterial,
}

// Preset returns a new copy of the named reference material.
func Preset(name string) (*Material, bool) {
	fn, ok := presets[name]
	if !ok {
		return nil, false
	}
	return fn(), true
}

// PresetNames returns the reference material names in sorted order.
func PresetNames() []string {
	names := make([]string, 0, len(presets))
	for name := range presets {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func channelControl(lit bool, mat, amb ColorSrc) ColorChannelControl {
	c := ColorChannelControl{
		LightingEnabled:     lit,
		MatColorSource:      mat,
		AmbColorSource:      amb,
		DiffuseFunction:     DiffNone,
		AttenuationFunction: AttnNone,
	}
	if lit {
		c.LitMask = 0x01
		c.DiffuseFunction = DiffClamp
		c.AttenuationFunction = AttnSpot
	}
	return c
}

// passStage outputs color input cd and alpha input ad unchanged into PREV.
func passStage(cd CombineColorInput, ad CombineAlphaInput) TevStage {
	return TevStage{
		ColorInA: CCZero, ColorInB: CCZero, ColorInC: CCZero, ColorInD: cd,
		ColorOp: TevOpAdd, ColorBias: TevBiasZero, ColorScale: TevScale1, ColorClamp: true, ColorRegID: RegPrev,
		AlphaInA: CAZero, AlphaInB: CAZero, AlphaInC: CAZero, AlphaInD: ad,
		AlphaOp: TevOpAdd, AlphaBias: TevBiasZero, AlphaScale: TevScale1, AlphaClamp: true, AlphaRegID: RegPrev,
		TexCoordID:    TexCoordNull,
		TexMap:        TexMapNull,
		ChannelID:     RasColor0A0,
		KonstColorSel: KCSel1,
		KonstAlphaSel: KASel1,
	}
}

func opaqueRop() RopInfo {
	return RopInfo{
		BlendMode:  BlendState{Type: BlendNone, SrcFactor: BlendOne, DstFactor: BlendZero},
		DepthTest:  true,
		DepthFunc:  CompareLEqual,
		DepthWrite: true,
	}
}

func passAlphaTest() AlphaTest {
	return AlphaTest{Op: AlphaOpAnd, CompareA: CompareAlways, CompareB: CompareAlways}
}

// presetOptions reads every position with matrix slot 0, so presets draw
// from streams without a PnMtxIdx attribute.
func presetOptions() MaterialOptions {
	return MaterialOptions{UsePnMtxIdx: FlagFalse}
}

// VertexColorMaterial outputs the unlit vertex color.
func VertexColorMaterial() *Material {
	ch := channelControl(false, ColorSrcVtx, ColorSrcVtx)
	return &Material{
		Name:          "vertex-color",
		CullMode:      CullBack,
		LightChannels: []LightChannelControl{{ColorChannel: ch, AlphaChannel: ch}},
		TevStages:     []TevStage{passStage(CCRasC, CARasA)},
		AlphaTest:     passAlphaTest(),
		RopInfo:       opaqueRop(),
		Options:       presetOptions(),
	}
}

// TexturedMaterial modulates texture 0 by the vertex color.
func TexturedMaterial() *Material {
	ch := channelControl(false, ColorSrcVtx, ColorSrcVtx)
	stage := passStage(CCZero, CAZero)
	stage.ColorInB, stage.ColorInC = CCTexC, CCRasC
	stage.AlphaInB, stage.AlphaInC = CATexA, CARasA
	stage.TexCoordID, stage.TexMap = TexCoord0, TexMap0
	return &Material{
		Name:          "textured",
		CullMode:      CullBack,
		LightChannels: []LightChannelControl{{ColorChannel: ch, AlphaChannel: ch}},
		TexGens: []TexGen{{
			Type:       TexGenSRTG,
			Source:     TexGenSrcTex0,
			Matrix:     TexGenIdentity,
			PostMatrix: PTIdentity,
		}},
		TevStages: []TevStage{stage},
		AlphaTest: passAlphaTest(),
		RopInfo:   opaqueRop(),
		Options:   presetOptions(),
	}
}

// LitMaterial lights the vertex color with light 0, using a clamped
// diffuse term and spot attenuation against a register ambient color.
func LitMaterial() *Material {
	return &Material{
		Name:     "lit",
		CullMode: CullBack,
		LightChannels: []LightChannelControl{{
			ColorChannel: channelControl(true, ColorSrcVtx, ColorSrcReg),
			AlphaChannel: channelControl(false, ColorSrcVtx, ColorSrcVtx),
		}},
		TevStages: []TevStage{passStage(CCRasC, CARasA)},
		AlphaTest: passAlphaTest(),
		RopInfo:   opaqueRop(),
		Options:   presetOptions(),
	}
}

// AlphaBlendMaterial blends the vertex color over the framebuffer by its
// alpha, without depth writes.
func AlphaBlendMaterial() *Material {
	m := VertexColorMaterial()
	m.Name = "alpha-blend"
	m.CullMode = CullNone
	m.RopInfo.BlendMode = BlendState{Type: BlendBlend, SrcFactor: BlendSrcAlpha, DstFactor: BlendInvSrcAlpha}
	m.RopInfo.DepthWrite = false
	return m
}
