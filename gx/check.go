// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gx

import "fmt"

// Hardware stage limits.
const (
	MaxLightChannels = 2
	MaxTexGens       = 8
	MaxIndTexStages  = 4
	MaxTevStages     = 16
)

func compileErr(m *Material, stage, field string, err error) *CompileError {
	return &CompileError{Material: m.Name, Stage: stage, Field: field, Err: err}
}

type validator interface{ Valid() bool }

// checker collects the first contract violation of a material. Code
// generation runs only on materials that pass every check, so the
// generators never see an out-of-range value.
type checker struct {
	m     *Material
	hacks *Hacks
	err   *CompileError
}

func (c *checker) enum(stage, field string, v validator) {
	if c.err == nil && !v.Valid() {
		c.err = compileErr(c.m, stage, field, fmt.Errorf("%w: %v", ErrInvalidEnum, v))
	}
}

func (c *checker) fail(stage, field string, err error) {
	if c.err == nil {
		c.err = compileErr(c.m, stage, field, err)
	}
}

func checkMaterial(m *Material, h *Hacks) error {
	c := &checker{m: m, hacks: h}

	if len(m.TevStages) == 0 {
		c.fail("", "TevStages", ErrNoTevStages)
	}
	c.enum("", "CullMode", m.CullMode)
	c.count("LightChannels", len(m.LightChannels), MaxLightChannels)
	c.count("TexGens", len(m.TexGens), MaxTexGens)
	c.count("IndTexStages", len(m.IndTexStages), MaxIndTexStages)
	c.count("TevStages", len(m.TevStages), MaxTevStages)

	for i, lc := range m.LightChannels {
		c.colorChannel(fmt.Sprintf("lightChannel[%d].color", i), lc.ColorChannel)
		c.colorChannel(fmt.Sprintf("lightChannel[%d].alpha", i), lc.AlphaChannel)
	}
	for i, tg := range m.TexGens {
		c.texGen(i, tg)
	}
	for i, s := range m.IndTexStages {
		stage := fmt.Sprintf("indTex[%d]", i)
		c.enum(stage, "TexCoordID", s.TexCoordID)
		c.enum(stage, "ScaleS", s.ScaleS)
		c.enum(stage, "ScaleT", s.ScaleT)
		if s.Texture > TexMap7 {
			c.fail(stage, "Texture", fmt.Errorf("%w: %v", ErrInvalidEnum, s.Texture))
		}
	}
	for i := range m.TevStages {
		c.tevStage(i, &m.TevStages[i])
	}

	at := m.AlphaTest
	c.enum("alphaTest", "Op", at.Op)
	c.enum("alphaTest", "CompareA", at.CompareA)
	c.enum("alphaTest", "CompareB", at.CompareB)

	if c.err != nil {
		return c.err
	}
	return nil
}

func (c *checker) count(field string, n, limit int) {
	if n > limit {
		c.fail("", field, fmt.Errorf("%w: %d %s, max %d", ErrTooManyStages, n, field, limit))
	}
}

func (c *checker) colorChannel(stage string, cc ColorChannelControl) {
	c.enum(stage, "MatColorSource", cc.MatColorSource)
	c.enum(stage, "AmbColorSource", cc.AmbColorSource)
	c.enum(stage, "DiffuseFunction", cc.DiffuseFunction)
	c.enum(stage, "AttenuationFunction", cc.AttenuationFunction)
	if lightingEnabled(cc, c.hacks) && c.hacks.LightingFudge == nil && cc.LitMask != 0 && !c.m.HasLightsBlock() {
		c.fail(stage, "LitMask", ErrLightsBlockRequired)
	}
}

func (c *checker) texGen(i int, tg TexGen) {
	stage := fmt.Sprintf("texGen[%d]", i)
	c.enum(stage, "Type", tg.Type)
	c.enum(stage, "Source", tg.Source)
	c.enum(stage, "Matrix", tg.Matrix)
	c.enum(stage, "PostMatrix", tg.PostMatrix)
	switch tg.Type {
	case TexGenMtx3x4, TexGenMtx2x4, TexGenSRTG:
	default:
		c.fail(stage, "Type", fmt.Errorf("%w: type %v", ErrUnsupportedTexGen, tg.Type))
	}
	if tg.Source == TexGenSrcBinrm || tg.Source == TexGenSrcTangent {
		c.fail(stage, "Source", fmt.Errorf("%w: source %v", ErrUnsupportedTexGen, tg.Source))
	}
	if tg.PostMatrix != PTIdentity && !c.m.HasPostTexMtxBlock() {
		c.fail(stage, "PostMatrix", ErrPostTexMtxBlockRequired)
	}
}

func (c *checker) tevStage(i int, s *TevStage) {
	stage := fmt.Sprintf("tev[%d]", i)
	for _, in := range []struct {
		field string
		v     validator
	}{
		{"ColorInA", s.ColorInA}, {"ColorInB", s.ColorInB}, {"ColorInC", s.ColorInC}, {"ColorInD", s.ColorInD},
		{"ColorOp", s.ColorOp}, {"ColorBias", s.ColorBias}, {"ColorScale", s.ColorScale}, {"ColorRegID", s.ColorRegID},
		{"AlphaInA", s.AlphaInA}, {"AlphaInB", s.AlphaInB}, {"AlphaInC", s.AlphaInC}, {"AlphaInD", s.AlphaInD},
		{"AlphaOp", s.AlphaOp}, {"AlphaBias", s.AlphaBias}, {"AlphaScale", s.AlphaScale}, {"AlphaRegID", s.AlphaRegID},
		{"TexCoordID", s.TexCoordID}, {"TexMap", s.TexMap},
		{"KonstColorSel", s.KonstColorSel}, {"KonstAlphaSel", s.KonstAlphaSel},
		{"IndTexStage", s.IndTexStage}, {"IndTexFormat", s.IndTexFormat}, {"IndTexBiasSel", s.IndTexBiasSel}, {"IndTexMatrix", s.IndTexMatrix},
		{"IndTexWrapS", s.IndTexWrapS}, {"IndTexWrapT", s.IndTexWrapT},
	} {
		c.enum(stage, in.field, in.v)
	}
	for _, t := range []*SwapTable{s.RasSwapTable, s.TexSwapTable} {
		if t == nil {
			continue
		}
		for _, ch := range t {
			c.enum(stage, "SwapTable", ch)
		}
	}
	if stageReadsRas(s) {
		switch s.ChannelID {
		case RasColor0A0, RasColor1A1, RasColorZero:
		default:
			c.fail(stage, "ChannelID", fmt.Errorf("%w: %v", ErrInvalidRasChannel, s.ChannelID))
		}
	}
	if s.IndTexMatrix != IndTexMtxOff && int(s.IndTexStage) < len(c.m.IndTexStages) && s.IndTexFormat != IndTexFormat8 {
		c.fail(stage, "IndTexFormat", fmt.Errorf("%w: %v", ErrUnsupportedIndTexFormat, s.IndTexFormat))
	}
}

func stageReadsRas(s *TevStage) bool {
	for _, in := range [...]CombineColorInput{s.ColorInA, s.ColorInB, s.ColorInC, s.ColorInD} {
		if in == CCRasC || in == CCRasA {
			return true
		}
	}
	for _, in := range [...]CombineAlphaInput{s.AlphaInA, s.AlphaInB, s.AlphaInC, s.AlphaInD} {
		if in == CARasA {
			return true
		}
	}
	return false
}

func stageReadsTex(s *TevStage) bool {
	for _, in := range [...]CombineColorInput{s.ColorInA, s.ColorInB, s.ColorInC, s.ColorInD} {
		if in == CCTexC || in == CCTexA {
			return true
		}
	}
	for _, in := range [...]CombineAlphaInput{s.AlphaInA, s.AlphaInB, s.AlphaInC, s.AlphaInD} {
		if in == CATexA {
			return true
		}
	}
	return false
}

// lightingEnabled reports whether a channel is lit after hacks.
func lightingEnabled(cc ColorChannelControl, h *Hacks) bool {
	return cc.LightingEnabled && !h.DisableLighting
}
