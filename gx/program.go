// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gx

import (
	"github.com/gogpu/gxview/gfx"
)

// Program is a compiled material: WGSL sources for both stages and the
// pipeline state derived from the material's raster settings.
type Program struct {
	Name           string
	VertexSource   string
	FragmentSource string
	MegaState      gfx.MegaStateDescriptor

	// VertexAttributes lists the vertex streams the vertex stage reads,
	// in location order.
	VertexAttributes []VertexAttribute

	// TextureSamples is the number of texture fetches in the fragment stage.
	TextureSamples int
}

// Compile translates a material into a program. A nil h applies no
// hacks. Compile is deterministic: the same material and hacks always
// produce byte-identical sources and equal pipeline state.
//
// Malformed materials fail with a *CompileError and no program.
func Compile(m *Material, h *Hacks) (*Program, error) {
	if h == nil {
		h = &Hacks{}
	}
	if err := checkMaterial(m, h); err != nil {
		return nil, err
	}
	ms, err := TranslateMegaState(m)
	if err != nil {
		return nil, err
	}

	vg := newVertexGen(m, h)
	var vs wgslWriter
	writeCommon(&vs, m)
	vg.generate(&vs)

	fg := newFragmentGen(m, h)
	var fs wgslWriter
	writeCommon(&fs, m)
	fg.generate(&fs)

	p := &Program{
		Name:             m.Name,
		VertexSource:     vs.String(),
		FragmentSource:   fs.String(),
		MegaState:        ms,
		VertexAttributes: vg.attributes(),
		TextureSamples:   fg.samples,
	}
	Logger().Debug("gx: compiled material",
		"material", m.Name,
		"tevStages", len(m.TevStages),
		"texGens", len(m.TexGens),
		"attributes", len(p.VertexAttributes),
		"samples", p.TextureSamples)
	return p, nil
}

// Descriptor returns the device program descriptor of p.
func (p *Program) Descriptor() gfx.ProgramDescriptor {
	inputs := make([]gfx.VertexInput, 0, len(p.VertexAttributes))
	for _, a := range p.VertexAttributes {
		def, _ := VertexAttribDef(a)
		inputs = append(inputs, gfx.VertexInput{Location: VertexAttribLocation(a), Format: def.Format})
	}
	return gfx.ProgramDescriptor{
		Name:               p.Name,
		VertexSource:       p.VertexSource,
		FragmentSource:     p.FragmentSource,
		VertexEntryPoint:   "vs_main",
		FragmentEntryPoint: "fs_main",
		VertexInputs:       inputs,
	}
}

// BindingLayouts returns the binding set shape shared by every program.
func BindingLayouts() []gfx.BindingLayoutDescriptor {
	return []gfx.BindingLayoutDescriptor{{NumUniformBuffers: NumUniformBuffers, NumSamplers: NumTextures}}
}

// UsesAttribute reports whether the vertex stage reads a.
func (p *Program) UsesAttribute(a VertexAttribute) bool {
	for _, v := range p.VertexAttributes {
		if v == a {
			return true
		}
	}
	return false
}
