// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gx

import (
	"fmt"
	"strconv"
	"strings"
)

// wgslFloat formats v as a WGSL f32 literal.
func wgslFloat(v float32) string {
	s := strconv.FormatFloat(float64(v), 'f', -1, 32)
	if !strings.Contains(s, ".") {
		s += ".0"
	}
	return s
}

// wgslWriter accumulates shader text.
type wgslWriter struct {
	sb strings.Builder
}

func (w *wgslWriter) line(format string, args ...any) {
	if len(args) == 0 {
		w.sb.WriteString(format)
	} else {
		fmt.Fprintf(&w.sb, format, args...)
	}
	w.sb.WriteByte('\n')
}

func (w *wgslWriter) raw(s string) { w.sb.WriteString(s) }

func (w *wgslWriter) String() string { return w.sb.String() }

const wgslMatrixDefs = `struct Mat4x4 {
    mx: vec4<f32>,
    my: vec4<f32>,
    mz: vec4<f32>,
    mw: vec4<f32>,
}

struct Mat4x3 {
    mx: vec4<f32>,
    my: vec4<f32>,
    mz: vec4<f32>,
}

struct Mat4x2 {
    mx: vec4<f32>,
    my: vec4<f32>,
}

fn Mul4x4(m: Mat4x4, v: vec4<f32>) -> vec4<f32> {
    return vec4<f32>(dot(m.mx, v), dot(m.my, v), dot(m.mz, v), dot(m.mw, v));
}

fn Mul4x3(m: Mat4x3, v: vec4<f32>) -> vec3<f32> {
    return vec3<f32>(dot(m.mx, v), dot(m.my, v), dot(m.mz, v));
}

fn Mul4x2(m: Mat4x2, v: vec4<f32>) -> vec2<f32> {
    return vec2<f32>(dot(m.mx, v), dot(m.my, v));
}
`

const wgslLightDef = `struct Light {
    Color: vec4<f32>,
    Position: vec4<f32>,
    Direction: vec4<f32>,
    DistAtten: vec4<f32>,
    CosAtten: vec4<f32>,
}
`

const wgslVertexOutput = `struct VertexOutput {
    @builtin(position) clip_position: vec4<f32>,
    @location(0) v_Position: vec3<f32>,
    @location(1) v_Color0: vec4<f32>,
    @location(2) v_Color1: vec4<f32>,
    @location(3) v_TexCoord0: vec3<f32>,
    @location(4) v_TexCoord1: vec3<f32>,
    @location(5) v_TexCoord2: vec3<f32>,
    @location(6) v_TexCoord3: vec3<f32>,
    @location(7) v_TexCoord4: vec3<f32>,
    @location(8) v_TexCoord5: vec3<f32>,
    @location(9) v_TexCoord6: vec3<f32>,
    @location(10) v_TexCoord7: vec3<f32>,
}
`

// writeCommon writes the declarations shared by both stages: matrix
// helpers, the three uniform blocks laid out as MaterialParams.Fill
// packs them, and the inter-stage varyings.
func writeCommon(w *wgslWriter, m *Material) {
	w.line("// %s", m.Name)
	w.line("")
	w.raw(wgslMatrixDefs)
	w.line("")
	w.line("struct SceneParams {")
	w.line("    u_Projection: Mat4x4,")
	w.line("    u_Misc0: vec4<f32>,")
	w.line("}")
	w.line("")
	if m.HasLightsBlock() {
		w.raw(wgslLightDef)
		w.line("")
	}
	w.line("struct MaterialParams {")
	w.line("    u_ColorMatReg: array<vec4<f32>, 2>,")
	w.line("    u_ColorAmbReg: array<vec4<f32>, 2>,")
	w.line("    u_KonstColor: array<vec4<f32>, 4>,")
	w.line("    u_Color: array<vec4<f32>, 4>,")
	w.line("    u_TexMtx: array<Mat4x3, 10>,")
	w.line("    u_TextureParams: array<vec4<f32>, 8>,")
	w.line("    u_IndTexMtx: array<Mat4x2, 3>,")
	if m.HasPostTexMtxBlock() {
		w.line("    u_PostTexMtx: array<Mat4x3, 20>,")
	}
	if m.HasLightsBlock() {
		w.line("    u_LightParams: array<Light, 8>,")
	}
	w.line("}")
	w.line("")
	w.line("struct PacketParams {")
	w.line("    u_PosMtx: array<Mat4x3, 10>,")
	w.line("}")
	w.line("")
	w.line("@group(0) @binding(%d) var<uniform> ub_SceneParams: SceneParams;", UBSceneParams)
	w.line("@group(0) @binding(%d) var<uniform> ub_MaterialParams: MaterialParams;", UBMaterialParams)
	w.line("@group(0) @binding(%d) var<uniform> ub_PacketParams: PacketParams;", UBPacketParams)
	w.line("")
	w.raw(wgslVertexOutput)
}
