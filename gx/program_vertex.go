// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gx

import (
	"fmt"
	"sort"
)

// vertexGen generates the vertex stage. Attribute reads go through
// attr so the input struct declares exactly the streams the body uses.
type vertexGen struct {
	m     *Material
	hacks *Hacks
	used  map[VertexAttribute]bool

	needNormal bool
	needLight  bool
	needSplit  bool
}

func newVertexGen(m *Material, h *Hacks) *vertexGen {
	return &vertexGen{m: m, hacks: h, used: map[VertexAttribute]bool{VtxPos: true}}
}

func (g *vertexGen) attr(a VertexAttribute) string {
	g.used[a] = true
	def, _ := VertexAttribDef(a)
	return "vin.a_" + def.Name
}

// attributes returns the used streams in location order.
func (g *vertexGen) attributes() []VertexAttribute {
	out := make([]VertexAttribute, 0, len(g.used))
	for a := range g.used {
		out = append(out, a)
	}
	sort.Slice(out, func(i, j int) bool { return VertexAttribLocation(out[i]) < VertexAttribLocation(out[j]) })
	return out
}

// mulPntMatrixStatic multiplies src (a vec4 expression) by a matrix
// selected at compile time and yields a vec3.
func mulPntMatrixStatic(pnt TexGenMatrix, src string) string {
	switch {
	case pnt == TexGenIdentity:
		return src + ".xyz"
	case pnt >= TexMtx0:
		return fmt.Sprintf("Mul4x3(ub_MaterialParams.u_TexMtx[%d], %s)", (pnt-TexMtx0)/3, src)
	default:
		return fmt.Sprintf("Mul4x3(ub_PacketParams.u_PosMtx[%d], %s)", pnt/3, src)
	}
}

func mulPntMatrixDynamic(idx, src string) string {
	return fmt.Sprintf("Mul4x3(GetPosTexMatrix(%s), %s)", idx, src)
}

func (g *vertexGen) mulPos(src string) string {
	if g.m.UsePnMtxIdx() {
		return mulPntMatrixDynamic(g.attr(VtxPnMtxIdx), src)
	}
	return mulPntMatrixStatic(PnMtx0, src)
}

func (g *vertexGen) texMtxIdx(i int) string {
	if i < 4 {
		return g.attr(VtxTex0MtxIdx) + "." + string("xyzw"[i])
	}
	return g.attr(VtxTex4MtxIdx) + "." + string("xyzw"[i-4])
}

func (g *vertexGen) vertexColor(src ColorSrc, i int, reg string) string {
	if src == ColorSrcVtx {
		if g.hacks.DisableVertexColors {
			return "vec4<f32>(1.0, 1.0, 1.0, 1.0)"
		}
		return g.attr(VtxClr0 + VertexAttribute(i))
	}
	return fmt.Sprintf("ub_MaterialParams.%s[%d]", reg, i)
}

func (g *vertexGen) materialSource(cc ColorChannelControl, i int) string {
	return g.vertexColor(cc.MatColorSource, i, "u_ColorMatReg")
}

func (g *vertexGen) ambientSource(cc ColorChannelControl, i int) string {
	return g.vertexColor(cc.AmbColorSource, i, "u_ColorAmbReg")
}

func (g *vertexGen) lightDiffFn(cc ColorChannelControl) string {
	const nDotL = "dot(t_Normal, t_LightDeltaDir)"
	switch cc.DiffuseFunction {
	case DiffSign:
		g.needNormal = true
		return nDotL
	case DiffClamp:
		g.needNormal = true
		return "max(" + nDotL + ", 0.0)"
	default:
		return "1.0"
	}
}

func lightAttnFn(cc ColorChannelControl, light string) string {
	attn := fmt.Sprintf("max(0.0, dot(t_LightDeltaDir, %s.Direction.xyz))", light)
	cosAttn := fmt.Sprintf("max(0.0, ApplyCubic(%s.CosAtten.xyz, %s))", light, attn)
	switch cc.AttenuationFunction {
	case AttnSpot:
		return fmt.Sprintf("%s / dot(%s.DistAtten.xyz, vec3<f32>(1.0, t_LightDeltaDist, t_LightDeltaDist2))", cosAttn, light)
	case AttnSpec:
		return fmt.Sprintf("%s / ApplyCubic(%s.DistAtten.xyz, %s)", cosAttn, light, attn)
	default:
		return "1.0"
	}
}

// colorChannel writes the lighting of one channel into out.
func (g *vertexGen) colorChannel(w *wgslWriter, cc ColorChannelControl, out string, i int) {
	matSource := g.materialSource(cc, i)

	if !lightingEnabled(cc, g.hacks) {
		// Unlit channels are full-bright.
		w.line("    %s = %s;", out, matSource)
		return
	}

	ambSource := g.ambientSource(cc, i)
	if g.hacks.LightingFudge != nil {
		fudged := g.hacks.LightingFudge(LightingFudgeParams{
			Vtx:       g.attr(VtxClr0 + VertexAttribute(i)),
			Amb:       fmt.Sprintf("ub_MaterialParams.u_ColorAmbReg[%d]", i),
			Mat:       fmt.Sprintf("ub_MaterialParams.u_ColorMatReg[%d]", i),
			AmbSource: ambSource,
			MatSource: matSource,
		})
		w.line("    %s = vec4<f32>(%s); // Fudge!", out, fudged)
		return
	}

	g.needLight = true
	w.line("    t_LightAccum = %s;", ambSource)
	for j := range MaxLights {
		if cc.LitMask&(1<<j) == 0 {
			continue
		}
		light := fmt.Sprintf("ub_MaterialParams.u_LightParams[%d]", j)
		w.line("    t_LightDelta = %s.Position.xyz - t_Position;", light)
		w.line("    t_LightDeltaDist2 = dot(t_LightDelta, t_LightDelta);")
		w.line("    t_LightDeltaDist = sqrt(t_LightDeltaDist2);")
		w.line("    t_LightDeltaDir = t_LightDelta / t_LightDeltaDist;")
		w.line("    t_LightAccum += %s * %s * %s.Color;", g.lightDiffFn(cc), lightAttnFn(cc, light), light)
	}
	w.line("    %s = %s * clamp(t_LightAccum, vec4<f32>(0.0), vec4<f32>(1.0));", out, matSource)
}

func (g *vertexGen) lightChannel(w *wgslWriter, lc LightChannelControl, i int) {
	out := fmt.Sprintf("vout.v_Color%d", i)
	w.line("    // Light Channel %d", i)
	if colorChannelsEqual(lc.ColorChannel, lc.AlphaChannel) {
		g.colorChannel(w, lc.ColorChannel, out, i)
		return
	}
	g.needSplit = true
	g.colorChannel(w, lc.ColorChannel, "t_ColorChanTemp", i)
	w.line("    %s = vec4<f32>(t_ColorChanTemp.rgb, %s.a);", out, out)
	g.colorChannel(w, lc.AlphaChannel, "t_ColorChanTemp", i)
	w.line("    %s.a = t_ColorChanTemp.a;", out)
}

// texGenSource yields a vec4 expression.
func (g *vertexGen) texGenSource(src TexGenSrc) string {
	switch {
	case src == TexGenSrcPos:
		return fmt.Sprintf("vec4<f32>(%s, 1.0)", g.attr(VtxPos))
	case src == TexGenSrcNrm:
		return fmt.Sprintf("vec4<f32>(%s, 1.0)", g.attr(VtxNrm))
	case src == TexGenSrcColor0:
		return "vout.v_Color0"
	case src == TexGenSrcColor1:
		return "vout.v_Color1"
	case src >= TexGenSrcTex0 && src <= TexGenSrcTex7:
		return fmt.Sprintf("vec4<f32>(%s, 1.0, 1.0)", g.attr(VtxTex0+VertexAttribute(src-TexGenSrcTex0)))
	default:
		return fmt.Sprintf("vec4<f32>(vout.v_TexCoord%d, 1.0)", src-TexGenSrcTexCoord0)
	}
}

func (g *vertexGen) texGenMatrixMult(i int, src string) string {
	if g.m.UseTexMtxIdx[i] {
		return mulPntMatrixDynamic(g.texMtxIdx(i), src)
	}
	return mulPntMatrixStatic(g.m.TexGens[i].Matrix, src)
}

// texGen yields the vec3 expression of texgen i.
func (g *vertexGen) texGen(i int) string {
	tg := g.m.TexGens[i]
	src := g.texGenSource(tg.Source)

	var v string
	switch tg.Type {
	case TexGenSRTG:
		v = fmt.Sprintf("vec3<f32>(%s.xy, 1.0)", src)
	case TexGenMtx2x4:
		v = fmt.Sprintf("vec3<f32>(%s.xy, 1.0)", g.texGenMatrixMult(i, src))
	default:
		v = g.texGenMatrixMult(i, src)
	}
	if tg.Normalize {
		v = "normalize(" + v + ")"
	}
	if tg.PostMatrix != PTIdentity {
		v = fmt.Sprintf("Mul4x3(ub_MaterialParams.u_PostTexMtx[%d], vec4<f32>(%s, 1.0))", (tg.PostMatrix-PTTexMtx0)/3, v)
	}
	return v
}

// generate returns the vertex stage source.
func (g *vertexGen) generate(w *wgslWriter) {
	// The body is generated first: it decides which inputs exist.
	var body wgslWriter
	for i, lc := range g.m.LightChannels {
		g.lightChannel(&body, lc, i)
	}
	for i, tg := range g.m.TexGens {
		body.line("    // TexGen %d Type: %v Source: %v Matrix: %v", i, tg.Type, tg.Source, tg.Matrix)
		body.line("    vout.v_TexCoord%d = %s;", i, g.texGen(i))
	}
	position := g.mulPos(fmt.Sprintf("vec4<f32>(%s, 1.0)", g.attr(VtxPos)))
	var normal string
	if g.needNormal {
		normal = g.mulPos(fmt.Sprintf("vec4<f32>(%s, 0.0)", g.attr(VtxNrm)))
	}

	w.line("")
	w.line("struct VertexInput {")
	for _, a := range g.attributes() {
		def, _ := VertexAttribDef(a)
		w.line("    @location(%d) a_%s: %s,", VertexAttribLocation(a), def.Name, def.WGSLType)
	}
	w.line("}")
	w.line("")
	w.line("fn GetPosTexMatrix(t_MtxIdx: u32) -> Mat4x3 {")
	w.line("    if (t_MtxIdx == %du) {", TexGenIdentity)
	w.line("        return Mat4x3(vec4<f32>(1.0, 0.0, 0.0, 0.0), vec4<f32>(0.0, 1.0, 0.0, 0.0), vec4<f32>(0.0, 0.0, 1.0, 0.0));")
	w.line("    } else if (t_MtxIdx >= %du) {", TexMtx0)
	w.line("        return ub_MaterialParams.u_TexMtx[(t_MtxIdx - %du) / 3u];", TexMtx0)
	w.line("    }")
	w.line("    return ub_PacketParams.u_PosMtx[t_MtxIdx / 3u];")
	w.line("}")
	w.line("")
	w.line("fn ApplyCubic(t_Coeff: vec3<f32>, t_Value: f32) -> f32 {")
	w.line("    return max(dot(t_Coeff, vec3<f32>(1.0, t_Value, t_Value * t_Value)), 0.0);")
	w.line("}")
	w.line("")
	w.line("@vertex")
	w.line("fn vs_main(vin: VertexInput) -> VertexOutput {")
	w.line("    var vout: VertexOutput;")
	w.line("    let t_Position: vec3<f32> = %s;", position)
	w.line("    vout.v_Position = t_Position;")
	if g.needNormal {
		w.line("    let t_Normal: vec3<f32> = %s;", normal)
	}
	if g.needLight {
		w.line("    var t_LightAccum: vec4<f32>;")
		w.line("    var t_LightDelta: vec3<f32>;")
		w.line("    var t_LightDeltaDir: vec3<f32>;")
		w.line("    var t_LightDeltaDist2: f32;")
		w.line("    var t_LightDeltaDist: f32;")
	}
	if g.needSplit {
		w.line("    var t_ColorChanTemp: vec4<f32>;")
	}
	w.raw(body.String())
	w.line("    vout.clip_position = Mul4x4(ub_SceneParams.u_Projection, vec4<f32>(t_Position, 1.0));")
	w.line("    return vout;")
	w.line("}")
}
