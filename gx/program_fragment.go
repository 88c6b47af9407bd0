// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gx

import (
	"fmt"
	"strings"
)

const wgslTevHelpers = `fn TextureLODBias(index: i32) -> f32 {
    return ub_SceneParams.u_Misc0.x + ub_MaterialParams.u_TextureParams[index].w;
}

fn TextureInvScale(index: i32) -> vec2<f32> {
    return 1.0 / ub_MaterialParams.u_TextureParams[index].xy;
}

fn TevBias(a: f32, b: f32) -> f32 { return a + b; }
fn TevBias3(a: vec3<f32>, b: f32) -> vec3<f32> { return a + vec3<f32>(b); }
fn TevSaturate(a: f32) -> f32 { return clamp(a, 0.0, 1.0); }
fn TevSaturate3(a: vec3<f32>) -> vec3<f32> { return clamp(a, vec3<f32>(0.0), vec3<f32>(1.0)); }

fn TevOverflow(a: vec4<f32>) -> vec4<f32> {
    return vec4<f32>(vec4<i32>(a * 255.0) & vec4<i32>(255)) / 255.0;
}

fn TevPack16(a: vec2<f32>) -> f32 { return dot(a, vec2<f32>(1.0, 256.0)); }
fn TevPack24(a: vec3<f32>) -> f32 { return dot(a, vec3<f32>(1.0, 256.0, 65536.0)); }
fn TevPerCompGT(a: f32, b: f32) -> f32 { return select(0.0, 1.0, a > b); }
fn TevPerCompEQ(a: f32, b: f32) -> f32 { return select(0.0, 1.0, a == b); }
fn TevPerCompGT3(a: vec3<f32>, b: vec3<f32>) -> vec3<f32> { return select(vec3<f32>(0.0), vec3<f32>(1.0), a > b); }
fn TevPerCompEQ3(a: vec3<f32>, b: vec3<f32>) -> vec3<f32> { return select(vec3<f32>(0.0), vec3<f32>(1.0), a == b); }
fn TevMod(a: f32, b: f32) -> f32 { return a - b * floor(a / b); }
`

const opaqueWhite = "vec4<f32>(1.0, 1.0, 1.0, 1.0)"

// fragmentGen generates the fragment stage.
type fragmentGen struct {
	m     *Material
	hacks *Hacks

	// samples counts textureSampleBias calls, for diagnostics.
	samples int
}

func newFragmentGen(m *Material, h *Hacks) *fragmentGen {
	return &fragmentGen{m: m, hacks: h}
}

func (g *fragmentGen) textureSample(texMap TexMapID, coord string) string {
	g.samples++
	return fmt.Sprintf("textureSampleBias(u_Texture%d, u_Sampler%d, %s, TextureLODBias(%d))", texMap, texMap, coord, texMap)
}

// readTexCoord yields the vec2 coordinate of texgen i, with the
// perspective divide for 3x4 generators.
func (g *fragmentGen) readTexCoord(i TexCoordID) string {
	if g.m.TexGens[i].Type == TexGenMtx3x4 {
		return fmt.Sprintf("(fin.v_TexCoord%d.xy / fin.v_TexCoord%d.z)", i, i)
	}
	return fmt.Sprintf("fin.v_TexCoord%d.xy", i)
}

func indTexScale(s IndTexScale) string {
	if s == IndTexScale1 {
		return "1.0"
	}
	return fmt.Sprintf("1.0/%d.0", 1<<int(s))
}

func (g *fragmentGen) indTexStage(w *wgslWriter, i int) {
	s := g.m.IndTexStages[i]
	// A texgen index past the end of the material's texgens looks up at
	// the origin, like a direct stage.
	coord := "vec2<f32>(0.0, 0.0)"
	if int(s.TexCoordID) < len(g.m.TexGens) {
		coord = g.readTexCoord(s.TexCoordID)
		if s.ScaleS != IndTexScale1 || s.ScaleT != IndTexScale1 {
			coord = fmt.Sprintf("%s * vec2<f32>(%s, %s)", coord, indTexScale(s.ScaleS), indTexScale(s.ScaleT))
		}
	}
	w.line("    // Indirect %d", i)
	w.line("    let t_IndTexCoord%d: vec3<f32> = 255.0 * %s.abg;", i, g.textureSample(s.Texture, coord))
}

func konstColorSel(k KonstColorSel) string {
	switch {
	case k <= KCSel1_8:
		return fmt.Sprintf("vec3<f32>(%d.0/8.0)", 8-int(k))
	case k >= KCSelK0 && k <= KCSelK3:
		return fmt.Sprintf("s_kColor%d.rgb", k-KCSelK0)
	default:
		n := int(k - KCSelK0R)
		c := string("rgba"[n/4])
		return fmt.Sprintf("s_kColor%d.%s%s%s", n%4, c, c, c)
	}
}

func konstAlphaSel(k KonstAlphaSel) string {
	if k <= KASel1_8 {
		return fmt.Sprintf("(%d.0/8.0)", 8-int(k))
	}
	n := int(k - KASelK0R)
	return fmt.Sprintf("s_kColor%d.%c", n%4, "rgba"[n/4])
}

func ras(s *TevStage) string {
	switch s.ChannelID {
	case RasColor0A0:
		return "fin.v_Color0"
	case RasColor1A1:
		return "fin.v_Color1"
	default:
		return "vec4<f32>(0.0, 0.0, 0.0, 0.0)"
	}
}

func componentSwizzle(t *SwapTable, ch TevColorChan) string {
	if t != nil {
		ch = t[ch]
	}
	return string("rgba"[ch])
}

func colorSwizzle(t *SwapTable, alpha bool) string {
	if alpha {
		a := componentSwizzle(t, TevChanA)
		return a + a + a
	}
	return componentSwizzle(t, TevChanR) + componentSwizzle(t, TevChanG) + componentSwizzle(t, TevChanB)
}

func tevRegister(r Register) string {
	switch r {
	case Reg0:
		return "t_Color0"
	case Reg1:
		return "t_Color1"
	case Reg2:
		return "t_Color2"
	default:
		return "t_ColorPrev"
	}
}

// stageCtx holds the per-stage texture access expression.
type stageCtx struct {
	s   *TevStage
	tex string
}

func colorIn(c *stageCtx, in CombineColorInput) string {
	switch in {
	case CCCPrev:
		return "t_ColorPrev.rgb"
	case CCAPrev:
		return "t_ColorPrev.aaa"
	case CCC0:
		return "t_Color0.rgb"
	case CCA0:
		return "t_Color0.aaa"
	case CCC1:
		return "t_Color1.rgb"
	case CCA1:
		return "t_Color1.aaa"
	case CCC2:
		return "t_Color2.rgb"
	case CCA2:
		return "t_Color2.aaa"
	case CCTexC, CCTexA:
		return c.tex + "." + colorSwizzle(c.s.TexSwapTable, in == CCTexA)
	case CCRasC, CCRasA:
		return "TevSaturate3(" + ras(c.s) + "." + colorSwizzle(c.s.RasSwapTable, in == CCRasA) + ")"
	case CCOne:
		return "vec3<f32>(1.0)"
	case CCHalf:
		return "vec3<f32>(1.0/2.0)"
	case CCKonst:
		return konstColorSel(c.s.KonstColorSel)
	default:
		return "vec3<f32>(0.0)"
	}
}

func alphaIn(c *stageCtx, in CombineAlphaInput) string {
	switch in {
	case CAAPrev:
		return "t_ColorPrev.a"
	case CAA0:
		return "t_Color0.a"
	case CAA1:
		return "t_Color1.a"
	case CAA2:
		return "t_Color2.a"
	case CATexA:
		return c.tex + "." + componentSwizzle(c.s.TexSwapTable, TevChanA)
	case CARasA:
		return "TevSaturate(" + ras(c.s) + "." + componentSwizzle(c.s.RasSwapTable, TevChanA) + ")"
	case CAKonst:
		return konstAlphaSel(c.s.KonstAlphaSel)
	default:
		return "0.0"
	}
}

func tevBiasScale(v string, bias TevBias, scale TevScale, vec bool) string {
	fn := "TevBias"
	if vec {
		fn = "TevBias3"
	}
	switch bias {
	case TevBiasAddHalf:
		v = fn + "(" + v + ", 0.5)"
	case TevBiasSubHalf:
		v = fn + "(" + v + ", -0.5)"
	}
	switch scale {
	case TevScale2:
		v = "(" + v + ") * 2.0"
	case TevScale4:
		v = "(" + v + ") * 4.0"
	case TevScaleDivide2:
		v = "(" + v + ") * 0.5"
	}
	return v
}

// tevOp yields the combiner expression. Compare operators ignore bias
// and scale, as the hardware does.
func tevOp(op TevOp, bias TevBias, scale TevScale, clamp bool, ch string, vec bool) string {
	a, b, c, d := "t_TevA."+ch, "t_TevB."+ch, "t_TevC."+ch, "t_TevD."+ch
	zero, suffix := "0.0", ""
	if vec {
		zero, suffix = "vec3<f32>(0.0)", "3"
	}
	var v string
	switch op {
	case TevOpAdd, TevOpSub:
		neg := ""
		if op == TevOpSub {
			neg = "-"
		}
		v = tevBiasScale(fmt.Sprintf("%smix(%s, %s, %s) + %s", neg, a, b, c, d), bias, scale, vec)
	case TevOpCompR8GT:
		v = fmt.Sprintf("select(%s, %s, t_TevA.r > t_TevB.r) + %s", zero, c, d)
	case TevOpCompR8EQ:
		v = fmt.Sprintf("select(%s, %s, t_TevA.r == t_TevB.r) + %s", zero, c, d)
	case TevOpCompGR16GT:
		v = fmt.Sprintf("select(%s, %s, TevPack16(t_TevA.rg) > TevPack16(t_TevB.rg)) + %s", zero, c, d)
	case TevOpCompGR16EQ:
		v = fmt.Sprintf("select(%s, %s, TevPack16(t_TevA.rg) == TevPack16(t_TevB.rg)) + %s", zero, c, d)
	case TevOpCompBGR24GT:
		v = fmt.Sprintf("select(%s, %s, TevPack24(t_TevA.rgb) > TevPack24(t_TevB.rgb)) + %s", zero, c, d)
	case TevOpCompBGR24EQ:
		v = fmt.Sprintf("select(%s, %s, TevPack24(t_TevA.rgb) == TevPack24(t_TevB.rgb)) + %s", zero, c, d)
	case TevOpCompRGB8GT:
		v = fmt.Sprintf("(TevPerCompGT%s(%s, %s) * %s) + %s", suffix, a, b, c, d)
	default:
		v = fmt.Sprintf("(TevPerCompEQ%s(%s, %s) * %s) + %s", suffix, a, b, c, d)
	}
	if clamp {
		return "TevSaturate" + suffix + "(" + v + ")"
	}
	return v
}

func wrapN(coord string, wrap IndTexWrap) string {
	switch wrap {
	case IndTexWrapOff:
		return coord
	case IndTexWrap0:
		return "0.0"
	default:
		return fmt.Sprintf("TevMod(%s, %d.0)", coord, wrap.Modulus())
	}
}

// texCoordWrap yields the wrapped base coordinate. A texgen index past
// the end of the material's texgens addresses with a zero vector.
func (g *fragmentGen) texCoordWrap(s *TevStage) string {
	if int(s.TexCoordID) >= len(g.m.TexGens) {
		return "vec2<f32>(0.0, 0.0)"
	}
	base := g.readTexCoord(s.TexCoordID)
	if s.IndTexWrapS == IndTexWrapOff && s.IndTexWrapT == IndTexWrapOff {
		return base
	}
	return fmt.Sprintf("vec2<f32>(%s, %s)", wrapN(base+".x", s.IndTexWrapS), wrapN(base+".y", s.IndTexWrapT))
}

var indTexBiasComponents = map[IndTexBiasSel][3]bool{
	IndTexBiasS:   {true, false, false},
	IndTexBiasT:   {false, true, false},
	IndTexBiasU:   {false, false, true},
	IndTexBiasST:  {true, true, false},
	IndTexBiasSU:  {true, false, true},
	IndTexBiasTU:  {false, true, true},
	IndTexBiasSTU: {true, true, true},
}

func indTexCoordBias(s *TevStage) string {
	comps, ok := indTexBiasComponents[s.IndTexBiasSel]
	if !ok {
		return ""
	}
	parts := make([]string, 3)
	for i, on := range comps {
		parts[i] = "0.0"
		if on {
			parts[i] = "-128.0"
		}
	}
	return " + vec3<f32>(" + strings.Join(parts, ", ") + ")"
}

func (g *fragmentGen) indirectMtx(s *TevStage) string {
	coord := fmt.Sprintf("(t_IndTexCoord%d%s)", s.IndTexStage, indTexCoordBias(s))
	switch s.IndTexMatrix {
	case IndTexMtx0, IndTexMtx1, IndTexMtx2:
		return fmt.Sprintf("Mul4x2(ub_MaterialParams.u_IndTexMtx[%d], vec4<f32>(%s, 0.0))", s.IndTexMatrix-IndTexMtx0, coord)
	default:
		Logger().Warn("gx: unsupported indirect matrix, using unscaled offset",
			"material", g.m.Name, "matrix", s.IndTexMatrix.String())
		return coord + ".xy"
	}
}

func (g *fragmentGen) texCoordIndirect(s *TevStage) string {
	base := g.texCoordWrap(s)
	if s.IndTexMatrix == IndTexMtxOff || int(s.IndTexStage) >= len(g.m.IndTexStages) {
		return base
	}
	offset := g.indirectMtx(s)
	if s.TexMap != TexMapNull {
		offset = fmt.Sprintf("(%s * TextureInvScale(%d))", offset, s.TexMap)
	}
	return base + " + " + offset
}

func (g *fragmentGen) texCoord(s *TevStage) string {
	if s.TexCoordID == TexCoordNull {
		return ""
	}
	op := "="
	if s.IndTexAddPrev {
		op = "+="
	}
	return fmt.Sprintf("t_TexCoord %s %s;", op, g.texCoordIndirect(s))
}

func (g *fragmentGen) tevStage(w *wgslWriter, i int) {
	s := &g.m.TevStages[i]
	w.line("")
	w.line("    // TEV Stage %d", i)
	if tc := g.texCoord(s); tc != "" {
		w.line("    %s", tc)
	}
	w.line("    // colorIn: %v %v %v %v colorOp: %v colorBias: %v colorScale: %v colorClamp: %t colorRegId: %v",
		s.ColorInA, s.ColorInB, s.ColorInC, s.ColorInD, s.ColorOp, s.ColorBias, s.ColorScale, s.ColorClamp, s.ColorRegID)
	w.line("    // alphaIn: %v %v %v %v alphaOp: %v alphaBias: %v alphaScale: %v alphaClamp: %t alphaRegId: %v",
		s.AlphaInA, s.AlphaInB, s.AlphaInC, s.AlphaInD, s.AlphaOp, s.AlphaBias, s.AlphaScale, s.AlphaClamp, s.AlphaRegID)
	w.line("    // texCoordId: %v texMap: %v channelId: %v", s.TexCoordID, s.TexMap, s.ChannelID)

	c := &stageCtx{s: s, tex: opaqueWhite}
	if stageReadsTex(s) && s.TexMap != TexMapNull && !g.hacks.DisableTextures {
		w.line("    let t_Sample%d = %s;", i, g.textureSample(s.TexMap, "t_TexCoord"))
		c.tex = fmt.Sprintf("t_Sample%d", i)
	}

	w.line("    t_TevA = TevOverflow(vec4<f32>(%s, %s));", colorIn(c, s.ColorInA), alphaIn(c, s.AlphaInA))
	w.line("    t_TevB = TevOverflow(vec4<f32>(%s, %s));", colorIn(c, s.ColorInB), alphaIn(c, s.AlphaInB))
	w.line("    t_TevC = TevOverflow(vec4<f32>(%s, %s));", colorIn(c, s.ColorInC), alphaIn(c, s.AlphaInC))
	w.line("    t_TevD = vec4<f32>(%s, %s);", colorIn(c, s.ColorInD), alphaIn(c, s.AlphaInD))

	creg, areg := tevRegister(s.ColorRegID), tevRegister(s.AlphaRegID)
	w.line("    %s = vec4<f32>(%s, %s.a);", creg,
		tevOp(s.ColorOp, s.ColorBias, s.ColorScale, s.ColorClamp, "rgb", true), creg)
	w.line("    %s.a = %s;", areg, tevOp(s.AlphaOp, s.AlphaBias, s.AlphaScale, s.AlphaClamp, "a", false))
}

func alphaTestCompare(cmp CompareType, ref float32) string {
	r := wgslFloat(ref)
	switch cmp {
	case CompareNever:
		return "false"
	case CompareLess:
		return "t_TevOutput.a < " + r
	case CompareEqual:
		return "t_TevOutput.a == " + r
	case CompareLEqual:
		return "t_TevOutput.a <= " + r
	case CompareGreater:
		return "t_TevOutput.a > " + r
	case CompareNEqual:
		return "t_TevOutput.a != " + r
	case CompareGEqual:
		return "t_TevOutput.a >= " + r
	default:
		return "true"
	}
}

func alphaTestOp(op AlphaOp) string {
	switch op {
	case AlphaOpOr:
		return "t_AlphaTestA || t_AlphaTestB"
	case AlphaOpXor:
		return "t_AlphaTestA != t_AlphaTestB"
	case AlphaOpXnor:
		return "t_AlphaTestA == t_AlphaTestB"
	default:
		return "t_AlphaTestA && t_AlphaTestB"
	}
}

// staticCompare reports the outcome of a compare that does not depend
// on the fragment.
func staticCompare(cmp CompareType) (result, known bool) {
	switch cmp {
	case CompareNever:
		return false, true
	case CompareAlways:
		return true, true
	default:
		return false, false
	}
}

func combineAlphaTest(op AlphaOp, a, b bool) bool {
	switch op {
	case AlphaOpOr:
		return a || b
	case AlphaOpXor:
		return a != b
	case AlphaOpXnor:
		return a == b
	default:
		return a && b
	}
}

// AlphaTestAlwaysPasses reports whether the alpha test passes every
// fragment regardless of its alpha.
func AlphaTestAlwaysPasses(at AlphaTest) bool {
	a, okA := staticCompare(at.CompareA)
	b, okB := staticCompare(at.CompareB)
	return okA && okB && combineAlphaTest(at.Op, a, b)
}

func (g *fragmentGen) alphaTest(w *wgslWriter) {
	at := g.m.AlphaTest
	w.line("")
	w.line("    // Alpha Test: Op %v", at.Op)
	w.line("    // Compare A: %v Reference A: %s", at.CompareA, wgslFloat(at.ReferenceA))
	w.line("    // Compare B: %v Reference B: %s", at.CompareB, wgslFloat(at.ReferenceB))
	if AlphaTestAlwaysPasses(at) {
		return
	}
	w.line("    let t_AlphaTestA: bool = %s;", alphaTestCompare(at.CompareA, at.ReferenceA))
	w.line("    let t_AlphaTestB: bool = %s;", alphaTestCompare(at.CompareB, at.ReferenceB))
	w.line("    if (!(%s)) {", alphaTestOp(at.Op))
	w.line("        discard;")
	w.line("    }")
}

func (g *fragmentGen) generate(w *wgslWriter) {
	w.line("")
	for i := range NumTextures {
		w.line("@group(0) @binding(%d) var u_Texture%d: texture_2d<f32>;", 3+2*i, i)
		w.line("@group(0) @binding(%d) var u_Sampler%d: sampler;", 4+2*i, i)
	}
	w.line("")
	w.raw(wgslTevHelpers)
	w.line("")
	w.line("@fragment")
	w.line("fn fs_main(fin: VertexOutput) -> @location(0) vec4<f32> {")
	for i := range 4 {
		w.line("    let s_kColor%d = ub_MaterialParams.u_KonstColor[%d];", i, i)
	}
	w.line("")
	w.line("    var t_ColorPrev = ub_MaterialParams.u_Color[0];")
	w.line("    var t_Color0 = ub_MaterialParams.u_Color[1];")
	w.line("    var t_Color1 = ub_MaterialParams.u_Color[2];")
	w.line("    var t_Color2 = ub_MaterialParams.u_Color[3];")
	w.line("")
	for i := range g.m.IndTexStages {
		g.indTexStage(w, i)
	}
	w.line("    var t_TexCoord: vec2<f32> = vec2<f32>(0.0, 0.0);")
	w.line("    var t_TevA: vec4<f32>;")
	w.line("    var t_TevB: vec4<f32>;")
	w.line("    var t_TevC: vec4<f32>;")
	w.line("    var t_TevD: vec4<f32>;")
	for i := range g.m.TevStages {
		g.tevStage(w, i)
	}

	// The last stage's registers are the combiner output, whatever
	// registers it names.
	last := &g.m.TevStages[len(g.m.TevStages)-1]
	creg, areg := tevRegister(last.ColorRegID), tevRegister(last.AlphaRegID)
	w.line("")
	if creg == areg {
		w.line("    var t_TevOutput: vec4<f32> = %s;", creg)
	} else {
		w.line("    var t_TevOutput: vec4<f32> = vec4<f32>(%s.rgb, %s.a);", creg, areg)
	}
	w.line("    t_TevOutput = TevOverflow(t_TevOutput);")
	g.alphaTest(w)
	w.line("    return t_TevOutput;")
	w.line("}")
}
