// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gx

import (
	"fmt"
	"strconv"
)

// The enumerations below carry the numeric values of the console's
// graphics registers so that material data extracted from game archives
// can be assigned directly. Every type has a name table; a value missing
// from its table is invalid and fails compilation.

type enumValue interface{ ~uint8 | ~uint16 }

func enumString[T enumValue](names map[T]string, typ string, v T) string {
	if s, ok := names[v]; ok {
		return s
	}
	return typ + "(" + strconv.Itoa(int(v)) + ")"
}

func enumValid[T enumValue](names map[T]string, v T) bool {
	_, ok := names[v]
	return ok
}

// CullMode selects which triangle faces are rejected.
type CullMode uint8

const (
	CullNone CullMode = iota
	CullFront
	CullBack
	CullAll
)

var cullModeNames = map[CullMode]string{
	CullNone: "NONE", CullFront: "FRONT", CullBack: "BACK", CullAll: "ALL",
}

func (v CullMode) String() string { return enumString(cullModeNames, "CullMode", v) }
func (v CullMode) Valid() bool    { return enumValid(cullModeNames, v) }

// ColorSrc selects between a color register and the vertex color.
type ColorSrc uint8

const (
	ColorSrcReg ColorSrc = iota
	ColorSrcVtx
)

var colorSrcNames = map[ColorSrc]string{ColorSrcReg: "REG", ColorSrcVtx: "VTX"}

func (v ColorSrc) String() string { return enumString(colorSrcNames, "ColorSrc", v) }
func (v ColorSrc) Valid() bool    { return enumValid(colorSrcNames, v) }

// DiffuseFunction shapes the N·L term of a lit channel.
type DiffuseFunction uint8

const (
	DiffNone DiffuseFunction = iota
	DiffSign
	DiffClamp
)

var diffuseFunctionNames = map[DiffuseFunction]string{
	DiffNone: "NONE", DiffSign: "SIGN", DiffClamp: "CLAMP",
}

func (v DiffuseFunction) String() string {
	return enumString(diffuseFunctionNames, "DiffuseFunction", v)
}
func (v DiffuseFunction) Valid() bool { return enumValid(diffuseFunctionNames, v) }

// AttenuationFunction selects the per-light attenuation formula.
type AttenuationFunction uint8

const (
	AttnSpec AttenuationFunction = iota
	AttnSpot
	AttnNone
)

var attenuationFunctionNames = map[AttenuationFunction]string{
	AttnSpec: "SPEC", AttnSpot: "SPOT", AttnNone: "NONE",
}

func (v AttenuationFunction) String() string {
	return enumString(attenuationFunctionNames, "AttenuationFunction", v)
}
func (v AttenuationFunction) Valid() bool { return enumValid(attenuationFunctionNames, v) }

// TexGenType is the texture coordinate generation function.
type TexGenType uint8

const (
	TexGenMtx3x4 TexGenType = iota
	TexGenMtx2x4
	TexGenBump0
	TexGenBump1
	TexGenBump2
	TexGenBump3
	TexGenBump4
	TexGenBump5
	TexGenBump6
	TexGenBump7
	TexGenSRTG
)

var texGenTypeNames = map[TexGenType]string{
	TexGenMtx3x4: "MTX3x4", TexGenMtx2x4: "MTX2x4",
	TexGenBump0: "BUMP0", TexGenBump1: "BUMP1", TexGenBump2: "BUMP2", TexGenBump3: "BUMP3",
	TexGenBump4: "BUMP4", TexGenBump5: "BUMP5", TexGenBump6: "BUMP6", TexGenBump7: "BUMP7",
	TexGenSRTG: "SRTG",
}

func (v TexGenType) String() string { return enumString(texGenTypeNames, "TexGenType", v) }
func (v TexGenType) Valid() bool    { return enumValid(texGenTypeNames, v) }

// TexGenSrc is the input vector of a texture coordinate generator.
type TexGenSrc uint8

const (
	TexGenSrcPos TexGenSrc = iota
	TexGenSrcNrm
	TexGenSrcBinrm
	TexGenSrcTangent
	TexGenSrcTex0
	TexGenSrcTex1
	TexGenSrcTex2
	TexGenSrcTex3
	TexGenSrcTex4
	TexGenSrcTex5
	TexGenSrcTex6
	TexGenSrcTex7
	TexGenSrcTexCoord0
	TexGenSrcTexCoord1
	TexGenSrcTexCoord2
	TexGenSrcTexCoord3
	TexGenSrcTexCoord4
	TexGenSrcTexCoord5
	TexGenSrcTexCoord6
	TexGenSrcColor0
	TexGenSrcColor1
)

var texGenSrcNames = func() map[TexGenSrc]string {
	m := map[TexGenSrc]string{
		TexGenSrcPos: "POS", TexGenSrcNrm: "NRM", TexGenSrcBinrm: "BINRM", TexGenSrcTangent: "TANGENT",
		TexGenSrcColor0: "COLOR0", TexGenSrcColor1: "COLOR1",
	}
	for i := range 8 {
		m[TexGenSrcTex0+TexGenSrc(i)] = fmt.Sprintf("TEX%d", i)
	}
	for i := range 7 {
		m[TexGenSrcTexCoord0+TexGenSrc(i)] = fmt.Sprintf("TEXCOORD%d", i)
	}
	return m
}()

func (v TexGenSrc) String() string { return enumString(texGenSrcNames, "TexGenSrc", v) }
func (v TexGenSrc) Valid() bool    { return enumValid(texGenSrcNames, v) }

// TexGenMatrix selects a position or texture matrix, in steps of 3 rows.
type TexGenMatrix uint8

const (
	PnMtx0         TexGenMatrix = 0
	TexMtx0        TexGenMatrix = 30
	TexGenIdentity TexGenMatrix = 60
)

// PnMtx returns the position matrix selector for slot i (0..9).
func PnMtx(i int) TexGenMatrix { return PnMtx0 + TexGenMatrix(3*i) }

// TexMtx returns the texture matrix selector for slot i (0..9).
func TexMtx(i int) TexGenMatrix { return TexMtx0 + TexGenMatrix(3*i) }

func (v TexGenMatrix) String() string {
	switch {
	case v == TexGenIdentity:
		return "IDENTITY"
	case !v.Valid():
		return "TexGenMatrix(" + strconv.Itoa(int(v)) + ")"
	case v >= TexMtx0:
		return fmt.Sprintf("TEXMTX%d", (v-TexMtx0)/3)
	default:
		return fmt.Sprintf("PNMTX%d", v/3)
	}
}

func (v TexGenMatrix) Valid() bool { return v == TexGenIdentity || (v < TexGenIdentity && v%3 == 0) }

// PostTexGenMatrix selects a post-transform matrix, in steps of 3 rows.
type PostTexGenMatrix uint8

const (
	PTTexMtx0  PostTexGenMatrix = 64
	PTIdentity PostTexGenMatrix = 125
)

// PTTexMtx returns the post matrix selector for slot i (0..19).
func PTTexMtx(i int) PostTexGenMatrix { return PTTexMtx0 + PostTexGenMatrix(3*i) }

func (v PostTexGenMatrix) String() string {
	switch {
	case v == PTIdentity:
		return "PTIDENTITY"
	case v.Valid():
		return fmt.Sprintf("PTTEXMTX%d", (v-PTTexMtx0)/3)
	default:
		return "PostTexGenMatrix(" + strconv.Itoa(int(v)) + ")"
	}
}

func (v PostTexGenMatrix) Valid() bool {
	return v == PTIdentity || (v >= PTTexMtx0 && v <= PTTexMtx(19) && (v-PTTexMtx0)%3 == 0)
}

// IndTexScale divides an indirect coordinate by a power of two.
type IndTexScale uint8

const (
	IndTexScale1 IndTexScale = iota
	IndTexScale2
	IndTexScale4
	IndTexScale8
	IndTexScale16
	IndTexScale32
	IndTexScale64
	IndTexScale128
	IndTexScale256
)

var indTexScaleNames = map[IndTexScale]string{
	IndTexScale1: "_1", IndTexScale2: "_2", IndTexScale4: "_4", IndTexScale8: "_8",
	IndTexScale16: "_16", IndTexScale32: "_32", IndTexScale64: "_64",
	IndTexScale128: "_128", IndTexScale256: "_256",
}

func (v IndTexScale) String() string { return enumString(indTexScaleNames, "IndTexScale", v) }
func (v IndTexScale) Valid() bool    { return enumValid(indTexScaleNames, v) }

// IndTexFormat is the bit depth of indirect offsets.
type IndTexFormat uint8

const (
	IndTexFormat8 IndTexFormat = iota
	IndTexFormat5
	IndTexFormat4
	IndTexFormat3
)

var indTexFormatNames = map[IndTexFormat]string{
	IndTexFormat8: "_8", IndTexFormat5: "_5", IndTexFormat4: "_4", IndTexFormat3: "_3",
}

func (v IndTexFormat) String() string { return enumString(indTexFormatNames, "IndTexFormat", v) }
func (v IndTexFormat) Valid() bool    { return enumValid(indTexFormatNames, v) }

// IndTexBiasSel selects which indirect components receive a bias.
type IndTexBiasSel uint8

const (
	IndTexBiasNone IndTexBiasSel = iota
	IndTexBiasS
	IndTexBiasT
	IndTexBiasST
	IndTexBiasU
	IndTexBiasSU
	IndTexBiasTU
	IndTexBiasSTU
)

var indTexBiasSelNames = map[IndTexBiasSel]string{
	IndTexBiasNone: "NONE", IndTexBiasS: "S", IndTexBiasT: "T", IndTexBiasST: "ST",
	IndTexBiasU: "U", IndTexBiasSU: "SU", IndTexBiasTU: "TU", IndTexBiasSTU: "STU",
}

func (v IndTexBiasSel) String() string { return enumString(indTexBiasSelNames, "IndTexBiasSel", v) }
func (v IndTexBiasSel) Valid() bool    { return enumValid(indTexBiasSelNames, v) }

// IndTexMtxID selects the indirect matrix applied to an indirect offset.
type IndTexMtxID uint8

const (
	IndTexMtxOff IndTexMtxID = 0
	IndTexMtx0   IndTexMtxID = 1
	IndTexMtx1   IndTexMtxID = 2
	IndTexMtx2   IndTexMtxID = 3
	IndTexMtxS0  IndTexMtxID = 5
	IndTexMtxS1  IndTexMtxID = 6
	IndTexMtxS2  IndTexMtxID = 7
	IndTexMtxT0  IndTexMtxID = 9
	IndTexMtxT1  IndTexMtxID = 10
	IndTexMtxT2  IndTexMtxID = 11
)

var indTexMtxIDNames = map[IndTexMtxID]string{
	IndTexMtxOff: "OFF", IndTexMtx0: "_0", IndTexMtx1: "_1", IndTexMtx2: "_2",
	IndTexMtxS0: "S0", IndTexMtxS1: "S1", IndTexMtxS2: "S2",
	IndTexMtxT0: "T0", IndTexMtxT1: "T1", IndTexMtxT2: "T2",
}

func (v IndTexMtxID) String() string { return enumString(indTexMtxIDNames, "IndTexMtxID", v) }
func (v IndTexMtxID) Valid() bool    { return enumValid(indTexMtxIDNames, v) }

// IndTexWrap wraps the regular coordinate before the indirect offset is added.
type IndTexWrap uint8

const (
	IndTexWrapOff IndTexWrap = iota
	IndTexWrap256
	IndTexWrap128
	IndTexWrap64
	IndTexWrap32
	IndTexWrap16
	IndTexWrap0
)

var indTexWrapNames = map[IndTexWrap]string{
	IndTexWrapOff: "OFF", IndTexWrap256: "_256", IndTexWrap128: "_128", IndTexWrap64: "_64",
	IndTexWrap32: "_32", IndTexWrap16: "_16", IndTexWrap0: "_0",
}

func (v IndTexWrap) String() string { return enumString(indTexWrapNames, "IndTexWrap", v) }
func (v IndTexWrap) Valid() bool    { return enumValid(indTexWrapNames, v) }

// Modulus returns the wrap period in texels; zero for IndTexWrapOff and IndTexWrap0.
func (v IndTexWrap) Modulus() int {
	switch v {
	case IndTexWrap256:
		return 256
	case IndTexWrap128:
		return 128
	case IndTexWrap64:
		return 64
	case IndTexWrap32:
		return 32
	case IndTexWrap16:
		return 16
	default:
		return 0
	}
}

// IndTexStageID names one of the four indirect stages.
type IndTexStageID uint8

const (
	IndTexStage0 IndTexStageID = iota
	IndTexStage1
	IndTexStage2
	IndTexStage3
)

func (v IndTexStageID) String() string { return fmt.Sprintf("INDTEXSTAGE%d", int(v)) }
func (v IndTexStageID) Valid() bool    { return v <= IndTexStage3 }

// CombineColorInput is a TEV color operand.
type CombineColorInput uint8

const (
	CCCPrev CombineColorInput = iota
	CCAPrev
	CCC0
	CCA0
	CCC1
	CCA1
	CCC2
	CCA2
	CCTexC
	CCTexA
	CCRasC
	CCRasA
	CCOne
	CCHalf
	CCKonst
	CCZero
)

var combineColorInputNames = map[CombineColorInput]string{
	CCCPrev: "CPREV", CCAPrev: "APREV", CCC0: "C0", CCA0: "A0", CCC1: "C1", CCA1: "A1",
	CCC2: "C2", CCA2: "A2", CCTexC: "TEXC", CCTexA: "TEXA", CCRasC: "RASC", CCRasA: "RASA",
	CCOne: "ONE", CCHalf: "HALF", CCKonst: "KONST", CCZero: "ZERO",
}

func (v CombineColorInput) String() string {
	return enumString(combineColorInputNames, "CombineColorInput", v)
}
func (v CombineColorInput) Valid() bool { return enumValid(combineColorInputNames, v) }

// CombineAlphaInput is a TEV alpha operand.
type CombineAlphaInput uint8

const (
	CAAPrev CombineAlphaInput = iota
	CAA0
	CAA1
	CAA2
	CATexA
	CARasA
	CAKonst
	CAZero
)

var combineAlphaInputNames = map[CombineAlphaInput]string{
	CAAPrev: "APREV", CAA0: "A0", CAA1: "A1", CAA2: "A2",
	CATexA: "TEXA", CARasA: "RASA", CAKonst: "KONST", CAZero: "ZERO",
}

func (v CombineAlphaInput) String() string {
	return enumString(combineAlphaInputNames, "CombineAlphaInput", v)
}
func (v CombineAlphaInput) Valid() bool { return enumValid(combineAlphaInputNames, v) }

// TevOp is the TEV combine operator.
type TevOp uint8

const (
	TevOpAdd         TevOp = 0
	TevOpSub         TevOp = 1
	TevOpCompR8GT    TevOp = 8
	TevOpCompR8EQ    TevOp = 9
	TevOpCompGR16GT  TevOp = 10
	TevOpCompGR16EQ  TevOp = 11
	TevOpCompBGR24GT TevOp = 12
	TevOpCompBGR24EQ TevOp = 13
	TevOpCompRGB8GT  TevOp = 14
	TevOpCompRGB8EQ  TevOp = 15

	// The alpha combiner reuses the RGB8 slots as per-component alpha compares.
	TevOpCompA8GT = TevOpCompRGB8GT
	TevOpCompA8EQ = TevOpCompRGB8EQ
)

var tevOpNames = map[TevOp]string{
	TevOpAdd: "ADD", TevOpSub: "SUB",
	TevOpCompR8GT: "COMP_R8_GT", TevOpCompR8EQ: "COMP_R8_EQ",
	TevOpCompGR16GT: "COMP_GR16_GT", TevOpCompGR16EQ: "COMP_GR16_EQ",
	TevOpCompBGR24GT: "COMP_BGR24_GT", TevOpCompBGR24EQ: "COMP_BGR24_EQ",
	TevOpCompRGB8GT: "COMP_RGB8_GT", TevOpCompRGB8EQ: "COMP_RGB8_EQ",
}

func (v TevOp) String() string { return enumString(tevOpNames, "TevOp", v) }
func (v TevOp) Valid() bool    { return enumValid(tevOpNames, v) }

// IsCompare reports whether the operator is one of the compare variants.
func (v TevOp) IsCompare() bool { return v >= TevOpCompR8GT && v <= TevOpCompRGB8EQ }

// TevBias is added after the combine, before scaling.
type TevBias uint8

const (
	TevBiasZero TevBias = iota
	TevBiasAddHalf
	TevBiasSubHalf
)

var tevBiasNames = map[TevBias]string{
	TevBiasZero: "ZERO", TevBiasAddHalf: "ADDHALF", TevBiasSubHalf: "SUBHALF",
}

func (v TevBias) String() string { return enumString(tevBiasNames, "TevBias", v) }
func (v TevBias) Valid() bool    { return enumValid(tevBiasNames, v) }

// TevScale multiplies the biased combine result.
type TevScale uint8

const (
	TevScale1 TevScale = iota
	TevScale2
	TevScale4
	TevScaleDivide2
)

var tevScaleNames = map[TevScale]string{
	TevScale1: "SCALE_1", TevScale2: "SCALE_2", TevScale4: "SCALE_4", TevScaleDivide2: "DIVIDE_2",
}

func (v TevScale) String() string { return enumString(tevScaleNames, "TevScale", v) }
func (v TevScale) Valid() bool    { return enumValid(tevScaleNames, v) }

// Register is a TEV output register.
type Register uint8

const (
	RegPrev Register = iota
	Reg0
	Reg1
	Reg2
)

var registerNames = map[Register]string{RegPrev: "PREV", Reg0: "REG0", Reg1: "REG1", Reg2: "REG2"}

func (v Register) String() string { return enumString(registerNames, "Register", v) }
func (v Register) Valid() bool    { return enumValid(registerNames, v) }

// KonstColorSel selects the constant color operand of a stage.
type KonstColorSel uint8

const (
	KCSel1   KonstColorSel = 0
	KCSel7_8 KonstColorSel = 1
	KCSel3_4 KonstColorSel = 2
	KCSel5_8 KonstColorSel = 3
	KCSel1_2 KonstColorSel = 4
	KCSel3_8 KonstColorSel = 5
	KCSel1_4 KonstColorSel = 6
	KCSel1_8 KonstColorSel = 7
	KCSelK0  KonstColorSel = 12
	KCSelK1  KonstColorSel = 13
	KCSelK2  KonstColorSel = 14
	KCSelK3  KonstColorSel = 15
	KCSelK0R KonstColorSel = 16
	KCSelK1R KonstColorSel = 17
	KCSelK2R KonstColorSel = 18
	KCSelK3R KonstColorSel = 19
	KCSelK0G KonstColorSel = 20
	KCSelK1G KonstColorSel = 21
	KCSelK2G KonstColorSel = 22
	KCSelK3G KonstColorSel = 23
	KCSelK0B KonstColorSel = 24
	KCSelK1B KonstColorSel = 25
	KCSelK2B KonstColorSel = 26
	KCSelK3B KonstColorSel = 27
	KCSelK0A KonstColorSel = 28
	KCSelK1A KonstColorSel = 29
	KCSelK2A KonstColorSel = 30
	KCSelK3A KonstColorSel = 31
)

var konstFractionNames = [8]string{"1", "7_8", "3_4", "5_8", "1_2", "3_8", "1_4", "1_8"}

var konstColorSelNames = func() map[KonstColorSel]string {
	m := make(map[KonstColorSel]string, 28)
	for i, s := range konstFractionNames {
		m[KonstColorSel(i)] = s
	}
	for k := range 4 {
		m[KCSelK0+KonstColorSel(k)] = fmt.Sprintf("K%d", k)
		for c, ch := range "RGBA" {
			m[KCSelK0R+KonstColorSel(4*c+k)] = fmt.Sprintf("K%d_%c", k, ch)
		}
	}
	return m
}()

func (v KonstColorSel) String() string { return enumString(konstColorSelNames, "KonstColorSel", v) }
func (v KonstColorSel) Valid() bool    { return enumValid(konstColorSelNames, v) }

// KonstAlphaSel selects the constant alpha operand of a stage.
type KonstAlphaSel uint8

const (
	KASel1   KonstAlphaSel = 0
	KASel7_8 KonstAlphaSel = 1
	KASel3_4 KonstAlphaSel = 2
	KASel5_8 KonstAlphaSel = 3
	KASel1_2 KonstAlphaSel = 4
	KASel3_8 KonstAlphaSel = 5
	KASel1_4 KonstAlphaSel = 6
	KASel1_8 KonstAlphaSel = 7
	KASelK0R KonstAlphaSel = 16
	KASelK1R KonstAlphaSel = 17
	KASelK2R KonstAlphaSel = 18
	KASelK3R KonstAlphaSel = 19
	KASelK0G KonstAlphaSel = 20
	KASelK1G KonstAlphaSel = 21
	KASelK2G KonstAlphaSel = 22
	KASelK3G KonstAlphaSel = 23
	KASelK0B KonstAlphaSel = 24
	KASelK1B KonstAlphaSel = 25
	KASelK2B KonstAlphaSel = 26
	KASelK3B KonstAlphaSel = 27
	KASelK0A KonstAlphaSel = 28
	KASelK1A KonstAlphaSel = 29
	KASelK2A KonstAlphaSel = 30
	KASelK3A KonstAlphaSel = 31
)

var konstAlphaSelNames = func() map[KonstAlphaSel]string {
	m := make(map[KonstAlphaSel]string, 24)
	for i, s := range konstFractionNames {
		m[KonstAlphaSel(i)] = s
	}
	for k := range 4 {
		for c, ch := range "RGBA" {
			m[KASelK0R+KonstAlphaSel(4*c+k)] = fmt.Sprintf("K%d_%c", k, ch)
		}
	}
	return m
}()

func (v KonstAlphaSel) String() string { return enumString(konstAlphaSelNames, "KonstAlphaSel", v) }
func (v KonstAlphaSel) Valid() bool    { return enumValid(konstAlphaSelNames, v) }

// RasColorChannelID is the rasterized color feeding a TEV stage.
type RasColorChannelID uint8

const (
	RasColor0A0   RasColorChannelID = 0
	RasColor1A1   RasColorChannelID = 1
	RasAlphaBump  RasColorChannelID = 5
	RasAlphaBumpN RasColorChannelID = 6
	RasColorZero  RasColorChannelID = 7
)

var rasColorChannelIDNames = map[RasColorChannelID]string{
	RasColor0A0: "COLOR0A0", RasColor1A1: "COLOR1A1", RasAlphaBump: "ALPHA_BUMP",
	RasAlphaBumpN: "ALPHA_BUMP_N", RasColorZero: "COLOR_ZERO",
}

func (v RasColorChannelID) String() string {
	return enumString(rasColorChannelIDNames, "RasColorChannelID", v)
}
func (v RasColorChannelID) Valid() bool { return enumValid(rasColorChannelIDNames, v) }

// ColorChannelID is the channel selector used by SetTevOrder in asset data.
type ColorChannelID uint8

const (
	ChanColor0     ColorChannelID = 0
	ChanColor1     ColorChannelID = 1
	ChanAlpha0     ColorChannelID = 2
	ChanAlpha1     ColorChannelID = 3
	ChanColor0A0   ColorChannelID = 4
	ChanColor1A1   ColorChannelID = 5
	ChanColorZero  ColorChannelID = 6
	ChanAlphaBump  ColorChannelID = 7
	ChanAlphaBumpN ColorChannelID = 8
	ChanColorNull  ColorChannelID = 0xFF
)

var colorChannelIDNames = map[ColorChannelID]string{
	ChanColor0: "COLOR0", ChanColor1: "COLOR1", ChanAlpha0: "ALPHA0", ChanAlpha1: "ALPHA1",
	ChanColor0A0: "COLOR0A0", ChanColor1A1: "COLOR1A1", ChanColorZero: "COLOR_ZERO",
	ChanAlphaBump: "ALPHA_BUMP", ChanAlphaBumpN: "ALPHA_BUMP_N", ChanColorNull: "COLOR_NULL",
}

func (v ColorChannelID) String() string { return enumString(colorChannelIDNames, "ColorChannelID", v) }
func (v ColorChannelID) Valid() bool    { return enumValid(colorChannelIDNames, v) }

// TevColorChan names a component in a swap table.
type TevColorChan uint8

const (
	TevChanR TevColorChan = iota
	TevChanG
	TevChanB
	TevChanA
)

var tevColorChanNames = map[TevColorChan]string{TevChanR: "R", TevChanG: "G", TevChanB: "B", TevChanA: "A"}

func (v TevColorChan) String() string { return enumString(tevColorChanNames, "TevColorChan", v) }
func (v TevColorChan) Valid() bool    { return enumValid(tevColorChanNames, v) }

// CompareType is a depth or alpha comparison.
type CompareType uint8

const (
	CompareNever CompareType = iota
	CompareLess
	CompareEqual
	CompareLEqual
	CompareGreater
	CompareNEqual
	CompareGEqual
	CompareAlways
)

var compareTypeNames = map[CompareType]string{
	CompareNever: "NEVER", CompareLess: "LESS", CompareEqual: "EQUAL", CompareLEqual: "LEQUAL",
	CompareGreater: "GREATER", CompareNEqual: "NEQUAL", CompareGEqual: "GEQUAL", CompareAlways: "ALWAYS",
}

func (v CompareType) String() string { return enumString(compareTypeNames, "CompareType", v) }
func (v CompareType) Valid() bool    { return enumValid(compareTypeNames, v) }

// AlphaOp combines the two alpha test comparisons.
type AlphaOp uint8

const (
	AlphaOpAnd AlphaOp = iota
	AlphaOpOr
	AlphaOpXor
	AlphaOpXnor
)

var alphaOpNames = map[AlphaOp]string{
	AlphaOpAnd: "AND", AlphaOpOr: "OR", AlphaOpXor: "XOR", AlphaOpXnor: "XNOR",
}

func (v AlphaOp) String() string { return enumString(alphaOpNames, "AlphaOp", v) }
func (v AlphaOp) Valid() bool    { return enumValid(alphaOpNames, v) }

// BlendMode is the framebuffer blend type.
type BlendMode uint8

const (
	BlendNone BlendMode = iota
	BlendBlend
	BlendLogic
	BlendSubtract
)

var blendModeNames = map[BlendMode]string{
	BlendNone: "NONE", BlendBlend: "BLEND", BlendLogic: "LOGIC", BlendSubtract: "SUBTRACT",
}

func (v BlendMode) String() string { return enumString(blendModeNames, "BlendMode", v) }
func (v BlendMode) Valid() bool    { return enumValid(blendModeNames, v) }

// BlendFactor is a framebuffer blend factor. As a destination factor,
// SRCCLR and INVSRCCLR refer to the source color; as a source factor they
// refer to the destination color.
type BlendFactor uint8

const (
	BlendZero BlendFactor = iota
	BlendOne
	BlendSrcClr
	BlendInvSrcClr
	BlendSrcAlpha
	BlendInvSrcAlpha
	BlendDstAlpha
	BlendInvDstAlpha
)

var blendFactorNames = map[BlendFactor]string{
	BlendZero: "ZERO", BlendOne: "ONE", BlendSrcClr: "SRCCLR", BlendInvSrcClr: "INVSRCCLR",
	BlendSrcAlpha: "SRCALPHA", BlendInvSrcAlpha: "INVSRCALPHA",
	BlendDstAlpha: "DSTALPHA", BlendInvDstAlpha: "INVDSTALPHA",
}

func (v BlendFactor) String() string { return enumString(blendFactorNames, "BlendFactor", v) }
func (v BlendFactor) Valid() bool    { return enumValid(blendFactorNames, v) }

// LogicOp is the framebuffer logic operation used by BlendLogic.
type LogicOp uint8

const (
	LogicClear LogicOp = iota
	LogicAnd
	LogicRevAnd
	LogicCopy
	LogicInvAnd
	LogicNoOp
	LogicXor
	LogicOr
	LogicNor
	LogicEquiv
	LogicInv
	LogicRevOr
	LogicInvCopy
	LogicInvOr
	LogicNand
	LogicSet
)

var logicOpNames = map[LogicOp]string{
	LogicClear: "CLEAR", LogicAnd: "AND", LogicRevAnd: "REVAND", LogicCopy: "COPY",
	LogicInvAnd: "INVAND", LogicNoOp: "NOOP", LogicXor: "XOR", LogicOr: "OR",
	LogicNor: "NOR", LogicEquiv: "EQUIV", LogicInv: "INV", LogicRevOr: "REVOR",
	LogicInvCopy: "INVCOPY", LogicInvOr: "INVOR", LogicNand: "NAND", LogicSet: "SET",
}

func (v LogicOp) String() string { return enumString(logicOpNames, "LogicOp", v) }
func (v LogicOp) Valid() bool    { return enumValid(logicOpNames, v) }

// SpotFunction is the angular falloff shape solved by Light.SetSpot.
type SpotFunction uint8

const (
	SpotOff SpotFunction = iota
	SpotFlat
	SpotCos
	SpotCos2
	SpotSharp
	SpotRing1
	SpotRing2
)

var spotFunctionNames = map[SpotFunction]string{
	SpotOff: "OFF", SpotFlat: "FLAT", SpotCos: "COS", SpotCos2: "COS2",
	SpotSharp: "SHARP", SpotRing1: "RING1", SpotRing2: "RING2",
}

func (v SpotFunction) String() string { return enumString(spotFunctionNames, "SpotFunction", v) }
func (v SpotFunction) Valid() bool    { return enumValid(spotFunctionNames, v) }

// DistAttnFunction is the distance falloff shape solved by Light.SetDistAttn.
type DistAttnFunction uint8

const (
	DistAttnOff DistAttnFunction = iota
	DistAttnGentle
	DistAttnMedium
	DistAttnSteep
)

var distAttnFunctionNames = map[DistAttnFunction]string{
	DistAttnOff: "OFF", DistAttnGentle: "GENTLE", DistAttnMedium: "MEDIUM", DistAttnSteep: "STEEP",
}

func (v DistAttnFunction) String() string {
	return enumString(distAttnFunctionNames, "DistAttnFunction", v)
}
func (v DistAttnFunction) Valid() bool { return enumValid(distAttnFunctionNames, v) }

// VertexAttribute identifies a vertex stream.
type VertexAttribute uint8

const (
	VtxPnMtxIdx VertexAttribute = iota
	VtxTex0MtxIdx
	VtxTex1MtxIdx
	VtxTex2MtxIdx
	VtxTex3MtxIdx
	VtxTex4MtxIdx
	VtxTex5MtxIdx
	VtxTex6MtxIdx
	VtxTex7MtxIdx
	VtxPos
	VtxNrm
	VtxClr0
	VtxClr1
	VtxTex0
	VtxTex1
	VtxTex2
	VtxTex3
	VtxTex4
	VtxTex5
	VtxTex6
	VtxTex7
)

var vertexAttributeNames = func() map[VertexAttribute]string {
	m := map[VertexAttribute]string{
		VtxPnMtxIdx: "PNMTXIDX", VtxPos: "POS", VtxNrm: "NRM", VtxClr0: "CLR0", VtxClr1: "CLR1",
	}
	for i := range 8 {
		m[VtxTex0MtxIdx+VertexAttribute(i)] = fmt.Sprintf("TEX%dMTXIDX", i)
		m[VtxTex0+VertexAttribute(i)] = fmt.Sprintf("TEX%d", i)
	}
	return m
}()

func (v VertexAttribute) String() string {
	return enumString(vertexAttributeNames, "VertexAttribute", v)
}
func (v VertexAttribute) Valid() bool { return enumValid(vertexAttributeNames, v) }

// TexCoordID names a generated texture coordinate.
type TexCoordID uint8

const (
	TexCoord0    TexCoordID = 0
	TexCoord7    TexCoordID = 7
	TexCoordNull TexCoordID = 0xFF
)

func (v TexCoordID) String() string {
	if v == TexCoordNull {
		return "TEXCOORD_NULL"
	}
	return fmt.Sprintf("TEXCOORD%d", int(v))
}

func (v TexCoordID) Valid() bool { return v <= TexCoord7 || v == TexCoordNull }

// TexMapID names a texture unit.
type TexMapID uint8

const (
	TexMap0    TexMapID = 0
	TexMap7    TexMapID = 7
	TexMapNull TexMapID = 0xFF
)

func (v TexMapID) String() string {
	if v == TexMapNull {
		return "TEXMAP_NULL"
	}
	return fmt.Sprintf("TEXMAP%d", int(v))
}

func (v TexMapID) Valid() bool { return v <= TexMap7 || v == TexMapNull }
