// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gx

// Material is a fixed-function material as described by asset data.
// A Material is treated as immutable once handed to Compile.
type Material struct {
	// Name identifies the material in diagnostics and program names.
	Name string

	CullMode CullMode

	LightChannels []LightChannelControl
	TexGens       []TexGen

	TevStages    []TevStage
	IndTexStages []IndTexStage

	AlphaTest AlphaTest
	RopInfo   RopInfo

	// UseTexMtxIdx selects, per texgen, the dynamic texture matrix index
	// streamed in the vertex data instead of the static TexGen.Matrix.
	UseTexMtxIdx [8]bool

	Options MaterialOptions
}

// Flag is a boolean with an explicit "unset" state.
type Flag uint8

const (
	FlagDefault Flag = iota
	FlagFalse
	FlagTrue
)

// Resolve returns the flag's value. FlagDefault resolves to true: every
// optional material feature is on unless the material opts out.
func (f Flag) Resolve() bool { return f != FlagFalse }

// FlagOf converts a bool to an explicit flag.
func FlagOf(b bool) Flag {
	if b {
		return FlagTrue
	}
	return FlagFalse
}

// MaterialOptions are size and layout optimizations a material may opt out of.
type MaterialOptions struct {
	// UsePnMtxIdx selects the position matrix with the per-vertex index.
	// When false, slot 0 is used for every vertex.
	UsePnMtxIdx Flag
	// HasPostTexMtxBlock reserves the 20 post-transform matrices.
	HasPostTexMtxBlock Flag
	// HasLightsBlock reserves the 8 lights.
	HasLightsBlock Flag
}

// UsePnMtxIdx reports whether the position matrix index is read per vertex.
func (m *Material) UsePnMtxIdx() bool { return m.Options.UsePnMtxIdx.Resolve() }

// HasPostTexMtxBlock reports whether the material params block includes post matrices.
func (m *Material) HasPostTexMtxBlock() bool { return m.Options.HasPostTexMtxBlock.Resolve() }

// HasLightsBlock reports whether the material params block includes lights.
func (m *Material) HasLightsBlock() bool { return m.Options.HasLightsBlock.Resolve() }

// ColorChannelControl configures lighting of one color or alpha output.
type ColorChannelControl struct {
	LightingEnabled     bool
	MatColorSource      ColorSrc
	AmbColorSource      ColorSrc
	LitMask             uint8
	DiffuseFunction     DiffuseFunction
	AttenuationFunction AttenuationFunction
}

// LightChannelControl pairs the color and alpha controls of one vertex color.
type LightChannelControl struct {
	ColorChannel ColorChannelControl
	AlphaChannel ColorChannelControl
}

// TexGen is one texture coordinate generator.
type TexGen struct {
	Type       TexGenType
	Source     TexGenSrc
	Matrix     TexGenMatrix
	Normalize  bool
	PostMatrix PostTexGenMatrix
}

// IndTexStage is one indirect texture lookup.
type IndTexStage struct {
	TexCoordID TexCoordID
	Texture    TexMapID
	ScaleS     IndTexScale
	ScaleT     IndTexScale
}

// SwapTable remaps the R, G, B and A components of a rasterized or
// texture input.
type SwapTable [4]TevColorChan

// IdentitySwapTable leaves components in place.
var IdentitySwapTable = SwapTable{TevChanR, TevChanG, TevChanB, TevChanA}

// TevStage is one texture environment combiner stage.
type TevStage struct {
	ColorInA   CombineColorInput
	ColorInB   CombineColorInput
	ColorInC   CombineColorInput
	ColorInD   CombineColorInput
	ColorOp    TevOp
	ColorBias  TevBias
	ColorScale TevScale
	ColorClamp bool
	ColorRegID Register

	AlphaInA   CombineAlphaInput
	AlphaInB   CombineAlphaInput
	AlphaInC   CombineAlphaInput
	AlphaInD   CombineAlphaInput
	AlphaOp    TevOp
	AlphaBias  TevBias
	AlphaScale TevScale
	AlphaClamp bool
	AlphaRegID Register

	TexCoordID TexCoordID
	TexMap     TexMapID
	ChannelID  RasColorChannelID

	KonstColorSel KonstColorSel
	KonstAlphaSel KonstAlphaSel

	// RasSwapTable and TexSwapTable are nil for the identity mapping.
	RasSwapTable *SwapTable
	TexSwapTable *SwapTable

	IndTexStage      IndTexStageID
	IndTexFormat     IndTexFormat
	IndTexBiasSel    IndTexBiasSel
	IndTexMatrix     IndTexMtxID
	IndTexWrapS      IndTexWrap
	IndTexWrapT      IndTexWrap
	IndTexAddPrev    bool
	IndTexUseOrigLOD bool
}

// AlphaTest is the per-fragment alpha test. References are in [0, 1].
type AlphaTest struct {
	Op         AlphaOp
	CompareA   CompareType
	ReferenceA float32
	CompareB   CompareType
	ReferenceB float32
}

// BlendState is the framebuffer blend configuration.
type BlendState struct {
	Type      BlendMode
	SrcFactor BlendFactor
	DstFactor BlendFactor
	LogicOp   LogicOp
}

// RopInfo is the raster operation state of a material.
type RopInfo struct {
	BlendMode  BlendState
	DepthTest  bool
	DepthFunc  CompareType
	DepthWrite bool
}

// LightingFudgeParams are the shader expressions handed to a lighting
// fudge generator.
type LightingFudgeParams struct {
	Vtx       string
	Amb       string
	Mat       string
	AmbSource string
	MatSource string
}

// Hacks alter code generation for debugging. The zero value changes nothing.
type Hacks struct {
	// LightingFudge, when set, replaces the lighting accumulation of every
	// lit channel with the returned vec4 expression.
	LightingFudge       func(LightingFudgeParams) string
	DisableTextures     bool
	DisableVertexColors bool
	DisableLighting     bool
}

func colorChannelsEqual(a, b ColorChannelControl) bool {
	return a == b
}
