// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gx

import "github.com/go-gl/mathgl/mgl32"

// Uniform buffer slots of the generated programs.
const (
	UBSceneParams    = 0
	UBMaterialParams = 1
	UBPacketParams   = 2

	// NumUniformBuffers is the number of uniform blocks a program declares.
	NumUniformBuffers = 3
	// NumTextures is the number of texture and sampler pairs a program declares.
	NumTextures = 8
)

// Uniform block sizes in 32-bit words. Matrices are stored row-major:
// a 4x3 matrix is three vec4 rows.
const (
	SceneParamsBlockSize  = 4*4 + 4
	PacketParamsBlockSize = 4 * 3 * 10

	materialParamsBaseSize = 4*2 + 4*2 + 4*4 + 4*4 + 4*3*10 + 4*8 + 4*2*3
	postTexMtxBlockSize    = 4 * 3 * 20
	lightsBlockSize        = lightWords * MaxLights
)

// MaterialParamsBlockSize returns the size of m's material block in
// words. The optional post matrix and light sub-blocks are omitted when
// the material opts out of them.
func MaterialParamsBlockSize(m *Material) int {
	size := materialParamsBaseSize
	if m.HasPostTexMtxBlock() {
		size += postTexMtxBlockSize
	}
	if m.HasLightsBlock() {
		size += lightsBlockSize
	}
	return size
}

// FillSceneParams writes the scene block: the projection matrix followed
// by a vec4 whose x is the scene-wide texture LOD bias.
func FillSceneParams(dst []float32, projection mgl32.Mat4, lodBias float32) int {
	_ = dst[SceneParamsBlockSize-1]
	for r := range 4 {
		row := projection.Row(r)
		copy(dst[4*r:], row[:])
	}
	dst[16], dst[17], dst[18], dst[19] = lodBias, 0, 0, 0
	return SceneParamsBlockSize
}

// FillPacketParams writes the packet block. Slots beyond len(posMtx) are
// written as identity.
func FillPacketParams(dst []float32, posMtx []mgl32.Mat3x4) int {
	_ = dst[PacketParamsBlockSize-1]
	offs := 0
	for i := range 10 {
		m := Ident3x4()
		if i < len(posMtx) {
			m = posMtx[i]
		}
		offs += packMat3x4(dst[offs:], m)
	}
	return offs
}

// Ident3x4 returns the 4x3 identity used for unset position and texture
// matrices.
func Ident3x4() mgl32.Mat3x4 {
	return mgl32.Mat3x4FromRows(
		mgl32.Vec4{1, 0, 0, 0},
		mgl32.Vec4{0, 1, 0, 0},
		mgl32.Vec4{0, 0, 1, 0},
	)
}

// MaterialParams is the host copy of a material block.
type MaterialParams struct {
	ColorMatReg [2]mgl32.Vec4
	ColorAmbReg [2]mgl32.Vec4
	KonstColor  [4]mgl32.Vec4
	// Color holds the initial values of PREV, REG0, REG1 and REG2.
	Color  [4]mgl32.Vec4
	TexMtx [10]mgl32.Mat3x4
	// TextureParams holds width, height, 0 and the LOD bias per texture unit.
	TextureParams [NumTextures]mgl32.Vec4
	IndTexMtx     [3]mgl32.Mat2x4
	PostTexMtx    [20]mgl32.Mat3x4
	Lights        [MaxLights]Light
}

// NewMaterialParams returns params with identity matrices, reset lights,
// and 1x1 textures.
func NewMaterialParams() *MaterialParams {
	p := &MaterialParams{}
	for i := range p.TexMtx {
		p.TexMtx[i] = Ident3x4()
	}
	for i := range p.PostTexMtx {
		p.PostTexMtx[i] = Ident3x4()
	}
	for i := range p.IndTexMtx {
		p.IndTexMtx[i] = mgl32.Mat2x4FromRows(mgl32.Vec4{0.5, 0, 0, 0}, mgl32.Vec4{0, 0.5, 0, 0})
	}
	for i := range p.TextureParams {
		p.TextureParams[i] = mgl32.Vec4{1, 1, 0, 0}
	}
	for i := range p.Lights {
		p.Lights[i].Reset()
	}
	return p
}

// SetTextureParams records the size and LOD bias of texture unit i.
func (p *MaterialParams) SetTextureParams(i int, width, height int, lodBias float32) {
	p.TextureParams[i] = mgl32.Vec4{float32(width), float32(height), 0, lodBias}
}

// Fill writes the material block laid out for m and returns the number
// of words written, which equals MaterialParamsBlockSize(m).
func (p *MaterialParams) Fill(dst []float32, m *Material) int {
	_ = dst[MaterialParamsBlockSize(m)-1]
	offs := 0
	offs += packVec4s(dst[offs:], p.ColorMatReg[:])
	offs += packVec4s(dst[offs:], p.ColorAmbReg[:])
	offs += packVec4s(dst[offs:], p.KonstColor[:])
	offs += packVec4s(dst[offs:], p.Color[:])
	for _, mtx := range p.TexMtx {
		offs += packMat3x4(dst[offs:], mtx)
	}
	offs += packVec4s(dst[offs:], p.TextureParams[:])
	for _, mtx := range p.IndTexMtx {
		r0, r1 := mtx.Rows()
		copy(dst[offs:], r0[:])
		copy(dst[offs+4:], r1[:])
		offs += 8
	}
	if m.HasPostTexMtxBlock() {
		for _, mtx := range p.PostTexMtx {
			offs += packMat3x4(dst[offs:], mtx)
		}
	}
	if m.HasLightsBlock() {
		for i := range p.Lights {
			offs += p.Lights[i].pack(dst[offs:])
		}
	}
	return offs
}

func packVec4s(dst []float32, vs []mgl32.Vec4) int {
	for i, v := range vs {
		copy(dst[4*i:], v[:])
	}
	return 4 * len(vs)
}

func packMat3x4(dst []float32, m mgl32.Mat3x4) int {
	r0, r1, r2 := m.Rows()
	copy(dst[0:], r0[:])
	copy(dst[4:], r1[:])
	copy(dst[8:], r2[:])
	return 12
}
