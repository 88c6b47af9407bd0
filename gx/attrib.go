// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gx

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/gxview/gfx"
)

// VertexAttribGenDef describes how a vertex stream is declared in the
// generated vertex stage.
type VertexAttribGenDef struct {
	Attrib VertexAttribute
	Format gputypes.VertexFormat
	// Name is the shader input name without its "a_" prefix.
	Name string
	// WGSLType is the declared shader type.
	WGSLType string
}

// vtxAttribGenDefs is ordered by shader location. The eight texture
// matrix indices are packed into two streams of four to stay within the
// attribute limit.
var vtxAttribGenDefs = [...]VertexAttribGenDef{
	{VtxPos, gputypes.VertexFormatFloat32x3, "Position", "vec3<f32>"},
	{VtxPnMtxIdx, gputypes.VertexFormatUint32, "PnMtxIdx", "u32"},
	{VtxTex0MtxIdx, gputypes.VertexFormatUint8x4, "TexMtx0123Idx", "vec4<u32>"},
	{VtxTex4MtxIdx, gputypes.VertexFormatUint8x4, "TexMtx4567Idx", "vec4<u32>"},
	{VtxNrm, gputypes.VertexFormatFloat32x3, "Normal", "vec3<f32>"},
	{VtxClr0, gputypes.VertexFormatFloat32x4, "Color0", "vec4<f32>"},
	{VtxClr1, gputypes.VertexFormatFloat32x4, "Color1", "vec4<f32>"},
	{VtxTex0, gputypes.VertexFormatFloat32x2, "Tex0", "vec2<f32>"},
	{VtxTex1, gputypes.VertexFormatFloat32x2, "Tex1", "vec2<f32>"},
	{VtxTex2, gputypes.VertexFormatFloat32x2, "Tex2", "vec2<f32>"},
	{VtxTex3, gputypes.VertexFormatFloat32x2, "Tex3", "vec2<f32>"},
	{VtxTex4, gputypes.VertexFormatFloat32x2, "Tex4", "vec2<f32>"},
	{VtxTex5, gputypes.VertexFormatFloat32x2, "Tex5", "vec2<f32>"},
	{VtxTex6, gputypes.VertexFormatFloat32x2, "Tex6", "vec2<f32>"},
	{VtxTex7, gputypes.VertexFormatFloat32x2, "Tex7", "vec2<f32>"},
}

// VertexAttribLocation returns the shader location of a vertex stream,
// or -1 if the stream is not a shader input of its own (TEX1MTXIDX and
// the other packed matrix indices).
func VertexAttribLocation(attr VertexAttribute) int {
	for i := range vtxAttribGenDefs {
		if vtxAttribGenDefs[i].Attrib == attr {
			return i
		}
	}
	return -1
}

// VertexAttribDef returns the declaration of a vertex stream.
func VertexAttribDef(attr VertexAttribute) (VertexAttribGenDef, bool) {
	if loc := VertexAttribLocation(attr); loc >= 0 {
		return vtxAttribGenDefs[loc], true
	}
	return VertexAttribGenDef{}, false
}

// VertexAttribDefs returns every declared vertex stream in location order.
func VertexAttribDefs() []VertexAttribGenDef {
	return append([]VertexAttribGenDef(nil), vtxAttribGenDefs[:]...)
}

// InterleavedInputLayout returns an input layout that reads attrs, in
// order, from one interleaved vertex buffer. Attributes the shader
// declares but attrs omits are left unbound.
func InterleavedInputLayout(indexFormat gputypes.IndexFormat, attrs ...VertexAttribute) gfx.InputLayoutDescriptor {
	var desc gfx.InputLayoutDescriptor
	offset := 0
	for _, a := range attrs {
		def, ok := VertexAttribDef(a)
		if !ok {
			continue
		}
		desc.VertexAttributeDescriptors = append(desc.VertexAttributeDescriptors, gfx.VertexAttributeDescriptor{
			Location:         VertexAttribLocation(a),
			Format:           def.Format,
			BufferIndex:      0,
			BufferByteOffset: offset,
		})
		offset += gfx.VertexFormatByteSize(def.Format)
	}
	desc.VertexBufferDescriptors = []*gfx.InputLayoutBufferDescriptor{{ByteStride: offset, Frequency: gfx.PerVertex}}
	desc.IndexBufferFormat = indexFormat
	return desc
}
