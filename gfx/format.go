// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gfx

import "github.com/gogpu/gputypes"

// formatByteSize returns the bytes per texel of the uncompressed texture
// formats gfx can upload and sample.
func formatByteSize(f gputypes.TextureFormat) (int, bool) {
	switch f {
	case gputypes.TextureFormatR8Unorm:
		return 1, true
	case gputypes.TextureFormatRG8Unorm, gputypes.TextureFormatR16Float, gputypes.TextureFormatDepth16Unorm:
		return 2, true
	case gputypes.TextureFormatRGBA8Unorm, gputypes.TextureFormatRGBA8UnormSrgb,
		gputypes.TextureFormatBGRA8Unorm, gputypes.TextureFormatR32Float,
		gputypes.TextureFormatDepth24Plus, gputypes.TextureFormatDepth24PlusStencil8,
		gputypes.TextureFormatDepth32Float:
		return 4, true
	case gputypes.TextureFormatRGBA16Float, gputypes.TextureFormatRG32Float:
		return 8, true
	case gputypes.TextureFormatRGBA32Float:
		return 16, true
	default:
		return 0, false
	}
}

// FormatByteSize returns the size in bytes of one texel of f, or 0 when f
// is not an uncompressed format known to gfx.
func FormatByteSize(f gputypes.TextureFormat) int {
	n, _ := formatByteSize(f)
	return n
}

// MipLevelByteSize returns the byte size of mip level `level` of a texture.
func MipLevelByteSize(d TextureDescriptor, level int) int {
	w, h := MipLevelExtent(d.Width, d.Height, level)
	return w * h * FormatByteSize(d.PixelFormat)
}

// MipLevelExtent returns the dimensions of a mip level, never below 1x1.
func MipLevelExtent(width, height, level int) (int, int) {
	w, h := width>>level, height>>level
	return max(w, 1), max(h, 1)
}

// MipLevelCount returns the number of levels in a full chain down to 1x1.
func MipLevelCount(width, height int) int {
	n := 1
	for width > 1 || height > 1 {
		width, height = width>>1, height>>1
		n++
	}
	return n
}

// VertexFormatByteSize returns the size of one vertex attribute element,
// or 0 for formats gx never emits.
func VertexFormatByteSize(f gputypes.VertexFormat) int {
	switch f {
	case gputypes.VertexFormatUint8x4, gputypes.VertexFormatUint32, gputypes.VertexFormatFloat32:
		return 4
	case gputypes.VertexFormatFloat32x2:
		return 8
	case gputypes.VertexFormatFloat32x3:
		return 12
	case gputypes.VertexFormatFloat32x4:
		return 16
	default:
		return 0
	}
}
