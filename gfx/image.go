// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gfx

import (
	"image"

	"github.com/gogpu/gputypes"
	"golang.org/x/image/draw"
)

// MipFilter selects the downsampling kernel for generated mip levels.
type MipFilter uint8

const (
	MipBox MipFilter = iota
	MipBilinear
	MipCatmullRom
)

func (f MipFilter) scaler() draw.Scaler {
	switch f {
	case MipBilinear:
		return draw.BiLinear
	case MipCatmullRom:
		return draw.CatmullRom
	default:
		return draw.ApproxBiLinear
	}
}

// TextureFromImage converts img into RGBA8 level data ready for
// HostAccessPass.UploadTextureData. numLevels of 0 builds the full chain.
func TextureFromImage(img image.Image, numLevels int, filter MipFilter) (TextureDescriptor, [][]byte) {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if numLevels <= 0 {
		numLevels = MipLevelCount(w, h)
	}
	desc := MakeTextureDescriptor2D(gputypes.TextureFormatRGBA8Unorm, w, h, numLevels)

	base := image.NewNRGBA(image.Rect(0, 0, w, h))
	draw.Copy(base, image.Point{}, img, b, draw.Src, nil)

	levels := make([][]byte, 0, numLevels)
	levels = append(levels, base.Pix)
	prev := base
	for level := 1; level < numLevels; level++ {
		lw, lh := MipLevelExtent(w, h, level)
		dst := image.NewNRGBA(image.Rect(0, 0, lw, lh))
		filter.scaler().Scale(dst, dst.Bounds(), prev, prev.Bounds(), draw.Src, nil)
		levels = append(levels, dst.Pix)
		prev = dst
	}
	return desc, levels
}
