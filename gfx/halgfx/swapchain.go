// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package halgfx

import (
	"fmt"
	"image"

	"github.com/gogpu/gputypes"
	"github.com/gogpu/wgpu/hal"

	"github.com/gogpu/gxview/gfx"
)

// copyPitchAlignment is the row alignment of texture to buffer copies.
const copyPitchAlignment = 256

// SwapChain presents into an offscreen RGBA8 texture that can be read
// back with ReadPixels. A windowing host copies or samples the onscreen
// texture itself.
type SwapChain struct {
	dev      *Device
	onscreen *gfx.Texture
	frames   uint64
}

var _ gfx.SwapChain = (*SwapChain)(nil)

// NewSwapChain creates a swap chain of the given size on d.
func NewSwapChain(d *Device, width, height int) (*SwapChain, error) {
	sc := &SwapChain{dev: d}
	if err := sc.configure(width, height); err != nil {
		return nil, err
	}
	return sc, nil
}

func (sc *SwapChain) configure(width, height int) error {
	if sc.onscreen != nil {
		if sc.onscreen.Descriptor.Width == width && sc.onscreen.Descriptor.Height == height {
			return nil
		}
		sc.dev.DestroyTexture(sc.onscreen)
		sc.onscreen = nil
	}
	tex, err := sc.dev.CreateTexture(gfx.MakeTextureDescriptor2D(gputypes.TextureFormatRGBA8Unorm, width, height, 1))
	if err != nil {
		return fmt.Errorf("halgfx: onscreen texture: %w", err)
	}
	sc.dev.SetResourceName(tex, "Onscreen")
	sc.dev.SetResourceLeakCheck(tex, false)
	sc.onscreen = tex
	return nil
}

// ConfigureSwapChain resizes the onscreen texture. Sizes below 1 are
// clamped.
func (sc *SwapChain) ConfigureSwapChain(width, height int) {
	if err := sc.configure(max(width, 1), max(height, 1)); err != nil {
		gfx.Logger().Error("halgfx: configure swap chain", "width", width, "height", height, "err", err)
	}
}

// Device returns the device the swap chain renders with.
func (sc *SwapChain) Device() gfx.Device { return sc.dev }

// OnscreenTexture returns the texture the current frame resolves into.
func (sc *SwapChain) OnscreenTexture() *gfx.Texture { return sc.onscreen }

// Present finishes the frame.
func (sc *SwapChain) Present() error {
	if err := sc.dev.checkAlive(); err != nil {
		return err
	}
	sc.frames++
	return nil
}

// Frames returns the number of presented frames.
func (sc *SwapChain) Frames() uint64 { return sc.frames }

// ReadPixels copies the onscreen texture back to host memory.
func (sc *SwapChain) ReadPixels() (*image.RGBA, error) {
	d := sc.dev
	if err := d.checkAlive(); err != nil {
		return nil, err
	}
	if sc.onscreen == nil {
		return nil, fmt.Errorf("%w: swap chain not configured", gfx.ErrInvalidDescriptor)
	}
	tex := sc.onscreen.Impl.(*textureImpl).tex
	w, h := uint32(sc.onscreen.Descriptor.Width), uint32(sc.onscreen.Descriptor.Height)

	bytesPerRow := w * 4
	alignedBytesPerRow := (bytesPerRow + copyPitchAlignment - 1) &^ (copyPitchAlignment - 1)
	stagingSize := uint64(alignedBytesPerRow) * uint64(h)

	encoder, err := d.device.CreateCommandEncoder(&hal.CommandEncoderDescriptor{Label: "gfx_readback"})
	if err != nil {
		return nil, fmt.Errorf("halgfx: create command encoder: %w", err)
	}
	if err := encoder.BeginEncoding("gfx_readback"); err != nil {
		return nil, fmt.Errorf("halgfx: begin encoding: %w", err)
	}
	staging, err := d.device.CreateBuffer(&hal.BufferDescriptor{
		Label: "gfx_staging",
		Size:  stagingSize,
		Usage: gputypes.BufferUsageMapRead | gputypes.BufferUsageCopyDst,
	})
	if err != nil {
		encoder.DiscardEncoding()
		return nil, fmt.Errorf("halgfx: create staging buffer: %w", err)
	}
	defer d.device.DestroyBuffer(staging)

	encoder.TransitionTextures([]hal.TextureBarrier{{
		Texture: tex,
		Usage: hal.TextureUsageTransition{
			OldUsage: gputypes.TextureUsageRenderAttachment,
			NewUsage: gputypes.TextureUsageCopySrc,
		},
	}})
	encoder.CopyTextureToBuffer(tex, staging, []hal.BufferTextureCopy{{
		BufferLayout: hal.ImageDataLayout{Offset: 0, BytesPerRow: alignedBytesPerRow, RowsPerImage: h},
		TextureBase:  hal.ImageCopyTexture{Texture: tex, MipLevel: 0},
		Size:         hal.Extent3D{Width: w, Height: h, DepthOrArrayLayers: 1},
	}})
	encoder.TransitionTextures([]hal.TextureBarrier{{
		Texture: tex,
		Usage: hal.TextureUsageTransition{
			OldUsage: gputypes.TextureUsageCopySrc,
			NewUsage: gputypes.TextureUsageRenderAttachment,
		},
	}})

	cmdBuf, err := encoder.EndEncoding()
	if err != nil {
		return nil, fmt.Errorf("halgfx: end encoding: %w", err)
	}
	defer d.device.FreeCommandBuffer(cmdBuf)
	if err := d.submitAndWait(cmdBuf); err != nil {
		return nil, err
	}

	readback := make([]byte, stagingSize)
	if err := d.queue.ReadBuffer(staging, 0, readback); err != nil {
		return nil, fmt.Errorf("halgfx: readback: %w", err)
	}
	img := image.NewRGBA(image.Rect(0, 0, int(w), int(h)))
	for row := range int(h) {
		src := readback[row*int(alignedBytesPerRow):]
		copy(img.Pix[row*img.Stride:row*img.Stride+int(bytesPerRow)], src[:bytesPerRow])
	}
	return img, nil
}

// Destroy releases the onscreen texture.
func (sc *SwapChain) Destroy() {
	if sc.onscreen != nil {
		sc.dev.DestroyTexture(sc.onscreen)
		sc.onscreen = nil
	}
}
