// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package recorder

import (
	"fmt"
	"image"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/gxview/gfx"
)

// SwapChain presents into a host RGBA8 texture. Each Present appends a
// PresentCommand to the device recording.
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
		return fmt.Errorf("recorder: onscreen texture: %w", err)
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
		gfx.Logger().Error("recorder: configure swap chain", "width", width, "height", height, "err", err)
	}
}

// Device returns the device the swap chain renders with.
func (sc *SwapChain) Device() gfx.Device { return sc.dev }

// OnscreenTexture returns the texture the current frame resolves into.
func (sc *SwapChain) OnscreenTexture() *gfx.Texture { return sc.onscreen }

// Present records the end of a frame.
func (sc *SwapChain) Present() error {
	if err := sc.dev.checkAlive(); err != nil {
		return err
	}
	sc.frames++
	sc.dev.emit(PresentCommand{Frame: sc.frames})
	return nil
}

// Frames returns the number of presented frames.
func (sc *SwapChain) Frames() uint64 { return sc.frames }

// ReadPixels returns a copy of the onscreen texture.
func (sc *SwapChain) ReadPixels() (*image.RGBA, error) {
	if err := sc.dev.checkAlive(); err != nil {
		return nil, err
	}
	if sc.onscreen == nil {
		return nil, fmt.Errorf("%w: swap chain not configured", gfx.ErrInvalidDescriptor)
	}
	w, h := sc.onscreen.Descriptor.Width, sc.onscreen.Descriptor.Height
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	copy(img.Pix, TextureLevel(sc.onscreen, 0))
	return img, nil
}

// Destroy releases the onscreen texture.
func (sc *SwapChain) Destroy() {
	if sc.onscreen != nil {
		sc.dev.DestroyTexture(sc.onscreen)
		sc.onscreen = nil
	}
}
