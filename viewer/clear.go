// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package viewer

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/gxview/gfx"
)

// clearScene draws a full-size clear when no scene renders. While a scene
// renders its attachment is shrunk to 1x1.
type clearScene struct {
	color      *gfx.ColorAttachment
	clearColor gputypes.Color
}

func (c *clearScene) setParameters(device gfx.Device, width, height int) error {
	if c.color != nil {
		if c.color.Width == width && c.color.Height == height {
			return nil
		}
		device.DestroyColorAttachment(c.color)
		c.color = nil
	}
	color, err := device.CreateColorAttachment(width, height, 1)
	if err != nil {
		return err
	}
	device.SetResourceName(color, "Clear Scene")
	c.color = color
	return nil
}

func (c *clearScene) minimize(device gfx.Device) error {
	return c.setParameters(device, 1, 1)
}

func (c *clearScene) render(device gfx.Device, input *RenderInput) (gfx.RenderPass, error) {
	if err := c.setParameters(device, input.BackbufferWidth, input.BackbufferHeight); err != nil {
		return nil, err
	}
	return device.CreateRenderPass(gfx.RenderPassDescriptor{
		ColorAttachment:      c.color,
		ColorLoadDisposition: gfx.LoadClear,
		ColorClearColor:      c.clearColor,
	}), nil
}

func (c *clearScene) destroy(device gfx.Device) {
	if c.color != nil {
		device.DestroyColorAttachment(c.color)
		c.color = nil
	}
}
