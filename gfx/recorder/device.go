// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package recorder

import (
	"errors"
	"sync"

	"github.com/gogpu/gputypes"

	"github.com/gogpu/gxview/gfx"
)

// ErrDeviceDestroyed is returned by every create call after Destroy.
var ErrDeviceDestroyed = errors.New("recorder: device destroyed")

// Device is a gfx.Device that records commands instead of executing them.
//
// Device is safe for concurrent resource creation; passes are recorded by
// a single goroutine each.
type Device struct {
	mu sync.Mutex

	opts    options
	limits  gfx.Limits
	tracker *gfx.Tracker
	debug   gfx.DebugGroupStack

	commands []Command
	frames   uint64

	destroyed bool
}

var _ gfx.Device = (*Device)(nil)

// New creates a recording device.
func New(opts ...Option) *Device {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return &Device{
		opts:    o,
		limits:  gfx.LimitsFromGPU(o.limits),
		tracker: gfx.NewTracker(),
	}
}

// FinishRecording returns the commands recorded so far and starts a new
// recording.
func (d *Device) FinishRecording() *Recording {
	d.mu.Lock()
	defer d.mu.Unlock()
	r := &Recording{commands: d.commands, frames: d.frames}
	d.commands = nil
	d.frames = 0
	return r
}

func (d *Device) emit(cmds ...Command) {
	d.mu.Lock()
	d.commands = append(d.commands, cmds...)
	for _, c := range cmds {
		if c.Type() == CmdPresent {
			d.frames++
		}
	}
	d.mu.Unlock()
}

func (d *Device) checkAlive() error {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.destroyed {
		return ErrDeviceDestroyed
	}
	return nil
}

// QueryLimits returns the uniform layout limits.
func (d *Device) QueryLimits() gfx.Limits { return d.limits }

// QueryTextureFormatSupported reports whether textures of format can be
// created and uploaded.
func (d *Device) QueryTextureFormatSupported(format gputypes.TextureFormat) bool {
	return gfx.FormatByteSize(format) > 0
}

// QueryPipelineReady reports whether o is live. Recorded pipelines need
// no compilation.
func (d *Device) QueryPipelineReady(o *gfx.RenderPipeline) bool {
	return o != nil && o.State() != gfx.StateDestroyed && o.ID() != 0
}

// QueryPlatformAvailable reports whether the device can still be used.
func (d *Device) QueryPlatformAvailable() bool {
	return d.checkAlive() == nil
}

// QueryVendorInfo reports the recorder backend. With WithGLSL the device
// consumes GLSL produced from the WGSL programs.
func (d *Device) QueryVendorInfo() gfx.VendorInfo {
	info := gfx.VendorInfo{
		Backend:                  "recorder",
		AdapterName:              "recorder",
		DeviceType:               gputypes.DeviceTypeCPU,
		ShadingLanguage:          "WGSL",
		ShadingLanguageVersion:   "1.0",
		ExplicitBindingLocations: true,
		SeparateSamplerTextures:  true,
	}
	if d.opts.glsl {
		info.ShadingLanguage = "GLSL"
		info.ShadingLanguageVersion = "330"
		if d.opts.glslES {
			info.ShadingLanguageVersion = "300 es"
		}
		info.SeparateSamplerTextures = false
	}
	return info
}

// SetResourceName sets the debug name of o.
func (d *Device) SetResourceName(o gfx.Handle, name string) { d.tracker.SetName(o, name) }

// SetResourceLeakCheck enables or disables leak reporting for o.
func (d *Device) SetResourceLeakCheck(o gfx.Handle, enable bool) { d.tracker.SetLeakCheck(o, enable) }

// PushDebugGroup starts attributing work to g.
func (d *Device) PushDebugGroup(g *gfx.DebugGroup) { d.debug.Push(g) }

// PopDebugGroup stops attributing work to the innermost group.
func (d *Device) PopDebugGroup() { d.debug.Pop() }

// CheckForLeaks reports live resources with leak checking enabled.
func (d *Device) CheckForLeaks() []gfx.Leak { return d.tracker.Leaks() }

// Violations returns the lifecycle violations recorded so far.
func (d *Device) Violations() []gfx.Violation { return d.tracker.Violations() }

// Destroy marks the device unusable and logs leaked resources.
func (d *Device) Destroy() {
	d.mu.Lock()
	if d.destroyed {
		d.mu.Unlock()
		return
	}
	d.destroyed = true
	d.mu.Unlock()

	for _, l := range d.CheckForLeaks() {
		gfx.Logger().Warn("recorder: resource leaked", "resource", l.String())
	}
}
