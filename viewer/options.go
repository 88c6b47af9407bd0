// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package viewer

import (
	"math"

	"github.com/gogpu/gputypes"
)

// options holds viewer configuration.
type options struct {
	clearColor gputypes.Color
	timeScale  float64
	fovY       float32
	near       float32
}

func defaultOptions() options {
	return options{
		clearColor: gputypes.Color{A: 1},
		timeScale:  1,
		fovY:       math.Pi / 4,
		near:       5,
	}
}

// Option configures a Viewer.
type Option func(*options)

// WithClearColor sets the color of the clear pass drawn when no scene
// renders. The default is opaque black.
func WithClearColor(c gputypes.Color) Option {
	return func(o *options) {
		o.clearColor = c
	}
}

// WithTimeScale scales the scene clock. Zero pauses it; negative values
// run it backwards.
func WithTimeScale(scale float64) Option {
	return func(o *options) {
		o.timeScale = scale
	}
}

// WithFovY sets the vertical field of view in radians.
func WithFovY(fovY float32) Option {
	return func(o *options) {
		if fovY > 0 && fovY < math.Pi {
			o.fovY = fovY
		}
	}
}

// WithNearPlane sets the near clip distance of the infinite projection.
func WithNearPlane(near float32) Option {
	return func(o *options) {
		if near > 0 {
			o.near = near
		}
	}
}
