// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package recorder

import "github.com/gogpu/gputypes"

// Option configures a Device during creation.
//
// Example:
//
//	dev := recorder.New(
//	    recorder.WithShaderValidation(false),
//	    recorder.WithLimits(limits),
//	)
type Option func(*options)

// options holds optional configuration for Device creation.
type options struct {
	limits           gputypes.Limits
	shaderValidation bool
	glsl             bool
	glslES           bool
}

// defaultOptions returns the default device options.
func defaultOptions() options {
	return options{
		limits:           gputypes.DefaultLimits(),
		shaderValidation: true,
	}
}

// WithLimits sets the limits reported by QueryLimits.
func WithLimits(l gputypes.Limits) Option {
	return func(o *options) {
		o.limits = l
	}
}

// WithShaderValidation controls whether CreateProgram compiles program
// sources with naga.
func WithShaderValidation(enabled bool) Option {
	return func(o *options) {
		o.shaderValidation = enabled
	}
}

// WithGLSL makes CreateProgram translate every program to GLSL 3.30, or
// GLSL ES 3.00 when es is set. It implies shader validation.
func WithGLSL(es bool) Option {
	return func(o *options) {
		o.glsl = true
		o.glslES = es
		o.shaderValidation = true
	}
}
