// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package halgfx

import "github.com/gogpu/gputypes"

// Option configures a Device during creation.
//
// Example:
//
//	dev, err := halgfx.Open(
//	    halgfx.WithBackend(gputypes.BackendVulkan),
//	    halgfx.WithShaderValidation(false),
//	)
type Option func(*options)

// options holds optional configuration for Device creation.
type options struct {
	backend          gputypes.Backend
	noop             bool
	limits           gputypes.Limits
	shaderValidation bool
}

// defaultOptions returns the default device options.
func defaultOptions() options {
	return options{
		backend:          gputypes.BackendVulkan,
		limits:           gputypes.DefaultLimits(),
		shaderValidation: true,
	}
}

// WithBackend selects the HAL backend Open looks up. When the backend is
// not compiled in, Open falls back to the noop adapter.
func WithBackend(b gputypes.Backend) Option {
	return func(o *options) {
		o.backend = b
	}
}

// WithNoopAdapter makes Open use the noop HAL adapter. Every call
// succeeds and nothing is rendered, which suits tests and headless runs.
func WithNoopAdapter() Option {
	return func(o *options) {
		o.noop = true
	}
}

// WithLimits sets the limits requested when the adapter is opened. They
// also size the uniform layout reported by QueryLimits.
func WithLimits(l gputypes.Limits) Option {
	return func(o *options) {
		o.limits = l
	}
}

// WithShaderValidation controls whether program sources are compiled to
// SPIR-V with naga (true) or handed to the HAL as WGSL (false).
func WithShaderValidation(enabled bool) Option {
	return func(o *options) {
		o.shaderValidation = enabled
	}
}
