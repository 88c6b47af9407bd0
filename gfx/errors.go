// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gfx

import "errors"

// Resource lifecycle errors. They are recorded as Violations by the
// Tracker rather than returned from Destroy calls.
var (
	// ErrDoubleDestroy is recorded when a resource is destroyed twice.
	ErrDoubleDestroy = errors.New("gfx: resource destroyed twice")

	// ErrUseAfterDestroy is recorded when a destroyed resource is referenced by a pass.
	ErrUseAfterDestroy = errors.New("gfx: resource used after destroy")

	// ErrUnknownResource is recorded when a handle was never created by the device.
	ErrUnknownResource = errors.New("gfx: resource not created by this device")
)

// Pass errors.
var (
	// ErrPassSubmitted is returned when a pass is recorded into or submitted after submission.
	ErrPassSubmitted = errors.New("gfx: pass already submitted")

	// ErrPassEnded is returned when a command is recorded after EndPass.
	ErrPassEnded = errors.New("gfx: render pass already ended")

	// ErrPassNotEnded is returned when a render pass is submitted before EndPass.
	ErrPassNotEnded = errors.New("gfx: render pass submitted before EndPass")

	// ErrForeignPass is returned when a pass created by another device is submitted.
	ErrForeignPass = errors.New("gfx: pass was not created by this device")

	// ErrNoPipeline is returned when a draw is issued before SetPipeline.
	ErrNoPipeline = errors.New("gfx: draw issued without a pipeline")

	// ErrBindingIndex is returned when SetBindings targets a layout the pipeline does not have.
	ErrBindingIndex = errors.New("gfx: binding layout index out of range")
)

// Descriptor validation errors.
var (
	// ErrInvalidDescriptor is returned when a descriptor fails validation.
	ErrInvalidDescriptor = errors.New("gfx: invalid descriptor")

	// ErrUniformBlockTooLarge is returned when a uniform block exceeds the device's max page size.
	ErrUniformBlockTooLarge = errors.New("gfx: uniform block exceeds device limit")

	// ErrUnknownBackend is returned when opening a backend that was never registered.
	ErrUnknownBackend = errors.New("gfx: unknown backend")
)
