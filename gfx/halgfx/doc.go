// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package halgfx implements gfx.Device on top of the gogpu/wgpu HAL.
//
// Programs are WGSL. With shader validation on (the default) each stage is
// compiled to SPIR-V with gogpu/naga before the HAL sees it, so a broken
// program fails in CreateProgram instead of inside the driver.
//
// # Opening a device
//
//	dev, err := halgfx.Open()                       // Vulkan, noop fallback
//	dev, err := halgfx.Open(halgfx.WithNoopAdapter()) // headless
//	dev, err := halgfx.NewFromProvider(provider)      // share a gogpu device
//
// Importing the package registers the "wgpu" backend with gfx, so
// gfx.OpenBest prefers it over the recorder.
//
// # Pass execution
//
// Passes record into plain command lists and are encoded when submitted.
// SubmitPass waits for the GPU before returning, which keeps frames
// strictly ordered: uploads of a host access pass are visible to every
// render pass submitted after it.
//
// # Limitations
//
// WebGPU cannot cull both faces. Pipelines with gfx.CullFrontAndBack
// are created without culling and their draws are dropped.
package halgfx
