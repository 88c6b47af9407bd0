// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package gxview renders fixed-function GX console materials on modern GPUs.
//
// # Overview
//
// gxview translates the declarative description of a GX material (TEV
// combiner stages, indirect texture stages, per-vertex lighting channels,
// texture coordinate generators, alpha test and blend state) into WGSL
// vertex and fragment programs plus the matching pipeline state, and drives
// a backend-neutral graphics device that executes them.
//
// # Architecture
//
// The module is organized into:
//   - gx: material model, light model, material compiler, uniform packing
//   - gfx: device contract, pipeline state model, leak checking, backend registry
//   - gfx/halgfx: device implementation over gogpu/wgpu HAL (Vulkan, Metal, DX12, GLES)
//   - gfx/recorder: headless command-recording device with GLSL translation
//   - viewer: per-frame orchestration, clear scene, render statistics
//   - cmd/gxc: command line compiler and headless frame runner
//
// # Quick Start
//
//	prog, err := gx.Compile(material, nil)
//	if err != nil {
//	    return err
//	}
//	program, err := device.CreateProgram(gfx.ProgramDescriptor{
//	    Name:           prog.Name,
//	    VertexSource:   prog.VertexSource,
//	    FragmentSource: prog.FragmentSource,
//	})
//
// # Logging
//
// gxview produces no log output by default. Call [SetLogger] to route
// diagnostics from every sub-package to a [log/slog.Logger].
package gxview
