// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package recorder implements gfx.Device without a GPU.
//
// Every submitted pass is captured as typed command structs instead of
// being executed. Buffers and textures keep their contents in host memory,
// color attachments are cleared and resolved on the CPU, and draws are
// recorded but not rasterized. The result is a deterministic backend for
// tests, CI machines and command-stream inspection.
//
// # Architecture
//
// Commands cover the whole device surface:
//   - Transfer commands (UploadBuffer, UploadTexture)
//   - Pass commands (BeginRenderPass, EndRenderPass)
//   - State commands (SetViewport, SetScissor, SetPipeline, SetBindings,
//     SetInputState, SetStencilRef)
//   - Draw commands (Draw, DrawIndexed)
//   - Present
//
// Resources are referenced by their gfx resource id, so a Recording can be
// inspected after the resources are gone.
//
// # Programs
//
// With shader validation on (the default) program sources are compiled
// with gogpu/naga in CreateProgram. WithGLSL additionally translates them
// to GLSL, which Program reports through GLSL.
//
// # Example
//
//	dev := recorder.New()
//	sc := recorder.NewSwapChain(dev, 640, 480)
//	// ... render a frame ...
//	rec := dev.FinishRecording()
//	fmt.Println(rec.Count(recorder.CmdDraw), "draws")
package recorder
