// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package viewer sequences frames on top of a gfx.Device.
//
// A Viewer owns a swap chain, a camera and one Scene. Each Update call
// advances scene time, configures the swap chain, asks the scene for a
// render pass, resolves that pass into the onscreen texture and presents.
// When the scene returns no pass, a clear scene fills the frame with the
// configured clear color.
//
// # Scenes
//
// A Scene records into its own attachments and returns the ended-but-not
// submitted pass; the Viewer resolves and submits it:
//
//	type Scene interface {
//	    Render(device gfx.Device, input *RenderInput) gfx.RenderPass
//	    Destroy(device gfx.Device)
//	}
//
// MaterialScene is the built-in scene. It compiles one gx.Material and
// draws it on a unit quad with the scene, material and packet uniform
// blocks filled every frame.
//
// # Usage
//
//	dev := recorder.New()
//	sc, _ := recorder.NewSwapChain(dev, 640, 480)
//	v := viewer.New(sc)
//	v.SetSize(640, 480)
//	scene, err := viewer.NewMaterialScene(dev, gx.VertexColorMaterial(), nil)
//	if err != nil {
//	    return err
//	}
//	v.SetScene(scene)
//	for i := range 60 {
//	    if err := v.Update(time.Duration(i) * 16 * time.Millisecond); err != nil {
//	        return err
//	    }
//	}
//	v.Destroy()
//
// # Statistics
//
// OnStatistics, when set, receives the per-frame counters collected by the
// "Scene Rendering" debug group together with frame time and FPS.
package viewer
