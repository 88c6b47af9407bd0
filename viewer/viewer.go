// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package viewer

import (
	"errors"
	"fmt"
	"time"

	"github.com/gogpu/gxview/gfx"
)

// ErrNoSize is returned by Update before SetSize gave the backbuffer a size.
var ErrNoSize = errors.New("viewer: backbuffer size not set")

// Viewport is a rectangle in normalized [0, 1] backbuffer coordinates.
type Viewport struct {
	X, Y, W, H float32
}

// RenderInput is handed to Scene.Render once per frame.
type RenderInput struct {
	Camera *Camera
	// Time is the scaled scene time.
	Time time.Duration
	// DeltaTime is the scene time elapsed since the previous frame,
	// including SetSceneTime jumps.
	DeltaTime time.Duration

	BackbufferWidth  int
	BackbufferHeight int
	Viewport         Viewport
}

// Scene renders one frame.
//
// Render records the scene's work on device, uploading through host
// access passes it submits itself, and returns the final render pass
// unended. The viewer ends that pass into the onscreen texture, submits
// it and presents. Returning nil draws the clear scene instead.
type Scene interface {
	Render(device gfx.Device, input *RenderInput) gfx.RenderPass
	Destroy(device gfx.Device)
}

// Viewer drives the frame loop on a swap chain.
//
// Viewer is not safe for concurrent use; all methods must be called from
// the goroutine running the frame loop.
type Viewer struct {
	opts      options
	swapChain gfx.SwapChain
	device    gfx.Device

	camera *Camera
	scene  Scene
	input  RenderInput

	width, height int
	sceneTime     time.Duration
	lastUpdate    time.Duration

	debugGroup gfx.DebugGroup
	clear      clearScene
	stats      *statisticsTracker

	// OnStatistics, when set, receives the statistics of every rendered frame.
	OnStatistics func(Statistics)
}

// New creates a viewer presenting through swapChain.
func New(swapChain gfx.SwapChain, opts ...Option) *Viewer {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	v := &Viewer{
		opts:       o,
		swapChain:  swapChain,
		device:     swapChain.Device(),
		camera:     NewCamera(),
		debugGroup: gfx.DebugGroup{Name: "Scene Rendering"},
		clear:      clearScene{clearColor: o.clearColor},
		stats:      newStatisticsTracker(nil),
	}
	v.input = RenderInput{
		Camera:   v.camera,
		Viewport: Viewport{W: 1, H: 1},
	}
	return v
}

// Device returns the device of the swap chain.
func (v *Viewer) Device() gfx.Device { return v.device }

// Camera returns the viewer camera. Scenes and camera controllers may
// move it between frames.
func (v *Viewer) Camera() *Camera { return v.camera }

// Scene returns the current scene, or nil.
func (v *Viewer) Scene() Scene { return v.scene }

// SetScene replaces the scene. The previous scene is not destroyed.
func (v *Viewer) SetScene(s Scene) { v.scene = s }

// SetSize sets the backbuffer size used from the next frame on.
func (v *Viewer) SetSize(width, height int) {
	v.width, v.height = width, height
}

// SceneTime returns the current scene time.
func (v *Viewer) SceneTime() time.Duration { return v.sceneTime }

// SetSceneTime jumps the scene clock. The jump is reported to the next
// frame as part of its delta.
func (v *Viewer) SetSceneTime(t time.Duration) {
	v.input.DeltaTime += t - v.sceneTime
	v.sceneTime = t
}

// SetTimeScale scales how fast scene time advances.
func (v *Viewer) SetTimeScale(scale float64) { v.opts.timeScale = scale }

// Update renders a frame for host time now. A now earlier than the
// previous update drops the frame without touching any resource.
func (v *Viewer) Update(now time.Duration) error {
	dt := now - v.lastUpdate
	if dt < 0 {
		Logger().Debug("viewer: frame dropped", "dt", dt)
		return nil
	}
	if v.width <= 0 || v.height <= 0 {
		return ErrNoSize
	}
	v.lastUpdate = now

	v.camera.SetPerspective(v.opts.fovY, float32(v.width)/float32(v.height), v.opts.near)

	delta := time.Duration(float64(dt) * v.opts.timeScale)
	v.input.DeltaTime += delta
	v.sceneTime += delta

	err := v.render(dt)

	v.input.DeltaTime = 0
	return err
}

func (v *Viewer) render(interval time.Duration) error {
	v.input.Time = v.sceneTime
	v.input.BackbufferWidth = v.width
	v.input.BackbufferHeight = v.height
	v.swapChain.ConfigureSwapChain(v.width, v.height)

	v.stats.beginFrame(interval)
	v.debugGroup.Reset()
	v.device.PushDebugGroup(&v.debugGroup)

	err := v.renderPass()

	v.device.PopDebugGroup()
	stats := v.stats.endFrame(&v.debugGroup)
	if v.OnStatistics != nil {
		v.OnStatistics(stats)
	}
	return err
}

func (v *Viewer) renderPass() error {
	var pass gfx.RenderPass
	if v.scene != nil {
		pass = v.scene.Render(v.device, &v.input)
	}
	if pass == nil {
		var err error
		if pass, err = v.clear.render(v.device, &v.input); err != nil {
			return fmt.Errorf("viewer: clear scene: %w", err)
		}
	} else if err := v.clear.minimize(v.device); err != nil {
		Logger().Warn("viewer: minimize clear scene", "err", err)
	}

	pass.EndPass(v.swapChain.OnscreenTexture())
	if err := v.device.SubmitPass(pass); err != nil {
		return fmt.Errorf("viewer: submit frame: %w", err)
	}
	if err := v.swapChain.Present(); err != nil {
		return fmt.Errorf("viewer: present: %w", err)
	}
	return nil
}

// Destroy releases the viewer's resources and the current scene.
func (v *Viewer) Destroy() {
	if v.scene != nil {
		v.scene.Destroy(v.device)
		v.scene = nil
	}
	v.clear.destroy(v.device)
}
