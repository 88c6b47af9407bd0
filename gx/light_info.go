// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gx

import "github.com/go-gl/mathgl/mgl32"

// LightInfo is a scene light placement as read from level data.
type LightInfo struct {
	Position mgl32.Vec3
	Color    mgl32.Vec4
	// FollowCamera treats Position as relative to the camera.
	FollowCamera bool
}

// SetLight writes the placement into dst as an unattenuated point light.
// Lights that follow the camera are moved by cameraWorld, the camera's
// world matrix; others are copied unchanged.
func (li *LightInfo) SetLight(dst *Light, cameraWorld mgl32.Mat4) {
	if li.FollowCamera {
		dst.Position = mgl32.TransformCoordinate(li.Position, cameraWorld)
	} else {
		dst.Position = li.Position
	}
	dst.Direction = mgl32.Vec3{1, 0, 0}
	dst.Color = li.Color
	dst.CosAtten = mgl32.Vec3{1, 0, 0}
	dst.DistAtten = mgl32.Vec3{1, 0, 0}
}

// ActorLightInfo is the light set applied to one actor: two point lights,
// the alpha of a third (colorless) light, and an ambient color.
type ActorLightInfo struct {
	Light0  LightInfo
	Light1  LightInfo
	Alpha2  float32
	Ambient mgl32.Vec4
}

// NewActorLightInfo returns white lights with white ambient.
func NewActorLightInfo() ActorLightInfo {
	white := mgl32.Vec4{1, 1, 1, 1}
	return ActorLightInfo{
		Light0:  LightInfo{Color: white},
		Light1:  LightInfo{Color: white},
		Ambient: white,
	}
}

// SetLights writes lights 0 through 2 of dst. Light 2 carries only
// Alpha2, which materials read through the alpha channel of the light
// accumulation.
func (a *ActorLightInfo) SetLights(dst *[MaxLights]Light, cameraWorld mgl32.Mat4) {
	a.Light0.SetLight(&dst[0], cameraWorld)
	a.Light1.SetLight(&dst[1], cameraWorld)

	l2 := &dst[2]
	l2.Position = mgl32.Vec3{0, 0, 0}
	l2.Direction = mgl32.Vec3{0, -1, 0}
	l2.CosAtten = mgl32.Vec3{1, 0, 0}
	l2.DistAtten = mgl32.Vec3{1, 0, 0}
	l2.Color = mgl32.Vec4{0, 0, 0, a.Alpha2}
}
