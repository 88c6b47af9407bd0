// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package viewer

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Camera holds the view and projection of the current frame.
//
// Projections use reversed depth with an infinite far plane: the near
// plane maps to depth 1 and infinity to 0, matching the depth clear of
// gfx.DefaultRenderPassDescriptor.
type Camera struct {
	// WorldMatrix places the camera in the world. It is the inverse of
	// ViewMatrix.
	WorldMatrix      mgl32.Mat4
	ViewMatrix       mgl32.Mat4
	ProjectionMatrix mgl32.Mat4

	FovY   float32
	Aspect float32
	Near   float32
}

// NewCamera returns a camera at the origin looking down -Z.
func NewCamera() *Camera {
	c := &Camera{
		WorldMatrix: mgl32.Ident4(),
		ViewMatrix:  mgl32.Ident4(),
		FovY:        math32.Pi / 4,
		Aspect:      1,
		Near:        5,
	}
	c.updateProjection()
	return c
}

// SetView sets the view matrix and derives the world matrix from it.
func (c *Camera) SetView(view mgl32.Mat4) {
	c.ViewMatrix = view
	c.WorldMatrix = view.Inv()
}

// LookAt points the camera from eye at center.
func (c *Camera) LookAt(eye, center, up mgl32.Vec3) {
	c.SetView(mgl32.LookAtV(eye, center, up))
}

// SetPerspective sets the projection parameters.
func (c *Camera) SetPerspective(fovY, aspect, near float32) {
	c.FovY, c.Aspect, c.Near = fovY, aspect, near
	c.updateProjection()
}

func (c *Camera) updateProjection() {
	f := 1 / math32.Tan(c.FovY/2)
	aspect := c.Aspect
	if aspect <= 0 {
		aspect = 1
	}
	// Column-major: clip.z = near, clip.w = -view.z.
	c.ProjectionMatrix = mgl32.Mat4{
		f / aspect, 0, 0, 0,
		0, f, 0, 0,
		0, 0, 0, -1,
		0, 0, c.Near, 0,
	}
}

// ViewProjection returns ProjectionMatrix * ViewMatrix.
func (c *Camera) ViewProjection() mgl32.Mat4 {
	return c.ProjectionMatrix.Mul4(c.ViewMatrix)
}

// NormalMatrix returns the matrix that takes world-space directions to
// view space.
func (c *Camera) NormalMatrix() mgl32.Mat4 {
	return c.WorldMatrix.Transpose()
}
