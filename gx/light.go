// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gx

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// MaxLights is the number of light slots a material can reference.
const MaxLights = 8

// Light is one hardware light slot as consumed by the lighting loop of
// the generated vertex stage.
type Light struct {
	Position  mgl32.Vec3
	Direction mgl32.Vec3
	// DistAtten holds the constant, linear and quadratic distance terms.
	DistAtten mgl32.Vec3
	// CosAtten holds the angular polynomial in the light cosine.
	CosAtten mgl32.Vec3
	Color    mgl32.Vec4
}

// NewLight returns a light in its reset state.
func NewLight() Light {
	var l Light
	l.Reset()
	return l
}

// Reset puts the light at the origin facing -Z with no attenuation and
// black, opaque color.
func (l *Light) Reset() {
	l.Position = mgl32.Vec3{0, 0, 0}
	l.Direction = mgl32.Vec3{0, 0, -1}
	l.DistAtten = mgl32.Vec3{1, 0, 0}
	l.CosAtten = mgl32.Vec3{1, 0, 0}
	l.Color = mgl32.Vec4{0, 0, 0, 1}
}

// SetWorldPositionViewMatrix places the light at a world-space point,
// stored in the view space of view. Use it for lights fixed in the world.
func (l *Light) SetWorldPositionViewMatrix(view mgl32.Mat4, x, y, z float32) {
	l.Position = view.Mul4x1(mgl32.Vec4{x, y, z, 1}).Vec3()
}

// SetWorldDirectionNormalMatrix points the light along a world-space
// direction, stored normalized in the space of normalMatrix.
func (l *Light) SetWorldDirectionNormalMatrix(normalMatrix mgl32.Mat4, x, y, z float32) {
	v := normalMatrix.Mul4x1(mgl32.Vec4{x, y, z, 0})
	if n := v.Len(); n > 0 {
		v = v.Mul(1 / n)
	}
	l.Direction = v.Vec3()
}

// SetViewPosition stores a position already in view space, for lights
// that travel with the camera.
func (l *Light) SetViewPosition(x, y, z float32) {
	l.Position = mgl32.Vec3{x, y, z}
}

// SetViewDirection stores a normalized view-space direction.
func (l *Light) SetViewDirection(x, y, z float32) {
	v := mgl32.Vec3{x, y, z}
	if n := v.Len(); n > 0 {
		v = v.Mul(1 / n)
	}
	l.Direction = v
}

// SetSpot solves the angular attenuation polynomial for a cone of
// cutoff degrees. A cutoff outside (0, 90) turns spot attenuation off.
func (l *Light) SetSpot(cutoff float32, fn SpotFunction) {
	l.CosAtten = SpotCoefficients(cutoff, fn)
}

// SpotCoefficients returns the angular attenuation polynomial for
// SetSpot without modifying a light.
func SpotCoefficients(cutoff float32, fn SpotFunction) mgl32.Vec3 {
	if cutoff <= 0 || cutoff >= 90 {
		fn = SpotOff
	}

	cr := math32.Cos(cutoff * math32.Pi / 180)
	switch fn {
	case SpotFlat:
		return mgl32.Vec3{-1000 * cr, 1000, 0}
	case SpotCos:
		return mgl32.Vec3{-cr / (1 - cr), 1 / (1 - cr), 0}
	case SpotCos2:
		return mgl32.Vec3{0, -cr / (1 - cr), 1 / (1 - cr)}
	case SpotSharp:
		d := (1 - cr) * (1 - cr)
		return mgl32.Vec3{cr * (cr - 2) / d, 2 / d, -1 / d}
	case SpotRing1:
		d := (1 - cr) * (1 - cr)
		return mgl32.Vec3{-4 * cr / d, 4 * (1 + cr) / d, -4 / d}
	case SpotRing2:
		d := (1 - cr) * (1 - cr)
		return mgl32.Vec3{1 - 2*cr*cr/d, 4 * cr / d, -2 / d}
	default:
		return mgl32.Vec3{1, 0, 0}
	}
}

// SetDistAttn solves the distance attenuation polynomial so that the
// light has refBrightness (a fraction in (0, 1)) at refDist. Degenerate
// inputs turn distance attenuation off.
func (l *Light) SetDistAttn(refDist, refBrightness float32, fn DistAttnFunction) {
	l.DistAtten = DistAttnCoefficients(refDist, refBrightness, fn)
}

// DistAttnCoefficients returns the distance attenuation polynomial for
// SetDistAttn without modifying a light.
func DistAttnCoefficients(refDist, refBrightness float32, fn DistAttnFunction) mgl32.Vec3 {
	if refDist <= 0 || refBrightness <= 0 || refBrightness >= 1 {
		fn = DistAttnOff
	}

	k := (1 - refBrightness) / refBrightness
	switch fn {
	case DistAttnGentle:
		return mgl32.Vec3{1, k / refDist, 0}
	case DistAttnMedium:
		return mgl32.Vec3{1, 0.5 * k / refDist, 0.5 * k / (refDist * refDist)}
	case DistAttnSteep:
		return mgl32.Vec3{1, 0, k / (refDist * refDist)}
	default:
		return mgl32.Vec3{1, 0, 0}
	}
}

// pack writes the light as five vec4s: color, position, direction,
// distance and angular attenuation.
func (l *Light) pack(dst []float32) int {
	copy(dst[0:4], l.Color[:])
	packVec3(dst[4:8], l.Position)
	packVec3(dst[8:12], l.Direction)
	packVec3(dst[12:16], l.DistAtten)
	packVec3(dst[16:20], l.CosAtten)
	return lightWords
}

const lightWords = 4 * 5

func packVec3(dst []float32, v mgl32.Vec3) {
	dst[0], dst[1], dst[2], dst[3] = v[0], v[1], v[2], 0
}
