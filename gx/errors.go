// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gx

import (
	"errors"
	"fmt"
)

// Compile errors. They are always returned wrapped in a *CompileError.
var (
	// ErrInvalidEnum is returned when a material field holds a value
	// outside its enumeration.
	ErrInvalidEnum = errors.New("gx: invalid enum value")

	// ErrNoTevStages is returned for a material without TEV stages.
	ErrNoTevStages = errors.New("gx: material has no TEV stages")

	// ErrLightsBlockRequired is returned when a channel's light mask is
	// non-zero but the material opted out of the lights block.
	ErrLightsBlockRequired = errors.New("gx: light mask set without lights block")

	// ErrPostTexMtxBlockRequired is returned when a texgen selects a post
	// matrix but the material opted out of the post matrix block.
	ErrPostTexMtxBlockRequired = errors.New("gx: post matrix used without post matrix block")

	// ErrUnsupportedIndTexFormat is returned for indirect formats other than 8-bit.
	ErrUnsupportedIndTexFormat = errors.New("gx: unsupported indirect texture format")

	// ErrUnsupportedTexGen is returned for texgen types and sources the
	// vertex stage cannot generate (bump mapping, binormal and tangent).
	ErrUnsupportedTexGen = errors.New("gx: unsupported texture coordinate generator")

	// ErrTooManyStages is returned when a material has more light
	// channels, texgens, indirect stages or TEV stages than the hardware.
	ErrTooManyStages = errors.New("gx: too many stages")

	// ErrInvalidRasChannel is returned for a TEV stage rasterized channel
	// that has no vertex color output.
	ErrInvalidRasChannel = errors.New("gx: invalid rasterized color channel")
)

// CompileError describes why a material could not be compiled.
type CompileError struct {
	Material string
	// Stage is the offending stage description, for example "tev[2]".
	Stage string
	// Field is the offending field, for example "ColorInA".
	Field string
	Err   error
}

func (e *CompileError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("gx: compile %q: %s.%s: %v", e.Material, e.Stage, e.Field, e.Err)
	}
	if e.Stage != "" {
		return fmt.Sprintf("gx: compile %q: %s: %v", e.Material, e.Stage, e.Err)
	}
	return fmt.Sprintf("gx: compile %q: %v", e.Material, e.Err)
}

func (e *CompileError) Unwrap() error { return e.Err }
