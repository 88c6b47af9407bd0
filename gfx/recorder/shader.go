// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package recorder

import (
	"fmt"

	"github.com/gogpu/naga"
	"github.com/gogpu/naga/glsl"

	"github.com/gogpu/gxview/gfx"
)

// ValidateProgram compiles both stages of desc with naga and reports the
// first failure. Identical stage sources are compiled once.
func ValidateProgram(desc gfx.ProgramDescriptor) error {
	if _, err := naga.Compile(desc.VertexSource); err != nil {
		return fmt.Errorf("recorder: program %s vertex: %w", desc.Name, err)
	}
	if desc.FragmentSource == desc.VertexSource {
		return nil
	}
	if _, err := naga.Compile(desc.FragmentSource); err != nil {
		return fmt.Errorf("recorder: program %s fragment: %w", desc.Name, err)
	}
	return nil
}

// TranslateGLSL translates the WGSL stages of desc into GLSL 3.30, or
// GLSL ES 3.00 when es is set. Each stage becomes a separate GLSL program
// whose entry point is emitted as main.
func TranslateGLSL(desc gfx.ProgramDescriptor, es bool) (vertex, fragment string, err error) {
	version := glsl.Version330
	if es {
		version = glsl.VersionES300
	}
	vsEntry, fsEntry := desc.EntryPoints()
	vertex, err = translateStage(desc.VertexSource, vsEntry, version)
	if err != nil {
		return "", "", fmt.Errorf("recorder: program %s vertex: %w", desc.Name, err)
	}
	fragment, err = translateStage(desc.FragmentSource, fsEntry, version)
	if err != nil {
		return "", "", fmt.Errorf("recorder: program %s fragment: %w", desc.Name, err)
	}
	return vertex, fragment, nil
}

func translateStage(source, entryPoint string, version glsl.Version) (string, error) {
	ast, err := naga.Parse(source)
	if err != nil {
		return "", fmt.Errorf("parse: %w", err)
	}
	module, err := naga.Lower(ast)
	if err != nil {
		return "", fmt.Errorf("lower: %w", err)
	}
	code, _, err := glsl.Compile(module, glsl.Options{
		LangVersion: version,
		EntryPoint:  entryPoint,
	})
	if err != nil {
		return "", fmt.Errorf("glsl: %w", err)
	}
	return code, nil
}
