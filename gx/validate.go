// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gx

import (
	"errors"
	"fmt"
)

// IssueLevel represents severity of validation issue.
type IssueLevel string

const (
	// IssueError marks a material Compile rejects.
	IssueError IssueLevel = "error"
	// IssueWarning marks content that compiles to a documented fallback.
	IssueWarning IssueLevel = "warning"
)

// Issue represents a validation issue.
type Issue struct {
	Level   IssueLevel `json:"level"`          // Severity level
	Code    string     `json:"code,omitempty"` // Machine-readable code
	Message string     `json:"message"`        // Issue message
	Path    string     `json:"path,omitempty"` // Stage and field, e.g. "tev[2].TexCoordID"
}

// Validate reports the problems of a material without compiling it.
// Errors are the ones Compile would return; warnings describe content
// that compiles but degrades to a fallback.
func Validate(m *Material, h *Hacks) []Issue {
	if h == nil {
		h = &Hacks{}
	}
	var out []Issue

	if err := checkMaterial(m, h); err != nil {
		out = append(out, compileErrorIssue(err))
	}

	switch m.RopInfo.BlendMode.Type {
	case BlendNone, BlendBlend, BlendSubtract:
	default:
		out = append(out, Issue{Level: IssueWarning, Code: "unsupported_blend",
			Message: "blend mode renders as opaque replace", Path: "rop.BlendMode"})
	}

	for i, s := range m.IndTexStages {
		if int(s.TexCoordID) >= len(m.TexGens) {
			out = append(out, Issue{Level: IssueWarning, Code: "indtex_texcoord_zero",
				Message: "indirect stage references a missing texgen and looks up at a zero coordinate",
				Path:    fmt.Sprintf("indTex[%d].TexCoordID", i)})
		}
	}

	for i := range m.TevStages {
		s := &m.TevStages[i]
		path := fmt.Sprintf("tev[%d]", i)
		if s.TexCoordID != TexCoordNull && int(s.TexCoordID) >= len(m.TexGens) {
			out = append(out, Issue{Level: IssueWarning, Code: "texcoord_zero",
				Message: "stage references a missing texgen and addresses with a zero coordinate",
				Path:    path + ".TexCoordID"})
		}
		if s.IndTexMatrix == IndTexMtxOff || int(s.IndTexStage) >= len(m.IndTexStages) {
			continue
		}
		switch s.IndTexMatrix {
		case IndTexMtx0, IndTexMtx1, IndTexMtx2:
		default:
			out = append(out, Issue{Level: IssueWarning, Code: "indtex_matrix",
				Message: fmt.Sprintf("indirect matrix %v applies an unscaled offset", s.IndTexMatrix),
				Path:    path + ".IndTexMatrix"})
		}
	}

	if stageReadsAny(m, func(s *TevStage) bool { return stageReadsTex(s) && s.TexMap == TexMapNull }) {
		out = append(out, Issue{Level: IssueWarning, Code: "texmap_null",
			Message: "texture input of a stage without a texture map reads opaque white"})
	}
	return out
}

func stageReadsAny(m *Material, pred func(*TevStage) bool) bool {
	for i := range m.TevStages {
		if pred(&m.TevStages[i]) {
			return true
		}
	}
	return false
}

func compileErrorIssue(err error) Issue {
	is := Issue{Level: IssueError, Code: "compile", Message: err.Error()}
	var ce *CompileError
	if errors.As(err, &ce) {
		is.Path = ce.Field
		if ce.Stage != "" {
			is.Path = ce.Stage + "." + ce.Field
		}
		is.Message = ce.Err.Error()
	}
	return is
}
