// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gx

import "testing"

func issueCodes(issues []Issue) map[string]Issue {
	m := make(map[string]Issue, len(issues))
	for _, is := range issues {
		m[is.Code] = is
	}
	return m
}

func TestValidateClean(t *testing.T) {
	if issues := Validate(texturedMaterial(), nil); len(issues) != 0 {
		t.Errorf("Validate(textured) = %+v, want none", issues)
	}
}

func TestValidateCompileError(t *testing.T) {
	m := texturedMaterial()
	m.TevStages[0].ColorInB = CombineColorInput(99)

	codes := issueCodes(Validate(m, nil))
	is, ok := codes["compile"]
	if !ok {
		t.Fatalf("issues = %+v, want compile error", codes)
	}
	if is.Level != IssueError {
		t.Errorf("Level = %v, want error", is.Level)
	}
	if is.Path != "tev[0].ColorInB" {
		t.Errorf("Path = %q, want tev[0].ColorInB", is.Path)
	}
}

func TestValidateWarnings(t *testing.T) {
	m := texturedMaterial()
	m.RopInfo.BlendMode = BlendState{Type: BlendLogic, LogicOp: LogicCopy}
	m.IndTexStages = []IndTexStage{
		{TexCoordID: 0, Texture: 1},
		{TexCoordID: 6, Texture: 2},
	}
	m.TevStages[0].TexCoordID = 3
	m.TevStages[0].IndTexMatrix = IndTexMtxT0
	m.TevStages = append(m.TevStages, m.TevStages[0])
	m.TevStages[1].TexCoordID = TexCoordNull
	m.TevStages[1].TexMap = TexMapNull
	m.TevStages[1].IndTexMatrix = IndTexMtxOff

	codes := issueCodes(Validate(m, nil))
	for _, code := range []string{"unsupported_blend", "indtex_texcoord_zero", "texcoord_zero", "indtex_matrix", "texmap_null"} {
		is, ok := codes[code]
		if !ok {
			t.Errorf("missing %s warning in %+v", code, codes)
			continue
		}
		if is.Level != IssueWarning {
			t.Errorf("%s level = %v, want warning", code, is.Level)
		}
	}
	if _, ok := codes["compile"]; ok {
		t.Errorf("unexpected compile error: %+v", codes["compile"])
	}
	if got := codes["indtex_texcoord_zero"].Path; got != "indTex[1].TexCoordID" {
		t.Errorf("indtex_texcoord_zero Path = %q", got)
	}

	// Everything reported as a warning still compiles.
	if _, err := Compile(m, nil); err != nil {
		t.Errorf("Compile: %v", err)
	}
}
