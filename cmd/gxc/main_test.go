// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package main

import (
	"encoding/json"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"testing"

	"github.com/gogpu/gxview/gx"
)

func TestLoadMaterialPreset(t *testing.T) {
	m, err := loadMaterial("lit", "")
	if err != nil {
		t.Fatalf("loadMaterial: %v", err)
	}
	if len(m.TevStages) == 0 {
		t.Error("lit preset has no TEV stages")
	}
	if _, err := loadMaterial("missing", ""); err == nil {
		t.Error("unknown preset should fail")
	}
}

func TestLoadMaterialJSON(t *testing.T) {
	src := gx.TexturedMaterial()
	src.Name = ""
	data, err := json.Marshal(src)
	if err != nil {
		t.Fatal(err)
	}
	path := filepath.Join(t.TempDir(), "mat.json")
	if err := os.WriteFile(path, data, 0o600); err != nil {
		t.Fatal(err)
	}

	m, err := loadMaterial("", path)
	if err != nil {
		t.Fatalf("loadMaterial: %v", err)
	}
	if m.Name != path {
		t.Errorf("Name = %q, want %q", m.Name, path)
	}
	if len(m.TevStages) != len(src.TevStages) {
		t.Errorf("len(TevStages) = %d, want %d", len(m.TevStages), len(src.TevStages))
	}
	if _, err := gx.Compile(m, nil); err != nil {
		t.Errorf("Compile: %v", err)
	}
}

func TestParseVec4(t *testing.T) {
	v, err := parseVec4("1, 0.5,0,0.25")
	if err != nil {
		t.Fatal(err)
	}
	if v[0] != 1 || v[1] != 0.5 || v[2] != 0 || v[3] != 0.25 {
		t.Errorf("parseVec4 = %v", v)
	}
	for _, bad := range []string{"1,2,3", "a,b,c,d", ""} {
		if _, err := parseVec4(bad); err == nil {
			t.Errorf("parseVec4(%q) should fail", bad)
		}
	}
}

func TestEvalStageErrors(t *testing.T) {
	m := gx.VertexColorMaterial()
	if err := evalStage(m, "1,0,0,1;0,0,0,0"); err == nil {
		t.Error("two inputs should fail")
	}
	if err := evalStage(&gx.Material{}, "0,0,0,0;0,0,0,0;0,0,0,0;0,0,0,0"); err == nil {
		t.Error("material without stages should fail")
	}
	if err := evalStage(m, "0,0,0,0;0,0,0,0;0,0,0,0;1,0,0,1"); err != nil {
		t.Errorf("evalStage: %v", err)
	}
}

func TestRunFrames(t *testing.T) {
	out := filepath.Join(t.TempDir(), "frame.png")
	if err := run(gx.VertexColorMaterial(), nil, 2, 8, 4, out, false); err != nil {
		t.Fatalf("run: %v", err)
	}
	if fi, err := os.Stat(out); err != nil || fi.Size() == 0 {
		t.Errorf("frame.png not written: %v", err)
	}
}

func TestTextureFlag(t *testing.T) {
	f := textureFlag{}
	if err := f.Set("2=brick.png"); err != nil {
		t.Fatalf("Set() error = %v", err)
	}
	if f[2] != "brick.png" {
		t.Errorf("unit 2 = %q, want brick.png", f[2])
	}
	for _, bad := range []string{"brick.png", "x=a.png", "8=a.png", "-1=a.png", "0="} {
		if err := f.Set(bad); err == nil {
			t.Errorf("Set(%q) should fail", bad)
		}
	}
}

func TestRunFramesTexture(t *testing.T) {
	dir := t.TempDir()
	src := image.NewRGBA(image.Rect(0, 0, 4, 4))
	src.Set(1, 1, color.RGBA{G: 255, A: 255})
	path := filepath.Join(dir, "tex.png")
	f, err := os.Create(path)
	if err != nil {
		t.Fatal(err)
	}
	if err := png.Encode(f, src); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal(err)
	}

	if err := run(gx.TexturedMaterial(), textureFlag{0: path}, 1, 8, 4, "", false); err != nil {
		t.Fatalf("run: %v", err)
	}
	if err := run(gx.TexturedMaterial(), textureFlag{0: filepath.Join(dir, "missing.png")}, 1, 8, 4, "", false); err == nil {
		t.Error("run with a missing texture should fail")
	}
}
