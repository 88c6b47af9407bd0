// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Command gxc compiles a GX material into WGSL and optionally renders it
// through the viewer on the recording backend.
//
// Usage:
//
//	gxc -material lit                 # print the WGSL program
//	gxc -json mat.json -glsl -es      # translate to GLSL ES 3.00
//	gxc -material textured -validate  # list validation issues
//	gxc -material alpha-blend -eval "1,0,0,1;0,1,0,1;0.5,0.5,0.5,0.5;0,0,0,0"
//	gxc -material lit -frames 60 -output frame.png
//	gxc -material textured -frames 1 -texture 0=brick.png
package main

import (
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"log/slog"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/go-gl/mathgl/mgl32"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"

	"github.com/gogpu/gxview"
	"github.com/gogpu/gxview/gfx/recorder"
	"github.com/gogpu/gxview/gx"
	"github.com/gogpu/gxview/viewer"
)

func main() {
	var (
		material = flag.String("material", "vertex-color", "built-in material: "+strings.Join(gx.PresetNames(), ", "))
		jsonFile = flag.String("json", "", "load the material from a JSON file instead")
		toGLSL   = flag.Bool("glsl", false, "print GLSL 3.30 instead of WGSL")
		es       = flag.Bool("es", false, "with -glsl, target GLSL ES 3.00")
		validate = flag.Bool("validate", false, "print validation issues and exit")
		eval     = flag.String("eval", "", "evaluate stage 0 on inputs \"a;b;c;d\", each r,g,b,a")
		frames   = flag.Int("frames", 0, "render this many frames on the recording backend")
		width    = flag.Int("width", 640, "backbuffer width")
		height   = flag.Int("height", 480, "backbuffer height")
		output   = flag.String("output", "", "with -frames, save the last frame as PNG")
		naga     = flag.Bool("naga", true, "with -frames, validate programs with naga")
		verbose  = flag.Bool("v", false, "debug logging")
		textures = textureFlag{}
	)
	flag.Var(textures, "texture", "with -frames, bind an image as unit=path (repeatable)")
	flag.Parse()

	if *verbose {
		gxview.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}

	m, err := loadMaterial(*material, *jsonFile)
	if err != nil {
		log.Fatalf("gxc: %v", err)
	}

	switch {
	case *validate:
		if !printIssues(m) {
			os.Exit(1)
		}
	case *eval != "":
		if err := evalStage(m, *eval); err != nil {
			log.Fatalf("gxc: %v", err)
		}
	case *frames > 0:
		if err := run(m, textures, *frames, *width, *height, *output, *naga); err != nil {
			log.Fatalf("gxc: %v", err)
		}
	default:
		if err := printProgram(m, *toGLSL, *es); err != nil {
			log.Fatalf("gxc: %v", err)
		}
	}
}

func loadMaterial(name, jsonFile string) (*gx.Material, error) {
	if jsonFile == "" {
		m, ok := gx.Preset(name)
		if !ok {
			return nil, fmt.Errorf("unknown material %q", name)
		}
		return m, nil
	}
	data, err := os.ReadFile(jsonFile)
	if err != nil {
		return nil, err
	}
	var m gx.Material
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("%s: %w", jsonFile, err)
	}
	if m.Name == "" {
		m.Name = jsonFile
	}
	return &m, nil
}

// printIssues reports whether the material has no errors.
func printIssues(m *gx.Material) bool {
	ok := true
	for _, is := range gx.Validate(m, nil) {
		if is.Level == gx.IssueError {
			ok = false
		}
		if is.Path != "" {
			fmt.Printf("%s: %s: %s (%s)\n", is.Level, is.Path, is.Message, is.Code)
		} else {
			fmt.Printf("%s: %s (%s)\n", is.Level, is.Message, is.Code)
		}
	}
	if ok {
		fmt.Printf("%s: ok\n", m.Name)
	}
	return ok
}

func printProgram(m *gx.Material, toGLSL, es bool) error {
	prog, err := gx.Compile(m, nil)
	if err != nil {
		return err
	}
	if !toGLSL {
		fmt.Printf("// %s vertex\n%s\n", prog.Name, prog.VertexSource)
		fmt.Printf("// %s fragment\n%s\n", prog.Name, prog.FragmentSource)
		return nil
	}
	vs, fs, err := recorder.TranslateGLSL(prog.Descriptor(), es)
	if err != nil {
		return err
	}
	fmt.Printf("// %s vertex\n%s\n", prog.Name, vs)
	fmt.Printf("// %s fragment\n%s\n", prog.Name, fs)
	return nil
}

func parseVec4(s string) (mgl32.Vec4, error) {
	var v mgl32.Vec4
	parts := strings.Split(s, ",")
	if len(parts) != 4 {
		return v, fmt.Errorf("color %q: want r,g,b,a", s)
	}
	for i, p := range parts {
		f, err := strconv.ParseFloat(strings.TrimSpace(p), 32)
		if err != nil {
			return v, fmt.Errorf("color %q: %w", s, err)
		}
		v[i] = float32(f)
	}
	return v, nil
}

func evalStage(m *gx.Material, inputs string) error {
	if len(m.TevStages) == 0 {
		return errors.New("material has no TEV stages")
	}
	parts := strings.Split(inputs, ";")
	if len(parts) != 4 {
		return fmt.Errorf("eval %q: want four colors separated by ';'", inputs)
	}
	var in gx.TevInputs
	for i, dst := range []*mgl32.Vec4{&in.A, &in.B, &in.C, &in.D} {
		v, err := parseVec4(parts[i])
		if err != nil {
			return err
		}
		*dst = v
	}

	st := m.TevStages[0]
	rgb := gx.EvalTevColorOp(st.ColorOp, st.ColorBias, st.ColorScale, st.ColorClamp, in)
	a := gx.EvalTevAlphaOp(st.AlphaOp, st.AlphaBias, st.AlphaScale, st.AlphaClamp, in)
	fmt.Printf("color %s %.4f %.4f %.4f\n", st.ColorOp, rgb[0], rgb[1], rgb[2])
	fmt.Printf("alpha %s %.4f\n", st.AlphaOp, a)
	fmt.Printf("alpha test pass %v\n", gx.EvalAlphaTest(m.AlphaTest, a))
	return nil
}

// textureFlag maps texture units to image paths.
type textureFlag map[int]string

func (f textureFlag) String() string {
	parts := make([]string, 0, len(f))
	for unit, path := range f {
		parts = append(parts, fmt.Sprintf("%d=%s", unit, path))
	}
	return strings.Join(parts, ",")
}

func (f textureFlag) Set(v string) error {
	unit, path, ok := strings.Cut(v, "=")
	if !ok || path == "" {
		return fmt.Errorf("texture %q: want unit=path", v)
	}
	n, err := strconv.Atoi(unit)
	if err != nil || n < 0 || n >= gx.NumTextures {
		return fmt.Errorf("texture %q: unit must be 0..%d", v, gx.NumTextures-1)
	}
	f[n] = path
	return nil
}

func loadImage(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return img, nil
}

func run(m *gx.Material, textures textureFlag, frames, width, height int, output string, checkShaders bool) error {
	dev := recorder.New(recorder.WithShaderValidation(checkShaders))
	defer dev.Destroy()

	sc, err := recorder.NewSwapChain(dev, width, height)
	if err != nil {
		return err
	}
	defer sc.Destroy()

	v := viewer.New(sc)
	v.SetSize(width, height)
	v.Camera().LookAt(mgl32.Vec3{0.5, 0.5, 2}, mgl32.Vec3{0.5, 0.5, 0}, mgl32.Vec3{0, 1, 0})

	scene, err := viewer.NewMaterialScene(dev, m, nil)
	if err != nil {
		return err
	}
	v.SetScene(scene)
	defer v.Destroy()

	for unit, path := range textures {
		img, err := loadImage(path)
		if err != nil {
			return err
		}
		if err := scene.SetTexture(dev, unit, img); err != nil {
			return err
		}
	}

	const frameTime = time.Second / 60
	for i := range frames {
		if err := v.Update(time.Duration(i) * frameTime); err != nil {
			return err
		}
	}

	st := dev.FinishRecording().Stats()
	fmt.Printf("%s: %d frames, %d passes, %d draws, %d triangles, %d uploads\n",
		m.Name, sc.Frames(), st.Passes, st.DrawCalls, st.Triangles, st.Uploads)

	if output == "" {
		return nil
	}
	img, err := sc.ReadPixels()
	if err != nil {
		return err
	}
	f, err := os.Create(output)
	if err != nil {
		return err
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
