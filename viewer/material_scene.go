// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package viewer

import (
	"encoding/binary"
	"fmt"
	"image"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/gogpu/gputypes"

	"github.com/gogpu/gxview/gfx"
	"github.com/gogpu/gxview/gx"
)

// quadAttributes are the vertex streams a MaterialScene can supply.
var quadAttributes = [...]gx.VertexAttribute{gx.VtxPos, gx.VtxPnMtxIdx, gx.VtxNrm, gx.VtxClr0, gx.VtxTex0}

var quadIndices = [...]uint16{0, 1, 2, 0, 2, 3}

// sceneSampleCount is the MSAA sample count of the scene's attachments.
const sceneSampleCount = 4

// quadVertex returns the stream data of corner i of a unit quad in the
// XY plane facing +Z.
func quadVertex(a gx.VertexAttribute, i int) []float32 {
	x, y := float32(i&1^i>>1), float32(i>>1)
	switch a {
	case gx.VtxPos:
		return []float32{2*x - 1, 2*y - 1, 0}
	case gx.VtxPnMtxIdx:
		// Slot 0; a zero float has the same bits as uint32 0.
		return []float32{0}
	case gx.VtxNrm:
		return []float32{0, 0, 1}
	case gx.VtxClr0:
		return []float32{1, 1, 1, 1}
	case gx.VtxTex0:
		return []float32{x, 1 - y}
	}
	return nil
}

// MaterialScene draws one compiled material on a quad. It exercises the
// whole path from material to device: program and pipeline creation,
// per-frame uniform uploads and an indexed draw.
type MaterialScene struct {
	Material *gx.Material
	Program  *gx.Program
	Params   *gx.MaterialParams
	// Model places the quad in the world.
	Model mgl32.Mat4
	// Lights, when set, are placed relative to the camera every frame.
	Lights     *gx.ActorLightInfo
	ClearColor gputypes.Color

	program     *gfx.Program
	inputLayout *gfx.InputLayout
	pipeline    *gfx.RenderPipeline
	vertexBuf   *gfx.Buffer
	indexBuf    *gfx.Buffer
	inputState  *gfx.InputState
	uniforms    *gfx.UniformBuffer

	textures [gx.NumTextures]*gfx.Texture
	samplers [gx.NumTextures]*gfx.Sampler

	bindings      *gfx.Bindings
	boundBuffer   *gfx.Buffer
	boundOffsets  [gx.NumUniformBuffers]int
	color         *gfx.ColorAttachment
	depth         *gfx.DepthStencilAttachment
	width, height int
}

var _ Scene = (*MaterialScene)(nil)

// NewMaterialScene compiles m and creates the device objects to draw it.
func NewMaterialScene(device gfx.Device, m *gx.Material, hacks *gx.Hacks) (*MaterialScene, error) {
	prog, err := gx.Compile(m, hacks)
	if err != nil {
		return nil, err
	}
	s := &MaterialScene{
		Material:   m,
		Program:    prog,
		Params:     gx.NewMaterialParams(),
		Model:      mgl32.Ident4(),
		ClearColor: gputypes.Color{A: 1},
		uniforms:   gfx.NewUniformBuffer(device, m.Name+" Uniforms"),
	}
	if err := s.init(device); err != nil {
		s.Destroy(device)
		return nil, err
	}
	return s, nil
}

func (s *MaterialScene) init(device gfx.Device) error {
	var err error
	if s.program, err = device.CreateProgram(s.Program.Descriptor()); err != nil {
		return fmt.Errorf("viewer: material %s: %w", s.Material.Name, err)
	}

	var attrs []gx.VertexAttribute
	for _, a := range quadAttributes {
		if s.Program.UsesAttribute(a) {
			attrs = append(attrs, a)
		}
	}
	if s.inputLayout, err = device.CreateInputLayout(gx.InterleavedInputLayout(gputypes.IndexFormatUint16, attrs...)); err != nil {
		return err
	}
	if s.pipeline, err = device.CreateRenderPipeline(gfx.RenderPipelineDescriptor{
		BindingLayouts: gx.BindingLayouts(),
		InputLayout:    s.inputLayout,
		Program:        s.program,
		Topology:       gfx.TopologyTriangles,
		MegaState:      s.Program.MegaState,
		SampleCount:    sceneSampleCount,
	}); err != nil {
		return err
	}

	var vertices []float32
	for i := range 4 {
		for _, a := range attrs {
			vertices = append(vertices, quadVertex(a, i)...)
		}
	}
	if len(vertices) == 0 {
		vertices = make([]float32, 4)
	}
	if s.vertexBuf, err = device.CreateBuffer(len(vertices), gfx.BufferUsageVertex, gfx.BufferStatic); err != nil {
		return err
	}
	indices := make([]byte, 2*len(quadIndices))
	for i, idx := range quadIndices {
		binary.LittleEndian.PutUint16(indices[2*i:], idx)
	}
	if s.indexBuf, err = device.CreateBuffer(len(indices)/4, gfx.BufferUsageIndex, gfx.BufferStatic); err != nil {
		return err
	}
	if s.inputState, err = device.CreateInputState(s.inputLayout,
		[]*gfx.VertexBufferDescriptor{{Buffer: s.vertexBuf}},
		&gfx.IndexBufferDescriptor{Buffer: s.indexBuf}); err != nil {
		return err
	}

	pass := device.CreateHostAccessPass()
	pass.UploadBufferData(s.vertexBuf, 0, gfx.Float32Bytes(vertices))
	pass.UploadBufferData(s.indexBuf, 0, indices)
	return device.SubmitPass(pass)
}

// SetTexture uploads img with a full mip chain and binds it to texture
// unit. A previous texture on the unit is released.
func (s *MaterialScene) SetTexture(device gfx.Device, unit int, img image.Image) error {
	if unit < 0 || unit >= gx.NumTextures {
		return fmt.Errorf("%w: texture unit %d", gfx.ErrInvalidDescriptor, unit)
	}
	desc, levels := gfx.TextureFromImage(img, 0, gfx.MipBilinear)
	tex, err := device.CreateTexture(desc)
	if err != nil {
		return fmt.Errorf("viewer: texture unit %d: %w", unit, err)
	}
	device.SetResourceName(tex, fmt.Sprintf("%s Texture %d", s.Material.Name, unit))

	pass := device.CreateHostAccessPass()
	pass.UploadTextureData(tex, 0, levels)
	if err := device.SubmitPass(pass); err != nil {
		device.DestroyTexture(tex)
		return fmt.Errorf("viewer: texture unit %d: %w", unit, err)
	}
	sampler, err := device.CreateSampler(gfx.SamplerDescriptor{
		WrapS:     gfx.WrapRepeat,
		WrapT:     gfx.WrapRepeat,
		MinFilter: gfx.TexFilterBilinear,
		MagFilter: gfx.TexFilterBilinear,
		MipFilter: gfx.MipFilterLinear,
		MaxLOD:    float32(desc.NumLevels),
	})
	if err != nil {
		device.DestroyTexture(tex)
		return fmt.Errorf("viewer: texture unit %d: %w", unit, err)
	}

	s.releaseTexture(device, unit)
	s.textures[unit], s.samplers[unit] = tex, sampler
	// Force the next bind to pick up the new texture.
	s.boundBuffer = nil
	return nil
}

func (s *MaterialScene) releaseTexture(device gfx.Device, unit int) {
	if s.textures[unit] != nil {
		device.DestroyTexture(s.textures[unit])
		s.textures[unit] = nil
	}
	if s.samplers[unit] != nil {
		device.DestroySampler(s.samplers[unit])
		s.samplers[unit] = nil
	}
}

func (s *MaterialScene) setTargets(device gfx.Device, width, height int) error {
	if s.color != nil && s.width == width && s.height == height {
		return nil
	}
	s.destroyTargets(device)
	var err error
	if s.color, err = device.CreateColorAttachment(width, height, sceneSampleCount); err != nil {
		return err
	}
	if s.depth, err = device.CreateDepthStencilAttachment(width, height, sceneSampleCount); err != nil {
		return err
	}
	s.width, s.height = width, height
	return nil
}

func (s *MaterialScene) destroyTargets(device gfx.Device) {
	if s.color != nil {
		device.DestroyColorAttachment(s.color)
		s.color = nil
	}
	if s.depth != nil {
		device.DestroyDepthStencilAttachment(s.depth)
		s.depth = nil
	}
}

// upload fills and uploads the three uniform blocks and returns their
// word offsets.
func (s *MaterialScene) upload(device gfx.Device, cam *Camera) ([gx.NumUniformBuffers]int, error) {
	var offsets [gx.NumUniformBuffers]int
	sizes := [gx.NumUniformBuffers]int{
		gx.UBSceneParams:    gx.SceneParamsBlockSize,
		gx.UBMaterialParams: gx.MaterialParamsBlockSize(s.Material),
		gx.UBPacketParams:   gx.PacketParamsBlockSize,
	}
	for i, size := range sizes {
		offs, err := s.uniforms.Allocate(size)
		if err != nil {
			return offsets, err
		}
		offsets[i] = offs
	}

	if s.Lights != nil {
		s.Lights.SetLights(&s.Params.Lights, cam.WorldMatrix)
		s.Params.ColorAmbReg[0] = s.Lights.Ambient
	}
	gx.FillSceneParams(s.uniforms.Mapped(offsets[gx.UBSceneParams], sizes[gx.UBSceneParams]), cam.ProjectionMatrix, 0)
	s.Params.Fill(s.uniforms.Mapped(offsets[gx.UBMaterialParams], sizes[gx.UBMaterialParams]), s.Material)
	mv := cam.ViewMatrix.Mul4(s.Model)
	posMtx := mgl32.Mat3x4FromRows(mv.Row(0), mv.Row(1), mv.Row(2))
	gx.FillPacketParams(s.uniforms.Mapped(offsets[gx.UBPacketParams], sizes[gx.UBPacketParams]), []mgl32.Mat3x4{posMtx})

	pass := device.CreateHostAccessPass()
	if err := s.uniforms.Upload(pass); err != nil {
		return offsets, err
	}
	return offsets, device.SubmitPass(pass)
}

func (s *MaterialScene) bind(device gfx.Device, offsets [gx.NumUniformBuffers]int) error {
	buf := s.uniforms.Buffer()
	if s.bindings != nil && s.boundBuffer == buf && s.boundOffsets == offsets {
		return nil
	}
	if s.bindings != nil {
		device.DestroyBindings(s.bindings)
		s.bindings = nil
	}
	sizes := [gx.NumUniformBuffers]int{gx.SceneParamsBlockSize, gx.MaterialParamsBlockSize(s.Material), gx.PacketParamsBlockSize}
	desc := gfx.BindingsDescriptor{
		BindingLayout:   gx.BindingLayouts()[0],
		SamplerBindings: make([]gfx.SamplerBinding, gx.NumTextures),
	}
	for i := range s.textures {
		desc.SamplerBindings[i] = gfx.SamplerBinding{Texture: s.textures[i], Sampler: s.samplers[i]}
	}
	for i := range offsets {
		desc.UniformBufferBindings = append(desc.UniformBufferBindings, s.uniforms.Binding(offsets[i], sizes[i]))
	}
	bindings, err := device.CreateBindings(desc)
	if err != nil {
		return err
	}
	s.bindings, s.boundBuffer, s.boundOffsets = bindings, buf, offsets
	return nil
}

// Render uploads this frame's uniforms and records the quad draw. Errors
// are logged and the frame falls back to the clear scene.
func (s *MaterialScene) Render(device gfx.Device, input *RenderInput) gfx.RenderPass {
	if err := s.setTargets(device, input.BackbufferWidth, input.BackbufferHeight); err != nil {
		Logger().Warn("viewer: material scene targets", "material", s.Material.Name, "err", err)
		return nil
	}
	offsets, err := s.upload(device, input.Camera)
	if err != nil {
		Logger().Warn("viewer: material scene upload", "material", s.Material.Name, "err", err)
		return nil
	}
	if err := s.bind(device, offsets); err != nil {
		Logger().Warn("viewer: material scene bindings", "material", s.Material.Name, "err", err)
		return nil
	}

	desc := gfx.DefaultRenderPassDescriptor(s.color, s.depth)
	desc.ColorClearColor = s.ClearColor
	pass := device.CreateRenderPass(desc)
	vp := input.Viewport
	w, h := float32(input.BackbufferWidth), float32(input.BackbufferHeight)
	pass.SetViewport(vp.X*w, vp.Y*h, vp.W*w, vp.H*h)
	pass.SetPipeline(s.pipeline)
	pass.SetBindings(0, s.bindings, nil)
	pass.SetInputState(s.inputState)
	pass.DrawIndexed(len(quadIndices), 0)
	return pass
}

// Destroy releases every device object of the scene.
func (s *MaterialScene) Destroy(device gfx.Device) {
	s.destroyTargets(device)
	if s.bindings != nil {
		device.DestroyBindings(s.bindings)
		s.bindings = nil
	}
	s.uniforms.Destroy()
	for unit := range s.textures {
		s.releaseTexture(device, unit)
	}
	if s.inputState != nil {
		device.DestroyInputState(s.inputState)
		s.inputState = nil
	}
	if s.indexBuf != nil {
		device.DestroyBuffer(s.indexBuf)
		s.indexBuf = nil
	}
	if s.vertexBuf != nil {
		device.DestroyBuffer(s.vertexBuf)
		s.vertexBuf = nil
	}
	if s.pipeline != nil {
		device.DestroyRenderPipeline(s.pipeline)
		s.pipeline = nil
	}
	if s.inputLayout != nil {
		device.DestroyInputLayout(s.inputLayout)
		s.inputLayout = nil
	}
	if s.program != nil {
		device.DestroyProgram(s.program)
		s.program = nil
	}
}
