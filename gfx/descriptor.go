// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gfx

import (
	"fmt"

	"github.com/gogpu/gputypes"
)

// LoadDisposition selects whether an attachment is cleared or loaded at pass start.
type LoadDisposition uint8

const (
	LoadClear LoadDisposition = iota
	LoadLoad
)

// WrapMode is a sampler addressing mode.
type WrapMode uint8

const (
	WrapClamp WrapMode = iota
	WrapRepeat
	WrapMirror
)

// TexFilterMode is a sampler min/mag filter.
type TexFilterMode uint8

const (
	TexFilterPoint TexFilterMode = iota
	TexFilterBilinear
)

// MipFilterMode is a sampler mip filter.
type MipFilterMode uint8

const (
	MipFilterNoMip MipFilterMode = iota
	MipFilterNearest
	MipFilterLinear
)

// PrimitiveTopology is the primitive assembly mode of a pipeline.
type PrimitiveTopology uint8

const (
	TopologyTriangles PrimitiveTopology = iota
)

// BufferUsage is the binding role of a buffer.
type BufferUsage uint8

const (
	BufferUsageIndex BufferUsage = iota + 1
	BufferUsageVertex
	BufferUsageUniform
)

func (u BufferUsage) String() string {
	switch u {
	case BufferUsageIndex:
		return "Index"
	case BufferUsageVertex:
		return "Vertex"
	case BufferUsageUniform:
		return "Uniform"
	default:
		return fmt.Sprintf("BufferUsage(%d)", int(u))
	}
}

// BufferFrequencyHint tells the backend how often the buffer contents change.
type BufferFrequencyHint uint8

const (
	BufferStatic BufferFrequencyHint = iota + 1
	BufferDynamic
)

// VertexBufferFrequency selects per-vertex or per-instance stepping.
type VertexBufferFrequency uint8

const (
	PerVertex VertexBufferFrequency = iota + 1
	PerInstance
)

// TextureDimension is the shape of a texture.
type TextureDimension uint8

const (
	Texture2D TextureDimension = iota
	Texture2DArray
)

// TextureDescriptor describes a sampled texture.
type TextureDescriptor struct {
	Dimension   TextureDimension
	PixelFormat gputypes.TextureFormat
	Width       int
	Height      int
	// Depth is the array layer count; 1 for Texture2D.
	Depth     int
	NumLevels int
}

// MakeTextureDescriptor2D returns a descriptor for a single-layer 2D texture.
func MakeTextureDescriptor2D(format gputypes.TextureFormat, width, height, numLevels int) TextureDescriptor {
	return TextureDescriptor{
		Dimension:   Texture2D,
		PixelFormat: format,
		Width:       width,
		Height:      height,
		Depth:       1,
		NumLevels:   numLevels,
	}
}

// Validate checks the descriptor for impossible sizes.
func (d TextureDescriptor) Validate() error {
	if d.Width <= 0 || d.Height <= 0 || d.Depth <= 0 || d.NumLevels <= 0 {
		return fmt.Errorf("%w: texture %dx%dx%d with %d levels", ErrInvalidDescriptor, d.Width, d.Height, d.Depth, d.NumLevels)
	}
	if d.Dimension == Texture2D && d.Depth != 1 {
		return fmt.Errorf("%w: 2D texture with depth %d", ErrInvalidDescriptor, d.Depth)
	}
	if _, ok := formatByteSize(d.PixelFormat); !ok {
		return fmt.Errorf("%w: unsupported texture format %v", ErrInvalidDescriptor, d.PixelFormat)
	}
	return nil
}

// SamplerDescriptor describes a texture sampler.
type SamplerDescriptor struct {
	WrapS     WrapMode
	WrapT     WrapMode
	MinFilter TexFilterMode
	MagFilter TexFilterMode
	MipFilter MipFilterMode
	MinLOD    float32
	MaxLOD    float32
}

// BufferBinding binds a word range of a uniform buffer.
type BufferBinding struct {
	Buffer     *Buffer
	WordOffset int
	WordCount  int
}

// SamplerBinding binds a texture and sampler pair. Nil entries bind the
// backend's placeholder resources.
type SamplerBinding struct {
	Texture *Texture
	Sampler *Sampler
}

// BindingLayoutDescriptor is the shape of one binding set.
type BindingLayoutDescriptor struct {
	NumUniformBuffers int
	NumSamplers       int
}

// BindingsDescriptor describes the resources of one binding set.
type BindingsDescriptor struct {
	BindingLayout         BindingLayoutDescriptor
	UniformBufferBindings []BufferBinding
	SamplerBindings       []SamplerBinding
}

// Validate checks that the bound resources match the layout.
func (d BindingsDescriptor) Validate() error {
	if len(d.UniformBufferBindings) < d.BindingLayout.NumUniformBuffers {
		return fmt.Errorf("%w: %d uniform buffers bound, layout needs %d",
			ErrInvalidDescriptor, len(d.UniformBufferBindings), d.BindingLayout.NumUniformBuffers)
	}
	if len(d.SamplerBindings) < d.BindingLayout.NumSamplers {
		return fmt.Errorf("%w: %d samplers bound, layout needs %d",
			ErrInvalidDescriptor, len(d.SamplerBindings), d.BindingLayout.NumSamplers)
	}
	for i, b := range d.UniformBufferBindings {
		if b.Buffer == nil {
			return fmt.Errorf("%w: uniform buffer binding %d is nil", ErrInvalidDescriptor, i)
		}
	}
	return nil
}

// UniformBinding returns the binding slot of uniform buffer i. Uniform
// buffers occupy slots 0..numUniformBuffers-1, followed by interleaved
// texture and sampler slots.
func UniformBinding(i int) int { return i }

// TextureBinding returns the binding slot of texture i in a layout with
// numUniformBuffers uniform buffers.
func TextureBinding(numUniformBuffers, i int) int { return numUniformBuffers + 2*i }

// SamplerBindingSlot returns the binding slot of the sampler paired with texture i.
func SamplerBindingSlot(numUniformBuffers, i int) int { return numUniformBuffers + 2*i + 1 }

// InputLayoutBufferDescriptor describes one vertex buffer slot.
type InputLayoutBufferDescriptor struct {
	ByteStride int
	Frequency  VertexBufferFrequency
}

// VertexAttributeDescriptor places one shader input inside a vertex buffer.
type VertexAttributeDescriptor struct {
	Location         int
	Format           gputypes.VertexFormat
	BufferIndex      int
	BufferByteOffset int
}

// InputLayoutDescriptor describes vertex fetch. Nil buffer descriptors
// leave the slot unused.
type InputLayoutDescriptor struct {
	VertexBufferDescriptors    []*InputLayoutBufferDescriptor
	VertexAttributeDescriptors []VertexAttributeDescriptor
	// IndexBufferFormat is IndexFormatUndefined for non-indexed geometry.
	IndexBufferFormat gputypes.IndexFormat
}

// Validate checks that every attribute references a declared buffer.
func (d InputLayoutDescriptor) Validate() error {
	seen := make(map[int]bool, len(d.VertexAttributeDescriptors))
	for _, a := range d.VertexAttributeDescriptors {
		if a.BufferIndex < 0 || a.BufferIndex >= len(d.VertexBufferDescriptors) || d.VertexBufferDescriptors[a.BufferIndex] == nil {
			return fmt.Errorf("%w: attribute at location %d references missing buffer %d", ErrInvalidDescriptor, a.Location, a.BufferIndex)
		}
		if seen[a.Location] {
			return fmt.Errorf("%w: duplicate attribute location %d", ErrInvalidDescriptor, a.Location)
		}
		seen[a.Location] = true
	}
	return nil
}

// VertexBufferDescriptor binds a buffer at a byte offset.
type VertexBufferDescriptor struct {
	Buffer     *Buffer
	ByteOffset int
}

// IndexBufferDescriptor binds an index buffer at a byte offset.
type IndexBufferDescriptor = VertexBufferDescriptor

// VertexInput is one vertex stage input declared by a program.
type VertexInput struct {
	Location int
	Format   gputypes.VertexFormat
}

// ProgramDescriptor holds the source of a linked vertex and fragment program.
type ProgramDescriptor struct {
	Name           string
	VertexSource   string
	FragmentSource string
	// VertexEntryPoint and FragmentEntryPoint default to "vs_main" and "fs_main".
	VertexEntryPoint   string
	FragmentEntryPoint string
	// VertexInputs lists the inputs the vertex stage declares. Inputs an
	// input layout does not feed read zero.
	VertexInputs []VertexInput
}

// EntryPoints returns the entry point names with defaults applied.
func (d ProgramDescriptor) EntryPoints() (vertex, fragment string) {
	vertex, fragment = d.VertexEntryPoint, d.FragmentEntryPoint
	if vertex == "" {
		vertex = "vs_main"
	}
	if fragment == "" {
		fragment = "fs_main"
	}
	return vertex, fragment
}

// RenderPipelineDescriptor describes a complete render pipeline.
type RenderPipelineDescriptor struct {
	BindingLayouts []BindingLayoutDescriptor
	InputLayout    *InputLayout
	Program        *Program
	Topology       PrimitiveTopology
	MegaState      MegaStateDescriptor
	SampleCount    int
	// ColorFormat and DepthStencilFormat default to RGBA8Unorm and Depth24PlusStencil8.
	ColorFormat        gputypes.TextureFormat
	DepthStencilFormat gputypes.TextureFormat
}

// Formats returns the attachment formats with defaults applied.
func (d RenderPipelineDescriptor) Formats() (color, depthStencil gputypes.TextureFormat) {
	color, depthStencil = d.ColorFormat, d.DepthStencilFormat
	if color == gputypes.TextureFormatUndefined {
		color = gputypes.TextureFormatRGBA8Unorm
	}
	if depthStencil == gputypes.TextureFormatUndefined {
		depthStencil = gputypes.TextureFormatDepth24PlusStencil8
	}
	return color, depthStencil
}

// RenderPassDescriptor describes the attachments of a render pass.
type RenderPassDescriptor struct {
	ColorAttachment        *ColorAttachment
	ColorLoadDisposition   LoadDisposition
	ColorClearColor        gputypes.Color
	DepthStencilAttachment *DepthStencilAttachment
	DepthLoadDisposition   LoadDisposition
	DepthClearValue        float32
	StencilLoadDisposition LoadDisposition
	StencilClearValue      uint32
}

// DefaultRenderPassDescriptor clears color to opaque black and depth to 0
// (the far plane under reversed Z).
func DefaultRenderPassDescriptor(color *ColorAttachment, depth *DepthStencilAttachment) RenderPassDescriptor {
	return RenderPassDescriptor{
		ColorAttachment:        color,
		ColorLoadDisposition:   LoadClear,
		ColorClearColor:        gputypes.Color{A: 1},
		DepthStencilAttachment: depth,
		DepthLoadDisposition:   LoadClear,
		DepthClearValue:        0,
		StencilLoadDisposition: LoadClear,
		StencilClearValue:      0,
	}
}
