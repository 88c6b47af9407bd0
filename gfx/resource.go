// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gfx

import (
	"fmt"

	"github.com/gogpu/gputypes"
)

// ResourceType identifies the kind of a device-owned resource.
type ResourceType uint8

const (
	ResourceBuffer ResourceType = iota
	ResourceTexture
	ResourceColorAttachment
	ResourceDepthStencilAttachment
	ResourceSampler
	ResourceProgram
	ResourceBindings
	ResourceInputLayout
	ResourceInputState
	ResourceRenderPipeline
)

var resourceTypeNames = [...]string{
	ResourceBuffer:                 "Buffer",
	ResourceTexture:                "Texture",
	ResourceColorAttachment:        "ColorAttachment",
	ResourceDepthStencilAttachment: "DepthStencilAttachment",
	ResourceSampler:                "Sampler",
	ResourceProgram:                "Program",
	ResourceBindings:               "Bindings",
	ResourceInputLayout:            "InputLayout",
	ResourceInputState:             "InputState",
	ResourceRenderPipeline:         "RenderPipeline",
}

func (t ResourceType) String() string {
	if int(t) < len(resourceTypeNames) {
		return resourceTypeNames[t]
	}
	return fmt.Sprintf("ResourceType(%d)", int(t))
}

// ResourceState is the lifecycle state of a resource handle.
// Destroyed is terminal.
type ResourceState uint8

const (
	StateCreated ResourceState = iota
	StateInUse
	StateDestroyed
)

func (s ResourceState) String() string {
	switch s {
	case StateCreated:
		return "Created"
	case StateInUse:
		return "InUse"
	case StateDestroyed:
		return "Destroyed"
	default:
		return fmt.Sprintf("Unknown(%d)", int(s))
	}
}

// Resource is the header embedded in every device-owned handle.
// Its bookkeeping fields are owned by the device's Tracker.
type Resource struct {
	id        uint64
	typ       ResourceType
	name      string
	state     ResourceState
	leakCheck bool

	// Impl holds backend-private state. Only the creating device reads it.
	Impl any
}

// ID returns the device-unique id, or 0 for a handle no device created.
func (r *Resource) ID() uint64 { return r.id }

// Type returns the resource kind.
func (r *Resource) Type() ResourceType { return r.typ }

// Name returns the debug name set with Device.SetResourceName.
func (r *Resource) Name() string { return r.name }

// State returns the lifecycle state.
func (r *Resource) State() ResourceState { return r.state }

func (r *Resource) header() *Resource { return r }

// Handle is implemented by every resource type in this package.
type Handle interface {
	header() *Resource
}

// Buffer is a GPU buffer measured in 32-bit words.
type Buffer struct {
	Resource
	WordCount int
	Usage     BufferUsage
	Hint      BufferFrequencyHint
}

// Texture is a sampled texture.
type Texture struct {
	Resource
	Descriptor TextureDescriptor
}

// Sampler is a texture sampler.
type Sampler struct {
	Resource
	Descriptor SamplerDescriptor
}

// ColorAttachment is a renderable color target.
type ColorAttachment struct {
	Resource
	Width, Height int
	SampleCount   int
	Format        gputypes.TextureFormat
}

// DepthStencilAttachment is a renderable depth/stencil target.
type DepthStencilAttachment struct {
	Resource
	Width, Height int
	SampleCount   int
	Format        gputypes.TextureFormat
}

// Program is a compiled vertex and fragment program.
type Program struct {
	Resource
	Descriptor ProgramDescriptor
}

// Bindings is a bound set of uniform buffers and texture/sampler pairs.
type Bindings struct {
	Resource
	Descriptor BindingsDescriptor
}

// InputLayout describes vertex fetch.
type InputLayout struct {
	Resource
	Descriptor InputLayoutDescriptor
}

// InputState binds concrete buffers to an InputLayout.
type InputState struct {
	Resource
	Layout        *InputLayout
	VertexBuffers []*VertexBufferDescriptor
	IndexBuffer   *IndexBufferDescriptor
}

// RenderPipeline is a program plus fixed-function state.
type RenderPipeline struct {
	Resource
	Descriptor RenderPipelineDescriptor
}

func resourceTypeOf(h Handle) ResourceType {
	switch h.(type) {
	case *Buffer:
		return ResourceBuffer
	case *Texture:
		return ResourceTexture
	case *ColorAttachment:
		return ResourceColorAttachment
	case *DepthStencilAttachment:
		return ResourceDepthStencilAttachment
	case *Sampler:
		return ResourceSampler
	case *Program:
		return ResourceProgram
	case *Bindings:
		return ResourceBindings
	case *InputLayout:
		return ResourceInputLayout
	case *InputState:
		return ResourceInputState
	case *RenderPipeline:
		return ResourceRenderPipeline
	default:
		panic(fmt.Sprintf("gfx: unknown handle type %T", h))
	}
}
