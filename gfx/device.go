// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gfx

import (
	"github.com/gogpu/gputypes"
)

// Limits are the device limits relevant to uniform block layout.
type Limits struct {
	// UniformBufferWordAlignment is the required alignment of a dynamic
	// uniform buffer offset, in 32-bit words.
	UniformBufferWordAlignment int
	// UniformBufferMaxPageWordSize is the largest range bindable as one
	// uniform buffer, in 32-bit words.
	UniformBufferMaxPageWordSize int
}

// LimitsFromGPU converts WebGPU limits to gfx limits.
func LimitsFromGPU(l gputypes.Limits) Limits {
	align := int(l.MinUniformBufferOffsetAlignment / 4)
	if align < 1 {
		align = 1
	}
	return Limits{
		UniformBufferWordAlignment:   align,
		UniformBufferMaxPageWordSize: int(l.MaxUniformBufferBindingSize / 4),
	}
}

// CheckUniformBlock returns ErrUniformBlockTooLarge when a block of
// wordCount words cannot be bound in one range.
func (l Limits) CheckUniformBlock(wordCount int) error {
	if l.UniformBufferMaxPageWordSize > 0 && wordCount > l.UniformBufferMaxPageWordSize {
		return ErrUniformBlockTooLarge
	}
	return nil
}

// AlignWords rounds n up to the uniform offset alignment.
func (l Limits) AlignWords(n int) int {
	a := max(l.UniformBufferWordAlignment, 1)
	return (n + a - 1) / a * a
}

// VendorInfo describes the backend and adapter behind a device.
type VendorInfo struct {
	Backend                string
	AdapterName            string
	DeviceType             gputypes.DeviceType
	ShadingLanguage        string
	ShadingLanguageVersion string
	// ProgramBugDefines are preamble lines working around driver bugs.
	ProgramBugDefines        string
	ExplicitBindingLocations bool
	SeparateSamplerTextures  bool
}

// PassKind distinguishes transfer passes from render passes.
type PassKind uint8

const (
	PassHostAccess PassKind = iota
	PassRender
)

// Pass is a single-use command recording. Once submitted it is consumed.
type Pass interface {
	Kind() PassKind
}

// HostAccessPass records host-to-device transfers. Uploads are visible to
// every render pass submitted after it.
type HostAccessPass interface {
	Pass
	UploadBufferData(buffer *Buffer, dstWordOffset int, data []byte)
	UploadTextureData(texture *Texture, firstMipLevel int, levelDatas [][]byte)
}

// RenderPass records draw commands. Errors are sticky: the first failure
// is returned by Device.SubmitPass and later commands are dropped.
type RenderPass interface {
	Pass

	SetViewport(x, y, w, h float32)
	SetScissor(x, y, w, h int)
	SetPipeline(pipeline *RenderPipeline)
	SetBindings(bindingLayoutIndex int, bindings *Bindings, dynamicByteOffsets []uint32)
	SetInputState(inputState *InputState)
	SetStencilRef(value uint32)

	Draw(vertexCount, firstVertex int)
	DrawIndexed(indexCount, firstIndex int)
	DrawIndexedInstanced(indexCount, firstIndex, instanceCount int)

	// EndPass finishes recording, optionally resolving the color
	// attachment into resolveTo.
	EndPass(resolveTo *Texture)
}

// Device creates and destroys resources and executes passes. A device
// owns every handle it creates and is solely responsible for releasing it.
//
// Destroying a handle twice, or using a destroyed handle, is recorded as a
// Violation instead of crashing.
type Device interface {
	CreateBuffer(wordCount int, usage BufferUsage, hint BufferFrequencyHint) (*Buffer, error)
	CreateTexture(desc TextureDescriptor) (*Texture, error)
	CreateSampler(desc SamplerDescriptor) (*Sampler, error)
	CreateColorAttachment(width, height, numSamples int) (*ColorAttachment, error)
	CreateDepthStencilAttachment(width, height, numSamples int) (*DepthStencilAttachment, error)
	CreateProgram(desc ProgramDescriptor) (*Program, error)
	CreateBindings(desc BindingsDescriptor) (*Bindings, error)
	CreateInputLayout(desc InputLayoutDescriptor) (*InputLayout, error)
	CreateInputState(layout *InputLayout, buffers []*VertexBufferDescriptor, indexBuffer *IndexBufferDescriptor) (*InputState, error)
	CreateRenderPipeline(desc RenderPipelineDescriptor) (*RenderPipeline, error)

	DestroyBuffer(o *Buffer)
	DestroyTexture(o *Texture)
	DestroySampler(o *Sampler)
	DestroyColorAttachment(o *ColorAttachment)
	DestroyDepthStencilAttachment(o *DepthStencilAttachment)
	DestroyProgram(o *Program)
	DestroyBindings(o *Bindings)
	DestroyInputLayout(o *InputLayout)
	DestroyInputState(o *InputState)
	DestroyRenderPipeline(o *RenderPipeline)

	CreateHostAccessPass() HostAccessPass
	CreateRenderPass(desc RenderPassDescriptor) RenderPass
	// SubmitPass executes and consumes the pass.
	SubmitPass(p Pass) error

	QueryLimits() Limits
	QueryTextureFormatSupported(format gputypes.TextureFormat) bool
	QueryPipelineReady(o *RenderPipeline) bool
	QueryPlatformAvailable() bool
	QueryVendorInfo() VendorInfo

	SetResourceName(o Handle, name string)
	SetResourceLeakCheck(o Handle, enable bool)
	PushDebugGroup(g *DebugGroup)
	PopDebugGroup()

	// CheckForLeaks reports resources still alive with leak checking on.
	CheckForLeaks() []Leak
	// Violations returns every lifecycle violation recorded so far.
	Violations() []Violation

	// Destroy releases the device. Leaks are logged.
	Destroy()
}

// SwapChain presents an onscreen texture.
type SwapChain interface {
	ConfigureSwapChain(width, height int)
	Device() Device
	OnscreenTexture() *Texture
	Present() error
}
