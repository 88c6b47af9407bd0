// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package recorder

import (
	"github.com/gogpu/gputypes"

	"github.com/gogpu/gxview/gfx"
)

// CommandType identifies the type of a command.
type CommandType uint8

const (
	// Transfer commands
	CmdUploadBuffer  CommandType = iota // Write words into a buffer
	CmdUploadTexture                    // Write mip levels into a texture

	// Pass commands
	CmdBeginRenderPass // Start a render pass
	CmdEndRenderPass   // Finish a render pass, optionally resolving

	// State commands
	CmdSetViewport   // Set the viewport rectangle
	CmdSetScissor    // Set the scissor rectangle
	CmdSetPipeline   // Bind a render pipeline
	CmdSetBindings   // Bind a binding set
	CmdSetInputState // Bind vertex and index buffers
	CmdSetStencilRef // Set the stencil reference value

	// Draw commands
	CmdDraw        // Non-indexed draw
	CmdDrawIndexed // Indexed, possibly instanced draw

	CmdPresent // Present the onscreen texture
)

// commandTypeNames maps CommandType values to their string representation.
var commandTypeNames = [...]string{
	CmdUploadBuffer:    "UploadBuffer",
	CmdUploadTexture:   "UploadTexture",
	CmdBeginRenderPass: "BeginRenderPass",
	CmdEndRenderPass:   "EndRenderPass",
	CmdSetViewport:     "SetViewport",
	CmdSetScissor:      "SetScissor",
	CmdSetPipeline:     "SetPipeline",
	CmdSetBindings:     "SetBindings",
	CmdSetInputState:   "SetInputState",
	CmdSetStencilRef:   "SetStencilRef",
	CmdDraw:            "Draw",
	CmdDrawIndexed:     "DrawIndexed",
	CmdPresent:         "Present",
}

// String returns the string representation of a CommandType.
func (c CommandType) String() string {
	if int(c) < len(commandTypeNames) {
		return commandTypeNames[c]
	}
	return "Unknown"
}

// Command is the interface implemented by all command types.
type Command interface {
	// Type returns the CommandType for this command.
	Type() CommandType
}

// --------------------------------------------------------------------------
// Transfer Commands
// --------------------------------------------------------------------------

// UploadBufferCommand writes bytes into a buffer.
type UploadBufferCommand struct {
	// Buffer is the resource id of the destination buffer.
	Buffer uint64
	// WordOffset is the destination offset in 32-bit words.
	WordOffset int
	// ByteCount is the number of bytes written.
	ByteCount int
}

// Type implements Command.
func (UploadBufferCommand) Type() CommandType { return CmdUploadBuffer }

// UploadTextureCommand writes consecutive mip levels of a texture.
type UploadTextureCommand struct {
	Texture       uint64
	FirstMipLevel int
	LevelCount    int
}

// Type implements Command.
func (UploadTextureCommand) Type() CommandType { return CmdUploadTexture }

// --------------------------------------------------------------------------
// Pass Commands
// --------------------------------------------------------------------------

// BeginRenderPassCommand starts a render pass. Zero ids mean the
// attachment is absent.
type BeginRenderPassCommand struct {
	ColorAttachment        uint64
	DepthStencilAttachment uint64
	ColorLoad              gfx.LoadDisposition
	ClearColor             gputypes.Color
	DepthLoad              gfx.LoadDisposition
	DepthClear             float32
	StencilLoad            gfx.LoadDisposition
	StencilClear           uint32
}

// Type implements Command.
func (BeginRenderPassCommand) Type() CommandType { return CmdBeginRenderPass }

// EndRenderPassCommand finishes a render pass.
type EndRenderPassCommand struct {
	// ResolveTo is the texture the color attachment resolved into, or 0.
	ResolveTo uint64
}

// Type implements Command.
func (EndRenderPassCommand) Type() CommandType { return CmdEndRenderPass }

// --------------------------------------------------------------------------
// State Commands
// --------------------------------------------------------------------------

// SetViewportCommand sets the viewport rectangle in pixels.
type SetViewportCommand struct {
	X, Y, Width, Height float32
}

// Type implements Command.
func (SetViewportCommand) Type() CommandType { return CmdSetViewport }

// SetScissorCommand sets the scissor rectangle in pixels.
type SetScissorCommand struct {
	X, Y, Width, Height int
}

// Type implements Command.
func (SetScissorCommand) Type() CommandType { return CmdSetScissor }

// SetPipelineCommand binds a render pipeline.
type SetPipelineCommand struct {
	Pipeline uint64
	// Program is the name of the pipeline's program.
	Program string
}

// Type implements Command.
func (SetPipelineCommand) Type() CommandType { return CmdSetPipeline }

// SetBindingsCommand binds a binding set at a layout index. Textures holds
// the ID bound to each texture unit, 0 for the placeholder.
type SetBindingsCommand struct {
	Index          int
	Bindings       uint64
	DynamicOffsets []uint32
	Textures       []uint64
}

// Type implements Command.
func (SetBindingsCommand) Type() CommandType { return CmdSetBindings }

// SetInputStateCommand binds vertex and index buffers.
type SetInputStateCommand struct {
	InputState uint64
}

// Type implements Command.
func (SetInputStateCommand) Type() CommandType { return CmdSetInputState }

// SetStencilRefCommand sets the stencil reference value.
type SetStencilRefCommand struct {
	Value uint32
}

// Type implements Command.
func (SetStencilRefCommand) Type() CommandType { return CmdSetStencilRef }

// --------------------------------------------------------------------------
// Draw Commands
// --------------------------------------------------------------------------

// DrawCommand is a non-indexed draw.
type DrawCommand struct {
	VertexCount int
	FirstVertex int
}

// Type implements Command.
func (DrawCommand) Type() CommandType { return CmdDraw }

// DrawIndexedCommand is an indexed draw of InstanceCount instances.
type DrawIndexedCommand struct {
	IndexCount    int
	FirstIndex    int
	InstanceCount int
}

// Type implements Command.
func (DrawIndexedCommand) Type() CommandType { return CmdDrawIndexed }

// PresentCommand marks the end of a presented frame.
type PresentCommand struct {
	// Frame counts presented frames, starting at 1.
	Frame uint64
}

// Type implements Command.
func (PresentCommand) Type() CommandType { return CmdPresent }
