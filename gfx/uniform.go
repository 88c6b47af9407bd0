// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gfx

import (
	"encoding/binary"
	"fmt"
	"math"
)

// UniformBuffer is a per-frame dynamic uniform allocator. Callers reserve
// aligned word ranges, fill them through Mapped, and Upload once per frame
// before the render passes that read them.
type UniformBuffer struct {
	device Device
	limits Limits
	name   string

	buffer   *Buffer
	words    []float32
	used     int
	capacity int
}

// NewUniformBuffer returns an allocator on device. The GPU buffer is
// created lazily by the first Upload.
func NewUniformBuffer(device Device, name string) *UniformBuffer {
	return &UniformBuffer{device: device, limits: device.QueryLimits(), name: name}
}

// Allocate reserves wordCount words and returns their word offset.
func (u *UniformBuffer) Allocate(wordCount int) (int, error) {
	if err := u.limits.CheckUniformBlock(wordCount); err != nil {
		return 0, fmt.Errorf("%w: %d words, max %d", err, wordCount, u.limits.UniformBufferMaxPageWordSize)
	}
	offset := u.limits.AlignWords(u.used)
	u.used = offset + wordCount
	if u.used > len(u.words) {
		grown := make([]float32, max(u.used, 2*len(u.words)))
		copy(grown, u.words)
		u.words = grown
	}
	return offset, nil
}

// Mapped returns the host copy of wordCount words at wordOffset.
func (u *UniformBuffer) Mapped(wordOffset, wordCount int) []float32 {
	return u.words[wordOffset : wordOffset+wordCount]
}

// Binding returns a BufferBinding for an allocated range. Valid after Upload.
func (u *UniformBuffer) Binding(wordOffset, wordCount int) BufferBinding {
	return BufferBinding{Buffer: u.buffer, WordOffset: wordOffset, WordCount: wordCount}
}

// Buffer returns the current GPU buffer, or nil before the first Upload.
func (u *UniformBuffer) Buffer() *Buffer { return u.buffer }

// Upload copies the used words into the GPU buffer, growing it when
// needed, and resets the allocator for the next frame.
func (u *UniformBuffer) Upload(pass HostAccessPass) error {
	if u.used == 0 {
		return nil
	}
	if u.buffer == nil || u.capacity < u.used {
		if u.buffer != nil {
			u.device.DestroyBuffer(u.buffer)
		}
		buf, err := u.device.CreateBuffer(len(u.words), BufferUsageUniform, BufferDynamic)
		if err != nil {
			return fmt.Errorf("gfx: uniform buffer %s: %w", u.name, err)
		}
		u.device.SetResourceName(buf, u.name)
		u.buffer, u.capacity = buf, len(u.words)
	}
	pass.UploadBufferData(u.buffer, 0, Float32Bytes(u.words[:u.used]))
	u.used = 0
	return nil
}

// Destroy releases the GPU buffer.
func (u *UniformBuffer) Destroy() {
	if u.buffer != nil {
		u.device.DestroyBuffer(u.buffer)
		u.buffer = nil
	}
}

// Float32Bytes packs floats as little-endian bytes for upload.
func Float32Bytes(v []float32) []byte {
	buf := make([]byte, 4*len(v))
	for i, f := range v {
		binary.LittleEndian.PutUint32(buf[i*4:], math.Float32bits(f))
	}
	return buf
}
