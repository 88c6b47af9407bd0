// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gfx

import (
	"encoding/binary"
	"errors"
	"math"
	"testing"
)

// uploadDevice is a Device that only supports buffers, enough for
// UniformBuffer.
type uploadDevice struct {
	Device
	limits    Limits
	tracker   *Tracker
	created   int
	destroyed int
}

func newUploadDevice(limits Limits) *uploadDevice {
	return &uploadDevice{limits: limits, tracker: NewTracker()}
}

func (d *uploadDevice) QueryLimits() Limits { return d.limits }

func (d *uploadDevice) CreateBuffer(wordCount int, usage BufferUsage, hint BufferFrequencyHint) (*Buffer, error) {
	b := &Buffer{WordCount: wordCount, Usage: usage, Hint: hint}
	d.tracker.Track(b)
	d.created++
	return b, nil
}

func (d *uploadDevice) DestroyBuffer(o *Buffer) {
	if d.tracker.Release(o) == nil {
		d.destroyed++
	}
}

func (d *uploadDevice) SetResourceName(o Handle, name string) { d.tracker.SetName(o, name) }

type upload struct {
	buffer *Buffer
	offset int
	data   []byte
}

type uploadPass struct {
	uploads []upload
}

func (p *uploadPass) Kind() PassKind { return PassHostAccess }

func (p *uploadPass) UploadBufferData(buffer *Buffer, dstWordOffset int, data []byte) {
	p.uploads = append(p.uploads, upload{buffer, dstWordOffset, data})
}

func (p *uploadPass) UploadTextureData(*Texture, int, [][]byte) {}

func TestUniformBufferAllocateAligns(t *testing.T) {
	d := newUploadDevice(Limits{UniformBufferWordAlignment: 64, UniformBufferMaxPageWordSize: 4096})
	u := NewUniformBuffer(d, "ub")

	first, err := u.Allocate(20)
	if err != nil {
		t.Fatalf("Allocate(20) error: %v", err)
	}
	second, err := u.Allocate(8)
	if err != nil {
		t.Fatalf("Allocate(8) error: %v", err)
	}
	if first != 0 || second != 64 {
		t.Errorf("offsets = %d, %d; want 0, 64", first, second)
	}
	if _, err := u.Allocate(4097); !errors.Is(err, ErrUniformBlockTooLarge) {
		t.Errorf("Allocate(4097) error = %v, want ErrUniformBlockTooLarge", err)
	}
}

func TestUniformBufferUpload(t *testing.T) {
	d := newUploadDevice(Limits{UniformBufferWordAlignment: 4, UniformBufferMaxPageWordSize: 1024})
	u := NewUniformBuffer(d, "frame")

	if err := u.Upload(&uploadPass{}); err != nil {
		t.Fatalf("empty Upload error: %v", err)
	}
	if u.Buffer() != nil {
		t.Error("empty Upload created a buffer")
	}

	off, _ := u.Allocate(2)
	copy(u.Mapped(off, 2), []float32{1.5, -2})
	pass := &uploadPass{}
	if err := u.Upload(pass); err != nil {
		t.Fatalf("Upload error: %v", err)
	}
	if u.Buffer() == nil || u.Buffer().Name() != "frame" {
		t.Fatalf("Buffer() = %v, want buffer named frame", u.Buffer())
	}
	if len(pass.uploads) != 1 {
		t.Fatalf("uploads = %d, want 1", len(pass.uploads))
	}
	data := pass.uploads[0].data
	if len(data) != 8 {
		t.Fatalf("upload size = %d bytes, want 8", len(data))
	}
	if got := math.Float32frombits(binary.LittleEndian.Uint32(data[4:])); got != -2 {
		t.Errorf("second word = %v, want -2", got)
	}
	b := u.Binding(off, 2)
	if b.Buffer != u.Buffer() || b.WordCount != 2 {
		t.Errorf("Binding() = %+v, want the uploaded buffer", b)
	}

	// The next frame starts at offset zero again and reuses the buffer.
	if off, _ := u.Allocate(2); off != 0 {
		t.Errorf("offset after Upload = %d, want 0", off)
	}
	if err := u.Upload(&uploadPass{}); err != nil {
		t.Fatalf("Upload error: %v", err)
	}
	if d.created != 1 {
		t.Errorf("buffers created = %d, want 1", d.created)
	}
}

func TestUniformBufferGrows(t *testing.T) {
	d := newUploadDevice(Limits{UniformBufferWordAlignment: 1, UniformBufferMaxPageWordSize: 1024})
	u := NewUniformBuffer(d, "grow")

	u.Allocate(4)
	if err := u.Upload(&uploadPass{}); err != nil {
		t.Fatalf("Upload error: %v", err)
	}
	u.Allocate(100)
	if err := u.Upload(&uploadPass{}); err != nil {
		t.Fatalf("Upload error: %v", err)
	}
	if d.created != 2 || d.destroyed != 1 {
		t.Errorf("created %d, destroyed %d; want 2, 1", d.created, d.destroyed)
	}
	if u.Buffer().WordCount < 100 {
		t.Errorf("WordCount = %d, want at least 100", u.Buffer().WordCount)
	}
	u.Destroy()
	if d.tracker.Live() != 0 {
		t.Errorf("live buffers after Destroy = %d, want 0", d.tracker.Live())
	}
}

func TestFloat32BytesLittleEndian(t *testing.T) {
	b := Float32Bytes([]float32{1})
	if got := binary.LittleEndian.Uint32(b); got != math.Float32bits(1) {
		t.Errorf("Float32Bytes(1) = %#x, want %#x", got, math.Float32bits(1))
	}
}
