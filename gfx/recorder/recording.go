// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package recorder

// Recording is an immutable container for recorded device commands.
type Recording struct {
	commands []Command
	frames   uint64
}

// Commands returns the recorded commands.
func (r *Recording) Commands() []Command {
	return r.commands
}

// Len returns the number of recorded commands.
func (r *Recording) Len() int {
	return len(r.commands)
}

// Frames returns the number of Present commands in the recording.
func (r *Recording) Frames() uint64 {
	return r.frames
}

// Count returns the number of commands of type t.
func (r *Recording) Count(t CommandType) int {
	n := 0
	for _, c := range r.commands {
		if c.Type() == t {
			n++
		}
	}
	return n
}

// Stats summarises the draw work of a recording.
type Stats struct {
	Passes    int
	DrawCalls int
	Triangles int
	Uploads   int
}

// Stats counts passes, draws and uploads.
func (r *Recording) Stats() Stats {
	var s Stats
	for _, cmd := range r.commands {
		switch c := cmd.(type) {
		case BeginRenderPassCommand:
			s.Passes++
		case DrawCommand:
			s.DrawCalls++
			s.Triangles += c.VertexCount / 3
		case DrawIndexedCommand:
			s.DrawCalls++
			s.Triangles += c.IndexCount / 3 * c.InstanceCount
		case UploadBufferCommand, UploadTextureCommand:
			s.Uploads++
		}
	}
	return s
}

// Playback calls fn for each command in order and stops at the first error.
func (r *Recording) Playback(fn func(Command) error) error {
	for _, c := range r.commands {
		if err := fn(c); err != nil {
			return err
		}
	}
	return nil
}
