// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gfx

import "sync"

// DebugGroup collects per-scope render counters. The device increments
// the counters of every group on the stack while it is pushed.
type DebugGroup struct {
	Name              string
	DrawCallCount     int
	TextureBindCount  int
	BufferUploadCount int
	TriangleCount     int
}

// Reset clears the counters but keeps the name.
func (g *DebugGroup) Reset() {
	g.DrawCallCount = 0
	g.TextureBindCount = 0
	g.BufferUploadCount = 0
	g.TriangleCount = 0
}

// DebugGroupStack is the push/pop stack backends use to attribute work
// to debug groups.
type DebugGroupStack struct {
	mu     sync.Mutex
	groups []*DebugGroup
}

// Push makes g the innermost group.
func (s *DebugGroupStack) Push(g *DebugGroup) {
	s.mu.Lock()
	s.groups = append(s.groups, g)
	s.mu.Unlock()
}

// Pop removes and returns the innermost group, or nil when empty.
func (s *DebugGroupStack) Pop() *DebugGroup {
	s.mu.Lock()
	defer s.mu.Unlock()
	if len(s.groups) == 0 {
		return nil
	}
	g := s.groups[len(s.groups)-1]
	s.groups = s.groups[:len(s.groups)-1]
	return g
}

// Depth returns the number of pushed groups.
func (s *DebugGroupStack) Depth() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.groups)
}

// CountDraw records one draw call of the given triangle count.
func (s *DebugGroupStack) CountDraw(triangles int) {
	s.each(func(g *DebugGroup) {
		g.DrawCallCount++
		g.TriangleCount += triangles
	})
}

// CountTextureBind records one texture binding.
func (s *DebugGroupStack) CountTextureBind() {
	s.each(func(g *DebugGroup) { g.TextureBindCount++ })
}

// CountBufferUpload records one buffer upload.
func (s *DebugGroupStack) CountBufferUpload() {
	s.each(func(g *DebugGroup) { g.BufferUploadCount++ })
}

func (s *DebugGroupStack) each(fn func(*DebugGroup)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, g := range s.groups {
		fn(g)
	}
}
