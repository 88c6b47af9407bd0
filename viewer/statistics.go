// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package viewer

import (
	"time"

	"github.com/gogpu/gxview/gfx"
)

// Statistics describes the last rendered frame.
type Statistics struct {
	// FrameTime is the host time spent recording and submitting the frame.
	FrameTime time.Duration
	// FPS is derived from the interval between the last two updates.
	FPS float64

	DrawCalls     int
	TextureBinds  int
	BufferUploads int
	Triangles     int
}

// statisticsTracker measures frames with an injectable clock.
type statisticsTracker struct {
	now   func() time.Time
	start time.Time
	stats Statistics
}

func newStatisticsTracker(now func() time.Time) *statisticsTracker {
	if now == nil {
		now = time.Now
	}
	return &statisticsTracker{now: now}
}

func (t *statisticsTracker) beginFrame(interval time.Duration) {
	t.start = t.now()
	t.stats = Statistics{}
	if interval > 0 {
		t.stats.FPS = float64(time.Second) / float64(interval)
	}
}

func (t *statisticsTracker) endFrame(g *gfx.DebugGroup) Statistics {
	t.stats.FrameTime = t.now().Sub(t.start)
	t.stats.DrawCalls = g.DrawCallCount
	t.stats.TextureBinds = g.TextureBindCount
	t.stats.BufferUploads = g.BufferUploadCount
	t.stats.Triangles = g.TriangleCount
	return t.stats
}
