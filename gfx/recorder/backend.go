// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package recorder

import "github.com/gogpu/gxview/gfx"

// BackendName is the registry name of this backend.
const BackendName = "recorder"

func init() {
	gfx.RegisterBackend(BackendName, gfx.PriorityHeadless, func() gfx.Backend { return backend{} })
}

type backend struct{}

func (backend) Name() string { return BackendName }

func (backend) Open() (gfx.Device, error) { return New(), nil }
