// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package halgfx

import "github.com/gogpu/gxview/gfx"

// BackendName is the registry name of this backend.
const BackendName = "wgpu"

func init() {
	gfx.RegisterBackend(BackendName, gfx.PriorityGPU, func() gfx.Backend { return backend{} })
}

type backend struct{}

func (backend) Name() string { return BackendName }

func (backend) Open() (gfx.Device, error) {
	d, err := Open()
	if err != nil {
		return nil, err
	}
	return d, nil
}
