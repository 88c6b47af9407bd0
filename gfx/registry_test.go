// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gfx

import (
	"errors"
	"slices"
	"testing"
)

type stubBackend struct {
	name     string
	priority int
	err      error
}

func (b stubBackend) Name() string { return b.name }

func (b stubBackend) Open() (Device, error) { return nil, b.err }

type stubDevice struct{ Device }

func registerStub(t *testing.T, b stubBackend) {
	t.Helper()
	RegisterBackend(b.name, b.priority, func() Backend { return b })
	t.Cleanup(func() { UnregisterBackend(b.name) })
}

func TestOpenBackendUnknown(t *testing.T) {
	_, err := OpenBackend("no-such-backend")
	if !errors.Is(err, ErrUnknownBackend) {
		t.Errorf("OpenBackend() error = %v, want ErrUnknownBackend", err)
	}
}

func TestOpenBackendWrapsError(t *testing.T) {
	errBoom := errors.New("boom")
	registerStub(t, stubBackend{name: "test-failing", err: errBoom})

	_, err := OpenBackend("test-failing")
	if !errors.Is(err, errBoom) {
		t.Errorf("OpenBackend() error = %v, want wrapped boom", err)
	}
}

func TestRegisterBackendTwicePanics(t *testing.T) {
	registerStub(t, stubBackend{name: "test-dup"})
	defer func() {
		if recover() == nil {
			t.Error("second RegisterBackend did not panic")
		}
	}()
	RegisterBackend("test-dup", PriorityHeadless, func() Backend { return stubBackend{name: "test-dup"} })
}

func TestRegisterBackendNilPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Error("RegisterBackend(nil) did not panic")
		}
	}()
	RegisterBackend("test-nil", PriorityHeadless, nil)
}

func TestBackendsSorted(t *testing.T) {
	registerStub(t, stubBackend{name: "test-b"})
	registerStub(t, stubBackend{name: "test-a"})

	names := Backends()
	if !slices.IsSorted(names) {
		t.Errorf("Backends() = %v, want sorted", names)
	}
	if !IsRegistered("test-a") || !IsRegistered("test-b") {
		t.Errorf("Backends() = %v, want test-a and test-b", names)
	}

	UnregisterBackend("test-a")
	if IsRegistered("test-a") {
		t.Error("IsRegistered(test-a) = true after UnregisterBackend")
	}
}

type openingBackend struct{ stubBackend }

func (b openingBackend) Open() (Device, error) { return stubDevice{}, nil }

func TestOpenBestPrefersPriority(t *testing.T) {
	errDown := errors.New("down")
	registerStub(t, stubBackend{name: "test-gpu", priority: PriorityGPU, err: errDown})
	RegisterBackend("test-headless", PriorityHeadless, func() Backend {
		return openingBackend{stubBackend{name: "test-headless"}}
	})
	t.Cleanup(func() { UnregisterBackend("test-headless") })

	names := byPriority()
	if len(names) != 2 || names[0] != "test-gpu" || names[1] != "test-headless" {
		t.Fatalf("byPriority() = %v, want [test-gpu test-headless]", names)
	}

	dev, name, err := OpenBest()
	if err != nil {
		t.Fatalf("OpenBest() error = %v", err)
	}
	if name != "test-headless" || dev == nil {
		t.Errorf("OpenBest() = %v, %q, want fallback to test-headless", dev, name)
	}
}

func TestOpenBestEmpty(t *testing.T) {
	if _, _, err := OpenBest(); !errors.Is(err, ErrUnknownBackend) {
		t.Errorf("OpenBest() error = %v, want ErrUnknownBackend", err)
	}
}
