// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gfx

import (
	"fmt"
	"sort"
	"sync"
)

// Backend opens devices of one implementation.
type Backend interface {
	// Name returns the registry name of the backend.
	Name() string
	// Open creates a new device.
	Open() (Device, error)
}

// Standard backend priorities. Higher is preferred by OpenBest.
const (
	PriorityGPU      = 100
	PriorityHeadless = 10
)

type backendEntry struct {
	priority int
	factory  func() Backend
}

// backendRegistry maps backend names to factories. A real GPU backend
// registers with PriorityGPU so it wins over the recorder.
type backendRegistry struct {
	mu      sync.RWMutex
	entries map[string]backendEntry
}

var backends = &backendRegistry{entries: make(map[string]backendEntry)}

// RegisterBackend registers a backend factory under name.
// It is typically called from init() in backend packages:
//
//	func init() {
//	    gfx.RegisterBackend("recorder", gfx.PriorityHeadless, func() gfx.Backend { return backend{} })
//	}
//
// RegisterBackend panics if factory is nil or name is already registered.
func RegisterBackend(name string, priority int, factory func() Backend) {
	if factory == nil {
		panic("gfx: RegisterBackend factory is nil")
	}
	backends.mu.Lock()
	defer backends.mu.Unlock()
	if _, dup := backends.entries[name]; dup {
		panic("gfx: RegisterBackend called twice for " + name)
	}
	backends.entries[name] = backendEntry{priority: priority, factory: factory}
}

// UnregisterBackend removes a backend. It is a no-op for unknown names.
func UnregisterBackend(name string) {
	backends.mu.Lock()
	delete(backends.entries, name)
	backends.mu.Unlock()
}

// OpenBackend opens a device from the backend registered under name.
func OpenBackend(name string) (Device, error) {
	backends.mu.RLock()
	e, ok := backends.entries[name]
	backends.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("%w %q (forgotten import?)", ErrUnknownBackend, name)
	}
	dev, err := e.factory().Open()
	if err != nil {
		return nil, fmt.Errorf("gfx: open %s: %w", name, err)
	}
	Logger().Info("gfx: device opened", "backend", name)
	return dev, nil
}

// OpenBest tries every registered backend in priority order and returns
// the first device that opens, with its backend name.
func OpenBest() (Device, string, error) {
	names := byPriority()
	if len(names) == 0 {
		return nil, "", fmt.Errorf("%w: no backends registered", ErrUnknownBackend)
	}
	var lastErr error
	for _, name := range names {
		dev, err := OpenBackend(name)
		if err == nil {
			return dev, name, nil
		}
		Logger().Warn("gfx: backend unavailable", "backend", name, "err", err)
		lastErr = err
	}
	return nil, "", lastErr
}

// Backends returns the registered backend names, sorted.
func Backends() []string {
	backends.mu.RLock()
	names := make([]string, 0, len(backends.entries))
	for name := range backends.entries {
		names = append(names, name)
	}
	backends.mu.RUnlock()
	sort.Strings(names)
	return names
}

// IsRegistered reports whether a backend named name is registered.
func IsRegistered(name string) bool {
	backends.mu.RLock()
	defer backends.mu.RUnlock()
	_, ok := backends.entries[name]
	return ok
}

// byPriority returns the registered names, highest priority first. Ties
// sort by name so the order is stable.
func byPriority() []string {
	backends.mu.RLock()
	defer backends.mu.RUnlock()
	names := make([]string, 0, len(backends.entries))
	for name := range backends.entries {
		names = append(names, name)
	}
	sort.Slice(names, func(i, j int) bool {
		pi, pj := backends.entries[names[i]].priority, backends.entries[names[j]].priority
		if pi != pj {
			return pi > pj
		}
		return names[i] < names[j]
	})
	return names
}
