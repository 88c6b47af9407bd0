// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package gfx

import (
	"errors"
	"fmt"
	"sort"
	"sync"
)

// Violation records a resource lifecycle contract violation.
type Violation struct {
	Err  error
	Op   string
	Type ResourceType
	ID   uint64
	Name string
}

func (v Violation) Error() string {
	name := v.Name
	if name == "" {
		name = "<unnamed>"
	}
	return fmt.Sprintf("%v: %s %s #%d (%s)", v.Err, v.Op, v.Type, v.ID, name)
}

func (v Violation) Unwrap() error { return v.Err }

// Leak describes a resource still alive when leaks were checked.
type Leak struct {
	Type ResourceType
	ID   uint64
	Name string
}

func (l Leak) String() string {
	if l.Name == "" {
		return fmt.Sprintf("%s #%d", l.Type, l.ID)
	}
	return fmt.Sprintf("%s #%d %q", l.Type, l.ID, l.Name)
}

// Tracker is the lifecycle bookkeeping shared by device backends. It
// assigns resource ids, detects double destroy and use after destroy,
// and reports resources that were never destroyed.
//
// Tracker is safe for concurrent use.
type Tracker struct {
	mu          sync.Mutex
	nextID      uint64
	live        map[*Resource]struct{}
	violations  []Violation
	onViolation func(Violation)
}

// NewTracker returns an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{live: make(map[*Resource]struct{})}
}

// SetViolationHandler installs fn to be called for every violation, in
// addition to recording it. Pass nil to remove the handler.
func (t *Tracker) SetViolationHandler(fn func(Violation)) {
	t.mu.Lock()
	t.onViolation = fn
	t.mu.Unlock()
}

// Track registers a newly created resource. Leak checking is on by default.
func (t *Tracker) Track(h Handle) {
	r := h.header()
	t.mu.Lock()
	defer t.mu.Unlock()
	t.nextID++
	r.id = t.nextID
	r.typ = resourceTypeOf(h)
	r.state = StateCreated
	r.leakCheck = true
	t.live[r] = struct{}{}
}

// Release transitions a resource to Destroyed. It returns a non-nil
// Violation when the resource was already destroyed or is unknown; the
// caller must then skip releasing backend state.
func (t *Tracker) Release(h Handle) error {
	r := h.header()
	t.mu.Lock()
	if _, ok := t.live[r]; !ok {
		err := ErrUnknownResource
		if r.state == StateDestroyed && r.id != 0 {
			err = ErrDoubleDestroy
		}
		v := t.violationLocked(err, "destroy", r, resourceTypeOf(h))
		t.mu.Unlock()
		t.report(v)
		return v
	}
	delete(t.live, r)
	r.state = StateDestroyed
	t.mu.Unlock()
	return nil
}

// Use marks a resource as referenced by a pass. Using a destroyed or
// unknown resource records a Violation and returns it.
func (t *Tracker) Use(h Handle) error {
	r := h.header()
	t.mu.Lock()
	if _, ok := t.live[r]; !ok {
		err := ErrUnknownResource
		if r.state == StateDestroyed && r.id != 0 {
			err = ErrUseAfterDestroy
		}
		v := t.violationLocked(err, "use", r, resourceTypeOf(h))
		t.mu.Unlock()
		t.report(v)
		return v
	}
	r.state = StateInUse
	t.mu.Unlock()
	return nil
}

// SetName sets the debug name of a resource.
func (t *Tracker) SetName(h Handle, name string) {
	t.mu.Lock()
	h.header().name = name
	t.mu.Unlock()
}

// SetLeakCheck enables or disables leak reporting for a resource.
// Long-lived resources owned by the device itself opt out.
func (t *Tracker) SetLeakCheck(h Handle, enable bool) {
	t.mu.Lock()
	h.header().leakCheck = enable
	t.mu.Unlock()
}

// Live returns the number of resources not yet destroyed.
func (t *Tracker) Live() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.live)
}

// Leaks returns the live resources with leak checking enabled, ordered by id.
func (t *Tracker) Leaks() []Leak {
	t.mu.Lock()
	out := make([]Leak, 0, len(t.live))
	for r := range t.live {
		if r.leakCheck {
			out = append(out, Leak{Type: r.typ, ID: r.id, Name: r.name})
		}
	}
	t.mu.Unlock()
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Violations returns a copy of every recorded violation.
func (t *Tracker) Violations() []Violation {
	t.mu.Lock()
	defer t.mu.Unlock()
	return append([]Violation(nil), t.violations...)
}

func (t *Tracker) violationLocked(err error, op string, r *Resource, typ ResourceType) Violation {
	v := Violation{Err: err, Op: op, Type: typ, ID: r.id, Name: r.name}
	t.violations = append(t.violations, v)
	return v
}

func (t *Tracker) report(v Violation) {
	Logger().Warn("gfx: resource lifecycle violation",
		"op", v.Op, "type", v.Type.String(), "id", v.ID, "name", v.Name, "err", v.Err)
	t.mu.Lock()
	fn := t.onViolation
	t.mu.Unlock()
	if fn != nil {
		fn(v)
	}
}

// IsViolation reports whether err is a lifecycle violation.
func IsViolation(err error) bool {
	var v Violation
	return errors.As(err, &v)
}
