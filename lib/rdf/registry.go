// Copyright 2026 The Chert Authors
// SPDX-License-Identifier: Apache-2.0

package rdf

import (
	"fmt"
	"sort"
	"sync"
)

// Descriptor describes a registered value kind: its name, the
// datastore scalar representation it serializes to, and a factory for
// fresh instances.
type Descriptor struct {
	// Name is the registry key, e.g. "duration" or "session_id".
	Name string

	// Store tags the scalar type emitted by SerializeToStore and
	// expected by ParseFromStore.
	Store StoreType

	// New returns a fresh, empty instance of the kind with its age
	// stamped from the package clock.
	New func() Value
}

// Registry maps kind names to descriptors. Kinds register during
// package initialization; declaration order is unconstrained. A
// component may reference a kind that has not been declared yet by
// queueing a callback with OnDeclared — the callback fires exactly
// once, when the name is registered.
//
// The registry is the only process-wide mutable state in this package.
// It is written during the bounded, single-threaded declaration phase
// at process start; after that it is effectively read-only. The mutex
// keeps dynamic declaration safe anyway.
type Registry struct {
	mu      sync.RWMutex
	kinds   map[string]*Descriptor
	pending map[string][]func(*Descriptor)
}

// NewRegistry returns an empty registry. Most callers use the
// package-level functions, which operate on the default registry.
func NewRegistry() *Registry {
	return &Registry{
		kinds:   make(map[string]*Descriptor),
		pending: make(map[string][]func(*Descriptor)),
	}
}

// Register declares a kind. Any callbacks queued against the name fire
// before Register returns, each exactly once, and the queue entry is
// discarded. Registering the same name twice panics: kind names are
// compile-time constants and a collision is a programming error, not a
// runtime condition.
func (r *Registry) Register(descriptor *Descriptor) {
	if descriptor.Name == "" || descriptor.New == nil {
		panic("rdf: Register called with incomplete descriptor")
	}

	r.mu.Lock()
	if _, exists := r.kinds[descriptor.Name]; exists {
		r.mu.Unlock()
		panic(fmt.Sprintf("rdf: kind %q registered twice", descriptor.Name))
	}
	r.kinds[descriptor.Name] = descriptor
	callbacks := r.pending[descriptor.Name]
	delete(r.pending, descriptor.Name)
	r.mu.Unlock()

	// Callbacks run outside the lock: they are allowed to register
	// further kinds or queue further callbacks.
	for _, callback := range callbacks {
		callback(descriptor)
	}
}

// Lookup returns the descriptor for a kind name.
func (r *Registry) Lookup(name string) (*Descriptor, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	descriptor, ok := r.kinds[name]
	return descriptor, ok
}

// OnDeclared invokes callback with the descriptor for name once that
// name is registered. If the name is already registered the callback
// fires immediately; otherwise it is queued until registration.
// Auxiliary state the callback needs travels as closure captures.
func (r *Registry) OnDeclared(name string, callback func(*Descriptor)) {
	r.mu.Lock()
	if descriptor, ok := r.kinds[name]; ok {
		r.mu.Unlock()
		callback(descriptor)
		return
	}
	r.pending[name] = append(r.pending[name], callback)
	r.mu.Unlock()
}

// Unresolved returns the names with queued callbacks whose kinds have
// not been declared, sorted. Call this at the end of the declaration
// phase: a non-empty result means a late binding will never fire.
func (r *Registry) Unresolved() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.pending))
	for name := range r.pending {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Kinds returns all registered kind names, sorted.
func (r *Registry) Kinds() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.kinds))
	for name := range r.kinds {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// defaultRegistry holds the built-in kinds, populated by the init
// functions in this package.
var defaultRegistry = NewRegistry()

// Register declares a kind in the default registry.
func Register(descriptor *Descriptor) { defaultRegistry.Register(descriptor) }

// Lookup returns a descriptor from the default registry.
func Lookup(name string) (*Descriptor, bool) { return defaultRegistry.Lookup(name) }

// OnDeclared queues a late-binding callback on the default registry.
func OnDeclared(name string, callback func(*Descriptor)) { defaultRegistry.OnDeclared(name, callback) }

// Unresolved reports undeclared late-binding targets on the default
// registry.
func Unresolved() []string { return defaultRegistry.Unresolved() }

// Kinds lists the kind names in the default registry.
func Kinds() []string { return defaultRegistry.Kinds() }

// New constructs an empty value of the named kind with age stamped
// from the package clock.
func New(kind string) (Value, error) {
	descriptor, ok := Lookup(kind)
	if !ok {
		return nil, initializeErrorf("unknown value kind %q", kind)
	}
	return descriptor.New(), nil
}

// FromWire constructs a value of the named kind from its wire bytes.
// A nil age leaves the construction stamp (now) in place.
func FromWire(kind string, data []byte, age *Datetime) (Value, error) {
	value, err := New(kind)
	if err != nil {
		return nil, err
	}
	if err := value.ParseFromWire(data); err != nil {
		return nil, err
	}
	if age != nil {
		value.SetAge(age)
	}
	return value, nil
}

// FromStore constructs a value of the named kind from its datastore
// scalar. A nil age leaves the construction stamp (now) in place.
func FromStore(kind string, scalar any, age *Datetime) (Value, error) {
	value, err := New(kind)
	if err != nil {
		return nil, err
	}
	if err := value.ParseFromStore(scalar); err != nil {
		return nil, err
	}
	if age != nil {
		value.SetAge(age)
	}
	return value, nil
}

// FromHumanReadable constructs a value of the named kind from its
// human-readable text form. Fails for kinds that are not
// human-editable.
func FromHumanReadable(kind string, text string) (Value, error) {
	value, err := New(kind)
	if err != nil {
		return nil, err
	}
	editable, ok := value.(HumanReadable)
	if !ok {
		return nil, initializeErrorf("kind %q has no human-readable form", kind)
	}
	if err := editable.ParseFromHumanReadable(text); err != nil {
		return nil, err
	}
	return value, nil
}
