// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package spritebank

import (
	"sort"
	"sync"

	"github.com/gogpu/spritefont/device"
)

// Registry owns named sprite banks created for one device.
// The registry holds one share of every bank it creates.
type Registry struct {
	mu    sync.Mutex
	dev   device.Device
	banks map[string]*Bank
}

// NewRegistry creates an empty registry for dev.
func NewRegistry(dev device.Device) *Registry {
	return &Registry{
		dev:   dev,
		banks: make(map[string]*Bank),
	}
}

// Device returns the device banks are created for.
func (r *Registry) Device() device.Device {
	return r.dev
}

// SpriteBank returns the bank registered under name, or nil.
func (r *Registry) SpriteBank(name string) *Bank {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.banks[name]
}

// AddEmptySpriteBank registers an empty bank under name.
// If a bank with that name exists it is returned unchanged.
func (r *Registry) AddEmptySpriteBank(name string) *Bank {
	r.mu.Lock()
	defer r.mu.Unlock()
	if b, ok := r.banks[name]; ok {
		return b
	}
	b := New(name, r.dev)
	r.banks[name] = b
	return b
}

// Evict removes the bank registered under name if the registry holds the
// only share. It reports whether the bank was removed.
func (r *Registry) Evict(name string) bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	b, ok := r.banks[name]
	if !ok || b.Shared() {
		return false
	}
	delete(r.banks, name)
	b.Drop()
	return true
}

// Collect evicts every bank the registry holds the only share of and
// returns how many were removed.
func (r *Registry) Collect() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for name, b := range r.banks {
		if b.Shared() {
			continue
		}
		delete(r.banks, name)
		b.Drop()
		n++
	}
	return n
}

// Names returns the registered bank names in sorted order.
func (r *Registry) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := make([]string, 0, len(r.banks))
	for name := range r.banks {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered banks.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.banks)
}
