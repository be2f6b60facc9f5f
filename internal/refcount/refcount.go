// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package refcount provides the share counter embedded by resources that
// several owners hold at once (sprite banks, devices).
package refcount

import "sync/atomic"

// Count tracks shares of a resource. The zero value represents a single
// share held by whoever created the resource.
type Count struct {
	extra atomic.Int32
}

// Grab takes an additional share.
func (c *Count) Grab() {
	c.extra.Add(1)
}

// Drop releases one share and reports whether it was the last one.
// Dropping more shares than were taken keeps reporting true.
func (c *Count) Drop() bool {
	return c.extra.Add(-1) < 0
}

// Shared reports whether anyone besides a single holder still has a share.
func (c *Count) Shared() bool {
	return c.extra.Load() > 0
}

// Refs returns the number of live shares.
func (c *Count) Refs() int {
	return max(0, int(c.extra.Load())+1)
}
