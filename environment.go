// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package spritefont

import (
	"github.com/gogpu/spritefont/device"
	"github.com/gogpu/spritefont/spritebank"
)

// Environment supplies fonts with a rendering device and named sprite
// banks. A *spritebank.Registry is an Environment.
type Environment interface {
	Device() device.Device

	// SpriteBank returns the bank registered under name, or nil.
	SpriteBank(name string) *spritebank.Bank

	// AddEmptySpriteBank registers and returns an empty bank.
	AddEmptySpriteBank(name string) *spritebank.Bank
}

// NewEnvironment returns a sprite bank registry for dev.
func NewEnvironment(dev device.Device) *spritebank.Registry {
	return spritebank.NewRegistry(dev)
}

var _ Environment = (*spritebank.Registry)(nil)
