// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package spritebank stores sprite rectangles that share device textures
// and draws them in batches.
//
// A Bank is shared between the Registry that created it and every font
// that uses it. Each holder takes a share with Grab and releases it with
// Drop; the registry evicts banks nobody else holds.
package spritebank

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"time"

	"github.com/gogpu/spritefont/device"
	"github.com/gogpu/spritefont/internal/refcount"
)

// ErrNoDevice is returned when drawing with a bank that has no device.
var ErrNoDevice = errors.New("spritebank: no device")

// Frame is one image of a sprite.
type Frame struct {
	// Rect indexes Bank.Rects.
	Rect int
	// Texture indexes the bank's textures.
	Texture int
}

// Sprite is a sequence of frames shown FrameTime apart.
type Sprite struct {
	Frames    []Frame
	FrameTime time.Duration
}

// Bank holds sprite rectangles and the textures they refer to.
type Bank struct {
	refcount.Count

	// Rects are texture-space source rectangles.
	Rects []image.Rectangle
	// Sprites index into Rects.
	Sprites []Sprite

	name     string
	dev      device.Device
	textures []device.Texture
}

// New creates an empty bank drawing with dev.
func New(name string, dev device.Device) *Bank {
	return &Bank{name: name, dev: dev}
}

// Name returns the bank name.
func (b *Bank) Name() string {
	return b.name
}

// Device returns the device the bank draws with.
func (b *Bank) Device() device.Device {
	return b.dev
}

// AddTexture appends tex and returns its index.
func (b *Bank) AddTexture(tex device.Texture) int {
	b.textures = append(b.textures, tex)
	return len(b.textures) - 1
}

// Texture returns texture i, or nil when i is out of range.
func (b *Bank) Texture(i int) device.Texture {
	if i < 0 || i >= len(b.textures) {
		return nil
	}
	return b.textures[i]
}

// TextureCount returns the number of textures.
func (b *Bank) TextureCount() int {
	return len(b.textures)
}

// Clear removes all rectangles, sprites and textures.
func (b *Bank) Clear() {
	b.Rects = nil
	b.Sprites = nil
	b.textures = nil
}

// FrameAt returns the frame of sprite shown after elapsed time. Without
// loop the last frame is held once the sequence ends.
func (b *Bank) FrameAt(sprite int, elapsed time.Duration, loop bool) (Frame, bool) {
	if sprite < 0 || sprite >= len(b.Sprites) {
		return Frame{}, false
	}
	s := b.Sprites[sprite]
	if len(s.Frames) == 0 {
		return Frame{}, false
	}
	n := 0
	if s.FrameTime > 0 && elapsed > 0 {
		n = int(elapsed / s.FrameTime)
	}
	if loop {
		n %= len(s.Frames)
	} else {
		n = min(n, len(s.Frames)-1)
	}
	return s.Frames[n], true
}

// source resolves the first frame of sprite to a texture and rectangle.
func (b *Bank) source(sprite int) (int, image.Rectangle, bool) {
	f, ok := b.FrameAt(sprite, 0, false)
	if !ok || f.Rect < 0 || f.Rect >= len(b.Rects) || b.Texture(f.Texture) == nil {
		return 0, image.Rectangle{}, false
	}
	return f.Texture, b.Rects[f.Rect], true
}

// DrawBatch draws the first frame of each sprite in indices at the
// matching position. Invalid indices are skipped. Consecutive sprites
// sharing a texture go to the device as one batch, so drawing order is
// preserved.
func (b *Bank) DrawBatch(indices []int, positions []image.Point, clip *image.Rectangle, tint color.Color) error {
	if b.dev == nil {
		return ErrNoDevice
	}
	n := min(len(indices), len(positions))

	var (
		tex     = -1
		points  []image.Point
		sources []image.Rectangle
	)
	flush := func() error {
		if len(points) == 0 {
			return nil
		}
		err := b.dev.Draw2DImageBatch(b.textures[tex], points, sources, clip, tint)
		points, sources = nil, nil
		if err != nil {
			return fmt.Errorf("spritebank: draw %q: %w", b.name, err)
		}
		return nil
	}

	for i := range n {
		t, r, ok := b.source(indices[i])
		if !ok {
			continue
		}
		if t != tex {
			if err := flush(); err != nil {
				return err
			}
			tex = t
		}
		points = append(points, positions[i])
		sources = append(sources, r)
	}
	return flush()
}
