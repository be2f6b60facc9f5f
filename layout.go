// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package spritefont

import (
	"image"
	"image/color"
)

// Placement is one glyph sprite positioned for drawing.
type Placement struct {
	Sprite int
	Pos    image.Point
}

// Layout positions the glyphs of text inside bounds, in string order.
//
// Text starts at the top-left corner of bounds. hcenter centers the
// widest line horizontally, applied to every line; vcenter centers the
// whole block once. When clip is set and the text does not touch it at
// all, Layout returns nil. Invisible characters advance the pen without
// a placement.
func (f *Font) Layout(text string, bounds image.Rectangle, hcenter, vcenter bool, clip *image.Rectangle) []Placement {
	if len(f.glyphs) == 0 {
		return nil
	}

	var size image.Point
	if hcenter || vcenter || clip != nil {
		size = f.Size(text)
	}

	origin := bounds.Min
	indent := 0
	if hcenter {
		indent = (bounds.Dx() - size.X) >> 1
	}
	if vcenter {
		origin.Y += (bounds.Dy() - size.Y) >> 1
	}
	pen := image.Pt(origin.X+indent, origin.Y)
	if clip != nil {
		area := image.Rectangle{Min: pen, Max: pen.Add(size)}
		if area.Intersect(*clip).Empty() {
			return nil
		}
	}

	placements := make([]Placement, 0, len(text))
	for r, brk := range scanText(text) {
		if brk {
			pen.X = origin.X + indent
			pen.Y += f.lineHeight
			continue
		}
		g := f.Glyph(r)
		pen.X += g.Underhang
		if !f.IsInvisible(r) {
			placements = append(placements, Placement{Sprite: g.Sprite, Pos: pen})
		}
		pen.X += g.Width + g.Overhang + f.kerningWidth
	}
	return placements
}

// Draw lays out text and draws it with the font's sprite bank, tinted
// with tint. See Layout for the meaning of bounds, hcenter, vcenter and
// clip; the device also clips every glyph to clip.
func (f *Font) Draw(text string, bounds image.Rectangle, tint color.Color, hcenter, vcenter bool, clip *image.Rectangle) error {
	if f.closed {
		return ErrClosed
	}
	if f.bank == nil {
		return ErrNoEnvironment
	}
	placements := f.Layout(text, bounds, hcenter, vcenter, clip)
	if len(placements) == 0 {
		return nil
	}
	indices := make([]int, len(placements))
	positions := make([]image.Point, len(placements))
	for i, p := range placements {
		indices[i] = p.Sprite
		positions[i] = p.Pos
	}
	return f.bank.DrawBatch(indices, positions, clip, tint)
}
