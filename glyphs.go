// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package spritefont

import (
	"image"

	"golang.org/x/text/encoding/charmap"

	"github.com/gogpu/spritefont/internal/glyphmap"
	"github.com/gogpu/spritefont/sheet"
)

// Glyph holds the metrics of one glyph.
type Glyph struct {
	// Width is the glyph box width in pixels.
	Width int
	// Overhang is added after the glyph.
	Overhang int
	// Underhang is added before the glyph.
	Underhang int
	// Sprite is the sprite bank index of the glyph.
	Sprite int
}

// Advance returns the horizontal space the glyph takes, without kerning.
func (g Glyph) Advance() int {
	return g.Underhang + g.Width + g.Overhang
}

// buildTable creates one glyph per closed box. Glyph n is assigned the
// character with code 32+n, decoded through cm when it is set.
func buildTable(m *glyphmap.Map, cm *charmap.Charmap) ([]Glyph, map[rune]int) {
	boxes := m.Glyphs()
	glyphs := make([]Glyph, len(boxes))
	index := make(map[rune]int, len(boxes))
	for n, box := range boxes {
		glyphs[n] = Glyph{Width: box.Dx(), Sprite: n}
		r, ok := sheet.Character(rune(sheet.FirstCode+n), cm)
		if !ok {
			continue
		}
		if _, dup := index[r]; !dup {
			index[r] = n
		}
	}
	return glyphs, index
}

// maxHeight returns the tallest box height. Unclosed boxes count as zero.
func maxHeight(boxes []image.Rectangle) int {
	h := 0
	for _, b := range boxes {
		h = max(h, b.Dy())
	}
	return h
}

// glyphIndex resolves r, falling back to the space glyph.
func (f *Font) glyphIndex(r rune) int {
	if i, ok := f.index[r]; ok {
		return i
	}
	return f.fallback
}

// Glyph returns the metrics of r. Unmapped characters resolve to the
// fallback glyph; an unloaded font returns the zero Glyph.
func (f *Font) Glyph(r rune) Glyph {
	if len(f.glyphs) == 0 {
		return Glyph{}
	}
	return f.glyphs[f.glyphIndex(r)]
}

// SpriteIndex returns the sprite bank index used to draw r, or -1 when
// the font is not loaded.
func (f *Font) SpriteIndex(r rune) int {
	if len(f.glyphs) == 0 {
		return -1
	}
	return f.glyphs[f.glyphIndex(r)].Sprite
}

// SetGlyphSpacing sets the underhang and overhang of r. It reports false
// when r has no glyph of its own.
func (f *Font) SetGlyphSpacing(r rune, underhang, overhang int) bool {
	i, ok := f.index[r]
	if !ok {
		return false
	}
	f.glyphs[i].Underhang = underhang
	f.glyphs[i].Overhang = overhang
	return true
}

// SetKerningWidth sets the pixels added after every character.
func (f *Font) SetKerningWidth(v int) {
	f.kerningWidth = v
}

// KerningWidth returns the global horizontal kerning.
func (f *Font) KerningWidth() int {
	return f.kerningWidth
}

// SetKerningHeight sets the global vertical kerning. Layout does not
// apply it; it is reported by Kerning for callers that stack lines
// themselves.
func (f *Font) SetKerningHeight(v int) {
	f.kerningHeight = v
}

// KerningHeight returns the global vertical kerning.
func (f *Font) KerningHeight() int {
	return f.kerningHeight
}

// Kerning returns the offset to apply between previous and this. X is the
// global kerning width plus the overhang of this and the underhang of
// previous; Y is the global kerning height. A zero rune omits its term,
// and previous only counts when this is set.
func (f *Font) Kerning(this, previous rune) image.Point {
	k := image.Pt(f.kerningWidth, f.kerningHeight)
	if this == 0 {
		return k
	}
	k.X += f.Glyph(this).Overhang
	if previous != 0 {
		k.X += f.Glyph(previous).Underhang
	}
	return k
}

// SetInvisibleCharacters replaces the set of characters that advance the
// pen without being drawn.
func (f *Font) SetInvisibleCharacters(s string) {
	f.invisible.ClearAll()
	for _, r := range s {
		if r >= 0 {
			f.invisible.Set(uint(r))
		}
	}
}

// IsInvisible reports whether r is skipped when drawing.
func (f *Font) IsInvisible(r rune) bool {
	return r >= 0 && f.invisible.Test(uint(r))
}
