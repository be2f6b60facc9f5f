// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package spritefont

// CharacterFromPos returns the rune index of the character at horizontal
// offset x from the start of text: the first character whose cumulative
// advance reaches x. It returns -1 when x lies past the end of text.
// Line breaks are treated as ordinary characters.
func (f *Font) CharacterFromPos(text string, x int) int {
	advance, i := 0, 0
	for _, r := range text {
		advance += f.Glyph(r).Advance() + f.kerningWidth
		if advance >= x {
			return i
		}
		i++
	}
	return -1
}
