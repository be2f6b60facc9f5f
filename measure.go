// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package spritefont

import "image"

// Dimension returns the size text takes when drawn. Every line is
// LineHeight tall; the width is that of the widest line. An empty string
// still occupies one line.
func (f *Font) Dimension(text string) (width, height int) {
	lines, line := 1, 0
	for r, brk := range scanText(text) {
		if brk {
			width = max(width, line)
			line = 0
			lines++
			continue
		}
		line += f.Glyph(r).Advance() + f.kerningWidth
	}
	return max(width, line), lines * f.lineHeight
}

// Size is Dimension as an image.Point.
func (f *Font) Size(text string) image.Point {
	w, h := f.Dimension(text)
	return image.Pt(w, h)
}
