// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package device

import (
	"image"
	"image/color"
)

// tintImage returns src modulated by tint. A nil or opaque white tint
// returns src unchanged.
func tintImage(src image.Image, tint color.Color) image.Image {
	if tint == nil {
		return src
	}
	r, g, b, a := tint.RGBA()
	if r == 0xffff && g == 0xffff && b == 0xffff && a == 0xffff {
		return src
	}
	return &tinted{src: src, r: r, g: g, b: b, a: a}
}

// tinted multiplies every pixel of src by a premultiplied tint color.
// Both operands are premultiplied, so the product is too.
type tinted struct {
	src        image.Image
	r, g, b, a uint32
}

func (t *tinted) ColorModel() color.Model { return color.RGBA64Model }
func (t *tinted) Bounds() image.Rectangle { return t.src.Bounds() }

func (t *tinted) At(x, y int) color.Color {
	r, g, b, a := t.src.At(x, y).RGBA()
	return color.RGBA64{
		R: uint16(r * t.r / 0xffff),
		G: uint16(g * t.g / 0xffff),
		B: uint16(b * t.b / 0xffff),
		A: uint16(a * t.a / 0xffff),
	}
}
