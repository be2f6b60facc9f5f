// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package image

import "image/color"

// Color is a 32-bit color packed as 0xAARRGGBB.
//
// Every Buffer format reads and writes pixels through Color, which makes
// marker comparisons independent of the storage format.
type Color uint32

// Transparent is fully transparent black.
const Transparent Color = 0

// ARGB packs four 8-bit channels into a Color.
func ARGB(a, r, g, b uint8) Color {
	return Color(a)<<24 | Color(r)<<16 | Color(g)<<8 | Color(b)
}

// A returns the alpha channel.
func (c Color) A() uint8 { return uint8(c >> 24) }

// R returns the red channel.
func (c Color) R() uint8 { return uint8(c >> 16) }

// G returns the green channel.
func (c Color) G() uint8 { return uint8(c >> 8) }

// B returns the blue channel.
func (c Color) B() uint8 { return uint8(c) }

// WithAlpha returns c with its alpha channel replaced.
func (c Color) WithAlpha(a uint8) Color {
	return c&0x00FFFFFF | Color(a)<<24
}

// NRGBA converts c to a non-premultiplied standard library color.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R(), G: c.G(), B: c.B(), A: c.A()}
}

// FromNRGBA packs a non-premultiplied standard library color.
func FromNRGBA(c color.NRGBA) Color {
	return ARGB(c.A, c.R, c.G, c.B)
}

// expand5 widens a 5-bit channel to 8 bits, replicating the high bits.
func expand5(v uint16) uint8 {
	v &= 0x1F
	return uint8(v<<3 | v>>2)
}

// expand6 widens a 6-bit channel to 8 bits, replicating the high bits.
func expand6(v uint16) uint8 {
	v &= 0x3F
	return uint8(v<<2 | v>>4)
}

func fromA1R5G5B5(p uint16) Color {
	var a uint8
	if p&0x8000 != 0 {
		a = 0xFF
	}
	return ARGB(a, expand5(p>>10), expand5(p>>5), expand5(p))
}

func toA1R5G5B5(c Color) uint16 {
	var a uint16
	if c.A() >= 0x80 {
		a = 0x8000
	}
	return a | uint16(c.R()>>3)<<10 | uint16(c.G()>>3)<<5 | uint16(c.B()>>3)
}

func fromR5G6B5(p uint16) Color {
	return ARGB(0xFF, expand5(p>>11), expand6(p>>5), expand5(p))
}

func toR5G6B5(c Color) uint16 {
	return uint16(c.R()>>3)<<11 | uint16(c.G()>>2)<<5 | uint16(c.B()>>3)
}

// luminance uses the standard weights 0.299, 0.587, 0.114.
func luminance(c Color) uint8 {
	return uint8((int(c.R())*299 + int(c.G())*587 + int(c.B())*114) / 1000)
}
