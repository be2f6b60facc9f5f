// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package sheet renders marker font sheets from any font.Face.
//
// Glyph N of a sheet is the character with code 32+N. Each glyph cell
// starts with a top-left marker pixel; its lower-right marker sits one
// pixel past the cell's bottom-right corner. The first three pixels of
// row 0 double as control pixels naming the marker and background colors.
package sheet

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"unicode/utf8"

	"golang.org/x/image/font"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/encoding/charmap"
	"golang.org/x/text/encoding/ianaindex"
)

// FirstCode is the character code of glyph 0.
const FirstCode = 32

// Errors returned by Generate.
var (
	ErrNilFace    = errors.New("sheet: nil face")
	ErrEmptyRange = errors.New("sheet: last character below first")
	ErrTooNarrow  = errors.New("sheet: max width smaller than a glyph cell")
)

// ErrNotSingleByte is returned by LookupCharset for encodings that are
// not single-byte code pages.
var ErrNotSingleByte = errors.New("sheet: not a single-byte charset")

// LookupCharset returns the code page with the given IANA name. An empty
// name returns nil, meaning identity. Names x/text knows but does not
// implement are reported as ErrNotSingleByte.
func LookupCharset(name string) (*charmap.Charmap, error) {
	if name == "" {
		return nil, nil
	}
	enc, err := ianaindex.IANA.Encoding(name)
	if err != nil {
		return nil, fmt.Errorf("sheet: charset %q: %w", name, err)
	}
	cm, ok := enc.(*charmap.Charmap)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrNotSingleByte, name)
	}
	return cm, nil
}

// Default colors.
var (
	DefaultTopLeft    = color.NRGBA{R: 0xFF, G: 0xFF, A: 0xFF}
	DefaultLowerRight = color.NRGBA{R: 0xFF, A: 0xFF}
	DefaultForeground = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
)

// Options configures Generate. Zero fields take defaults.
type Options struct {
	// Last is the last character code on the sheet. Default 126.
	Last rune

	// Charset maps codes below 256 to characters. Codes the charset
	// leaves undefined get an empty cell. Nil means identity.
	Charset *charmap.Charmap

	// Padding is added around every glyph.
	Padding int

	// MaxWidth wraps rows. Default 512.
	MaxWidth int

	Foreground color.Color

	// TopLeft is forced opaque. Background defaults to transparent.
	TopLeft    color.NRGBA
	LowerRight color.NRGBA
	Background color.NRGBA
}

func (o *Options) setDefaults() {
	if o.Last == 0 {
		o.Last = 126
	}
	if o.MaxWidth <= 0 {
		o.MaxWidth = 512
	}
	if o.Foreground == nil {
		o.Foreground = DefaultForeground
	}
	if o.TopLeft == (color.NRGBA{}) {
		o.TopLeft = DefaultTopLeft
	}
	o.TopLeft.A = 0xFF
	if o.LowerRight == (color.NRGBA{}) {
		o.LowerRight = DefaultLowerRight
	}
}

// cell is one glyph box on the sheet.
type cell struct {
	r    rune
	ok   bool
	rect image.Rectangle
}

// Character returns the character glyph code is assigned under cm.
func Character(code rune, cm *charmap.Charmap) (rune, bool) {
	if cm == nil || code > 0xFF {
		return code, true
	}
	r := cm.DecodeByte(byte(code))
	return r, r != utf8.RuneError
}

// Generate renders the characters FirstCode..opts.Last of face into a new
// sheet.
func Generate(face font.Face, opts Options) (*image.NRGBA, error) {
	if face == nil {
		return nil, ErrNilFace
	}
	opts.setDefaults()
	if opts.Last < FirstCode {
		return nil, fmt.Errorf("%w: %d", ErrEmptyRange, opts.Last)
	}

	m := face.Metrics()
	ascent := m.Ascent.Ceil()
	height := ascent + m.Descent.Ceil() + 2*opts.Padding

	cells, size, err := layout(face, opts, height)
	if err != nil {
		return nil, err
	}

	img := image.NewNRGBA(image.Rectangle{Max: size})
	draw.Draw(img, img.Rect, image.NewUniform(opts.Background), image.Point{}, draw.Src)

	d := font.Drawer{Src: image.NewUniform(opts.Foreground), Face: face}
	for _, c := range cells {
		if c.ok {
			d.Dst = img.SubImage(c.rect).(*image.NRGBA)
			d.Dot = fixed.P(c.rect.Min.X+opts.Padding, c.rect.Min.Y+opts.Padding+ascent)
			d.DrawString(string(c.r))
		}
		img.SetNRGBA(c.rect.Min.X, c.rect.Min.Y, opts.TopLeft)
		img.SetNRGBA(c.rect.Max.X, c.rect.Max.Y, opts.LowerRight)
	}

	// Pixels (1,0) and (2,0) lie inside the first cell, which is at
	// least three pixels wide and starts with the space glyph.
	img.SetNRGBA(1, 0, opts.LowerRight)
	img.SetNRGBA(2, 0, opts.Background)
	return img, nil
}

// layout places one cell per code in rows no wider than opts.MaxWidth and
// returns the sheet size.
func layout(face font.Face, opts Options, height int) ([]cell, image.Point, error) {
	var (
		cells []cell
		x, y  int
		size  image.Point
	)
	for code := rune(FirstCode); code <= opts.Last; code++ {
		r, ok := Character(code, opts.Charset)
		width := 0
		if ok {
			if adv, found := face.GlyphAdvance(r); found {
				width = adv.Ceil()
			}
		}
		width = max(width+2*opts.Padding, 1)
		if code == FirstCode {
			width = max(width, 3)
		}
		if width+1 > opts.MaxWidth {
			return nil, image.Point{}, fmt.Errorf("%w: %d < %d", ErrTooNarrow, opts.MaxWidth, width+1)
		}
		if x+width+1 > opts.MaxWidth {
			x = 0
			y += height + 1
		}
		rect := image.Rect(x, y, x+width, y+height)
		cells = append(cells, cell{r: r, ok: ok, rect: rect})
		size.X = max(size.X, rect.Max.X+1)
		size.Y = max(size.Y, rect.Max.Y+1)
		x += width + 1
	}
	return cells, size, nil
}
