// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package spritefont

import "golang.org/x/text/encoding/charmap"

// Option configures a Font during creation.
//
// Example:
//
//	f := spritefont.New(env, "hud",
//	    spritefont.WithCharset(charmap.Windows1252),
//	    spritefont.WithKerning(1, 0),
//	)
type Option func(*options)

// options holds optional configuration for Font creation.
type options struct {
	decoder   ImageDecoder
	charset   *charmap.Charmap
	invisible string
	kerningW  int
	kerningH  int
}

// defaultOptions returns the default font options.
func defaultOptions() options {
	return options{
		decoder:   DefaultDecoder,
		invisible: " ",
	}
}

// WithDecoder sets the decoder used by Load and LoadReader.
// A nil decoder keeps the default.
func WithDecoder(d ImageDecoder) Option {
	return func(o *options) {
		if d != nil {
			o.decoder = d
		}
	}
}

// WithCharset maps glyphs through a single-byte code page: glyph N is
// assigned the character cm decodes byte 32+N to. Bytes the code page
// leaves undefined get no character. Glyphs past byte 255 keep the code
// point 32+N.
//
// Without a charset glyph N is assigned code point 32+N.
func WithCharset(cm *charmap.Charmap) Option {
	return func(o *options) {
		o.charset = cm
	}
}

// WithInvisibleCharacters sets the characters that advance the pen
// without being drawn. The default is a single space.
func WithInvisibleCharacters(s string) Option {
	return func(o *options) {
		o.invisible = s
	}
}

// WithKerning sets the global kerning added between characters and
// lines. See Font.SetKerningWidth and Font.SetKerningHeight.
func WithKerning(width, height int) Option {
	return func(o *options) {
		o.kerningW = width
		o.kerningH = height
	}
}
