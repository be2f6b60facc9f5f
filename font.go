// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package spritefont

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"slices"

	"github.com/bits-and-blooms/bitset"

	"github.com/gogpu/spritefont/device"
	"github.com/gogpu/spritefont/internal/glyphmap"
	"github.com/gogpu/spritefont/spritebank"
)

// Font is a bitmap font read from a marker sheet.
//
// A Font is not safe for concurrent use.
type Font struct {
	name string
	opts options

	dev  device.Device
	bank *spritebank.Bank

	glyphs     []Glyph
	index      map[rune]int
	fallback   int
	lineHeight int

	kerningWidth  int
	kerningHeight int
	invisible     bitset.BitSet

	loaded bool
	closed bool
}

// New creates an unloaded font named name. The font draws with the
// environment's device and uses the sprite bank registered under name,
// adding an empty one if none exists. It holds a share of both until
// Close.
//
// A nil environment yields a font whose loads fail with ErrNoEnvironment.
func New(env Environment, name string, opts ...Option) *Font {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	f := &Font{
		name:          name,
		opts:          o,
		kerningWidth:  o.kerningW,
		kerningHeight: o.kerningH,
	}
	f.SetInvisibleCharacters(o.invisible)

	if env == nil {
		return f
	}
	dev := env.Device()
	if dev == nil {
		return f
	}
	bank := env.SpriteBank(name)
	if bank == nil {
		bank = env.AddEmptySpriteBank(name)
	}
	if bank == nil {
		return f
	}

	dev.Grab()
	bank.Grab()
	f.dev, f.bank = dev, bank
	return f
}

// Name returns the name the font was created with.
func (f *Font) Name() string {
	return f.name
}

// Loaded reports whether the last load succeeded.
func (f *Font) Loaded() bool {
	return f.loaded
}

// GlyphCount returns the number of glyphs.
func (f *Font) GlyphCount() int {
	return len(f.glyphs)
}

// LineHeight returns the height of one line of text.
func (f *Font) LineHeight() int {
	return f.lineHeight
}

// SpriteBank returns the bank the font draws from, or nil.
func (f *Font) SpriteBank() *spritebank.Bank {
	return f.bank
}

// Close releases the font's shares of its sprite bank and device.
// The bank stays registered until the environment evicts it.
// Close is idempotent.
func (f *Font) Close() error {
	if f.closed {
		return nil
	}
	f.closed = true
	f.unload()
	if f.bank != nil {
		f.bank.Drop()
		f.bank = nil
	}
	if f.dev != nil {
		f.dev.Drop()
		f.dev = nil
	}
	return nil
}

// ready checks the font can load.
func (f *Font) ready() error {
	if f.closed {
		return ErrClosed
	}
	if f.dev == nil || f.bank == nil {
		return ErrNoEnvironment
	}
	return nil
}

// unload drops the glyph table.
func (f *Font) unload() {
	f.loaded = false
	f.glyphs = nil
	f.index = nil
	f.fallback = 0
	f.lineHeight = 0
}

// Load reads a font sheet from path.
func (f *Font) Load(path string) error {
	if err := f.ready(); err != nil {
		return err
	}
	file, err := os.Open(filepath.Clean(path))
	if err != nil {
		f.unload()
		return fmt.Errorf("%w: %w", ErrDecode, err)
	}
	defer func() { _ = file.Close() }()
	return f.LoadReader(path, file)
}

// LoadReader decodes a font sheet from r with the font's decoder.
// name identifies the texture on the device.
func (f *Font) LoadReader(name string, r io.Reader) error {
	if err := f.ready(); err != nil {
		return err
	}
	img, err := f.opts.decoder.DecodeImage(r)
	if err != nil {
		f.unload()
		return fmt.Errorf("%w %q: %w", ErrDecode, name, err)
	}
	return f.LoadImage(name, img)
}

// LoadImage builds the font from a decoded sheet. img is not modified.
//
// Loading is all-or-nothing: on error the font is left unloaded and its
// sprite bank unchanged. On success the bank's rectangles, sprites and
// textures are replaced.
func (f *Font) LoadImage(name string, img *Image) error {
	if err := f.ready(); err != nil {
		return err
	}
	f.unload()
	if img == nil {
		return fmt.Errorf("%w %q: nil image", ErrDecode, name)
	}

	work, err := scanCopy(img)
	if err != nil {
		return fmt.Errorf("spritefont: load %q: %w", name, err)
	}

	m, err := glyphmap.Scan(work)
	switch {
	case errors.Is(err, glyphmap.ErrCorruptMarkers):
		Logger().Error("spritefont: lower-right marker without open top-left marker",
			"font", name, "opened", m.Opened())
		return fmt.Errorf("%w: %q", ErrCorruptMarkers, name)
	case errors.Is(err, glyphmap.ErrImageTooSmall):
		return fmt.Errorf("%w: %q: %w", ErrNoGlyphs, name, err)
	case err != nil:
		return fmt.Errorf("spritefont: load %q: %w", name, err)
	}

	if m.Closed == 0 {
		Logger().Error("spritefont: no glyph markers found",
			"font", name, "opened", m.Opened(), "closed", m.Closed)
		return fmt.Errorf("%w: %q", ErrNoGlyphs, name)
	}
	if !m.Balanced() {
		Logger().Warn("spritefont: top-left and lower-right marker counts differ",
			"font", name, "opened", m.Opened(), "closed", m.Closed)
	}

	glyphmap.Clean(work, m)
	tex, err := f.upload(name, work)
	if err != nil {
		return fmt.Errorf("spritefont: upload %q: %w", name, err)
	}

	glyphs, index := buildTable(m, f.opts.charset)

	f.bank.Clear()
	f.bank.Rects = slices.Clone(m.Boxes)
	t := f.bank.AddTexture(tex)
	f.bank.Sprites = make([]spritebank.Sprite, len(glyphs))
	for n := range glyphs {
		f.bank.Sprites[n] = spritebank.Sprite{Frames: []spritebank.Frame{{Rect: n, Texture: t}}}
	}

	f.glyphs = glyphs
	f.index = index
	f.fallback = 0
	if i, ok := index[' ']; ok {
		f.fallback = i
	}
	f.lineHeight = maxHeight(m.Boxes)
	f.loaded = true

	Logger().Debug("spritefont: font loaded",
		"font", name, "glyphs", len(glyphs), "format", img.Format().String(), "lineHeight", f.lineHeight)
	return nil
}

// scanCopy returns a private copy of img in a format the glyph scanner
// reads.
func scanCopy(img *Image) (*Image, error) {
	switch img.Format() {
	case FormatA1R5G5B5, FormatR5G6B5, FormatR8G8B8, FormatA8R8G8B8:
		return img.Convert(img.Format().AlphaVersion())
	default:
		return nil, fmt.Errorf("%w: %s", ErrUnsupportedColorFormat, img.Format())
	}
}

// upload adds img to the device without mipmaps and with a private copy
// of its pixels. The device's texture flags are restored afterwards.
func (f *Font) upload(name string, img *Image) (device.Texture, error) {
	restore := device.PushTextureFlags(f.dev, map[device.TextureCreationFlag]bool{
		device.CreateMipMaps:   false,
		device.AllowMemoryCopy: true,
	})
	defer restore()
	return f.dev.AddTexture(name, img.ToStdImage())
}
