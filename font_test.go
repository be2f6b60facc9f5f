// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package spritefont

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"strings"
	"testing"

	"golang.org/x/text/encoding/charmap"

	"github.com/gogpu/spritefont/device"
)

func TestFont_LoadImage(t *testing.T) {
	env, dev, _ := testEnv()
	f := New(env, "test")
	defer f.Close()

	if f.Loaded() || f.GlyphCount() != 0 {
		t.Fatal("new font should be unloaded")
	}
	if err := f.LoadImage("test.png", markerSheet(t, 8, 4, 5, 6)); err != nil {
		t.Fatalf("LoadImage: %v", err)
	}

	if !f.Loaded() || f.GlyphCount() != 3 || f.LineHeight() != 8 {
		t.Errorf("Loaded=%v GlyphCount=%d LineHeight=%d", f.Loaded(), f.GlyphCount(), f.LineHeight())
	}
	tests := []struct {
		r      rune
		width  int
		sprite int
	}{
		{' ', 4, 0},
		{'!', 5, 1},
		{'"', 6, 2},
		{'Z', 4, 0}, // falls back to space
	}
	for _, tt := range tests {
		g := f.Glyph(tt.r)
		if g.Width != tt.width || g.Sprite != tt.sprite {
			t.Errorf("Glyph(%q) = %+v, want width %d sprite %d", tt.r, g, tt.width, tt.sprite)
		}
		if f.SpriteIndex(tt.r) != tt.sprite {
			t.Errorf("SpriteIndex(%q) = %d", tt.r, f.SpriteIndex(tt.r))
		}
	}

	bank := f.SpriteBank()
	if bank != env.SpriteBank("test") {
		t.Error("font should use the environment's bank")
	}
	if len(bank.Rects) != 3 || len(bank.Sprites) != 3 || bank.TextureCount() != 1 {
		t.Fatalf("bank: %d rects, %d sprites, %d textures", len(bank.Rects), len(bank.Sprites), bank.TextureCount())
	}
	if bank.Rects[1] != image.Rect(5, 0, 10, 8) {
		t.Errorf("Rects[1] = %v", bank.Rects[1])
	}

	tex := dev.Texture("test.png")
	if tex == nil {
		t.Fatal("texture not uploaded")
	}
	if d := tex.Descriptor(); d.MipLevelCount != 1 || !d.MemoryCopy {
		t.Errorf("texture created with %+v, want no mipmaps and a memory copy", d)
	}
	if !dev.TextureCreationFlag(device.CreateMipMaps) || dev.TextureCreationFlag(device.AllowMemoryCopy) {
		t.Error("texture creation flags not restored")
	}
}

func TestFont_LoadImageDoesNotModifyInput(t *testing.T) {
	env, _, _ := testEnv()
	f := New(env, "test")
	defer f.Close()

	img := markerSheet(t, 8, 4, 5)
	before := img.Clone()
	if err := f.LoadImage("test.png", img); err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(img.Data(), before.Data()) {
		t.Error("LoadImage modified the caller's image")
	}
}

func TestFont_CleansMarkers(t *testing.T) {
	env, dev, canvas := testEnv()
	f := New(env, "test")
	defer f.Close()
	if err := f.LoadImage("test.png", markerSheet(t, 8, 4, 5, 6)); err != nil {
		t.Fatal(err)
	}

	nrgba := dev.MipLevel(dev.Texture("test.png"), 0)
	for _, p := range []image.Point{{0, 0}, {1, 0}, {2, 0}, {5, 0}, {4, 8}, {3, 3}} {
		if got := nrgba.NRGBAAt(p.X, p.Y); got.A != 0 {
			t.Errorf("texture pixel %v = %v, want transparent", p, got)
		}
	}
	if got := nrgba.NRGBAAt(6, 1); got != white {
		t.Errorf("ink pixel = %v, want white", got)
	}

	if err := f.Draw("!", canvas.Rect, nil, false, false, nil); err != nil {
		t.Fatalf("Draw: %v", err)
	}
	if got := canvas.NRGBAAt(1, 1); got != white {
		t.Errorf("drawn ink = %v, want white", got)
	}
	if got := canvas.NRGBAAt(0, 0); got.A != 0 {
		t.Errorf("marker drawn: %v", got)
	}
}

func TestFont_LoadConvertsFormats(t *testing.T) {
	tests := []struct {
		name   string
		format Format
	}{
		{"R8G8B8", FormatR8G8B8},
		{"R5G6B5", FormatR5G6B5},
		{"A1R5G5B5", FormatA1R5G5B5},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img, err := markerSheet(t, 8, 4, 5).Convert(tt.format)
			if err != nil {
				t.Fatal(err)
			}
			env, _, _ := testEnv()
			f := New(env, "test")
			defer f.Close()
			if err := f.LoadImage("test", img); err != nil {
				t.Fatalf("LoadImage: %v", err)
			}
			if f.GlyphCount() != 2 {
				t.Errorf("GlyphCount() = %d, want 2", f.GlyphCount())
			}
		})
	}
}

func TestFont_LoadErrors(t *testing.T) {
	corrupt := func(t *testing.T) *Image {
		img := markerSheet(t, 8, 4)
		// A second lower-right marker with nothing left to close.
		set(t, img, 3, 8, lowerRight)
		return img
	}
	noGlyphs := func(t *testing.T) *Image {
		img, _ := NewImage(8, 4, FormatA8R8G8B8)
		img.Fill(background)
		set(t, img, 0, 0, topLeft)
		set(t, img, 1, 0, lowerRight)
		return img
	}
	gray := func(t *testing.T) *Image {
		img, _ := NewImage(8, 8, FormatGray8)
		return img
	}
	narrow := func(t *testing.T) *Image {
		img, _ := NewImage(2, 8, FormatA8R8G8B8)
		return img
	}

	tests := []struct {
		name string
		img  func(*testing.T) *Image
		want error
	}{
		{"corrupt markers", corrupt, ErrCorruptMarkers},
		{"no glyphs", noGlyphs, ErrNoGlyphs},
		{"gray", gray, ErrUnsupportedColorFormat},
		{"too narrow", narrow, ErrNoGlyphs},
		{"nil", func(*testing.T) *Image { return nil }, ErrDecode},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := loadedFont(t)
			bank := f.SpriteBank()

			err := f.LoadImage("bad", tt.img(t))
			if !errors.Is(err, tt.want) {
				t.Fatalf("err = %v, want %v", err, tt.want)
			}
			if f.Loaded() || f.GlyphCount() != 0 || f.LineHeight() != 0 {
				t.Error("failed load should leave the font unloaded")
			}
			if len(bank.Sprites) != 3 {
				t.Errorf("failed load changed the sprite bank: %d sprites", len(bank.Sprites))
			}
			if f.SpriteIndex('!') != -1 {
				t.Error("unloaded font should have no sprites")
			}
		})
	}
}

func TestFont_LogsMarkerProblems(t *testing.T) {
	logs := captureLogs(t)

	img := markerSheet(t, 8, 4, 5)
	set(t, img, 7, 4, topLeft) // opened, never closed

	f := loadedFont(t)
	if err := f.LoadImage("uneven", img); err != nil {
		t.Fatalf("uneven markers should still load: %v", err)
	}
	if f.GlyphCount() != 2 || len(f.SpriteBank().Rects) != 3 {
		t.Errorf("GlyphCount=%d rects=%d, want 2 and 3", f.GlyphCount(), len(f.SpriteBank().Rects))
	}
	out := logs.String()
	if !strings.Contains(out, "level=WARN") || !strings.Contains(out, "opened=3") || !strings.Contains(out, "closed=2") {
		t.Errorf("missing marker warning in %q", out)
	}

	logs.Reset()
	empty, _ := NewImage(4, 4, FormatA8R8G8B8)
	_ = f.LoadImage("empty", empty)
	if !strings.Contains(logs.String(), "level=ERROR") {
		t.Errorf("missing error log in %q", logs.String())
	}
}

func TestFont_ReloadReplacesContent(t *testing.T) {
	f := loadedFont(t)
	f.SetGlyphSpacing('!', 2, 2)

	if err := f.LoadImage("small.png", markerSheet(t, 5, 3, 3)); err != nil {
		t.Fatal(err)
	}
	if f.GlyphCount() != 2 || f.LineHeight() != 5 {
		t.Errorf("GlyphCount=%d LineHeight=%d", f.GlyphCount(), f.LineHeight())
	}
	if g := f.Glyph('!'); g.Underhang != 0 || g.Width != 3 {
		t.Errorf("Glyph('!') = %+v, want fresh metrics", g)
	}
	bank := f.SpriteBank()
	if len(bank.Rects) != 2 || bank.TextureCount() != 1 || bank.Texture(0).Name() != "small.png" {
		t.Errorf("bank not replaced: %d rects, %d textures", len(bank.Rects), bank.TextureCount())
	}
}

// failingDevice rejects every texture.
type failingDevice struct {
	*device.Software
}

var errUpload = errors.New("upload failed")

func (failingDevice) AddTexture(string, image.Image) (device.Texture, error) {
	return nil, errUpload
}

func TestFont_UploadFailure(t *testing.T) {
	dev := failingDevice{device.NewSoftware(nil)}
	f := New(NewEnvironment(dev), "test")
	defer f.Close()

	err := f.LoadImage("test.png", markerSheet(t, 8, 4, 5))
	if !errors.Is(err, errUpload) {
		t.Fatalf("err = %v, want upload error", err)
	}
	if f.Loaded() {
		t.Error("font loaded despite upload failure")
	}
	if !dev.TextureCreationFlag(device.CreateMipMaps) || dev.TextureCreationFlag(device.AllowMemoryCopy) {
		t.Error("flags not restored after upload failure")
	}
}

func TestFont_LoadReader(t *testing.T) {
	var buf bytes.Buffer
	if err := png.Encode(&buf, markerSheet(t, 8, 4, 5, 6).ToStdImage()); err != nil {
		t.Fatal(err)
	}

	env, _, _ := testEnv()
	f := New(env, "test")
	defer f.Close()
	if err := f.LoadReader("test.png", &buf); err != nil {
		t.Fatalf("LoadReader: %v", err)
	}
	if f.GlyphCount() != 3 {
		t.Errorf("GlyphCount() = %d, want 3", f.GlyphCount())
	}

	if err := f.LoadReader("junk", strings.NewReader("not an image")); !errors.Is(err, ErrDecode) {
		t.Errorf("junk: err = %v, want ErrDecode", err)
	}
	if f.Loaded() {
		t.Error("failed decode should unload the font")
	}
	if err := f.Load("testdata/does-not-exist.png"); !errors.Is(err, ErrDecode) {
		t.Errorf("missing file: err = %v, want ErrDecode", err)
	}
}

func TestFont_LoadReaderGray(t *testing.T) {
	src := markerSheet(t, 8, 4, 5).ToStdImage()
	tests := []struct {
		name string
		img  draw.Image
	}{
		{"gray8", image.NewGray(src.Rect)},
		{"gray16", image.NewGray16(src.Rect)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			draw.Draw(tt.img, src.Rect, src, image.Point{}, draw.Src)
			var buf bytes.Buffer
			if err := png.Encode(&buf, tt.img); err != nil {
				t.Fatal(err)
			}

			env, _, _ := testEnv()
			f := New(env, "gray")
			defer f.Close()
			if err := f.LoadReader(tt.name+".png", &buf); err != nil {
				t.Fatalf("LoadReader: %v", err)
			}
			if f.GlyphCount() != 2 {
				t.Errorf("GlyphCount() = %d, want 2", f.GlyphCount())
			}
		})
	}
}

func TestFont_WithDecoder(t *testing.T) {
	calls := 0
	dec := ImageDecoderFunc(func(r io.Reader) (*Image, error) {
		calls++
		return markerSheet(t, 8, 4, 5), nil
	})
	env, _, _ := testEnv()
	f := New(env, "test", WithDecoder(dec))
	defer f.Close()
	if err := f.LoadReader("custom", strings.NewReader("")); err != nil {
		t.Fatal(err)
	}
	if calls != 1 || f.GlyphCount() != 2 {
		t.Errorf("calls=%d GlyphCount=%d", calls, f.GlyphCount())
	}
}

func TestFont_Charset(t *testing.T) {
	widths := make([]int, 97)
	for i := range widths {
		widths[i] = 3
	}
	widths[96] = 7

	plain := loadedFontFrom(t, markerSheet(t, 4, widths...))
	if g := plain.Glyph(0x80); g.Width != 7 {
		t.Errorf("identity: Glyph(0x80).Width = %d, want 7", g.Width)
	}

	cp := loadedFontFrom(t, markerSheet(t, 4, widths...), WithCharset(charmap.Windows1252))
	if g := cp.Glyph('€'); g.Width != 7 || g.Sprite != 96 {
		t.Errorf("Windows-1252: Glyph('€') = %+v", g)
	}
	if g := cp.Glyph(0x80); g.Sprite != 0 {
		t.Errorf("Windows-1252: U+0080 should fall back to space, got %+v", g)
	}
	if g := cp.Glyph('A'); g.Sprite != 'A'-32 {
		t.Errorf("Windows-1252: Glyph('A').Sprite = %d", g.Sprite)
	}
}

func loadedFontFrom(t *testing.T, img *Image, opts ...Option) *Font {
	t.Helper()
	env, _, _ := testEnv()
	f := New(env, "charset", opts...)
	t.Cleanup(func() { _ = f.Close() })
	if err := f.LoadImage("charset", img); err != nil {
		t.Fatal(err)
	}
	return f
}

func TestFont_CloseReleasesShares(t *testing.T) {
	env, dev, _ := testEnv()
	f := New(env, "test")
	g := New(env, "test")

	if f.SpriteBank() != g.SpriteBank() {
		t.Fatal("fonts with one name should share a bank")
	}
	if dev.Refs() != 3 {
		t.Errorf("device Refs() = %d, want 3", dev.Refs())
	}

	if err := f.Close(); err != nil {
		t.Fatal(err)
	}
	if err := f.Close(); err != nil {
		t.Fatal("second Close should be a no-op")
	}
	if env.Evict("test") {
		t.Error("bank still held by g must not be evicted")
	}
	_ = g.Close()
	if !env.Evict("test") {
		t.Error("bank should be evictable once every font closed")
	}
	if dev.Refs() != 1 {
		t.Errorf("device Refs() = %d, want 1", dev.Refs())
	}

	if err := f.LoadImage("x", markerSheet(t, 8, 4)); !errors.Is(err, ErrClosed) {
		t.Errorf("load after Close: err = %v, want ErrClosed", err)
	}
	if err := f.Draw("x", image.Rect(0, 0, 1, 1), color.White, false, false, nil); !errors.Is(err, ErrClosed) {
		t.Errorf("draw after Close: err = %v, want ErrClosed", err)
	}
}

func TestFont_NoEnvironment(t *testing.T) {
	f := New(nil, "orphan")
	if err := f.LoadImage("x", markerSheet(t, 8, 4)); !errors.Is(err, ErrNoEnvironment) {
		t.Errorf("err = %v, want ErrNoEnvironment", err)
	}
	if err := f.LoadBuiltin(); !errors.Is(err, ErrNoEnvironment) {
		t.Errorf("LoadBuiltin: err = %v, want ErrNoEnvironment", err)
	}
	if f.SpriteBank() != nil || f.Name() != "orphan" {
		t.Error("unexpected state")
	}
	if err := f.Draw("x", image.Rect(0, 0, 1, 1), nil, false, false, nil); !errors.Is(err, ErrNoEnvironment) {
		t.Errorf("Draw: err = %v, want ErrNoEnvironment", err)
	}
}
