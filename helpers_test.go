// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package spritefont

import (
	"bytes"
	"image"
	"image/color"
	"log/slog"
	"testing"

	"github.com/gogpu/spritefont/device"
	"github.com/gogpu/spritefont/spritebank"
)

// Sheet colors.
var (
	topLeft    = Color(0xFF00FF00)
	lowerRight = Color(0xFFFF0000)
	background = Color(0xFF0000FF)
	ink        = Color(0xFFFFFFFF)
)

// markerSheet builds an A8R8G8B8 sheet with one row of glyph boxes of the
// given widths and height. Each glyph gets one ink pixel at (1,1) of its
// box. The first width must be at least 3.
func markerSheet(t *testing.T, height int, widths ...int) *Image {
	t.Helper()
	w := 0
	for _, gw := range widths {
		w += gw + 1
	}
	img, err := NewImage(max(w, 3), height+1, FormatA8R8G8B8)
	if err != nil {
		t.Fatal(err)
	}
	img.Fill(background)

	x := 0
	for _, gw := range widths {
		set(t, img, x, 0, topLeft)
		set(t, img, x+gw, height, lowerRight)
		set(t, img, x+1, 1, ink)
		x += gw + 1
	}
	set(t, img, 1, 0, lowerRight)
	set(t, img, 2, 0, background)
	return img
}

func set(t *testing.T, img *Image, x, y int, c Color) {
	t.Helper()
	if err := img.Set(x, y, c); err != nil {
		t.Fatalf("Set(%d,%d): %v", x, y, err)
	}
}

// testEnv returns an environment backed by a software device drawing
// into a 64x32 canvas.
func testEnv() (*spritebank.Registry, *device.Software, *image.NRGBA) {
	canvas := image.NewNRGBA(image.Rect(0, 0, 64, 32))
	dev := device.NewSoftware(canvas)
	return NewEnvironment(dev), dev, canvas
}

// loadedFont returns a font with glyphs ' ' (4 wide), '!' (5) and '"' (6),
// all 8 pixels tall.
func loadedFont(t *testing.T, opts ...Option) *Font {
	t.Helper()
	env, _, _ := testEnv()
	f := New(env, "test", opts...)
	t.Cleanup(func() { _ = f.Close() })
	if err := f.LoadImage("test.png", markerSheet(t, 8, 4, 5, 6)); err != nil {
		t.Fatalf("LoadImage: %v", err)
	}
	return f
}

// captureLogs routes package logs into a buffer for the test's duration.
func captureLogs(t *testing.T) *bytes.Buffer {
	t.Helper()
	orig := Logger()
	t.Cleanup(func() { SetLogger(orig) })
	var buf bytes.Buffer
	SetLogger(slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug})))
	return &buf
}

var white = color.NRGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
