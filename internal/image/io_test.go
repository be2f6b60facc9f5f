// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package image

import (
	"bytes"
	"errors"
	"image"
	"image/color"
	"image/png"
	"testing"

	"golang.org/x/image/bmp"
)

func encodePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png.Encode() error = %v", err)
	}
	return buf.Bytes()
}

func TestDecode_PNGWithAlpha(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 4, 2))
	src.SetNRGBA(1, 1, color.NRGBA{R: 200, G: 100, B: 50, A: 128})

	buf, err := LoadFromBytes(encodePNG(t, src))
	if err != nil {
		t.Fatalf("LoadFromBytes() error = %v", err)
	}
	if buf.Format() != FormatA8R8G8B8 {
		t.Errorf("Format() = %v, want A8R8G8B8", buf.Format())
	}
	if got := buf.At(1, 1); got != ARGB(128, 200, 100, 50) {
		t.Errorf("At(1,1) = %#08x", uint32(got))
	}
}

func TestDecode_OpaquePNG(t *testing.T) {
	src := image.NewNRGBA(image.Rect(0, 0, 3, 3))
	for i := 3; i < len(src.Pix); i += 4 {
		src.Pix[i] = 0xFF
	}
	src.SetNRGBA(2, 0, color.NRGBA{R: 9, G: 8, B: 7, A: 255})

	buf, err := LoadFromBytes(encodePNG(t, src))
	if err != nil {
		t.Fatalf("LoadFromBytes() error = %v", err)
	}
	if buf.Format() != FormatR8G8B8 {
		t.Errorf("Format() = %v, want R8G8B8", buf.Format())
	}
	if got := buf.At(2, 0); got != ARGB(255, 9, 8, 7) {
		t.Errorf("At(2,0) = %#08x", uint32(got))
	}
}

func TestDecode_Gray(t *testing.T) {
	src := image.NewGray(image.Rect(0, 0, 5, 5))
	src.SetGray(4, 4, color.Gray{Y: 77})

	buf, err := LoadFromBytes(encodePNG(t, src))
	if err != nil {
		t.Fatalf("LoadFromBytes() error = %v", err)
	}
	if buf.Format() != FormatR8G8B8 {
		t.Errorf("Format() = %v, want R8G8B8", buf.Format())
	}
	if got := buf.At(4, 4); got != ARGB(255, 77, 77, 77) {
		t.Errorf("At(4,4) = %#08x", uint32(got))
	}
}

func TestDecode_BMP(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 6, 2))
	for i := range src.Pix {
		src.Pix[i] = 0xFF
	}
	src.SetRGBA(0, 0, color.RGBA{R: 255, A: 255})

	var enc bytes.Buffer
	if err := bmp.Encode(&enc, src); err != nil {
		t.Fatalf("bmp.Encode() error = %v", err)
	}
	buf, err := Decode(&enc)
	if err != nil {
		t.Fatalf("Decode() error = %v", err)
	}
	if buf.Width() != 6 || buf.Height() != 2 {
		t.Errorf("size = %dx%d, want 6x2", buf.Width(), buf.Height())
	}
	if got := buf.At(0, 0); got != 0xFFFF0000 {
		t.Errorf("At(0,0) = %#08x, want opaque red", uint32(got))
	}
}

func TestDecode_Errors(t *testing.T) {
	if _, err := LoadFromBytes(nil); !errors.Is(err, ErrEmptyData) {
		t.Errorf("LoadFromBytes(nil) error = %v, want ErrEmptyData", err)
	}
	if _, err := LoadFromBytes([]byte("definitely not an image")); err == nil {
		t.Error("LoadFromBytes(garbage) error = nil")
	}
	if _, err := Load("/nonexistent/sheet.png"); err == nil {
		t.Error("Load(missing) error = nil")
	}
}

func TestToStdImage(t *testing.T) {
	buf, _ := New(2, 1, FormatA1R5G5B5)
	_ = buf.Set(1, 0, 0xFFFFFFFF)

	img := buf.ToStdImage()
	if got := img.NRGBAAt(0, 0); got != (color.NRGBA{}) {
		t.Errorf("NRGBAAt(0,0) = %v, want transparent", got)
	}
	if got := img.NRGBAAt(1, 0); got != (color.NRGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Errorf("NRGBAAt(1,0) = %v, want opaque white", got)
	}
}
