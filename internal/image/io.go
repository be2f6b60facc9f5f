// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package image

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"image/color"
	_ "image/gif"  // register GIF decoder
	_ "image/jpeg" // register JPEG decoder
	_ "image/png"  // register PNG decoder
	"io"
	"os"
	"path/filepath"

	_ "golang.org/x/image/bmp"  // register BMP decoder
	_ "golang.org/x/image/tiff" // register TIFF decoder
)

// I/O errors.
var (
	// ErrEmptyData is returned when image data is empty.
	ErrEmptyData = errors.New("image: empty data")
)

// Load loads an image from the given file path, detecting the format
// from its content.
func Load(path string) (*Buffer, error) {
	f, err := os.Open(filepath.Clean(path))
	if err != nil {
		return nil, fmt.Errorf("image: open file: %w", err)
	}
	defer func() { _ = f.Close() }()

	return Decode(f)
}

// LoadFromBytes decodes an image from a byte slice.
func LoadFromBytes(data []byte) (*Buffer, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}
	return Decode(bytes.NewReader(data))
}

// Decode decodes an image from the given reader, auto-detecting the format.
// PNG, JPEG, GIF, BMP and TIFF are supported.
func Decode(r io.Reader) (*Buffer, error) {
	img, _, err := image.Decode(r)
	if err != nil {
		return nil, fmt.Errorf("image: decode: %w", err)
	}
	return FromStdImage(img)
}

// opaquer is implemented by most standard library image types.
type opaquer interface {
	Opaque() bool
}

// FromStdImage copies a standard library image into a Buffer.
//
// Fully opaque images, grayscale included, become FormatR8G8B8 and
// everything else FormatA8R8G8B8, mirroring how image files carry (or lack)
// an alpha channel. FormatGray8 is only produced by New.
func FromStdImage(img image.Image) (*Buffer, error) {
	bounds := img.Bounds()
	width, height := bounds.Dx(), bounds.Dy()

	format := FormatA8R8G8B8
	if o, ok := img.(opaquer); ok && o.Opaque() {
		format = FormatR8G8B8
	}
	buf, err := New(width, height, format)
	if err != nil {
		return nil, err
	}

	// Fast path for NRGBA images
	if nrgba, ok := img.(*image.NRGBA); ok {
		for y := range height {
			for x := range width {
				_ = buf.Set(x, y, FromNRGBA(nrgba.NRGBAAt(bounds.Min.X+x, bounds.Min.Y+y)))
			}
		}
		return buf, nil
	}

	for y := range height {
		for x := range width {
			c := color.NRGBAModel.Convert(img.At(bounds.Min.X+x, bounds.Min.Y+y)).(color.NRGBA)
			_ = buf.Set(x, y, FromNRGBA(c))
		}
	}
	return buf, nil
}

// ToStdImage converts the buffer to a non-premultiplied *image.NRGBA.
func (b *Buffer) ToStdImage() *image.NRGBA {
	nrgba := image.NewNRGBA(image.Rect(0, 0, b.width, b.height))
	for y := range b.height {
		for x := range b.width {
			c := b.At(x, y)
			off := y*nrgba.Stride + x*4
			nrgba.Pix[off] = c.R()
			nrgba.Pix[off+1] = c.G()
			nrgba.Pix[off+2] = c.B()
			nrgba.Pix[off+3] = c.A()
		}
	}
	return nrgba
}
