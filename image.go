// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package spritefont

import (
	"io"

	pix "github.com/gogpu/spritefont/internal/image"
)

// Image is a decoded font sheet in one of the supported pixel formats.
type Image = pix.Buffer

// Format is the pixel format of an Image.
type Format = pix.Format

// Color is a 32-bit ARGB color (0xAARRGGBB).
type Color = pix.Color

// Pixel formats a font sheet may use. Gray8 images are decoded but
// rejected by Load.
const (
	FormatA1R5G5B5 = pix.FormatA1R5G5B5
	FormatR5G6B5   = pix.FormatR5G6B5
	FormatR8G8B8   = pix.FormatR8G8B8
	FormatA8R8G8B8 = pix.FormatA8R8G8B8
	FormatGray8    = pix.FormatGray8
)

// NewImage allocates a zeroed image.
func NewImage(width, height int, format Format) (*Image, error) {
	return pix.New(width, height, format)
}

// ImageDecoder turns an encoded font sheet into an Image.
type ImageDecoder interface {
	DecodeImage(r io.Reader) (*Image, error)
}

// ImageDecoderFunc adapts a function to ImageDecoder.
type ImageDecoderFunc func(r io.Reader) (*Image, error)

// DecodeImage calls f(r).
func (f ImageDecoderFunc) DecodeImage(r io.Reader) (*Image, error) {
	return f(r)
}

// DefaultDecoder decodes PNG, JPEG, GIF, BMP and TIFF.
var DefaultDecoder ImageDecoder = stdDecoder{}

// stdDecoder decodes with the image formats registered in image.Decode.
type stdDecoder struct{}

func (stdDecoder) DecodeImage(r io.Reader) (*Image, error) {
	return pix.Decode(r)
}
