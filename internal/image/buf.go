// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package image

import (
	"encoding/binary"
	"errors"
)

// Common errors for image operations.
var (
	// ErrInvalidDimensions is returned when width or height is non-positive.
	ErrInvalidDimensions = errors.New("image: invalid dimensions")

	// ErrInvalidFormat is returned when the format is not recognized.
	ErrInvalidFormat = errors.New("image: invalid format")

	// ErrDataTooSmall is returned when provided data is smaller than required.
	ErrDataTooSmall = errors.New("image: data buffer too small")

	// ErrOutOfBounds is returned when pixel coordinates are outside image bounds.
	ErrOutOfBounds = errors.New("image: coordinates out of bounds")
)

// Buffer is a packed pixel buffer.
//
// Rows are stored contiguously without padding. Pixel access goes through
// At and Set, which translate between the storage format and Color.
// A Buffer is not safe for concurrent mutation.
type Buffer struct {
	data   []byte
	width  int
	height int
	format Format
}

// New creates a zeroed buffer with the given dimensions and format.
func New(width, height int, format Format) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if !format.IsValid() {
		return nil, ErrInvalidFormat
	}
	return &Buffer{
		data:   make([]byte, format.ImageBytes(width, height)),
		width:  width,
		height: height,
		format: format,
	}, nil
}

// FromRaw wraps existing pixel data without copying.
// The caller must ensure data remains valid for the lifetime of the Buffer.
func FromRaw(data []byte, width, height int, format Format) (*Buffer, error) {
	if width <= 0 || height <= 0 {
		return nil, ErrInvalidDimensions
	}
	if !format.IsValid() {
		return nil, ErrInvalidFormat
	}
	size := format.ImageBytes(width, height)
	if len(data) < size {
		return nil, ErrDataTooSmall
	}
	return &Buffer{
		data:   data[:size],
		width:  width,
		height: height,
		format: format,
	}, nil
}

// Clone creates a deep copy of the buffer.
func (b *Buffer) Clone() *Buffer {
	data := make([]byte, len(b.data))
	copy(data, b.data)
	return &Buffer{data: data, width: b.width, height: b.height, format: b.format}
}

// Width returns the image width in pixels.
func (b *Buffer) Width() int {
	return b.width
}

// Height returns the image height in pixels.
func (b *Buffer) Height() int {
	return b.height
}

// Format returns the pixel format.
func (b *Buffer) Format() Format {
	return b.format
}

// Data returns the raw pixel data slice.
func (b *Buffer) Data() []byte {
	return b.data
}

// PixelOffset returns the byte offset of pixel (x, y) in the data slice.
// Returns -1 if coordinates are out of bounds.
func (b *Buffer) PixelOffset(x, y int) int {
	if x < 0 || x >= b.width || y < 0 || y >= b.height {
		return -1
	}
	return (y*b.width + x) * b.format.BytesPerPixel()
}

// At returns the color at (x, y). Formats without alpha report opaque
// colors. Returns Transparent if coordinates are out of bounds.
func (b *Buffer) At(x, y int) Color {
	off := b.PixelOffset(x, y)
	if off < 0 {
		return Transparent
	}
	p := b.data[off:]

	switch b.format {
	case FormatA1R5G5B5:
		return fromA1R5G5B5(binary.LittleEndian.Uint16(p))
	case FormatR5G6B5:
		return fromR5G6B5(binary.LittleEndian.Uint16(p))
	case FormatR8G8B8:
		return ARGB(0xFF, p[0], p[1], p[2])
	case FormatA8R8G8B8:
		return Color(binary.LittleEndian.Uint32(p))
	case FormatGray8:
		return ARGB(0xFF, p[0], p[0], p[0])
	default:
		return Transparent
	}
}

// Set stores c at (x, y), narrowing it to the buffer's format.
// Returns ErrOutOfBounds if coordinates are outside image bounds.
func (b *Buffer) Set(x, y int, c Color) error {
	off := b.PixelOffset(x, y)
	if off < 0 {
		return ErrOutOfBounds
	}
	p := b.data[off:]

	switch b.format {
	case FormatA1R5G5B5:
		binary.LittleEndian.PutUint16(p, toA1R5G5B5(c))
	case FormatR5G6B5:
		binary.LittleEndian.PutUint16(p, toR5G6B5(c))
	case FormatR8G8B8:
		p[0], p[1], p[2] = c.R(), c.G(), c.B()
	case FormatA8R8G8B8:
		binary.LittleEndian.PutUint32(p, uint32(c))
	case FormatGray8:
		p[0] = luminance(c)
	}
	return nil
}

// Fill sets every pixel to c.
func (b *Buffer) Fill(c Color) {
	for y := range b.height {
		for x := range b.width {
			_ = b.Set(x, y, c)
		}
	}
}

// Convert returns a copy of the buffer in the target format.
// The receiver is left untouched.
func (b *Buffer) Convert(target Format) (*Buffer, error) {
	dst, err := New(b.width, b.height, target)
	if err != nil {
		return nil, err
	}
	if target == b.format {
		copy(dst.data, b.data)
		return dst, nil
	}
	for y := range b.height {
		for x := range b.width {
			_ = dst.Set(x, y, b.At(x, y))
		}
	}
	return dst, nil
}

// IsEmpty returns true if the image has zero dimensions.
func (b *Buffer) IsEmpty() bool {
	return b.width == 0 || b.height == 0
}
