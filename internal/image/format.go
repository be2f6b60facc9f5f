// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package image provides the pixel buffers that font sheets are decoded into.
//
// A Buffer stores pixels in one of a small set of packed color formats and
// exposes per-pixel access through the 32-bit ARGB Color type, so that marker
// colors compare equal regardless of how the source file stored them.
package image

// Format represents a pixel storage format.
type Format uint8

const (
	// FormatA1R5G5B5 is 16-bit color with a 1-bit alpha channel.
	FormatA1R5G5B5 Format = iota

	// FormatR5G6B5 is 16-bit color without alpha.
	FormatR5G6B5

	// FormatR8G8B8 is 24-bit color without alpha (3 bytes per pixel).
	FormatR8G8B8

	// FormatA8R8G8B8 is 32-bit color with an 8-bit alpha channel.
	// Pixels are stored as little-endian uint32 values.
	FormatA8R8G8B8

	// FormatGray8 is 8-bit grayscale. Buffers in this format are created
	// with New and can be converted, but carry no marker colors of their
	// own. Decoded grayscale files become FormatR8G8B8.
	FormatGray8

	// formatCount is the number of formats (for internal use).
	formatCount
)

// FormatInfo contains metadata about a pixel format.
type FormatInfo struct {
	// BytesPerPixel is the number of bytes per pixel.
	BytesPerPixel int

	// HasAlpha indicates if the format has an alpha channel.
	HasAlpha bool

	// AlphaFormat is the closest format with an alpha channel. Formats
	// that already carry alpha map to themselves.
	AlphaFormat Format
}

var formatInfoTable = [formatCount]FormatInfo{
	FormatA1R5G5B5: {BytesPerPixel: 2, HasAlpha: true, AlphaFormat: FormatA1R5G5B5},
	FormatR5G6B5:   {BytesPerPixel: 2, HasAlpha: false, AlphaFormat: FormatA1R5G5B5},
	FormatR8G8B8:   {BytesPerPixel: 3, HasAlpha: false, AlphaFormat: FormatA8R8G8B8},
	FormatA8R8G8B8: {BytesPerPixel: 4, HasAlpha: true, AlphaFormat: FormatA8R8G8B8},
	FormatGray8:    {BytesPerPixel: 1, HasAlpha: false, AlphaFormat: FormatA8R8G8B8},
}

// Info returns the FormatInfo for this format.
func (f Format) Info() FormatInfo {
	if f >= formatCount {
		return FormatInfo{}
	}
	return formatInfoTable[f]
}

// BytesPerPixel returns the number of bytes per pixel for this format.
func (f Format) BytesPerPixel() int {
	return f.Info().BytesPerPixel
}

// HasAlpha returns true if this format has an alpha channel.
func (f Format) HasAlpha() bool {
	return f.Info().HasAlpha
}

// AlphaVersion returns the format a buffer must be converted to before
// its alpha channel can be written.
func (f Format) AlphaVersion() Format {
	return f.Info().AlphaFormat
}

// String returns a string representation of the format.
func (f Format) String() string {
	switch f {
	case FormatA1R5G5B5:
		return "A1R5G5B5"
	case FormatR5G6B5:
		return "R5G6B5"
	case FormatR8G8B8:
		return "R8G8B8"
	case FormatA8R8G8B8:
		return "A8R8G8B8"
	case FormatGray8:
		return "Gray8"
	default:
		return "Unknown"
	}
}

// IsValid returns true if the format is a valid known format.
func (f Format) IsValid() bool {
	return f < formatCount
}

// RowBytes calculates the number of bytes needed for a row of the given width.
func (f Format) RowBytes(width int) int {
	return width * f.BytesPerPixel()
}

// ImageBytes calculates the total number of bytes needed for an image.
func (f Format) ImageBytes(width, height int) int {
	return f.RowBytes(width) * height
}
