// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package spritefont

import "errors"

// Load errors. They are returned wrapped; test with errors.Is.
var (
	// ErrDecode is returned when the font image cannot be read or decoded.
	ErrDecode = errors.New("spritefont: cannot decode font image")

	// ErrUnsupportedColorFormat is returned for pixel formats other than
	// A1R5G5B5, R5G6B5, R8G8B8 and A8R8G8B8.
	ErrUnsupportedColorFormat = errors.New("spritefont: unsupported color format")

	// ErrCorruptMarkers is returned when a lower-right marker appears
	// before any open top-left marker.
	ErrCorruptMarkers = errors.New("spritefont: corrupt glyph markers")

	// ErrNoGlyphs is returned when the image delimits no glyph.
	ErrNoGlyphs = errors.New("spritefont: no glyphs found")

	// ErrNoEnvironment is returned when the font was created without an
	// environment or device.
	ErrNoEnvironment = errors.New("spritefont: no environment")

	// ErrClosed is returned when loading into a closed font.
	ErrClosed = errors.New("spritefont: font closed")
)
