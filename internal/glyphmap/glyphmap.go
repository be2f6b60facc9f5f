// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package glyphmap finds glyph boxes in a font sheet.
//
// A font sheet is an ordinary image. Its first three pixels on row 0 define
// the marker colors:
//
//	(0,0) top-left marker   (read as fully opaque)
//	(1,0) lower-right marker
//	(2,0) background
//
// Every other pixel of the top-left color opens a glyph box and every pixel
// of the lower-right color closes the oldest open box. Pixel (0,0) itself is
// the top-left marker of the first glyph.
//
// Scanning never mutates the image; Clean erases markers and background in
// a separate pass once the caller has decided to keep the result.
package glyphmap

import (
	"errors"
	"image"

	pix "github.com/gogpu/spritefont/internal/image"
)

// Errors returned by Scan.
var (
	// ErrImageTooSmall is returned when the sheet is narrower than the
	// three control pixels.
	ErrImageTooSmall = errors.New("glyphmap: image too small for control pixels")

	// ErrUnsupportedFormat is returned for buffers without an alpha channel.
	ErrUnsupportedFormat = errors.New("glyphmap: image format has no alpha channel")

	// ErrCorruptMarkers is returned when a lower-right marker has no open
	// box to close.
	ErrCorruptMarkers = errors.New("glyphmap: lower-right marker without open box")
)

// Markers holds the colors read from the control pixels.
type Markers struct {
	TopLeft    pix.Color
	LowerRight pix.Color
	Background pix.Color
}

// Map is the result of a scan.
type Map struct {
	// Boxes holds every opened box in discovery order. Boxes[:Closed]
	// have their lower-right corner set; the rest are degenerate
	// rectangles at their top-left marker.
	Boxes []image.Rectangle

	// Closed is the number of boxes that received a lower-right marker.
	// Closing order equals opening order, so box i is the i-th glyph.
	Closed int

	// Markers are the control colors the scan used.
	Markers Markers
}

// Opened returns the number of top-left markers found.
func (m *Map) Opened() int {
	return len(m.Boxes)
}

// Glyphs returns the closed boxes.
func (m *Map) Glyphs() []image.Rectangle {
	return m.Boxes[:m.Closed]
}

// Balanced reports whether every opened box was closed.
func (m *Map) Balanced() bool {
	return m.Closed == len(m.Boxes)
}

// ReadMarkers reads the control pixels of img.
func ReadMarkers(img *pix.Buffer) (Markers, error) {
	if img.Width() < 3 {
		return Markers{}, ErrImageTooSmall
	}
	return Markers{
		TopLeft:    img.At(0, 0).WithAlpha(0xFF),
		LowerRight: img.At(1, 0),
		Background: img.At(2, 0),
	}, nil
}

// Scan raster-scans img row by row and returns the glyph boxes it delimits.
//
// On ErrCorruptMarkers the returned map still lists the boxes found so far,
// but Closed is reset to zero: none of them may be used.
func Scan(img *pix.Buffer) (*Map, error) {
	if !img.Format().HasAlpha() {
		return nil, ErrUnsupportedFormat
	}
	markers, err := ReadMarkers(img)
	if err != nil {
		return nil, err
	}

	m := &Map{Markers: markers}
	var open queue

	for y := range img.Height() {
		for x := range img.Width() {
			switch markers.effective(img, x, y) {
			case markers.TopLeft:
				p := image.Pt(x, y)
				open.push(len(m.Boxes))
				m.Boxes = append(m.Boxes, image.Rectangle{Min: p, Max: p})
			case markers.LowerRight:
				i, ok := open.pop()
				if !ok {
					m.Closed = 0
					return m, ErrCorruptMarkers
				}
				m.Boxes[i].Max = image.Pt(x, y)
				m.Closed++
			}
		}
	}
	return m, nil
}

// Clean clears every marker and background pixel of img to transparent.
// Glyph pixels are left untouched.
func Clean(img *pix.Buffer, m *Map) {
	mk := m.Markers
	for y := range img.Height() {
		for x := range img.Width() {
			switch mk.effective(img, x, y) {
			case mk.TopLeft, mk.LowerRight, mk.Background:
				_ = img.Set(x, y, pix.Transparent)
			}
		}
	}
}

// effective returns the color a pixel has for marker matching. The first
// control pixel always reads as the opaque top-left marker and the second
// as background, so the lower-right sample never closes a box.
func (mk Markers) effective(img *pix.Buffer, x, y int) pix.Color {
	if y == 0 {
		switch x {
		case 0:
			return mk.TopLeft
		case 1:
			return mk.Background
		}
	}
	return img.At(x, y)
}
