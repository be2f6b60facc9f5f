// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Command fontsheet renders a TrueType or OpenType font into a marker
// font sheet that spritefont can load.
//
// Usage:
//
//	fontsheet -font DejaVuSans.ttf -size 16 -charset windows-1252 -last 255 -output sans16.png
//
// Without -font the Go Regular font is used. The output format follows
// the file extension: .png, .jpg, .bmp, .tif.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/opentype"

	pix "github.com/gogpu/spritefont/internal/image"
	"github.com/gogpu/spritefont/sheet"
)

func main() {
	var (
		fontPath = flag.String("font", "", "TrueType/OpenType font file (default Go Regular)")
		size     = flag.Float64("size", 16, "font size in points")
		dpi      = flag.Float64("dpi", 72, "resolution")
		last     = flag.Int("last", 126, "last character code")
		charset  = flag.String("charset", "", "IANA name of a single-byte charset, e.g. windows-1252")
		padding  = flag.Int("padding", 1, "pixels around each glyph")
		maxWidth = flag.Int("maxwidth", 512, "sheet width limit")
		quality  = flag.Int("quality", 90, "JPEG quality or TIFF compression flag")
		output   = flag.String("output", "font.png", "output file")
	)
	flag.Parse()

	face, err := loadFace(*fontPath, *size, *dpi)
	if err != nil {
		log.Fatalf("Failed to load font: %v", err)
	}
	defer func() { _ = face.Close() }()

	cm, err := sheet.LookupCharset(*charset)
	if err != nil {
		log.Fatalf("Invalid charset: %v", err)
	}

	img, err := sheet.Generate(face, sheet.Options{
		Last:     rune(*last),
		Charset:  cm,
		Padding:  *padding,
		MaxWidth: *maxWidth,
	})
	if err != nil {
		log.Fatalf("Failed to generate sheet: %v", err)
	}

	buf, err := pix.FromStdImage(img)
	if err != nil {
		log.Fatalf("Failed to convert sheet: %v", err)
	}
	if err := buf.Save(*output, *quality); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	log.Printf("Sheet saved to %s (%dx%d, %d glyphs)\n", *output, buf.Width(), buf.Height(), *last-sheet.FirstCode+1)
}

func loadFace(path string, size, dpi float64) (font.Face, error) {
	data := goregular.TTF
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return nil, err
		}
		data = b
	}
	f, err := opentype.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("parse font: %w", err)
	}
	return opentype.NewFace(f, &opentype.FaceOptions{
		Size:    size,
		DPI:     dpi,
		Hinting: font.HintingFull,
	})
}
