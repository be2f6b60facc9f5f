// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Command fontdemo draws text with a marker font sheet and saves the
// result as an image.
//
// Without -font the built-in 7x13 font is used.
package main

import (
	"flag"
	"image"
	"image/color"
	"image/draw"
	"log"
	"log/slog"
	"os"
	"strings"

	"github.com/gogpu/spritefont"
	"github.com/gogpu/spritefont/device"
	pix "github.com/gogpu/spritefont/internal/image"
	"github.com/gogpu/spritefont/sheet"
)

func main() {
	var (
		fontPath = flag.String("font", "", "font sheet (default built-in 7x13)")
		charset  = flag.String("charset", "", "IANA charset the sheet was generated with")
		text     = flag.String("text", "Hello, spritefont!\\nThe quick brown fox.", "text to draw; \\n starts a new line")
		width    = flag.Int("width", 320, "image width")
		height   = flag.Int("height", 80, "image height")
		kerning  = flag.Int("kerning", 0, "extra pixels between characters")
		center   = flag.Bool("center", true, "center the text")
		verbose  = flag.Bool("v", false, "log font loading")
		output   = flag.String("output", "fontdemo.png", "output file")
	)
	flag.Parse()

	if *verbose {
		spritefont.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	canvas := image.NewNRGBA(image.Rect(0, 0, *width, *height))
	draw.Draw(canvas, canvas.Rect, image.NewUniform(color.NRGBA{R: 0x20, G: 0x24, B: 0x30, A: 0xFF}), image.Point{}, draw.Src)

	dev := device.NewSoftware(canvas)
	env := spritefont.NewEnvironment(dev)

	cm, err := sheet.LookupCharset(*charset)
	if err != nil {
		log.Fatalf("Invalid charset: %v", err)
	}
	opts := []spritefont.Option{spritefont.WithKerning(*kerning, 0), spritefont.WithCharset(cm)}

	f := spritefont.New(env, "demo", opts...)
	defer func() { _ = f.Close() }()

	if *fontPath == "" {
		err = f.LoadBuiltin()
	} else {
		err = f.Load(*fontPath)
	}
	if err != nil {
		log.Fatalf("Failed to load font: %v", err)
	}

	msg := strings.ReplaceAll(*text, `\n`, "\n")
	if err := f.Draw(msg, canvas.Rect, color.White, *center, *center, nil); err != nil {
		log.Fatalf("Failed to draw: %v", err)
	}

	buf, err := pix.FromStdImage(canvas)
	if err != nil {
		log.Fatalf("Failed to convert: %v", err)
	}
	if err := buf.Save(*output, 90); err != nil {
		log.Fatalf("Failed to save: %v", err)
	}

	w, h := f.Dimension(msg)
	log.Printf("Text (%dx%d) saved to %s (%dx%d)\n", w, h, *output, *width, *height)
}
