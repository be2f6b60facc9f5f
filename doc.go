// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package spritefont draws text with bitmap fonts stored as marker sheets.
//
// # Overview
//
// A marker sheet is an ordinary image holding every glyph of a font. The
// first three pixels of row 0 define three colors:
//
//	(0,0) top-left marker (also the top-left corner of glyph 0)
//	(1,0) lower-right marker
//	(2,0) background
//
// Each glyph box starts at a top-left marker pixel and ends at the
// matching lower-right marker pixel, found in row-major order. Glyph N is
// the character with code 32+N. Markers and background are erased before
// the sheet is uploaded as a texture.
//
// # Quick Start
//
//	dev := device.NewSoftware(canvas)
//	env := spritefont.NewEnvironment(dev)
//
//	f := spritefont.New(env, "hud")
//	defer f.Close()
//	if err := f.Load("fonts/hud.png"); err != nil {
//	    return err
//	}
//	f.Draw("Score: 100", image.Rect(0, 0, 320, 20), color.White, true, false, nil)
//
// LoadBuiltin loads a 7x13 ASCII font that needs no file.
//
// # Layout
//
// Every character advances the pen by its underhang, width and overhang
// plus the global kerning width. "\r\n", "\r" and "\n" start a new line
// LineHeight pixels lower. Dimension measures text, Layout positions its
// glyphs and CharacterFromPos maps a horizontal offset back to a character.
//
// # Resources
//
// Fonts share sprite banks and devices through an Environment. New takes
// a share of both and Close releases it; the environment evicts banks that
// no font holds anymore (spritebank.Registry.Evict and Collect).
//
// # Logging
//
// Nothing is logged by default. See SetLogger.
package spritefont
