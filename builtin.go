// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package spritefont

import (
	"fmt"

	"golang.org/x/image/font/basicfont"

	pix "github.com/gogpu/spritefont/internal/image"
	"github.com/gogpu/spritefont/sheet"
)

// BuiltinName is the texture name of the built-in font.
const BuiltinName = "builtin:7x13"

// LoadBuiltin loads a 7x13 pixel ASCII font that needs no file.
func (f *Font) LoadBuiltin() error {
	if err := f.ready(); err != nil {
		return err
	}
	img, err := sheet.Generate(basicfont.Face7x13, sheet.Options{})
	if err != nil {
		f.unload()
		return fmt.Errorf("spritefont: builtin sheet: %w", err)
	}
	buf, err := pix.FromStdImage(img)
	if err != nil {
		f.unload()
		return fmt.Errorf("%w %q: %w", ErrDecode, BuiltinName, err)
	}
	return f.LoadImage(BuiltinName, buf)
}
