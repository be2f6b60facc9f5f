// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package device

// TextureCreationFlag selects a renderer-wide texture creation setting.
type TextureCreationFlag uint8

const (
	// CreateMipMaps generates a mipmap chain for new textures.
	CreateMipMaps TextureCreationFlag = iota

	// AllowMemoryCopy lets the device keep a private copy of the pixels
	// of new textures.
	AllowMemoryCopy

	flagCount
)

// String returns the flag name.
func (f TextureCreationFlag) String() string {
	switch f {
	case CreateMipMaps:
		return "CreateMipMaps"
	case AllowMemoryCopy:
		return "AllowMemoryCopy"
	default:
		return "Unknown"
	}
}

// FlagSetter is the part of Device that manages texture creation flags.
type FlagSetter interface {
	TextureCreationFlag(flag TextureCreationFlag) bool
	SetTextureCreationFlag(flag TextureCreationFlag, enabled bool)
}

// PushTextureFlags applies values to d and returns a function that
// restores the previous settings. Callers defer the restore so it also
// runs on early returns:
//
//	restore := device.PushTextureFlags(dev, map[device.TextureCreationFlag]bool{
//	    device.CreateMipMaps: false,
//	})
//	defer restore()
func PushTextureFlags(d FlagSetter, values map[TextureCreationFlag]bool) (restore func()) {
	saved := make(map[TextureCreationFlag]bool, len(values))
	for flag, v := range values {
		saved[flag] = d.TextureCreationFlag(flag)
		d.SetTextureCreationFlag(flag, v)
	}
	return func() {
		for flag, v := range saved {
			d.SetTextureCreationFlag(flag, v)
		}
	}
}
