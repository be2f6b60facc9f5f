// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package device defines the rendering device that font textures are
// uploaded to and sprite batches are drawn with.
//
// A Device is shared: the environment that created it holds one share and
// every font using it takes another with Grab and releases it with Drop.
//
// Two implementations are provided:
//   - Software draws into any draw.Image using golang.org/x/image/draw.
//   - GPU composites on the CPU and presents the result through a host
//     GPU context (gpucontext.DeviceProvider / gpucontext.TextureDrawer).
package device

import (
	"errors"
	"image"
	"image/color"

	"github.com/gogpu/gputypes"
)

// Device errors.
var (
	// ErrNilImage is returned by AddTexture when no image is given.
	ErrNilImage = errors.New("device: nil image")

	// ErrEmptyTexture is returned by AddTexture for zero-sized images.
	ErrEmptyTexture = errors.New("device: empty texture")

	// ErrNoRenderTarget is returned when drawing without a render target.
	ErrNoRenderTarget = errors.New("device: no render target")

	// ErrForeignTexture is returned when a texture created by another
	// device is drawn.
	ErrForeignTexture = errors.New("device: texture not created by this device")

	// ErrBatchMismatch is returned when positions and sources differ in length.
	ErrBatchMismatch = errors.New("device: positions and sources differ in length")

	// ErrNoGPUDevice is returned when a GPU device is created without a
	// usable DeviceProvider.
	ErrNoGPUDevice = errors.New("device: no GPU device")

	// ErrInvalidSize is returned for non-positive canvas dimensions.
	ErrInvalidSize = errors.New("device: invalid size")

	// ErrNoTextureDrawer is returned when presenting without a draw context.
	ErrNoTextureDrawer = errors.New("device: no texture drawer")

	// ErrNoTextureCreator is returned when the draw context cannot create textures.
	ErrNoTextureCreator = errors.New("device: draw context has no texture creator")
)

// Device is the rendering device used by fonts and sprite banks.
type Device interface {
	// TextureCreationFlag returns the current value of a renderer-wide
	// texture creation flag.
	TextureCreationFlag(flag TextureCreationFlag) bool

	// SetTextureCreationFlag changes a renderer-wide texture creation flag.
	// It affects textures added afterwards.
	SetTextureCreationFlag(flag TextureCreationFlag, enabled bool)

	// AddTexture uploads img under name. A texture with the same name is
	// replaced.
	AddTexture(name string, img image.Image) (Texture, error)

	// Draw2DImageBatch draws sources[i] of tex with its top-left corner at
	// positions[i], in order, modulated by tint and clipped to clip when
	// it is non-nil.
	Draw2DImageBatch(tex Texture, positions []image.Point, sources []image.Rectangle, clip *image.Rectangle, tint color.Color) error

	// Grab takes a share of the device.
	Grab()

	// Drop releases a share and reports whether it was the last one.
	Drop() bool
}

// Texture is a texture owned by a Device.
type Texture interface {
	// Name returns the name the texture was added under.
	Name() string

	// Descriptor returns the parameters the texture was created with.
	Descriptor() TextureDescriptor
}

// TextureDescriptor describes parameters a texture was created with.
// This mirrors the WebGPU GPUTextureDescriptor specification.
type TextureDescriptor struct {
	// Label is the texture name.
	Label string

	// Width is the texture width in pixels.
	Width uint32

	// Height is the texture height in pixels.
	Height uint32

	// MipLevelCount is the number of mipmap levels, 1 for none.
	MipLevelCount uint32

	// Format is the texture pixel format.
	Format gputypes.TextureFormat

	// Usage specifies how the texture will be used.
	Usage TextureUsage

	// MemoryCopy reports whether the device kept a private copy of the
	// pixels instead of referencing the caller's image.
	MemoryCopy bool
}

// Size returns the texture dimensions as a point.
func (d TextureDescriptor) Size() image.Point {
	return image.Pt(int(d.Width), int(d.Height))
}

// TextureUsage specifies how a texture can be used.
// These flags can be combined with bitwise OR.
type TextureUsage uint32

const (
	// TextureUsageCopySrc allows the texture to be used as a copy source.
	TextureUsageCopySrc TextureUsage = 1 << iota

	// TextureUsageCopyDst allows the texture to be used as a copy destination.
	TextureUsageCopyDst

	// TextureUsageTextureBinding allows the texture to be sampled.
	TextureUsageTextureBinding
)

// DefaultTextureDescriptor returns a TextureDescriptor for a sampled 2D
// texture without mipmaps.
func DefaultTextureDescriptor(width, height uint32, format gputypes.TextureFormat) TextureDescriptor {
	return TextureDescriptor{
		Width:         width,
		Height:        height,
		MipLevelCount: 1,
		Format:        format,
		Usage:         TextureUsageTextureBinding | TextureUsageCopyDst,
	}
}
