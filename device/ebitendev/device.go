// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

//go:build ebiten

package ebitendev

import (
	"fmt"
	"image"
	"image/color"
	"math/bits"

	"github.com/gogpu/gputypes"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/gogpu/spritefont/device"
	"github.com/gogpu/spritefont/internal/refcount"
)

// Device draws sprite batches onto an *ebiten.Image.
type Device struct {
	refcount.Count

	flags    map[device.TextureCreationFlag]bool
	target   *ebiten.Image
	textures map[string]*texture
}

type texture struct {
	owner *Device
	desc  device.TextureDescriptor
	img   *ebiten.Image
}

func (t *texture) Name() string                         { return t.desc.Label }
func (t *texture) Descriptor() device.TextureDescriptor { return t.desc }

// Image returns the Ebitengine image backing tex, or nil when tex was not
// created by an ebitendev Device.
func Image(tex device.Texture) *ebiten.Image {
	if t, ok := tex.(*texture); ok {
		return t.img
	}
	return nil
}

// New creates a device drawing onto target, usually the screen passed to
// Game.Draw. target may be nil and set later with SetRenderTarget.
func New(target *ebiten.Image) *Device {
	return &Device{
		flags: map[device.TextureCreationFlag]bool{
			device.CreateMipMaps: true,
		},
		target:   target,
		textures: make(map[string]*texture),
	}
}

// SetRenderTarget changes the image sprite batches are drawn onto.
func (d *Device) SetRenderTarget(target *ebiten.Image) {
	d.target = target
}

// TextureCreationFlag implements device.Device.
func (d *Device) TextureCreationFlag(flag device.TextureCreationFlag) bool {
	return d.flags[flag]
}

// SetTextureCreationFlag implements device.Device.
func (d *Device) SetTextureCreationFlag(flag device.TextureCreationFlag, enabled bool) {
	d.flags[flag] = enabled
}

// AddTexture implements device.Device.
func (d *Device) AddTexture(name string, img image.Image) (device.Texture, error) {
	if img == nil {
		return nil, device.ErrNilImage
	}
	b := img.Bounds()
	if b.Empty() {
		return nil, fmt.Errorf("%w: %q is %dx%d", device.ErrEmptyTexture, name, b.Dx(), b.Dy())
	}

	if old, ok := d.textures[name]; ok {
		old.img.Dispose()
	}

	desc := device.DefaultTextureDescriptor(uint32(b.Dx()), uint32(b.Dy()), gputypes.TextureFormatRGBA8Unorm)
	desc.Label = name
	desc.MemoryCopy = true
	if d.flags[device.CreateMipMaps] {
		desc.MipLevelCount = uint32(bits.Len(uint(max(b.Dx(), b.Dy()))))
	}

	t := &texture{owner: d, desc: desc, img: ebiten.NewImageFromImage(img)}
	d.textures[name] = t
	return t, nil
}

// Draw2DImageBatch implements device.Device.
func (d *Device) Draw2DImageBatch(tex device.Texture, positions []image.Point, sources []image.Rectangle, clip *image.Rectangle, tint color.Color) error {
	if d.target == nil {
		return device.ErrNoRenderTarget
	}
	t, ok := tex.(*texture)
	if !ok || t.owner != d {
		return device.ErrForeignTexture
	}
	if len(positions) != len(sources) {
		return fmt.Errorf("%w: %d positions, %d sources", device.ErrBatchMismatch, len(positions), len(sources))
	}

	target := d.target
	if clip != nil {
		r := clip.Intersect(target.Bounds())
		if r.Empty() {
			return nil
		}
		target = target.SubImage(r).(*ebiten.Image)
	}

	var opts ebiten.DrawImageOptions
	if tint != nil {
		opts.ColorM.Scale(colorToFloat64(tint))
	}
	texBounds := t.img.Bounds()
	for i, pos := range positions {
		sr := sources[i].Intersect(texBounds)
		if sr.Empty() {
			continue
		}
		pos = pos.Add(sr.Min.Sub(sources[i].Min))
		opts.GeoM.Reset()
		opts.GeoM.Translate(float64(pos.X), float64(pos.Y))
		target.DrawImage(t.img.SubImage(sr).(*ebiten.Image), &opts)
	}
	return nil
}

// Drop implements device.Device. Releasing the last share disposes all
// textures.
func (d *Device) Drop() bool {
	if !d.Count.Drop() {
		return false
	}
	for name, t := range d.textures {
		t.img.Dispose()
		delete(d.textures, name)
	}
	return true
}

// colorToFloat64 converts a color to non-premultiplied [0, 1] components,
// the space ColorM operates in.
func colorToFloat64(c color.Color) (float64, float64, float64, float64) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return float64(n.R) / 255, float64(n.G) / 255, float64(n.B) / 255, float64(n.A) / 255
}

var _ device.Device = (*Device)(nil)
