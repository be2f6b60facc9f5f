// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package device

import (
	"fmt"
	"image"
	"image/color"

	"github.com/gogpu/gpucontext"
	"github.com/gogpu/gputypes"
)

// textureDestroyer matches the Destroy method of host GPU textures.
type textureDestroyer interface {
	Destroy()
}

// GPU composites sprite batches into a CPU canvas and presents it as a
// single texture through a host GPU context.
//
// The canvas texture is created lazily on the first Present and updated
// in place afterwards when the host texture supports it.
type GPU struct {
	*Software

	provider gpucontext.DeviceProvider
	canvas   *image.NRGBA
	texture  any
	dirty    bool
}

// NewGPU creates a GPU device with a canvas of the given size.
func NewGPU(provider gpucontext.DeviceProvider, width, height int) (*GPU, error) {
	if provider == nil || provider.Device() == nil {
		return nil, ErrNoGPUDevice
	}
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidSize, width, height)
	}
	canvas := image.NewNRGBA(image.Rect(0, 0, width, height))
	return &GPU{
		Software: NewSoftware(canvas),
		provider: provider,
		canvas:   canvas,
		dirty:    true,
	}, nil
}

// Provider returns the host device provider.
func (g *GPU) Provider() gpucontext.DeviceProvider {
	return g.provider
}

// SurfaceFormat returns the surface format of the host.
func (g *GPU) SurfaceFormat() gputypes.TextureFormat {
	return g.provider.SurfaceFormat()
}

// Canvas returns the composited image.
func (g *GPU) Canvas() *image.NRGBA {
	return g.canvas
}

// Clear fills the canvas with c.
func (g *GPU) Clear(c color.Color) {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	pix := g.canvas.Pix
	for i := 0; i < len(pix); i += 4 {
		pix[i], pix[i+1], pix[i+2], pix[i+3] = n.R, n.G, n.B, n.A
	}
	g.dirty = true
}

// Draw2DImageBatch implements Device.
func (g *GPU) Draw2DImageBatch(tex Texture, positions []image.Point, sources []image.Rectangle, clip *image.Rectangle, tint color.Color) error {
	if err := g.Software.Draw2DImageBatch(tex, positions, sources, clip, tint); err != nil {
		return err
	}
	g.dirty = true
	return nil
}

// Present uploads the canvas if it changed and draws it at (x, y).
func (g *GPU) Present(dc gpucontext.TextureDrawer, x, y float32) error {
	if dc == nil {
		return ErrNoTextureDrawer
	}

	if g.texture == nil {
		creator := dc.TextureCreator()
		if creator == nil {
			return ErrNoTextureCreator
		}
		b := g.canvas.Rect
		tex, err := creator.NewTextureFromRGBA(b.Dx(), b.Dy(), g.canvas.Pix)
		if err != nil {
			return fmt.Errorf("device: canvas texture: %w", err)
		}
		g.texture = tex
		g.dirty = false
	} else if g.dirty {
		if updater, ok := g.texture.(gpucontext.TextureUpdater); ok {
			if err := updater.UpdateData(g.canvas.Pix); err != nil {
				return fmt.Errorf("device: canvas update: %w", err)
			}
		}
		g.dirty = false
	}

	gpuTex, ok := g.texture.(gpucontext.Texture)
	if !ok {
		return ErrNoTextureDrawer
	}
	return dc.DrawTexture(gpuTex, x, y)
}

// Drop implements Device. Releasing the last share destroys the host
// canvas texture.
func (g *GPU) Drop() bool {
	if !g.Software.Drop() {
		return false
	}
	if d, ok := g.texture.(textureDestroyer); ok {
		d.Destroy()
	}
	g.texture = nil
	return true
}

var _ Device = (*GPU)(nil)
