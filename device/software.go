// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package device

import (
	"fmt"
	"image"
	"image/color"
	"image/draw"

	"github.com/gogpu/gputypes"
	xdraw "golang.org/x/image/draw"

	"github.com/gogpu/spritefont/internal/refcount"
)

// Software is a CPU device that draws sprite batches into a draw.Image.
//
// New textures get a mipmap chain by default and reference the caller's
// pixels when they are already stored as *image.NRGBA, matching the
// defaults of a hardware renderer.
type Software struct {
	refcount.Count

	flags    [flagCount]bool
	target   draw.Image
	textures map[string]*softTexture
}

// softTexture is a texture owned by a Software device.
type softTexture struct {
	owner *Software
	desc  TextureDescriptor
	// levels[0] is the full-size image, positioned at the origin.
	levels []*image.NRGBA
}

func (t *softTexture) Name() string                  { return t.desc.Label }
func (t *softTexture) Descriptor() TextureDescriptor { return t.desc }

// NewSoftware creates a software device drawing into target.
// target may be nil and set later with SetRenderTarget.
func NewSoftware(target draw.Image) *Software {
	s := &Software{
		target:   target,
		textures: make(map[string]*softTexture),
	}
	s.flags[CreateMipMaps] = true
	return s
}

// SetRenderTarget changes the image sprite batches are drawn into.
func (s *Software) SetRenderTarget(target draw.Image) {
	s.target = target
}

// RenderTarget returns the current render target.
func (s *Software) RenderTarget() draw.Image {
	return s.target
}

// TextureCreationFlag implements Device.
func (s *Software) TextureCreationFlag(flag TextureCreationFlag) bool {
	if flag >= flagCount {
		return false
	}
	return s.flags[flag]
}

// SetTextureCreationFlag implements Device.
func (s *Software) SetTextureCreationFlag(flag TextureCreationFlag, enabled bool) {
	if flag >= flagCount {
		return
	}
	s.flags[flag] = enabled
}

// AddTexture implements Device.
func (s *Software) AddTexture(name string, img image.Image) (Texture, error) {
	if img == nil {
		return nil, ErrNilImage
	}
	b := img.Bounds()
	if b.Empty() {
		return nil, fmt.Errorf("%w: %q is %dx%d", ErrEmptyTexture, name, b.Dx(), b.Dy())
	}

	base, copied := s.baseLevel(img)
	tex := &softTexture{
		owner:  s,
		levels: []*image.NRGBA{base},
	}
	if s.flags[CreateMipMaps] {
		tex.levels = buildMipChain(base)
	}

	tex.desc = DefaultTextureDescriptor(uint32(b.Dx()), uint32(b.Dy()), gputypes.TextureFormatRGBA8Unorm)
	tex.desc.Label = name
	tex.desc.MipLevelCount = uint32(len(tex.levels))
	tex.desc.MemoryCopy = copied

	s.textures[name] = tex
	return tex, nil
}

// baseLevel returns img as an NRGBA image at the origin. The caller's
// pixels are shared when copying is disallowed and no conversion is needed.
func (s *Software) baseLevel(img image.Image) (*image.NRGBA, bool) {
	if n, ok := img.(*image.NRGBA); ok && n.Rect.Min == (image.Point{}) && !s.flags[AllowMemoryCopy] {
		return n, false
	}
	b := img.Bounds()
	dst := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(dst, dst.Rect, img, b.Min, draw.Src)
	return dst, true
}

// buildMipChain halves base until a 1x1 level is reached.
func buildMipChain(base *image.NRGBA) []*image.NRGBA {
	levels := []*image.NRGBA{base}
	prev := base
	for prev.Rect.Dx() > 1 || prev.Rect.Dy() > 1 {
		w := max(1, prev.Rect.Dx()/2)
		h := max(1, prev.Rect.Dy()/2)
		next := image.NewNRGBA(image.Rect(0, 0, w, h))
		xdraw.ApproxBiLinear.Scale(next, next.Rect, prev, prev.Rect, xdraw.Src, nil)
		levels = append(levels, next)
		prev = next
	}
	return levels
}

// Texture returns the texture added under name, or nil.
func (s *Software) Texture(name string) Texture {
	if t, ok := s.textures[name]; ok {
		return t
	}
	return nil
}

// MipLevel returns mip level i of tex, or nil when tex does not belong to
// this device or has fewer levels.
func (s *Software) MipLevel(tex Texture, i int) *image.NRGBA {
	t, ok := tex.(*softTexture)
	if !ok || t.owner != s || i < 0 || i >= len(t.levels) {
		return nil
	}
	return t.levels[i]
}

// RemoveTexture deletes the texture added under name.
func (s *Software) RemoveTexture(name string) bool {
	if _, ok := s.textures[name]; !ok {
		return false
	}
	delete(s.textures, name)
	return true
}

// TextureCount returns the number of live textures.
func (s *Software) TextureCount() int {
	return len(s.textures)
}

// Draw2DImageBatch implements Device.
//
// Sources are clamped to the texture; empty sources and destinations
// that fall entirely outside the clip are skipped.
func (s *Software) Draw2DImageBatch(tex Texture, positions []image.Point, sources []image.Rectangle, clip *image.Rectangle, tint color.Color) error {
	if s.target == nil {
		return ErrNoRenderTarget
	}
	t, ok := tex.(*softTexture)
	if !ok || t.owner != s {
		return ErrForeignTexture
	}
	if len(positions) != len(sources) {
		return fmt.Errorf("%w: %d positions, %d sources", ErrBatchMismatch, len(positions), len(sources))
	}

	bounds := s.target.Bounds()
	if clip != nil {
		bounds = bounds.Intersect(*clip)
	}
	if bounds.Empty() {
		return nil
	}

	src := tintImage(t.levels[0], tint)
	for i, pos := range positions {
		sr := sources[i].Intersect(t.levels[0].Rect)
		if sr.Empty() {
			continue
		}
		// Clamping the source moves its top-left corner.
		pos = pos.Add(sr.Min.Sub(sources[i].Min))
		dr := image.Rectangle{Min: pos, Max: pos.Add(sr.Size())}.Intersect(bounds)
		if dr.Empty() {
			continue
		}
		sp := sr.Min.Add(dr.Min.Sub(pos))
		xdraw.Draw(s.target, dr, src, sp, xdraw.Over)
	}
	return nil
}

var _ Device = (*Software)(nil)
