// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

// Package ebitendev implements device.Device on top of Ebitengine.
//
// The package is only compiled with the ebiten build tag:
//
//	go build -tags ebiten ./...
//
// Textures are *ebiten.Image values. Ebitengine manages mipmaps and GPU
// memory itself, so the CreateMipMaps and AllowMemoryCopy flags are kept
// for callers but only reflected in texture descriptors.
package ebitendev
