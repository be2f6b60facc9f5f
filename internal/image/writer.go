// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package image

import (
	"errors"
	"fmt"
	"image/jpeg"
	"image/png"
	"io"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"
)

// ErrNoWriter is returned when no registered writer accepts a file name.
var ErrNoWriter = errors.New("image: no writer for file extension")

// Writer writes buffers to encoded image files.
type Writer interface {
	// CanWrite reports whether the file extension of filename is
	// handled by this writer.
	CanWrite(filename string) bool

	// Write encodes b to w. The meaning of param is writer specific,
	// for example the JPEG quality.
	Write(w io.Writer, b *Buffer, param int) error
}

var (
	writersMu sync.RWMutex
	writers   = []Writer{
		extWriter{exts: []string{".png"}, encode: writePNG},
		extWriter{exts: []string{".jpg", ".jpeg"}, encode: writeJPEG},
		extWriter{exts: []string{".bmp"}, encode: writeBMP},
		extWriter{exts: []string{".tif", ".tiff"}, encode: writeTIFF},
	}
)

// RegisterWriter adds a writer. Writers registered later take precedence.
func RegisterWriter(w Writer) {
	writersMu.Lock()
	defer writersMu.Unlock()
	writers = append(writers, w)
}

// WriterFor returns the writer for filename, or nil if none accepts it.
func WriterFor(filename string) Writer {
	writersMu.RLock()
	defer writersMu.RUnlock()
	for i := len(writers) - 1; i >= 0; i-- {
		if writers[i].CanWrite(filename) {
			return writers[i]
		}
	}
	return nil
}

// Save writes b to path using the writer selected by its extension.
func (b *Buffer) Save(path string, param int) error {
	w := WriterFor(path)
	if w == nil {
		return fmt.Errorf("%w: %s", ErrNoWriter, filepath.Ext(path))
	}

	f, err := os.Create(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("image: create file: %w", err)
	}
	if err := w.Write(f, b, param); err != nil {
		_ = f.Close()
		return err
	}
	return f.Close()
}

// extWriter selects by lower-cased file extension.
type extWriter struct {
	exts   []string
	encode func(w io.Writer, b *Buffer, param int) error
}

func (e extWriter) CanWrite(filename string) bool {
	ext := strings.ToLower(filepath.Ext(filename))
	for _, x := range e.exts {
		if x == ext {
			return true
		}
	}
	return false
}

func (e extWriter) Write(w io.Writer, b *Buffer, param int) error {
	return e.encode(w, b, param)
}

func writePNG(w io.Writer, b *Buffer, _ int) error {
	if err := png.Encode(w, b.ToStdImage()); err != nil {
		return fmt.Errorf("image: encode PNG: %w", err)
	}
	return nil
}

// writeJPEG uses param as the quality (1-100); 0 selects the default.
func writeJPEG(w io.Writer, b *Buffer, param int) error {
	quality := jpeg.DefaultQuality
	if param > 0 {
		quality = min(param, 100)
	}
	if err := jpeg.Encode(w, b.ToStdImage(), &jpeg.Options{Quality: quality}); err != nil {
		return fmt.Errorf("image: encode JPEG: %w", err)
	}
	return nil
}

func writeBMP(w io.Writer, b *Buffer, _ int) error {
	if err := bmp.Encode(w, b.ToStdImage()); err != nil {
		return fmt.Errorf("image: encode BMP: %w", err)
	}
	return nil
}

// writeTIFF compresses with deflate when param is non-zero.
func writeTIFF(w io.Writer, b *Buffer, param int) error {
	opts := &tiff.Options{Compression: tiff.Uncompressed}
	if param != 0 {
		opts.Compression = tiff.Deflate
	}
	if err := tiff.Encode(w, b.ToStdImage(), opts); err != nil {
		return fmt.Errorf("image: encode TIFF: %w", err)
	}
	return nil
}
