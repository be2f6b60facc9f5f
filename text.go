// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package spritefont

import (
	"iter"
	"unicode/utf8"
)

// scanText yields the runes of text. Line breaks ("\r\n", "\r" and "\n")
// are yielded once each with brk set.
func scanText(text string) iter.Seq2[rune, bool] {
	return func(yield func(r rune, brk bool) bool) {
		for i := 0; i < len(text); {
			r, size := utf8.DecodeRuneInString(text[i:])
			i += size
			switch r {
			case '\r':
				if i < len(text) && text[i] == '\n' {
					i++
				}
				fallthrough
			case '\n':
				if !yield(r, true) {
					return
				}
			default:
				if !yield(r, false) {
					return
				}
			}
		}
	}
}
