// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: BSD-3-Clause

package glyphmap

// queue is a FIFO of open box indices.
type queue struct {
	items []int
	head  int
}

func (q *queue) push(i int) {
	q.items = append(q.items, i)
}

// pop returns the oldest open box.
func (q *queue) pop() (int, bool) {
	if q.head == len(q.items) {
		return 0, false
	}
	i := q.items[q.head]
	q.head++
	return i, true
}
