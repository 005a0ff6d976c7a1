// Copyright 2026 The Atlas Authors
// SPDX-License-Identifier: Apache-2.0

package slicechunk

import (
	"github.com/davis20/atlas/lib/largearray"
)

// Chunk is a fixed-capacity block of elements backed by a Go slice.
// Capacity is set at construction; WithCapacity and Trimmed produce
// resized copies rather than resizing in place, matching the
// replace-wholesale ownership model of largearray.
type Chunk[T any] struct {
	items []T
}

// New returns a chunk with the given capacity. Every slot holds the
// zero value of T. A negative capacity panics, as it would for make.
func New[T any](capacity int) *Chunk[T] {
	return &Chunk[T]{items: make([]T, capacity)}
}

// Factory adapts New to the largearray.Config.NewChunk signature:
//
//	array, err := largearray.New(largearray.Config[int]{
//		MaximumSize: 1 << 32,
//		NewChunk:    slicechunk.Factory[int](),
//	})
func Factory[T any]() func(capacity int) largearray.Chunk[T] {
	return func(capacity int) largearray.Chunk[T] {
		return New[T](capacity)
	}
}

// Capacity returns the number of slots in the chunk.
func (c *Chunk[T]) Capacity() int {
	return len(c.items)
}

// Get returns the element at offset. Panics when offset is outside
// [0, Capacity()).
func (c *Chunk[T]) Get(offset int) T {
	return c.items[offset]
}

// Set stores item at offset. Panics when offset is outside
// [0, Capacity()).
func (c *Chunk[T]) Set(offset int, item T) {
	c.items[offset] = item
}

// WithCapacity returns a new chunk of the given capacity holding this
// chunk's elements up to min(Capacity(), capacity). Slots past the
// copied elements hold the zero value of T. The receiver is unchanged.
func (c *Chunk[T]) WithCapacity(capacity int) largearray.Chunk[T] {
	next := New[T](capacity)
	copy(next.items, c.items)
	return next
}

// Trimmed returns a new chunk of exactly the given capacity holding
// this chunk's first capacity elements. Panics when capacity is
// outside [0, Capacity()]. The receiver is unchanged.
func (c *Chunk[T]) Trimmed(capacity int) largearray.Chunk[T] {
	next := New[T](capacity)
	copy(next.items, c.items[:capacity])
	return next
}
