// Copyright 2026 The Atlas Authors
// SPDX-License-Identifier: Apache-2.0

package largearray

// Trim shrinks the last chunk's capacity to exactly its used size,
// releasing whatever tail slack growth left behind. Shorthand for
// TrimIfUnderfilled(1.0).
//
// Trimming copies the last chunk's live elements into a smaller
// allocation, which costs time and transient memory proportional to
// that chunk. Appending after a trim simply regrows the chunk.
func (a *Array[T]) Trim() {
	a.TrimIfUnderfilled(1.0)
}

// TrimIfUnderfilled shrinks the last chunk to its used size, but only
// when its fill fraction (used slots over capacity) is below ratio.
// Chunks before the last are always packed and are never touched. An
// array with no chunks, or whose last chunk is exactly full, has no
// slack and is left unchanged.
func (a *Array[T]) TrimIfUnderfilled(ratio float64) {
	a.logger.Debug("trim requested", "array", a.logName(), "ratio", ratio)
	if len(a.chunks) == 0 {
		return
	}

	ordinal := len(a.chunks) - 1
	last := a.chunks[ordinal]

	// nextIndex is a size, not a valid index, so its offset within the
	// chunk boundary is the count of used slots in the last chunk. A
	// zero offset means the last chunk ended exactly on the boundary:
	// it is full, and trimming it would cut off stored elements.
	used := a.chunkOffset(a.nextIndex)
	if used == 0 {
		return
	}

	if float64(used)/float64(last.Capacity()) < ratio {
		a.chunks[ordinal] = last.Trimmed(used)
	}
}
