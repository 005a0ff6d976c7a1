// Copyright 2026 The Atlas Authors
// SPDX-License-Identifier: Apache-2.0

package largearray

// Chunk is the fixed-capacity backing storage an [Array] distributes
// its elements over. The array owns its chunks exclusively: it never
// hands a chunk out, and it replaces a chunk wholesale when growing or
// trimming, so implementations do not need to support aliasing or
// concurrent access.
//
// The array validates every logical index before delegating, so Get
// and Set are only ever called with offsets in [0, Capacity()).
// Implementations should panic on an out-of-range offset (slice
// indexing does this for free) rather than try to recover: such a
// call is a bug in the caller, not a runtime condition.
type Chunk[T any] interface {
	// Capacity returns the number of slots allocated in this chunk.
	Capacity() int

	// Get returns the element at offset. Panics if offset is outside
	// [0, Capacity()).
	Get(offset int) T

	// Set stores item at offset. Panics if offset is outside
	// [0, Capacity()).
	Set(offset int, item T)

	// WithCapacity returns a new chunk of the given capacity with this
	// chunk's contents copied up to min(Capacity(), capacity). Extra
	// slots hold the element type's zero value. The receiver is left
	// unchanged; the array drops it after the call.
	WithCapacity(capacity int) Chunk[T]

	// Trimmed returns a new chunk of exactly the given capacity with
	// this chunk's first capacity elements copied. The receiver is
	// left unchanged; the array drops it after the call.
	Trimmed(capacity int) Chunk[T]
}
