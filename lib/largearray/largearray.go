// Copyright 2026 The Atlas Authors
// SPDX-License-Identifier: Apache-2.0

package largearray

import (
	"errors"
	"fmt"
	"log/slog"
	"math"
)

// DefaultInitialChunkCapacity is the capacity given to newly created
// chunks when Config.InitialChunkCapacity is not set. Small enough to
// keep mostly-empty arrays cheap, large enough that a growing array
// does not resize on every append.
const DefaultInitialChunkCapacity = 1024

// DefaultChunkCapacityLimit is the per-chunk capacity ceiling when
// Config.ChunkCapacityLimit is not set: the largest value a 32-bit
// signed index can address.
const DefaultChunkCapacityLimit = math.MaxInt32

// Errors returned by Array operations.
var (
	// ErrCapacityExceeded is returned by Append when the array already
	// holds Config.MaximumSize elements. The array is unchanged; the
	// caller must accept the cap or rebuild with a larger maximum.
	ErrCapacityExceeded = errors.New("largearray: array at configured maximum size")

	// ErrOutOfBounds is returned by Get and Set for any index at or
	// past the current logical size. Always a caller bug: Set cannot
	// extend the array, only Append can.
	ErrOutOfBounds = errors.New("largearray: index out of bounds")
)

// Config holds the parameters for constructing an [Array]. NewChunk is
// required; everything else has a usable zero value or default.
type Config[T any] struct {
	// MaximumSize is the hard ceiling on the logical element count.
	// Appends beyond it fail with ErrCapacityExceeded. Fixed at
	// construction. Zero is legal and makes every append fail.
	MaximumSize uint64

	// InitialChunkCapacity is the capacity given to a newly created
	// chunk. If small, chunks resize often while filling; if large,
	// tail capacity sits unused until trimmed. Values <= 0 mean
	// DefaultInitialChunkCapacity. Clipped to ChunkCapacityLimit.
	InitialChunkCapacity int

	// ChunkCapacityLimit is the largest capacity any single chunk may
	// reach, and the fixed divisor that maps logical indices to
	// (chunk, offset) pairs. Values <= 0 mean
	// DefaultChunkCapacityLimit. Fixed at construction.
	ChunkCapacityLimit int

	// NewChunk creates a backing chunk of the requested capacity.
	// Required. The slicechunk package provides the standard factory.
	NewChunk func(capacity int) Chunk[T]

	// Logger receives chunk resize and trim events. If nil, a no-op
	// logger is used.
	Logger *slog.Logger

	// Label is an optional diagnostic name for the array, included in
	// log events. Changeable later with SetLabel.
	Label string
}

// Array is an append-only sequence of T backed by fixed-capacity
// chunks. Logical index i lives in chunk i/ChunkCapacityLimit at
// offset i%ChunkCapacityLimit; the divisor never changes, so an index
// resolves to the same slot for the array's whole lifetime even while
// individual chunks are still growing toward the limit.
//
// Array is not safe for concurrent use.
type Array[T any] struct {
	maximumSize          uint64
	initialChunkCapacity int
	chunkCapacityLimit   int
	newChunk             func(capacity int) Chunk[T]
	logger               *slog.Logger

	// chunks is insertion-ordered and exclusively owned. Chunks are
	// appended lazily and replaced in place by resized or trimmed
	// copies, never removed.
	chunks []Chunk[T]

	// nextIndex is the logical size: the count of elements appended so
	// far. Monotonically non-decreasing.
	nextIndex uint64

	label string
}

// New constructs an empty Array from cfg. No chunk is allocated until
// the first append. Returns an error if cfg.NewChunk is nil.
func New[T any](cfg Config[T]) (*Array[T], error) {
	if cfg.NewChunk == nil {
		return nil, errors.New("largearray: NewChunk is required")
	}

	initial := cfg.InitialChunkCapacity
	if initial <= 0 {
		initial = DefaultInitialChunkCapacity
	}
	limit := cfg.ChunkCapacityLimit
	if limit <= 0 {
		limit = DefaultChunkCapacityLimit
	}
	if initial > limit {
		initial = limit
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}

	return &Array[T]{
		maximumSize:          cfg.MaximumSize,
		initialChunkCapacity: initial,
		chunkCapacityLimit:   limit,
		newChunk:             cfg.NewChunk,
		logger:               logger,
		label:                cfg.Label,
	}, nil
}

// Append adds item at the end of the array, creating or growing the
// target chunk as needed. Once the array holds MaximumSize elements it
// fails with ErrCapacityExceeded before any state changes.
func (a *Array[T]) Append(item T) error {
	if a.nextIndex >= a.maximumSize {
		return fmt.Errorf("%w: cannot append beyond %d elements", ErrCapacityExceeded, a.maximumSize)
	}

	ordinal := a.chunkOrdinal(a.nextIndex)
	offset := a.chunkOffset(a.nextIndex)

	// Appends are sequential, so a missing chunk is always the next
	// ordinal and the append lands at its offset 0.
	if ordinal >= len(a.chunks) {
		a.chunks = append(a.chunks, a.newChunk(a.initialChunkCapacity))
	}
	if offset >= a.chunks[ordinal].Capacity() {
		a.grow(ordinal)
	}

	a.chunks[ordinal].Set(offset, item)
	a.nextIndex++
	return nil
}

// grow replaces the chunk at ordinal with a copy whose capacity is
// doubled, bounded by the per-chunk limit and by the room left under
// MaximumSize after the already-packed chunks.
func (a *Array[T]) grow(ordinal int) {
	old := a.chunks[ordinal]

	fromDoubling := min(2*old.Capacity(), a.chunkCapacityLimit)
	fromTotal := a.chunkCapacityLimit
	if remaining := a.maximumSize - a.filledChunksSize(); remaining < uint64(fromTotal) {
		fromTotal = int(remaining)
	}
	newCapacity := min(fromDoubling, fromTotal)

	a.logger.Warn("resizing chunk",
		"ordinal", ordinal,
		"array", a.logName(),
		"old_capacity", old.Capacity(),
		"new_capacity", newCapacity,
	)
	a.chunks[ordinal] = old.WithCapacity(newCapacity)
}

// filledChunksSize returns the summed capacity of every chunk except
// the last two. The chunk being grown and the one before it are never
// counted, so the remaining-room bound in grow can run past the true
// maximum by up to one chunk of slack capacity.
func (a *Array[T]) filledChunksSize() uint64 {
	if len(a.chunks) <= 1 {
		return 0
	}
	var total uint64
	for _, chunk := range a.chunks[:len(a.chunks)-2] {
		total += uint64(chunk.Capacity())
	}
	return total
}

// Get returns the element at index. Fails with ErrOutOfBounds when
// index is at or past the current size.
func (a *Array[T]) Get(index uint64) (T, error) {
	if index >= a.nextIndex {
		var zero T
		return zero, fmt.Errorf("%w: index %d, size %d", ErrOutOfBounds, index, a.nextIndex)
	}
	return a.item(index), nil
}

// Set overwrites the element at index. Fails with ErrOutOfBounds when
// index is at or past the current size: Set replaces existing elements
// only and never extends the array.
func (a *Array[T]) Set(index uint64, item T) error {
	if index >= a.nextIndex {
		return fmt.Errorf("%w: index %d, size %d", ErrOutOfBounds, index, a.nextIndex)
	}
	a.chunks[a.chunkOrdinal(index)].Set(a.chunkOffset(index), item)
	return nil
}

// Size returns the logical element count: the number of successful
// appends. Always at most the allocated capacity across chunks.
func (a *Array[T]) Size() uint64 {
	return a.nextIndex
}

// IsEmpty reports whether the array holds no elements.
func (a *Array[T]) IsEmpty() bool {
	return a.Size() == 0
}

// Label returns the array's diagnostic name. Empty if never set.
func (a *Array[T]) Label() string {
	return a.label
}

// SetLabel sets the array's diagnostic name. Pure metadata: it appears
// in log events and nowhere else.
func (a *Array[T]) SetLabel(label string) {
	a.label = label
}

// item returns the element at a logical index the caller has already
// bounds-checked.
func (a *Array[T]) item(index uint64) T {
	return a.chunks[a.chunkOrdinal(index)].Get(a.chunkOffset(index))
}

// chunkOrdinal maps a logical index to the chunk holding it.
func (a *Array[T]) chunkOrdinal(index uint64) int {
	return int(index / uint64(a.chunkCapacityLimit))
}

// chunkOffset maps a logical index to its slot within its chunk.
func (a *Array[T]) chunkOffset(index uint64) int {
	return int(index % uint64(a.chunkCapacityLimit))
}

// logName identifies the array in log events: the label when set,
// otherwise the type tag.
func (a *Array[T]) logName() string {
	if a.label != "" {
		return a.label
	}
	return a.typeTag()
}

// typeTag renders the instantiated container type for diagnostics,
// e.g. "LargeArray[int]".
func (a *Array[T]) typeTag() string {
	var zero T
	return fmt.Sprintf("LargeArray[%T]", zero)
}
