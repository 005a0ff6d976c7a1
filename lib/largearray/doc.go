// Copyright 2026 The Atlas Authors
// SPDX-License-Identifier: Apache-2.0

// Package largearray provides an append-only array that distributes
// its elements across an ordered sequence of fixed-capacity backing
// chunks. Logical indices are uint64, so a single array can hold more
// elements than one contiguous slice is practical for, while growth
// never copies more than the last chunk.
//
// The array is generic over both the element type and the chunk
// storage: [Chunk] is the capability the container consumes, and
// [Config].NewChunk supplies the concrete implementation (see the
// slicechunk package for the standard slice-backed one). Chunks are
// created lazily as appends reach them, grow by doubling up to
// [Config].ChunkCapacityLimit, and can be trimmed back to their used
// size with [Array.Trim] once appending is done.
//
// Every append is bounded by [Config].MaximumSize, fixed at
// construction. Elements can be appended, read, and overwritten, but
// never removed, so the logical size only grows.
//
// An Array is not safe for concurrent use. Callers that share one
// across goroutines must serialize access around the whole container.
package largearray
