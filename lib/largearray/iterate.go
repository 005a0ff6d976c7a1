// Copyright 2026 The Atlas Authors
// SPDX-License-Identifier: Apache-2.0

package largearray

import (
	"fmt"
	"iter"
	"strings"
)

// Values returns a sequence of the array's elements in logical order.
// The upper bound is captured when Values is called, not re-read per
// step: elements appended afterwards are not yielded, and ranging the
// same sequence again replays the original [0, Size()) window. Call
// Values again for a sequence over the grown array.
//
// The sequence holds no state beyond the captured bound, so it is as
// cheap to restart as to create. Mutating the array while iterating is
// subject to the container's single-threaded contract; indices below
// the captured bound stay valid because elements are never removed.
func (a *Array[T]) Values() iter.Seq[T] {
	bound := a.nextIndex
	return func(yield func(T) bool) {
		for index := uint64(0); index < bound; index++ {
			if !yield(a.item(index)) {
				return
			}
		}
	}
}

// All returns a sequence of (index, element) pairs in logical order,
// with the same captured-bound semantics as Values.
func (a *Array[T]) All() iter.Seq2[uint64, T] {
	bound := a.nextIndex
	return func(yield func(uint64, T) bool) {
		for index := uint64(0); index < bound; index++ {
			if !yield(index, a.item(index)) {
				return
			}
		}
	}
}

// String renders every current element, comma-separated and prefixed
// with the container's type tag, e.g. "[LargeArray[int] 1, 2, 3]".
// Costs O(Size()); intended for debugging small arrays, not as an
// output path.
func (a *Array[T]) String() string {
	var builder strings.Builder
	builder.WriteByte('[')
	builder.WriteString(a.typeTag())
	first := true
	for item := range a.Values() {
		if first {
			builder.WriteByte(' ')
			first = false
		} else {
			builder.WriteString(", ")
		}
		fmt.Fprintf(&builder, "%v", item)
	}
	builder.WriteByte(']')
	return builder.String()
}
