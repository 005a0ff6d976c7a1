// Copyright 2026 The Atlas Authors
// SPDX-License-Identifier: Apache-2.0

package largearray

import (
	"slices"
	"testing"
)

func TestValuesOrder(t *testing.T) {
	array := newTestArray(t, Config[int]{
		MaximumSize:          100,
		InitialChunkCapacity: 2,
		ChunkCapacityLimit:   2,
	})
	want := []int{10, 11, 12, 13, 14}
	appendAll(t, array, want...)

	got := slices.Collect(array.Values())
	if !slices.Equal(got, want) {
		t.Errorf("Values() yielded %v, want %v", got, want)
	}
}

func TestValuesEmpty(t *testing.T) {
	array := newTestArray(t, Config[int]{MaximumSize: 10})

	for item := range array.Values() {
		t.Fatalf("Values() on empty array yielded %d", item)
	}
}

func TestValuesBoundCapturedAtCreation(t *testing.T) {
	array := newTestArray(t, Config[int]{MaximumSize: 10, InitialChunkCapacity: 2})
	appendAll(t, array, 1, 2)

	sequence := array.Values()
	appendAll(t, array, 3)

	if got := slices.Collect(sequence); !slices.Equal(got, []int{1, 2}) {
		t.Errorf("stale sequence yielded %v, want [1 2]", got)
	}
	if got := slices.Collect(array.Values()); !slices.Equal(got, []int{1, 2, 3}) {
		t.Errorf("fresh sequence yielded %v, want [1 2 3]", got)
	}
}

func TestValuesRestartable(t *testing.T) {
	array := newTestArray(t, Config[int]{MaximumSize: 10, InitialChunkCapacity: 2})
	appendAll(t, array, 4, 5, 6)

	sequence := array.Values()
	first := slices.Collect(sequence)
	second := slices.Collect(sequence)
	if !slices.Equal(first, second) {
		t.Errorf("second pass yielded %v, want %v", second, first)
	}
}

func TestValuesEarlyBreak(t *testing.T) {
	array := newTestArray(t, Config[int]{MaximumSize: 10, InitialChunkCapacity: 2})
	appendAll(t, array, 1, 2, 3, 4)

	var got []int
	for item := range array.Values() {
		got = append(got, item)
		if len(got) == 2 {
			break
		}
	}
	if !slices.Equal(got, []int{1, 2}) {
		t.Errorf("partial iteration yielded %v, want [1 2]", got)
	}
}

func TestAllPairs(t *testing.T) {
	array := newTestArray(t, Config[string]{
		MaximumSize:          10,
		InitialChunkCapacity: 2,
		ChunkCapacityLimit:   2,
	})
	want := []string{"a", "b", "c"}
	appendAll(t, array, want...)

	next := uint64(0)
	for index, item := range array.All() {
		if index != next {
			t.Fatalf("All() index = %d, want %d", index, next)
		}
		if item != want[index] {
			t.Errorf("All() item at %d = %q, want %q", index, item, want[index])
		}
		next++
	}
	if next != 3 {
		t.Errorf("All() yielded %d pairs, want 3", next)
	}
}

func TestString(t *testing.T) {
	array := newTestArray(t, Config[int]{MaximumSize: 10, InitialChunkCapacity: 2})

	if got, want := array.String(), "[LargeArray[int]]"; got != want {
		t.Errorf("String() on empty array = %q, want %q", got, want)
	}

	appendAll(t, array, 1, 2, 3)
	if got, want := array.String(), "[LargeArray[int] 1, 2, 3]"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}

func TestStringIgnoresLabel(t *testing.T) {
	// The label names the array in log events only; String always
	// renders the type tag.
	array := newTestArray(t, Config[string]{MaximumSize: 10, InitialChunkCapacity: 2, Label: "names"})
	appendAll(t, array, "ada", "grace")

	if got, want := array.String(), "[LargeArray[string] ada, grace]"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
